package projection

import (
	"context"
	"time"

	"github.com/simaogato/nestegg-backend/internal/domain"
)

// Project computes the year-by-year balance trajectory until retirement
// using simple annual compounding.
// Logic, for each year from CurrentAge up to (not including) RetirementAge:
//  1. PreGrowth = StartBalance + Contribution
//  2. Growth = PreGrowth * Rate (the contribution earns a full year of return)
//  3. EndBalance = PreGrowth + Growth
//
// Every monetary field is rounded to cents as it is computed, and the rounded
// EndBalance becomes the next year's StartBalance, so rounding compounds.
// Project is pure: the same input and startYear always yield the same result.
func Project(input domain.ProjectionInput, startYear int) (*domain.ProjectionResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	years := input.Years()
	rate := input.Rate()
	contribution := domain.Round2(input.AnnualContribution)

	rows := make([]domain.ProjectionRow, 0, years)
	balance := input.CurrentSavings

	for i := 0; i < years; i++ {
		preGrowth := balance.Add(input.AnnualContribution)
		growth := preGrowth.Mul(rate)
		endBalance := domain.Round2(preGrowth.Add(growth))

		rows = append(rows, domain.ProjectionRow{
			Age:          input.CurrentAge + i,
			Year:         startYear + i,
			StartBalance: domain.Round2(balance),
			Contribution: contribution,
			Growth:       domain.Round2(growth),
			EndBalance:   endBalance,
		})

		balance = endBalance
	}

	return &domain.ProjectionResult{
		Rows:         rows,
		FinalBalance: domain.Round2(balance),
	}, nil
}

var _ domain.Projector = (*ProjectionService)(nil)

// ProjectionService runs projections on behalf of the transport and CLI layers
type ProjectionService struct {
	now func() time.Time
}

// Option configures a ProjectionService
type Option func(*ProjectionService)

// WithClock overrides the clock used to pick the default start year
func WithClock(now func() time.Time) Option {
	return func(s *ProjectionService) {
		s.now = now
	}
}

// NewProjectionService creates a new ProjectionService instance
func NewProjectionService(opts ...Option) *ProjectionService {
	s := &ProjectionService{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Project validates the input and projects it.
// If startYear is nil, the current calendar year is used.
func (s *ProjectionService) Project(ctx context.Context, input domain.ProjectionInput, startYear *int) (*domain.ProjectionResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	year := s.now().Year()
	if startYear != nil {
		year = *startYear
	}

	return Project(input, year)
}
