package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MaxAge is the highest age accepted from outside callers (gRPC requests and CLI flags).
// It keeps the projected horizon, and the row slice, small.
// Validate does not enforce it; callers at the edges use CheckBounds.
const MaxAge = 150

// ReturnPercentFloor is the lowest accepted annual return percentage (a total loss each year)
var ReturnPercentFloor = decimal.NewFromInt(-100)

var half = decimal.NewFromFloat(0.5)

// ProjectionInput is the caller-supplied description of a savings plan.
// Monetary fields are expected to be non-negative but this is not enforced:
// negative values are accepted and propagate arithmetically.
type ProjectionInput struct {
	CurrentAge          int
	RetirementAge       int
	CurrentSavings      decimal.Decimal // Starting principal
	AnnualContribution  decimal.Decimal // Added each year before growth is applied
	AnnualReturnPercent decimal.Decimal // 7 means 7%
}

// Validate ensures the input can be projected
// Returns a *ValidationError if validation fails
func (in ProjectionInput) Validate() error {
	if in.RetirementAge <= in.CurrentAge {
		return ErrRetirementAgeNotAfterCurrentAge
	}

	// -100 itself is allowed: the balance is wiped out but the math still holds
	if in.AnnualReturnPercent.LessThan(ReturnPercentFloor) {
		return ErrReturnBelowFloor
	}

	return nil
}

// CheckBounds ensures both ages lie in [0, MaxAge]
// Returns a *ValidationError naming the offending field
func (in ProjectionInput) CheckBounds() error {
	if err := checkAge("current_age", "current age", in.CurrentAge); err != nil {
		return err
	}
	return checkAge("retirement_age", "retirement age", in.RetirementAge)
}

func checkAge(field, label string, age int) error {
	if age < 0 || age > MaxAge {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s must be between 0 and %d, got %d", label, MaxAge, age),
		}
	}
	return nil
}

// Years returns the number of simulated years (retirement age minus current age)
func (in ProjectionInput) Years() int {
	return in.RetirementAge - in.CurrentAge
}

// Rate returns the annual return as a fraction (AnnualReturnPercent / 100)
func (in ProjectionInput) Rate() decimal.Decimal {
	return in.AnnualReturnPercent.Shift(-2)
}

// ProjectionRow is one simulated year. All monetary fields are rounded to cents.
type ProjectionRow struct {
	Age          int
	Year         int
	StartBalance decimal.Decimal
	Contribution decimal.Decimal
	Growth       decimal.Decimal // May be negative
	EndBalance   decimal.Decimal // Carried into the next year's StartBalance
}

// ProjectionResult is the chronological trajectory plus the balance at retirement
type ProjectionResult struct {
	Rows         []ProjectionRow
	FinalBalance decimal.Decimal
}

// Years returns the number of projected years
func (r *ProjectionResult) Years() int {
	return len(r.Rows)
}

// TotalContributions sums the contributions over all rows
func (r *ProjectionResult) TotalContributions() decimal.Decimal {
	total := decimal.Zero
	for _, row := range r.Rows {
		total = total.Add(row.Contribution)
	}
	return total
}

// TotalGrowth sums the investment return over all rows
func (r *ProjectionResult) TotalGrowth() decimal.Decimal {
	total := decimal.Zero
	for _, row := range r.Rows {
		total = total.Add(row.Growth)
	}
	return total
}

// Round2 rounds a monetary value to cents.
// Ties go toward positive infinity, matching floor(value*100 + 0.5) / 100.
// Round2 is idempotent.
func Round2(value decimal.Decimal) decimal.Decimal {
	return value.Shift(2).Add(half).Floor().Shift(-2)
}
