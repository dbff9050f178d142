package grpc

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/simaogato/nestegg-backend/internal/domain"
)

// MockProjector is a mock implementation of Projector for testing
type MockProjector struct {
	mock.Mock
}

func (m *MockProjector) Project(ctx context.Context, input domain.ProjectionInput, startYear *int) (*domain.ProjectionResult, error) {
	args := m.Called(ctx, input, startYear)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProjectionResult), args.Error(1)
}

func TestServerProject_PassesDecodedInput(t *testing.T) {
	ctx := context.Background()
	mockProjector := new(MockProjector)
	server := NewServer(mockProjector)

	req, err := structpb.NewStruct(map[string]interface{}{
		"current_age":           45,
		"retirement_age":        65,
		"current_savings":       "80000",
		"annual_contribution":   "12000.50",
		"annual_return_percent": "5",
		"start_year":            2030,
	})
	require.NoError(t, err)

	matchesInput := mock.MatchedBy(func(in domain.ProjectionInput) bool {
		return in.CurrentAge == 45 &&
			in.RetirementAge == 65 &&
			in.CurrentSavings.Equal(decimal.NewFromInt(80000)) &&
			in.AnnualContribution.Equal(decimal.RequireFromString("12000.50")) &&
			in.AnnualReturnPercent.Equal(decimal.NewFromInt(5))
	})
	matchesYear := mock.MatchedBy(func(year *int) bool {
		return year != nil && *year == 2030
	})

	result := &domain.ProjectionResult{
		Rows: []domain.ProjectionRow{
			{Age: 45, Year: 2030, StartBalance: decimal.NewFromInt(80000), EndBalance: decimal.NewFromInt(96600)},
		},
		FinalBalance: decimal.NewFromInt(96600),
	}
	mockProjector.On("Project", ctx, matchesInput, matchesYear).Return(result, nil)

	resp, err := server.Project(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, "96600.00", resp.GetFields()["final_balance"].GetStringValue())
	assert.Len(t, resp.GetFields()["rows"].GetListValue().GetValues(), 1)

	mockProjector.AssertExpectations(t)
}

func TestServerProject_MalformedRequestSkipsProjector(t *testing.T) {
	ctx := context.Background()
	mockProjector := new(MockProjector)
	server := NewServer(mockProjector)

	req, err := structpb.NewStruct(map[string]interface{}{
		"retirement_age": 65,
	})
	require.NoError(t, err)

	_, err = server.Project(ctx, req)

	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	mockProjector.AssertNotCalled(t, "Project", mock.Anything, mock.Anything, mock.Anything)
}

func TestServerProject_AgeOutOfBoundsSkipsProjector(t *testing.T) {
	ctx := context.Background()
	mockProjector := new(MockProjector)
	server := NewServer(mockProjector)

	req, err := structpb.NewStruct(map[string]interface{}{
		"current_age":    0,
		"retirement_age": 2147483647,
	})
	require.NoError(t, err)

	_, err = server.Project(ctx, req)

	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())
	assert.Equal(t, "retirement age must be between 0 and 150, got 2147483647", st.Message())
	mockProjector.AssertNotCalled(t, "Project", mock.Anything, mock.Anything, mock.Anything)
}

func TestServerProject_InternalError(t *testing.T) {
	ctx := context.Background()
	mockProjector := new(MockProjector)
	server := NewServer(mockProjector)

	req, err := structpb.NewStruct(map[string]interface{}{
		"current_age":    30,
		"retirement_age": 31,
	})
	require.NoError(t, err)

	mockProjector.On("Project", ctx, mock.Anything, mock.Anything).Return(nil, errors.New("clock unavailable"))

	_, err = server.Project(ctx, req)

	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.Internal, st.Code())
	assert.Equal(t, "clock unavailable", st.Message())
	mockProjector.AssertExpectations(t)
}
