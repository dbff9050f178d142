package grpc

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/simaogato/nestegg-backend/internal/domain"
)

func mustStruct(t *testing.T, fields map[string]interface{}) *structpb.Struct {
	t.Helper()
	s, err := structpb.NewStruct(fields)
	require.NoError(t, err)
	return s
}

func TestProtoToProjectionInput(t *testing.T) {
	req := mustStruct(t, map[string]interface{}{
		"current_age":           30,
		"retirement_age":        32,
		"current_savings":       "1000.50",
		"annual_contribution":   "100",
		"annual_return_percent": "7.25",
		"start_year":            2024,
	})

	input, startYear, err := protoToProjectionInput(req)

	require.NoError(t, err)
	assert.Equal(t, 30, input.CurrentAge)
	assert.Equal(t, 32, input.RetirementAge)
	assert.True(t, input.CurrentSavings.Equal(decimal.RequireFromString("1000.50")))
	assert.True(t, input.AnnualContribution.Equal(decimal.NewFromInt(100)))
	assert.True(t, input.AnnualReturnPercent.Equal(decimal.RequireFromString("7.25")))
	require.NotNil(t, startYear)
	assert.Equal(t, 2024, *startYear)
}

func TestProtoToProjectionInput_Defaults(t *testing.T) {
	req := mustStruct(t, map[string]interface{}{
		"current_age":    30,
		"retirement_age": 40,
	})

	input, startYear, err := protoToProjectionInput(req)

	require.NoError(t, err)
	assert.Nil(t, startYear)
	assert.True(t, input.CurrentSavings.IsZero())
	assert.True(t, input.AnnualContribution.IsZero())
	assert.True(t, input.AnnualReturnPercent.IsZero())
}

func TestProtoToProjectionInput_Errors(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]interface{}
		errMsg string
	}{
		{
			name:   "Missing current age",
			fields: map[string]interface{}{"retirement_age": 60},
			errMsg: "invalid current_age format",
		},
		{
			name:   "Fractional retirement age",
			fields: map[string]interface{}{"current_age": 30, "retirement_age": 60.5},
			errMsg: "invalid retirement_age format",
		},
		{
			name:   "Age sent as string",
			fields: map[string]interface{}{"current_age": "30", "retirement_age": 60},
			errMsg: "invalid current_age format",
		},
		{
			name:   "Malformed savings",
			fields: map[string]interface{}{"current_age": 30, "retirement_age": 60, "current_savings": "lots"},
			errMsg: "invalid current_savings format",
		},
		{
			name:   "Boolean return percent",
			fields: map[string]interface{}{"current_age": 30, "retirement_age": 60, "annual_return_percent": true},
			errMsg: "invalid annual_return_percent format",
		},
		{
			name:   "Retirement age at int32 max",
			fields: map[string]interface{}{"current_age": 0, "retirement_age": 2147483647},
			errMsg: "retirement age must be between 0 and 150",
		},
		{
			name:   "Negative current age",
			fields: map[string]interface{}{"current_age": -5, "retirement_age": 60},
			errMsg: "current age must be between 0 and 150",
		},
		{
			name:   "Fractional start year",
			fields: map[string]interface{}{"current_age": 30, "retirement_age": 60, "start_year": 2024.5},
			errMsg: "invalid start_year format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := protoToProjectionInput(mustStruct(t, tt.fields))

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestProtoToProjectionInput_AgeBoundsAreValidationErrors(t *testing.T) {
	_, _, err := protoToProjectionInput(mustStruct(t, map[string]interface{}{
		"current_age":    0,
		"retirement_age": domain.MaxAge + 1,
	}))

	var validationErr *domain.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "retirement_age", validationErr.Field)

	input, _, err := protoToProjectionInput(mustStruct(t, map[string]interface{}{
		"current_age":    0,
		"retirement_age": domain.MaxAge,
	}))
	require.NoError(t, err)
	assert.Equal(t, domain.MaxAge, input.Years())
}

func TestProtoToProjectionInput_NumericAmounts(t *testing.T) {
	req := mustStruct(t, map[string]interface{}{
		"current_age":           30,
		"retirement_age":        31,
		"current_savings":       1500.25,
		"annual_return_percent": -10,
	})

	input, _, err := protoToProjectionInput(req)

	require.NoError(t, err)
	assert.True(t, input.CurrentSavings.Equal(decimal.RequireFromString("1500.25")))
	assert.True(t, input.AnnualReturnPercent.Equal(decimal.NewFromInt(-10)))
}

func TestResultRoundTrip(t *testing.T) {
	result := &domain.ProjectionResult{
		Rows: []domain.ProjectionRow{
			{
				Age:          30,
				Year:         2024,
				StartBalance: decimal.NewFromInt(1000),
				Contribution: decimal.NewFromInt(100),
				Growth:       decimal.NewFromInt(110),
				EndBalance:   decimal.NewFromInt(1210),
			},
			{
				Age:          31,
				Year:         2025,
				StartBalance: decimal.NewFromInt(1210),
				Contribution: decimal.NewFromInt(100),
				Growth:       decimal.RequireFromString("-0.5"),
				EndBalance:   decimal.RequireFromString("1309.5"),
			},
		},
		FinalBalance: decimal.RequireFromString("1309.5"),
	}

	msg := domainResultToProto(result)

	fields := msg.GetFields()
	assert.Equal(t, "1309.50", fields["final_balance"].GetStringValue())
	assert.Equal(t, "200.00", fields["total_contributions"].GetStringValue())
	assert.Equal(t, "109.50", fields["total_growth"].GetStringValue())

	rows := fields["rows"].GetListValue().GetValues()
	require.Len(t, rows, 2)
	assert.Equal(t, "-0.50", rows[1].GetStructValue().GetFields()["growth"].GetStringValue())

	decoded, err := protoToProjectionResult(msg)

	require.NoError(t, err)
	require.Len(t, decoded.Rows, 2)
	assert.Equal(t, 31, decoded.Rows[1].Age)
	assert.Equal(t, 2025, decoded.Rows[1].Year)
	assert.True(t, decoded.Rows[0].EndBalance.Equal(decimal.NewFromInt(1210)))
	assert.True(t, decoded.Rows[1].Growth.Equal(decimal.RequireFromString("-0.5")))
	assert.True(t, decoded.FinalBalance.Equal(result.FinalBalance))
}

func TestProtoToProjectionResult_MalformedRow(t *testing.T) {
	msg := &structpb.Struct{
		Fields: map[string]*structpb.Value{
			"rows": structpb.NewListValue(&structpb.ListValue{
				Values: []*structpb.Value{structpb.NewStringValue("not a row")},
			}),
			"final_balance": structpb.NewStringValue("0.00"),
		},
	}

	_, err := protoToProjectionResult(msg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 0")
}
