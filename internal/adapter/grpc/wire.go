package grpc

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/types/known/structpb"

	projectorv1 "github.com/simaogato/nestegg-backend/internal/adapter/grpc/projector/v1"
	"github.com/simaogato/nestegg-backend/internal/domain"
)

// projectionInputToProto converts a domain ProjectionInput to a Project request message
func projectionInputToProto(input domain.ProjectionInput, startYear *int) *structpb.Struct {
	fields := map[string]*structpb.Value{
		projectorv1.FieldCurrentAge:          structpb.NewNumberValue(float64(input.CurrentAge)),
		projectorv1.FieldRetirementAge:       structpb.NewNumberValue(float64(input.RetirementAge)),
		projectorv1.FieldCurrentSavings:      structpb.NewStringValue(input.CurrentSavings.String()),
		projectorv1.FieldAnnualContribution:  structpb.NewStringValue(input.AnnualContribution.String()),
		projectorv1.FieldAnnualReturnPercent: structpb.NewStringValue(input.AnnualReturnPercent.String()),
	}

	// start_year is omitted so the server picks its current year
	if startYear != nil {
		fields[projectorv1.FieldStartYear] = structpb.NewNumberValue(float64(*startYear))
	}

	return &structpb.Struct{Fields: fields}
}

// protoToProjectionInput converts a Project request message to a domain ProjectionInput
// The returned start year is nil when the request does not carry one
func protoToProjectionInput(req *structpb.Struct) (domain.ProjectionInput, *int, error) {
	var input domain.ProjectionInput
	fields := req.GetFields()

	currentAge, err := requiredInt(fields, projectorv1.FieldCurrentAge)
	if err != nil {
		return input, nil, err
	}
	retirementAge, err := requiredInt(fields, projectorv1.FieldRetirementAge)
	if err != nil {
		return input, nil, err
	}

	currentSavings, err := optionalDecimal(fields, projectorv1.FieldCurrentSavings)
	if err != nil {
		return input, nil, err
	}
	annualContribution, err := optionalDecimal(fields, projectorv1.FieldAnnualContribution)
	if err != nil {
		return input, nil, err
	}
	annualReturnPercent, err := optionalDecimal(fields, projectorv1.FieldAnnualReturnPercent)
	if err != nil {
		return input, nil, err
	}

	var startYear *int
	if _, ok := fields[projectorv1.FieldStartYear]; ok {
		year, err := requiredInt(fields, projectorv1.FieldStartYear)
		if err != nil {
			return input, nil, err
		}
		startYear = &year
	}

	input = domain.ProjectionInput{
		CurrentAge:          currentAge,
		RetirementAge:       retirementAge,
		CurrentSavings:      currentSavings,
		AnnualContribution:  annualContribution,
		AnnualReturnPercent: annualReturnPercent,
	}

	// Ages outside [0, MaxAge] would size the row slice from untrusted input
	if err := input.CheckBounds(); err != nil {
		return domain.ProjectionInput{}, nil, err
	}

	return input, startYear, nil
}

// domainResultToProto converts a domain ProjectionResult to a Project response message
// Amounts are rendered with exactly two decimal places
func domainResultToProto(result *domain.ProjectionResult) *structpb.Struct {
	rows := make([]*structpb.Value, 0, len(result.Rows))
	for _, row := range result.Rows {
		rows = append(rows, structpb.NewStructValue(&structpb.Struct{
			Fields: map[string]*structpb.Value{
				projectorv1.FieldRowAge:          structpb.NewNumberValue(float64(row.Age)),
				projectorv1.FieldRowYear:         structpb.NewNumberValue(float64(row.Year)),
				projectorv1.FieldRowStartBalance: amountValue(row.StartBalance),
				projectorv1.FieldRowContribution: amountValue(row.Contribution),
				projectorv1.FieldRowGrowth:       amountValue(row.Growth),
				projectorv1.FieldRowEndBalance:   amountValue(row.EndBalance),
			},
		}))
	}

	return &structpb.Struct{
		Fields: map[string]*structpb.Value{
			projectorv1.FieldRows:               structpb.NewListValue(&structpb.ListValue{Values: rows}),
			projectorv1.FieldFinalBalance:       amountValue(result.FinalBalance),
			projectorv1.FieldTotalContributions: amountValue(result.TotalContributions()),
			projectorv1.FieldTotalGrowth:        amountValue(result.TotalGrowth()),
		},
	}
}

// protoToProjectionResult converts a Project response message to a domain ProjectionResult
// Totals are derived from the rows and are not read back
func protoToProjectionResult(resp *structpb.Struct) (*domain.ProjectionResult, error) {
	fields := resp.GetFields()

	finalBalance, err := optionalDecimal(fields, projectorv1.FieldFinalBalance)
	if err != nil {
		return nil, err
	}

	values := fields[projectorv1.FieldRows].GetListValue().GetValues()
	rows := make([]domain.ProjectionRow, 0, len(values))
	for i, value := range values {
		rowFields := value.GetStructValue().GetFields()
		if rowFields == nil {
			return nil, fmt.Errorf("row %d is not a struct", i)
		}

		row, err := protoToProjectionRow(rowFields)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		rows = append(rows, row)
	}

	return &domain.ProjectionResult{
		Rows:         rows,
		FinalBalance: finalBalance,
	}, nil
}

func protoToProjectionRow(fields map[string]*structpb.Value) (domain.ProjectionRow, error) {
	var row domain.ProjectionRow
	var err error

	if row.Age, err = requiredInt(fields, projectorv1.FieldRowAge); err != nil {
		return row, err
	}
	if row.Year, err = requiredInt(fields, projectorv1.FieldRowYear); err != nil {
		return row, err
	}
	if row.StartBalance, err = optionalDecimal(fields, projectorv1.FieldRowStartBalance); err != nil {
		return row, err
	}
	if row.Contribution, err = optionalDecimal(fields, projectorv1.FieldRowContribution); err != nil {
		return row, err
	}
	if row.Growth, err = optionalDecimal(fields, projectorv1.FieldRowGrowth); err != nil {
		return row, err
	}
	if row.EndBalance, err = optionalDecimal(fields, projectorv1.FieldRowEndBalance); err != nil {
		return row, err
	}

	return row, nil
}

func amountValue(d decimal.Decimal) *structpb.Value {
	return structpb.NewStringValue(d.StringFixed(2))
}

// requiredInt reads an integral number field
func requiredInt(fields map[string]*structpb.Value, name string) (int, error) {
	value, ok := fields[name]
	if !ok {
		return 0, fmt.Errorf("invalid %s format: field is required", name)
	}

	number, ok := value.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, fmt.Errorf("invalid %s format: expected a number", name)
	}

	n := number.NumberValue
	if math.IsNaN(n) || math.IsInf(n, 0) || n != math.Trunc(n) {
		return 0, fmt.Errorf("invalid %s format: expected a whole number, got %v", name, n)
	}
	if n > math.MaxInt32 || n < math.MinInt32 {
		return 0, fmt.Errorf("invalid %s format: %v is out of range", name, n)
	}

	return int(n), nil
}

// optionalDecimal reads a decimal string field, defaulting to zero when absent
// A number value is also accepted for callers that do not quote amounts
func optionalDecimal(fields map[string]*structpb.Value, name string) (decimal.Decimal, error) {
	value, ok := fields[name]
	if !ok {
		return decimal.Zero, nil
	}

	switch kind := value.GetKind().(type) {
	case *structpb.Value_StringValue:
		d, err := decimal.NewFromString(kind.StringValue)
		if err != nil {
			return decimal.Zero, fmt.Errorf("invalid %s format: %v", name, err)
		}
		return d, nil
	case *structpb.Value_NumberValue:
		n := kind.NumberValue
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return decimal.Zero, fmt.Errorf("invalid %s format: expected a finite number", name)
		}
		return decimal.NewFromFloat(n), nil
	default:
		return decimal.Zero, fmt.Errorf("invalid %s format: expected a decimal string", name)
	}
}
