package commands

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/simaogato/nestegg-backend/internal/domain"
)

const (
	defaultCurrentAge         = 38
	defaultRetirementAge      = 60
	defaultCurrentSavings     = "200000"
	defaultAnnualContribution = "24000"
	defaultAnnualReturn       = "7"
)

// inputFlags binds the projection inputs to command flags
type inputFlags struct {
	currentAge         int
	retirementAge      int
	currentSavings     string
	annualContribution string
	annualReturn       string
	startYear          int
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.currentAge, "current-age", defaultCurrentAge, "your age today")
	cmd.Flags().IntVar(&f.retirementAge, "retirement-age", defaultRetirementAge, "age at which you retire")
	cmd.Flags().StringVar(&f.currentSavings, "current-savings", defaultCurrentSavings, "savings today")
	cmd.Flags().StringVar(&f.annualContribution, "annual-contribution", defaultAnnualContribution, "amount added every year")
	cmd.Flags().StringVar(&f.annualReturn, "annual-return", defaultAnnualReturn, "expected annual return in percent")
	cmd.Flags().IntVar(&f.startYear, "start-year", 0, "calendar year of the first row (default current year)")
}

// input builds a ProjectionInput from the flags
// Amounts that do not parse fall back to their default and a warning goes to warn
func (f *inputFlags) input(cmd *cobra.Command, warn io.Writer) (domain.ProjectionInput, *int) {
	input := domain.ProjectionInput{
		CurrentAge:          f.currentAge,
		RetirementAge:       f.retirementAge,
		CurrentSavings:      parseAmount(warn, "current-savings", f.currentSavings, defaultCurrentSavings),
		AnnualContribution:  parseAmount(warn, "annual-contribution", f.annualContribution, defaultAnnualContribution),
		AnnualReturnPercent: parseAmount(warn, "annual-return", f.annualReturn, defaultAnnualReturn),
	}

	var startYear *int
	if cmd.Flags().Changed("start-year") {
		year := f.startYear
		startYear = &year
	}

	return input, startYear
}

func parseAmount(warn io.Writer, name, value, fallback string) decimal.Decimal {
	d, err := decimal.NewFromString(value)
	if err == nil {
		return d
	}

	fmt.Fprintf(warn, "warning: --%s %q is not a number, using %s\n", name, value, fallback)
	return decimal.RequireFromString(fallback)
}
