// Package render presents projection results as plain text.
package render

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/simaogato/nestegg-backend/internal/domain"
)

const (
	emptyMessage   = "Enter valid inputs to see projections."
	genericFailure = "Unable to calculate projection."
)

// Renderer formats projection results for a terminal
type Renderer struct {
	printer *message.Printer
	symbol  string
}

// NewRenderer creates a Renderer that prefixes amounts with symbol
func NewRenderer(symbol string) *Renderer {
	return &Renderer{
		printer: message.NewPrinter(language.AmericanEnglish),
		symbol:  symbol,
	}
}

// Currency formats an amount in whole currency units with digit grouping, e.g. $1,441
// Halves round away from zero. Amounts beyond the int64 range are grouped too.
func (r *Renderer) Currency(amount decimal.Decimal) string {
	units := amount.Round(0)

	sign := ""
	if units.Sign() < 0 {
		sign = "-"
	}

	return sign + r.symbol + r.group(units.Abs().String())
}

// maxPrinterDigits keeps the leading group within int64 for the printer
const maxPrinterDigits = 18

// group inserts thousands separators into a string of decimal digits.
// The printer handles the leading digits; whole groups of three are peeled off
// the tail first so that part always fits an int64.
func (r *Renderer) group(digits string) string {
	var tail []string
	for len(digits) > maxPrinterDigits {
		tail = append([]string{digits[len(digits)-3:]}, tail...)
		digits = digits[:len(digits)-3]
	}

	if head, err := strconv.ParseInt(digits, 10, 64); err == nil {
		digits = r.printer.Sprintf("%d", head)
	}

	return strings.Join(append([]string{digits}, tail...), ",")
}

// Table writes the year-by-year projection followed by the balance at retirement
func (r *Renderer) Table(w io.Writer, result *domain.ProjectionResult) error {
	if result == nil || len(result.Rows) == 0 {
		_, err := fmt.Fprintln(w, emptyMessage)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Age\tYear\tStart balance\tContribution\tGrowth\tEnd balance\t")
	for _, row := range result.Rows {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\t%s\t\n",
			row.Age,
			row.Year,
			r.Currency(row.StartBalance),
			r.Currency(row.Contribution),
			r.Currency(row.Growth),
			r.Currency(row.EndBalance),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\nTotal contributions: %s\nTotal growth: %s\nProjected balance at retirement: %s\n",
		r.Currency(result.TotalContributions()),
		r.Currency(result.TotalGrowth()),
		r.Currency(result.FinalBalance),
	)
	return err
}

// Error writes a failed projection. Validation messages are shown verbatim,
// anything else gets a generic message.
func (r *Renderer) Error(w io.Writer, err error) error {
	msg := genericFailure

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		msg = validationErr.Message
	}

	_, werr := fmt.Fprintln(w, msg)
	return werr
}
