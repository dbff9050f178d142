package domain

// ValidationError reports a projection input that cannot be projected.
// Message is human-readable and meant to be shown to the user verbatim.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	// ErrRetirementAgeNotAfterCurrentAge is returned when RetirementAge <= CurrentAge
	ErrRetirementAgeNotAfterCurrentAge = &ValidationError{
		Field:   "retirement_age",
		Message: "retirement age must exceed current age",
	}

	// ErrReturnBelowFloor is returned when AnnualReturnPercent < -100
	ErrReturnBelowFloor = &ValidationError{
		Field:   "annual_return_percent",
		Message: "annual return percent cannot be less than -100%",
	}
)
