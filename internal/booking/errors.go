package booking

import "fmt"

// ValidationError reports user input that failed a step's parsing rule. The
// session is left untouched; the message is surfaced to the user who retries
// the same step.
type ValidationError struct {
	Step Step
	Msg  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("booking: %s: %s", e.Step, e.Msg)
}

// NoSlotsError reports the time-slot dead end: the chosen doctor has no
// configured slots, so the user must go back and pick another doctor. It is a
// recoverable condition, not a failure of the booking.
type NoSlotsError struct {
	Doctor string
}

func (e *NoSlotsError) Error() string {
	return fmt.Sprintf("booking: no slots available for %s, please choose another doctor", e.Doctor)
}
