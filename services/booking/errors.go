package booking

import "fmt"

// BookingError carries a machine-readable code alongside the message.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &BookingError{Code: "validationError", Message: msg}
}

func NewSlotTakenError(timeSlot string) error {
	return &BookingError{Code: "slotTaken", Message: fmt.Sprintf("the %s slot is no longer available", timeSlot)}
}

func NewDraftNotFoundError(id string) error {
	return &BookingError{Code: "draftNotFound", Message: fmt.Sprintf("booking draft %s not found or expired", id)}
}

// IsValidationError reports whether err is a local validation failure, as
// opposed to a downstream store error.
func IsValidationError(err error) bool {
	be, ok := err.(*BookingError)
	return ok && be.Code == "validationError"
}
