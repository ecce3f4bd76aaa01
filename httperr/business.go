package httperr

import "errors"

// BusinessError is a domain failure that the web layer translates into a
// user-facing response instead of a 500.
type BusinessError struct {
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	return e.Code
}

// The domain error kinds. Services return these (possibly wrapped);
// handlers map them to HTTP statuses with Status.
var (
	ErrNotAvailable      = BusinessError{Code: "not_available", Message: "Doctor is not available at this time"}
	ErrSlotTaken         = BusinessError{Code: "slot_taken", Message: "Slot already booked"}
	ErrUnauthorized      = BusinessError{Code: "unauthorized", Message: "Not authorized"}
	ErrNotFound          = BusinessError{Code: "not_found", Message: "Record not found"}
	ErrAlreadyCompleted  = BusinessError{Code: "already_completed", Message: "Appointment already completed"}
	ErrDuplicateUsername = BusinessError{Code: "duplicate_username", Message: "Username taken"}
	ErrInvalidDateTime   = BusinessError{Code: "invalid_date_or_time", Message: "Invalid date or time"}
)

// AsBusiness unwraps err into a BusinessError if possible.
func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}
