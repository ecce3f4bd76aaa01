package httperr

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HTTPError is the JSON body written for any failed request.
type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

// Respond translates a service error into an HTTP response. Business
// errors become their mapped status; anything else is a logged 500.
func Respond(c *gin.Context, err error) {
	if be, ok := AsBusiness(err); ok {
		Write(c, statusFor(be), be.Code, be.Message)
		return
	}
	log.Printf("HTTP 500 - internal error: %v", err)
	Write(c, http.StatusInternalServerError, "internal_error", "Something went wrong")
}

func statusFor(be BusinessError) int {
	switch be.Code {
	case ErrNotFound.Code:
		return http.StatusNotFound
	case ErrUnauthorized.Code:
		return http.StatusForbidden
	case ErrSlotTaken.Code, ErrAlreadyCompleted.Code, ErrDuplicateUsername.Code:
		return http.StatusConflict
	case ErrNotAvailable.Code, ErrInvalidDateTime.Code:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}
