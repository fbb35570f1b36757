package apperr

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error is the application error type. Code is the HTTP status the handler
// boundary responds with, Message is what the client sees, Err is the
// underlying cause and never leaves the process.
type Error struct {
	Code    int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an Error with the given status code and client message.
func New(code int, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap returns a copy of base carrying err as its cause. The base values
// below are shared, so they are never mutated in place.
func Wrap(base *Error, err error) *Error {
	return &Error{Code: base.Code, Message: base.Message, Err: err}
}

var (
	ErrValidation         = New(http.StatusBadRequest, "missing or invalid field")
	ErrDuplicateEmail     = New(http.StatusBadRequest, "existing user found with same email id")
	ErrInvalidCredentials = New(http.StatusBadRequest, "invalid email or password")
	ErrUnauthenticated    = New(http.StatusUnauthorized, "please authenticate using a valid token")
	ErrInvalidToken       = New(http.StatusUnauthorized, "please authenticate using a valid token")
	ErrInvalidItem        = New(http.StatusBadRequest, "item id out of range")
	ErrNoFile             = New(http.StatusBadRequest, "no file provided")
	ErrPersistence        = New(http.StatusInternalServerError, "internal server error")
)

// Respond converts any error into the JSON error payload at the handler
// boundary. Unknown error values are reported as persistence failures so no
// internal detail leaks to the client.
func Respond(c *gin.Context, err error) {
	appErr, ok := err.(*Error)
	if !ok {
		appErr = Wrap(ErrPersistence, err)
	}
	c.JSON(appErr.Code, gin.H{"success": false, "errors": appErr.Message})
}

// Abort is Respond plus aborting the handler chain, for middleware.
func Abort(c *gin.Context, err error) {
	appErr, ok := err.(*Error)
	if !ok {
		appErr = Wrap(ErrPersistence, err)
	}
	c.AbortWithStatusJSON(appErr.Code, gin.H{"success": false, "errors": appErr.Message})
}
