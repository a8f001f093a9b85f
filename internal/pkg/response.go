package pkg

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Response is the uniform success envelope.
type Response struct {
	Data any `json:"data"`
}

// ErrorResponse is the uniform error envelope. Errors is null unless
// the failure is a validation one.
type ErrorResponse struct {
	Code      string       `json:"code"`
	Message   string       `json:"message"`
	Timestamp time.Time    `json:"timestamp"`
	Errors    []FieldError `json:"errors"`
}

func Success(c *gin.Context, status int, data any) {
	c.JSON(status, Response{Data: data})
}

// WriteError renders an AppError. The wrapped cause is echoed into the
// message only in debug mode.
func WriteError(c *gin.Context, e *AppError, debug bool) {
	msg := e.Message
	if debug && e.cause != nil {
		msg = msg + " - " + e.cause.Error()
	}
	c.JSON(e.Status, ErrorResponse{
		Code:      e.Code,
		Message:   msg,
		Timestamp: time.Now(),
		Errors:    e.Fields,
	})
}
