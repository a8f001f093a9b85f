package middleware

import (
	"errors"
	"fmt"
	"log"

	"board/internal/pkg"

	"github.com/gin-gonic/gin"
)

// ErrorHandler translates errors pushed onto the context into the wire
// error envelope. It is the single place internal failures become
// HTTP-visible.
func ErrorHandler(debug bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors[0].Err

		var appErr *pkg.AppError
		if errors.As(err, &appErr) {
			pkg.WriteError(c, appErr, debug)
			return
		}

		log.Printf("unexpected error: %v", err)
		pkg.WriteError(c, pkg.Internal(err), debug)
	}
}

// Recovery renders panics as the standard envelope instead of gin's
// bare 500.
func Recovery(debug bool) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		pkg.WriteError(c, pkg.Internal(fmt.Errorf("%v", recovered)), debug)
	})
}
