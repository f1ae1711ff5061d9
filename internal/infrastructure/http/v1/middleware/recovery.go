// Package middleware provides HTTP middleware components.
package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"gestobra/internal/core/apperror"
	"gestobra/pkg/logger"
)

// Recovery converts a handler panic into an internal error for ErrorHandler.
// The client gets the generic message and the request id; the stack stays in the log.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			recovered := recover()
			if recovered == nil {
				return
			}

			cause, ok := recovered.(error)
			if !ok {
				cause = fmt.Errorf("panic: %v", recovered)
			}

			logger.Error(c.Request.Context(), "handler panicked",
				"method", c.Request.Method,
				"route", c.FullPath(),
				"panic", cause,
				"stack", string(debug.Stack()),
			)

			_ = c.Error(apperror.NewInternal(cause).WithDetail("request_id", c.GetString("request_id")))
			c.Abort()
		}()
		c.Next()
	}
}
