package middleware

import (
	"log/slog"
	"net/http"

	"needboard/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler is the last-resort net for errors attached to the context by
// handlers that did not write a response themselves.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		slog.Error("unhandled request errors",
			"path", c.Request.URL.Path,
			"errors", c.Errors.String())
		httperr.Write(c, http.StatusInternalServerError, "Internal server error")
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "path", c.Request.URL.Path)
				httperr.Abort(c, http.StatusInternalServerError, "Internal server error")
			}
		}()
		c.Next()
	}
}
