package httperr

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// ContextLogger is the gin key the request logger middleware stores its
// request-scoped *slog.Logger under.
const ContextLogger = "logger"

// Write aborts the request with an error body.
func Write(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

// Respond maps err onto its status code. Internal causes are logged, never sent.
func Respond(c *gin.Context, err error) {
	ae := As(err)

	if ae.Kind == KindInternal {
		logger(c).Error("request failed",
			slog.String("path", c.FullPath()),
			slog.String("error", err.Error()),
		)
		Write(c, http.StatusInternalServerError, "internal_error", "Something went wrong.")
		return
	}

	c.AbortWithStatusJSON(ae.Kind.Status(), HTTPError{
		Code:    ae.Code,
		Message: ae.Message,
		Field:   ae.Field,
	})
}

func logger(c *gin.Context) *slog.Logger {
	if v, ok := c.Get(ContextLogger); ok {
		if l, ok := v.(*slog.Logger); ok {
			return l
		}
	}
	return slog.Default()
}
