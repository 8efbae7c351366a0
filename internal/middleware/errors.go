package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/todo-api/internal/pkg/logger"
	"github.com/xyz-asif/todo-api/internal/pkg/response"
	apperrors "github.com/xyz-asif/todo-api/pkg/errors"
)

// ErrorHandler answers errors a handler attached with c.Error without
// writing a response itself. Validation and not-found errors map to 400 and
// 404; everything else is a 500 whose text is only exposed when
// exposeDetails is set.
func ErrorHandler(exposeDetails bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		if c.Writer.Written() {
			return
		}

		switch {
		case errors.Is(err, apperrors.ErrValidation):
			response.ValidationFailed(c, err.Error())
			return
		case errors.Is(err, apperrors.ErrNotFound):
			response.NotFound(c, "Not found")
			return
		}

		logger.FromContext(c.Request.Context()).
			WithError(err).
			WithField("path", c.Request.URL.Path).
			Error("Request failed")

		detail := ""
		if exposeDetails {
			detail = err.Error()
		}
		response.InternalServerError(c, "Internal server error", detail)
	}
}

// NoRoute answers unknown paths.
func NoRoute(c *gin.Context) {
	response.NotFound(c, "Not found")
}

// NoMethod answers known paths hit with an unsupported verb.
func NoMethod(c *gin.Context) {
	response.MethodNotAllowed(c, "Method not allowed")
}
