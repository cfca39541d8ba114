package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/goliatone/go-debrief/pkg/debrief"
)

// ErrorType classifies API error bodies.
type ErrorType string

const (
	ValidationError ErrorType = "VALIDATION_ERROR"
	BadRequestError ErrorType = "BAD_REQUEST"
	ServerError     ErrorType = "SERVER_ERROR"
)

// APIError is the JSON body of every failed API call.
type APIError struct {
	Type    ErrorType         `json:"type"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// errBadRequest marks decode failures so the error handler answers 400.
var errBadRequest = errors.New("server: bad request")

// errorHandler turns the last error recorded with c.Error into a JSON body.
// Validation failures become 422 with the field map, input errors 400 and
// everything else 500 with a generic message.
func errorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		status, body := classify(err)
		fields := []zap.Field{
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.Int("status", status),
			zap.Error(err),
		}
		if status >= http.StatusInternalServerError {
			logger.Error("debrief request failed", fields...)
		} else {
			logger.Debug("debrief request rejected", fields...)
		}
		c.JSON(status, body)
	}
}

func classify(err error) (int, APIError) {
	if fieldErrs, ok := debrief.AsFieldErrors(err); ok {
		return http.StatusUnprocessableEntity, APIError{
			Type:    ValidationError,
			Message: "debrief validation failed",
			Errors:  fieldErrs.Map(),
		}
	}
	if errors.Is(err, errBadRequest) ||
		errors.Is(err, debrief.ErrInvalidValue) ||
		errors.Is(err, debrief.ErrUnknownField) {
		return http.StatusBadRequest, APIError{
			Type:    BadRequestError,
			Message: err.Error(),
		}
	}
	return http.StatusInternalServerError, APIError{
		Type:    ServerError,
		Message: "internal error",
	}
}
