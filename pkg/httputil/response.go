package httputil

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/medcore/hospital-api/pkg/apperror"
)

// Message is the error body sent to clients.
type Message struct {
	Message string `json:"message"`
}

// Error writes err to the client. Expected failures map to their
// status with a stable message; anything internal is logged with full
// detail and reported generically.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) && appErr.Code != apperror.CodeInternal {
		c.JSON(StatusFor(appErr.Code), Message{Message: appErr.Message})
		return
	}

	log.Error().
		Err(err).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Str("request_id", c.GetString("request_id")).
		Msg("request failed")

	c.JSON(http.StatusInternalServerError, Message{Message: "internal server error"})
}

// Abort writes err like Error and stops the handler chain. For use in
// middleware.
func Abort(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}

// StatusFor maps a taxonomy code to its HTTP status. Conflicts and bad
// credentials report as 400, matching the external contract.
func StatusFor(code apperror.Code) int {
	switch code {
	case apperror.CodeUnauthenticated:
		return http.StatusUnauthorized
	case apperror.CodeForbidden:
		return http.StatusForbidden
	case apperror.CodeNotFound:
		return http.StatusNotFound
	case apperror.CodeInvalidCredential, apperror.CodeConflict, apperror.CodeValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
