package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/unifiedui/chat-client/internal/api/dto"
	domainerrors "github.com/unifiedui/chat-client/internal/domain/errors"
)

// ErrorMiddleware recovers panics and tags their logs with the chat session.
type ErrorMiddleware struct {
	sessionID string
}

// NewErrorMiddleware creates an ErrorMiddleware for the given chat session.
func NewErrorMiddleware(sessionID string) *ErrorMiddleware {
	return &ErrorMiddleware{sessionID: sessionID}
}

// Recovery returns a gin middleware that turns a panic into a 500 response.
func (m *ErrorMiddleware) Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			logger := GetRequestLogger(c).With().Str("session_id", m.sessionID).Logger()
			logger.Error().
				Interface("panic", rec).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Msg("panic recovered")

			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
				Code:      domainerrors.ErrCodeInternal,
				Message:   "internal server error",
				RequestID: GetRequestID(c),
			})
		}()
		c.Next()
	}
}

// HandleError writes err as an error response. Domain errors keep their code
// and status; anything else is a 500.
func HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	logger := GetRequestLogger(c)
	requestID := GetRequestID(c)

	domainErr, ok := domainerrors.GetDomainError(err)
	if !ok {
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("unhandled error")
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:      domainerrors.ErrCodeInternal,
			Message:   "internal server error",
			RequestID: requestID,
		})
		return
	}

	errorEvent(logger, domainErr).
		Err(err).
		Str("code", domainErr.Code).
		Int("status", domainErr.HTTPStatus).
		Msg("request failed")

	c.AbortWithStatusJSON(domainErr.HTTPStatus, dto.ErrorResponse{
		Code:      domainErr.Code,
		Message:   domainErr.Message,
		Details:   domainErr.Details,
		RequestID: requestID,
	})
}

// errorEvent picks the level for a domain error: backend failures are warnings,
// caller mistakes are debug noise.
func errorEvent(logger zerolog.Logger, err *domainerrors.DomainError) *zerolog.Event {
	switch {
	case err.Code == domainerrors.ErrCodeUpstream:
		return logger.Warn()
	case err.HTTPStatus >= http.StatusInternalServerError:
		return logger.Error()
	default:
		return logger.Debug()
	}
}

// NotFound returns the handler for unknown routes.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Code:      domainerrors.ErrCodeNotFound,
			Message:   "no such chat client route",
			Details:   c.Request.URL.Path,
			RequestID: GetRequestID(c),
		})
	}
}

// MethodNotAllowed returns the handler for known routes hit with the wrong method.
// It only fires when the engine has HandleMethodNotAllowed set.
func MethodNotAllowed() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, dto.ErrorResponse{
			Code:      "METHOD_NOT_ALLOWED",
			Message:   "method not allowed",
			Details:   c.Request.Method + " " + c.Request.URL.Path,
			RequestID: GetRequestID(c),
		})
	}
}
