// internal/app/features/errors/logger.go
package errors

import (
	"net/http"

	"github.com/dalemusser/freelancehub/internal/app/system/requestid"
	"go.uber.org/zap"
)

// ErrorLogger logs a failure with request context and renders the matching
// error page.
type ErrorLogger struct {
	Log *zap.Logger
}

// NewErrorLogger returns an ErrorLogger writing to logger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{Log: logger}
}

// LogServerError logs err at Error level and renders a 500 page.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg, backURL string) {
	e.Log.Error(msg, fields(r, err)...)
	RenderServerError(w, r, userMsg, backURL)
}

// LogBadRequest logs err at Warn level and renders a 400 page.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg, backURL string) {
	e.Log.Warn(msg, fields(r, err)...)
	RenderBadRequest(w, r, userMsg, backURL)
}

func fields(r *http.Request, err error) []zap.Field {
	return []zap.Field{
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.String("request_id", requestid.FromContext(r.Context())),
	}
}
