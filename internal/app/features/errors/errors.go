// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/clubhub/internal/app/system/reqlog"
	"github.com/dalemusser/clubhub/internal/app/system/respond"
	"go.uber.org/zap"
)

// ErrorLogger logs request failures and writes the matching JSON envelope.
// Internal error text goes to the log only; callers see userMsg.
type ErrorLogger struct {
	Log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{Log: logger}
}

func (e *ErrorLogger) fields(r *http.Request, err error) []zap.Field {
	f := []zap.Field{
		zap.String("request_id", reqlog.ID(r.Context())),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	}
	if err != nil {
		f = append(f, zap.Error(err))
	}
	return f
}

// LogServerError logs at error level and responds 500.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg string) {
	e.Log.Error(msg, e.fields(r, err)...)
	if userMsg == "" {
		userMsg = "An internal error occurred."
	}
	respond.Fail(w, http.StatusInternalServerError, userMsg)
}

// LogBadRequest logs at debug level and responds 400 with userMsg.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg string) {
	e.Log.Debug(msg, e.fields(r, err)...)
	respond.Fail(w, http.StatusBadRequest, userMsg)
}

// LogNotFound logs at debug level and responds 404 with userMsg.
func (e *ErrorLogger) LogNotFound(w http.ResponseWriter, r *http.Request, msg string, userMsg string) {
	e.Log.Debug(msg, e.fields(r, nil)...)
	respond.Fail(w, http.StatusNotFound, userMsg)
}
