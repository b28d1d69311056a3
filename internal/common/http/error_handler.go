package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/AlibekovAA/notes-api/internal/common/constants"
	commonerrors "github.com/AlibekovAA/notes-api/internal/common/errors"
	"github.com/AlibekovAA/notes-api/internal/common/httpmetrics"
	"github.com/AlibekovAA/notes-api/internal/common/logger"
	"github.com/AlibekovAA/notes-api/internal/observability/metrics"
)

// ErrorHandler maps every handler failure to exactly one status. Internal
// details are logged and never echoed to the client.
type ErrorHandler struct {
	log *logger.Logger
}

func NewErrorHandler(log *logger.Logger) *ErrorHandler {
	return &ErrorHandler{log: log}
}

func (h *ErrorHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}

	ctx := r.Context()
	traceID := TraceIDFromContext(ctx)

	if domainErr, ok := commonerrors.AsDomainError(err); ok {
		h.handleDomainError(w, r, domainErr)
		return
	}

	h.log.WithFields(ctx, logger.Fields{
		"action": "unhandled_error",
		"path":   r.URL.Path,
		"method": r.Method,
	}).Errorf("unhandled error: %v", err)

	metrics.HTTPErrorsTotal.WithLabelValues(
		strconv.Itoa(http.StatusInternalServerError),
		httpmetrics.NormalizePath(r.URL.Path),
		r.Method,
	).Inc()

	WriteErrorEnvelope(w, http.StatusInternalServerError, CodeInternal, commonerrors.ErrInternalError.Message(), nil, traceID)
}

func (h *ErrorHandler) handleDomainError(w http.ResponseWriter, r *http.Request, err commonerrors.DomainError) {
	ctx := r.Context()
	traceID := TraceIDFromContext(ctx)

	domainErr := err
	if traceID != "" && err.TraceID() == "" {
		domainErr = err.WithTraceID(traceID)
	}

	status := domainErr.HTTPStatus()

	fields := logger.Fields{
		"error_code": domainErr.Code(),
		"category":   string(domainErr.Category()),
		"status":     status,
		"action":     "domain_error",
	}

	if domainErr.Category() == commonerrors.CategoryInternal {
		h.log.WithFields(ctx, fields).Errorf("internal error: %s", domainErr.Error())
	} else if h.log.ShouldLog(logger.DEBUG) {
		h.log.WithFields(ctx, fields).Debugf("domain error: %s", domainErr.Error())
	}

	metrics.DomainErrorsTotal.WithLabelValues(
		string(domainErr.Category()),
		domainErr.Code(),
		strconv.Itoa(status),
	).Inc()

	metrics.HTTPErrorsTotal.WithLabelValues(
		strconv.Itoa(status),
		httpmetrics.NormalizePath(r.URL.Path),
		r.Method,
	).Inc()

	WriteErrorEnvelope(w, status, domainErr.Code(), domainErr.Message(), nil, domainErr.TraceID())
}

func HandleError(w http.ResponseWriter, r *http.Request, err error, log *logger.Logger) {
	NewErrorHandler(log).HandleError(w, r, err)
}

func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	traceID, _ := ctx.Value(constants.TraceIDKey).(string)
	return traceID
}
