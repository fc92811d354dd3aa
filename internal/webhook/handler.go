// Package webhook accepts reports over HTTP and answers with their enrichment.
package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"phishabuser/internal/logger"
	"phishabuser/internal/queryerror"
	"phishabuser/internal/structs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

const maxBodyBytes = 10 << 20

type Runner interface {
	Run(ctx context.Context, report structs.Report) (structs.Result, error)
}

type Handler struct {
	runner Runner
}

func New(runner Runner) *Handler {
	return &Handler{runner: runner}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/webhook/report", h.HandleReport)
}

// HandleReport handles POST /webhook/report.
func (h *Handler) HandleReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var report structs.Report
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := decoder.Decode(&report); err != nil {
		logger.Warn(ctx, "could not decode report", zap.Error(err))
		writeError(w, http.StatusBadRequest, "malformed report")
		return
	}

	result, err := h.runner.Run(ctx, report)
	switch {
	case errors.Is(err, queryerror.ErrInvalidEntity):
		logger.Warn(ctx, "report rejected", zap.Error(err))
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	case err != nil:
		logger.Error(ctx, "report processing failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// NewRouter mounts the webhook next to the metrics endpoint. metrics may be nil.
func NewRouter(h *Handler, metricsPath string, metrics http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	h.Register(r)
	if metrics != nil && metricsPath != "" {
		r.Method(http.MethodGet, metricsPath, metrics)
	}

	return r
}

// requestLogger attaches the request id to the context logger.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.WithFields(r.Context(),
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.String("path", r.URL.Path),
		)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r.WithContext(ctx))

		logger.Debug(ctx, "request served", zap.Int("status", ww.Status()), zap.Int("bytes", ww.BytesWritten()))
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
