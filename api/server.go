// Package api exposes the HTTP surface: one generation endpoint, a health
// probe, and the middleware around them.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"leadadapter/errs"
	"leadadapter/pipeline"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

// Server serves the message generation API over plain net/http.
type Server struct {
	generator *pipeline.Generator
	limiter   *rate.Limiter
	logger    *zap.Logger
	http      *http.Server
}

// NewServer builds the server and its routes. limiter may be nil to
// disable rate limiting.
func NewServer(addr string, generator *pipeline.Generator, limiter *rate.Limiter, logger *zap.Logger) *Server {
	s := &Server{
		generator: generator,
		limiter:   limiter,
		logger:    logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/messages/generate", s.handleGenerate)
	mux.HandleFunc("GET /api/v1/health", s.handleHealth)

	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.withLogging(s.withRateLimit(mux)),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// ListenAndServe blocks until the server stops.
func (s *Server) ListenAndServe() error {
	s.logger.Info("http server listening", zap.String("addr", s.http.Addr))
	err := s.http.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req pipeline.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_LEAD", "invalid request body", err.Error())
		return
	}

	resp, err := s.generator.Generate(r.Context(), req)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": Version,
	})
}

// writeDomainError maps domain failures onto the wire error contract.
func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	var ve *errs.ValidationError
	if errors.As(err, &ve) {
		code := "INVALID_LEAD"
		if strings.HasPrefix(ve.Field, "playbook.") {
			code = "INVALID_PLAYBOOK"
		}
		writeError(w, http.StatusUnprocessableEntity, code, "validation failed", ve.Error())
		return
	}

	var qe *errs.QualityThresholdError
	if errors.As(err, &qe) {
		writeError(w, http.StatusUnprocessableEntity, "QUALITY_THRESHOLD_NOT_MET", "generation quality below threshold", qe.Error())
		return
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		s.logger.Warn("generation aborted", zap.Error(err))
		writeError(w, http.StatusGatewayTimeout, "LLM_ERROR", "generation timed out", err.Error())
		return
	}

	s.logger.Error("generation failed", zap.Error(err))

	var le *errs.LLMError
	if errors.As(err, &le) {
		writeError(w, http.StatusInternalServerError, "LLM_ERROR", "language model request failed", err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error", err.Error())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message, detail string) {
	writeJSON(w, status, map[string]string{
		"error":  message,
		"detail": detail,
		"code":   code,
	})
}

// withRateLimit rejects requests over the configured rate with 429.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	if s.limiter == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			writeError(w, http.StatusTooManyRequests, "RATE_LIMITED", "rate limit exceeded",
				fmt.Sprintf("limit is %g requests per second", float64(s.limiter.Limit())))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withLogging records one structured line per request.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
