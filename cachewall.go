package cachewall

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Handler is the http.Handler realization of the request-handler
// component. It owns no upstream-specific configuration: the upstream is
// named per-request via the "url" query parameter.
type Handler struct {
	Engine *Engine
	Log    zerolog.Logger
	// Now is overridable for tests; defaults to time.Now.
	Now func() time.Time
}

// NewHandler wires an Engine into an http.Handler.
func NewHandler(engine *Engine, logger zerolog.Logger) *Handler {
	return &Handler{Engine: engine, Log: logger, Now: time.Now}
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	correlationID := uuid.New().String()
	w.Header().Set("X-Correlation-Id", correlationID)
	logger := h.Log.With().Str("correlation_id", correlationID).Logger()

	logger.Debug().Str("method", r.Method).Str("host", r.Host).Msg("request received")

	descriptor, err := NewDescriptor(r)
	if err != nil {
		logger.Warn().Err(err).Msg("rejecting malformed request")
		writeError(w, err)
		return
	}

	now := h.Now()
	result, err := h.Engine.Serve(r.Context(), descriptor, now)
	if err != nil {
		logger.Error().Err(err).Str("tenant", descriptor.Tenant).Str("target_url", descriptor.TargetURL).Msg("serve failed")
		writeError(w, err)
		return
	}

	logger.Info().
		Str("tenant", descriptor.Tenant).
		Str("target_url", descriptor.TargetURL).
		Str("fingerprint", result.Fingerprint).
		Str("status", string(result.Status)).
		Int("status_code", result.StatusCode).
		Msg("reply emitted")

	writeResult(w, result, descriptor.TargetURL, now)
}
