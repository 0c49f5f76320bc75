package services

import (
	"context"
	"log/slog"
	"time"

	"richmondtech/internal/domain"
)

type healthService struct {
	store          domain.Pinger
	model          domain.ModelClient
	logger         *slog.Logger
	contextTimeout time.Duration
}

func NewHealthService(store domain.Pinger, model domain.ModelClient, logger *slog.Logger, timeout time.Duration) domain.HealthService {
	return &healthService{
		store:          store,
		model:          model,
		logger:         logger,
		contextTimeout: timeout,
	}
}

// Check pings the record store and reports model availability. A store
// failure degrades overall status; a disabled model does not.
func (s *healthService) Check(ctx context.Context) *domain.Health {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	h := &domain.Health{
		Status:     "ok",
		Components: map[string]string{},
	}

	if err := s.store.Ping(ctx); err != nil {
		s.logger.Warn("record store ping failed", "error", err)
		h.Components["record_store"] = "unreachable"
		h.Status = "degraded"
	} else {
		h.Components["record_store"] = "ok"
	}

	if s.model.Enabled() {
		h.Components["model_service"] = "configured"
	} else {
		h.Components["model_service"] = "disabled"
	}
	return h
}
