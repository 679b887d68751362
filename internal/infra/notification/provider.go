package notification

import (
	"context"
	"log/slog"

	"marketplace/config"
	"marketplace/internal/domain/service"

	"go.uber.org/fx"
)

// noopPushService is a no-op implementation when Firebase is not configured
type noopPushService struct {
	logger *slog.Logger
}

func (s *noopPushService) SendPush(ctx context.Context, token, title, body string, data map[string]string) error {
	s.logger.Debug("[NoopPush] Push delivery disabled, skipping",
		slog.String("title", title),
	)

	return nil
}

func (s *noopPushService) SendBatchPush(ctx context.Context, tokens []string, title, body string, data map[string]string) (int, int, []string, error) {
	s.logger.Debug("[NoopPush] Push delivery disabled, skipping batch",
		slog.Int("token_count", len(tokens)),
	)

	return 0, 0, nil, nil
}

// PushParams holds dependencies for PushService, injected by Fx
type PushParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPushService creates a PushService based on configuration.
// Without Firebase credentials the service degrades to a no-op so local
// development does not require a service account.
func NewPushService(params PushParams) (service.PushService, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Info("Firebase not configured, using no-op push service")

		return &noopPushService{logger: params.Logger}, nil
	}

	params.Logger.Info("Using Firebase push service",
		slog.String("project_id", cfg.ProjectID),
	)

	return NewFirebaseService(params.Ctx, cfg.CredentialsPath)
}
