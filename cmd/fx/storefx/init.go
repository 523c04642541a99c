package storefx

import (
	"time"

	"go.uber.org/fx"

	"tripscout/internal/repositories"
	"tripscout/pkg/config"
)

var Module = fx.Provide(
	provideSessionRepository)

func provideSessionRepository(cfg *config.AppConfig) repositories.SessionRepository {
	return repositories.NewInMemorySessionRepository(time.Duration(cfg.SessionTTLMin) * time.Minute)
}
