package clientfx

import (
	"go.uber.org/fx"

	"tripscout/internal/services"
	"tripscout/pkg/config"
)

var Module = fx.Provide(
	provideRecommenderClient)

func provideRecommenderClient(cfg *config.AppConfig) services.RecommenderClientInterface {
	return services.NewHTTPRecommenderClient(cfg.RecommenderURL)
}
