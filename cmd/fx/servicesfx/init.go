package servicesfx

import (
	"go.uber.org/fx"

	"tripscout/internal/services"
)

var Module = fx.Options(
	fx.Provide(services.NewSessionService),
	fx.Provide(services.NewPlannerService),
	fx.Provide(services.NewItineraryService))
