package controllersfx

import (
	"go.uber.org/fx"

	"tripscout/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewSessionController),
	fx.Provide(controllers.NewPlannerController),
	fx.Provide(controllers.NewItineraryController))
