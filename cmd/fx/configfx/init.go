package configfx

import (
	"go.uber.org/fx"

	"tripscout/pkg/config"
)

var Module = fx.Provide(
	config.GetConfig)
