package controllers_fx

import (
	"go.uber.org/fx"

	"voyage/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewTripController),
	fx.Provide(controllers.NewCarpoolController),
	fx.Provide(controllers.NewTripRequestController),
	fx.Provide(controllers.NewAIController),
	fx.Provide(controllers.NewWeatherController))
