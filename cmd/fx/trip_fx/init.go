package trip_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"voyage/internal/repositories"
	"voyage/internal/services"
)

var Module = fx.Provide(
	provideTripRepo, provideTripService,
	provideTripRequestRepo, provideTripRequestService)

func provideTripRepo(db *gorm.DB) repositories.ITripRepository {
	return repositories.NewTripRepository(db)
}

func provideTripService(tripRepo repositories.ITripRepository, log *zap.Logger) services.TripServiceInterface {
	return services.NewTripService(tripRepo, log)
}

func provideTripRequestRepo(db *gorm.DB) repositories.ITripRequestRepository {
	return repositories.NewTripRequestRepository(db)
}

func provideTripRequestService(
	requestRepo repositories.ITripRequestRepository,
	tripRepo repositories.ITripRepository,
	log *zap.Logger,
) services.TripRequestServiceInterface {
	return services.NewTripRequestService(requestRepo, tripRepo, log)
}
