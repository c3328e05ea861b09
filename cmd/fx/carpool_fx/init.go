package carpool_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"voyage/internal/repositories"
	"voyage/internal/services"
)

var Module = fx.Provide(
	provideCarpoolRepo, provideCarpoolService)

func provideCarpoolRepo(db *gorm.DB) repositories.ICarpoolRepository {
	return repositories.NewCarpoolRepository(db)
}

func provideCarpoolService(
	carpoolRepo repositories.ICarpoolRepository,
	tripRepo repositories.ITripRepository,
	log *zap.Logger,
) services.CarpoolServiceInterface {
	return services.NewCarpoolService(carpoolRepo, tripRepo, log)
}
