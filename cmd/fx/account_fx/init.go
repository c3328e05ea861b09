package account_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"voyage/internal/config"
	"voyage/internal/repositories"
	"voyage/internal/services"
	"voyage/pkg/utils"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo, provideTokenIssuer, provideProfileService)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideTokenIssuer(cfg config.Config) *utils.TokenIssuer {
	return utils.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	blacklist repositories.TokenBlacklist,
	tokens *utils.TokenIssuer,
	log *zap.Logger,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, blacklist, tokens, log)
}

func provideProfileService(
	accountRepo repositories.AccountRepository,
	tripRepo repositories.ITripRepository,
	log *zap.Logger,
) services.ProfileServiceInterface {
	return services.NewProfileService(accountRepo, tripRepo, log)
}
