package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"voyage/internal/models/db_models"
	"voyage/internal/models/request_models"
	"voyage/internal/models/response_models"
	"voyage/internal/repositories"
	"voyage/pkg/utils"
)

type AccountServiceInterface interface {
	SignUp(ctx context.Context, request request_models.SignUpRequest) (response_models.AuthResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (response_models.AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (response_models.AuthResponse, error)
	Logout(ctx context.Context, claims *utils.Claims) error
	Me(ctx context.Context, id uuid.UUID) (response_models.UserResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	blacklist   repositories.TokenBlacklist
	tokens      *utils.TokenIssuer
	log         *zap.Logger
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	blacklist repositories.TokenBlacklist,
	tokens *utils.TokenIssuer,
	log *zap.Logger,
) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		blacklist:   blacklist,
		tokens:      tokens,
		log:         log.Named("account"),
	}
}

func (a *AccountService) SignUp(ctx context.Context, request request_models.SignUpRequest) (response_models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(request.Email))

	existing, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return response_models.AuthResponse{}, utils.ErrDatabaseError
	}
	if existing != nil {
		return response_models.AuthResponse{}, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return response_models.AuthResponse{}, err
	}

	account := &db_models.Account{
		Name:         strings.TrimSpace(request.Name),
		Email:        email,
		PasswordHash: hashedPassword,
		Preferences:  preferencesJSON(request.Preferences),
		Role:         db_models.RoleUser,
	}

	if err := a.accountRepo.Insert(ctx, account); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return response_models.AuthResponse{}, utils.ErrEmailAlreadyExists
		}
		a.log.Error("inserting account", zap.Error(err))
		return response_models.AuthResponse{}, utils.ErrDatabaseError
	}

	return a.issue(*account)
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (response_models.AuthResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, strings.TrimSpace(request.Email))
	if err != nil {
		return response_models.AuthResponse{}, utils.ErrDatabaseError
	}

	// Unknown email and wrong password look the same to the caller.
	if account == nil {
		return response_models.AuthResponse{}, utils.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return response_models.AuthResponse{}, utils.ErrInvalidCredentials
	}

	return a.issue(*account)
}

func (a *AccountService) Refresh(ctx context.Context, refreshToken string) (response_models.AuthResponse, error) {
	claims, err := a.tokens.ValidateToken(refreshToken)
	if err != nil {
		return response_models.AuthResponse{}, err
	}
	if claims.TokenType != utils.TokenTypeRefresh {
		return response_models.AuthResponse{}, utils.ErrInvalidToken
	}

	id, _ := claims.UserID()
	account, err := a.accountRepo.FindById(ctx, id)
	if err != nil {
		return response_models.AuthResponse{}, utils.ErrDatabaseError
	}
	if account == nil {
		return response_models.AuthResponse{}, utils.ErrInvalidToken
	}

	// Refresh tokens are single use.
	claimed, err := a.blacklist.RevokeOnce(ctx, claims.ID, remaining(claims))
	if err != nil {
		a.log.Error("revoking refresh token", zap.String("jti", claims.ID), zap.Error(err))
		return response_models.AuthResponse{}, utils.ErrInvalidToken
	}
	if !claimed {
		return response_models.AuthResponse{}, utils.ErrInvalidToken
	}

	return a.issue(*account)
}

func (a *AccountService) Logout(ctx context.Context, claims *utils.Claims) error {
	if claims == nil {
		return utils.ErrInvalidToken
	}
	if err := a.blacklist.Revoke(ctx, claims.ID, remaining(claims)); err != nil {
		a.log.Error("revoking access token", zap.String("jti", claims.ID), zap.Error(err))
		return err
	}
	return nil
}

func (a *AccountService) Me(ctx context.Context, id uuid.UUID) (response_models.UserResponse, error) {
	account, err := a.accountRepo.FindById(ctx, id)
	if err != nil {
		return response_models.UserResponse{}, utils.ErrDatabaseError
	}
	if account == nil {
		return response_models.UserResponse{}, utils.ErrAccountNotFound
	}
	return response_models.NewUserResponse(*account), nil
}

func (a *AccountService) issue(account db_models.Account) (response_models.AuthResponse, error) {
	pair, err := a.tokens.CreatePair(account.ID, account.Role)
	if err != nil {
		return response_models.AuthResponse{}, err
	}
	return response_models.AuthResponse{
		Token:   pair.Access,
		Refresh: pair.Refresh,
		User:    response_models.NewUserResponse(account),
	}, nil
}

func remaining(claims *utils.Claims) time.Duration {
	if claims.ExpiresAt == nil {
		return 0
	}
	return time.Until(claims.ExpiresAt.Time)
}

// preferencesJSON keeps only JSON objects; anything else is stored as {}.
func preferencesJSON(raw json.RawMessage) datatypes.JSON {
	var obj map[string]any
	if len(raw) == 0 || json.Unmarshal(raw, &obj) != nil || obj == nil {
		return datatypes.JSON("{}")
	}
	return datatypes.JSON(raw)
}
