package services

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"quotation-system/internal/dto"
	"quotation-system/internal/repositories"
	apperrors "quotation-system/pkg/errors"
	"quotation-system/pkg/service"
	"quotation-system/pkg/utils"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.LoginResponseDTO, error)
	Refresh(ctx context.Context, payload dto.RefreshDTO) (*dto.TokenPairDTO, error)
	Me(ctx context.Context) (*dto.AuthUserDTO, error)
}

type AuthService struct {
	userRepo     repositories.UserRepositoryInterface
	sessionCache SessionCacheServiceInterface
	jwtService   service.JWTService
	logger       *zap.Logger
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	sessionCache SessionCacheServiceInterface,
	jwtService service.JWTService,
	logger *zap.Logger,
) AuthServiceInterface {
	return &AuthService{
		userRepo:     userRepo,
		sessionCache: sessionCache,
		jwtService:   jwtService,
		logger:       logger,
	}
}

func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.LoginResponseDTO, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, payload.Login)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewHttpError(http.StatusUnauthorized,
				"неверные учётные данные", apperrors.ErrInvalidCredentials)
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.NewHttpError(http.StatusForbidden,
			"учётная запись деактивирована", apperrors.ErrForbidden)
	}

	if err := utils.ComparePasswords(user.Password, payload.Password); err != nil {
		s.logger.Warn("Неудачная попытка входа", zap.String("login", payload.Login))
		return nil, apperrors.NewHttpError(http.StatusUnauthorized,
			"неверные учётные данные", apperrors.ErrInvalidCredentials)
	}

	access, refresh, err := s.jwtService.GenerateTokens(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponseDTO{
		User: dto.AuthUserDTO{
			ID:    user.ID,
			Fio:   user.Fio,
			Email: user.Email,
			Role:  user.Role,
		},
		Tokens: dto.TokenPairDTO{AccessToken: access, RefreshToken: refresh},
	}, nil
}

func (s *AuthService) Refresh(ctx context.Context, payload dto.RefreshDTO) (*dto.TokenPairDTO, error) {
	claims, err := s.jwtService.ValidateToken(payload.RefreshToken)
	if err != nil {
		return nil, apperrors.NewHttpError(http.StatusUnauthorized, err.Error(), err)
	}
	if !claims.IsRefreshToken {
		return nil, apperrors.NewHttpError(http.StatusUnauthorized,
			apperrors.ErrTokenIsNotRefresh.Error(), apperrors.ErrTokenIsNotRefresh)
	}

	// Роль перечитывается из хранилища: смена роли или деактивация
	// вступают в силу не позже, чем истечет access-токен.
	user, err := s.userRepo.FindUserByID(ctx, claims.UserID)
	if err != nil {
		return nil, apperrors.NewHttpError(http.StatusUnauthorized,
			"пользователь не найден", apperrors.ErrUnauthorized)
	}
	if !user.IsActive {
		return nil, apperrors.NewHttpError(http.StatusForbidden,
			"учётная запись деактивирована", apperrors.ErrForbidden)
	}

	access, refresh, err := s.jwtService.GenerateTokens(user.ID, user.Role)
	if err != nil {
		return nil, err
	}
	return &dto.TokenPairDTO{AccessToken: access, RefreshToken: refresh}, nil
}

// Me возвращает краткий профиль текущего пользователя через сессионный
// кеш, чтобы не ходить в БД на каждый запрос интерфейса.
func (s *AuthService) Me(ctx context.Context) (*dto.AuthUserDTO, error) {
	userID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, apperrors.NewHttpError(http.StatusUnauthorized,
			apperrors.ErrUnauthorized.Error(), apperrors.ErrUnauthorized)
	}
	return s.sessionCache.GetSessionUser(ctx, userID)
}
