package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"quotation-system/internal/dto"
	"quotation-system/internal/repositories"
	"quotation-system/pkg/constants"
)

type SessionCacheServiceInterface interface {
	GetSessionUser(ctx context.Context, userID uint64) (*dto.AuthUserDTO, error)
	InvalidateSessionUser(ctx context.Context, userID uint64) error
}

// SessionCacheService кеширует краткий профиль пользователя на время
// сессии. Конкурентные промахи по одному и тому же ключу схлопываются
// в один поход в БД через singleflight, а не в N одинаковых запросов.
type SessionCacheService struct {
	cacheRepo repositories.CacheRepositoryInterface
	userRepo  repositories.UserRepositoryInterface
	ttl       time.Duration
	group     singleflight.Group
	logger    *zap.Logger
}

func NewSessionCacheService(
	cacheRepo repositories.CacheRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	ttl time.Duration,
	logger *zap.Logger,
) SessionCacheServiceInterface {
	return &SessionCacheService{
		cacheRepo: cacheRepo,
		userRepo:  userRepo,
		ttl:       ttl,
		logger:    logger,
	}
}

func (s *SessionCacheService) GetSessionUser(ctx context.Context, userID uint64) (*dto.AuthUserDTO, error) {
	key := fmt.Sprintf(constants.CacheKeySessionUser, userID)

	cached, err := s.cacheRepo.Get(ctx, key)
	if err == nil {
		var user dto.AuthUserDTO
		if err := json.Unmarshal([]byte(cached), &user); err == nil {
			return &user, nil
		}
		// Битую запись выбрасываем и перечитываем из БД.
		_ = s.cacheRepo.Del(ctx, key)
	} else if !errors.Is(err, repositories.ErrCacheMiss) {
		s.logger.Warn("Ошибка чтения сессионного кеша",
			zap.String("key", key), zap.Error(err))
	}

	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		user, err := s.userRepo.FindUserByID(ctx, userID)
		if err != nil {
			return nil, err
		}

		out := &dto.AuthUserDTO{
			ID:    user.ID,
			Fio:   user.Fio,
			Email: user.Email,
			Role:  user.Role,
		}

		if raw, err := json.Marshal(out); err == nil {
			if err := s.cacheRepo.Set(ctx, key, string(raw), s.ttl); err != nil {
				s.logger.Warn("Ошибка записи сессионного кеша",
					zap.String("key", key), zap.Error(err))
			}
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*dto.AuthUserDTO), nil
}

func (s *SessionCacheService) InvalidateSessionUser(ctx context.Context, userID uint64) error {
	return s.cacheRepo.Del(ctx, fmt.Sprintf(constants.CacheKeySessionUser, userID))
}
