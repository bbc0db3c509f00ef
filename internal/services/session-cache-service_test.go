package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"quotation-system/internal/entities"
	"quotation-system/internal/repositories"
	"quotation-system/pkg/constants"
)

func newSessionCacheFixture(userRepo *stubUserRepo) (SessionCacheServiceInterface, repositories.CacheRepositoryInterface) {
	cacheRepo := repositories.NewMemoryCacheRepository()
	svc := NewSessionCacheService(cacheRepo, userRepo, time.Minute, zap.NewNop())
	return svc, cacheRepo
}

func TestSessionCache_SecondReadHitsCache(t *testing.T) {
	userRepo := &stubUserRepo{users: []entities.User{
		{ID: 3, Fio: "Смирнов Олег", Email: "smirnov@example.com", Role: constants.RoleVP, IsActive: true},
	}}
	svc, _ := newSessionCacheFixture(userRepo)

	first, err := svc.GetSessionUser(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Смирнов Олег", first.Fio)
	assert.Equal(t, 1, userRepo.findCalls)

	// Повторное чтение обслуживается из кеша без похода в БД.
	second, err := svc.GetSessionUser(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, userRepo.findCalls)
}

func TestSessionCache_InvalidateForcesReload(t *testing.T) {
	userRepo := &stubUserRepo{users: []entities.User{
		{ID: 3, Fio: "Смирнов Олег", Email: "smirnov@example.com", Role: constants.RoleVP, IsActive: true},
	}}
	svc, _ := newSessionCacheFixture(userRepo)

	_, err := svc.GetSessionUser(context.Background(), 3)
	require.NoError(t, err)

	require.NoError(t, svc.InvalidateSessionUser(context.Background(), 3))

	_, err = svc.GetSessionUser(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 2, userRepo.findCalls)
}

func TestSessionCache_UnknownUser(t *testing.T) {
	svc, _ := newSessionCacheFixture(&stubUserRepo{})

	_, err := svc.GetSessionUser(context.Background(), 42)
	assert.Error(t, err)
}

func TestSessionCache_CorruptEntryIsDiscarded(t *testing.T) {
	userRepo := &stubUserRepo{users: []entities.User{
		{ID: 3, Fio: "Смирнов Олег", Email: "smirnov@example.com", Role: constants.RoleVP, IsActive: true},
	}}
	svc, cacheRepo := newSessionCacheFixture(userRepo)

	key := "session_user:3"
	require.NoError(t, cacheRepo.Set(context.Background(), key, "{насыпь", time.Minute))

	user, err := svc.GetSessionUser(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), user.ID)
	assert.Equal(t, 1, userRepo.findCalls)
}
