package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"quotation-system/internal/dto"
	"quotation-system/internal/repositories"
	"quotation-system/pkg/errors"
)

type DashboardServiceInterface interface {
	GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error)
}

type DashboardService struct {
	dashboardRepo repositories.DashboardRepositoryInterface
	board         AssignmentBoardServiceInterface
	logger        *zap.Logger
}

func NewDashboardService(
	dashboardRepo repositories.DashboardRepositoryInterface,
	board AssignmentBoardServiceInterface,
	logger *zap.Logger,
) DashboardServiceInterface {
	return &DashboardService{
		dashboardRepo: dashboardRepo,
		board:         board,
		logger:        logger,
	}
}

// GetStats собирает сводку аналитики параллельными запросами. Как и у
// доски назначений, результат применяется целиком либо не применяется
// вовсе.
func (s *DashboardService) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	var (
		wg      sync.WaitGroup
		errsMux sync.Mutex
		errs    []string
		stats   dto.DashboardStatsDTO
	)

	addTask := func(name string, fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				errsMux.Lock()
				errs = append(errs, fmt.Sprintf("%s: %v", name, err))
				errsMux.Unlock()
			}
		}()
	}

	addTask("всего позиций", func() error {
		count, err := s.dashboardRepo.CountItems(ctx)
		if err == nil {
			stats.TotalItems = count
		}
		return err
	})
	addTask("без исполнителя", func() error {
		count, err := s.dashboardRepo.CountUnassignedItems(ctx)
		if err == nil {
			stats.UnassignedItems = count
		}
		return err
	})
	addTask("по статусам", func() error {
		rows, err := s.dashboardRepo.CountItemsByStatus(ctx)
		if err == nil {
			stats.CountByStatus = rows
		}
		return err
	})
	addTask("по приоритетам", func() error {
		rows, err := s.dashboardRepo.CountItemsByPriority(ctx)
		if err == nil {
			stats.CountByPriority = rows
		}
		return err
	})
	addTask("по исполнителям", func() error {
		rows, err := s.dashboardRepo.CountItemsByAssignee(ctx)
		if err == nil {
			stats.CountByAssignee = rows
		}
		return err
	})
	addTask("кадр доски", func() error {
		return s.board.EnsureLoaded(ctx)
	})

	wg.Wait()

	if len(errs) > 0 {
		s.logger.Error("Ошибка сбора аналитики", zap.Strings("failures", errs))
		return nil, errors.NewInternalError(
			"не удалось собрать аналитику: " + strings.Join(errs, "; "))
	}

	stats.Workloads = s.board.Workloads()
	return &stats, nil
}
