package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"quotation-system/internal/dto"
	"quotation-system/internal/entities"
	"quotation-system/internal/events"
	"quotation-system/internal/repositories"
	"quotation-system/pkg/config"
	"quotation-system/pkg/constants"
	"quotation-system/pkg/contextkeys"
	"quotation-system/pkg/errors"
	"quotation-system/pkg/eventbus"
)

type AssignmentBoardServiceInterface interface {
	Load(ctx context.Context) error
	EnsureLoaded(ctx context.Context) error
	Refresh(ctx context.Context) error
	SetFilters(patch dto.BoardFilterDTO)
	Board() dto.AssignmentBoardDTO
	Workloads() []dto.UserWorkloadDTO
	Assign(ctx context.Context, payload dto.AssignItemsDTO) error
}

// boardSnapshot - согласованный кадр данных одной загрузки. Все
// производные представления доски считаются от одного кадра, поэтому
// счетчики загрузки никогда не смешивают позиции двух разных выборок.
type boardSnapshot struct {
	items     []entities.Item
	users     []entities.User
	customers []entities.Customer
	inquiries []entities.Inquiry
	loaded    bool
}

// AssignmentBoardService владеет жизненным циклом данных доски
// назначений: загрузка рабочего набора, состояние фильтра, пакетные
// команды назначения и производная модель чтения.
type AssignmentBoardService struct {
	itemRepo     repositories.ItemRepositoryInterface
	userRepo     repositories.UserRepositoryInterface
	customerRepo repositories.CustomerRepositoryInterface
	inquiryRepo  repositories.InquiryRepositoryInterface
	bus          *eventbus.Bus
	cfg          config.BoardConfig
	logger       *zap.Logger

	mu         sync.RWMutex
	snapshot   boardSnapshot
	filter     ItemFilter
	refreshing bool
}

func NewAssignmentBoardService(
	itemRepo repositories.ItemRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	customerRepo repositories.CustomerRepositoryInterface,
	inquiryRepo repositories.InquiryRepositoryInterface,
	bus *eventbus.Bus,
	cfg config.BoardConfig,
	logger *zap.Logger,
) AssignmentBoardServiceInterface {
	return &AssignmentBoardService{
		itemRepo:     itemRepo,
		userRepo:     userRepo,
		customerRepo: customerRepo,
		inquiryRepo:  inquiryRepo,
		bus:          bus,
		cfg:          cfg,
		logger:       logger,
	}
}

// Load выполняет четыре независимые выборки параллельно и применяет
// результат по принципу "все или ничего": при отказе любой из выборок
// предыдущий кадр остается без изменений, а наружу уходит одна
// агрегированная ошибка. Доска никогда не показывает позиции на фоне
// устаревших списков пользователей или клиентов.
func (s *AssignmentBoardService) Load(ctx context.Context) error {
	var (
		wg      sync.WaitGroup
		errsMux sync.Mutex
		errs    []string
		next    boardSnapshot
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

	addTask("позиции", func() error {
		items, err := s.itemRepo.ListItems(ctx, s.cfg.FetchLimit)
		if err == nil {
			next.items = items
		}
		return err
	})
	addTask("исполнители", func() error {
		users, err := s.userRepo.ListAssignees(ctx, constants.AssignableRoles, true)
		if err == nil {
			next.users = users
		}
		return err
	})
	addTask("клиенты", func() error {
		customers, err := s.customerRepo.ListCustomers(ctx, true, s.cfg.FetchLimit)
		if err == nil {
			next.customers = customers
		}
		return err
	})
	addTask("запросы", func() error {
		inquiries, err := s.inquiryRepo.ListInquiries(ctx, s.cfg.FetchLimit)
		if err == nil {
			next.inquiries = inquiries
		}
		return err
	})

	wg.Wait()

	if len(errs) > 0 {
		s.logger.Error("Ошибка загрузки данных доски назначений",
			zap.Strings("failures", errs))
		return errors.NewInternalError(
			"не удалось загрузить данные доски: " + strings.Join(errs, "; "))
	}

	next.loaded = true

	s.mu.Lock()
	s.snapshot = next
	s.mu.Unlock()

	return nil
}

// EnsureLoaded выполняет первую загрузку рабочего набора, если ее еще
// не было. При уже загруженном кадре повторной выборки не происходит:
// свежесть данных - забота Refresh и команд-мутаций.
func (s *AssignmentBoardService) EnsureLoaded(ctx context.Context) error {
	s.mu.RLock()
	loaded := s.snapshot.loaded
	s.mu.RUnlock()

	if loaded {
		return nil
	}
	return s.Load(ctx)
}

// Refresh повторяет Load под флагом refreshing, чтобы потребители могли
// отличить фоновое обновление после мутации от первой загрузки.
func (s *AssignmentBoardService) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.refreshing = true
	s.mu.Unlock()

	err := s.Load(ctx)

	s.mu.Lock()
	s.refreshing = false
	s.mu.Unlock()

	return err
}

// SetFilters накладывает частичное обновление на состояние фильтра.
// Повторной выборки не происходит: производные представления считаются
// от уже загруженного кадра при следующем чтении Board().
func (s *AssignmentBoardService) SetFilters(patch dto.BoardFilterDTO) {
	s.mu.Lock()
	s.filter = s.filter.Merge(patch)
	s.mu.Unlock()
}

// Board собирает композитную модель чтения от текущего кадра: фильтр
// сужает список позиций, группировка и разбиение считаются от суженного
// набора, а загрузка исполнителей - всегда от полного.
func (s *AssignmentBoardService) Board() dto.AssignmentBoardDTO {
	s.mu.RLock()
	snap := s.snapshot
	filter := s.filter
	refreshing := s.refreshing
	s.mu.RUnlock()

	filtered := make([]entities.Item, 0, len(snap.items))
	for _, item := range snap.items {
		if filter.Matches(item) {
			filtered = append(filtered, item)
		}
	}

	unassigned := make([]entities.Item, 0)
	assigned := make([]entities.Item, 0)
	for _, item := range filtered {
		if item.AssignedToID == nil {
			unassigned = append(unassigned, item)
		} else {
			assigned = append(assigned, item)
		}
	}

	return dto.AssignmentBoardDTO{
		UnassignedItems: mapItemsToDTO(unassigned),
		AssignedItems:   mapItemsToDTO(assigned),
		Groups:          GroupItemsByInquiry(filtered),
		Workloads:       AggregateWorkloads(snap.items, snap.users),
		Customers:       mapCustomersToDTO(snap.customers),
		Refreshing:      refreshing,
	}
}

// Workloads возвращает счетчики загрузки от полного кадра, без фильтра.
func (s *AssignmentBoardService) Workloads() []dto.UserWorkloadDTO {
	s.mu.RLock()
	snap := s.snapshot
	s.mu.RUnlock()
	return AggregateWorkloads(snap.items, snap.users)
}

// Assign выполняет пакетную команду назначения. AssigneeID = null
// означает снятие назначения со всего набора одним запросом. Команда
// атомарна: при отказе хранилища кадр не меняется вовсе, при успехе
// следом выполняется полная перезагрузка кадра.
func (s *AssignmentBoardService) Assign(ctx context.Context, payload dto.AssignItemsDTO) error {
	actorID, _ := ctx.Value(contextkeys.UserIDKey).(uint64)

	if payload.AssigneeID.Valid {
		assignee, err := s.userRepo.FindUserByID(ctx, payload.AssigneeID.Uint64)
		if err != nil {
			return fmt.Errorf("исполнитель не найден: %w", err)
		}
		if !constants.IsAssignableRole(assignee.Role) {
			return errors.NewInvalidInputError(
				"роль %s не может быть исполнителем позиций", assignee.Role)
		}
		if !assignee.IsActive {
			return errors.NewInvalidInputError("исполнитель деактивирован")
		}

		if err := s.itemRepo.AssignItems(ctx, payload.ItemIDs, assignee.ID); err != nil {
			s.logger.Error("Ошибка пакетного назначения позиций",
				zap.Uint64s("item_ids", payload.ItemIDs),
				zap.Uint64("assignee_id", assignee.ID),
				zap.Error(err))
			return err
		}

		s.bus.Publish(ctx, events.ItemsAssigned{
			ItemIDs:    payload.ItemIDs,
			AssigneeID: assignee.ID,
			ActorID:    actorID,
		})
	} else {
		if err := s.itemRepo.UnassignItems(ctx, payload.ItemIDs); err != nil {
			s.logger.Error("Ошибка пакетного снятия назначения",
				zap.Uint64s("item_ids", payload.ItemIDs),
				zap.Error(err))
			return err
		}

		s.bus.Publish(ctx, events.ItemsUnassigned{
			ItemIDs: payload.ItemIDs,
			ActorID: actorID,
		})
	}

	return s.Refresh(ctx)
}
