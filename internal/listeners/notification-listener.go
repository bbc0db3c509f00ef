package listeners

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"quotation-system/internal/events"
	"quotation-system/internal/repositories"
	"quotation-system/pkg/eventbus"
)

// NotificationListener реагирует на доменные события и пишет
// уведомления в журнал.
type NotificationListener struct {
	userRepo repositories.UserRepositoryInterface
	logger   *zap.Logger
}

func NewNotificationListener(
	userRepo repositories.UserRepositoryInterface,
	logger *zap.Logger,
) *NotificationListener {
	return &NotificationListener{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Register подписывает слушателя на шину событий.
func (l *NotificationListener) Register(bus *eventbus.Bus) {
	bus.Subscribe(events.ItemsAssignedName, l.onItemsAssigned)
	bus.Subscribe(events.ItemsUnassignedName, l.onItemsUnassigned)
	bus.Subscribe(events.QuoteCreatedName, l.onQuoteCreated)
}

func (l *NotificationListener) onItemsAssigned(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.ItemsAssigned)
	if !ok {
		return fmt.Errorf("неожиданный тип события: %T", event)
	}

	assignee, err := l.userRepo.FindUserByID(ctx, e.AssigneeID)
	if err != nil {
		return fmt.Errorf("исполнитель события не найден: %w", err)
	}

	l.logger.Info("Позиции назначены исполнителю",
		zap.Uint64s("item_ids", e.ItemIDs),
		zap.String("assignee", assignee.Fio),
		zap.Uint64("actor_id", e.ActorID),
	)
	return nil
}

func (l *NotificationListener) onItemsUnassigned(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.ItemsUnassigned)
	if !ok {
		return fmt.Errorf("неожиданный тип события: %T", event)
	}

	l.logger.Info("С позиций снято назначение",
		zap.Uint64s("item_ids", e.ItemIDs),
		zap.Uint64("actor_id", e.ActorID),
	)
	return nil
}

func (l *NotificationListener) onQuoteCreated(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.QuoteCreated)
	if !ok {
		return fmt.Errorf("неожиданный тип события: %T", event)
	}

	l.logger.Info("Сформировано коммерческое предложение",
		zap.Uint64("quote_id", e.QuoteID),
		zap.Uint64("inquiry_id", e.InquiryID),
		zap.Uint64("creator_id", e.CreatorID),
	)
	return nil
}
