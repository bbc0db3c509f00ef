package services

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"quotation-system/internal/dto"
	"quotation-system/internal/entities"
	"quotation-system/internal/events"
	"quotation-system/internal/repositories"
	"quotation-system/pkg/config"
	"quotation-system/pkg/constants"
	apperrors "quotation-system/pkg/errors"
	"quotation-system/pkg/eventbus"
	"quotation-system/pkg/utils"
)

type QuoteServiceInterface interface {
	GetQuotes(ctx context.Context, limit, offset uint64) ([]dto.QuoteDTO, uint64, error)
	FindQuote(ctx context.Context, id uint64) (*dto.QuoteDTO, error)
	CreateQuote(ctx context.Context, payload dto.CreateQuoteDTO) (*dto.QuoteDTO, error)
}

type QuoteService struct {
	storage     *pgxpool.Pool
	quoteRepo   repositories.QuoteRepositoryInterface
	itemRepo    repositories.ItemRepositoryInterface
	inquiryRepo repositories.InquiryRepositoryInterface
	bus         *eventbus.Bus
	cfg         config.QuoteConfig
	logger      *zap.Logger
}

func NewQuoteService(
	storage *pgxpool.Pool,
	quoteRepo repositories.QuoteRepositoryInterface,
	itemRepo repositories.ItemRepositoryInterface,
	inquiryRepo repositories.InquiryRepositoryInterface,
	bus *eventbus.Bus,
	cfg config.QuoteConfig,
	logger *zap.Logger,
) QuoteServiceInterface {
	return &QuoteService{
		storage:     storage,
		quoteRepo:   quoteRepo,
		itemRepo:    itemRepo,
		inquiryRepo: inquiryRepo,
		bus:         bus,
		cfg:         cfg,
		logger:      logger,
	}
}

func (s *QuoteService) GetQuotes(ctx context.Context, limit, offset uint64) ([]dto.QuoteDTO, uint64, error) {
	quotes, total, err := s.quoteRepo.GetQuotes(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	list := make([]dto.QuoteDTO, 0, len(quotes))
	for _, q := range quotes {
		list = append(list, mapQuoteToDTO(q))
	}
	return list, total, nil
}

func (s *QuoteService) FindQuote(ctx context.Context, id uint64) (*dto.QuoteDTO, error) {
	quote, err := s.quoteRepo.FindQuote(ctx, id)
	if err != nil {
		return nil, err
	}
	out := mapQuoteToDTO(*quote)
	return &out, nil
}

// CreateQuote формирует коммерческое предложение по запросу. Допускается
// только когда все позиции запроса утверждены; итог предложения - сумма
// итоговых стоимостей позиций. Вставка предложения и перевод позиций в
// QUOTED выполняются в одной транзакции.
func (s *QuoteService) CreateQuote(ctx context.Context, payload dto.CreateQuoteDTO) (*dto.QuoteDTO, error) {
	creatorID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	inquiry, err := s.inquiryRepo.FindInquiry(ctx, payload.InquiryID)
	if err != nil {
		return nil, err
	}

	items, err := s.itemRepo.ListItemsByInquiry(ctx, payload.InquiryID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, apperrors.NewInvalidInputError("в запросе нет позиций для предложения")
	}

	var total float64
	itemIDs := make([]uint64, 0, len(items))
	for _, item := range items {
		if item.Status != constants.ItemStatusApproved {
			return nil, apperrors.NewInvalidInputError(
				"позиция %q еще не утверждена (статус %s)", item.Name, item.Status)
		}
		if item.Costing == nil {
			return nil, apperrors.NewInvalidInputError(
				"у позиции %q отсутствует расчет стоимости", item.Name)
		}
		total += item.Costing.TotalCost
		itemIDs = append(itemIDs, item.ID)
	}

	var created *entities.Quote
	err = repositories.WithTx(ctx, s.storage, func(tx pgx.Tx) error {
		number, err := s.quoteRepo.NextQuoteNumber(ctx, tx)
		if err != nil {
			return err
		}

		quote := entities.Quote{
			InquiryID:  payload.InquiryID,
			Number:     fmt.Sprintf("Q-%d-%05d", time.Now().Year(), number),
			Currency:   s.cfg.Currency,
			Total:      total,
			ValidUntil: time.Now().Add(s.cfg.ValidFor),
			CreatorID:  creatorID,
		}
		created, err = s.quoteRepo.CreateQuoteInTx(ctx, tx, quote)
		if err != nil {
			return err
		}

		return s.itemRepo.UpdateItemsStatusInTx(ctx, tx, itemIDs, constants.ItemStatusQuoted)
	})
	if err != nil {
		s.logger.Error("Ошибка формирования предложения",
			zap.Uint64("inquiry_id", payload.InquiryID), zap.Error(err))
		return nil, err
	}

	s.bus.Publish(ctx, events.QuoteCreated{
		QuoteID:   created.ID,
		InquiryID: created.InquiryID,
		CreatorID: creatorID,
	})

	out := mapQuoteToDTO(*created)
	out.CustomerName = inquiry.CustomerName
	return &out, nil
}

func mapQuoteToDTO(q entities.Quote) dto.QuoteDTO {
	return dto.QuoteDTO{
		ID:         q.ID,
		InquiryID:  q.InquiryID,
		Number:     q.Number,
		Currency:   q.Currency,
		Total:      q.Total,
		ValidUntil: q.ValidUntil.Format("02.01.2006"),
		CreatedAt:  formatTime(q.CreatedAt),
	}
}
