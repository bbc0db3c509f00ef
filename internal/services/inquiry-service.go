package services

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"quotation-system/internal/dto"
	"quotation-system/internal/repositories"
	"quotation-system/pkg/utils"
)

type InquiryServiceInterface interface {
	GetInquiries(ctx context.Context, limit, offset uint64) (dto.InquiryListDTO, error)
	FindInquiry(ctx context.Context, id uint64) (*dto.InquiryDTO, error)
	CreateInquiry(ctx context.Context, payload dto.CreateInquiryDTO) (*dto.InquiryDTO, error)
	UpdateInquiry(ctx context.Context, id uint64, payload dto.UpdateInquiryDTO) (*dto.InquiryDTO, error)
	DeleteInquiry(ctx context.Context, id uint64) error
}

type InquiryService struct {
	storage     *pgxpool.Pool
	inquiryRepo repositories.InquiryRepositoryInterface
	itemRepo    repositories.ItemRepositoryInterface
	logger      *zap.Logger
}

func NewInquiryService(
	storage *pgxpool.Pool,
	inquiryRepo repositories.InquiryRepositoryInterface,
	itemRepo repositories.ItemRepositoryInterface,
	logger *zap.Logger,
) InquiryServiceInterface {
	return &InquiryService{
		storage:     storage,
		inquiryRepo: inquiryRepo,
		itemRepo:    itemRepo,
		logger:      logger,
	}
}

func (s *InquiryService) GetInquiries(ctx context.Context, limit, offset uint64) (dto.InquiryListDTO, error) {
	inquiries, total, err := s.inquiryRepo.GetInquiries(ctx, limit, offset)
	if err != nil {
		return dto.InquiryListDTO{}, err
	}

	list := make([]dto.InquiryDTO, 0, len(inquiries))
	for _, inq := range inquiries {
		list = append(list, mapInquiryToDTO(inq))
	}
	return dto.InquiryListDTO{List: list, TotalCount: total}, nil
}

func (s *InquiryService) FindInquiry(ctx context.Context, id uint64) (*dto.InquiryDTO, error) {
	inquiry, err := s.inquiryRepo.FindInquiry(ctx, id)
	if err != nil {
		return nil, err
	}

	items, err := s.itemRepo.ListItemsByInquiry(ctx, id)
	if err != nil {
		return nil, err
	}

	out := mapInquiryToDTO(*inquiry)
	out.Items = mapItemsToDTO(items)
	return &out, nil
}

// CreateInquiry создает запрос вместе с позициями в одной транзакции.
// Позиции рождаются в статусе PENDING и без исполнителя.
func (s *InquiryService) CreateInquiry(ctx context.Context, payload dto.CreateInquiryDTO) (*dto.InquiryDTO, error) {
	creatorID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	var inquiryID uint64
	err = repositories.WithTx(ctx, s.storage, func(tx pgx.Tx) error {
		id, err := s.inquiryRepo.CreateInquiryInTx(ctx, tx, creatorID, payload)
		if err != nil {
			return err
		}
		inquiryID = id
		return nil
	})
	if err != nil {
		s.logger.Error("Ошибка создания запроса", zap.Error(err))
		return nil, err
	}

	return s.FindInquiry(ctx, inquiryID)
}

func (s *InquiryService) UpdateInquiry(ctx context.Context, id uint64, payload dto.UpdateInquiryDTO) (*dto.InquiryDTO, error) {
	if err := s.inquiryRepo.UpdateInquiry(ctx, id, payload); err != nil {
		return nil, err
	}
	return s.FindInquiry(ctx, id)
}

func (s *InquiryService) DeleteInquiry(ctx context.Context, id uint64) error {
	return s.inquiryRepo.SoftDeleteInquiry(ctx, id)
}
