package services

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"quotation-system/internal/dto"
	"quotation-system/internal/entities"
	"quotation-system/internal/repositories"
	"quotation-system/pkg/constants"
	apperrors "quotation-system/pkg/errors"
	"quotation-system/pkg/utils"
)

type ItemServiceInterface interface {
	GetItems(ctx context.Context, limit uint64) ([]dto.ItemDTO, error)
	FindItem(ctx context.Context, id uint64) (*dto.ItemDTO, error)
	StartProgress(ctx context.Context, itemID uint64) (*dto.ItemDTO, error)
	SaveCosting(ctx context.Context, itemID uint64, payload dto.SaveCostingDTO) (*dto.ItemDTO, error)
	ApproveItem(ctx context.Context, itemID uint64) (*dto.ItemDTO, error)
}

type ItemService struct {
	itemRepo repositories.ItemRepositoryInterface
	logger   *zap.Logger
}

func NewItemService(itemRepo repositories.ItemRepositoryInterface, logger *zap.Logger) ItemServiceInterface {
	return &ItemService{itemRepo: itemRepo, logger: logger}
}

func (s *ItemService) GetItems(ctx context.Context, limit uint64) ([]dto.ItemDTO, error) {
	items, err := s.itemRepo.ListItems(ctx, limit)
	if err != nil {
		return nil, err
	}
	return mapItemsToDTO(items), nil
}

func (s *ItemService) FindItem(ctx context.Context, id uint64) (*dto.ItemDTO, error) {
	item, err := s.itemRepo.FindItem(ctx, id)
	if err != nil {
		return nil, err
	}
	out := mapItemToDTO(*item)
	return &out, nil
}

// StartProgress переводит позицию в работу. Доступно только назначенному
// исполнителю позиции.
func (s *ItemService) StartProgress(ctx context.Context, itemID uint64) (*dto.ItemDTO, error) {
	item, err := s.itemRepo.FindItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if err := s.requireAssignee(ctx, item); err != nil {
		return nil, err
	}
	if !constants.CanTransitItemStatus(item.Status, constants.ItemStatusInProgress) {
		return nil, apperrors.NewInvalidInputError(
			"недопустимый переход статуса: %s -> %s", item.Status, constants.ItemStatusInProgress)
	}

	if err := s.itemRepo.UpdateItemStatus(ctx, itemID, constants.ItemStatusInProgress); err != nil {
		return nil, err
	}
	return s.FindItem(ctx, itemID)
}

// SaveCosting сохраняет расчет стоимости и переводит позицию в COSTED.
// Итоговые суммы считает сервис: себестоимость единицы - сумма трех
// составляющих, итог - себестоимость с наценкой, умноженная на количество.
func (s *ItemService) SaveCosting(ctx context.Context, itemID uint64, payload dto.SaveCostingDTO) (*dto.ItemDTO, error) {
	item, err := s.itemRepo.FindItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if err := s.requireAssignee(ctx, item); err != nil {
		return nil, err
	}
	if !constants.CanTransitItemStatus(item.Status, constants.ItemStatusCosted) && item.Status != constants.ItemStatusCosted {
		return nil, apperrors.NewInvalidInputError(
			"расчет нельзя сохранить в статусе %s", item.Status)
	}

	unitCost := payload.MaterialCost + payload.LaborCost + payload.OverheadCost
	totalCost := unitCost * (1 + payload.MarginPct/100) * item.Quantity

	costing := entities.Costing{
		ItemID:       itemID,
		MaterialCost: payload.MaterialCost,
		LaborCost:    payload.LaborCost,
		OverheadCost: payload.OverheadCost,
		MarginPct:    payload.MarginPct,
		UnitCost:     unitCost,
		TotalCost:    totalCost,
	}
	if err := s.itemRepo.SaveCosting(ctx, itemID, costing); err != nil {
		s.logger.Error("Ошибка сохранения расчета стоимости",
			zap.Uint64("item_id", itemID), zap.Error(err))
		return nil, err
	}
	return s.FindItem(ctx, itemID)
}

// ApproveItem утверждает расчет позиции. Доступно ролям VPP и ADMIN.
func (s *ItemService) ApproveItem(ctx context.Context, itemID uint64) (*dto.ItemDTO, error) {
	role, err := utils.GetUserRoleFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if role != constants.RoleVPP && role != constants.RoleAdmin {
		return nil, apperrors.NewHttpError(http.StatusForbidden,
			"утверждать расчеты может только руководитель", apperrors.ErrForbidden)
	}

	item, err := s.itemRepo.FindItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !constants.CanTransitItemStatus(item.Status, constants.ItemStatusApproved) {
		return nil, apperrors.NewInvalidInputError(
			"утвердить можно только рассчитанную позицию, текущий статус: %s", item.Status)
	}

	if err := s.itemRepo.UpdateItemStatus(ctx, itemID, constants.ItemStatusApproved); err != nil {
		return nil, err
	}
	return s.FindItem(ctx, itemID)
}

// requireAssignee пропускает назначенного исполнителя позиции и ADMIN.
func (s *ItemService) requireAssignee(ctx context.Context, item *entities.Item) error {
	role, err := utils.GetUserRoleFromCtx(ctx)
	if err != nil {
		return err
	}
	if role == constants.RoleAdmin {
		return nil
	}

	userID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return err
	}
	if item.AssignedToID == nil || *item.AssignedToID != userID {
		return apperrors.NewHttpError(http.StatusForbidden,
			"позиция назначена другому исполнителю", apperrors.ErrForbidden)
	}
	return nil
}
