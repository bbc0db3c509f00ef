package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"quotation-system/internal/dto"
	"quotation-system/internal/services"
	"quotation-system/pkg/utils"
)

type AssignmentController struct {
	boardService services.AssignmentBoardServiceInterface
	logger       *zap.Logger
}

func NewAssignmentController(
	boardService services.AssignmentBoardServiceInterface,
	logger *zap.Logger,
) *AssignmentController {
	return &AssignmentController{
		boardService: boardService,
		logger:       logger,
	}
}

// GetBoard отдает композитную модель доски назначений. Первое обращение
// загружает рабочий набор; ?reload=true принудительно перечитывает его.
func (c *AssignmentController) GetBoard(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var err error
	if ctx.QueryParam("reload") == "true" {
		err = c.boardService.Load(reqCtx)
	} else {
		err = c.boardService.EnsureLoaded(reqCtx)
	}
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	board := c.boardService.Board()
	return utils.SuccessResponse(ctx, board, "Доска назначений получена", http.StatusOK)
}

// GetWorkloads отдает сводку загрузки исполнителей по полному рабочему
// набору, без учета фильтров доски.
func (c *AssignmentController) GetWorkloads(ctx echo.Context) error {
	if err := c.boardService.EnsureLoaded(ctx.Request().Context()); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, c.boardService.Workloads(), "Загрузка исполнителей получена", http.StatusOK)
}

// SetFilters накладывает частичное обновление фильтра и возвращает
// пересчитанную модель доски без повторной выборки из БД.
func (c *AssignmentController) SetFilters(ctx echo.Context) error {
	var payload dto.BoardFilterDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "некорректное тело запроса"), c.logger)
	}

	c.boardService.SetFilters(payload)
	return utils.SuccessResponse(ctx, c.boardService.Board(), "Фильтры применены", http.StatusOK)
}

// AssignItems выполняет пакетное назначение либо снятие назначения
// (assignee_id = null).
func (c *AssignmentController) AssignItems(ctx echo.Context) error {
	var payload dto.AssignItemsDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "некорректное тело запроса"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.boardService.Assign(ctx.Request().Context(), payload); err != nil {
		c.logger.Error("Ошибка выполнения команды назначения", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	message := "Позиции назначены"
	if !payload.AssigneeID.Valid {
		message = "Назначение снято"
	}
	return utils.SuccessResponse(ctx, c.boardService.Board(), message, http.StatusOK)
}

// RefreshBoard принудительно перезагружает рабочий набор доски.
func (c *AssignmentController) RefreshBoard(ctx echo.Context) error {
	if err := c.boardService.Refresh(ctx.Request().Context()); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, c.boardService.Board(), "Доска обновлена", http.StatusOK)
}
