package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"quotation-system/internal/dto"
	"quotation-system/internal/services"
	"quotation-system/pkg/utils"
)

type ItemController struct {
	itemService services.ItemServiceInterface
	logger      *zap.Logger
}

func NewItemController(itemService services.ItemServiceInterface, logger *zap.Logger) *ItemController {
	return &ItemController{itemService: itemService, logger: logger}
}

func (c *ItemController) GetItems(ctx echo.Context) error {
	params := utils.ParseQuery(ctx.Request().URL.Query())

	res, err := c.itemService.GetItems(ctx.Request().Context(), params.Limit)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Позиции получены", http.StatusOK)
}

func (c *ItemController) FindItem(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "некорректный идентификатор"), c.logger)
	}

	res, err := c.itemService.FindItem(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Позиция получена", http.StatusOK)
}

func (c *ItemController) StartProgress(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "некорректный идентификатор"), c.logger)
	}

	res, err := c.itemService.StartProgress(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Позиция взята в работу", http.StatusOK)
}

func (c *ItemController) SaveCosting(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "некорректный идентификатор"), c.logger)
	}

	var payload dto.SaveCostingDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "некорректное тело запроса"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.itemService.SaveCosting(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Расчет сохранен", http.StatusOK)
}

func (c *ItemController) ApproveItem(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "некорректный идентификатор"), c.logger)
	}

	res, err := c.itemService.ApproveItem(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Расчет утвержден", http.StatusOK)
}
