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

type InquiryController struct {
	inquiryService services.InquiryServiceInterface
	logger         *zap.Logger
}

func NewInquiryController(inquiryService services.InquiryServiceInterface, logger *zap.Logger) *InquiryController {
	return &InquiryController{inquiryService: inquiryService, logger: logger}
}

func (c *InquiryController) GetInquiries(ctx echo.Context) error {
	params := utils.ParseQuery(ctx.Request().URL.Query())

	res, err := c.inquiryService.GetInquiries(ctx.Request().Context(), params.Limit, params.Offset)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res.List, "Запросы получены", http.StatusOK, res.TotalCount)
}

func (c *InquiryController) FindInquiry(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "некорректный идентификатор"), c.logger)
	}

	res, err := c.inquiryService.FindInquiry(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Запрос получен", http.StatusOK)
}

func (c *InquiryController) CreateInquiry(ctx echo.Context) error {
	var payload dto.CreateInquiryDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "некорректное тело запроса"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.inquiryService.CreateInquiry(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Запрос создан", http.StatusCreated)
}

func (c *InquiryController) UpdateInquiry(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "некорректный идентификатор"), c.logger)
	}

	var payload dto.UpdateInquiryDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "некорректное тело запроса"), c.logger)
	}

	res, err := c.inquiryService.UpdateInquiry(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Запрос обновлен", http.StatusOK)
}

func (c *InquiryController) DeleteInquiry(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "некорректный идентификатор"), c.logger)
	}

	if err := c.inquiryService.DeleteInquiry(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Запрос удален", http.StatusOK)
}
