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

type QuoteController struct {
	quoteService services.QuoteServiceInterface
	logger       *zap.Logger
}

func NewQuoteController(quoteService services.QuoteServiceInterface, logger *zap.Logger) *QuoteController {
	return &QuoteController{quoteService: quoteService, logger: logger}
}

func (c *QuoteController) GetQuotes(ctx echo.Context) error {
	params := utils.ParseQuery(ctx.Request().URL.Query())

	res, total, err := c.quoteService.GetQuotes(ctx.Request().Context(), params.Limit, params.Offset)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Предложения получены", http.StatusOK, total)
}

func (c *QuoteController) FindQuote(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "некорректный идентификатор"), c.logger)
	}

	res, err := c.quoteService.FindQuote(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Предложение получено", http.StatusOK)
}

func (c *QuoteController) CreateQuote(ctx echo.Context) error {
	var payload dto.CreateQuoteDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "некорректное тело запроса"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.quoteService.CreateQuote(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Предложение сформировано", http.StatusCreated)
}
