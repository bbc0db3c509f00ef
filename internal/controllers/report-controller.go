package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"quotation-system/internal/services"
	"quotation-system/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

// ExportItems отдает Excel-файл с позициями за период ?from=...&to=...
// (формат дат: 2006-01-02). По умолчанию - последние 30 дней.
func (c *ReportController) ExportItems(ctx echo.Context) error {
	to := time.Now()
	from := to.AddDate(0, 0, -30)

	if raw := ctx.QueryParam("from"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "некорректная дата from"), c.logger)
		}
		from = t
	}
	if raw := ctx.QueryParam("to"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "некорректная дата to"), c.logger)
		}
		// Включаем весь день "to".
		to = t.AddDate(0, 0, 1)
	}

	buf, filename, err := c.reportService.ExportItemsReport(ctx.Request().Context(), from, to)
	if err != nil {
		c.logger.Error("Ошибка формирования отчета", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s"`, filename))
	return ctx.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
