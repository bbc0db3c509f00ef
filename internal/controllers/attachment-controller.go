package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"quotation-system/internal/services"
	"quotation-system/pkg/utils"
)

type AttachmentController struct {
	attachmentService services.AttachmentServiceInterface
	logger            *zap.Logger
}

func NewAttachmentController(attachmentService services.AttachmentServiceInterface, logger *zap.Logger) *AttachmentController {
	return &AttachmentController{attachmentService: attachmentService, logger: logger}
}

func (c *AttachmentController) UploadAttachment(ctx echo.Context) error {
	inquiryID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "некорректный идентификатор"), c.logger)
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "поле 'file' не найдено"), c.logger)
	}

	res, err := c.attachmentService.UploadAttachment(ctx.Request().Context(), inquiryID, fileHeader)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Файл загружен", http.StatusCreated)
}

func (c *AttachmentController) ListAttachments(ctx echo.Context) error {
	inquiryID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "некорректный идентификатор"), c.logger)
	}

	res, err := c.attachmentService.ListAttachments(ctx.Request().Context(), inquiryID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Вложения получены", http.StatusOK)
}

func (c *AttachmentController) DownloadAttachment(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("attachmentId"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "некорректный идентификатор"), c.logger)
	}

	att, err := c.attachmentService.FindAttachment(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.Attachment(att.FilePath, att.FileName)
}

func (c *AttachmentController) DeleteAttachment(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("attachmentId"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "некорректный идентификатор"), c.logger)
	}

	if err := c.attachmentService.DeleteAttachment(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Вложение удалено", http.StatusOK)
}
