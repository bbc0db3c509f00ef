package services

import (
	"context"
	"mime/multipart"
	"net/http"

	"go.uber.org/zap"

	"quotation-system/internal/dto"
	"quotation-system/internal/entities"
	"quotation-system/internal/repositories"
	"quotation-system/pkg/config"
	apperrors "quotation-system/pkg/errors"
	"quotation-system/pkg/filestorage"
	"quotation-system/pkg/utils"
)

type AttachmentServiceInterface interface {
	UploadAttachment(ctx context.Context, inquiryID uint64, fileHeader *multipart.FileHeader) (*dto.AttachmentDTO, error)
	ListAttachments(ctx context.Context, inquiryID uint64) ([]dto.AttachmentDTO, error)
	FindAttachment(ctx context.Context, id uint64) (*entities.Attachment, error)
	DeleteAttachment(ctx context.Context, id uint64) error
}

type AttachmentService struct {
	attachmentRepo repositories.AttachmentRepositoryInterface
	inquiryRepo    repositories.InquiryRepositoryInterface
	storage        filestorage.FileStorageInterface
	cfg            config.UploadConfig
	logger         *zap.Logger
}

func NewAttachmentService(
	attachmentRepo repositories.AttachmentRepositoryInterface,
	inquiryRepo repositories.InquiryRepositoryInterface,
	storage filestorage.FileStorageInterface,
	cfg config.UploadConfig,
	logger *zap.Logger,
) AttachmentServiceInterface {
	return &AttachmentService{
		attachmentRepo: attachmentRepo,
		inquiryRepo:    inquiryRepo,
		storage:        storage,
		cfg:            cfg,
		logger:         logger,
	}
}

func (s *AttachmentService) UploadAttachment(ctx context.Context, inquiryID uint64, fileHeader *multipart.FileHeader) (*dto.AttachmentDTO, error) {
	if fileHeader.Size > s.cfg.MaxFileSize {
		return nil, apperrors.NewHttpError(http.StatusRequestEntityTooLarge,
			"файл превышает допустимый размер", nil)
	}

	uploaderID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.inquiryRepo.FindInquiry(ctx, inquiryID); err != nil {
		return nil, err
	}

	path, err := s.storage.Save(fileHeader)
	if err != nil {
		s.logger.Error("Ошибка сохранения файла",
			zap.String("file", fileHeader.Filename), zap.Error(err))
		return nil, apperrors.NewInternalError("не удалось сохранить файл")
	}

	att, err := s.attachmentRepo.CreateAttachment(ctx, entities.Attachment{
		InquiryID:  inquiryID,
		FileName:   fileHeader.Filename,
		FilePath:   path,
		FileSize:   fileHeader.Size,
		UploaderID: uploaderID,
	})
	if err != nil {
		return nil, err
	}

	out := mapAttachmentToDTO(*att)
	return &out, nil
}

func (s *AttachmentService) ListAttachments(ctx context.Context, inquiryID uint64) ([]dto.AttachmentDTO, error) {
	atts, err := s.attachmentRepo.ListAttachmentsByInquiry(ctx, inquiryID)
	if err != nil {
		return nil, err
	}

	list := make([]dto.AttachmentDTO, 0, len(atts))
	for _, a := range atts {
		list = append(list, mapAttachmentToDTO(a))
	}
	return list, nil
}

func (s *AttachmentService) FindAttachment(ctx context.Context, id uint64) (*entities.Attachment, error) {
	return s.attachmentRepo.FindAttachment(ctx, id)
}

func (s *AttachmentService) DeleteAttachment(ctx context.Context, id uint64) error {
	return s.attachmentRepo.DeleteAttachment(ctx, id)
}

func mapAttachmentToDTO(a entities.Attachment) dto.AttachmentDTO {
	return dto.AttachmentDTO{
		ID:        a.ID,
		InquiryID: a.InquiryID,
		FileName:  a.FileName,
		FilePath:  a.FilePath,
		FileSize:  a.FileSize,
		CreatedAt: formatTime(a.CreatedAt),
	}
}
