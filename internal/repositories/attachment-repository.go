package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"quotation-system/internal/entities"
	apperrors "quotation-system/pkg/errors"
)

type AttachmentRepositoryInterface interface {
	CreateAttachment(ctx context.Context, att entities.Attachment) (*entities.Attachment, error)
	FindAttachment(ctx context.Context, id uint64) (*entities.Attachment, error)
	ListAttachmentsByInquiry(ctx context.Context, inquiryID uint64) ([]entities.Attachment, error)
	DeleteAttachment(ctx context.Context, id uint64) error
}

type AttachmentRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewAttachmentRepository(storage *pgxpool.Pool, logger *zap.Logger) AttachmentRepositoryInterface {
	return &AttachmentRepository{storage: storage, logger: logger}
}

const attachmentFields = `id, inquiry_id, file_name, file_path, file_size, uploader_id, created_at, updated_at`

func scanAttachment(row pgx.Row) (*entities.Attachment, error) {
	var a entities.Attachment
	err := row.Scan(&a.ID, &a.InquiryID, &a.FileName, &a.FilePath, &a.FileSize,
		&a.UploaderID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка сканирования вложения: %w", err)
	}
	return &a, nil
}

func (r *AttachmentRepository) CreateAttachment(ctx context.Context, att entities.Attachment) (*entities.Attachment, error) {
	query := `
		INSERT INTO attachments (inquiry_id, file_name, file_path, file_size, uploader_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING ` + attachmentFields
	return scanAttachment(r.storage.QueryRow(ctx, query,
		att.InquiryID, att.FileName, att.FilePath, att.FileSize, att.UploaderID))
}

func (r *AttachmentRepository) FindAttachment(ctx context.Context, id uint64) (*entities.Attachment, error) {
	query := `SELECT ` + attachmentFields + ` FROM attachments WHERE id = $1`
	return scanAttachment(r.storage.QueryRow(ctx, query, id))
}

func (r *AttachmentRepository) ListAttachmentsByInquiry(ctx context.Context, inquiryID uint64) ([]entities.Attachment, error) {
	query := `SELECT ` + attachmentFields + ` FROM attachments WHERE inquiry_id = $1 ORDER BY created_at DESC`
	rows, err := r.storage.Query(ctx, query, inquiryID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения вложений: %w", err)
	}
	defer rows.Close()

	atts := make([]entities.Attachment, 0)
	for rows.Next() {
		a, err := scanAttachment(rows)
		if err != nil {
			return nil, err
		}
		atts = append(atts, *a)
	}
	return atts, rows.Err()
}

func (r *AttachmentRepository) DeleteAttachment(ctx context.Context, id uint64) error {
	tag, err := r.storage.Exec(ctx, `DELETE FROM attachments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления вложения: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
