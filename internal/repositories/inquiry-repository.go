package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"quotation-system/internal/dto"
	"quotation-system/internal/entities"
	"quotation-system/pkg/constants"
	apperrors "quotation-system/pkg/errors"
)

type InquiryRepositoryInterface interface {
	ListInquiries(ctx context.Context, limit uint64) ([]entities.Inquiry, error)
	GetInquiries(ctx context.Context, limit, offset uint64) ([]entities.Inquiry, uint64, error)
	FindInquiry(ctx context.Context, id uint64) (*entities.Inquiry, error)
	CreateInquiryInTx(ctx context.Context, tx pgx.Tx, creatorID uint64, data dto.CreateInquiryDTO) (uint64, error)
	UpdateInquiry(ctx context.Context, id uint64, data dto.UpdateInquiryDTO) error
	SoftDeleteInquiry(ctx context.Context, id uint64) error
}

type InquiryRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewInquiryRepository(storage *pgxpool.Pool, logger *zap.Logger) InquiryRepositoryInterface {
	return &InquiryRepository{storage: storage, logger: logger}
}

const inquirySelect = `
	SELECT inq.id, inq.title, inq.customer_id, inq.priority, inq.comment, inq.creator_id,
	       c.name AS customer_name, inq.created_at, inq.updated_at
	FROM inquiries inq
	LEFT JOIN customers c ON inq.customer_id = c.id`

func scanInquiry(row pgx.Row) (*entities.Inquiry, error) {
	var inq entities.Inquiry
	err := row.Scan(
		&inq.ID, &inq.Title, &inq.CustomerID, &inq.Priority, &inq.Comment, &inq.CreatorID,
		&inq.CustomerName, &inq.CreatedAt, &inq.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка сканирования запроса: %w", err)
	}
	return &inq, nil
}

// ListInquiries возвращает рабочий набор запросов для доски назначений
// (без пагинации, с лимитом выборки).
func (r *InquiryRepository) ListInquiries(ctx context.Context, limit uint64) ([]entities.Inquiry, error) {
	query := inquirySelect + ` WHERE inq.deleted_at IS NULL ORDER BY inq.created_at DESC LIMIT $1`
	rows, err := r.storage.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка запросов: %w", err)
	}
	defer rows.Close()

	inquiries := make([]entities.Inquiry, 0)
	for rows.Next() {
		var inq entities.Inquiry
		if err := rows.Scan(
			&inq.ID, &inq.Title, &inq.CustomerID, &inq.Priority, &inq.Comment, &inq.CreatorID,
			&inq.CustomerName, &inq.CreatedAt, &inq.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("ошибка сканирования запроса в списке: %w", err)
		}
		inquiries = append(inquiries, inq)
	}
	return inquiries, rows.Err()
}

func (r *InquiryRepository) GetInquiries(ctx context.Context, limit, offset uint64) ([]entities.Inquiry, uint64, error) {
	var total uint64
	if err := r.storage.QueryRow(ctx, `SELECT COUNT(*) FROM inquiries WHERE deleted_at IS NULL`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ошибка подсчета запросов: %w", err)
	}

	query := inquirySelect + ` WHERE inq.deleted_at IS NULL ORDER BY inq.created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.storage.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка получения списка запросов: %w", err)
	}
	defer rows.Close()

	inquiries := make([]entities.Inquiry, 0)
	for rows.Next() {
		var inq entities.Inquiry
		if err := rows.Scan(
			&inq.ID, &inq.Title, &inq.CustomerID, &inq.Priority, &inq.Comment, &inq.CreatorID,
			&inq.CustomerName, &inq.CreatedAt, &inq.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("ошибка сканирования запроса в списке: %w", err)
		}
		inquiries = append(inquiries, inq)
	}
	return inquiries, total, rows.Err()
}

func (r *InquiryRepository) FindInquiry(ctx context.Context, id uint64) (*entities.Inquiry, error) {
	query := inquirySelect + ` WHERE inq.id = $1 AND inq.deleted_at IS NULL`
	return scanInquiry(r.storage.QueryRow(ctx, query, id))
}

// CreateInquiryInTx создает запрос вместе с позициями в рамках переданной
// транзакции. Все позиции рождаются в статусе PENDING без исполнителя.
func (r *InquiryRepository) CreateInquiryInTx(ctx context.Context, tx pgx.Tx, creatorID uint64, data dto.CreateInquiryDTO) (uint64, error) {
	priority := data.Priority
	if priority == "" {
		priority = constants.PriorityMedium
	}

	var newID uint64
	inquiryInsert := `INSERT INTO inquiries (title, customer_id, priority, comment, creator_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW()) RETURNING id`
	if err := tx.QueryRow(ctx, inquiryInsert, data.Title, data.CustomerID, priority, data.Comment, creatorID).Scan(&newID); err != nil {
		return 0, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	itemInsert := `INSERT INTO items (inquiry_id, name, description, quantity, unit, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())`
	for _, item := range data.Items {
		if _, err := tx.Exec(ctx, itemInsert, newID, item.Name, item.Description, item.Quantity, item.Unit, constants.ItemStatusPending); err != nil {
			return 0, fmt.Errorf("ошибка создания позиции запроса: %w", err)
		}
	}
	return newID, nil
}

func (r *InquiryRepository) UpdateInquiry(ctx context.Context, id uint64, data dto.UpdateInquiryDTO) error {
	builder := sq.Update("inquiries").Set("updated_at", sq.Expr("NOW()"))

	if data.Title.Valid {
		builder = builder.Set("title", data.Title.String)
	}
	if data.Priority.Valid {
		builder = builder.Set("priority", data.Priority.String)
	}
	if data.Comment.Valid {
		builder = builder.Set("comment", data.Comment.String)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": id, "deleted_at": nil}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка обновления запроса: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SoftDeleteInquiry помечает удаленным запрос вместе с его позициями.
func (r *InquiryRepository) SoftDeleteInquiry(ctx context.Context, id uint64) error {
	return WithTx(ctx, r.storage, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `UPDATE inquiries SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id)
		if err != nil {
			return fmt.Errorf("ошибка удаления запроса: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrNotFound
		}
		if _, err := tx.Exec(ctx, `UPDATE items SET deleted_at = NOW() WHERE inquiry_id = $1 AND deleted_at IS NULL`, id); err != nil {
			return fmt.Errorf("ошибка удаления позиций запроса: %w", err)
		}
		return nil
	})
}
