package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"quotation-system/internal/entities"
	"quotation-system/pkg/constants"
	apperrors "quotation-system/pkg/errors"
)

type ItemRepositoryInterface interface {
	ListItems(ctx context.Context, limit uint64) ([]entities.Item, error)
	ListItemsByInquiry(ctx context.Context, inquiryID uint64) ([]entities.Item, error)
	FindItem(ctx context.Context, id uint64) (*entities.Item, error)
	AssignItems(ctx context.Context, itemIDs []uint64, assigneeID uint64) error
	UnassignItems(ctx context.Context, itemIDs []uint64) error
	SaveCosting(ctx context.Context, itemID uint64, costing entities.Costing) error
	UpdateItemStatus(ctx context.Context, itemID uint64, status string) error
	UpdateItemsStatusInTx(ctx context.Context, tx pgx.Tx, itemIDs []uint64, status string) error
}

type ItemRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewItemRepository(storage *pgxpool.Pool, logger *zap.Logger) ItemRepositoryInterface {
	return &ItemRepository{storage: storage, logger: logger}
}

// itemSelect тянет позицию вместе с денормализованными полями запроса,
// клиента, исполнителя и расчета — одной выборкой, чтобы кадр данных
// доски назначений был согласован в рамках одного запроса.
const itemSelect = `
	SELECT it.id, it.inquiry_id, it.name, it.description, it.quantity, it.unit, it.status,
	       it.assigned_to_id, it.created_at, it.updated_at,
	       inq.title AS inquiry_title, inq.priority AS inquiry_priority,
	       inq.customer_id, c.name AS customer_name,
	       u.fio AS assigned_to_fio,
	       cost.material_cost, cost.labor_cost, cost.overhead_cost, cost.margin_pct, cost.unit_cost, cost.total_cost
	FROM items it
	LEFT JOIN inquiries inq ON it.inquiry_id = inq.id
	LEFT JOIN customers c ON inq.customer_id = c.id
	LEFT JOIN users u ON it.assigned_to_id = u.id
	LEFT JOIN costings cost ON cost.item_id = it.id`

func scanItemRows(rows pgx.Rows) ([]entities.Item, error) {
	items := make([]entities.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func scanItem(row pgx.Row) (*entities.Item, error) {
	var it entities.Item
	var inquiryTitle, inquiryPriority, customerName, assignedToFio sql.NullString
	var customerID sql.NullInt64
	var materialCost, laborCost, overheadCost, marginPct, unitCost, totalCost sql.NullFloat64

	err := row.Scan(
		&it.ID, &it.InquiryID, &it.Name, &it.Description, &it.Quantity, &it.Unit, &it.Status,
		&it.AssignedToID, &it.CreatedAt, &it.UpdatedAt,
		&inquiryTitle, &inquiryPriority,
		&customerID, &customerName,
		&assignedToFio,
		&materialCost, &laborCost, &overheadCost, &marginPct, &unitCost, &totalCost,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка сканирования позиции: %w", err)
	}

	it.InquiryTitle = inquiryTitle.String
	it.InquiryPriority = inquiryPriority.String
	it.CustomerName = customerName.String
	if customerID.Valid {
		it.CustomerID = uint64(customerID.Int64)
	}
	if assignedToFio.Valid {
		it.AssignedToFio = &assignedToFio.String
	}
	if unitCost.Valid {
		it.Costing = &entities.Costing{
			ItemID:       it.ID,
			MaterialCost: materialCost.Float64,
			LaborCost:    laborCost.Float64,
			OverheadCost: overheadCost.Float64,
			MarginPct:    marginPct.Float64,
			UnitCost:     unitCost.Float64,
			TotalCost:    totalCost.Float64,
		}
	}
	return &it, nil
}

func (r *ItemRepository) ListItems(ctx context.Context, limit uint64) ([]entities.Item, error) {
	query := itemSelect + ` WHERE it.deleted_at IS NULL ORDER BY it.created_at DESC LIMIT $1`
	rows, err := r.storage.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка позиций: %w", err)
	}
	defer rows.Close()
	return scanItemRows(rows)
}

func (r *ItemRepository) ListItemsByInquiry(ctx context.Context, inquiryID uint64) ([]entities.Item, error) {
	query := itemSelect + ` WHERE it.inquiry_id = $1 AND it.deleted_at IS NULL ORDER BY it.id`
	rows, err := r.storage.Query(ctx, query, inquiryID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения позиций запроса: %w", err)
	}
	defer rows.Close()
	return scanItemRows(rows)
}

func (r *ItemRepository) FindItem(ctx context.Context, id uint64) (*entities.Item, error) {
	query := itemSelect + ` WHERE it.id = $1 AND it.deleted_at IS NULL`
	return scanItem(r.storage.QueryRow(ctx, query, id))
}

// AssignItems назначает исполнителя на весь набор позиций одним пакетным
// запросом. Операция атомарна: если хотя бы одна позиция не найдена,
// транзакция откатывается целиком и ни одна позиция не меняется.
func (r *ItemRepository) AssignItems(ctx context.Context, itemIDs []uint64, assigneeID uint64) error {
	if len(itemIDs) == 0 {
		return apperrors.NewInvalidInputError("список позиций для назначения пуст")
	}
	return WithTx(ctx, r.storage, func(tx pgx.Tx) error {
		query := `
			UPDATE items
			SET assigned_to_id = $1,
			    status = CASE WHEN status = $2 THEN $3 ELSE status END,
			    updated_at = NOW()
			WHERE id = ANY($4) AND deleted_at IS NULL`
		tag, err := tx.Exec(ctx, query, assigneeID, constants.ItemStatusPending, constants.ItemStatusAssigned, itemIDs)
		if err != nil {
			return fmt.Errorf("ошибка назначения позиций: %w", err)
		}
		if tag.RowsAffected() != int64(len(itemIDs)) {
			return apperrors.NewInvalidInputError(
				"назначено %d позиций из %d: часть позиций не найдена", tag.RowsAffected(), len(itemIDs))
		}
		return nil
	})
}

// UnassignItems снимает назначение с набора позиций одним пакетным запросом.
// Позиции, еще находившиеся в работе, возвращаются в статус PENDING.
func (r *ItemRepository) UnassignItems(ctx context.Context, itemIDs []uint64) error {
	if len(itemIDs) == 0 {
		return apperrors.NewInvalidInputError("список позиций для снятия назначения пуст")
	}
	return WithTx(ctx, r.storage, func(tx pgx.Tx) error {
		query := `
			UPDATE items
			SET assigned_to_id = NULL,
			    status = CASE WHEN status = ANY($1) THEN $2 ELSE status END,
			    updated_at = NOW()
			WHERE id = ANY($3) AND deleted_at IS NULL`
		tag, err := tx.Exec(ctx, query, constants.PendingStatuses, constants.ItemStatusPending, itemIDs)
		if err != nil {
			return fmt.Errorf("ошибка снятия назначения: %w", err)
		}
		if tag.RowsAffected() != int64(len(itemIDs)) {
			return apperrors.NewInvalidInputError(
				"снято назначение с %d позиций из %d: часть позиций не найдена", tag.RowsAffected(), len(itemIDs))
		}
		return nil
	})
}

// SaveCosting сохраняет расчет стоимости (upsert) и переводит позицию
// в статус COSTED в одной транзакции.
func (r *ItemRepository) SaveCosting(ctx context.Context, itemID uint64, costing entities.Costing) error {
	return WithTx(ctx, r.storage, func(tx pgx.Tx) error {
		upsert := `
			INSERT INTO costings (item_id, material_cost, labor_cost, overhead_cost, margin_pct, unit_cost, total_cost, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
			ON CONFLICT (item_id) DO UPDATE SET
				material_cost = EXCLUDED.material_cost,
				labor_cost = EXCLUDED.labor_cost,
				overhead_cost = EXCLUDED.overhead_cost,
				margin_pct = EXCLUDED.margin_pct,
				unit_cost = EXCLUDED.unit_cost,
				total_cost = EXCLUDED.total_cost,
				updated_at = NOW()`
		if _, err := tx.Exec(ctx, upsert,
			itemID, costing.MaterialCost, costing.LaborCost, costing.OverheadCost,
			costing.MarginPct, costing.UnitCost, costing.TotalCost,
		); err != nil {
			return fmt.Errorf("ошибка сохранения расчета стоимости: %w", err)
		}

		tag, err := tx.Exec(ctx,
			`UPDATE items SET status = $1, updated_at = NOW() WHERE id = $2 AND deleted_at IS NULL`,
			constants.ItemStatusCosted, itemID)
		if err != nil {
			return fmt.Errorf("ошибка обновления статуса позиции: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrNotFound
		}
		return nil
	})
}

func (r *ItemRepository) UpdateItemStatus(ctx context.Context, itemID uint64, status string) error {
	tag, err := r.storage.Exec(ctx,
		`UPDATE items SET status = $1, updated_at = NOW() WHERE id = $2 AND deleted_at IS NULL`,
		status, itemID)
	if err != nil {
		return fmt.Errorf("ошибка обновления статуса позиции: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *ItemRepository) UpdateItemsStatusInTx(ctx context.Context, tx pgx.Tx, itemIDs []uint64, status string) error {
	query, args, err := sq.Update("items").
		Set("status", status).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": itemIDs, "deleted_at": nil}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("ошибка пакетного обновления статуса позиций: %w", err)
	}
	return nil
}
