package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"quotation-system/internal/dto"
)

type ReportRepositoryInterface interface {
	GetItemsReport(ctx context.Context, from, to time.Time) ([]dto.ReportItemDTO, error)
}

type ReportRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewReportRepository(storage *pgxpool.Pool, logger *zap.Logger) ReportRepositoryInterface {
	return &ReportRepository{storage: storage, logger: logger}
}

func (r *ReportRepository) GetItemsReport(ctx context.Context, from, to time.Time) ([]dto.ReportItemDTO, error) {
	query := `
		SELECT it.id, it.name, COALESCE(inq.title, ''), COALESCE(c.name, ''),
		       COALESCE(inq.priority, ''), it.status, COALESCE(u.fio, ''),
		       it.quantity, it.unit, COALESCE(cost.total_cost, 0),
		       to_char(it.created_at, 'DD.MM.YYYY HH24:MI')
		FROM items it
		LEFT JOIN inquiries inq ON it.inquiry_id = inq.id
		LEFT JOIN customers c ON inq.customer_id = c.id
		LEFT JOIN users u ON it.assigned_to_id = u.id
		LEFT JOIN costings cost ON cost.item_id = it.id
		WHERE it.deleted_at IS NULL AND it.created_at BETWEEN $1 AND $2
		ORDER BY it.created_at`

	rows, err := r.storage.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("ошибка выборки данных отчета: %w", err)
	}
	defer rows.Close()

	report := make([]dto.ReportItemDTO, 0)
	for rows.Next() {
		var row dto.ReportItemDTO
		err := rows.Scan(&row.ItemID, &row.ItemName, &row.InquiryTitle, &row.CustomerName,
			&row.Priority, &row.Status, &row.AssigneeFio,
			&row.Quantity, &row.Unit, &row.TotalCost, &row.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования строки отчета: %w", err)
		}
		report = append(report, row)
	}
	return report, rows.Err()
}
