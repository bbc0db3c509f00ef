package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"quotation-system/internal/dto"
)

type DashboardRepositoryInterface interface {
	CountItems(ctx context.Context) (int64, error)
	CountUnassignedItems(ctx context.Context) (int64, error)
	CountItemsByStatus(ctx context.Context) ([]dto.CountByGroupDTO, error)
	CountItemsByPriority(ctx context.Context) ([]dto.CountByGroupDTO, error)
	CountItemsByAssignee(ctx context.Context) ([]dto.CountByGroupDTO, error)
}

type DashboardRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewDashboardRepository(storage *pgxpool.Pool, logger *zap.Logger) DashboardRepositoryInterface {
	return &DashboardRepository{storage: storage, logger: logger}
}

func (r *DashboardRepository) CountItems(ctx context.Context) (int64, error) {
	var count int64
	err := r.storage.QueryRow(ctx, `SELECT COUNT(*) FROM items WHERE deleted_at IS NULL`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("ошибка подсчета позиций: %w", err)
	}
	return count, nil
}

func (r *DashboardRepository) CountUnassignedItems(ctx context.Context) (int64, error) {
	var count int64
	err := r.storage.QueryRow(ctx,
		`SELECT COUNT(*) FROM items WHERE assigned_to_id IS NULL AND deleted_at IS NULL`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("ошибка подсчета неназначенных позиций: %w", err)
	}
	return count, nil
}

func (r *DashboardRepository) countByGroup(ctx context.Context, builder sq.SelectBuilder) ([]dto.CountByGroupDTO, error) {
	query, args, err := builder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка группирующего запроса: %w", err)
	}
	defer rows.Close()

	result := make([]dto.CountByGroupDTO, 0)
	for rows.Next() {
		var row dto.CountByGroupDTO
		if err := rows.Scan(&row.Label, &row.Count); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *DashboardRepository) CountItemsByStatus(ctx context.Context) ([]dto.CountByGroupDTO, error) {
	return r.countByGroup(ctx, sq.Select("status", "COUNT(*)").
		From("items").
		Where(sq.Eq{"deleted_at": nil}).
		GroupBy("status").
		OrderBy("COUNT(*) DESC"))
}

func (r *DashboardRepository) CountItemsByPriority(ctx context.Context) ([]dto.CountByGroupDTO, error) {
	return r.countByGroup(ctx, sq.Select("inq.priority", "COUNT(*)").
		From("items it").
		Join("inquiries inq ON it.inquiry_id = inq.id").
		Where(sq.Eq{"it.deleted_at": nil}).
		GroupBy("inq.priority").
		OrderBy("COUNT(*) DESC"))
}

func (r *DashboardRepository) CountItemsByAssignee(ctx context.Context) ([]dto.CountByGroupDTO, error) {
	return r.countByGroup(ctx, sq.Select("u.fio", "COUNT(*)").
		From("items it").
		Join("users u ON it.assigned_to_id = u.id").
		Where(sq.Eq{"it.deleted_at": nil}).
		GroupBy("u.fio").
		OrderBy("COUNT(*) DESC"))
}
