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
	apperrors "quotation-system/pkg/errors"
)

type CustomerRepositoryInterface interface {
	ListCustomers(ctx context.Context, activeOnly bool, limit uint64) ([]entities.Customer, error)
	FindCustomer(ctx context.Context, id uint64) (*entities.Customer, error)
	CreateCustomer(ctx context.Context, data dto.CreateCustomerDTO) (uint64, error)
	UpdateCustomer(ctx context.Context, id uint64, data dto.UpdateCustomerDTO) error
	SoftDeleteCustomer(ctx context.Context, id uint64) error
}

type CustomerRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewCustomerRepository(storage *pgxpool.Pool, logger *zap.Logger) CustomerRepositoryInterface {
	return &CustomerRepository{storage: storage, logger: logger}
}

const customerColumns = `id, name, contact_fio, email, phone_number, is_active, created_at, updated_at`

func (r *CustomerRepository) ListCustomers(ctx context.Context, activeOnly bool, limit uint64) ([]entities.Customer, error) {
	builder := sq.Select(customerColumns).
		From("customers").
		Where(sq.Eq{"deleted_at": nil}).
		OrderBy("name").
		Limit(limit)
	if activeOnly {
		builder = builder.Where(sq.Eq{"is_active": true})
	}

	query, args, err := builder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка клиентов: %w", err)
	}
	defer rows.Close()

	customers := make([]entities.Customer, 0)
	for rows.Next() {
		var c entities.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.ContactFio, &c.Email, &c.PhoneNumber, &c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("ошибка сканирования клиента: %w", err)
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *CustomerRepository) FindCustomer(ctx context.Context, id uint64) (*entities.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1 AND deleted_at IS NULL`
	var c entities.Customer
	err := r.storage.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.ContactFio, &c.Email, &c.PhoneNumber, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка сканирования клиента: %w", err)
	}
	return &c, nil
}

func (r *CustomerRepository) CreateCustomer(ctx context.Context, data dto.CreateCustomerDTO) (uint64, error) {
	var newID uint64
	query := `INSERT INTO customers (name, contact_fio, email, phone_number, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, true, NOW(), NOW()) RETURNING id`
	if err := r.storage.QueryRow(ctx, query, data.Name, data.ContactFio, data.Email, data.PhoneNumber).Scan(&newID); err != nil {
		return 0, fmt.Errorf("ошибка создания клиента: %w", err)
	}
	return newID, nil
}

func (r *CustomerRepository) UpdateCustomer(ctx context.Context, id uint64, data dto.UpdateCustomerDTO) error {
	builder := sq.Update("customers").Set("updated_at", sq.Expr("NOW()"))

	if data.Name.Valid {
		builder = builder.Set("name", data.Name.String)
	}
	if data.ContactFio.Valid {
		builder = builder.Set("contact_fio", data.ContactFio.String)
	}
	if data.Email.Valid {
		builder = builder.Set("email", data.Email.String)
	}
	if data.PhoneNumber.Valid {
		builder = builder.Set("phone_number", data.PhoneNumber.String)
	}
	if data.IsActive.Valid {
		builder = builder.Set("is_active", data.IsActive.Bool)
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
		return fmt.Errorf("ошибка обновления клиента: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *CustomerRepository) SoftDeleteCustomer(ctx context.Context, id uint64) error {
	tag, err := r.storage.Exec(ctx,
		`UPDATE customers SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления клиента: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
