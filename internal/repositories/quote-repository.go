package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"quotation-system/internal/entities"
	apperrors "quotation-system/pkg/errors"
)

type QuoteRepositoryInterface interface {
	GetQuotes(ctx context.Context, limit, offset uint64) ([]entities.Quote, uint64, error)
	FindQuote(ctx context.Context, id uint64) (*entities.Quote, error)
	FindQuoteByInquiry(ctx context.Context, inquiryID uint64) (*entities.Quote, error)
	CreateQuoteInTx(ctx context.Context, tx pgx.Tx, quote entities.Quote) (*entities.Quote, error)
	NextQuoteNumber(ctx context.Context, tx pgx.Tx) (uint64, error)
}

type QuoteRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewQuoteRepository(storage *pgxpool.Pool, logger *zap.Logger) QuoteRepositoryInterface {
	return &QuoteRepository{storage: storage, logger: logger}
}

const quoteFields = `id, inquiry_id, number, currency, total, valid_until, creator_id, created_at, updated_at`

func scanQuote(row pgx.Row) (*entities.Quote, error) {
	var q entities.Quote
	err := row.Scan(&q.ID, &q.InquiryID, &q.Number, &q.Currency, &q.Total,
		&q.ValidUntil, &q.CreatorID, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка сканирования предложения: %w", err)
	}
	return &q, nil
}

func (r *QuoteRepository) GetQuotes(ctx context.Context, limit, offset uint64) ([]entities.Quote, uint64, error) {
	var total uint64
	if err := r.storage.QueryRow(ctx, `SELECT COUNT(*) FROM quotes`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ошибка подсчета предложений: %w", err)
	}

	query, args, err := sq.Select(quoteFields).
		From("quotes").
		OrderBy("created_at DESC").
		Limit(limit).
		Offset(offset).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка получения списка предложений: %w", err)
	}
	defer rows.Close()

	quotes := make([]entities.Quote, 0)
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, 0, err
		}
		quotes = append(quotes, *q)
	}
	return quotes, total, rows.Err()
}

func (r *QuoteRepository) FindQuote(ctx context.Context, id uint64) (*entities.Quote, error) {
	query := `SELECT ` + quoteFields + ` FROM quotes WHERE id = $1`
	return scanQuote(r.storage.QueryRow(ctx, query, id))
}

func (r *QuoteRepository) FindQuoteByInquiry(ctx context.Context, inquiryID uint64) (*entities.Quote, error) {
	query := `SELECT ` + quoteFields + ` FROM quotes WHERE inquiry_id = $1 ORDER BY created_at DESC LIMIT 1`
	return scanQuote(r.storage.QueryRow(ctx, query, inquiryID))
}

func (r *QuoteRepository) CreateQuoteInTx(ctx context.Context, tx pgx.Tx, quote entities.Quote) (*entities.Quote, error) {
	query := `
		INSERT INTO quotes (inquiry_id, number, currency, total, valid_until, creator_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING ` + quoteFields
	return scanQuote(tx.QueryRow(ctx, query,
		quote.InquiryID, quote.Number, quote.Currency, quote.Total, quote.ValidUntil, quote.CreatorID))
}

// NextQuoteNumber выдает следующий номер предложения из последовательности.
// Вызывается внутри транзакции создания, чтобы номер не «сгорал» при откате
// остальной части операции раньше вставки.
func (r *QuoteRepository) NextQuoteNumber(ctx context.Context, tx pgx.Tx) (uint64, error) {
	var n uint64
	if err := tx.QueryRow(ctx, `SELECT nextval('quote_number_seq')`).Scan(&n); err != nil {
		return 0, fmt.Errorf("ошибка получения номера предложения: %w", err)
	}
	return n, nil
}
