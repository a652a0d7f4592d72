package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"transaction-management/internal/models"
)

// ErrInvalidSortField is returned by List when the requested sort field does
// not map to a known column.
var ErrInvalidSortField = errors.New("invalid sort field")

var transactionColumns = []string{
	"id", "description", "amount", "type", "category", "transaction_reference", "transaction_date",
}

// sortColumns whitelists the caller-facing sort fields against real columns.
var sortColumns = map[string]string{
	"id":                   "id",
	"description":          "description",
	"amount":               "amount",
	"type":                 "type",
	"category":             "category",
	"transactionReference": "transaction_reference",
	"transactionDate":      "transaction_date",
}

type TransactionRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewTransactionRepository(db *pgxpool.Pool, logger *zap.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:     db,
		logger: logger,
	}
}

// Insert persists a new transaction. The id and transaction date are assigned
// here: the date at call time, the id by the database sequence. The stored
// record is returned with both fields populated.
func (r *TransactionRepository) Insert(ctx context.Context, txn *models.Transaction) (*models.Transaction, error) {
	stored := *txn
	stored.TransactionDate = time.Now().UTC()

	query := squirrel.Insert("transactions").
		Columns("description", "amount", "type", "category", "transaction_reference", "transaction_date").
		Values(stored.Description, stored.Amount, stored.Type, stored.Category, stored.Reference, stored.TransactionDate).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&stored.ID); err != nil {
		return nil, err
	}

	return &stored, nil
}

// GetByID returns the transaction with the given id, or (nil, nil) when no
// such row exists. An error is returned only for store failures.
func (r *TransactionRepository) GetByID(ctx context.Context, id int64) (*models.Transaction, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByReference returns the transaction with the given reference, or
// (nil, nil) when no such row exists.
func (r *TransactionRepository) GetByReference(ctx context.Context, reference string) (*models.Transaction, error) {
	return r.getOne(ctx, squirrel.Eq{"transaction_reference": reference})
}

func (r *TransactionRepository) getOne(ctx context.Context, where squirrel.Eq) (*models.Transaction, error) {
	query := squirrel.Select(transactionColumns...).
		From("transactions").
		Where(where).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var txn models.Transaction
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&txn.ID, &txn.Description, &txn.Amount, &txn.Type, &txn.Category, &txn.Reference, &txn.TransactionDate,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &txn, nil
}

func (r *TransactionRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, squirrel.Eq{"id": id})
}

func (r *TransactionRepository) ExistsByReference(ctx context.Context, reference string) (bool, error) {
	return r.exists(ctx, squirrel.Eq{"transaction_reference": reference})
}

func (r *TransactionRepository) exists(ctx context.Context, where squirrel.Eq) (bool, error) {
	query := squirrel.Select("1").
		From("transactions").
		Where(where).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return false, err
	}

	var one int
	err = r.db.QueryRow(ctx, sql, args...).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

// List returns one page of transactions matching the filter. Category and
// type filters are optional exact matches, compared case-insensitively.
func (r *TransactionRepository) List(ctx context.Context, filter models.ListFilter, page models.PageRequest) (*models.TransactionPage, error) {
	orderBy, err := orderClause(page)
	if err != nil {
		return nil, err
	}

	where := squirrel.And{}
	if filter.Category != "" {
		where = append(where, squirrel.Expr("LOWER(category) = LOWER(?)", filter.Category))
	}
	if filter.Type != "" {
		where = append(where, squirrel.Expr("LOWER(type) = LOWER(?)", filter.Type))
	}

	countQuery := squirrel.Select("COUNT(*)").
		From("transactions").
		Where(where).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := countQuery.ToSql()
	if err != nil {
		return nil, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, err
	}

	query := squirrel.Select(transactionColumns...).
		From("transactions").
		Where(where).
		OrderBy(orderBy).
		Limit(uint64(page.Size)).
		Offset(uint64(page.Page * page.Size)).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err = query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	content := make([]*models.Transaction, 0)
	for rows.Next() {
		var txn models.Transaction
		if err := rows.Scan(
			&txn.ID, &txn.Description, &txn.Amount, &txn.Type, &txn.Category, &txn.Reference, &txn.TransactionDate,
		); err != nil {
			return nil, err
		}
		content = append(content, &txn)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	totalPages := 0
	if page.Size > 0 {
		totalPages = int((total + int64(page.Size) - 1) / int64(page.Size))
	}

	return &models.TransactionPage{
		Content:     content,
		CurrentPage: page.Page,
		TotalPages:  totalPages,
		TotalItems:  total,
		PageSize:    page.Size,
	}, nil
}

// Update persists the mutable fields of an existing transaction. The id,
// reference and transaction date columns are never touched.
func (r *TransactionRepository) Update(ctx context.Context, txn *models.Transaction) error {
	query := squirrel.Update("transactions").
		Set("description", txn.Description).
		Set("amount", txn.Amount).
		Set("type", txn.Type).
		Set("category", txn.Category).
		Where(squirrel.Eq{"id": txn.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *TransactionRepository) Delete(ctx context.Context, id int64) error {
	query := squirrel.Delete("transactions").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func orderClause(page models.PageRequest) (string, error) {
	column, ok := sortColumns[page.SortBy]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrInvalidSortField, page.SortBy)
	}
	direction := "DESC"
	if strings.EqualFold(page.Direction, "asc") {
		direction = "ASC"
	}
	return column + " " + direction, nil
}
