// Package order implements the Order repository using PostgreSQL.
// Orders are the source of truth for the customer aggregates; the order
// service recomputes those aggregates whenever the ledger changes.
package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/minicrm/crm-backend/internal/adapter/postgres"
	"github.com/minicrm/crm-backend/internal/domain"
)

const orderColumns = `id, customer_id, order_value, order_date, status, product_category, created_at`

// Repo provides order persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new order repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new order and returns the persisted domain.Order.
func (r *Repo) Create(ctx context.Context, o *domain.Order) (*domain.Order, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`INSERT INTO orders (id, customer_id, order_value, order_date, status, product_category)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+orderColumns,
		o.ID, o.CustomerID, o.OrderValue, o.OrderDate, o.Status, o.ProductCategory,
	)

	result, err := scanOrder(row)
	if err != nil {
		return nil, mapError(err, "order", o.ID)
	}
	return result, nil
}

// Update modifies order fields. nil params keep current values.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.OrderUpdateParams) (*domain.Order, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`UPDATE orders
		 SET order_value      = COALESCE($2, order_value),
		     order_date       = COALESCE($3, order_date),
		     status           = COALESCE($4, status),
		     product_category = COALESCE($5, product_category),
		     updated_at       = now()
		 WHERE id = $1
		 RETURNING `+orderColumns,
		id, params.OrderValue, params.OrderDate, (*string)(params.Status), params.ProductCategory,
	)

	result, err := scanOrder(row)
	if err != nil {
		return nil, mapError(err, "order", id)
	}
	return result, nil
}

// Delete removes an order by primary key.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return mapError(err, "order", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteByCustomer removes all orders belonging to a customer and returns
// how many were deleted. Used by the purge deactivation policy.
func (r *Repo) DeleteByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM orders WHERE customer_id = $1`, customerID)
	if err != nil {
		return 0, mapError(err, "order", customerID)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an order by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)

	result, err := scanOrder(row)
	if err != nil {
		return nil, mapError(err, "order", id)
	}
	return result, nil
}

// ListByCustomer returns all orders for a customer, newest first.
func (r *Repo) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.Order, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT `+orderColumns+` FROM orders
		 WHERE customer_id = $1
		 ORDER BY order_date DESC, id DESC`,
		customerID,
	)
	if err != nil {
		return nil, mapError(err, "order", customerID)
	}
	defer rows.Close()

	return collectOrders(rows, customerID)
}

// List returns orders across all customers with pagination, newest first.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]domain.Order, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT `+orderColumns+` FROM orders
		 ORDER BY order_date DESC, id DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, mapError(err, "order", uuid.Nil)
	}
	defer rows.Close()

	return collectOrders(rows, uuid.Nil)
}

// AggregateForCustomer recomputes the customer's aggregates from the order
// ledger: total value, order count, and the latest order date. Runs over
// whatever rows are visible to the current transaction, so calling it after
// a mutation inside the same tx yields post-mutation truth.
func (r *Repo) AggregateForCustomer(ctx context.Context, customerID uuid.UUID) (domain.CustomerStats, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var stats domain.CustomerStats
	err := q.QueryRow(ctx,
		`SELECT COALESCE(SUM(order_value), 0), COUNT(*), MAX(order_date)
		 FROM orders WHERE customer_id = $1`,
		customerID,
	).Scan(&stats.TotalSpend, &stats.TotalOrders, &stats.LastOrderDate)
	if err != nil {
		return domain.CustomerStats{}, mapError(err, "order", customerID)
	}

	return stats, nil
}

// MaxOrderDate returns the latest order_date among the customer's remaining
// orders, or nil if the customer has none. Used when a deletion or a date
// change may have displaced the previous latest order.
func (r *Repo) MaxOrderDate(ctx context.Context, customerID uuid.UUID) (*time.Time, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var max *time.Time
	err := q.QueryRow(ctx,
		`SELECT MAX(order_date) FROM orders WHERE customer_id = $1`,
		customerID,
	).Scan(&max)
	if err != nil {
		return nil, mapError(err, "order", customerID)
	}

	return max, nil
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	// pgx.ErrNoRows -> domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	// PgError codes
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		case "40001": // serialization_failure
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrConflict)
		}
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s %s: %w", entity, id, err)
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

// scanOrder scans one orders row into a domain.Order.
func scanOrder(row pgx.Row) (*domain.Order, error) {
	var (
		o      domain.Order
		status string
	)
	err := row.Scan(
		&o.ID, &o.CustomerID, &o.OrderValue, &o.OrderDate,
		&status, &o.ProductCategory, &o.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	o.Status = domain.OrderStatus(status)
	return &o, nil
}

func collectOrders(rows pgx.Rows, id uuid.UUID) ([]domain.Order, error) {
	var orders []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, mapError(err, "order", id)
		}
		orders = append(orders, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "order", id)
	}
	return orders, nil
}
