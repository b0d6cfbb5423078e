// Package customer implements the Customer repository using PostgreSQL.
// The customers table carries denormalized order aggregates (total_spend,
// total_orders, last_order_date) maintained by the order service.
package customer

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/minicrm/crm-backend/internal/adapter/postgres"
	"github.com/minicrm/crm-backend/internal/domain"
)

const customerColumns = `id, name, email, phone, total_spend, total_orders, last_order_date, is_active, created_at`

// Repo provides customer persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new customer repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new customer and returns the persisted domain.Customer.
// Aggregates start at zero regardless of what the caller passes.
func (r *Repo) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`INSERT INTO customers (id, name, email, phone)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+customerColumns,
		c.ID, c.Name, c.Email, c.Phone,
	)

	result, err := scanCustomer(row)
	if err != nil {
		return nil, mapError(err, "customer", c.ID)
	}
	return result, nil
}

// Update modifies the customer's profile fields. nil params keep current values.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.CustomerUpdateParams) (*domain.Customer, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`UPDATE customers
		 SET name       = COALESCE($2, name),
		     email      = COALESCE($3, email),
		     phone      = COALESCE($4, phone),
		     updated_at = now()
		 WHERE id = $1
		 RETURNING `+customerColumns,
		id, params.Name, params.Email, params.Phone,
	)

	result, err := scanCustomer(row)
	if err != nil {
		return nil, mapError(err, "customer", id)
	}
	return result, nil
}

// UpdateStats replaces the denormalized aggregate columns for the customer.
// Callers must hold the customer row lock (GetByIDForUpdate) within the same
// transaction so concurrent reconciliations cannot interleave.
func (r *Repo) UpdateStats(ctx context.Context, id uuid.UUID, stats domain.CustomerStats) (*domain.Customer, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`UPDATE customers
		 SET total_spend     = $2,
		     total_orders    = $3,
		     last_order_date = $4,
		     updated_at      = now()
		 WHERE id = $1
		 RETURNING `+customerColumns,
		id, stats.TotalSpend, stats.TotalOrders, stats.LastOrderDate,
	)

	result, err := scanCustomer(row)
	if err != nil {
		return nil, mapError(err, "customer", id)
	}
	return result, nil
}

// SetActive flips the customer's activity flag.
func (r *Repo) SetActive(ctx context.Context, id uuid.UUID, active bool) (*domain.Customer, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`UPDATE customers
		 SET is_active = $2, updated_at = now()
		 WHERE id = $1
		 RETURNING `+customerColumns,
		id, active,
	)

	result, err := scanCustomer(row)
	if err != nil {
		return nil, mapError(err, "customer", id)
	}
	return result, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a customer by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE id = $1`, id)

	result, err := scanCustomer(row)
	if err != nil {
		return nil, mapError(err, "customer", id)
	}
	return result, nil
}

// GetByIDForUpdate returns a customer by primary key with a row lock
// (SELECT ... FOR UPDATE). It must run inside a transaction; the lock
// serializes concurrent aggregate reconciliations for the same customer.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE id = $1 FOR UPDATE`, id)

	result, err := scanCustomer(row)
	if err != nil {
		return nil, mapError(err, "customer", id)
	}
	return result, nil
}

// GetByEmail returns a customer by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE email = $1`, email)

	result, err := scanCustomer(row)
	if err != nil {
		return nil, mapError(err, "customer", uuid.Nil)
	}
	return result, nil
}

// List returns customers matching the filter, with a total count ignoring
// limit/offset.
func (r *Repo) List(ctx context.Context, f domain.CustomerFilter) ([]domain.Customer, int, error) {
	f.Normalize()
	q := postgres.QuerierFromCtx(ctx, r.pool)

	builder := squirrel.Select(customerColumns).
		From("customers").
		PlaceholderFormat(squirrel.Dollar)
	countBuilder := squirrel.Select("COUNT(*)").
		From("customers").
		PlaceholderFormat(squirrel.Dollar)

	if f.Search != nil && *f.Search != "" {
		pattern := "%" + *f.Search + "%"
		cond := squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"email": pattern},
		}
		builder = builder.Where(cond)
		countBuilder = countBuilder.Where(cond)
	}
	if f.IsActive != nil {
		builder = builder.Where(squirrel.Eq{"is_active": *f.IsActive})
		countBuilder = countBuilder.Where(squirrel.Eq{"is_active": *f.IsActive})
	}
	if f.MinSpend != nil {
		builder = builder.Where(squirrel.GtOrEq{"total_spend": *f.MinSpend})
		countBuilder = countBuilder.Where(squirrel.GtOrEq{"total_spend": *f.MinSpend})
	}

	builder = builder.
		OrderBy(f.SortBy + " " + f.SortOrder + ", id " + f.SortOrder).
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset))

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build customer list query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, mapError(err, "customer", uuid.Nil)
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, 0, mapError(err, "customer", uuid.Nil)
		}
		customers = append(customers, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, mapError(err, "customer", uuid.Nil)
	}

	countSQL, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build customer count query: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, mapError(err, "customer", uuid.Nil)
	}

	return customers, total, nil
}

// ListActive returns all active customers. Segmentation classifies the full
// active population in memory, so no pagination here.
func (r *Repo) ListActive(ctx context.Context) ([]domain.Customer, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE is_active ORDER BY created_at`)
	if err != nil {
		return nil, mapError(err, "customer", uuid.Nil)
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, mapError(err, "customer", uuid.Nil)
		}
		customers = append(customers, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "customer", uuid.Nil)
	}

	return customers, nil
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

// scanCustomer scans one customers row into a domain.Customer.
func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone,
		&c.Stats.TotalSpend, &c.Stats.TotalOrders, &c.Stats.LastOrderDate,
		&c.IsActive, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
