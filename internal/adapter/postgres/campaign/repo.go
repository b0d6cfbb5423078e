// Package campaign implements the Campaign repository using PostgreSQL.
package campaign

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/minicrm/crm-backend/internal/adapter/postgres"
	"github.com/minicrm/crm-backend/internal/domain"
)

const campaignColumns = `id, name, message_template, audience_type, audience_size, status, created_by, created_at`

// Repo provides campaign persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new campaign repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new campaign and returns the persisted domain.Campaign.
// AudienceSize is the snapshot computed by the service at creation time.
func (r *Repo) Create(ctx context.Context, c *domain.Campaign) (*domain.Campaign, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`INSERT INTO campaigns (id, name, message_template, audience_type, audience_size, status, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+campaignColumns,
		c.ID, c.Name, c.MessageTemplate, string(c.AudienceType), c.AudienceSize, string(c.Status), c.CreatedBy,
	)

	result, err := scanCampaign(row)
	if err != nil {
		return nil, mapError(err, "campaign", c.ID)
	}
	return result, nil
}

// Update modifies campaign fields. nil params keep current values.
// audienceSize is applied only when non-nil (targeting changed).
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.CampaignUpdateParams, audienceSize *int) (*domain.Campaign, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`UPDATE campaigns
		 SET name             = COALESCE($2, name),
		     message_template = COALESCE($3, message_template),
		     audience_type    = COALESCE($4, audience_type),
		     audience_size    = COALESCE($5, audience_size),
		     status           = COALESCE($6, status),
		     updated_at       = now()
		 WHERE id = $1
		 RETURNING `+campaignColumns,
		id, params.Name, params.MessageTemplate, (*string)(params.AudienceType), audienceSize, (*string)(params.Status),
	)

	result, err := scanCampaign(row)
	if err != nil {
		return nil, mapError(err, "campaign", id)
	}
	return result, nil
}

// Delete removes a campaign by primary key.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return mapError(err, "campaign", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("campaign %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// GetByID returns a campaign by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)

	result, err := scanCampaign(row)
	if err != nil {
		return nil, mapError(err, "campaign", id)
	}
	return result, nil
}

// List returns all campaigns, newest first.
func (r *Repo) List(ctx context.Context) ([]domain.Campaign, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT `+campaignColumns+` FROM campaigns ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, mapError(err, "campaign", uuid.Nil)
	}
	defer rows.Close()

	var campaigns []domain.Campaign
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, mapError(err, "campaign", uuid.Nil)
		}
		campaigns = append(campaigns, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "campaign", uuid.Nil)
	}

	return campaigns, nil
}

// Count returns the total number of campaigns.
func (r *Repo) Count(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM campaigns`).Scan(&count)
	if err != nil {
		return 0, mapError(err, "campaign", uuid.Nil)
	}

	return count, nil
}

// CountByCreator returns how many campaigns the given actor owns.
func (r *Repo) CountByCreator(ctx context.Context, createdBy string) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM campaigns WHERE created_by = $1`, createdBy,
	).Scan(&count)
	if err != nil {
		return 0, mapError(err, "campaign", uuid.Nil)
	}

	return count, nil
}

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

// scanCampaign scans one campaigns row into a domain.Campaign.
func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var (
		c        domain.Campaign
		audience string
		status   string
	)
	err := row.Scan(
		&c.ID, &c.Name, &c.MessageTemplate, &audience,
		&c.AudienceSize, &status, &c.CreatedBy, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.AudienceType = domain.AudienceType(audience)
	c.Status = domain.CampaignStatus(status)
	return &c, nil
}
