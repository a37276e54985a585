package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"homeverse_backend/platform/apperr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Estimate is the database model for an archived valuation.
type Estimate struct {
	ID                uuid.UUID       `db:"id" json:"id"`
	Location          string          `db:"location" json:"location"`
	Zone              string          `db:"zone" json:"zone"`
	Confidence        string          `db:"confidence" json:"confidence"`
	Bedrooms          string          `db:"bedrooms" json:"bedrooms"`
	AreaSqft          float64         `db:"area_sqft" json:"areaSqft"`
	FinalPrice        int64           `db:"final_price" json:"finalPrice"`
	PricePerSqft      int64           `db:"price_per_sqft" json:"pricePerSqft"`
	Source            string          `db:"source" json:"source"`
	InteriorCost      *int64          `db:"interior_cost" json:"interiorCost,omitempty"`
	TotalWithInterior *int64          `db:"total_with_interior" json:"totalWithInterior,omitempty"`
	Payload           json.RawMessage `db:"payload" json:"payload"`
	CreatedAt         time.Time       `db:"created_at" json:"createdAt"`
}

const estimateNotFoundMsg = "estimate not found"

// Repository provides database operations for archived estimates.
type Repository struct {
	pool *pgxpool.Pool
}

// New creates a new estimates repository.
func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Insert archives an estimate. Re-inserting the same id is a no-op so task
// retries stay idempotent.
func (r *Repository) Insert(ctx context.Context, e *Estimate) error {
	query := `
		INSERT INTO estimates (
			id, location, zone, confidence, bedrooms, area_sqft,
			final_price, price_per_sqft, source, interior_cost, total_with_interior,
			payload, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (id) DO NOTHING`

	if _, err := r.pool.Exec(ctx, query,
		e.ID, e.Location, e.Zone, e.Confidence, e.Bedrooms, e.AreaSqft,
		e.FinalPrice, e.PricePerSqft, e.Source, e.InteriorCost, e.TotalWithInterior,
		e.Payload, e.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to insert estimate: %w", err)
	}
	return nil
}

// GetByID retrieves an archived estimate.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*Estimate, error) {
	var e Estimate
	query := `
		SELECT id, location, zone, confidence, bedrooms, area_sqft,
			final_price, price_per_sqft, source, interior_cost, total_with_interior,
			payload, created_at
		FROM estimates WHERE id = $1`

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.Location, &e.Zone, &e.Confidence, &e.Bedrooms, &e.AreaSqft,
		&e.FinalPrice, &e.PricePerSqft, &e.Source, &e.InteriorCost, &e.TotalWithInterior,
		&e.Payload, &e.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound(estimateNotFoundMsg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get estimate: %w", err)
	}
	return &e, nil
}

// Ping checks the database connection.
func (r *Repository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}
