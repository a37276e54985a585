// Package store keeps the capped search history, newest first.
package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// DefaultLimit is the number of searches kept when no limit is configured.
const DefaultLimit = 10

// Entry is one remembered search.
type Entry struct {
	ID                uuid.UUID       `json:"id"`
	EstimateID        uuid.UUID       `json:"estimateId"`
	Timestamp         time.Time       `json:"timestamp"`
	Location          string          `json:"location"`
	Bedrooms          string          `json:"bedrooms"`
	Sqft              float64         `json:"sqft"`
	Zone              string          `json:"zone"`
	Price             int64           `json:"price"`
	TotalWithInterior *int64          `json:"totalWithInterior,omitempty"`
	Search            json.RawMessage `json:"search,omitempty"`
}

// Store is a capped, newest-first history log.
type Store interface {
	Append(ctx context.Context, entry Entry) error
	List(ctx context.Context) ([]Entry, error)
	Clear(ctx context.Context) error
}

// Stamp fills in the id and timestamp when they are missing.
func Stamp(e Entry, now time.Time) Entry {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = now.UTC().Truncate(time.Second)
	}
	return e
}

func limitOrDefault(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}
