// Package events holds the valuation domain events. The bus itself lives in
// platform/events; the aliases here let modules depend on one package.
package events

import (
	"context"
	"encoding/json"

	"homeverse_backend/platform/events"
	"homeverse_backend/platform/logger"

	"github.com/google/uuid"
)

type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
	InMemoryBus = events.InMemoryBus
)

// Re-export platform functions
var (
	NewBaseEvent   = events.NewBaseEvent
	NewBaseEventAt = events.NewBaseEventAt
)

// NewInMemoryBus returns the in-process bus shared by all modules.
func NewInMemoryBus(log *logger.Logger) *InMemoryBus {
	return events.NewInMemoryBus(log)
}

// On subscribes fn to every event of type E published on bus.
func On[E Event](bus Bus, fn func(ctx context.Context, event E) error) {
	events.On(bus, fn)
}

// EstimateCompleted is published after a valuation request produced a price.
// Request and Result hold the JSON documents returned to the caller.
type EstimateCompleted struct {
	BaseEvent
	EstimateID        uuid.UUID       `json:"estimateId"`
	Location          string          `json:"location"`
	Bedrooms          string          `json:"bedrooms"`
	Sqft              float64         `json:"sqft"`
	Zone              string          `json:"zone"`
	Confidence        string          `json:"confidence"`
	FinalPrice        int64           `json:"finalPrice"`
	PricePerSqft      int64           `json:"pricePerSqft"`
	Source            string          `json:"source"`
	InteriorCost      *int64          `json:"interiorCost,omitempty"`
	TotalWithInterior *int64          `json:"totalWithInterior,omitempty"`
	Request           json.RawMessage `json:"request"`
	Result            json.RawMessage `json:"result"`
}

func (e EstimateCompleted) EventName() string { return "valuation.estimate.completed" }
