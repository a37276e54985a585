// Package service records completed estimates in the search history and the
// estimate archive.
package service

import (
	"context"
	"encoding/json"
	"fmt"

	"homeverse_backend/internal/events"
	"homeverse_backend/internal/history/repository"
	"homeverse_backend/internal/history/store"
	"homeverse_backend/platform/apperr"
	"homeverse_backend/platform/logger"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const qrSize = 256

// Persister archives an estimate, directly or through the task queue.
type Persister interface {
	PersistEstimate(ctx context.Context, estimate repository.Estimate) error
}

// Archive reads archived estimates.
type Archive interface {
	GetByID(ctx context.Context, id uuid.UUID) (*repository.Estimate, error)
}

// Service manages search history and archived estimates.
type Service struct {
	store     store.Store
	persister Persister
	archive   Archive
	shareBase string
	log       *logger.Logger
}

// New creates a history service. persister and archive may be nil when no
// database is configured.
func New(st store.Store, persister Persister, archive Archive, shareBase string, log *logger.Logger) *Service {
	return &Service{store: st, persister: persister, archive: archive, shareBase: shareBase, log: log}
}

// HandleEstimateCompleted records a finished valuation.
func (s *Service) HandleEstimateCompleted(ctx context.Context, e events.EstimateCompleted) error {
	entry := store.Entry{
		EstimateID:        e.EstimateID,
		Timestamp:         e.OccurredAt(),
		Location:          e.Location,
		Bedrooms:          e.Bedrooms,
		Sqft:              e.Sqft,
		Zone:              e.Zone,
		Price:             e.FinalPrice,
		TotalWithInterior: e.TotalWithInterior,
		Search:            e.Request,
	}
	if err := s.store.Append(ctx, entry); err != nil {
		s.log.StoreError("history_append", err)
		return err
	}

	if s.persister == nil {
		return nil
	}
	payload, err := json.Marshal(struct {
		Request json.RawMessage `json:"request"`
		Result  json.RawMessage `json:"result"`
	}{e.Request, e.Result})
	if err != nil {
		return fmt.Errorf("encode estimate payload: %w", err)
	}
	rec := repository.Estimate{
		ID:                e.EstimateID,
		Location:          e.Location,
		Zone:              e.Zone,
		Confidence:        e.Confidence,
		Bedrooms:          e.Bedrooms,
		AreaSqft:          e.Sqft,
		FinalPrice:        e.FinalPrice,
		PricePerSqft:      e.PricePerSqft,
		Source:            e.Source,
		InteriorCost:      e.InteriorCost,
		TotalWithInterior: e.TotalWithInterior,
		Payload:           payload,
		CreatedAt:         e.OccurredAt().UTC(),
	}
	if err := s.persister.PersistEstimate(ctx, rec); err != nil {
		s.log.StoreError("persist_estimate", err)
		return err
	}
	return nil
}

// List returns the history, newest first.
func (s *Service) List(ctx context.Context) ([]store.Entry, error) {
	entries, err := s.store.List(ctx)
	if err != nil {
		s.log.StoreError("history_list", err)
		return nil, apperr.Wrap(apperr.KindUnavailable, "history unavailable", err)
	}
	return entries, nil
}

// Clear removes every history entry.
func (s *Service) Clear(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		s.log.StoreError("history_clear", err)
		return apperr.Wrap(apperr.KindUnavailable, "history unavailable", err)
	}
	return nil
}

// GetEstimate reads an archived estimate.
func (s *Service) GetEstimate(ctx context.Context, id uuid.UUID) (*repository.Estimate, error) {
	if s.archive == nil {
		return nil, apperr.Unavailable("estimate archive is not configured")
	}
	return s.archive.GetByID(ctx, id)
}

// ShareQR renders a PNG QR code linking to an archived estimate.
func (s *Service) ShareQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	if _, err := s.GetEstimate(ctx, id); err != nil {
		return nil, err
	}
	png, err := qrcode.Encode(s.ShareURL(id), qrcode.Medium, qrSize)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to render qr code", err)
	}
	return png, nil
}

// ShareURL is the public link for an estimate.
func (s *Service) ShareURL(id uuid.UUID) string {
	return s.shareBase + "/api/v1/estimates/" + id.String()
}

// DirectPersister writes estimates straight to the archive. It is used when
// no task queue is configured.
type DirectPersister struct {
	Repo interface {
		Insert(ctx context.Context, e *repository.Estimate) error
	}
}

func (p DirectPersister) PersistEstimate(ctx context.Context, estimate repository.Estimate) error {
	return p.Repo.Insert(ctx, &estimate)
}
