package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"homeverse_backend/internal/events"
	"homeverse_backend/internal/history/repository"
	"homeverse_backend/internal/history/store"
	"homeverse_backend/platform/apperr"
	"homeverse_backend/platform/logger"

	"github.com/google/uuid"
)

type recordingPersister struct {
	got []repository.Estimate
	err error
}

func (p *recordingPersister) PersistEstimate(_ context.Context, e repository.Estimate) error {
	p.got = append(p.got, e)
	return p.err
}

type mapArchive map[uuid.UUID]*repository.Estimate

func (a mapArchive) GetByID(_ context.Context, id uuid.UUID) (*repository.Estimate, error) {
	e, ok := a[id]
	if !ok {
		return nil, apperr.NotFound("estimate not found")
	}
	return e, nil
}

type failingStore struct{ store.Store }

func (failingStore) Append(context.Context, store.Entry) error { return errors.New("redis down") }
func (failingStore) List(context.Context) ([]store.Entry, error) {
	return nil, errors.New("redis down")
}
func (failingStore) Clear(context.Context) error { return errors.New("redis down") }

func completedEvent() events.EstimateCompleted {
	total := int64(4765000)
	interior := int64(265000)
	return events.EstimateCompleted{
		BaseEvent:         events.NewBaseEventAt(time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)),
		EstimateID:        uuid.New(),
		Location:          "Sitabuldi",
		Bedrooms:          "2",
		Sqft:              1000,
		Zone:              "central",
		Confidence:        "high",
		FinalPrice:        4500000,
		PricePerSqft:      4500,
		Source:            "local",
		InteriorCost:      &interior,
		TotalWithInterior: &total,
		Request:           json.RawMessage(`{"location":"Sitabuldi"}`),
		Result:            json.RawMessage(`{"price":4500000}`),
	}
}

func TestHandleEstimateCompleted_AppendsAndPersists(t *testing.T) {
	st := store.NewMemoryStore(10)
	p := &recordingPersister{}
	svc := New(st, p, nil, "http://localhost:8080", logger.Discard())
	evt := completedEvent()

	if err := svc.HandleEstimateCompleted(context.Background(), evt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.EstimateID != evt.EstimateID || e.Price != 4500000 || e.Zone != "central" {
		t.Fatalf("unexpected entry %+v", e)
	}
	if !e.Timestamp.Equal(evt.OccurredAt()) {
		t.Fatalf("expected event timestamp, got %v", e.Timestamp)
	}
	if e.TotalWithInterior == nil || *e.TotalWithInterior != 4765000 {
		t.Fatalf("unexpected total %v", e.TotalWithInterior)
	}

	if len(p.got) != 1 {
		t.Fatalf("expected 1 persisted estimate, got %d", len(p.got))
	}
	rec := p.got[0]
	if rec.ID != evt.EstimateID || rec.FinalPrice != 4500000 || rec.Confidence != "high" {
		t.Fatalf("unexpected record %+v", rec)
	}
	var payload struct {
		Request map[string]any `json:"request"`
		Result  map[string]any `json:"result"`
	}
	if err := json.Unmarshal(rec.Payload, &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if payload.Request["location"] != "Sitabuldi" || payload.Result["price"] != float64(4500000) {
		t.Fatalf("unexpected payload %s", rec.Payload)
	}
}

func TestHandleEstimateCompleted_WithoutPersister(t *testing.T) {
	svc := New(store.NewMemoryStore(10), nil, nil, "", logger.Discard())

	if err := svc.HandleEstimateCompleted(context.Background(), completedEvent()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestHandleEstimateCompleted_ErrorsPropagate(t *testing.T) {
	svc := New(failingStore{}, nil, nil, "", logger.Discard())
	if err := svc.HandleEstimateCompleted(context.Background(), completedEvent()); err == nil {
		t.Fatal("expected store error")
	}

	p := &recordingPersister{err: errors.New("queue full")}
	svc = New(store.NewMemoryStore(10), p, nil, "", logger.Discard())
	if err := svc.HandleEstimateCompleted(context.Background(), completedEvent()); err == nil {
		t.Fatal("expected persister error")
	}
}

func TestListAndClear_StoreFailureIsUnavailable(t *testing.T) {
	svc := New(failingStore{}, nil, nil, "", logger.Discard())

	if _, err := svc.List(context.Background()); !apperr.Is(err, apperr.KindUnavailable) {
		t.Fatalf("expected unavailable, got %v", err)
	}
	if err := svc.Clear(context.Background()); !apperr.Is(err, apperr.KindUnavailable) {
		t.Fatalf("expected unavailable, got %v", err)
	}
}

func TestGetEstimate(t *testing.T) {
	id := uuid.New()
	archive := mapArchive{id: {ID: id, Location: "Dhantoli"}}

	noArchive := New(store.NewMemoryStore(10), nil, nil, "", logger.Discard())
	if _, err := noArchive.GetEstimate(context.Background(), id); !apperr.Is(err, apperr.KindUnavailable) {
		t.Fatalf("expected unavailable, got %v", err)
	}

	svc := New(store.NewMemoryStore(10), nil, archive, "", logger.Discard())
	got, err := svc.GetEstimate(context.Background(), id)
	if err != nil || got.Location != "Dhantoli" {
		t.Fatalf("unexpected %+v, %v", got, err)
	}
	if _, err := svc.GetEstimate(context.Background(), uuid.New()); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestShareQR(t *testing.T) {
	id := uuid.New()
	svc := New(store.NewMemoryStore(10), nil, mapArchive{id: {ID: id}}, "https://homeverse.example", logger.Discard())

	if got := svc.ShareURL(id); got != "https://homeverse.example/api/v1/estimates/"+id.String() {
		t.Fatalf("unexpected share url %s", got)
	}

	png, err := svc.ShareQR(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG\r\n\x1a\n")) {
		t.Fatalf("expected a PNG, got % x", png[:8])
	}

	if _, err := svc.ShareQR(context.Background(), uuid.New()); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found for unknown estimate, got %v", err)
	}
}

func TestDirectPersister(t *testing.T) {
	repo := &insertRecorder{}
	p := DirectPersister{Repo: repo}
	id := uuid.New()

	if err := p.PersistEstimate(context.Background(), repository.Estimate{ID: id}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.ids) != 1 || repo.ids[0] != id {
		t.Fatalf("unexpected inserts %v", repo.ids)
	}
}

type insertRecorder struct{ ids []uuid.UUID }

func (r *insertRecorder) Insert(_ context.Context, e *repository.Estimate) error {
	r.ids = append(r.ids, e.ID)
	return nil
}
