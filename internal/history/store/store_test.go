package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func newRedisStore(t *testing.T, limit int) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, "", limit), mr
}

func stores(t *testing.T, limit int) map[string]Store {
	rs, _ := newRedisStore(t, limit)
	return map[string]Store{
		"memory": NewMemoryStore(limit),
		"redis":  rs,
	}
}

func TestStore_NewestFirstAndCapped(t *testing.T) {
	for name, st := range stores(t, 3) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			for i := 1; i <= 5; i++ {
				if err := st.Append(ctx, Entry{Location: fmt.Sprintf("loc-%d", i), Price: int64(i)}); err != nil {
					t.Fatalf("append %d: %v", i, err)
				}
			}

			got, err := st.List(ctx)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			if len(got) != 3 {
				t.Fatalf("expected 3 entries, got %d", len(got))
			}
			for i, want := range []string{"loc-5", "loc-4", "loc-3"} {
				if got[i].Location != want {
					t.Fatalf("entry %d: expected %s, got %s", i, want, got[i].Location)
				}
				if got[i].ID == uuid.Nil || got[i].Timestamp.IsZero() {
					t.Fatalf("entry %d not stamped: %+v", i, got[i])
				}
			}
		})
	}
}

func TestStore_Clear(t *testing.T) {
	for name, st := range stores(t, 10) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			if err := st.Append(ctx, Entry{Location: "Sitabuldi"}); err != nil {
				t.Fatalf("append: %v", err)
			}
			if err := st.Clear(ctx); err != nil {
				t.Fatalf("clear: %v", err)
			}
			got, err := st.List(ctx)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			if len(got) != 0 {
				t.Fatalf("expected empty history, got %+v", got)
			}
		})
	}
}

func TestStore_DefaultLimit(t *testing.T) {
	st := NewMemoryStore(0)
	ctx := context.Background()
	for i := 0; i < DefaultLimit+5; i++ {
		_ = st.Append(ctx, Entry{Price: int64(i)})
	}
	got, _ := st.List(ctx)
	if len(got) != DefaultLimit {
		t.Fatalf("expected %d entries, got %d", DefaultLimit, len(got))
	}
}

func TestRedisStore_SkipsUndecodableEntries(t *testing.T) {
	st, mr := newRedisStore(t, 10)
	ctx := context.Background()

	if err := st.Append(ctx, Entry{Location: "Dhantoli"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if _, err := mr.Lpush(DefaultRedisKey, "{not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	got, err := st.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].Location != "Dhantoli" {
		t.Fatalf("expected only the valid entry, got %+v", got)
	}
}

func TestRedisStore_PingAndOutage(t *testing.T) {
	st, mr := newRedisStore(t, 10)
	ctx := context.Background()

	if err := st.Ping(ctx); err != nil {
		t.Fatalf("ping: %v", err)
	}

	mr.Close()
	if err := st.Append(ctx, Entry{Location: "Khamla"}); err == nil {
		t.Fatal("expected append to fail once redis is gone")
	}
	if _, err := st.List(ctx); err == nil {
		t.Fatal("expected list to fail once redis is gone")
	}
}

func TestStamp(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 30, 15, 999, time.FixedZone("IST", 19800))

	fresh := Stamp(Entry{}, now)
	if fresh.ID == uuid.Nil {
		t.Fatal("expected an id")
	}
	if !fresh.Timestamp.Equal(now.Truncate(time.Second)) || fresh.Timestamp.Location() != time.UTC {
		t.Fatalf("unexpected timestamp %v", fresh.Timestamp)
	}

	id := uuid.New()
	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	kept := Stamp(Entry{ID: id, Timestamp: at}, now)
	if kept.ID != id || !kept.Timestamp.Equal(at) {
		t.Fatalf("expected existing id and timestamp kept, got %+v", kept)
	}
}
