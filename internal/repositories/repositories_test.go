package repositories

import (
	"database/sql"
	"errors"
	"reflect"
	"testing"

	"github.com/JAX838/delight-vision-sounds/internal/models"
	"github.com/JAX838/delight-vision-sounds/internal/shared"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db
}

func TestKVRepository(t *testing.T) {
	kv := NewKVRepository(newTestDB(t))

	t.Run("GetMissingKey", func(t *testing.T) {
		_, err := kv.Get("absent")
		if !errors.Is(err, shared.ErrKeyNotFound) {
			t.Errorf("expected ErrKeyNotFound, got %v", err)
		}
	})

	t.Run("PutGetRoundTrip", func(t *testing.T) {
		payload := []byte(`{"hello":"world"}`)
		if err := kv.Put("greeting", payload); err != nil {
			t.Fatalf("Put failed: %v", err)
		}

		got, err := kv.Get("greeting")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if string(got) != string(payload) {
			t.Errorf("round trip mismatch: %s", got)
		}
	})

	t.Run("PutUpserts", func(t *testing.T) {
		kv.Put("k", []byte("one"))
		kv.Put("k", []byte("two"))

		got, err := kv.Get("k")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if string(got) != "two" {
			t.Errorf("expected upserted value, got %s", got)
		}
	})

	t.Run("DeleteAbsentKeyIsNoop", func(t *testing.T) {
		if err := kv.Delete("never-existed"); err != nil {
			t.Errorf("deleting absent key should not error: %v", err)
		}
	})
}

func TestCartStorage(t *testing.T) {
	lines := []models.CartLine{
		{ProductID: "p1", Name: "Studio Monitor", UnitPrice: 1000, Stock: 5, Quantity: 2},
		{ProductID: "p2", Name: "Amplifier", UnitPrice: 500, Stock: 3, Quantity: 3},
	}

	t.Run("RoundTrip", func(t *testing.T) {
		storage := NewCartStorage(NewKVRepository(newTestDB(t)), nil)

		if err := storage.Save(lines); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		got, err := storage.Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if !reflect.DeepEqual(got, lines) {
			t.Errorf("round trip mismatch:\nwant %v\ngot  %v", lines, got)
		}
	})

	t.Run("AbsentStateIsEmptyCart", func(t *testing.T) {
		storage := NewCartStorage(NewKVRepository(newTestDB(t)), nil)

		got, err := storage.Load()
		if err != nil {
			t.Fatalf("Load of absent cart should not error: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected empty cart, got %v", got)
		}
	})

	t.Run("CorruptStateIsEmptyCart", func(t *testing.T) {
		kv := NewKVRepository(newTestDB(t))
		storage := NewCartStorage(kv, nil)

		if err := kv.Put(CartKey, []byte("{not json")); err != nil {
			t.Fatalf("failed to plant corrupt state: %v", err)
		}

		got, err := storage.Load()
		if err != nil {
			t.Fatalf("Load of corrupt cart should not error: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected empty cart from corrupt state, got %v", got)
		}
	})

	t.Run("SaveEmptyCart", func(t *testing.T) {
		kv := NewKVRepository(newTestDB(t))
		storage := NewCartStorage(kv, nil)

		storage.Save(lines)
		if err := storage.Save(nil); err != nil {
			t.Fatalf("saving empty cart failed: %v", err)
		}

		got, err := storage.Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected cleared cart, got %v", got)
		}
	})
}
