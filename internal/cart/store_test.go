package cart

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/pawmate/petcare-backend/internal/catalog"
	"github.com/pawmate/petcare-backend/internal/snapshot"
)

func newTestStore(t *testing.T, snaps snapshot.Store) *Store {
	t.Helper()
	return New(context.Background(), snaps, time.Second, zap.NewNop())
}

func product(id string, price float64) catalog.Product {
	return catalog.Product{
		ID:       id,
		Name:     "product " + id,
		Price:    price,
		Category: catalog.CategoryToys,
		Stock:    10,
	}
}

func TestAddItemMergesSameProduct(t *testing.T) {
	s := newTestStore(t, snapshot.NewMemory())
	p := product("p1", 9.99)

	s.AddItem(p, 1)
	s.AddItem(p, 2)

	items := s.Items()
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
	if items[0].Quantity != 3 {
		t.Fatalf("quantity = %d, want 3", items[0].Quantity)
	}
}

func TestAddItemAppendsDistinctProducts(t *testing.T) {
	s := newTestStore(t, snapshot.NewMemory())

	s.AddItem(product("p1", 1), 1)
	s.AddItem(product("p2", 2), 1)
	s.AddItem(product("p3", 3), 1)

	items := s.Items()
	if len(items) != 3 {
		t.Fatalf("items = %d, want 3", len(items))
	}
	// Insertion order is preserved.
	for i, want := range []string{"p1", "p2", "p3"} {
		if items[i].Product.ID != want {
			t.Fatalf("items[%d].Product.ID = %q, want %q", i, items[i].Product.ID, want)
		}
	}
}

func TestAddItemTreatsNonPositiveQuantityAsOne(t *testing.T) {
	s := newTestStore(t, snapshot.NewMemory())

	s.AddItem(product("p1", 5), 0)

	if got := s.Items()[0].Quantity; got != 1 {
		t.Fatalf("quantity = %d, want 1", got)
	}
}

func TestUpdateQuantityClampsToOne(t *testing.T) {
	s := newTestStore(t, snapshot.NewMemory())
	s.AddItem(product("p1", 5), 4)

	for _, q := range []int{0, -1, -100} {
		s.UpdateQuantity("p1", q)

		items := s.Items()
		if len(items) != 1 {
			t.Fatalf("UpdateQuantity(%d) removed the item", q)
		}
		if items[0].Quantity != 1 {
			t.Fatalf("UpdateQuantity(%d): quantity = %d, want 1", q, items[0].Quantity)
		}
	}

	s.UpdateQuantity("p1", 7)
	if got := s.Items()[0].Quantity; got != 7 {
		t.Fatalf("quantity = %d, want 7", got)
	}
}

func TestUpdateQuantityUnknownProductIsNoop(t *testing.T) {
	s := newTestStore(t, snapshot.NewMemory())
	s.AddItem(product("p1", 5), 2)

	s.UpdateQuantity("nope", 9)

	items := s.Items()
	if len(items) != 1 || items[0].Quantity != 2 {
		t.Fatalf("state changed: %+v", items)
	}
}

func TestAggregates(t *testing.T) {
	s := newTestStore(t, snapshot.NewMemory())
	s.AddItem(product("p1", 10), 2)
	s.AddItem(product("p2", 5), 3)

	if got := s.ItemCount(); got != 5 {
		t.Fatalf("ItemCount() = %d, want 5", got)
	}
	if got := s.Total(); got != 35 {
		t.Fatalf("Total() = %v, want 35", got)
	}
}

func TestRemoveItem(t *testing.T) {
	s := newTestStore(t, snapshot.NewMemory())
	s.AddItem(product("p1", 10), 2)
	s.AddItem(product("p2", 5), 3)

	s.RemoveItem("p1")
	if items := s.Items(); len(items) != 1 || items[0].Product.ID != "p2" {
		t.Fatalf("items = %+v, want only p2", items)
	}

	// Removing an absent product is a silent no-op.
	s.RemoveItem("p1")
	if got := len(s.Items()); got != 1 {
		t.Fatalf("items = %d, want 1", got)
	}
}

func TestClear(t *testing.T) {
	s := newTestStore(t, snapshot.NewMemory())
	s.AddItem(product("p1", 10), 2)

	s.Clear()

	if got := len(s.Items()); got != 0 {
		t.Fatalf("items = %d, want 0", got)
	}
	if got := s.Total(); got != 0 {
		t.Fatalf("Total() = %v, want 0", got)
	}
}

func TestRoundTripThroughSnapshot(t *testing.T) {
	snaps := snapshot.NewMemory()

	s := newTestStore(t, snaps)
	s.AddItem(product("p1", 10), 2)
	s.AddItem(product("p2", 5), 3)
	s.UpdateQuantity("p2", 1)
	s.Flush()

	restored := newTestStore(t, snaps)

	a, b := s.Items(), restored.Items()
	if len(a) != len(b) {
		t.Fatalf("restored %d items, want %d", len(b), len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("item %d: restored %+v, want %+v", i, b[i], a[i])
		}
	}
	if s.Total() != restored.Total() {
		t.Fatalf("restored total %v, want %v", restored.Total(), s.Total())
	}
}

func TestCorruptSnapshotFallsBackToEmpty(t *testing.T) {
	snaps := snapshot.NewMemory()
	if err := snaps.Save(context.Background(), StorageName, []byte("{not json")); err != nil {
		t.Fatalf("save: %v", err)
	}

	s := newTestStore(t, snaps)

	if got := len(s.Items()); got != 0 {
		t.Fatalf("items = %d, want 0", got)
	}
}

func TestSubscribeFiresAfterMutation(t *testing.T) {
	s := newTestStore(t, snapshot.NewMemory())

	var seenCount int
	unsubscribe := s.Subscribe(func() {
		seenCount = s.ItemCount()
	})

	s.AddItem(product("p1", 10), 2)
	if seenCount != 2 {
		t.Fatalf("subscriber saw count %d, want 2", seenCount)
	}

	unsubscribe()
	s.AddItem(product("p1", 10), 1)
	if seenCount != 2 {
		t.Fatalf("subscriber ran after unsubscribe")
	}
}
