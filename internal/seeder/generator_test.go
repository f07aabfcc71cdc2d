package seeder

import (
	"errors"
	"testing"
	"time"

	"github.com/Lumos-Labs-HQ/kons-seed/internal/types"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"product", KindProduct, false},
		{"Products", KindProduct, false},
		{"USER", KindUser, false},
		{" transactions ", KindTransaction, false},
		{"order", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownKind) {
				t.Errorf("ParseKind(%q) error = %v, want ErrUnknownKind", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseKind(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}

func TestBetweenIsInclusive(t *testing.T) {
	g := NewDataGenerator(1)
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		v := g.Between(1, 3)
		if v < 1 || v > 3 {
			t.Fatalf("Between(1, 3) = %d", v)
		}
		seen[v] = true
	}
	if len(seen) != 3 {
		t.Errorf("Between(1, 3) produced %v", seen)
	}
}

func TestChanceBounds(t *testing.T) {
	g := NewDataGenerator(7)
	for i := 0; i < 100; i++ {
		if g.Chance(0) {
			t.Fatal("Chance(0) returned true")
		}
		if !g.Chance(1) {
			t.Fatal("Chance(1) returned false")
		}
	}
}

func TestBackdate(t *testing.T) {
	g := NewDataGenerator(3)
	now := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	oldest := now.AddDate(0, 0, -90)

	for i := 0; i < 200; i++ {
		d := g.Backdate(now, 90)
		if d.After(now) || d.Before(oldest) {
			t.Fatalf("Backdate() = %v, outside [%v, %v]", d, oldest, now)
		}
	}

	if d := g.Backdate(now, 0); !d.Equal(now) {
		t.Errorf("Backdate(now, 0) = %v", d)
	}
}

func TestPurchase(t *testing.T) {
	products := []types.ProductRow{
		{ID: 1, Name: "Bone", Price: 2.5},
		{ID: 2, Name: "Ball", Price: 4},
		{ID: 3, Name: "Leash", Price: 12.25},
		{ID: 4, Name: "Bowl", Price: 7},
	}
	g := NewDataGenerator(11)

	for i := 0; i < 200; i++ {
		amount, items := g.Purchase(products, 3, 3)
		if len(items) < 1 || len(items) > 3 {
			t.Fatalf("purchase has %d items", len(items))
		}

		seen := map[int64]bool{}
		total := 0.0
		for _, item := range items {
			if seen[item.Product] {
				t.Fatalf("product %d sampled twice", item.Product)
			}
			seen[item.Product] = true
			if item.Quantity < 1 || item.Quantity > 3 {
				t.Fatalf("quantity %d out of range", item.Quantity)
			}
			if item.TransactionID != 0 {
				t.Fatalf("item already bound to transaction %d", item.TransactionID)
			}
			total += item.Price * float64(item.Quantity)
		}

		if amount != -total {
			t.Fatalf("amount %v, want %v", amount, -total)
		}
	}
}

func TestPurchaseWithSingleProduct(t *testing.T) {
	g := NewDataGenerator(5)
	amount, items := g.Purchase([]types.ProductRow{{ID: 9, Name: "Treat", Price: 1}}, 3, 3)
	if len(items) != 1 || items[0].Product != 9 {
		t.Fatalf("items = %+v", items)
	}
	if amount != -float64(items[0].Quantity) {
		t.Errorf("amount = %v", amount)
	}
}

func TestSameSeedSameSequence(t *testing.T) {
	a, b := NewDataGenerator(99), NewDataGenerator(99)
	for i := 0; i < 20; i++ {
		if a.Between(0, 1000) != b.Between(0, 1000) {
			t.Fatal("generators with the same seed diverged")
		}
	}
}

func TestTokenGeneratorRedrawsDuplicates(t *testing.T) {
	draws := []string{"a", "a", "b", "a", "b", "c"}
	g := NewTokenGenerator()
	g.next = func() string {
		tok := draws[0]
		draws = draws[1:]
		return tok
	}

	got := []string{g.Next(), g.Next(), g.Next()}
	want := []string{"a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTokensAreUUIDs(t *testing.T) {
	g := NewTokenGenerator()
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		tok := g.Next()
		if len(tok) != 36 || seen[tok] {
			t.Fatalf("bad or duplicate token %q", tok)
		}
		seen[tok] = true
	}
}
