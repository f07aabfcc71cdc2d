package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/Lumos-Labs-HQ/kons-seed/internal/database/common"
	"github.com/Lumos-Labs-HQ/kons-seed/internal/database/sqlite"
	"github.com/Lumos-Labs-HQ/kons-seed/internal/testhelpers"
	"github.com/Lumos-Labs-HQ/kons-seed/internal/types"
)

func TestQuote(t *testing.T) {
	if got := sqlite.Quote(`User`); got != `"User"` {
		t.Errorf("Quote(User) = %s", got)
	}
	if got := sqlite.Quote(`we"ird`); got != `"we""ird"` {
		t.Errorf("Quote escaped badly: %s", got)
	}
}

func TestInsertAndList(t *testing.T) {
	ctx := context.Background()
	adapter := testhelpers.NewTestAdapter(t)

	tx, err := adapter.Begin(ctx)
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}

	userID, err := tx.InsertUser(ctx, types.UserRow{
		Name: "Alva", Email: "alva@example.com", GoogleID: "token-1", Role: "user", OnLeaderboard: true,
	})
	if err != nil {
		t.Fatalf("InsertUser: %v", err)
	}

	productID, err := tx.InsertProduct(ctx, types.ProductRow{
		Name: "Beagle", Price: 12.5, Description: "Loud", Stock: 4, Flags: types.DefaultProductFlags.String(),
	})
	if err != nil {
		t.Fatalf("InsertProduct: %v", err)
	}

	txID, err := tx.InsertTransaction(ctx, types.TransactionRow{User: userID, Amount: -25, Datetime: time.Unix(1700000000, 0)})
	if err != nil {
		t.Fatalf("InsertTransaction: %v", err)
	}

	if _, err := tx.InsertTransactionItem(ctx, types.TransactionItemRow{
		TransactionID: txID, Product: productID, Quantity: 2, Name: "Beagle", Price: 12.5,
	}); err != nil {
		t.Fatalf("InsertTransactionItem: %v", err)
	}

	if err := tx.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	ids, err := adapter.ListUserIDs(ctx)
	if err != nil {
		t.Fatalf("ListUserIDs: %v", err)
	}
	if len(ids) != 1 || ids[0] != userID {
		t.Errorf("Expected user ids [%d], got %v", userID, ids)
	}

	products, err := adapter.ListProducts(ctx)
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("Expected 1 product, got %d", len(products))
	}
	if p := products[0]; p.ID != productID || p.Name != "Beagle" || p.Price != 12.5 || p.Stock != 4 {
		t.Errorf("Unexpected product: %+v", p)
	}

	var datetime int64
	if err := adapter.DB().QueryRow(`SELECT datetime FROM StoreTransaction WHERE id = ?`, txID).Scan(&datetime); err != nil {
		t.Fatalf("query transaction: %v", err)
	}
	if datetime != 1700000000 {
		t.Errorf("Expected unix timestamp 1700000000, got %d", datetime)
	}

	for _, table := range common.Tables {
		if n := testhelpers.CountRows(t, adapter, table); n != 1 {
			t.Errorf("Expected 1 row in %s, got %d", table, n)
		}
	}
}

func TestRollbackDiscardsRows(t *testing.T) {
	ctx := context.Background()
	adapter := testhelpers.NewTestAdapter(t)

	tx, err := adapter.Begin(ctx)
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if _, err := tx.InsertProduct(ctx, types.ProductRow{Name: "Pug", Price: 3, Flags: "{}"}); err != nil {
		t.Fatalf("InsertProduct: %v", err)
	}
	if err := tx.Rollback(); err != nil {
		t.Fatalf("Rollback: %v", err)
	}

	if n := testhelpers.CountRows(t, adapter, common.TableProduct); n != 0 {
		t.Errorf("Expected rollback to discard the product, found %d rows", n)
	}
}

func TestCountRowsRejectsBadIdentifier(t *testing.T) {
	adapter := testhelpers.NewTestAdapter(t)

	if _, err := adapter.CountRows(context.Background(), "Product; DROP TABLE Product"); err == nil {
		t.Error("Expected invalid table name to be rejected")
	}
}
