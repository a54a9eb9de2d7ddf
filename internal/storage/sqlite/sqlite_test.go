package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/groceryroom/internal/calculator"
	"github.com/mmynk/groceryroom/internal/ledger"
	"github.com/mmynk/groceryroom/internal/models"
	"github.com/mmynk/groceryroom/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// newTestGroup creates a group with members alice, bob and carol and
// returns it with their member IDs.
func newTestGroup(t *testing.T, store *SQLiteStore) (*models.Group, string, string, string) {
	t.Helper()
	group := &models.Group{
		Name:      "Flat 4B",
		Icon:      "🛒",
		CreatorID: "user-alice",
		Members: []models.Member{
			{UserID: "user-alice", Name: "Alice"},
			{UserID: "user-bob", Name: "Bob"},
			{UserID: "user-carol", Name: "Carol"},
		},
	}
	if err := store.CreateGroup(context.Background(), group); err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	return group, group.Members[0].ID, group.Members[1].ID, group.Members[2].ID
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSQLiteStore_Groups(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreateGroup fills ids and invite code", func(t *testing.T) {
		group, a, b, c := newTestGroup(t, store)
		if group.ID == "" || a == "" || b == "" || c == "" {
			t.Fatal("Expected group and member IDs to be generated")
		}
		if len(group.InviteCode) != 8 {
			t.Errorf("Expected 8 character invite code, got %q", group.InviteCode)
		}
		if group.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}
	})

	t.Run("GetGroup returns roster in join order", func(t *testing.T) {
		group, _, _, _ := newTestGroup(t, store)

		got, err := store.GetGroup(ctx, group.ID)
		if err != nil {
			t.Fatalf("GetGroup failed: %v", err)
		}
		if got.Name != "Flat 4B" || got.Icon != "🛒" || got.InviteCode != group.InviteCode {
			t.Errorf("Group mismatch: got %+v", got)
		}
		if len(got.Members) != 3 {
			t.Fatalf("Expected 3 members, got %d", len(got.Members))
		}
		for i, name := range []string{"Alice", "Bob", "Carol"} {
			if got.Members[i].Name != name {
				t.Errorf("Member %d: got %s, want %s", i, got.Members[i].Name, name)
			}
		}
	})

	t.Run("GetGroup returns ErrNotFound", func(t *testing.T) {
		_, err := store.GetGroup(ctx, "nonexistent-id")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("AddMember", func(t *testing.T) {
		group, _, _, _ := newTestGroup(t, store)

		dave := &models.Member{GroupID: group.ID, UserID: "user-dave", Name: "Dave"}
		if err := store.AddMember(ctx, dave); err != nil {
			t.Fatalf("AddMember failed: %v", err)
		}
		got, err := store.GetGroup(ctx, group.ID)
		if err != nil {
			t.Fatalf("GetGroup failed: %v", err)
		}
		if !got.HasMember(dave.ID) {
			t.Error("Expected Dave to be in the roster")
		}

		again := &models.Member{GroupID: group.ID, UserID: "user-dave", Name: "Dave"}
		if err := store.AddMember(ctx, again); !errors.Is(err, storage.ErrAlreadyMember) {
			t.Errorf("Expected ErrAlreadyMember, got %v", err)
		}

		orphan := &models.Member{GroupID: "nonexistent-id", UserID: "user-eve", Name: "Eve"}
		if err := store.AddMember(ctx, orphan); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}

func TestSQLiteStore_Ledger(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("reversal flips the persisted edge", func(t *testing.T) {
		group, a, b, _ := newTestGroup(t, store)
		l := ledger.New(store)

		_, err := l.FoldBatch(ctx, group.ID, []calculator.Obligation{
			{Debtor: a, Creditor: b, Amount: amount("20.00")},
			{Debtor: b, Creditor: a, Amount: amount("35.00")},
		})
		if err != nil {
			t.Fatalf("FoldBatch failed: %v", err)
		}

		edges, err := store.ListEdges(ctx, group.ID)
		if err != nil {
			t.Fatalf("ListEdges failed: %v", err)
		}
		if len(edges) != 1 {
			t.Fatalf("Expected 1 edge, got %d", len(edges))
		}
		if edges[0].DebtorID != b || edges[0].CreditorID != a || !edges[0].Amount.Equal(amount("15")) {
			t.Errorf("Unexpected edge: %+v", edges[0])
		}
	})

	t.Run("failed batch rolls back", func(t *testing.T) {
		group, a, b, c := newTestGroup(t, store)
		l := ledger.New(store)

		_, err := l.FoldBatch(ctx, group.ID, []calculator.Obligation{
			{Debtor: a, Creditor: b, Amount: amount("5.00")},
			{Debtor: c, Creditor: b, Amount: amount("-1.00")},
		})
		if !errors.Is(err, ledger.ErrInvalidObligation) {
			t.Fatalf("Expected ErrInvalidObligation, got %v", err)
		}

		edges, err := store.ListEdges(ctx, group.ID)
		if err != nil {
			t.Fatalf("ListEdges failed: %v", err)
		}
		if len(edges) != 0 {
			t.Errorf("Expected no edges after rollback, got %d", len(edges))
		}
	})

	t.Run("receipt is stored once and read back", func(t *testing.T) {
		group, a, b, c := newTestGroup(t, store)
		l := ledger.New(store)

		receipt := &models.Receipt{
			GroupID:      group.ID,
			Name:         "Corner shop",
			TotalAmount:  amount("30.00"),
			Subtotal:     amount("30.00"),
			PurchaseDate: "2026-03-14",
			UploadedBy:   a,
			Items: []models.ReceiptItem{{
				Name:        "Cheese",
				GeneralName: "cheese",
				Category:    "Dairy",
				Quantity:    1,
				Price:       amount("30.00"),
				ActualPrice: amount("30.00"),
				SplitMethod: models.SplitEvenly,
				PaidBy:      a,
				Splits: []models.ReceiptItemSplit{
					{MemberID: a, PaidBy: a, Amount: amount("10.00")},
					{MemberID: b, PaidBy: a, Amount: amount("10.00")},
					{MemberID: c, PaidBy: a, Amount: amount("10.00")},
				},
			}},
		}
		if _, err := l.ApplyReceipt(ctx, receipt); err != nil {
			t.Fatalf("ApplyReceipt failed: %v", err)
		}
		if _, err := l.ApplyReceipt(ctx, receipt); !errors.Is(err, ledger.ErrDuplicateReceipt) {
			t.Fatalf("Expected ErrDuplicateReceipt, got %v", err)
		}

		edges, err := store.ListEdges(ctx, group.ID)
		if err != nil {
			t.Fatalf("ListEdges failed: %v", err)
		}
		if len(edges) != 2 {
			t.Fatalf("Expected 2 edges, got %d", len(edges))
		}
		for _, e := range edges {
			if e.CreditorID != a || !e.Amount.Equal(amount("10")) {
				t.Errorf("Unexpected edge: %+v", e)
			}
		}

		got, err := store.GetReceipt(ctx, receipt.ID)
		if err != nil {
			t.Fatalf("GetReceipt failed: %v", err)
		}
		if len(got.Items) != 1 || len(got.Items[0].Splits) != 3 {
			t.Fatalf("Unexpected receipt shape: %+v", got)
		}
		if got.Items[0].SplitMethod != models.SplitEvenly || !got.TotalAmount.Equal(amount("30")) {
			t.Errorf("Receipt fields not preserved: %+v", got)
		}

		expenses, err := store.MemberExpenses(ctx, group.ID,
			time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC))
		if err != nil {
			t.Fatalf("MemberExpenses failed: %v", err)
		}
		for _, m := range []string{a, b, c} {
			if !expenses[m].Equal(amount("10")) {
				t.Errorf("Member %s expenses: got %s, want 10", m, expenses[m])
			}
		}

		april, err := store.MemberExpenses(ctx, group.ID,
			time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC))
		if err != nil {
			t.Fatalf("MemberExpenses failed: %v", err)
		}
		if len(april) != 0 {
			t.Errorf("Expected no expenses in April, got %v", april)
		}
	})

	t.Run("settlement reduces and deletes the edge", func(t *testing.T) {
		group, a, b, _ := newTestGroup(t, store)
		l := ledger.New(store)

		if _, err := l.FoldBatch(ctx, group.ID, []calculator.Obligation{
			{Debtor: a, Creditor: b, Amount: amount("50.00")},
		}); err != nil {
			t.Fatalf("FoldBatch failed: %v", err)
		}
		edges, _ := store.ListEdges(ctx, group.ID)
		edgeID := edges[0].ID

		_, err := l.Settle(ctx, ledger.SettleRequest{GroupID: group.ID, EdgeID: edgeID, Amount: amount("50.01"), RecordedBy: a})
		if !errors.Is(err, ledger.ErrInvalidPaymentAmount) {
			t.Fatalf("Expected ErrInvalidPaymentAmount, got %v", err)
		}

		res, err := l.Settle(ctx, ledger.SettleRequest{GroupID: group.ID, EdgeID: edgeID, Amount: amount("20"), RecordedBy: a})
		if err != nil {
			t.Fatalf("Settle failed: %v", err)
		}
		if res.FullySettled || !res.Edge.Amount.Equal(amount("30")) {
			t.Errorf("Unexpected partial result: %+v", res)
		}

		res, err = l.Settle(ctx, ledger.SettleRequest{GroupID: group.ID, EdgeID: edgeID, Amount: amount("29.999"), RecordedBy: b, Note: "paid back"})
		if err != nil {
			t.Fatalf("Settle failed: %v", err)
		}
		if !res.FullySettled {
			t.Error("Expected edge to be fully settled")
		}
		if _, err := store.GetEdge(ctx, group.ID, edgeID); !errors.Is(err, ledger.ErrEdgeNotFound) {
			t.Errorf("Expected ErrEdgeNotFound, got %v", err)
		}

		settlements, err := store.ListSettlements(ctx, group.ID)
		if err != nil {
			t.Fatalf("ListSettlements failed: %v", err)
		}
		if len(settlements) != 2 {
			t.Fatalf("Expected 2 settlements, got %d", len(settlements))
		}
		latest := settlements[0]
		if !latest.FullySettled || latest.Note != "paid back" || !latest.Amount.Equal(amount("30")) {
			t.Errorf("Unexpected latest settlement: %+v", latest)
		}
	})

	t.Run("instances with separate lockers keep one edge", func(t *testing.T) {
		group, a, b, _ := newTestGroup(t, store)
		ledgers := []*ledger.Ledger{ledger.New(store), ledger.New(store)}

		var wg sync.WaitGroup
		errs := make(chan error, 20)
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				o := calculator.Obligation{Debtor: a, Creditor: b, Amount: amount("1.00")}
				if i%2 == 1 {
					o = calculator.Obligation{Debtor: b, Creditor: a, Amount: amount("3.00")}
				}
				_, err := ledgers[i%2].FoldBatch(ctx, group.ID, []calculator.Obligation{o})
				errs <- err
			}(i)
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			if err != nil {
				t.Errorf("FoldBatch failed: %v", err)
			}
		}

		edges, err := store.ListEdges(ctx, group.ID)
		if err != nil {
			t.Fatalf("ListEdges failed: %v", err)
		}
		if len(edges) != 1 {
			t.Fatalf("Expected 1 edge, got %d", len(edges))
		}
		// 10 x 3.00 owed by b minus 10 x 1.00 owed by a
		if edges[0].DebtorID != b || !edges[0].Amount.Equal(amount("20")) {
			t.Errorf("Unexpected edge: %+v", edges[0])
		}
	})
}
