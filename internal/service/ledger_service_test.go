package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/mmynk/groceryroom/internal/cache"
	"github.com/mmynk/groceryroom/internal/models"
	pb "github.com/mmynk/groceryroom/pkg/proto"
)

func confirm(t *testing.T, c *testClients, userID string, msg *pb.ConfirmReceiptRequest) *pb.ConfirmReceiptResponse {
	t.Helper()
	resp, err := c.ledger.ConfirmReceipt(context.Background(), as(t, c, userID, msg))
	if err != nil {
		t.Fatalf("ConfirmReceipt failed: %v", err)
	}
	return resp.Msg
}

func listDebts(t *testing.T, c *testClients, userID, groupID string) []*pb.Debt {
	t.Helper()
	resp, err := c.ledger.ListDebts(context.Background(), as(t, c, userID, &pb.ListDebtsRequest{GroupId: groupID}))
	if err != nil {
		t.Fatalf("ListDebts failed: %v", err)
	}
	return resp.Msg.Debts
}

func byUser(name, price, payer, target string) *pb.ReceiptItem {
	return &pb.ReceiptItem{
		Name:          name,
		ActualPrice:   price,
		SplitMethod:   string(models.SplitByUser),
		SplitMemberId: target,
		PaidById:      payer,
	}
}

func TestConfirmReceipt_SplitsEvenly(t *testing.T) {
	c := setupTestServer(t)
	group, ids := roommates(t, c)
	ctx := context.Background()

	resp := confirm(t, c, "alice", &pb.ConfirmReceiptRequest{
		GroupId:      group.Id,
		Name:         "Weekly shop",
		TotalAmount:  "30.00",
		PurchaseDate: "2026-03-02",
		Items: []*pb.ReceiptItem{{
			Name:        "Olive oil",
			Quantity:    1,
			Price:       "30.00",
			ActualPrice: "30.00",
			SplitMethod: string(models.SplitEvenly),
			PaidById:    ids["alice"],
		}},
	})

	if resp.ReceiptId == "" {
		t.Error("expected a receipt ID")
	}
	if len(resp.Changes) != 3 {
		t.Fatalf("changes: expected 3, got %d", len(resp.Changes))
	}
	if resp.Changes[0].Kind != "noop" {
		t.Errorf("payer's own share should be a noop, got %q", resp.Changes[0].Kind)
	}
	for _, ch := range resp.Changes[1:] {
		if ch.Kind != "created" || ch.CreditorId != ids["alice"] || ch.Amount != "10.00" {
			t.Errorf("unexpected change %+v", ch)
		}
	}

	debts := listDebts(t, c, "alice", group.Id)
	if len(debts) != 2 {
		t.Fatalf("debts: expected 2, got %d", len(debts))
	}
	for _, d := range debts {
		if d.CreditorId != ids["alice"] || d.CreditorName != "Alice" {
			t.Errorf("expected Alice as creditor, got %+v", d)
		}
		if d.Amount != "10.00" {
			t.Errorf("amount: expected 10.00, got %s", d.Amount)
		}
		if !d.InvolvesMe {
			t.Error("every debt involves the payer")
		}
	}

	balances, err := c.ledger.GetBalances(ctx, as(t, c, "carol", &pb.GetBalancesRequest{GroupId: group.Id}))
	if err != nil {
		t.Fatalf("GetBalances failed: %v", err)
	}
	want := map[string]string{ids["alice"]: "20.00", ids["bob"]: "-10.00", ids["carol"]: "-10.00"}
	if len(balances.Msg.Balances) != 3 {
		t.Fatalf("balances: expected 3, got %d", len(balances.Msg.Balances))
	}
	for _, b := range balances.Msg.Balances {
		if b.Net != want[b.MemberId] {
			t.Errorf("%s net: expected %s, got %s", b.Name, want[b.MemberId], b.Net)
		}
	}
}

func TestConfirmReceipt_ReversalFlipsDebt(t *testing.T) {
	c := setupTestServer(t)
	group, ids := roommates(t, c)

	confirm(t, c, "alice", &pb.ConfirmReceiptRequest{
		GroupId: group.Id,
		Items:   []*pb.ReceiptItem{byUser("Coffee", "20.00", ids["alice"], ids["bob"])},
	})
	resp := confirm(t, c, "bob", &pb.ConfirmReceiptRequest{
		GroupId: group.Id,
		Items:   []*pb.ReceiptItem{byUser("Wine", "35.00", ids["bob"], ids["alice"])},
	})

	if len(resp.Changes) != 1 || resp.Changes[0].Kind != "flipped" {
		t.Fatalf("expected one flipped change, got %+v", resp.Changes)
	}

	debts := listDebts(t, c, "bob", group.Id)
	if len(debts) != 1 {
		t.Fatalf("debts: expected 1, got %d", len(debts))
	}
	d := debts[0]
	if d.DebtorId != ids["alice"] || d.CreditorId != ids["bob"] || d.Amount != "15.00" {
		t.Errorf("expected Alice owes Bob 15.00, got %s owes %s %s", d.DebtorName, d.CreditorName, d.Amount)
	}
}

func TestConfirmReceipt_RoundsActualPrice(t *testing.T) {
	c := setupTestServer(t)
	group, ids := roommates(t, c)

	confirm(t, c, "alice", &pb.ConfirmReceiptRequest{
		GroupId: group.Id,
		Items:   []*pb.ReceiptItem{byUser("Cheese", "4.995", ids["alice"], ids["carol"])},
	})

	debts := listDebts(t, c, "carol", group.Id)
	if len(debts) != 1 || debts[0].Amount != "5.00" {
		t.Fatalf("expected carol to owe 5.00, got %+v", debts)
	}
}

func TestConfirmReceipt_ActualPriceDefaultsToPrice(t *testing.T) {
	c := setupTestServer(t)
	group, ids := roommates(t, c)

	resp := confirm(t, c, "alice", &pb.ConfirmReceiptRequest{
		GroupId: group.Id,
		Items: []*pb.ReceiptItem{{
			Name:          "Butter",
			Price:         "9.00",
			SplitMethod:   string(models.SplitByUser),
			SplitMemberId: ids["bob"],
			PaidById:      ids["alice"],
		}},
	})

	debts := listDebts(t, c, "bob", group.Id)
	if len(debts) != 1 || debts[0].Amount != "9.00" {
		t.Fatalf("expected bob to owe 9.00, got %+v", debts)
	}

	got, err := c.ledger.GetReceipt(context.Background(), as(t, c, "bob", &pb.GetReceiptRequest{
		GroupId:   group.Id,
		ReceiptId: resp.ReceiptId,
	}))
	if err != nil {
		t.Fatalf("GetReceipt failed: %v", err)
	}
	item := got.Msg.Receipt.Items[0]
	if item.Price != "9.00" || item.ActualPrice != "9.00" {
		t.Errorf("expected price and actual price 9.00, got %s and %s", item.Price, item.ActualPrice)
	}
}

func TestAllocateItem_RoundsPrice(t *testing.T) {
	roster := []string{"m1", "m2"}

	tests := []struct {
		name       string
		price      string
		actual     string
		wantPrice  string
		wantActual string
	}{
		{"both given", "3.333", "3.005", "3.33", "3.01"},
		{"price only", "4.995", "", "5.00", "5.00"},
		{"actual only", "", "2.50", "0.00", "2.50"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := allocateItem(&pb.ReceiptItem{
				Name:          "Tomatoes",
				Price:         tt.price,
				ActualPrice:   tt.actual,
				SplitMethod:   string(models.SplitByUser),
				SplitMemberId: "m2",
				PaidById:      "m1",
			}, roster)
			if err != nil {
				t.Fatalf("allocateItem failed: %v", err)
			}
			// Nothing beyond cents may reach the store.
			if item.Price.StringFixed(2) != tt.wantPrice || item.Price.Exponent() < -2 {
				t.Errorf("price: expected %s, got %s", tt.wantPrice, item.Price)
			}
			if item.ActualPrice.StringFixed(2) != tt.wantActual || item.ActualPrice.Exponent() < -2 {
				t.Errorf("actual price: expected %s, got %s", tt.wantActual, item.ActualPrice)
			}
		})
	}
}

func TestConfirmReceipt_Errors(t *testing.T) {
	c := setupTestServer(t)
	group, ids := roommates(t, c)
	ctx := context.Background()

	tests := []struct {
		name string
		user string
		req  *pb.ConfirmReceiptRequest
		want connect.Code
	}{
		{
			name: "no items",
			user: "alice",
			req:  &pb.ConfirmReceiptRequest{GroupId: group.Id},
			want: connect.CodeInvalidArgument,
		},
		{
			name: "unknown split method",
			user: "alice",
			req: &pb.ConfirmReceiptRequest{GroupId: group.Id, Items: []*pb.ReceiptItem{
				{Name: "Milk", ActualPrice: "2.00", SplitMethod: "BY_WEIGHT", PaidById: ids["alice"]},
			}},
			want: connect.CodeInvalidArgument,
		},
		{
			name: "by user without target",
			user: "alice",
			req: &pb.ConfirmReceiptRequest{GroupId: group.Id, Items: []*pb.ReceiptItem{
				byUser("Milk", "2.00", ids["alice"], ""),
			}},
			want: connect.CodeInvalidArgument,
		},
		{
			name: "zero price",
			user: "alice",
			req: &pb.ConfirmReceiptRequest{GroupId: group.Id, Items: []*pb.ReceiptItem{
				byUser("Bag", "0.00", ids["alice"], ids["bob"]),
			}},
			want: connect.CodeInvalidArgument,
		},
		{
			name: "unparseable price",
			user: "alice",
			req: &pb.ConfirmReceiptRequest{GroupId: group.Id, Items: []*pb.ReceiptItem{
				byUser("Milk", "two", ids["alice"], ids["bob"]),
			}},
			want: connect.CodeInvalidArgument,
		},
		{
			name: "no price",
			user: "alice",
			req: &pb.ConfirmReceiptRequest{GroupId: group.Id, Items: []*pb.ReceiptItem{
				byUser("Milk", "", ids["alice"], ids["bob"]),
			}},
			want: connect.CodeInvalidArgument,
		},
		{
			name: "bad purchase date",
			user: "alice",
			req: &pb.ConfirmReceiptRequest{GroupId: group.Id, PurchaseDate: "03/02/2026", Items: []*pb.ReceiptItem{
				byUser("Milk", "2.00", ids["alice"], ids["bob"]),
			}},
			want: connect.CodeInvalidArgument,
		},
		{
			name: "payer not in group",
			user: "alice",
			req: &pb.ConfirmReceiptRequest{GroupId: group.Id, Items: []*pb.ReceiptItem{
				byUser("Milk", "2.00", "stranger", ids["bob"]),
			}},
			want: connect.CodeFailedPrecondition,
		},
		{
			name: "target not in group",
			user: "alice",
			req: &pb.ConfirmReceiptRequest{GroupId: group.Id, Items: []*pb.ReceiptItem{
				byUser("Milk", "2.00", ids["alice"], "stranger"),
			}},
			want: connect.CodeFailedPrecondition,
		},
		{
			name: "caller not in group",
			user: "mallory",
			req: &pb.ConfirmReceiptRequest{GroupId: group.Id, Items: []*pb.ReceiptItem{
				byUser("Milk", "2.00", ids["alice"], ids["bob"]),
			}},
			want: connect.CodePermissionDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.ledger.ConfirmReceipt(ctx, as(t, c, tt.user, tt.req))
			assertCode(t, err, tt.want)
		})
	}

	if debts := listDebts(t, c, "alice", group.Id); len(debts) != 0 {
		t.Errorf("rejected receipts must not touch the ledger, got %+v", debts)
	}
}

func TestConfirmReceipt_FailedItemRollsBackWholeReceipt(t *testing.T) {
	c := setupTestServer(t)
	group, ids := roommates(t, c)

	_, err := c.ledger.ConfirmReceipt(context.Background(), as(t, c, "alice", &pb.ConfirmReceiptRequest{
		GroupId: group.Id,
		Items: []*pb.ReceiptItem{
			byUser("Bread", "3.00", ids["alice"], ids["bob"]),
			byUser("Jam", "4.00", ids["alice"], "stranger"),
		},
	}))
	assertCode(t, err, connect.CodeFailedPrecondition)

	if debts := listDebts(t, c, "alice", group.Id); len(debts) != 0 {
		t.Errorf("expected no debts, got %+v", debts)
	}
}

func TestConfirmReceipt_DuplicateReceiptID(t *testing.T) {
	c := setupTestServer(t)
	group, ids := roommates(t, c)

	req := &pb.ConfirmReceiptRequest{
		GroupId:   group.Id,
		ReceiptId: "receipt-42",
		Items:     []*pb.ReceiptItem{byUser("Eggs", "6.00", ids["alice"], ids["bob"])},
	}
	first := confirm(t, c, "alice", req)
	if first.ReceiptId != "receipt-42" {
		t.Errorf("receipt ID: expected receipt-42, got %s", first.ReceiptId)
	}

	_, err := c.ledger.ConfirmReceipt(context.Background(), as(t, c, "alice", req))
	assertCode(t, err, connect.CodeAlreadyExists)

	debts := listDebts(t, c, "bob", group.Id)
	if len(debts) != 1 || debts[0].Amount != "6.00" {
		t.Errorf("replay must not double the debt, got %+v", debts)
	}
}

func TestListDebts_SortedForCaller(t *testing.T) {
	c := setupTestServer(t)
	group, ids := roommates(t, c)

	confirm(t, c, "alice", &pb.ConfirmReceiptRequest{
		GroupId: group.Id,
		Items: []*pb.ReceiptItem{
			byUser("Snacks", "10.00", ids["alice"], ids["bob"]),
			byUser("Steak", "50.00", ids["carol"], ids["alice"]),
		},
	})

	bob := listDebts(t, c, "bob", group.Id)
	if len(bob) != 2 {
		t.Fatalf("debts: expected 2, got %d", len(bob))
	}
	if bob[0].DebtorId != ids["bob"] || !bob[0].InvolvesMe {
		t.Errorf("bob's own debt should come first, got %+v", bob[0])
	}
	if bob[1].InvolvesMe {
		t.Errorf("second debt does not involve bob, got %+v", bob[1])
	}

	alice := listDebts(t, c, "alice", group.Id)
	if alice[0].Amount != "50.00" || alice[1].Amount != "10.00" {
		t.Errorf("both involve alice, expected amount descending, got %s then %s", alice[0].Amount, alice[1].Amount)
	}
}

func TestPayDebt(t *testing.T) {
	c := setupTestServer(t)
	group, ids := roommates(t, c)
	ctx := context.Background()

	confirm(t, c, "alice", &pb.ConfirmReceiptRequest{
		GroupId: group.Id,
		Items:   []*pb.ReceiptItem{byUser("Groceries", "50.00", ids["alice"], ids["bob"])},
	})
	debtID := listDebts(t, c, "bob", group.Id)[0].Id

	rejected := []struct {
		name   string
		user   string
		debtID string
		amount string
		want   connect.Code
	}{
		{"over payment", "bob", debtID, "50.01", connect.CodeInvalidArgument},
		{"zero", "bob", debtID, "0", connect.CodeInvalidArgument},
		{"rounds to zero", "bob", debtID, "0.004", connect.CodeInvalidArgument},
		{"negative", "bob", debtID, "-5", connect.CodeInvalidArgument},
		{"not a number", "bob", debtID, "lots", connect.CodeInvalidArgument},
		{"thousands separator", "bob", debtID, "1,234", connect.CodeInvalidArgument},
		{"unknown debt", "bob", "missing", "1.00", connect.CodeNotFound},
		{"not a party", "carol", debtID, "1.00", connect.CodePermissionDenied},
		{"outsider", "mallory", debtID, "1.00", connect.CodePermissionDenied},
	}
	for _, tt := range rejected {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.ledger.PayDebt(ctx, as(t, c, tt.user, &pb.PayDebtRequest{
				GroupId: group.Id,
				DebtId:  tt.debtID,
				Amount:  tt.amount,
			}))
			assertCode(t, err, tt.want)
		})
	}

	partial, err := c.ledger.PayDebt(ctx, as(t, c, "bob", &pb.PayDebtRequest{
		GroupId: group.Id,
		DebtId:  debtID,
		Amount:  "20",
		Note:    "cash",
	}))
	if err != nil {
		t.Fatalf("PayDebt failed: %v", err)
	}
	if partial.Msg.FullySettled {
		t.Error("partial payment should not settle the debt")
	}
	if partial.Msg.SettlementId == "" {
		t.Error("expected a settlement ID")
	}
	if partial.Msg.Debt == nil || partial.Msg.Debt.Amount != "30.00" {
		t.Fatalf("expected remaining 30.00, got %+v", partial.Msg.Debt)
	}

	// The creditor may record the payment too; 29.999 rounds to 30.00.
	full, err := c.ledger.PayDebt(ctx, as(t, c, "alice", &pb.PayDebtRequest{
		GroupId: group.Id,
		DebtId:  debtID,
		Amount:  "29.999",
	}))
	if err != nil {
		t.Fatalf("PayDebt failed: %v", err)
	}
	if !full.Msg.FullySettled || full.Msg.Amount != "30.00" {
		t.Errorf("expected full settlement of 30.00, got %+v", full.Msg)
	}
	if full.Msg.Debt != nil {
		t.Errorf("settled debt should not be returned, got %+v", full.Msg.Debt)
	}

	if debts := listDebts(t, c, "alice", group.Id); len(debts) != 0 {
		t.Errorf("expected no debts after settlement, got %+v", debts)
	}

	_, err = c.ledger.PayDebt(ctx, as(t, c, "bob", &pb.PayDebtRequest{
		GroupId: group.Id,
		DebtId:  debtID,
		Amount:  "1.00",
	}))
	assertCode(t, err, connect.CodeNotFound)
}

func TestGetMonthlyExpenses(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	c := setupTestServer(t, WithNow(func() time.Time { return now }))
	group, ids := roommates(t, c)
	ctx := context.Background()

	confirm(t, c, "alice", &pb.ConfirmReceiptRequest{
		GroupId:      group.Id,
		PurchaseDate: "2026-03-02",
		Items: []*pb.ReceiptItem{{
			Name: "Rice", ActualPrice: "30.00", SplitMethod: string(models.SplitEvenly), PaidById: ids["alice"],
		}},
	})
	confirm(t, c, "bob", &pb.ConfirmReceiptRequest{
		GroupId:      group.Id,
		PurchaseDate: "2026-04-01",
		Items:        []*pb.ReceiptItem{byUser("Flowers", "12.00", ids["bob"], ids["alice"])},
	})
	// No purchase date: defaults to today.
	confirm(t, c, "carol", &pb.ConfirmReceiptRequest{
		GroupId: group.Id,
		Items:   []*pb.ReceiptItem{byUser("Soap", "6.00", ids["carol"], ids["bob"])},
	})

	tests := []struct {
		name      string
		year      int32
		month     int32
		wantMonth string
		want      []string
		wantTotal string
	}{
		{"current month", 0, 0, "2026-03", []string{"10.00", "16.00", "10.00"}, "36.00"},
		{"april", 2026, 4, "2026-04", []string{"12.00", "0.00", "0.00"}, "12.00"},
		{"empty month", 2025, 12, "2025-12", []string{"0.00", "0.00", "0.00"}, "0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := c.ledger.GetMonthlyExpenses(ctx, as(t, c, "bob", &pb.GetMonthlyExpensesRequest{
				GroupId: group.Id,
				Year:    tt.year,
				Month:   tt.month,
			}))
			if err != nil {
				t.Fatalf("GetMonthlyExpenses failed: %v", err)
			}
			if resp.Msg.Month != tt.wantMonth {
				t.Errorf("month: expected %s, got %s", tt.wantMonth, resp.Msg.Month)
			}
			if len(resp.Msg.Expenses) != len(tt.want) {
				t.Fatalf("expenses: expected %d, got %d", len(tt.want), len(resp.Msg.Expenses))
			}
			for i, e := range resp.Msg.Expenses {
				if e.Total != tt.want[i] {
					t.Errorf("%s: expected %s, got %s", e.Name, tt.want[i], e.Total)
				}
			}
			if resp.Msg.Total != tt.wantTotal {
				t.Errorf("total: expected %s, got %s", tt.wantTotal, resp.Msg.Total)
			}
		})
	}

	_, err := c.ledger.GetMonthlyExpenses(ctx, as(t, c, "bob", &pb.GetMonthlyExpensesRequest{
		GroupId: group.Id,
		Year:    2026,
		Month:   13,
	}))
	assertCode(t, err, connect.CodeInvalidArgument)
}

func TestListDebts_ReadsThroughCache(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	c := setupTestServer(t, WithDebtCache(cache.New(rdb, time.Minute)))
	group, ids := roommates(t, c)
	key := "groceryroom:debts:{" + group.Id + "}"

	confirm(t, c, "alice", &pb.ConfirmReceiptRequest{
		GroupId: group.Id,
		Items:   []*pb.ReceiptItem{byUser("Tea", "8.00", ids["alice"], ids["bob"])},
	})
	if mr.Exists(key) {
		t.Fatal("nothing should be cached before the first read")
	}

	debts := listDebts(t, c, "bob", group.Id)
	if !mr.Exists(key) {
		t.Fatal("expected ListDebts to populate the cache")
	}

	_, err := c.ledger.PayDebt(context.Background(), as(t, c, "bob", &pb.PayDebtRequest{
		GroupId: group.Id,
		DebtId:  debts[0].Id,
		Amount:  "3.00",
	}))
	if err != nil {
		t.Fatalf("PayDebt failed: %v", err)
	}
	if mr.Exists(key) {
		t.Error("expected PayDebt to invalidate the cache")
	}

	debts = listDebts(t, c, "bob", group.Id)
	if len(debts) != 1 || debts[0].Amount != "5.00" {
		t.Errorf("expected 5.00 after payment, got %+v", debts)
	}

	// A cache outage falls back to the store.
	mr.Close()
	debts = listDebts(t, c, "alice", group.Id)
	if len(debts) != 1 || debts[0].Amount != "5.00" {
		t.Errorf("expected store fallback, got %+v", debts)
	}
}

func TestGetReceipt(t *testing.T) {
	c := setupTestServer(t)
	group, ids := roommates(t, c)
	ctx := context.Background()

	confirmed := confirm(t, c, "alice", &pb.ConfirmReceiptRequest{
		GroupId:      group.Id,
		Name:         "Market",
		TotalAmount:  "13.00",
		PurchaseDate: "2026-03-02",
		Items: []*pb.ReceiptItem{
			{Name: "Apples", Quantity: 2, Price: "9.00", SplitMethod: string(models.SplitEvenly), PaidById: ids["alice"]},
			byUser("Honey", "4.00", ids["bob"], ids["carol"]),
		},
	})

	resp, err := c.ledger.GetReceipt(ctx, as(t, c, "carol", &pb.GetReceiptRequest{
		GroupId:   group.Id,
		ReceiptId: confirmed.ReceiptId,
	}))
	if err != nil {
		t.Fatalf("GetReceipt failed: %v", err)
	}
	r := resp.Msg.Receipt
	if r.Id != confirmed.ReceiptId || r.GroupId != group.Id || r.Name != "Market" {
		t.Errorf("unexpected receipt header %+v", r)
	}
	if r.TotalAmount != "13.00" || r.PurchaseDate != "2026-03-02" || r.UploadedBy != ids["alice"] {
		t.Errorf("unexpected receipt header %+v", r)
	}
	if len(r.Items) != 2 {
		t.Fatalf("items: expected 2, got %d", len(r.Items))
	}
	if r.Items[0].Name != "Apples" || r.Items[0].Quantity != 2 || len(r.Items[0].Splits) != 3 {
		t.Errorf("unexpected first item %+v", r.Items[0])
	}
	for _, sp := range r.Items[0].Splits {
		if sp.Amount != "3.00" || sp.PaidById != ids["alice"] {
			t.Errorf("unexpected split %+v", sp)
		}
	}
	honey := r.Items[1]
	if len(honey.Splits) != 1 || honey.Splits[0].MemberId != ids["carol"] || honey.Splits[0].Amount != "4.00" {
		t.Errorf("unexpected by-user splits %+v", honey.Splits)
	}

	// A receipt of another group is not visible through this one, even to
	// a member of both.
	other, err := c.groups.CreateGroup(ctx, as(t, c, "carol", &pb.CreateGroupRequest{Name: "Office"}))
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}

	tests := []struct {
		name      string
		user      string
		groupID   string
		receiptID string
		want      connect.Code
	}{
		{"other group", "carol", other.Msg.Group.Id, confirmed.ReceiptId, connect.CodeNotFound},
		{"unknown receipt", "carol", group.Id, "missing", connect.CodeNotFound},
		{"empty receipt id", "carol", group.Id, "", connect.CodeInvalidArgument},
		{"outsider", "mallory", group.Id, confirmed.ReceiptId, connect.CodePermissionDenied},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.ledger.GetReceipt(ctx, as(t, c, tt.user, &pb.GetReceiptRequest{
				GroupId:   tt.groupID,
				ReceiptId: tt.receiptID,
			}))
			assertCode(t, err, tt.want)
		})
	}
}

func TestListSettlements(t *testing.T) {
	c := setupTestServer(t)
	group, ids := roommates(t, c)
	ctx := context.Background()

	confirm(t, c, "alice", &pb.ConfirmReceiptRequest{
		GroupId: group.Id,
		Items:   []*pb.ReceiptItem{byUser("Pasta", "10.00", ids["alice"], ids["bob"])},
	})
	debtID := listDebts(t, c, "bob", group.Id)[0].Id

	for _, amount := range []string{"4.00", "6.00"} {
		_, err := c.ledger.PayDebt(ctx, as(t, c, "bob", &pb.PayDebtRequest{
			GroupId: group.Id,
			DebtId:  debtID,
			Amount:  amount,
			Note:    "transfer " + amount,
		}))
		if err != nil {
			t.Fatalf("PayDebt failed: %v", err)
		}
	}

	resp, err := c.ledger.ListSettlements(ctx, as(t, c, "carol", &pb.ListSettlementsRequest{GroupId: group.Id}))
	if err != nil {
		t.Fatalf("ListSettlements failed: %v", err)
	}
	settlements := resp.Msg.Settlements
	if len(settlements) != 2 {
		t.Fatalf("settlements: expected 2, got %d", len(settlements))
	}

	latest := settlements[0]
	if latest.Amount != "6.00" || !latest.FullySettled || latest.Note != "transfer 6.00" {
		t.Errorf("newest settlement should come first, got %+v", latest)
	}
	if latest.FromMemberId != ids["bob"] || latest.FromName != "Bob" || latest.ToMemberId != ids["alice"] || latest.ToName != "Alice" {
		t.Errorf("unexpected parties %+v", latest)
	}
	if latest.CreatedBy != ids["bob"] || latest.DebtId != debtID {
		t.Errorf("unexpected recorder or debt %+v", latest)
	}
	if settlements[1].Amount != "4.00" || settlements[1].FullySettled {
		t.Errorf("unexpected first payment %+v", settlements[1])
	}

	_, err = c.ledger.ListSettlements(ctx, as(t, c, "mallory", &pb.ListSettlementsRequest{GroupId: group.Id}))
	assertCode(t, err, connect.CodePermissionDenied)
}

// gatedCache holds the first fill until release is closed.
type gatedCache struct {
	*cache.DebtCache
	once    sync.Once
	filling chan struct{}
	release chan struct{}
}

func (g *gatedCache) SetIfGeneration(ctx context.Context, groupID string, gen int64, edges []*models.DebtEdge) (bool, error) {
	first := false
	g.once.Do(func() { first = true })
	if first {
		close(g.filling)
		<-g.release
	}
	return g.DebtCache.SetIfGeneration(ctx, groupID, gen, edges)
}

func TestListDebts_FillAfterInvalidateIsDropped(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	gated := &gatedCache{
		DebtCache: cache.New(rdb, time.Minute),
		filling:   make(chan struct{}),
		release:   make(chan struct{}),
	}
	c := setupTestServer(t, WithDebtCache(gated))
	group, ids := roommates(t, c)

	// The read starts on an empty ledger and stalls before its fill.
	req := as(t, c, "alice", &pb.ListDebtsRequest{GroupId: group.Id})
	done := make(chan int, 1)
	go func() {
		resp, err := c.ledger.ListDebts(context.Background(), req)
		if err != nil {
			t.Errorf("ListDebts failed: %v", err)
			done <- -1
			return
		}
		done <- len(resp.Msg.Debts)
	}()
	<-gated.filling

	confirm(t, c, "alice", &pb.ConfirmReceiptRequest{
		GroupId: group.Id,
		Items:   []*pb.ReceiptItem{byUser("Coffee", "20.00", ids["alice"], ids["bob"])},
	})
	close(gated.release)

	if n := <-done; n != 0 {
		t.Fatalf("first read predates the receipt, expected 0 debts, got %d", n)
	}

	debts := listDebts(t, c, "alice", group.Id)
	if len(debts) != 1 || debts[0].Amount != "20.00" {
		t.Errorf("expected bob to owe alice 20.00 after the stale fill, got %+v", debts)
	}
}
