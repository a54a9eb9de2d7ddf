package calculator

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmynk/groceryroom/internal/models"
)

func TestNetBalances(t *testing.T) {
	edges := []*models.DebtEdge{
		{DebtorID: "b", CreditorID: "a", Amount: d("10.00")},
		{DebtorID: "c", CreditorID: "a", Amount: d("10.00")},
		{DebtorID: "c", CreditorID: "b", Amount: d("2.50")},
	}

	balances := NetBalances(edges, []string{"a", "b", "c", "d"})
	if len(balances) != 4 {
		t.Fatalf("got %d balances, want 4", len(balances))
	}

	want := map[string]string{"a": "20", "b": "-7.5", "c": "-12.5", "d": "0"}
	sum := decimal.Zero
	for _, b := range balances {
		if !b.Net.Equal(d(want[b.MemberID])) {
			t.Errorf("%s net = %s, want %s", b.MemberID, b.Net, want[b.MemberID])
		}
		sum = sum.Add(b.Net)
	}
	if !sum.IsZero() {
		t.Errorf("net balances sum to %s, want 0", sum)
	}

	if balances[0].MemberID != "a" || balances[3].MemberID != "c" {
		t.Errorf("unexpected order: first %s, last %s", balances[0].MemberID, balances[3].MemberID)
	}
}
