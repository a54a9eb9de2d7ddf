package calculator

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mmynk/groceryroom/internal/models"
)

// MemberBalance is one member's net position in a group ledger.
type MemberBalance struct {
	MemberID string
	// Owed is the total other members owe this member.
	Owed decimal.Decimal
	// Owes is the total this member owes others.
	Owes decimal.Decimal
	// Net is Owed - Owes. Positive = owed money, Negative = owes money.
	Net decimal.Decimal
}

// NetBalances aggregates debt edges into per-member balances.
// Members in roster with no edges get a zero balance; the result is sorted
// by Net descending, then by member id. Net values always sum to zero.
func NetBalances(edges []*models.DebtEdge, roster []string) []MemberBalance {
	balances := make(map[string]*MemberBalance)
	get := func(id string) *MemberBalance {
		b, ok := balances[id]
		if !ok {
			b = &MemberBalance{MemberID: id, Owed: decimal.Zero, Owes: decimal.Zero}
			balances[id] = b
		}
		return b
	}

	for _, id := range roster {
		get(id)
	}
	for _, e := range edges {
		get(e.DebtorID).Owes = get(e.DebtorID).Owes.Add(e.Amount)
		get(e.CreditorID).Owed = get(e.CreditorID).Owed.Add(e.Amount)
	}

	out := make([]MemberBalance, 0, len(balances))
	for _, b := range balances {
		b.Net = b.Owed.Sub(b.Owes)
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Net.Cmp(out[j].Net); c != 0 {
			return c > 0
		}
		return out[i].MemberID < out[j].MemberID
	})
	return out
}
