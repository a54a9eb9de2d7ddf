package ledger

import (
	"sort"

	"github.com/mmynk/groceryroom/internal/models"
)

// SortForMember orders edges for display: edges involving memberID first,
// then by amount descending. Ties keep their input order.
func SortForMember(edges []*models.DebtEdge, memberID string) {
	sort.SliceStable(edges, func(i, j int) bool {
		mi, mj := edges[i].Involves(memberID), edges[j].Involves(memberID)
		if mi != mj {
			return mi
		}
		return edges[i].Amount.GreaterThan(edges[j].Amount)
	})
}
