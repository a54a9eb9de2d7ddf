package models

import "github.com/shopspring/decimal"

// DebtEdge is the net balance DebtorID owes CreditorID inside one group.
//
// For a given group and unordered pair of members at most one edge exists,
// and its Amount is strictly positive. An edge reaching zero is deleted.
type DebtEdge struct {
	// ID is the unique identifier for the edge (UUID format).
	ID string

	GroupID    string
	DebtorID   string
	CreditorID string

	// Amount is what the debtor owes, two fractional digits.
	Amount decimal.Decimal

	// UpdatedAt is the Unix timestamp of the last mutation.
	UpdatedAt int64
}

// Involves reports whether memberID is the debtor or the creditor.
func (e *DebtEdge) Involves(memberID string) bool {
	return e.DebtorID == memberID || e.CreditorID == memberID
}
