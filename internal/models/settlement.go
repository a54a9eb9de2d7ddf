package models

import "github.com/shopspring/decimal"

// Settlement records a payment applied to a debt edge.
type Settlement struct {
	// ID is the unique identifier for the settlement (UUID format).
	ID string

	// GroupID is the group this settlement belongs to.
	GroupID string

	// DebtID is the edge the payment was applied to.
	DebtID string

	// FromMemberID is the debtor paying.
	FromMemberID string

	// ToMemberID is the creditor being paid.
	ToMemberID string

	// Amount is the payment after rounding to two places.
	Amount decimal.Decimal

	// FullySettled is true when the payment discharged the edge.
	FullySettled bool

	// CreatedAt is the Unix timestamp when the settlement was recorded.
	CreatedAt int64

	// CreatedBy is the member who recorded this settlement.
	CreatedBy string

	// Note is an optional description for the settlement.
	Note string
}
