package models

import "github.com/shopspring/decimal"

// SplitMethod is how a receipt item is divided among members.
type SplitMethod string

const (
	// SplitEvenly charges every roster member an equal share.
	SplitEvenly SplitMethod = "EVENLY"
	// SplitByUser charges the whole item to one member.
	SplitByUser SplitMethod = "BY_USER"
)

// Receipt is a confirmed purchase whose items were split among members.
type Receipt struct {
	// ID is the unique identifier for the receipt (UUID format).
	// It also keys the ledger batch, so a receipt is folded at most once.
	ID string

	GroupID string
	Name    string

	// Header amounts as printed on the receipt. They are informational;
	// the ledger only folds item splits.
	TotalAmount    decimal.Decimal
	Subtotal       decimal.Decimal
	TaxAmount      decimal.Decimal
	TaxRate        decimal.Decimal
	DiscountAmount decimal.Decimal
	DiscountRate   decimal.Decimal

	// PurchaseDate is the calendar day of purchase, formatted 2006-01-02.
	PurchaseDate string

	// UploadedBy is the member who confirmed the receipt.
	UploadedBy string

	Items []ReceiptItem

	// CreatedAt is the Unix timestamp when the receipt was stored.
	CreatedAt int64
}

// ReceiptItem is one line of a receipt.
type ReceiptItem struct {
	ID          string
	ReceiptID   string
	Name        string
	GeneralName string
	Category    string
	Quantity    float64

	// Price is the printed price; ActualPrice is after tax and discounts
	// and is the amount that gets split.
	Price       decimal.Decimal
	ActualPrice decimal.Decimal

	SplitMethod SplitMethod

	// SplitMemberID is the member charged when SplitMethod is BY_USER.
	SplitMemberID string

	// PaidBy is the member who paid for the item.
	PaidBy string

	Splits []ReceiptItemSplit
}

// ReceiptItemSplit is one obligation derived from an item:
// MemberID owes PaidBy Amount.
type ReceiptItemSplit struct {
	ID       string
	ItemID   string
	MemberID string
	PaidBy   string
	Amount   decimal.Decimal
}

// Splits returns every item split of the receipt in item order.
func (r *Receipt) Splits() []ReceiptItemSplit {
	var out []ReceiptItemSplit
	for _, item := range r.Items {
		out = append(out, item.Splits...)
	}
	return out
}
