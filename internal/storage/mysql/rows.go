package mysql

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/groceryroom/internal/models"
)

// Table rows. Models stay free of gorm tags; these structs carry the
// schema and convert at the store boundary.

type groupRow struct {
	ID         string `gorm:"primaryKey;size:36"`
	Name       string `gorm:"size:255;not null"`
	Icon       string `gorm:"size:16;not null;default:''"`
	InviteCode string `gorm:"size:8;not null;uniqueIndex"`
	CreatorID  string `gorm:"size:64;not null"`
	CreatedAt  int64  `gorm:"not null;autoCreateTime:false"`
}

func (groupRow) TableName() string { return "groups" }

type memberRow struct {
	ID       string `gorm:"primaryKey;size:36"`
	GroupID  string `gorm:"size:36;not null;uniqueIndex:idx_member_user,priority:1;index"`
	UserID   string `gorm:"size:64;not null;uniqueIndex:idx_member_user,priority:2"`
	Name     string `gorm:"size:255;not null"`
	Position int    `gorm:"not null"`
	JoinedAt int64  `gorm:"not null"`
}

func (memberRow) TableName() string { return "group_members" }

type debtRow struct {
	ID         string          `gorm:"primaryKey;size:36"`
	GroupID    string          `gorm:"size:36;not null;uniqueIndex:idx_debt_pair,priority:1"`
	DebtorID   string          `gorm:"size:36;not null;uniqueIndex:idx_debt_pair,priority:2"`
	CreditorID string          `gorm:"size:36;not null;uniqueIndex:idx_debt_pair,priority:3"`
	Amount     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	UpdatedAt  int64           `gorm:"not null;autoUpdateTime:false"`
}

func (debtRow) TableName() string { return "debts" }

type receiptRow struct {
	ID             string          `gorm:"primaryKey;size:36"`
	GroupID        string          `gorm:"size:36;not null;index:idx_receipt_group_date,priority:1"`
	Name           string          `gorm:"size:255;not null"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TaxAmount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TaxRate        decimal.Decimal `gorm:"type:decimal(8,4);not null"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	DiscountRate   decimal.Decimal `gorm:"type:decimal(8,4);not null"`
	PurchaseDate   string          `gorm:"size:10;not null;index:idx_receipt_group_date,priority:2"`
	UploadedBy     string          `gorm:"size:36;not null"`
	CreatedAt      int64           `gorm:"not null;autoCreateTime:false"`
}

func (receiptRow) TableName() string { return "receipts" }

type itemRow struct {
	ID            string          `gorm:"primaryKey;size:36"`
	ReceiptID     string          `gorm:"size:36;not null;index"`
	Position      int             `gorm:"not null"`
	Name          string          `gorm:"size:255;not null"`
	GeneralName   string          `gorm:"size:255;not null"`
	Category      string          `gorm:"size:64;not null"`
	Quantity      float64         `gorm:"not null"`
	Price         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ActualPrice   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	SplitMethod   string          `gorm:"size:16;not null"`
	SplitMemberID string          `gorm:"size:36"`
	PaidBy        string          `gorm:"size:36;not null"`
}

func (itemRow) TableName() string { return "receipt_items" }

type splitRow struct {
	ID       string          `gorm:"primaryKey;size:36"`
	ItemID   string          `gorm:"size:36;not null;index"`
	Position int             `gorm:"not null"`
	MemberID string          `gorm:"size:36;not null"`
	PaidBy   string          `gorm:"size:36;not null"`
	Amount   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

func (splitRow) TableName() string { return "receipt_item_splits" }

type settlementRow struct {
	ID           string          `gorm:"primaryKey;size:36"`
	GroupID      string          `gorm:"size:36;not null;index"`
	DebtID       string          `gorm:"size:36;not null"`
	FromMemberID string          `gorm:"size:36;not null"`
	ToMemberID   string          `gorm:"size:36;not null"`
	Amount       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	FullySettled bool            `gorm:"not null"`
	CreatedAt    int64           `gorm:"not null;autoCreateTime:false"`
	CreatedBy    string          `gorm:"size:36;not null"`
	Note         string          `gorm:"size:512"`
}

func (settlementRow) TableName() string { return "settlements" }

func toDebtRow(e *models.DebtEdge) debtRow {
	return debtRow{
		ID:         e.ID,
		GroupID:    e.GroupID,
		DebtorID:   e.DebtorID,
		CreditorID: e.CreditorID,
		Amount:     e.Amount,
		UpdatedAt:  e.UpdatedAt,
	}
}

func (r debtRow) edge() *models.DebtEdge {
	return &models.DebtEdge{
		ID:         r.ID,
		GroupID:    r.GroupID,
		DebtorID:   r.DebtorID,
		CreditorID: r.CreditorID,
		Amount:     r.Amount,
		UpdatedAt:  r.UpdatedAt,
	}
}

func (r memberRow) member() models.Member {
	return models.Member{ID: r.ID, GroupID: r.GroupID, UserID: r.UserID, Name: r.Name, JoinedAt: r.JoinedAt}
}

func (r settlementRow) settlement() *models.Settlement {
	return &models.Settlement{
		ID:           r.ID,
		GroupID:      r.GroupID,
		DebtID:       r.DebtID,
		FromMemberID: r.FromMemberID,
		ToMemberID:   r.ToMemberID,
		Amount:       r.Amount,
		FullySettled: r.FullySettled,
		CreatedAt:    r.CreatedAt,
		CreatedBy:    r.CreatedBy,
		Note:         r.Note,
	}
}

func toReceiptRow(r *models.Receipt) receiptRow {
	return receiptRow{
		ID:             r.ID,
		GroupID:        r.GroupID,
		Name:           r.Name,
		TotalAmount:    r.TotalAmount,
		Subtotal:       r.Subtotal,
		TaxAmount:      r.TaxAmount,
		TaxRate:        r.TaxRate,
		DiscountAmount: r.DiscountAmount,
		DiscountRate:   r.DiscountRate,
		PurchaseDate:   r.PurchaseDate,
		UploadedBy:     r.UploadedBy,
		CreatedAt:      r.CreatedAt,
	}
}

func (r receiptRow) receipt() *models.Receipt {
	return &models.Receipt{
		ID:             r.ID,
		GroupID:        r.GroupID,
		Name:           r.Name,
		TotalAmount:    r.TotalAmount,
		Subtotal:       r.Subtotal,
		TaxAmount:      r.TaxAmount,
		TaxRate:        r.TaxRate,
		DiscountAmount: r.DiscountAmount,
		DiscountRate:   r.DiscountRate,
		PurchaseDate:   r.PurchaseDate,
		UploadedBy:     r.UploadedBy,
		CreatedAt:      r.CreatedAt,
	}
}
