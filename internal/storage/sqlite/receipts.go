package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mmynk/groceryroom/internal/ledger"
	"github.com/mmynk/groceryroom/internal/models"
	"github.com/mmynk/groceryroom/internal/storage"
)

// InsertReceipt implements ledger.Tx. It writes the receipt header, items
// and item splits; a repeated receipt ID fails with ErrDuplicateReceipt.
func (t *ledgerTx) InsertReceipt(ctx context.Context, receipt *models.Receipt) error {
	if receipt.ID == "" {
		receipt.ID = uuid.New().String()
	}
	if receipt.CreatedAt == 0 {
		receipt.CreatedAt = time.Now().Unix()
	}

	_, err := t.tx.ExecContext(ctx,
		`INSERT INTO receipts (id, group_id, name, total_amount, subtotal, tax_amount, tax_rate,
		 discount_amount, discount_rate, purchase_date, uploaded_by, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		receipt.ID, receipt.GroupID, receipt.Name,
		receipt.TotalAmount.String(), receipt.Subtotal.String(), receipt.TaxAmount.String(), receipt.TaxRate.String(),
		receipt.DiscountAmount.String(), receipt.DiscountRate.String(),
		receipt.PurchaseDate, receipt.UploadedBy, receipt.CreatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %s", ledger.ErrDuplicateReceipt, receipt.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to insert receipt: %w", conflict(err))
	}

	for i := range receipt.Items {
		item := &receipt.Items[i]
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		item.ReceiptID = receipt.ID

		var splitMember any
		if item.SplitMemberID != "" {
			splitMember = item.SplitMemberID
		}
		_, err := t.tx.ExecContext(ctx,
			`INSERT INTO receipt_items (id, receipt_id, position, name, general_name, category, quantity,
			 price, actual_price, split_method, split_member_id, paid_by)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			item.ID, receipt.ID, i, item.Name, item.GeneralName, item.Category, item.Quantity,
			item.Price.String(), item.ActualPrice.String(), string(item.SplitMethod), splitMember, item.PaidBy,
		)
		if err != nil {
			return fmt.Errorf("failed to insert receipt item: %w", conflict(err))
		}

		for j := range item.Splits {
			split := &item.Splits[j]
			if split.ID == "" {
				split.ID = uuid.New().String()
			}
			split.ItemID = item.ID
			_, err := t.tx.ExecContext(ctx,
				"INSERT INTO receipt_item_splits (id, item_id, member_id, paid_by, amount) VALUES (?, ?, ?, ?, ?)",
				split.ID, item.ID, split.MemberID, split.PaidBy, split.Amount.String(),
			)
			if err != nil {
				return fmt.Errorf("failed to insert item split: %w", conflict(err))
			}
		}
	}
	return nil
}

// GetReceipt retrieves a receipt with its items and splits.
func (s *SQLiteStore) GetReceipt(ctx context.Context, receiptID string) (*models.Receipt, error) {
	r := &models.Receipt{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, group_id, name, total_amount, subtotal, tax_amount, tax_rate,
		 discount_amount, discount_rate, purchase_date, uploaded_by, created_at
		 FROM receipts WHERE id = ?`,
		receiptID,
	).Scan(&r.ID, &r.GroupID, &r.Name, &r.TotalAmount, &r.Subtotal, &r.TaxAmount, &r.TaxRate,
		&r.DiscountAmount, &r.DiscountRate, &r.PurchaseDate, &r.UploadedBy, &r.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("receipt %s: %w", receiptID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get receipt: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, receipt_id, name, general_name, category, quantity, price, actual_price,
		 split_method, COALESCE(split_member_id, ''), paid_by
		 FROM receipt_items WHERE receipt_id = ? ORDER BY position`,
		receiptID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get receipt items: %w", err)
	}
	defer rows.Close()

	index := make(map[string]int)
	for rows.Next() {
		var item models.ReceiptItem
		var method string
		if err := rows.Scan(&item.ID, &item.ReceiptID, &item.Name, &item.GeneralName, &item.Category,
			&item.Quantity, &item.Price, &item.ActualPrice, &method, &item.SplitMemberID, &item.PaidBy); err != nil {
			return nil, fmt.Errorf("failed to scan receipt item: %w", err)
		}
		item.SplitMethod = models.SplitMethod(method)
		index[item.ID] = len(r.Items)
		r.Items = append(r.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate receipt items: %w", err)
	}

	splitRows, err := s.db.QueryContext(ctx,
		`SELECT s.id, s.item_id, s.member_id, s.paid_by, s.amount
		 FROM receipt_item_splits s JOIN receipt_items i ON i.id = s.item_id
		 WHERE i.receipt_id = ? ORDER BY i.position, s.rowid`,
		receiptID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get item splits: %w", err)
	}
	defer splitRows.Close()

	for splitRows.Next() {
		var split models.ReceiptItemSplit
		if err := splitRows.Scan(&split.ID, &split.ItemID, &split.MemberID, &split.PaidBy, &split.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan item split: %w", err)
		}
		i := index[split.ItemID]
		r.Items[i].Splits = append(r.Items[i].Splits, split)
	}
	if err := splitRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate item splits: %w", err)
	}

	return r, nil
}

// MemberExpenses sums the splits charged to each member on receipts
// purchased in [from, to).
func (s *SQLiteStore) MemberExpenses(ctx context.Context, groupID string, from, to time.Time) (map[string]decimal.Decimal, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT s.member_id, s.amount
		 FROM receipt_item_splits s
		 JOIN receipt_items i ON i.id = s.item_id
		 JOIN receipts r ON r.id = i.receipt_id
		 WHERE r.group_id = ? AND r.purchase_date >= ? AND r.purchase_date < ?`,
		groupID, from.Format(storage.DateLayout), to.Format(storage.DateLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query member expenses: %w", err)
	}
	defer rows.Close()

	totals := make(map[string]decimal.Decimal)
	for rows.Next() {
		var member string
		var amount decimal.Decimal
		if err := rows.Scan(&member, &amount); err != nil {
			return nil, fmt.Errorf("failed to scan member expense: %w", err)
		}
		totals[member] = totals[member].Add(amount)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate member expenses: %w", err)
	}
	return totals, nil
}
