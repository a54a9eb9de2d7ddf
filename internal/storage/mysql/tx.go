package mysql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mmynk/groceryroom/internal/ledger"
	"github.com/mmynk/groceryroom/internal/models"
)

// ledgerTx implements ledger.Tx. Edge reads take row locks
// (SELECT ... FOR UPDATE) so concurrent transactions on the same pair
// queue behind each other.
type ledgerTx struct {
	db *gorm.DB
}

func (t *ledgerTx) FindEdge(ctx context.Context, groupID, debtorID, creditorID string) (*models.DebtEdge, error) {
	var row debtRow
	err := t.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("group_id = ? AND debtor_id = ? AND creditor_id = ?", groupID, debtorID, creditorID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find debt: %w", conflict(err))
	}
	return row.edge(), nil
}

func (t *ledgerTx) GetEdge(ctx context.Context, groupID, edgeID string) (*models.DebtEdge, error) {
	return getEdge(t.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), groupID, edgeID)
}

func (t *ledgerTx) CreateEdge(ctx context.Context, edge *models.DebtEdge) error {
	if edge.ID == "" {
		edge.ID = uuid.New().String()
	}
	row := toDebtRow(edge)
	if err := t.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to insert debt: %w", conflict(err))
	}
	return nil
}

func (t *ledgerTx) UpdateEdge(ctx context.Context, edge *models.DebtEdge) error {
	res := t.db.WithContext(ctx).Model(&debtRow{}).Where("id = ?", edge.ID).
		Updates(map[string]any{"amount": edge.Amount, "updated_at": edge.UpdatedAt})
	if res.Error != nil {
		return fmt.Errorf("failed to update debt: %w", conflict(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ledger.ErrEdgeNotFound, edge.ID)
	}
	return nil
}

func (t *ledgerTx) DeleteEdge(ctx context.Context, edgeID string) error {
	res := t.db.WithContext(ctx).Where("id = ?", edgeID).Delete(&debtRow{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete debt: %w", conflict(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ledger.ErrEdgeNotFound, edgeID)
	}
	return nil
}

func (t *ledgerTx) InsertReceipt(ctx context.Context, receipt *models.Receipt) error {
	if receipt.ID == "" {
		receipt.ID = uuid.New().String()
	}
	if receipt.CreatedAt == 0 {
		receipt.CreatedAt = time.Now().Unix()
	}
	db := t.db.WithContext(ctx)

	row := toReceiptRow(receipt)
	err := db.Create(&row).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %s", ledger.ErrDuplicateReceipt, receipt.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to insert receipt: %w", conflict(err))
	}

	var items []itemRow
	var splits []splitRow
	for i := range receipt.Items {
		item := &receipt.Items[i]
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		item.ReceiptID = receipt.ID
		items = append(items, itemRow{
			ID:            item.ID,
			ReceiptID:     receipt.ID,
			Position:      i,
			Name:          item.Name,
			GeneralName:   item.GeneralName,
			Category:      item.Category,
			Quantity:      item.Quantity,
			Price:         item.Price,
			ActualPrice:   item.ActualPrice,
			SplitMethod:   string(item.SplitMethod),
			SplitMemberID: item.SplitMemberID,
			PaidBy:        item.PaidBy,
		})
		for j := range item.Splits {
			sp := &item.Splits[j]
			if sp.ID == "" {
				sp.ID = uuid.New().String()
			}
			sp.ItemID = item.ID
			splits = append(splits, splitRow{
				ID: sp.ID, ItemID: item.ID, Position: j, MemberID: sp.MemberID, PaidBy: sp.PaidBy, Amount: sp.Amount,
			})
		}
	}

	if len(items) > 0 {
		if err := db.Create(&items).Error; err != nil {
			return fmt.Errorf("failed to insert receipt items: %w", conflict(err))
		}
	}
	if len(splits) > 0 {
		if err := db.Create(&splits).Error; err != nil {
			return fmt.Errorf("failed to insert item splits: %w", conflict(err))
		}
	}
	return nil
}

func (t *ledgerTx) InsertSettlement(ctx context.Context, settlement *models.Settlement) error {
	if settlement.ID == "" {
		settlement.ID = uuid.New().String()
	}
	if settlement.CreatedAt == 0 {
		settlement.CreatedAt = time.Now().Unix()
	}
	row := settlementRow{
		ID:           settlement.ID,
		GroupID:      settlement.GroupID,
		DebtID:       settlement.DebtID,
		FromMemberID: settlement.FromMemberID,
		ToMemberID:   settlement.ToMemberID,
		Amount:       settlement.Amount,
		FullySettled: settlement.FullySettled,
		CreatedAt:    settlement.CreatedAt,
		CreatedBy:    settlement.CreatedBy,
		Note:         settlement.Note,
	}
	if err := t.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to insert settlement: %w", conflict(err))
	}
	return nil
}
