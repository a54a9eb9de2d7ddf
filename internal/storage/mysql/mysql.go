// Package mysql provides a MySQL-backed implementation of the storage.Store
// interface on top of gorm, for deployments running several server
// instances against one database.
package mysql

import (
	"context"
	"errors"
	"fmt"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/mmynk/groceryroom/internal/ledger"
	"github.com/mmynk/groceryroom/internal/models"
	"github.com/mmynk/groceryroom/internal/storage"
)

// MySQL error numbers that mean another transaction got in the way.
const (
	errLockWaitTimeout = 1205
	errDeadlock        = 1213
)

var _ storage.Store = (*Store)(nil)

// Store implements storage.Store using MySQL.
type Store struct {
	db *gorm.DB
}

// New connects to dsn and migrates the schema.
func New(dsn string) (*Store, error) {
	db, err := gorm.Open(gormmysql.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if err := db.AutoMigrate(
		&groupRow{}, &memberRow{}, &debtRow{},
		&receiptRow{}, &itemRow{}, &splitRow{}, &settlementRow{},
	); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping checks the database connection.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// WithTx implements ledger.Repository.
func (s *Store) WithTx(ctx context.Context, fn func(ctx context.Context, tx ledger.Tx) error) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &ledgerTx{db: tx})
	})
	return conflict(err)
}

// conflict marks deadlocks, lock wait timeouts and duplicate keys as
// ledger.ErrConcurrentModification. Sentinels already set are kept.
func conflict(err error) error {
	if err == nil || errors.Is(err, ledger.ErrConcurrentModification) {
		return err
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %v", ledger.ErrConcurrentModification, err)
	}
	var merr *mysqldriver.MySQLError
	if errors.As(err, &merr) && (merr.Number == errDeadlock || merr.Number == errLockWaitTimeout) {
		return fmt.Errorf("%w: %v", ledger.ErrConcurrentModification, err)
	}
	return err
}

// ListEdges implements ledger.Repository.
func (s *Store) ListEdges(ctx context.Context, groupID string) ([]*models.DebtEdge, error) {
	var rows []debtRow
	if err := s.db.WithContext(ctx).Where("group_id = ?", groupID).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}
	edges := make([]*models.DebtEdge, len(rows))
	for i, r := range rows {
		edges[i] = r.edge()
	}
	return edges, nil
}

// GetEdge implements ledger.Repository.
func (s *Store) GetEdge(ctx context.Context, groupID, edgeID string) (*models.DebtEdge, error) {
	return getEdge(s.db.WithContext(ctx), groupID, edgeID)
}

func getEdge(db *gorm.DB, groupID, edgeID string) (*models.DebtEdge, error) {
	var row debtRow
	err := db.Where("id = ? AND group_id = ?", edgeID, groupID).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ledger.ErrEdgeNotFound, edgeID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get debt: %w", conflict(err))
	}
	return row.edge(), nil
}

// CreateGroup persists a new group and its initial roster.
func (s *Store) CreateGroup(ctx context.Context, group *models.Group) error {
	if group.ID == "" {
		group.ID = uuid.New().String()
	}
	if group.InviteCode == "" {
		group.InviteCode = storage.NewInviteCode()
	}
	if group.CreatedAt == 0 {
		group.CreatedAt = time.Now().Unix()
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := groupRow{
			ID:         group.ID,
			Name:       group.Name,
			Icon:       group.Icon,
			InviteCode: group.InviteCode,
			CreatorID:  group.CreatorID,
			CreatedAt:  group.CreatedAt,
		}
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to insert group: %w", err)
		}
		for i := range group.Members {
			m := &group.Members[i]
			m.GroupID = group.ID
			if m.JoinedAt == 0 {
				m.JoinedAt = group.CreatedAt
			}
			if err := insertMember(tx, m, i); err != nil {
				return err
			}
		}
		return nil
	})
}

// GetGroup retrieves a group with its roster in join order.
func (s *Store) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	db := s.db.WithContext(ctx)

	var row groupRow
	err := db.Where("id = ?", groupID).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("group %s: %w", groupID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	var members []memberRow
	if err := db.Where("group_id = ?", groupID).Order("position").Find(&members).Error; err != nil {
		return nil, fmt.Errorf("failed to get group members: %w", err)
	}

	group := &models.Group{
		ID:         row.ID,
		Name:       row.Name,
		Icon:       row.Icon,
		InviteCode: row.InviteCode,
		CreatorID:  row.CreatorID,
		CreatedAt:  row.CreatedAt,
		Members:    make([]models.Member, len(members)),
	}
	for i, m := range members {
		group.Members[i] = m.member()
	}
	return group, nil
}

// AddMember appends a member to an existing group.
func (s *Store) AddMember(ctx context.Context, member *models.Member) error {
	if member.JoinedAt == 0 {
		member.JoinedAt = time.Now().Unix()
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var group groupRow
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", member.GroupID).Take(&group).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("group %s: %w", member.GroupID, storage.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("failed to check group existence: %w", err)
		}

		var count int64
		if err := tx.Model(&memberRow{}).Where("group_id = ?", member.GroupID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count group members: %w", err)
		}
		return insertMember(tx, member, int(count))
	})
}

func insertMember(tx *gorm.DB, m *models.Member, position int) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	row := memberRow{ID: m.ID, GroupID: m.GroupID, UserID: m.UserID, Name: m.Name, Position: position, JoinedAt: m.JoinedAt}
	err := tx.Create(&row).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("user %s: %w", m.UserID, storage.ErrAlreadyMember)
	}
	if err != nil {
		return fmt.Errorf("failed to insert group member: %w", err)
	}
	return nil
}

// GetReceipt retrieves a receipt with its items and splits.
func (s *Store) GetReceipt(ctx context.Context, receiptID string) (*models.Receipt, error) {
	db := s.db.WithContext(ctx)

	var row receiptRow
	err := db.Where("id = ?", receiptID).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("receipt %s: %w", receiptID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get receipt: %w", err)
	}
	receipt := row.receipt()

	var items []itemRow
	if err := db.Where("receipt_id = ?", receiptID).Order("position").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to get receipt items: %w", err)
	}
	if len(items) == 0 {
		return receipt, nil
	}

	ids := make([]string, len(items))
	index := make(map[string]int, len(items))
	receipt.Items = make([]models.ReceiptItem, len(items))
	for i, it := range items {
		ids[i] = it.ID
		index[it.ID] = i
		receipt.Items[i] = models.ReceiptItem{
			ID:            it.ID,
			ReceiptID:     it.ReceiptID,
			Name:          it.Name,
			GeneralName:   it.GeneralName,
			Category:      it.Category,
			Quantity:      it.Quantity,
			Price:         it.Price,
			ActualPrice:   it.ActualPrice,
			SplitMethod:   models.SplitMethod(it.SplitMethod),
			SplitMemberID: it.SplitMemberID,
			PaidBy:        it.PaidBy,
		}
	}

	var splits []splitRow
	if err := db.Where("item_id IN ?", ids).Order("position").Find(&splits).Error; err != nil {
		return nil, fmt.Errorf("failed to get item splits: %w", err)
	}
	for _, sp := range splits {
		i := index[sp.ItemID]
		receipt.Items[i].Splits = append(receipt.Items[i].Splits, models.ReceiptItemSplit{
			ID: sp.ID, ItemID: sp.ItemID, MemberID: sp.MemberID, PaidBy: sp.PaidBy, Amount: sp.Amount,
		})
	}
	return receipt, nil
}

// ListSettlements retrieves all settlements for a group, newest first.
func (s *Store) ListSettlements(ctx context.Context, groupID string) ([]*models.Settlement, error) {
	var rows []settlementRow
	err := s.db.WithContext(ctx).Where("group_id = ?", groupID).Order("created_at DESC").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list settlements by group: %w", err)
	}
	out := make([]*models.Settlement, len(rows))
	for i, r := range rows {
		out[i] = r.settlement()
	}
	return out, nil
}

// MemberExpenses sums the splits charged to each member on receipts
// purchased in [from, to).
func (s *Store) MemberExpenses(ctx context.Context, groupID string, from, to time.Time) (map[string]decimal.Decimal, error) {
	var rows []struct {
		MemberID string
		Total    decimal.Decimal
	}
	err := s.db.WithContext(ctx).
		Table("receipt_item_splits AS s").
		Select("s.member_id AS member_id, SUM(s.amount) AS total").
		Joins("JOIN receipt_items i ON i.id = s.item_id").
		Joins("JOIN receipts r ON r.id = i.receipt_id").
		Where("r.group_id = ? AND r.purchase_date >= ? AND r.purchase_date < ?",
			groupID, from.Format(storage.DateLayout), to.Format(storage.DateLayout)).
		Group("s.member_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query member expenses: %w", err)
	}

	totals := make(map[string]decimal.Decimal, len(rows))
	for _, r := range rows {
		totals[r.MemberID] = r.Total
	}
	return totals, nil
}
