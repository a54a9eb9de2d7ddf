// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mmynk/groceryroom/internal/ledger"
	"github.com/mmynk/groceryroom/internal/models"
)

var (
	// ErrNotFound is returned when a group or receipt does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyMember is returned when a user joins a group twice.
	ErrAlreadyMember = errors.New("user is already a member of the group")
)

// Store defines the persistence operations of the service.
// This abstraction allows swapping storage backends (SQLite, MySQL)
// without changing the service layer.
//
// Debt edges, receipts and settlements are written only through the
// embedded ledger.Repository so that every write happens inside a ledger
// transaction.
type Store interface {
	ledger.Repository

	// CreateGroup persists a new group together with its initial members.
	// Missing IDs, invite code and timestamps are filled in by the store.
	CreateGroup(ctx context.Context, group *models.Group) error

	// GetGroup retrieves a group with its roster in join order.
	// Returns ErrNotFound if the group does not exist.
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)

	// AddMember appends a member to an existing group.
	// Returns ErrNotFound for an unknown group and ErrAlreadyMember when
	// the user already belongs to it.
	AddMember(ctx context.Context, member *models.Member) error

	// GetReceipt retrieves a confirmed receipt with items and splits.
	// Returns ErrNotFound if the receipt does not exist.
	GetReceipt(ctx context.Context, receiptID string) (*models.Receipt, error)

	// ListSettlements returns the payments of a group, newest first.
	ListSettlements(ctx context.Context, groupID string) ([]*models.Settlement, error)

	// MemberExpenses sums, per member, the item splits charged to them on
	// receipts purchased in [from, to).
	MemberExpenses(ctx context.Context, groupID string, from, to time.Time) (map[string]decimal.Decimal, error)

	// Close releases any resources held by the store.
	Close() error
}

// DateLayout is the layout of Receipt.PurchaseDate.
const DateLayout = "2006-01-02"

// NewInviteCode returns an 8 character upper-case invite code.
func NewInviteCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
}
