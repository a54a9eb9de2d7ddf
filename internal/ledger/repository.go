package ledger

import (
	"context"

	"github.com/mmynk/groceryroom/internal/models"
)

// Repository is the persistent store of debt edges.
// Implementations must make WithTx atomic: either every write issued
// through tx is durable or none is.
type Repository interface {
	// WithTx runs fn inside one transaction. A non-nil error from fn rolls
	// the transaction back and is returned unchanged.
	WithTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error

	// ListEdges returns every edge of the group.
	ListEdges(ctx context.Context, groupID string) ([]*models.DebtEdge, error)

	// GetEdge returns one edge of the group or ErrEdgeNotFound.
	GetEdge(ctx context.Context, groupID, edgeID string) (*models.DebtEdge, error)
}

// Tx is the set of writes the ledger issues inside a transaction.
// Reads through Tx must lock the rows they return where the store supports it.
type Tx interface {
	// FindEdge returns the edge debtorID -> creditorID, or nil, nil.
	FindEdge(ctx context.Context, groupID, debtorID, creditorID string) (*models.DebtEdge, error)
	// GetEdge returns the edge by id or ErrEdgeNotFound.
	GetEdge(ctx context.Context, groupID, edgeID string) (*models.DebtEdge, error)
	// CreateEdge inserts edge, assigning an ID when empty.
	CreateEdge(ctx context.Context, edge *models.DebtEdge) error
	UpdateEdge(ctx context.Context, edge *models.DebtEdge) error
	DeleteEdge(ctx context.Context, edgeID string) error

	// InsertReceipt stores a receipt with its items and splits.
	// It returns ErrDuplicateReceipt when receipt.ID already exists.
	InsertReceipt(ctx context.Context, receipt *models.Receipt) error
	// InsertSettlement records a payment.
	InsertSettlement(ctx context.Context, settlement *models.Settlement) error
}
