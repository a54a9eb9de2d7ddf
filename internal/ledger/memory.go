package ledger

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/mmynk/groceryroom/internal/models"
)

// MemoryRepository is a Repository kept in process memory.
// Transactions are serialized and rolled back by restoring a snapshot.
type MemoryRepository struct {
	mu          sync.Mutex
	edges       map[string]models.DebtEdge
	receipts    map[string]models.Receipt
	settlements []models.Settlement
}

var _ Repository = (*MemoryRepository)(nil)

// NewMemoryRepository returns an empty MemoryRepository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		edges:    make(map[string]models.DebtEdge),
		receipts: make(map[string]models.Receipt),
	}
}

// WithTx implements Repository.
func (r *MemoryRepository) WithTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	edges := make(map[string]models.DebtEdge, len(r.edges))
	for k, v := range r.edges {
		edges[k] = v
	}
	receipts := make(map[string]models.Receipt, len(r.receipts))
	for k, v := range r.receipts {
		receipts[k] = v
	}
	settlements := len(r.settlements)

	if err := fn(ctx, &memoryTx{r: r}); err != nil {
		r.edges = edges
		r.receipts = receipts
		r.settlements = r.settlements[:settlements]
		return err
	}
	return nil
}

// ListEdges implements Repository. Edges are ordered by id.
func (r *MemoryRepository) ListEdges(_ context.Context, groupID string) ([]*models.DebtEdge, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*models.DebtEdge
	for _, e := range r.edges {
		if e.GroupID == groupID {
			e := e
			out = append(out, &e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// GetEdge implements Repository.
func (r *MemoryRepository) GetEdge(_ context.Context, groupID, edgeID string) (*models.DebtEdge, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.getEdge(groupID, edgeID)
}

// Settlements returns the recorded payments in insertion order.
func (r *MemoryRepository) Settlements() []models.Settlement {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Settlement(nil), r.settlements...)
}

func (r *MemoryRepository) getEdge(groupID, edgeID string) (*models.DebtEdge, error) {
	e, ok := r.edges[edgeID]
	if !ok || e.GroupID != groupID {
		return nil, fmt.Errorf("%w: %s", ErrEdgeNotFound, edgeID)
	}
	return &e, nil
}

// memoryTx runs with MemoryRepository.mu held.
type memoryTx struct {
	r *MemoryRepository
}

func (t *memoryTx) FindEdge(_ context.Context, groupID, debtorID, creditorID string) (*models.DebtEdge, error) {
	for _, e := range t.r.edges {
		if e.GroupID == groupID && e.DebtorID == debtorID && e.CreditorID == creditorID {
			e := e
			return &e, nil
		}
	}
	return nil, nil
}

func (t *memoryTx) GetEdge(_ context.Context, groupID, edgeID string) (*models.DebtEdge, error) {
	return t.r.getEdge(groupID, edgeID)
}

func (t *memoryTx) CreateEdge(ctx context.Context, edge *models.DebtEdge) error {
	existing, _ := t.FindEdge(ctx, edge.GroupID, edge.DebtorID, edge.CreditorID)
	if existing != nil {
		return fmt.Errorf("%w: edge %s -> %s already exists", ErrConcurrentModification, edge.DebtorID, edge.CreditorID)
	}
	if edge.ID == "" {
		edge.ID = uuid.New().String()
	}
	t.r.edges[edge.ID] = *edge
	return nil
}

func (t *memoryTx) UpdateEdge(_ context.Context, edge *models.DebtEdge) error {
	if _, ok := t.r.edges[edge.ID]; !ok {
		return fmt.Errorf("%w: %s", ErrEdgeNotFound, edge.ID)
	}
	t.r.edges[edge.ID] = *edge
	return nil
}

func (t *memoryTx) DeleteEdge(_ context.Context, edgeID string) error {
	if _, ok := t.r.edges[edgeID]; !ok {
		return fmt.Errorf("%w: %s", ErrEdgeNotFound, edgeID)
	}
	delete(t.r.edges, edgeID)
	return nil
}

func (t *memoryTx) InsertReceipt(_ context.Context, receipt *models.Receipt) error {
	if receipt.ID == "" {
		receipt.ID = uuid.New().String()
	}
	if _, ok := t.r.receipts[receipt.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateReceipt, receipt.ID)
	}
	t.r.receipts[receipt.ID] = *receipt
	return nil
}

func (t *memoryTx) InsertSettlement(_ context.Context, settlement *models.Settlement) error {
	if settlement.ID == "" {
		settlement.ID = uuid.New().String()
	}
	t.r.settlements = append(t.r.settlements, *settlement)
	return nil
}
