package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mmynk/groceryroom/internal/ledger"
	"github.com/mmynk/groceryroom/internal/models"
)

const debtColumns = "id, group_id, debtor_id, creditor_id, amount, updated_at"

// querier is the subset shared by *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// ListEdges implements ledger.Repository.
func (s *SQLiteStore) ListEdges(ctx context.Context, groupID string) ([]*models.DebtEdge, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+debtColumns+" FROM debts WHERE group_id = ? ORDER BY id",
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}
	defer rows.Close()

	var edges []*models.DebtEdge
	for rows.Next() {
		edge := &models.DebtEdge{}
		if err := rows.Scan(&edge.ID, &edge.GroupID, &edge.DebtorID, &edge.CreditorID, &edge.Amount, &edge.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan debt: %w", err)
		}
		edges = append(edges, edge)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate debts: %w", err)
	}
	return edges, nil
}

// GetEdge implements ledger.Repository.
func (s *SQLiteStore) GetEdge(ctx context.Context, groupID, edgeID string) (*models.DebtEdge, error) {
	return getEdge(ctx, s.db, groupID, edgeID)
}

func getEdge(ctx context.Context, q querier, groupID, edgeID string) (*models.DebtEdge, error) {
	edge := &models.DebtEdge{}
	err := q.QueryRowContext(ctx,
		"SELECT "+debtColumns+" FROM debts WHERE id = ? AND group_id = ?",
		edgeID, groupID,
	).Scan(&edge.ID, &edge.GroupID, &edge.DebtorID, &edge.CreditorID, &edge.Amount, &edge.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ledger.ErrEdgeNotFound, edgeID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get debt: %w", err)
	}
	return edge, nil
}

// ledgerTx implements ledger.Tx on an open transaction.
type ledgerTx struct {
	tx *sql.Tx
}

func (t *ledgerTx) FindEdge(ctx context.Context, groupID, debtorID, creditorID string) (*models.DebtEdge, error) {
	edge := &models.DebtEdge{}
	err := t.tx.QueryRowContext(ctx,
		"SELECT "+debtColumns+" FROM debts WHERE group_id = ? AND debtor_id = ? AND creditor_id = ?",
		groupID, debtorID, creditorID,
	).Scan(&edge.ID, &edge.GroupID, &edge.DebtorID, &edge.CreditorID, &edge.Amount, &edge.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find debt: %w", conflict(err))
	}
	return edge, nil
}

func (t *ledgerTx) GetEdge(ctx context.Context, groupID, edgeID string) (*models.DebtEdge, error) {
	return getEdge(ctx, t.tx, groupID, edgeID)
}

func (t *ledgerTx) CreateEdge(ctx context.Context, edge *models.DebtEdge) error {
	if edge.ID == "" {
		edge.ID = uuid.New().String()
	}
	_, err := t.tx.ExecContext(ctx,
		"INSERT INTO debts ("+debtColumns+") VALUES (?, ?, ?, ?, ?, ?)",
		edge.ID, edge.GroupID, edge.DebtorID, edge.CreditorID, edge.Amount.String(), edge.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert debt: %w", conflict(err))
	}
	return nil
}

func (t *ledgerTx) UpdateEdge(ctx context.Context, edge *models.DebtEdge) error {
	res, err := t.tx.ExecContext(ctx,
		"UPDATE debts SET amount = ?, updated_at = ? WHERE id = ?",
		edge.Amount.String(), edge.UpdatedAt, edge.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update debt: %w", conflict(err))
	}
	return expectOne(res, edge.ID)
}

func (t *ledgerTx) DeleteEdge(ctx context.Context, edgeID string) error {
	res, err := t.tx.ExecContext(ctx, "DELETE FROM debts WHERE id = ?", edgeID)
	if err != nil {
		return fmt.Errorf("failed to delete debt: %w", conflict(err))
	}
	return expectOne(res, edgeID)
}

func expectOne(res sql.Result, edgeID string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n != 1 {
		return fmt.Errorf("%w: %s", ledger.ErrEdgeNotFound, edgeID)
	}
	return nil
}
