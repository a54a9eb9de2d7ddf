package mysql

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mmynk/groceryroom/internal/calculator"
	"github.com/mmynk/groceryroom/internal/ledger"
	"github.com/mmynk/groceryroom/internal/models"
	"github.com/mmynk/groceryroom/internal/storage"
)

func TestConflict(t *testing.T) {
	other := errors.New("boom")
	tests := []struct {
		name     string
		err      error
		conflict bool
	}{
		{name: "nil", err: nil},
		{name: "unrelated", err: other},
		{name: "duplicate key", err: fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), conflict: true},
		{name: "deadlock", err: &mysqldriver.MySQLError{Number: errDeadlock, Message: "Deadlock found"}, conflict: true},
		{name: "lock wait timeout", err: &mysqldriver.MySQLError{Number: errLockWaitTimeout}, conflict: true},
		{name: "syntax error", err: &mysqldriver.MySQLError{Number: 1064}},
		{name: "already marked", err: ledger.ErrConcurrentModification, conflict: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := conflict(tt.err)
			assert.Equal(t, tt.conflict, errors.Is(got, ledger.ErrConcurrentModification))
			if tt.err == nil {
				assert.NoError(t, got)
			}
		})
	}
}

func TestDebtRowConversion(t *testing.T) {
	edge := &models.DebtEdge{
		ID: "e1", GroupID: "g1", DebtorID: "a", CreditorID: "b",
		Amount: decimal.RequireFromString("12.34"), UpdatedAt: 99,
	}
	assert.Equal(t, edge, toDebtRow(edge).edge())
}

// TestStore_Integration runs against a real server when MYSQL_TEST_DSN is
// set, e.g. "root:secret@tcp(localhost:3306)/groceryroom_test".
func TestStore_Integration(t *testing.T) {
	dsn := os.Getenv("MYSQL_TEST_DSN")
	if dsn == "" {
		t.Skip("MYSQL_TEST_DSN not set")
	}
	store, err := New(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	ctx := context.Background()

	group := &models.Group{
		Name:      "Integration",
		CreatorID: "user-a",
		Members: []models.Member{
			{UserID: "user-a", Name: "A"},
			{UserID: "user-b", Name: "B"},
		},
	}
	require.NoError(t, store.CreateGroup(ctx, group))
	a, b := group.Members[0].ID, group.Members[1].ID

	err = store.AddMember(ctx, &models.Member{GroupID: group.ID, UserID: "user-a", Name: "A"})
	assert.ErrorIs(t, err, storage.ErrAlreadyMember)

	l := ledger.New(store)
	_, err = l.FoldBatch(ctx, group.ID, []calculator.Obligation{
		{Debtor: a, Creditor: b, Amount: decimal.RequireFromString("20.00")},
		{Debtor: b, Creditor: a, Amount: decimal.RequireFromString("35.00")},
	})
	require.NoError(t, err)

	edges, err := l.Debts(ctx, group.ID)
	require.NoError(t, err)
	require.Len(t, edges, 1)
	assert.Equal(t, b, edges[0].DebtorID)
	assert.Equal(t, "15.00", edges[0].Amount.StringFixed(2))

	res, err := l.Settle(ctx, ledger.SettleRequest{GroupID: group.ID, EdgeID: edges[0].ID, Amount: decimal.RequireFromString("15"), RecordedBy: b})
	require.NoError(t, err)
	assert.True(t, res.FullySettled)

	settlements, err := store.ListSettlements(ctx, group.ID)
	require.NoError(t, err)
	assert.Len(t, settlements, 1)
}
