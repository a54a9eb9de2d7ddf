// Package ledger maintains the net pairwise debts of each group.
//
// Obligations produced by the split allocator are folded one at a time into
// directional debt edges so that, for every unordered pair of members, at
// most one edge exists and its amount is strictly positive. Payments reduce
// or remove a single edge.
//
// Every batch fold and every settlement runs in one store transaction,
// after the member pairs it touches have been locked through a Locker.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/groceryroom/internal/calculator"
	"github.com/mmynk/groceryroom/internal/metrics"
	"github.com/mmynk/groceryroom/internal/models"
)

// ChangeKind describes what folding one obligation did to the ledger.
type ChangeKind string

const (
	ChangeNoop    ChangeKind = "noop"
	ChangeCreated ChangeKind = "created"
	ChangeUpdated ChangeKind = "updated"
	ChangeDeleted ChangeKind = "deleted"
	// ChangeFlipped means the reverse edge was removed and a new edge now
	// points the other way.
	ChangeFlipped ChangeKind = "flipped"
)

// Change is the effect of folding one obligation.
type Change struct {
	Kind       ChangeKind
	EdgeID     string
	DebtorID   string
	CreditorID string
	// Amount is the edge amount after the change; zero when deleted.
	Amount decimal.Decimal
}

// FoldResult is the outcome of a committed batch.
type FoldResult struct {
	ReceiptID string
	Changes   []Change
}

// SettleRequest is a payment toward one edge.
type SettleRequest struct {
	GroupID string
	EdgeID  string
	// Amount is the raw payment; it is rounded half-up to cents before
	// any check.
	Amount decimal.Decimal
	// RecordedBy is the member submitting the payment.
	RecordedBy string
	Note       string
}

// SettleResult is the outcome of a committed payment.
type SettleResult struct {
	Settlement *models.Settlement
	// Edge is the remaining edge, nil when FullySettled.
	Edge         *models.DebtEdge
	FullySettled bool
}

// Ledger folds obligations and applies payments against a Repository.
type Ledger struct {
	repo    Repository
	locker  Locker
	metrics *metrics.Ledger
	logger  *slog.Logger
	now     func() time.Time
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithLocker replaces the default in-process locker.
func WithLocker(l Locker) Option {
	return func(led *Ledger) { led.locker = l }
}

// WithMetrics enables Prometheus instrumentation.
func WithMetrics(m *metrics.Ledger) Option {
	return func(led *Ledger) { led.metrics = m }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(led *Ledger) { led.logger = l }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(led *Ledger) { led.now = now }
}

// New creates a Ledger over repo.
func New(repo Repository, opts ...Option) *Ledger {
	l := &Ledger{
		repo:   repo,
		locker: NewLocalLocker(5 * time.Second),
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Fold merges one obligation into the ledger state of its pair, inside tx.
// It takes no locks; callers hold the pair lock for the whole transaction.
func (l *Ledger) Fold(ctx context.Context, tx Tx, groupID string, o calculator.Obligation) (Change, error) {
	change := Change{Kind: ChangeNoop, DebtorID: o.Debtor, CreditorID: o.Creditor}
	if o.Debtor == "" || o.Creditor == "" {
		return change, fmt.Errorf("%w: debtor and creditor are required", ErrInvalidObligation)
	}
	if o.Amount.IsNegative() {
		return change, fmt.Errorf("%w: negative amount %s", ErrInvalidObligation, o.Amount)
	}
	if o.Debtor == o.Creditor || o.Amount.IsZero() {
		return change, nil
	}
	now := l.now().Unix()

	edge, err := tx.FindEdge(ctx, groupID, o.Debtor, o.Creditor)
	if err != nil {
		return change, fmt.Errorf("find edge: %w", err)
	}
	if edge != nil {
		edge.Amount = edge.Amount.Add(o.Amount)
		edge.UpdatedAt = now
		change.EdgeID = edge.ID
		if edge.Amount.IsZero() {
			if err := tx.DeleteEdge(ctx, edge.ID); err != nil {
				return change, fmt.Errorf("delete edge: %w", err)
			}
			change.Kind = ChangeDeleted
			return change, nil
		}
		if err := tx.UpdateEdge(ctx, edge); err != nil {
			return change, fmt.Errorf("update edge: %w", err)
		}
		change.Kind, change.Amount = ChangeUpdated, edge.Amount
		return change, nil
	}

	reverse, err := tx.FindEdge(ctx, groupID, o.Creditor, o.Debtor)
	if err != nil {
		return change, fmt.Errorf("find reverse edge: %w", err)
	}
	if reverse != nil {
		remaining := reverse.Amount.Sub(o.Amount)
		change.EdgeID = reverse.ID
		change.DebtorID, change.CreditorID = reverse.DebtorID, reverse.CreditorID

		switch remaining.Sign() {
		case 0:
			if err := tx.DeleteEdge(ctx, reverse.ID); err != nil {
				return change, fmt.Errorf("delete reverse edge: %w", err)
			}
			change.Kind = ChangeDeleted
			return change, nil
		case 1:
			reverse.Amount = remaining
			reverse.UpdatedAt = now
			if err := tx.UpdateEdge(ctx, reverse); err != nil {
				return change, fmt.Errorf("update reverse edge: %w", err)
			}
			change.Kind, change.Amount = ChangeUpdated, remaining
			return change, nil
		}

		if err := tx.DeleteEdge(ctx, reverse.ID); err != nil {
			return change, fmt.Errorf("delete reverse edge: %w", err)
		}
		flipped := &models.DebtEdge{
			GroupID:    groupID,
			DebtorID:   o.Debtor,
			CreditorID: o.Creditor,
			Amount:     remaining.Neg(),
			UpdatedAt:  now,
		}
		if err := tx.CreateEdge(ctx, flipped); err != nil {
			return change, fmt.Errorf("create flipped edge: %w", err)
		}
		return Change{
			Kind:       ChangeFlipped,
			EdgeID:     flipped.ID,
			DebtorID:   flipped.DebtorID,
			CreditorID: flipped.CreditorID,
			Amount:     flipped.Amount,
		}, nil
	}

	created := &models.DebtEdge{
		GroupID:    groupID,
		DebtorID:   o.Debtor,
		CreditorID: o.Creditor,
		Amount:     o.Amount,
		UpdatedAt:  now,
	}
	if err := tx.CreateEdge(ctx, created); err != nil {
		return change, fmt.Errorf("create edge: %w", err)
	}
	change.Kind, change.EdgeID, change.Amount = ChangeCreated, created.ID, created.Amount
	return change, nil
}

// FoldBatch folds obligations in order as one atomic unit.
func (l *Ledger) FoldBatch(ctx context.Context, groupID string, obligations []calculator.Obligation) (*FoldResult, error) {
	return l.foldAll(ctx, groupID, obligations, nil)
}

// ApplyReceipt stores receipt and folds all of its item splits in the same
// transaction. The receipt ID keys the batch: applying a receipt twice
// fails with ErrDuplicateReceipt and leaves the ledger unchanged.
func (l *Ledger) ApplyReceipt(ctx context.Context, receipt *models.Receipt) (*FoldResult, error) {
	splits := receipt.Splits()
	obligations := make([]calculator.Obligation, len(splits))
	for i, s := range splits {
		obligations[i] = calculator.Obligation{Debtor: s.MemberID, Creditor: s.PaidBy, Amount: s.Amount}
	}

	result, err := l.foldAll(ctx, receipt.GroupID, obligations, func(ctx context.Context, tx Tx) error {
		if err := tx.InsertReceipt(ctx, receipt); err != nil {
			return fmt.Errorf("insert receipt: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	result.ReceiptID = receipt.ID
	return result, nil
}

func (l *Ledger) foldAll(ctx context.Context, groupID string, obligations []calculator.Obligation, before func(context.Context, Tx) error) (*FoldResult, error) {
	keys := make([]string, 0, len(obligations))
	for _, o := range obligations {
		if o.Debtor != o.Creditor {
			keys = append(keys, PairKey(groupID, o.Debtor, o.Creditor))
		}
	}

	unlock, err := l.lock(ctx, keys)
	if err != nil {
		l.metrics.ObserveBatch(outcome(err))
		return nil, err
	}
	defer unlock()

	result := &FoldResult{Changes: make([]Change, 0, len(obligations))}
	err = l.repo.WithTx(ctx, func(ctx context.Context, tx Tx) error {
		result.Changes = result.Changes[:0]
		if before != nil {
			if err := before(ctx, tx); err != nil {
				return err
			}
		}
		for i, o := range obligations {
			change, err := l.Fold(ctx, tx, groupID, o)
			if err != nil {
				return fmt.Errorf("fold obligation %d: %w", i, err)
			}
			result.Changes = append(result.Changes, change)
		}
		return nil
	})
	l.metrics.ObserveBatch(outcome(err))
	if err != nil {
		l.logger.Warn("Ledger batch rolled back",
			"group_id", groupID,
			"obligations", len(obligations),
			"error", err,
		)
		return nil, err
	}

	for _, c := range result.Changes {
		l.metrics.ObserveChange(string(c.Kind))
	}
	l.logger.Debug("Ledger batch committed",
		"group_id", groupID,
		"obligations", len(obligations),
	)
	return result, nil
}

// Settle applies a payment to one edge.
//
// The amount is rounded half-up to cents first, then must be positive and
// no greater than the edge amount; nothing is clamped. Paying the full
// amount deletes the edge.
func (l *Ledger) Settle(ctx context.Context, req SettleRequest) (*SettleResult, error) {
	amount := calculator.RoundCents(req.Amount)
	if !amount.IsPositive() {
		l.metrics.ObserveSettlement("rejected")
		return nil, fmt.Errorf("%w: payment amount must be greater than 0", ErrInvalidPaymentAmount)
	}

	edge, err := l.repo.GetEdge(ctx, req.GroupID, req.EdgeID)
	if err != nil {
		l.metrics.ObserveSettlement(outcome(err))
		return nil, err
	}

	unlock, err := l.lock(ctx, []string{PairKey(req.GroupID, edge.DebtorID, edge.CreditorID)})
	if err != nil {
		l.metrics.ObserveSettlement(outcome(err))
		return nil, err
	}
	defer unlock()

	var result *SettleResult
	err = l.repo.WithTx(ctx, func(ctx context.Context, tx Tx) error {
		current, err := tx.GetEdge(ctx, req.GroupID, req.EdgeID)
		if err != nil {
			return err
		}
		if amount.GreaterThan(current.Amount) {
			return fmt.Errorf("%w: payment %s exceeds debt %s",
				ErrInvalidPaymentAmount, calculator.FormatCents(amount), calculator.FormatCents(current.Amount))
		}

		now := l.now().Unix()
		current.Amount = current.Amount.Sub(amount)
		current.UpdatedAt = now
		settlement := &models.Settlement{
			GroupID:      req.GroupID,
			DebtID:       current.ID,
			FromMemberID: current.DebtorID,
			ToMemberID:   current.CreditorID,
			Amount:       amount,
			FullySettled: current.Amount.IsZero(),
			CreatedAt:    now,
			CreatedBy:    req.RecordedBy,
			Note:         req.Note,
		}

		result = &SettleResult{Settlement: settlement, FullySettled: settlement.FullySettled}
		if settlement.FullySettled {
			if err := tx.DeleteEdge(ctx, current.ID); err != nil {
				return fmt.Errorf("delete edge: %w", err)
			}
		} else {
			if err := tx.UpdateEdge(ctx, current); err != nil {
				return fmt.Errorf("update edge: %w", err)
			}
			result.Edge = current
		}
		if err := tx.InsertSettlement(ctx, settlement); err != nil {
			return fmt.Errorf("insert settlement: %w", err)
		}
		return nil
	})
	if err != nil {
		l.metrics.ObserveSettlement(outcome(err))
		return nil, err
	}

	if result.FullySettled {
		l.metrics.ObserveSettlement("full")
	} else {
		l.metrics.ObserveSettlement("partial")
	}
	l.logger.Info("Debt payment applied",
		"group_id", req.GroupID,
		"debt_id", req.EdgeID,
		"amount", calculator.FormatCents(amount),
		"fully_settled", result.FullySettled,
	)
	return result, nil
}

// ParsePayment parses a raw payment string and rounds it half-up to cents.
// Non-numeric input fails with ErrInvalidPaymentAmount.
func ParsePayment(raw string) (decimal.Decimal, error) {
	d, err := calculator.ParseAmount(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrInvalidPaymentAmount, err)
	}
	return calculator.RoundCents(d), nil
}

// Debts returns every non-zero edge of the group.
func (l *Ledger) Debts(ctx context.Context, groupID string) ([]*models.DebtEdge, error) {
	edges, err := l.repo.ListEdges(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("list edges: %w", err)
	}
	out := edges[:0]
	for _, e := range edges {
		if !e.Amount.IsZero() {
			out = append(out, e)
		}
	}
	return out, nil
}

func (l *Ledger) lock(ctx context.Context, keys []string) (func(), error) {
	if len(keys) == 0 {
		return func() {}, nil
	}
	start := l.now()
	unlock, err := l.locker.Lock(ctx, keys)
	l.metrics.ObserveLockWait(l.now().Sub(start))
	if err != nil {
		if !errors.Is(err, ErrConcurrentModification) {
			err = fmt.Errorf("%w: %v", ErrConcurrentModification, err)
		}
		return nil, err
	}
	return unlock, nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrConcurrentModification):
		return "conflict"
	case errors.Is(err, ErrInvalidPaymentAmount),
		errors.Is(err, ErrInvalidObligation),
		errors.Is(err, ErrEdgeNotFound),
		errors.Is(err, ErrDuplicateReceipt):
		return "rejected"
	default:
		return "error"
	}
}
