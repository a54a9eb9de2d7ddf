package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"

	"github.com/mmynk/groceryroom/internal/calculator"
	"github.com/mmynk/groceryroom/internal/ledger"
	"github.com/mmynk/groceryroom/internal/models"
	"github.com/mmynk/groceryroom/internal/storage"
	pb "github.com/mmynk/groceryroom/pkg/proto"
	"github.com/mmynk/groceryroom/pkg/proto/protoconnect"
)

// DebtCache is an optional read-through cache of each group's debts.
//
// Every invalidation bumps the group's generation. A fill carries the
// generation read before the store was queried and is dropped when an
// invalidation happened in between, so a slow reader cannot put back a
// list that predates a committed write.
type DebtCache interface {
	Get(ctx context.Context, groupID string) ([]*models.DebtEdge, bool, error)
	Generation(ctx context.Context, groupID string) (int64, error)
	SetIfGeneration(ctx context.Context, groupID string, gen int64, edges []*models.DebtEdge) (bool, error)
	Invalidate(ctx context.Context, groupID string) error
}

// LedgerService implements the Connect LedgerService: receipt
// confirmation, debt listing and settlement.
type LedgerService struct {
	protoconnect.UnimplementedLedgerServiceHandler
	store  storage.Store
	ledger *ledger.Ledger
	cache  DebtCache
	now    func() time.Time
}

// LedgerServiceOption configures a LedgerService.
type LedgerServiceOption func(*LedgerService)

// WithDebtCache serves ListDebts and GetBalances from c when possible.
func WithDebtCache(c DebtCache) LedgerServiceOption {
	return func(s *LedgerService) { s.cache = c }
}

// WithNow overrides the clock used for default purchase dates and months.
func WithNow(now func() time.Time) LedgerServiceOption {
	return func(s *LedgerService) { s.now = now }
}

// NewLedgerService creates a LedgerService. led must be built over store.
func NewLedgerService(store storage.Store, led *ledger.Ledger, opts ...LedgerServiceOption) *LedgerService {
	s := &LedgerService{store: store, ledger: led, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ConfirmReceipt splits every item of a confirmed receipt and folds the
// resulting obligations into the group's debts in one transaction.
func (s *LedgerService) ConfirmReceipt(ctx context.Context, req *connect.Request[pb.ConfirmReceiptRequest]) (*connect.Response[pb.ConfirmReceiptResponse], error) {
	group, caller, err := callerMembership(ctx, s.store, req.Msg.GroupId)
	if err != nil {
		return nil, err
	}
	slog.Info("ConfirmReceipt request received",
		"group_id", group.ID,
		"receipt_id", req.Msg.ReceiptId,
		"items_count", len(req.Msg.Items),
	)

	receipt, err := s.buildReceipt(group, caller, req.Msg)
	if err != nil {
		slog.Warn("ConfirmReceipt rejected", "group_id", group.ID, "error", err)
		return nil, connectError(err)
	}

	result, err := s.ledger.ApplyReceipt(ctx, receipt)
	if err != nil {
		slog.Error("ConfirmReceipt failed", "group_id", group.ID, "receipt_id", receipt.ID, "error", err)
		return nil, connectError(err)
	}
	s.invalidate(ctx, group.ID)

	changes := make([]*pb.DebtChange, len(result.Changes))
	for i, c := range result.Changes {
		changes[i] = &pb.DebtChange{
			Kind:       string(c.Kind),
			DebtId:     c.EdgeID,
			DebtorId:   c.DebtorID,
			CreditorId: c.CreditorID,
			Amount:     calculator.FormatCents(c.Amount),
		}
	}

	slog.Info("Receipt confirmed",
		"group_id", group.ID,
		"receipt_id", result.ReceiptID,
		"changes", len(changes),
	)

	return connect.NewResponse(&pb.ConfirmReceiptResponse{
		ReceiptId: result.ReceiptID,
		Changes:   changes,
	}), nil
}

// buildReceipt validates the request and allocates every item.
func (s *LedgerService) buildReceipt(group *models.Group, caller *models.Member, msg *pb.ConfirmReceiptRequest) (*models.Receipt, error) {
	if len(msg.Items) == 0 {
		return nil, invalidArgument("receipt has no items")
	}

	purchaseDate := strings.TrimSpace(msg.PurchaseDate)
	if purchaseDate == "" {
		purchaseDate = s.now().Format(storage.DateLayout)
	} else if _, err := time.Parse(storage.DateLayout, purchaseDate); err != nil {
		return nil, invalidArgument("purchase_date must be formatted YYYY-MM-DD: %q", purchaseDate)
	}

	receipt := &models.Receipt{
		ID:           msg.ReceiptId,
		GroupID:      group.ID,
		Name:         strings.TrimSpace(msg.Name),
		PurchaseDate: purchaseDate,
		UploadedBy:   caller.ID,
		Items:        make([]models.ReceiptItem, len(msg.Items)),
	}
	if receipt.Name == "" {
		receipt.Name = "Receipt " + purchaseDate
	}

	header := []struct {
		field string
		raw   string
		dst   *decimal.Decimal
	}{
		{"total_amount", msg.TotalAmount, &receipt.TotalAmount},
		{"subtotal", msg.Subtotal, &receipt.Subtotal},
		{"tax_amount", msg.TaxAmount, &receipt.TaxAmount},
		{"tax_rate", msg.TaxRate, &receipt.TaxRate},
		{"discount_amount", msg.DiscountAmount, &receipt.DiscountAmount},
		{"discount_rate", msg.DiscountRate, &receipt.DiscountRate},
	}
	for _, h := range header {
		v, err := optionalAmount(h.raw)
		if err != nil {
			return nil, invalidArgument("%s: %v", h.field, err)
		}
		*h.dst = v
	}

	roster := group.MemberIDs()
	for i, in := range msg.Items {
		item, err := allocateItem(in, roster)
		if err != nil {
			return nil, fmt.Errorf("item %d (%s): %w", i, in.Name, err)
		}
		receipt.Items[i] = item
	}
	return receipt, nil
}

// allocateItem validates one line and derives its splits.
// actual_price defaults to price; at least one of them is required.
func allocateItem(in *pb.ReceiptItem, roster []string) (models.ReceiptItem, error) {
	if strings.TrimSpace(in.Name) == "" {
		return models.ReceiptItem{}, invalidArgument("item name required")
	}
	price, err := optionalAmount(in.Price)
	if err != nil {
		return models.ReceiptItem{}, invalidArgument("price: %v", err)
	}
	price = calculator.RoundCents(price)

	actual := price
	switch {
	case strings.TrimSpace(in.ActualPrice) != "":
		if actual, err = calculator.ParseAmount(in.ActualPrice); err != nil {
			return models.ReceiptItem{}, invalidArgument("actual_price: %v", err)
		}
		actual = calculator.RoundCents(actual)
	case strings.TrimSpace(in.Price) == "":
		return models.ReceiptItem{}, invalidArgument("price or actual_price required")
	}

	quantity := in.Quantity
	if quantity == 0 {
		quantity = 1
	}

	item := models.ReceiptItem{
		Name:          strings.TrimSpace(in.Name),
		GeneralName:   in.GeneralName,
		Category:      in.Category,
		Quantity:      quantity,
		Price:         price,
		ActualPrice:   actual,
		SplitMethod:   models.SplitMethod(in.SplitMethod),
		SplitMemberID: in.SplitMemberId,
		PaidBy:        in.PaidById,
	}

	if item.PaidBy == "" {
		return item, invalidArgument("paid_by_id required")
	}
	policy := calculator.Policy{Method: item.SplitMethod}
	if item.SplitMethod == models.SplitByUser {
		policy = calculator.ByUser(item.SplitMemberID)
		if item.SplitMemberID != "" {
			if err := calculator.ValidateMembers(roster, item.SplitMemberID); err != nil {
				return item, err
			}
		}
	}
	if err := calculator.ValidateMembers(roster, item.PaidBy); err != nil {
		return item, err
	}

	obligations, err := calculator.Allocate(actual, item.PaidBy, policy, roster)
	if err != nil {
		return item, err
	}
	item.Splits = make([]models.ReceiptItemSplit, len(obligations))
	for i, o := range obligations {
		item.Splits[i] = models.ReceiptItemSplit{MemberID: o.Debtor, PaidBy: o.Creditor, Amount: o.Amount}
	}
	return item, nil
}

func optionalAmount(raw string) (decimal.Decimal, error) {
	if strings.TrimSpace(raw) == "" {
		return decimal.Zero, nil
	}
	return calculator.ParseAmount(raw)
}

// ListDebts returns the group's debts, those involving the caller first and
// then by amount descending.
func (s *LedgerService) ListDebts(ctx context.Context, req *connect.Request[pb.ListDebtsRequest]) (*connect.Response[pb.ListDebtsResponse], error) {
	group, caller, err := callerMembership(ctx, s.store, req.Msg.GroupId)
	if err != nil {
		return nil, err
	}

	edges, err := s.debts(ctx, group.ID)
	if err != nil {
		slog.Error("ListDebts failed", "group_id", group.ID, "error", err)
		return nil, connectError(err)
	}
	ledger.SortForMember(edges, caller.ID)

	names := memberNames(group)
	debts := make([]*pb.Debt, len(edges))
	for i, e := range edges {
		debts[i] = toPBDebt(e, names, caller.ID)
	}

	slog.Debug("ListDebts successful", "group_id", group.ID, "count", len(debts))

	return connect.NewResponse(&pb.ListDebtsResponse{Debts: debts}), nil
}

// PayDebt applies a payment to one debt. Only the debtor or the creditor
// may record it.
func (s *LedgerService) PayDebt(ctx context.Context, req *connect.Request[pb.PayDebtRequest]) (*connect.Response[pb.PayDebtResponse], error) {
	group, caller, err := callerMembership(ctx, s.store, req.Msg.GroupId)
	if err != nil {
		return nil, err
	}
	if req.Msg.DebtId == "" {
		return nil, invalidArgument("debt_id required")
	}
	slog.Info("PayDebt request received",
		"group_id", group.ID,
		"debt_id", req.Msg.DebtId,
		"amount", req.Msg.Amount,
	)

	amount, err := ledger.ParsePayment(req.Msg.Amount)
	if err != nil {
		return nil, connectError(err)
	}

	edge, err := s.store.GetEdge(ctx, group.ID, req.Msg.DebtId)
	if err != nil {
		return nil, connectError(err)
	}
	if !edge.Involves(caller.ID) {
		return nil, connect.NewError(connect.CodePermissionDenied,
			fmt.Errorf("only the debtor or the creditor can pay this debt"))
	}

	result, err := s.ledger.Settle(ctx, ledger.SettleRequest{
		GroupID:    group.ID,
		EdgeID:     edge.ID,
		Amount:     amount,
		RecordedBy: caller.ID,
		Note:       req.Msg.Note,
	})
	if err != nil {
		slog.Warn("PayDebt failed", "group_id", group.ID, "debt_id", edge.ID, "error", err)
		return nil, connectError(err)
	}
	s.invalidate(ctx, group.ID)

	resp := &pb.PayDebtResponse{
		SettlementId: result.Settlement.ID,
		Amount:       calculator.FormatCents(result.Settlement.Amount),
		FullySettled: result.FullySettled,
	}
	if result.Edge != nil {
		resp.Debt = toPBDebt(result.Edge, memberNames(group), caller.ID)
	}
	return connect.NewResponse(resp), nil
}

// GetBalances returns every member's net position in the group.
func (s *LedgerService) GetBalances(ctx context.Context, req *connect.Request[pb.GetBalancesRequest]) (*connect.Response[pb.GetBalancesResponse], error) {
	group, _, err := callerMembership(ctx, s.store, req.Msg.GroupId)
	if err != nil {
		return nil, err
	}

	edges, err := s.debts(ctx, group.ID)
	if err != nil {
		slog.Error("GetBalances failed", "group_id", group.ID, "error", err)
		return nil, connectError(err)
	}

	names := memberNames(group)
	balances := calculator.NetBalances(edges, group.MemberIDs())
	out := make([]*pb.Balance, len(balances))
	for i, b := range balances {
		out[i] = &pb.Balance{
			MemberId: b.MemberID,
			Name:     names[b.MemberID],
			Owed:     calculator.FormatCents(b.Owed),
			Owes:     calculator.FormatCents(b.Owes),
			Net:      calculator.FormatCents(b.Net),
		}
	}
	return connect.NewResponse(&pb.GetBalancesResponse{Balances: out}), nil
}

// GetMonthlyExpenses sums what each member was charged on receipts
// purchased in one calendar month.
func (s *LedgerService) GetMonthlyExpenses(ctx context.Context, req *connect.Request[pb.GetMonthlyExpensesRequest]) (*connect.Response[pb.GetMonthlyExpensesResponse], error) {
	group, _, err := callerMembership(ctx, s.store, req.Msg.GroupId)
	if err != nil {
		return nil, err
	}

	now := s.now()
	year, month := int(req.Msg.Year), int(req.Msg.Month)
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	if month < 1 || month > 12 {
		return nil, invalidArgument("month must be between 1 and 12, got %d", month)
	}
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	totals, err := s.store.MemberExpenses(ctx, group.ID, from, to)
	if err != nil {
		slog.Error("GetMonthlyExpenses failed", "group_id", group.ID, "error", err)
		return nil, connectError(err)
	}

	sum := decimal.Zero
	expenses := make([]*pb.MemberExpense, 0, len(group.Members))
	for _, m := range group.Members {
		total := totals[m.ID]
		sum = sum.Add(total)
		expenses = append(expenses, &pb.MemberExpense{
			MemberId: m.ID,
			Name:     m.Name,
			Total:    calculator.FormatCents(total),
		})
	}

	return connect.NewResponse(&pb.GetMonthlyExpensesResponse{
		Month:    from.Format("2006-01"),
		Expenses: expenses,
		Total:    calculator.FormatCents(sum),
	}), nil
}

// GetReceipt returns a confirmed receipt of the group with its items and
// splits. Receipts of other groups are reported as not found.
func (s *LedgerService) GetReceipt(ctx context.Context, req *connect.Request[pb.GetReceiptRequest]) (*connect.Response[pb.GetReceiptResponse], error) {
	group, _, err := callerMembership(ctx, s.store, req.Msg.GroupId)
	if err != nil {
		return nil, err
	}
	if req.Msg.ReceiptId == "" {
		return nil, invalidArgument("receipt_id required")
	}

	receipt, err := s.store.GetReceipt(ctx, req.Msg.ReceiptId)
	if err != nil {
		return nil, connectError(err)
	}
	if receipt.GroupID != group.ID {
		slog.Warn("GetReceipt outside group", "group_id", group.ID, "receipt_id", receipt.ID)
		return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("receipt %s: %w", req.Msg.ReceiptId, storage.ErrNotFound))
	}

	return connect.NewResponse(&pb.GetReceiptResponse{Receipt: toPBReceipt(receipt)}), nil
}

// ListSettlements returns the group's recorded payments, newest first.
func (s *LedgerService) ListSettlements(ctx context.Context, req *connect.Request[pb.ListSettlementsRequest]) (*connect.Response[pb.ListSettlementsResponse], error) {
	group, _, err := callerMembership(ctx, s.store, req.Msg.GroupId)
	if err != nil {
		return nil, err
	}

	settlements, err := s.store.ListSettlements(ctx, group.ID)
	if err != nil {
		slog.Error("ListSettlements failed", "group_id", group.ID, "error", err)
		return nil, connectError(err)
	}

	names := memberNames(group)
	out := make([]*pb.Settlement, len(settlements))
	for i, st := range settlements {
		out[i] = &pb.Settlement{
			Id:           st.ID,
			DebtId:       st.DebtID,
			FromMemberId: st.FromMemberID,
			FromName:     names[st.FromMemberID],
			ToMemberId:   st.ToMemberID,
			ToName:       names[st.ToMemberID],
			Amount:       calculator.FormatCents(st.Amount),
			FullySettled: st.FullySettled,
			Note:         st.Note,
			CreatedBy:    st.CreatedBy,
			CreatedAt:    st.CreatedAt,
		}
	}
	return connect.NewResponse(&pb.ListSettlementsResponse{Settlements: out}), nil
}

// debts reads through the cache. Cache failures fall back to the store.
func (s *LedgerService) debts(ctx context.Context, groupID string) ([]*models.DebtEdge, error) {
	if s.cache == nil {
		return s.ledger.Debts(ctx, groupID)
	}

	edges, ok, err := s.cache.Get(ctx, groupID)
	if err != nil {
		slog.Warn("Debt cache read failed", "group_id", groupID, "error", err)
	} else if ok {
		return edges, nil
	}

	// The generation must be read before the store.
	gen, genErr := s.cache.Generation(ctx, groupID)
	if genErr != nil {
		slog.Warn("Debt cache read failed", "group_id", groupID, "error", genErr)
	}

	edges, err = s.ledger.Debts(ctx, groupID)
	if err != nil {
		return nil, err
	}

	if genErr == nil {
		stored, err := s.cache.SetIfGeneration(ctx, groupID, gen, edges)
		switch {
		case err != nil:
			slog.Warn("Debt cache write failed", "group_id", groupID, "error", err)
		case !stored:
			slog.Debug("Debt cache fill skipped after invalidation", "group_id", groupID)
		}
	}
	return edges, nil
}

func (s *LedgerService) invalidate(ctx context.Context, groupID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, groupID); err != nil {
		slog.Warn("Debt cache invalidation failed", "group_id", groupID, "error", err)
	}
}

func toPBDebt(e *models.DebtEdge, names map[string]string, callerID string) *pb.Debt {
	return &pb.Debt{
		Id:           e.ID,
		DebtorId:     e.DebtorID,
		DebtorName:   names[e.DebtorID],
		CreditorId:   e.CreditorID,
		CreditorName: names[e.CreditorID],
		Amount:       calculator.FormatCents(e.Amount),
		InvolvesMe:   e.Involves(callerID),
		UpdatedAt:    e.UpdatedAt,
	}
}

func toPBReceipt(r *models.Receipt) *pb.Receipt {
	items := make([]*pb.ReceiptItem, len(r.Items))
	for i, item := range r.Items {
		splits := make([]*pb.ItemSplit, len(item.Splits))
		for j, sp := range item.Splits {
			splits[j] = &pb.ItemSplit{
				MemberId: sp.MemberID,
				PaidById: sp.PaidBy,
				Amount:   calculator.FormatCents(sp.Amount),
			}
		}
		items[i] = &pb.ReceiptItem{
			Id:            item.ID,
			Name:          item.Name,
			GeneralName:   item.GeneralName,
			Category:      item.Category,
			Quantity:      item.Quantity,
			Price:         calculator.FormatCents(item.Price),
			ActualPrice:   calculator.FormatCents(item.ActualPrice),
			SplitMethod:   string(item.SplitMethod),
			SplitMemberId: item.SplitMemberID,
			PaidById:      item.PaidBy,
			Splits:        splits,
		}
	}
	return &pb.Receipt{
		Id:             r.ID,
		GroupId:        r.GroupID,
		Name:           r.Name,
		TotalAmount:    calculator.FormatCents(r.TotalAmount),
		Subtotal:       calculator.FormatCents(r.Subtotal),
		TaxAmount:      calculator.FormatCents(r.TaxAmount),
		TaxRate:        r.TaxRate.String(),
		DiscountAmount: calculator.FormatCents(r.DiscountAmount),
		DiscountRate:   r.DiscountRate.String(),
		PurchaseDate:   r.PurchaseDate,
		UploadedBy:     r.UploadedBy,
		CreatedAt:      r.CreatedAt,
		Items:          items,
	}
}
