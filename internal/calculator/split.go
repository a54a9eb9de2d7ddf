package calculator

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mmynk/groceryroom/internal/models"
)

var (
	// ErrInvalidPolicy is returned for a malformed or inapplicable split policy.
	ErrInvalidPolicy = errors.New("invalid split policy")
	// ErrMemberNotInGroup is returned when a referenced member is not on the roster.
	ErrMemberNotInGroup = errors.New("member not in group")
)

// Obligation means Debtor owes Creditor Amount as a result of one split.
type Obligation struct {
	Debtor   string
	Creditor string
	Amount   decimal.Decimal
}

// Policy declares how an item's price is divided.
type Policy struct {
	Method models.SplitMethod
	// Target is the member charged for BY_USER.
	Target string
}

// Evenly returns the policy that splits among the whole roster.
func Evenly() Policy {
	return Policy{Method: models.SplitEvenly}
}

// ByUser returns the policy that charges target for the whole item.
func ByUser(target string) Policy {
	return Policy{Method: models.SplitByUser, Target: target}
}

// Allocate turns one line item into obligations owed to payer.
//
// EVENLY charges every member, payer included, price/len(members) rounded
// half-up to cents. The rounding residual is not redistributed, so 10.00
// over three members allocates 3 x 3.33. BY_USER charges the full price to
// policy.Target as a single obligation.
//
// Membership of payer and target is the caller's job; Allocate assumes it.
func Allocate(price decimal.Decimal, payer string, policy Policy, members []string) ([]Obligation, error) {
	if !price.IsPositive() {
		return nil, fmt.Errorf("%w: price must be greater than 0, got %s", ErrInvalidPolicy, price)
	}

	switch policy.Method {
	case models.SplitEvenly:
		if len(members) == 0 {
			return nil, fmt.Errorf("%w: no members to split evenly", ErrInvalidPolicy)
		}
		share := RoundCents(price.Div(decimal.NewFromInt(int64(len(members)))))
		obligations := make([]Obligation, len(members))
		for i, m := range members {
			obligations[i] = Obligation{Debtor: m, Creditor: payer, Amount: share}
		}
		return obligations, nil

	case models.SplitByUser:
		if policy.Target == "" {
			return nil, fmt.Errorf("%w: BY_USER requires a target member", ErrInvalidPolicy)
		}
		return []Obligation{{Debtor: policy.Target, Creditor: payer, Amount: price}}, nil

	default:
		return nil, fmt.Errorf("%w: unknown split method %q", ErrInvalidPolicy, policy.Method)
	}
}

// ValidateMembers checks that every id is on the roster.
func ValidateMembers(roster []string, ids ...string) error {
	known := make(map[string]bool, len(roster))
	for _, m := range roster {
		known[m] = true
	}
	for _, id := range ids {
		if !known[id] {
			return fmt.Errorf("%w: %s", ErrMemberNotInGroup, id)
		}
	}
	return nil
}
