package ledger

import (
	"errors"

	"github.com/mmynk/groceryroom/internal/calculator"
)

var (
	// ErrInvalidPolicy and ErrMemberNotInGroup are shared with the allocator
	// so callers can test either package's errors with errors.Is.
	ErrInvalidPolicy    = calculator.ErrInvalidPolicy
	ErrMemberNotInGroup = calculator.ErrMemberNotInGroup

	// ErrInvalidPaymentAmount is returned for a payment that is not a number,
	// is not positive, or exceeds the outstanding debt after rounding.
	ErrInvalidPaymentAmount = errors.New("invalid payment amount")
	// ErrConcurrentModification is returned when a lock could not be taken or
	// the store detected a conflicting write. Callers should retry.
	ErrConcurrentModification = errors.New("concurrent modification")
	// ErrEdgeNotFound is returned when a debt edge does not exist in the group.
	ErrEdgeNotFound = errors.New("debt not found")
	// ErrDuplicateReceipt is returned when a receipt was already folded.
	ErrDuplicateReceipt = errors.New("receipt already applied")
	// ErrInvalidObligation is returned for an obligation with a negative amount
	// or a missing party.
	ErrInvalidObligation = errors.New("invalid obligation")
)
