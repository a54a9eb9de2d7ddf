package service

import (
	"errors"
	"fmt"

	"connectrpc.com/connect"

	"github.com/mmynk/groceryroom/internal/calculator"
	"github.com/mmynk/groceryroom/internal/ledger"
	"github.com/mmynk/groceryroom/internal/storage"
)

var (
	errUnauthenticated = errors.New("authentication required")
	errNotMember       = errors.New("you must be a member of this group")
)

// connectError maps domain errors to Connect codes. Anything unrecognised
// is an internal error.
func connectError(err error) *connect.Error {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr
	}

	code := connect.CodeInternal
	switch {
	case errors.Is(err, calculator.ErrInvalidPolicy),
		errors.Is(err, ledger.ErrInvalidPaymentAmount),
		errors.Is(err, ledger.ErrInvalidObligation):
		code = connect.CodeInvalidArgument
	case errors.Is(err, calculator.ErrMemberNotInGroup):
		code = connect.CodeFailedPrecondition
	case errors.Is(err, ledger.ErrConcurrentModification):
		code = connect.CodeAborted
	case errors.Is(err, ledger.ErrEdgeNotFound),
		errors.Is(err, storage.ErrNotFound):
		code = connect.CodeNotFound
	case errors.Is(err, ledger.ErrDuplicateReceipt),
		errors.Is(err, storage.ErrAlreadyMember):
		code = connect.CodeAlreadyExists
	}
	return connect.NewError(code, err)
}

func invalidArgument(format string, args ...any) *connect.Error {
	return connect.NewError(connect.CodeInvalidArgument, fmt.Errorf(format, args...))
}
