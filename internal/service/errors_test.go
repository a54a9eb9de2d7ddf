package service

import (
	"errors"
	"fmt"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/groceryroom/internal/calculator"
	"github.com/mmynk/groceryroom/internal/ledger"
	"github.com/mmynk/groceryroom/internal/storage"
)

func TestConnectError(t *testing.T) {
	tests := []struct {
		err  error
		want connect.Code
	}{
		{fmt.Errorf("item 0: %w", calculator.ErrInvalidPolicy), connect.CodeInvalidArgument},
		{ledger.ErrInvalidPaymentAmount, connect.CodeInvalidArgument},
		{fmt.Errorf("wrapped: %w", calculator.ErrMemberNotInGroup), connect.CodeFailedPrecondition},
		{ledger.ErrMemberNotInGroup, connect.CodeFailedPrecondition},
		{fmt.Errorf("commit: %w", ledger.ErrConcurrentModification), connect.CodeAborted},
		{ledger.ErrEdgeNotFound, connect.CodeNotFound},
		{storage.ErrNotFound, connect.CodeNotFound},
		{ledger.ErrDuplicateReceipt, connect.CodeAlreadyExists},
		{storage.ErrAlreadyMember, connect.CodeAlreadyExists},
		{errors.New("disk on fire"), connect.CodeInternal},
		{connect.NewError(connect.CodePermissionDenied, errNotMember), connect.CodePermissionDenied},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			if got := connectError(tt.err).Code(); got != tt.want {
				t.Errorf("connectError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
