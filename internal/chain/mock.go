package chain

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// mockSubmitter stands in for the chain while the Cadence contract is not
// deployed. It answers after a short delay with a synthetic transaction id,
// matching the shape of a real submission.
type mockSubmitter struct {
	delay time.Duration
}

func NewMockSubmitter(delay time.Duration) Submitter {
	return &mockSubmitter{delay: delay}
}

func (m *mockSubmitter) SubmitVote(ctx context.Context, tx VoteTransaction) (*TxResult, error) {
	select {
	case <-time.After(m.delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	return &TxResult{TxID: "MOCK_TX_" + id[:16]}, nil
}

func (m *mockSubmitter) Status(ctx context.Context, txID string) (TxStatus, error) {
	return TxStatusSealed, nil
}
