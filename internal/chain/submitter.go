package chain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"flow-social/pkg/config"
	"flow-social/pkg/logger"
)

// TxResult is the advisory receipt attached to vote responses.
type TxResult struct {
	TxID string `json:"txId"`
}

type VoteTransaction struct {
	PostID     string  `json:"postId"`
	Voter      string  `json:"voter"`
	Direction  string  `json:"direction"`
	AmountFlow float64 `json:"amountFLOW"`
}

// Submitter records a vote on chain. Callers treat it as a best-effort side
// channel: a failed or slow submission never gates the row-store mutation.
type Submitter interface {
	SubmitVote(ctx context.Context, tx VoteTransaction) (*TxResult, error)
	Status(ctx context.Context, txID string) (TxStatus, error)
}

func NewSubmitter(cfg *config.Config, log *logger.Logger) Submitter {
	if cfg.FlowMockOnchain {
		return NewMockSubmitter(450 * time.Millisecond)
	}
	return NewGatewaySubmitter(cfg.FlowGatewayURL, log)
}

type gatewaySubmitter struct {
	baseURL    string
	httpClient *http.Client
	logger     *logger.Logger
}

func NewGatewaySubmitter(baseURL string, log *logger.Logger) Submitter {
	return &gatewaySubmitter{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: log,
	}
}

func (g *gatewaySubmitter) SubmitVote(ctx context.Context, tx VoteTransaction) (*TxResult, error) {
	body, err := json.Marshal(tx)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal vote transaction: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/transactions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build gateway request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}

	var result TxResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode gateway response: %w", err)
	}
	if result.TxID == "" {
		return nil, fmt.Errorf("gateway returned empty transaction id")
	}

	g.logger.Info("Submitted vote transaction to gateway: tx_id=%s post_id=%s", result.TxID, tx.PostID)
	return &result, nil
}

func (g *gatewaySubmitter) Status(ctx context.Context, txID string) (TxStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/v1/transactions/"+txID, nil)
	if err != nil {
		return TxStatusUnknown, fmt.Errorf("failed to build gateway request: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return TxStatusUnknown, fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return TxStatusUnknown, fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}

	var payload struct {
		Status int `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return TxStatusUnknown, fmt.Errorf("failed to decode gateway response: %w", err)
	}

	return TxStatus(payload.Status), nil
}
