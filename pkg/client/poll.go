package client

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/soroscan/soroscan-go/pkg/soroapi"
	"github.com/soroscan/soroscan-go/pkg/soroapi/result"
)

// Default polling intervals for PollTransaction.
const (
	DefaultPollInitialInterval = 500 * time.Millisecond
	DefaultPollMaxInterval     = 3500 * time.Millisecond
)

// PollOptions configures the polling behavior of PollTransactionWithOptions.
type PollOptions struct {
	// InitialInterval is the delay before the second attempt, later delays
	// grow exponentially from it.
	InitialInterval time.Duration
	// MaxInterval caps the delay between attempts.
	MaxInterval time.Duration
}

// NewPollOptions returns PollOptions with default intervals.
func NewPollOptions() PollOptions {
	return PollOptions{
		InitialInterval: DefaultPollInitialInterval,
		MaxInterval:     DefaultPollMaxInterval,
	}
}

// PollTransaction polls GetTransaction until the transaction reaches a
// terminal status (success or failed) or the context is done, using default
// polling intervals.
//
// The last response is returned even when the status is failed, check
// result.Status to tell the outcomes apart.
func (c *Client) PollTransaction(ctx context.Context, txHash string) (result.Transaction, error) {
	return c.PollTransactionWithOptions(ctx, txHash, NewPollOptions())
}

// PollTransactionWithOptions is PollTransaction with explicit intervals.
func (c *Client) PollTransactionWithOptions(ctx context.Context, txHash string, opts PollOptions) (result.Transaction, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = opts.InitialInterval
	b.MaxInterval = opts.MaxInterval
	b.MaxElapsedTime = 0 // The context bounds the overall wait.

	var tx result.Transaction
	err := backoff.Retry(func() error {
		var err error
		tx, err = c.GetTransaction(ctx, txHash)
		if soroapi.IsNotFound(err) {
			// Not indexed yet, keep polling.
			return err
		}
		if err != nil {
			return backoff.Permanent(err)
		}
		switch tx.Status {
		case result.TransactionStatusSuccess, result.TransactionStatusFailed:
			return nil
		default:
			return fmt.Errorf("transaction not yet finalized: %s", tx.Status)
		}
	}, backoff.WithContext(b, ctx))

	if err != nil {
		return result.Transaction{}, err
	}
	return tx, nil
}
