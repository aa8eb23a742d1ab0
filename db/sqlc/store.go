package sqlc

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound = sql.ErrNoRows

	// ErrVersionConflict is returned by transition Tx methods when the
	// version/status precondition no longer holds. The caller decides
	// whether that means an illegal transition or a lost race.
	ErrVersionConflict = errors.New("row version conflict")

	// ErrInsufficientFunds is returned when a reservation or debit would
	// push a holder's available balance below zero.
	ErrInsufficientFunds = errors.New("insufficient available balance")

	// ErrRequestExpired is returned when a rate-sync approval runs past
	// the request expiry.
	ErrRequestExpired = errors.New("rate sync request expired")
)

// Store provides all functions to execute db queries and transactions
type Store interface {
	Querier
	ApproveTransferTx(ctx context.Context, arg ApproveTransferTxParams) (Transfer, error)
	CancelTransferTx(ctx context.Context, arg CancelTransferTxParams) (Transfer, error)
	CompleteTransferTx(ctx context.Context, arg CompleteTransferTxParams) (CompleteTransferTxResult, error)
	InitiateRateSyncTx(ctx context.Context, arg InitiateRateSyncTxParams) (InitiateRateSyncTxResult, error)
	ApproveRateSyncTx(ctx context.Context, arg ApproveRateSyncTxParams) (ApproveRateSyncTxResult, error)
}

// SQLStore provides all functions to execute SQL queries and transactions
type SQLStore struct {
	*Queries
	db *sql.DB
}

func NewStore(db *sql.DB) Store {
	return &SQLStore{
		db:      db,
		Queries: New(db),
	}
}

// execTx executes a function within a database transaction
func (store *SQLStore) execTx(ctx context.Context, fn func(*Queries) error) error {
	tx, err := store.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	q := New(tx)
	err = fn(q)

	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx err: %v, rb err: %v", err, rbErr)
		}
		return err
	}

	return tx.Commit()
}
