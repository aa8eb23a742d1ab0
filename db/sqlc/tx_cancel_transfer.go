package sqlc

import (
	"context"
	"database/sql"
	"errors"
)

// CancelTransferTxParams contains the input parameters of the cancel transaction
type CancelTransferTxParams struct {
	Transition TransitionTransferParams
	// ReleaseReservation is set when the transfer was approved with funds
	// earmarked against the source; the reservation must go away with the
	// status flip.
	ReleaseReservation bool
}

// CancelTransferTx cancels a pending or approved transfer, releasing any
// reservation atomically with the status change.
func (store *SQLStore) CancelTransferTx(ctx context.Context, arg CancelTransferTxParams) (Transfer, error) {
	var transfer Transfer

	err := store.execTx(ctx, func(q *Queries) error {
		var err error

		transfer, err = q.CancelTransfer(ctx, arg.Transition)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrVersionConflict
			}
			return err
		}

		if !arg.ReleaseReservation {
			return nil
		}

		_, err = q.AdjustBalance(ctx, AdjustBalanceParams{
			HolderID:      transfer.SourceID,
			CurrencyID:    transfer.CurrencyID,
			ReservedDelta: transfer.Amount.Neg(),
		})
		return err
	})

	return transfer, err
}
