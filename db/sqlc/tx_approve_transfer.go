package sqlc

import (
	"context"
	"database/sql"
	"errors"
)

// ApproveTransferTxParams contains the input parameters of the approval transaction
type ApproveTransferTxParams struct {
	Transition TransitionTransferParams
	// Reserve earmarks the transfer amount against the source holder.
	// Set for vault-involving transfers; branch-to-branch approval is
	// bookkeeping only.
	Reserve bool
}

// ApproveTransferTx flips a pending transfer to approved and, for
// vault-involving transfers, reserves the amount against the source holder
// in the same transaction. A version mismatch returns ErrVersionConflict;
// a short available balance returns ErrInsufficientFunds and leaves the
// transfer pending.
func (store *SQLStore) ApproveTransferTx(ctx context.Context, arg ApproveTransferTxParams) (Transfer, error) {
	var transfer Transfer

	err := store.execTx(ctx, func(q *Queries) error {
		var err error

		transfer, err = q.ApproveTransfer(ctx, arg.Transition)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrVersionConflict
			}
			return err
		}

		if !arg.Reserve {
			return nil
		}

		balance, err := q.GetBalanceForUpdate(ctx, GetBalanceParams{
			HolderID:   transfer.SourceID,
			CurrencyID: transfer.CurrencyID,
		})
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrInsufficientFunds
			}
			return err
		}
		if balance.Available().LessThan(transfer.Amount) {
			return ErrInsufficientFunds
		}

		_, err = q.AdjustBalance(ctx, AdjustBalanceParams{
			HolderID:      transfer.SourceID,
			CurrencyID:    transfer.CurrencyID,
			ReservedDelta: transfer.Amount,
		})
		return err
	})

	return transfer, err
}
