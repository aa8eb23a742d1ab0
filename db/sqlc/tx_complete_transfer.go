package sqlc

import (
	"context"
	"database/sql"
	"errors"

	"github.com/shopspring/decimal"
)

// CompleteTransferTxParams contains the input parameters of the completion transaction
type CompleteTransferTxParams struct {
	Transition TransitionTransferParams
	// ReleaseReservation is set when the amount was earmarked at approval
	// time (vault-involving transfers).
	ReleaseReservation bool
}

// CompleteTransferTxResult contains the result of the completion transaction
type CompleteTransferTxResult struct {
	Transfer    Transfer    `json:"transfer"`
	FromBalance Balance     `json:"fromBalance"`
	ToBalance   Balance     `json:"toBalance"`
	FromEntry   LedgerEntry `json:"fromEntry"`
	ToEntry     LedgerEntry `json:"toEntry"`
}

// CompleteTransferTx performs the single debit/credit pair against the
// ledger inside the same transaction as the status flip, so a partial
// failure can never leave status and balances diverged. The status/version
// precondition on the UPDATE makes the ledger mutation happen at most once
// per transfer.
func (store *SQLStore) CompleteTransferTx(ctx context.Context, arg CompleteTransferTxParams) (CompleteTransferTxResult, error) {
	var result CompleteTransferTxResult

	err := store.execTx(ctx, func(q *Queries) error {
		var err error

		result.Transfer, err = q.CompleteTransfer(ctx, arg.Transition)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrVersionConflict
			}
			return err
		}

		transfer := result.Transfer

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
		if arg.ReleaseReservation {
			// The reserved slice of the balance is what gets debited.
			if balance.Balance.LessThan(transfer.Amount) {
				return ErrInsufficientFunds
			}
		} else if balance.Available().LessThan(transfer.Amount) {
			return ErrInsufficientFunds
		}

		result.FromEntry, err = q.CreateLedgerEntry(ctx, CreateLedgerEntryParams{
			TransferID: transfer.ID,
			HolderID:   transfer.SourceID,
			CurrencyID: transfer.CurrencyID,
			Direction:  LedgerDirectionDebit,
			Amount:     transfer.Amount.Neg(),
		})
		if err != nil {
			return err
		}

		reservedDelta := decimal.Zero
		if arg.ReleaseReservation {
			reservedDelta = transfer.Amount.Neg()
		}
		result.FromBalance, err = q.AdjustBalance(ctx, AdjustBalanceParams{
			HolderID:      transfer.SourceID,
			CurrencyID:    transfer.CurrencyID,
			BalanceDelta:  transfer.Amount.Neg(),
			ReservedDelta: reservedDelta,
		})
		if err != nil {
			return err
		}

		result.ToEntry, err = q.CreateLedgerEntry(ctx, CreateLedgerEntryParams{
			TransferID: transfer.ID,
			HolderID:   transfer.DestinationID,
			CurrencyID: transfer.CurrencyID,
			Direction:  LedgerDirectionCredit,
			Amount:     transfer.Amount,
		})
		if err != nil {
			return err
		}

		result.ToBalance, err = q.AdjustBalance(ctx, AdjustBalanceParams{
			HolderID:     transfer.DestinationID,
			CurrencyID:   transfer.CurrencyID,
			BalanceDelta: transfer.Amount,
		})
		return err
	})

	return result, err
}
