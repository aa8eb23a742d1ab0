package sqlc

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// ApproveRateSyncTxParams contains the input parameters of the rate-sync approval transaction
type ApproveRateSyncTxParams struct {
	Approval ApproveRateSyncRequestParams
}

// ApproveRateSyncTxResult contains the result of the rate-sync approval transaction
type ApproveRateSyncTxResult struct {
	Request RateSyncRequest `json:"request"`
	Rates   []ExchangeRate  `json:"rates"`

	expired bool
}

// ApproveRateSyncTx approves a pending rate-sync request and atomically
// replaces the active exchange rate of every target currency, each new rate
// keeping its predecessor for audit history. The expiry check is part of the
// guarded UPDATE, so the approval and the expiry sweep can never both win on
// the same request. A spread, if given, is applied uniformly on top of the
// fetched rates.
func (store *SQLStore) ApproveRateSyncTx(ctx context.Context, arg ApproveRateSyncTxParams) (ApproveRateSyncTxResult, error) {
	var result ApproveRateSyncTxResult

	err := store.execTx(ctx, func(q *Queries) error {
		var err error

		result.Request, err = q.ApproveRateSyncRequest(ctx, arg.Approval)
		if err != nil {
			if !errors.Is(err, sql.ErrNoRows) {
				return err
			}
			current, getErr := q.GetRateSyncRequest(ctx, arg.Approval.ID)
			if getErr != nil {
				return getErr
			}
			if current.Status == RateSyncStatusPending && !current.ExpiresAt.After(time.Now()) {
				// Flip it to expired right here and commit; the
				// caller still gets the expiry error.
				result.Request, err = q.ExpireRateSyncRequest(ctx, arg.Approval.ID)
				if err != nil && !errors.Is(err, sql.ErrNoRows) {
					return err
				}
				result.expired = true
				return nil
			}
			return ErrVersionConflict
		}

		items, err := q.ListRateSyncItems(ctx, result.Request.ID)
		if err != nil {
			return err
		}

		spreadFactor := decimal.NewFromInt(1)
		if arg.Approval.SpreadPercentage.Valid {
			spreadFactor = spreadFactor.Add(arg.Approval.SpreadPercentage.Decimal.Div(decimal.NewFromInt(100)))
		}

		for _, item := range items {
			var previousRateID pgtype.UUID

			previous, err := q.GetActiveExchangeRate(ctx, GetActiveExchangeRateParams{
				BaseCode:   result.Request.BaseCode,
				TargetCode: item.TargetCode,
			})
			if err == nil {
				if err := q.DeactivateExchangeRate(ctx, previous.ID); err != nil {
					return err
				}
				previousRateID = pgtype.UUID{Bytes: previous.ID, Valid: true}
			} else if !errors.Is(err, sql.ErrNoRows) {
				return err
			}

			rate, err := q.CreateExchangeRate(ctx, CreateExchangeRateParams{
				BaseCode:       result.Request.BaseCode,
				TargetCode:     item.TargetCode,
				Rate:           item.FetchedRate.Mul(spreadFactor),
				Source:         item.Source,
				PreviousRateID: previousRateID,
				CreatedBy:      arg.Approval.Actor,
			})
			if err != nil {
				return err
			}
			result.Rates = append(result.Rates, rate)
		}

		return nil
	})

	if err != nil {
		return result, err
	}
	if result.expired {
		return result, ErrRequestExpired
	}
	return result, nil
}
