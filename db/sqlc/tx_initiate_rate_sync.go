package sqlc

import (
	"context"
)

// InitiateRateSyncTxParams contains the input parameters of the rate-sync
// initiation transaction. Item params carry no RequestID; the transaction
// fills it in once the request row exists.
type InitiateRateSyncTxParams struct {
	Request CreateRateSyncRequestParams
	Items   []CreateRateSyncItemParams
}

// InitiateRateSyncTxResult contains the result of the rate-sync initiation transaction
type InitiateRateSyncTxResult struct {
	Request RateSyncRequest `json:"request"`
	Items   []RateSyncItem  `json:"items"`
}

// InitiateRateSyncTx persists a pending rate-sync request together with all
// of its per-pair items in one transaction, so a failure mid-way never
// leaves an approvable request with a partial rate set behind.
func (store *SQLStore) InitiateRateSyncTx(ctx context.Context, arg InitiateRateSyncTxParams) (InitiateRateSyncTxResult, error) {
	var result InitiateRateSyncTxResult

	err := store.execTx(ctx, func(q *Queries) error {
		var err error

		result.Request, err = q.CreateRateSyncRequest(ctx, arg.Request)
		if err != nil {
			return err
		}

		for _, item := range arg.Items {
			item.RequestID = result.Request.ID
			created, err := q.CreateRateSyncItem(ctx, item)
			if err != nil {
				return err
			}
			result.Items = append(result.Items, created)
		}

		return nil
	})

	return result, err
}
