package sqlc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

const exchangeRateColumns = `id, base_code, target_code, rate, source, is_active, previous_rate_id, created_by, created_at`

func scanExchangeRate(row interface{ Scan(...interface{}) error }) (ExchangeRate, error) {
	var i ExchangeRate
	err := row.Scan(
		&i.ID,
		&i.BaseCode,
		&i.TargetCode,
		&i.Rate,
		&i.Source,
		&i.IsActive,
		&i.PreviousRateID,
		&i.CreatedBy,
		&i.CreatedAt,
	)
	return i, err
}

const createExchangeRate = `
INSERT INTO exchange_rates (base_code, target_code, rate, source, is_active, previous_rate_id, created_by)
VALUES ($1, $2, $3, $4, true, $5, $6)
RETURNING ` + exchangeRateColumns

type CreateExchangeRateParams struct {
	BaseCode       string          `json:"baseCode"`
	TargetCode     string          `json:"targetCode"`
	Rate           decimal.Decimal `json:"rate"`
	Source         string          `json:"source"`
	PreviousRateID pgtype.UUID     `json:"previousRateId"`
	CreatedBy      string          `json:"createdBy"`
}

func (q *Queries) CreateExchangeRate(ctx context.Context, arg CreateExchangeRateParams) (ExchangeRate, error) {
	row := q.db.QueryRowContext(ctx, createExchangeRate,
		arg.BaseCode,
		arg.TargetCode,
		arg.Rate,
		arg.Source,
		arg.PreviousRateID,
		arg.CreatedBy,
	)
	return scanExchangeRate(row)
}

const getActiveExchangeRate = `
SELECT ` + exchangeRateColumns + `
FROM exchange_rates
WHERE base_code = $1 AND target_code = $2 AND is_active = true
FOR UPDATE
`

type GetActiveExchangeRateParams struct {
	BaseCode   string `json:"baseCode"`
	TargetCode string `json:"targetCode"`
}

func (q *Queries) GetActiveExchangeRate(ctx context.Context, arg GetActiveExchangeRateParams) (ExchangeRate, error) {
	return scanExchangeRate(q.db.QueryRowContext(ctx, getActiveExchangeRate, arg.BaseCode, arg.TargetCode))
}

const deactivateExchangeRate = `
UPDATE exchange_rates
SET is_active = false
WHERE id = $1
`

func (q *Queries) DeactivateExchangeRate(ctx context.Context, id uuid.UUID) error {
	_, err := q.db.ExecContext(ctx, deactivateExchangeRate, id)
	return err
}

const listActiveExchangeRates = `
SELECT ` + exchangeRateColumns + `
FROM exchange_rates
WHERE base_code = $1 AND is_active = true
ORDER BY target_code
`

func (q *Queries) ListActiveExchangeRates(ctx context.Context, baseCode string) ([]ExchangeRate, error) {
	rows, err := q.db.QueryContext(ctx, listActiveExchangeRates, baseCode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ExchangeRate{}
	for rows.Next() {
		i, err := scanExchangeRate(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const rateSyncRequestColumns = `id, base_code, source, status, spread_percentage, notes, initiated_by,
approved_by, approved_at, rejected_by, rejected_at, expires_at, version, created_at`

func scanRateSyncRequest(row interface{ Scan(...interface{}) error }) (RateSyncRequest, error) {
	var i RateSyncRequest
	err := row.Scan(
		&i.ID,
		&i.BaseCode,
		&i.Source,
		&i.Status,
		&i.SpreadPercentage,
		&i.Notes,
		&i.InitiatedBy,
		&i.ApprovedBy,
		&i.ApprovedAt,
		&i.RejectedBy,
		&i.RejectedAt,
		&i.ExpiresAt,
		&i.Version,
		&i.CreatedAt,
	)
	return i, err
}

const createRateSyncRequest = `
INSERT INTO rate_sync_requests (base_code, source, initiated_by, expires_at)
VALUES ($1, $2, $3, $4)
RETURNING ` + rateSyncRequestColumns

type CreateRateSyncRequestParams struct {
	BaseCode    string    `json:"baseCode"`
	Source      string    `json:"source"`
	InitiatedBy string    `json:"initiatedBy"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

func (q *Queries) CreateRateSyncRequest(ctx context.Context, arg CreateRateSyncRequestParams) (RateSyncRequest, error) {
	row := q.db.QueryRowContext(ctx, createRateSyncRequest,
		arg.BaseCode,
		arg.Source,
		arg.InitiatedBy,
		arg.ExpiresAt,
	)
	return scanRateSyncRequest(row)
}

const getRateSyncRequest = `
SELECT ` + rateSyncRequestColumns + `
FROM rate_sync_requests
WHERE id = $1
`

func (q *Queries) GetRateSyncRequest(ctx context.Context, id uuid.UUID) (RateSyncRequest, error) {
	return scanRateSyncRequest(q.db.QueryRowContext(ctx, getRateSyncRequest, id))
}

const approveRateSyncRequest = `
UPDATE rate_sync_requests
SET status = 'approved',
    approved_by = $3,
    approved_at = now(),
    notes = COALESCE($4, notes),
    spread_percentage = $5,
    version = version + 1
WHERE id = $1 AND version = $2 AND status = 'pending' AND expires_at > now()
RETURNING ` + rateSyncRequestColumns

type ApproveRateSyncRequestParams struct {
	ID               uuid.UUID           `json:"id"`
	Version          int32               `json:"version"`
	Actor            string              `json:"actor"`
	Notes            pgtype.Text         `json:"notes"`
	SpreadPercentage decimal.NullDecimal `json:"spreadPercentage"`
}

func (q *Queries) ApproveRateSyncRequest(ctx context.Context, arg ApproveRateSyncRequestParams) (RateSyncRequest, error) {
	row := q.db.QueryRowContext(ctx, approveRateSyncRequest,
		arg.ID,
		arg.Version,
		arg.Actor,
		arg.Notes,
		arg.SpreadPercentage,
	)
	return scanRateSyncRequest(row)
}

const rejectRateSyncRequest = `
UPDATE rate_sync_requests
SET status = 'rejected',
    rejected_by = $3,
    rejected_at = now(),
    notes = COALESCE($4, notes),
    version = version + 1
WHERE id = $1 AND version = $2 AND status = 'pending'
RETURNING ` + rateSyncRequestColumns

type RejectRateSyncRequestParams struct {
	ID      uuid.UUID   `json:"id"`
	Version int32       `json:"version"`
	Actor   string      `json:"actor"`
	Notes   pgtype.Text `json:"notes"`
}

func (q *Queries) RejectRateSyncRequest(ctx context.Context, arg RejectRateSyncRequestParams) (RateSyncRequest, error) {
	row := q.db.QueryRowContext(ctx, rejectRateSyncRequest, arg.ID, arg.Version, arg.Actor, arg.Notes)
	return scanRateSyncRequest(row)
}

const expireRateSyncRequest = `
UPDATE rate_sync_requests
SET status = 'expired',
    version = version + 1
WHERE id = $1 AND status = 'pending' AND expires_at <= now()
RETURNING ` + rateSyncRequestColumns

func (q *Queries) ExpireRateSyncRequest(ctx context.Context, id uuid.UUID) (RateSyncRequest, error) {
	return scanRateSyncRequest(q.db.QueryRowContext(ctx, expireRateSyncRequest, id))
}

const expireRateSyncRequests = `
UPDATE rate_sync_requests
SET status = 'expired',
    version = version + 1
WHERE status = 'pending' AND expires_at <= now()
`

// ExpireRateSyncRequests is the set-based expiry sweep. It only ever touches
// pending rows, so rerunning it is a no-op.
func (q *Queries) ExpireRateSyncRequests(ctx context.Context) (int64, error) {
	result, err := q.db.ExecContext(ctx, expireRateSyncRequests)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const createRateSyncItem = `
INSERT INTO rate_sync_items (request_id, target_code, current_rate, fetched_rate, change, change_percentage, source)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, request_id, target_code, current_rate, fetched_rate, change, change_percentage, source
`

type CreateRateSyncItemParams struct {
	RequestID        uuid.UUID           `json:"requestId"`
	TargetCode       string              `json:"targetCode"`
	CurrentRate      decimal.NullDecimal `json:"currentRate"`
	FetchedRate      decimal.Decimal     `json:"fetchedRate"`
	Change           decimal.Decimal     `json:"change"`
	ChangePercentage decimal.Decimal     `json:"changePercentage"`
	Source           string              `json:"source"`
}

func (q *Queries) CreateRateSyncItem(ctx context.Context, arg CreateRateSyncItemParams) (RateSyncItem, error) {
	row := q.db.QueryRowContext(ctx, createRateSyncItem,
		arg.RequestID,
		arg.TargetCode,
		arg.CurrentRate,
		arg.FetchedRate,
		arg.Change,
		arg.ChangePercentage,
		arg.Source,
	)
	var i RateSyncItem
	err := row.Scan(
		&i.ID,
		&i.RequestID,
		&i.TargetCode,
		&i.CurrentRate,
		&i.FetchedRate,
		&i.Change,
		&i.ChangePercentage,
		&i.Source,
	)
	return i, err
}

const listRateSyncItems = `
SELECT id, request_id, target_code, current_rate, fetched_rate, change, change_percentage, source
FROM rate_sync_items
WHERE request_id = $1
ORDER BY target_code
`

func (q *Queries) ListRateSyncItems(ctx context.Context, requestID uuid.UUID) ([]RateSyncItem, error) {
	rows, err := q.db.QueryContext(ctx, listRateSyncItems, requestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []RateSyncItem{}
	for rows.Next() {
		var i RateSyncItem
		if err := rows.Scan(
			&i.ID,
			&i.RequestID,
			&i.TargetCode,
			&i.CurrentRate,
			&i.FetchedRate,
			&i.Change,
			&i.ChangePercentage,
			&i.Source,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
