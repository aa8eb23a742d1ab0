package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const getBalance = `
SELECT holder_id, currency_id, balance, reserved, updated_at
FROM balances
WHERE holder_id = $1 AND currency_id = $2
`

type GetBalanceParams struct {
	HolderID   uuid.UUID `json:"holderId"`
	CurrencyID uuid.UUID `json:"currencyId"`
}

func (q *Queries) GetBalance(ctx context.Context, arg GetBalanceParams) (Balance, error) {
	row := q.db.QueryRowContext(ctx, getBalance, arg.HolderID, arg.CurrencyID)
	var i Balance
	err := row.Scan(&i.HolderID, &i.CurrencyID, &i.Balance, &i.Reserved, &i.UpdatedAt)
	return i, err
}

const getBalanceForUpdate = `
SELECT holder_id, currency_id, balance, reserved, updated_at
FROM balances
WHERE holder_id = $1 AND currency_id = $2
FOR UPDATE
`

func (q *Queries) GetBalanceForUpdate(ctx context.Context, arg GetBalanceParams) (Balance, error) {
	row := q.db.QueryRowContext(ctx, getBalanceForUpdate, arg.HolderID, arg.CurrencyID)
	var i Balance
	err := row.Scan(&i.HolderID, &i.CurrencyID, &i.Balance, &i.Reserved, &i.UpdatedAt)
	return i, err
}

const adjustBalance = `
INSERT INTO balances (holder_id, currency_id, balance, reserved)
VALUES ($1, $2, $3, $4)
ON CONFLICT (holder_id, currency_id) DO UPDATE
SET balance    = balances.balance + EXCLUDED.balance,
    reserved   = balances.reserved + EXCLUDED.reserved,
    updated_at = now()
RETURNING holder_id, currency_id, balance, reserved, updated_at
`

type AdjustBalanceParams struct {
	HolderID      uuid.UUID       `json:"holderId"`
	CurrencyID    uuid.UUID       `json:"currencyId"`
	BalanceDelta  decimal.Decimal `json:"balanceDelta"`
	ReservedDelta decimal.Decimal `json:"reservedDelta"`
}

func (q *Queries) AdjustBalance(ctx context.Context, arg AdjustBalanceParams) (Balance, error) {
	row := q.db.QueryRowContext(ctx, adjustBalance,
		arg.HolderID,
		arg.CurrencyID,
		arg.BalanceDelta,
		arg.ReservedDelta,
	)
	var i Balance
	err := row.Scan(&i.HolderID, &i.CurrencyID, &i.Balance, &i.Reserved, &i.UpdatedAt)
	return i, err
}

const createLedgerEntry = `
INSERT INTO ledger_entries (transfer_id, holder_id, currency_id, direction, amount)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, transfer_id, holder_id, currency_id, direction, amount, created_at
`

type CreateLedgerEntryParams struct {
	TransferID uuid.UUID       `json:"transferId"`
	HolderID   uuid.UUID       `json:"holderId"`
	CurrencyID uuid.UUID       `json:"currencyId"`
	Direction  LedgerDirection `json:"direction"`
	Amount     decimal.Decimal `json:"amount"`
}

func (q *Queries) CreateLedgerEntry(ctx context.Context, arg CreateLedgerEntryParams) (LedgerEntry, error) {
	row := q.db.QueryRowContext(ctx, createLedgerEntry,
		arg.TransferID,
		arg.HolderID,
		arg.CurrencyID,
		arg.Direction,
		arg.Amount,
	)
	var i LedgerEntry
	err := row.Scan(
		&i.ID,
		&i.TransferID,
		&i.HolderID,
		&i.CurrencyID,
		&i.Direction,
		&i.Amount,
		&i.CreatedAt,
	)
	return i, err
}

const listLedgerEntriesByTransferId = `
SELECT id, transfer_id, holder_id, currency_id, direction, amount, created_at
FROM ledger_entries
WHERE transfer_id = $1
ORDER BY id
`

func (q *Queries) ListLedgerEntriesByTransferId(ctx context.Context, transferID uuid.UUID) ([]LedgerEntry, error) {
	rows, err := q.db.QueryContext(ctx, listLedgerEntriesByTransferId, transferID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []LedgerEntry{}
	for rows.Next() {
		var i LedgerEntry
		if err := rows.Scan(
			&i.ID,
			&i.TransferID,
			&i.HolderID,
			&i.CurrencyID,
			&i.Direction,
			&i.Amount,
			&i.CreatedAt,
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
