package sqlc

import (
	"context"

	"github.com/google/uuid"
)

const createCurrency = `
INSERT INTO currencies (code, name, decimal_places, is_base, is_active)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, code, name, decimal_places, is_base, is_active, created_at
`

type CreateCurrencyParams struct {
	Code          string `json:"code"`
	Name          string `json:"name"`
	DecimalPlaces int32  `json:"decimalPlaces"`
	IsBase        bool   `json:"isBase"`
	IsActive      bool   `json:"isActive"`
}

func (q *Queries) CreateCurrency(ctx context.Context, arg CreateCurrencyParams) (Currency, error) {
	row := q.db.QueryRowContext(ctx, createCurrency,
		arg.Code,
		arg.Name,
		arg.DecimalPlaces,
		arg.IsBase,
		arg.IsActive,
	)
	var i Currency
	err := row.Scan(
		&i.ID,
		&i.Code,
		&i.Name,
		&i.DecimalPlaces,
		&i.IsBase,
		&i.IsActive,
		&i.CreatedAt,
	)
	return i, err
}

const getCurrency = `
SELECT id, code, name, decimal_places, is_base, is_active, created_at
FROM currencies
WHERE id = $1
`

func (q *Queries) GetCurrency(ctx context.Context, id uuid.UUID) (Currency, error) {
	row := q.db.QueryRowContext(ctx, getCurrency, id)
	var i Currency
	err := row.Scan(
		&i.ID,
		&i.Code,
		&i.Name,
		&i.DecimalPlaces,
		&i.IsBase,
		&i.IsActive,
		&i.CreatedAt,
	)
	return i, err
}

const getCurrencyByCode = `
SELECT id, code, name, decimal_places, is_base, is_active, created_at
FROM currencies
WHERE code = $1
`

func (q *Queries) GetCurrencyByCode(ctx context.Context, code string) (Currency, error) {
	row := q.db.QueryRowContext(ctx, getCurrencyByCode, code)
	var i Currency
	err := row.Scan(
		&i.ID,
		&i.Code,
		&i.Name,
		&i.DecimalPlaces,
		&i.IsBase,
		&i.IsActive,
		&i.CreatedAt,
	)
	return i, err
}

const listActiveCurrencies = `
SELECT id, code, name, decimal_places, is_base, is_active, created_at
FROM currencies
WHERE is_active = true
ORDER BY code
`

func (q *Queries) ListActiveCurrencies(ctx context.Context) ([]Currency, error) {
	rows, err := q.db.QueryContext(ctx, listActiveCurrencies)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Currency{}
	for rows.Next() {
		var i Currency
		if err := rows.Scan(
			&i.ID,
			&i.Code,
			&i.Name,
			&i.DecimalPlaces,
			&i.IsBase,
			&i.IsActive,
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
