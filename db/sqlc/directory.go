package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createBranch = `
INSERT INTO branches (code, name, contact_email)
VALUES ($1, $2, $3)
RETURNING id, code, name, contact_email, created_at
`

type CreateBranchParams struct {
	Code         string      `json:"code"`
	Name         string      `json:"name"`
	ContactEmail pgtype.Text `json:"contactEmail"`
}

func (q *Queries) CreateBranch(ctx context.Context, arg CreateBranchParams) (Branch, error) {
	row := q.db.QueryRowContext(ctx, createBranch, arg.Code, arg.Name, arg.ContactEmail)
	var i Branch
	err := row.Scan(&i.ID, &i.Code, &i.Name, &i.ContactEmail, &i.CreatedAt)
	return i, err
}

const getBranch = `
SELECT id, code, name, contact_email, created_at
FROM branches
WHERE id = $1
`

func (q *Queries) GetBranch(ctx context.Context, id uuid.UUID) (Branch, error) {
	row := q.db.QueryRowContext(ctx, getBranch, id)
	var i Branch
	err := row.Scan(&i.ID, &i.Code, &i.Name, &i.ContactEmail, &i.CreatedAt)
	return i, err
}

const listBranches = `
SELECT id, code, name, contact_email, created_at
FROM branches
ORDER BY code
`

func (q *Queries) ListBranches(ctx context.Context) ([]Branch, error) {
	rows, err := q.db.QueryContext(ctx, listBranches)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Branch{}
	for rows.Next() {
		var i Branch
		if err := rows.Scan(&i.ID, &i.Code, &i.Name, &i.ContactEmail, &i.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createVault = `
INSERT INTO vaults (code, name)
VALUES ($1, $2)
RETURNING id, code, name, created_at
`

type CreateVaultParams struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

func (q *Queries) CreateVault(ctx context.Context, arg CreateVaultParams) (Vault, error) {
	row := q.db.QueryRowContext(ctx, createVault, arg.Code, arg.Name)
	var i Vault
	err := row.Scan(&i.ID, &i.Code, &i.Name, &i.CreatedAt)
	return i, err
}

const getVault = `
SELECT id, code, name, created_at
FROM vaults
WHERE id = $1
`

func (q *Queries) GetVault(ctx context.Context, id uuid.UUID) (Vault, error) {
	row := q.db.QueryRowContext(ctx, getVault, id)
	var i Vault
	err := row.Scan(&i.ID, &i.Code, &i.Name, &i.CreatedAt)
	return i, err
}

const listVaults = `
SELECT id, code, name, created_at
FROM vaults
ORDER BY code
`

func (q *Queries) ListVaults(ctx context.Context) ([]Vault, error) {
	rows, err := q.db.QueryContext(ctx, listVaults)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Vault{}
	for rows.Next() {
		var i Vault
		if err := rows.Scan(&i.ID, &i.Code, &i.Name, &i.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
