package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

const transferColumns = `id, transfer_type, currency_id, amount, source_id, destination_id, status,
description, notes, reference_number, initiated_by,
approved_by, approved_at, dispatched_by, dispatched_at, completed_by, completed_at,
rejected_by, rejected_at, cancelled_by, cancelled_at, version, created_at`

func scanTransfer(row interface{ Scan(...interface{}) error }) (Transfer, error) {
	var i Transfer
	err := row.Scan(
		&i.ID,
		&i.TransferType,
		&i.CurrencyID,
		&i.Amount,
		&i.SourceID,
		&i.DestinationID,
		&i.Status,
		&i.Description,
		&i.Notes,
		&i.ReferenceNumber,
		&i.InitiatedBy,
		&i.ApprovedBy,
		&i.ApprovedAt,
		&i.DispatchedBy,
		&i.DispatchedAt,
		&i.CompletedBy,
		&i.CompletedAt,
		&i.RejectedBy,
		&i.RejectedAt,
		&i.CancelledBy,
		&i.CancelledAt,
		&i.Version,
		&i.CreatedAt,
	)
	return i, err
}

const createTransfer = `
INSERT INTO transfers (transfer_type, currency_id, amount, source_id, destination_id, description, notes, reference_number, initiated_by)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + transferColumns

type CreateTransferParams struct {
	TransferType    TransferType    `json:"transferType"`
	CurrencyID      uuid.UUID       `json:"currencyId"`
	Amount          decimal.Decimal `json:"amount"`
	SourceID        uuid.UUID       `json:"sourceId"`
	DestinationID   uuid.UUID       `json:"destinationId"`
	Description     pgtype.Text     `json:"description"`
	Notes           pgtype.Text     `json:"notes"`
	ReferenceNumber pgtype.Text     `json:"referenceNumber"`
	InitiatedBy     string          `json:"initiatedBy"`
}

func (q *Queries) CreateTransfer(ctx context.Context, arg CreateTransferParams) (Transfer, error) {
	row := q.db.QueryRowContext(ctx, createTransfer,
		arg.TransferType,
		arg.CurrencyID,
		arg.Amount,
		arg.SourceID,
		arg.DestinationID,
		arg.Description,
		arg.Notes,
		arg.ReferenceNumber,
		arg.InitiatedBy,
	)
	return scanTransfer(row)
}

const getTransfer = `
SELECT ` + transferColumns + `
FROM transfers
WHERE id = $1
`

func (q *Queries) GetTransfer(ctx context.Context, id uuid.UUID) (Transfer, error) {
	return scanTransfer(q.db.QueryRowContext(ctx, getTransfer, id))
}

const listTransfers = `
SELECT ` + transferColumns + `
FROM transfers
WHERE ($1::text IS NULL OR status = $1)
  AND ($2::text IS NULL OR transfer_type = $2)
  AND ($3::uuid IS NULL OR source_id = $3 OR destination_id = $3)
  AND ($4::text IS NULL OR initiated_by = $4)
ORDER BY created_at DESC
LIMIT $5 OFFSET $6
`

type ListTransfersParams struct {
	Status       pgtype.Text `json:"status"`
	TransferType pgtype.Text `json:"transferType"`
	HolderID     pgtype.UUID `json:"holderId"`
	InitiatedBy  pgtype.Text `json:"initiatedBy"`
	Limit        int32       `json:"limit"`
	Offset       int32       `json:"offset"`
}

func (q *Queries) ListTransfers(ctx context.Context, arg ListTransfersParams) ([]Transfer, error) {
	rows, err := q.db.QueryContext(ctx, listTransfers,
		arg.Status,
		arg.TransferType,
		arg.HolderID,
		arg.InitiatedBy,
		arg.Limit,
		arg.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Transfer{}
	for rows.Next() {
		i, err := scanTransfer(rows)
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

const listTransfersAwaitingApproval = `
SELECT ` + transferColumns + `
FROM transfers
WHERE status = 'pending' AND initiated_by <> $1
ORDER BY created_at
LIMIT $2 OFFSET $3
`

type ListTransfersAwaitingApprovalParams struct {
	Approver string `json:"approver"`
	Limit    int32  `json:"limit"`
	Offset   int32  `json:"offset"`
}

// ListTransfersAwaitingApproval returns pending transfers someone other than
// the initiator may act on, oldest first.
func (q *Queries) ListTransfersAwaitingApproval(ctx context.Context, arg ListTransfersAwaitingApprovalParams) ([]Transfer, error) {
	rows, err := q.db.QueryContext(ctx, listTransfersAwaitingApproval, arg.Approver, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Transfer{}
	for rows.Next() {
		i, err := scanTransfer(rows)
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

// TransitionTransferParams is shared by the status-transition updates. Each
// update only applies while the row still holds the expected version and a
// status the transition is legal from; sql.ErrNoRows means the caller lost
// the race.
type TransitionTransferParams struct {
	ID      uuid.UUID   `json:"id"`
	Version int32       `json:"version"`
	Actor   string      `json:"actor"`
	Notes   pgtype.Text `json:"notes"`
}

const approveTransfer = `
UPDATE transfers
SET status = 'approved',
    approved_by = $3,
    approved_at = now(),
    notes = COALESCE($4, notes),
    version = version + 1
WHERE id = $1 AND version = $2 AND status = 'pending'
RETURNING ` + transferColumns

func (q *Queries) ApproveTransfer(ctx context.Context, arg TransitionTransferParams) (Transfer, error) {
	return scanTransfer(q.db.QueryRowContext(ctx, approveTransfer, arg.ID, arg.Version, arg.Actor, arg.Notes))
}

const rejectTransfer = `
UPDATE transfers
SET status = 'rejected',
    rejected_by = $3,
    rejected_at = now(),
    notes = COALESCE($4, notes),
    version = version + 1
WHERE id = $1 AND version = $2 AND status = 'pending'
RETURNING ` + transferColumns

func (q *Queries) RejectTransfer(ctx context.Context, arg TransitionTransferParams) (Transfer, error) {
	return scanTransfer(q.db.QueryRowContext(ctx, rejectTransfer, arg.ID, arg.Version, arg.Actor, arg.Notes))
}

const cancelTransfer = `
UPDATE transfers
SET status = 'cancelled',
    cancelled_by = $3,
    cancelled_at = now(),
    notes = COALESCE($4, notes),
    version = version + 1
WHERE id = $1 AND version = $2 AND status IN ('pending', 'approved')
RETURNING ` + transferColumns

func (q *Queries) CancelTransfer(ctx context.Context, arg TransitionTransferParams) (Transfer, error) {
	return scanTransfer(q.db.QueryRowContext(ctx, cancelTransfer, arg.ID, arg.Version, arg.Actor, arg.Notes))
}

const dispatchTransfer = `
UPDATE transfers
SET status = 'in_transit',
    dispatched_by = $3,
    dispatched_at = now(),
    notes = COALESCE($4, notes),
    version = version + 1
WHERE id = $1 AND version = $2 AND status = 'approved'
RETURNING ` + transferColumns

func (q *Queries) DispatchTransfer(ctx context.Context, arg TransitionTransferParams) (Transfer, error) {
	return scanTransfer(q.db.QueryRowContext(ctx, dispatchTransfer, arg.ID, arg.Version, arg.Actor, arg.Notes))
}

const completeTransfer = `
UPDATE transfers
SET status = 'completed',
    completed_by = $3,
    completed_at = now(),
    notes = COALESCE($4, notes),
    version = version + 1
WHERE id = $1 AND version = $2 AND status IN ('approved', 'in_transit')
RETURNING ` + transferColumns

func (q *Queries) CompleteTransfer(ctx context.Context, arg TransitionTransferParams) (Transfer, error) {
	return scanTransfer(q.db.QueryRowContext(ctx, completeTransfer, arg.ID, arg.Version, arg.Actor, arg.Notes))
}
