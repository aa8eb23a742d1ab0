package engine

import (
	"context"
	"errors"
	"strings"

	db "github.com/ChokeGuy/exchange-office/db/sqlc"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/rs/zerolog/log"
)

// Coordinator routes a monetary movement request through its lifecycle:
// creation, approval, dispatch, completion, rejection and cancellation. All
// mutations go through the store's version-guarded transitions, so two
// concurrent actions on the same transfer can never both apply.
type Coordinator struct {
	store db.Store
	dir   *Directory
}

func NewCoordinator(store db.Store, dir *Directory) *Coordinator {
	return &Coordinator{store: store, dir: dir}
}

// CreateTransfer validates the candidate payload and persists a pending
// transfer. Validation failures create no record.
func (c *Coordinator) CreateTransfer(ctx context.Context, arg CreateTransferParams) (db.Transfer, error) {
	cmd, err := c.validateCreate(ctx, arg)
	if err != nil {
		return db.Transfer{}, err
	}

	transfer, err := c.store.CreateTransfer(ctx, cmd)
	if err != nil {
		return db.Transfer{}, err
	}

	log.Info().
		Str("transfer_id", transfer.ID.String()).
		Str("transfer_type", string(transfer.TransferType)).
		Str("initiated_by", transfer.InitiatedBy).
		Msg("transfer created")
	return transfer, nil
}

// GetTransfer returns a single transfer by id.
func (c *Coordinator) GetTransfer(ctx context.Context, id uuid.UUID) (db.Transfer, error) {
	return c.store.GetTransfer(ctx, id)
}

// ApproveTransfer moves a pending transfer to approved. Vault-involving
// transfers earmark the amount against the source holder in the same step;
// a short balance leaves the transfer pending.
func (c *Coordinator) ApproveTransfer(ctx context.Context, id uuid.UUID, actor, notes string) (db.Transfer, error) {
	transfer, transition, err := c.prepareTransition(ctx, id, ActionApprove, actor, notes)
	if err != nil {
		return transfer, err
	}

	updated, err := c.store.ApproveTransferTx(ctx, db.ApproveTransferTxParams{
		Transition: transition,
		Reserve:    ReservesAtApproval(transfer.TransferType),
	})
	if err != nil {
		return db.Transfer{}, c.mapTransitionError(ctx, transfer, ActionApprove, err)
	}
	return updated, nil
}

// RejectTransfer moves a pending transfer to rejected. No ledger effect.
func (c *Coordinator) RejectTransfer(ctx context.Context, id uuid.UUID, actor, notes string) (db.Transfer, error) {
	transfer, transition, err := c.prepareTransition(ctx, id, ActionReject, actor, notes)
	if err != nil {
		return transfer, err
	}

	updated, err := c.store.RejectTransfer(ctx, transition)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			err = db.ErrVersionConflict
		}
		return db.Transfer{}, c.mapTransitionError(ctx, transfer, ActionReject, err)
	}
	return updated, nil
}

// CancelTransfer cancels a pending or approved transfer. A reservation made
// at approval is released atomically with the status change.
func (c *Coordinator) CancelTransfer(ctx context.Context, id uuid.UUID, actor, reason string) (db.Transfer, error) {
	transfer, transition, err := c.prepareTransition(ctx, id, ActionCancel, actor, reason)
	if err != nil {
		return transfer, err
	}

	release := transfer.Status == db.TransferStatusApproved && ReservesAtApproval(transfer.TransferType)
	updated, err := c.store.CancelTransferTx(ctx, db.CancelTransferTxParams{
		Transition:         transition,
		ReleaseReservation: release,
	})
	if err != nil {
		return db.Transfer{}, c.mapTransitionError(ctx, transfer, ActionCancel, err)
	}
	return updated, nil
}

// DispatchTransfer marks an approved vault-involving transfer as physically
// on its way.
func (c *Coordinator) DispatchTransfer(ctx context.Context, id uuid.UUID, actor, notes string) (db.Transfer, error) {
	transfer, transition, err := c.prepareTransition(ctx, id, ActionDispatch, actor, notes)
	if err != nil {
		return transfer, err
	}
	if !InvolvesVault(transfer.TransferType) {
		return db.Transfer{}, ValidationError{"transfer_type": "only vault-involving transfers can be dispatched"}
	}

	updated, err := c.store.DispatchTransfer(ctx, transition)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			err = db.ErrVersionConflict
		}
		return db.Transfer{}, c.mapTransitionError(ctx, transfer, ActionDispatch, err)
	}
	return updated, nil
}

// CompleteTransfer performs the debit/credit pair against the ledger and
// marks the transfer completed. Calling it again on an already-completed
// transfer is a no-op success, so a retry after a network timeout is safe.
func (c *Coordinator) CompleteTransfer(ctx context.Context, id uuid.UUID, actor string) (db.Transfer, error) {
	transfer, err := c.store.GetTransfer(ctx, id)
	if err != nil {
		return db.Transfer{}, err
	}
	if transfer.Status == db.TransferStatusCompleted {
		return transfer, nil
	}
	if actor == "" {
		return db.Transfer{}, ValidationError{"actor": "acting user is required"}
	}
	if _, err := NextStatus(transfer.Status, ActionComplete); err != nil {
		return db.Transfer{}, err
	}

	result, err := c.store.CompleteTransferTx(ctx, db.CompleteTransferTxParams{
		Transition: db.TransitionTransferParams{
			ID:      transfer.ID,
			Version: transfer.Version,
			Actor:   actor,
		},
		ReleaseReservation: ReservesAtApproval(transfer.TransferType),
	})
	if err != nil {
		// Losing a race against another complete still counts as done.
		if errors.Is(err, db.ErrVersionConflict) {
			if current, getErr := c.store.GetTransfer(ctx, transfer.ID); getErr == nil && current.Status == db.TransferStatusCompleted {
				return current, nil
			}
		}
		return db.Transfer{}, c.mapTransitionError(ctx, transfer, ActionComplete, err)
	}

	log.Info().
		Str("transfer_id", result.Transfer.ID.String()).
		Str("amount", result.Transfer.Amount.String()).
		Str("completed_by", actor).
		Msg("transfer completed, ledger applied")
	return result.Transfer, nil
}

// TransferFilter narrows ListTransfers. Zero values mean "any".
type TransferFilter struct {
	Status       db.TransferStatus
	TransferType db.TransferType
	HolderID     uuid.UUID
	InitiatedBy  string
	Limit        int32
	Offset       int32
}

const defaultPageSize = 50

// ListTransfers returns transfers matching the filter, newest first.
func (c *Coordinator) ListTransfers(ctx context.Context, filter TransferFilter) ([]db.Transfer, error) {
	arg := db.ListTransfersParams{
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}
	if arg.Limit <= 0 {
		arg.Limit = defaultPageSize
	}
	if filter.Status != "" {
		arg.Status = pgtype.Text{String: string(filter.Status), Valid: true}
	}
	if filter.TransferType != "" {
		arg.TransferType = pgtype.Text{String: string(filter.TransferType), Valid: true}
	}
	if filter.HolderID != uuid.Nil {
		arg.HolderID = pgtype.UUID{Bytes: filter.HolderID, Valid: true}
	}
	if filter.InitiatedBy != "" {
		arg.InitiatedBy = pgtype.Text{String: filter.InitiatedBy, Valid: true}
	}
	return c.store.ListTransfers(ctx, arg)
}

// ListAwaitingApproval returns the pending transfers the given actor can act
// on; initiators do not approve their own requests.
func (c *Coordinator) ListAwaitingApproval(ctx context.Context, actor string, limit, offset int32) ([]db.Transfer, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	return c.store.ListTransfersAwaitingApproval(ctx, db.ListTransfersAwaitingApprovalParams{
		Approver: actor,
		Limit:    limit,
		Offset:   offset,
	})
}

// prepareTransition loads the transfer, checks the transition table and the
// actor bookkeeping inputs, and builds the version-guarded update params.
func (c *Coordinator) prepareTransition(ctx context.Context, id uuid.UUID, action Action, actor, notes string) (db.Transfer, db.TransitionTransferParams, error) {
	transfer, err := c.store.GetTransfer(ctx, id)
	if err != nil {
		return db.Transfer{}, db.TransitionTransferParams{}, err
	}

	if actor == "" {
		return transfer, db.TransitionTransferParams{}, ValidationError{"actor": "acting user is required"}
	}
	notes = strings.TrimSpace(notes)
	if len(notes) > MaxNoteLength {
		return transfer, db.TransitionTransferParams{}, ValidationError{"notes": "notes must be at most 500 characters"}
	}

	if _, err := NextStatus(transfer.Status, action); err != nil {
		return transfer, db.TransitionTransferParams{}, err
	}

	return transfer, db.TransitionTransferParams{
		ID:      transfer.ID,
		Version: transfer.Version,
		Actor:   actor,
		Notes:   textOrNull(notes),
	}, nil
}

// mapTransitionError turns store sentinels into the engine's typed errors.
// Version conflicts are re-read so an idempotent complete can still succeed.
func (c *Coordinator) mapTransitionError(ctx context.Context, transfer db.Transfer, action Action, err error) error {
	switch {
	case errors.Is(err, db.ErrInsufficientFunds):
		return &InsufficientFundsError{
			HolderID:   transfer.SourceID,
			CurrencyID: transfer.CurrencyID,
			Requested:  transfer.Amount,
		}
	case errors.Is(err, db.ErrVersionConflict):
		current, getErr := c.store.GetTransfer(ctx, transfer.ID)
		if getErr != nil {
			return getErr
		}
		if _, tErr := NextStatus(current.Status, action); tErr != nil {
			return tErr
		}
		return &ConcurrentModificationError{EntityID: transfer.ID}
	default:
		return err
	}
}
