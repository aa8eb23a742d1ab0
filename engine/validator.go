package engine

import (
	"context"
	"strings"

	db "github.com/ChokeGuy/exchange-office/db/sqlc"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// MaxNoteLength caps actor-supplied notes and reasons.
const MaxNoteLength = 500

// CreateTransferParams is a candidate transfer before validation.
type CreateTransferParams struct {
	Payload         TransferPayload
	CurrencyID      uuid.UUID
	Amount          decimal.Decimal
	Description     string
	Notes           string
	ReferenceNumber string
	InitiatedBy     string
}

// validateCreate turns a candidate payload into a creation command or a
// structured failure. Nothing is persisted while the returned error is
// non-nil.
func (c *Coordinator) validateCreate(ctx context.Context, arg CreateTransferParams) (db.CreateTransferParams, error) {
	fields := ValidationError{}

	if arg.Payload == nil {
		fields["transfer_type"] = "transfer type is required"
		return db.CreateTransferParams{}, fields
	}

	if arg.InitiatedBy == "" {
		fields["initiated_by"] = "initiating actor is required"
	}

	currency, ok, err := c.dir.Currency(ctx, arg.CurrencyID)
	if err != nil {
		return db.CreateTransferParams{}, err
	}
	if !ok {
		fields["currency_id"] = "currency does not reference an active currency"
	} else {
		c.validateAmount(fields, arg.Amount, currency)
	}

	source, destination := arg.Payload.Endpoints()
	if err := c.validateEndpoints(ctx, fields, arg.Payload); err != nil {
		return db.CreateTransferParams{}, err
	}

	if source == destination && source != uuid.Nil {
		return db.CreateTransferParams{}, &SameEndpointError{
			TransferType: arg.Payload.TransferType(),
			HolderID:     source,
		}
	}

	notes := strings.TrimSpace(arg.Notes)
	if len(notes) > MaxNoteLength {
		fields["notes"] = "notes must be at most 500 characters"
	}

	if len(fields) > 0 {
		return db.CreateTransferParams{}, fields
	}

	return db.CreateTransferParams{
		TransferType:    arg.Payload.TransferType(),
		CurrencyID:      arg.CurrencyID,
		Amount:          arg.Amount,
		SourceID:        source,
		DestinationID:   destination,
		Description:     textOrNull(arg.Description),
		Notes:           textOrNull(notes),
		ReferenceNumber: textOrNull(arg.ReferenceNumber),
		InitiatedBy:     arg.InitiatedBy,
	}, nil
}

func (c *Coordinator) validateAmount(fields ValidationError, amount decimal.Decimal, currency db.Currency) {
	if !amount.IsPositive() {
		fields["amount"] = "amount must be positive"
		return
	}

	// Smallest denomination of the currency, e.g. 0.01 for two decimal
	// places.
	unit := decimal.New(1, -currency.DecimalPlaces)
	if amount.LessThan(unit) {
		fields["amount"] = "amount is below the smallest unit of " + currency.Code
		return
	}
	// Compare against the rounded value rather than the representation
	// exponent, so trailing zeros like 10.500 stay legal at 2 places.
	if !amount.Equal(amount.Round(currency.DecimalPlaces)) {
		fields["amount"] = "amount has more decimal places than " + currency.Code + " allows"
	}
}

func (c *Coordinator) validateEndpoints(ctx context.Context, fields ValidationError, payload TransferPayload) error {
	checkBranch := func(field string, id uuid.UUID) error {
		if id == uuid.Nil {
			fields[field] = "branch is required"
			return nil
		}
		_, ok, err := c.dir.Branch(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			fields[field] = "branch not found"
		}
		return nil
	}
	checkVault := func(field string, id uuid.UUID) error {
		if id == uuid.Nil {
			fields[field] = "vault is required"
			return nil
		}
		_, ok, err := c.dir.Vault(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			fields[field] = "vault not found"
		}
		return nil
	}

	switch p := payload.(type) {
	case BranchToBranchPayload:
		if err := checkBranch("from_branch_id", p.FromBranchID); err != nil {
			return err
		}
		return checkBranch("to_branch_id", p.ToBranchID)
	case VaultToBranchPayload:
		if err := checkVault("vault_id", p.VaultID); err != nil {
			return err
		}
		return checkBranch("branch_id", p.BranchID)
	case BranchToVaultPayload:
		if err := checkBranch("branch_id", p.BranchID); err != nil {
			return err
		}
		return checkVault("vault_id", p.VaultID)
	case VaultToVaultPayload:
		if err := checkVault("from_vault_id", p.FromVaultID); err != nil {
			return err
		}
		return checkVault("to_vault_id", p.ToVaultID)
	default:
		fields["transfer_type"] = "unknown transfer type"
		return nil
	}
}

// textOrNull trims s and normalizes empty strings to SQL NULL; optional
// fields are never stored as empty strings.
func textOrNull(s string) pgtype.Text {
	s = strings.TrimSpace(s)
	if s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}
