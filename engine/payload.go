package engine

import (
	db "github.com/ChokeGuy/exchange-office/db/sqlc"
	"github.com/google/uuid"
)

// TransferPayload is the tagged variant carried by a transfer-creation
// request. Each arm carries exactly the fields its transfer type requires,
// so the validator can switch exhaustively instead of probing optional
// fields.
type TransferPayload interface {
	TransferType() db.TransferType
	// Endpoints returns the source and destination holder.
	Endpoints() (source, destination uuid.UUID)
}

type BranchToBranchPayload struct {
	FromBranchID uuid.UUID
	ToBranchID   uuid.UUID
}

func (p BranchToBranchPayload) TransferType() db.TransferType { return db.TransferTypeBranchToBranch }

func (p BranchToBranchPayload) Endpoints() (uuid.UUID, uuid.UUID) {
	return p.FromBranchID, p.ToBranchID
}

type VaultToBranchPayload struct {
	VaultID  uuid.UUID
	BranchID uuid.UUID
}

func (p VaultToBranchPayload) TransferType() db.TransferType { return db.TransferTypeVaultToBranch }

func (p VaultToBranchPayload) Endpoints() (uuid.UUID, uuid.UUID) {
	return p.VaultID, p.BranchID
}

type BranchToVaultPayload struct {
	BranchID uuid.UUID
	VaultID  uuid.UUID
}

func (p BranchToVaultPayload) TransferType() db.TransferType { return db.TransferTypeBranchToVault }

func (p BranchToVaultPayload) Endpoints() (uuid.UUID, uuid.UUID) {
	return p.BranchID, p.VaultID
}

type VaultToVaultPayload struct {
	FromVaultID uuid.UUID
	ToVaultID   uuid.UUID
}

func (p VaultToVaultPayload) TransferType() db.TransferType { return db.TransferTypeVaultToVault }

func (p VaultToVaultPayload) Endpoints() (uuid.UUID, uuid.UUID) {
	return p.FromVaultID, p.ToVaultID
}
