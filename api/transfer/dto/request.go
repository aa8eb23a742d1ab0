package transfer

import "github.com/shopspring/decimal"

// CreateTransferRequest is the flat wire shape of a transfer creation; the
// handler folds it into the typed payload variant for the engine.
type CreateTransferRequest struct {
	TransferType    string          `json:"transferType" binding:"required,transfertype"`
	CurrencyID      string          `json:"currencyId" binding:"required,uuid"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	FromBranchID    string          `json:"fromBranchId" binding:"omitempty,uuid"`
	ToBranchID      string          `json:"toBranchId" binding:"omitempty,uuid"`
	BranchID        string          `json:"branchId" binding:"omitempty,uuid"`
	VaultID         string          `json:"vaultId" binding:"omitempty,uuid"`
	FromVaultID     string          `json:"fromVaultId" binding:"omitempty,uuid"`
	ToVaultID       string          `json:"toVaultId" binding:"omitempty,uuid"`
	Description     string          `json:"description"`
	Notes           string          `json:"notes"`
	ReferenceNumber string          `json:"referenceNumber"`
}

type TransferActionRequest struct {
	Notes string `json:"notes" binding:"omitempty,max=500"`
}

type CancelTransferRequest struct {
	Reason string `json:"reason" binding:"omitempty,max=500"`
}

type ListTransfersRequest struct {
	Status       string `form:"status" binding:"omitempty,oneof=pending approved in_transit completed rejected cancelled"`
	TransferType string `form:"transferType" binding:"omitempty,transfertype"`
	HolderID     string `form:"holderId" binding:"omitempty,uuid"`
	InitiatedBy  string `form:"initiatedBy"`
	Limit        int32  `form:"limit" binding:"omitempty,min=1,max=200"`
	Offset       int32  `form:"offset" binding:"omitempty,min=0"`
}
