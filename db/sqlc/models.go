package sqlc

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type TransferType string

const (
	TransferTypeBranchToBranch TransferType = "branch_to_branch"
	TransferTypeVaultToBranch  TransferType = "vault_to_branch"
	TransferTypeBranchToVault  TransferType = "branch_to_vault"
	TransferTypeVaultToVault   TransferType = "vault_to_vault"
)

type TransferStatus string

const (
	TransferStatusPending   TransferStatus = "pending"
	TransferStatusApproved  TransferStatus = "approved"
	TransferStatusInTransit TransferStatus = "in_transit"
	TransferStatusCompleted TransferStatus = "completed"
	TransferStatusRejected  TransferStatus = "rejected"
	TransferStatusCancelled TransferStatus = "cancelled"
)

type RateSyncStatus string

const (
	RateSyncStatusPending  RateSyncStatus = "pending"
	RateSyncStatusApproved RateSyncStatus = "approved"
	RateSyncStatusRejected RateSyncStatus = "rejected"
	RateSyncStatusExpired  RateSyncStatus = "expired"
)

type LedgerDirection string

const (
	LedgerDirectionDebit  LedgerDirection = "debit"
	LedgerDirectionCredit LedgerDirection = "credit"
)

type Currency struct {
	ID            uuid.UUID `json:"id"`
	Code          string    `json:"code"`
	Name          string    `json:"name"`
	DecimalPlaces int32     `json:"decimalPlaces"`
	IsBase        bool      `json:"isBase"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
}

type Branch struct {
	ID           uuid.UUID   `json:"id"`
	Code         string      `json:"code"`
	Name         string      `json:"name"`
	ContactEmail pgtype.Text `json:"contactEmail"`
	CreatedAt    time.Time   `json:"createdAt"`
}

type Vault struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// Balance is the per-(holder, currency) row of the ledger. Available funds
// are balance minus reserved.
type Balance struct {
	HolderID   uuid.UUID       `json:"holderId"`
	CurrencyID uuid.UUID       `json:"currencyId"`
	Balance    decimal.Decimal `json:"balance"`
	Reserved   decimal.Decimal `json:"reserved"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

func (b Balance) Available() decimal.Decimal {
	return b.Balance.Sub(b.Reserved)
}

type LedgerEntry struct {
	ID         int64           `json:"id"`
	TransferID uuid.UUID       `json:"transferId"`
	HolderID   uuid.UUID       `json:"holderId"`
	CurrencyID uuid.UUID       `json:"currencyId"`
	Direction  LedgerDirection `json:"direction"`
	Amount     decimal.Decimal `json:"amount"`
	CreatedAt  time.Time       `json:"createdAt"`
}

type Transfer struct {
	ID              uuid.UUID          `json:"id"`
	TransferType    TransferType       `json:"transferType"`
	CurrencyID      uuid.UUID          `json:"currencyId"`
	Amount          decimal.Decimal    `json:"amount"`
	SourceID        uuid.UUID          `json:"sourceId"`
	DestinationID   uuid.UUID          `json:"destinationId"`
	Status          TransferStatus     `json:"status"`
	Description     pgtype.Text        `json:"description"`
	Notes           pgtype.Text        `json:"notes"`
	ReferenceNumber pgtype.Text        `json:"referenceNumber"`
	InitiatedBy     string             `json:"initiatedBy"`
	ApprovedBy      pgtype.Text        `json:"approvedBy"`
	ApprovedAt      pgtype.Timestamptz `json:"approvedAt"`
	DispatchedBy    pgtype.Text        `json:"dispatchedBy"`
	DispatchedAt    pgtype.Timestamptz `json:"dispatchedAt"`
	CompletedBy     pgtype.Text        `json:"completedBy"`
	CompletedAt     pgtype.Timestamptz `json:"completedAt"`
	RejectedBy      pgtype.Text        `json:"rejectedBy"`
	RejectedAt      pgtype.Timestamptz `json:"rejectedAt"`
	CancelledBy     pgtype.Text        `json:"cancelledBy"`
	CancelledAt     pgtype.Timestamptz `json:"cancelledAt"`
	Version         int32              `json:"version"`
	CreatedAt       time.Time          `json:"createdAt"`
}

type ExchangeRate struct {
	ID             uuid.UUID       `json:"id"`
	BaseCode       string          `json:"baseCode"`
	TargetCode     string          `json:"targetCode"`
	Rate           decimal.Decimal `json:"rate"`
	Source         string          `json:"source"`
	IsActive       bool            `json:"isActive"`
	PreviousRateID pgtype.UUID     `json:"previousRateId"`
	CreatedBy      string          `json:"createdBy"`
	CreatedAt      time.Time       `json:"createdAt"`
}

type RateSyncRequest struct {
	ID               uuid.UUID           `json:"id"`
	BaseCode         string              `json:"baseCode"`
	Source           string              `json:"source"`
	Status           RateSyncStatus      `json:"status"`
	SpreadPercentage decimal.NullDecimal `json:"spreadPercentage"`
	Notes            pgtype.Text         `json:"notes"`
	InitiatedBy      string              `json:"initiatedBy"`
	ApprovedBy       pgtype.Text         `json:"approvedBy"`
	ApprovedAt       pgtype.Timestamptz  `json:"approvedAt"`
	RejectedBy       pgtype.Text         `json:"rejectedBy"`
	RejectedAt       pgtype.Timestamptz  `json:"rejectedAt"`
	ExpiresAt        time.Time           `json:"expiresAt"`
	Version          int32               `json:"version"`
	CreatedAt        time.Time           `json:"createdAt"`
}

type RateSyncItem struct {
	ID               int64               `json:"id"`
	RequestID        uuid.UUID           `json:"requestId"`
	TargetCode       string              `json:"targetCode"`
	CurrentRate      decimal.NullDecimal `json:"currentRate"`
	FetchedRate      decimal.Decimal     `json:"fetchedRate"`
	Change           decimal.Decimal     `json:"change"`
	ChangePercentage decimal.Decimal     `json:"changePercentage"`
	Source           string              `json:"source"`
}
