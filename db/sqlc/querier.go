package sqlc

import (
	"context"

	"github.com/google/uuid"
)

type Querier interface {
	CreateCurrency(ctx context.Context, arg CreateCurrencyParams) (Currency, error)
	GetCurrency(ctx context.Context, id uuid.UUID) (Currency, error)
	GetCurrencyByCode(ctx context.Context, code string) (Currency, error)
	ListActiveCurrencies(ctx context.Context) ([]Currency, error)
	CreateBranch(ctx context.Context, arg CreateBranchParams) (Branch, error)
	GetBranch(ctx context.Context, id uuid.UUID) (Branch, error)
	ListBranches(ctx context.Context) ([]Branch, error)
	CreateVault(ctx context.Context, arg CreateVaultParams) (Vault, error)
	GetVault(ctx context.Context, id uuid.UUID) (Vault, error)
	ListVaults(ctx context.Context) ([]Vault, error)
	GetBalance(ctx context.Context, arg GetBalanceParams) (Balance, error)
	GetBalanceForUpdate(ctx context.Context, arg GetBalanceParams) (Balance, error)
	AdjustBalance(ctx context.Context, arg AdjustBalanceParams) (Balance, error)
	CreateLedgerEntry(ctx context.Context, arg CreateLedgerEntryParams) (LedgerEntry, error)
	ListLedgerEntriesByTransferId(ctx context.Context, transferID uuid.UUID) ([]LedgerEntry, error)
	CreateTransfer(ctx context.Context, arg CreateTransferParams) (Transfer, error)
	GetTransfer(ctx context.Context, id uuid.UUID) (Transfer, error)
	ListTransfers(ctx context.Context, arg ListTransfersParams) ([]Transfer, error)
	ListTransfersAwaitingApproval(ctx context.Context, arg ListTransfersAwaitingApprovalParams) ([]Transfer, error)
	ApproveTransfer(ctx context.Context, arg TransitionTransferParams) (Transfer, error)
	RejectTransfer(ctx context.Context, arg TransitionTransferParams) (Transfer, error)
	CancelTransfer(ctx context.Context, arg TransitionTransferParams) (Transfer, error)
	DispatchTransfer(ctx context.Context, arg TransitionTransferParams) (Transfer, error)
	CompleteTransfer(ctx context.Context, arg TransitionTransferParams) (Transfer, error)
	CreateExchangeRate(ctx context.Context, arg CreateExchangeRateParams) (ExchangeRate, error)
	GetActiveExchangeRate(ctx context.Context, arg GetActiveExchangeRateParams) (ExchangeRate, error)
	DeactivateExchangeRate(ctx context.Context, id uuid.UUID) error
	ListActiveExchangeRates(ctx context.Context, baseCode string) ([]ExchangeRate, error)
	CreateRateSyncRequest(ctx context.Context, arg CreateRateSyncRequestParams) (RateSyncRequest, error)
	GetRateSyncRequest(ctx context.Context, id uuid.UUID) (RateSyncRequest, error)
	ApproveRateSyncRequest(ctx context.Context, arg ApproveRateSyncRequestParams) (RateSyncRequest, error)
	RejectRateSyncRequest(ctx context.Context, arg RejectRateSyncRequestParams) (RateSyncRequest, error)
	ExpireRateSyncRequest(ctx context.Context, id uuid.UUID) (RateSyncRequest, error)
	ExpireRateSyncRequests(ctx context.Context) (int64, error)
	CreateRateSyncItem(ctx context.Context, arg CreateRateSyncItemParams) (RateSyncItem, error)
	ListRateSyncItems(ctx context.Context, requestID uuid.UUID) ([]RateSyncItem, error)
}

var _ Querier = (*Queries)(nil)
