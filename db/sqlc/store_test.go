package sqlc

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ChokeGuy/exchange-office/util"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func createRandomCurrency(t *testing.T) Currency {
	currency, err := testQueries.CreateCurrency(context.Background(), CreateCurrencyParams{
		Code:          strings.ToUpper(util.RandomString(3)),
		Name:          util.RandomString(8),
		DecimalPlaces: 2,
		IsActive:      true,
	})
	require.NoError(t, err)
	return currency
}

func createRandomBranch(t *testing.T) Branch {
	branch, err := testQueries.CreateBranch(context.Background(), CreateBranchParams{
		Code: strings.ToUpper(util.RandomString(6)),
		Name: util.RandomString(10),
		ContactEmail: pgtype.Text{
			String: util.RandomEmail(),
			Valid:  true,
		},
	})
	require.NoError(t, err)
	return branch
}

func createRandomVault(t *testing.T) Vault {
	vault, err := testQueries.CreateVault(context.Background(), CreateVaultParams{
		Code: strings.ToUpper(util.RandomString(6)),
		Name: util.RandomString(10),
	})
	require.NoError(t, err)
	return vault
}

func seedBalance(t *testing.T, holderID, currencyID uuid.UUID, amount decimal.Decimal) Balance {
	balance, err := testQueries.AdjustBalance(context.Background(), AdjustBalanceParams{
		HolderID:     holderID,
		CurrencyID:   currencyID,
		BalanceDelta: amount,
	})
	require.NoError(t, err)
	return balance
}

func createPendingTransfer(t *testing.T, transferType TransferType, currencyID, sourceID, destinationID uuid.UUID, amount decimal.Decimal) Transfer {
	transfer, err := testQueries.CreateTransfer(context.Background(), CreateTransferParams{
		TransferType:  transferType,
		CurrencyID:    currencyID,
		Amount:        amount,
		SourceID:      sourceID,
		DestinationID: destinationID,
		ReferenceNumber: pgtype.Text{
			String: util.RandomReferenceNumber(),
			Valid:  true,
		},
		InitiatedBy: util.RandomActor(),
	})
	require.NoError(t, err)
	require.Equal(t, TransferStatusPending, transfer.Status)
	require.Equal(t, int32(1), transfer.Version)
	return transfer
}

func TestApproveTransferTx(t *testing.T) {
	store := NewStore(testDb)

	currency := createRandomCurrency(t)
	vault := createRandomVault(t)
	branch := createRandomBranch(t)
	seedBalance(t, vault.ID, currency.ID, decimal.NewFromInt(1000))

	amount := decimal.NewFromInt(300)
	transfer := createPendingTransfer(t, TransferTypeVaultToBranch, currency.ID, vault.ID, branch.ID, amount)

	approved, err := store.ApproveTransferTx(context.Background(), ApproveTransferTxParams{
		Transition: TransitionTransferParams{
			ID:      transfer.ID,
			Version: transfer.Version,
			Actor:   "manager.one",
		},
		Reserve: true,
	})
	require.NoError(t, err)
	require.Equal(t, TransferStatusApproved, approved.Status)
	require.Equal(t, transfer.Version+1, approved.Version)
	require.Equal(t, "manager.one", approved.ApprovedBy.String)
	require.True(t, approved.ApprovedAt.Valid)

	balance, err := testQueries.GetBalance(context.Background(), GetBalanceParams{
		HolderID:   vault.ID,
		CurrencyID: currency.ID,
	})
	require.NoError(t, err)
	require.True(t, balance.Reserved.Equal(amount))
	require.True(t, balance.Balance.Equal(decimal.NewFromInt(1000)))
	require.True(t, balance.Available().Equal(decimal.NewFromInt(700)))
}

func TestApproveTransferTxInsufficientFunds(t *testing.T) {
	store := NewStore(testDb)

	currency := createRandomCurrency(t)
	vault := createRandomVault(t)
	branch := createRandomBranch(t)
	seedBalance(t, vault.ID, currency.ID, decimal.NewFromInt(10))

	transfer := createPendingTransfer(t, TransferTypeVaultToBranch, currency.ID, vault.ID, branch.ID, decimal.NewFromInt(500))

	_, err := store.ApproveTransferTx(context.Background(), ApproveTransferTxParams{
		Transition: TransitionTransferParams{
			ID:      transfer.ID,
			Version: transfer.Version,
			Actor:   "manager.one",
		},
		Reserve: true,
	})
	require.ErrorIs(t, err, ErrInsufficientFunds)

	// The rollback must leave the transfer pending and the balance untouched.
	current, err := testQueries.GetTransfer(context.Background(), transfer.ID)
	require.NoError(t, err)
	require.Equal(t, TransferStatusPending, current.Status)
	require.Equal(t, transfer.Version, current.Version)

	balance, err := testQueries.GetBalance(context.Background(), GetBalanceParams{
		HolderID:   vault.ID,
		CurrencyID: currency.ID,
	})
	require.NoError(t, err)
	require.True(t, balance.Reserved.IsZero())
}

func TestApproveTransferTxVersionConflict(t *testing.T) {
	store := NewStore(testDb)

	currency := createRandomCurrency(t)
	source := createRandomBranch(t)
	destination := createRandomBranch(t)

	transfer := createPendingTransfer(t, TransferTypeBranchToBranch, currency.ID, source.ID, destination.ID, decimal.NewFromInt(50))

	_, err := store.ApproveTransferTx(context.Background(), ApproveTransferTxParams{
		Transition: TransitionTransferParams{
			ID:      transfer.ID,
			Version: transfer.Version + 1,
			Actor:   "manager.one",
		},
	})
	require.ErrorIs(t, err, ErrVersionConflict)
}

func TestCompleteTransferTx(t *testing.T) {
	store := NewStore(testDb)

	currency := createRandomCurrency(t)
	vault := createRandomVault(t)
	branch := createRandomBranch(t)
	seedBalance(t, vault.ID, currency.ID, decimal.NewFromInt(1000))

	amount := decimal.NewFromInt(250)
	transfer := createPendingTransfer(t, TransferTypeVaultToBranch, currency.ID, vault.ID, branch.ID, amount)

	approved, err := store.ApproveTransferTx(context.Background(), ApproveTransferTxParams{
		Transition: TransitionTransferParams{
			ID:      transfer.ID,
			Version: transfer.Version,
			Actor:   "manager.one",
		},
		Reserve: true,
	})
	require.NoError(t, err)

	result, err := store.CompleteTransferTx(context.Background(), CompleteTransferTxParams{
		Transition: TransitionTransferParams{
			ID:      transfer.ID,
			Version: approved.Version,
			Actor:   "teller.two",
		},
		ReleaseReservation: true,
	})
	require.NoError(t, err)
	require.Equal(t, TransferStatusCompleted, result.Transfer.Status)
	require.Equal(t, approved.Version+1, result.Transfer.Version)

	require.Equal(t, LedgerDirectionDebit, result.FromEntry.Direction)
	require.True(t, result.FromEntry.Amount.Equal(amount.Neg()))
	require.Equal(t, LedgerDirectionCredit, result.ToEntry.Direction)
	require.True(t, result.ToEntry.Amount.Equal(amount))

	// Money moved, reservation gone, nothing created or destroyed.
	require.True(t, result.FromBalance.Balance.Equal(decimal.NewFromInt(750)))
	require.True(t, result.FromBalance.Reserved.IsZero())
	require.True(t, result.ToBalance.Balance.Equal(amount))
	total := result.FromBalance.Balance.Add(result.ToBalance.Balance)
	require.True(t, total.Equal(decimal.NewFromInt(1000)))

	entries, err := testQueries.ListLedgerEntriesByTransferId(context.Background(), transfer.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
}

func TestConcurrentCompleteTransferTx(t *testing.T) {
	store := NewStore(testDb)

	currency := createRandomCurrency(t)
	vault := createRandomVault(t)
	branch := createRandomBranch(t)
	seedBalance(t, vault.ID, currency.ID, decimal.NewFromInt(1000))

	amount := decimal.NewFromInt(100)
	transfer := createPendingTransfer(t, TransferTypeVaultToBranch, currency.ID, vault.ID, branch.ID, amount)

	approved, err := store.ApproveTransferTx(context.Background(), ApproveTransferTxParams{
		Transition: TransitionTransferParams{
			ID:      transfer.ID,
			Version: transfer.Version,
			Actor:   "manager.one",
		},
		Reserve: true,
	})
	require.NoError(t, err)

	n := 5
	errs := make(chan error)

	for i := 0; i < n; i++ {
		go func() {
			_, err := store.CompleteTransferTx(context.Background(), CompleteTransferTxParams{
				Transition: TransitionTransferParams{
					ID:      transfer.ID,
					Version: approved.Version,
					Actor:   "teller.two",
				},
				ReleaseReservation: true,
			})
			errs <- err
		}()
	}

	// Exactly one goroutine wins the guarded update; the rest lose the race.
	wins := 0
	for i := 0; i < n; i++ {
		err := <-errs
		if err == nil {
			wins++
			continue
		}
		require.ErrorIs(t, err, ErrVersionConflict)
	}
	require.Equal(t, 1, wins)

	entries, err := testQueries.ListLedgerEntriesByTransferId(context.Background(), transfer.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	balance, err := testQueries.GetBalance(context.Background(), GetBalanceParams{
		HolderID:   vault.ID,
		CurrencyID: currency.ID,
	})
	require.NoError(t, err)
	require.True(t, balance.Balance.Equal(decimal.NewFromInt(900)))
	require.True(t, balance.Reserved.IsZero())
}

func TestCancelTransferTxReleasesReservation(t *testing.T) {
	store := NewStore(testDb)

	currency := createRandomCurrency(t)
	vault := createRandomVault(t)
	branch := createRandomBranch(t)
	seedBalance(t, vault.ID, currency.ID, decimal.NewFromInt(400))

	amount := decimal.NewFromInt(150)
	transfer := createPendingTransfer(t, TransferTypeBranchToVault, currency.ID, branch.ID, vault.ID, amount)
	seedBalance(t, branch.ID, currency.ID, decimal.NewFromInt(200))

	approved, err := store.ApproveTransferTx(context.Background(), ApproveTransferTxParams{
		Transition: TransitionTransferParams{
			ID:      transfer.ID,
			Version: transfer.Version,
			Actor:   "manager.one",
		},
		Reserve: true,
	})
	require.NoError(t, err)

	cancelled, err := store.CancelTransferTx(context.Background(), CancelTransferTxParams{
		Transition: TransitionTransferParams{
			ID:      transfer.ID,
			Version: approved.Version,
			Actor:   "teller.one",
			Notes: pgtype.Text{
				String: "courier unavailable",
				Valid:  true,
			},
		},
		ReleaseReservation: true,
	})
	require.NoError(t, err)
	require.Equal(t, TransferStatusCancelled, cancelled.Status)
	require.Equal(t, "courier unavailable", cancelled.Notes.String)

	balance, err := testQueries.GetBalance(context.Background(), GetBalanceParams{
		HolderID:   branch.ID,
		CurrencyID: currency.ID,
	})
	require.NoError(t, err)
	require.True(t, balance.Reserved.IsZero())
	require.True(t, balance.Balance.Equal(decimal.NewFromInt(200)))

	entries, err := testQueries.ListLedgerEntriesByTransferId(context.Background(), transfer.ID)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func createPendingRateSync(t *testing.T, baseCode, targetCode string, expiresAt time.Time) (RateSyncRequest, RateSyncItem) {
	request, err := testQueries.CreateRateSyncRequest(context.Background(), CreateRateSyncRequestParams{
		BaseCode:    baseCode,
		Source:      "manual",
		InitiatedBy: util.RandomActor(),
		ExpiresAt:   expiresAt,
	})
	require.NoError(t, err)
	require.Equal(t, RateSyncStatusPending, request.Status)

	item, err := testQueries.CreateRateSyncItem(context.Background(), CreateRateSyncItemParams{
		RequestID:        request.ID,
		TargetCode:       targetCode,
		FetchedRate:      decimal.RequireFromString("0.92"),
		Change:           decimal.RequireFromString("0.02"),
		ChangePercentage: decimal.RequireFromString("2.22"),
		Source:           "manual",
	})
	require.NoError(t, err)
	return request, item
}

func TestInitiateRateSyncTx(t *testing.T) {
	store := NewStore(testDb)

	base := createRandomCurrency(t)
	target := createRandomCurrency(t)
	other := createRandomCurrency(t)

	result, err := store.InitiateRateSyncTx(context.Background(), InitiateRateSyncTxParams{
		Request: CreateRateSyncRequestParams{
			BaseCode:    base.Code,
			Source:      "auto",
			InitiatedBy: util.RandomActor(),
			ExpiresAt:   time.Now().Add(15 * time.Minute),
		},
		Items: []CreateRateSyncItemParams{
			{
				TargetCode:  target.Code,
				FetchedRate: decimal.RequireFromString("0.92"),
				Change:      decimal.RequireFromString("0.92"),
				Source:      "auto",
			},
			{
				TargetCode:  other.Code,
				FetchedRate: decimal.RequireFromString("0.79"),
				Change:      decimal.RequireFromString("0.79"),
				Source:      "auto",
			},
		},
	})
	require.NoError(t, err)
	require.Equal(t, RateSyncStatusPending, result.Request.Status)
	require.Len(t, result.Items, 2)
	for _, item := range result.Items {
		require.Equal(t, result.Request.ID, item.RequestID)
	}

	items, err := testQueries.ListRateSyncItems(context.Background(), result.Request.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
}

func TestInitiateRateSyncTxRollsBackOnItemFailure(t *testing.T) {
	store := NewStore(testDb)

	base := createRandomCurrency(t)
	target := createRandomCurrency(t)

	// The duplicate target breaks the unique constraint on the second
	// insert; the request row must go with it.
	actor := util.RandomActor()
	_, err := store.InitiateRateSyncTx(context.Background(), InitiateRateSyncTxParams{
		Request: CreateRateSyncRequestParams{
			BaseCode:    base.Code,
			Source:      "auto",
			InitiatedBy: actor,
			ExpiresAt:   time.Now().Add(15 * time.Minute),
		},
		Items: []CreateRateSyncItemParams{
			{
				TargetCode:  target.Code,
				FetchedRate: decimal.RequireFromString("0.92"),
				Change:      decimal.RequireFromString("0.92"),
				Source:      "auto",
			},
			{
				TargetCode:  target.Code,
				FetchedRate: decimal.RequireFromString("0.93"),
				Change:      decimal.RequireFromString("0.93"),
				Source:      "auto",
			},
		},
	})
	require.Error(t, err)

	// No approvable request survived the rollback.
	rows, err := testDb.Query(
		"SELECT id FROM rate_sync_requests WHERE base_code = $1 AND initiated_by = $2",
		base.Code, actor,
	)
	require.NoError(t, err)
	defer rows.Close()
	require.False(t, rows.Next())
	require.NoError(t, rows.Err())
}

func TestApproveRateSyncTx(t *testing.T) {
	store := NewStore(testDb)

	base := createRandomCurrency(t)
	target := createRandomCurrency(t)

	previous, err := testQueries.CreateExchangeRate(context.Background(), CreateExchangeRateParams{
		BaseCode:   base.Code,
		TargetCode: target.Code,
		Rate:       decimal.RequireFromString("0.90"),
		Source:     "manual",
		CreatedBy:  util.RandomActor(),
	})
	require.NoError(t, err)

	request, item := createPendingRateSync(t, base.Code, target.Code, time.Now().Add(15*time.Minute))

	result, err := store.ApproveRateSyncTx(context.Background(), ApproveRateSyncTxParams{
		Approval: ApproveRateSyncRequestParams{
			ID:      request.ID,
			Version: request.Version,
			Actor:   "manager.one",
		},
	})
	require.NoError(t, err)
	require.Equal(t, RateSyncStatusApproved, result.Request.Status)
	require.Len(t, result.Rates, 1)

	applied := result.Rates[0]
	require.True(t, applied.Rate.Equal(item.FetchedRate))
	require.True(t, applied.IsActive)
	require.True(t, applied.PreviousRateID.Valid)
	require.Equal(t, previous.ID, uuid.UUID(applied.PreviousRateID.Bytes))

	// The predecessor must be out of circulation.
	active, err := testQueries.GetActiveExchangeRate(context.Background(), GetActiveExchangeRateParams{
		BaseCode:   base.Code,
		TargetCode: target.Code,
	})
	require.NoError(t, err)
	require.Equal(t, applied.ID, active.ID)

	// A second approval of the same request loses the version guard.
	_, err = store.ApproveRateSyncTx(context.Background(), ApproveRateSyncTxParams{
		Approval: ApproveRateSyncRequestParams{
			ID:      request.ID,
			Version: request.Version,
			Actor:   "manager.two",
		},
	})
	require.ErrorIs(t, err, ErrVersionConflict)
}

func TestApproveRateSyncTxWithSpread(t *testing.T) {
	store := NewStore(testDb)

	base := createRandomCurrency(t)
	target := createRandomCurrency(t)
	request, item := createPendingRateSync(t, base.Code, target.Code, time.Now().Add(15*time.Minute))

	result, err := store.ApproveRateSyncTx(context.Background(), ApproveRateSyncTxParams{
		Approval: ApproveRateSyncRequestParams{
			ID:      request.ID,
			Version: request.Version,
			Actor:   "manager.one",
			SpreadPercentage: decimal.NullDecimal{
				Decimal: decimal.RequireFromString("2"),
				Valid:   true,
			},
		},
	})
	require.NoError(t, err)
	require.Len(t, result.Rates, 1)

	want := item.FetchedRate.Mul(decimal.RequireFromString("1.02"))
	require.True(t, result.Rates[0].Rate.Equal(want))
	require.False(t, result.Rates[0].PreviousRateID.Valid)
}

func TestApproveRateSyncTxExpired(t *testing.T) {
	store := NewStore(testDb)

	base := createRandomCurrency(t)
	target := createRandomCurrency(t)
	request, _ := createPendingRateSync(t, base.Code, target.Code, time.Now().Add(-time.Minute))

	_, err := store.ApproveRateSyncTx(context.Background(), ApproveRateSyncTxParams{
		Approval: ApproveRateSyncRequestParams{
			ID:      request.ID,
			Version: request.Version,
			Actor:   "manager.one",
		},
	})
	require.ErrorIs(t, err, ErrRequestExpired)

	// The losing approval still flips the request to expired.
	current, err := testQueries.GetRateSyncRequest(context.Background(), request.ID)
	require.NoError(t, err)
	require.Equal(t, RateSyncStatusExpired, current.Status)

	// No rate was applied for the target.
	_, err = testQueries.GetActiveExchangeRate(context.Background(), GetActiveExchangeRateParams{
		BaseCode:   base.Code,
		TargetCode: target.Code,
	})
	require.True(t, errors.Is(err, sql.ErrNoRows))
}

func TestExpireRateSyncRequests(t *testing.T) {
	base := createRandomCurrency(t)
	target := createRandomCurrency(t)

	stale, _ := createPendingRateSync(t, base.Code, target.Code, time.Now().Add(-time.Minute))
	fresh, _ := createPendingRateSync(t, base.Code, target.Code, time.Now().Add(15*time.Minute))

	expired, err := testQueries.ExpireRateSyncRequests(context.Background())
	require.NoError(t, err)
	require.GreaterOrEqual(t, expired, int64(1))

	current, err := testQueries.GetRateSyncRequest(context.Background(), stale.ID)
	require.NoError(t, err)
	require.Equal(t, RateSyncStatusExpired, current.Status)

	current, err = testQueries.GetRateSyncRequest(context.Background(), fresh.ID)
	require.NoError(t, err)
	require.Equal(t, RateSyncStatusPending, current.Status)
}
