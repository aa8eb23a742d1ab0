package engine

import (
	"context"
	"strings"
	"testing"

	mockdb "github.com/ChokeGuy/exchange-office/db/mock"
	db "github.com/ChokeGuy/exchange-office/db/sqlc"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestCreateTransferValidation(t *testing.T) {
	usd := randomCurrency("USD", 2)
	jpy := randomCurrency("JPY", 0)
	fromBranch := randomBranch()
	toBranch := randomBranch()
	vault := randomVault()

	currencies := []db.Currency{usd, jpy}
	branches := []db.Branch{fromBranch, toBranch}
	vaults := []db.Vault{vault}

	testCases := []struct {
		name       string
		arg        CreateTransferParams
		buildStubs func(store *mockdb.MockStore)
		checkErr   func(t *testing.T, err error)
	}{
		{
			name: "OK",
			arg: CreateTransferParams{
				Payload:     BranchToBranchPayload{FromBranchID: fromBranch.ID, ToBranchID: toBranch.ID},
				CurrencyID:  usd.ID,
				Amount:      decimal.RequireFromString("125.50"),
				InitiatedBy: "teller.one",
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					CreateTransfer(gomock.Any(), gomock.Any()).
					Times(1).
					DoAndReturn(func(_ context.Context, arg db.CreateTransferParams) (db.Transfer, error) {
						require.Equal(t, db.TransferTypeBranchToBranch, arg.TransferType)
						require.Equal(t, fromBranch.ID, arg.SourceID)
						require.Equal(t, toBranch.ID, arg.DestinationID)
						require.Equal(t, "teller.one", arg.InitiatedBy)
						return db.Transfer{ID: uuid.New(), Status: db.TransferStatusPending}, nil
					})
			},
			checkErr: func(t *testing.T, err error) {
				require.NoError(t, err)
			},
		},
		{
			name: "MissingPayload",
			arg: CreateTransferParams{
				CurrencyID:  usd.ID,
				Amount:      decimal.NewFromInt(10),
				InitiatedBy: "teller.one",
			},
			buildStubs: func(store *mockdb.MockStore) {},
			checkErr: func(t *testing.T, err error) {
				var fields ValidationError
				require.ErrorAs(t, err, &fields)
				require.Contains(t, fields, "transfer_type")
			},
		},
		{
			name: "MissingActor",
			arg: CreateTransferParams{
				Payload:    BranchToBranchPayload{FromBranchID: fromBranch.ID, ToBranchID: toBranch.ID},
				CurrencyID: usd.ID,
				Amount:     decimal.NewFromInt(10),
			},
			buildStubs: func(store *mockdb.MockStore) {},
			checkErr: func(t *testing.T, err error) {
				var fields ValidationError
				require.ErrorAs(t, err, &fields)
				require.Contains(t, fields, "initiated_by")
			},
		},
		{
			name: "UnknownCurrency",
			arg: CreateTransferParams{
				Payload:     BranchToBranchPayload{FromBranchID: fromBranch.ID, ToBranchID: toBranch.ID},
				CurrencyID:  uuid.New(),
				Amount:      decimal.NewFromInt(10),
				InitiatedBy: "teller.one",
			},
			buildStubs: func(store *mockdb.MockStore) {},
			checkErr: func(t *testing.T, err error) {
				var fields ValidationError
				require.ErrorAs(t, err, &fields)
				require.Contains(t, fields, "currency_id")
			},
		},
		{
			name: "ZeroAmount",
			arg: CreateTransferParams{
				Payload:     BranchToBranchPayload{FromBranchID: fromBranch.ID, ToBranchID: toBranch.ID},
				CurrencyID:  usd.ID,
				Amount:      decimal.Zero,
				InitiatedBy: "teller.one",
			},
			buildStubs: func(store *mockdb.MockStore) {},
			checkErr: func(t *testing.T, err error) {
				var fields ValidationError
				require.ErrorAs(t, err, &fields)
				require.Contains(t, fields, "amount")
			},
		},
		{
			name: "NegativeAmount",
			arg: CreateTransferParams{
				Payload:     BranchToBranchPayload{FromBranchID: fromBranch.ID, ToBranchID: toBranch.ID},
				CurrencyID:  usd.ID,
				Amount:      decimal.NewFromInt(-5),
				InitiatedBy: "teller.one",
			},
			buildStubs: func(store *mockdb.MockStore) {},
			checkErr: func(t *testing.T, err error) {
				var fields ValidationError
				require.ErrorAs(t, err, &fields)
				require.Contains(t, fields, "amount")
			},
		},
		{
			name: "TooManyDecimalPlaces",
			arg: CreateTransferParams{
				Payload:     BranchToBranchPayload{FromBranchID: fromBranch.ID, ToBranchID: toBranch.ID},
				CurrencyID:  usd.ID,
				Amount:      decimal.RequireFromString("10.005"),
				InitiatedBy: "teller.one",
			},
			buildStubs: func(store *mockdb.MockStore) {},
			checkErr: func(t *testing.T, err error) {
				var fields ValidationError
				require.ErrorAs(t, err, &fields)
				require.Contains(t, fields, "amount")
			},
		},
		{
			name: "TrailingZerosWithinPrecision",
			arg: CreateTransferParams{
				Payload:     BranchToBranchPayload{FromBranchID: fromBranch.ID, ToBranchID: toBranch.ID},
				CurrencyID:  usd.ID,
				Amount:      decimal.RequireFromString("10.500"),
				InitiatedBy: "teller.one",
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					CreateTransfer(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.Transfer{ID: uuid.New(), Status: db.TransferStatusPending}, nil)
			},
			checkErr: func(t *testing.T, err error) {
				// 10.500 is exact at two decimal places; only real
				// sub-unit precision is rejected.
				require.NoError(t, err)
			},
		},
		{
			name: "FractionOfZeroDecimalCurrency",
			arg: CreateTransferParams{
				Payload:     BranchToBranchPayload{FromBranchID: fromBranch.ID, ToBranchID: toBranch.ID},
				CurrencyID:  jpy.ID,
				Amount:      decimal.RequireFromString("0.5"),
				InitiatedBy: "teller.one",
			},
			buildStubs: func(store *mockdb.MockStore) {},
			checkErr: func(t *testing.T, err error) {
				var fields ValidationError
				require.ErrorAs(t, err, &fields)
				require.Contains(t, fields, "amount")
			},
		},
		{
			name: "UnknownBranch",
			arg: CreateTransferParams{
				Payload:     BranchToBranchPayload{FromBranchID: uuid.New(), ToBranchID: toBranch.ID},
				CurrencyID:  usd.ID,
				Amount:      decimal.NewFromInt(10),
				InitiatedBy: "teller.one",
			},
			buildStubs: func(store *mockdb.MockStore) {},
			checkErr: func(t *testing.T, err error) {
				var fields ValidationError
				require.ErrorAs(t, err, &fields)
				require.Contains(t, fields, "from_branch_id")
			},
		},
		{
			name: "UnknownVault",
			arg: CreateTransferParams{
				Payload:     VaultToBranchPayload{VaultID: uuid.New(), BranchID: fromBranch.ID},
				CurrencyID:  usd.ID,
				Amount:      decimal.NewFromInt(10),
				InitiatedBy: "teller.one",
			},
			buildStubs: func(store *mockdb.MockStore) {},
			checkErr: func(t *testing.T, err error) {
				var fields ValidationError
				require.ErrorAs(t, err, &fields)
				require.Contains(t, fields, "vault_id")
			},
		},
		{
			name: "SameBranchEndpoints",
			arg: CreateTransferParams{
				Payload:     BranchToBranchPayload{FromBranchID: fromBranch.ID, ToBranchID: fromBranch.ID},
				CurrencyID:  usd.ID,
				Amount:      decimal.NewFromInt(10),
				InitiatedBy: "teller.one",
			},
			buildStubs: func(store *mockdb.MockStore) {},
			checkErr: func(t *testing.T, err error) {
				var sameEndpoint *SameEndpointError
				require.ErrorAs(t, err, &sameEndpoint)
				require.Equal(t, fromBranch.ID, sameEndpoint.HolderID)
				require.Equal(t, db.TransferTypeBranchToBranch, sameEndpoint.TransferType)
			},
		},
		{
			name: "SameVaultEndpoints",
			arg: CreateTransferParams{
				Payload:     VaultToVaultPayload{FromVaultID: vault.ID, ToVaultID: vault.ID},
				CurrencyID:  usd.ID,
				Amount:      decimal.NewFromInt(10),
				InitiatedBy: "teller.one",
			},
			buildStubs: func(store *mockdb.MockStore) {},
			checkErr: func(t *testing.T, err error) {
				var sameEndpoint *SameEndpointError
				require.ErrorAs(t, err, &sameEndpoint)
				require.Equal(t, vault.ID, sameEndpoint.HolderID)
			},
		},
		{
			name: "NotesTooLong",
			arg: CreateTransferParams{
				Payload:     BranchToBranchPayload{FromBranchID: fromBranch.ID, ToBranchID: toBranch.ID},
				CurrencyID:  usd.ID,
				Amount:      decimal.NewFromInt(10),
				Notes:       strings.Repeat("x", MaxNoteLength+1),
				InitiatedBy: "teller.one",
			},
			buildStubs: func(store *mockdb.MockStore) {},
			checkErr: func(t *testing.T, err error) {
				var fields ValidationError
				require.ErrorAs(t, err, &fields)
				require.Contains(t, fields, "notes")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			stubDirectory(store, currencies, branches, vaults)
			tc.buildStubs(store)

			coordinator := newTestCoordinator(store)
			_, err := coordinator.CreateTransfer(context.Background(), tc.arg)
			tc.checkErr(t, err)
		})
	}
}

func TestCreateTransferPersistsNothingOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	stubDirectory(store, []db.Currency{randomCurrency("USD", 2)}, nil, nil)
	store.EXPECT().CreateTransfer(gomock.Any(), gomock.Any()).Times(0)

	coordinator := newTestCoordinator(store)
	_, err := coordinator.CreateTransfer(context.Background(), CreateTransferParams{
		Payload:     BranchToBranchPayload{FromBranchID: uuid.New(), ToBranchID: uuid.New()},
		CurrencyID:  uuid.New(),
		Amount:      decimal.NewFromInt(-1),
		InitiatedBy: "",
	})

	var fields ValidationError
	require.ErrorAs(t, err, &fields)
	// Every failing rule reports at once so the caller can fix the whole
	// request in one round trip.
	require.Contains(t, fields, "initiated_by")
	require.Contains(t, fields, "currency_id")
	require.Contains(t, fields, "from_branch_id")
	require.Contains(t, fields, "to_branch_id")
}
