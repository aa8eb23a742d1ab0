package engine

import (
	"context"
	"testing"

	mockdb "github.com/ChokeGuy/exchange-office/db/mock"
	db "github.com/ChokeGuy/exchange-office/db/sqlc"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestApproveTransfer(t *testing.T) {
	testCases := []struct {
		name       string
		transfer   db.Transfer
		actor      string
		buildStubs func(store *mockdb.MockStore, transfer db.Transfer)
		checkErr   func(t *testing.T, transfer db.Transfer, err error)
	}{
		{
			name:     "VaultTransferReserves",
			transfer: randomTransfer(db.TransferTypeVaultToBranch, db.TransferStatusPending),
			actor:    "supervisor.one",
			buildStubs: func(store *mockdb.MockStore, transfer db.Transfer) {
				store.EXPECT().GetTransfer(gomock.Any(), gomock.Eq(transfer.ID)).
					Times(1).
					Return(transfer, nil)
				store.EXPECT().
					ApproveTransferTx(gomock.Any(), gomock.Any()).
					Times(1).
					DoAndReturn(func(_ context.Context, arg db.ApproveTransferTxParams) (db.Transfer, error) {
						require.True(t, arg.Reserve)
						require.Equal(t, transfer.ID, arg.Transition.ID)
						require.Equal(t, transfer.Version, arg.Transition.Version)
						require.Equal(t, "supervisor.one", arg.Transition.Actor)
						approved := transfer
						approved.Status = db.TransferStatusApproved
						approved.Version++
						return approved, nil
					})
			},
			checkErr: func(t *testing.T, transfer db.Transfer, err error) {
				require.NoError(t, err)
				require.Equal(t, db.TransferStatusApproved, transfer.Status)
			},
		},
		{
			name:     "BranchTransferDoesNotReserve",
			transfer: randomTransfer(db.TransferTypeBranchToBranch, db.TransferStatusPending),
			actor:    "supervisor.one",
			buildStubs: func(store *mockdb.MockStore, transfer db.Transfer) {
				store.EXPECT().GetTransfer(gomock.Any(), gomock.Eq(transfer.ID)).
					Times(1).
					Return(transfer, nil)
				store.EXPECT().
					ApproveTransferTx(gomock.Any(), gomock.Any()).
					Times(1).
					DoAndReturn(func(_ context.Context, arg db.ApproveTransferTxParams) (db.Transfer, error) {
						require.False(t, arg.Reserve)
						approved := transfer
						approved.Status = db.TransferStatusApproved
						return approved, nil
					})
			},
			checkErr: func(t *testing.T, transfer db.Transfer, err error) {
				require.NoError(t, err)
			},
		},
		{
			name:     "MissingActor",
			transfer: randomTransfer(db.TransferTypeVaultToBranch, db.TransferStatusPending),
			actor:    "",
			buildStubs: func(store *mockdb.MockStore, transfer db.Transfer) {
				store.EXPECT().GetTransfer(gomock.Any(), gomock.Eq(transfer.ID)).
					Times(1).
					Return(transfer, nil)
			},
			checkErr: func(t *testing.T, transfer db.Transfer, err error) {
				var fields ValidationError
				require.ErrorAs(t, err, &fields)
				require.Contains(t, fields, "actor")
			},
		},
		{
			name:     "AlreadyApproved",
			transfer: randomTransfer(db.TransferTypeVaultToBranch, db.TransferStatusApproved),
			actor:    "supervisor.one",
			buildStubs: func(store *mockdb.MockStore, transfer db.Transfer) {
				store.EXPECT().GetTransfer(gomock.Any(), gomock.Eq(transfer.ID)).
					Times(1).
					Return(transfer, nil)
			},
			checkErr: func(t *testing.T, transfer db.Transfer, err error) {
				var invalid *InvalidTransitionError
				require.ErrorAs(t, err, &invalid)
				require.Equal(t, string(db.TransferStatusApproved), invalid.Current)
			},
		},
		{
			name:     "InsufficientAvailableBalance",
			transfer: randomTransfer(db.TransferTypeVaultToBranch, db.TransferStatusPending),
			actor:    "supervisor.one",
			buildStubs: func(store *mockdb.MockStore, transfer db.Transfer) {
				store.EXPECT().GetTransfer(gomock.Any(), gomock.Eq(transfer.ID)).
					Times(1).
					Return(transfer, nil)
				store.EXPECT().
					ApproveTransferTx(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.Transfer{}, db.ErrInsufficientFunds)
			},
			checkErr: func(t *testing.T, transfer db.Transfer, err error) {
				var short *InsufficientFundsError
				require.ErrorAs(t, err, &short)
			},
		},
		{
			name:     "LostRaceAgainstReject",
			transfer: randomTransfer(db.TransferTypeVaultToBranch, db.TransferStatusPending),
			actor:    "supervisor.one",
			buildStubs: func(store *mockdb.MockStore, transfer db.Transfer) {
				rejected := transfer
				rejected.Status = db.TransferStatusRejected
				rejected.Version++

				store.EXPECT().GetTransfer(gomock.Any(), gomock.Eq(transfer.ID)).
					Times(1).
					Return(transfer, nil)
				store.EXPECT().
					ApproveTransferTx(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.Transfer{}, db.ErrVersionConflict)
				store.EXPECT().GetTransfer(gomock.Any(), gomock.Eq(transfer.ID)).
					Times(1).
					Return(rejected, nil)
			},
			checkErr: func(t *testing.T, transfer db.Transfer, err error) {
				var invalid *InvalidTransitionError
				require.ErrorAs(t, err, &invalid)
				require.Equal(t, string(db.TransferStatusRejected), invalid.Current)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			tc.buildStubs(store, tc.transfer)

			coordinator := newTestCoordinator(store)
			updated, err := coordinator.ApproveTransfer(context.Background(), tc.transfer.ID, tc.actor, "")
			tc.checkErr(t, updated, err)
		})
	}
}

func TestCancelTransfer(t *testing.T) {
	t.Run("ApprovedVaultTransferReleasesReservation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		transfer := randomTransfer(db.TransferTypeBranchToVault, db.TransferStatusApproved)

		store := mockdb.NewMockStore(ctrl)
		store.EXPECT().GetTransfer(gomock.Any(), gomock.Eq(transfer.ID)).
			Times(1).
			Return(transfer, nil)
		store.EXPECT().
			CancelTransferTx(gomock.Any(), gomock.Any()).
			Times(1).
			DoAndReturn(func(_ context.Context, arg db.CancelTransferTxParams) (db.Transfer, error) {
				require.True(t, arg.ReleaseReservation)
				cancelled := transfer
				cancelled.Status = db.TransferStatusCancelled
				return cancelled, nil
			})

		coordinator := newTestCoordinator(store)
		updated, err := coordinator.CancelTransfer(context.Background(), transfer.ID, "teller.one", "ordered in error")
		require.NoError(t, err)
		require.Equal(t, db.TransferStatusCancelled, updated.Status)
	})

	t.Run("PendingTransferReleasesNothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		transfer := randomTransfer(db.TransferTypeBranchToVault, db.TransferStatusPending)

		store := mockdb.NewMockStore(ctrl)
		store.EXPECT().GetTransfer(gomock.Any(), gomock.Eq(transfer.ID)).
			Times(1).
			Return(transfer, nil)
		store.EXPECT().
			CancelTransferTx(gomock.Any(), gomock.Any()).
			Times(1).
			DoAndReturn(func(_ context.Context, arg db.CancelTransferTxParams) (db.Transfer, error) {
				require.False(t, arg.ReleaseReservation)
				cancelled := transfer
				cancelled.Status = db.TransferStatusCancelled
				return cancelled, nil
			})

		coordinator := newTestCoordinator(store)
		_, err := coordinator.CancelTransfer(context.Background(), transfer.ID, "teller.one", "")
		require.NoError(t, err)
	})

	t.Run("SecondCancelFails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		transfer := randomTransfer(db.TransferTypeBranchToVault, db.TransferStatusCancelled)

		store := mockdb.NewMockStore(ctrl)
		store.EXPECT().GetTransfer(gomock.Any(), gomock.Eq(transfer.ID)).
			Times(1).
			Return(transfer, nil)
		store.EXPECT().CancelTransferTx(gomock.Any(), gomock.Any()).Times(0)

		coordinator := newTestCoordinator(store)
		_, err := coordinator.CancelTransfer(context.Background(), transfer.ID, "teller.one", "")

		var invalid *InvalidTransitionError
		require.ErrorAs(t, err, &invalid)
		require.Equal(t, string(db.TransferStatusCancelled), invalid.Current)
	})
}

func TestDispatchTransfer(t *testing.T) {
	t.Run("BranchToBranchCannotDispatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		transfer := randomTransfer(db.TransferTypeBranchToBranch, db.TransferStatusApproved)

		store := mockdb.NewMockStore(ctrl)
		store.EXPECT().GetTransfer(gomock.Any(), gomock.Eq(transfer.ID)).
			Times(1).
			Return(transfer, nil)
		store.EXPECT().DispatchTransfer(gomock.Any(), gomock.Any()).Times(0)

		coordinator := newTestCoordinator(store)
		_, err := coordinator.DispatchTransfer(context.Background(), transfer.ID, "courier.one", "")

		var fields ValidationError
		require.ErrorAs(t, err, &fields)
		require.Contains(t, fields, "transfer_type")
	})

	t.Run("VaultTransferDispatches", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		transfer := randomTransfer(db.TransferTypeVaultToVault, db.TransferStatusApproved)

		store := mockdb.NewMockStore(ctrl)
		store.EXPECT().GetTransfer(gomock.Any(), gomock.Eq(transfer.ID)).
			Times(1).
			Return(transfer, nil)
		store.EXPECT().
			DispatchTransfer(gomock.Any(), gomock.Any()).
			Times(1).
			DoAndReturn(func(_ context.Context, arg db.TransitionTransferParams) (db.Transfer, error) {
				inTransit := transfer
				inTransit.Status = db.TransferStatusInTransit
				return inTransit, nil
			})

		coordinator := newTestCoordinator(store)
		updated, err := coordinator.DispatchTransfer(context.Background(), transfer.ID, "courier.one", "")
		require.NoError(t, err)
		require.Equal(t, db.TransferStatusInTransit, updated.Status)
	})
}

func TestCompleteTransfer(t *testing.T) {
	t.Run("AppliesLedgerOnce", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		transfer := randomTransfer(db.TransferTypeVaultToBranch, db.TransferStatusApproved)
		completed := transfer
		completed.Status = db.TransferStatusCompleted
		completed.Version++

		store := mockdb.NewMockStore(ctrl)
		store.EXPECT().GetTransfer(gomock.Any(), gomock.Eq(transfer.ID)).
			Times(1).
			Return(transfer, nil)
		store.EXPECT().
			CompleteTransferTx(gomock.Any(), gomock.Any()).
			Times(1).
			DoAndReturn(func(_ context.Context, arg db.CompleteTransferTxParams) (db.CompleteTransferTxResult, error) {
				require.True(t, arg.ReleaseReservation)
				require.Equal(t, transfer.Version, arg.Transition.Version)
				return db.CompleteTransferTxResult{Transfer: completed}, nil
			})

		coordinator := newTestCoordinator(store)
		updated, err := coordinator.CompleteTransfer(context.Background(), transfer.ID, "teller.two")
		require.NoError(t, err)
		require.Equal(t, db.TransferStatusCompleted, updated.Status)
	})

	t.Run("RepeatCompleteIsNoOp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		transfer := randomTransfer(db.TransferTypeVaultToBranch, db.TransferStatusCompleted)

		store := mockdb.NewMockStore(ctrl)
		store.EXPECT().GetTransfer(gomock.Any(), gomock.Eq(transfer.ID)).
			Times(1).
			Return(transfer, nil)
		// No second ledger mutation.
		store.EXPECT().CompleteTransferTx(gomock.Any(), gomock.Any()).Times(0)

		coordinator := newTestCoordinator(store)
		updated, err := coordinator.CompleteTransfer(context.Background(), transfer.ID, "teller.two")
		require.NoError(t, err)
		require.Equal(t, db.TransferStatusCompleted, updated.Status)
	})

	t.Run("LosingCompleteRaceStillSucceeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		transfer := randomTransfer(db.TransferTypeVaultToBranch, db.TransferStatusApproved)
		completed := transfer
		completed.Status = db.TransferStatusCompleted
		completed.Version++

		store := mockdb.NewMockStore(ctrl)
		store.EXPECT().GetTransfer(gomock.Any(), gomock.Eq(transfer.ID)).
			Times(1).
			Return(transfer, nil)
		store.EXPECT().
			CompleteTransferTx(gomock.Any(), gomock.Any()).
			Times(1).
			Return(db.CompleteTransferTxResult{}, db.ErrVersionConflict)
		store.EXPECT().GetTransfer(gomock.Any(), gomock.Eq(transfer.ID)).
			Times(1).
			Return(completed, nil)

		coordinator := newTestCoordinator(store)
		updated, err := coordinator.CompleteTransfer(context.Background(), transfer.ID, "teller.two")
		require.NoError(t, err)
		require.Equal(t, db.TransferStatusCompleted, updated.Status)
	})

	t.Run("CompletePendingFails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		transfer := randomTransfer(db.TransferTypeVaultToBranch, db.TransferStatusPending)

		store := mockdb.NewMockStore(ctrl)
		store.EXPECT().GetTransfer(gomock.Any(), gomock.Eq(transfer.ID)).
			Times(1).
			Return(transfer, nil)
		store.EXPECT().CompleteTransferTx(gomock.Any(), gomock.Any()).Times(0)

		coordinator := newTestCoordinator(store)
		_, err := coordinator.CompleteTransfer(context.Background(), transfer.ID, "teller.two")

		var invalid *InvalidTransitionError
		require.ErrorAs(t, err, &invalid)
	})

	t.Run("InsufficientFundsAtCompletion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		transfer := randomTransfer(db.TransferTypeBranchToBranch, db.TransferStatusApproved)

		store := mockdb.NewMockStore(ctrl)
		store.EXPECT().GetTransfer(gomock.Any(), gomock.Eq(transfer.ID)).
			Times(1).
			Return(transfer, nil)
		store.EXPECT().
			CompleteTransferTx(gomock.Any(), gomock.Any()).
			Times(1).
			Return(db.CompleteTransferTxResult{}, db.ErrInsufficientFunds)

		coordinator := newTestCoordinator(store)
		_, err := coordinator.CompleteTransfer(context.Background(), transfer.ID, "teller.two")

		var short *InsufficientFundsError
		require.ErrorAs(t, err, &short)
		require.Equal(t, transfer.SourceID, short.HolderID)
		require.True(t, short.Requested.Equal(transfer.Amount))
	})
}

func TestRejectTransfer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	transfer := randomTransfer(db.TransferTypeBranchToBranch, db.TransferStatusPending)

	store := mockdb.NewMockStore(ctrl)
	store.EXPECT().GetTransfer(gomock.Any(), gomock.Eq(transfer.ID)).
		Times(1).
		Return(transfer, nil)
	store.EXPECT().
		RejectTransfer(gomock.Any(), gomock.Any()).
		Times(1).
		DoAndReturn(func(_ context.Context, arg db.TransitionTransferParams) (db.Transfer, error) {
			require.Equal(t, "supervisor.one", arg.Actor)
			require.Equal(t, "counterfeit suspicion", arg.Notes.String)
			rejected := transfer
			rejected.Status = db.TransferStatusRejected
			return rejected, nil
		})

	coordinator := newTestCoordinator(store)
	updated, err := coordinator.RejectTransfer(context.Background(), transfer.ID, "supervisor.one", "counterfeit suspicion")
	require.NoError(t, err)
	require.Equal(t, db.TransferStatusRejected, updated.Status)
}

func TestGetTransferNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	store := mockdb.NewMockStore(ctrl)
	store.EXPECT().GetTransfer(gomock.Any(), gomock.Eq(id)).
		Times(1).
		Return(db.Transfer{}, db.ErrRecordNotFound)

	coordinator := newTestCoordinator(store)
	_, err := coordinator.GetTransfer(context.Background(), id)
	require.ErrorIs(t, err, db.ErrRecordNotFound)
}
