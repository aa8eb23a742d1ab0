package engine

import (
	"strings"
	"time"

	mockdb "github.com/ChokeGuy/exchange-office/db/mock"
	db "github.com/ChokeGuy/exchange-office/db/sqlc"
	"github.com/ChokeGuy/exchange-office/util"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
)

func randomCurrency(code string, decimalPlaces int32) db.Currency {
	return db.Currency{
		ID:            uuid.New(),
		Code:          code,
		Name:          code + " currency",
		DecimalPlaces: decimalPlaces,
		IsActive:      true,
	}
}

func randomBranch() db.Branch {
	return db.Branch{
		ID:   uuid.New(),
		Code: strings.ToUpper(util.RandomString(4)),
		Name: util.RandomString(8),
	}
}

func randomVault() db.Vault {
	return db.Vault{
		ID:   uuid.New(),
		Code: strings.ToUpper(util.RandomString(4)),
		Name: util.RandomString(8),
	}
}

// stubDirectory satisfies the reference-data reads the directory cache
// performs on its first lookup.
func stubDirectory(store *mockdb.MockStore, currencies []db.Currency, branches []db.Branch, vaults []db.Vault) {
	store.EXPECT().ListActiveCurrencies(gomock.Any()).Return(currencies, nil).AnyTimes()
	store.EXPECT().ListBranches(gomock.Any()).Return(branches, nil).AnyTimes()
	store.EXPECT().ListVaults(gomock.Any()).Return(vaults, nil).AnyTimes()
}

func newTestCoordinator(store db.Store) *Coordinator {
	return NewCoordinator(store, NewDirectory(store, time.Minute))
}

func randomTransfer(transferType db.TransferType, status db.TransferStatus) db.Transfer {
	return db.Transfer{
		ID:            uuid.New(),
		TransferType:  transferType,
		CurrencyID:    uuid.New(),
		Amount:        util.RandomAmount(),
		SourceID:      uuid.New(),
		DestinationID: uuid.New(),
		Status:        status,
		InitiatedBy:   util.RandomActor(),
		Version:       1,
	}
}
