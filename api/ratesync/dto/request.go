package ratesync

import "github.com/shopspring/decimal"

type InitiateSyncRequest struct {
	BaseCurrency     string   `json:"baseCurrency" binding:"required,currencycode"`
	Source           string   `json:"source" binding:"required,ratesource"`
	TargetCurrencies []string `json:"targetCurrencies" binding:"required,min=1,dive,currencycode"`
}

type ApproveSyncRequest struct {
	Notes            string           `json:"notes" binding:"omitempty,max=500"`
	SpreadPercentage *decimal.Decimal `json:"spreadPercentage"`
}

type RejectSyncRequest struct {
	Notes string `json:"notes" binding:"omitempty,max=500"`
}
