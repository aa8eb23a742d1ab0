package validations

import (
	"regexp"

	db "github.com/ChokeGuy/exchange-office/db/sqlc"
	"github.com/go-playground/validator/v10"
)

var currencyCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// ValidCurrencyCode accepts three-letter uppercase currency codes. Whether
// the code is actually active is decided against the directory, not here.
var ValidCurrencyCode validator.Func = func(fieldLevel validator.FieldLevel) bool {
	if code, ok := fieldLevel.Field().Interface().(string); ok {
		return currencyCodePattern.MatchString(code)
	}
	return false
}

// ValidTransferType accepts the closed set of transfer variants.
var ValidTransferType validator.Func = func(fieldLevel validator.FieldLevel) bool {
	value, ok := fieldLevel.Field().Interface().(string)
	if !ok {
		return false
	}
	switch db.TransferType(value) {
	case db.TransferTypeBranchToBranch,
		db.TransferTypeVaultToBranch,
		db.TransferTypeBranchToVault,
		db.TransferTypeVaultToVault:
		return true
	}
	return false
}

// ValidRateSource accepts the rate-sync source discriminator.
var ValidRateSource validator.Func = func(fieldLevel validator.FieldLevel) bool {
	value, ok := fieldLevel.Field().Interface().(string)
	if !ok {
		return false
	}
	return value == "auto" || value == "manual"
}
