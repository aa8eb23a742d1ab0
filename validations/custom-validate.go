package validations

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// CustomErrorMessage maps field names and validation tags to more user-friendly error messages.
var CustomErrorMessage = map[string]map[string]string{
	"CurrencyID": {
		"required": "Currency field is required.",
		"uuid":     "Currency must be a valid identifier.",
	},
	"TransferType": {
		"required":     "Transfer type is required.",
		"transfertype": "Unknown transfer type.",
	},
	"Amount": {
		"required": "Amount is required.",
	},
	"BaseCurrency": {
		"required":     "Base currency is required.",
		"currencycode": "Invalid currency code format.",
	},
	"TargetCurrencies": {
		"required": "At least one target currency is required.",
	},
}

// FieldErrors converts validator errors into the field-keyed map the API
// returns; the client must clear every entry before resubmitting.
func FieldErrors(err error) map[string]string {
	fields := map[string]string{}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		fields["request"] = "Invalid input."
		return fields
	}
	for _, fieldErr := range ve {
		field := snakeCase(fieldErr.Field())
		tag := fieldErr.Tag()
		if msg, ok := CustomErrorMessage[fieldErr.Field()][tag]; ok {
			fields[field] = msg
		} else {
			fields[field] = fmt.Sprintf("Failed validation on the '%s' rule.", tag)
		}
	}
	return fields
}

// snakeCase converts a Go field name to the snake_case key convention the
// engine's field maps use, so clients see one convention regardless of which
// layer rejected the field (CurrencyID becomes currency_id).
func snakeCase(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (!unicode.IsUpper(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// HandleValidationError handles binding errors and sends the field map to the client.
func HandleValidationError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, gin.H{
		"statusCode": http.StatusBadRequest,
		"message":    "validation failed",
		"errors":     FieldErrors(err),
		"data":       nil,
	})
}
