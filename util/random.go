package util

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

func init() {
	rand.Seed(time.Now().UnixNano())
}

func RandomInt(min, max int64) int64 {
	return min + rand.Int63n(max-min+1)
}

func RandomString(n int) string {
	var sb strings.Builder

	k := len(alphabet)

	for i := 0; i < n; i++ {
		c := alphabet[rand.Intn(k)]
		sb.WriteByte(c)
	}

	return sb.String()
}

func RandomAmount() decimal.Decimal {
	return decimal.New(RandomInt(1, 100000), -2)
}

func RandomCurrencyCode() string {
	codes := []string{"USD", "EUR", "GBP", "VND"}
	n := len(codes)
	return codes[rand.Intn(n)]
}

func RandomActor() string {
	return RandomString(6)
}

func RandomEmail() string {
	return fmt.Sprintf("%s@gmail.com", RandomString(6))
}

func RandomReferenceNumber() string {
	return fmt.Sprintf("TRF-%s", strings.ToUpper(RandomString(8)))
}
