package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// HTTPProvider fetches exchange rates from a JSON endpoint of the shape
// {"base": "USD", "rates": {"EUR": "0.92", ...}}. Rates arrive as strings so
// no precision is lost in transit.
type HTTPProvider struct {
	baseUrl string
	client  *http.Client
}

func NewHTTPProvider(baseUrl string) *HTTPProvider {
	return &HTTPProvider{
		baseUrl: strings.TrimRight(baseUrl, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type ratesResponse struct {
	Base  string                     `json:"base"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

// Fetch returns the rate of every requested target against base. Missing
// targets are an error; the caller relies on a complete table.
func (p *HTTPProvider) Fetch(ctx context.Context, base string, targets []string) (map[string]decimal.Decimal, error) {
	query := url.Values{}
	query.Set("base", base)
	query.Set("symbols", strings.Join(targets, ","))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseUrl+"/latest?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rate provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rate provider returned status %d", resp.StatusCode)
	}

	var body ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("rate provider returned malformed body: %w", err)
	}

	rates := make(map[string]decimal.Decimal, len(targets))
	for _, target := range targets {
		rate, ok := body.Rates[target]
		if !ok {
			return nil, fmt.Errorf("rate provider returned no rate for %s/%s", base, target)
		}
		rates[target] = rate
	}
	return rates, nil
}
