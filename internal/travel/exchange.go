package travel

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

type exchangeResponse struct {
	Rates map[string]float64 `json:"rates"`
}

// GetExchangeRate fetches the latest conversion rate between two currency
// codes. The provider needs no credential.
func (c *APIClient) GetExchangeRate(ctx context.Context, from, to string) (*ExchangeRate, error) {
	from = strings.ToUpper(from)
	to = strings.ToUpper(to)
	u := fmt.Sprintf("%s/latest/%s", c.cfg.ExchangeBaseURL, url.PathEscape(from))
	var resp exchangeResponse
	if err := getJSON(ctx, c.httpClient, u, &resp); err != nil {
		return nil, fmt.Errorf("exchange rate %s-%s: %w", from, to, err)
	}
	rate, ok := resp.Rates[to]
	if !ok {
		return nil, fmt.Errorf("exchange rate %s-%s: %w", from, to, ErrNotFound)
	}
	return &ExchangeRate{Rate: rate, FromCurrency: from, ToCurrency: to}, nil
}
