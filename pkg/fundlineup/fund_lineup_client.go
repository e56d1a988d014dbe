package fundlineup

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gradeyour401k/internal/domain"

	"github.com/go-resty/resty/v2"
	"github.com/gocarina/gocsv"
)

// Row is one fund of a provider lineup export:
//
//	symbol,name,asset_class,style,expense_ratio,active
type Row struct {
	Symbol       string `csv:"symbol"`
	Name         string `csv:"name"`
	AssetClass   string `csv:"asset_class"`
	Style        string `csv:"style"`
	ExpenseRatio string `csv:"expense_ratio"`
	Active       string `csv:"active"`
}

type Client struct {
	client *resty.Client
}

func New(timeout time.Duration) Client {
	return Client{
		client: resty.New().SetTimeout(timeout),
	}
}

// Fetch downloads a lineup export
func (c Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/csv").
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch fund lineup from %s: %w", url, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("failed to fetch fund lineup from %s: http %d", url, resp.StatusCode())
	}

	return resp.Body(), nil
}

// Parse reads a lineup csv into provider symbols. Tickers are upper-cased,
// an empty active column means active and expense ratios may be written as
// fractions (0.0015) or percents (0.15%).
func Parse(provider domain.Provider, data []byte) ([]domain.Symbol, error) {
	rows := []Row{}
	err := gocsv.UnmarshalBytes(data, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fund lineup: %w", err)
	}

	seen := map[string]bool{}
	out := []domain.Symbol{}
	for i, r := range rows {
		line := i + 2
		ticker := strings.ToUpper(strings.TrimSpace(r.Symbol))
		if ticker == "" {
			return nil, fmt.Errorf("line %d: missing symbol", line)
		}
		if seen[ticker] {
			return nil, fmt.Errorf("line %d: duplicate symbol %s", line, ticker)
		}
		seen[ticker] = true

		assetClass, err := domain.NewAssetClass(r.AssetClass)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		expenseRatio, err := parseExpenseRatio(r.ExpenseRatio)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		active, err := parseActive(r.Active)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		out = append(out, domain.Symbol{
			Symbol:       ticker,
			Provider:     provider,
			Name:         optional(r.Name),
			AssetClass:   assetClass,
			Style:        optional(r.Style),
			Active:       active,
			ExpenseRatio: expenseRatio,
		})
	}

	return out, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func parseExpenseRatio(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	percent := strings.HasSuffix(s, "%")
	f, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid expense ratio %q", s)
	}
	if percent {
		f /= 100
	}
	if f < 0 {
		return nil, fmt.Errorf("negative expense ratio %q", s)
	}
	return &f, nil
}

func parseActive(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "true", "1", "yes", "y":
		return true, nil
	case "false", "0", "no", "n":
		return false, nil
	}
	return false, fmt.Errorf("invalid active flag %q", s)
}
