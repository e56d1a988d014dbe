package repository

import (
	"fmt"
	"time"

	"gradeyour401k/internal/db/models/postgres/public/model"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
)

// MarketDataRepository fetches daily adjusted closes from Yahoo Finance
type MarketDataRepository interface {
	GetAdjustedPrices(symbol string, start, end time.Time) ([]model.AdjustedPrice, error)
}

type marketDataRepositoryHandler struct{}

func NewMarketDataRepository() MarketDataRepository {
	return marketDataRepositoryHandler{}
}

func (h marketDataRepositoryHandler) GetAdjustedPrices(symbol string, start, end time.Time) ([]model.AdjustedPrice, error) {
	params := &chart.Params{
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Symbol:   symbol,
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	models := []model.AdjustedPrice{}
	for iter.Next() {
		ts := time.Unix(int64(iter.Bar().Timestamp), 0).UTC()
		models = append(models, model.AdjustedPrice{
			Symbol:    symbol,
			Date:      time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC),
			Price:     iter.Bar().AdjClose.InexactFloat64(),
			CreatedAt: time.Now().UTC(),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to get prices for %s: %w", symbol, err)
	}

	return models, nil
}
