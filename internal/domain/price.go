package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type AssetPrice struct {
	Symbol string
	Price  decimal.Decimal
	Date   time.Time
}

// ScoreInputs are the price-derived metrics a score expression can use.
type ScoreInputs struct {
	Return3M   float64
	Return6M   float64
	Return12M  float64
	Volatility float64
}
