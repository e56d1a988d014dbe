package service

import (
	"context"
	"fmt"
	"time"

	"gradeyour401k/internal/calculator"
	"gradeyour401k/internal/db/models/postgres/public/model"
	"gradeyour401k/internal/domain"
	"gradeyour401k/internal/logger"
	"gradeyour401k/internal/repository"
)

type ScoreService interface {
	// IngestScores refreshes prices and stores a score for every active
	// equity and bond ticker. Tickers without enough price history are
	// skipped and left unscored.
	IngestScores(ctx context.Context, asOf time.Time) (*IngestScoresResult, error)
}

type IngestScoresResult struct {
	AsOf    time.Time `json:"asOf"`
	Tickers int       `json:"tickers"`
	Scored  int       `json:"scored"`
	Skipped []string  `json:"skipped"`
}

type scoreServiceHandler struct {
	SymbolRepository        repository.SymbolRepository
	AdjustedPriceRepository repository.AdjustedPriceRepository
	MarketDataRepository    repository.MarketDataRepository
	SymbolScoreRepository   repository.SymbolScoreRepository
	Expression              string
}

func NewScoreService(
	symbolRepository repository.SymbolRepository,
	adjustedPriceRepository repository.AdjustedPriceRepository,
	marketDataRepository repository.MarketDataRepository,
	symbolScoreRepository repository.SymbolScoreRepository,
	expression string,
) ScoreService {
	if expression == "" {
		expression = calculator.DefaultScoreExpression
	}
	return scoreServiceHandler{
		SymbolRepository:        symbolRepository,
		AdjustedPriceRepository: adjustedPriceRepository,
		MarketDataRepository:    marketDataRepository,
		SymbolScoreRepository:   symbolScoreRepository,
		Expression:              expression,
	}
}

type scoreCandidate struct {
	symbol       string
	expenseRatio *float64
}

// distinctTickers collapses provider symbols into tickers, keeping the
// first known expense ratio.
func distinctTickers(symbols []domain.Symbol) []scoreCandidate {
	out := []scoreCandidate{}
	index := map[string]int{}
	for _, s := range symbols {
		if i, ok := index[s.Symbol]; ok {
			if out[i].expenseRatio == nil {
				out[i].expenseRatio = s.ExpenseRatio
			}
			continue
		}
		index[s.Symbol] = len(out)
		out = append(out, scoreCandidate{
			symbol:       s.Symbol,
			expenseRatio: s.ExpenseRatio,
		})
	}
	return out
}

func (h scoreServiceHandler) IngestScores(ctx context.Context, asOf time.Time) (*IngestScoresResult, error) {
	lg := logger.FromContext(ctx)

	symbols, err := h.SymbolRepository.List(nil, repository.SymbolListFilter{
		AssetClasses: []domain.AssetClass{domain.AssetClassEquity, domain.AssetClassBond},
		ActiveOnly:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list symbols: %w", err)
	}

	candidates := distinctTickers(symbols)
	result := &IngestScoresResult{
		AsOf:    asOf,
		Tickers: len(candidates),
		Skipped: []string{},
	}

	scores := []model.SymbolScore{}
	for _, c := range candidates {
		score, err := h.scoreSymbol(c, asOf)
		if err != nil {
			lg.Warnw("skipping score", "symbol", c.symbol, "asOf", asOf.Format(time.DateOnly), "error", err)
			result.Skipped = append(result.Skipped, c.symbol)
			continue
		}
		scores = append(scores, *score)
	}

	if len(scores) > 0 {
		err = h.SymbolScoreRepository.AddMany(nil, scores)
		if err != nil {
			return nil, err
		}
	}
	result.Scored = len(scores)

	lg.Infow("ingested scores", "asOf", asOf.Format(time.DateOnly), "tickers", result.Tickers, "scored", result.Scored)

	return result, nil
}

func (h scoreServiceHandler) scoreSymbol(c scoreCandidate, asOf time.Time) (*model.SymbolScore, error) {
	prices, err := h.loadPrices(c.symbol, asOf)
	if err != nil {
		return nil, err
	}

	inputs, err := calculator.CalculateScoreInputs(prices, asOf)
	if err != nil {
		return nil, err
	}

	score, err := calculator.EvaluateScoreExpression(h.Expression, *inputs, c.expenseRatio)
	if err != nil {
		return nil, err
	}

	return &model.SymbolScore{
		Symbol:     c.symbol,
		AsOf:       asOf,
		Score:      score,
		Return3m:   &inputs.Return3M,
		Return6m:   &inputs.Return6M,
		Return12m:  &inputs.Return12M,
		Volatility: &inputs.Volatility,
		CreatedAt:  time.Now().UTC(),
	}, nil
}

// loadPrices tops up stored prices from market data when they end before
// asOf, then reads the trailing year back from the db.
func (h scoreServiceHandler) loadPrices(symbol string, asOf time.Time) ([]domain.AssetPrice, error) {
	start := asOf.AddDate(-1, 0, -7)

	latest, err := h.AdjustedPriceRepository.LatestDate(nil, symbol)
	if err != nil {
		return nil, err
	}

	if latest == nil || latest.Before(asOf) {
		fetchStart := start
		if latest != nil && latest.After(start) {
			fetchStart = latest.AddDate(0, 0, 1)
		}
		prices, err := h.MarketDataRepository.GetAdjustedPrices(symbol, fetchStart, asOf.AddDate(0, 0, 1))
		if err != nil {
			return nil, err
		}
		err = h.AdjustedPriceRepository.Add(nil, prices)
		if err != nil {
			return nil, err
		}
	}

	return h.AdjustedPriceRepository.List(nil, symbol, start, asOf)
}
