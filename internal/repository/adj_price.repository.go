package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gradeyour401k/internal/db/models/postgres/public/model"
	. "gradeyour401k/internal/db/models/postgres/public/table"
	"gradeyour401k/internal/domain"

	. "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/shopspring/decimal"
)

type AdjustedPriceRepository interface {
	Add(tx *sql.Tx, prices []model.AdjustedPrice) error
	List(tx *sql.Tx, symbol string, start, end time.Time) ([]domain.AssetPrice, error)
	// LatestDate returns nil when no prices are stored for the symbol
	LatestDate(tx *sql.Tx, symbol string) (*time.Time, error)
}

type adjustedPriceRepositoryHandler struct {
	Db *sql.DB
}

func NewAdjustedPriceRepository(db *sql.DB) AdjustedPriceRepository {
	return adjustedPriceRepositoryHandler{Db: db}
}

func (h adjustedPriceRepositoryHandler) Add(tx *sql.Tx, adjPrices []model.AdjustedPrice) error {
	if len(adjPrices) == 0 {
		return nil
	}

	query := AdjustedPrice.
		INSERT(AdjustedPrice.MutableColumns).
		MODELS(adjPrices).
		ON_CONFLICT(
			AdjustedPrice.Symbol, AdjustedPrice.Date,
		).DO_UPDATE(
		SET(
			AdjustedPrice.Price.SET(AdjustedPrice.EXCLUDED.Price),
		),
	)

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to add adjusted prices to db: %w", err)
	}

	return nil
}

func (h adjustedPriceRepositoryHandler) List(tx *sql.Tx, symbol string, start, end time.Time) ([]domain.AssetPrice, error) {
	query := AdjustedPrice.
		SELECT(AdjustedPrice.AllColumns).
		WHERE(
			AND(
				AdjustedPrice.Symbol.EQ(String(symbol)),
				AdjustedPrice.Date.BETWEEN(DateT(start), DateT(end)),
			),
		).
		ORDER_BY(AdjustedPrice.Date.ASC())

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	result := []model.AdjustedPrice{}
	err := query.Query(db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list prices for %s: %w", symbol, err)
	}

	out := []domain.AssetPrice{}
	for _, p := range result {
		out = append(out, domain.AssetPrice{
			Symbol: p.Symbol,
			Date:   p.Date,
			Price:  decimal.NewFromFloat(p.Price),
		})
	}

	return out, nil
}

func (h adjustedPriceRepositoryHandler) LatestDate(tx *sql.Tx, symbol string) (*time.Time, error) {
	query := AdjustedPrice.
		SELECT(AdjustedPrice.AllColumns).
		WHERE(AdjustedPrice.Symbol.EQ(String(symbol))).
		ORDER_BY(AdjustedPrice.Date.DESC()).
		LIMIT(1)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	result := model.AdjustedPrice{}
	err := query.Query(db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest price date for %s: %w", symbol, err)
	}

	return &result.Date, nil
}
