package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"gradeyour401k/internal/db/models/postgres/public/model"
	"gradeyour401k/internal/db/models/postgres/public/table"
	"gradeyour401k/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

type SymbolRepository interface {
	List(tx *sql.Tx, filter SymbolListFilter) ([]domain.Symbol, error)
	Upsert(tx *sql.Tx, symbols []domain.Symbol) error
	DeactivateMissing(tx *sql.Tx, provider domain.Provider, keep []string) (int64, error)
}

type symbolRepositoryHandler struct {
	Db *sql.DB
}

func NewSymbolRepository(db *sql.DB) SymbolRepository {
	return symbolRepositoryHandler{Db: db}
}

type SymbolListFilter struct {
	Provider     *domain.Provider
	Symbols      []string
	AssetClasses []domain.AssetClass
	ActiveOnly   bool
}

func (h symbolRepositoryHandler) List(tx *sql.Tx, filter SymbolListFilter) ([]domain.Symbol, error) {
	whereClauses := []postgres.BoolExpression{postgres.Bool(true)}
	if filter.Provider != nil {
		whereClauses = append(whereClauses, table.Symbol.Provider.EQ(postgres.String(string(*filter.Provider))))
	}
	if len(filter.Symbols) > 0 {
		symbols := []postgres.Expression{}
		for _, s := range filter.Symbols {
			symbols = append(symbols, postgres.String(strings.ToUpper(strings.TrimSpace(s))))
		}
		whereClauses = append(whereClauses, table.Symbol.Symbol.IN(symbols...))
	}
	if len(filter.AssetClasses) > 0 {
		classes := []postgres.Expression{}
		for _, c := range filter.AssetClasses {
			classes = append(classes, postgres.String(string(c)))
		}
		whereClauses = append(whereClauses, table.Symbol.AssetClass.IN(classes...))
	}
	if filter.ActiveOnly {
		whereClauses = append(whereClauses, table.Symbol.Active.IS_TRUE())
	}

	query := table.Symbol.
		SELECT(table.Symbol.AllColumns).
		WHERE(postgres.AND(whereClauses...)).
		ORDER_BY(table.Symbol.Provider.ASC(), table.Symbol.Symbol.ASC())

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	result := []model.Symbol{}
	err := query.Query(db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list symbols: %w", err)
	}

	out := []domain.Symbol{}
	for _, m := range result {
		out = append(out, symbolFromModel(m))
	}

	return out, nil
}

func (h symbolRepositoryHandler) Upsert(tx *sql.Tx, symbols []domain.Symbol) error {
	if len(symbols) == 0 {
		return nil
	}

	now := time.Now().UTC()
	models := []model.Symbol{}
	for _, s := range symbols {
		models = append(models, model.Symbol{
			Symbol:       strings.ToUpper(strings.TrimSpace(s.Symbol)),
			Provider:     string(s.Provider),
			Name:         s.Name,
			AssetClass:   string(s.AssetClass),
			Style:        s.Style,
			ExpenseRatio: s.ExpenseRatio,
			Active:       s.Active,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}

	query := table.Symbol.
		INSERT(table.Symbol.MutableColumns).
		MODELS(models).
		ON_CONFLICT(table.Symbol.Provider, table.Symbol.Symbol).
		DO_UPDATE(
			postgres.SET(
				table.Symbol.Name.SET(table.Symbol.EXCLUDED.Name),
				table.Symbol.AssetClass.SET(table.Symbol.EXCLUDED.AssetClass),
				table.Symbol.Style.SET(table.Symbol.EXCLUDED.Style),
				table.Symbol.ExpenseRatio.SET(table.Symbol.EXCLUDED.ExpenseRatio),
				table.Symbol.Active.SET(table.Symbol.EXCLUDED.Active),
				table.Symbol.UpdatedAt.SET(table.Symbol.EXCLUDED.UpdatedAt),
			),
		)

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to upsert %d symbols: %w", len(models), err)
	}

	return nil
}

// DeactivateMissing marks every active symbol of the provider that is not in
// keep as inactive and returns how many rows changed.
func (h symbolRepositoryHandler) DeactivateMissing(tx *sql.Tx, provider domain.Provider, keep []string) (int64, error) {
	whereClauses := []postgres.BoolExpression{
		table.Symbol.Provider.EQ(postgres.String(string(provider))),
		table.Symbol.Active.IS_TRUE(),
	}
	if len(keep) > 0 {
		symbols := []postgres.Expression{}
		for _, s := range keep {
			symbols = append(symbols, postgres.String(strings.ToUpper(strings.TrimSpace(s))))
		}
		whereClauses = append(whereClauses, table.Symbol.Symbol.NOT_IN(symbols...))
	}

	query := table.Symbol.
		UPDATE(table.Symbol.Active, table.Symbol.UpdatedAt).
		SET(postgres.Bool(false), postgres.TimestampzT(time.Now().UTC())).
		WHERE(postgres.AND(whereClauses...))

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	res, err := query.Exec(db)
	if err != nil {
		return 0, fmt.Errorf("failed to deactivate %s symbols: %w", provider, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deactivated symbols: %w", err)
	}

	return n, nil
}

func symbolFromModel(m model.Symbol) domain.Symbol {
	return domain.Symbol{
		Symbol:       m.Symbol,
		Provider:     domain.Provider(m.Provider),
		Name:         m.Name,
		AssetClass:   domain.AssetClass(m.AssetClass),
		Style:        m.Style,
		Active:       m.Active,
		ExpenseRatio: m.ExpenseRatio,
	}
}
