package service

import (
	"context"
	"database/sql"
	"fmt"

	"gradeyour401k/internal/domain"
	"gradeyour401k/internal/logger"
	"gradeyour401k/internal/repository"
	"gradeyour401k/pkg/fundlineup"
)

// SymbolImportService replaces a provider's fund lineup. Symbols missing
// from an import are deactivated, never deleted, so old snapshots keep
// resolving.
type SymbolImportService interface {
	ImportCsv(ctx context.Context, provider domain.Provider, data []byte) (*ImportSymbolsResult, error)
	ImportFromUrl(ctx context.Context, provider domain.Provider, url string) (*ImportSymbolsResult, error)
}

type LineupFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

type ImportSymbolsResult struct {
	Provider    domain.Provider `json:"provider"`
	Imported    int             `json:"imported"`
	Active      int             `json:"active"`
	Deactivated int64           `json:"deactivated"`
}

type symbolImportServiceHandler struct {
	Db               *sql.DB
	SymbolRepository repository.SymbolRepository
	Fetcher          LineupFetcher
}

func NewSymbolImportService(
	db *sql.DB,
	symbolRepository repository.SymbolRepository,
	fetcher LineupFetcher,
) SymbolImportService {
	return symbolImportServiceHandler{
		Db:               db,
		SymbolRepository: symbolRepository,
		Fetcher:          fetcher,
	}
}

func (h symbolImportServiceHandler) ImportFromUrl(ctx context.Context, provider domain.Provider, url string) (*ImportSymbolsResult, error) {
	if h.Fetcher == nil {
		return nil, fmt.Errorf("no lineup fetcher configured")
	}
	data, err := h.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	return h.ImportCsv(ctx, provider, data)
}

func (h symbolImportServiceHandler) ImportCsv(ctx context.Context, provider domain.Provider, data []byte) (*ImportSymbolsResult, error) {
	symbols, err := fundlineup.Parse(provider, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if len(symbols) == 0 {
		return nil, fmt.Errorf("%w: fund lineup for %s has no rows", ErrInvalidInput, provider)
	}

	tx, err := h.Db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := h.importSymbols(ctx, tx, provider, symbols)
	if err != nil {
		return nil, err
	}

	err = tx.Commit()
	if err != nil {
		return nil, fmt.Errorf("failed to commit symbol import: %w", err)
	}

	return result, nil
}

func (h symbolImportServiceHandler) importSymbols(ctx context.Context, tx *sql.Tx, provider domain.Provider, symbols []domain.Symbol) (*ImportSymbolsResult, error) {
	err := h.SymbolRepository.Upsert(tx, symbols)
	if err != nil {
		return nil, err
	}

	keep := []string{}
	for _, s := range symbols {
		if s.Active {
			keep = append(keep, s.Symbol)
		}
	}
	deactivated, err := h.SymbolRepository.DeactivateMissing(tx, provider, keep)
	if err != nil {
		return nil, err
	}

	result := &ImportSymbolsResult{
		Provider:    provider,
		Imported:    len(symbols),
		Active:      len(keep),
		Deactivated: deactivated,
	}
	logger.FromContext(ctx).Infow(
		"imported fund lineup",
		"provider", provider,
		"imported", result.Imported,
		"active", result.Active,
		"deactivated", result.Deactivated,
	)

	return result, nil
}
