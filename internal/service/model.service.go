package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gradeyour401k/internal/calculator"
	"gradeyour401k/internal/domain"
	"gradeyour401k/internal/logger"
	"gradeyour401k/internal/repository"
)

type ModelService interface {
	// BuildSnapshot builds and stores the model for one provider and
	// profile, replacing any model already stored for asOf
	BuildSnapshot(ctx context.Context, asOf time.Time, provider domain.Provider, profile domain.Profile) (*domain.Snapshot, error)
	// BuildAll builds every provider and model profile. A failed build does
	// not stop the others.
	BuildAll(ctx context.Context, asOf time.Time) ([]domain.Snapshot, error)
	// GetLatest returns nil when no model was ever built
	GetLatest(ctx context.Context, provider domain.Provider, profile domain.Profile) (*domain.Snapshot, error)
}

type modelServiceHandler struct {
	Db                         *sql.DB
	Builder                    calculator.ModelBuilder
	SymbolRepository           repository.SymbolRepository
	SymbolScoreRepository      repository.SymbolScoreRepository
	AllocationTargetRepository repository.AllocationTargetRepository
	ModelSnapshotRepository    repository.ModelSnapshotRepository
	SnapshotCacheRepository    repository.SnapshotCacheRepository
}

func NewModelService(
	db *sql.DB,
	builder calculator.ModelBuilder,
	symbolRepository repository.SymbolRepository,
	symbolScoreRepository repository.SymbolScoreRepository,
	allocationTargetRepository repository.AllocationTargetRepository,
	modelSnapshotRepository repository.ModelSnapshotRepository,
	snapshotCacheRepository repository.SnapshotCacheRepository,
) ModelService {
	return modelServiceHandler{
		Db:                         db,
		Builder:                    builder,
		SymbolRepository:           symbolRepository,
		SymbolScoreRepository:      symbolScoreRepository,
		AllocationTargetRepository: allocationTargetRepository,
		ModelSnapshotRepository:    modelSnapshotRepository,
		SnapshotCacheRepository:    snapshotCacheRepository,
	}
}

func (h modelServiceHandler) BuildSnapshot(ctx context.Context, asOf time.Time, provider domain.Provider, profile domain.Profile) (*domain.Snapshot, error) {
	tx, err := h.Db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	snapshot, err := h.buildAndStore(ctx, tx, asOf, provider, profile)
	if err != nil {
		return nil, err
	}

	err = tx.Commit()
	if err != nil {
		return nil, fmt.Errorf("failed to commit snapshot: %w", err)
	}

	h.cacheIfLatest(ctx, *snapshot)

	return snapshot, nil
}

func (h modelServiceHandler) buildAndStore(ctx context.Context, tx *sql.Tx, asOf time.Time, provider domain.Provider, profile domain.Profile) (*domain.Snapshot, error) {
	lg := logger.FromContext(ctx)

	symbols, err := h.SymbolRepository.List(tx, repository.SymbolListFilter{
		Provider:   &provider,
		ActiveOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load %s symbols: %w", provider, err)
	}

	tickers := []string{}
	for _, s := range symbols {
		tickers = append(tickers, s.Symbol)
	}
	scores := map[string]float64{}
	if len(tickers) > 0 {
		scores, err = h.SymbolScoreRepository.GetMany(tx, asOf, tickers)
		if err != nil {
			return nil, fmt.Errorf("failed to load scores: %w", err)
		}
	}

	universe := []domain.ScoredSymbol{}
	for _, s := range symbols {
		scored := domain.ScoredSymbol{Symbol: s}
		if score, ok := scores[s.Symbol]; ok {
			scored.Score = &score
		}
		universe = append(universe, scored)
	}

	targets, err := h.AllocationTargetRepository.Get(tx, profile)
	if err != nil {
		return nil, fmt.Errorf("failed to load allocation targets: %w", err)
	}
	if targets == nil {
		defaults := domain.DefaultAllocationTargets(profile)
		lg.Warnw("no allocation targets stored, using defaults", "profile", profile, "targets", defaults)
		targets = &defaults
	}

	snapshot := h.Builder.BuildSnapshot(calculator.BuildSnapshotInput{
		AsOf:     asOf,
		Provider: provider,
		Profile:  profile,
		Universe: universe,
		Targets:  *targets,
	})

	err = h.ModelSnapshotRepository.Add(tx, snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to store snapshot: %w", err)
	}

	lg.Infow(
		"built model",
		"provider", provider,
		"profile", profile,
		"asOf", asOf.Format(time.DateOnly),
		"lines", len(snapshot.Lines),
		"scored", len(scores),
		"notes", snapshot.Notes,
	)

	return &snapshot, nil
}

// cacheIfLatest caches a freshly built snapshot unless a newer model is
// stored, so a backfill never replaces the latest model in the cache.
func (h modelServiceHandler) cacheIfLatest(ctx context.Context, snapshot domain.Snapshot) {
	if h.SnapshotCacheRepository == nil {
		return
	}
	lg := logger.FromContext(ctx)

	latest, err := h.ModelSnapshotRepository.GetLatest(nil, snapshot.Provider, snapshot.Profile)
	if err != nil {
		lg.Warnw("failed to check latest snapshot; not caching", "provider", snapshot.Provider, "profile", snapshot.Profile, "error", err)
		return
	}
	if latest != nil && latest.AsOf.After(snapshot.AsOf) {
		lg.Infow(
			"newer model stored; not caching backfill",
			"provider", snapshot.Provider,
			"profile", snapshot.Profile,
			"asOf", snapshot.AsOf.Format(time.DateOnly),
			"latestAsOf", latest.AsOf.Format(time.DateOnly),
		)
		return
	}

	h.cache(ctx, snapshot)
}

func (h modelServiceHandler) cache(ctx context.Context, snapshot domain.Snapshot) {
	if h.SnapshotCacheRepository == nil {
		return
	}
	err := h.SnapshotCacheRepository.Set(ctx, snapshot)
	if err != nil {
		logger.FromContext(ctx).Warnw("failed to cache snapshot", "provider", snapshot.Provider, "profile", snapshot.Profile, "error", err)
	}
}

func (h modelServiceHandler) BuildAll(ctx context.Context, asOf time.Time) ([]domain.Snapshot, error) {
	trace := domain.TraceFromContext(ctx)
	defer trace.End()

	out := []domain.Snapshot{}
	errors := []error{}
	total := 0
	for _, provider := range domain.Providers {
		for _, profile := range domain.ModelProfiles {
			total++
			span, endSpan := trace.StartNewSpan(fmt.Sprintf("build %s %s", provider, profile))
			snapshot, err := h.BuildSnapshot(ctx, asOf, provider, profile)
			if err != nil {
				err = fmt.Errorf("failed to build %s %s model: %w", provider, profile, err)
				span.Fail(err)
				logger.FromContext(ctx).Errorw("model build failed", "provider", provider, "profile", profile, "error", err)
				errors = append(errors, err)
			} else {
				out = append(out, *snapshot)
			}
			endSpan()
		}
	}

	if len(errors) > 0 {
		return out, fmt.Errorf("failed to build %d/%d models. first err: %w", len(errors), total, errors[0])
	}

	return out, nil
}

func (h modelServiceHandler) GetLatest(ctx context.Context, provider domain.Provider, profile domain.Profile) (*domain.Snapshot, error) {
	lg := logger.FromContext(ctx)
	profile = profile.ModelProfile()
	if h.SnapshotCacheRepository != nil {
		cached, err := h.SnapshotCacheRepository.Get(ctx, provider, profile)
		if err != nil {
			lg.Warnw("failed to read snapshot cache", "provider", provider, "profile", profile, "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	snapshot, err := h.ModelSnapshotRepository.GetLatest(nil, provider, profile)
	if err != nil {
		return nil, err
	}
	if snapshot != nil {
		h.cache(ctx, *snapshot)
	}

	return snapshot, nil
}
