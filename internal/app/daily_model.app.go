package app

import (
	"context"
	"fmt"
	"time"

	"gradeyour401k/internal/domain"
	"gradeyour401k/internal/logger"
	"gradeyour401k/internal/service"
)

// DailyModelApp runs the nightly pipeline: refresh scores, then rebuild
// every provider model for the day.
type DailyModelApp interface {
	Run(ctx context.Context, asOf time.Time) (*DailyModelResult, error)
	// WarmCache reads the latest model for every provider and profile so
	// the cache holds them
	WarmCache(ctx context.Context) error
}

type DailyModelResult struct {
	AsOf   time.Time                   `json:"asOf"`
	Scores *service.IngestScoresResult `json:"scores"`
	Models []domain.Snapshot           `json:"models"`
	Trace  *domain.Trace               `json:"trace"`
}

type dailyModelAppHandler struct {
	ScoreService service.ScoreService
	ModelService service.ModelService
}

func NewDailyModelApp(
	scoreService service.ScoreService,
	modelService service.ModelService,
) DailyModelApp {
	return &dailyModelAppHandler{
		ScoreService: scoreService,
		ModelService: modelService,
	}
}

// Run builds models even when score ingest fails; unscored symbols rank
// last.
func (h *dailyModelAppHandler) Run(ctx context.Context, asOf time.Time) (*DailyModelResult, error) {
	lg := logger.FromContext(ctx)
	trace, endTrace := domain.NewTrace()
	defer endTrace()

	result := &DailyModelResult{
		AsOf:  asOf,
		Trace: trace,
	}

	span, endSpan := trace.StartNewSpan("ingest scores")
	scores, err := h.ScoreService.IngestScores(ctx, asOf)
	if err != nil {
		span.Fail(err)
		lg.Errorw("score ingest failed, building with stored scores", "asOf", asOf.Format(time.DateOnly), "error", err)
	}
	result.Scores = scores
	endSpan()

	span, endSpan = trace.StartNewSpan("build models")
	subTrace, endSubTrace := span.NewSubTrace()
	models, err := h.ModelService.BuildAll(context.WithValue(ctx, domain.ContextTraceKey, subTrace), asOf)
	endSubTrace()
	result.Models = models
	if err != nil {
		span.Fail(err)
		endSpan()
		return result, fmt.Errorf("failed to build models: %w", err)
	}
	endSpan()

	return result, nil
}

func (h *dailyModelAppHandler) WarmCache(ctx context.Context) error {
	missing := 0
	for _, provider := range domain.Providers {
		for _, profile := range domain.ModelProfiles {
			snapshot, err := h.ModelService.GetLatest(ctx, provider, profile)
			if err != nil {
				return fmt.Errorf("failed to warm %s %s model: %w", provider, profile, err)
			}
			if snapshot == nil {
				missing++
			}
		}
	}
	logger.FromContext(ctx).Infow("warmed model cache", "missing", missing)
	return nil
}
