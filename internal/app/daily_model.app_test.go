package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"gradeyour401k/internal/domain"
	"gradeyour401k/internal/service"
	mock_service "gradeyour401k/internal/service/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var asOf = time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

func TestDailyModelApp_Run(t *testing.T) {
	t.Run("ingests then builds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		scoreService := mock_service.NewMockScoreService(ctrl)
		modelService := mock_service.NewMockModelService(ctrl)
		app := NewDailyModelApp(scoreService, modelService)

		scores := &service.IngestScoresResult{AsOf: asOf, Tickers: 40, Scored: 38, Skipped: []string{"NEWBX", "NEWEX"}}
		models := []domain.Snapshot{{Provider: domain.ProviderFidelity, Profile: domain.ProfileGrowth, AsOf: asOf}}
		gomock.InOrder(
			scoreService.EXPECT().IngestScores(gomock.Any(), asOf).Return(scores, nil),
			modelService.EXPECT().BuildAll(gomock.Any(), asOf).Return(models, nil),
		)

		result, err := app.Run(context.Background(), asOf)
		require.NoError(t, err)
		require.Equal(t, scores, result.Scores)
		require.Equal(t, models, result.Models)
		require.Len(t, result.Trace.Spans, 2)
		require.Nil(t, result.Trace.Spans[0].Err)
	})

	t.Run("score failure does not block builds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		scoreService := mock_service.NewMockScoreService(ctrl)
		modelService := mock_service.NewMockModelService(ctrl)
		app := NewDailyModelApp(scoreService, modelService)

		scoreService.EXPECT().IngestScores(gomock.Any(), asOf).Return(nil, errors.New("yahoo down"))
		modelService.EXPECT().BuildAll(gomock.Any(), asOf).Return([]domain.Snapshot{}, nil)

		result, err := app.Run(context.Background(), asOf)
		require.NoError(t, err)
		require.Nil(t, result.Scores)
		require.Equal(t, "yahoo down", *result.Trace.Spans[0].Err)
	})

	t.Run("build failure is returned with partial models", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		scoreService := mock_service.NewMockScoreService(ctrl)
		modelService := mock_service.NewMockModelService(ctrl)
		app := NewDailyModelApp(scoreService, modelService)

		scoreService.EXPECT().IngestScores(gomock.Any(), asOf).Return(&service.IngestScoresResult{}, nil)
		modelService.EXPECT().
			BuildAll(gomock.Any(), asOf).
			Return([]domain.Snapshot{{Provider: domain.ProviderVanguard}}, errors.New("failed to build 1/15 models"))

		result, err := app.Run(context.Background(), asOf)
		require.ErrorContains(t, err, "failed to build models")
		require.Len(t, result.Models, 1)
		require.NotNil(t, result.Trace.Spans[1].Err)
	})
}

func TestDailyModelApp_WarmCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	modelService := mock_service.NewMockModelService(ctrl)
	app := NewDailyModelApp(nil, modelService)

	modelService.EXPECT().
		GetLatest(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil).
		Times(len(domain.Providers) * len(domain.ModelProfiles))

	require.NoError(t, app.WarmCache(context.Background()))
}
