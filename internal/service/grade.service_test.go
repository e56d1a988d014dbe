package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"gradeyour401k/internal/domain"
	"gradeyour401k/internal/repository"
	mock_repository "gradeyour401k/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeModelService struct {
	latest map[domain.Provider]*domain.Snapshot
}

func (f fakeModelService) BuildSnapshot(ctx context.Context, asOf time.Time, provider domain.Provider, profile domain.Profile) (*domain.Snapshot, error) {
	return nil, nil
}

func (f fakeModelService) BuildAll(ctx context.Context, asOf time.Time) ([]domain.Snapshot, error) {
	return nil, nil
}

func (f fakeModelService) GetLatest(ctx context.Context, provider domain.Provider, profile domain.Profile) (*domain.Snapshot, error) {
	s, ok := f.latest[provider]
	if !ok || s.Profile != profile {
		return nil, nil
	}
	return s, nil
}

func Test_gradeServiceHandler_Grade(t *testing.T) {
	fidelity := domain.ProviderFidelity
	growthModel := &domain.Snapshot{
		ID:       uuid.New(),
		Provider: fidelity,
		Profile:  domain.ProfileGrowth,
		AsOf:     asOf,
		Lines:    domain.Lines{{Symbol: "FSKAX", Weight: 1, Role: domain.RoleCore, Rank: 1}},
	}

	t.Run("grades and recommends the latest model", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		symbolRepository := mock_repository.NewMockSymbolRepository(ctrl)
		submissionRepository := mock_repository.NewMockGradeSubmissionRepository(ctrl)
		handler := NewGradeService(
			symbolRepository,
			submissionRepository,
			fakeModelService{latest: map[domain.Provider]*domain.Snapshot{fidelity: growthModel}},
		)

		symbolRepository.EXPECT().
			List(nil, repository.SymbolListFilter{Symbols: []string{"FSKAX", "FXNAX"}, ActiveOnly: true}).
			Return([]domain.Symbol{
				{Symbol: "FSKAX", Provider: fidelity, Name: strPtr("Fidelity Total Market Index"), Active: true},
				{Symbol: "FXNAX", Provider: fidelity, Name: strPtr("Fidelity U.S. Bond Index"), Active: true},
			}, nil)

		submissionID := uuid.New()
		submissionRepository.EXPECT().
			Add(nil, gomock.Any()).
			DoAndReturn(func(_ *sql.Tx, s domain.GradeSubmission) (*domain.GradeSubmission, error) {
				s.ID = submissionID
				return &s, nil
			})

		result, err := handler.Grade(context.Background(), GradeRequest{
			Profile:  domain.ProfileAggressiveGrowth,
			Provider: &fidelity,
			Holdings: []domain.Holding{
				{Symbol: " fskax ", Weight: 60},
				{Symbol: "FXNAX", Weight: 40},
				{Symbol: "", Weight: 0},
			},
		})
		require.NoError(t, err)
		require.Equal(t, submissionID, result.Submission.ID)
		require.Equal(t, 4.0, result.Submission.Breakdown.Grade)
		require.Len(t, result.Submission.Holdings, 2)
		require.Equal(t, "FSKAX", result.Submission.Holdings[0].Symbol)
		require.Nil(t, result.Submission.Holdings[0].Label)
		require.Equal(t, growthModel, result.Recommended)
	})

	t.Run("lineup names do not replace catalog labels", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		symbolRepository := mock_repository.NewMockSymbolRepository(ctrl)
		submissionRepository := mock_repository.NewMockGradeSubmissionRepository(ctrl)
		handler := NewGradeService(symbolRepository, submissionRepository, fakeModelService{})

		symbolRepository.EXPECT().
			List(nil, gomock.Any()).
			Return([]domain.Symbol{
				{Symbol: "FSKAX", Provider: fidelity, Name: strPtr("Total Mkt Idx"), Active: true},
				{Symbol: "FXNAX", Provider: fidelity, Name: strPtr("Fidelity US Fixed Inc"), Active: true},
				{Symbol: "ACMEX", Provider: fidelity, Name: strPtr("Acme Target Date 2050"), Active: true},
			}, nil).
			Times(2)
		submissionRepository.EXPECT().
			Add(nil, gomock.Any()).
			DoAndReturn(func(_ *sql.Tx, s domain.GradeSubmission) (*domain.GradeSubmission, error) {
				return &s, nil
			}).
			Times(2)

		result, err := handler.Grade(context.Background(), GradeRequest{
			Profile: domain.ProfileGrowth,
			Holdings: []domain.Holding{
				{Symbol: "FSKAX", Weight: 60},
				{Symbol: "FXNAX", Weight: 40},
			},
		})
		require.NoError(t, err)
		// same grade as the catalog labels give; the bond penalty still applies
		require.Equal(t, 4.0, result.Submission.Breakdown.Grade)
		require.Nil(t, result.Submission.Holdings[0].Label)
		require.Nil(t, result.Submission.Holdings[1].Label)

		result, err = handler.Grade(context.Background(), GradeRequest{
			Profile:  domain.ProfileGrowth,
			Holdings: []domain.Holding{{Symbol: "ACMEX", Weight: 100}},
		})
		require.NoError(t, err)
		require.Equal(t, "Acme Target Date 2050", *result.Submission.Holdings[0].Label)
	})

	t.Run("curated funds are accepted without a provider listing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		symbolRepository := mock_repository.NewMockSymbolRepository(ctrl)
		submissionRepository := mock_repository.NewMockGradeSubmissionRepository(ctrl)
		handler := NewGradeService(symbolRepository, submissionRepository, fakeModelService{})

		symbolRepository.EXPECT().List(nil, gomock.Any()).Return([]domain.Symbol{}, nil)
		submissionRepository.EXPECT().
			Add(nil, gomock.Any()).
			DoAndReturn(func(_ *sql.Tx, s domain.GradeSubmission) (*domain.GradeSubmission, error) {
				return &s, nil
			})

		result, err := handler.Grade(context.Background(), GradeRequest{
			Profile: domain.ProfileGrowth,
			Holdings: []domain.Holding{
				{Symbol: "FSKAX", Weight: 60},
				{Symbol: "FXNAX", Weight: 40},
			},
		})
		require.NoError(t, err)
		require.Equal(t, 4.0, result.Submission.Breakdown.Grade)
		require.Nil(t, result.Recommended)
	})

	t.Run("unknown symbols are rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		symbolRepository := mock_repository.NewMockSymbolRepository(ctrl)
		submissionRepository := mock_repository.NewMockGradeSubmissionRepository(ctrl)
		handler := NewGradeService(symbolRepository, submissionRepository, fakeModelService{})

		symbolRepository.EXPECT().List(nil, gomock.Any()).Return([]domain.Symbol{}, nil)

		_, err := handler.Grade(context.Background(), GradeRequest{
			Profile: domain.ProfileGrowth,
			Holdings: []domain.Holding{
				{Symbol: "ZZZZX", Weight: 50},
				{Symbol: "FSKAX", Weight: 25},
				{Symbol: "AAAAX", Weight: 25},
			},
		})
		require.ErrorIs(t, err, ErrInvalidInput)
		require.ErrorContains(t, err, "unknown symbols AAAAX, ZZZZX")
	})

	t.Run("weights out of range", func(t *testing.T) {
		handler := NewGradeService(nil, nil, fakeModelService{})
		_, err := handler.Grade(context.Background(), GradeRequest{
			Profile:  domain.ProfileGrowth,
			Holdings: []domain.Holding{{Symbol: "FSKAX", Weight: 120}},
		})
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("empty holdings still grade", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		submissionRepository := mock_repository.NewMockGradeSubmissionRepository(ctrl)
		handler := NewGradeService(nil, submissionRepository, fakeModelService{})

		submissionRepository.EXPECT().
			Add(nil, gomock.Any()).
			DoAndReturn(func(_ *sql.Tx, s domain.GradeSubmission) (*domain.GradeSubmission, error) {
				return &s, nil
			})

		result, err := handler.Grade(context.Background(), GradeRequest{Profile: domain.ProfileGrowth})
		require.NoError(t, err)
		require.Equal(t, 3.5, result.Submission.Breakdown.Grade)
	})
}
