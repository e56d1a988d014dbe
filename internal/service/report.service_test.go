package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"gradeyour401k/internal/domain"
	mock_repository "gradeyour401k/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

func newSubmission(provider *domain.Provider) domain.GradeSubmission {
	return domain.GradeSubmission{
		ID:       uuid.MustParse("0b8d2b84-6a7c-4c43-9a8a-2f4f0a7c5d21"),
		Profile:  domain.ProfileGrowth,
		Provider: provider,
		Holdings: []domain.Holding{
			{Symbol: "FSKAX", Weight: 60, Label: strPtr("Fidelity Total Market Index")},
			{Symbol: "FXNAX", Weight: 40},
		},
		Breakdown: domain.GradeBreakdown{
			Profile: domain.ProfileGrowth,
			Base:    4.5,
			Adjustments: []domain.GradeAdjustment{
				{Name: "holding count", Delta: -0.25},
				{Name: "bond overexposure", Delta: -0.6},
			},
			Raw:   3.65,
			Grade: 3.5,
		},
	}
}

func TestBuildReportWorkbook(t *testing.T) {
	fidelity := domain.ProviderFidelity
	in := ReportInput{
		Submission: newSubmission(&fidelity),
		Recommended: &domain.Snapshot{
			Provider: fidelity,
			Profile:  domain.ProfileGrowth,
			Notes:    "Fidelity growth model",
			Lines: domain.Lines{
				{Symbol: "FSKAX", Weight: 0.85, Role: domain.RoleCore, Rank: 1},
				{Symbol: "FXNAX", Weight: 0.15, Role: domain.RoleCore, Rank: 2},
			},
		},
		Commentary:  "Too many bonds for a growth investor.",
		GeneratedAt: time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC),
	}

	b, err := BuildReportWorkbook(in)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, []string{summarySheet, holdingsSheet, gradeSheet, recommendedSheet}, f.GetSheetList())

	get := func(sheet, cell string) string {
		v, err := f.GetCellValue(sheet, cell)
		require.NoError(t, err)
		return v
	}
	require.Equal(t, "Fidelity", get(summarySheet, "B4"))
	require.Equal(t, "3.5", get(summarySheet, "B5"))
	require.Equal(t, "Too many bonds for a growth investor.", get(summarySheet, "B7"))
	require.Equal(t, "FSKAX", get(holdingsSheet, "A2"))
	require.Equal(t, "Fidelity Total Market Index", get(holdingsSheet, "B2"))
	require.Equal(t, "", get(holdingsSheet, "B3"))
	require.Equal(t, "bond overexposure", get(gradeSheet, "A4"))
	require.Equal(t, "grade", get(gradeSheet, "A6"))
	require.Equal(t, "FXNAX", get(recommendedSheet, "B3"))
	require.Equal(t, "Fidelity growth model", get(recommendedSheet, "B5"))

	t.Run("without a recommended model", func(t *testing.T) {
		b, err := BuildReportWorkbook(ReportInput{Submission: newSubmission(nil)})
		require.NoError(t, err)

		f, err := excelize.OpenReader(bytes.NewReader(b))
		require.NoError(t, err)
		defer f.Close()
		require.Equal(t, []string{summarySheet, holdingsSheet, gradeSheet}, f.GetSheetList())
	})
}

func Test_reportServiceHandler(t *testing.T) {
	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	ttl := 15 * time.Minute
	fidelity := domain.ProviderFidelity

	t.Run("statement upload url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		submissionRepository := mock_repository.NewMockGradeSubmissionRepository(ctrl)
		storageRepository := mock_repository.NewMockObjectStorageRepository(ctrl)
		handler := reportServiceHandler{
			GradeSubmissionRepository: submissionRepository,
			ObjectStorageRepository:   storageRepository,
			PresignTTL:                ttl,
			Now:                       func() time.Time { return now },
		}

		submission := newSubmission(&fidelity)
		key := "statements/" + submission.ID.String() + ".pdf"
		submissionRepository.EXPECT().Get(nil, submission.ID).Return(&submission, nil)
		storageRepository.EXPECT().PresignPut(gomock.Any(), key, "application/pdf", ttl).Return("https://bucket/put", nil)

		updated := submission
		updated.StatementObjectKey = &key
		submissionRepository.EXPECT().UpdateObjectKeys(nil, updated).Return(nil)

		out, err := handler.CreateStatementUploadUrl(context.Background(), submission.ID)
		require.NoError(t, err)
		require.Equal(t, &PresignedObject{
			Url:         "https://bucket/put",
			ObjectKey:   key,
			ContentType: "application/pdf",
			ExpiresAt:   now.Add(ttl),
		}, out)
	})

	t.Run("missing submission", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		submissionRepository := mock_repository.NewMockGradeSubmissionRepository(ctrl)
		handler := reportServiceHandler{GradeSubmissionRepository: submissionRepository, Now: time.Now}

		id := uuid.New()
		submissionRepository.EXPECT().Get(nil, id).Return(nil, nil)

		_, err := handler.GenerateReport(context.Background(), id)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("report survives commentary failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		submissionRepository := mock_repository.NewMockGradeSubmissionRepository(ctrl)
		storageRepository := mock_repository.NewMockObjectStorageRepository(ctrl)
		gptRepository := mock_repository.NewMockGptRepository(ctrl)
		handler := reportServiceHandler{
			GradeSubmissionRepository: submissionRepository,
			ObjectStorageRepository:   storageRepository,
			GptRepository:             gptRepository,
			ModelService:              fakeModelService{},
			PresignTTL:                ttl,
			Now:                       func() time.Time { return now },
		}

		submission := newSubmission(&fidelity)
		key := "reports/" + submission.ID.String() + ".xlsx"
		submissionRepository.EXPECT().Get(nil, submission.ID).Return(&submission, nil)
		gptRepository.EXPECT().
			GradeCommentary(gomock.Any(), submission.Holdings, submission.Breakdown).
			Return("", errors.New("rate limited"))

		var uploaded []byte
		storageRepository.EXPECT().
			Put(gomock.Any(), key, reportContentType, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ string, body []byte) error {
				uploaded = body
				return nil
			})
		updated := submission
		updated.ReportObjectKey = &key
		submissionRepository.EXPECT().UpdateObjectKeys(nil, updated).Return(nil)
		storageRepository.EXPECT().PresignGet(gomock.Any(), key, ttl).Return("https://bucket/get", nil)

		out, err := handler.GenerateReport(context.Background(), submission.ID)
		require.NoError(t, err)
		require.Equal(t, "https://bucket/get", out.Url)
		require.Equal(t, key, out.ObjectKey)

		f, err := excelize.OpenReader(bytes.NewReader(uploaded))
		require.NoError(t, err)
		defer f.Close()
		require.Equal(t, []string{summarySheet, holdingsSheet, gradeSheet}, f.GetSheetList())
	})
}
