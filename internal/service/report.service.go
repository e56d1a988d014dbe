package service

import (
	"context"
	"fmt"
	"time"

	"gradeyour401k/internal/domain"
	"gradeyour401k/internal/logger"
	"gradeyour401k/internal/repository"

	"github.com/google/uuid"
)

const (
	statementContentType = "application/pdf"
	reportContentType    = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type ReportService interface {
	// CreateStatementUploadUrl presigns a PUT the user uploads their plan
	// statement to
	CreateStatementUploadUrl(ctx context.Context, submissionID uuid.UUID) (*PresignedObject, error)
	// GenerateReport uploads the xlsx report for a submission and presigns
	// a download
	GenerateReport(ctx context.Context, submissionID uuid.UUID) (*PresignedObject, error)
}

type PresignedObject struct {
	Url         string    `json:"url"`
	ObjectKey   string    `json:"objectKey"`
	ContentType string    `json:"contentType"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

type reportServiceHandler struct {
	GradeSubmissionRepository repository.GradeSubmissionRepository
	ObjectStorageRepository   repository.ObjectStorageRepository
	// GptRepository is optional; reports skip commentary without it
	GptRepository repository.GptRepository
	ModelService  ModelService
	PresignTTL    time.Duration
	Now           func() time.Time
}

func NewReportService(
	gradeSubmissionRepository repository.GradeSubmissionRepository,
	objectStorageRepository repository.ObjectStorageRepository,
	gptRepository repository.GptRepository,
	modelService ModelService,
	presignTTL time.Duration,
) ReportService {
	return reportServiceHandler{
		GradeSubmissionRepository: gradeSubmissionRepository,
		ObjectStorageRepository:   objectStorageRepository,
		GptRepository:             gptRepository,
		ModelService:              modelService,
		PresignTTL:                presignTTL,
		Now:                       time.Now,
	}
}

func statementObjectKey(id uuid.UUID) string {
	return fmt.Sprintf("statements/%s.pdf", id)
}

func reportObjectKey(id uuid.UUID) string {
	return fmt.Sprintf("reports/%s.xlsx", id)
}

func (h reportServiceHandler) getSubmission(submissionID uuid.UUID) (*domain.GradeSubmission, error) {
	submission, err := h.GradeSubmissionRepository.Get(nil, submissionID)
	if err != nil {
		return nil, err
	}
	if submission == nil {
		return nil, fmt.Errorf("%w: submission %s", ErrNotFound, submissionID)
	}
	return submission, nil
}

func (h reportServiceHandler) CreateStatementUploadUrl(ctx context.Context, submissionID uuid.UUID) (*PresignedObject, error) {
	submission, err := h.getSubmission(submissionID)
	if err != nil {
		return nil, err
	}

	key := statementObjectKey(submission.ID)
	url, err := h.ObjectStorageRepository.PresignPut(ctx, key, statementContentType, h.PresignTTL)
	if err != nil {
		return nil, err
	}

	submission.StatementObjectKey = &key
	err = h.GradeSubmissionRepository.UpdateObjectKeys(nil, *submission)
	if err != nil {
		return nil, err
	}

	return &PresignedObject{
		Url:         url,
		ObjectKey:   key,
		ContentType: statementContentType,
		ExpiresAt:   h.Now().UTC().Add(h.PresignTTL),
	}, nil
}

func (h reportServiceHandler) GenerateReport(ctx context.Context, submissionID uuid.UUID) (*PresignedObject, error) {
	lg := logger.FromContext(ctx)

	submission, err := h.getSubmission(submissionID)
	if err != nil {
		return nil, err
	}

	var recommended *domain.Snapshot
	if submission.Provider != nil {
		recommended, err = h.ModelService.GetLatest(ctx, *submission.Provider, submission.Profile.ModelProfile())
		if err != nil {
			return nil, fmt.Errorf("failed to load recommended model: %w", err)
		}
	}

	commentary := ""
	if h.GptRepository != nil {
		commentary, err = h.GptRepository.GradeCommentary(ctx, submission.Holdings, submission.Breakdown)
		if err != nil {
			lg.Warnw("failed to generate commentary, continuing without it", "submissionID", submission.ID, "error", err)
			commentary = ""
		}
	}

	workbook, err := BuildReportWorkbook(ReportInput{
		Submission:  *submission,
		Recommended: recommended,
		Commentary:  commentary,
		GeneratedAt: h.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	key := reportObjectKey(submission.ID)
	err = h.ObjectStorageRepository.Put(ctx, key, reportContentType, workbook)
	if err != nil {
		return nil, err
	}

	submission.ReportObjectKey = &key
	err = h.GradeSubmissionRepository.UpdateObjectKeys(nil, *submission)
	if err != nil {
		return nil, err
	}

	url, err := h.ObjectStorageRepository.PresignGet(ctx, key, h.PresignTTL)
	if err != nil {
		return nil, err
	}

	lg.Infow("generated report", "submissionID", submission.ID, "bytes", len(workbook), "commentary", commentary != "")

	return &PresignedObject{
		Url:         url,
		ObjectKey:   key,
		ContentType: reportContentType,
		ExpiresAt:   h.Now().UTC().Add(h.PresignTTL),
	}, nil
}
