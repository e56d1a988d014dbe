package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gradeyour401k/internal/db/models/postgres/public/model"
	"gradeyour401k/internal/db/models/postgres/public/table"
	"gradeyour401k/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type GradeSubmissionRepository interface {
	Add(tx *sql.Tx, submission domain.GradeSubmission) (*domain.GradeSubmission, error)
	// Get returns nil when the submission does not exist
	Get(tx *sql.Tx, id uuid.UUID) (*domain.GradeSubmission, error)
	UpdateObjectKeys(tx *sql.Tx, submission domain.GradeSubmission) error
}

type gradeSubmissionRepositoryHandler struct {
	Db *sql.DB
}

func NewGradeSubmissionRepository(db *sql.DB) GradeSubmissionRepository {
	return gradeSubmissionRepositoryHandler{Db: db}
}

func (h gradeSubmissionRepositoryHandler) Add(tx *sql.Tx, submission domain.GradeSubmission) (*domain.GradeSubmission, error) {
	holdings, err := json.Marshal(submission.Holdings)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal holdings: %w", err)
	}
	breakdown, err := json.Marshal(submission.Breakdown)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal grade breakdown: %w", err)
	}

	var provider *string
	if submission.Provider != nil {
		p := string(*submission.Provider)
		provider = &p
	}

	query := table.GradeSubmission.
		INSERT(table.GradeSubmission.MutableColumns).
		MODEL(model.GradeSubmission{
			Profile:            string(submission.Profile),
			Provider:           provider,
			Holdings:           string(holdings),
			Grade:              submission.Breakdown.Grade,
			Breakdown:          string(breakdown),
			StatementObjectKey: submission.StatementObjectKey,
			ReportObjectKey:    submission.ReportObjectKey,
			CreatedAt:          time.Now().UTC(),
		}).
		RETURNING(table.GradeSubmission.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.GradeSubmission{}
	err = query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert grade submission: %w", err)
	}

	return gradeSubmissionFromModel(out)
}

func (h gradeSubmissionRepositoryHandler) Get(tx *sql.Tx, id uuid.UUID) (*domain.GradeSubmission, error) {
	query := table.GradeSubmission.
		SELECT(table.GradeSubmission.AllColumns).
		WHERE(table.GradeSubmission.GradeSubmissionID.EQ(postgres.UUID(id)))

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	result := model.GradeSubmission{}
	err := query.Query(db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get grade submission %s: %w", id, err)
	}

	return gradeSubmissionFromModel(result)
}

func (h gradeSubmissionRepositoryHandler) UpdateObjectKeys(tx *sql.Tx, submission domain.GradeSubmission) error {
	query := table.GradeSubmission.
		UPDATE(table.GradeSubmission.StatementObjectKey, table.GradeSubmission.ReportObjectKey).
		MODEL(model.GradeSubmission{
			StatementObjectKey: submission.StatementObjectKey,
			ReportObjectKey:    submission.ReportObjectKey,
		}).
		WHERE(table.GradeSubmission.GradeSubmissionID.EQ(postgres.UUID(submission.ID)))

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to update object keys for submission %s: %w", submission.ID, err)
	}

	return nil
}

func gradeSubmissionFromModel(m model.GradeSubmission) (*domain.GradeSubmission, error) {
	out := domain.GradeSubmission{
		ID:                 m.GradeSubmissionID,
		Profile:            domain.Profile(m.Profile),
		StatementObjectKey: m.StatementObjectKey,
		ReportObjectKey:    m.ReportObjectKey,
		CreatedAt:          m.CreatedAt,
	}
	if m.Provider != nil {
		p := domain.Provider(*m.Provider)
		out.Provider = &p
	}

	err := json.Unmarshal([]byte(m.Holdings), &out.Holdings)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal holdings: %w", err)
	}
	err = json.Unmarshal([]byte(m.Breakdown), &out.Breakdown)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal grade breakdown: %w", err)
	}

	return &out, nil
}
