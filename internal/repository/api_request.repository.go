package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"gradeyour401k/internal/db/models/postgres/public/model"
	"gradeyour401k/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

// maxLoggedBodyBytes bounds request and response bodies kept in the log
const maxLoggedBodyBytes = 16 << 10

type RequestLogStart struct {
	IPAddress string
	Method    string
	Route     string
	Body      []byte
	StartedAt time.Time
}

type RequestLogFinish struct {
	StatusCode int
	Elapsed    time.Duration
	Body       []byte
}

// ApiRequestRepository keeps one row per HTTP request, opened when the
// request arrives and closed with its outcome.
type ApiRequestRepository interface {
	Start(tx *sql.Tx, start RequestLogStart) (uuid.UUID, error)
	Finish(tx *sql.Tx, requestID uuid.UUID, finish RequestLogFinish) error
}

type apiRequestRepositoryHandler struct {
	Db *sql.DB
}

func NewApiRequestRepository(db *sql.DB) ApiRequestRepository {
	return apiRequestRepositoryHandler{Db: db}
}

func (h apiRequestRepositoryHandler) Start(tx *sql.Tx, start RequestLogStart) (uuid.UUID, error) {
	row := model.APIRequest{
		RequestID:   uuid.New(),
		Method:      start.Method,
		Route:       start.Route,
		RequestBody: loggedBody(start.Body),
		StartTs:     start.StartedAt.UTC(),
	}
	if start.IPAddress != "" {
		row.IPAddress = &start.IPAddress
	}

	query := table.APIRequest.
		INSERT(
			table.APIRequest.RequestID,
			table.APIRequest.IPAddress,
			table.APIRequest.Method,
			table.APIRequest.Route,
			table.APIRequest.RequestBody,
			table.APIRequest.StartTs,
		).
		MODEL(row)

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to log %s %s: %w", start.Method, start.Route, err)
	}

	return row.RequestID, nil
}

func (h apiRequestRepositoryHandler) Finish(tx *sql.Tx, requestID uuid.UUID, finish RequestLogFinish) error {
	durationMs := finish.Elapsed.Milliseconds()
	statusCode := int32(finish.StatusCode)
	row := model.APIRequest{
		DurationMs:   &durationMs,
		StatusCode:   &statusCode,
		ResponseBody: loggedBody(finish.Body),
	}

	query := table.APIRequest.
		UPDATE(table.APIRequest.DurationMs, table.APIRequest.StatusCode, table.APIRequest.ResponseBody).
		MODEL(row).
		WHERE(table.APIRequest.RequestID.EQ(postgres.UUID(requestID)))

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to finish request log %s: %w", requestID, err)
	}

	return nil
}

// loggedBody renders a body for a text column. Binary payloads are replaced
// by their size since postgres text rejects NUL bytes.
func loggedBody(body []byte) *string {
	if len(body) == 0 {
		return nil
	}
	if !utf8.Valid(body) || strings.ContainsRune(string(body), 0) {
		out := fmt.Sprintf("<%d bytes binary>", len(body))
		return &out
	}
	if len(body) <= maxLoggedBodyBytes {
		out := string(body)
		return &out
	}

	clipped := body[:maxLoggedBodyBytes]
	// back off to a rune boundary
	for len(clipped) > 0 && !utf8.Valid(clipped) {
		clipped = clipped[:len(clipped)-1]
	}
	out := fmt.Sprintf("%s...<%d bytes clipped>", clipped, len(body)-len(clipped))
	return &out
}
