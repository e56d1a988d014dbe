package api

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gradeyour401k/internal/domain"
	"gradeyour401k/internal/repository"
	mock_repository "gradeyour401k/internal/repository/mocks"
	"gradeyour401k/internal/service"
	mock_service "gradeyour401k/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

type testHandler struct {
	handler       ApiHandler
	modelService  *mock_service.MockModelService
	gradeService  *mock_service.MockGradeService
	reportService *mock_service.MockReportService
	importService *mock_service.MockSymbolImportService
	scoreService  *mock_service.MockScoreService
	targetRepo    *mock_repository.MockAllocationTargetRepository
}

func newTestHandler(t *testing.T) testHandler {
	ctrl := gomock.NewController(t)
	h := testHandler{
		modelService:  mock_service.NewMockModelService(ctrl),
		gradeService:  mock_service.NewMockGradeService(ctrl),
		reportService: mock_service.NewMockReportService(ctrl),
		importService: mock_service.NewMockSymbolImportService(ctrl),
		scoreService:  mock_service.NewMockScoreService(ctrl),
		targetRepo:    mock_repository.NewMockAllocationTargetRepository(ctrl),
	}
	h.handler = ApiHandler{
		Logger:                     zap.NewNop().Sugar(),
		AllocationTargetRepository: h.targetRepo,
		ModelService:               h.modelService,
		GradeService:               h.gradeService,
		ReportService:              h.reportService,
		SymbolImportService:        h.importService,
		ScoreService:               h.scoreService,
		AdminJwtSecret:             testSecret,
	}
	return h
}

func (h testHandler) do(method, path string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	h.handler.InitializeRouterEngine().ServeHTTP(w, req)
	return w
}

func adminToken(t *testing.T, role string) map[string]string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "ops",
		"role": role,
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + token}
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	out := map[string]any{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func Test_grade(t *testing.T) {
	t.Run("grades holdings", func(t *testing.T) {
		h := newTestHandler(t)
		provider := domain.ProviderFidelity
		h.gradeService.EXPECT().
			Grade(gomock.Any(), service.GradeRequest{
				Profile:  domain.ProfileAggressiveGrowth,
				Provider: &provider,
				Holdings: []domain.Holding{{Symbol: "FXAIX", Weight: 100}},
			}).
			Return(&service.GradeResult{
				Submission: domain.GradeSubmission{
					ID:        uuid.New(),
					Profile:   domain.ProfileAggressiveGrowth,
					Breakdown: domain.GradeBreakdown{Grade: 4.5},
				},
			}, nil)

		w := h.do("POST", "/grade", []byte(`{"profile":"aggressive","provider":"fidelity","holdings":[{"symbol":"FXAIX","weight":100}]}`), nil)
		require.Equal(t, 200, w.Code)

		out := decode(t, w)
		submission := out["submission"].(map[string]any)
		require.Equal(t, 4.5, submission["breakdown"].(map[string]any)["grade"])
	})

	t.Run("unknown profile", func(t *testing.T) {
		h := newTestHandler(t)
		w := h.do("POST", "/grade", []byte(`{"profile":"yolo","holdings":[{"symbol":"FXAIX","weight":100}]}`), nil)
		require.Equal(t, 400, w.Code)
	})

	t.Run("no holdings", func(t *testing.T) {
		h := newTestHandler(t)
		w := h.do("POST", "/grade", []byte(`{"profile":"growth","holdings":[]}`), nil)
		require.Equal(t, 400, w.Code)
	})

	t.Run("invalid input from service", func(t *testing.T) {
		h := newTestHandler(t)
		h.gradeService.EXPECT().
			Grade(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("%w: unknown symbols ZZZZ", service.ErrInvalidInput))

		w := h.do("POST", "/grade", []byte(`{"profile":"growth","holdings":[{"symbol":"ZZZZ","weight":100}]}`), nil)
		require.Equal(t, 400, w.Code)
		require.Equal(t, "invalid input: unknown symbols ZZZZ", decode(t, w)["error"])
	})

	t.Run("unexpected failure", func(t *testing.T) {
		h := newTestHandler(t)
		h.gradeService.EXPECT().
			Grade(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("connection refused"))

		w := h.do("POST", "/grade", []byte(`{"profile":"growth","holdings":[{"symbol":"FXAIX","weight":100}]}`), nil)
		require.Equal(t, 500, w.Code)
	})
}

func Test_getModel(t *testing.T) {
	t.Run("aggressive profile reads the growth model", func(t *testing.T) {
		h := newTestHandler(t)
		h.modelService.EXPECT().
			GetLatest(gomock.Any(), domain.ProviderVanguard, domain.ProfileGrowth).
			Return(&domain.Snapshot{
				Provider: domain.ProviderVanguard,
				Profile:  domain.ProfileGrowth,
				AsOf:     time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
				Lines:    domain.Lines{{Symbol: "VFIAX", Weight: 100, Role: domain.RoleCore, Rank: 1}},
			}, nil)

		w := h.do("GET", "/models/vanguard/aggressive_growth", nil, nil)
		require.Equal(t, 200, w.Code)
		out := decode(t, w)
		require.Equal(t, "GROWTH", out["profile"])
		require.Len(t, out["lines"], 1)
	})

	t.Run("never built", func(t *testing.T) {
		h := newTestHandler(t)
		h.modelService.EXPECT().
			GetLatest(gomock.Any(), domain.ProviderSchwab, domain.ProfileBalanced).
			Return(nil, nil)

		w := h.do("GET", "/models/schwab/balanced", nil, nil)
		require.Equal(t, 404, w.Code)
	})

	t.Run("unknown provider", func(t *testing.T) {
		h := newTestHandler(t)
		w := h.do("GET", "/models/acme/balanced", nil, nil)
		require.Equal(t, 400, w.Code)
	})
}

func Test_submissions(t *testing.T) {
	id := uuid.New()

	t.Run("statement upload url", func(t *testing.T) {
		h := newTestHandler(t)
		h.reportService.EXPECT().
			CreateStatementUploadUrl(gomock.Any(), id).
			Return(&service.PresignedObject{
				Url:         "https://bucket.s3.amazonaws.com/statements/x.pdf",
				ObjectKey:   "statements/x.pdf",
				ContentType: "application/pdf",
			}, nil)

		w := h.do("POST", "/submissions/"+id.String()+"/statementUploadUrl", nil, nil)
		require.Equal(t, 200, w.Code)
		require.Equal(t, "statements/x.pdf", decode(t, w)["objectKey"])
	})

	t.Run("report for missing submission", func(t *testing.T) {
		h := newTestHandler(t)
		h.reportService.EXPECT().
			GenerateReport(gomock.Any(), id).
			Return(nil, fmt.Errorf("%w: submission %s", service.ErrNotFound, id))

		w := h.do("POST", "/submissions/"+id.String()+"/report", nil, nil)
		require.Equal(t, 404, w.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		h := newTestHandler(t)
		w := h.do("POST", "/submissions/abc/report", nil, nil)
		require.Equal(t, 400, w.Code)
	})
}

func Test_adminAuth(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		h := newTestHandler(t)
		w := h.do("POST", "/admin/scores/ingest", nil, nil)
		require.Equal(t, 401, w.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		h := newTestHandler(t)
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"role": "admin"}).
			SignedString([]byte("other"))
		require.NoError(t, err)

		w := h.do("POST", "/admin/scores/ingest", nil, map[string]string{"Authorization": "Bearer " + token})
		require.Equal(t, 401, w.Code)
	})

	t.Run("non-admin role", func(t *testing.T) {
		h := newTestHandler(t)
		w := h.do("POST", "/admin/scores/ingest", nil, adminToken(t, "user"))
		require.Equal(t, 403, w.Code)
	})

	t.Run("admin routes disabled without secret", func(t *testing.T) {
		h := newTestHandler(t)
		h.handler.AdminJwtSecret = ""
		w := h.do("POST", "/admin/scores/ingest", nil, adminToken(t, "admin"))
		require.Equal(t, 403, w.Code)
	})
}

func Test_buildModels(t *testing.T) {
	asOf := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	t.Run("single model", func(t *testing.T) {
		h := newTestHandler(t)
		h.modelService.EXPECT().
			BuildSnapshot(gomock.Any(), asOf, domain.ProviderFidelity, domain.ProfileGrowth).
			Return(&domain.Snapshot{Provider: domain.ProviderFidelity, Profile: domain.ProfileGrowth, AsOf: asOf}, nil)

		w := h.do("POST", "/admin/models/build", []byte(`{"asOf":"2024-01-31","provider":"fidelity","profile":"aggressive growth"}`), adminToken(t, "admin"))
		require.Equal(t, 200, w.Code)
		require.Len(t, decode(t, w)["snapshots"], 1)
	})

	t.Run("all models with a failure", func(t *testing.T) {
		h := newTestHandler(t)
		h.modelService.EXPECT().
			BuildAll(gomock.Any(), asOf).
			Return([]domain.Snapshot{{Provider: domain.ProviderFidelity, Profile: domain.ProfileGrowth, AsOf: asOf}}, fmt.Errorf("failed to build 1/15 models"))

		w := h.do("POST", "/admin/models/build", []byte(`{"asOf":"2024-01-31"}`), adminToken(t, "admin"))
		require.Equal(t, http.StatusMultiStatus, w.Code)
		out := decode(t, w)
		require.Len(t, out["snapshots"], 1)
		require.Equal(t, "failed to build 1/15 models", out["error"])
	})

	t.Run("provider without profile", func(t *testing.T) {
		h := newTestHandler(t)
		w := h.do("POST", "/admin/models/build", []byte(`{"provider":"fidelity"}`), adminToken(t, "admin"))
		require.Equal(t, 400, w.Code)
	})

	t.Run("bad date", func(t *testing.T) {
		h := newTestHandler(t)
		w := h.do("POST", "/admin/models/build", []byte(`{"asOf":"01/31/2024"}`), adminToken(t, "admin"))
		require.Equal(t, 400, w.Code)
	})
}

func Test_importSymbols(t *testing.T) {
	t.Run("csv body", func(t *testing.T) {
		h := newTestHandler(t)
		csv := []byte("symbol,name,asset_class\nFXAIX,Fidelity 500 Index,equity\n")
		h.importService.EXPECT().
			ImportCsv(gomock.Any(), domain.ProviderFidelity, csv).
			Return(&service.ImportSymbolsResult{Provider: domain.ProviderFidelity, Imported: 1, Active: 1}, nil)

		w := h.do("POST", "/admin/symbols/import?provider=fidelity", csv, adminToken(t, "admin"))
		require.Equal(t, 200, w.Code)
		require.Equal(t, float64(1), decode(t, w)["imported"])
	})

	t.Run("from url", func(t *testing.T) {
		h := newTestHandler(t)
		h.importService.EXPECT().
			ImportFromUrl(gomock.Any(), domain.ProviderSchwab, "https://example.com/lineup.csv").
			Return(&service.ImportSymbolsResult{Provider: domain.ProviderSchwab}, nil)

		w := h.do("POST", "/admin/symbols/import?provider=schwab&url=https://example.com/lineup.csv", nil, adminToken(t, "admin"))
		require.Equal(t, 200, w.Code)
	})

	t.Run("empty body", func(t *testing.T) {
		h := newTestHandler(t)
		w := h.do("POST", "/admin/symbols/import?provider=fidelity", nil, adminToken(t, "admin"))
		require.Equal(t, 400, w.Code)
	})

	t.Run("parse failure", func(t *testing.T) {
		h := newTestHandler(t)
		h.importService.EXPECT().
			ImportCsv(gomock.Any(), domain.ProviderFidelity, gomock.Any()).
			Return(nil, fmt.Errorf("%w: line 3: duplicate symbol FXAIX", service.ErrInvalidInput))

		w := h.do("POST", "/admin/symbols/import?provider=fidelity", []byte("garbage"), adminToken(t, "admin"))
		require.Equal(t, 400, w.Code)
	})
}

func Test_ingestScores(t *testing.T) {
	h := newTestHandler(t)
	asOf := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	h.scoreService.EXPECT().
		IngestScores(gomock.Any(), asOf).
		Return(&service.IngestScoresResult{AsOf: asOf, Tickers: 2, Scored: 1, Skipped: []string{"NEWFX"}}, nil)

	w := h.do("POST", "/admin/scores/ingest", []byte(`{"asOf":"2024-01-31"}`), adminToken(t, "admin"))
	require.Equal(t, 200, w.Code)
	out := decode(t, w)
	require.Equal(t, float64(1), out["scored"])
	require.Equal(t, []any{"NEWFX"}, out["skipped"])
}

func Test_updateTargets(t *testing.T) {
	t.Run("stores targets under the model profile", func(t *testing.T) {
		h := newTestHandler(t)
		targets := domain.AllocationTargets{Equity: 0.95, Bond: 0.05}
		h.targetRepo.EXPECT().
			Upsert(nil, domain.ProfileGrowth, targets).
			Return(nil)

		w := h.do("PUT", "/admin/targets/aggressive", []byte(`{"equity":0.95,"bond":0.05,"cash":0}`), adminToken(t, "admin"))
		require.Equal(t, 200, w.Code)
		require.Equal(t, "GROWTH", decode(t, w)["profile"])
	})

	t.Run("targets over one", func(t *testing.T) {
		h := newTestHandler(t)
		w := h.do("PUT", "/admin/targets/balanced", []byte(`{"equity":0.8,"bond":0.4,"cash":0}`), adminToken(t, "admin"))
		require.Equal(t, 400, w.Code)
	})
}

func Test_logRequestMiddlware(t *testing.T) {
	t.Run("logs the request and its outcome", func(t *testing.T) {
		h := newTestHandler(t)
		requestLog := mock_repository.NewMockApiRequestRepository(gomock.NewController(t))
		h.handler.ApiRequestRepository = requestLog

		requestID := uuid.New()
		body := `{"profile":"growth","holdings":[]}`
		requestLog.EXPECT().
			Start(nil, gomock.Any()).
			DoAndReturn(func(_ *sql.Tx, start repository.RequestLogStart) (uuid.UUID, error) {
				require.Equal(t, "POST", start.Method)
				require.Equal(t, "/grade", start.Route)
				require.Equal(t, body, string(start.Body))
				return requestID, nil
			})
		requestLog.EXPECT().
			Finish(nil, requestID, gomock.Any()).
			DoAndReturn(func(_ *sql.Tx, _ uuid.UUID, finish repository.RequestLogFinish) error {
				require.Equal(t, 400, finish.StatusCode)
				require.Contains(t, string(finish.Body), "error")
				return nil
			})

		w := h.do("POST", "/grade", []byte(body), nil)
		require.Equal(t, 400, w.Code)
	})

	t.Run("request is served when logging fails", func(t *testing.T) {
		h := newTestHandler(t)
		requestLog := mock_repository.NewMockApiRequestRepository(gomock.NewController(t))
		h.handler.ApiRequestRepository = requestLog

		requestLog.EXPECT().Start(nil, gomock.Any()).Return(uuid.Nil, fmt.Errorf("connection refused"))
		requestLog.EXPECT().Finish(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		w := h.do("GET", "/", nil, nil)
		require.Equal(t, 200, w.Code)
	})
}
