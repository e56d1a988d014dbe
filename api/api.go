package api

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"gradeyour401k/internal/app"
	"gradeyour401k/internal/logger"
	"gradeyour401k/internal/repository"
	"gradeyour401k/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ApiHandler struct {
	Logger                     *zap.SugaredLogger
	ApiRequestRepository       repository.ApiRequestRepository
	AllocationTargetRepository repository.AllocationTargetRepository
	ModelService               service.ModelService
	GradeService               service.GradeService
	ReportService              service.ReportService
	SymbolImportService        service.SymbolImportService
	ScoreService               service.ScoreService
	DailyModelApp              app.DailyModelApp
	AdminJwtSecret             string
}

func strPtr(s string) *string {
	return &s
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.loggerMiddleware)
	if m.ApiRequestRepository != nil {
		router.Use(m.logRequestMiddlware)
	}

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to gradeyour401k"})
	})
	router.POST("/grade", m.grade)
	router.GET("/models/:provider/:profile", m.getModel)
	router.POST("/submissions/:id/statementUploadUrl", m.createStatementUploadUrl)
	router.POST("/submissions/:id/report", m.generateReport)

	admin := router.Group("/admin", m.adminAuthMiddleware)
	admin.POST("/models/build", m.buildModels)
	admin.POST("/models/daily", m.runDailyModels)
	admin.POST("/symbols/import", m.importSymbols)
	admin.POST("/scores/ingest", m.ingestScores)
	admin.PUT("/targets/:profile", m.updateTargets)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	router := m.InitializeRouterEngine()
	return router.Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	logger.FromContext(c).Errorw("request failed", "route", c.FullPath(), "error", err)
	c.AbortWithStatusJSON(500, gin.H{
		"error": err.Error(),
	})
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.FromContext(c).Warnw("request rejected", "route", c.FullPath(), "code", code, "error", err)
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// returnServiceError maps service sentinel errors onto status codes
func returnServiceError(err error, c *gin.Context) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		returnErrorJsonCode(err, c, http.StatusBadRequest)
	case errors.Is(err, service.ErrNotFound):
		returnErrorJsonCode(err, c, http.StatusNotFound)
	default:
		returnErrorJson(err, c)
	}
}

func (m ApiHandler) loggerMiddleware(c *gin.Context) {
	lg := m.Logger
	if lg == nil {
		lg = zap.S()
	}
	c.Set(logger.ContextKey, lg.With("method", c.Request.Method, "path", c.Request.URL.Path))
	c.Next()
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (m ApiHandler) logRequestMiddlware(ctx *gin.Context) {
	lg := logger.FromContext(ctx)
	w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: ctx.Writer}
	ctx.Writer = w

	body, err := ctx.GetRawData()
	if err != nil {
		lg.Warnw("failed to get raw data", "error", err)
	}
	ctx.Request.Body = io.NopCloser(bytes.NewReader(body))

	start := time.Now().UTC()
	requestID, err := m.ApiRequestRepository.Start(nil, repository.RequestLogStart{
		IPAddress: ctx.ClientIP(),
		Method:    ctx.Request.Method,
		Route:     ctx.Request.URL.Path,
		Body:      body,
		StartedAt: start,
	})
	if err != nil {
		lg.Warnw("failed to log request", "error", err)
	}

	ctx.Next()

	if requestID != uuid.Nil {
		err = m.ApiRequestRepository.Finish(nil, requestID, repository.RequestLogFinish{
			StatusCode: ctx.Writer.Status(),
			Elapsed:    time.Since(start),
			Body:       w.body.Bytes(),
		})
		if err != nil {
			lg.Warnw("failed to finish request log", "error", err)
		}
	}
}
