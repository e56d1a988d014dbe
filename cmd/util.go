package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gradeyour401k/api"
	"gradeyour401k/internal/app"
	"gradeyour401k/internal/calculator"
	"gradeyour401k/internal/db/migrations"
	"gradeyour401k/internal/logger"
	"gradeyour401k/internal/repository"
	"gradeyour401k/internal/service"
	"gradeyour401k/internal/util"
	"gradeyour401k/pkg/fundlineup"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var redisClient *redis.Client

func CloseDependencies(handler *api.ApiHandler) {
	lg := zap.S()
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			lg.Warnw("failed to close redis", "error", err)
		}
	}
	if err := handler.Db.Close(); err != nil {
		lg.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, *util.Config, error) {
	lg := logger.New()

	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load secrets: %w", err)
	}
	cfg, err := util.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to db: %w", err)
	}
	if cfg.RunMigrations {
		if err := migrations.Up(dbConn); err != nil {
			dbConn.Close()
			return nil, nil, err
		}
	}

	var snapshotCacheRepository repository.SnapshotCacheRepository
	if secrets.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     secrets.Redis.Addr,
			Password: secrets.Redis.Password,
			DB:       secrets.Redis.DB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = redisClient.Ping(ctx).Err()
		cancel()
		if err != nil {
			// models are still served from postgres
			lg.Warnw("redis unavailable; snapshot cache disabled", "addr", secrets.Redis.Addr, "error", err)
			redisClient.Close()
			redisClient = nil
		} else {
			snapshotCacheRepository = repository.NewSnapshotCacheRepository(redisClient, cfg.Cache.SnapshotTTL)
		}
	}

	objectStorageRepository, err := repository.NewObjectStorageRepository(secrets.S3.Region, secrets.S3.Bucket)
	if err != nil {
		return nil, nil, err
	}

	var gptRepository repository.GptRepository
	if secrets.ChatGPTApiKey != "" {
		gptRepository, err = repository.NewGptRepository(secrets.ChatGPTApiKey)
		if err != nil {
			return nil, nil, err
		}
	}

	policy, err := calculator.NewRedistributionPolicy(cfg.Model.RedistributionPolicy)
	if err != nil {
		return nil, nil, err
	}
	modelConfig := calculator.DefaultModelConfig()
	modelConfig.Redistribution = policy

	symbolRepository := repository.NewSymbolRepository(dbConn)
	symbolScoreRepository := repository.NewSymbolScoreRepository(dbConn)
	allocationTargetRepository := repository.NewAllocationTargetRepository(dbConn)
	modelSnapshotRepository := repository.NewModelSnapshotRepository(dbConn)
	gradeSubmissionRepository := repository.NewGradeSubmissionRepository(dbConn)
	priceRepository := repository.NewAdjustedPriceRepository(dbConn)

	modelService := service.NewModelService(
		dbConn,
		calculator.NewModelBuilder(modelConfig),
		symbolRepository,
		symbolScoreRepository,
		allocationTargetRepository,
		modelSnapshotRepository,
		snapshotCacheRepository,
	)
	scoreService := service.NewScoreService(
		symbolRepository,
		priceRepository,
		repository.NewMarketDataRepository(),
		symbolScoreRepository,
		cfg.Model.ScoreExpression,
	)
	gradeService := service.NewGradeService(
		symbolRepository,
		gradeSubmissionRepository,
		modelService,
	)
	reportService := service.NewReportService(
		gradeSubmissionRepository,
		objectStorageRepository,
		gptRepository,
		modelService,
		cfg.PresignTTL,
	)
	symbolImportService := service.NewSymbolImportService(
		dbConn,
		symbolRepository,
		fundlineup.New(cfg.LineupTimeout),
	)

	apiHandler := &api.ApiHandler{
		Logger:                     lg,
		ApiRequestRepository:       repository.NewApiRequestRepository(dbConn),
		AllocationTargetRepository: allocationTargetRepository,
		ModelService:               modelService,
		GradeService:               gradeService,
		ReportService:              reportService,
		SymbolImportService:        symbolImportService,
		ScoreService:               scoreService,
		DailyModelApp:              app.NewDailyModelApp(scoreService, modelService),
		AdminJwtSecret:             secrets.AdminJwt.Secret,
	}

	return apiHandler, cfg, nil
}
