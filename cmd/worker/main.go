package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gradeyour401k/cmd"
	"gradeyour401k/internal/scheduler"
	"gradeyour401k/internal/util"
)

func main() {
	handler, cfg, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(handler)
	lg := handler.Logger

	s, err := scheduler.New(lg)
	if err != nil {
		log.Fatal(err)
	}

	err = s.NewCrontabJob("daily-models", func(ctx context.Context) error {
		result, err := handler.DailyModelApp.Run(ctx, util.ToDate(time.Now()))
		if err != nil {
			return err
		}
		lg.Infow("daily models built", "asOf", result.AsOf, "models", len(result.Models))
		return nil
	}, cfg.Jobs.DailyModelCron, false)
	if err != nil {
		log.Fatal(err)
	}

	err = s.NewIntervalJob("warm-model-cache", handler.DailyModelApp.WarmCache, cfg.Jobs.CacheWarmInterval, true)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	lg.Infow("worker started", "dailyModelCron", cfg.Jobs.DailyModelCron, "cacheWarmInterval", cfg.Jobs.CacheWarmInterval)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	lg.Info("stopping worker")
	if err := s.Stop(); err != nil {
		lg.Errorw("failed to stop scheduler", "error", err)
	}
}
