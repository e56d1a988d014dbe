package util

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds runtime settings. Credentials live in Secrets.
type Config struct {
	Port int `env:"PORT" envDefault:"3009"`

	Jobs  Jobs
	Cache Cache
	Model Model

	PresignTTL    time.Duration `env:"PRESIGN_TTL" envDefault:"15m"`
	LineupTimeout time.Duration `env:"LINEUP_FETCH_TIMEOUT" envDefault:"30s"`
	// RunMigrations applies pending migrations when dependencies start
	RunMigrations bool `env:"RUN_MIGRATIONS" envDefault:"true"`
}

type Jobs struct {
	// DailyModelCron runs score ingest then the model builds
	DailyModelCron string `env:"DAILY_MODEL_CRON" envDefault:"30 22 * * 1-5"`
	// CacheWarmInterval reloads the latest models into the cache
	CacheWarmInterval time.Duration `env:"CACHE_WARM_INTERVAL" envDefault:"1h"`
}

type Cache struct {
	SnapshotTTL time.Duration `env:"CACHE_SNAPSHOT_TTL" envDefault:"24h"`
}

type Model struct {
	ScoreExpression      string `env:"SCORE_EXPRESSION"`
	RedistributionPolicy string `env:"REDISTRIBUTION_POLICY" envDefault:"single"`
}

func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}
