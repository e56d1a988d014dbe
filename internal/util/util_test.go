package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("date", func(t *testing.T) {
		d, err := ParseDate("2024-01-31")
		require.NoError(t, err)
		require.Equal(t, NewDate(2024, 1, 31), d)
	})

	t.Run("empty is today", func(t *testing.T) {
		d, err := ParseDate("")
		require.NoError(t, err)
		require.True(t, DateLte(d, time.Now().UTC()))
		require.Equal(t, 0, d.Hour())
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := ParseDate("01/31/2024")
		require.Error(t, err)
	})
}

func TestToDate(t *testing.T) {
	loc := time.FixedZone("EST", -5*60*60)
	require.Equal(t, NewDate(2024, 2, 1), ToDate(time.Date(2024, 1, 31, 22, 0, 0, 0, loc)))
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("CACHE_SNAPSHOT_TTL", "2h")
	t.Setenv("REDISTRIBUTION_POLICY", "proportional")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 2*time.Hour, cfg.Cache.SnapshotTTL)
	require.Equal(t, "proportional", cfg.Model.RedistributionPolicy)
	require.Equal(t, 15*time.Minute, cfg.PresignTTL)
	require.Equal(t, "30 22 * * 1-5", cfg.Jobs.DailyModelCron)
}

func TestParseSecrets(t *testing.T) {
	secrets, err := parseSecrets([]byte(`{
		"gpt": "sk-test",
		"db": {"host": "localhost", "user": "postgres", "port": "5440", "password": "postgres", "database": "postgres"},
		"redis": {"addr": "localhost:6379", "db": 2},
		"s3": {"region": "us-east-1", "bucket": "gradeyour401k-dev"},
		"adminJwt": {"secret": "shh"}
	}`))
	require.NoError(t, err)
	require.Equal(t, "host=localhost port=5440 user=postgres password=postgres dbname=postgres sslmode=disable", secrets.Db.ToConnectionStr())
	require.Equal(t, 2, secrets.Redis.DB)
	require.Equal(t, "gradeyour401k-dev", secrets.S3.Bucket)
	require.Equal(t, "shh", secrets.AdminJwt.Secret)
}
