package bootstrap

import (
	"testing"
	"time"

	"github.com/dalemusser/waffle/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func validAppConfig() AppConfig {
	return AppConfig{
		MongoURI:      "mongodb://localhost:27017",
		MongoDatabase: "stratatour",
		ContentSource: ContentSourceFile,
		ContentDir:    "./data/content",
		APIKey:        "secret",
		StorageType:   "local",
		StatsEnabled:  true,
		StatsBucket:   time.Hour,
	}
}

func TestValidateConfig(t *testing.T) {
	dev := &config.CoreConfig{Env: "dev"}
	prod := &config.CoreConfig{Env: "prod"}

	require.NoError(t, ValidateConfig(dev, validAppConfig(), zap.NewNop()))

	tests := []struct {
		name   string
		core   *config.CoreConfig
		mutate func(*AppConfig)
	}{
		{"unknown content source", dev, func(c *AppConfig) { c.ContentSource = "s3" }},
		{"file source without dir", dev, func(c *AppConfig) { c.ContentDir = "" }},
		{"unknown storage", dev, func(c *AppConfig) { c.StorageType = "ftp" }},
		{"s3 without bucket", dev, func(c *AppConfig) { c.StorageType = "s3" }},
		{"tiny stats bucket", dev, func(c *AppConfig) { c.StatsBucket = time.Second }},
		{"no api key in prod", prod, func(c *AppConfig) { c.APIKey = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validAppConfig()
			tt.mutate(&cfg)
			assert.Error(t, ValidateConfig(tt.core, cfg, zap.NewNop()))
		})
	}

	t.Run("no api key outside prod warns", func(t *testing.T) {
		cfg := validAppConfig()
		cfg.APIKey = ""
		assert.NoError(t, ValidateConfig(dev, cfg, zap.NewNop()))
	})

	t.Run("mongo source needs no dir", func(t *testing.T) {
		cfg := validAppConfig()
		cfg.ContentSource = ContentSourceMongo
		cfg.ContentDir = ""
		assert.NoError(t, ValidateConfig(dev, cfg, zap.NewNop()))
	})

	t.Run("disabled stats ignore bucket", func(t *testing.T) {
		cfg := validAppConfig()
		cfg.StatsEnabled = false
		cfg.StatsBucket = 0
		assert.NoError(t, ValidateConfig(dev, cfg, zap.NewNop()))
	})
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Nil(t, splitList(" , "))
	assert.Equal(t, []string{"https://a.example", "https://b.example"},
		splitList(" https://a.example,,https://b.example "))
}
