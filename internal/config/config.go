package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env          string
	Port         string
	DatabaseURL  string
	AllowOrigins string
	RateLimitMax int
	SeedDemo     bool
}

// Load reads .env when present, then the environment, with sane defaults for
// local runs. An empty DATABASE_URL selects the in-memory repositories.
func Load() *Config {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("ALLOW_ORIGINS", "http://localhost:5173")
	viper.SetDefault("RATE_LIMIT_MAX", 100)
	viper.SetDefault("SEED_DEMO_DATA", true)
	viper.AutomaticEnv()

	return &Config{
		Env:          viper.GetString("APP_ENV"),
		Port:         viper.GetString("PORT"),
		DatabaseURL:  viper.GetString("DATABASE_URL"),
		AllowOrigins: viper.GetString("ALLOW_ORIGINS"),
		RateLimitMax: viper.GetInt("RATE_LIMIT_MAX"),
		SeedDemo:     viper.GetBool("SEED_DEMO_DATA"),
	}
}
