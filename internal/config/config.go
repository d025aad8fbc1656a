package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the API service.
type Config struct {
	AppName           string
	AppEnv            string
	AppPort           string
	DatabaseURL       string
	RedisURL          string
	NATSURL           string
	CORSOrigins       string
	JWTSecret         string
	JWTExpiry         time.Duration
	StatistikCacheTTL time.Duration
	NotifChannelBase  string
	VerifyTimeout     time.Duration
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("IZAKOD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "IZAKOD-ASN API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("cors.origins", "*")
	v.SetDefault("jwt.expiry", "12h")
	v.SetDefault("statistik.cache_ttl", "10m")
	v.SetDefault("notif.channel_base", "izakod:asn")
	v.SetDefault("verify.timeout", "10s")

	expiry, err := time.ParseDuration(v.GetString("jwt.expiry"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid jwt expiry: %w", err)
	}

	ttl, err := time.ParseDuration(v.GetString("statistik.cache_ttl"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid statistik cache ttl: %w", err)
	}

	verifyTimeout, err := time.ParseDuration(v.GetString("verify.timeout"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid verify timeout: %w", err)
	}

	cfg := Config{
		AppName:           v.GetString("app.name"),
		AppEnv:            v.GetString("app.env"),
		AppPort:           v.GetString("app.port"),
		DatabaseURL:       v.GetString("database.url"),
		RedisURL:          v.GetString("redis.url"),
		NATSURL:           v.GetString("nats.url"),
		CORSOrigins:       v.GetString("cors.origins"),
		JWTSecret:         v.GetString("jwt.secret"),
		JWTExpiry:         expiry,
		StatistikCacheTTL: ttl,
		NotifChannelBase:  v.GetString("notif.channel_base"),
		VerifyTimeout:     verifyTimeout,
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("jwt secret must be provided")
	}

	return cfg, nil
}
