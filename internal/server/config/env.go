package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/tejashvarkr/Project-Wellness-Hub/internal/flagx"
)

// EnvPrefix prefixes every environment variable the server reads.
const EnvPrefix = "WELLNESS_"

// parseEnv loads a dotenv file and overlays WELLNESS_* variables onto config.
// The file named by -e/-env is required to exist; otherwise ".env" in the
// working directory is loaded when present. Values from the file override
// variables already set in the process environment.
//
// Recognized variables (without prefix): GRPC_ADDR, DATABASE_DSN, SECRET_KEY,
// ACCESS_TOKEN_TTL, REFRESH_TOKEN_TTL, DEFAULT_TZ, S3_USER, S3_PASSWORD,
// S3_BUCKET, S3_REGION, S3_ENDPOINT, EXPORT_URL_TTL. Durations use Go syntax.
func parseEnv(config *Config) {
	if path := flagx.EnvFileFlags(); path != "" {
		if err := godotenv.Overload(path); err != nil {
			panic(err)
		}
	} else if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Overload(".env")
	}

	applyEnv(config, os.LookupEnv)
}

func applyEnv(config *Config, lookup func(string) (string, bool)) {
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	dur := func(key string, dst *time.Duration) {
		v, ok := lookup(EnvPrefix + key)
		if !ok || strings.TrimSpace(v) == "" {
			return
		}
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			panic(err)
		}
		*dst = d
	}

	str("GRPC_ADDR", &config.EndpointAddrGRPC)
	str("DATABASE_DSN", &config.DatabaseDSN)
	str("SECRET_KEY", &config.SecretKey)
	dur("ACCESS_TOKEN_TTL", &config.AccessTokenValidityDuration)
	dur("REFRESH_TOKEN_TTL", &config.RefreshTokenValidityDuration)
	str("DEFAULT_TZ", &config.DefaultTimeZone)
	str("S3_USER", &config.S3RootUser)
	str("S3_PASSWORD", &config.S3RootPassword)
	str("S3_BUCKET", &config.S3Bucket)
	str("S3_REGION", &config.S3Region)
	str("S3_ENDPOINT", &config.S3BaseEndpoint)
	dur("EXPORT_URL_TTL", &config.ExportURLValidity)
}
