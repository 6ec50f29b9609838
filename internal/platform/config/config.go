package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// Access token signing
	AccessTokenSecret string
	AccessTokenExpiry time.Duration
	JWTIssuer         string

	// Refresh token signing + cookie delivery
	RefreshTokenSecret string
	RefreshTokenExpiry time.Duration

	AccessTokenCookieName  string
	RefreshTokenCookieName string

	// Object storage for quiz images
	S3Bucket string
	S3Region string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_ACCESS_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_ACCESS_EXPIRY", "1h")
	viper.SetDefault("JWT_ISSUER", "quizforum-backend")
	viper.SetDefault("JWT_REFRESH_SECRET", "default_insecure_refresh_secret_please_change_this_!@#$")
	viper.SetDefault("JWT_REFRESH_EXPIRY", "168h")
	viper.SetDefault("ACCESS_TOKEN_COOKIE_NAME", "accessToken")
	viper.SetDefault("REFRESH_TOKEN_COOKIE_NAME", "refreshToken")
	viper.SetDefault("S3_BUCKET", "quizzes-assets")
	viper.SetDefault("S3_REGION", "ap-northeast-2")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.AccessTokenSecret = viper.GetString("JWT_ACCESS_SECRET")
	if cfg.AccessTokenSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_ACCESS_SECRET not set. Using default insecure key.")
	}

	accessExpiryStr := viper.GetString("JWT_ACCESS_EXPIRY")
	accessExpiry, err := time.ParseDuration(accessExpiryStr)
	if err != nil {
		accessExpiry = time.Hour
		log.Printf("Warning: Invalid value for JWT_ACCESS_EXPIRY ('%s'). Defaulting to %s.\n", accessExpiryStr, accessExpiry)
	}
	cfg.AccessTokenExpiry = accessExpiry

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.RefreshTokenSecret = viper.GetString("JWT_REFRESH_SECRET")
	if cfg.RefreshTokenSecret == "default_insecure_refresh_secret_please_change_this_!@#$" {
		log.Println("Warning: JWT_REFRESH_SECRET not set. Using default insecure key. THIS IS NOT FOR PRODUCTION.")
	}

	refreshExpiryStr := viper.GetString("JWT_REFRESH_EXPIRY")
	refreshExpiry, err := time.ParseDuration(refreshExpiryStr)
	if err != nil {
		refreshExpiry = time.Hour * 24 * 7
		log.Printf("Warning: Invalid value for JWT_REFRESH_EXPIRY ('%s'). Defaulting to %s.\n", refreshExpiryStr, refreshExpiry)
	}
	cfg.RefreshTokenExpiry = refreshExpiry

	cfg.AccessTokenCookieName = viper.GetString("ACCESS_TOKEN_COOKIE_NAME")
	cfg.RefreshTokenCookieName = viper.GetString("REFRESH_TOKEN_COOKIE_NAME")

	cfg.S3Bucket = viper.GetString("S3_BUCKET")
	cfg.S3Region = viper.GetString("S3_REGION")

	return cfg, nil
}
