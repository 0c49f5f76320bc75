package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// AskMode values control when the hosted model is consulted.
const (
	AskModeAuto   = "auto"   // model only when the local classifier misses
	AskModeAlways = "always" // model for every question
	AskModeLocal  = "local"  // never consult the model
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string

	AWSRegion      string
	AWSAccessKeyID string
	AWSSecretKey   string
	DynamoDBTable  string
	ModelAPIKey    string
	ModelAPISecret string // Secrets Manager secret name holding the model key
	ModelName      string
	AskMode        string
	AdminToken     string
	RequestTimeout time.Duration
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Load .env file if not in production
	// We don't return error here because in production .env might not exist
	// and we rely on system environment variables
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:    env,
		Port:           os.Getenv("PORT"),
		AWSRegion:      os.Getenv("AWS_REGION"),
		AWSAccessKeyID: os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretKey:   os.Getenv("AWS_SECRET_ACCESS_KEY"),
		DynamoDBTable:  os.Getenv("DYNAMODB_TABLE"),
		ModelAPIKey:    os.Getenv("GEMINI_API_KEY"),
		ModelAPISecret: os.Getenv("MODEL_API_KEY_SECRET"),
		ModelName:      os.Getenv("GEMINI_MODEL"),
		AskMode:        os.Getenv("ASK_MODE"),
		AdminToken:     os.Getenv("ADMIN_TOKEN"),
	}

	// Set defaults
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.AWSRegion == "" {
		cfg.AWSRegion = "us-east-1"
	}
	if cfg.DynamoDBTable == "" {
		cfg.DynamoDBTable = "RichmondTechCommunity"
	}
	if cfg.ModelName == "" {
		cfg.ModelName = "gemini-2.0-flash"
	}
	switch cfg.AskMode {
	case AskModeAuto, AskModeAlways, AskModeLocal:
	default:
		cfg.AskMode = AskModeAuto
	}

	cfg.RequestTimeout = 30 * time.Second
	if s := os.Getenv("REQUEST_TIMEOUT"); s != "" {
		if secs, err := strconv.Atoi(s); err == nil && secs > 0 {
			cfg.RequestTimeout = time.Duration(secs) * time.Second
		}
	}

	return cfg, nil
}
