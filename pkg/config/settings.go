// Package config loads runtime settings from the environment and the
// optional routing-table override file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Settings holds all recognized runtime options. Values come from the
// environment (a .env file is loaded by the binaries before this runs).
type Settings struct {
	// API
	APIHost string
	APIPort int

	// Digest / publishing
	VIPDigestHours int
	BotToken       string
	VIPChatID      string

	// Phase-2 extraction
	Phase2ExtractionEnabled    bool
	Phase2BatchSize            int
	Phase2LeaseSeconds         int
	Phase2SchedulerLockSeconds int
	Phase2AdminToken           string

	// Model provider
	OpenAIAPIKey     string
	OpenAIModel      string
	OpenAITimeout    time.Duration
	OpenAIMaxRetries int

	// Feed listener
	SourceChannel    string
	IngestAPIBaseURL string

	// Optional YAML override for the routing table.
	RoutingConfigPath string
}

// LoadSettings reads settings from the environment, applying defaults.
func LoadSettings() (*Settings, error) {
	apiPort, err := intEnv("API_PORT", 8000)
	if err != nil {
		return nil, err
	}
	digestHours, err := intEnv("VIP_DIGEST_HOURS", 4)
	if err != nil {
		return nil, err
	}
	batchSize, err := intEnv("PHASE2_BATCH_SIZE", 50)
	if err != nil {
		return nil, err
	}
	leaseSeconds, err := intEnv("PHASE2_LEASE_SECONDS", 600)
	if err != nil {
		return nil, err
	}
	lockSeconds, err := intEnv("PHASE2_SCHEDULER_LOCK_SECONDS", 540)
	if err != nil {
		return nil, err
	}
	maxRetries, err := intEnv("OPENAI_MAX_RETRIES", 2)
	if err != nil {
		return nil, err
	}
	timeoutSeconds, err := floatEnv("OPENAI_TIMEOUT_SECONDS", 30.0)
	if err != nil {
		return nil, err
	}

	return &Settings{
		APIHost:                    getEnvOrDefault("API_HOST", "0.0.0.0"),
		APIPort:                    apiPort,
		VIPDigestHours:             digestHours,
		BotToken:                   os.Getenv("TG_BOT_TOKEN"),
		VIPChatID:                  os.Getenv("TG_VIP_CHAT_ID"),
		Phase2ExtractionEnabled:    boolEnv("PHASE2_EXTRACTION_ENABLED", false),
		Phase2BatchSize:            batchSize,
		Phase2LeaseSeconds:         leaseSeconds,
		Phase2SchedulerLockSeconds: lockSeconds,
		Phase2AdminToken:           os.Getenv("PHASE2_ADMIN_TOKEN"),
		OpenAIAPIKey:               os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:                getEnvOrDefault("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAITimeout:              time.Duration(timeoutSeconds * float64(time.Second)),
		OpenAIMaxRetries:           maxRetries,
		SourceChannel:              os.Getenv("TG_SOURCE_CHANNEL"),
		IngestAPIBaseURL:           os.Getenv("INGEST_API_BASE_URL"),
		RoutingConfigPath:          os.Getenv("ROUTING_CONFIG_PATH"),
	}, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func intEnv(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func floatEnv(key string, defaultVal float64) (float64, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	parsed, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func boolEnv(key string, defaultVal bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}
	return parsed
}
