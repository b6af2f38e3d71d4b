package config

import (
	"log"
	"os"
)

type Mode string

const (
	ModeLocal Mode = "local"
	ModeGCP   Mode = "gcp"
)

type Config struct {
	Mode Mode

	Port string

	// Gemini via API key (the simple path, works without GCP).
	GeminiAPIKey string

	// Vertex AI settings, only meaningful in gcp mode.
	GCPProjectID string
	GCPLocation  string
	ModelName    string

	StorageBackend string // "jsonfile", "memory" or "firestore"
	DataDir        string // where the jsonfile backend keeps the history file
	UseMockLLM     bool   // true = use mock even when a key is configured
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBoolEnv(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if v == "1" || v == "true" || v == "TRUE" {
		return true
	}
	return false
}

// Load reads all env vars and builds the config
func Load() *Config {
	modeStr := getEnv("STUDYCOACH_MODE", "local")
	var mode Mode
	switch modeStr {
	case "gcp":
		mode = ModeGCP
	default:
		mode = ModeLocal
	}

	apiKey := getEnv("GEMINI_API_KEY", "")

	cfg := &Config{
		Mode: mode,

		Port: getEnv("STUDYCOACH_PORT", "8080"),

		GeminiAPIKey: apiKey,

		GCPProjectID: getEnv("STUDYCOACH_GCP_PROJECT", ""),
		GCPLocation:  getEnv("STUDYCOACH_GCP_LOCATION", "us-central1"),
		ModelName:    getEnv("STUDYCOACH_MODEL_NAME", "gemini-2.5-flash-lite"),

		StorageBackend: getEnv("STUDYCOACH_STORAGE_BACKEND", "jsonfile"),
		DataDir:        getEnv("STUDYCOACH_DATA_DIR", "data"),

		// Without any credential the mock keeps the app fully offline.
		UseMockLLM: getBoolEnv("STUDYCOACH_USE_MOCK_LLM", false),
	}

	// Minimal validation in GCP mode
	if cfg.Mode == ModeGCP && cfg.GCPProjectID == "" {
		log.Fatal("STUDYCOACH_GCP_PROJECT must be set in gcp mode")
	}
	if cfg.StorageBackend == "firestore" && cfg.GCPProjectID == "" {
		log.Fatal("STUDYCOACH_GCP_PROJECT is required for the firestore backend")
	}

	return cfg
}

// HasLLMCredential reports whether any real LLM backend can be built.
func (c *Config) HasLLMCredential() bool {
	if c.GeminiAPIKey != "" {
		return true
	}
	return c.Mode == ModeGCP && c.GCPProjectID != ""
}
