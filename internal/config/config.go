package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings. It is built once at startup and
// passed to the collaborators that need it; nothing reads the
// environment after Load returns.
type Config struct {
	Port string

	// Auth. Empty means the API is open (the assistant is offline and
	// keyless by default).
	APIKey string

	// Model settings. Kept for parity with the configuration surface;
	// the offline answerer never calls a model.
	OpenAIAPIKey string
	ModelName    string
	MaxTokens    int
	Temperature  float64

	// Upload limits
	MaxUploadBytes    int64
	AllowedExtensions []string

	// Analysis settings
	DefaultQuestionCount int
	SummarySentences     int
	MinContentLength     int

	// Session state
	SessionTTL time.Duration

	// PDF
	PDFFallbackPdftotext bool

	Debug    bool
	LogLevel string
}

// Load reads configuration from the environment, pulling in a .env
// file first when one exists.
func Load() Config {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	cfg := Config{
		Port: envOr("PORT", "8080"),

		APIKey: os.Getenv("PAPERIQ_API_KEY"),

		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		ModelName:    envOr("MODEL_NAME", "gpt-3.5-turbo"),
		MaxTokens:    envInt("MAX_TOKENS", 1000),
		Temperature:  envFloat("TEMPERATURE", 0.7),

		MaxUploadBytes:    envInt64("MAX_FILE_SIZE", 10485760), // 10MB
		AllowedExtensions: envList("ALLOWED_EXTENSIONS", []string{"pdf", "txt", "md", "html", "docx"}),

		DefaultQuestionCount: envInt("DEFAULT_QUESTION_COUNT", 5),
		SummarySentences:     envInt("SUMMARY_LENGTH", 3),
		MinContentLength:     envInt("MIN_CONTENT_LENGTH", 100),

		SessionTTL: envDuration("SESSION_TTL", 1*time.Hour),

		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),

		Debug:    envBool("DEBUG", false),
		LogLevel: envOr("LOG_LEVEL", "info"),
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 10485760
	}
	if cfg.DefaultQuestionCount <= 0 {
		cfg.DefaultQuestionCount = 5
	}
	if cfg.SummarySentences <= 0 {
		cfg.SummarySentences = 3
	}
	if cfg.MinContentLength <= 0 {
		cfg.MinContentLength = 100
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 1 * time.Hour
	}
	if len(cfg.AllowedExtensions) == 0 {
		cfg.AllowedExtensions = []string{"pdf", "txt"}
	}

	return cfg
}

// Warnings reports configuration problems. None of them is fatal: the
// caller logs them and keeps going.
func (c Config) Warnings() []string {
	var warnings []string
	if c.OpenAIAPIKey == "" {
		warnings = append(warnings, "OPENAI_API_KEY not set; model-backed features stay disabled")
	}
	if c.MaxTokens <= 0 {
		warnings = append(warnings, fmt.Sprintf("MAX_TOKENS must be positive, got %d", c.MaxTokens))
	}
	if c.Temperature < 0 || c.Temperature > 1 {
		warnings = append(warnings, fmt.Sprintf("TEMPERATURE must be between 0 and 1, got %g", c.Temperature))
	}
	return warnings
}

// AllowsExtension reports whether a file extension (with or without
// the leading dot) is accepted for upload.
func (c Config) AllowsExtension(ext string) bool {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	for _, allowed := range c.AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			out = append(out, strings.TrimPrefix(part, "."))
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
