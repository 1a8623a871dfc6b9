package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.MaxUploadBytes != 10485760 {
		t.Errorf("expected 10MB default, got %d", cfg.MaxUploadBytes)
	}
	if cfg.MinContentLength != 100 {
		t.Errorf("expected min content 100, got %d", cfg.MinContentLength)
	}
	if cfg.SessionTTL != time.Hour {
		t.Errorf("expected 1h TTL, got %v", cfg.SessionTTL)
	}
	if !cfg.PDFFallbackPdftotext {
		t.Error("expected pdftotext fallback on by default")
	}
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MAX_FILE_SIZE", "1024")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("ALLOWED_EXTENSIONS", "pdf, .TXT")
	t.Setenv("DEBUG", "true")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %q", cfg.Port)
	}
	if cfg.MaxUploadBytes != 1024 {
		t.Errorf("expected 1024 bytes, got %d", cfg.MaxUploadBytes)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Errorf("expected 30m TTL, got %v", cfg.SessionTTL)
	}
	if !cfg.Debug {
		t.Error("expected debug on")
	}
	// Extensions are normalized: lowercase, no dots.
	if len(cfg.AllowedExtensions) != 2 || cfg.AllowedExtensions[1] != "txt" {
		t.Errorf("unexpected extensions %v", cfg.AllowedExtensions)
	}
}

func TestLoad_BadValuesFallBack(t *testing.T) {
	t.Setenv("MAX_FILE_SIZE", "not-a-number")
	t.Setenv("SESSION_TTL", "soon")
	t.Setenv("MIN_CONTENT_LENGTH", "-5")

	cfg := Load()
	if cfg.MaxUploadBytes != 10485760 {
		t.Errorf("expected default size on parse failure, got %d", cfg.MaxUploadBytes)
	}
	if cfg.SessionTTL != time.Hour {
		t.Errorf("expected default TTL on parse failure, got %v", cfg.SessionTTL)
	}
	if cfg.MinContentLength != 100 {
		t.Errorf("expected negative min content clamped, got %d", cfg.MinContentLength)
	}
}

func TestWarnings(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("MAX_TOKENS", "-1")
	t.Setenv("TEMPERATURE", "1.5")

	warnings := Load().Warnings()
	if len(warnings) != 3 {
		t.Fatalf("expected 3 warnings, got %d: %v", len(warnings), warnings)
	}
	if !strings.Contains(warnings[0], "OPENAI_API_KEY") {
		t.Errorf("unexpected first warning %q", warnings[0])
	}
}

func TestWarnings_CleanConfig(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("MAX_TOKENS", "500")
	t.Setenv("TEMPERATURE", "0.5")

	if warnings := Load().Warnings(); len(warnings) != 0 {
		t.Errorf("expected no warnings, got %v", warnings)
	}
}

func TestAllowsExtension(t *testing.T) {
	cfg := Config{AllowedExtensions: []string{"pdf", "txt"}}
	tests := []struct {
		ext  string
		want bool
	}{
		{".pdf", true},
		{"pdf", true},
		{".TXT", true},
		{".docx", false},
		{"", false},
	}
	for _, tc := range tests {
		if got := cfg.AllowsExtension(tc.ext); got != tc.want {
			t.Errorf("AllowsExtension(%q) = %v, want %v", tc.ext, got, tc.want)
		}
	}
}
