package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

// isolate points HOME at a temp dir and clears the given CNK_ variables,
// restoring them when the test ends.
func isolate(t *testing.T, keys ...string) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, k := range keys {
		t.Setenv(EnvPrefix+k, "")
		if err := os.Unsetenv(EnvPrefix + k); err != nil {
			t.Fatalf("unsetenv: %v", err)
		}
	}
	return home
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoadDefaults(t *testing.T) {
	home := isolate(t, "API_BASE_URL", "PORT")

	cfg, err := Load("", filepath.Join(home, "missing.env"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
	if cfg.APIBaseURL != "https://cnk-ceneka.onrender.com" || cfg.PageSize != 9 || cfg.DetailScanLimit != 100 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadYAML(t *testing.T) {
	home := isolate(t, "API_BASE_URL", "PORT", "GALLERY_CACHE_TTL", "GALLERY_WAIT", "NOTIFY_TO")
	writeFile(t, filepath.Join(home, ".config", "cnk", "config.yaml"), `
api_base_url: http://localhost:4000
port: 9090
listing_variant: all
gallery_cache_ttl: 30s
gallery_wait: 500ms
notify_to:
  - ventas@example.com
smtp:
  host: smtp.example.com
  from: web@example.com
`)

	cfg, err := Load("", filepath.Join(home, "missing.env"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIBaseURL != "http://localhost:4000" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.Port != 9090 || cfg.ListingVariant != "all" {
		t.Errorf("Port = %d, ListingVariant = %q", cfg.Port, cfg.ListingVariant)
	}
	if cfg.GalleryCacheTTL != 30*time.Second {
		t.Errorf("GalleryCacheTTL = %v", cfg.GalleryCacheTTL)
	}
	if cfg.GalleryWait != 500*time.Millisecond {
		t.Errorf("GalleryWait = %v", cfg.GalleryWait)
	}
	if cfg.SMTP.Port != "587" {
		t.Errorf("SMTP.Port = %q, want default kept", cfg.SMTP.Port)
	}
	if !cfg.NotificationsEnabled() {
		t.Error("NotificationsEnabled = false")
	}
	if cfg.PageSize != 9 {
		t.Errorf("PageSize = %d, want default 9", cfg.PageSize)
	}
}

func TestLoadExplicitPathMissing(t *testing.T) {
	home := isolate(t)
	if _, err := Load(filepath.Join(home, "nope.yaml"), filepath.Join(home, "missing.env")); err == nil {
		t.Error("expected error for missing explicit config")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "bad.yaml")
	writeFile(t, path, "port: [")
	_, err := Load(path, filepath.Join(home, "missing.env"))
	if err == nil || !strings.Contains(err.Error(), "parsing config") {
		t.Errorf("err = %v, want parse error", err)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	home := isolate(t, "API_BASE_URL", "PORT", "PAGE_SIZE", "DEV_MODE", "CORS_ORIGINS", "HTTP_TIMEOUT")
	path := filepath.Join(home, "config.yaml")
	writeFile(t, path, "api_base_url: http://from-yaml\nport: 9090\n")

	t.Setenv("CNK_API_BASE_URL", "http://from-env")
	t.Setenv("CNK_PAGE_SIZE", "12")
	t.Setenv("CNK_DEV_MODE", "true")
	t.Setenv("CNK_CORS_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("CNK_HTTP_TIMEOUT", "2s")

	cfg, err := Load(path, filepath.Join(home, "missing.env"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIBaseURL != "http://from-env" {
		t.Errorf("APIBaseURL = %q, env should win", cfg.APIBaseURL)
	}
	if cfg.Port != 9090 {
		t.Errorf("Port = %d, yaml value should stay", cfg.Port)
	}
	if cfg.PageSize != 12 || !cfg.DevMode || cfg.HTTPTimeout != 2*time.Second {
		t.Errorf("cfg = %+v", cfg)
	}
	want := []string{"https://a.example", "https://b.example"}
	if !reflect.DeepEqual(cfg.CORSOrigins, want) {
		t.Errorf("CORSOrigins = %v, want %v", cfg.CORSOrigins, want)
	}
}

func TestLoadDotEnv(t *testing.T) {
	home := isolate(t, "WHATSAPP_NUMBER", "SMTP_HOST")
	envFile := filepath.Join(home, ".env")
	writeFile(t, envFile, "CNK_WHATSAPP_NUMBER=5215550000000\nCNK_SMTP_HOST=mail.example.com\n")
	t.Setenv("CNK_SMTP_HOST", "real-env.example.com")

	cfg, err := Load("", envFile)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.WhatsAppNumber != "5215550000000" {
		t.Errorf("WhatsAppNumber = %q", cfg.WhatsAppNumber)
	}
	if cfg.SMTP.Host != "real-env.example.com" {
		t.Errorf("SMTP.Host = %q, process env should win over .env", cfg.SMTP.Host)
	}
}

func TestLoadBadEnvValue(t *testing.T) {
	home := isolate(t, "PORT", "DEV_MODE")
	t.Setenv("CNK_PORT", "eighty")
	if _, err := Load("", filepath.Join(home, "missing.env")); err == nil {
		t.Error("expected error for non-numeric CNK_PORT")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"ok", func(*Config) {}, ""},
		{"no api", func(c *Config) { c.APIBaseURL = " " }, "api_base_url"},
		{"port", func(c *Config) { c.Port = 70000 }, "port"},
		{"page size", func(c *Config) { c.PageSize = 0 }, "page_size"},
		{"scan limit", func(c *Config) { c.DetailScanLimit = -1 }, "detail_scan_limit"},
		{"variant", func(c *Config) { c.ListingVariant = "sold" }, "listing_variant"},
		{"ttl", func(c *Config) { c.GalleryCacheTTL = -time.Second }, "gallery_cache_ttl"},
		{"gallery wait", func(c *Config) { c.GalleryWait = -time.Second }, "gallery_wait"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.want == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want mention of %q", err, tt.want)
			}
		})
	}
}
