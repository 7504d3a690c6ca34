// Package config loads cnk settings from defaults, a YAML file, a .env file
// and CNK_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "CNK_"

// SMTP holds outgoing mail settings.
type SMTP struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
	User string `yaml:"user"`
	Pass string `yaml:"pass"`
	From string `yaml:"from"`
}

// Config is the full application configuration.
type Config struct {
	APIBaseURL       string        `yaml:"api_base_url"`
	Port             int           `yaml:"port"`
	BaseURL          string        `yaml:"base_url"`
	PageSize         int           `yaml:"page_size"`
	ListingVariant   string        `yaml:"listing_variant"`
	DetailScanLimit  int           `yaml:"detail_scan_limit"`
	GalleryCacheTTL  time.Duration `yaml:"gallery_cache_ttl"`
	GalleryWait      time.Duration `yaml:"gallery_wait"`
	HTTPTimeout      time.Duration `yaml:"http_timeout"`
	DBPath           string        `yaml:"db_path"`
	DevMode          bool          `yaml:"dev_mode"`
	WhatsAppNumber   string        `yaml:"whatsapp_number"`
	ContactRateLimit int           `yaml:"contact_rate_limit"`
	SMTP             SMTP          `yaml:"smtp"`
	NotifyTo         []string      `yaml:"notify_to"`
	CORSOrigins      []string      `yaml:"cors_origins"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		APIBaseURL:       "https://cnk-ceneka.onrender.com",
		Port:             8080,
		BaseURL:          "http://localhost:8080",
		PageSize:         9,
		ListingVariant:   "available",
		DetailScanLimit:  100,
		GalleryCacheTTL:  10 * time.Minute,
		GalleryWait:      2 * time.Second,
		HTTPTimeout:      15 * time.Second,
		WhatsAppNumber:   "522221234567",
		ContactRateLimit: 5,
		SMTP:             SMTP{Port: "587"},
		CORSOrigins:      []string{"*"},
	}
}

// DefaultPath returns ~/.config/cnk/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "cnk", "config.yaml"), nil
}

// Load reads the configuration. An empty path means DefaultPath; a missing
// file at the default path is not an error, a missing explicit path is.
// envFile names a .env file to load first; empty means ".env", and a
// missing .env file is ignored. Variables already in the environment win
// over the .env file.
func Load(path, envFile string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Config{}, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	str := func(key string, dst *string) {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok && v != "" {
			*dst = v
		}
	}
	list := func(key string, dst *[]string) {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok && v != "" {
			*dst = splitList(v)
		}
	}

	str("API_BASE_URL", &c.APIBaseURL)
	str("BASE_URL", &c.BaseURL)
	str("LISTING_VARIANT", &c.ListingVariant)
	str("DB_PATH", &c.DBPath)
	str("WHATSAPP_NUMBER", &c.WhatsAppNumber)
	str("SMTP_HOST", &c.SMTP.Host)
	str("SMTP_PORT", &c.SMTP.Port)
	str("SMTP_USER", &c.SMTP.User)
	str("SMTP_PASS", &c.SMTP.Pass)
	str("SMTP_FROM", &c.SMTP.From)
	list("NOTIFY_TO", &c.NotifyTo)
	list("CORS_ORIGINS", &c.CORSOrigins)

	ints := []struct {
		key string
		dst *int
	}{
		{"PORT", &c.Port},
		{"PAGE_SIZE", &c.PageSize},
		{"DETAIL_SCAN_LIMIT", &c.DetailScanLimit},
		{"CONTACT_RATE_LIMIT", &c.ContactRateLimit},
	}
	for _, e := range ints {
		v := os.Getenv(EnvPrefix + e.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing %s%s: %w", EnvPrefix, e.key, err)
		}
		*e.dst = n
	}

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"GALLERY_CACHE_TTL", &c.GalleryCacheTTL},
		{"GALLERY_WAIT", &c.GalleryWait},
		{"HTTP_TIMEOUT", &c.HTTPTimeout},
	}
	for _, e := range durations {
		v := os.Getenv(EnvPrefix + e.key)
		if v == "" {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parsing %s%s: %w", EnvPrefix, e.key, err)
		}
		*e.dst = d
	}

	if v := os.Getenv(EnvPrefix + "DEV_MODE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parsing %sDEV_MODE: %w", EnvPrefix, err)
		}
		c.DevMode = b
	}
	return nil
}

// Validate reports settings the application cannot run with.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.APIBaseURL) == "" {
		errs = append(errs, errors.New("api_base_url is required"))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d out of range", c.Port))
	}
	if c.PageSize <= 0 {
		errs = append(errs, fmt.Errorf("page_size must be positive, got %d", c.PageSize))
	}
	if c.DetailScanLimit <= 0 {
		errs = append(errs, fmt.Errorf("detail_scan_limit must be positive, got %d", c.DetailScanLimit))
	}
	switch c.ListingVariant {
	case "available", "all":
	default:
		errs = append(errs, fmt.Errorf("listing_variant %q must be available or all", c.ListingVariant))
	}
	if c.GalleryCacheTTL < 0 {
		errs = append(errs, errors.New("gallery_cache_ttl must not be negative"))
	}
	if c.GalleryWait < 0 {
		errs = append(errs, errors.New("gallery_wait must not be negative"))
	}
	if c.ContactRateLimit < 0 {
		errs = append(errs, errors.New("contact_rate_limit must not be negative"))
	}
	return errors.Join(errs...)
}

// NotificationsEnabled reports whether inquiries can be e-mailed.
func (c Config) NotificationsEnabled() bool {
	return c.SMTP.Host != "" && c.SMTP.From != "" && len(c.NotifyTo) > 0
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
