package config

import (
	"flag"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Режимы открытия капсулы
const (
	CapsuleOpenKeep = "keep" // сообщение остаётся, фиксируется opened_at
	CapsuleOpenBurn = "burn" // капсула удаляется при первом открытии
)

type Config struct {
	// Server-side settings
	DatabaseDSN     string `env:"DATABASE_URI"`
	AuthSecret      string `env:"AUTH_SECRET"`
	Timezone        string `env:"TIMEZONE"`
	CapsuleOpenMode string `env:"CAPSULE_OPEN_MODE"`
	ImageMaxSizeMB  int    `env:"IMAGE_MAX_MB"`

	// Object storage for memory photos
	S3Bucket   string `env:"AWS_BUCKET_NAME"`
	S3Region   string `env:"AWS_REGION"`
	S3Endpoint string `env:"S3_ENDPOINT"`

	// Shared settings
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`

	// Client-side settings
	ServerURL string `env:"-"`
	TokenFile string `env:"TOKEN_FILE"`
	Version   bool   `env:"-"` // show client version and exit (flag only)
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags работают ТОЛЬКО если переменные из env не заданы
	// Server flags
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД (postgres DSN или путь к sqlite)")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для проверки JWT")
	flag.StringVar(&cfg.Timezone, "tz", cfg.Timezone, "IANA timezone that defines the calendar day")
	flag.StringVar(&cfg.CapsuleOpenMode, "capsule-open-mode", cfg.CapsuleOpenMode, "keep | burn")
	flag.IntVar(&cfg.ImageMaxSizeMB, "image-max-mb", cfg.ImageMaxSizeMB, "max memory photo size in MB")
	flag.StringVar(&cfg.S3Bucket, "s3-bucket", cfg.S3Bucket, "bucket for memory photos (empty disables uploads)")
	flag.StringVar(&cfg.S3Region, "s3-region", cfg.S3Region, "bucket region")
	flag.StringVar(&cfg.S3Endpoint, "s3-endpoint", cfg.S3Endpoint, "custom S3 endpoint (LocalStack, MinIO)")
	// Shared/client flags
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "address of the server in host:port form")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS (client: prefer https scheme for BaseURL)")
	// Client flags
	flag.StringVar(&cfg.TokenFile, "token-file", cfg.TokenFile, "path to auth token file (client)")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	cfg.applyDefaults()
	return cfg
}

func (cfg *Config) applyDefaults() {
	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = "nuremento.db"
	}
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = "dev-secret-key"
	}
	if cfg.Timezone == "" {
		cfg.Timezone = "UTC"
	}
	mode := strings.ToLower(strings.TrimSpace(cfg.CapsuleOpenMode))
	if mode != CapsuleOpenBurn {
		mode = CapsuleOpenKeep
	}
	cfg.CapsuleOpenMode = mode
	if cfg.ImageMaxSizeMB <= 0 {
		cfg.ImageMaxSizeMB = 8
	}
	if cfg.S3Region == "" {
		cfg.S3Region = "us-east-1"
	}

	// validate BaseURL: must be in "address:port" (no scheme, no path). Otherwise use default.
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = "localhost:8081"
	}

	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}

	if cfg.TokenFile == "" {
		home, _ := os.UserHomeDir()
		cfg.TokenFile = filepath.Join(home, ".nuremento_token")
	}
}

// BurnOnOpen сообщает, удаляется ли капсула при первом открытии.
func (cfg *Config) BurnOnOpen() bool {
	return cfg.CapsuleOpenMode == CapsuleOpenBurn
}

// ImageMaxBytes - лимит размера фото в байтах.
func (cfg *Config) ImageMaxBytes() int64 {
	return int64(cfg.ImageMaxSizeMB) * 1024 * 1024
}
