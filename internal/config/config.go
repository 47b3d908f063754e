package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// DatabaseConfig holds PostgreSQL settings for the optional activity ledger.
// The ledger is disabled when Host is empty.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// Enabled reports whether a database has been configured.
func (c DatabaseConfig) Enabled() bool {
	return c.Host != ""
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// GeminiConfig holds settings for the question-answering provider.
// An empty APIKey does not prevent startup; it fails the ask path only.
type GeminiConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// UploadConfig holds upload limits and the transient scratch area settings.
type UploadConfig struct {
	MaxBytes       int64
	ScratchBackend string
	ScratchDir     string
}

// CORSConfig lists the browser origins allowed to call the API.
type CORSConfig struct {
	AllowedOrigins []string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables once at startup and passed
// explicitly to every component that needs it.
type AppConfig struct {
	Env      string
	AppHost  string
	Port     string
	Gemini   GeminiConfig
	Upload   UploadConfig
	CORS     CORSConfig
	Database DatabaseConfig
	MinIO    MinIOConfig
}

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	ScratchDisk  = "disk"
	ScratchMinIO = "minio"

	DefaultMaxUploadBytes = 10 * 1024 * 1024
	DefaultGeminiBaseURL  = "https://generativelanguage.googleapis.com/v1beta"
	DefaultGeminiModel    = "gemini-1.5-flash"
)

var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5001",
}

// IsDevelopment reports whether verbose error details may be exposed.
func (c *AppConfig) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// Real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		Env:     strings.ToLower(getEnv("APP_ENV", EnvDevelopment)),
		AppHost: getEnv("APP_HOST", ""),
		Port:    getEnv("PORT", "5001"),
		Gemini: GeminiConfig{
			APIKey:  getEnv("API_KEY", getEnv("GEMINI_API_KEY", "")),
			BaseURL: strings.TrimRight(getEnv("GEMINI_BASE_URL", DefaultGeminiBaseURL), "/"),
			Model:   getEnv("GEMINI_MODEL", DefaultGeminiModel),
			Timeout: time.Duration(getEnvInt("GEMINI_TIMEOUT_SEC", 30)) * time.Second,
		},
		Upload: UploadConfig{
			MaxBytes:       int64(getEnvInt("UPLOAD_MAX_BYTES", DefaultMaxUploadBytes)),
			ScratchBackend: strings.ToLower(getEnv("SCRATCH_BACKEND", ScratchDisk)),
			ScratchDir:     getEnv("SCRATCH_DIR", "uploads"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", defaultOrigins),
		},
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

// getEnvList splits a comma-separated variable, dropping blank entries.
func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
