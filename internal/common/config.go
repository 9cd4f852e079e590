package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Quality  QualityConfig
	Vision   VisionConfig
	Pipeline PipelineConfig
	Resolver ResolverConfig
	ERP      ERPConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// QualityConfig holds the pre-recognition image gate thresholds.
type QualityConfig struct {
	MinSharpness  float64 // Laplacian variance floor
	MinBrightness float64 // mean luma lower bound (0..255)
	MaxBrightness float64 // mean luma upper bound; wide to tolerate scans
	MinWidth      int     // low enough to admit narrow receipt photos
	MinHeight     int
}

// VisionConfig holds vision-model adapter configuration.
type VisionConfig struct {
	BaseURL       string
	Model         string
	APIKey        string
	Timeout       time.Duration
	RetryAttempts int // bounded retries for empty responses
}

// PipelineConfig holds validation thresholds. The tolerances are empirically
// tuned against real supplier documents; keep them configurable rather than
// assuming any particular VAT regime.
type PipelineConfig struct {
	LineTolerance   float64 // per-line sum tolerance, currency units
	TotalTolerance  float64 // document total tolerance, currency units
	ConfidenceFloor int     // below this, needs_review regardless of arithmetic
}

// ResolverConfig holds fuzzy-match acceptance thresholds (0..100).
type ResolverConfig struct {
	MappingThreshold         int // learned-mapping fuzzy tier, products and suppliers
	ProductCatalogThreshold  int
	SupplierCatalogThreshold int
}

// ERPConfig holds the back-office system connection settings.
type ERPConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Quality: QualityConfig{
			MinSharpness:  getEnvAsFloat64("QUALITY_MIN_SHARPNESS", 60.0),
			MinBrightness: getEnvAsFloat64("QUALITY_MIN_BRIGHTNESS", 40.0),
			MaxBrightness: getEnvAsFloat64("QUALITY_MAX_BRIGHTNESS", 245.0),
			MinWidth:      getEnvAsInt("QUALITY_MIN_WIDTH", 500),
			MinHeight:     getEnvAsInt("QUALITY_MIN_HEIGHT", 500),
		},
		Vision: VisionConfig{
			BaseURL:       getEnv("VISION_BASE_URL", "https://api.openai.com/v1/chat/completions"),
			Model:         getEnv("VISION_MODEL", "gpt-4o"),
			APIKey:        getEnv("VISION_API_KEY", ""),
			Timeout:       getEnvAsDuration("VISION_TIMEOUT", 90*time.Second),
			RetryAttempts: getEnvAsInt("VISION_RETRY_ATTEMPTS", 2),
		},
		Pipeline: PipelineConfig{
			LineTolerance:   getEnvAsFloat64("VAT_LINE_TOLERANCE", 0.51),
			TotalTolerance:  getEnvAsFloat64("DOC_TOTAL_TOLERANCE", 5.0),
			ConfidenceFloor: getEnvAsInt("CONFIDENCE_FLOOR", 70),
		},
		Resolver: ResolverConfig{
			MappingThreshold:         getEnvAsInt("MAPPING_THRESHOLD", 85),
			ProductCatalogThreshold:  getEnvAsInt("PRODUCT_CATALOG_THRESHOLD", 80),
			SupplierCatalogThreshold: getEnvAsInt("SUPPLIER_CATALOG_THRESHOLD", 85),
		},
		ERP: ERPConfig{
			BaseURL: getEnv("ERP_BASE_URL", ""),
			APIKey:  getEnv("ERP_API_KEY", ""),
			Timeout: getEnvAsDuration("ERP_TIMEOUT", 30*time.Second),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Vision.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "VISION_API_KEY is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	return nil
}
