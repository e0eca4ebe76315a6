package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	OCR      OCRConfig
	LLM      LLMConfig
	Export   ExportConfig
	Contract ContractConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Path        string
	DialTimeout time.Duration
	BusyTimeout time.Duration
}

// OCRConfig holds OCR-related configuration
type OCRConfig struct {
	TesseractLang string
	TessdataDir   string
	DPI           int
	MaxPages      int
}

// LLMConfig holds LLM-related configuration
type LLMConfig struct {
	Model       string
	APIKey      string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
}

// ExportConfig holds workbook output configuration
type ExportConfig struct {
	OutputDir string
}

// ContractConfig holds labor-contract template configuration
type ContractConfig struct {
	TemplatePath string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path:        getEnv("BIZDOC_DB_PATH", "bizdoc.db"),
			DialTimeout: getEnvAsDuration("BIZDOC_DB_DIAL_TIMEOUT", 3*time.Second),
			BusyTimeout: getEnvAsDuration("BIZDOC_DB_BUSY_TIMEOUT", 5*time.Second),
		},
		OCR: OCRConfig{
			TesseractLang: getEnv("BIZDOC_OCR_LANG", "vie+eng"),
			TessdataDir:   getEnv("TESSDATA_PREFIX", ""),
			DPI:           getEnvAsInt("BIZDOC_OCR_DPI", 300),
			MaxPages:      getEnvAsInt("BIZDOC_OCR_MAX_PAGES", 0),
		},
		LLM: LLMConfig{
			Model:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			Temperature: getEnvAsFloat32("OPENAI_TEMPERATURE", 0.1),
			MaxTokens:   getEnvAsInt("OPENAI_MAX_TOKENS", 2000),
			Timeout:     getEnvAsDuration("OPENAI_TIMEOUT", 45*time.Second),
		},
		Export: ExportConfig{
			OutputDir: getEnv("BIZDOC_EXPORT_DIR", "."),
		},
		Contract: ContractConfig{
			TemplatePath: getEnv("BIZDOC_CONTRACT_TEMPLATE", "HDLD_Mau.txt"),
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

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
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

// Validate checks the loaded configuration. The API key is optional: the
// deterministic pipeline works without it.
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return NewAppError("CONFIG_ERROR", "BIZDOC_DB_PATH is required", ErrInvalidInput)
	}
	if c.OCR.TesseractLang == "" {
		return NewAppError("CONFIG_ERROR", "BIZDOC_OCR_LANG is required", ErrInvalidInput)
	}
	return nil
}
