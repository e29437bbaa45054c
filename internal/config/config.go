package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	PortalURL      string
	WorkerCount    int
	Headless       bool
	PageLoadDelay  time.Duration
	ResultsTimeout time.Duration
	PageTimeout    time.Duration
	MaxRetries     int
	RetryDelay     time.Duration
	PagesPerSecond float64
	OutputDir      string
	OutputPrefix   string
	WriteCSV       bool
	LogFile        string
	HTTPPort       string
	MongoURI       string
	MongoDatabase  string
}

func Load() *Config {
	// Missing .env is fine, env vars still apply.
	_ = godotenv.Load()

	return &Config{
		PortalURL:      getEnv("PORTAL_URL", "https://mis.ihc.gov.pk/frmCseSrch"),
		WorkerCount:    getEnvInt("WORKER_COUNT", 3),
		Headless:       getEnvBool("HEADLESS", true),
		PageLoadDelay:  getEnvDuration("PAGE_LOAD_DELAY", 5*time.Second),
		ResultsTimeout: getEnvDuration("RESULTS_TIMEOUT", 60*time.Second),
		PageTimeout:    getEnvDuration("PAGE_TIMEOUT", 30*time.Second),
		MaxRetries:     getEnvInt("MAX_RETRIES", 2),
		RetryDelay:     getEnvDuration("RETRY_DELAY", 5*time.Second),
		PagesPerSecond: getEnvFloat("PAGES_PER_SECOND", 0.5),
		OutputDir:      getEnv("OUTPUT_DIR", "output"),
		OutputPrefix:   getEnv("OUTPUT_PREFIX", "ihc_cases"),
		WriteCSV:       getEnvBool("WRITE_CSV", false),
		LogFile:        getEnv("LOG_FILE", "ihc_scraper.log"),
		HTTPPort:       getEnv("HTTP_PORT", ""),
		MongoURI:       getEnv("MONGO_URI", ""),
		MongoDatabase:  getEnv("MONGO_DB", "court_cases"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
