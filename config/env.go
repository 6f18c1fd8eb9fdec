package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv            string
	Port              string
	APIBaseURL        string
	APITimeout        time.Duration
	SessionCookieName string
	SessionTTL        time.Duration
	MaxSessions       int
	OriginURL         string
	TraceExporter     string
	OTLPEndpoint      string
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	// Zero keeps the transport default: no client-side deadline.
	apiTimeout, err := time.ParseDuration(getEnv("API_TIMEOUT", "0s"))
	if err != nil {
		log.Printf("Warning: invalid API_TIMEOUT %q, requests will not time out", os.Getenv("API_TIMEOUT"))
		apiTimeout = 0
	}

	sessionTTL, err := time.ParseDuration(getEnv("SESSION_TTL", "12h"))
	if err != nil {
		log.Printf("Warning: invalid SESSION_TTL %q, using 12h", os.Getenv("SESSION_TTL"))
		sessionTTL = 12 * time.Hour
	}

	maxSessions, err := strconv.Atoi(getEnv("SESSION_MAX", "10000"))
	if err != nil {
		log.Printf("Warning: invalid SESSION_MAX %q, using 10000", os.Getenv("SESSION_MAX"))
		maxSessions = 10000
	}

	AppConfig = &Config{
		AppEnv:            getEnv("APP_ENV", "development"),
		Port:              getEnv("APP_PORT", getEnv("PORT", "8081")),
		APIBaseURL:        strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:8080"), "/"),
		APITimeout:        apiTimeout,
		SessionCookieName: getEnv("SESSION_COOKIE", "pos_session"),
		SessionTTL:        sessionTTL,
		MaxSessions:       maxSessions,
		OriginURL:         getEnv("ORIGIN_URL", ""),
		TraceExporter:     strings.ToLower(getEnv("TRACE_EXPORTER", "none")),
		OTLPEndpoint:      getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("POS API: %s", AppConfig.APIBaseURL)
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
