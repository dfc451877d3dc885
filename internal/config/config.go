package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/bizdash-go/internal/pkg/geo"
	"github.com/joho/godotenv"
)

type Config struct {
	Database  DatabaseConfig
	JWT       JWTConfig
	App       AppConfig
	CORS      CORSConfig
	Business  BusinessConfig
	Dashboard DashboardConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string

	// AutoMigrate applies the embedded schema migrations at start-up.
	AutoMigrate bool
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
	Version  string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// BusinessConfig holds the rules the API applies to attendance and money.
type BusinessConfig struct {
	Timezone    string
	SiteLat     float64
	SiteLng     float64
	SiteRadiusM float64
}

// Fence returns the attendance site. A zero radius disables the check.
func (b BusinessConfig) Fence() geo.Fence {
	return geo.Fence{
		Center:  geo.Point{Lat: b.SiteLat, Lng: b.SiteLng},
		RadiusM: b.SiteRadiusM,
	}
}

// Location resolves the business time zone, falling back to UTC.
func (b BusinessConfig) Location() *time.Location {
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// DashboardConfig holds the gateway settings.
type DashboardConfig struct {
	Port           int
	APIBaseURL     string
	CookieSecure   bool
	RequestTimeout time.Duration
	GeoTimeout     time.Duration
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "bizdash"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),

		AutoMigrate: getEnv("DB_AUTO_MIGRATE", "true") == "true",
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Version:  getEnv("APP_VERSION", "v1.0.0"),
	}

	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "168h"),
	}

	config.CORS = CORSConfig{
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
	}

	siteLat, err := getEnvFloat("ATTENDANCE_SITE_LAT")
	if err != nil {
		return nil, err
	}
	siteLng, err := getEnvFloat("ATTENDANCE_SITE_LNG")
	if err != nil {
		return nil, err
	}
	siteRadius, err := getEnvFloat("ATTENDANCE_SITE_RADIUS_M")
	if err != nil {
		return nil, err
	}

	config.Business = BusinessConfig{
		Timezone:    getEnv("BUSINESS_TIMEZONE", "Africa/Cairo"),
		SiteLat:     siteLat,
		SiteLng:     siteLng,
		SiteRadiusM: siteRadius,
	}

	// Dashboard gateway configuration
	dashPort, err := strconv.Atoi(getEnv("DASHBOARD_PORT", "3000"))
	if err != nil {
		return nil, fmt.Errorf("invalid DASHBOARD_PORT: %w", err)
	}
	requestTimeout, err := time.ParseDuration(getEnv("API_REQUEST_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("invalid API_REQUEST_TIMEOUT: %w", err)
	}
	geoTimeout, err := time.ParseDuration(getEnv("GEOLOCATION_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid GEOLOCATION_TIMEOUT: %w", err)
	}

	config.Dashboard = DashboardConfig{
		Port:           dashPort,
		APIBaseURL:     strings.TrimRight(getEnv("API_BASE_URL", ""), "/"),
		CookieSecure:   getEnv("COOKIE_SECURE", "false") == "true",
		RequestTimeout: requestTimeout,
		GeoTimeout:     geoTimeout,
	}

	return config, nil
}

// Validate validates the configuration required by the API server.
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.ParseDuration(c.JWT.AccessExpiration); err != nil {
		return fmt.Errorf("invalid JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}
	if _, err := time.LoadLocation(c.Business.Timezone); err != nil {
		return fmt.Errorf("invalid BUSINESS_TIMEZONE: %w", err)
	}
	return nil
}

// ValidateDashboard validates the configuration required by the gateway.
func (c *Config) ValidateDashboard() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Dashboard.APIBaseURL == "" {
		return fmt.Errorf("API_BASE_URL is required")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string, fallback string) []string {
	value := getEnv(env, fallback)
	if value == "" {
		return []string{}
	}
	var result []string
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			result = append(result, v)
		}
	}
	return result
}

func getEnvFloat(env string) (float64, error) {
	value := getEnv(env, "")
	if value == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", env, err)
	}
	return f, nil
}
