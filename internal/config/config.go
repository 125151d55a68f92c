package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Storage  StorageConfig
	Office   OfficeConfig
	Geocode  GeocodeConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	AllowedOrigins []string
}

type StorageConfig struct {
	BasePath string
	BaseURL  string
}

// OfficeConfig is the geofence anchor. Check-in and check-out are rejected
// outside MaxDistanceMeters of this point.
type OfficeConfig struct {
	Latitude          float64
	Longitude         float64
	MaxDistanceMeters float64
}

type GeocodeConfig struct {
	BaseURL string
	APIKey  string
}

func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

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
		Name:     getEnv("DB_NAME", "attendance"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: getEnvSlice("ALLOWED_ORIGINS", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Storage configuration
	config.Storage = StorageConfig{
		BasePath: getEnv("STORAGE_BASE_PATH", "./uploads"),
		BaseURL:  getEnv("STORAGE_BASE_URL", "http://localhost:8080/images"),
	}

	// Office geofence configuration
	officeLat, err := strconv.ParseFloat(getEnv("OFFICE_LAT", "0"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid OFFICE_LAT: %w", err)
	}
	officeLong, err := strconv.ParseFloat(getEnv("OFFICE_LONG", "0"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid OFFICE_LONG: %w", err)
	}
	maxDistance, err := strconv.ParseFloat(getEnv("MAX_DISTANCE_METERS", "100"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_DISTANCE_METERS: %w", err)
	}

	config.Office = OfficeConfig{
		Latitude:          officeLat,
		Longitude:         officeLong,
		MaxDistanceMeters: maxDistance,
	}

	// Reverse geocoding configuration (optional)
	config.Geocode = GeocodeConfig{
		BaseURL: getEnv("GEOCODE_BASE_URL", "https://us1.locationiq.com"),
		APIKey:  getEnv("GEOCODE_API_KEY", ""),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Office.Latitude == 0 && c.Office.Longitude == 0 {
		return fmt.Errorf("OFFICE_LAT and OFFICE_LONG are required")
	}
	if c.Office.MaxDistanceMeters <= 0 {
		return fmt.Errorf("MAX_DISTANCE_METERS must be positive")
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

func getEnvSlice(key, fallback string) []string {
	return strings.Split(getEnv(key, fallback), ",")
}
