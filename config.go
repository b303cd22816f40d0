package berkas

import (
	"fmt"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Auth     AuthConfig
	Database DatabaseConfig
	CORS     CORSConfig
	SeedDemo bool
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// AuthConfig menyimpan konfigurasi subsistem autentikasi token.
// SecretKey adalah symmetric key ber-encode base64 untuk HMAC signing.
// TokenValidity dikonfigurasi dalam milidetik (default 3600000 = satu jam).
// HeaderName adalah nama header pembawa token (default "auth-token").
// PermitPaths adalah daftar path yang bebas dari autentikasi.
type AuthConfig struct {
	SecretKey     string
	TokenValidity time.Duration
	HeaderName    string
	PermitPaths   []string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver        string // "postgres" atau "sqlite"
	Host          string
	Port          int
	Database      string // nama database, atau path file untuk sqlite
	Username      string
	Password      string
	MaxConns      int
	SSLMode       string
	RuntimeParams map[string]string
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

// LoadConfig memuat konfigurasi aplikasi dari environment variables.
// Menggabungkan konfigurasi dari semua bagian (Server, Auth, Database, CORS).
//
// Example:
//
//	config, err := LoadConfig()
//	if err != nil {
//	  log.Fatal(err)
//	}
func LoadConfig() (*Config, error) {
	serverCfg, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	authCfg, err := loadAuthConfig()
	if err != nil {
		return nil, err
	}

	dbCfg, err := loadDatabaseConfig()
	if err != nil {
		return nil, err
	}

	corsCfg, err := loadCORSConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server:   serverCfg,
		Auth:     authCfg,
		Database: dbCfg,
		CORS:     corsCfg,
		SeedDemo: ParseEnvBool(GetEnvOrDefault("SEED_DEMO", "false")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadServerConfig loads server configuration
func loadServerConfig() (ServerConfig, error) {
	readTimeout, err := ParseEnvDuration(GetEnvOrDefault("SERVER_READ_TIMEOUT", "30s"))
	if err != nil {
		return ServerConfig{}, fmt.Errorf("invalid SERVER_READ_TIMEOUT: %w", err)
	}

	writeTimeout, err := ParseEnvDuration(GetEnvOrDefault("SERVER_WRITE_TIMEOUT", "30s"))
	if err != nil {
		return ServerConfig{}, fmt.Errorf("invalid SERVER_WRITE_TIMEOUT: %w", err)
	}

	idleTimeout, err := ParseEnvDuration(GetEnvOrDefault("SERVER_IDLE_TIMEOUT", "120s"))
	if err != nil {
		return ServerConfig{}, fmt.Errorf("invalid SERVER_IDLE_TIMEOUT: %w", err)
	}

	shutdownTimeout, err := ParseEnvDuration(GetEnvOrDefault("SERVER_SHUTDOWN_TIMEOUT", "10s"))
	if err != nil {
		return ServerConfig{}, fmt.Errorf("invalid SERVER_SHUTDOWN_TIMEOUT: %w", err)
	}

	return ServerConfig{
		Port:            GetEnvOrDefault("SERVER_PORT", "8080"),
		ReadTimeout:     readTimeout,
		WriteTimeout:    writeTimeout,
		IdleTimeout:     idleTimeout,
		ShutdownTimeout: shutdownTimeout,
	}, nil
}

// loadAuthConfig loads token authentication configuration
func loadAuthConfig() (AuthConfig, error) {
	validityMs, err := ParseEnvInt64(GetEnvOrDefault("AUTH_TOKEN_VALIDITY_MS", "3600000"))
	if err != nil {
		return AuthConfig{}, fmt.Errorf("invalid AUTH_TOKEN_VALIDITY_MS: %w", err)
	}

	permitPaths := ParseEnvList(GetEnvOrDefault("AUTH_PERMIT_PATHS", "/login,/logout"))

	return AuthConfig{
		SecretKey:     GetEnv("AUTH_SECRET_KEY"),
		TokenValidity: time.Duration(validityMs) * time.Millisecond,
		HeaderName:    GetEnvOrDefault("AUTH_TOKEN_HEADER", "auth-token"),
		PermitPaths:   permitPaths,
	}, nil
}

// loadDatabaseConfig loads database configuration
func loadDatabaseConfig() (DatabaseConfig, error) {
	port, err := ParseEnvInt(GetEnvOrDefault("DB_PORT", "5432"))
	if err != nil {
		return DatabaseConfig{}, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	maxConns, err := ParseEnvInt(GetEnvOrDefault("DB_MAX_CONNS", "25"))
	if err != nil {
		return DatabaseConfig{}, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}

	return DatabaseConfig{
		Driver:        GetEnvOrDefault("DB_DRIVER", "sqlite"),
		Host:          GetEnv("DB_HOST"),
		Port:          port,
		Database:      GetEnvOrDefault("DB_NAME", "berkas.db"),
		Username:      GetEnv("DB_USER"),
		Password:      GetEnv("DB_PASSWORD"),
		MaxConns:      maxConns,
		SSLMode:       GetEnvOrDefault("DB_SSL_MODE", "disable"),
		RuntimeParams: make(map[string]string),
	}, nil
}

// loadCORSConfig loads CORS configuration
func loadCORSConfig() (CORSConfig, error) {
	origins := ParseEnvList(GetEnvOrDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000"))
	methods := ParseEnvList(GetEnvOrDefault("CORS_ALLOWED_METHODS", "GET,POST,PUT,DELETE,OPTIONS"))
	headers := ParseEnvList(GetEnvOrDefault("CORS_ALLOWED_HEADERS", "Content-Type,auth-token"))

	maxAge, err := ParseEnvInt(GetEnvOrDefault("CORS_MAX_AGE", "3600"))
	if err != nil {
		return CORSConfig{}, fmt.Errorf("invalid CORS_MAX_AGE: %w", err)
	}

	return CORSConfig{
		AllowedOrigins:   origins,
		AllowedMethods:   methods,
		AllowedHeaders:   headers,
		AllowCredentials: ParseEnvBool(GetEnvOrDefault("CORS_ALLOW_CREDENTIALS", "true")),
		MaxAge:           maxAge,
	}, nil
}

// Validate memvalidasi konfigurasi aplikasi untuk memastikan nilai required sudah ada.
// Mengecek AUTH_SECRET_KEY dan konfigurasi database sesuai driver yang dipilih.
func (c *Config) Validate() error {
	if c.Auth.SecretKey == "" {
		return fmt.Errorf("AUTH_SECRET_KEY is required")
	}

	if c.Auth.TokenValidity <= 0 {
		return fmt.Errorf("AUTH_TOKEN_VALIDITY_MS must be positive")
	}

	switch c.Database.Driver {
	case "sqlite":
		if c.Database.Database == "" {
			return fmt.Errorf("DB_NAME is required")
		}
	case "postgres":
		if c.Database.Host == "" {
			return fmt.Errorf("DB_HOST is required")
		}
		if c.Database.Database == "" {
			return fmt.Errorf("DB_NAME is required")
		}
		if c.Database.Username == "" {
			return fmt.Errorf("DB_USER is required")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER: %q", c.Database.Driver)
	}

	return nil
}
