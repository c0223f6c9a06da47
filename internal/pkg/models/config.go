package models

import "time"

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NSQ       NSQConfig
	JWT       JWTConfig
	Session   SessionConfig
	OTP       OTPConfig
	Lockout   LockoutConfig
	Twilio    TwilioConfig
	RateLimit RateLimitConfig
	Admin     AdminSeedConfig
	NewRelic  NewRelicConfig
	Logger    LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
	AllowedOrigins  []string
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver       string // postgres or memory
	Host         string
	Port         int
	Username     string
	Password     string
	Database     string
	SSLMode      string
	MaxConns     int
	IdleConns    int
	QueryTimeout time.Duration
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// Enabled reports whether a Redis host is configured
func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

// NSQConfig contains NSQ connection configuration
type NSQConfig struct {
	Address    string
	AuditTopic string
}

// JWTConfig contains bearer token signing configuration
type JWTConfig struct {
	Secret string
	Issuer string
}

// SessionConfig controls session lifetime and the expiry sweep
type SessionConfig struct {
	TTL           time.Duration
	SweepInterval time.Duration
}

// OTPConfig selects and tunes the one-time-code strategy
type OTPConfig struct {
	Strategy OTPStrategy
	Issuer   string
	Skew     uint
	CodeTTL  time.Duration
}

// LockoutConfig tunes the login-attempt guard
type LockoutConfig struct {
	MaxAttempts int
	Window      time.Duration
}

// TwilioConfig contains delivery provider credentials
type TwilioConfig struct {
	AccountSID       string
	AuthToken        string
	VerifyServiceSID string
	FromNumber       string
	Timeout          time.Duration
}

// Configured reports whether real provider credentials are present
func (c TwilioConfig) Configured() bool {
	return c.AccountSID != "" && c.AuthToken != "" && c.VerifyServiceSID != ""
}

// RateLimitConfig holds request budgets per route class
type RateLimitConfig struct {
	GeneralLimit  int
	GeneralPeriod time.Duration
	LoginLimit    int
	LoginPeriod   time.Duration
	OTPLimit      int
	OTPPeriod     time.Duration
}

// AdminSeedConfig is the account created when no admin exists
type AdminSeedConfig struct {
	Username string
	Password string
}

// NewRelicConfig contains optional APM configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains log output configuration
type LoggerConfig struct {
	Level    string
	FilePath string
	Type     string
}

// AuditWorkerConfig configures the audit consumer process
type AuditWorkerConfig struct {
	Database         DatabaseConfig
	NSQAddress       string
	LookupdAddresses []string
	Topic            string
	Channel          string
	MaxInFlight      int
	RestPort         string
	Logger           LoggerConfig
	NewRelic         NewRelicConfig
}
