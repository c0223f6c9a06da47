package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/piresc/docshare/internal/pkg/models"
)

func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "docshare")
	configs.App.Environment = GetEnv("APP_ENV", "local")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", false)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 3001)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 15)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 15)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)
	configs.Server.AllowedOrigins = GetEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"*"})

	// Database config
	configs.Database.Driver = GetEnv("STORE_DRIVER", "postgres")
	configs.Database.Host = GetEnv("DB_HOST", "localhost")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "docshare")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 10)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 2)
	configs.Database.QueryTimeout = GetEnvAsDuration("STORE_TIMEOUT", 5*time.Second)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 10)

	// NSQ config
	configs.NSQ.Address = GetEnv("NSQ_ADDRESS", "")
	configs.NSQ.AuditTopic = GetEnv("NSQ_AUDIT_TOPIC", "docshare.audit")

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "docshare")

	// Session config
	configs.Session.TTL = GetEnvAsDuration("SESSION_TTL", 24*time.Hour)
	configs.Session.SweepInterval = GetEnvAsDuration("SESSION_SWEEP_INTERVAL", time.Hour)

	// OTP config
	configs.OTP.Strategy = models.OTPStrategy(GetEnv("OTP_STRATEGY", string(models.StrategyTOTP)))
	configs.OTP.Issuer = GetEnv("OTP_ISSUER", "DocShare")
	configs.OTP.Skew = uint(GetEnvAsInt("OTP_SKEW", 1))
	configs.OTP.CodeTTL = GetEnvAsDuration("OTP_CODE_TTL", 10*time.Minute)

	// Lockout config
	configs.Lockout.MaxAttempts = GetEnvAsInt("LOCKOUT_MAX_ATTEMPTS", 5)
	configs.Lockout.Window = GetEnvAsDuration("LOCKOUT_WINDOW", 15*time.Minute)

	// Twilio config
	configs.Twilio.AccountSID = GetEnv("TWILIO_ACCOUNT_SID", "")
	configs.Twilio.AuthToken = GetEnv("TWILIO_AUTH_TOKEN", "")
	configs.Twilio.VerifyServiceSID = GetEnv("TWILIO_VERIFY_SERVICE_SID", "")
	configs.Twilio.FromNumber = GetEnv("TWILIO_FROM_NUMBER", "")
	configs.Twilio.Timeout = GetEnvAsDuration("PROVIDER_TIMEOUT", 10*time.Second)

	// Rate limit config
	configs.RateLimit.GeneralLimit = GetEnvAsInt("RATE_LIMIT_GENERAL", 100)
	configs.RateLimit.GeneralPeriod = GetEnvAsDuration("RATE_LIMIT_GENERAL_PERIOD", 15*time.Minute)
	configs.RateLimit.LoginLimit = GetEnvAsInt("RATE_LIMIT_LOGIN", 5)
	configs.RateLimit.LoginPeriod = GetEnvAsDuration("RATE_LIMIT_LOGIN_PERIOD", 15*time.Minute)
	configs.RateLimit.OTPLimit = GetEnvAsInt("RATE_LIMIT_OTP", 3)
	configs.RateLimit.OTPPeriod = GetEnvAsDuration("RATE_LIMIT_OTP_PERIOD", 5*time.Minute)

	// Default admin
	configs.Admin.Username = GetEnv("ADMIN_DEFAULT_USERNAME", "admin")
	configs.Admin.Password = GetEnv("ADMIN_DEFAULT_PASSWORD", "demo123")

	// NewRelic config
	configs.NewRelic.LicenseKey = GetEnv("NEW_RELIC_LICENSE_KEY", "")
	configs.NewRelic.AppName = GetEnv("NEW_RELIC_APP_NAME", "docshare-api")
	configs.NewRelic.Enabled = GetEnvAsBool("NEW_RELIC_ENABLED", false)
	configs.NewRelic.ForwardLogs = GetEnvAsBool("NEW_RELIC_FORWARD_LOGS", false)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")
	configs.Logger.Type = GetEnv("LOG_TYPE", "console")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

// GetEnvAsDuration accepts Go duration strings ("15m") or plain seconds ("900")
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	if seconds, err := strconv.Atoi(valueStr); err == nil {
		return time.Duration(seconds) * time.Second
	}

	log.Printf("Warning: Invalid duration value for %s, using default: %s", key, defaultValue)
	return defaultValue
}

func GetEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	parts := strings.Split(valueStr, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

// Validate reports settings the API cannot start without
func Validate(configs *models.Config) []string {
	var problems []string
	if configs.JWT.Secret == "" {
		problems = append(problems, "JWT_SECRET is required")
	}
	if configs.OTP.Strategy != models.StrategyTOTP && configs.OTP.Strategy != models.StrategyProvider {
		problems = append(problems, "OTP_STRATEGY must be totp or provider")
	}
	if configs.Database.Driver != "postgres" && configs.Database.Driver != "memory" {
		problems = append(problems, "STORE_DRIVER must be postgres or memory")
	}
	if configs.OTP.Strategy == models.StrategyProvider && !configs.Twilio.Configured() && !configs.Redis.Enabled() {
		problems = append(problems, "provider strategy needs Twilio credentials or REDIS_HOST for local codes")
	}
	return problems
}
