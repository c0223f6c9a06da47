package config

import (
	"log"
	"strings"
	"time"

	"github.com/piresc/docshare/internal/pkg/models"
	"github.com/spf13/viper"
)

// LoadAuditWorkerConfig reads config/<name>.yaml (if present) overlaid with environment variables.
// Nested keys map to env names with dots replaced by underscores, e.g. DATABASE_HOST.
func LoadAuditWorkerConfig(name string, paths ...string) *models.AuditWorkerConfig {
	v := viper.New()
	v.SetConfigName(name)
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.name", "docshare")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 5)
	v.SetDefault("database.timeout", "5s")
	v.SetDefault("nsq.address", "127.0.0.1:4150")
	v.SetDefault("nsq.topic", "docshare.audit")
	v.SetDefault("nsq.channel", "audit-writer")
	v.SetDefault("nsq.max_in_flight", 10)
	v.SetDefault("server.rest_port", ":8090")
	v.SetDefault("log.level", "info")
	v.SetDefault("newrelic.app_name", "docshare-audit")

	if err := v.ReadInConfig(); err != nil {
		log.Printf("Error reading config file: %s", err)
	}

	return &models.AuditWorkerConfig{
		Database: models.DatabaseConfig{
			Driver:       "postgres",
			Host:         v.GetString("database.host"),
			Port:         v.GetInt("database.port"),
			Username:     v.GetString("database.username"),
			Password:     v.GetString("database.password"),
			Database:     v.GetString("database.name"),
			SSLMode:      v.GetString("database.sslmode"),
			MaxConns:     v.GetInt("database.max_conns"),
			QueryTimeout: durationOr(v.GetDuration("database.timeout"), 5*time.Second),
		},
		NSQAddress:       v.GetString("nsq.address"),
		LookupdAddresses: v.GetStringSlice("nsq.lookupd"),
		Topic:            v.GetString("nsq.topic"),
		Channel:          v.GetString("nsq.channel"),
		MaxInFlight:      v.GetInt("nsq.max_in_flight"),
		RestPort:         v.GetString("server.rest_port"),
		Logger: models.LoggerConfig{
			Level:    v.GetString("log.level"),
			FilePath: v.GetString("log.file_path"),
		},
		NewRelic: models.NewRelicConfig{
			LicenseKey:  v.GetString("newrelic.license_key"),
			AppName:     v.GetString("newrelic.app_name"),
			Enabled:     v.GetBool("newrelic.enabled"),
			ForwardLogs: v.GetBool("newrelic.forward_logs"),
		},
	}
}

func durationOr(d, fallback time.Duration) time.Duration {
	if d <= 0 {
		return fallback
	}
	return d
}
