package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config golfsync (HTTP API + ClickUp sync) configuration
type Config struct {
	HTTP struct {
		Addr string
	}
	Database DatabaseConfig
	Redis    struct {
		Addr     string
		Password string
		DB       int
	}
	Log struct {
		Level  string
		Format string
	}
	ClickUp ClickUpConfig
	MQTT    MQTTConfig
}

// DatabaseConfig connection settings for the Supabase Postgres domain store
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	MaxConns int
	MaxIdle  int
}

// GetDSN builds the lib/pq connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
}

// ClickUpConfig ClickUp workspace settings
// List IDs identify the three fixed target lists; the remaining field
// mappings live in clickup.FieldMap and only change with the workspace.
type ClickUpConfig struct {
	BaseURL        string
	APIKey         string
	CoursesListID  string
	ContactsListID string
	OutreachListID string
}

// MQTTConfig settings for the enrichment-complete trigger topic (optional)
type MQTTConfig struct {
	Enabled  bool
	Broker   string
	ClientID string
	Username string
	Password string
	Topic    string
}

func Load() *Config {
	cfg := &Config{}
	cfg.HTTP.Addr = getEnv("HTTP_ADDR", ":8080")

	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = parseInt(getEnv("DB_PORT", "5432"), 5432)
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "postgres")
	cfg.Database.Database = getEnv("DB_NAME", "golfleads")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")
	cfg.Database.MaxConns = parseInt(getEnv("DB_MAX_CONNS", "10"), 10)
	cfg.Database.MaxIdle = parseInt(getEnv("DB_MAX_IDLE", "5"), 5)

	cfg.Redis.Addr = getEnv("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = 0

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	cfg.ClickUp.BaseURL = getEnv("CLICKUP_BASE_URL", "https://api.clickup.com/api/v2")
	cfg.ClickUp.APIKey = getEnv("CLICKUP_API_KEY", "")
	cfg.ClickUp.CoursesListID = getEnv("CLICKUP_COURSES_LIST_ID", "901413061864")
	cfg.ClickUp.ContactsListID = getEnv("CLICKUP_CONTACTS_LIST_ID", "901413061863")
	cfg.ClickUp.OutreachListID = getEnv("CLICKUP_OUTREACH_LIST_ID", "901413111587")

	cfg.MQTT.Enabled = getEnv("MQTT_ENABLED", "false") == "true"
	cfg.MQTT.Broker = getEnv("MQTT_BROKER", "tcp://localhost:1883")
	cfg.MQTT.ClientID = getEnv("MQTT_CLIENT_ID", "golfsync")
	cfg.MQTT.Username = getEnv("MQTT_USERNAME", "")
	cfg.MQTT.Password = getEnv("MQTT_PASSWORD", "")
	cfg.MQTT.Topic = getEnv("MQTT_TOPIC", "golf-enrichment/complete")

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
