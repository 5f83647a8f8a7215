package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultPort              = 8080
	DefaultAlertSweepSpec    = "@hourly"
	DefaultAlertSweepTimeout = 5 * time.Minute
	DefaultShutdownTimeout   = 15 * time.Second
)

// Config is read from the environment (.env is autoloaded by cmd/api).
//
// Supported env vars:
//   - PORT (default: 8080)
//   - AWS_REGION, AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY, DYNAMODB_ENDPOINT (see database package)
//   - DYNAMODB_ENSURE_TABLES (default: true when DYNAMODB_ENDPOINT is set)
//   - ORDERS_TABLE (default: orders)
//   - NOTIFICATIONS_TABLE (default: notifications)
//   - ALERT_SWEEP_ENABLED (default: true)
//   - ALERT_SWEEP_SCHEDULE (cron expression or descriptor, default: @hourly)
//   - ALERT_SWEEP_TIMEOUT (Go duration, default: 5m)
//   - SHUTDOWN_TIMEOUT (Go duration, default: 15s)
type Config struct {
	Port               int
	ShutdownTimeout    time.Duration
	OrdersTable        string
	NotificationsTable string
	EnsureTables       bool
	AlertSweep         AlertSweepConfig
}

type AlertSweepConfig struct {
	Enabled  bool
	Schedule string
	Timeout  time.Duration
}

func Load() Config {
	return Config{
		Port:               getenvInt("PORT", DefaultPort),
		ShutdownTimeout:    getenvDuration("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),
		OrdersTable:        getenvDefault("ORDERS_TABLE", "orders"),
		NotificationsTable: getenvDefault("NOTIFICATIONS_TABLE", "notifications"),
		EnsureTables:       getenvBool("DYNAMODB_ENSURE_TABLES", os.Getenv("DYNAMODB_ENDPOINT") != ""),
		AlertSweep: AlertSweepConfig{
			Enabled:  getenvBool("ALERT_SWEEP_ENABLED", true),
			Schedule: getenvDefault("ALERT_SWEEP_SCHEDULE", DefaultAlertSweepSpec),
			Timeout:  getenvDuration("ALERT_SWEEP_TIMEOUT", DefaultAlertSweepTimeout),
		},
	}
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("[config] invalid %s=%q, using %d", key, v, def)
		return def
	}
	return n
}

func getenvBool(key string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("[config] invalid %s=%q, using %s", key, v, def)
		return def
	}
	return d
}
