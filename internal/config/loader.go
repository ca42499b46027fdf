package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Load merges defaults, the YAML file at path and DAYBOOK_* env overrides.
// An empty path means DefaultPath; a missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if strings.TrimSpace(path) == "" {
		path = DefaultPath()
	}
	if err := loadFile(path, cfg); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	ApplyEnv(cfg)
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return err
	}

	return v.Unmarshal(cfg)
}

func ApplyEnv(cfg *Config) {
	if v, ok := getEnvString("DAYBOOK_DB_PATH"); ok {
		cfg.Storage.Path = v
	}
	if v, ok := getEnvString("DAYBOOK_STORAGE_DRIVER"); ok {
		cfg.Storage.Driver = strings.ToLower(v)
	}
	if v, ok := getEnvString("DAYBOOK_DEFAULT_FILTER"); ok {
		cfg.UI.DefaultFilter = strings.ToLower(v)
	}
	if v, ok := getEnvInt("DAYBOOK_NOTIFICATION_SECONDS"); ok && v > 0 {
		cfg.UI.NotificationSeconds = v
	}
	if v, ok := getEnvBool("DAYBOOK_DESKTOP_NOTIFICATIONS"); ok {
		cfg.UI.DesktopNotifications = v
	}
	if v, ok := getEnvString("DAYBOOK_DEBUG_LOG"); ok {
		cfg.DebugLog = v
	}
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	return raw, raw != ""
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
