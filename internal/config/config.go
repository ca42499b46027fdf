package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// Config is the merged daybook configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage" mapstructure:"storage"`
	UI      UIConfig      `yaml:"ui" mapstructure:"ui"`

	// DebugLog is a file that receives log output while the TUI runs.
	DebugLog string `yaml:"debug_log" mapstructure:"debug_log"`
}

type StorageConfig struct {
	Driver string `yaml:"driver" mapstructure:"driver"`
	Path   string `yaml:"path" mapstructure:"path"`
}

type UIConfig struct {
	DefaultFilter        string `yaml:"default_filter" mapstructure:"default_filter"`
	NotificationSeconds  int    `yaml:"notification_seconds" mapstructure:"notification_seconds"`
	DesktopNotifications bool   `yaml:"desktop_notifications" mapstructure:"desktop_notifications"`
}

func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Driver: DriverSQLite,
			Path:   filepath.Join(HomeDir(), "daybook.db"),
		},
		UI: UIConfig{
			DefaultFilter:       "all",
			NotificationSeconds: 3,
		},
	}
}

func (c *Config) NotificationTTL() time.Duration {
	if c.UI.NotificationSeconds <= 0 {
		return 3 * time.Second
	}
	return time.Duration(c.UI.NotificationSeconds) * time.Second
}

// HomeDir is ~/.daybook, or .daybook in the working directory when there is no home.
func HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".daybook"
	}
	return filepath.Join(home, ".daybook")
}

func DefaultPath() string {
	return filepath.Join(HomeDir(), "config.yaml")
}

// WriteDefault writes a commented default configuration file.
func WriteDefault(path string) error {
	content := `# daybook configuration

storage:
  driver: sqlite   # "sqlite" or "memory"
  # path: ~/.daybook/daybook.db

ui:
  default_filter: all        # all, important, recent
  notification_seconds: 3
  desktop_notifications: false

# debug_log: /tmp/daybook.log
`
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
