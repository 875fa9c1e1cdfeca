package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

const (
	DefaultName     = "Emobies"
	DefaultPort     = 8080
	DefaultLogLevel = "info"
	DefaultGinMode  = gin.ReleaseMode
)

type Config struct {
	App struct {
		Name string
		Port int
		Mode string
	}
	Log struct {
		Level string
	}
}

// Load reads configuration from the environment. PORT selects the listening
// port and falls back to DefaultPort when unset or empty.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if err := v.BindEnv("app.port", "PORT"); err != nil {
		return nil, fmt.Errorf("error binding PORT: %w", err)
	}
	if err := v.BindEnv("log.level", "LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("error binding LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("app.mode", gin.EnvGinMode); err != nil {
		return nil, fmt.Errorf("error binding %s: %w", gin.EnvGinMode, err)
	}

	port, err := parsePort(v.GetString("app.port"))
	if err != nil {
		return nil, err
	}

	level := strings.ToLower(strings.TrimSpace(v.GetString("log.level")))
	switch level {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: must be one of debug, info, warn, error", level)
	}

	mode := strings.ToLower(strings.TrimSpace(v.GetString("app.mode")))
	switch mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return nil, fmt.Errorf("invalid %s %q: must be one of debug, release, test", gin.EnvGinMode, mode)
	}

	cfg := &Config{}
	cfg.App.Name = v.GetString("app.name")
	cfg.App.Port = port
	cfg.App.Mode = mode
	cfg.Log.Level = level
	return cfg, nil
}

// Addr returns the listen address for the configured port.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.App.Port)
}

func parsePort(raw string) (int, error) {
	port, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid PORT %q: %w", raw, err)
	}
	if port < 0 || port > 65535 {
		return 0, fmt.Errorf("invalid PORT %d: out of range", port)
	}
	return port, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", DefaultName)
	v.SetDefault("app.port", DefaultPort)
	v.SetDefault("app.mode", DefaultGinMode)
	v.SetDefault("log.level", DefaultLogLevel)
}
