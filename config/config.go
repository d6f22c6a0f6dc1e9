package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/viant/schemaconv/conv"
)

// DefaultPrefix is the default environment variable prefix
const DefaultPrefix = "SCHEMACONV"

type (
	// Config represents conversion configuration
	Config struct {
		StructByName    bool   `mapstructure:"struct_by_name"`
		UnionByPosition bool   `mapstructure:"union_by_position"`
		Normalize       bool   `mapstructure:"normalize"`
		TimeLayout      string `mapstructure:"time_layout"`
		DateFormat      string `mapstructure:"date_format"`
		Location        string `mapstructure:"location"`
		Workers         int    `mapstructure:"workers"`
		Log             Log    `mapstructure:"log"`
	}

	// Log represents logger configuration
	Log struct {
		Level  string `mapstructure:"level"`  // debug, info, warn, error
		Format string `mapstructure:"format"` // json, text
	}
)

// Load loads configuration from optional file (yaml, json or toml) and environment variables,
// i.e. SCHEMACONV_STRUCT_BY_NAME=true or SCHEMACONV_LOG_LEVEL=debug
func Load(path, prefix string) (*Config, error) {
	v := viper.New()
	v.SetDefault("struct_by_name", false)
	v.SetDefault("union_by_position", false)
	v.SetDefault("normalize", false)
	v.SetDefault("time_layout", "")
	v.SetDefault("date_format", "")
	v.SetDefault("location", "UTC")
	v.SetDefault("workers", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	if prefix == "" {
		prefix = DefaultPrefix
	}
	v.SetEnvPrefix(prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %v: %w", path, err)
		}
	}
	ret := &Config{}
	if err := v.Unmarshal(ret); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return ret, nil
}

// ConvOptions returns converter options
func (c *Config) ConvOptions(logger *slog.Logger) ([]conv.Option, error) {
	location := time.UTC
	if c.Location != "" {
		var err error
		if location, err = time.LoadLocation(c.Location); err != nil {
			return nil, fmt.Errorf("invalid location %v: %w", c.Location, err)
		}
	}
	return []conv.Option{
		conv.WithStructByName(c.StructByName),
		conv.WithUnionByPosition(c.UnionByPosition),
		conv.WithNormalize(c.Normalize),
		conv.WithTimeLayout(c.TimeLayout),
		conv.WithDateFormat(c.DateFormat),
		conv.WithLocation(location),
		conv.WithLogger(logger),
	}, nil
}

// Logger creates a logger writing to supplied writer
func (l *Log) Logger(writer io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(l.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.ToLower(l.Format) == "json" {
		return slog.New(slog.NewJSONHandler(writer, opts))
	}
	return slog.New(slog.NewTextHandler(writer, opts))
}
