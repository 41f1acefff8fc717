package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Config 日志配置.
type Config struct {
	ServiceName string `json:"service_name" yaml:"service_name" mapstructure:"service_name"`
	Level       string `json:"level" yaml:"level" mapstructure:"level"`
	Format      string `json:"format" yaml:"format" mapstructure:"format"`

	EnableCaller bool `json:"enable_caller" yaml:"enable_caller" mapstructure:"enable_caller"`

	// 编码器键名，留空使用默认值
	TimeKey    string `json:"time_key" yaml:"time_key" mapstructure:"time_key"`
	LevelKey   string `json:"level_key" yaml:"level_key" mapstructure:"level_key"`
	MessageKey string `json:"message_key" yaml:"message_key" mapstructure:"message_key"`
	CallerKey  string `json:"caller_key" yaml:"caller_key" mapstructure:"caller_key"`
}

// ConfigError 配置错误.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("logger config error [%s]: %s", e.Field, e.Message)
}

// Validate 验证配置.
// 级别按 zapcore 的级别名解析，不区分大小写.
func (c *Config) Validate() error {
	if c == nil {
		return &ConfigError{Field: "config", Message: "config cannot be nil"}
	}

	if c.Level != "" {
		if _, err := zapcore.ParseLevel(c.Level); err != nil {
			return &ConfigError{Field: "level", Message: "invalid log level: " + c.Level}
		}
	}

	switch strings.ToLower(c.Format) {
	case "", FormatJSON, FormatConsole:
	default:
		return &ConfigError{Field: "format", Message: "invalid format: " + c.Format}
	}

	seen := make(map[string]string, 4)
	for _, k := range []struct{ field, key string }{
		{"time_key", c.TimeKey},
		{"level_key", c.LevelKey},
		{"message_key", c.MessageKey},
		{"caller_key", c.CallerKey},
	} {
		if k.key == "" {
			continue
		}
		if other, ok := seen[k.key]; ok {
			return &ConfigError{Field: k.field, Message: fmt.Sprintf("key %q already used by %s", k.key, other)}
		}
		seen[k.key] = k.field
	}

	return nil
}

// ApplyDefaults 应用默认值.
func (c *Config) ApplyDefaults() {
	if c.Level == "" {
		c.Level = LevelInfo
	}
	if c.Format == "" {
		c.Format = FormatJSON
	}
	if c.ServiceName == "" {
		c.ServiceName = "collections-kit"
	}
	if c.TimeKey == "" {
		c.TimeKey = "timestamp"
	}
	if c.LevelKey == "" {
		c.LevelKey = "level"
	}
	if c.MessageKey == "" {
		c.MessageKey = "msg"
	}
	if c.CallerKey == "" {
		c.CallerKey = "caller"
	}
}

// zapLevel 返回配置对应的 zap 级别，无法解析时使用 info.
func (c *Config) zapLevel() zapcore.Level {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}

// DefaultConfig 返回默认配置.
func DefaultConfig() *Config {
	config := &Config{}
	config.ApplyDefaults()
	return config
}

// NewDevConfig 返回开发环境配置: debug 级别、控制台格式、记录调用位置.
func NewDevConfig() *Config {
	return &Config{
		Level:        LevelDebug,
		Format:       FormatConsole,
		EnableCaller: true,
	}
}
