package metrics

// Config 指标监控配置.
type Config struct {
	// Path 指标暴露路径，默认 /metrics
	Path string `json:"path" yaml:"path" mapstructure:"path"`
	// Namespace 指标命名空间
	Namespace string `json:"namespace" yaml:"namespace" mapstructure:"namespace"`
	// Subsystem 指标子系统，默认 treeset
	Subsystem string `json:"subsystem" yaml:"subsystem" mapstructure:"subsystem"`
}

// DefaultConfig 返回默认配置.
func DefaultConfig() *Config {
	return &Config{
		Path:      "/metrics",
		Namespace: "app",
		Subsystem: "treeset",
	}
}

// ApplyDefaults 应用默认值.
func (c *Config) ApplyDefaults() {
	if c.Path == "" {
		c.Path = "/metrics"
	}
	if c.Namespace == "" {
		c.Namespace = "app"
	}
	if c.Subsystem == "" {
		c.Subsystem = "treeset"
	}
}
