package config

import "time"

const (
	// DefaultBaseURL points at the development stub served by `roster serve`.
	DefaultBaseURL = "http://127.0.0.1:8080"
	// DefaultResourcePath is the collection path of the student service.
	DefaultResourcePath = "/students"
	// DefaultTimeout bounds a single HTTP exchange.
	DefaultTimeout = 10 * time.Second
	// DefaultQueueSize is the controller's action queue capacity.
	DefaultQueueSize = 64
)

// Config represents the full roster configuration document.
type Config struct {
	API        APIConfig        `yaml:"api"`
	Controller ControllerConfig `yaml:"controller,omitempty"`
	Logging    LoggingConfig    `yaml:"logging,omitempty"`
	Server     ServerConfig     `yaml:"server,omitempty"`
}

// APIConfig locates the remote student service.
type APIConfig struct {
	BaseURL      string        `yaml:"base_url" validate:"required,http_url"`
	ResourcePath string        `yaml:"resource_path" validate:"required,resource_path"`
	Timeout      time.Duration `yaml:"timeout,omitempty" validate:"gte=0"`
	UserAgent    string        `yaml:"user_agent,omitempty"`
}

// ControllerConfig tunes the synchronization controller.
type ControllerConfig struct {
	// InitialLoad is a pointer so an explicit false survives defaulting.
	InitialLoad  *bool  `yaml:"initial_load,omitempty"`
	ReloadPolicy string `yaml:"reload_policy,omitempty" validate:"omitempty,oneof=full patch"`
	QueueSize    int    `yaml:"queue_size,omitempty" validate:"omitempty,min=1,max=1024"`
}

// LoggingConfig selects the log level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	Format string `yaml:"format,omitempty" validate:"omitempty,oneof=text json"`
}

// ServerConfig configures the development stub backend.
type ServerConfig struct {
	Addr string `yaml:"addr,omitempty" validate:"omitempty,hostname_port"`
	Seed bool   `yaml:"seed,omitempty"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills unset fields in place.
func (c *Config) ApplyDefaults() {
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.API.ResourcePath == "" {
		c.API.ResourcePath = DefaultResourcePath
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultTimeout
	}
	if c.Controller.InitialLoad == nil {
		initial := true
		c.Controller.InitialLoad = &initial
	}
	if c.Controller.ReloadPolicy == "" {
		c.Controller.ReloadPolicy = "full"
	}
	if c.Controller.QueueSize == 0 {
		c.Controller.QueueSize = DefaultQueueSize
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = "127.0.0.1:8080"
	}
}

// InitialLoadEnabled reports the effective initial-load setting.
func (c ControllerConfig) InitialLoadEnabled() bool {
	return c.InitialLoad == nil || *c.InitialLoad
}
