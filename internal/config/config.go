package config

import (
	stderrors "errors"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/vango-dev/slotkit/internal/errors"
)

const (
	// ConfigName is the base name of the configuration file.
	ConfigName = "slotkit"

	// EnvPrefix prefixes environment overrides.
	EnvPrefix = "SLOTKIT"

	// DefaultPort is the default preview server port.
	DefaultPort = 3000

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"
)

// Layout policies accepted by layout.policy.
const (
	PolicyPermissive = "permissive"
	PolicyWarn       = "warn"
	PolicyStrict     = "strict"
)

// Config is the complete slotkit configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Layout  LayoutConfig  `mapstructure:"layout"`
	Render  RenderConfig  `mapstructure:"render"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Tracing TracingConfig `mapstructure:"tracing"`
	Reload  ReloadConfig  `mapstructure:"reload"`
	Publish PublishConfig `mapstructure:"publish"`
	Log     LogConfig     `mapstructure:"log"`

	// path is the file the config was read from, empty for defaults only.
	path string
}

// ServerConfig configures the preview server.
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// LayoutConfig configures how layouts treat slot diagnostics.
type LayoutConfig struct {
	// Policy is permissive, warn or strict.
	Policy string `mapstructure:"policy"`

	// Required lists regions that must be filled in strict mode.
	Required []string `mapstructure:"required"`
}

// RenderConfig configures HTML output.
type RenderConfig struct {
	Pretty bool   `mapstructure:"pretty"`
	Lang   string `mapstructure:"lang"`
}

// MetricsConfig configures the Prometheus endpoint.
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Path      string `mapstructure:"path"`
	Namespace string `mapstructure:"namespace"`
}

// TracingConfig configures OpenTelemetry spans.
type TracingConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Service string `mapstructure:"service"`
}

// ReloadConfig configures live reload in the preview server.
type ReloadConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// PublishConfig configures uploads of rendered pages.
type PublishConfig struct {
	Bucket string `mapstructure:"bucket"`
	Prefix string `mapstructure:"prefix"`
	Region string `mapstructure:"region"`
}

// LogConfig configures the process logger.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// setDefaults registers every default with v so env overrides work for
// keys that are absent from the file.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", DefaultHost)
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("layout.policy", PolicyPermissive)
	v.SetDefault("layout.required", []string{})
	v.SetDefault("render.pretty", false)
	v.SetDefault("render.lang", "en")
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
	v.SetDefault("metrics.namespace", "slotkit")
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.service", "slotkit")
	v.SetDefault("reload.enabled", true)
	v.SetDefault("publish.bucket", "")
	v.SetDefault("publish.prefix", "")
	v.SetDefault("publish.region", "")
	v.SetDefault("log.level", "info")
}

// Default returns a Config holding only the built-in defaults.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	cfg := &Config{}
	// Defaults always decode.
	_ = v.Unmarshal(cfg)
	return cfg
}

// Load reads configuration. If path is empty, slotkit.yaml is searched for
// in the working directory and its absence is not an error. An explicit
// path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case path == "" && stderrors.As(err, &notFound):
			// Defaults and environment only.
		case path != "" && stderrors.Is(err, os.ErrNotExist):
			return nil, errors.New("E101").
				WithLocation(path, 0).
				Wrap(err).
				WithSuggestion("Check the --config path or remove the flag to use defaults")
		default:
			return nil, errors.New("E102").WithLocation(v.ConfigFileUsed(), 0).Wrap(err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.New("E102").WithLocation(v.ConfigFileUsed(), 0).Wrap(err)
	}
	cfg.path = v.ConfigFileUsed()
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Path returns the file the configuration was read from, if any.
func (c *Config) Path() string {
	return c.path
}

// Address returns host:port for the preview server.
func (c *Config) Address() string {
	return c.Server.Host + ":" + strconv.Itoa(c.Server.Port)
}

// normalize canonicalizes values that are matched case-insensitively.
func (c *Config) normalize() {
	c.Layout.Policy = strings.ToLower(strings.TrimSpace(c.Layout.Policy))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	for i, r := range c.Layout.Required {
		c.Layout.Required[i] = strings.ToLower(strings.TrimSpace(r))
	}
	if c.Metrics.Path != "" && !strings.HasPrefix(c.Metrics.Path, "/") {
		c.Metrics.Path = "/" + c.Metrics.Path
	}
}
