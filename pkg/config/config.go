package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/mapstructure"
	"github.com/virtwire/vsphere-go-sdk/internal/common/core"
)

type Config struct {
	Host          string `mapstructure:"hostname"`
	Username      string `mapstructure:"username"`
	Password      string `mapstructure:"password"`
	Port          int    `mapstructure:"port"`
	ValidateCerts bool   `mapstructure:"validate_certs"`
	Datacenter    string `mapstructure:"datacenter"`

	// The proxy applies only when host and port are both set.
	ProxyHost     string `mapstructure:"proxy_host"`
	ProxyPort     int    `mapstructure:"proxy_port"`
	ProxyProtocol string `mapstructure:"proxy_protocol"`

	// Mostly used for log level.
	Development  bool           `mapstructure:"development"`
	RetryMode    core.RetryMode `mapstructure:"retry_mode"`
	RetryMaxTime time.Duration  `mapstructure:"retry_max_time"`
}

// New returns a new Config with sensible defaults.
//
// The following environment variables are honored:
//
// - VMWARE_HOST: the vCenter or ESXi hostname, with an optional :port.
// - VMWARE_USER: the username to use when connecting to the API.
// - VMWARE_PASSWORD: the password to use when connecting to the API.
// - VMWARE_PORT: the API port. Defaults to 443.
// - VMWARE_VALIDATE_CERTS: whether to verify the server's TLS certificate. Defaults to true.
// - VMWARE_DATACENTER: the datacenter to scope lookups to.
// - VMWARE_PROXY_HOST, VMWARE_PROXY_PORT, VMWARE_PROXY_PROTOCOL: HTTP proxy settings.
// - VMWARE_DEVELOPMENT: whether to enable development mode.
// - VMWARE_RETRY_MODE: the retry mode to use. Defaults to "backoff". Valid values are "none", "backoff".
// - VMWARE_RETRY_MAX_TIME: the maximum total time spent retrying. Defaults to 5 minutes.
//
// If any of the required environment variables are not set, New will return an error.
func New() (*Config, error) {
	cfg, err := fromEnv()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// fromEnv gathers everything the environment offers without demanding
// the required fields yet; FromMap and FromFile fill those in later.
func fromEnv() (*Config, error) {
	cfg := &Config{
		Host:          os.Getenv("VMWARE_HOST"),
		Username:      os.Getenv("VMWARE_USER"),
		Password:      os.Getenv("VMWARE_PASSWORD"),
		Port:          core.DefaultHTTPSPort,
		ValidateCerts: true,
		Datacenter:    os.Getenv("VMWARE_DATACENTER"),
		ProxyHost:     os.Getenv("VMWARE_PROXY_HOST"),
		ProxyProtocol: envOr("VMWARE_PROXY_PROTOCOL", "http"),
		RetryMode:     core.Backoff,
		RetryMaxTime:  5 * time.Minute,
	}

	if v := os.Getenv("VMWARE_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("VMWARE_PORT must be a number, got %q", v)
		}
		cfg.Port = port
	}

	if v := os.Getenv("VMWARE_PROXY_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("VMWARE_PROXY_PORT must be a number, got %q", v)
		}
		cfg.ProxyPort = port
	}

	if v := os.Getenv("VMWARE_VALIDATE_CERTS"); v != "" {
		validate, err := strconv.ParseBool(v)
		if err == nil {
			cfg.ValidateCerts = validate
		}
	}

	if v := os.Getenv("VMWARE_DEVELOPMENT"); v != "" {
		cfg.Development, _ = strconv.ParseBool(v)
	}

	if v := os.Getenv("VMWARE_RETRY_MODE"); v != "" {
		mode, err := core.ParseRetryMode(v)
		if err != nil {
			return nil, err
		}
		cfg.RetryMode = mode
	}

	if v := os.Getenv("VMWARE_RETRY_MAX_TIME"); v != "" {
		duration, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("VMWARE_RETRY_MAX_TIME must be a duration like 5m, got %q", v)
		}
		cfg.RetryMaxTime = duration
	}

	return cfg, nil
}

// FromMap decodes a flat parameter map, the shape automation tools hand
// over (keys hostname, username, password, port, validate_certs, ...).
// Values missing from the map fall back to the environment.
func FromMap(params map[string]any) (*Config, error) {
	cfg, err := fromEnv()
	if err != nil {
		return nil, err
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			retryModeHookFunc(),
		),
		Result: cfg,
	})
	if err != nil {
		return nil, fmt.Errorf("building config decoder: %w", err)
	}
	if err := decoder.Decode(params); err != nil {
		return nil, fmt.Errorf("decoding config params: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromFile loads a TOML config file. File values override the environment.
func FromFile(path string) (*Config, error) {
	var file struct {
		Hostname      string `toml:"hostname"`
		Username      string `toml:"username"`
		Password      string `toml:"password"`
		Port          int    `toml:"port"`
		ValidateCerts *bool  `toml:"validate_certs"`
		Datacenter    string `toml:"datacenter"`
		ProxyHost     string `toml:"proxy_host"`
		ProxyPort     int    `toml:"proxy_port"`
		ProxyProtocol string `toml:"proxy_protocol"`
		Development   bool   `toml:"development"`
		RetryMode     string `toml:"retry_mode"`
		RetryMaxTime  string `toml:"retry_max_time"`
	}
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("decoding config file %s: %w", path, err)
	}

	cfg, err := fromEnv()
	if err != nil {
		return nil, err
	}
	if file.Hostname != "" {
		cfg.Host = file.Hostname
	}
	if file.Username != "" {
		cfg.Username = file.Username
	}
	if file.Password != "" {
		cfg.Password = file.Password
	}
	if file.Datacenter != "" {
		cfg.Datacenter = file.Datacenter
	}
	if file.ProxyHost != "" {
		cfg.ProxyHost = file.ProxyHost
	}
	if file.ProxyPort != 0 {
		cfg.ProxyPort = file.ProxyPort
	}
	if file.Development {
		cfg.Development = true
	}
	if file.Port != 0 {
		cfg.Port = file.Port
	}
	if file.ValidateCerts != nil {
		cfg.ValidateCerts = *file.ValidateCerts
	}
	if file.ProxyProtocol != "" {
		cfg.ProxyProtocol = file.ProxyProtocol
	}
	if file.RetryMode != "" {
		mode, err := core.ParseRetryMode(file.RetryMode)
		if err != nil {
			return nil, err
		}
		cfg.RetryMode = mode
	}
	if file.RetryMaxTime != "" {
		duration, err := time.ParseDuration(file.RetryMaxTime)
		if err != nil {
			return nil, fmt.Errorf("retry_max_time must be a duration like 5m, got %q", file.RetryMaxTime)
		}
		cfg.RetryMaxTime = duration
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the required connection parameters. Each missing one
// raises its own error so the caller knows exactly what to set.
func (c *Config) Validate() error {
	if c.Host == "" {
		return core.NewMissingParameterError("hostname", "VMWARE_HOST")
	}
	if c.Username == "" {
		return core.NewMissingParameterError("username", "VMWARE_USER")
	}
	if c.Password == "" {
		return core.NewMissingParameterError("password", "VMWARE_PASSWORD")
	}
	return nil
}

// Endpoint returns host:port, leaving the host alone when it already
// carries a port.
func (c *Config) Endpoint() string {
	if strings.Contains(c.Host, ":") {
		return c.Host
	}
	port := c.Port
	if port == 0 {
		port = core.DefaultHTTPSPort
	}
	return fmt.Sprintf("%s:%d", c.Host, port)
}

// ProxyURL returns the HTTP proxy to tunnel API traffic through, or nil
// when no proxy is configured. Host and port must both be present.
func (c *Config) ProxyURL() (*url.URL, error) {
	if c.ProxyHost == "" || c.ProxyPort == 0 {
		return nil, nil
	}
	protocol := c.ProxyProtocol
	if protocol == "" {
		protocol = "http"
	}
	raw := fmt.Sprintf("%s://%s", protocol, net.JoinHostPort(c.ProxyHost, strconv.Itoa(c.ProxyPort)))
	p, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid proxy address %s: %w", raw, err)
	}
	return p, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func retryModeHookFunc() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || to != reflect.TypeOf(core.RetryMode(0)) {
			return data, nil
		}
		return core.ParseRetryMode(data.(string))
	}
}
