package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DotEnvFile is loaded before environment overrides are applied. Variables
// already present in the process environment win over the file.
var DotEnvFile = ".env"

// LoadConfig reads the YAML file at configPath, applies the .env file and
// SITE_* environment overrides, then validates the result. An empty path
// yields a configuration built from defaults and the environment only.
func LoadConfig(configPath string) (*Config, error) {
	var config Config

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadDotEnv(DotEnvFile); err != nil {
		return nil, err
	}

	if err := applyEnvironmentOverrides(&config); err != nil {
		return nil, err
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}

	return nil
}

var (
	EnvSitePassword    = "SITE_PASSWORD"
	EnvSiteEnvironment = "SITE_ENVIRONMENT"
	EnvSitePort        = "SITE_PORT"
	EnvSiteStaticDir   = "SITE_STATIC_DIR"
	EnvSiteLogLevel    = "SITE_LOG_LEVEL"
	EnvSiteLogFormat   = "SITE_LOG_FORMAT"
	EnvSiteTrustProxy  = "SITE_TRUST_PROXY_HEADERS"
)

func applyEnvironmentOverrides(config *Config) error {
	if password := os.Getenv(EnvSitePassword); password != "" {
		config.Gate.Password = password
	}

	if environment := os.Getenv(EnvSiteEnvironment); environment != "" {
		config.Server.Environment = environment
	}

	if portStr := os.Getenv(EnvSitePort); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvSitePort, portStr, err)
		}
		config.Server.Port = port
	}

	if staticDir := os.Getenv(EnvSiteStaticDir); staticDir != "" {
		config.Server.StaticDir = staticDir
	}

	if level := os.Getenv(EnvSiteLogLevel); level != "" {
		config.Log.Level = level
	}

	if format := os.Getenv(EnvSiteLogFormat); format != "" {
		config.Log.Format = format
	}

	if trustStr := os.Getenv(EnvSiteTrustProxy); trustStr != "" {
		trust, err := strconv.ParseBool(trustStr)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvSiteTrustProxy, trustStr, err)
		}
		config.Server.TrustProxyHeaders = trust
	}

	return nil
}

func validateConfig(config *Config) error {
	err := config.validateServerConfig()
	if err != nil {
		return err
	}

	err = config.validateGateConfig()
	if err != nil {
		return err
	}

	err = config.validateLogConfig()
	if err != nil {
		return err
	}

	err = config.validateCORSConfig()
	if err != nil {
		return err
	}

	return nil
}

func (c *Config) validateServerConfig() error {
	if c.Server.Port == 0 {
		c.Server.Port = DefaultServerConfig.Port
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}

	switch c.Server.Environment {
	case "":
		c.Server.Environment = DefaultServerConfig.Environment
	case EnvironmentDevelopment, EnvironmentProduction:
	default:
		return fmt.Errorf("invalid server.environment: %s, options are '%s' or '%s'", c.Server.Environment, EnvironmentDevelopment, EnvironmentProduction)
	}

	if c.Server.StaticDir == "" {
		c.Server.StaticDir = DefaultServerConfig.StaticDir
	}

	if c.Server.Debug != nil && c.Server.Debug.Enabled {
		if c.Server.Debug.Host == "" {
			c.Server.Debug.Host = DefaultDebugConfig.Host
		}
		if c.Server.Debug.Port <= 0 || c.Server.Debug.Port >= 65535 {
			c.Server.Debug.Port = DefaultDebugConfig.Port
		}
	}

	return nil
}

func (c *Config) validateGateConfig() error {
	if c.Gate.Password == "" {
		return fmt.Errorf("gate.password is required (or set %s)", EnvSitePassword)
	}

	if len(c.Gate.BypassPrefixes) == 0 {
		c.Gate.BypassPrefixes = DefaultGateConfig.BypassPrefixes
	}

	for i, prefix := range c.Gate.BypassPrefixes {
		if !strings.HasPrefix(prefix, "/") {
			return fmt.Errorf("gate.bypass_prefixes[%d] must start with '/', got %q", i, prefix)
		}
		if prefix == "/" {
			return fmt.Errorf("gate.bypass_prefixes[%d] cannot be '/', it would disable the gate", i)
		}
	}

	return nil
}

func (c *Config) validateLogConfig() error {
	switch c.Log.Format {
	case "":
		c.Log.Format = DefaultLogConfig.Format
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format: %s, options are text or json", c.Log.Format)
	}

	switch c.Log.Level {
	case "":
		c.Log.Level = DefaultLogConfig.Level
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s, options are debug, info, warn, error", c.Log.Level)
	}

	return nil
}

func (c *Config) validateCORSConfig() error {
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = DefaultCORSConfig.AllowedOrigins
	}
	if len(c.CORS.AllowedMethods) == 0 {
		c.CORS.AllowedMethods = DefaultCORSConfig.AllowedMethods
	}
	if len(c.CORS.AllowedHeaders) == 0 {
		c.CORS.AllowedHeaders = DefaultCORSConfig.AllowedHeaders
	}
	if c.CORS.MaxAgeSeconds == 0 {
		c.CORS.MaxAgeSeconds = DefaultCORSConfig.MaxAgeSeconds
	}

	return nil
}
