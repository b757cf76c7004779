package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override values from the config file.
const (
	EnvJWTSecret    = "JWT_SECRET"
	EnvEthNodeURL   = "ETH_NODE_URL"
	EnvAPIPort      = "API_PORT"
	EnvDatabaseURL  = "DB_CONNECTION_URL"
	EnvRedisAddress = "REDIS_ADDR"
)

// Config represents the lime API server configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Ethereum EthereumConfig `yaml:"ethereum"`
	Auth     AuthConfig     `yaml:"auth"`
	Cache    CacheConfig    `yaml:"cache"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `yaml:"host" default:"0.0.0.0"`
	Port            int           `yaml:"port" default:"8080" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" default:"30s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" default:"60s"`
	RequestTimeout  time.Duration `yaml:"request_timeout" default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"30s"`
}

// DatabaseConfig contains database connection settings.
// URL takes precedence over the discrete fields when set.
type DatabaseConfig struct {
	URL         string `yaml:"url"`
	Host        string `yaml:"host" default:"localhost" validate:"required_without=URL"`
	Port        int    `yaml:"port" default:"5432"`
	User        string `yaml:"user"`
	Password    string `yaml:"password"`
	Database    string `yaml:"database" default:"lime" validate:"required_without=URL"`
	SSLMode     string `yaml:"ssl_mode" default:"disable" validate:"oneof=disable require verify-ca verify-full"`
	AutoMigrate bool   `yaml:"auto_migrate" default:"true"`
}

// EthereumConfig contains settings for the node used to resolve transactions
type EthereumConfig struct {
	RPCURL string `yaml:"rpc_url" validate:"required,url"`
	// RequestTimeout bounds each RPC call. Zero means no timeout.
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// AuthConfig contains token issuance settings
type AuthConfig struct {
	// JWTSecret is the signing secret. An empty secret makes token issuance fail.
	JWTSecret string        `yaml:"jwt_secret"`
	TokenTTL  time.Duration `yaml:"token_ttl" default:"10s" validate:"gt=0"`
}

// CacheConfig contains the optional Redis record cache settings.
// The cache is disabled when Addr is empty.
type CacheConfig struct {
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	TTL      time.Duration `yaml:"ttl" default:"1h"`
}

// PipelineConfig contains batch resolution settings
type PipelineConfig struct {
	MaxConcurrency int `yaml:"max_concurrency" default:"8" validate:"min=1"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `yaml:"level" default:"info"`
	Format     string `yaml:"format" default:"json" validate:"oneof=json console"`
	OutputPath string `yaml:"output_path" default:"stdout"`
}

// Load reads configuration from the YAML file at configPath (optional),
// applies defaults and environment overrides, and validates the result.
// A .env file in the working directory is loaded first when present.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("failed to set config defaults: %w", err)
	}

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the struct-level constraints of cfg
func Validate(cfg *Config) error {
	return validator.New(validator.WithRequiredStructEnabled()).Struct(cfg)
}

func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv(EnvJWTSecret); ok {
		cfg.Auth.JWTSecret = v
	}
	if v, ok := os.LookupEnv(EnvEthNodeURL); ok {
		cfg.Ethereum.RPCURL = v
	}
	if v, ok := os.LookupEnv(EnvDatabaseURL); ok {
		cfg.Database.URL = v
	}
	if v, ok := os.LookupEnv(EnvRedisAddress); ok {
		cfg.Cache.Addr = v
	}
	if v, ok := os.LookupEnv(EnvAPIPort); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvAPIPort, v, err)
		}
		cfg.Server.Port = port
	}
	return nil
}

// Address returns the host:port the HTTP server listens on
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
