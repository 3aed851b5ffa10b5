package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/sethvargo/go-envconfig"
)

const (
	DefaultAPIURL = "https://wedev-api.sky.pro/api/fitness"

	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

type Config struct {
	Environment string `toml:"environment" env:"FITSYNC_ENVIRONMENT, overwrite"`

	// fitness api
	APIURL      string        `toml:"api_url" env:"FITSYNC_API_URL, overwrite"`
	HTTPTimeout time.Duration `toml:"http_timeout"`

	// catalog cache
	CacheBackend           string        `toml:"cache_backend" env:"FITSYNC_CACHE_BACKEND, overwrite"`
	CacheSizeMB            int           `toml:"cache_size_mb"`
	CourseCacheTTL         time.Duration `toml:"course_cache_ttl"`
	WorkoutCacheTTL        time.Duration `toml:"workout_cache_ttl"`
	UserCacheTTL           time.Duration `toml:"user_cache_ttl"`
	DetailFetchConcurrency int           `toml:"detail_fetch_concurrency"`

	// session
	SessionPath        string        `toml:"session_path" env:"FITSYNC_SESSION_PATH, overwrite"`
	TokenCheckInterval time.Duration `toml:"token_check_interval"`

	// redis
	RedisHost     string `toml:"redis_host" env:"FITSYNC_REDIS_HOST, overwrite"`
	RedisPort     string `toml:"redis_port" env:"FITSYNC_REDIS_PORT, overwrite"`
	RedisPassword string `toml:"-" env:"FITSYNC_REDIS_PASS, overwrite"`

	// bff server
	Host                        string `toml:"host" env:"FITSYNC_HOST, overwrite"`
	Port                        int    `toml:"port" env:"FITSYNC_PORT, overwrite"`
	LoginRateLimitAllowedPerMin int    `toml:"login_rate_limit_per_min"`
	// besides any localhost origin
	AllowedOrigins []string `toml:"allowed_origins" env:"FITSYNC_ALLOWED_ORIGINS, overwrite"`

	// logging
	LogLevel      string `toml:"log_level" env:"FITSYNC_LOG_LEVEL, overwrite"`
	LogsPath      string `toml:"logs_path" env:"FITSYNC_LOGS_PATH, overwrite"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`

	// telemetry
	SentryEnabled  bool `toml:"sentry_enabled"`
	TracingEnabled bool `toml:"tracing_enabled" env:"HONEYCOMB_ENABLED, overwrite"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Load reads the config for the given env from the TOML file, applies
// environment overrides and fills in defaults. A missing file is not an error:
// the defaults and environment alone make a usable config.
func Load(env, path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		var tomlCfg Toml
		_, err := toml.DecodeFile(path, &tomlCfg)
		switch {
		case err == nil:
			envCfg, err := tomlCfg.Get(env)
			if err != nil {
				return nil, err
			}
			if envCfg != nil {
				cfg = envCfg
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("decode toml config: %w", err)
		}
	}

	if err := envconfig.Process(context.Background(), cfg); err != nil {
		return nil, fmt.Errorf("process env config: %w", err)
	}

	if cfg.Environment == "" {
		cfg.Environment = strings.ToLower(env)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) ApplyDefaults() {
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	c.APIURL = strings.TrimRight(c.APIURL, "/")
	if c.HTTPTimeout <= 0 {
		c.HTTPTimeout = 15 * time.Second
	}
	if c.CacheBackend == "" {
		c.CacheBackend = CacheBackendMemory
	}
	if c.CacheSizeMB <= 0 {
		c.CacheSizeMB = 10
	}
	if c.CourseCacheTTL <= 0 {
		c.CourseCacheTTL = 5 * time.Minute
	}
	if c.WorkoutCacheTTL <= 0 {
		c.WorkoutCacheTTL = 10 * time.Minute
	}
	if c.UserCacheTTL <= 0 {
		c.UserCacheTTL = time.Minute
	}
	if c.DetailFetchConcurrency <= 0 {
		c.DetailFetchConcurrency = 4
	}
	if c.SessionPath == "" {
		c.SessionPath = defaultSessionPath()
	}
	if c.TokenCheckInterval <= 0 {
		c.TokenCheckInterval = 10 * time.Minute
	}
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 8090
	}
	if c.RedisHost == "" {
		c.RedisHost = "localhost"
	}
	if c.RedisPort == "" {
		c.RedisPort = "6379"
	}
	if c.LoginRateLimitAllowedPerMin <= 0 {
		c.LoginRateLimitAllowedPerMin = 5
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func (c *Config) Validate() error {
	switch c.CacheBackend {
	case CacheBackendMemory, CacheBackendRedis:
	default:
		return fmt.Errorf("unknown cache backend: %s", c.CacheBackend)
	}
	if !strings.HasPrefix(c.APIURL, "http://") && !strings.HasPrefix(c.APIURL, "https://") {
		return fmt.Errorf("invalid api url: %s", c.APIURL)
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	return nil
}

func defaultSessionPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return dir + string(os.PathSeparator) + "fitsync" + string(os.PathSeparator) + "session.json"
}
