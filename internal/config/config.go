package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the strainwise API configuration.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Cache     CacheConfig     `yaml:"cache"`
	Embedding EmbeddingConfig `yaml:"embedding"`
	Rerank    RerankConfig    `yaml:"rerank"`
	Recommend RecommendConfig `yaml:"recommend"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// CacheConfig holds the embedding-cache store connection settings.
// The cache is optional: with no addrs every embedding call goes straight
// to the provider.
type CacheConfig struct {
	Addrs            []string `yaml:"addrs"`
	Password         string   `yaml:"password"`
	ReadinessTimeout int      `yaml:"readiness_timeout_sec"`
	TTLHours         int      `yaml:"ttl_hours"`
}

// EmbeddingConfig holds embedding provider settings.
type EmbeddingConfig struct {
	APIKey     string `yaml:"api_key"`
	BaseURL    string `yaml:"base_url"`
	Model      string `yaml:"model"`
	Dimensions int    `yaml:"dimensions"`
	TimeoutSec int    `yaml:"timeout_sec"`
}

// RerankProviderConfig holds one generative re-ranker provider's settings.
type RerankProviderConfig struct {
	APIKey     string `yaml:"api_key"`
	BaseURL    string `yaml:"base_url"`
	Model      string `yaml:"model"`
	TimeoutSec int    `yaml:"timeout_sec"`
}

// BreakerConfig holds circuit-breaker settings for external re-ranker stages.
type BreakerConfig struct {
	MaxFailures uint32 `yaml:"max_failures"`
	OpenSec     int    `yaml:"open_sec"`
}

// RerankConfig holds the re-ranker fallback chain settings.
type RerankConfig struct {
	Primary   RerankProviderConfig `yaml:"primary"`
	Secondary RerankProviderConfig `yaml:"secondary"`
	Breaker   BreakerConfig        `yaml:"breaker"`
}

// RecommendConfig holds pipeline sizing settings.
type RecommendConfig struct {
	PoolSize     int `yaml:"pool_size"`     // candidate pool cap
	SimilarityK  int `yaml:"similarity_k"`  // similarity hits merged into the pool
	FilterTopN   int `yaml:"filter_top_n"`  // rule filter result size
	MinResults   int `yaml:"min_results"`   // final list lower bound
	MaxResults   int `yaml:"max_results"`   // final list upper bound
	PrioritySize int `yaml:"priority_size"` // priority subset size
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics.
func MustLoad(env string) Config {
	cfg, err := Load(env)
	if err != nil {
		panic(err)
	}
	return cfg
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 30
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Cache.ReadinessTimeout <= 0 {
		c.Cache.ReadinessTimeout = 10
	}
	if c.Cache.TTLHours <= 0 {
		c.Cache.TTLHours = 7 * 24
	}
	if c.Embedding.Model == "" {
		c.Embedding.Model = "text-embedding-3-small"
	}
	if c.Embedding.TimeoutSec <= 0 {
		c.Embedding.TimeoutSec = 10
	}
	if c.Rerank.Primary.Model == "" {
		c.Rerank.Primary.Model = "gpt-4o"
	}
	if c.Rerank.Primary.TimeoutSec <= 0 {
		c.Rerank.Primary.TimeoutSec = 20
	}
	if c.Rerank.Secondary.TimeoutSec <= 0 {
		c.Rerank.Secondary.TimeoutSec = 10
	}
	if c.Rerank.Breaker.MaxFailures == 0 {
		c.Rerank.Breaker.MaxFailures = 3
	}
	if c.Rerank.Breaker.OpenSec <= 0 {
		c.Rerank.Breaker.OpenSec = 30
	}
	if c.Recommend.PoolSize <= 0 {
		c.Recommend.PoolSize = 15
	}
	if c.Recommend.SimilarityK <= 0 {
		c.Recommend.SimilarityK = 15
	}
	if c.Recommend.FilterTopN <= 0 {
		c.Recommend.FilterTopN = 6
	}
	if c.Recommend.MinResults <= 0 {
		c.Recommend.MinResults = 3
	}
	if c.Recommend.MaxResults <= 0 {
		c.Recommend.MaxResults = 5
	}
	if c.Recommend.PrioritySize <= 0 {
		c.Recommend.PrioritySize = 10
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	if c.Recommend.MinResults > c.Recommend.MaxResults {
		return fmt.Errorf("recommend.min_results (%d) must not exceed recommend.max_results (%d)",
			c.Recommend.MinResults, c.Recommend.MaxResults)
	}
	if c.Recommend.PoolSize < c.Recommend.MaxResults {
		return fmt.Errorf("recommend.pool_size (%d) must be at least recommend.max_results (%d)",
			c.Recommend.PoolSize, c.Recommend.MaxResults)
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
