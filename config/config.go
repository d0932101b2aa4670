package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPort           = 1313
	DefaultGeminiModel    = "gemini-1.5-flash"
	DefaultRetries        = 3
	DefaultMaxRetries     = 5
	DefaultDelaySeconds   = 2.0
	DefaultMaxChars       = 6000
	DefaultLeetcodeURL    = "https://leetcode.com/graphql"
	DefaultRecentAcLimit  = 15
	DefaultTimeoutSeconds = 30
)

type Config struct {
	Server struct {
		Port         int      `yaml:"port"`
		AllowOrigins []string `yaml:"allowOrigins"`
	} `yaml:"server"`

	Gemini struct {
		ApiKey       string  `yaml:"apiKey"`
		Model        string  `yaml:"model"`
		Retries      int     `yaml:"retries"`
		MaxRetries   int     `yaml:"maxRetries"`
		DelaySeconds float64 `yaml:"delaySeconds"`
		MaxChars     int     `yaml:"maxChars"`
	} `yaml:"gemini"`

	Leetcode struct {
		Endpoint      string `yaml:"endpoint"`
		RecentAcLimit int    `yaml:"recentAcLimit"`
	} `yaml:"leetcode"`

	HTTP struct {
		TimeoutSeconds int `yaml:"timeoutSeconds"`
	} `yaml:"http"`
}

// LoadConfig reads the configuration file. A .env file next to the process is
// loaded first so GEMINI_API_KEY can override the key from YAML.
func LoadConfig(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		cfg.Gemini.ApiKey = key
	}
	cfg.applyDefaults()

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if len(c.Server.AllowOrigins) == 0 {
		c.Server.AllowOrigins = []string{"http://localhost:5173"}
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = DefaultGeminiModel
	}
	if c.Gemini.Retries < 1 {
		c.Gemini.Retries = DefaultRetries
	}
	if c.Gemini.MaxRetries < 1 {
		c.Gemini.MaxRetries = DefaultMaxRetries
	}
	if c.Gemini.Retries > c.Gemini.MaxRetries {
		c.Gemini.Retries = c.Gemini.MaxRetries
	}
	if c.Gemini.DelaySeconds <= 0 {
		c.Gemini.DelaySeconds = DefaultDelaySeconds
	}
	if c.Gemini.MaxChars <= 0 {
		c.Gemini.MaxChars = DefaultMaxChars
	}
	if c.Leetcode.Endpoint == "" {
		c.Leetcode.Endpoint = DefaultLeetcodeURL
	}
	if c.Leetcode.RecentAcLimit <= 0 {
		c.Leetcode.RecentAcLimit = DefaultRecentAcLimit
	}
	if c.HTTP.TimeoutSeconds <= 0 {
		c.HTTP.TimeoutSeconds = DefaultTimeoutSeconds
	}
}

// Delay returns the configured base backoff delay.
func (c *Config) Delay() time.Duration {
	return time.Duration(c.Gemini.DelaySeconds * float64(time.Second))
}

// Timeout returns the timeout for outbound HTTP calls.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.HTTP.TimeoutSeconds) * time.Second
}
