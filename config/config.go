package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Addr string `yaml:"-"` // computed after load, not read from file
	} `yaml:"server"`
	Log struct {
		Level    string `yaml:"level"`
		Format   string `yaml:"format"`
		Output   string `yaml:"output"`
		FilePath string `yaml:"file_path"`
	} `yaml:"log"`
	DB struct {
		Host            string `yaml:"host"`
		Port            int    `yaml:"port"`
		Username        string `yaml:"username"`
		Password        string `yaml:"password"`
		Database        string `yaml:"database"`
		Charset         string `yaml:"charset"`
		ParseTime       bool   `yaml:"parse_time"`
		DSN             string `yaml:"-"` // computed after load, not read from file
		MaxOpenConns    int    `yaml:"max_open_conns"`
		MaxIdleConns    int    `yaml:"max_idle_conns"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime"` // minutes
	} `yaml:"database"`
	Recommend struct {
		DefaultLimit int `yaml:"default_limit"` // result size when the caller sends none
		MaxLimit     int `yaml:"max_limit"`     // hard cap on requested result size
	} `yaml:"recommend"`
	AI struct {
		Enabled    bool   `yaml:"enabled"`
		BaseURL    string `yaml:"base_url"`
		APIKey     string `yaml:"api_key"`
		Model      string `yaml:"model"`
		TimeoutSec int    `yaml:"timeout_sec"` // per-request timeout, seconds
	} `yaml:"ai"`
	Stats struct {
		RefreshHour      int `yaml:"refresh_hour"`       // daily counter refresh hour (0-23)
		RefreshMinute    int `yaml:"refresh_minute"`     // daily counter refresh minute (0-59)
		CheckIntervalSec int `yaml:"check_interval_sec"` // scheduler loop interval, seconds
	} `yaml:"stats"`
	Timeouts struct {
		RequestSec  int `yaml:"request_sec"`
		ResponseSec int `yaml:"response_sec"`
		IdleSec     int `yaml:"idle_sec"`
	} `yaml:"timeouts"`
	Debug struct {
		Enabled         bool `yaml:"enabled"`
		StatsRefreshSec int  `yaml:"stats_refresh_sec"` // debug-mode refresh interval, seconds
	} `yaml:"debug"`
}

func Load() *Config {
	// Load .env first; a missing file is fine, system env still applies.
	_ = godotenv.Load()

	var cfg Config

	if data, err := os.ReadFile("config.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			log.Printf("Error loading config.yaml: %v, falling back to environment variables", err)
			return loadFromEnv()
		}
		log.Println("Loading configuration from config.yaml")

		applyEnvOverrides(&cfg)
		applyDefaults(&cfg)
		return &cfg
	}

	return loadFromEnv()
}

// applyEnvOverrides pulls secrets and credentials from the environment so they
// never have to live in config.yaml.
func applyEnvOverrides(cfg *Config) {
	if username := os.Getenv("DATABASE_USERNAME"); username != "" {
		cfg.DB.Username = username
	}
	if password := os.Getenv("DATABASE_PASSWORD"); password != "" {
		cfg.DB.Password = password
	}
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		cfg.DB.DSN = dsn
	}
	if apiKey := os.Getenv("AI_API_KEY"); apiKey != "" {
		cfg.AI.APIKey = apiKey
	}
}

// applyDefaults computes derived fields and fills gaps the file left open.
func applyDefaults(cfg *Config) {
	cfg.Server.Addr = fmt.Sprintf(":%d", cfg.Server.Port)

	if cfg.DB.DSN == "" && cfg.DB.Host != "" {
		if cfg.DB.Charset == "" {
			cfg.DB.Charset = "utf8mb4"
		}
		parseTime := ""
		if cfg.DB.ParseTime {
			parseTime = "&parseTime=true"
		}
		cfg.DB.DSN = fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s%s",
			cfg.DB.Username,
			cfg.DB.Password,
			cfg.DB.Host,
			cfg.DB.Port,
			cfg.DB.Database,
			cfg.DB.Charset,
			parseTime)
	}

	if cfg.Recommend.DefaultLimit <= 0 {
		cfg.Recommend.DefaultLimit = 5
	}
	if cfg.Recommend.MaxLimit <= 0 {
		cfg.Recommend.MaxLimit = 50
	}
	if cfg.AI.TimeoutSec <= 0 {
		cfg.AI.TimeoutSec = 5
	}
}

func loadFromEnv() *Config {
	// Minimal configuration when config.yaml is absent or broken.
	var cfg Config

	if port := os.Getenv("SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}

	if enabled := os.Getenv("AI_ENABLED"); enabled != "" {
		cfg.AI.Enabled = enabled == "true" || enabled == "1"
	}
	if baseURL := os.Getenv("AI_BASE_URL"); baseURL != "" {
		cfg.AI.BaseURL = baseURL
	}
	if model := os.Getenv("AI_MODEL"); model != "" {
		cfg.AI.Model = model
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)

	log.Println("Configuration loaded from environment variables, some settings may be missing")
	return &cfg
}
