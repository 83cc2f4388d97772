package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Data      DataConfig      `mapstructure:"data"`
	Agent     AgentConfig     `mapstructure:"agent"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// Addr returns the host:port the HTTP server binds to.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DataConfig struct {
	Dir         string `mapstructure:"dir"`
	StudentFile string `mapstructure:"student_file"`
}

// StudentPath returns the absolute path of the student data file.
func (d DataConfig) StudentPath() string {
	if filepath.IsAbs(d.StudentFile) {
		return d.StudentFile
	}
	return filepath.Join(d.Dir, d.StudentFile)
}

// VisualizationsDir returns where rendered PNGs are written.
func (d DataConfig) VisualizationsDir() string {
	return filepath.Join(d.Dir, "visualizations")
}

type AgentConfig struct {
	Definition string `mapstructure:"definition"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	RequestsPerMinute int `mapstructure:"requests_per_minute"`
	Burst             int `mapstructure:"burst"`
}

type LogConfig struct {
	File string `mapstructure:"file"`
}

// Load reads config.yaml from path (a directory), layering STUDYBUDDY_*
// environment variables on top. A missing config file is fine; defaults
// plus environment cover everything.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("STUDYBUDDY")
	v.AutomaticEnv()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.mode", "release")
	v.SetDefault("data.dir", "data")
	v.SetDefault("data.student_file", "student_data.json")
	v.SetDefault("agent.definition", filepath.Join("configs", "agent.yaml"))
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("rate_limit.requests_per_minute", 60)
	v.SetDefault("rate_limit.burst", 10)
	v.SetDefault("log.file", filepath.Join("logs", "studybuddy.log"))

	v.BindEnv("server.host", "STUDYBUDDY_HOST")
	v.BindEnv("server.port", "STUDYBUDDY_PORT")
	v.BindEnv("server.mode", "STUDYBUDDY_MODE")
	v.BindEnv("data.dir", "STUDYBUDDY_DATA_DIR")
	v.BindEnv("data.student_file", "STUDYBUDDY_STUDENT_FILE")
	v.BindEnv("agent.definition", "STUDYBUDDY_AGENT_DEFINITION")
	v.BindEnv("log.file", "STUDYBUDDY_LOG_FILE")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return nil, fmt.Errorf("invalid server port %d", cfg.Server.Port)
	}
	if cfg.RateLimit.RequestsPerMinute < 0 {
		return nil, fmt.Errorf("rate_limit.requests_per_minute must not be negative")
	}

	if err := os.MkdirAll(cfg.Data.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	return &cfg, nil
}
