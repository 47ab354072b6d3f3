package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
	"github.com/thangpham393/chinese-vocabulary-learning/pkg/validator"
)

type Config struct {
	App    AppConfig    `mapstructure:"app" validate:"required"`
	DB     DBConfig     `mapstructure:"db"`
	Cache  CacheConfig  `mapstructure:"cache" validate:"required"`
	Gemini GeminiConfig `mapstructure:"gemini"`
	Env    string       `mapstructure:"env" validate:"oneof=development production staging"`
}

type AppConfig struct {
	Addr    string        `mapstructure:"addr" validate:"required"`
	Timeout time.Duration `mapstructure:"timeout" validate:"min=1"`
}

// DBConfig describes the remote lesson store. The store is optional: when no
// connection parameters are configured the application runs on the local
// cache alone.
type DBConfig struct {
	Conn DBConn `mapstructure:"conn"`
	Cfg  DBCfg  `mapstructure:"cfg"`
}

type DBConn struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSL      string `mapstructure:"ssl" validate:"omitempty,oneof=disable require verify-full"`
}

type DBCfg struct {
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"omitempty,min=1,max=1000"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"omitempty,min=0,max=100"`
	ConnMaxLifeTime time.Duration `mapstructure:"conn_max_life_time" validate:"min=0"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time" validate:"min=0"`
}

// Configured reports whether both remote-store connection parameters are
// present. Anything less and the remote store stays out of the wiring.
func (d DBConfig) Configured() bool {
	return d.Conn.Host != "" && d.Conn.Password != ""
}

type CacheConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

type GeminiConfig struct {
	APIKey     string `mapstructure:"api_key"`
	TextModel  string `mapstructure:"text_model"`
	ImageModel string `mapstructure:"image_model"`
	TTSModel   string `mapstructure:"tts_model"`
}

func (g GeminiConfig) Configured() bool {
	return g.APIKey != ""
}

func Init() (*Config, error) {
	v := viper.New()

	v.AutomaticEnv()

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}

	v.AddConfigPath("configs")
	v.SetConfigName(configName)

	if err := v.BindEnv("gemini.api_key", "GEMINI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind GEMINI_API_KEY: %w", err)
	}
	if err := v.BindEnv("db.conn.host", "DB_HOST"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_HOST: %w", err)
	}
	if err := v.BindEnv("db.conn.port", "DB_PORT"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PORT: %w", err)
	}
	if err := v.BindEnv("db.conn.user", "DB_USER"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_USER: %w", err)
	}
	if err := v.BindEnv("db.conn.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD: %w", err)
	}
	if err := v.BindEnv("db.conn.name", "DB_NAME"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_NAME: %w", err)
	}
	if err := v.BindEnv("db.conn.ssl", "DB_SSL"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_SSL: %w", err)
	}
	if err := v.BindEnv("cache.path", "CACHE_PATH"); err != nil {
		return nil, fmt.Errorf("failed to bind CACHE_PATH: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Gemini.TextModel == "" {
		cfg.Gemini.TextModel = "gemini-3-flash-preview"
	}
	if cfg.Gemini.ImageModel == "" {
		cfg.Gemini.ImageModel = "gemini-2.5-flash-image"
	}
	if cfg.Gemini.TTSModel == "" {
		cfg.Gemini.TTSModel = "gemini-2.5-flash-preview-tts"
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
