// Package config 读取应用配置文件
//
// 加载顺序：YAML文件、结构体默认值、.env文件与 GOCHART_* 环境变量，最后统一校验。
// 命令行参数由调用方在此之后覆盖。
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix 环境变量前缀
const EnvPrefix = "GOCHART_"

// DataConfig 数据来源
type DataConfig struct {
	Path     string `yaml:"path"`
	Timezone string `yaml:"timezone" default:"Local"`
}

// ChartConfig 图表与窗口
type ChartConfig struct {
	Preset     string  `yaml:"preset" default:"All" validate:"oneof=1w 1m 3m 6m YTD 1y 5y All"`
	LabelStyle string  `yaml:"label_style" default:"context" validate:"oneof=context month-year"`
	TickCount  int     `yaml:"tick_count" default:"9" validate:"min=2,max=24"`
	Stride     int     `yaml:"stride" default:"10" validate:"min=1"`
	PanStep    float64 `yaml:"pan_step" default:"0.1" validate:"gt=0,lte=1"`
	ZoomFactor float64 `yaml:"zoom_factor" default:"1.25" validate:"gt=1"`
}

// LogConfig 日志
type LogConfig struct {
	Level      string `yaml:"level" default:"info" validate:"oneof=debug info warn error disabled"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb" default:"10" validate:"min=1"`
	MaxBackups int    `yaml:"max_backups" default:"3" validate:"min=0"`
	MaxAgeDays int    `yaml:"max_age_days" default:"14" validate:"min=0"`
	Compress   bool   `yaml:"compress"`
}

// Config 应用配置
type Config struct {
	Data  DataConfig  `yaml:"data"`
	Chart ChartConfig `yaml:"chart"`
	Log   LogConfig   `yaml:"log"`
}

var validate = validator.New()

// Default 返回只包含默认值的配置
func Default() *Config {
	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		panic(err)
	}
	return cfg
}

// Load 读取配置文件，path为空或文件不存在时只使用默认值与环境变量
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if len(data) > 0 {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("config defaults: %w", err)
	}

	// .env 不存在时忽略
	_ = godotenv.Load()
	if err := cfg.applyEnv(os.Getenv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv 用环境变量覆盖配置
func (c *Config) applyEnv(getenv func(string) string) error {
	str := func(key string, dst *string) {
		if v := getenv(EnvPrefix + key); v != "" {
			*dst = v
		}
	}
	num := func(key string, dst *int) error {
		v := getenv(EnvPrefix + key)
		if v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
		}
		*dst = n
		return nil
	}

	str("FILE", &c.Data.Path)
	str("TIMEZONE", &c.Data.Timezone)
	str("PRESET", &c.Chart.Preset)
	str("LABEL_STYLE", &c.Chart.LabelStyle)
	str("LOG_LEVEL", &c.Log.Level)
	str("LOG_FILE", &c.Log.File)

	if err := num("TICK_COUNT", &c.Chart.TickCount); err != nil {
		return err
	}
	return num("STRIDE", &c.Chart.Stride)
}

// Validate 校验配置
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, describe(fe))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Location 解析时区名称
func (c *Config) Location() (*time.Location, error) {
	switch c.Data.Timezone {
	case "", "Local":
		return time.Local, nil
	case "UTC":
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Data.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Data.Timezone, err)
	}
	return loc, nil
}

func describe(fe validator.FieldError) string {
	field := fe.Namespace()
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation: %s", field, fe.Tag())
	}
}
