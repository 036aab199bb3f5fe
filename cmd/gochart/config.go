package main

import (
	"fmt"
	"time"

	"github.com/Kevin-Rudy/gochart/pkg/config"
	"github.com/Kevin-Rudy/gochart/pkg/logging"
	"github.com/Kevin-Rudy/gochart/pkg/tui"
	"github.com/urfave/cli/v2"
)

// AppConfig 应用层配置聚合
type AppConfig struct {
	File      *config.Config
	TUIConfig *tui.Config
	Location  *time.Location
}

// buildConfigFromCLI 读取配置文件，再用命令行参数覆盖
func buildConfigFromCLI(c *cli.Context) (*AppConfig, error) {
	fileConfig, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}

	applyFlags(fileConfig, c)

	// 参数覆盖后再校验一次
	if err := fileConfig.Validate(); err != nil {
		return nil, err
	}

	loc, err := fileConfig.Location()
	if err != nil {
		return nil, err
	}

	tuiConfig := tui.NewConfigWithOptions(
		tui.WithBackgroundStride(fileConfig.Chart.Stride),
		tui.WithPanStep(fileConfig.Chart.PanStep),
		tui.WithZoomFactor(fileConfig.Chart.ZoomFactor),
	)

	return &AppConfig{
		File:      fileConfig,
		TUIConfig: tuiConfig,
		Location:  loc,
	}, nil
}

// applyFlags 只覆盖显式设置过的参数
func applyFlags(cfg *config.Config, c *cli.Context) {
	if c.IsSet("file") {
		cfg.Data.Path = c.String("file")
	} else if c.Args().Len() > 0 {
		cfg.Data.Path = c.Args().First()
	}
	if c.IsSet("timezone") {
		cfg.Data.Timezone = c.String("timezone")
	}
	if c.IsSet("preset") {
		cfg.Chart.Preset = c.String("preset")
	}
	if c.IsSet("label-style") {
		cfg.Chart.LabelStyle = c.String("label-style")
	}
	if c.IsSet("tick-count") {
		cfg.Chart.TickCount = c.Int("tick-count")
	}
	if c.IsSet("stride") {
		cfg.Chart.Stride = c.Int("stride")
	}
	if c.IsSet("log-file") {
		cfg.Log.File = c.String("log-file")
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}
}

// loggingConfig 转换为日志包的配置
func loggingConfig(cfg config.LogConfig) logging.Config {
	return logging.Config{
		Level:      cfg.Level,
		File:       cfg.File,
		MaxSizeMB:  cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAgeDays: cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
}

// validateConfig 验证配置的合理性
func validateConfig(appConfig *AppConfig) error {
	if appConfig.File.Data.Path == "" {
		return fmt.Errorf("未指定数据文件，使用 --file 或位置参数")
	}

	if err := appConfig.TUIConfig.Validate(); err != nil {
		return fmt.Errorf("tui配置错误: %v", err)
	}

	return nil
}
