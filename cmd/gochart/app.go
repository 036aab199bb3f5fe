package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Kevin-Rudy/gochart/pkg/logging"
	"github.com/Kevin-Rudy/gochart/pkg/series"
	"github.com/Kevin-Rudy/gochart/pkg/ticks"
	"github.com/Kevin-Rudy/gochart/pkg/tui"
	"github.com/Kevin-Rudy/gochart/pkg/window"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

// runApp 主要应用逻辑处理函数
func runApp(c *cli.Context) error {
	appConfig, err := buildConfigFromCLI(c)
	if err != nil {
		return cli.Exit(fmt.Sprintf("配置加载失败: %v", err), 1)
	}
	if err := validateConfig(appConfig); err != nil {
		return cli.Exit(fmt.Sprintf("配置验证失败: %v", err), 1)
	}

	log, closer, err := logging.New(loggingConfig(appConfig.File.Log))
	if err != nil {
		return cli.Exit(fmt.Sprintf("无法创建日志: %v", err), 1)
	}
	defer closer.Close()

	coord, finance, err := openChart(appConfig, log)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	log.Info().
		Str("file", appConfig.File.Data.Path).
		Int("points", coord.Store().Len()).
		Str("preset", appConfig.File.Chart.Preset).
		Msg("启动界面")

	// 创建并启动TUI实例，阻塞直到用户退出
	tuiInstance := tui.NewTUI(coord, finance, appConfig.TUIConfig, log)
	if err := tuiInstance.Run(); err != nil {
		log.Error().Err(err).Msg("界面运行出错")
		return cli.Exit(fmt.Sprintf("TUI运行出错: %v", err), 1)
	}

	log.Info().Msg("程序已退出")
	return nil
}

// runRender 输出一帧纯文本图表
func runRender(c *cli.Context) error {
	appConfig, err := buildConfigFromCLI(c)
	if err != nil {
		return cli.Exit(fmt.Sprintf("配置加载失败: %v", err), 1)
	}
	if err := validateConfig(appConfig); err != nil {
		return cli.Exit(fmt.Sprintf("配置验证失败: %v", err), 1)
	}

	log, closer, err := logging.New(loggingConfig(appConfig.File.Log))
	if err != nil {
		return cli.Exit(fmt.Sprintf("无法创建日志: %v", err), 1)
	}
	defer closer.Close()

	coord, finance, err := openChart(appConfig, log)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	width, height := renderSize(c.Int("width"), c.Int("height"))
	snapshot := tui.NewHeadless(coord, finance, appConfig.TUIConfig).Render(width, height)
	fmt.Fprintln(c.App.Writer, snapshot)
	return nil
}

// runSample 生成合成数据文件
func runSample(c *cli.Context) error {
	to := time.Now()
	if ts := c.Timestamp("to"); ts != nil {
		to = *ts
	}
	from := time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)
	if ts := c.Timestamp("from"); ts != nil {
		from = *ts
	}
	if c.Int("count") <= 0 {
		return cli.Exit("错误: 数据点数量必须大于0", 1)
	}
	if !to.After(from) {
		return cli.Exit("错误: 结束日期必须晚于起始日期", 1)
	}

	doc := series.Synthesize(c.Int("count"), from, to, c.Int64("seed"))

	var out io.Writer = c.App.Writer
	if path := c.String("out"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return cli.Exit(fmt.Sprintf("无法创建输出文件: %v", err), 1)
		}
		defer f.Close()
		out = f
	}

	if err := series.WriteDocument(out, doc); err != nil {
		return cli.Exit(err.Error(), 1)
	}
	return nil
}

// openChart 读取数据文件并按配置创建窗口协调器
func openChart(appConfig *AppConfig, log zerolog.Logger) (*window.Coordinator, tui.Finance, error) {
	chartConfig := appConfig.File.Chart

	doc, err := series.LoadFile(appConfig.File.Data.Path)
	if err != nil {
		return nil, tui.Finance{}, err
	}
	store, err := doc.Store()
	if err != nil {
		return nil, tui.Finance{}, fmt.Errorf("数据无效: %w", err)
	}

	style, ok := ticks.ParseStyle(chartConfig.LabelStyle)
	if !ok {
		return nil, tui.Finance{}, fmt.Errorf("未知的标签风格: %q", chartConfig.LabelStyle)
	}
	preset, ok := window.ParsePreset(chartConfig.Preset)
	if !ok {
		return nil, tui.Finance{}, fmt.Errorf("未知的周期: %q", chartConfig.Preset)
	}

	coord, err := window.New(store,
		window.WithLogger(log),
		window.WithLabeler(ticks.NewLabeler(appConfig.Location)),
		window.WithTickCount(chartConfig.TickCount),
		window.WithLabelStyle(style),
	)
	if err != nil {
		return nil, tui.Finance{}, fmt.Errorf("无法创建图表: %w", err)
	}

	if !coord.SelectPreset(preset) {
		log.Warn().Str("preset", preset.String()).Msg("初始周期内没有数据，显示全部数据")
	}

	finance := tui.Finance{
		Now:  doc.Data.NowDataFinance.Snapshot(),
		Past: doc.Data.PastDataFinance.Snapshot(),
	}
	return coord, finance, nil
}
