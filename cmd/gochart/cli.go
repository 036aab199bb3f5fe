package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/urfave/cli/v2"
)

// createCliApp 创建CLI应用实例
func createCliApp() *cli.App {
	app := &cli.App{
		Name:      AppName,
		Version:   AppVersion,
		Usage:     AppDesc,
		Flags:     createCliFlags(),
		Action:    runApp,
		ArgsUsage: "[数据文件]",
	}

	app.Commands = createCommands()

	return app
}

// createCliFlags 创建CLI参数定义，未设置的参数沿用配置文件
func createCliFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "YAML配置文件路径",
			EnvVars: []string{"GOCHART_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "file",
			Aliases: []string{"f"},
			Usage:   "JSON数据文件路径",
		},
		&cli.StringFlag{
			Name:    "preset",
			Aliases: []string{"p"},
			Usage:   "初始周期 (1w, 1m, 3m, 6m, YTD, 1y, 5y, All)",
		},
		&cli.StringFlag{
			Name:  "label-style",
			Usage: "X轴标签风格 (context, month-year)",
		},
		&cli.IntFlag{
			Name:  "tick-count",
			Usage: "X轴刻度数量",
		},
		&cli.IntFlag{
			Name:  "stride",
			Usage: "选择器背景曲线抽样步长",
		},
		&cli.StringFlag{
			Name:  "timezone",
			Usage: "标签使用的时区 (Local, UTC, Asia/Shanghai ...)",
		},
		&cli.StringFlag{
			Name:  "log-file",
			Usage: "日志文件路径，为空时不记录日志",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "日志级别 (debug, info, warn, error, disabled)",
		},
	}
}

// createCommands 创建子命令
func createCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:      "render",
			Usage:     "把图表以纯文本输出到标准输出",
			ArgsUsage: "[数据文件]",
			Flags: append(createCliFlags(),
				&cli.IntFlag{
					Name:  "width",
					Usage: "输出宽度，0表示使用终端宽度",
				},
				&cli.IntFlag{
					Name:  "height",
					Usage: "输出高度，0表示使用终端高度",
				},
			),
			Action: runRender,
		},
		{
			Name:  "sample",
			Usage: "生成合成数据文件",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "count",
					Aliases: []string{"n"},
					Value:   2500,
					Usage:   "数据点数量",
				},
				&cli.TimestampFlag{
					Name:   "from",
					Layout: "2006-01-02",
					Value:  cli.NewTimestamp(time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)),
					Usage:  "起始日期",
				},
				&cli.TimestampFlag{
					Name:   "to",
					Layout: "2006-01-02",
					Usage:  "结束日期，默认为今天",
				},
				&cli.Int64Flag{
					Name:  "seed",
					Value: 1,
					Usage: "随机种子",
				},
				&cli.StringFlag{
					Name:    "out",
					Aliases: []string{"o"},
					Usage:   "输出文件，默认为标准输出",
				},
			},
			Action: runSample,
		},
		{
			Name:    "version",
			Aliases: []string{"v"},
			Usage:   "显示详细版本信息",
			Action: func(c *cli.Context) error {
				fmt.Printf("%s v%s\n", AppName, AppVersion)
				fmt.Printf("描述: %s\n", AppDesc)
				fmt.Printf("系统: %s/%s\n", runtime.GOOS, runtime.GOARCH)
				fmt.Printf("Go: %s\n", runtime.Version())
				return nil
			},
		},
	}
}
