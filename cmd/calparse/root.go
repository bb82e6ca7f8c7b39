package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// version 由构建时 -ldflags 注入
var version = "dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "calparse",
	Short: "厂商校准文件解析与资产管理 CSV 导入工具",
	Long: "calparse 读取各仪器家族的厂商校准文件，按声明式字段模式提取校准系数，\n" +
		"通过本地查找表把序列号解析为资产追踪编号，并追加写入资产管理系统的 CSV。",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "输出调试日志")
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.Version = version
}

// newLogger 创建 zap 日志器，--verbose 打开 debug 级别
func newLogger() (*zap.SugaredLogger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
