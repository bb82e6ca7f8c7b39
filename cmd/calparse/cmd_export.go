package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"calparse/internal/config"
	"calparse/internal/exporter"
)

var exportFlags struct {
	inputDir string
	output   string
}

var exportCmd = &cobra.Command{
	Use:   "export <family>",
	Short: "把家族输出 CSV（含矩阵旁路文件）导出为 xlsx 工作簿",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	f := exportCmd.Flags()
	f.StringVar(&exportFlags.inputDir, "input-dir", "", "输入根目录（覆盖配置文件 data.base_dir）")
	f.StringVarP(&exportFlags.output, "output", "o", "", "xlsx 输出路径（默认 <base>/<FAMILY>/<FAMILY>.xlsx）")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if exportFlags.inputDir != "" {
		cfg.Data.BaseDir = exportFlags.inputDir
	}

	family := strings.ToUpper(args[0])
	csvPath := filepath.Join(cfg.Data.BaseDir, family, family+".csv")
	outPath := exportFlags.output
	if outPath == "" {
		outPath = filepath.Join(cfg.Data.BaseDir, family, family+".xlsx")
	}

	if err := exporter.New().ExportToFile(csvPath, outPath); err != nil {
		return err
	}
	cmd.Printf("exported %s -> %s\n", csvPath, outPath)
	return nil
}
