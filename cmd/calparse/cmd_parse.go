package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"calparse/internal/config"
	"calparse/internal/lookup"
	"calparse/internal/model"
	"calparse/internal/schema"
	"calparse/internal/service/run"
	"calparse/internal/writer"
)

var parseFlags struct {
	inputDir   string
	outputPath string
	schemaDir  string
	lookupDB   string
	skipDup    bool
	errDup     bool
	noArchive  bool
}

var parseCmd = &cobra.Command{
	Use:   "parse <family>",
	Short: "解析一个仪器家族（或 all）的厂商校准文件并写入输出 CSV",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	f := parseCmd.Flags()
	f.StringVar(&parseFlags.inputDir, "input-dir", "", "输入根目录（覆盖配置文件 data.base_dir）")
	f.StringVar(&parseFlags.outputPath, "output-path", "", "输出 CSV 路径，仅限单家族运行（默认 <base>/<FAMILY>/<FAMILY>.csv）")
	f.StringVar(&parseFlags.schemaDir, "schema-dir", "", "额外的 YAML 模式目录")
	f.StringVar(&parseFlags.lookupDB, "lookup-db", "", "查找表数据库路径（覆盖配置文件 data.lookup_db）")
	f.BoolVar(&parseFlags.skipDup, "skip-duplicates", false, "跳过重复记录")
	f.BoolVar(&parseFlags.errDup, "error-on-duplicate", false, "重复记录视为错误")
	f.BoolVar(&parseFlags.noArchive, "no-archive", false, "导入成功后不归档输入文件")
}

func runParse(cmd *cobra.Command, args []string) error {
	if parseFlags.skipDup && parseFlags.errDup {
		return fmt.Errorf("--skip-duplicates and --error-on-duplicate are mutually exclusive")
	}
	// all 模式下各家族表头不同，不能共用一个输出文件
	if strings.EqualFold(args[0], "all") && parseFlags.outputPath != "" {
		return fmt.Errorf("--output-path only applies to a single family, not 'all'")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// 命令行参数优先于配置文件
	if parseFlags.inputDir != "" {
		cfg.Data.BaseDir = parseFlags.inputDir
	}
	if parseFlags.lookupDB != "" {
		cfg.Data.LookupDB = parseFlags.lookupDB
	}
	if parseFlags.schemaDir != "" {
		cfg.Schema.Dir = parseFlags.schemaDir
	}
	if parseFlags.noArchive {
		cfg.Output.Archive = false
	}

	if parseFlags.skipDup {
		cfg.Output.DuplicatePolicy = string(writer.PolicySkip)
	}
	if parseFlags.errDup {
		cfg.Output.DuplicatePolicy = string(writer.PolicyError)
	}
	policy, err := writer.ParsePolicy(cfg.Output.DuplicatePolicy)
	if err != nil {
		return err
	}

	schemas := schema.Builtin()
	if cfg.Schema.Dir != "" {
		if err := schemas.LoadDir(cfg.Schema.Dir); err != nil {
			return err
		}
	}

	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	// 查找表加载失败是致命错误，直接中止
	lk, err := lookup.Open(cfg.Data.LookupDB)
	if err != nil {
		return err
	}
	defer lk.Close()

	var families []string
	if strings.EqualFold(args[0], "all") {
		families = schemas.Types()
	} else {
		families = []string{args[0]}
	}

	runner := run.New(lk, schemas, run.Options{
		BaseDir:    cfg.Data.BaseDir,
		OutputPath: parseFlags.outputPath,
		Policy:     policy,
		Archive:    cfg.Output.Archive,
	}, log)

	failed := 0
	for _, family := range families {
		report, err := runner.RunFamily(family)
		if err != nil {
			return err
		}
		printSummary(cmd, report)
		failed += report.Failed
	}

	if failed > 0 {
		return fmt.Errorf("%d file(s) failed, see summary above", failed)
	}
	return nil
}

// printSummary 打印运行摘要，逐条列出被拒绝的文件及原因
func printSummary(cmd *cobra.Command, report *model.RunReport) {
	cmd.Printf("%s: %d file(s), %d ingested, %d duplicate(s), %d skipped, %d failed (%s)\n",
		report.Family, report.Total, report.Ingested, report.Dupes, report.Skipped, report.Failed,
		report.Duration.Round(1e6))

	for _, res := range report.Files {
		if res.Status != model.StatusError {
			continue
		}
		if len(res.Fields) > 0 {
			cmd.Printf("  REJECTED %s: %s (fields: %s)\n", res.File, res.Reason, strings.Join(res.Fields, ", "))
		} else {
			cmd.Printf("  REJECTED %s: %s\n", res.File, res.Reason)
		}
	}
}
