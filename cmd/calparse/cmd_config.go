package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"calparse/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "查看与初始化配置文件",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "在可执行文件同目录生成默认 config.toml",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.SaveConfig(config.DefaultConfig()); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		exeDir, err := config.GetExeDir()
		if err != nil {
			exeDir = "."
		}
		cmd.Printf("wrote %s\n", filepath.Join(exeDir, "config.toml"))
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "打印当前生效的配置",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		cmd.Printf("data.base_dir         = %s\n", cfg.Data.BaseDir)
		cmd.Printf("data.lookup_db        = %s\n", cfg.Data.LookupDB)
		cmd.Printf("output.duplicate_policy = %s\n", cfg.Output.DuplicatePolicy)
		cmd.Printf("output.archive        = %v\n", cfg.Output.Archive)
		cmd.Printf("schema.dir            = %s\n", cfg.Schema.Dir)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}
