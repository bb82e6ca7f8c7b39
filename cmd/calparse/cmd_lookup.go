package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"calparse/internal/config"
	"calparse/internal/lookup"
)

var lookupDBFlag string

var lookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "维护序列号到资产编号的查找表",
}

var lookupImportCmd = &cobra.Command{
	Use:   "import <csv>",
	Short: "从 serial,uid 两列的 CSV 导入映射",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lk, err := openLookup()
		if err != nil {
			return err
		}
		defer lk.Close()

		count, err := lk.ImportCSV(args[0])
		if err != nil {
			return err
		}
		total, err := lk.Count()
		if err != nil {
			return err
		}
		cmd.Printf("imported %d mapping(s), %d total\n", count, total)
		return nil
	},
}

var lookupGetCmd = &cobra.Command{
	Use:   "get <serial>",
	Short: "按序列号查询资产编号",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lk, err := openLookup()
		if err != nil {
			return err
		}
		defer lk.Close()

		uid, err := lk.Resolve(args[0])
		if err != nil {
			return err
		}
		cmd.Println(uid)
		return nil
	},
}

func init() {
	lookupCmd.PersistentFlags().StringVar(&lookupDBFlag, "lookup-db", "", "查找表数据库路径（覆盖配置文件 data.lookup_db）")
	lookupCmd.AddCommand(lookupImportCmd)
	lookupCmd.AddCommand(lookupGetCmd)
}

func openLookup() (*lookup.Store, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	path := cfg.Data.LookupDB
	if lookupDBFlag != "" {
		path = lookupDBFlag
	}
	return lookup.Open(path)
}
