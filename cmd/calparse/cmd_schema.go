package main

import (
	"strings"

	"github.com/spf13/cobra"

	"calparse/internal/schema"
)

var schemaDirFlag string

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "查看已注册的仪器家族模式",
}

var schemaListCmd = &cobra.Command{
	Use:   "list",
	Short: "列出全部家族及其字段数",
	RunE: func(cmd *cobra.Command, args []string) error {
		schemas := schema.Builtin()
		if schemaDirFlag != "" {
			if err := schemas.LoadDir(schemaDirFlag); err != nil {
				return err
			}
		}

		for _, t := range schemas.Types() {
			s, _ := schemas.Get(t)
			formats := make([]string, len(s.Formats))
			for i, f := range s.Formats {
				formats[i] = string(f)
			}
			cmd.Printf("%-8s %2d fields  [%s]\n", t, len(s.Fields), strings.Join(formats, ", "))
		}
		return nil
	},
}

func init() {
	schemaCmd.PersistentFlags().StringVar(&schemaDirFlag, "schema-dir", "", "额外的 YAML 模式目录")
	schemaCmd.AddCommand(schemaListCmd)
}
