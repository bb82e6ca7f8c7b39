package main

import (
	"strings"
	"testing"
)

func TestRunParse_DuplicateFlagsExclusive(t *testing.T) {
	parseFlags.skipDup, parseFlags.errDup = true, true
	defer func() { parseFlags.skipDup, parseFlags.errDup = false, false }()

	err := runParse(parseCmd, []string{"CTD"})
	if err == nil {
		t.Fatalf("expected error for conflicting duplicate flags")
	}
	if !strings.Contains(err.Error(), "mutually exclusive") {
		t.Fatalf("error = %v", err)
	}
}

func TestRunParse_AllRejectsOutputPath(t *testing.T) {
	parseFlags.outputPath = "combined.csv"
	defer func() { parseFlags.outputPath = "" }()

	// 各家族表头不同，all 模式不能共用一个输出文件
	err := runParse(parseCmd, []string{"all"})
	if err == nil {
		t.Fatalf("expected error for --output-path with all")
	}
	if !strings.Contains(err.Error(), "output-path") {
		t.Fatalf("error = %v", err)
	}
}
