package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Data.BaseDir != "." {
		t.Fatalf("base dir = %q", cfg.Data.BaseDir)
	}
	if cfg.Data.LookupDB != "instrumentLookUp.db" {
		t.Fatalf("lookup db = %q", cfg.Data.LookupDB)
	}
	if cfg.Output.DuplicatePolicy != "skip" {
		t.Fatalf("duplicate policy = %q", cfg.Output.DuplicatePolicy)
	}
	if !cfg.Output.Archive {
		t.Fatalf("archive should default to true")
	}
}

func TestConfigTOMLRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Data.BaseDir = "/data/calibration"
	cfg.Output.DuplicatePolicy = "error"
	cfg.Schema.Dir = "/etc/calparse/schemas"

	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got AppConfig
	if err := toml.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Data.BaseDir != cfg.Data.BaseDir {
		t.Fatalf("base dir = %q", got.Data.BaseDir)
	}
	if got.Output.DuplicatePolicy != "error" {
		t.Fatalf("duplicate policy = %q", got.Output.DuplicatePolicy)
	}
	if got.Schema.Dir != cfg.Schema.Dir {
		t.Fatalf("schema dir = %q", got.Schema.Dir)
	}
}

func TestSaveConfig(t *testing.T) {
	exeDir, err := GetExeDir()
	if err != nil {
		t.Fatalf("exe dir: %v", err)
	}
	configPath := filepath.Join(exeDir, "config.toml")
	t.Cleanup(func() { os.Remove(configPath) })

	cfg := DefaultConfig()
	cfg.Data.BaseDir = "/data/calibration"
	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("read saved config: %v", err)
	}
	var got AppConfig
	if err := toml.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal saved config: %v", err)
	}
	if got.Data.BaseDir != "/data/calibration" {
		t.Fatalf("base dir = %q", got.Data.BaseDir)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("CALPARSE_BASE_DIR", "/tmp/caldata")
	t.Setenv("CALPARSE_LOOKUP_DB", "/tmp/lookup.db")

	cfg := DefaultConfig()
	applyEnv(cfg)

	if cfg.Data.BaseDir != "/tmp/caldata" {
		t.Fatalf("base dir = %q", cfg.Data.BaseDir)
	}
	if cfg.Data.LookupDB != "/tmp/lookup.db" {
		t.Fatalf("lookup db = %q", cfg.Data.LookupDB)
	}
}
