package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig 应用配置
type AppConfig struct {
	Data   DataConfig   `toml:"data"`
	Output OutputConfig `toml:"output"`
	Schema SchemaConfig `toml:"schema"`
}

// DataConfig 数据目录配置
type DataConfig struct {
	BaseDir  string `toml:"base_dir"`  // 各家族输入目录的根
	LookupDB string `toml:"lookup_db"` // 查找表数据库路径
}

// OutputConfig 输出配置
type OutputConfig struct {
	DuplicatePolicy string `toml:"duplicate_policy"` // skip / error
	Archive         bool   `toml:"archive"`          // 导入成功后归档输入文件
}

// SchemaConfig 模式覆盖配置
type SchemaConfig struct {
	Dir string `toml:"dir"` // 额外的 YAML 模式目录，为空则只用内置模式
}

// DefaultConfig 默认配置
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Data: DataConfig{
			BaseDir:  ".",
			LookupDB: "instrumentLookUp.db",
		},
		Output: OutputConfig{
			DuplicatePolicy: "skip",
			Archive:         true,
		},
		Schema: SchemaConfig{
			Dir: "",
		},
	}
}

// GetExeDir 获取可执行文件所在目录
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfig 从 config.toml 加载配置
// 配置文件位于可执行文件同目录下，不存在时使用默认配置
func LoadConfig() (*AppConfig, error) {
	config := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		// 无法获取可执行文件目录，使用当前目录
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(config)
			return config, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	applyEnv(config)
	return config, nil
}

// applyEnv 环境变量覆盖（用于 E2E / 本地运行）
func applyEnv(config *AppConfig) {
	if v := os.Getenv("CALPARSE_BASE_DIR"); v != "" {
		config.Data.BaseDir = v
	}
	if v := os.Getenv("CALPARSE_LOOKUP_DB"); v != "" {
		config.Data.LookupDB = v
	}
}

// SaveConfig 保存配置到 config.toml
func SaveConfig(config *AppConfig) error {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}
