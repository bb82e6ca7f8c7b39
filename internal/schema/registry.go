package schema

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Registry 仪器家族模式注册表
type Registry struct {
	schemas map[string]*Schema
}

// NewRegistry 创建空注册表
func NewRegistry() *Registry {
	return &Registry{schemas: make(map[string]*Schema)}
}

func (r *Registry) add(s *Schema) {
	r.schemas[strings.ToUpper(s.Type)] = s
}

// Get 按家族名查找模式
func (r *Registry) Get(instType string) (*Schema, bool) {
	s, ok := r.schemas[strings.ToUpper(instType)]
	return s, ok
}

// Types 按字典序返回全部家族名
func (r *Registry) Types() []string {
	types := make([]string, 0, len(r.schemas))
	for t := range r.schemas {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// LoadDir 从目录加载 YAML 模式文件并合并进注册表
// 每个 .yaml/.yml 文件定义一个家族；同名家族覆盖内置定义
func (r *Registry) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read schema dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read schema file %s: %w", path, err)
		}

		var s Schema
		if err := yaml.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("failed to parse schema file %s: %w", path, err)
		}
		if err := s.Validate(); err != nil {
			return fmt.Errorf("invalid schema file %s: %w", path, err)
		}

		r.add(&s)
	}

	return nil
}
