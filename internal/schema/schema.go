package schema

import (
	"fmt"
	"strings"
)

// Format 校准文件的扫描格式
type Format string

const (
	FormatKV     Format = "kv"     // Sea-Bird .cal 键值对文件
	FormatXMLCon Format = "xmlcon" // Sea-Bird .xmlcon 配置文件
	FormatECO    Format = "eco"    // WET Labs ECO 系列文本标定单
	FormatSUNA   Format = "suna"   // Satlantic SUNA 帧记录文件
	FormatACS    Format = "acs"    // WET Labs ac-s 设备文件
	FormatOCR    Format = "ocr"    // Satlantic OCR-507 标定文件
	FormatSheet  Format = "sheet"  // 通用 xlsx 表格
)

// Kind 字段值类型
type Kind string

const (
	KindFloat      Kind = "float"
	KindInt        Kind = "int"
	KindString     Kind = "string"
	KindFloatArray Kind = "float_array" // 按波长展开的数组，写入时 JSON 编码
	KindMatrix     Kind = "matrix"      // 二维矩阵，写入旁路 .ext 文件
)

// Field 单个系数的提取规则
type Field struct {
	Name     string   `yaml:"name"`               // 输出 CSV 中的系数名，如 CC_a0
	Keys     []string `yaml:"keys,omitempty"`     // 厂商文件中的标签别名
	Kind     Kind     `yaml:"kind"`               // 值类型
	Required bool     `yaml:"required,omitempty"` // 缺失时记录整体无效
	Value    string   `yaml:"value,omitempty"`    // 固定值系数，不从文件提取
	Index    int      `yaml:"index,omitempty"`    // ECO 格式中值在行内的位置，-1 表示最后一列
}

// Schema 一个仪器家族的声明式字段模式
type Schema struct {
	Type               string   `yaml:"type"`                           // 家族名，如 CTD / NUTNRA
	Formats            []Format `yaml:"formats"`                        // 接受的扫描格式，按优先级排列
	SerialPrefix       string   `yaml:"serial_prefix,omitempty"`        // 序列号前缀，如 "16-"
	SerialFromFilename bool     `yaml:"serial_from_filename,omitempty"` // 序列号取自文件名（OPTAA）
	SerialTail         bool     `yaml:"serial_tail,omitempty"`          // 仅保留序列号 '-' 之后的部分
	FilePrefix         string   `yaml:"file_prefix,omitempty"`          // 仅处理该前缀的输入文件（NUTNR: SNA）
	DateLayouts        []string `yaml:"date_layouts"`                   // 校准日期候选格式
	RejectKeys         []string `yaml:"reject_keys,omitempty"`          // 出现这些标签的文件整体拒绝（FLNTUA: NTU）
	Fields             []Field  `yaml:"fields"`
}

// Header 输出 CSV 的固定表头：基础列 + 按模式顺序的系数列
func (s *Schema) Header() []string {
	header := make([]string, 0, len(s.Fields)+3)
	header = append(header, "asset_uid", "serial", "calibration_date")
	for _, f := range s.Fields {
		header = append(header, f.Name)
	}
	return header
}

// Field 按名称查找字段定义
func (s *Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// AcceptsFormat 该家族是否接受指定格式
func (s *Schema) AcceptsFormat(format Format) bool {
	for _, f := range s.Formats {
		if f == format {
			return true
		}
	}
	return false
}

var validKinds = map[Kind]bool{
	KindFloat:      true,
	KindInt:        true,
	KindString:     true,
	KindFloatArray: true,
	KindMatrix:     true,
}

var validFormats = map[Format]bool{
	FormatKV:     true,
	FormatXMLCon: true,
	FormatECO:    true,
	FormatSUNA:   true,
	FormatACS:    true,
	FormatOCR:    true,
	FormatSheet:  true,
}

// Validate 校验模式定义的完整性
func (s *Schema) Validate() error {
	if strings.TrimSpace(s.Type) == "" {
		return fmt.Errorf("schema has empty type")
	}
	if len(s.Formats) == 0 {
		return fmt.Errorf("schema %s: no formats declared", s.Type)
	}
	for _, f := range s.Formats {
		if !validFormats[f] {
			return fmt.Errorf("schema %s: unknown format %q", s.Type, f)
		}
	}
	if len(s.Fields) == 0 {
		return fmt.Errorf("schema %s: no fields declared", s.Type)
	}
	seen := make(map[string]bool, len(s.Fields))
	for _, f := range s.Fields {
		if f.Name == "" {
			return fmt.Errorf("schema %s: field with empty name", s.Type)
		}
		if seen[f.Name] {
			return fmt.Errorf("schema %s: duplicate field %q", s.Type, f.Name)
		}
		seen[f.Name] = true
		if !validKinds[f.Kind] {
			return fmt.Errorf("schema %s: field %s has unknown kind %q", s.Type, f.Name, f.Kind)
		}
		if f.Value == "" && len(f.Keys) == 0 && f.Kind != KindMatrix {
			return fmt.Errorf("schema %s: field %s has neither keys nor a fixed value", s.Type, f.Name)
		}
	}
	return nil
}
