package parser

import (
	"calparse/internal/schema"
)

// Occurrence 标签一次命中的取值列（按行内顺序）
type Occurrence []string

// Document 扫描阶段的归一化产物
// 各格式扫描器把原始文件摊平成带标签的值，供模式驱动的提取器消费
type Document struct {
	Path      string                  // 输入文件路径
	Format    schema.Format           // 实际扫描格式
	Serial    string                  // 扫描出的序列号原文（未加前缀）
	DateTexts []string                // 候选校准日期原文，可能多条
	Values    map[string][]Occurrence // 标签 -> 命中列表
	Arrays    map[string][]float64    // 按波长展开的数组
	Matrices  map[string][][]float64  // 二维矩阵（ac-s 温度补偿表）
}

// NewDocument 创建空文档
func NewDocument(path string, format schema.Format) *Document {
	return &Document{
		Path:     path,
		Format:   format,
		Values:   make(map[string][]Occurrence),
		Arrays:   make(map[string][]float64),
		Matrices: make(map[string][][]float64),
	}
}

// Add 记录一次标签命中
func (d *Document) Add(key string, tokens ...string) {
	d.Values[key] = append(d.Values[key], Occurrence(tokens))
}

// AddDate 记录一条候选日期原文
func (d *Document) AddDate(text string) {
	if text != "" {
		d.DateTexts = append(d.DateTexts, text)
	}
}

// Has 标签是否出现过
func (d *Document) Has(key string) bool {
	return len(d.Values[key]) > 0
}
