package model

import (
	"fmt"
	"strings"
)

// FieldError 单个字段提取失败的信息
type FieldError struct {
	Field  string `json:"field"`  // 字段名
	Reason string `json:"reason"` // missing / ambiguous / bad value 等
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// ExtractionError 一次提取中收集到的全部字段错误
// 提取过程不会在第一个错误处中断，所有问题一次性报告
type ExtractionError struct {
	File   string       `json:"file"`
	Fields []FieldError `json:"fields"`
}

func (e *ExtractionError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Error()
	}
	return fmt.Sprintf("extraction failed for %s: %s", e.File, strings.Join(parts, "; "))
}

// Add 追加一个字段错误
func (e *ExtractionError) Add(field, reason string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Reason: reason})
}

// HasErrors 是否收集到错误
func (e *ExtractionError) HasErrors() bool {
	return len(e.Fields) > 0
}

// FieldNames 出错字段名列表（用于运行摘要）
func (e *ExtractionError) FieldNames() []string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = f.Field
	}
	return names
}

// NotFoundError 序列号在查找表中不存在
type NotFoundError struct {
	Serial string `json:"serial"`
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("serial %q has no asset UID in lookup table", e.Serial)
}

// DuplicateRecordError 输出 CSV 中已存在相同 (资产编号, 校准日期) 的记录
type DuplicateRecordError struct {
	AssetUID string `json:"assetUid"`
	DateKey  string `json:"dateKey"`
}

func (e *DuplicateRecordError) Error() string {
	return fmt.Sprintf("record %s__%s already present in output", e.AssetUID, e.DateKey)
}

// LookupLoadError 查找表加载失败，整个运行中止
type LookupLoadError struct {
	Path string
	Err  error
}

func (e *LookupLoadError) Error() string {
	return fmt.Sprintf("failed to load lookup table %s: %v", e.Path, e.Err)
}

func (e *LookupLoadError) Unwrap() error {
	return e.Err
}

// WriteError 输出 CSV 写入失败
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
