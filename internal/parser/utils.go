package parser

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CleanNumber 规范化数值文本，去除空白、千分位和百分号
func CleanNumber(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "%", "")
	return s
}

// ParseFloat 严格解析浮点数
func ParseFloat(s string) (float64, error) {
	return strconv.ParseFloat(CleanNumber(s), 64)
}

// ParseInt 严格解析整数
func ParseInt(s string) (int64, error) {
	return strconv.ParseInt(CleanNumber(s), 10, 64)
}

// FormatFloat 浮点数的规范输出格式，保证写入/读回一致
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// EncodeFloats 数组系数的单元格编码（JSON 数组）
func EncodeFloats(values []float64) string {
	data, _ := json.Marshal(values)
	return string(data)
}

// NormalizeLabel 规范化标签：去空白、去引号、统一大写
func NormalizeLabel(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"'`)
	return strings.ToUpper(s)
}

// StripPunct 去除首尾标点（日期原文常带句号/引号）
func StripPunct(s string) string {
	return strings.Trim(s, `"'.,;:()`)
}

// ParseDate 在候选日期原文中按给定格式解析，返回最晚的一条
// 多条候选来自同一文件的多处日期标注（如 SUNA 文件的多条创建时间）
func ParseDate(texts []string, layouts []string) (time.Time, error) {
	var best time.Time
	found := false
	for _, text := range texts {
		text = StripPunct(text)
		for _, layout := range layouts {
			t, err := time.Parse(layout, text)
			if err != nil {
				continue
			}
			if !found || t.After(best) {
				best = t
				found = true
			}
			break
		}
	}
	if !found {
		if len(texts) == 0 {
			return time.Time{}, fmt.Errorf("no calibration date in file")
		}
		return time.Time{}, fmt.Errorf("unparsable calibration date %q", texts[0])
	}
	return best, nil
}

// ContainsAny 文本是否包含任一关键词
func ContainsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
