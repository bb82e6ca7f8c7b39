package parser

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"calparse/internal/model"
	"calparse/internal/schema"
)

// Extract 按模式从归一化文档中提取校准记录
// 单个字段失败不会中断其余字段的提取，所有字段错误一次性返回
func Extract(doc *Document, s *schema.Schema) (*model.CalibrationRecord, error) {
	extErr := &model.ExtractionError{File: filepath.Base(doc.Path)}

	for _, key := range s.RejectKeys {
		if doc.Has(key) {
			extErr.Add("file", fmt.Sprintf("rejected: label %s present", key))
			return nil, extErr
		}
	}

	record := model.NewCalibrationRecord(s.Type)

	serial, reason := extractSerial(doc, s)
	if reason != "" {
		extErr.Add("serial", reason)
	} else {
		record.Serial = s.SerialPrefix + serial
	}

	if date, err := ParseDate(doc.DateTexts, s.DateLayouts); err != nil {
		extErr.Add("calibration_date", err.Error())
	} else {
		record.Date = date
	}

	for _, f := range s.Fields {
		extractField(doc, f, record, extErr)
	}

	if extErr.HasErrors() {
		return nil, extErr
	}
	return record, nil
}

func extractSerial(doc *Document, s *schema.Schema) (string, string) {
	serial := doc.Serial

	if s.SerialFromFilename {
		// OPTAA 设备文件名形如 ACS012.dev，序列号取 "ACS-012"
		name := strings.ToUpper(filepath.Base(doc.Path))
		if idx := strings.Index(name, "."); idx >= 0 {
			name = name[:idx]
		}
		if len(name) < 6 {
			return "", fmt.Sprintf("cannot derive serial from filename %q", filepath.Base(doc.Path))
		}
		serial = name[:3] + "-" + name[3:6]
	}

	if serial == "" {
		return "", "missing"
	}

	if s.SerialTail {
		if idx := strings.LastIndex(serial, "-"); idx >= 0 {
			serial = serial[idx+1:]
		}
	}
	return serial, ""
}

func extractField(doc *Document, f schema.Field, record *model.CalibrationRecord, extErr *model.ExtractionError) {
	// 固定值系数直接写入
	if f.Value != "" && f.Kind != schema.KindMatrix {
		record.Values[f.Name] = f.Value
		return
	}

	switch f.Kind {
	case schema.KindMatrix:
		for _, key := range f.Keys {
			if m, ok := doc.Matrices[key]; ok && len(m) > 0 {
				record.Matrices[f.Name] = m
				record.Values[f.Name] = "SheetRef:" + f.Name
				return
			}
		}
		if f.Required {
			extErr.Add(f.Name, "missing")
		}

	case schema.KindFloatArray:
		for _, key := range f.Keys {
			if arr, ok := doc.Arrays[key]; ok && len(arr) > 0 {
				record.Values[f.Name] = EncodeFloats(arr)
				return
			}
		}
		if f.Required {
			extErr.Add(f.Name, "missing")
		}

	default:
		value, reason := scalarValue(doc, f)
		if reason != "" {
			if reason != "missing" || f.Required {
				extErr.Add(f.Name, reason)
			}
			return
		}
		record.Values[f.Name] = value
	}
}

// scalarValue 在文档中定位标量字段并做类型转换
// 返回 (规范化值, 失败原因)；reason 为空表示成功
func scalarValue(doc *Document, f schema.Field) (string, string) {
	for _, key := range f.Keys {
		occs := doc.Values[key]
		if len(occs) == 0 {
			continue
		}

		raw, ok := pickToken(occs[0], f.Index)
		if !ok {
			return "", "missing"
		}

		// 同一标签多次出现且取值不一致时视为歧义
		for _, occ := range occs[1:] {
			other, ok := pickToken(occ, f.Index)
			if !ok || other != raw {
				return "", "ambiguous"
			}
		}

		return coerce(raw, f.Kind)
	}
	return "", "missing"
}

// pickToken 按模式声明的位置取行内的值（1 起始，-1 为最后一列）
func pickToken(occ Occurrence, index int) (string, bool) {
	if len(occ) == 0 {
		return "", false
	}
	switch {
	case index == -1:
		return occ[len(occ)-1], true
	case index <= 1:
		return occ[0], true
	case index-1 < len(occ):
		return occ[index-1], true
	default:
		return "", false
	}
}

func coerce(raw string, kind schema.Kind) (string, string) {
	switch kind {
	case schema.KindFloat:
		v, err := ParseFloat(raw)
		if err != nil {
			return "", fmt.Sprintf("bad value %q: not a float", raw)
		}
		return FormatFloat(v), ""
	case schema.KindInt:
		v, err := ParseInt(raw)
		if err != nil {
			return "", fmt.Sprintf("bad value %q: not an int", raw)
		}
		return strconv.FormatInt(v, 10), ""
	default:
		return strings.TrimSpace(raw), ""
	}
}
