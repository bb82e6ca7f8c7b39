package parser

import (
	"fmt"
	"os"
	"strings"

	"calparse/internal/schema"
)

// Scan 按指定格式扫描一个校准文件，返回归一化文档
func Scan(path string, format schema.Format) (*Document, error) {
	if format == schema.FormatSheet {
		return scanSheet(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read calibration file: %w", err)
	}

	switch format {
	case schema.FormatKV:
		return scanKV(path, data)
	case schema.FormatXMLCon:
		return scanXMLCon(path, data)
	case schema.FormatECO:
		return scanECO(path, data)
	case schema.FormatSUNA:
		return scanSUNA(path, data)
	case schema.FormatACS:
		return scanACS(path, data)
	case schema.FormatOCR:
		return scanOCR(path, data)
	default:
		return nil, fmt.Errorf("unknown scan format %q", format)
	}
}

func splitLines(data []byte) []string {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	return strings.Split(text, "\n")
}

// scanKV 扫描 Sea-Bird .cal 风格的 KEY=value 文件
// 序列号由 SERIALNO 行给出；SEACATPLUS 机型的序列号前缀由模式补齐
func scanKV(path string, data []byte) (*Document, error) {
	doc := NewDocument(path, schema.FormatKV)

	for _, line := range splitLines(data) {
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue // 跳过非键值对的行
		}

		key := NormalizeLabel(parts[0])
		value := strings.TrimSpace(parts[1])
		if key == "" || value == "" {
			continue
		}

		switch key {
		case "SERIALNO":
			if doc.Serial == "" {
				doc.Serial = value
			}
		case "CCALDATE", "OCALDATE", "CALDATE":
			doc.AddDate(value)
		default:
			doc.Add(key, value)
		}
	}

	return doc, nil
}
