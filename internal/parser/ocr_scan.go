package parser

import (
	"strings"

	"calparse/internal/schema"
)

// scanOCR 扫描 Satlantic OCR-507 标定文件
// "ED ..." 行声明一个通道，下一条三列数据行给出
// 偏移量、刻度因子和浸没系数
func scanOCR(path string, data []byte) (*Document, error) {
	doc := NewDocument(path, schema.FormatOCR)
	pending := false

	for _, line := range splitLines(data) {
		fields := strings.Fields(line)

		if strings.Contains(line, "OCR-507") && len(fields) >= 2 {
			doc.Serial = strings.TrimLeft(fields[len(fields)-2], "0")
			continue
		}
		if len(fields) == 0 {
			continue // 跳过空行
		}

		if fields[0] == "#" {
			if len(fields) >= 2 && looksLikeDate(fields[1]) {
				doc.AddDate(fields[1])
			}
			continue
		}

		if fields[0] == "ED" {
			pending = true
			continue
		}

		if pending {
			if len(fields) == 3 {
				offset, err1 := ParseFloat(fields[0])
				scale, err2 := ParseFloat(fields[1])
				factor, err3 := ParseFloat(fields[2])
				if err1 == nil && err2 == nil && err3 == nil {
					doc.Arrays["offset"] = append(doc.Arrays["offset"], offset)
					doc.Arrays["scale"] = append(doc.Arrays["scale"], scale)
					doc.Arrays["immersion_factor"] = append(doc.Arrays["immersion_factor"], factor)
				}
				pending = false
			}
		}
	}

	return doc, nil
}

// looksLikeDate 粗判注释行第二列是否为日期
func looksLikeDate(s string) bool {
	digits := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '-' || r == '/':
		default:
			return false
		}
	}
	return digits >= 6
}
