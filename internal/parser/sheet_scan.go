package parser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"calparse/internal/schema"
)

// scanSheet 扫描 xlsx 格式的厂商标定单
// 约定布局：首个工作表，每行第一列为标签，其后各列为值；
// 序列号与校准日期由标签行给出
func scanSheet(path string) (*Document, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}

	doc := NewDocument(path, schema.FormatSheet)

	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		label := strings.TrimSpace(row[0])
		if label == "" {
			continue
		}

		values := make([]string, 0, len(row)-1)
		for _, cell := range row[1:] {
			cell = strings.TrimSpace(cell)
			if cell != "" {
				values = append(values, cell)
			}
		}
		if len(values) == 0 {
			continue
		}

		lower := strings.ToLower(label)
		switch {
		case strings.Contains(lower, "serial"):
			if doc.Serial == "" {
				doc.Serial = values[0]
			}
		case strings.Contains(lower, "date"):
			doc.AddDate(values[0])
		default:
			doc.Add(NormalizeLabel(label), values...)
		}
	}

	return doc, nil
}
