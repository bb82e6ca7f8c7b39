package parser

import (
	"strings"

	"calparse/internal/schema"
)

// scanECO 扫描 WET Labs ECO 系列文本标定单
// 行格式为 "标签<TAB>刻度因子<TAB>暗计数"，标签可能带 "=" 后缀；
// "ECO xxx-nnn" 行给出序列号，"Created on: mm/dd/yy" 行给出日期
func scanECO(path string, data []byte) (*Document, error) {
	doc := NewDocument(path, schema.FormatECO)

	for _, line := range splitLines(data) {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue // 跳过空行
		}

		switch fields[0] {
		case "ECO":
			if len(fields) > 1 {
				doc.Serial = fields[len(fields)-1]
			}
			continue
		case "Created":
			tok := fields[len(fields)-1]
			// 兼容 "Created on: 3/12/15" 与 "Created on:3/12/15" 两种写法
			if idx := strings.LastIndex(tok, ":"); idx >= 0 && strings.Contains(tok[idx+1:], "/") {
				tok = tok[idx+1:]
			}
			doc.AddDate(tok)
			continue
		}

		key := NormalizeLabel(strings.SplitN(fields[0], "=", 2)[0])
		if key == "" {
			continue
		}
		doc.Add(key, fields[1:]...)
	}

	return doc, nil
}
