package parser

import (
	"strings"

	"calparse/internal/schema"
)

// scanSUNA 扫描 Satlantic SUNA 标定帧文件
// "H,..." 记录携带头部键值（T_CAL、序列号、创建时间），
// "E,波长,ENO3,ESWA,_,DI" 记录按波长展开为数组
func scanSUNA(path string, data []byte) (*Document, error) {
	doc := NewDocument(path, schema.FormatSUNA)

	for _, line := range splitLines(data) {
		parts := strings.Split(line, ",")
		if len(parts) < 2 {
			continue // 跳过非记录行
		}

		switch strings.TrimSpace(parts[0]) {
		case "H":
			payload := strings.TrimSpace(parts[1])
			fields := strings.Fields(payload)
			switch {
			case strings.Contains(payload, "SUNA") && len(fields) >= 2:
				doc.Serial = strings.TrimLeft(fields[1], "0")
			case strings.Contains(payload, "creation") && len(fields) >= 2:
				// "...,file creation time 21-Apr-2016 10:13:06"
				doc.AddDate(fields[len(fields)-2])
			case len(fields) == 2:
				doc.Add(NormalizeLabel(fields[0]), fields[1])
			}

		case "E":
			if len(parts) < 6 {
				continue
			}
			wl, err1 := ParseFloat(parts[1])
			eno3, err2 := ParseFloat(parts[2])
			eswa, err3 := ParseFloat(parts[3])
			di, err4 := ParseFloat(parts[5])
			if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
				continue
			}
			doc.Arrays["wavelength"] = append(doc.Arrays["wavelength"], wl)
			doc.Arrays["eno3"] = append(doc.Arrays["eno3"], eno3)
			doc.Arrays["eswa"] = append(doc.Arrays["eswa"], eswa)
			doc.Arrays["di"] = append(doc.Arrays["di"], di)
		}
	}

	return doc, nil
}
