package parser

import (
	"fmt"
	"strings"

	"calparse/internal/schema"
)

// scanACS 扫描 WET Labs ac-s 设备文件
// 带 ";" 注释的数据行按注释内容识别：温度分箱、分箱数、
// 逐波长 C/A 偏移行（同时携带温度补偿矩阵的一行）
func scanACS(path string, data []byte) (*Document, error) {
	doc := NewDocument(path, schema.FormatACS)
	nbins := -1

	for _, line := range splitLines(data) {
		parts := strings.SplitN(line, ";", 2)
		if len(parts) != 2 {
			fields := strings.Fields(line)
			if len(fields) >= 2 && strings.ToLower(fields[0]) == `"tcal:` {
				doc.Add("tcal", fields[1])
				doc.AddDate(StripPunct(fields[len(fields)-1]))
			}
			continue
		}

		dataPart, comment := parts[0], parts[1]

		switch {
		case strings.HasPrefix(comment, " temperature bins"):
			for _, tok := range strings.Fields(dataPart) {
				v, err := ParseFloat(tok)
				if err != nil {
					return nil, fmt.Errorf("bad temperature bin %q", tok)
				}
				doc.Arrays["tbins"] = append(doc.Arrays["tbins"], v)
			}

		case strings.HasPrefix(comment, " number of temperature bins"):
			n, err := ParseInt(strings.TrimSpace(dataPart))
			if err != nil {
				return nil, fmt.Errorf("bad number of temperature bins %q", dataPart)
			}
			nbins = int(n)

		case strings.HasPrefix(comment, " C and A offset"):
			if nbins < 0 {
				return nil, fmt.Errorf("C/A offset row before number of temperature bins")
			}
			fields := strings.Fields(dataPart)
			if len(fields) < 2*nbins+5 {
				return nil, fmt.Errorf("short C/A offset row: %d fields, want %d", len(fields), 2*nbins+5)
			}
			// 波长列带 C/A 前缀字符（C450.1 / A450.5）
			cw, err := ParseFloat(fields[0][1:])
			if err != nil {
				return nil, fmt.Errorf("bad C wavelength %q", fields[0])
			}
			aw, err := ParseFloat(fields[1][1:])
			if err != nil {
				return nil, fmt.Errorf("bad A wavelength %q", fields[1])
			}
			ccwo, err := ParseFloat(fields[3])
			if err != nil {
				return nil, fmt.Errorf("bad C offset %q", fields[3])
			}
			acwo, err := ParseFloat(fields[4])
			if err != nil {
				return nil, fmt.Errorf("bad A offset %q", fields[4])
			}

			tcrow := make([]float64, 0, nbins)
			tarow := make([]float64, 0, nbins)
			for _, tok := range fields[5 : nbins+5] {
				v, err := ParseFloat(tok)
				if err != nil {
					return nil, fmt.Errorf("bad tc value %q", tok)
				}
				tcrow = append(tcrow, v)
			}
			for _, tok := range fields[nbins+5 : 2*nbins+5] {
				v, err := ParseFloat(tok)
				if err != nil {
					return nil, fmt.Errorf("bad ta value %q", tok)
				}
				tarow = append(tarow, v)
			}

			doc.Arrays["cwlngth"] = append(doc.Arrays["cwlngth"], cw)
			doc.Arrays["awlngth"] = append(doc.Arrays["awlngth"], aw)
			doc.Arrays["ccwo"] = append(doc.Arrays["ccwo"], ccwo)
			doc.Arrays["acwo"] = append(doc.Arrays["acwo"], acwo)
			doc.Matrices["tcarray"] = append(doc.Matrices["tcarray"], tcrow)
			doc.Matrices["taarray"] = append(doc.Matrices["taarray"], tarow)
		}
	}

	return doc, nil
}
