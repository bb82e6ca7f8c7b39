package parser

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"calparse/internal/schema"
)

// scanXMLCon 扫描 Sea-Bird .xmlcon 配置文件
// 温度传感器节点内的标签加 "T" 前缀（A0 -> TA0），
// 氧传感器节点内的标签加 "OXY_" 前缀，与通用电导率标签区分
func scanXMLCon(path string, data []byte) (*Document, error) {
	doc := NewDocument(path, schema.FormatXMLCon)

	decoder := xml.NewDecoder(bytes.NewReader(data))
	var stack []string

	inSensor := func(name string) bool {
		for _, el := range stack {
			if el == name {
				return true
			}
		}
		return false
	}

	for {
		tok, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := tok.(type) {
		case xml.StartElement:
			stack = append(stack, t.Name.Local)
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			tag := stack[len(stack)-1]
			value := strings.TrimSpace(string(t))
			if value == "" {
				continue
			}

			switch tag {
			case "SerialNumber":
				if doc.Serial == "" {
					doc.Serial = value
				}
			case "CalibrationDate":
				// 各传感器节点都带日期，以第一个（温度传感器）为准
				if len(doc.DateTexts) == 0 {
					doc.AddDate(value)
				}
			default:
				key := strings.ToUpper(tag)
				if inSensor("TemperatureSensor") {
					key = "T" + key
				} else if inSensor("OxygenSensor") {
					key = "OXY_" + key
				}
				doc.Add(key, value)
			}
		}
	}

	if doc.Serial == "" && len(doc.Values) == 0 {
		return nil, fmt.Errorf("no calibration data in xmlcon file")
	}
	return doc, nil
}
