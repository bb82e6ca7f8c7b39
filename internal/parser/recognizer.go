package parser

import (
	"path/filepath"
	"strings"

	"calparse/internal/schema"
)

// RecognitionResult 格式识别结果
type RecognitionResult struct {
	Format     schema.Format `json:"format"`
	Confidence float64       `json:"confidence"` // 置信度 0-1
}

// RecognizeFormat 根据文件名与内容特征识别扫描格式
// 内容特征互斥性较强，命中多个特征时取置信度最高者
func RecognizeFormat(path string, data []byte) RecognitionResult {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".xlsx" || ext == ".xlsm" {
		return RecognitionResult{Format: schema.FormatSheet, Confidence: 1.0}
	}

	head := string(data)
	if len(head) > 64*1024 {
		head = head[:64*1024]
	}

	if strings.Contains(head, "<?xml") || strings.Contains(head, "<SBE_InstrumentConfiguration") || ext == ".xmlcon" {
		return RecognitionResult{Format: schema.FormatXMLCon, Confidence: 1.0}
	}
	if strings.Contains(head, "OCR-507") {
		return RecognitionResult{Format: schema.FormatOCR, Confidence: 0.9}
	}
	if strings.Contains(head, `"tcal:`) || strings.Contains(head, "; number of temperature bins") {
		return RecognitionResult{Format: schema.FormatACS, Confidence: 0.9}
	}
	if hasSUNAFrames(head) {
		return RecognitionResult{Format: schema.FormatSUNA, Confidence: 0.9}
	}
	if hasECOHeader(head) {
		return RecognitionResult{Format: schema.FormatECO, Confidence: 0.8}
	}
	if strings.Contains(head, "SERIALNO=") || strings.Contains(head, "INSTRUMENT_TYPE=") {
		return RecognitionResult{Format: schema.FormatKV, Confidence: 0.8}
	}

	return RecognitionResult{Format: "", Confidence: 0}
}

func hasSUNAFrames(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "H,") || strings.HasPrefix(line, "E,") {
			return true
		}
	}
	return false
}

func hasECOHeader(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) >= 2 && fields[0] == "ECO" {
			return true
		}
	}
	return false
}
