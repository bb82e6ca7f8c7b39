package model

import (
	"time"
)

// CalibrationRecord 归一化后的校准记录
// 由字段提取结果与资产编号查找结果合并而成
type CalibrationRecord struct {
	AssetUID string            `json:"assetUid"` // 资产追踪编号
	Serial   string            `json:"serial"`   // 仪器序列号
	Date     time.Time         `json:"date"`     // 校准日期
	Type     string            `json:"type"`     // 仪器家族，如 CTD / NUTNR
	Values   map[string]string `json:"values"`   // 系数名 -> 规范化后的值

	// 矩阵类系数（如 OPTAA 的 tcarray/taarray）体积过大，
	// 不直接写入主 CSV，而是写入旁路 .ext 文件，
	// 主表中对应单元格为 "SheetRef:<系数名>"
	Matrices map[string][][]float64 `json:"-"`
}

// NewCalibrationRecord 创建空记录
func NewCalibrationRecord(instType string) *CalibrationRecord {
	return &CalibrationRecord{
		Type:     instType,
		Values:   make(map[string]string),
		Matrices: make(map[string][][]float64),
	}
}

// DateKey 重复判定使用的日期键（YYYYMMDD）
func (r *CalibrationRecord) DateKey() string {
	return r.Date.Format("20060102")
}
