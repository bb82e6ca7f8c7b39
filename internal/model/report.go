package model

import "time"

// FileStatus 单个输入文件的处理结果状态
type FileStatus string

const (
	StatusIngested  FileStatus = "ingested"  // 成功写入
	StatusDuplicate FileStatus = "duplicate" // 重复记录（按策略跳过）
	StatusSkipped   FileStatus = "skipped"   // 非目标文件，未处理
	StatusError     FileStatus = "error"     // 提取/查找/写入失败
)

// FileResult 单个输入文件的处理结果
type FileResult struct {
	File     string        `json:"file"`
	Family   string        `json:"family"`
	Status   FileStatus    `json:"status"`
	Serial   string        `json:"serial,omitempty"`
	AssetUID string        `json:"assetUid,omitempty"`
	Reason   string        `json:"reason,omitempty"`
	Fields   []string      `json:"fields,omitempty"` // 出错字段名
	Duration time.Duration `json:"duration"`
}

// RunReport 一次批处理运行的摘要
type RunReport struct {
	RunID    string        `json:"runId"`
	Family   string        `json:"family"`
	Total    int           `json:"total"`
	Ingested int           `json:"ingested"`
	Skipped  int           `json:"skipped"`
	Dupes    int           `json:"dupes"`
	Failed   int           `json:"failed"`
	Duration time.Duration `json:"duration"`
	Files    []FileResult  `json:"files"`
}

// Record 记录一个文件结果并更新计数
func (r *RunReport) Record(res FileResult) {
	r.Files = append(r.Files, res)
	r.Total++
	switch res.Status {
	case StatusIngested:
		r.Ingested++
	case StatusDuplicate:
		r.Dupes++
	case StatusSkipped:
		r.Skipped++
	case StatusError:
		r.Failed++
	}
}

// OK 运行是否无失败文件
func (r *RunReport) OK() bool {
	return r.Failed == 0
}
