package writer

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"calparse/internal/model"
	"calparse/internal/parser"
	"calparse/internal/schema"
)

// Policy 重复记录处理策略
type Policy string

const (
	PolicySkip  Policy = "skip"  // 跳过重复记录，文件保持不变
	PolicyError Policy = "error" // 重复记录视为错误
)

// ParsePolicy 解析策略名
func ParsePolicy(name string) (Policy, error) {
	switch Policy(name) {
	case PolicySkip, PolicyError:
		return Policy(name), nil
	default:
		return "", fmt.Errorf("unknown duplicate policy %q", name)
	}
}

// Writer 校准记录 CSV 写入器
// 同一输出文件内不允许出现重复的 (资产编号, 校准日期)
type Writer struct {
	policy Policy
}

// New 创建写入器
func New(policy Policy) *Writer {
	return &Writer{policy: policy}
}

// Write 把记录追加到目标 CSV
// 返回的 bool 表示是否命中重复记录；表头与既有行保持不变，
// 全量重写到临时文件后原子替换，部分写入不会破坏列结构。
// 旁路矩阵文件先于主表落盘，主表提交即记录完整，
// 不会出现 SheetRef 引用悬空的中间状态
func (w *Writer) Write(record *model.CalibrationRecord, s *schema.Schema, outPath string) (bool, error) {
	header := s.Header()

	rows, err := readExisting(outPath, header)
	if err != nil {
		return false, err
	}

	dateKey := record.DateKey()
	for _, row := range rows {
		if len(row) >= 3 && row[0] == record.AssetUID && row[2] == dateKey {
			if w.policy == PolicyError {
				return true, &model.DuplicateRecordError{AssetUID: record.AssetUID, DateKey: dateKey}
			}
			return true, nil
		}
	}

	newRow := make([]string, 0, len(header))
	newRow = append(newRow, record.AssetUID, record.Serial, dateKey)
	for _, f := range s.Fields {
		newRow = append(newRow, record.Values[f.Name])
	}

	all := make([][]string, 0, len(rows)+2)
	all = append(all, header)
	all = append(all, rows...)
	all = append(all, newRow)

	if err := w.writeMatrices(record, filepath.Dir(outPath)); err != nil {
		return false, err
	}

	if err := writeCSVAtomic(outPath, all); err != nil {
		return false, &model.WriteError{Path: outPath, Err: err}
	}

	return false, nil
}

// readExisting 读入既有输出并校验表头
// 返回数据行（不含表头）；文件不存在时返回空
func readExisting(path string, header []string) ([][]string, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, &model.WriteError{Path: path, Err: err}
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, &model.WriteError{Path: path, Err: fmt.Errorf("existing output unreadable: %w", err)}
	}
	if len(rows) == 0 {
		return nil, nil
	}

	if !sameHeader(rows[0], header) {
		return nil, &model.WriteError{Path: path, Err: fmt.Errorf("existing output has different column layout")}
	}
	return rows[1:], nil
}

func sameHeader(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// writeMatrices 矩阵系数写入旁路 .ext 文件
// 主表单元格持有 "SheetRef:<系数名>" 引用
func (w *Writer) writeMatrices(record *model.CalibrationRecord, dir string) error {
	for name, matrix := range record.Matrices {
		rows := make([][]string, len(matrix))
		for i, vals := range matrix {
			row := make([]string, len(vals))
			for j, v := range vals {
				row[j] = parser.FormatFloat(v)
			}
			rows[i] = row
		}

		path := filepath.Join(dir, fmt.Sprintf("%s__%s__%s.ext", record.AssetUID, record.DateKey(), name))
		if err := writeCSVAtomic(path, rows); err != nil {
			return &model.WriteError{Path: path, Err: err}
		}
	}
	return nil
}

// writeCSVAtomic 全量写入临时文件后重命名替换目标
func writeCSVAtomic(path string, rows [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(f)
	if err := cw.WriteAll(rows); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
