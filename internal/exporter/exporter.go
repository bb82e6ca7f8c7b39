package exporter

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"calparse/internal/parser"
)

// Exporter 把家族输出 CSV 渲染成 xlsx 工作簿
//
// 主表为 CSV 全量内容，数值单元格按数值写入；
// 含 "SheetRef:" 引用的矩阵系数展开为独立 sheet，旁路 .ext 文件随主表一起读取。
type Exporter struct{}

// New 创建导出器
func New() *Exporter {
	return &Exporter{}
}

// Export 读取输出 CSV 并构建工作簿
// 旁路矩阵文件 <资产编号>__<日期>__<系数名>.ext 在 CSV 同目录查找
func (e *Exporter) Export(csvPath string) (*excelize.File, error) {
	rows, err := readRows(csvPath)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("output file %s is empty", csvPath)
	}

	family := strings.TrimSuffix(filepath.Base(csvPath), filepath.Ext(csvPath))

	f := excelize.NewFile()
	main := sheetName(family)
	if err := f.SetSheetName(f.GetSheetName(0), main); err != nil {
		f.Close()
		return nil, err
	}

	for i, row := range rows {
		if err := writeRow(f, main, i, row, i > 0); err != nil {
			f.Close()
			return nil, err
		}
	}

	if err := e.expandMatrixSheets(f, filepath.Dir(csvPath), rows); err != nil {
		f.Close()
		return nil, err
	}

	f.SetActiveSheet(0)
	return f, nil
}

// ExportToFile 导出并原子写入目标文件
func (e *Exporter) ExportToFile(csvPath, outPath string) error {
	f, err := e.Export(csvPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return err
	}
	tmp := outPath + ".tmp"
	if err := f.SaveAs(tmp); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, outPath)
}

// expandMatrixSheets 为每个 SheetRef 单元格追加一个矩阵 sheet
// sheet 名为 "<系数名> <行号>"，旁路文件缺失视为错误
func (e *Exporter) expandMatrixSheets(f *excelize.File, dir string, rows [][]string) error {
	for i, row := range rows[1:] {
		if len(row) < 3 {
			continue
		}
		uid, dateKey := row[0], row[2]

		for _, cell := range row {
			name, ok := strings.CutPrefix(cell, "SheetRef:")
			if !ok {
				continue
			}

			extPath := filepath.Join(dir, fmt.Sprintf("%s__%s__%s.ext", uid, dateKey, name))
			matrix, err := readRows(extPath)
			if err != nil {
				return fmt.Errorf("matrix sidecar for %s missing: %w", cell, err)
			}

			sheet := sheetName(fmt.Sprintf("%s %d", name, i+1))
			if _, err := f.NewSheet(sheet); err != nil {
				return err
			}
			for j, mrow := range matrix {
				if err := writeRow(f, sheet, j, mrow, true); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// writeRow 写一行单元格，numeric 为真时把可解析的数值写为数值类型
func writeRow(f *excelize.File, sheet string, rowIdx int, row []string, numeric bool) error {
	for colIdx, val := range row {
		cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
		if err != nil {
			return err
		}
		if numeric {
			if v, err := parser.ParseFloat(val); err == nil {
				if err := f.SetCellValue(sheet, cell, v); err != nil {
					return err
				}
				continue
			}
		}
		if err := f.SetCellValue(sheet, cell, val); err != nil {
			return err
		}
	}
	return nil
}

// sheetName 截断到 excel 的 sheet 名长度上限
func sheetName(name string) string {
	if len(name) > 31 {
		return name[:31]
	}
	return name
}

func readRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}
