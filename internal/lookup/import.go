package lookup

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// ImportCSV 从 serial,uid 两列的 CSV 文件导入映射
// 已有序列号的映射被覆盖，返回导入条数
func (s *Store) ImportCSV(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open mapping csv: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return 0, fmt.Errorf("failed to parse mapping csv: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}

	// 表头定位 serial/uid 列，兼容列顺序变化
	serialCol, uidCol := 0, 1
	start := 0
	header := rows[0]
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "serial":
			serialCol = i
			start = 1
		case "uid", "asset_uid":
			uidCol = i
			start = 1
		}
	}

	count := 0
	for _, row := range rows[start:] {
		if len(row) <= serialCol || len(row) <= uidCol {
			continue
		}
		serial := strings.TrimSpace(row[serialCol])
		uid := strings.TrimSpace(row[uidCol])
		if serial == "" || uid == "" {
			continue
		}
		if err := s.Put(serial, uid); err != nil {
			return count, err
		}
		count++
	}

	return count, nil
}
