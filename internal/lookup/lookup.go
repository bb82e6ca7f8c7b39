package lookup

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"calparse/internal/model"
)

//go:embed schema.sql
var schemaFS embed.FS

// Store 序列号 -> 资产编号 的 SQLite 查找表
type Store struct {
	db *sql.DB
}

// Open 打开查找表数据库，不存在时创建
// 任何失败都包装为 LookupLoadError，调用方应中止运行
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, &model.LookupLoadError{Path: dbPath, Err: err}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, &model.LookupLoadError{Path: dbPath, Err: err}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &model.LookupLoadError{Path: dbPath, Err: err}
	}

	// SQLite 建议单连接
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	store := &Store{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, &model.LookupLoadError{Path: dbPath, Err: err}
	}

	return store, nil
}

func (s *Store) initSchema() error {
	schemaSQL, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("failed to read schema.sql: %w", err)
	}
	if _, err := s.db.Exec(string(schemaSQL)); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	return nil
}

// Resolve 按序列号精确查找资产编号
// 不存在时返回 NotFoundError，由调用方决定如何上报
func (s *Store) Resolve(serial string) (string, error) {
	var uid string
	err := s.db.QueryRow(
		"SELECT uid FROM instrument_lookup WHERE serial = ?", serial,
	).Scan(&uid)
	if errors.Is(err, sql.ErrNoRows) {
		return "", &model.NotFoundError{Serial: serial}
	}
	if err != nil {
		return "", fmt.Errorf("lookup query failed: %w", err)
	}
	return uid, nil
}

// Put 写入或更新一条映射
func (s *Store) Put(serial, uid string) error {
	_, err := s.db.Exec(
		"INSERT INTO instrument_lookup (serial, uid) VALUES (?, ?) "+
			"ON CONFLICT(serial) DO UPDATE SET uid = excluded.uid",
		serial, uid,
	)
	return err
}

// Count 映射总数
func (s *Store) Count() (int, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM instrument_lookup").Scan(&n)
	return n, err
}

// Close 关闭数据库连接
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
