package run

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"calparse/internal/lookup"
	"calparse/internal/model"
	"calparse/internal/parser"
	"calparse/internal/schema"
	"calparse/internal/writer"
)

// Options 一次批处理运行的参数
type Options struct {
	BaseDir    string // 各家族输入目录的根，<base>/<FAMILY>/manufacturer
	OutputPath string // 输出 CSV 路径，为空时取 <base>/<FAMILY>/<FAMILY>.csv
	Policy     writer.Policy
	Archive    bool // 成功导入后把输入文件移入 manufacturer_ARCHIVE
}

// Runner 单个家族的批处理流水线
// 逐文件执行 扫描 -> 提取 -> 查找 -> 合并 -> 写入，
// 单个文件失败只记录，不影响后续文件
type Runner struct {
	lookup  *lookup.Store
	schemas *schema.Registry
	writer  *writer.Writer
	opts    Options
	log     *zap.SugaredLogger
}

// New 创建批处理器
func New(lk *lookup.Store, schemas *schema.Registry, opts Options, log *zap.SugaredLogger) *Runner {
	return &Runner{
		lookup:  lk,
		schemas: schemas,
		writer:  writer.New(opts.Policy),
		opts:    opts,
		log:     log,
	}
}

// RunFamily 处理一个仪器家族的全部输入文件
// 输入目录不存在或为空不算失败（零文件运行成功）
func (r *Runner) RunFamily(family string) (*model.RunReport, error) {
	s, ok := r.schemas.Get(family)
	if !ok {
		return nil, fmt.Errorf("unknown instrument family %q", family)
	}

	report := &model.RunReport{
		RunID:  uuid.NewString(),
		Family: s.Type,
	}
	start := time.Now()

	inputDir := filepath.Join(r.opts.BaseDir, s.Type, "manufacturer")
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		if os.IsNotExist(err) {
			r.log.Infow("input directory absent, nothing to do", "family", s.Type, "dir", inputDir)
			report.Duration = time.Since(start)
			return report, nil
		}
		return nil, fmt.Errorf("failed to read input directory %s: %w", inputDir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue // 跳过隐藏文件
		}
		res := r.processFile(s, inputDir, entry.Name())
		report.Record(res)
		r.logResult(res)
	}

	report.Duration = time.Since(start)
	r.log.Infow("run finished",
		"runId", report.RunID,
		"family", report.Family,
		"total", report.Total,
		"ingested", report.Ingested,
		"dupes", report.Dupes,
		"skipped", report.Skipped,
		"failed", report.Failed,
		"duration", report.Duration,
	)
	return report, nil
}

func (r *Runner) processFile(s *schema.Schema, inputDir, name string) model.FileResult {
	start := time.Now()
	res := model.FileResult{File: name, Family: s.Type}
	defer func() { res.Duration = time.Since(start) }()

	if s.FilePrefix != "" && !strings.HasPrefix(name, s.FilePrefix) {
		res.Status = model.StatusSkipped
		res.Reason = fmt.Sprintf("filename does not start with %s", s.FilePrefix)
		return res
	}

	path := filepath.Join(inputDir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		res.Status = model.StatusError
		res.Reason = err.Error()
		return res
	}

	rec := parser.RecognizeFormat(path, data)
	if rec.Format == "" || !s.AcceptsFormat(rec.Format) {
		res.Status = model.StatusSkipped
		res.Reason = fmt.Sprintf("format %q not accepted by family %s", rec.Format, s.Type)
		return res
	}

	doc, err := parser.Scan(path, rec.Format)
	if err != nil {
		res.Status = model.StatusError
		res.Reason = err.Error()
		return res
	}

	record, err := parser.Extract(doc, s)
	if err != nil {
		res.Status = model.StatusError
		res.Reason = err.Error()
		var extErr *model.ExtractionError
		if errors.As(err, &extErr) {
			res.Fields = extErr.FieldNames()
		}
		return res
	}
	res.Serial = record.Serial

	uid, err := r.lookup.Resolve(record.Serial)
	if err != nil {
		res.Status = model.StatusError
		res.Reason = err.Error()
		return res
	}
	record.AssetUID = uid
	res.AssetUID = uid

	dup, err := r.writer.Write(record, s, r.outputPath(s))
	if err != nil {
		res.Status = model.StatusError
		res.Reason = err.Error()
		return res
	}
	if dup {
		res.Status = model.StatusDuplicate
		res.Reason = fmt.Sprintf("record %s__%s already present", record.AssetUID, record.DateKey())
		return res
	}

	res.Status = model.StatusIngested
	if r.opts.Archive {
		if err := r.archive(s, inputDir, name); err != nil {
			// 导入已成功，归档失败只告警
			r.log.Warnw("failed to archive input file", "file", name, "error", err)
		}
	}
	return res
}

func (r *Runner) outputPath(s *schema.Schema) string {
	if r.opts.OutputPath != "" {
		return r.opts.OutputPath
	}
	return filepath.Join(r.opts.BaseDir, s.Type, s.Type+".csv")
}

// archive 把处理完的输入文件移入 manufacturer_ARCHIVE
func (r *Runner) archive(s *schema.Schema, inputDir, name string) error {
	archiveDir := filepath.Join(r.opts.BaseDir, s.Type, "manufacturer_ARCHIVE")
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return err
	}
	return os.Rename(filepath.Join(inputDir, name), filepath.Join(archiveDir, name))
}

func (r *Runner) logResult(res model.FileResult) {
	switch res.Status {
	case model.StatusIngested:
		r.log.Infow("file ingested", "file", res.File, "serial", res.Serial, "asset", res.AssetUID)
	case model.StatusDuplicate:
		r.log.Infow("duplicate record skipped", "file", res.File, "asset", res.AssetUID)
	case model.StatusSkipped:
		r.log.Debugw("file skipped", "file", res.File, "reason", res.Reason)
	case model.StatusError:
		r.log.Errorw("file rejected", "file", res.File, "reason", res.Reason, "fields", res.Fields)
	}
}
