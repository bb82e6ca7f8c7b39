package exporter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeOutput(t *testing.T, dir string) string {
	t.Helper()

	csvPath := filepath.Join(dir, "OPTAA.csv")
	content := "asset_uid,serial,calibration_date,CC_tcal,CC_tcarray\n" +
		"CGINS-OPTAAD-00012,ACS-012,20160727,19.1,SheetRef:CC_tcarray\n"
	require.NoError(t, os.WriteFile(csvPath, []byte(content), 0o644))

	ext := "0.001,0.002\n0.003,0.004\n"
	extPath := filepath.Join(dir, "CGINS-OPTAAD-00012__20160727__CC_tcarray.ext")
	require.NoError(t, os.WriteFile(extPath, []byte(ext), 0o644))

	return csvPath
}

func TestExport(t *testing.T) {
	t.Parallel()

	csvPath := writeOutput(t, t.TempDir())

	f, err := New().Export(csvPath)
	require.NoError(t, err)
	defer f.Close()

	require.Contains(t, f.GetSheetList(), "OPTAA")
	require.Contains(t, f.GetSheetList(), "CC_tcarray 1")

	got, err := f.GetCellValue("OPTAA", "A1")
	require.NoError(t, err)
	assert.Equal(t, "asset_uid", got)

	got, err = f.GetCellValue("OPTAA", "D2")
	require.NoError(t, err)
	assert.Equal(t, "19.1", got)

	got, err = f.GetCellValue("CC_tcarray 1", "B2")
	require.NoError(t, err)
	assert.Equal(t, "0.004", got)
}

func TestExportToFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	csvPath := writeOutput(t, dir)
	outPath := filepath.Join(dir, "OPTAA.xlsx")

	require.NoError(t, New().ExportToFile(csvPath, outPath))

	f, err := excelize.OpenFile(outPath)
	require.NoError(t, err)
	defer f.Close()
	assert.Contains(t, f.GetSheetList(), "OPTAA")

	// 不遗留临时文件
	_, err = os.Stat(outPath + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestExport_MissingSidecar(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	csvPath := filepath.Join(dir, "OPTAA.csv")
	content := "asset_uid,serial,calibration_date,CC_tcarray\n" +
		"CGINS-OPTAAD-00012,ACS-012,20160727,SheetRef:CC_tcarray\n"
	require.NoError(t, os.WriteFile(csvPath, []byte(content), 0o644))

	_, err := New().Export(csvPath)
	assert.Error(t, err)
}

func TestExport_MissingOutput(t *testing.T) {
	t.Parallel()

	_, err := New().Export(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}
