package parser

import (
	"errors"
	"sort"
	"testing"

	"calparse/internal/model"
	"calparse/internal/schema"
)

func testSchema() *schema.Schema {
	return &schema.Schema{
		Type:        "CTDTEST",
		Formats:     []schema.Format{schema.FormatKV},
		DateLayouts: []string{"02-Jan-06"},
		Fields: []schema.Field{
			{Name: "temperature_offset", Keys: []string{"TOFFSET"}, Kind: schema.KindFloat, Required: true},
			{Name: "pressure_slope", Keys: []string{"PSLOPE"}, Kind: schema.KindFloat, Required: true},
			{Name: "sample_count", Keys: []string{"NSAMPLES"}, Kind: schema.KindInt},
			{Name: "firmware", Keys: []string{"FIRMWARE"}, Kind: schema.KindString},
			{Name: "fixed_angle", Value: "140", Kind: schema.KindInt},
		},
	}
}

func testDoc(path string) *Document {
	doc := NewDocument(path, schema.FormatKV)
	doc.Serial = "CTD-1234"
	doc.AddDate("20-Apr-15")
	return doc
}

func TestExtract_AllFields(t *testing.T) {
	t.Parallel()

	doc := testDoc("ctd-1234.cal")
	doc.Add("TOFFSET", "0.0021")
	doc.Add("PSLOPE", "1.5e-02")
	doc.Add("NSAMPLES", "1,200")
	doc.Add("FIRMWARE", "v3.1")

	record, err := Extract(doc, testSchema())
	if err != nil {
		t.Fatalf("extract: %v", err)
	}

	if record.Serial != "CTD-1234" {
		t.Fatalf("serial = %q", record.Serial)
	}
	if record.DateKey() != "20150420" {
		t.Fatalf("date key = %q", record.DateKey())
	}
	if got := record.Values["temperature_offset"]; got != "0.0021" {
		t.Fatalf("temperature_offset = %q, want 0.0021", got)
	}
	if got := record.Values["pressure_slope"]; got != "0.015" {
		t.Fatalf("pressure_slope = %q, want 0.015", got)
	}
	if got := record.Values["sample_count"]; got != "1200" {
		t.Fatalf("sample_count = %q, want 1200", got)
	}
	if got := record.Values["firmware"]; got != "v3.1" {
		t.Fatalf("firmware = %q", got)
	}
	if got := record.Values["fixed_angle"]; got != "140" {
		t.Fatalf("fixed_angle = %q", got)
	}
}

func TestExtract_CollectsAllErrors(t *testing.T) {
	t.Parallel()

	// pressure_slope 缺失、temperature_offset 非数值，应一次性报告两个错误
	doc := testDoc("ctd-1234.cal")
	doc.Add("TOFFSET", "not-a-number")

	_, err := Extract(doc, testSchema())
	if err == nil {
		t.Fatalf("expected extraction error")
	}

	var extErr *model.ExtractionError
	if !errors.As(err, &extErr) {
		t.Fatalf("error type %T", err)
	}

	fields := extErr.FieldNames()
	sort.Strings(fields)
	if len(fields) != 2 || fields[0] != "pressure_slope" || fields[1] != "temperature_offset" {
		t.Fatalf("error fields = %v", fields)
	}
	for _, fe := range extErr.Fields {
		if fe.Field == "pressure_slope" && fe.Reason != "missing" {
			t.Fatalf("pressure_slope reason = %q", fe.Reason)
		}
	}
}

func TestExtract_AmbiguousValue(t *testing.T) {
	t.Parallel()

	doc := testDoc("ctd-1234.cal")
	doc.Add("TOFFSET", "0.0021")
	doc.Add("TOFFSET", "0.0034")
	doc.Add("PSLOPE", "0.5")

	_, err := Extract(doc, testSchema())
	var extErr *model.ExtractionError
	if !errors.As(err, &extErr) {
		t.Fatalf("expected extraction error, got %v", err)
	}
	if len(extErr.Fields) != 1 || extErr.Fields[0].Reason != "ambiguous" {
		t.Fatalf("errors = %v", extErr.Fields)
	}

	// 同值重复出现不算歧义
	doc2 := testDoc("ctd-1234.cal")
	doc2.Add("TOFFSET", "0.0021")
	doc2.Add("TOFFSET", "0.0021")
	doc2.Add("PSLOPE", "0.5")
	if _, err := Extract(doc2, testSchema()); err != nil {
		t.Fatalf("repeated identical value rejected: %v", err)
	}
}

func TestExtract_MissingSerialAndDate(t *testing.T) {
	t.Parallel()

	doc := NewDocument("anon.cal", schema.FormatKV)
	doc.Add("TOFFSET", "0.0021")
	doc.Add("PSLOPE", "0.5")

	_, err := Extract(doc, testSchema())
	var extErr *model.ExtractionError
	if !errors.As(err, &extErr) {
		t.Fatalf("expected extraction error, got %v", err)
	}

	fields := extErr.FieldNames()
	sort.Strings(fields)
	if len(fields) != 2 || fields[0] != "calibration_date" || fields[1] != "serial" {
		t.Fatalf("error fields = %v", fields)
	}
}

func TestExtract_SerialRules(t *testing.T) {
	t.Parallel()

	s := testSchema()
	s.SerialPrefix = "16-"
	doc := testDoc("x.cal")
	doc.Serial = "4444"
	doc.Add("TOFFSET", "1")
	doc.Add("PSLOPE", "2")

	record, err := Extract(doc, s)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if record.Serial != "16-4444" {
		t.Fatalf("serial = %q, want 16-4444", record.Serial)
	}

	s2 := testSchema()
	s2.SerialTail = true
	doc2 := testDoc("x.cal")
	doc2.Serial = "BBFL2W-993"
	doc2.Add("TOFFSET", "1")
	doc2.Add("PSLOPE", "2")

	record2, err := Extract(doc2, s2)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if record2.Serial != "993" {
		t.Fatalf("serial = %q, want 993", record2.Serial)
	}

	s3 := testSchema()
	s3.SerialFromFilename = true
	doc3 := testDoc("acs012.dev")
	doc3.Serial = ""
	doc3.Add("TOFFSET", "1")
	doc3.Add("PSLOPE", "2")

	record3, err := Extract(doc3, s3)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if record3.Serial != "ACS-012" {
		t.Fatalf("serial = %q, want ACS-012", record3.Serial)
	}
}

func TestExtract_RejectKeys(t *testing.T) {
	t.Parallel()

	s := testSchema()
	s.RejectKeys = []string{"NTU"}
	doc := testDoc("ntu.cal")
	doc.Add("NTU", "0.006", "50")
	doc.Add("TOFFSET", "1")
	doc.Add("PSLOPE", "2")

	_, err := Extract(doc, s)
	var extErr *model.ExtractionError
	if !errors.As(err, &extErr) {
		t.Fatalf("expected rejection, got %v", err)
	}
	if extErr.Fields[0].Field != "file" {
		t.Fatalf("errors = %v", extErr.Fields)
	}
}

func TestExtract_ArraysAndMatrices(t *testing.T) {
	t.Parallel()

	s := &schema.Schema{
		Type:        "OPTTEST",
		Formats:     []schema.Format{schema.FormatACS},
		DateLayouts: []string{"01/02/2006"},
		Fields: []schema.Field{
			{Name: "CC_tbins", Keys: []string{"tbins"}, Kind: schema.KindFloatArray, Required: true},
			{Name: "CC_tcarray", Keys: []string{"tcarray"}, Kind: schema.KindMatrix, Required: true},
		},
	}

	doc := NewDocument("acs.dev", schema.FormatACS)
	doc.Serial = "ACS-012"
	doc.AddDate("07/27/2016")
	doc.Arrays["tbins"] = []float64{10.5, 20.5}
	doc.Matrices["tcarray"] = [][]float64{{0.001, 0.002}}

	record, err := Extract(doc, s)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if got := record.Values["CC_tbins"]; got != "[10.5,20.5]" {
		t.Fatalf("CC_tbins = %q", got)
	}
	if got := record.Values["CC_tcarray"]; got != "SheetRef:CC_tcarray" {
		t.Fatalf("CC_tcarray cell = %q", got)
	}
	if got := record.Matrices["CC_tcarray"]; len(got) != 1 || got[0][1] != 0.002 {
		t.Fatalf("CC_tcarray matrix = %v", got)
	}
}
