package parser

import (
	"testing"
)

func TestCleanNumber(t *testing.T) {
	t.Parallel()

	cases := []struct{ in, want string }{
		{" 1,200 ", "1200"},
		{"3.5%", "3.5"},
		{"-1.25e-03", "-1.25e-03"},
		{"0.0021", "0.0021"},
	}
	for _, c := range cases {
		if got := CleanNumber(c.in); got != c.want {
			t.Fatalf("CleanNumber(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatFloatRoundTrip(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"1.5e-02", "0.0021", "-4.749e-08", "217", "1.0121"} {
		v, err := ParseFloat(in)
		if err != nil {
			t.Fatalf("ParseFloat(%q): %v", in, err)
		}
		out := FormatFloat(v)
		v2, err := ParseFloat(out)
		if err != nil {
			t.Fatalf("re-parse %q: %v", out, err)
		}
		if v != v2 {
			t.Fatalf("round trip %q -> %q lost precision", in, out)
		}
	}
}

func TestParseInt_Bad(t *testing.T) {
	t.Parallel()

	if _, err := ParseInt("1.5"); err == nil {
		t.Fatalf("expected error for non-integer")
	}
	if _, err := ParseFloat("abc"); err == nil {
		t.Fatalf("expected error for non-number")
	}
}

func TestNormalizeLabel(t *testing.T) {
	t.Parallel()

	cases := []struct{ in, want string }{
		{`"Lambda"`, "LAMBDA"},
		{" ta0 ", "TA0"},
		{"'Scale factor'", "SCALE FACTOR"},
	}
	for _, c := range cases {
		if got := NormalizeLabel(c.in); got != c.want {
			t.Fatalf("NormalizeLabel(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseDate_PicksLatest(t *testing.T) {
	t.Parallel()

	layouts := []string{"02-Jan-06", "01/02/2006"}
	got, err := ParseDate([]string{"20-Apr-15", "07/27/2016.", "bogus"}, layouts)
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if got.Format("20060102") != "20160727" {
		t.Fatalf("date = %s, want 20160727", got.Format("20060102"))
	}
}

func TestParseDate_Errors(t *testing.T) {
	t.Parallel()

	layouts := []string{"02-Jan-06"}
	if _, err := ParseDate(nil, layouts); err == nil {
		t.Fatalf("expected error for empty candidates")
	}
	if _, err := ParseDate([]string{"2016-99-99"}, layouts); err == nil {
		t.Fatalf("expected error for unparsable date")
	}
}
