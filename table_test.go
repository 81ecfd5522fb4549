package manhtml

import (
	"bytes"
	"strings"
	"testing"
)

func TestTableBasicGrid(t *testing.T) {
	t.Parallel()
	src := ".TS\nl l.\na\tb\nc\td\n.TE\n"
	out := convertString(t, src, ModeRaw)
	for _, want := range []string{
		"<table>",
		"<tr><td>a</td><td>b</td></tr>",
		"<tr><td>c</td><td>d</td></tr>",
		"</table>",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output: %q", want, out)
		}
	}
	if strings.Contains(out, "<th") {
		t.Fatalf("single format line produced header cells: %q", out)
	}
}

func TestTableHeaderRowHeuristic(t *testing.T) {
	t.Parallel()
	src := ".TS\ntab(|);\nlb lb\nl l.\nName|Value\nfoo|bar\nbaz|qux\n.TE\n"
	out := convertString(t, src, ModeRaw)
	if !strings.Contains(out, "<tr><th><b>Name</b></th><th><b>Value</b></th></tr>") {
		t.Fatalf("missing header row: %q", out)
	}
	if !strings.Contains(out, "<tr><td>foo</td><td>bar</td></tr>") {
		t.Fatalf("missing first body row: %q", out)
	}
	if got := strings.Count(out, "<th"); got != 2 {
		t.Fatalf("expected 2 header cells, got %d: %q", got, out)
	}
}

func TestTableExcessColumnsReuseLastFormat(t *testing.T) {
	t.Parallel()
	src := ".TS\nl r.\na\tb\tc\n.TE\n"
	out := convertString(t, src, ModeRaw)
	want := `<tr><td>a</td><td align="right">b</td><td align="right">c</td></tr>`
	if !strings.Contains(out, want) {
		t.Fatalf("missing %q in output: %q", want, out)
	}
}

func TestTableAlignmentAndFonts(t *testing.T) {
	t.Parallel()
	src := ".TS\nc n i.\nmid\t42\tnote\n.TE\n"
	out := convertString(t, src, ModeRaw)
	want := `<tr><td align="center">mid</td><td align="right">42</td><td><i>note</i></td></tr>`
	if !strings.Contains(out, want) {
		t.Fatalf("missing %q in output: %q", want, out)
	}
}

func TestTableColumnSpan(t *testing.T) {
	t.Parallel()
	src := ".TS\nc s\nl l.\nwide\na\tb\n.TE\n"
	out := convertString(t, src, ModeRaw)
	if !strings.Contains(out, `<th align="center" colspan="2">wide</th>`) {
		t.Fatalf("missing spanned cell: %q", out)
	}
}

func TestTableMultiLineCell(t *testing.T) {
	t.Parallel()
	src := ".TS\nl l.\nT{\nlong cell\ntext\nT}\tsecond\n.TE\n"
	out := convertString(t, src, ModeRaw)
	if !strings.Contains(out, "<td>long cell text</td><td>second</td>") {
		t.Fatalf("missing folded cell: %q", out)
	}
}

func TestTableCenterOption(t *testing.T) {
	t.Parallel()
	src := ".TS\ncenter;\nl.\nonly\n.TE\n"
	out := convertString(t, src, ModeRaw)
	if !strings.Contains(out, `<table align="center">`) {
		t.Fatalf("missing centered table: %q", out)
	}
}

func TestTableRuleLinesAreSkipped(t *testing.T) {
	t.Parallel()
	src := ".TS\nl l.\na\tb\n_\nc\td\n.TE\n"
	out := convertString(t, src, ModeRaw)
	if got := strings.Count(out, "<tr>"); got != 2 {
		t.Fatalf("expected 2 rows, got %d: %q", got, out)
	}
}

func TestUnterminatedTableIsFatal(t *testing.T) {
	t.Parallel()
	err := Convert(ConvertRequest{
		Input:  "test.1",
		Reader: strings.NewReader(".TS\nl l.\na\tb\n"),
		Writer: &bytes.Buffer{},
		Mode:   ModeRaw,
	})
	if err == nil || !strings.Contains(err.Error(), "missing .TE") {
		t.Fatalf("expected missing .TE error, got %v", err)
	}
}

func TestUnterminatedMultiLineCellIsFatal(t *testing.T) {
	t.Parallel()
	err := Convert(ConvertRequest{
		Input:  "test.1",
		Reader: strings.NewReader(".TS\nl.\nT{\nnever closed\n"),
		Writer: &bytes.Buffer{},
		Mode:   ModeRaw,
	})
	if err == nil || !strings.Contains(err.Error(), "missing T}") {
		t.Fatalf("expected unterminated cell error, got %v", err)
	}
}
