package manhtml

import (
	"strings"
	"testing"
)

func TestNamedEscapeExpansion(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want string
	}{
		{`\(bu item`, "&bull; item"},
		{`\(lqquoted\(rq`, "&ldquo;quoted&rdquo;"},
		{`\(co 2026`, "&copy; 2026"},
		{`a \(<- b \(-> c`, "a &larr; b &rarr; c"},
		{`\(*a\(*b\(*G`, "&alpha;&beta;&Gamma;"},
		{`\(12 cup`, "&frac12; cup"},
		{`\(SP\(HE\(DI\(CL`, "&spades;&hearts;&diams;&clubs;"},
	}
	for _, tc := range tests {
		if got := expandSpecial(tc.in); got != tc.want {
			t.Fatalf("expandSpecial(%q)=%q want %q", tc.in, got, tc.want)
		}
	}
}

func TestBracketedEscapesUseSameTable(t *testing.T) {
	t.Parallel()
	if got := expandSpecial(`\[bu] and \(bu`); got != "&bull; and &bull;" {
		t.Fatalf("bracketed form diverged: %q", got)
	}
}

func TestUnknownEscapesPassThrough(t *testing.T) {
	t.Parallel()
	if got := expandNamed(`\(zz`); got != `\(zz` {
		t.Fatalf("unknown two-char escape altered: %q", got)
	}
	if got := expandBracketed(`\[nosuch]`); got != `\[nosuch]` {
		t.Fatalf("unknown bracketed escape altered: %q", got)
	}
}

func TestNamedExpansionIsIdempotent(t *testing.T) {
	t.Parallel()
	inputs := []string{`\(bu\(lq\(rq`, `\(<=x\(>=`, `\[12]\[34]`, `plain text`}
	for _, in := range inputs {
		once := expandBracketed(expandNamed(in))
		twice := expandBracketed(expandNamed(once))
		if once != twice {
			t.Fatalf("expansion not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestZeroWidthAndHyphenNormalization(t *testing.T) {
	t.Parallel()
	if got := expandSpecial(`\&.SH`); got != ".SH" {
		t.Fatalf("zero-width escape not stripped: %q", got)
	}
	if got := expandSpecial(`\-o`); got != "&ndash;o" {
		t.Fatalf("hyphen escape not normalized: %q", got)
	}
}

func TestAmpersandAndAngleEscaping(t *testing.T) {
	t.Parallel()
	if got := expandSpecial("a & b"); got != "a &amp; b" {
		t.Fatalf("ampersand unescaped: %q", got)
	}
	if got := expandSpecial("<file>"); got != "&lt;file&gt;" {
		t.Fatalf("angles unescaped: %q", got)
	}
}

func TestBackslashPlaceholderRestored(t *testing.T) {
	t.Parallel()
	got := expandSpecial(`a \(rs b`)
	if got != `a \ b` {
		t.Fatalf("reverse solidus not restored: %q", got)
	}
	if strings.Contains(got, backslashMark) {
		t.Fatalf("placeholder leaked: %q", got)
	}
}

func TestPredefinedStrings(t *testing.T) {
	t.Parallel()
	if got := expandSpecial(`\*(lqhi\*(rq \*(Tm`); got != "&ldquo;hi&rdquo; &trade;" {
		t.Fatalf("predefined strings not expanded: %q", got)
	}
	if got := expandSpecial(`\*(zz`); got != `\*(zz` {
		t.Fatalf("unknown string escape altered: %q", got)
	}
}

func TestLinkifyWrapsBareURLs(t *testing.T) {
	t.Parallel()
	got := linkifyURLs("see https://curl.se/docs/manual.html for more")
	want := `see <a href="https://curl.se/docs/manual.html">https://curl.se/docs/manual.html</a> for more`
	if got != want {
		t.Fatalf("linkify=%q want %q", got, want)
	}
}

func TestLinkifyExcludesTrailingPunctuation(t *testing.T) {
	t.Parallel()
	got := linkifyURLs("read https://curl.se/docs.")
	if !strings.Contains(got, `<a href="https://curl.se/docs">`) {
		t.Fatalf("link target wrong: %q", got)
	}
	if !strings.HasSuffix(got, "</a>.") {
		t.Fatalf("trailing period swallowed: %q", got)
	}
}

func TestLinkifyExceptions(t *testing.T) {
	t.Parallel()
	for _, in := range []string{
		"see http://www.example.com/ here",
		"see https://www.example.com/page here",
	} {
		if got := linkifyURLs(in); got != in {
			t.Fatalf("exception URL was linked: %q", got)
		}
	}
}
