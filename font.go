package manhtml

import "strings"

type fontKind uint8

const (
	fontRoman fontKind = iota
	fontBold
	fontItalic
)

// fontState is the (current, previous) font pair. A pop-to-previous escape
// swaps exactly these two; it never inspects deeper history.
type fontState struct {
	cur  fontKind
	prev fontKind
}

func (fs *fontState) reset() {
	fs.cur, fs.prev = fontRoman, fontRoman
}

func fontOpen(f fontKind) string {
	switch f {
	case fontBold:
		return "<b>"
	case fontItalic:
		return "<i>"
	}
	return ""
}

func fontClose(f fontKind) string {
	switch f {
	case fontBold:
		return "</b>"
	case fontItalic:
		return "</i>"
	}
	return ""
}

// translateFonts rewrites inline \f escapes into HTML font elements. Each
// recognized escape closes the open element, opens the new one, and
// updates the font pair. With addClose the element is forced closed and
// the pair reset at statement end; running body text instead keeps its
// font state across lines. Unrecognized \f selectors pass through.
func (fs *fontState) translateFonts(text string, addClose bool) string {
	if !strings.Contains(text, `\f`) && (!addClose || fs.cur == fontRoman) {
		return text
	}
	var b strings.Builder
	for i := 0; i < len(text); {
		if text[i] == '\\' && i+2 < len(text) && text[i+1] == 'f' {
			next := fontRoman
			known := true
			switch text[i+2] {
			case 'B', '3':
				next = fontBold
			case 'I', '2':
				next = fontItalic
			case 'R', '1':
				next = fontRoman
			case 'P':
				next = fs.prev
			default:
				known = false
			}
			if known {
				b.WriteString(fontClose(fs.cur))
				b.WriteString(fontOpen(next))
				fs.prev, fs.cur = fs.cur, next
				i += 3
				continue
			}
		}
		b.WriteByte(text[i])
		i++
	}
	if addClose {
		b.WriteString(fontClose(fs.cur))
		fs.reset()
	}
	return b.String()
}

// fontSpan renders the arguments of a fixed-font macro (.B, .I) in one
// font, joined with spaces.
func fontSpan(f fontKind, args []string) string {
	if len(args) == 0 {
		return ""
	}
	text := expandSpecial(strings.Join(args, " "))
	return fontOpen(f) + text + fontClose(f)
}

// alternateFonts renders the arguments of a two-letter alternating-font
// macro (.BR, .BI, ...), concatenated without spaces. The font letter
// sequence cycles when there are more arguments than letters.
func alternateFonts(letters string, args []string) string {
	var b strings.Builder
	for i, arg := range args {
		f := letterFont(letters[i%len(letters)])
		b.WriteString(fontOpen(f))
		b.WriteString(expandSpecial(arg))
		b.WriteString(fontClose(f))
	}
	return b.String()
}

func letterFont(letter byte) fontKind {
	switch letter {
	case 'B':
		return fontBold
	case 'I':
		return fontItalic
	}
	return fontRoman
}
