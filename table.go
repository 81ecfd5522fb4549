package manhtml

import (
	"fmt"
	"strconv"
	"strings"
)

// tableSpec is the parsed format phase of a .TS block.
type tableSpec struct {
	centered bool
	sep      string
	formats  [][]string
}

// table consumes a .TS sub-block from the input stack and emits a grid.
// The format phase reads lines until one ends in a semicolon (table-wide
// options) or a period (final format line); the body phase reads data
// rows until .TE, folding T{ ... T} multi-line cells into one logical row.
func (c *converter) table() error {
	spec := tableSpec{sep: "\t"}
	for {
		line, ok := c.in.next()
		if !ok {
			return fmt.Errorf("convert: unterminated table (missing format line ending in period)")
		}
		trimmed := strings.TrimSpace(line)
		if strings.HasSuffix(trimmed, ";") {
			spec.options(strings.TrimSuffix(trimmed, ";"))
			continue
		}
		last := strings.HasSuffix(trimmed, ".")
		spec.formats = append(spec.formats, splitFormats(strings.TrimSuffix(trimmed, ".")))
		if last {
			break
		}
	}
	// With f format lines (f > 1), the first f-1 body rows render as
	// header cells. Row position alone decides; content never does.
	headerRows := 0
	if len(spec.formats) > 1 {
		headerRows = len(spec.formats) - 1
	}
	if spec.centered {
		c.writeLine(`<table align="center">`)
	} else {
		c.writeLine("<table>")
	}
	row := 0
	for {
		line, ok := c.in.next()
		if !ok {
			return fmt.Errorf("convert: unterminated table (missing .TE)")
		}
		if strings.HasPrefix(line, ".") {
			args := splitArgs(line[1:])
			if len(args) > 0 && args[0] == "TE" {
				break
			}
			if len(args) > 0 {
				c.warnf("unsupported request .%s inside table", args[0])
			}
			continue
		}
		if line == "_" || line == "=" {
			continue
		}
		full, err := c.collectRow(line)
		if err != nil {
			return err
		}
		if strings.TrimSpace(full) == "" {
			continue
		}
		c.emitRow(&spec, row, full, row < headerRows)
		row++
	}
	c.writeLine("</table>")
	return nil
}

func (spec *tableSpec) options(line string) {
	for _, opt := range strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	}) {
		switch {
		case opt == "center":
			spec.centered = true
		case strings.HasPrefix(opt, "tab(") && strings.HasSuffix(opt, ")"):
			if sep := opt[4 : len(opt)-1]; sep != "" {
				spec.sep = sep
			}
		}
	}
}

// splitFormats splits one format line into per-column codes. Vertical
// rule and double rule tokens decorate the grid and consume no column.
func splitFormats(line string) []string {
	var codes []string
	for _, f := range strings.Fields(line) {
		if f == "|" || f == "=" {
			continue
		}
		codes = append(codes, f)
	}
	return codes
}

// collectRow folds an open T{ multi-line cell into one logical row,
// concatenating continuation lines until the matching T} is found.
func (c *converter) collectRow(line string) (string, error) {
	for strings.Count(line, "T{") > strings.Count(line, "T}") {
		next, ok := c.in.next()
		if !ok {
			return "", fmt.Errorf("convert: unterminated table cell (missing T})")
		}
		line += " " + next
	}
	line = strings.ReplaceAll(line, "T{", "")
	line = strings.ReplaceAll(line, "T}", "")
	return line, nil
}

// emitRow splits a logical row on the cell separator and renders each
// cell with its positional format code, reusing the last code for excess
// columns.
func (c *converter) emitRow(spec *tableSpec, row int, line string, header bool) {
	codes := spec.formats[0]
	if row < len(spec.formats) {
		codes = spec.formats[row]
	} else if len(spec.formats) > 0 {
		codes = spec.formats[len(spec.formats)-1]
	}
	var b strings.Builder
	b.WriteString("<tr>")
	col := 0
	for _, cell := range strings.Split(line, spec.sep) {
		code := "l"
		if len(codes) > 0 {
			if col < len(codes) {
				code = codes[col]
			} else {
				code = codes[len(codes)-1]
			}
		}
		col++
		span := 1
		for col < len(codes) && (codes[col] == "s" || codes[col] == "S") {
			span++
			col++
		}
		b.WriteString(c.tableCell(code, span, strings.TrimSpace(cell), header))
	}
	b.WriteString("</tr>")
	c.writeLine(b.String())
}

func (c *converter) tableCell(code string, span int, cell string, header bool) string {
	align := ""
	bold, italic := false, false
	for _, r := range code {
		switch r {
		case 'r', 'R', 'n', 'N':
			align = "right"
		case 'c', 'C':
			align = "center"
		case 'b', 'B':
			bold = true
		case 'i', 'I':
			italic = true
		}
	}
	text := c.fonts.translateFonts(expandSpecial(cell), true)
	if italic {
		text = "<i>" + text + "</i>"
	}
	if bold {
		text = "<b>" + text + "</b>"
	}
	tag := "td"
	if header {
		tag = "th"
	}
	attr := ""
	if align != "" {
		attr = ` align="` + align + `"`
	}
	if span > 1 {
		attr += ` colspan="` + strconv.Itoa(span) + `"`
	}
	return "<" + tag + attr + ">" + text + "</" + tag + ">"
}
