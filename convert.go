package manhtml

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ConvertRequest configures Convert.
type ConvertRequest struct {
	// Input names the source; "-" or empty means standard input. When
	// Reader is set, Input only labels diagnostics.
	Input   string
	Reader  io.Reader
	Writer  io.Writer
	Mode    Mode
	Options []ConvertOption
}

// Convert runs one whole document conversion.
func Convert(req ConvertRequest) error {
	if req.Writer == nil {
		return fmt.Errorf("convert: writer is nil")
	}
	if req.Mode > ModeRaw {
		return fmt.Errorf("convert: unknown output mode %d", req.Mode)
	}
	cfg := convertConfig{diag: os.Stderr}
	for _, opt := range req.Options {
		if opt != nil {
			opt(&cfg)
		}
	}
	c := &converter{
		out:    bufio.NewWriter(req.Writer),
		mode:   req.Mode,
		cfg:    cfg,
		blocks: newBlockStack(),
	}
	defer c.in.closeAll()
	if req.Reader != nil {
		c.in.pushReader(req.Input, req.Reader)
	} else {
		input := req.Input
		if input == "" {
			input = "-"
		}
		if err := c.in.push(input); err != nil {
			return fmt.Errorf("convert: %v", err)
		}
	}
	if err := c.run(); err != nil {
		return err
	}
	if err := c.out.Flush(); err != nil {
		return fmt.Errorf("convert: write output: %v", err)
	}
	return nil
}

// converter owns all interpreter state for one run. Nothing is shared
// between runs or goroutines.
type converter struct {
	in      inputStack
	out     *bufio.Writer
	mode    Mode
	cfg     convertConfig
	fonts   fontState
	blocks  blockStack
	anchors anchorSet
	trailer string
}

func (c *converter) run() error {
	for {
		line, ok := c.in.next()
		if !ok {
			break
		}
		if err := ValidateInput([]byte(line)); err != nil {
			name, n := c.in.where()
			return fmt.Errorf("convert: %s:%d: %w", name, n, err)
		}
		if err := c.processLine(line); err != nil {
			return err
		}
	}
	c.writeLine(c.blocks.unwind())
	c.writeLine(c.trailer)
	return nil
}

func (c *converter) processLine(line string) error {
	if strings.HasPrefix(line, ".") {
		return c.processRequest(line[1:])
	}
	if strings.TrimSpace(line) == "" {
		c.paragraphBreak()
		return nil
	}
	c.writeLine(c.expandLine(line))
	return nil
}

func (c *converter) processRequest(rest string) error {
	if strings.HasPrefix(rest, `\"`) {
		return nil
	}
	args := splitArgs(rest)
	if len(args) == 0 {
		return nil
	}
	cmd := args[0]
	args = args[1:]
	switch cmd {
	case "TH":
		c.title(args)
	case "SH":
		c.heading(1, args)
	case "SS":
		c.heading(2, args)
	case "B":
		c.writeLine(fontSpan(fontBold, args))
	case "I":
		c.writeLine(fontSpan(fontItalic, args))
	case "BI", "BR", "IB", "IR", "RB", "RI":
		c.writeLine(alternateFonts(cmd, args))
	case "P", "PP", "LP", "sp":
		c.paragraphBreak()
	case "IP":
		c.item(args)
	case "TP":
		c.term()
	case "RS":
		c.blocks.push()
	case "RE":
		c.exitMargin()
	case "br":
		c.writeLine("<br>")
	case "nf":
		c.writeLine("<pre>")
	case "fi":
		c.writeLine("</pre>")
	case "so":
		return c.include(args)
	case "TS":
		return c.table()
	case "TE":
		c.warnf("unmatched .TE")
	default:
		c.warnf("unknown request .%s", cmd)
	}
	return nil
}

// expandLine runs the literal-text pipeline: special characters, then
// font escapes without forced closing, then URL detection.
func (c *converter) expandLine(line string) string {
	text := expandSpecial(line)
	text = c.fonts.translateFonts(text, false)
	return linkifyURLs(text)
}

// inlineSpan expands a consumed lookahead line (.TP term, .IP body). The
// line may itself be a font-change macro; anything else is expanded text.
func (c *converter) inlineSpan(line string) string {
	if strings.HasPrefix(line, ".") {
		args := splitArgs(line[1:])
		if len(args) > 0 {
			switch args[0] {
			case "B":
				return fontSpan(fontBold, args[1:])
			case "I":
				return fontSpan(fontItalic, args[1:])
			case "BI", "BR", "IB", "IR", "RB", "RI":
				return alternateFonts(args[0], args[1:])
			}
		}
	}
	return c.fonts.translateFonts(expandSpecial(line), false)
}

func (c *converter) title(args []string) {
	var info titleInfo
	if len(args) > 0 {
		info.title = args[0]
	}
	if len(args) > 1 {
		info.section = args[1]
	}
	if len(args) > 2 {
		info.date = args[2]
	}
	if len(args) > 3 {
		info.pkg = args[3]
	}
	if len(args) > 4 {
		info.manual = args[4]
	}
	c.trailer = c.emitHeader(info)
}

func (c *converter) heading(level int, args []string) {
	c.writeLine(c.blocks.closeTop())
	text := c.fonts.translateFonts(expandSpecial(strings.Join(args, " ")), true)
	id := c.anchors.allocate(text)
	tag := "h1"
	if level > 1 {
		tag = "h2"
	}
	c.writeLine("<" + tag + ` id="` + id + `"><a href="#` + id + `">` + text + "</a></" + tag + ">")
}

func (c *converter) paragraphBreak() {
	c.writeLine(c.blocks.closeTop())
	c.writeLine("<p>")
}

// bulletMarkers are the .IP arguments recognized as bullet glyphs.
func isBulletMarker(arg string) bool {
	switch arg {
	case `\(bu`, `\[bu]`, "*", "-", "o":
		return true
	}
	return false
}

// item handles .IP. With a bullet glyph it consumes one further raw line
// as the item body; without one it is a paragraph marker that does not
// close the enclosing block.
func (c *converter) item(args []string) {
	marker := ""
	if len(args) > 0 {
		marker = args[0]
	}
	if !isBulletMarker(marker) {
		c.writeLine("<p>")
		return
	}
	if c.blocks.top() != blockBullet {
		c.writeLine(c.blocks.closeTop())
		c.writeLine("<ul>")
		c.blocks.setTop(blockBullet)
	} else {
		c.writeLine("</li>")
	}
	body, _ := c.in.next()
	c.writeLine("<li>" + c.inlineSpan(body))
}

// term handles .TP, consuming one further raw line as the definition term.
func (c *converter) term() {
	if c.blocks.top() != blockDefinition {
		c.writeLine(c.blocks.closeTop())
		c.writeLine("<dl>")
		c.blocks.setTop(blockDefinition)
	} else {
		c.writeLine("</dd>")
	}
	termLine, _ := c.in.next()
	c.writeLine("<dt>" + c.inlineSpan(termLine) + "</dt>")
	c.writeLine("<dd>")
}

func (c *converter) exitMargin() {
	closing, ok := c.blocks.pop()
	c.writeLine(closing)
	if !ok {
		c.warnf("unmatched .RE")
	}
}

func (c *converter) include(args []string) error {
	if len(args) == 0 {
		c.warnf(".so without a source name")
		return nil
	}
	if err := c.in.push(args[0]); err != nil {
		return fmt.Errorf("convert: %v", err)
	}
	return nil
}

func (c *converter) writeLine(s string) {
	if s == "" {
		return
	}
	_, _ = c.out.WriteString(s)
	_ = c.out.WriteByte('\n')
}

func (c *converter) warnf(format string, args ...any) {
	if c.cfg.diag == nil {
		return
	}
	name, line := c.in.where()
	fmt.Fprintf(c.cfg.diag, "%s:%d: %s\n", name, line, fmt.Sprintf(format, args...))
}
