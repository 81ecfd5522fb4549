package manhtml

import (
	"fmt"
	"strings"
)

// Mode selects the output strategy. It is fixed for a whole run.
type Mode uint8

const (
	// ModeHTML emits a complete HTML document with header and trailer.
	ModeHTML Mode = iota
	// ModeFrontMatter emits a front matter metadata block and fragments.
	ModeFrontMatter
	// ModeRaw emits bare fragments with no surrounding document markup.
	ModeRaw
)

// ParseMode resolves an output strategy selector. An unknown selector is
// a configuration error.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "html":
		return ModeHTML, nil
	case "frontmatter", "front-matter":
		return ModeFrontMatter, nil
	case "raw":
		return ModeRaw, nil
	}
	return ModeHTML, fmt.Errorf("unknown output mode %q", name)
}

func (m Mode) String() string {
	switch m {
	case ModeHTML:
		return "html"
	case ModeFrontMatter:
		return "frontmatter"
	case ModeRaw:
		return "raw"
	}
	return "unknown"
}

// titleInfo carries the .TH arguments the output strategies render.
type titleInfo struct {
	title   string
	section string
	date    string
	pkg     string
	manual  string
}

// emitHeader writes the document preamble for the selected strategy and
// returns the trailer owed once all input is consumed.
func (c *converter) emitHeader(info titleInfo) string {
	switch c.mode {
	case ModeHTML:
		title := info.title
		if info.section != "" {
			title += "(" + info.section + ")"
		}
		c.writeLine("<!DOCTYPE html>")
		c.writeLine("<html><head>")
		c.writeLine(`<meta http-equiv="Content-Type" content="text/html; charset=UTF-8"/>`)
		c.writeLine("<title>" + title + " man page</title>")
		c.writeLine("</head><body>")
		return "</body></html>"
	case ModeFrontMatter:
		c.writeLine("---")
		if c.cfg.permalink != "" {
			c.writeLine("permalink: " + c.cfg.permalink)
		}
		c.writeLine("layout: manpage")
		c.writeLine("title: " + info.title)
		if info.section != "" {
			c.writeLine("section: " + info.section)
		}
		if info.date != "" {
			c.writeLine("date: " + info.date)
		}
		if info.pkg != "" {
			c.writeLine("package: " + info.pkg)
		}
		if info.manual != "" {
			c.writeLine("description: " + info.manual)
		}
		c.writeLine("---")
	}
	return ""
}
