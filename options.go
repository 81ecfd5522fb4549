package manhtml

import "io"

// ConvertOption configures conversion behavior.
type ConvertOption func(*convertConfig)

type convertConfig struct {
	permalink string
	diag      io.Writer
}

// WithPermalink sets the front matter permalink override. Only the
// FrontMatter output mode consumes it.
func WithPermalink(permalink string) ConvertOption {
	return func(cfg *convertConfig) {
		cfg.permalink = permalink
	}
}

// WithDiagnostics routes structural warnings to w instead of standard error.
func WithDiagnostics(w io.Writer) ConvertOption {
	return func(cfg *convertConfig) {
		cfg.diag = w
	}
}
