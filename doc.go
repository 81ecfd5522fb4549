// Package manhtml converts man page (roff) markup to HTML.
//
// The converter is a single-pass line interpreter: it reads macro requests
// and literal text from a named source (following nested .so inclusion),
// tracks font and block state across lines, and emits HTML fragments as it
// goes. No document tree is built. Output strategies select the surrounding
// document markup: a complete HTML document, a front matter block for static
// site generators, or bare fragments.
//
// Core properties:
//   - Single pass, line-oriented; includes are flattened via a frame stack
//   - Fixed request set; unknown requests warn and are skipped
//   - Ordered special-character rewrite passes (the order is a correctness
//     invariant, not an optimization)
//
// Example:
//
//	err := manhtml.Convert(manhtml.ConvertRequest{
//		Input:  "curl.1",
//		Writer: os.Stdout,
//		Mode:   manhtml.ModeHTML,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Conversion can be customized using ConvertOptions such as the front
// matter permalink override.
package manhtml
