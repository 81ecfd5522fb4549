package manhtml

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// inputFrame is one open source in the include stack.
type inputFrame struct {
	name   string
	file   *os.File // nil when reading a caller-supplied stream
	reader *bufio.Reader
	line   int
}

// inputStack resolves nested .so inclusion. The top frame is the active
// source; popping a frame at end-of-source resumes the frame below at its
// own line counter.
type inputStack struct {
	frames []inputFrame
}

func (in *inputStack) pushReader(name string, r io.Reader) {
	if name == "" {
		name = "<stdin>"
	}
	in.frames = append(in.frames, inputFrame{name: name, reader: bufio.NewReader(r)})
}

func (in *inputStack) push(name string) error {
	if name == "-" {
		in.pushReader("<stdin>", os.Stdin)
		return nil
	}
	resolved := in.resolve(name)
	f, err := os.Open(resolved)
	if err != nil {
		return fmt.Errorf("open input %s: %v", resolved, err)
	}
	in.frames = append(in.frames, inputFrame{name: resolved, file: f, reader: bufio.NewReader(f)})
	return nil
}

// resolve interprets a relative include against the directory of the
// innermost enclosing frame that has one, so includes nest portably.
func (in *inputStack) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	for i := len(in.frames) - 1; i >= 0; i-- {
		dir := filepath.Dir(in.frames[i].name)
		if dir != "" && dir != "." {
			return filepath.Join(dir, name)
		}
	}
	return name
}

// next returns the next raw line without its line ending. On end-of-frame
// the frame is closed, popped, and reading resumes from the new top. The
// second result is false only when the stack is empty.
func (in *inputStack) next() (string, bool) {
	for len(in.frames) > 0 {
		top := &in.frames[len(in.frames)-1]
		line, err := top.reader.ReadString('\n')
		if line != "" {
			top.line++
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			return line, true
		}
		if err != nil {
			in.pop()
		}
	}
	return "", false
}

func (in *inputStack) pop() {
	top := in.frames[len(in.frames)-1]
	if top.file != nil {
		_ = top.file.Close()
	}
	in.frames = in.frames[:len(in.frames)-1]
}

// closeAll unwinds the stack, closing every open source in reverse order
// of opening.
func (in *inputStack) closeAll() {
	for len(in.frames) > 0 {
		in.pop()
	}
}

// where reports the active source name and line counter for diagnostics.
func (in *inputStack) where() (string, int) {
	if len(in.frames) == 0 {
		return "<eof>", 0
	}
	top := in.frames[len(in.frames)-1]
	return top.name, top.line
}
