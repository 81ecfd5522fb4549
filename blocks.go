package manhtml

import "strings"

// blockMode is the structural context at one margin level.
type blockMode uint8

const (
	blockPlain blockMode = iota
	blockBullet
	blockDefinition
)

// closing returns the markup owed when leaving a mode.
func (m blockMode) closing() string {
	switch m {
	case blockBullet:
		return "</li></ul>"
	case blockDefinition:
		return "</dd></dl>"
	}
	return ""
}

// blockStack holds one block mode per margin level. It is never empty;
// the base entry is always plain-paragraph.
type blockStack struct {
	modes []blockMode
}

func newBlockStack() blockStack {
	return blockStack{modes: []blockMode{blockPlain}}
}

func (s *blockStack) top() blockMode {
	return s.modes[len(s.modes)-1]
}

func (s *blockStack) setTop(m blockMode) {
	s.modes[len(s.modes)-1] = m
}

// push enters a margin level with a fresh plain-paragraph entry.
func (s *blockStack) push() {
	s.modes = append(s.modes, blockPlain)
}

// pop leaves a margin level and returns the closing markup owed by the
// departing entry. Popping past the base entry reports false and resets
// the stack to a single base entry.
func (s *blockStack) pop() (string, bool) {
	closing := s.top().closing()
	if len(s.modes) <= 1 {
		s.modes = s.modes[:1]
		s.modes[0] = blockPlain
		return closing, false
	}
	s.modes = s.modes[:len(s.modes)-1]
	return closing, true
}

// closeTop emits the closing owed by the current mode and resets it to
// plain-paragraph without changing the margin depth.
func (s *blockStack) closeTop() string {
	closing := s.top().closing()
	s.setTop(blockPlain)
	return closing
}

// unwind force-closes every open level at end of input.
func (s *blockStack) unwind() string {
	var b strings.Builder
	for {
		b.WriteString(s.top().closing())
		if len(s.modes) == 1 {
			s.modes[0] = blockPlain
			return b.String()
		}
		s.modes = s.modes[:len(s.modes)-1]
	}
}
