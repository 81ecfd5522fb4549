package manhtml

import (
	"regexp"
	"strconv"
	"strings"
)

var markupPattern = regexp.MustCompile(`<[^>]*>`)

// anchorSet allocates unique fragment ids for headings. It is monotonic:
// a reserved key is never reused or freed within one document.
type anchorSet struct {
	used map[string]bool
}

// allocate strips embedded markup from the heading text, collapses
// whitespace runs to a single separator, and reserves the first free key,
// appending _2, _3, ... on collision.
func (a *anchorSet) allocate(raw string) string {
	if a.used == nil {
		a.used = make(map[string]bool)
	}
	key := markupPattern.ReplaceAllString(raw, "")
	key = strings.Join(strings.Fields(key), "-")
	if key == "" {
		key = "section"
	}
	candidate := key
	for n := 2; a.used[candidate]; n++ {
		candidate = key + "_" + strconv.Itoa(n)
	}
	a.used[candidate] = true
	return candidate
}
