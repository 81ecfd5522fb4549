package manhtml

import "strings"

// protectedSpace stands in for a backslash-escaped space while a request
// line is split, so the space does not act as an argument separator.
const protectedSpace = ""

// splitArgs splits a request line (without its leading dot) into the
// command name and its arguments. A double quote begins a word that runs
// to the matching close quote; a backslash-space escape protects an
// embedded space and is restored after the split.
func splitArgs(line string) []string {
	line = strings.ReplaceAll(line, `\ `, protectedSpace)
	var args []string
	i := 0
	for i < len(line) {
		for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
			i++
		}
		if i >= len(line) {
			break
		}
		if line[i] == '"' {
			j := i + 1
			for j < len(line) && line[j] != '"' {
				j++
			}
			args = append(args, restoreSpaces(line[i+1:j]))
			if j < len(line) {
				j++
			}
			i = j
			continue
		}
		j := i
		for j < len(line) && line[j] != ' ' && line[j] != '\t' {
			j++
		}
		args = append(args, restoreSpaces(line[i:j]))
		i = j
	}
	return args
}

func restoreSpaces(s string) string {
	return strings.ReplaceAll(s, protectedSpace, " ")
}
