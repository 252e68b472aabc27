package compose

import "strings"

// Result is the output of Render: a sequence of line groups, each of them
// holding as many rows as the font is high. Hardblanks have already been
// replaced by spaces. A Result does not share memory with its font.
type Result struct {
	groups [][]string
}

// Len returns the number of line groups.
func (r Result) Len() int {
	return len(r.groups)
}

// Group returns a copy of the rows of line group i.
func (r Result) Group(i int) []string {
	if i < 0 || i >= len(r.groups) {
		return nil
	}
	return append([]string(nil), r.groups[i]...)
}

// Groups returns a copy of all line groups.
func (r Result) Groups() [][]string {
	groups := make([][]string, len(r.groups))
	for i := range r.groups {
		groups[i] = r.Group(i)
	}
	return groups
}

// Lines returns the rows of all line groups, in order.
func (r Result) Lines() []string {
	var lines []string
	for _, g := range r.groups {
		lines = append(lines, g...)
	}
	return lines
}

// String returns all rows, each terminated by a newline.
func (r Result) String() string {
	var sb strings.Builder
	for _, row := range r.Lines() {
		sb.WriteString(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}
