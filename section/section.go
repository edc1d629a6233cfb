// Package section implements the append-only text buffers a VTK legacy
// document is assembled from.
//
// A document consists of a fixed sequence of sections (header, points, cell
// topology, point attributes, cell attributes). Each section accumulates
// lines independently; Assemble concatenates the populated ones in caller
// order. Sections only ever grow, so a failed builder call that checks its
// preconditions before writing leaves the section bit-for-bit unchanged.
package section

import (
	"fmt"
	"strings"
)

// Buffer is an append-only accumulator for one document section.
// The zero value is an empty, unpopulated section ready for use.
type Buffer struct {
	sb    strings.Builder
	lines int
}

// Populated reports whether anything has been written to the section.
func (b *Buffer) Populated() bool {
	return b.sb.Len() > 0
}

// Lines returns the number of lines written so far, including the blank
// terminator lines.
func (b *Buffer) Lines() int {
	return b.lines
}

// Len returns the section size in bytes.
func (b *Buffer) Len() int {
	return b.sb.Len()
}

// WriteLine appends s followed by a newline.
func (b *Buffer) WriteLine(s string) {
	b.sb.WriteString(s)
	b.sb.WriteByte('\n')
	b.lines++
}

// WriteLinef appends a formatted line.
func (b *Buffer) WriteLinef(format string, args ...any) {
	fmt.Fprintf(&b.sb, format, args...)
	b.sb.WriteByte('\n')
	b.lines++
}

// Terminate appends the blank line that closes a block.
func (b *Buffer) Terminate() {
	b.WriteLine("")
}

// String renders the accumulated section text.
func (b *Buffer) String() string {
	return b.sb.String()
}

// Assemble concatenates the given sections in order. Unpopulated sections
// contribute nothing; Assemble never inserts separators of its own.
func Assemble(buffers ...*Buffer) string {
	var sb strings.Builder
	total := 0
	for _, b := range buffers {
		total += b.Len()
	}
	sb.Grow(total)
	for _, b := range buffers {
		sb.WriteString(b.String())
	}
	return sb.String()
}
