// Package textpb renders and parses the protobuf text format used for the
// pipeline's .pbtxt artifacts. It covers the subset of the syntax those
// artifacts need: scalar fields (strings, numbers, enum identifiers) and
// nested message blocks. No generated message types are involved; parsing
// yields a generic field tree.
package textpb

import (
	"math"
	"strconv"
	"strings"
)

// Encoder builds a text-format document with two-space indentation and one
// field per line, the layout the protobuf text printer emits. The zero
// value is ready to use.
type Encoder struct {
	sb    strings.Builder
	depth int
}

// Begin opens a nested message block: "name {".
func (e *Encoder) Begin(name string) {
	e.line(name + " {")
	e.depth++
}

// End closes the innermost open block.
func (e *Encoder) End() {
	if e.depth > 0 {
		e.depth--
	}
	e.line("}")
}

// Str emits a quoted string field.
func (e *Encoder) Str(name, value string) {
	e.line(name + `: "` + escape(value) + `"`)
}

// Int emits an integer field.
func (e *Encoder) Int(name string, value int) {
	e.line(name + ": " + strconv.Itoa(value))
}

// Float emits a floating point field. NaN and infinities use the lowercase
// spellings the text format accepts.
func (e *Encoder) Float(name string, value float64) {
	e.line(name + ": " + formatFloat(value))
}

// Enum emits a bare identifier field, used for enum values.
func (e *Encoder) Enum(name, value string) {
	e.line(name + ": " + value)
}

// String returns the document rendered so far.
func (e *Encoder) String() string {
	return e.sb.String()
}

// Bytes returns the document rendered so far.
func (e *Encoder) Bytes() []byte {
	return []byte(e.sb.String())
}

func (e *Encoder) line(s string) {
	for i := 0; i < e.depth; i++ {
		e.sb.WriteString("  ")
	}
	e.sb.WriteString(s)
	e.sb.WriteByte('\n')
}

func formatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func escape(s string) string {
	if !strings.ContainsAny(s, "\\\"\n\r\t") {
		return s
	}
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
