package textpb

import (
	"fmt"
	"strings"
)

// Message is a parsed text-format message: an ordered list of fields.
type Message struct {
	Fields []Field
}

// Field is a single field occurrence. Scalar fields carry their raw value
// with surrounding quotes removed; block fields carry a nested Message.
type Field struct {
	Name  string
	Value string
	Msg   *Message
}

// Parse reads a text-format document into a Message tree. Comments
// starting with '#' run to end of line. A colon before a nested block is
// accepted, matching what the protobuf text parser allows.
func Parse(data []byte) (*Message, error) {
	p := &parser{src: string(data), line: 1}
	return p.message(false)
}

// Messages returns the nested messages of every block field named name.
func (m *Message) Messages(name string) []*Message {
	var out []*Message
	for _, f := range m.Fields {
		if f.Name == name && f.Msg != nil {
			out = append(out, f.Msg)
		}
	}
	return out
}

// Scalar returns the value of the first scalar field named name.
func (m *Message) Scalar(name string) (string, bool) {
	for _, f := range m.Fields {
		if f.Name == name && f.Msg == nil {
			return f.Value, true
		}
	}
	return "", false
}

// Scalars returns the values of every scalar field named name.
func (m *Message) Scalars(name string) []string {
	var out []string
	for _, f := range m.Fields {
		if f.Name == name && f.Msg == nil {
			out = append(out, f.Value)
		}
	}
	return out
}

// Has reports whether any field named name is present.
func (m *Message) Has(name string) bool {
	for _, f := range m.Fields {
		if f.Name == name {
			return true
		}
	}
	return false
}

type parser struct {
	src  string
	pos  int
	line int
}

func (p *parser) message(nested bool) (*Message, error) {
	msg := &Message{}
	for {
		p.skipSpace()
		if p.pos >= len(p.src) {
			if nested {
				return nil, fmt.Errorf("line %d: unexpected end of input, missing '}'", p.line)
			}
			return msg, nil
		}
		if p.src[p.pos] == '}' {
			if !nested {
				return nil, fmt.Errorf("line %d: unexpected '}'", p.line)
			}
			p.pos++
			return msg, nil
		}

		name, err := p.ident()
		if err != nil {
			return nil, err
		}
		p.skipSpace()

		colon := false
		if p.pos < len(p.src) && p.src[p.pos] == ':' {
			colon = true
			p.pos++
			p.skipSpace()
		}

		if p.pos < len(p.src) && p.src[p.pos] == '{' {
			p.pos++
			sub, err := p.message(true)
			if err != nil {
				return nil, err
			}
			msg.Fields = append(msg.Fields, Field{Name: name, Msg: sub})
			continue
		}

		if !colon {
			return nil, fmt.Errorf("line %d: expected ':' or '{' after field %q", p.line, name)
		}
		val, err := p.scalar()
		if err != nil {
			return nil, err
		}
		msg.Fields = append(msg.Fields, Field{Name: name, Value: val})
	}
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\r':
			p.pos++
		case '\n':
			p.line++
			p.pos++
		case '#':
			for p.pos < len(p.src) && p.src[p.pos] != '\n' {
				p.pos++
			}
		default:
			return
		}
	}
}

func (p *parser) ident() (string, error) {
	start := p.pos
	for p.pos < len(p.src) && isIdent(p.src[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return "", fmt.Errorf("line %d: expected field name, got %q", p.line, p.src[p.pos])
	}
	return p.src[start:p.pos], nil
}

func (p *parser) scalar() (string, error) {
	if p.pos >= len(p.src) {
		return "", fmt.Errorf("line %d: expected value, got end of input", p.line)
	}
	if c := p.src[p.pos]; c == '"' || c == '\'' {
		return p.quoted()
	}
	start := p.pos
	for p.pos < len(p.src) && !strings.ContainsRune(" \t\r\n{}#", rune(p.src[p.pos])) {
		p.pos++
	}
	if p.pos == start {
		return "", fmt.Errorf("line %d: expected value after ':'", p.line)
	}
	return p.src[start:p.pos], nil
}

func (p *parser) quoted() (string, error) {
	quote := p.src[p.pos]
	p.pos++
	var sb strings.Builder
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch c {
		case quote:
			p.pos++
			return sb.String(), nil
		case '\n':
			return "", fmt.Errorf("line %d: unterminated string", p.line)
		case '\\':
			p.pos++
			if p.pos >= len(p.src) {
				return "", fmt.Errorf("line %d: dangling escape", p.line)
			}
			switch esc := p.src[p.pos]; esc {
			case 'n':
				sb.WriteByte('\n')
			case 'r':
				sb.WriteByte('\r')
			case 't':
				sb.WriteByte('\t')
			case '\\', '"', '\'':
				sb.WriteByte(esc)
			default:
				return "", fmt.Errorf("line %d: unsupported escape \\%c", p.line, esc)
			}
			p.pos++
		default:
			sb.WriteByte(c)
			p.pos++
		}
	}
	return "", fmt.Errorf("line %d: unterminated string", p.line)
}

func isIdent(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
