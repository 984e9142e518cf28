package markup

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformed is returned when markup cannot be parsed.
var ErrMalformed = errors.New("malformed markup")

var namedColors = map[string]struct{}{
	"black": {}, "dark_blue": {}, "dark_green": {}, "dark_aqua": {},
	"dark_red": {}, "dark_purple": {}, "gold": {}, "gray": {},
	"dark_gray": {}, "blue": {}, "green": {}, "aqua": {},
	"red": {}, "light_purple": {}, "yellow": {}, "white": {},
}

// decorations maps every accepted decoration tag to its canonical name.
var decorations = map[string]string{
	"bold":          "bold",
	"b":             "bold",
	"italic":        "italic",
	"i":             "italic",
	"em":            "italic",
	"underlined":    "underlined",
	"u":             "underlined",
	"strikethrough": "strikethrough",
	"st":            "strikethrough",
	"obfuscated":    "obfuscated",
	"obf":           "obfuscated",
}

// Parser turns tag markup ("<red>Hi <bold>there</bold>") into Text.
//
// Unknown tags and a '<' that does not open a tag are kept as literal text.
// Closing tags without a matching opening tag fail with ErrMalformed.
type Parser struct{}

// NewParser creates a markup parser.
func NewParser() *Parser {
	return &Parser{}
}

type openTag struct {
	name string
	prev Style
}

type parseState struct {
	spans []Span
	buf   strings.Builder
	style Style
	stack []openTag
}

// Parse parses s into a displayable Text.
func (p *Parser) Parse(s string) (Text, error) {
	st := &parseState{}

	for i := 0; i < len(s); {
		c := s[i]

		if c == '\\' && i+1 < len(s) && (s[i+1] == '<' || s[i+1] == '\\') {
			st.buf.WriteByte(s[i+1])
			i += 2
			continue
		}

		if c != '<' {
			st.buf.WriteByte(c)
			i++
			continue
		}

		end := strings.IndexByte(s[i+1:], '>')
		raw := ""
		if end >= 0 {
			raw = s[i+1 : i+1+end]
		}
		// Not a tag: "a < b", "<>" or "<3 <red>".
		if end < 0 || raw == "" || strings.IndexByte(raw, '<') >= 0 {
			st.buf.WriteByte('<')
			i++
			continue
		}

		known, err := st.applyTag(raw)
		if err != nil {
			return Text{}, fmt.Errorf("%w at offset %d", err, i)
		}
		if !known {
			st.buf.WriteByte('<')
			st.buf.WriteString(raw)
			st.buf.WriteByte('>')
		}
		i += end + 2
	}

	st.flush()
	return Text{Spans: st.spans}, nil
}

// applyTag updates the current style for raw. It reports false for tags it
// does not recognize.
func (st *parseState) applyTag(raw string) (bool, error) {
	name := strings.ToLower(strings.TrimSpace(raw))

	if strings.HasPrefix(name, "/") {
		canonical, ok := canonicalTag(name[1:])
		if !ok {
			return false, nil
		}
		return true, st.close(canonical)
	}

	switch name {
	case "reset":
		st.flush()
		st.stack = st.stack[:0]
		st.style = Style{}
		return true, nil
	case "newline", "br":
		st.buf.WriteByte('\n')
		return true, nil
	}

	canonical, ok := canonicalTag(name)
	if !ok {
		return false, nil
	}

	st.flush()
	st.stack = append(st.stack, openTag{name: canonical, prev: st.style})

	switch canonical {
	case "bold":
		st.style.Bold = true
	case "italic":
		st.style.Italic = true
	case "underlined":
		st.style.Underlined = true
	case "strikethrough":
		st.style.Strikethrough = true
	case "obfuscated":
		st.style.Obfuscated = true
	default:
		st.style.Color = strings.TrimPrefix(canonical, "color:")
	}
	return true, nil
}

func (st *parseState) close(canonical string) error {
	for j := len(st.stack) - 1; j >= 0; j-- {
		if st.stack[j].name != canonical {
			continue
		}
		st.flush()
		st.style = st.stack[j].prev
		st.stack = st.stack[:j]
		return nil
	}
	return fmt.Errorf("%w: closing tag </%s> without opening tag", ErrMalformed, canonical)
}

func (st *parseState) flush() {
	if st.buf.Len() == 0 {
		return
	}
	text := st.buf.String()
	st.buf.Reset()

	if n := len(st.spans); n > 0 && st.spans[n-1].Style == st.style {
		st.spans[n-1].Text += text
		return
	}
	st.spans = append(st.spans, Span{Text: text, Style: st.style})
}

// canonicalTag normalizes decoration aliases and color forms. Colors are
// returned as "color:<value>" so that "</red>" and "</color:red>" match.
func canonicalTag(name string) (string, bool) {
	if d, ok := decorations[name]; ok {
		return d, true
	}
	name = strings.TrimPrefix(name, "color:")
	name = strings.TrimPrefix(name, "c:")
	if _, ok := namedColors[name]; ok {
		return "color:" + name, true
	}
	if isHexColor(name) {
		return "color:" + name, true
	}
	return "", false
}

func isHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f') {
			return false
		}
	}
	return true
}
