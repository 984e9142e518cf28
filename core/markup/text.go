package markup

import (
	"encoding/json"
	"strings"
)

// Style holds the formatting applied to a span of text.
type Style struct {
	Color         string
	Bold          bool
	Italic        bool
	Underlined    bool
	Strikethrough bool
	Obfuscated    bool
}

// Span is a run of text sharing one style.
type Span struct {
	Text  string
	Style Style
}

// Text is a displayable rich-text value, ready to be sent to a client.
type Text struct {
	Spans []Span
}

// Plain returns an unformatted Text holding s verbatim.
func Plain(s string) Text {
	if s == "" {
		return Text{}
	}
	return Text{Spans: []Span{{Text: s}}}
}

// String returns the text content without any formatting.
func (t Text) String() string {
	var b strings.Builder
	for _, sp := range t.Spans {
		b.WriteString(sp.Text)
	}
	return b.String()
}

// IsEmpty reports whether the text has no content.
func (t Text) IsEmpty() bool {
	for _, sp := range t.Spans {
		if sp.Text != "" {
			return false
		}
	}
	return true
}

// component is the chat component wire shape used by Minecraft clients.
type component struct {
	Text          string      `json:"text"`
	Color         string      `json:"color,omitempty"`
	Bold          bool        `json:"bold,omitempty"`
	Italic        bool        `json:"italic,omitempty"`
	Underlined    bool        `json:"underlined,omitempty"`
	Strikethrough bool        `json:"strikethrough,omitempty"`
	Obfuscated    bool        `json:"obfuscated,omitempty"`
	Extra         []component `json:"extra,omitempty"`
}

// MarshalJSON encodes the text as a chat component with one child per span.
func (t Text) MarshalJSON() ([]byte, error) {
	root := component{}
	for _, sp := range t.Spans {
		root.Extra = append(root.Extra, component{
			Text:          sp.Text,
			Color:         sp.Style.Color,
			Bold:          sp.Style.Bold,
			Italic:        sp.Style.Italic,
			Underlined:    sp.Style.Underlined,
			Strikethrough: sp.Style.Strikethrough,
			Obfuscated:    sp.Style.Obfuscated,
		})
	}
	return json.Marshal(root)
}
