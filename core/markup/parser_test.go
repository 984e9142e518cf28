package markup_test

import (
	"encoding/json"
	"testing"

	"speedtab/core/markup"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse(t *testing.T) {
	p := markup.NewParser()

	t.Run("PlainText", func(t *testing.T) {
		text, err := p.Parse("Welcome")
		require.NoError(t, err)
		assert.Equal(t, []markup.Span{{Text: "Welcome"}}, text.Spans)
	})

	t.Run("Empty", func(t *testing.T) {
		text, err := p.Parse("")
		require.NoError(t, err)
		assert.True(t, text.IsEmpty())
	})

	t.Run("ColorAndReset", func(t *testing.T) {
		text, err := p.Parse("<red>Hello<reset> world")
		require.NoError(t, err)
		require.Len(t, text.Spans, 2)
		assert.Equal(t, markup.Span{Text: "Hello", Style: markup.Style{Color: "red"}}, text.Spans[0])
		assert.Equal(t, markup.Span{Text: " world"}, text.Spans[1])
	})

	t.Run("NestedDecorations", func(t *testing.T) {
		text, err := p.Parse("<gold>A <b>B</b> C</gold>")
		require.NoError(t, err)
		require.Len(t, text.Spans, 3)
		assert.Equal(t, markup.Style{Color: "gold"}, text.Spans[0].Style)
		assert.Equal(t, markup.Style{Color: "gold", Bold: true}, text.Spans[1].Style)
		assert.Equal(t, markup.Style{Color: "gold"}, text.Spans[2].Style)
		assert.Equal(t, "A B C", text.String())
	})

	t.Run("HexColor", func(t *testing.T) {
		text, err := p.Parse("<#FF8800>Orange")
		require.NoError(t, err)
		assert.Equal(t, "#ff8800", text.Spans[0].Style.Color)
	})

	t.Run("Newline", func(t *testing.T) {
		text, err := p.Parse("line1<newline>line2")
		require.NoError(t, err)
		assert.Equal(t, "line1\nline2", text.String())
	})

	t.Run("UnknownTagIsLiteral", func(t *testing.T) {
		text, err := p.Parse("I <3 you> all")
		require.NoError(t, err)
		assert.Equal(t, "I <3 you> all", text.String())
	})

	t.Run("EscapedBracket", func(t *testing.T) {
		text, err := p.Parse(`\<red> stays`)
		require.NoError(t, err)
		assert.Equal(t, "<red> stays", text.String())
	})

	t.Run("UnclosedTagIsTolerated", func(t *testing.T) {
		text, err := p.Parse("<green>Lobby")
		require.NoError(t, err)
		assert.Equal(t, "green", text.Spans[0].Style.Color)
	})
}

func TestParser_LiteralBrackets(t *testing.T) {
	p := markup.NewParser()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"LoneBracket", "a < b", "a < b"},
		{"NoSpace", "5<6", "5<6"},
		{"Unterminated", "Hello <red", "Hello <red"},
		{"EmptyTag", "Hello <> there", "Hello <> there"},
		{"BracketBeforeTag", "I <3 <bold>you", "I <3 you"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := p.Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, text.String())
		})
	}

	t.Run("TranslatedCodesKeepStyle", func(t *testing.T) {
		text, err := p.Parse(markup.TranslateLegacy("&cI <3 you"))
		require.NoError(t, err)
		require.Len(t, text.Spans, 1)
		assert.Equal(t, markup.Span{Text: "I <3 you", Style: markup.Style{Color: "red"}}, text.Spans[0])
	})
}

func TestParser_Malformed(t *testing.T) {
	p := markup.NewParser()

	inputs := map[string]string{
		"StrayClosingTag":   "Hello</bold>",
		"MismatchedClosing": "<red>Hello</bold>",
		"ClosedTwice":       "<b>Hi</b></b>",
	}

	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			_, err := p.Parse(in)
			assert.ErrorIs(t, err, markup.ErrMalformed)
		})
	}
}

func TestText_MarshalJSON(t *testing.T) {
	text, err := markup.NewParser().Parse(markup.TranslateLegacy("&aLobby &lNow"))
	require.NoError(t, err)

	raw, err := json.Marshal(text)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "", decoded["text"])

	extra, ok := decoded["extra"].([]any)
	require.True(t, ok)
	require.Len(t, extra, 2)

	first := extra[0].(map[string]any)
	assert.Equal(t, "Lobby ", first["text"])
	assert.Equal(t, "green", first["color"])
	assert.Nil(t, first["bold"])

	second := extra[1].(map[string]any)
	assert.Equal(t, true, second["bold"])
}

func TestPlain(t *testing.T) {
	assert.Equal(t, "&cRaw", markup.Plain("&cRaw").String())
	assert.True(t, markup.Plain("").IsEmpty())
}
