package markup_test

import (
	"strings"
	"testing"

	"speedtab/core/markup"

	"github.com/stretchr/testify/assert"
)

func TestTranslateLegacy(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Empty", "", ""},
		{"NoCodes", "Welcome to the network", "Welcome to the network"},
		{"ColorAndReset", "&cHello&r", "<red>Hello<reset>"},
		{"UppercaseCode", "&CHello&R", "<red>Hello<reset>"},
		{"Green", "&aLobby", "<green>Lobby"},
		{"Styles", "&l&m&n&o&k", "<bold><strikethrough><underlined><italic><obfuscated>"},
		{"UnknownCode", "A&Zb", "A&Zb"},
		{"TrailingAmpersand", "Tom &", "Tom &"},
		{"LiteralAmpersand", "Tom & Jerry", "Tom & Jerry"},
		{"DoubleAmpersand", "&&a", "&<green>"},
		{"HexDigitsOnly", "&g&x&z", "&g&x&z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, markup.TranslateLegacy(tt.in))
		})
	}
}

func TestTranslateLegacy_AllCodes(t *testing.T) {
	codes := "0123456789abcdefklmnor"
	for _, c := range codes {
		out := markup.TranslateLegacy("&" + string(c))
		assert.True(t, strings.HasPrefix(out, "<"), "code %q", c)
		assert.True(t, strings.HasSuffix(out, ">"), "code %q", c)
		assert.NotContains(t, out, "&", "code %q", c)
	}
}

func TestTranslateLegacy_Idempotent(t *testing.T) {
	inputs := []string{
		"&6Gold &lBold",
		"plain text",
		"A&Zb & more",
	}

	for _, in := range inputs {
		once := markup.TranslateLegacy(in)
		assert.Equal(t, once, markup.TranslateLegacy(once), in)
	}
}
