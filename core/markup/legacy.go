package markup

import "strings"

// legacyCodes maps the character following '&' to its markup tag name.
var legacyCodes = map[byte]string{
	'0': "black",
	'1': "dark_blue",
	'2': "dark_green",
	'3': "dark_aqua",
	'4': "dark_red",
	'5': "dark_purple",
	'6': "gold",
	'7': "gray",
	'8': "dark_gray",
	'9': "blue",
	'a': "green",
	'b': "aqua",
	'c': "red",
	'd': "light_purple",
	'e': "yellow",
	'f': "white",
	'k': "obfuscated",
	'l': "bold",
	'm': "strikethrough",
	'n': "underlined",
	'o': "italic",
	'r': "reset",
}

// TranslateLegacy rewrites ampersand color and style codes (e.g. "&c", "&L")
// into markup tags. An '&' that is not followed by a recognized code is left
// as it is.
func TranslateLegacy(s string) string {
	if strings.IndexByte(s, '&') < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 16)

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '&' && i+1 < len(s) {
			if tag, ok := legacyCodes[lower(s[i+1])]; ok {
				b.WriteByte('<')
				b.WriteString(tag)
				b.WriteByte('>')
				i++
				continue
			}
		}
		b.WriteByte(c)
	}

	return b.String()
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
