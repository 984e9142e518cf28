// Package markup converts tab title and footer strings into displayable rich text.
//
// Two stages are involved:
//
//  1. TranslateLegacy rewrites ampersand codes ("&a", "&l", "&r") into tags
//     ("<green>", "<bold>", "<reset>"). Only the 22 recognized codes are
//     rewritten; any other '&' stays in the text.
//  2. Parser.Parse turns the tag syntax into a Text made of styled spans.
//
// # Tags
//
//   - Colors: the 16 named colors, "#rrggbb", and the "color:"/"c:" prefixed forms.
//   - Decorations: bold (b), italic (i, em), underlined (u), strikethrough (st), obfuscated (obf).
//   - Control: reset, newline (br).
//
// Unknown tags and a '<' that does not open a tag are kept as literal text.
// A closing tag with no matching opening tag fails with ErrMalformed.
//
// # Usage
//
//	p := markup.NewParser()
//	text, err := p.Parse(markup.TranslateLegacy("&aLobby"))
//	if err != nil {
//	    text = markup.Plain("&aLobby")
//	}
package markup
