package render

import "strings"

// EscapeText escapes a string for safe inclusion in HTML text content.
//
// The renderer itself never escapes anything: text nodes and attribute
// values are reproduced verbatim. Callers holding untrusted input should
// pass it through EscapeText before wrapping it in html.Text.
func EscapeText(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#39;")
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}

// EscapeAttr escapes a string for safe inclusion in an HTML attribute
// value. In addition to the standard entities it escapes whitespace
// characters that could break attribute parsing.
//
// Like EscapeText this is opt-in; an unescaped double quote in an
// attribute value produces syntactically broken output.
func EscapeAttr(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#39;")
		case '\n':
			buf.WriteString("&#10;")
		case '\r':
			buf.WriteString("&#13;")
		case '\t':
			buf.WriteString("&#9;")
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}
