// Package html provides a programmatic HTML document tree.
//
// Trees are built bottom-up from ordinary function calls instead of raw
// string concatenation:
//
//	page := html.Document(
//	    html.Html(
//	        html.Body(
//	            html.Button(html.Type("submit"), html.Text("Log in")),
//	        ),
//	    ),
//	)
//
// # Core Types
//
// Node is the fundamental building block with four kinds: text, leaf
// elements (void elements without a closing tag), parent elements, and
// the document root. Attr represents a single attribute, either a text
// attribute (name="value") or a boolean attribute (bare name).
//
// A text attribute with an empty value and a boolean attribute that is
// unset both render as nothing; empty means absent, not an error.
//
// # Element API
//
// One constructor exists per known HTML tag. Parent elements take
// variadic arguments (Attr, []Attr, *Node, []*Node, string, nil); leaf
// elements take only attributes. Nil arguments are skipped, which makes
// conditional construction with If/When/Range convenient.
//
// # No Validation, No Escaping
//
// Every string is accepted as a tag name, attribute name, or value, and
// text content is reproduced verbatim. The package trusts the caller to
// supply valid, pre-escaped fragments; see render.EscapeText and
// render.EscapeAttr for opt-in escaping of untrusted input.
package html
