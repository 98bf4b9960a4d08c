// Package render serializes html.Node trees into minified HTML strings.
//
// Rendering is a single synchronous pass over the tree: a pure recursive
// fold that accumulates into one growable buffer. There are no error
// conditions; every well-formed tree value renders, and the same tree
// always produces the same bytes.
//
// # Basic Usage
//
//	page := html.Document(html.Html(html.Body(html.P(html.Text("hi")))))
//	out := render.String(page)
//	// "<!DOCTYPE html><html><body><p>hi</p></body></html>"
//
// To write directly to an http.ResponseWriter or a file:
//
//	err := render.WriteNode(w, page)
//
// # Output Format
//
// Output is always minified: no indentation, line breaks, or whitespace
// beyond what the input text nodes themselves contain. Leaf (void)
// elements never emit a closing tag. Boolean attributes render as bare
// names, text attributes as name="value", each preceded by exactly one
// space.
//
// # Escaping
//
// Nothing is escaped. Text nodes and attribute values pass through
// verbatim, so input containing <, >, & or " produces structurally
// broken markup unless the caller escapes it first with EscapeText or
// EscapeAttr. This is a deliberate sharp edge: the library trusts the
// caller to supply valid fragments.
package render
