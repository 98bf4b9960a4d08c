package render

import (
	"io"
	"strings"

	"github.com/blizzard-html/blizzard/pkg/html"
)

// String renders a node tree to its minified HTML form.
//
// The output contract, byte for byte:
//
//	text node        → the wrapped string, verbatim
//	leaf element     → <tag> or <tag attr="v">, never a closing tag
//	parent element   → <tag attr="v">children</tag>
//	root node        → <!label>children, no closing marker
//
// Attributes render space-separated in the order supplied; empty
// attribute and child sequences contribute nothing. A nil node renders
// as the empty string.
func String(n *html.Node) string {
	var b strings.Builder
	appendNode(&b, n)
	return b.String()
}

// All renders a sequence of nodes in order, concatenated with no
// separators.
func All(nodes []*html.Node) string {
	var b strings.Builder
	appendAll(&b, nodes)
	return b.String()
}

// WriteNode renders a node tree and writes it to w. The tree is fully
// materialized before writing.
func WriteNode(w io.Writer, n *html.Node) error {
	_, err := io.WriteString(w, String(n))
	return err
}

// WriteAll renders a node sequence and writes it to w.
func WriteAll(w io.Writer, nodes []*html.Node) error {
	_, err := io.WriteString(w, All(nodes))
	return err
}

// appendNode is the recursive fold at the heart of rendering. All output
// accumulates into a single builder; no per-node intermediate strings
// are created.
func appendNode(b *strings.Builder, n *html.Node) {
	if n == nil {
		return
	}

	switch n.Kind {
	case html.KindText:
		b.WriteString(n.Text)

	case html.KindLeaf:
		b.WriteByte('<')
		b.WriteString(n.Tag)
		html.AppendAll(b, n.Attrs)
		b.WriteByte('>')

	case html.KindParent:
		b.WriteByte('<')
		b.WriteString(n.Tag)
		html.AppendAll(b, n.Attrs)
		b.WriteByte('>')
		appendAll(b, n.Children)
		b.WriteString("</")
		b.WriteString(n.Tag)
		b.WriteByte('>')

	case html.KindRoot:
		b.WriteString("<!")
		b.WriteString(n.Label)
		b.WriteByte('>')
		appendAll(b, n.Children)
	}
}

func appendAll(b *strings.Builder, nodes []*html.Node) {
	for _, n := range nodes {
		appendNode(b, n)
	}
}
