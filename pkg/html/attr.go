package html

import "strings"

// AttrKind is the attribute variant discriminator.
type AttrKind uint8

const (
	AttrText AttrKind = iota // name="value" attribute
	AttrBool                 // bare-name boolean attribute
)

// Attr is a single HTML attribute. Boolean attributes render as a bare
// name when set and as nothing when unset; text attributes render as
// name="value" and as nothing when the value is empty.
type Attr struct {
	Kind  AttrKind
	Name  string
	Value string // For AttrText
	Set   bool   // For AttrBool
}

// TextAttr creates a text attribute. An empty value is legal and makes
// the attribute render as nothing.
func TextAttr(name, value string) Attr {
	return Attr{Kind: AttrText, Name: name, Value: value}
}

// BoolAttr creates a boolean attribute. The attribute renders as a bare
// name when set is true and as nothing otherwise.
func BoolAttr(name string, set bool) Attr {
	return Attr{Kind: AttrBool, Name: name, Set: set}
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Name == ""
}

// AppendTo writes the rendered form of the attribute into b. Every
// non-empty fragment carries its own single leading space, so attributes
// concatenate without separators.
//
// Attribute values are not escaped. A value containing a double quote
// will produce syntactically broken output; callers must pre-escape
// untrusted values (see render.EscapeAttr).
func (a Attr) AppendTo(b *strings.Builder) {
	switch a.Kind {
	case AttrBool:
		if a.Set {
			b.WriteByte(' ')
			b.WriteString(a.Name)
		}
	case AttrText:
		if a.Value != "" {
			b.WriteByte(' ')
			b.WriteString(a.Name)
			b.WriteString(`="`)
			b.WriteString(a.Value)
			b.WriteByte('"')
		}
	}
}

// Encode returns the rendered form of the attribute: either the empty
// string or a single leading-space-prefixed fragment.
func (a Attr) Encode() string {
	var b strings.Builder
	a.AppendTo(&b)
	return b.String()
}

// AppendAll writes the rendered form of every attribute into b, in
// sequence order.
func AppendAll(b *strings.Builder, attrs []Attr) {
	for _, a := range attrs {
		a.AppendTo(b)
	}
}

// EncodeAll returns the concatenation of Encode over the attributes, in
// sequence order. Encoding is order-sensitive: reordering the input
// reorders the output.
func EncodeAll(attrs []Attr) string {
	var b strings.Builder
	AppendAll(&b, attrs)
	return b.String()
}
