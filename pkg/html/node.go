package html

// Kind is the node type discriminator.
type Kind uint8

const (
	KindText   Kind = iota // Plain text node
	KindLeaf               // Void element, no children, no closing tag
	KindParent             // Element with opening and closing tags
	KindRoot               // Document declaration plus top-level content
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "Text"
	case KindLeaf:
		return "Leaf"
	case KindParent:
		return "Parent"
	case KindRoot:
		return "Root"
	default:
		return "Unknown"
	}
}

// Node is a single node of an HTML document tree. Trees are built bottom-up
// with the constructors in this package and are never mutated afterwards.
type Node struct {
	Kind     Kind    // Node type
	Tag      string  // Element tag name (e.g., "div")
	Attrs    []Attr  // Attributes, rendered in the order supplied
	Children []*Node // Child nodes
	Text     string  // For KindText
	Label    string  // For KindRoot (e.g., "DOCTYPE html")
}

// Text creates a text node. The content is rendered verbatim with no
// escaping; callers holding untrusted input should escape it first.
func Text(content string) *Node {
	return &Node{
		Kind: KindText,
		Text: content,
	}
}

// Leaf creates a void element node with the given tag and attributes.
// Leaf nodes have no children and render without a closing tag.
func Leaf(tag string, attrs ...Attr) *Node {
	return &Node{
		Kind:  KindLeaf,
		Tag:   tag,
		Attrs: attrs,
	}
}

// Parent creates an element node with the given tag.
// Arguments can be: nil, Attr, []Attr, *Node, []*Node, string.
// Attribute order and child order are both preserved as supplied.
func Parent(tag string, args ...any) *Node {
	node := &Node{
		Kind: KindParent,
		Tag:  tag,
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional children)
			continue

		case Attr:
			if v.Name != "" {
				node.Attrs = append(node.Attrs, v)
			}

		case []Attr:
			for _, attr := range v {
				if attr.Name != "" {
					node.Attrs = append(node.Attrs, attr)
				}
			}

		case *Node:
			if v != nil {
				node.Children = append(node.Children, v)
			}

		case []*Node:
			for _, child := range v {
				if child != nil {
					node.Children = append(node.Children, child)
				}
			}

		case string:
			// Shorthand for text node
			node.Children = append(node.Children, Text(v))
		}
	}

	return node
}

// Root creates a root node: a declaration label wrapping top-level content.
// It renders as "<!label>" followed by the children, with no closing tag.
func Root(label string, children ...*Node) *Node {
	node := &Node{
		Kind:  KindRoot,
		Label: label,
	}
	for _, child := range children {
		if child != nil {
			node.Children = append(node.Children, child)
		}
	}
	return node
}

// Document creates the standard HTML5 document root, "<!DOCTYPE html>"
// followed by the given top-level nodes.
func Document(children ...*Node) *Node {
	return Root("DOCTYPE html", children...)
}
