package html

import (
	"reflect"
	"testing"
)

func TestTextNode(t *testing.T) {
	n := Text("hello")
	if n.Kind != KindText || n.Text != "hello" {
		t.Fatalf("Text() = %#v", n)
	}
	if len(n.Attrs) != 0 || len(n.Children) != 0 {
		t.Errorf("text node should carry no attrs or children: %#v", n)
	}
}

func TestLeafNode(t *testing.T) {
	n := Leaf("img", Src("/a.png"), Alt("a"))
	if n.Kind != KindLeaf || n.Tag != "img" {
		t.Fatalf("Leaf() = %#v", n)
	}
	if len(n.Attrs) != 2 {
		t.Fatalf("Leaf() attrs = %d, want 2", len(n.Attrs))
	}
	if len(n.Children) != 0 {
		t.Errorf("leaf node should have no children")
	}
}

func TestParentArgs(t *testing.T) {
	child := Span("nested")
	n := Parent("div",
		nil,
		ID("root"),
		[]Attr{Class("one"), Lang("en")},
		"hello",
		child,
		[]*Node{Text("more"), nil},
	)

	if n.Kind != KindParent || n.Tag != "div" {
		t.Fatalf("Parent() = %#v", n)
	}

	wantAttrs := []Attr{ID("root"), Class("one"), Lang("en")}
	if !reflect.DeepEqual(n.Attrs, wantAttrs) {
		t.Errorf("attrs = %#v, want %#v", n.Attrs, wantAttrs)
	}

	if len(n.Children) != 3 {
		t.Fatalf("children = %d, want 3", len(n.Children))
	}
	if n.Children[0].Kind != KindText || n.Children[0].Text != "hello" {
		t.Errorf("string arg should become text child: %#v", n.Children[0])
	}
	if n.Children[1] != child {
		t.Errorf("child node not preserved")
	}
	if n.Children[2].Text != "more" {
		t.Errorf("slice children not appended in order")
	}
}

func TestParentSkipsEmptyAttrs(t *testing.T) {
	n := Parent("div", Attr{}, AttrIf(false, ID("x")))
	if len(n.Attrs) != 0 {
		t.Errorf("empty attrs should be skipped, got %#v", n.Attrs)
	}
}

func TestParentAttrOrderPreserved(t *testing.T) {
	n := Parent("canvas", Height(500), Width(500))
	if n.Attrs[0].Name != "height" || n.Attrs[1].Name != "width" {
		t.Errorf("attr order not preserved: %#v", n.Attrs)
	}
}

func TestRootNode(t *testing.T) {
	n := Root("DOCTYPE html", Html(), nil)
	if n.Kind != KindRoot || n.Label != "DOCTYPE html" {
		t.Fatalf("Root() = %#v", n)
	}
	if len(n.Children) != 1 {
		t.Errorf("nil children should be skipped, got %d", len(n.Children))
	}
}

func TestDocument(t *testing.T) {
	n := Document(Html())
	if n.Kind != KindRoot || n.Label != "DOCTYPE html" {
		t.Fatalf("Document() = %#v", n)
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindText, "Text"},
		{KindLeaf, "Leaf"},
		{KindParent, "Parent"},
		{KindRoot, "Root"},
		{Kind(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
