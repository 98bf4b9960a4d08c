package html

import "testing"

func TestIsLeafElement(t *testing.T) {
	if !IsLeafElement("br") {
		t.Fatalf("IsLeafElement(\"br\") expected true")
	}
	if IsLeafElement("div") {
		t.Fatalf("IsLeafElement(\"div\") expected false")
	}
}

func TestParentConstructors(t *testing.T) {
	tests := []struct {
		tag  string
		node *Node
	}{
		{"div", Div()},
		{"p", P()},
		{"button", Button()},
		{"aside", Aside()},
		{"h4", H4()},
		{"canvas", Canvas()},
		{"table", Table()},
		{"time", Time_()},
		{"map", Map_()},
		{"data", DataElement()},
		{"html", Html()},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			if tt.node.Kind != KindParent {
				t.Errorf("kind = %v, want Parent", tt.node.Kind)
			}
			if tt.node.Tag != tt.tag {
				t.Errorf("tag = %q, want %q", tt.node.Tag, tt.tag)
			}
		})
	}
}

func TestLeafConstructors(t *testing.T) {
	tests := []struct {
		tag  string
		node *Node
	}{
		{"area", Area()},
		{"br", Br()},
		{"img", Img()},
		{"input", Input()},
		{"meta", Meta()},
		{"link", LinkEl()},
		{"hr", Hr()},
		{"col", Col()},
		{"source", Source()},
		{"track", Track()},
		{"embed", Embed()},
		{"param", Param()},
		{"base", Base()},
		{"wbr", Wbr()},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			if tt.node.Kind != KindLeaf {
				t.Errorf("kind = %v, want Leaf", tt.node.Kind)
			}
			if tt.node.Tag != tt.tag {
				t.Errorf("tag = %q, want %q", tt.node.Tag, tt.tag)
			}
			if !IsLeafElement(tt.tag) {
				t.Errorf("IsLeafElement(%q) = false, want true", tt.tag)
			}
		})
	}
}

func TestCustomElement(t *testing.T) {
	n := CustomElement("x-widget", ID("w"), "hi")
	if n.Kind != KindParent || n.Tag != "x-widget" {
		t.Fatalf("CustomElement() = %#v", n)
	}
	if len(n.Attrs) != 1 || len(n.Children) != 1 {
		t.Errorf("CustomElement() args not applied: %#v", n)
	}
}
