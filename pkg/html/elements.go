package html

// leafElements are elements that cannot have children and render without
// a closing tag.
var leafElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsLeafElement returns true if the tag is a void (leaf) element.
func IsLeafElement(tag string) bool {
	return leafElements[tag]
}

// Document structure elements

func Html(args ...any) *Node     { return Parent("html", args...) }
func Head(args ...any) *Node     { return Parent("head", args...) }
func Body(args ...any) *Node     { return Parent("body", args...) }
func Title(args ...any) *Node    { return Parent("title", args...) }
func Meta(attrs ...Attr) *Node   { return Leaf("meta", attrs...) }
func LinkEl(attrs ...Attr) *Node { return Leaf("link", attrs...) }
func Base(attrs ...Attr) *Node   { return Leaf("base", attrs...) }

// Content sectioning elements

func Header(args ...any) *Node  { return Parent("header", args...) }
func Footer(args ...any) *Node  { return Parent("footer", args...) }
func Main(args ...any) *Node    { return Parent("main", args...) }
func Nav(args ...any) *Node     { return Parent("nav", args...) }
func Section(args ...any) *Node { return Parent("section", args...) }
func Article(args ...any) *Node { return Parent("article", args...) }
func Aside(args ...any) *Node   { return Parent("aside", args...) }
func Address(args ...any) *Node { return Parent("address", args...) }
func H1(args ...any) *Node      { return Parent("h1", args...) }
func H2(args ...any) *Node      { return Parent("h2", args...) }
func H3(args ...any) *Node      { return Parent("h3", args...) }
func H4(args ...any) *Node      { return Parent("h4", args...) }
func H5(args ...any) *Node      { return Parent("h5", args...) }
func H6(args ...any) *Node      { return Parent("h6", args...) }
func Hgroup(args ...any) *Node  { return Parent("hgroup", args...) }

// Text content elements

func Div(args ...any) *Node        { return Parent("div", args...) }
func P(args ...any) *Node          { return Parent("p", args...) }
func Span(args ...any) *Node       { return Parent("span", args...) }
func Pre(args ...any) *Node        { return Parent("pre", args...) }
func Blockquote(args ...any) *Node { return Parent("blockquote", args...) }
func Ul(args ...any) *Node         { return Parent("ul", args...) }
func Ol(args ...any) *Node         { return Parent("ol", args...) }
func Li(args ...any) *Node         { return Parent("li", args...) }
func Dl(args ...any) *Node         { return Parent("dl", args...) }
func Dt(args ...any) *Node         { return Parent("dt", args...) }
func Dd(args ...any) *Node         { return Parent("dd", args...) }
func Hr(attrs ...Attr) *Node       { return Leaf("hr", attrs...) }
func Figure(args ...any) *Node     { return Parent("figure", args...) }
func Figcaption(args ...any) *Node { return Parent("figcaption", args...) }

// Inline text semantics

func A(args ...any) *Node      { return Parent("a", args...) }
func Strong(args ...any) *Node { return Parent("strong", args...) }
func Em(args ...any) *Node     { return Parent("em", args...) }
func B(args ...any) *Node      { return Parent("b", args...) }
func I(args ...any) *Node      { return Parent("i", args...) }
func U(args ...any) *Node      { return Parent("u", args...) }
func S(args ...any) *Node      { return Parent("s", args...) }
func Small(args ...any) *Node  { return Parent("small", args...) }
func Mark(args ...any) *Node   { return Parent("mark", args...) }
func Sub(args ...any) *Node    { return Parent("sub", args...) }
func Sup(args ...any) *Node    { return Parent("sup", args...) }
func Code(args ...any) *Node   { return Parent("code", args...) }
func Kbd(args ...any) *Node    { return Parent("kbd", args...) }
func Samp(args ...any) *Node   { return Parent("samp", args...) }
func Var(args ...any) *Node    { return Parent("var", args...) }
func Abbr(args ...any) *Node   { return Parent("abbr", args...) }
func Time_(args ...any) *Node  { return Parent("time", args...) }
func Cite(args ...any) *Node   { return Parent("cite", args...) }
func Q(args ...any) *Node      { return Parent("q", args...) }
func Dfn(args ...any) *Node    { return Parent("dfn", args...) }
func Ruby(args ...any) *Node   { return Parent("ruby", args...) }
func Rt(args ...any) *Node     { return Parent("rt", args...) }
func Rp(args ...any) *Node     { return Parent("rp", args...) }
func Bdi(args ...any) *Node    { return Parent("bdi", args...) }
func Bdo(args ...any) *Node    { return Parent("bdo", args...) }

// DataElement creates a <data> HTML element.
// Note: for data-* attributes, use Data(key, value) from attributes.go instead.
func DataElement(args ...any) *Node { return Parent("data", args...) }
func Br(attrs ...Attr) *Node        { return Leaf("br", attrs...) }
func Wbr(attrs ...Attr) *Node       { return Leaf("wbr", attrs...) }

// Form elements

func Form(args ...any) *Node     { return Parent("form", args...) }
func Input(attrs ...Attr) *Node  { return Leaf("input", attrs...) }
func Textarea(args ...any) *Node { return Parent("textarea", args...) }
func Select(args ...any) *Node   { return Parent("select", args...) }
func Option(args ...any) *Node   { return Parent("option", args...) }
func Optgroup(args ...any) *Node { return Parent("optgroup", args...) }
func Button(args ...any) *Node   { return Parent("button", args...) }
func Label(args ...any) *Node    { return Parent("label", args...) }
func Fieldset(args ...any) *Node { return Parent("fieldset", args...) }
func Legend(args ...any) *Node   { return Parent("legend", args...) }
func Datalist(args ...any) *Node { return Parent("datalist", args...) }
func Output(args ...any) *Node   { return Parent("output", args...) }
func Progress(args ...any) *Node { return Parent("progress", args...) }
func Meter(args ...any) *Node    { return Parent("meter", args...) }

// Table elements

func Table(args ...any) *Node    { return Parent("table", args...) }
func Thead(args ...any) *Node    { return Parent("thead", args...) }
func Tbody(args ...any) *Node    { return Parent("tbody", args...) }
func Tfoot(args ...any) *Node    { return Parent("tfoot", args...) }
func Tr(args ...any) *Node       { return Parent("tr", args...) }
func Th(args ...any) *Node       { return Parent("th", args...) }
func Td(args ...any) *Node       { return Parent("td", args...) }
func Caption(args ...any) *Node  { return Parent("caption", args...) }
func Colgroup(args ...any) *Node { return Parent("colgroup", args...) }
func Col(attrs ...Attr) *Node    { return Leaf("col", attrs...) }

// Media elements

func Img(attrs ...Attr) *Node    { return Leaf("img", attrs...) }
func Picture(args ...any) *Node  { return Parent("picture", args...) }
func Source(attrs ...Attr) *Node { return Leaf("source", attrs...) }
func Video(args ...any) *Node    { return Parent("video", args...) }
func Audio(args ...any) *Node    { return Parent("audio", args...) }
func Track(attrs ...Attr) *Node  { return Leaf("track", attrs...) }
func Iframe(args ...any) *Node   { return Parent("iframe", args...) }
func Embed(attrs ...Attr) *Node  { return Leaf("embed", attrs...) }
func Object(args ...any) *Node   { return Parent("object", args...) }
func Param(attrs ...Attr) *Node  { return Leaf("param", attrs...) }
func Canvas(args ...any) *Node   { return Parent("canvas", args...) }
func Svg(args ...any) *Node      { return Parent("svg", args...) }
func Math(args ...any) *Node     { return Parent("math", args...) }
func Map_(args ...any) *Node     { return Parent("map", args...) }
func Area(attrs ...Attr) *Node   { return Leaf("area", attrs...) }

// Interactive elements

func Details(args ...any) *Node { return Parent("details", args...) }
func Summary(args ...any) *Node { return Parent("summary", args...) }
func Dialog(args ...any) *Node  { return Parent("dialog", args...) }
func Menu(args ...any) *Node    { return Parent("menu", args...) }

// Scripting elements

func Script(args ...any) *Node   { return Parent("script", args...) }
func Noscript(args ...any) *Node { return Parent("noscript", args...) }
func Template(args ...any) *Node { return Parent("template", args...) }
func Slot(args ...any) *Node     { return Parent("slot", args...) }
func Style(args ...any) *Node    { return Parent("style", args...) }

// CustomElement creates a parent element with a custom tag name.
func CustomElement(tag string, args ...any) *Node {
	return Parent(tag, args...)
}
