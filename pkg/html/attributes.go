package html

import (
	"strconv"
	"strings"
)

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return TextAttr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return TextAttr("class", strings.Join(classes, " ")) }

// StyleAttr sets the style attribute (named to avoid conflict with the Style element).
func StyleAttr(style string) Attr { return TextAttr("style", style) }

// Data attributes

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id="123"
func Data(key, value string) Attr { return TextAttr("data-"+key, value) }

// Accessibility attributes

// Role sets the role attribute.
func Role(role string) Attr { return TextAttr("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return TextAttr("aria-label", label) }

// AriaHidden sets the aria-hidden attribute.
func AriaHidden(hidden bool) Attr { return TextAttr("aria-hidden", strconv.FormatBool(hidden)) }

// AriaExpanded sets the aria-expanded attribute.
func AriaExpanded(expanded bool) Attr { return TextAttr("aria-expanded", strconv.FormatBool(expanded)) }

// AriaDescribedBy sets the aria-describedby attribute.
func AriaDescribedBy(id string) Attr { return TextAttr("aria-describedby", id) }

// AriaLabelledBy sets the aria-labelledby attribute.
func AriaLabelledBy(id string) Attr { return TextAttr("aria-labelledby", id) }

// AriaCurrent sets the aria-current attribute.
func AriaCurrent(value string) Attr { return TextAttr("aria-current", value) }

// Keyboard attributes

// TabIndex sets the tabindex attribute.
func TabIndex(index int) Attr { return TextAttr("tabindex", strconv.Itoa(index)) }

// AccessKey sets the accesskey attribute.
func AccessKey(key string) Attr { return TextAttr("accesskey", key) }

// Visibility attributes

// Hidden sets the hidden boolean attribute.
func Hidden() Attr { return BoolAttr("hidden", true) }

// TitleAttr sets the title attribute (named to avoid conflict with the Title element).
func TitleAttr(title string) Attr { return TextAttr("title", title) }

// Language attributes

// Lang sets the lang attribute.
func Lang(lang string) Attr { return TextAttr("lang", lang) }

// Dir sets the dir attribute.
func Dir(dir string) Attr { return TextAttr("dir", dir) }

// Link attributes

// Href sets the href attribute.
func Href(url string) Attr { return TextAttr("href", url) }

// Target sets the target attribute.
func Target(target string) Attr { return TextAttr("target", target) }

// Rel sets the rel attribute.
func Rel(rel string) Attr { return TextAttr("rel", rel) }

// Download sets the download attribute. With a filename it becomes a text
// attribute, without one a bare boolean attribute.
func Download(filename ...string) Attr {
	if len(filename) > 0 {
		return TextAttr("download", filename[0])
	}
	return BoolAttr("download", true)
}

// Hreflang sets the hreflang attribute.
func Hreflang(lang string) Attr { return TextAttr("hreflang", lang) }

// Form input attributes

// Name sets the name attribute.
func Name(name string) Attr { return TextAttr("name", name) }

// Value sets the value attribute.
func Value(value string) Attr { return TextAttr("value", value) }

// Type sets the type attribute.
func Type(t string) Attr { return TextAttr("type", t) }

// Placeholder sets the placeholder attribute.
func Placeholder(text string) Attr { return TextAttr("placeholder", text) }

// Form state attributes

// Disabled sets the disabled boolean attribute.
func Disabled() Attr { return BoolAttr("disabled", true) }

// Readonly sets the readonly boolean attribute.
func Readonly() Attr { return BoolAttr("readonly", true) }

// Required sets the required boolean attribute.
func Required() Attr { return BoolAttr("required", true) }

// Checked sets the checked boolean attribute.
func Checked() Attr { return BoolAttr("checked", true) }

// Selected sets the selected boolean attribute.
func Selected() Attr { return BoolAttr("selected", true) }

// Multiple sets the multiple boolean attribute.
func Multiple() Attr { return BoolAttr("multiple", true) }

// Autofocus sets the autofocus boolean attribute.
func Autofocus() Attr { return BoolAttr("autofocus", true) }

// Autocomplete sets the autocomplete attribute.
func Autocomplete(value string) Attr { return TextAttr("autocomplete", value) }

// Form validation attributes

// Pattern sets the pattern attribute.
func Pattern(pattern string) Attr { return TextAttr("pattern", pattern) }

// MinLength sets the minlength attribute.
func MinLength(n int) Attr { return TextAttr("minlength", strconv.Itoa(n)) }

// MaxLength sets the maxlength attribute.
func MaxLength(n int) Attr { return TextAttr("maxlength", strconv.Itoa(n)) }

// Min sets the min attribute.
func Min(value string) Attr { return TextAttr("min", value) }

// Max sets the max attribute.
func Max(value string) Attr { return TextAttr("max", value) }

// Step sets the step attribute.
func Step(value string) Attr { return TextAttr("step", value) }

// Textarea attributes

// Rows sets the rows attribute.
func Rows(n int) Attr { return TextAttr("rows", strconv.Itoa(n)) }

// Cols sets the cols attribute.
func Cols(n int) Attr { return TextAttr("cols", strconv.Itoa(n)) }

// Wrap sets the wrap attribute.
func Wrap(mode string) Attr { return TextAttr("wrap", mode) }

// Form element attributes

// Action sets the action attribute.
func Action(url string) Attr { return TextAttr("action", url) }

// Method sets the method attribute.
func Method(method string) Attr { return TextAttr("method", method) }

// Enctype sets the enctype attribute.
func Enctype(enctype string) Attr { return TextAttr("enctype", enctype) }

// Novalidate sets the novalidate boolean attribute.
func Novalidate() Attr { return BoolAttr("novalidate", true) }

// For sets the for attribute (for labels).
func For(id string) Attr { return TextAttr("for", id) }

// FormAttr sets the form attribute (named to avoid conflict with the Form element).
func FormAttr(id string) Attr { return TextAttr("form", id) }

// Media attributes

// Src sets the src attribute.
func Src(url string) Attr { return TextAttr("src", url) }

// Alt sets the alt attribute.
func Alt(text string) Attr { return TextAttr("alt", text) }

// Width sets the width attribute.
func Width(w int) Attr { return TextAttr("width", strconv.Itoa(w)) }

// Height sets the height attribute.
func Height(h int) Attr { return TextAttr("height", strconv.Itoa(h)) }

// Loading sets the loading attribute.
func Loading(mode string) Attr { return TextAttr("loading", mode) }

// Srcset sets the srcset attribute.
func Srcset(srcset string) Attr { return TextAttr("srcset", srcset) }

// Video/Audio attributes

// Controls sets the controls boolean attribute.
func Controls() Attr { return BoolAttr("controls", true) }

// Autoplay sets the autoplay boolean attribute.
func Autoplay() Attr { return BoolAttr("autoplay", true) }

// Loop sets the loop boolean attribute.
func Loop() Attr { return BoolAttr("loop", true) }

// Muted sets the muted boolean attribute.
func Muted() Attr { return BoolAttr("muted", true) }

// Preload sets the preload attribute.
func Preload(mode string) Attr { return TextAttr("preload", mode) }

// Poster sets the poster attribute.
func Poster(url string) Attr { return TextAttr("poster", url) }

// Table attributes

// Colspan sets the colspan attribute.
func Colspan(n int) Attr { return TextAttr("colspan", strconv.Itoa(n)) }

// Rowspan sets the rowspan attribute.
func Rowspan(n int) Attr { return TextAttr("rowspan", strconv.Itoa(n)) }

// Scope sets the scope attribute.
func Scope(scope string) Attr { return TextAttr("scope", scope) }

// Meta/Link attributes

// Charset sets the charset attribute.
func Charset(charset string) Attr { return TextAttr("charset", charset) }

// Content sets the content attribute.
func Content(content string) Attr { return TextAttr("content", content) }

// HttpEquiv sets the http-equiv attribute.
func HttpEquiv(value string) Attr { return TextAttr("http-equiv", value) }

// Conditional attributes

// ClassIf adds a class conditionally.
func ClassIf(condition bool, class string) Attr {
	if condition {
		return TextAttr("class", class)
	}
	return Attr{} // Empty attr, will be ignored
}

// AttrIf adds any attribute conditionally.
func AttrIf(condition bool, a Attr) Attr {
	if condition {
		return a
	}
	return Attr{}
}

// Classes merges multiple class values.
// Accepts string, []string, and map[string]bool.
func Classes(classes ...any) Attr {
	var result []string
	for _, c := range classes {
		switch v := c.(type) {
		case string:
			if v != "" {
				result = append(result, v)
			}
		case []string:
			for _, s := range v {
				if s != "" {
					result = append(result, s)
				}
			}
		case map[string]bool:
			for class, include := range v {
				if include && class != "" {
					result = append(result, class)
				}
			}
		}
	}
	return TextAttr("class", strings.Join(result, " "))
}

// Open sets the open boolean attribute (for details, dialog).
func Open() Attr { return BoolAttr("open", true) }

// Defer_ sets the defer attribute for script elements.
func Defer_() Attr { return BoolAttr("defer", true) }

// Async sets the async attribute for script elements.
func Async() Attr { return BoolAttr("async", true) }

// Crossorigin sets the crossorigin attribute.
func Crossorigin(value string) Attr { return TextAttr("crossorigin", value) }

// Integrity sets the integrity attribute for subresource integrity.
func Integrity(value string) Attr { return TextAttr("integrity", value) }

// List sets the list attribute (for input with datalist).
func List(id string) Attr { return TextAttr("list", id) }
