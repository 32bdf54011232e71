package vdom

import "strconv"

// Typed attribute constructors. These produce the plain Attr values that
// builder.Element.AddAttribute and friends accept.

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return Attribute("id", id) }

// TitleAttr sets the title attribute.
func TitleAttr(title string) Attr { return Attribute("title", title) }

// Data attributes

// Data creates a data-* attribute.
// Example: Data("id", "123") produces data-id="123".
func Data(key, value string) Attr { return Attribute("data-"+key, value) }

// Accessibility attributes

// Role sets the role attribute.
func Role(role string) Attr { return Attribute("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return Attribute("aria-label", label) }

// AriaHidden sets the aria-hidden attribute.
func AriaHidden(hidden bool) Attr { return Attribute("aria-hidden", strconv.FormatBool(hidden)) }

// AriaExpanded sets the aria-expanded attribute.
func AriaExpanded(expanded bool) Attr { return Attribute("aria-expanded", strconv.FormatBool(expanded)) }

// AriaDescribedBy sets the aria-describedby attribute.
func AriaDescribedBy(id string) Attr { return Attribute("aria-describedby", id) }

// AriaLabelledBy sets the aria-labelledby attribute.
func AriaLabelledBy(id string) Attr { return Attribute("aria-labelledby", id) }

// AriaLive sets the aria-live attribute.
func AriaLive(mode string) Attr { return Attribute("aria-live", mode) }

// AriaControls sets the aria-controls attribute.
func AriaControls(id string) Attr { return Attribute("aria-controls", id) }

// Keyboard attributes

// TabIndex sets the tabindex attribute.
func TabIndex(index int) Attr { return Attribute("tabindex", strconv.Itoa(index)) }

// AccessKey sets the accesskey attribute.
func AccessKey(key string) Attr { return Attribute("accesskey", key) }

// Visibility attributes

// Hidden sets the hidden attribute.
func Hidden() Attr { return BoolAttribute("hidden", true) }

// Language attributes

// Lang sets the lang attribute.
func Lang(lang string) Attr { return Attribute("lang", lang) }

// Dir sets the dir attribute.
func Dir(dir string) Attr { return Attribute("dir", dir) }

// Link attributes

// Href sets the href attribute.
func Href(url string) Attr { return Attribute("href", url) }

// Target sets the target attribute.
func Target(target string) Attr { return Attribute("target", target) }

// Rel sets the rel attribute.
func Rel(rel string) Attr { return Attribute("rel", rel) }

// Form input attributes

// Name sets the name attribute.
func Name(name string) Attr { return Attribute("name", name) }

// Value sets the value attribute.
func Value(value string) Attr { return Attribute("value", value) }

// Type sets the type attribute.
func Type(t string) Attr { return Attribute("type", t) }

// Placeholder sets the placeholder attribute.
func Placeholder(text string) Attr { return Attribute("placeholder", text) }

// For sets the for attribute (for labels).
func For(id string) Attr { return Attribute("for", id) }

// Form state attributes

// Disabled sets the disabled attribute.
func Disabled() Attr { return BoolAttribute("disabled", true) }

// Readonly sets the readonly attribute.
func Readonly() Attr { return BoolAttribute("readonly", true) }

// Required sets the required attribute.
func Required() Attr { return BoolAttribute("required", true) }

// Checked sets the checked attribute.
func Checked() Attr { return BoolAttribute("checked", true) }

// Selected sets the selected attribute.
func Selected() Attr { return BoolAttribute("selected", true) }

// Multiple sets the multiple attribute.
func Multiple() Attr { return BoolAttribute("multiple", true) }

// Autofocus sets the autofocus attribute.
func Autofocus() Attr { return BoolAttribute("autofocus", true) }

// Autocomplete sets the autocomplete attribute.
func Autocomplete(value string) Attr { return Attribute("autocomplete", value) }

// Form validation attributes

// Pattern sets the pattern attribute.
func Pattern(pattern string) Attr { return Attribute("pattern", pattern) }

// MinLength sets the minlength attribute.
func MinLength(n int) Attr { return Attribute("minlength", strconv.Itoa(n)) }

// MaxLength sets the maxlength attribute.
func MaxLength(n int) Attr { return Attribute("maxlength", strconv.Itoa(n)) }

// Min sets the min attribute.
func Min(value string) Attr { return Attribute("min", value) }

// Max sets the max attribute.
func Max(value string) Attr { return Attribute("max", value) }

// Step sets the step attribute.
func Step(value string) Attr { return Attribute("step", value) }

// Textarea attributes

// Rows sets the rows attribute.
func Rows(n int) Attr { return Attribute("rows", strconv.Itoa(n)) }

// Cols sets the cols attribute.
func Cols(n int) Attr { return Attribute("cols", strconv.Itoa(n)) }

// Form element attributes

// Action sets the action attribute.
func Action(url string) Attr { return Attribute("action", url) }

// Method sets the method attribute.
func Method(method string) Attr { return Attribute("method", method) }

// Enctype sets the enctype attribute.
func Enctype(enctype string) Attr { return Attribute("enctype", enctype) }

// Novalidate sets the novalidate attribute.
func Novalidate() Attr { return BoolAttribute("novalidate", true) }

// Media attributes

// Src sets the src attribute.
func Src(url string) Attr { return Attribute("src", url) }

// Alt sets the alt attribute.
func Alt(text string) Attr { return Attribute("alt", text) }

// Width sets the width attribute.
func Width(w int) Attr { return Attribute("width", strconv.Itoa(w)) }

// Height sets the height attribute.
func Height(h int) Attr { return Attribute("height", strconv.Itoa(h)) }

// Loading sets the loading attribute.
func Loading(mode string) Attr { return Attribute("loading", mode) }

// Controls sets the controls attribute.
func Controls() Attr { return BoolAttribute("controls", true) }

// Table attributes

// Colspan sets the colspan attribute.
func Colspan(n int) Attr { return Attribute("colspan", strconv.Itoa(n)) }

// Rowspan sets the rowspan attribute.
func Rowspan(n int) Attr { return Attribute("rowspan", strconv.Itoa(n)) }

// Scope sets the scope attribute.
func Scope(scope string) Attr { return Attribute("scope", scope) }

// Interactive attributes

// Open sets the open attribute (for details, dialog).
func Open() Attr { return BoolAttribute("open", true) }

// Draggable sets the draggable attribute.
func Draggable() Attr { return Attribute("draggable", "true") }

// Spellcheck sets the spellcheck attribute.
func Spellcheck(check bool) Attr { return Attribute("spellcheck", strconv.FormatBool(check)) }

// ContentEditable sets the contenteditable attribute.
func ContentEditable(editable bool) Attr {
	return Attribute("contenteditable", strconv.FormatBool(editable))
}
