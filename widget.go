package lunasync

import (
	"encoding/json"
	"strconv"

	"github.com/agiangrant/lunasync/tw"
)

// WidgetKind represents the type of widget
type WidgetKind string

const (
	// Structural widgets
	WidgetPage      WidgetKind = "Page"
	WidgetNav       WidgetKind = "Nav"
	WidgetSection   WidgetKind = "Section"
	WidgetFooter    WidgetKind = "Footer"
	WidgetContainer WidgetKind = "Container"
	WidgetList      WidgetKind = "List"
	WidgetListItem  WidgetKind = "ListItem"

	// Text widgets
	WidgetHeading    WidgetKind = "Heading"
	WidgetText       WidgetKind = "Text"
	WidgetSpan       WidgetKind = "Span"
	WidgetLabel      WidgetKind = "Label"
	WidgetFieldError WidgetKind = "FieldError"

	// Media
	WidgetImage WidgetKind = "Image"
	WidgetIcon  WidgetKind = "Icon"

	// Interactive widgets
	WidgetLink      WidgetKind = "Link"
	WidgetButton    WidgetKind = "Button"
	WidgetForm      WidgetKind = "Form"
	WidgetTextField WidgetKind = "TextField"
	WidgetTextArea  WidgetKind = "TextArea"
)

// Attribute keys understood by the renderers.
const (
	AttrHref            = "href"
	AttrSrc             = "src"
	AttrAlt             = "alt"
	AttrIcon            = "icon"
	AttrLevel           = "level"
	AttrType            = "type"
	AttrName            = "name"
	AttrValue           = "value"
	AttrRows            = "rows"
	AttrAction          = "data-action"
	AttrTransitionDelay = "data-transition-delay"
)

// Actions carried by interactive widgets in AttrAction.
const (
	ActionToggleMenu = "toggle-menu"
	ActionSubmit     = "submit"
)

// Widget is a node in the rendered page tree.
type Widget struct {
	Kind     WidgetKind        `json:"kind"`
	ID       string            `json:"id,omitempty"`
	Classes  string            `json:"classes,omitempty"`
	Text     string            `json:"text,omitempty"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Children []Widget          `json:"children,omitempty"`
}

// NewWidget creates a new widget of the given kind
func NewWidget(kind WidgetKind) *Widget {
	return &Widget{Kind: kind}
}

// WithID sets the element id (sections use it as their registered ID)
func (w *Widget) WithID(id string) *Widget {
	w.ID = id
	return w
}

// WithClasses sets the Tailwind classes for styling
func (w *Widget) WithClasses(classes string) *Widget {
	w.Classes = classes
	return w
}

// WithText sets the text content
func (w *Widget) WithText(text string) *Widget {
	w.Text = text
	return w
}

// WithAttr sets a single attribute
func (w *Widget) WithAttr(key, value string) *Widget {
	if w.Attrs == nil {
		w.Attrs = make(map[string]string)
	}
	w.Attrs[key] = value
	return w
}

// WithChildren sets the children of this widget
func (w *Widget) WithChildren(children ...Widget) *Widget {
	w.Children = children
	return w
}

// AddChild adds a single child widget
func (w *Widget) AddChild(child Widget) *Widget {
	w.Children = append(w.Children, child)
	return w
}

// Attr returns an attribute value, or "" if unset.
func (w Widget) Attr(key string) string {
	return w.Attrs[key]
}

// ComputedStyles parses the widget's classes.
func (w Widget) ComputedStyles() tw.ComputedStyles {
	return tw.ParseClasses(w.Classes)
}

// ResolvedStyles resolves the widget's classes at a viewport width.
func (w Widget) ResolvedStyles(width float32, breakpoints tw.BreakpointConfig) tw.StyleProperties {
	cs := w.ComputedStyles()
	return cs.ResolveForWidth(width, breakpoints)
}

// Walk traverses the tree depth-first, calling fn for each widget.
// Returning false from fn skips that widget's children.
func (w Widget) Walk(fn func(w Widget) bool) {
	if !fn(w) {
		return
	}
	for _, child := range w.Children {
		child.Walk(fn)
	}
}

// Find returns the first widget matching pred, depth-first.
func (w Widget) Find(pred func(w Widget) bool) (Widget, bool) {
	var found Widget
	ok := false
	w.Walk(func(c Widget) bool {
		if ok {
			return false
		}
		if pred(c) {
			found, ok = c, true
			return false
		}
		return true
	})
	return found, ok
}

// FindByID returns the widget with the given ID.
func (w Widget) FindByID(id string) (Widget, bool) {
	return w.Find(func(c Widget) bool { return c.ID == id })
}

// FindByAction returns the first widget carrying the given action.
func (w Widget) FindByAction(action string) (Widget, bool) {
	return w.Find(func(c Widget) bool { return c.Attr(AttrAction) == action })
}

// ToJSON serializes the widget tree to JSON
func (w Widget) ToJSON() (string, error) {
	data, err := json.Marshal(w)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Convenience constructors

func element(kind WidgetKind, classes string, children []Widget) Widget {
	return Widget{Kind: kind, Classes: classes, Children: children}
}

// Page creates the root widget
func Page(classes string, children ...Widget) Widget {
	return element(WidgetPage, classes, children)
}

// Nav creates a navigation bar
func Nav(classes string, children ...Widget) Widget {
	return element(WidgetNav, classes, children)
}

// Section creates a page section with the given id
func Section(id, classes string, children ...Widget) Widget {
	w := element(WidgetSection, classes, children)
	w.ID = id
	return w
}

// Footer creates a page footer
func Footer(classes string, children ...Widget) Widget {
	return element(WidgetFooter, classes, children)
}

// Container creates a generic container
func Container(classes string, children ...Widget) Widget {
	return element(WidgetContainer, classes, children)
}

// List creates an unordered list
func List(classes string, children ...Widget) Widget {
	return element(WidgetList, classes, children)
}

// ListItem creates a list item
func ListItem(classes string, children ...Widget) Widget {
	return element(WidgetListItem, classes, children)
}

// Heading creates a heading of the given level (1-3)
func Heading(level int, text, classes string) Widget {
	w := Widget{Kind: WidgetHeading, Classes: classes, Text: text}
	return *w.WithAttr(AttrLevel, strconv.Itoa(clampLevel(level)))
}

func clampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > 3 {
		return 3
	}
	return level
}

// Text creates a paragraph
func Text(text, classes string) Widget {
	return Widget{Kind: WidgetText, Classes: classes, Text: text}
}

// Span creates an inline run of text, optionally with children
func Span(text, classes string, children ...Widget) Widget {
	return Widget{Kind: WidgetSpan, Classes: classes, Text: text, Children: children}
}

// Label creates a form label
func Label(text, classes string) Widget {
	return Widget{Kind: WidgetLabel, Classes: classes, Text: text}
}

// FieldErrorText creates the inline error shown under a form input
func FieldErrorText(text, classes string) Widget {
	return Widget{Kind: WidgetFieldError, Classes: classes, Text: text}
}

// Image creates an image
func Image(src, alt, classes string) Widget {
	w := Widget{Kind: WidgetImage, Classes: classes}
	w.WithAttr(AttrSrc, src).WithAttr(AttrAlt, alt)
	return w
}

// Icon creates a named icon (lucide icon names: "moon", "menu", "x", ...)
func Icon(name, classes string) Widget {
	w := Widget{Kind: WidgetIcon, Classes: classes}
	w.WithAttr(AttrIcon, name)
	return w
}

// Link creates an anchor
func Link(text, href, classes string, children ...Widget) Widget {
	w := Widget{Kind: WidgetLink, Classes: classes, Text: text, Children: children}
	w.WithAttr(AttrHref, href)
	return w
}

// Button creates a button
func Button(text, classes string, children ...Widget) Widget {
	return Widget{Kind: WidgetButton, Classes: classes, Text: text, Children: children}
}

// Form creates a form container
func Form(classes string, children ...Widget) Widget {
	return element(WidgetForm, classes, children)
}

// TextField creates a single-line input bound to a form field
func TextField(field Field, inputType, value, classes string) Widget {
	w := Widget{Kind: WidgetTextField, Classes: classes}
	w.WithAttr(AttrName, string(field)).WithAttr(AttrType, inputType).WithAttr(AttrValue, value)
	return w
}

// TextArea creates a multi-line input bound to a form field
func TextArea(field Field, value string, rows int, classes string) Widget {
	w := Widget{Kind: WidgetTextArea, Classes: classes, Text: value}
	w.WithAttr(AttrName, string(field)).WithAttr(AttrRows, strconv.Itoa(rows))
	return w
}
