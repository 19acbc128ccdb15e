package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agiangrant/lunasync"
	"github.com/agiangrant/lunasync/tw"
)

// Layout is a page rendered to terminal lines.
type Layout struct {
	// Header holds the pinned navigation bar.
	Header []string
	// Body holds everything below the navigation, scrolled by the viewer.
	Body []string
	// Offsets maps section IDs to their first line in Body.
	Offsets map[string]int
}

// FieldView renders a form input inside style, which carries the border
// resolved from the input's classes.
type FieldView func(f lunasync.Field, style lipgloss.Style) string

// Renderer lays out a widget tree for a terminal of a given width.
type Renderer struct {
	Width       int
	PxPerColumn float64
	Breakpoints tw.BreakpointConfig
	Field       FieldView
	// Focused resolves that input's focus: classes. Empty when nothing is focused.
	Focused lunasync.Field
}

var icons = map[string]string{
	"moon":          "☾",
	"menu":          "≡",
	"x":             "✕",
	"chevron-right": "›",
	"brain":         "◉",
	"zap":           "ϟ",
	"shield":        "⛨",
	"mail":          "✉",
	"phone":         "☎",
	"map-pin":       "⌖",
}

var (
	ruleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#d1d5db"))
	buttonStyle = lipgloss.NewStyle().Bold(true)
	linkStyle   = lipgloss.NewStyle().Underline(true)
)

// viewportPx is the CSS width the terminal stands in for.
func (r Renderer) viewportPx() float32 {
	return float32(float64(r.Width) * r.PxPerColumn)
}

func (r Renderer) resolve(w lunasync.Widget) tw.StyleProperties {
	return w.ResolvedStyles(r.viewportPx(), r.Breakpoints)
}

// ActiveBreakpoint returns the breakpoint the terminal width falls in.
func (r Renderer) ActiveBreakpoint() tw.Breakpoint {
	return r.Breakpoints.ActiveBreakpoint(r.viewportPx())
}

// inputStyle draws an input's border in its resolved border color. A focused
// input with a focus ring uses the ring color instead.
func (r Renderer) inputStyle(w lunasync.Widget, focused bool) lipgloss.Style {
	state := tw.StateDefault
	if focused {
		state = tw.StateFocus
	}
	cs := w.ComputedStyles()
	p := cs.ResolveForWidthWithState(r.viewportPx(), r.Breakpoints, state)

	color := p.BorderColor
	if p.RingWidth != nil && *p.RingWidth > 0 && p.RingColor != nil {
		color = p.RingColor
	}

	style := lipgloss.NewStyle().Border(lipgloss.NormalBorder())
	if color != nil {
		style = style.BorderForeground(lipgloss.Color(tw.Hex(*color)))
	}
	return style
}

// Render lays out page. The first Nav child becomes the header.
func (r Renderer) Render(page lunasync.Widget) Layout {
	out := Layout{Offsets: make(map[string]int)}

	header := &lineWriter{r: r}
	body := &lineWriter{r: r, offsets: out.Offsets}
	for _, child := range page.Children {
		if child.Kind == lunasync.WidgetNav && header.empty() {
			header.nav(child)
			continue
		}
		body.block(child, false)
	}

	out.Header = header.lines
	out.Body = body.lines
	return out
}

type lineWriter struct {
	r       Renderer
	lines   []string
	offsets map[string]int
}

func (lw *lineWriter) empty() bool {
	return len(lw.lines) == 0
}

func (lw *lineWriter) emit(text string, style lipgloss.Style) {
	if strings.TrimSpace(text) == "" {
		return
	}
	width := lw.r.Width
	if width < 1 {
		width = 1
	}
	rendered := style.Width(width).Render(text)
	lw.lines = append(lw.lines, strings.Split(rendered, "\n")...)
}

func (lw *lineWriter) blank() {
	if n := len(lw.lines); n > 0 && lw.lines[n-1] == "" {
		return
	}
	lw.lines = append(lw.lines, "")
}

// nav renders the bar on one line, then the mobile panel when it is open and
// visible at this width. A shadowed (scrolled) nav gets a rule underneath.
func (lw *lineWriter) nav(w lunasync.Widget) {
	styles := lw.r.resolve(w)
	for _, child := range w.Children {
		cs := lw.r.resolve(child)
		if cs.IsHidden() || cs.IsCollapsed() {
			continue
		}
		if isInline(lw.r, child) {
			lw.emit(inline(lw.r, child), lipgloss.NewStyle().Faint(cs.IsTransparent()))
			continue
		}
		lw.block(child, false)
	}
	if styles.BoxShadow != nil {
		lw.lines = append(lw.lines, ruleStyle.Render(strings.Repeat("─", max(lw.r.Width, 1))))
	} else {
		lw.lines = append(lw.lines, "")
	}
}

func (lw *lineWriter) block(w lunasync.Widget, faint bool) {
	styles := lw.r.resolve(w)
	if styles.IsHidden() || styles.IsCollapsed() {
		return
	}
	faint = faint || styles.IsTransparent()
	style := textStyle(styles).Faint(faint)

	switch w.Kind {
	case lunasync.WidgetSection:
		lw.blank()
		if w.ID != "" && lw.offsets != nil {
			lw.offsets[w.ID] = len(lw.lines)
		}
		lw.children(w, faint)
		lw.blank()

	case lunasync.WidgetHeading:
		lw.emit(inline(lw.r, w), style.Bold(true))
		if w.Attr(lunasync.AttrLevel) != "3" {
			lw.blank()
		}

	case lunasync.WidgetText, lunasync.WidgetLabel, lunasync.WidgetFieldError:
		lw.emit(inline(lw.r, w), style)

	case lunasync.WidgetListItem:
		lw.emit("• "+inline(lw.r, w), style)

	case lunasync.WidgetTextField, lunasync.WidgetTextArea:
		f := lunasync.Field(w.Attr(lunasync.AttrName))
		view := lw.r.fieldView(w, f, lw.r.inputStyle(w, f == lw.r.Focused))
		lw.lines = append(lw.lines, strings.Split(view, "\n")...)

	default:
		if isInline(lw.r, w) {
			lw.emit(inline(lw.r, w), style)
			return
		}
		lw.children(w, faint)
	}
}

func (lw *lineWriter) children(w lunasync.Widget, faint bool) {
	for _, child := range w.Children {
		lw.block(child, faint)
	}
}

func (r Renderer) fieldView(w lunasync.Widget, f lunasync.Field, style lipgloss.Style) string {
	if r.Field != nil {
		return r.Field(f, style)
	}
	value := w.Attr(lunasync.AttrValue)
	if w.Kind == lunasync.WidgetTextArea {
		value = w.Text
	}
	return style.Width(max(r.Width-2, 1)).Render(value)
}

var inlineKinds = map[lunasync.WidgetKind]bool{
	lunasync.WidgetSpan:   true,
	lunasync.WidgetIcon:   true,
	lunasync.WidgetLink:   true,
	lunasync.WidgetButton: true,
	lunasync.WidgetImage:  true,
}

// isInline reports whether w renders on a single line: an inline widget, or a
// container holding only inline content.
func isInline(r Renderer, w lunasync.Widget) bool {
	if inlineKinds[w.Kind] {
		return true
	}
	if w.Kind != lunasync.WidgetContainer {
		return false
	}
	visible := 0
	for _, child := range w.Children {
		if cs := r.resolve(child); cs.IsHidden() || cs.IsCollapsed() {
			continue
		}
		if !isInline(r, child) {
			return false
		}
		visible++
	}
	return visible > 0
}

// inline flattens w and its visible descendants into one line of text.
func inline(r Renderer, w lunasync.Widget) string {
	styles := r.resolve(w)
	if styles.IsHidden() || styles.IsCollapsed() {
		return ""
	}

	var self string
	switch w.Kind {
	case lunasync.WidgetIcon:
		glyph, ok := icons[w.Attr(lunasync.AttrIcon)]
		if !ok {
			glyph = "•"
		}
		return textStyle(styles).Render(glyph)
	case lunasync.WidgetImage:
		return "[image: " + w.Attr(lunasync.AttrAlt) + "]"
	default:
		self = strings.TrimSpace(w.Text)
	}

	parts := make([]string, 0, len(w.Children)+1)
	if self != "" {
		parts = append(parts, self)
	}
	for _, child := range w.Children {
		if s := inline(r, child); s != "" {
			parts = append(parts, s)
		}
	}
	text := strings.Join(parts, " ")

	switch w.Kind {
	case lunasync.WidgetButton:
		if text == "" {
			return ""
		}
		return buttonStyle.Render("[ " + text + " ]")
	case lunasync.WidgetLink:
		return linkStyle.Render(text)
	case lunasync.WidgetSpan:
		if styles.TextColor != nil {
			return textStyle(styles).Render(text)
		}
	}
	return text
}

func textStyle(p tw.StyleProperties) lipgloss.Style {
	s := lipgloss.NewStyle()
	if p.TextColor != nil && !isTransparentColor(*p.TextColor) {
		s = s.Foreground(lipgloss.Color(tw.Hex(*p.TextColor)))
	}
	if p.IsBold() {
		s = s.Bold(true)
	}
	return s
}

func isTransparentColor(rgba uint32) bool {
	return rgba&0xff == 0
}
