package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/lunasync"
	"github.com/agiangrant/lunasync/tw"
)

func renderer(width int) Renderer {
	return Renderer{Width: width, PxPerColumn: 8, Breakpoints: tw.DefaultBreakpoints()}
}

func page(s lunasync.State) lunasync.Widget {
	c := lunasync.DefaultContent()
	return lunasync.BuildPage(s, c, lunasync.ViewOptions{Year: 2024})
}

func freshState() lunasync.State {
	return lunasync.NewState(lunasync.DefaultContent().SectionIDs())
}

func joined(lines []string) string {
	return strings.Join(lines, "\n")
}

func TestRenderRecordsSectionOffsets(t *testing.T) {
	layout := renderer(120).Render(page(freshState()))

	features, ok := layout.Offsets["features"]
	require.True(t, ok)
	pricing, ok := layout.Offsets["pricing"]
	require.True(t, ok)
	contact, ok := layout.Offsets["contact"]
	require.True(t, ok)

	assert.Greater(t, features, 0, "hero comes first")
	assert.Less(t, features, pricing)
	assert.Less(t, pricing, contact)
	assert.Less(t, contact, len(layout.Body))
	assert.Contains(t, layout.Body[features], "Intelligent Features")
}

func TestRenderNavDesktopAndMobile(t *testing.T) {
	desktop := renderer(120).Render(page(freshState()))
	require.NotEmpty(t, desktop.Header)
	assert.Contains(t, desktop.Header[0], "LunaSync")
	assert.Contains(t, desktop.Header[0], "Pricing")
	assert.NotContains(t, desktop.Header[0], "≡", "menu button is md:hidden")

	mobile := renderer(60).Render(page(freshState()))
	assert.Contains(t, mobile.Header[0], "≡")
	assert.NotContains(t, mobile.Header[0], "Pricing", "desktop links are hidden on phones")
}

func TestRenderMobileMenuPanel(t *testing.T) {
	closed := renderer(60).Render(page(freshState()))
	assert.NotContains(t, joined(closed.Header), "Features")
	assert.NotContains(t, joined(closed.Header), "Get Started")
	assert.Len(t, closed.Header, 2, "bar and spacer only")

	s := freshState()
	s.Menu.Open = true
	open := renderer(60).Render(page(s))
	assert.Contains(t, joined(open.Header), "Features")
	assert.Contains(t, open.Header[0], "✕")

	// The panel never shows at desktop widths, open or not.
	wide := renderer(120).Render(page(s))
	assert.Len(t, wide.Header, 2)
}

func TestInlineSkipsCollapsed(t *testing.T) {
	r := renderer(60)
	links := lunasync.Container("", lunasync.Link("Features", "#features", ""))

	shut := lunasync.Container("max-h-0 opacity-0", links)
	assert.True(t, isInline(r, shut))
	assert.Equal(t, "", inline(r, shut))

	open := lunasync.Container("max-h-64 opacity-100", links)
	assert.Contains(t, inline(r, open), "Features")

	// A collapsed child does not make its parent inline.
	assert.False(t, isInline(r, lunasync.Container("", shut)))
}

func TestModelMenuClosedAfterToggle(t *testing.T) {
	m := newModel(t, 60, 30)
	assert.NotContains(t, joined(m.Layout().Header), "Features")

	press(m, "m", "m")
	assert.False(t, m.State().Menu.Open)
	assert.NotContains(t, joined(m.Layout().Header), "Features")
}

func TestRenderNavRuleWhenScrolled(t *testing.T) {
	s := freshState()
	top := renderer(100).Render(page(s))
	assert.Equal(t, "", top.Header[len(top.Header)-1])

	s.Scroll.PastThreshold = true
	scrolled := renderer(100).Render(page(s))
	assert.Contains(t, scrolled.Header[len(scrolled.Header)-1], "─")
}

func TestRenderFieldErrors(t *testing.T) {
	s := freshState()
	s, _ = lunasync.Reduce(s, lunasync.SubmitEvent{})

	body := joined(renderer(100).Render(page(s)).Body)

	assert.Contains(t, body, "Name is required")
	assert.Contains(t, body, "Email is required")
	assert.Contains(t, body, "Message is required")
}

func TestRenderUsesFieldView(t *testing.T) {
	r := renderer(100)
	var seen []lunasync.Field
	r.Field = func(f lunasync.Field, _ lipgloss.Style) string {
		seen = append(seen, f)
		return "<" + string(f) + ">"
	}

	body := joined(r.Render(page(freshState())).Body)

	assert.Equal(t, lunasync.Fields, seen)
	assert.Contains(t, body, "<email>")
}

func TestRenderInputBordersFromClasses(t *testing.T) {
	borders := func(r Renderer, s lunasync.State) map[lunasync.Field]lipgloss.TerminalColor {
		out := make(map[lunasync.Field]lipgloss.TerminalColor)
		r.Field = func(f lunasync.Field, style lipgloss.Style) string {
			out[f] = style.GetBorderTopForeground()
			return string(f)
		}
		r.Render(page(s))
		return out
	}

	r := renderer(100)
	clean := borders(r, freshState())
	assert.Equal(t, lipgloss.Color("#d1d5db"), clean[lunasync.FieldName], "border-gray-300")

	s, _ := lunasync.Reduce(freshState(), lunasync.SubmitEvent{})
	invalid := borders(r, s)
	assert.Equal(t, lipgloss.Color("#ef4444"), invalid[lunasync.FieldName], "border-red-500")

	// focus:ring-purple-600 wins on the focused input only.
	r.Focused = lunasync.FieldEmail
	focused := borders(r, s)
	assert.Equal(t, lipgloss.Color("#9333ea"), focused[lunasync.FieldEmail])
	assert.Equal(t, lipgloss.Color("#ef4444"), focused[lunasync.FieldMessage])
}

func TestRendererActiveBreakpoint(t *testing.T) {
	assert.Equal(t, tw.BreakpointBase, renderer(60).ActiveBreakpoint())
	assert.Equal(t, tw.BreakpointMD, renderer(100).ActiveBreakpoint())
	assert.Equal(t, tw.BreakpointLG, renderer(130).ActiveBreakpoint())
}

func newModel(t *testing.T, width, height int) *Model {
	t.Helper()
	m := New(lunasync.DefaultContent(), Options{Year: 2024})
	m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return m
}

func press(m *Model, keys ...string) {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "end":
			msg = tea.KeyMsg{Type: tea.KeyEnd}
		case "home":
			msg = tea.KeyMsg{Type: tea.KeyHome}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "ctrl+s":
			msg = tea.KeyMsg{Type: tea.KeyCtrlS}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m.Update(msg)
	}
}

func TestModelScrollDrivesState(t *testing.T) {
	m := newModel(t, 100, 30)
	assert.False(t, m.State().Scroll.PastThreshold)

	// 3 rows * 20px = 60px > 50px
	press(m, "down", "down", "down")
	assert.Equal(t, 3, m.Row())
	assert.True(t, m.State().Scroll.PastThreshold)

	press(m, "home")
	assert.Equal(t, 0, m.Row())
	assert.False(t, m.State().Scroll.PastThreshold)
}

func TestModelScrollRevealsSections(t *testing.T) {
	m := newModel(t, 100, 30)

	// The first window size already measures the page at scroll 0.
	viewport := float64(m.bodyHeight()) * 20
	for id, line := range m.Layout().Offsets {
		want := lunasync.SectionVisible(0, viewport, float64(line)*20)
		assert.Equal(t, want, m.State().Scroll.Visible[id], id)
	}
	require.False(t, m.State().Scroll.Visible["contact"])

	press(m, "end")

	for _, id := range m.State().Sections {
		assert.True(t, m.State().Scroll.Visible[id], id)
	}
}

func TestModelStatusBar(t *testing.T) {
	m := newModel(t, 100, 30)
	assert.Contains(t, m.View(), "line 1/")
	assert.Contains(t, m.View(), "· md")

	m.Update(tea.WindowSizeMsg{Width: 60, Height: 30})
	assert.Contains(t, m.View(), "· base")
}

func TestModelScrollClamped(t *testing.T) {
	m := newModel(t, 100, 30)

	press(m, "up")
	assert.Equal(t, 0, m.Row())

	press(m, "end")
	last := m.Row()
	press(m, "down")
	assert.Equal(t, last, m.Row())
}

func TestModelToggleMenu(t *testing.T) {
	m := newModel(t, 60, 30)

	press(m, "m")
	assert.True(t, m.State().Menu.Open)
	assert.Contains(t, joined(m.Layout().Header), "Features")

	press(m, "m")
	assert.False(t, m.State().Menu.Open)
}

func TestModelSubmitFlow(t *testing.T) {
	m := newModel(t, 100, 30)

	press(m, "tab", "Ada", "tab", "ada@example.com", "tab", "Hello")
	form := m.State().Form
	assert.Equal(t, "Ada", form.Name)
	assert.Equal(t, "ada@example.com", form.Email)
	assert.Equal(t, "Hello", form.Message)

	// "q" while editing is text, not quit.
	press(m, "q")
	assert.Equal(t, "Helloq", m.State().Form.Message)

	press(m, "ctrl+s")
	assert.Equal(t, "Message sent successfully!", m.Flash())
	assert.Equal(t, lunasync.ContactForm{}, m.State().Form)
	assert.Contains(t, m.View(), "Message sent successfully!")

	press(m, "down")
	assert.Empty(t, m.Flash())
}

func TestModelRejectedSubmitFocusesFirstError(t *testing.T) {
	m := newModel(t, 100, 30)

	press(m, "tab", "Ada", "tab", "nope", "enter")

	st := m.State()
	assert.False(t, st.Form.Errors.Has(lunasync.FieldName))
	assert.True(t, st.Form.Errors.Has(lunasync.FieldEmail))
	assert.Empty(t, m.Flash())
	assert.Contains(t, m.View(), "editing email")

	// Errors stay while typing.
	press(m, "x")
	assert.True(t, m.State().Form.Errors.Has(lunasync.FieldEmail))

	press(m, "esc")
	assert.NotContains(t, m.View(), "editing")
}

func TestModelQuit(t *testing.T) {
	m := newModel(t, 100, 30)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModelNotifierForwarding(t *testing.T) {
	var acks []lunasync.Acknowledgement
	m := New(lunasync.DefaultContent(), Options{
		Notifier: lunasync.NotifierFunc(func(a lunasync.Acknowledgement) { acks = append(acks, a) }),
	})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	press(m, "tab", "Ada", "tab", "ada@example.com", "tab", "Hi", "ctrl+s")

	require.Len(t, acks, 1)
	assert.Equal(t, "Ada", acks[0].Form.Name)
}
