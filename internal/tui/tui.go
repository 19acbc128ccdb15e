// Package tui provides the interactive terminal preview of the landing page.
//
// The page is rendered from the same widget tree the HTML export uses. Rows
// and columns stand in for CSS pixels: scrolling dispatches measurements
// built from line offsets, so the navigation bar and section reveals follow
// the same rules as in a browser.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/agiangrant/lunasync"
	"github.com/agiangrant/lunasync/tw"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	chromeRows    = 2 // status and help lines
)

// Options configures the preview.
type Options struct {
	// PxPerColumn converts terminal width to CSS pixels for breakpoints.
	PxPerColumn float64
	// PxPerRow converts line offsets to CSS pixels for scroll measurements.
	PxPerRow float64
	// Year is printed in the footer.
	Year int
	// Breakpoints default to tw.DefaultBreakpoints.
	Breakpoints *tw.BreakpointConfig
	Logger      *zap.Logger
	// Notifier also receives acknowledgements, after the flash banner.
	Notifier lunasync.Notifier
}

func (o Options) withDefaults() Options {
	if o.PxPerColumn <= 0 {
		o.PxPerColumn = 8
	}
	if o.PxPerRow <= 0 {
		o.PxPerRow = 20
	}
	if o.Breakpoints == nil {
		bp := tw.DefaultBreakpoints()
		o.Breakpoints = &bp
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

var (
	flashStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#9333ea")).Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Model is the bubbletea model of the preview.
type Model struct {
	ctrl    *lunasync.Controller
	content *lunasync.Content
	opts    Options
	logger  *zap.Logger

	width  int
	height int
	row    int
	layout Layout

	focus   int // index into lunasync.Fields, -1 when browsing
	name    textinput.Model
	email   textinput.Model
	message textarea.Model

	flash    string
	help     help.Model
	keyMap   KeyMap
	showHelp bool
}

// New creates a preview of content.
func New(content *lunasync.Content, opts Options) *Model {
	opts = opts.withDefaults()

	m := &Model{
		content: content,
		opts:    opts,
		logger:  opts.Logger,
		width:   defaultWidth,
		height:  defaultHeight,
		focus:   -1,
		help:    help.New(),
		keyMap:  DefaultKeyMap(),
	}

	cfg := content.ControllerConfig()
	cfg.Logger = opts.Logger
	cfg.Notifier = lunasync.NotifierFunc(m.acknowledge)
	m.ctrl = lunasync.NewController(cfg)

	m.name = textinput.New()
	m.name.Placeholder = "Your name"
	m.email = textinput.New()
	m.email.Placeholder = "you@example.com"
	m.message = textarea.New()
	m.message.Placeholder = "How can we help?"
	m.message.ShowLineNumbers = false
	m.message.SetHeight(4)
	m.resizeInputs()

	m.relayout()
	return m
}

// State returns the current page state.
func (m *Model) State() lunasync.State {
	return m.ctrl.State()
}

// Layout returns the current terminal layout.
func (m *Model) Layout() Layout {
	return m.layout
}

// Row returns the first visible body line.
func (m *Model) Row() int {
	return m.row
}

// Flash returns the acknowledgement banner text, if any.
func (m *Model) Flash() string {
	return m.flash
}

func (m *Model) acknowledge(ack lunasync.Acknowledgement) {
	m.flash = ack.Message
	if m.opts.Notifier != nil {
		m.opts.Notifier.Acknowledge(ack)
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resizeInputs()
		m.relayout()
		m.row = m.clamp(m.row)
		m.ctrl.Resize(m.measure())
		m.relayout()
		return m, nil

	case tea.KeyMsg:
		m.flash = ""
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.focus >= 0 {
			return m.updateField(msg)
		}
		return m.updateBrowse(msg)
	}

	if m.focus >= 0 {
		return m.forward(msg)
	}
	return m, nil
}

func (m *Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keyMap.Up):
		m.scrollTo(m.row - 1)
	case key.Matches(msg, m.keyMap.Down):
		m.scrollTo(m.row + 1)
	case key.Matches(msg, m.keyMap.PageUp):
		m.scrollTo(m.row - m.bodyHeight())
	case key.Matches(msg, m.keyMap.PageDown):
		m.scrollTo(m.row + m.bodyHeight())
	case key.Matches(msg, m.keyMap.Home):
		m.scrollTo(0)
	case key.Matches(msg, m.keyMap.End):
		m.scrollTo(m.maxRow())
	case key.Matches(msg, m.keyMap.Menu):
		m.ctrl.ToggleMenu()
		m.relayout()
	case key.Matches(msg, m.keyMap.Next):
		return m, m.focusField(0)
	case key.Matches(msg, m.keyMap.Prev):
		return m, m.focusField(len(lunasync.Fields) - 1)
	case key.Matches(msg, m.keyMap.Help):
		m.showHelp = !m.showHelp
	}
	return m, nil
}

func (m *Model) updateField(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	field := lunasync.Fields[m.focus]

	switch {
	case key.Matches(msg, m.keyMap.Leave):
		m.blur()
		m.relayout()
		return m, nil
	case key.Matches(msg, m.keyMap.Next):
		return m, m.focusField((m.focus + 1) % len(lunasync.Fields))
	case key.Matches(msg, m.keyMap.Prev):
		return m, m.focusField((m.focus + len(lunasync.Fields) - 1) % len(lunasync.Fields))
	case key.Matches(msg, m.keyMap.Send),
		key.Matches(msg, m.keyMap.Submit) && field != lunasync.FieldMessage:
		return m, m.submit()
	}
	return m.forward(msg)
}

// forward passes msg to the focused input and mirrors its value into the state.
func (m *Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	field := lunasync.Fields[m.focus]

	switch field {
	case lunasync.FieldName:
		m.name, cmd = m.name.Update(msg)
	case lunasync.FieldEmail:
		m.email, cmd = m.email.Update(msg)
	case lunasync.FieldMessage:
		m.message, cmd = m.message.Update(msg)
	}

	if value := m.inputValue(field); value != m.ctrl.State().Form.Value(field) {
		m.ctrl.SetField(field, value)
		m.relayout()
	}
	return m, cmd
}

func (m *Model) submit() tea.Cmd {
	accepted := m.ctrl.Submit()
	form := m.ctrl.State().Form

	m.name.SetValue(form.Name)
	m.email.SetValue(form.Email)
	m.message.SetValue(form.Message)

	if accepted {
		m.blur()
		m.relayout()
		return nil
	}

	m.logger.Debug("submit rejected", zap.Int("errors", len(form.Errors)))
	for i, f := range lunasync.Fields {
		if form.Errors.Has(f) {
			return m.focusField(i)
		}
	}
	m.relayout()
	return nil
}

func (m *Model) inputValue(f lunasync.Field) string {
	switch f {
	case lunasync.FieldName:
		return m.name.Value()
	case lunasync.FieldEmail:
		return m.email.Value()
	case lunasync.FieldMessage:
		return m.message.Value()
	}
	return ""
}

func (m *Model) focusField(i int) tea.Cmd {
	m.blur()
	m.focus = i

	var cmd tea.Cmd
	switch lunasync.Fields[i] {
	case lunasync.FieldName:
		cmd = m.name.Focus()
	case lunasync.FieldEmail:
		cmd = m.email.Focus()
	case lunasync.FieldMessage:
		cmd = m.message.Focus()
	}

	m.relayout()
	if top, ok := m.layout.Offsets[m.content.Contact.ID]; ok {
		if top < m.row || top >= m.row+m.bodyHeight() {
			m.scrollTo(top)
		}
	}
	return cmd
}

func (m *Model) blur() {
	m.focus = -1
	m.name.Blur()
	m.email.Blur()
	m.message.Blur()
}

func (m *Model) resizeInputs() {
	w := max(m.width-4, 10)
	m.name.Width = w
	m.email.Width = w
	m.message.SetWidth(w)
}

// ============================================================================
// Layout and measurements
// ============================================================================

func (m *Model) renderer() Renderer {
	return Renderer{
		Width:       m.width,
		PxPerColumn: m.opts.PxPerColumn,
		Breakpoints: *m.opts.Breakpoints,
		Field:       m.fieldView,
		Focused:     m.focused(),
	}
}

func (m *Model) focused() lunasync.Field {
	if m.focus < 0 {
		return ""
	}
	return lunasync.Fields[m.focus]
}

func (m *Model) relayout() {
	page := lunasync.BuildPage(m.ctrl.State(), m.content, lunasync.ViewOptions{Year: m.opts.Year})
	m.layout = m.renderer().Render(page)
}

func (m *Model) fieldView(f lunasync.Field, style lipgloss.Style) string {
	var view string
	switch f {
	case lunasync.FieldName:
		view = m.name.View()
	case lunasync.FieldEmail:
		view = m.email.View()
	case lunasync.FieldMessage:
		view = m.message.View()
	}
	return style.Render(view)
}

func (m *Model) bodyHeight() int {
	return max(m.height-len(m.layout.Header)-chromeRows, 1)
}

func (m *Model) maxRow() int {
	return max(len(m.layout.Body)-m.bodyHeight(), 0)
}

func (m *Model) clamp(row int) int {
	return min(max(row, 0), m.maxRow())
}

func (m *Model) scrollTo(row int) {
	row = m.clamp(row)
	if row == m.row {
		return
	}
	m.row = row
	m.ctrl.Scroll(m.measure())
	m.relayout()
	m.row = m.clamp(m.row)
}

// measure converts the current layout to CSS-pixel measurements.
func (m *Model) measure() lunasync.Measurements {
	px := m.opts.PxPerRow
	sections := make([]lunasync.SectionOffset, 0, len(m.layout.Offsets))
	for _, id := range m.ctrl.State().Sections {
		if line, ok := m.layout.Offsets[id]; ok {
			sections = append(sections, lunasync.SectionOffset{ID: id, Top: float64(line) * px})
		}
	}
	return lunasync.Measurements{
		ScrollY:        float64(m.row) * px,
		ViewportHeight: float64(m.bodyHeight()) * px,
		Sections:       sections,
	}
}

// View renders the model.
func (m *Model) View() string {
	var b strings.Builder

	for _, line := range m.layout.Header {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	height := m.bodyHeight()
	end := min(m.row+height, len(m.layout.Body))
	visible := m.layout.Body[min(m.row, end):end]
	for _, line := range visible {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	for i := len(visible); i < height; i++ {
		b.WriteByte('\n')
	}

	b.WriteString(m.renderStatusBar())
	b.WriteByte('\n')
	if m.showHelp {
		b.WriteString(m.help.FullHelpView(m.keyMap.FullHelp()))
	} else {
		b.WriteString(m.help.ShortHelpView(m.keyMap.ShortHelp()))
	}
	return b.String()
}

func (m *Model) renderStatusBar() string {
	if m.flash != "" {
		return flashStyle.Render("✓ " + m.flash)
	}

	status := fmt.Sprintf("line %d/%d · %s", m.row+1, max(len(m.layout.Body), 1), m.renderer().ActiveBreakpoint())
	if section := m.currentSection(); section != "" {
		status += " · " + section
	}
	if m.focus >= 0 {
		status += " · editing " + string(lunasync.Fields[m.focus])
	}
	return statusStyle.Render(status)
}

// currentSection returns the last section whose top is at or above the
// first visible line.
func (m *Model) currentSection() string {
	current, best := "", -1
	for id, line := range m.layout.Offsets {
		if line <= m.row && line > best {
			current, best = id, line
		}
	}
	return current
}
