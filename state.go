package lunasync

// MenuState tracks the mobile navigation panel.
type MenuState struct {
	Open bool `json:"open"`
}

// Toggle returns the state with Open flipped.
func (m MenuState) Toggle() MenuState {
	return MenuState{Open: !m.Open}
}

// State is the complete view state of the landing page.
// It is a plain value: Reduce never mutates its input.
type State struct {
	// Sections are the registered section IDs, in page order.
	Sections []string    `json:"sections"`
	Scroll   ScrollState `json:"scroll"`
	Menu     MenuState   `json:"menu"`
	Form     ContactForm `json:"form"`
}

// NewState returns the initial state for the given registered sections.
// Every section starts hidden, the menu closed and the form empty.
func NewState(sections []string) State {
	registered := make([]string, len(sections))
	copy(registered, sections)

	visible := make(map[string]bool, len(registered))
	for _, id := range registered {
		visible[id] = false
	}

	return State{
		Sections: registered,
		Scroll:   ScrollState{Visible: visible},
	}
}

// Clone returns a deep copy.
func (s State) Clone() State {
	sections := make([]string, len(s.Sections))
	copy(sections, s.Sections)
	return State{
		Sections: sections,
		Scroll:   s.Scroll.Clone(),
		Menu:     s.Menu,
		Form:     s.Form.Clone(),
	}
}
