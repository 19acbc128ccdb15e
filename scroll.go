package lunasync

// ScrollThreshold is the scroll offset (px) past which the navigation bar
// switches to its solid style.
const ScrollThreshold = 50.0

// RevealRatio is the fraction of the viewport height added to the scroll
// offset when deciding whether a section has entered the viewport.
const RevealRatio = 0.7

// SectionOffset is the measured top edge of a page section, in pixels from
// the top of the document.
type SectionOffset struct {
	ID  string  `json:"id" yaml:"id"`
	Top float64 `json:"top" yaml:"top"`
}

// Measurements is what the presentation surface reports on every scroll or
// resize notification.
type Measurements struct {
	ScrollY        float64         `json:"scroll_y"`
	ViewportHeight float64         `json:"viewport_height"`
	Sections       []SectionOffset `json:"sections,omitempty"`
}

// Offset returns the measured top of the section with the given id.
func (m Measurements) Offset(id string) (float64, bool) {
	for _, s := range m.Sections {
		if s.ID == id {
			return s.Top, true
		}
	}
	return 0, false
}

// ScrollState is the scroll-derived view state.
type ScrollState struct {
	PastThreshold bool            `json:"past_threshold"`
	Visible       map[string]bool `json:"visible"`
}

// IsVisible reports whether the section has entered the viewport.
// Unknown sections are not visible.
func (s ScrollState) IsVisible(id string) bool {
	return s.Visible[id]
}

// Clone returns an independent copy.
func (s ScrollState) Clone() ScrollState {
	visible := make(map[string]bool, len(s.Visible))
	for id, v := range s.Visible {
		visible[id] = v
	}
	return ScrollState{PastThreshold: s.PastThreshold, Visible: visible}
}

// PastThreshold reports whether scrollY is beyond ScrollThreshold.
func PastThreshold(scrollY float64) bool {
	return scrollY > ScrollThreshold
}

// SectionVisible reports whether a section starting at top is revealed for
// the given scroll offset and viewport height.
func SectionVisible(scrollY, viewportHeight, top float64) bool {
	return scrollY+RevealRatio*viewportHeight > top
}

// Visibility computes the reveal state of every measured section.
func Visibility(scrollY, viewportHeight float64, sections []SectionOffset) map[string]bool {
	out := make(map[string]bool, len(sections))
	for _, s := range sections {
		out[s.ID] = SectionVisible(scrollY, viewportHeight, s.Top)
	}
	return out
}

// ComputeScroll derives the ScrollState for the registered sections.
// Keys of Visible are exactly registered; sections without a measurement are
// not visible and measured sections that are not registered are ignored.
func ComputeScroll(m Measurements, registered []string) ScrollState {
	measured := Visibility(m.ScrollY, m.ViewportHeight, m.Sections)

	visible := make(map[string]bool, len(registered))
	for _, id := range registered {
		visible[id] = measured[id]
	}

	return ScrollState{
		PastThreshold: PastThreshold(m.ScrollY),
		Visible:       visible,
	}
}
