// Package script loads replay scripts: YAML files describing page geometry
// and a sequence of user interactions to feed through a Controller.
//
// Example:
//
//	viewport: 900
//	sections:
//	  features: 800
//	  pricing: 1700
//	  contact: 2600
//	steps:
//	  - scroll: 120
//	  - toggle_menu: true
//	  - set: {field: email, value: ada@example.com}
//	  - submit: true
package script

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/agiangrant/lunasync"
)

// DefaultViewport is used when a script omits viewport.
const DefaultViewport = 900.0

var (
	// ErrInvalidStep is wrapped by every StepError.
	ErrInvalidStep = errors.New("invalid step")
	// ErrEmptyScript is returned for a script with no steps.
	ErrEmptyScript = errors.New("script has no steps")
)

// StepError reports a malformed step by its zero-based index.
type StepError struct {
	Index  int
	Reason string
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d: %s", e.Index, e.Reason)
}

func (e *StepError) Unwrap() error {
	return ErrInvalidStep
}

// SetStep changes a single form field.
type SetStep struct {
	Field string `yaml:"field"`
	Value string `yaml:"value"`
}

// Step is one interaction. Exactly one field must be set.
type Step struct {
	Scroll     *float64 `yaml:"scroll,omitempty"`
	Resize     *float64 `yaml:"resize,omitempty"`
	ToggleMenu bool     `yaml:"toggle_menu,omitempty"`
	Set        *SetStep `yaml:"set,omitempty"`
	Submit     bool     `yaml:"submit,omitempty"`
}

// Script is a parsed replay script.
type Script struct {
	Viewport float64            `yaml:"viewport"`
	Sections map[string]float64 `yaml:"sections"`
	Steps    []Step             `yaml:"steps"`
}

// Load reads and parses the script at path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return Parse(data)
}

// Parse decodes a script. Unknown keys are rejected and every step is
// checked, so a script that parses will replay without surprises.
func Parse(data []byte) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyScript
		}
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}

	if s.Viewport == 0 {
		s.Viewport = DefaultViewport
	}
	if s.Viewport < 0 {
		return nil, fmt.Errorf("failed to parse script: negative viewport %v", s.Viewport)
	}
	if len(s.Steps) == 0 {
		return nil, ErrEmptyScript
	}
	for i, step := range s.Steps {
		if err := step.validate(i); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

func (st Step) validate(index int) error {
	n := 0
	if st.Scroll != nil {
		n++
	}
	if st.Resize != nil {
		n++
	}
	if st.ToggleMenu {
		n++
	}
	if st.Set != nil {
		n++
	}
	if st.Submit {
		n++
	}

	switch {
	case n == 0:
		return &StepError{Index: index, Reason: "no action"}
	case n > 1:
		return &StepError{Index: index, Reason: "more than one action"}
	case st.Scroll != nil && *st.Scroll < 0:
		return &StepError{Index: index, Reason: fmt.Sprintf("negative scroll %v", *st.Scroll)}
	case st.Resize != nil && *st.Resize <= 0:
		return &StepError{Index: index, Reason: fmt.Sprintf("viewport must be positive, got %v", *st.Resize)}
	case st.Set != nil && st.Set.Field == "":
		return &StepError{Index: index, Reason: "set without field"}
	}
	return nil
}

// Name returns the action name of the step.
func (st Step) Name() string {
	switch {
	case st.Scroll != nil:
		return "scroll"
	case st.Resize != nil:
		return "resize"
	case st.ToggleMenu:
		return "toggle_menu"
	case st.Set != nil:
		return "set"
	case st.Submit:
		return "submit"
	}
	return ""
}

// Offsets returns the section geometry ordered by top, then ID.
func (s *Script) Offsets() []lunasync.SectionOffset {
	out := make([]lunasync.SectionOffset, 0, len(s.Sections))
	for id, top := range s.Sections {
		out = append(out, lunasync.SectionOffset{ID: id, Top: top})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Top != out[j].Top {
			return out[i].Top < out[j].Top
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Initial returns the measurements at page load: scroll 0 with the script's
// viewport and section geometry.
func (s *Script) Initial() lunasync.Measurements {
	return lunasync.Measurements{ViewportHeight: s.Viewport, Sections: s.Offsets()}
}

// Events converts the steps into controller events. Scroll and resize steps
// carry the full measurements: the scroll position and viewport height
// accumulate across steps.
func (s *Script) Events() []lunasync.Event {
	offsets := s.Offsets()
	scrollY, viewport := 0.0, s.Viewport

	measure := func() lunasync.Measurements {
		return lunasync.Measurements{ScrollY: scrollY, ViewportHeight: viewport, Sections: offsets}
	}

	events := make([]lunasync.Event, 0, len(s.Steps))
	for _, st := range s.Steps {
		switch {
		case st.Scroll != nil:
			scrollY = *st.Scroll
			events = append(events, lunasync.ScrollEvent{Measurements: measure()})
		case st.Resize != nil:
			viewport = *st.Resize
			events = append(events, lunasync.ResizeEvent{Measurements: measure()})
		case st.ToggleMenu:
			events = append(events, lunasync.MenuToggleEvent{})
		case st.Set != nil:
			events = append(events, lunasync.FieldChangeEvent{Field: lunasync.Field(st.Set.Field), Value: st.Set.Value})
		case st.Submit:
			events = append(events, lunasync.SubmitEvent{})
		}
	}
	return events
}

// Result is the outcome of one replayed step.
type Result struct {
	Index   int            `json:"step"`
	Action  string         `json:"action"`
	Effects []string       `json:"effects,omitempty"`
	State   lunasync.State `json:"state"`
}

// Replay dispatches every step to c and calls fn with each result.
// Visibility is computed from Initial before the first step, the way a page
// checks on load; that dispatch is not reported to fn.
// It stops at the first error returned by fn.
func (s *Script) Replay(c *lunasync.Controller, fn func(Result) error) error {
	c.Scroll(s.Initial())

	for i, e := range s.Events() {
		effects := c.Dispatch(e)

		names := make([]string, 0, len(effects))
		for _, fx := range effects {
			names = append(names, lunasync.EffectName(fx))
		}

		r := Result{Index: i, Action: s.Steps[i].Name(), Effects: names, State: c.State()}
		if err := fn(r); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}
	return nil
}
