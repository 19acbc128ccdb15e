package lunasync

// ============================================================================
// Events
// ============================================================================

// Event is an input delivered by the presentation surface.
// The set is closed: ScrollEvent, ResizeEvent, MenuToggleEvent,
// FieldChangeEvent and SubmitEvent.
type Event interface {
	eventName() string
}

// ScrollEvent reports new measurements after the page scrolled.
type ScrollEvent struct {
	Measurements
}

// ResizeEvent reports new measurements after the viewport changed size.
// It is reduced exactly like ScrollEvent.
type ResizeEvent struct {
	Measurements
}

// MenuToggleEvent is a press on the mobile menu button.
type MenuToggleEvent struct{}

// FieldChangeEvent carries the full new value of a form field.
type FieldChangeEvent struct {
	Field Field
	Value string
}

// SubmitEvent is a press on the form's submit button.
type SubmitEvent struct{}

func (ScrollEvent) eventName() string      { return "scroll" }
func (ResizeEvent) eventName() string      { return "resize" }
func (MenuToggleEvent) eventName() string  { return "toggle_menu" }
func (FieldChangeEvent) eventName() string { return "set_field" }
func (SubmitEvent) eventName() string      { return "submit" }

// EventName returns a short stable name for e, used in logs and replay output.
func EventName(e Event) string {
	if e == nil {
		return "<nil>"
	}
	return e.eventName()
}

// ============================================================================
// Effects
// ============================================================================

// Effect is an outcome of reducing an event that the caller must act on.
type Effect interface {
	effectName() string
}

// SubmissionAccepted is emitted when the form validated. Form holds the
// trimmed values that were cleared from the state.
type SubmissionAccepted struct {
	Form    ContactForm
	Message string
}

// SubmissionRejected is emitted when validation failed.
type SubmissionRejected struct {
	Errors FieldErrors
}

// FieldIgnored is emitted for a FieldChangeEvent naming an unknown field.
type FieldIgnored struct {
	Field Field
}

func (SubmissionAccepted) effectName() string { return "submission_accepted" }
func (SubmissionRejected) effectName() string { return "submission_rejected" }
func (FieldIgnored) effectName() string       { return "field_ignored" }

// EffectName returns a short stable name for fx.
func EffectName(fx Effect) string {
	if fx == nil {
		return "<nil>"
	}
	return fx.effectName()
}

// ============================================================================
// Reducer
// ============================================================================

// Reducer applies events to State. The zero value is not usable; use NewReducer.
type Reducer struct {
	rules   map[Field][]Validator
	success string
}

// NewReducer creates a reducer that validates with the given messages.
// Blank messages fall back to DefaultMessages.
func NewReducer(msgs Messages) Reducer {
	msgs = msgs.withDefaults()
	return Reducer{
		rules:   msgs.Rules(),
		success: msgs.Success,
	}
}

var defaultReducer = NewReducer(DefaultMessages())

// Reduce applies e to s with the default messages.
func Reduce(s State, e Event) (State, []Effect) {
	return defaultReducer.Reduce(s, e)
}

// Reduce returns the state after e together with any effects.
// s is not modified.
func (r Reducer) Reduce(s State, e Event) (State, []Effect) {
	next := s.Clone()

	switch ev := e.(type) {
	case ScrollEvent:
		next.Scroll = ComputeScroll(ev.Measurements, next.Sections)
		return next, nil

	case ResizeEvent:
		next.Scroll = ComputeScroll(ev.Measurements, next.Sections)
		return next, nil

	case MenuToggleEvent:
		next.Menu = next.Menu.Toggle()
		return next, nil

	case FieldChangeEvent:
		if !next.Form.Set(ev.Field, ev.Value) {
			return next, []Effect{FieldIgnored{Field: ev.Field}}
		}
		return next, nil

	case SubmitEvent:
		return r.submit(next)

	default:
		// Types embedding one of the events above land here; they carry no
		// behavior of their own.
		return next, nil
	}
}

// submit validates the form. On failure the values stay put and the errors
// are replaced; on success errors and values are cleared.
func (r Reducer) submit(s State) (State, []Effect) {
	errs := s.Form.Validate(r.rules)
	if len(errs) > 0 {
		s.Form.Errors = errs
		return s, []Effect{SubmissionRejected{Errors: errs.Clone()}}
	}

	accepted := s.Form.Trimmed()
	s.Form = ContactForm{}
	return s, []Effect{SubmissionAccepted{Form: accepted, Message: r.success}}
}
