package lunasync

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Acknowledgement is delivered to the Notifier after a successful submit.
type Acknowledgement struct {
	ID      uuid.UUID   `json:"id"`
	At      time.Time   `json:"at"`
	Message string      `json:"message"`
	Form    ContactForm `json:"form"`
}

// Notifier tells the user their message was sent. How is up to the surface:
// a flash banner, a log line, a dialog.
type Notifier interface {
	Acknowledge(ack Acknowledgement)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ack Acknowledgement)

// Acknowledge calls f(ack).
func (f NotifierFunc) Acknowledge(ack Acknowledgement) {
	f(ack)
}

// LogNotifier acknowledges submissions by logging them.
type LogNotifier struct {
	Logger *zap.Logger
}

// Acknowledge logs the acknowledgement at info level.
func (n LogNotifier) Acknowledge(ack Acknowledgement) {
	if n.Logger == nil {
		return
	}
	n.Logger.Info(ack.Message,
		zap.String("submission_id", ack.ID.String()),
		zap.String("name", ack.Form.Name),
		zap.String("email", ack.Form.Email),
		zap.Int("message_length", len(ack.Form.Message)),
	)
}

// ControllerConfig configures a Controller.
type ControllerConfig struct {
	// Sections are the registered section IDs. Required.
	Sections []string

	// Messages overrides the validation and success copy.
	Messages Messages

	// Logger receives debug traces of every event. Default: zap.NewNop()
	Logger *zap.Logger

	// Notifier receives acknowledgements. Default: LogNotifier on Logger.
	Notifier Notifier

	// Clock and NewID stamp acknowledgements. Defaults: time.Now, uuid.New.
	Clock func() time.Time
	NewID func() uuid.UUID
}

// Controller owns the page state and feeds events through the reducer.
// It is not safe for concurrent use: events are expected one at a time from
// a single event loop.
type Controller struct {
	state     State
	reducer   Reducer
	logger    *zap.Logger
	notifier  Notifier
	clock     func() time.Time
	newID     func() uuid.UUID
	listeners []func(State)
}

// NewController creates a controller with a fresh state.
func NewController(config ControllerConfig) *Controller {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	notifier := config.Notifier
	if notifier == nil {
		notifier = LogNotifier{Logger: logger}
	}
	clock := config.Clock
	if clock == nil {
		clock = time.Now
	}
	newID := config.NewID
	if newID == nil {
		newID = uuid.New
	}

	return &Controller{
		state:    NewState(config.Sections),
		reducer:  NewReducer(config.Messages),
		logger:   logger,
		notifier: notifier,
		clock:    clock,
		newID:    newID,
	}
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	return c.state.Clone()
}

// Subscribe registers fn to receive a snapshot after every dispatched event.
func (c *Controller) Subscribe(fn func(State)) {
	c.listeners = append(c.listeners, fn)
}

// Dispatch applies e and returns the resulting effects.
func (c *Controller) Dispatch(e Event) []Effect {
	next, effects := c.reducer.Reduce(c.state, e)
	c.state = next

	c.logger.Debug("event dispatched",
		zap.String("event", EventName(e)),
		zap.Bool("past_threshold", next.Scroll.PastThreshold),
		zap.Bool("menu_open", next.Menu.Open),
	)

	for _, fx := range effects {
		c.handle(fx)
	}

	if len(c.listeners) > 0 {
		snapshot := c.State()
		for _, fn := range c.listeners {
			fn(snapshot)
		}
	}

	return effects
}

// handle reacts to a single effect.
func (c *Controller) handle(fx Effect) {
	switch v := fx.(type) {
	case SubmissionAccepted:
		ack := Acknowledgement{
			ID:      c.newID(),
			At:      c.clock(),
			Message: v.Message,
			Form:    v.Form,
		}
		c.notifier.Acknowledge(ack)

	case SubmissionRejected:
		fields := make([]string, 0, len(v.Errors))
		for _, err := range v.Errors.Ordered() {
			fields = append(fields, string(err.Field))
		}
		c.logger.Info("contact form rejected", zap.Strings("fields", fields))

	case FieldIgnored:
		c.logger.Warn("ignoring change to unknown field", zap.String("field", string(v.Field)))
	}
}

// Scroll dispatches a ScrollEvent.
func (c *Controller) Scroll(m Measurements) {
	c.Dispatch(ScrollEvent{Measurements: m})
}

// Resize dispatches a ResizeEvent.
func (c *Controller) Resize(m Measurements) {
	c.Dispatch(ResizeEvent{Measurements: m})
}

// ToggleMenu dispatches a MenuToggleEvent.
func (c *Controller) ToggleMenu() {
	c.Dispatch(MenuToggleEvent{})
}

// SetField dispatches a FieldChangeEvent.
func (c *Controller) SetField(f Field, value string) {
	c.Dispatch(FieldChangeEvent{Field: f, Value: value})
}

// Submit dispatches a SubmitEvent and reports whether the form was accepted.
func (c *Controller) Submit() bool {
	for _, fx := range c.Dispatch(SubmitEvent{}) {
		if _, ok := fx.(SubmissionAccepted); ok {
			return true
		}
	}
	return false
}
