package lunasync

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type recordingNotifier struct {
	acks []Acknowledgement
}

func (r *recordingNotifier) Acknowledge(ack Acknowledgement) {
	r.acks = append(r.acks, ack)
}

func newTestController(t *testing.T) (*Controller, *recordingNotifier, *observer.ObservedLogs) {
	t.Helper()

	core, logs := observer.New(zapcore.DebugLevel)
	notifier := &recordingNotifier{}
	fixedID := uuid.MustParse("6f1c2b4e-8a51-4c3e-9d2a-0b7e5f3a1c90")
	fixedTime := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	c := NewController(ControllerConfig{
		Sections: testSections,
		Logger:   zap.New(core),
		Notifier: notifier,
		Clock:    func() time.Time { return fixedTime },
		NewID:    func() uuid.UUID { return fixedID },
	})
	return c, notifier, logs
}

func TestControllerSubmitAcknowledges(t *testing.T) {
	c, notifier, _ := newTestController(t)

	c.SetField(FieldName, "Ada Lovelace")
	c.SetField(FieldEmail, " ada@example.com ")
	c.SetField(FieldMessage, "Hello")

	require.True(t, c.Submit())
	require.Len(t, notifier.acks, 1)

	ack := notifier.acks[0]
	assert.Equal(t, "6f1c2b4e-8a51-4c3e-9d2a-0b7e5f3a1c90", ack.ID.String())
	assert.Equal(t, 2024, ack.At.Year())
	assert.Equal(t, "Message sent successfully!", ack.Message)
	assert.Equal(t, "ada@example.com", ack.Form.Email)

	assert.Equal(t, ContactForm{}, c.State().Form)
}

func TestControllerRejectedSubmitLogs(t *testing.T) {
	c, notifier, logs := newTestController(t)

	c.SetField(FieldName, "Ada")
	assert.False(t, c.Submit())
	assert.Empty(t, notifier.acks)

	rejected := logs.FilterMessage("contact form rejected").All()
	require.Len(t, rejected, 1)
	assert.Equal(t, zapcore.InfoLevel, rejected[0].Level)
	assert.Equal(t, []interface{}{"email", "message"}, rejected[0].ContextMap()["fields"])

	st := c.State()
	assert.Equal(t, "Ada", st.Form.Name)
	assert.True(t, st.Form.Errors.Has(FieldEmail))
}

func TestControllerUnknownFieldWarns(t *testing.T) {
	c, _, logs := newTestController(t)

	c.SetField("phone", "555")

	warned := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, warned, 1)
	assert.Equal(t, "phone", warned[0].ContextMap()["field"])
}

func TestControllerLogsEveryEvent(t *testing.T) {
	c, _, logs := newTestController(t)

	c.ToggleMenu()
	c.Scroll(Measurements{ScrollY: 80, ViewportHeight: 600})
	c.Resize(Measurements{ScrollY: 80, ViewportHeight: 900})

	dispatched := logs.FilterMessage("event dispatched").All()
	require.Len(t, dispatched, 3)
	assert.Equal(t, "toggle_menu", dispatched[0].ContextMap()["event"])
	assert.Equal(t, "scroll", dispatched[1].ContextMap()["event"])
	assert.Equal(t, true, dispatched[2].ContextMap()["past_threshold"])
}

func TestControllerSubscribe(t *testing.T) {
	c, _, _ := newTestController(t)

	var snapshots []State
	c.Subscribe(func(s State) { snapshots = append(snapshots, s) })

	c.ToggleMenu()
	c.ToggleMenu()

	require.Len(t, snapshots, 2)
	assert.True(t, snapshots[0].Menu.Open)
	assert.False(t, snapshots[1].Menu.Open)
}

func TestControllerStateIsSnapshot(t *testing.T) {
	c, _, _ := newTestController(t)

	s := c.State()
	s.Scroll.Visible["features"] = true
	s.Form.Name = "mutated"

	fresh := c.State()
	assert.False(t, fresh.Scroll.Visible["features"])
	assert.Empty(t, fresh.Form.Name)
}

func TestControllerDefaults(t *testing.T) {
	c := NewController(ControllerConfig{Sections: []string{"features"}})

	c.SetField(FieldName, "Ada")
	c.SetField(FieldEmail, "ada@example.com")
	c.SetField(FieldMessage, "Hi")

	assert.True(t, c.Submit())
}

func TestLogNotifier(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	n := LogNotifier{Logger: zap.New(core)}

	n.Acknowledge(Acknowledgement{
		ID:      uuid.New(),
		Message: "Message sent successfully!",
		Form:    ContactForm{Name: "Ada", Email: "ada@example.com", Message: "Hello"},
	})

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Message sent successfully!", entries[0].Message)
	assert.Equal(t, int64(5), entries[0].ContextMap()["message_length"])

	// A notifier without a logger is a no-op.
	LogNotifier{}.Acknowledge(Acknowledgement{})
}

func TestNotifierFunc(t *testing.T) {
	var got string
	n := NotifierFunc(func(ack Acknowledgement) { got = ack.Message })

	n.Acknowledge(Acknowledgement{Message: "ok"})

	assert.Equal(t, "ok", got)
}
