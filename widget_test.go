package lunasync

import (
	"encoding/json"
	"testing"

	"github.com/agiangrant/lunasync/tw"
)

func TestWidgetCreation(t *testing.T) {
	tests := []struct {
		name     string
		widget   Widget
		wantKind WidgetKind
	}{
		{
			name:     "Section",
			widget:   Section("pricing", "py-20"),
			wantKind: WidgetSection,
		},
		{
			name:     "Heading",
			widget:   Heading(2, "Pricing", "text-3xl"),
			wantKind: WidgetHeading,
		},
		{
			name:     "Text",
			widget:   Text("Hello", "text-lg"),
			wantKind: WidgetText,
		},
		{
			name:     "Button",
			widget:   Button("Click", "bg-purple-600"),
			wantKind: WidgetButton,
		},
		{
			name:     "TextField",
			widget:   TextField(FieldEmail, "email", "", "border"),
			wantKind: WidgetTextField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.widget.Kind != tt.wantKind {
				t.Errorf("widget.Kind = %v, want %v", tt.widget.Kind, tt.wantKind)
			}
		})
	}
}

func TestHeadingLevelClamped(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{0, "1"},
		{1, "1"},
		{2, "2"},
		{3, "3"},
		{6, "3"},
	}

	for _, tt := range tests {
		if got := Heading(tt.level, "x", "").Attr(AttrLevel); got != tt.want {
			t.Errorf("Heading(%d) level = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestWidgetWithClasses(t *testing.T) {
	widget := NewWidget(WidgetButton).
		WithClasses("bg-purple-600 hover:bg-purple-700 text-white px-4 py-2 rounded")

	styles := widget.ComputedStyles()

	if styles.Base.BackgroundColor == nil {
		t.Error("expected base background color to be set")
	}
	if styles.Hover.BackgroundColor == nil {
		t.Error("expected hover background color to be set")
	}
	if styles.Base.PaddingLeft == nil || *styles.Base.PaddingLeft != 16 {
		t.Errorf("PaddingLeft = %v, want 16", styles.Base.PaddingLeft)
	}
}

func TestWidgetResolvedStyles(t *testing.T) {
	w := Container("hidden md:flex")
	bp := tw.DefaultBreakpoints()

	if !w.ResolvedStyles(375, bp).IsHidden() {
		t.Error("expected hidden on a phone")
	}
	if w.ResolvedStyles(800, bp).IsHidden() {
		t.Error("expected visible from md up")
	}
}

func TestWidgetChildren(t *testing.T) {
	parent := Container("flex flex-col",
		Text("Child 1", "text-lg"),
		Text("Child 2", "text-sm"),
		Button("Click", "bg-purple-600"),
	)

	if len(parent.Children) != 3 {
		t.Errorf("expected 3 children, got %d", len(parent.Children))
	}
}

func TestWidgetSerialization(t *testing.T) {
	widget := Section("contact", "py-20",
		TextField(FieldName, "text", "Ada", "border"),
	)

	jsonStr, err := widget.ToJSON()
	if err != nil {
		t.Fatalf("failed to serialize widget: %v", err)
	}

	var decoded Widget
	if err := json.Unmarshal([]byte(jsonStr), &decoded); err != nil {
		t.Fatalf("failed to deserialize widget: %v", err)
	}

	if decoded.ID != "contact" {
		t.Errorf("ID = %q, want %q", decoded.ID, "contact")
	}
	if len(decoded.Children) != 1 || decoded.Children[0].Attr(AttrValue) != "Ada" {
		t.Errorf("children did not round trip: %+v", decoded.Children)
	}
}

func TestWidgetFind(t *testing.T) {
	submit := Button("Send", "")
	submit.WithAttr(AttrAction, ActionSubmit)

	tree := Page("",
		Section("features", ""),
		Section("contact", "",
			Form("", TextArea(FieldMessage, "", 4, ""), submit),
		),
	)

	if w, ok := tree.FindByID("contact"); !ok || w.Kind != WidgetSection {
		t.Errorf("FindByID(contact) = %v, %v", w.Kind, ok)
	}
	if _, ok := tree.FindByID("pricing"); ok {
		t.Error("FindByID(pricing) should not match")
	}
	if w, ok := tree.FindByAction(ActionSubmit); !ok || w.Text != "Send" {
		t.Errorf("FindByAction(submit) = %q, %v", w.Text, ok)
	}
}

func TestWidgetWalkSkipsChildren(t *testing.T) {
	tree := Page("",
		Section("features", "", Text("inside", "")),
		Text("outside", ""),
	)

	var texts []string
	tree.Walk(func(w Widget) bool {
		if w.Kind == WidgetText {
			texts = append(texts, w.Text)
		}
		return w.Kind != WidgetSection
	})

	if len(texts) != 1 || texts[0] != "outside" {
		t.Errorf("texts = %v, want [outside]", texts)
	}
}

func TestBuilderPattern(t *testing.T) {
	widget := NewWidget(WidgetLink).
		WithClasses("text-gray-600").
		WithText("Pricing").
		WithAttr(AttrHref, "#pricing")

	if widget.Classes != "text-gray-600" {
		t.Errorf("Classes = %q", widget.Classes)
	}
	if widget.Text != "Pricing" {
		t.Errorf("Text = %q", widget.Text)
	}
	if widget.Attr(AttrHref) != "#pricing" {
		t.Errorf("href = %q", widget.Attr(AttrHref))
	}
}

func TestAddChild(t *testing.T) {
	list := NewWidget(WidgetList)
	list.AddChild(ListItem("", Span("one", "")))
	list.AddChild(ListItem("", Span("two", "")))

	if len(list.Children) != 2 {
		t.Errorf("expected 2 children, got %d", len(list.Children))
	}
}

func BenchmarkBuildPage(b *testing.B) {
	c := DefaultContent()
	s := NewState(c.SectionIDs())
	s.Menu.Open = true

	for i := 0; i < b.N; i++ {
		_ = BuildPage(s, c, ViewOptions{Year: 2024})
	}
}

func BenchmarkWidgetSerialization(b *testing.B) {
	c := DefaultContent()
	page := BuildPage(NewState(c.SectionIDs()), c, ViewOptions{})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = page.ToJSON()
	}
}
