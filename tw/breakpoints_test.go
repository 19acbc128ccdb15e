package tw

import "testing"

func TestActiveBreakpoint(t *testing.T) {
	config := DefaultBreakpoints()
	tests := []struct {
		width float32
		want  Breakpoint
	}{
		{320, BreakpointBase},
		{639, BreakpointBase},
		{640, BreakpointSM},
		{767, BreakpointSM},
		{768, BreakpointMD},
		{1024, BreakpointLG},
		{1280, BreakpointXL},
		{1600, Breakpoint2XL},
	}

	for _, tt := range tests {
		if got := config.ActiveBreakpoint(tt.width); got != tt.want {
			t.Errorf("ActiveBreakpoint(%v) = %v, want %v", tt.width, got, tt.want)
		}
	}
}

func TestResolveForWidthMobileFirst(t *testing.T) {
	// Desktop navigation: hidden on phones, flex from md up.
	cs := ParseClasses("hidden md:flex")
	config := DefaultBreakpoints()

	if got := cs.ResolveForWidth(375, config); !got.IsHidden() {
		t.Error("expected hidden at 375px")
	}
	if got := cs.ResolveForWidth(768, config); got.IsHidden() {
		t.Error("expected visible at 768px")
	}

	// Mobile panel: the inverse.
	panel := ParseClasses("md:hidden max-h-64 opacity-100")
	if got := panel.ResolveForWidth(375, config); got.IsHidden() {
		t.Error("expected mobile panel visible at 375px")
	}
	if got := panel.ResolveForWidth(1280, config); !got.IsHidden() {
		t.Error("expected mobile panel hidden at 1280px")
	}
}

func TestResolveForWidthCascade(t *testing.T) {
	cs := ParseClasses("text-4xl sm:text-5xl md:text-6xl")
	config := DefaultBreakpoints()

	tests := []struct {
		width float32
		want  float32
	}{
		{320, 36},
		{700, 48},
		{900, 60},
	}
	for _, tt := range tests {
		got := cs.ResolveForWidth(tt.width, config)
		if got.FontSize == nil || *got.FontSize != tt.want {
			t.Errorf("width %v: FontSize = %v, want %v", tt.width, got.FontSize, tt.want)
		}
	}
}

func TestResolveForWidthWithState(t *testing.T) {
	cs := ParseClasses("bg-purple-600 hover:bg-purple-700")
	config := DefaultBreakpoints()

	base := cs.ResolveForWidthWithState(1024, config, StateDefault)
	hover := cs.ResolveForWidthWithState(1024, config, StateHover)

	if base.BackgroundColor == nil || hover.BackgroundColor == nil {
		t.Fatal("expected background colors")
	}
	if Hex(*base.BackgroundColor) != "#9333ea" {
		t.Errorf("base = %s", Hex(*base.BackgroundColor))
	}
	if Hex(*hover.BackgroundColor) != "#7e22ce" {
		t.Errorf("hover = %s", Hex(*hover.BackgroundColor))
	}
}

func TestResolveFocusRing(t *testing.T) {
	// Contact form input with a validation error.
	cs := ParseClasses("border rounded-lg focus:ring-2 focus:ring-purple-600 border-red-500")
	config := DefaultBreakpoints()

	base := cs.ResolveForWidthWithState(800, config, StateDefault)
	if base.RingWidth != nil || base.RingColor != nil {
		t.Error("expected no ring without focus")
	}
	if base.BorderColor == nil || Hex(*base.BorderColor) != "#ef4444" {
		t.Errorf("border = %v, want #ef4444", base.BorderColor)
	}

	focus := cs.ResolveForWidthWithState(800, config, StateFocus)
	if focus.RingWidth == nil || *focus.RingWidth != 2 {
		t.Errorf("RingWidth = %v, want 2", focus.RingWidth)
	}
	if focus.RingColor == nil || Hex(*focus.RingColor) != "#9333ea" {
		t.Errorf("RingColor = %v, want #9333ea", focus.RingColor)
	}
	if focus.BorderColor == nil || Hex(*focus.BorderColor) != "#ef4444" {
		t.Error("focus keeps the base border")
	}
}

func TestBreakpointString(t *testing.T) {
	tests := []struct {
		bp   Breakpoint
		want string
	}{
		{BreakpointBase, "base"},
		{BreakpointMD, "md"},
		{Breakpoint2XL, "2xl"},
		{Breakpoint(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.bp.String(); got != tt.want {
			t.Errorf("Breakpoint(%d).String() = %q, want %q", int(tt.bp), got, tt.want)
		}
	}
}
