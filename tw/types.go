package tw

// State represents widget interaction state
type State int

const (
	StateDefault State = iota
	StateHover
	StateFocus
)

// Breakpoint represents responsive breakpoint
type Breakpoint int

const (
	BreakpointBase Breakpoint = iota
	BreakpointSM              // ≥640px
	BreakpointMD              // ≥768px
	BreakpointLG              // ≥1024px
	BreakpointXL              // ≥1280px
	Breakpoint2XL             // ≥1536px
)

var breakpointNames = [...]string{"base", "sm", "md", "lg", "xl", "2xl"}

func (b Breakpoint) String() string {
	if b < 0 || int(b) >= len(breakpointNames) {
		return "unknown"
	}
	return breakpointNames[b]
}

// StyleProperties represents concrete style values.
// A nil field means "not set by any class".
type StyleProperties struct {
	// Colors (RGBA)
	TextColor       *uint32
	BackgroundColor *uint32
	BorderColor     *uint32

	// Typography
	FontSize   *float32
	FontWeight *int
	TextAlign  *string // "left", "center", "right"

	// Spacing
	PaddingTop    *float32
	PaddingRight  *float32
	PaddingBottom *float32
	PaddingLeft   *float32

	// Sizing
	MaxHeight *float32

	// Layout
	Display  *string // "block", "flex", "grid", "inline", "none"
	Position *string // "static", "relative", "absolute", "fixed"
	ZIndex   *int

	// Borders
	BorderWidth  *float32
	BorderRadius *float32

	// Focus ring
	RingWidth *float32
	RingColor *uint32

	// Effects
	Opacity   *float32 // 0-1
	BoxShadow *string  // "sm", "md", "lg", "xl", "2xl"

	// Transforms
	Scale      *float32
	TranslateY *float32

	// Overflow
	OverflowY *string

	// Animation
	Animation *string // "pulse", "bounce", "spin", "ping"
}

// ComputedStyles represents styles organized by state and breakpoint
type ComputedStyles struct {
	// Base styles (always apply)
	Base StyleProperties

	// State variants
	Hover StyleProperties
	Focus StyleProperties

	// Responsive variants (apply at the breakpoint width and above)
	SM  StyleProperties
	MD  StyleProperties
	LG  StyleProperties
	XL  StyleProperties
	XXL StyleProperties
}

// IsHidden reports whether the element is removed from layout.
func (s StyleProperties) IsHidden() bool {
	return s.Display != nil && *s.Display == "none"
}

// IsCollapsed reports whether the element takes no vertical space
// (max-height zero with its overflow clipped).
func (s StyleProperties) IsCollapsed() bool {
	return s.MaxHeight != nil && *s.MaxHeight == 0
}

// IsTransparent reports whether the element is fully transparent.
func (s StyleProperties) IsTransparent() bool {
	return s.Opacity != nil && *s.Opacity == 0
}

// IsBold reports whether the font weight is semibold or heavier.
func (s StyleProperties) IsBold() bool {
	return s.FontWeight != nil && *s.FontWeight >= 600
}

// Merge copies non-nil values from p.
// Later values override earlier ones (last class wins)
func (s *StyleProperties) Merge(p StyleProperties) {
	if p.TextColor != nil {
		s.TextColor = p.TextColor
	}
	if p.BackgroundColor != nil {
		s.BackgroundColor = p.BackgroundColor
	}
	if p.BorderColor != nil {
		s.BorderColor = p.BorderColor
	}
	if p.FontSize != nil {
		s.FontSize = p.FontSize
	}
	if p.FontWeight != nil {
		s.FontWeight = p.FontWeight
	}
	if p.TextAlign != nil {
		s.TextAlign = p.TextAlign
	}
	if p.PaddingTop != nil {
		s.PaddingTop = p.PaddingTop
	}
	if p.PaddingRight != nil {
		s.PaddingRight = p.PaddingRight
	}
	if p.PaddingBottom != nil {
		s.PaddingBottom = p.PaddingBottom
	}
	if p.PaddingLeft != nil {
		s.PaddingLeft = p.PaddingLeft
	}
	if p.MaxHeight != nil {
		s.MaxHeight = p.MaxHeight
	}
	if p.Display != nil {
		s.Display = p.Display
	}
	if p.Position != nil {
		s.Position = p.Position
	}
	if p.ZIndex != nil {
		s.ZIndex = p.ZIndex
	}
	if p.BorderWidth != nil {
		s.BorderWidth = p.BorderWidth
	}
	if p.BorderRadius != nil {
		s.BorderRadius = p.BorderRadius
	}
	if p.RingWidth != nil {
		s.RingWidth = p.RingWidth
	}
	if p.RingColor != nil {
		s.RingColor = p.RingColor
	}
	if p.Opacity != nil {
		s.Opacity = p.Opacity
	}
	if p.BoxShadow != nil {
		s.BoxShadow = p.BoxShadow
	}
	if p.Scale != nil {
		s.Scale = p.Scale
	}
	if p.TranslateY != nil {
		s.TranslateY = p.TranslateY
	}
	if p.OverflowY != nil {
		s.OverflowY = p.OverflowY
	}
	if p.Animation != nil {
		s.Animation = p.Animation
	}
}
