package tw

// BreakpointConfig holds the pixel thresholds for responsive breakpoints.
// Tailwind uses mobile-first design: styles apply at the breakpoint width and above.
type BreakpointConfig struct {
	SM  float32 `toml:"sm"`  // ≥640px by default
	MD  float32 `toml:"md"`  // ≥768px by default
	LG  float32 `toml:"lg"`  // ≥1024px by default
	XL  float32 `toml:"xl"`  // ≥1280px by default
	XXL float32 `toml:"2xl"` // ≥1536px by default (2xl)
}

// DefaultBreakpoints returns the standard Tailwind CSS breakpoint values.
func DefaultBreakpoints() BreakpointConfig {
	return BreakpointConfig{
		SM:  640,
		MD:  768,
		LG:  1024,
		XL:  1280,
		XXL: 1536,
	}
}

// ActiveBreakpoint returns which breakpoint is currently active for a given width.
// Returns the highest breakpoint that the width satisfies.
func (c BreakpointConfig) ActiveBreakpoint(width float32) Breakpoint {
	switch {
	case width >= c.XXL:
		return Breakpoint2XL
	case width >= c.XL:
		return BreakpointXL
	case width >= c.LG:
		return BreakpointLG
	case width >= c.MD:
		return BreakpointMD
	case width >= c.SM:
		return BreakpointSM
	}
	return BreakpointBase
}

// ResolveForWidth merges styles from base up through the active breakpoint.
// Mobile-first cascade: base → sm → md → lg → xl → 2xl
func (cs *ComputedStyles) ResolveForWidth(width float32, config BreakpointConfig) StyleProperties {
	result := cs.Base

	if width >= config.SM {
		result.Merge(cs.SM)
	}
	if width >= config.MD {
		result.Merge(cs.MD)
	}
	if width >= config.LG {
		result.Merge(cs.LG)
	}
	if width >= config.XL {
		result.Merge(cs.XL)
	}
	if width >= config.XXL {
		result.Merge(cs.XXL)
	}

	return result
}

// ResolveForWidthWithState merges styles for both breakpoint and interactive state.
// Order: base → breakpoint styles → state styles
func (cs *ComputedStyles) ResolveForWidthWithState(width float32, config BreakpointConfig, state State) StyleProperties {
	result := cs.ResolveForWidth(width, config)

	switch state {
	case StateHover:
		result.Merge(cs.Hover)
	case StateFocus:
		result.Merge(cs.Focus)
	}

	return result
}

// Resolve parses classes and resolves them for width with the default breakpoints.
func Resolve(classes string, width float32) StyleProperties {
	cs := ParseClasses(classes)
	return cs.ResolveForWidth(width, DefaultBreakpoints())
}
