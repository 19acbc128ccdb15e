package tw

import (
	"strconv"
	"strings"
)

// ParsedClass represents a class with its variant modifiers
type ParsedClass struct {
	Breakpoint Breakpoint
	State      State
	BaseClass  string
}

// ParseClasses parses a Tailwind class string and returns computed styles
// Example: "bg-purple-600 hover:bg-purple-700 md:flex hidden"
func ParseClasses(classStr string) ComputedStyles {
	var computed ComputedStyles

	for _, class := range strings.Fields(classStr) {
		parsed := parseClass(class)

		props, ok := parseUtility(parsed.BaseClass)
		if !ok {
			// Unknown class, silently ignore (like Tailwind CSS)
			continue
		}

		target := getTargetProperties(&computed, parsed)
		target.Merge(props)
	}

	return computed
}

// parseClass splits a class into variant modifiers and base utility
// "md:hover:bg-purple-700" → ParsedClass{Breakpoint: MD, State: Hover, BaseClass: "bg-purple-700"}
func parseClass(class string) ParsedClass {
	parts := strings.Split(class, ":")

	pc := ParsedClass{
		Breakpoint: BreakpointBase,
		State:      StateDefault,
		BaseClass:  parts[len(parts)-1], // Last part is always the base utility
	}

	for i := 0; i < len(parts)-1; i++ {
		switch parts[i] {
		case "hover", "group-hover":
			pc.State = StateHover
		case "focus", "focus-within":
			pc.State = StateFocus

		case "sm":
			pc.Breakpoint = BreakpointSM
		case "md":
			pc.Breakpoint = BreakpointMD
		case "lg":
			pc.Breakpoint = BreakpointLG
		case "xl":
			pc.Breakpoint = BreakpointXL
		case "2xl":
			pc.Breakpoint = Breakpoint2XL
		}
	}

	return pc
}

// getTargetProperties returns the bucket a parsed class writes into.
// Responsive variants take precedence over state: md:hover:x lands in MD.
func getTargetProperties(computed *ComputedStyles, parsed ParsedClass) *StyleProperties {
	switch parsed.Breakpoint {
	case BreakpointSM:
		return &computed.SM
	case BreakpointMD:
		return &computed.MD
	case BreakpointLG:
		return &computed.LG
	case BreakpointXL:
		return &computed.XL
	case Breakpoint2XL:
		return &computed.XXL
	}

	switch parsed.State {
	case StateHover:
		return &computed.Hover
	case StateFocus:
		return &computed.Focus
	default:
		return &computed.Base
	}
}

// keywordClasses are utilities with no numeric or color component.
var keywordClasses = map[string]StyleProperties{
	"hidden":       {Display: str("none")},
	"block":        {Display: str("block")},
	"inline":       {Display: str("inline")},
	"inline-block": {Display: str("inline-block")},
	"flex":         {Display: str("flex")},
	"grid":         {Display: str("grid")},

	"static":   {Position: str("static")},
	"relative": {Position: str("relative")},
	"absolute": {Position: str("absolute")},
	"fixed":    {Position: str("fixed")},

	"shadow":     {BoxShadow: str("sm")},
	"shadow-sm":  {BoxShadow: str("sm")},
	"shadow-md":  {BoxShadow: str("md")},
	"shadow-lg":  {BoxShadow: str("lg")},
	"shadow-xl":  {BoxShadow: str("xl")},
	"shadow-2xl": {BoxShadow: str("2xl")},

	"font-normal":   {FontWeight: intp(400)},
	"font-medium":   {FontWeight: intp(500)},
	"font-semibold": {FontWeight: intp(600)},
	"font-bold":     {FontWeight: intp(700)},

	"text-left":   {TextAlign: str("left")},
	"text-center": {TextAlign: str("center")},
	"text-right":  {TextAlign: str("right")},

	"text-xs":   {FontSize: f32(12)},
	"text-sm":   {FontSize: f32(14)},
	"text-base": {FontSize: f32(16)},
	"text-lg":   {FontSize: f32(18)},
	"text-xl":   {FontSize: f32(20)},
	"text-2xl":  {FontSize: f32(24)},
	"text-3xl":  {FontSize: f32(30)},
	"text-4xl":  {FontSize: f32(36)},
	"text-5xl":  {FontSize: f32(48)},
	"text-6xl":  {FontSize: f32(60)},

	"border":   {BorderWidth: f32(1)},
	"border-0": {BorderWidth: f32(0)},
	"border-2": {BorderWidth: f32(2)},
	"border-4": {BorderWidth: f32(4)},

	"ring":   {RingWidth: f32(3)},
	"ring-0": {RingWidth: f32(0)},
	"ring-1": {RingWidth: f32(1)},
	"ring-2": {RingWidth: f32(2)},
	"ring-4": {RingWidth: f32(4)},

	"rounded":      {BorderRadius: f32(4)},
	"rounded-md":   {BorderRadius: f32(6)},
	"rounded-lg":   {BorderRadius: f32(8)},
	"rounded-xl":   {BorderRadius: f32(12)},
	"rounded-2xl":  {BorderRadius: f32(16)},
	"rounded-full": {BorderRadius: f32(9999)},

	"overflow-hidden":  {OverflowY: str("hidden")},
	"overflow-visible": {OverflowY: str("visible")},
	"overflow-auto":    {OverflowY: str("auto")},

	"animate-pulse":  {Animation: str("pulse")},
	"animate-bounce": {Animation: str("bounce")},
	"animate-spin":   {Animation: str("spin")},
	"animate-ping":   {Animation: str("ping")},
	"animate-none":   {Animation: str("none")},
}

// parseUtility resolves a single base utility.
func parseUtility(base string) (StyleProperties, bool) {
	if props, ok := keywordClasses[base]; ok {
		return props, true
	}

	negative := strings.HasPrefix(base, "-")
	name := strings.TrimPrefix(base, "-")

	switch {
	case strings.HasPrefix(name, "opacity-"):
		if v := parseNumber(name[len("opacity-"):]); v != nil {
			return StyleProperties{Opacity: f32(*v / 100)}, true
		}

	case strings.HasPrefix(name, "translate-y-"):
		if v := parseSpacing(name[len("translate-y-"):]); v != nil {
			if negative {
				*v = -*v
			}
			return StyleProperties{TranslateY: v}, true
		}

	case strings.HasPrefix(name, "max-h-"):
		if v := parseSpacing(name[len("max-h-"):]); v != nil {
			return StyleProperties{MaxHeight: v}, true
		}

	case strings.HasPrefix(name, "scale-"):
		raw := name[len("scale-"):]
		if isArbitrary(raw) {
			if v := parseNumber(unwrapArbitrary(raw)); v != nil {
				return StyleProperties{Scale: v}, true
			}
		} else if v := parseNumber(raw); v != nil {
			return StyleProperties{Scale: f32(*v / 100)}, true
		}

	case strings.HasPrefix(name, "z-"):
		if n, err := strconv.Atoi(name[len("z-"):]); err == nil {
			return StyleProperties{ZIndex: intp(n)}, true
		}

	case strings.HasPrefix(name, "bg-"):
		if c := lookupColor(name[len("bg-"):]); c != nil {
			return StyleProperties{BackgroundColor: c}, true
		}

	case strings.HasPrefix(name, "text-"):
		if c := lookupColor(name[len("text-"):]); c != nil {
			return StyleProperties{TextColor: c}, true
		}

	case strings.HasPrefix(name, "border-"):
		if c := lookupColor(name[len("border-"):]); c != nil {
			return StyleProperties{BorderColor: c}, true
		}

	case strings.HasPrefix(name, "ring-"):
		if c := lookupColor(name[len("ring-"):]); c != nil {
			return StyleProperties{RingColor: c}, true
		}

	case strings.HasPrefix(name, "p"):
		return parsePadding(name)
	}

	return StyleProperties{}, false
}

// parsePadding handles p-, px-, py-, pt-, pr-, pb- and pl-.
func parsePadding(name string) (StyleProperties, bool) {
	dash := strings.IndexByte(name, '-')
	if dash < 0 {
		return StyleProperties{}, false
	}
	v := parseSpacing(name[dash+1:])
	if v == nil {
		return StyleProperties{}, false
	}

	var props StyleProperties
	switch name[:dash] {
	case "p":
		props.PaddingTop, props.PaddingRight, props.PaddingBottom, props.PaddingLeft = v, v, v, v
	case "px":
		props.PaddingRight, props.PaddingLeft = v, v
	case "py":
		props.PaddingTop, props.PaddingBottom = v, v
	case "pt":
		props.PaddingTop = v
	case "pr":
		props.PaddingRight = v
	case "pb":
		props.PaddingBottom = v
	case "pl":
		props.PaddingLeft = v
	default:
		return StyleProperties{}, false
	}
	return props, true
}

// parseSpacing converts a spacing scale step to pixels (1 step = 4px).
// Arbitrary values like [22px] are taken as pixels.
func parseSpacing(value string) *float32 {
	if isArbitrary(value) {
		return parseDimension(unwrapArbitrary(value))
	}
	v := parseNumber(value)
	if v == nil {
		return nil
	}
	px := *v * 4
	return &px
}

// parseDimension parses "12px", "1.5rem" or a plain number as pixels.
func parseDimension(value string) *float32 {
	value = strings.TrimSpace(value)
	multiplier := float32(1)
	switch {
	case strings.HasSuffix(value, "px"):
		value = strings.TrimSuffix(value, "px")
	case strings.HasSuffix(value, "rem"):
		value = strings.TrimSuffix(value, "rem")
		multiplier = 16 // 1rem = 16px
	}
	v := parseNumber(value)
	if v == nil {
		return nil
	}
	px := *v * multiplier
	return &px
}

// parseColor parses #RRGGBB or #RGB into RGBA.
func parseColor(value string) *uint32 {
	hex := strings.TrimPrefix(strings.TrimSpace(value), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return nil
	}
	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil
	}
	color := uint32(rgb)<<8 | 0xFF
	return &color
}

func parseNumber(value string) *float32 {
	v, err := strconv.ParseFloat(value, 32)
	if err != nil {
		return nil
	}
	return f32(float32(v))
}

func isArbitrary(value string) bool {
	return strings.HasPrefix(value, "[") && strings.HasSuffix(value, "]")
}

func unwrapArbitrary(value string) string {
	return strings.TrimSuffix(strings.TrimPrefix(value, "["), "]")
}

func str(s string) *string   { return &s }
func intp(n int) *int        { return &n }
func f32(v float32) *float32 { return &v }
