package tw

// palette holds the Tailwind colors the landing page uses, as #RRGGBB.
var palette = map[string]map[string]string{
	"gray": {
		"50": "#f9fafb", "100": "#f3f4f6", "200": "#e5e7eb", "300": "#d1d5db",
		"400": "#9ca3af", "500": "#6b7280", "600": "#4b5563", "700": "#374151",
		"800": "#1f2937", "900": "#111827",
	},
	"purple": {
		"50": "#faf5ff", "100": "#f3e8ff", "200": "#e9d5ff", "300": "#d8b4fe",
		"400": "#c084fc", "500": "#a855f7", "600": "#9333ea", "700": "#7e22ce",
		"800": "#6b21a8", "900": "#581c87",
	},
	"blue": {
		"400": "#60a5fa", "500": "#3b82f6", "600": "#2563eb",
	},
	"red": {
		"400": "#f87171", "500": "#ef4444", "600": "#dc2626",
	},
}

var (
	colorWhite       uint32 = 0xFFFFFFFF
	colorBlack       uint32 = 0x000000FF
	colorTransparent uint32 = 0x00000000
)

// lookupColor resolves "purple-600", "white", "transparent" to RGBA.
func lookupColor(name string) *uint32 {
	switch name {
	case "white":
		c := colorWhite
		return &c
	case "black":
		c := colorBlack
		return &c
	case "transparent":
		c := colorTransparent
		return &c
	}

	for i := len(name) - 1; i > 0; i-- {
		if name[i] != '-' {
			continue
		}
		shades, ok := palette[name[:i]]
		if !ok {
			return nil
		}
		hex, ok := shades[name[i+1:]]
		if !ok {
			return nil
		}
		return parseColor(hex)
	}
	return nil
}

// Hex formats an RGBA color as #RRGGBB, dropping alpha.
func Hex(rgba uint32) string {
	const digits = "0123456789abcdef"
	rgb := rgba >> 8
	out := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i := 6; i >= 1; i-- {
		out[i] = digits[rgb&0xF]
		rgb >>= 4
	}
	return string(out)
}
