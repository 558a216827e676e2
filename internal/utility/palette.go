package utility

import (
	"fmt"
	"strconv"
	"strings"
)

var shades = []string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900", "950"}

// palette holds hex values per family, indexed like shades.
// A bare family name ("text-red") resolves to the 400 shade.
var palette = map[string][11]string{
	"slate":  {"#f8fafc", "#f1f5f9", "#e2e8f0", "#cbd5e1", "#94a3b8", "#64748b", "#475569", "#334155", "#1e293b", "#0f172a", "#020617"},
	"gray":   {"#f9fafb", "#f3f4f6", "#e5e7eb", "#d1d5db", "#9ca3af", "#6b7280", "#4b5563", "#374151", "#1f2937", "#111827", "#030712"},
	"red":    {"#fef2f2", "#fee2e2", "#fecaca", "#fca5a5", "#f87171", "#ef4444", "#dc2626", "#b91c1c", "#991b1b", "#7f1d1d", "#450a0a"},
	"green":  {"#f0fdf4", "#dcfce7", "#bbf7d0", "#86efac", "#4ade80", "#22c55e", "#16a34a", "#15803d", "#166534", "#14532d", "#052e16"},
	"blue":   {"#eff6ff", "#dbeafe", "#bfdbfe", "#93c5fd", "#60a5fa", "#3b82f6", "#2563eb", "#1d4ed8", "#1e40af", "#1e3a8a", "#172554"},
	"violet": {"#f5f3ff", "#ede9fe", "#ddd6fe", "#c4b5fd", "#a78bfa", "#8b5cf6", "#7c3aed", "#6d28d9", "#5b21b6", "#4c1d95", "#2e1065"},
}

const defaultShade = 4

var namedColors = map[string]string{
	"black":       "#000000",
	"white":       "#ffffff",
	"transparent": "transparent",
	"current":     "currentColor",
}

// colors flattens the palette into "red-500" → "#ef4444" entries
func colors() map[string]string {
	out := make(map[string]string, len(palette)*(len(shades)+1)+len(namedColors))
	for family, values := range palette {
		out[family] = values[defaultShade]
		for i, shade := range shades {
			out[family+"-"+shade] = values[i]
		}
	}
	for name, value := range namedColors {
		out[name] = value
	}
	return out
}

// withAlpha renders a hex color with an opacity percentage as rgb()
func withAlpha(hex string, percent string) (string, bool) {
	if !strings.HasPrefix(hex, "#") || len(hex) != 7 {
		return "", false
	}
	p, err := strconv.Atoi(percent)
	if err != nil || p < 0 || p > 100 {
		return "", false
	}
	rgb, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return "", false
	}
	r, g, b := rgb>>16&0xff, rgb>>8&0xff, rgb&0xff
	return fmt.Sprintf("rgb(%d %d %d / %s)", r, g, b, strconv.FormatFloat(float64(p)/100, 'f', -1, 64)), true
}
