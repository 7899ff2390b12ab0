package mac

import (
	"fmt"
	"image/color"
	"math"
)

// Colormap names a color scheme for heatmap rendering.
type Colormap string

const (
	ColormapViridis  Colormap = "viridis"
	ColormapPlasma   Colormap = "plasma"
	ColormapCoolwarm Colormap = "coolwarm"
	ColormapGray     Colormap = "gray"
)

// DisplayConfig controls how a MAC matrix is rendered. Unlike the engine's
// Config, invalid display options are never fatal: Render substitutes the
// documented default for each unrecognized or out-of-range value and records
// the substitution on the returned Figure. Display options never reach the
// engine and never alter numeric results.
type DisplayConfig struct {
	// Colormap selects the heatmap color scheme. Recognized: "viridis",
	// "plasma", "coolwarm", "gray". Default: "viridis".
	Colormap Colormap

	// RowLabels and ColLabels name the modes of the first and second set
	// (matrix rows and columns). When absent or of the wrong length, modes
	// are labeled "1".."N". Default: auto-numbered.
	RowLabels []string
	ColLabels []string

	// FontSize scales the rendered artifacts (heatmap cell size in pixels
	// derives from it). Valid range 4..72. Default: 10.
	FontSize int

	// Views selects how many artifacts to render: 1 for the heatmap only,
	// 2 for the heatmap plus the annotated table view. Default: 2.
	Views int

	// HideValues suppresses numeric value labels in the table view; the
	// table then shows shade characters instead of numbers. Default: false
	// (values shown).
	HideValues bool
}

// DefaultDisplayConfig returns the display defaults.
func DefaultDisplayConfig() DisplayConfig {
	return DisplayConfig{
		Colormap: ColormapViridis,
		FontSize: 10,
		Views:    2,
	}
}

// normalizeDisplay replaces invalid display options with their defaults and
// reports one note per substitution. rows and cols are the matrix dimensions
// the labels must cover. The zero-valued fields of DisplayConfig{} normalize
// silently to the defaults; only genuinely invalid values produce notes.
func normalizeDisplay(cfg DisplayConfig, rows, cols int) (DisplayConfig, []string) {
	var notes []string

	switch cfg.Colormap {
	case ColormapViridis, ColormapPlasma, ColormapCoolwarm, ColormapGray:
	case "":
		cfg.Colormap = ColormapViridis
	default:
		notes = append(notes, fmt.Sprintf("unrecognized colormap %q, using %q", cfg.Colormap, ColormapViridis))
		cfg.Colormap = ColormapViridis
	}

	if cfg.FontSize == 0 {
		cfg.FontSize = 10
	} else if cfg.FontSize < 4 || cfg.FontSize > 72 {
		notes = append(notes, fmt.Sprintf("font size %d outside [4,72], using 10", cfg.FontSize))
		cfg.FontSize = 10
	}

	if cfg.Views == 0 {
		cfg.Views = 2
	} else if cfg.Views != 1 && cfg.Views != 2 {
		notes = append(notes, fmt.Sprintf("views must be 1 or 2, got %d, using 2", cfg.Views))
		cfg.Views = 2
	}

	if cfg.RowLabels == nil {
		cfg.RowLabels = numberedLabels(rows)
	} else if len(cfg.RowLabels) != rows {
		notes = append(notes, fmt.Sprintf("got %d row labels for %d modes, using numbered labels", len(cfg.RowLabels), rows))
		cfg.RowLabels = numberedLabels(rows)
	}
	if cfg.ColLabels == nil {
		cfg.ColLabels = numberedLabels(cols)
	} else if len(cfg.ColLabels) != cols {
		notes = append(notes, fmt.Sprintf("got %d column labels for %d modes, using numbered labels", len(cfg.ColLabels), cols))
		cfg.ColLabels = numberedLabels(cols)
	}

	return cfg, notes
}

// numberedLabels returns the default mode labels "1".."n".
func numberedLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("%d", i+1)
	}
	return labels
}

// colorAt maps a MAC value in [0, 1] to a color under the given colormap.
// Values are clamped to [0, 1]; NaN maps to a fixed light gray so degenerate
// entries are visually distinct from any valid value.
func colorAt(m Colormap, v float64) color.RGBA {
	if math.IsNaN(v) {
		return color.RGBA{R: 0xd0, G: 0xd0, B: 0xd0, A: 0xff}
	}
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	switch m {
	case ColormapPlasma:
		return lerpStops(plasmaStops[:], v)
	case ColormapCoolwarm:
		return lerpStops(coolwarmStops[:], v)
	case ColormapGray:
		g := uint8(math.Round(v * 255))
		return color.RGBA{R: g, G: g, B: g, A: 0xff}
	default:
		return lerpStops(viridisStops[:], v)
	}
}

// Colormap anchor points, evenly spaced over [0, 1].
var (
	viridisStops = [5]color.RGBA{
		{R: 0x44, G: 0x01, B: 0x54, A: 0xff},
		{R: 0x3b, G: 0x52, B: 0x8b, A: 0xff},
		{R: 0x21, G: 0x91, B: 0x8c, A: 0xff},
		{R: 0x5e, G: 0xc9, B: 0x62, A: 0xff},
		{R: 0xfd, G: 0xe7, B: 0x25, A: 0xff},
	}
	plasmaStops = [5]color.RGBA{
		{R: 0x0d, G: 0x08, B: 0x87, A: 0xff},
		{R: 0x7e, G: 0x03, B: 0xa8, A: 0xff},
		{R: 0xcc, G: 0x47, B: 0x78, A: 0xff},
		{R: 0xf8, G: 0x96, B: 0x41, A: 0xff},
		{R: 0xf0, G: 0xf9, B: 0x21, A: 0xff},
	}
	coolwarmStops = [5]color.RGBA{
		{R: 0x3b, G: 0x4c, B: 0xc0, A: 0xff},
		{R: 0x90, G: 0xb0, B: 0xfe, A: 0xff},
		{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff},
		{R: 0xf4, G: 0x98, B: 0x7a, A: 0xff},
		{R: 0xb4, G: 0x04, B: 0x26, A: 0xff},
	}
)

// lerpStops linearly interpolates between evenly spaced color stops.
func lerpStops(stops []color.RGBA, v float64) color.RGBA {
	segs := len(stops) - 1
	pos := v * float64(segs)
	k := int(pos)
	if k >= segs {
		return stops[segs]
	}
	t := pos - float64(k)
	a, b := stops[k], stops[k+1]
	return color.RGBA{
		R: lerpChan(a.R, b.R, t),
		G: lerpChan(a.G, b.G, t),
		B: lerpChan(a.B, b.B, t),
		A: 0xff,
	}
}

func lerpChan(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}
