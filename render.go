package mac

import (
	"fmt"
	"image"
	"math"
	"strings"
)

// Figure holds the rendered artifacts for a MAC matrix.
type Figure struct {
	// Heatmap is the raster view of the matrix, row 0 at the top, colored
	// per the configured colormap. Always present. Encode it with
	// image/png or any other stdlib encoder.
	Heatmap image.Image

	// Table is the annotated text view: axis labels plus either numeric
	// values or shade characters per cell. Empty when Views is 1.
	Table string

	// Substitutions lists the display options that were invalid and were
	// replaced by their defaults, one note per option. Empty when the
	// configuration was fully valid.
	Substitutions []string
}

// Render produces display artifacts for a computed MAC matrix. The matrix is
// consumed read-only and its values are never altered; invalid display
// options are replaced by documented defaults (recorded on
// Figure.Substitutions) rather than failing. Render fails only on a nil
// matrix.
func Render(m *Matrix, cfg DisplayConfig) (*Figure, error) {
	if m == nil {
		return nil, fmt.Errorf("mac: nil matrix")
	}
	cfg, notes := normalizeDisplay(cfg, m.rows, m.cols)

	fig := &Figure{
		Heatmap:       renderHeatmap(m, cfg),
		Substitutions: notes,
	}
	if cfg.Views == 2 {
		fig.Table = renderTable(m, cfg)
	}
	return fig, nil
}

// renderHeatmap rasterizes the matrix with one square cell per entry.
// Cell size scales with the configured font size.
func renderHeatmap(m *Matrix, cfg DisplayConfig) *image.RGBA {
	cell := 2 * cfg.FontSize
	img := image.NewRGBA(image.Rect(0, 0, m.cols*cell, m.rows*cell))
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			c := colorAt(cfg.Colormap, m.data[i*m.cols+j])
			for y := i * cell; y < (i+1)*cell; y++ {
				for x := j * cell; x < (j+1)*cell; x++ {
					img.SetRGBA(x, y, c)
				}
			}
		}
	}
	return img
}

// Shade characters from low to high, used when HideValues is set.
const shadeRamp = " .:-=+*#%@"

// renderTable lays out the matrix as a labeled text grid. Cells carry the
// numeric MAC value to three decimals, or a shade character under
// HideValues. NaN entries print as "nan" / "?".
func renderTable(m *Matrix, cfg DisplayConfig) string {
	rowWidth := 0
	for _, l := range cfg.RowLabels {
		if len(l) > rowWidth {
			rowWidth = len(l)
		}
	}
	cellWidth := 5 // "0.000"
	if cfg.HideValues {
		cellWidth = 1
	}
	for _, l := range cfg.ColLabels {
		if len(l) > cellWidth {
			cellWidth = len(l)
		}
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", rowWidth))
	for _, l := range cfg.ColLabels {
		fmt.Fprintf(&b, "  %*s", cellWidth, l)
	}
	b.WriteByte('\n')

	for i := 0; i < m.rows; i++ {
		fmt.Fprintf(&b, "%*s", rowWidth, cfg.RowLabels[i])
		for j := 0; j < m.cols; j++ {
			fmt.Fprintf(&b, "  %*s", cellWidth, formatCell(m.data[i*m.cols+j], !cfg.HideValues))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func formatCell(v float64, showValues bool) string {
	if showValues {
		if math.IsNaN(v) {
			return "nan"
		}
		return fmt.Sprintf("%.3f", v)
	}
	if math.IsNaN(v) {
		return "?"
	}
	t := v
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	k := int(t * float64(len(shadeRamp)-1))
	return string(shadeRamp[k])
}
