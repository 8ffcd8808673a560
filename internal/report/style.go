package report

import (
	"image/color"
	"strconv"

	"github.com/agbru/mulbench/internal/ui"
)

// seriesStyle is how one algorithm is drawn in every artifact.
type seriesStyle struct {
	Hex    string
	Dashed bool
	Symbol string // "circle" or "rect"
}

var fallbackColors = []string{"#d62728", "#9467bd", "#8c564b", "#e377c2"}

func styleFor(name string, index int) seriesStyle {
	switch name {
	case "Naive":
		return seriesStyle{Hex: ui.Series.Naive, Dashed: true, Symbol: "circle"}
	case "Karatsuba":
		return seriesStyle{Hex: ui.Series.Karatsuba, Symbol: "rect"}
	}
	return seriesStyle{Hex: fallbackColors[index%len(fallbackColors)], Symbol: "circle"}
}

// rgba parses "#rrggbb"; malformed input yields opaque black.
func rgba(hex string) color.RGBA {
	if len(hex) != 7 || hex[0] != '#' {
		return color.RGBA{A: 0xff}
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return color.RGBA{A: 0xff}
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}
