package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var sparklineChars = [8]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// History keeps the most recent samples up to a fixed capacity.
type History struct {
	values []float64
	limit  int
}

func NewHistory(limit int) *History {
	return &History{limit: max(limit, 1)}
}

// Push appends v, dropping the oldest sample when full.
func (h *History) Push(v float64) {
	h.values = append(h.values, v)
	if over := len(h.values) - h.limit; over > 0 {
		h.values = append(h.values[:0], h.values[over:]...)
	}
}

func (h *History) Len() int { return len(h.values) }

func (h *History) Last() float64 {
	if len(h.values) == 0 {
		return 0
	}
	return h.values[len(h.values)-1]
}

// Values returns the samples, oldest first. Callers must not modify it.
func (h *History) Values() []float64 { return h.values }

// SetLimit changes the capacity, keeping the newest samples.
func (h *History) SetLimit(limit int) {
	h.limit = max(limit, 1)
	if over := len(h.values) - h.limit; over > 0 {
		h.values = append(h.values[:0], h.values[over:]...)
	}
}

func (h *History) Reset() { h.values = h.values[:0] }

// RenderSparkline maps percentages (0..100) onto block elements.
func RenderSparkline(values []float64) string {
	var b strings.Builder
	for _, v := range values {
		v = min(max(v, 0), 100)
		b.WriteRune(sparklineChars[min(int(v/100*7), 7)])
	}
	return b.String()
}

// Braille cells are 2 dots wide and 4 dots tall; the bit for dot (x, y)
// is brailleBits[x][y].
var brailleBits = [2][4]rune{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// Point is a sample in data coordinates.
type Point struct {
	X, Y float64
}

// PlotSeries is one polyline drawn by RenderBraillePlot.
type PlotSeries struct {
	Points []Point
	Style  lipgloss.Style
}

// RenderBraillePlot draws every series as connected dots on a width x rows
// braille grid covering [xMin, xMax] x [0, yMax].
// A cell takes the style of the last series that touched it.
func RenderBraillePlot(series []PlotSeries, xMin, xMax, yMax float64, width, rows int) []string {
	if width <= 0 || rows <= 0 {
		return nil
	}
	dotW, dotH := width*2, rows*4
	cells := make([][]rune, rows)
	owner := make([][]int, rows)
	for r := range cells {
		cells[r] = make([]rune, width)
		owner[r] = make([]int, width)
		for c := range cells[r] {
			cells[r][c] = 0x2800
			owner[r][c] = -1
		}
	}
	if xMax <= xMin {
		xMax = xMin + 1
	}
	if yMax <= 0 {
		yMax = 1
	}

	set := func(si, x, y int) {
		if x < 0 || x >= dotW || y < 0 || y >= dotH {
			return
		}
		cells[y/4][x/2] |= brailleBits[x%2][y%4]
		owner[y/4][x/2] = si
	}
	toDot := func(p Point) (int, int) {
		x := int((p.X - xMin) / (xMax - xMin) * float64(dotW-1))
		y := dotH - 1 - int(min(p.Y/yMax, 1)*float64(dotH-1))
		return x, y
	}

	for si, s := range series {
		for i, p := range s.Points {
			x, y := toDot(p)
			if i == 0 {
				set(si, x, y)
				continue
			}
			px, py := toDot(s.Points[i-1])
			walkLine(px, py, x, y, func(x, y int) { set(si, x, y) })
		}
	}

	out := make([]string, rows)
	for r := range cells {
		var b strings.Builder
		for c, ch := range cells[r] {
			if o := owner[r][c]; o >= 0 {
				b.WriteString(series[o].Style.Render(string(ch)))
			} else {
				b.WriteRune(ch)
			}
		}
		out[r] = b.String()
	}
	return out
}

// walkLine visits every dot of the segment (x0,y0)-(x1,y1).
func walkLine(x0, y0, x1, y1 int, visit func(x, y int)) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		visit(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
