package report

import (
	"image"
	"image/color"
	"image/gif"
	"io"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"github.com/agbru/mulbench/internal/format"
	"github.com/agbru/mulbench/internal/harness"
)

// AnimationOptions controls the GIF replay of a sweep.
type AnimationOptions struct {
	Title  string
	Width  int
	Height int
	// Delay between frames in hundredths of a second.
	Delay int
}

// DefaultAnimationOptions returns 640x400 frames at 20 fps.
func DefaultAnimationOptions() AnimationOptions {
	return AnimationOptions{
		Title:  "Execution Time Evolution",
		Width:  640,
		Height: 400,
		Delay:  5,
	}
}

const gridDivisions = 5

var (
	colorBackground = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorInk        = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}
	colorGrid       = color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
	colorMuted      = color.RGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xff}
)

var labelFont tinyfont.Fonter = &proggy.TinySZ8pt7b

// RenderAnimation writes an animated GIF in which frame f shows the first
// f samples of every series. Axes stay fixed across frames: x spans the
// measured sizes and y spans [0, 1.1*max].
func RenderAnimation(w io.Writer, r *harness.Results, o AnimationOptions) error {
	if r == nil || r.Len() == 0 {
		return ErrNoSamples
	}
	if o.Width < 200 || o.Height < 150 {
		o.Width, o.Height = DefaultAnimationOptions().Width, DefaultAnimationOptions().Height
	}

	p := newPlot(r, o)
	base := p.background()

	anim := &gif.GIF{}
	for f := 1; f <= r.Len(); f++ {
		frame := image.NewPaletted(base.Rect, base.Palette)
		copy(frame.Pix, base.Pix)
		p.drawSeries(frame, f)
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, o.Delay)
	}
	return gif.EncodeAll(w, anim)
}

type plot struct {
	r       *harness.Results
	o       AnimationOptions
	palette color.Palette
	styles  []seriesStyle

	area       image.Rectangle
	xMin, xMax float64
	yMax       float64
}

func newPlot(r *harness.Results, o AnimationOptions) *plot {
	p := &plot{
		r:       r,
		o:       o,
		palette: color.Palette{colorBackground, colorInk, colorGrid, colorMuted},
		area:    image.Rect(78, 36, o.Width-20, o.Height-48),
		xMin:    float64(r.Sizes[0]),
		xMax:    float64(r.Sizes[0]),
	}
	for i, name := range r.Algorithms {
		st := styleFor(name, i)
		p.styles = append(p.styles, st)
		p.palette = append(p.palette, rgba(st.Hex))
	}
	for _, n := range r.Sizes {
		p.xMin = min(p.xMin, float64(n))
		p.xMax = max(p.xMax, float64(n))
	}
	if p.xMax == p.xMin {
		p.xMax = p.xMin + 1
	}
	p.yMax = 1.1 * r.Max().Seconds()
	if p.yMax <= 0 {
		p.yMax = 1e-9
	}
	return p
}

func (p *plot) px(n int) int {
	return p.area.Min.X + int((float64(n)-p.xMin)/(p.xMax-p.xMin)*float64(p.area.Dx()))
}

func (p *plot) py(seconds float64) int {
	return p.area.Max.Y - int(seconds/p.yMax*float64(p.area.Dy()))
}

// background draws everything that does not change between frames.
func (p *plot) background() *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, p.o.Width, p.o.Height), p.palette)
	fill(img, img.Rect, colorBackground)
	d := frameDisplay{img}
	a := p.area

	for i := 0; i <= gridDivisions; i++ {
		x := a.Min.X + i*a.Dx()/gridDivisions
		y := a.Max.Y - i*a.Dy()/gridDivisions
		if i > 0 {
			drawLine(img, x, a.Min.Y, x, a.Max.Y, colorGrid, true)
			drawLine(img, a.Min.X, y, a.Max.X, y, colorGrid, true)
		}
		xLabel := format.FormatInt(int(p.xMin + float64(i)*(p.xMax-p.xMin)/gridDivisions))
		yLabel := format.FormatSeconds(float64(i) * p.yMax / gridDivisions)
		writeCentered(d, x, a.Max.Y+14, xLabel, colorMuted)
		tinyfont.WriteLine(d, labelFont, int16(a.Min.X-6-textWidth(yLabel)), int16(y+3), yLabel, colorMuted)
	}
	drawLine(img, a.Min.X, a.Max.Y, a.Max.X, a.Max.Y, colorInk, false)
	drawLine(img, a.Min.X, a.Min.Y, a.Min.X, a.Max.Y, colorInk, false)

	writeCentered(d, p.o.Width/2, 18, p.o.Title, colorInk)
	writeCentered(d, a.Min.X+a.Dx()/2, p.o.Height-14, "Input size (n)", colorInk)
	tinyfont.WriteLine(d, labelFont, int16(8), int16(a.Min.Y-8), "Execution time (seconds)", colorInk)

	// Legend, upper left inside the plot area.
	for i, name := range p.r.Algorithms {
		st := p.styles[i]
		c := rgba(st.Hex)
		y := a.Min.Y + 12 + i*14
		drawLine(img, a.Min.X+8, y, a.Min.X+32, y, c, st.Dashed)
		drawMarker(img, a.Min.X+20, y, st.Symbol, c)
		tinyfont.WriteLine(d, labelFont, int16(a.Min.X+38), int16(y+4), name, colorInk)
	}
	return img
}

func (p *plot) drawSeries(img *image.Paletted, upTo int) {
	for i, name := range p.r.Algorithms {
		st := p.styles[i]
		c := rgba(st.Hex)
		series := p.r.Series[name]
		prevX, prevY := 0, 0
		for j := 0; j < upTo && j < len(series); j++ {
			x, y := p.px(p.r.Sizes[j]), p.py(series[j].Seconds())
			if j > 0 {
				drawLine(img, prevX, prevY, x, y, c, st.Dashed)
			}
			drawMarker(img, x, y, st.Symbol, c)
			prevX, prevY = x, y
		}
	}
}

// frameDisplay lets tinyfont draw text onto a GIF frame.
type frameDisplay struct {
	img *image.Paletted
}

var _ drivers.Displayer = frameDisplay{}

func (d frameDisplay) Size() (x, y int16) {
	return int16(d.img.Rect.Dx()), int16(d.img.Rect.Dy())
}

func (d frameDisplay) SetPixel(x, y int16, c color.RGBA) {
	d.img.Set(int(x), int(y), c)
}

func (d frameDisplay) Display() error { return nil }

func textWidth(s string) int {
	w, _ := tinyfont.LineWidth(labelFont, s)
	return int(w)
}

func writeCentered(d frameDisplay, cx, baseline int, s string, c color.RGBA) {
	tinyfont.WriteLine(d, labelFont, int16(cx-textWidth(s)/2), int16(baseline), s, c)
}

func fill(img *image.Paletted, r image.Rectangle, c color.Color) {
	idx := uint8(img.Palette.Index(c))
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetColorIndex(x, y, idx)
		}
	}
}

// drawLine rasterizes a segment with Bresenham's algorithm. Dashed lines
// alternate 4 pixels on, 4 off.
func drawLine(img *image.Paletted, x0, y0, x1, y1 int, c color.Color, dashed bool) {
	idx := uint8(img.Palette.Index(c))
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	e := dx + dy
	for step := 0; ; step++ {
		if !dashed || (step/4)%2 == 0 {
			img.SetColorIndex(x0, y0, idx)
		}
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

func drawMarker(img *image.Paletted, cx, cy int, symbol string, c color.Color) {
	idx := uint8(img.Palette.Index(c))
	const r = 3
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			if symbol == "circle" && x*x+y*y > r*r {
				continue
			}
			img.SetColorIndex(cx+x, cy+y, idx)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
