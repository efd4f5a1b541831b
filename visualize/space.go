// Package visualize draws a Space as arrows inside a unit sphere and plots the rotation angles of
// a path.
package visualize

import (
	"image"
	"math"
	"strconv"

	"github.com/fogleman/gg"
	"github.com/golang/geo/r3"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"

	"go.viam.com/hyperwalk/spatialmath"
	"go.viam.com/hyperwalk/utils"
)

const (
	viewAzimuth   = -35.0 // degrees about z
	viewElevation = 20.0  // degrees about the rotated x axis
	wireMeridians = 24
	wireParallels = 12
	wireSegments  = 64
)

var wireColor = colorful.Color{R: 0.2, G: 0.6, B: 0.2}

// ColorFor maps t in [0, 1] from blue through green to red.
func ColorFor(t float64) colorful.Color {
	return colorful.Hsv(240*(1-utils.Clamp(t, 0, 1)), 0.9, 0.95)
}

type projector struct {
	cx, cy, radius   float64
	sinAz, cosAz     float64
	sinElev, cosElev float64
}

func newProjector(width, height int) projector {
	az := utils.DegToRad(viewAzimuth)
	el := utils.DegToRad(viewElevation)
	return projector{
		cx:      float64(width) * 0.45,
		cy:      float64(height) / 2,
		radius:  math.Min(float64(width)*0.9, float64(height)) * 0.4,
		sinAz:   math.Sin(az),
		cosAz:   math.Cos(az),
		sinElev: math.Sin(el),
		cosElev: math.Cos(el),
	}
}

// project returns the image coordinates of v seen from the viewing direction.
func (p projector) project(v r3.Vector) (float64, float64) {
	x := v.X*p.cosAz - v.Y*p.sinAz
	y := v.X*p.sinAz + v.Y*p.cosAz
	z := v.Z*p.cosElev + y*p.sinElev
	return p.cx + x*p.radius, p.cy - z*p.radius
}

func (p projector) drawCurve(dc *gg.Context, point func(t float64) r3.Vector) {
	for i := 0; i <= wireSegments; i++ {
		x, y := p.project(point(float64(i) / wireSegments))
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.Stroke()
}

func (p projector) drawSphere(dc *gg.Context) {
	dc.SetColor(wireColor)
	dc.SetLineWidth(0.5)
	for m := 0; m < wireMeridians; m++ {
		u := 2 * math.Pi * float64(m) / wireMeridians
		p.drawCurve(dc, func(t float64) r3.Vector {
			v := math.Pi * t
			return r3.Vector{X: math.Cos(u) * math.Sin(v), Y: math.Sin(u) * math.Sin(v), Z: math.Cos(v)}
		})
	}
	for k := 1; k < wireParallels; k++ {
		v := math.Pi * float64(k) / wireParallels
		p.drawCurve(dc, func(t float64) r3.Vector {
			u := 2 * math.Pi * t
			return r3.Vector{X: math.Cos(u) * math.Sin(v), Y: math.Sin(u) * math.Sin(v), Z: math.Cos(v)}
		})
	}
}

// drawColorBar draws the scale from lo to hi along the right edge.
func drawColorBar(dc *gg.Context, width, height int, lo, hi float64) {
	x := float64(width) * 0.88
	top := float64(height) * 0.15
	bottom := float64(height) * 0.85
	barWidth := float64(width) * 0.03
	for y := top; y <= bottom; y++ {
		dc.SetColor(ColorFor((bottom - y) / (bottom - top)))
		dc.DrawLine(x, y, x+barWidth, y)
		dc.Stroke()
	}
	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored(formatTick(hi), x+barWidth/2, top-4, 0.5, 0)
	dc.DrawStringAnchored(formatTick(lo), x+barWidth/2, bottom+4, 0.5, 1)
}

func formatTick(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// DrawSpace renders every quaternion as an arrow from the origin to its x, y, z part, colored by
// its w component, over a unit sphere wireframe.
func DrawSpace(qs []spatialmath.Quaternion, width, height int) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("image size must be positive, got %dx%d", width, height)
	}
	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	proj := newProjector(width, height)
	proj.drawSphere(dc)

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, q := range qs {
		lo = math.Min(lo, q.Real)
		hi = math.Max(hi, q.Real)
	}

	ox, oy := proj.project(r3.Vector{})
	dc.SetLineWidth(1)
	for _, q := range qs {
		x, y := proj.project(q.Vector())
		dc.SetColor(ColorFor(utils.Normalize(q.Real, lo, hi)))
		dc.DrawLine(ox, oy, x, y)
		dc.Stroke()
		dc.DrawCircle(x, y, 1.5)
		dc.Fill()
	}
	if len(qs) > 0 {
		drawColorBar(dc, width, height, lo, hi)
	}
	return dc.Image(), nil
}

// SaveSpacePNG draws qs with DrawSpace and writes it to the named PNG file.
func SaveSpacePNG(name string, qs []spatialmath.Quaternion, width, height int) error {
	img, err := DrawSpace(qs, width, height)
	if err != nil {
		return err
	}
	return gg.SavePNG(name, img)
}
