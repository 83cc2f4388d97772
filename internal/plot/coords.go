package plot

import (
	"fmt"
	"math"
)

// Point is a labeled 2D point.
type Point struct {
	X, Y  float64
	Label string
}

// CoordinateSystemRequest describes a coordinate grid to render.
// Zero bounds default to [-10, 10] on both axes.
type CoordinateSystemRequest struct {
	XMin, XMax  float64
	YMin, YMax  float64
	GridSpacing float64
	Points      []Point
	Title       string
}

// CoordinateSystem renders an empty (or point-marked) coordinate plane,
// the kind handed to students practicing graphing.
func (r *Renderer) CoordinateSystem(req CoordinateSystemRequest) Result {
	if req.XMin == 0 && req.XMax == 0 {
		req.XMin, req.XMax = -10, 10
	}
	if req.YMin == 0 && req.YMax == 0 {
		req.YMin, req.YMax = -10, 10
	}
	if req.XMin >= req.XMax || req.YMin >= req.YMax {
		return errorResult("Coordinate bounds must satisfy min < max")
	}
	spacing := req.GridSpacing
	if spacing <= 0 {
		spacing = 1
	}

	v := newViewport(req.XMin, req.XMax, req.YMin, req.YMax).squared()
	dc := newCanvas()

	drawGrid(dc, v, spacing)
	drawAxes(dc, v)

	// Axis tick labels at grid spacing.
	dc.SetRGB(0.2, 0.2, 0.2)
	for x := firstTick(v.xMin, spacing); x <= v.xMax; x += spacing {
		if x == 0 {
			continue
		}
		dc.DrawStringAnchored(trimFloat(x), v.px(x), v.py(0)+14, 0.5, 0.5)
	}
	for y := firstTick(v.yMin, spacing); y <= v.yMax; y += spacing {
		if y == 0 {
			continue
		}
		dc.DrawStringAnchored(trimFloat(y), v.px(0)-16, v.py(y), 0.5, 0.5)
	}

	// Origin marker and axis names.
	dc.SetRGB(0, 0, 0)
	dc.DrawCircle(v.px(0), v.py(0), 3)
	dc.Fill()
	dc.DrawStringAnchored("O (0,0)", v.px(0)+24, v.py(0)+14, 0.5, 0.5)
	dc.DrawStringAnchored("x", v.px(v.xMax)-10, v.py(0)-14, 0.5, 0.5)
	dc.DrawStringAnchored("y", v.px(0)+14, v.py(v.yMax)+12, 0.5, 0.5)

	// Marked points.
	for _, p := range req.Points {
		if !v.contains(p.X, p.Y) {
			continue
		}
		dc.SetRGB(0.8, 0.1, 0.1)
		dc.DrawCircle(v.px(p.X), v.py(p.Y), 5)
		dc.Fill()

		label := p.Label
		if label == "" {
			label = fmt.Sprintf("(%s, %s)", trimFloat(p.X), trimFloat(p.Y))
		}
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(label, v.px(p.X)+10, v.py(p.Y)-10, 0, 0.5)
	}

	drawTitle(dc, titleOr(req.Title, "Coordinate System"))
	return r.save(dc, "coordinate_system", "Coordinate system created successfully")
}

func trimFloat(f float64) string {
	if f == math.Trunc(f) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%g", f)
}
