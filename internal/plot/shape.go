package plot

import (
	"fmt"
	"math"
	"strings"
)

// ShapeOptions control optional decorations on shape drawings.
type ShapeOptions struct {
	Labels bool
	Grid   bool
	Title  string
}

// DefaultShapeOptions enables labels and grid, matching the usual
// classroom rendering.
func DefaultShapeOptions() ShapeOptions {
	return ShapeOptions{Labels: true, Grid: true}
}

// DrawShape renders a geometric shape. Supported shapes: "circle"
// (radius or diameter), "square" (side), "rectangle" (width, height),
// "triangle" (base+height, or side_a/side_b/side_c).
func (r *Renderer) DrawShape(shape string, dims map[string]float64, opts ShapeOptions) Result {
	shape = strings.ToLower(shape)
	switch shape {
	case "circle":
		return r.drawCircle(dims, opts)
	case "square", "rectangle":
		return r.drawRectangle(shape, dims, opts)
	case "triangle":
		return r.drawTriangle(dims, opts)
	default:
		return errorResult("Unsupported shape type: %s", shape)
	}
}

func (r *Renderer) drawCircle(dims map[string]float64, opts ShapeOptions) Result {
	var radius float64
	if v, ok := dims["radius"]; ok {
		radius = v
	} else if v, ok := dims["diameter"]; ok {
		radius = v / 2
	} else {
		return errorResult("Circle requires 'radius' or 'diameter'")
	}
	if radius <= 0 {
		return errorResult("Circle radius must be positive")
	}

	dc := newCanvas()
	pad := radius * 0.6
	v := newViewport(-radius-pad, radius+pad, -radius-pad, radius+pad).squared()

	if opts.Grid {
		drawGrid(dc, v, gridSpacingFor(2*radius))
	}

	dc.SetRGBA(0.4, 0.6, 0.9, 0.3)
	dc.DrawCircle(v.px(0), v.py(0), radius*v.scale())
	dc.FillPreserve()
	dc.SetRGB(0.1, 0.3, 0.8)
	dc.SetLineWidth(2)
	dc.Stroke()

	if opts.Labels {
		dc.SetRGB(0.8, 0.1, 0.1)
		dc.SetLineWidth(2)
		dc.DrawLine(v.px(0), v.py(0), v.px(radius), v.py(0))
		dc.Stroke()
		dc.DrawStringAnchored(fmt.Sprintf("r = %g", radius), v.px(radius/2), v.py(0)-12, 0.5, 0.5)

		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(fmt.Sprintf("Area = π × r² = %.2f", math.Pi*radius*radius),
			v.px(0), v.py(-radius)+24, 0.5, 0.5)
		dc.DrawStringAnchored(fmt.Sprintf("Circumference = 2π × r = %.2f", 2*math.Pi*radius),
			v.px(0), v.py(-radius)+42, 0.5, 0.5)
	}

	drawTitle(dc, titleOr(opts.Title, "Circle Visualization"))
	return r.save(dc, "geometry_circle", "Circle visualization created successfully")
}

func (r *Renderer) drawRectangle(shape string, dims map[string]float64, opts ShapeOptions) Result {
	var width, height float64
	if shape == "square" {
		side, ok := dims["side"]
		if !ok {
			return errorResult("Square requires 'side' dimension")
		}
		width, height = side, side
	} else {
		w, okW := dims["width"]
		h, okH := dims["height"]
		if !okW || !okH {
			return errorResult("Rectangle requires 'width' and 'height'")
		}
		width, height = w, h
	}
	if width <= 0 || height <= 0 {
		return errorResult("%s dimensions must be positive", capitalize(shape))
	}

	dc := newCanvas()
	pad := math.Max(width, height) * 0.4
	v := newViewport(-pad, width+pad, -pad, height+pad).squared()

	if opts.Grid {
		drawGrid(dc, v, gridSpacingFor(math.Max(width, height)))
	}

	dc.SetRGBA(0.4, 0.6, 0.9, 0.3)
	dc.DrawRectangle(v.px(0), v.py(height), width*v.scale(), height*v.scale())
	dc.FillPreserve()
	dc.SetRGB(0.1, 0.3, 0.8)
	dc.SetLineWidth(2)
	dc.Stroke()

	if opts.Labels {
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(fmt.Sprintf("Width = %g", width), v.px(width/2), v.py(0)+20, 0.5, 0.5)
		dc.DrawStringAnchored(fmt.Sprintf("Height = %g", height), v.px(0)-40, v.py(height/2), 0.5, 0.5)
		dc.DrawStringAnchored(fmt.Sprintf("Area = %g", width*height), v.px(width/2), v.py(height)-32, 0.5, 0.5)
		dc.DrawStringAnchored(fmt.Sprintf("Perimeter = %g", 2*(width+height)), v.px(width/2), v.py(height)-14, 0.5, 0.5)
	}

	drawTitle(dc, titleOr(opts.Title, capitalize(shape)+" Visualization"))
	return r.save(dc, "geometry_"+shape, capitalize(shape)+" visualization created successfully")
}

func (r *Renderer) drawTriangle(dims map[string]float64, opts ShapeOptions) Result {
	var xs, ys [3]float64

	base, hasBase := dims["base"]
	height, hasHeight := dims["height"]
	a, hasA := dims["side_a"]
	b, hasB := dims["side_b"]
	c, hasC := dims["side_c"]

	dc := newCanvas()

	switch {
	case hasBase && hasHeight:
		if base <= 0 || height <= 0 {
			return errorResult("Triangle dimensions must be positive")
		}
		xs = [3]float64{0, base, 0}
		ys = [3]float64{0, 0, height}
	case hasA && hasB && hasC:
		// Third vertex from the law of cosines.
		cosC := (a*a + b*b - c*c) / (2 * a * b)
		if cosC < -1 || cosC > 1 || a <= 0 || b <= 0 || c <= 0 {
			return errorResult("Invalid triangle dimensions - triangle inequality violated")
		}
		angleC := math.Acos(cosC)
		xs = [3]float64{0, a, b * math.Cos(angleC)}
		ys = [3]float64{0, 0, b * math.Sin(angleC)}
	default:
		return errorResult("Triangle requires either 'base' and 'height' or 'side_a', 'side_b', and 'side_c'")
	}

	minX, maxX := min3(xs), max3(xs)
	minY, maxY := min3(ys), max3(ys)
	pad := math.Max(maxX-minX, maxY-minY) * 0.4
	v := newViewport(minX-pad, maxX+pad, minY-pad, maxY+pad).squared()

	if opts.Grid {
		drawGrid(dc, v, gridSpacingFor(math.Max(maxX-minX, maxY-minY)))
	}

	dc.MoveTo(v.px(xs[0]), v.py(ys[0]))
	dc.LineTo(v.px(xs[1]), v.py(ys[1]))
	dc.LineTo(v.px(xs[2]), v.py(ys[2]))
	dc.ClosePath()
	dc.SetRGBA(0.4, 0.6, 0.9, 0.3)
	dc.FillPreserve()
	dc.SetRGB(0.1, 0.3, 0.8)
	dc.SetLineWidth(2)
	dc.Stroke()

	if opts.Labels {
		dc.SetRGB(0, 0, 0)
		if hasBase && hasHeight {
			hyp := math.Hypot(base, height)
			dc.DrawStringAnchored(fmt.Sprintf("Base = %g", base), v.px(base/2), v.py(0)+20, 0.5, 0.5)
			dc.DrawStringAnchored(fmt.Sprintf("Height = %g", height), v.px(0)-40, v.py(height/2), 0.5, 0.5)
			dc.DrawStringAnchored(fmt.Sprintf("Hypotenuse = %.2f", hyp), v.px(base/2)+30, v.py(height/2), 0.5, 0.5)
		} else {
			dc.DrawStringAnchored(fmt.Sprintf("Side a = %g", a), v.px(xs[1]/2), v.py(0)+20, 0.5, 0.5)
			dc.DrawStringAnchored(fmt.Sprintf("Side b = %g", b), v.px(xs[2]/2)-40, v.py(ys[2]/2), 0.5, 0.5)
			dc.DrawStringAnchored(fmt.Sprintf("Side c = %g", c), v.px((xs[1]+xs[2])/2)+30, v.py(ys[2]/2), 0.5, 0.5)
		}
	}

	drawTitle(dc, titleOr(opts.Title, "Triangle Visualization"))
	return r.save(dc, "geometry_triangle", "Triangle visualization created successfully")
}

// gridSpacingFor picks a readable grid spacing for a world span.
func gridSpacingFor(span float64) float64 {
	switch {
	case span <= 5:
		return 0.5
	case span <= 20:
		return 1
	case span <= 100:
		return 5
	default:
		return math.Pow(10, math.Floor(math.Log10(span))-1)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func titleOr(title, fallback string) string {
	if title != "" {
		return title
	}
	return fallback
}

func min3(v [3]float64) float64 { return math.Min(v[0], math.Min(v[1], v[2])) }
func max3(v [3]float64) float64 { return math.Max(v[0], math.Max(v[1], v[2])) }
