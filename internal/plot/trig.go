package plot

import (
	"fmt"
	"math"
)

// TrigOptions control the unit-circle visualization.
type TrigOptions struct {
	ShowUnitCircle bool
	ShowTriangle   bool
	ShowValues     bool
	Title          string
}

// DefaultTrigOptions shows the circle, triangle and values.
func DefaultTrigOptions() TrigOptions {
	return TrigOptions{ShowUnitCircle: true, ShowTriangle: true, ShowValues: true}
}

// VisualizeTrig draws a unit circle with the given angle, the point it
// selects on the circle, the sin/cos projection triangle, and the trig
// values for the angle.
func (r *Renderer) VisualizeTrig(angleDegrees float64, opts TrigOptions) Result {
	rad := angleDegrees * math.Pi / 180
	sin, cos := math.Sincos(rad)

	tanDisplay := "undefined"
	if math.Abs(cos) > 1e-10 {
		tanDisplay = fmt.Sprintf("%.4f", math.Tan(rad))
	}

	v := newViewport(-2, 2, -2, 2).squared()
	dc := newCanvas()
	drawGrid(dc, v, 0.5)
	drawAxes(dc, v)

	if opts.ShowUnitCircle {
		dc.SetRGB(0.1, 0.3, 0.8)
		dc.SetLineWidth(2)
		dc.DrawCircle(v.px(0), v.py(0), v.scale())
		dc.Stroke()
	}

	// Angle arc. Screen y grows downward, so world angles are negated.
	if angleDegrees != 0 {
		dc.SetRGB(0.1, 0.6, 0.2)
		dc.SetLineWidth(2)
		dc.DrawArc(v.px(0), v.py(0), 0.3*v.scale(), 0, -rad)
		dc.Stroke()
	}

	// Radius to the point on the circle.
	dc.SetRGB(0.8, 0.1, 0.1)
	dc.SetLineWidth(3)
	dc.DrawLine(v.px(0), v.py(0), v.px(cos), v.py(sin))
	dc.Stroke()
	dc.DrawCircle(v.px(cos), v.py(sin), 6)
	dc.Fill()
	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored(fmt.Sprintf("(%.3f, %.3f)", cos, sin), v.px(cos)+10, v.py(sin)-12, 0, 0.5)

	if opts.ShowTriangle {
		// Adjacent leg along the x axis.
		dc.SetRGB(0.9, 0.6, 0.1)
		dc.SetLineWidth(2)
		dc.DrawLine(v.px(0), v.py(0), v.px(cos), v.py(0))
		dc.Stroke()
		// Opposite leg up to the point.
		dc.SetRGB(0.5, 0.2, 0.7)
		dc.DrawLine(v.px(cos), v.py(0), v.px(cos), v.py(sin))
		dc.Stroke()
	}

	if opts.ShowValues {
		dc.SetRGB(0, 0, 0)
		lines := []string{
			fmt.Sprintf("Trigonometric values for %g°:", angleDegrees),
			fmt.Sprintf("sin(%g°) = %.4f", angleDegrees, sin),
			fmt.Sprintf("cos(%g°) = %.4f", angleDegrees, cos),
			fmt.Sprintf("tan(%g°) = %s", angleDegrees, tanDisplay),
		}
		for i, line := range lines {
			dc.DrawStringAnchored(line, v.px(-1.9), v.py(1.8)+float64(i)*18, 0, 0.5)
		}
	}

	drawTitle(dc, titleOr(opts.Title, fmt.Sprintf("Trigonometry Visualization - %g°", angleDegrees)))

	res := r.save(dc, fmt.Sprintf("trigonometry_%g", angleDegrees),
		fmt.Sprintf("Trigonometry visualization for %g° created successfully", angleDegrees))
	if res.Status == StatusSuccess {
		res.TrigValues = &TrigValues{Sin: sin, Cos: cos, Tan: tanDisplay}
	}
	return res
}
