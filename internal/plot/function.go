package plot

import (
	"fmt"
	"math"
	"strings"
)

const functionSamples = 1000

// PlotFunction graphs a function of the given kind over [xMin, xMax].
// Supported kinds: "linear", "quadratic", "sine", "cosine", "tan" (or
// "tangent"), "exponential", "logarithmic". Parameters vary per kind; missing
// parameters fall back to the conventional defaults (slope 1, amplitude
// 1, base e, and so on).
func (r *Renderer) PlotFunction(kind string, params map[string]float64, xMin, xMax float64, opts ShapeOptions) Result {
	if xMin == 0 && xMax == 0 {
		xMin, xMax = -10, 10
	}
	if xMin >= xMax {
		return errorResult("x_min must be less than x_max")
	}

	kind = strings.ToLower(kind)
	fn, equation, err := resolveFunction(kind, params)
	if err != nil {
		return errorResult("%s", err)
	}

	if kind == "logarithmic" && xMax <= 0 {
		return errorResult("Logarithmic function requires positive x values")
	}

	// Sample the curve.
	xs := make([]float64, 0, functionSamples)
	ys := make([]float64, 0, functionSamples)
	yMin, yMax := math.Inf(1), math.Inf(-1)
	step := (xMax - xMin) / float64(functionSamples-1)
	for i := 0; i < functionSamples; i++ {
		x := xMin + float64(i)*step
		y := fn(x)
		xs = append(xs, x)
		ys = append(ys, y)
		if !math.IsNaN(y) && !math.IsInf(y, 0) {
			yMin = math.Min(yMin, y)
			yMax = math.Max(yMax, y)
		}
	}
	if math.IsInf(yMin, 1) {
		return errorResult("Function has no finite values in the given range")
	}
	if yMin == yMax {
		yMin--
		yMax++
	}
	padY := (yMax - yMin) * 0.1
	v := newViewport(xMin, xMax, yMin-padY, yMax+padY)

	dc := newCanvas()
	if opts.Grid {
		drawGrid(dc, v, gridSpacingFor(xMax-xMin))
	}
	drawAxes(dc, v)

	// Stroke the curve in segments, breaking at gaps and clipped values.
	dc.SetRGB(0.1, 0.3, 0.8)
	dc.SetLineWidth(2)
	penDown := false
	for i := range xs {
		y := ys[i]
		if math.IsNaN(y) || math.IsInf(y, 0) || y < v.yMin || y > v.yMax {
			if penDown {
				dc.Stroke()
				penDown = false
			}
			continue
		}
		if !penDown {
			dc.MoveTo(v.px(xs[i]), v.py(y))
			penDown = true
		} else {
			dc.LineTo(v.px(xs[i]), v.py(y))
		}
	}
	if penDown {
		dc.Stroke()
	}

	// Mark the vertex of a parabola.
	if kind == "quadratic" {
		a := paramOr(params, "a", 1)
		b := paramOr(params, "b", 0)
		c := paramOr(params, "c", 0)
		if a != 0 {
			vx := -b / (2 * a)
			vy := a*vx*vx + b*vx + c
			if v.contains(vx, vy) {
				dc.SetRGB(0.8, 0.1, 0.1)
				dc.DrawCircle(v.px(vx), v.py(vy), 5)
				dc.Fill()
				dc.DrawStringAnchored(fmt.Sprintf("Vertex (%.2f, %.2f)", vx, vy), v.px(vx), v.py(vy)-14, 0.5, 0.5)
			}
		}
	}

	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored(equation, canvasWidth/2, canvasHeight-28, 0.5, 0.5)
	drawTitle(dc, titleOr(opts.Title, capitalize(kind)+" Function"))

	res := r.save(dc, "function_"+kind, capitalize(kind)+" function plot created successfully")
	if res.Status == StatusSuccess {
		res.Equation = equation
	}
	return res
}

// resolveFunction returns the sampling function and its display equation.
func resolveFunction(kind string, params map[string]float64) (func(float64) float64, string, error) {
	switch kind {
	case "linear":
		m := paramOr(params, "slope", 1)
		b := paramOr(params, "intercept", 0)
		eq := fmt.Sprintf("y = %gx + %g", m, b)
		if b < 0 {
			eq = fmt.Sprintf("y = %gx - %g", m, -b)
		}
		return func(x float64) float64 { return m*x + b }, eq, nil

	case "quadratic":
		a := paramOr(params, "a", 1)
		b := paramOr(params, "b", 0)
		c := paramOr(params, "c", 0)
		return func(x float64) float64 { return a*x*x + b*x + c },
			fmt.Sprintf("y = %gx² + %gx + %g", a, b, c), nil

	case "sine", "cosine", "tan", "tangent":
		amp := paramOr(params, "amplitude", 1)
		freq := paramOr(params, "frequency", 1)
		phase := paramOr(params, "phase", 0)
		shift := paramOr(params, "vertical_shift", 0)
		var base func(float64) float64
		var name string
		switch kind {
		case "sine":
			base, name = math.Sin, "sin"
		case "cosine":
			base, name = math.Cos, "cos"
		default:
			base, name = math.Tan, "tan"
		}
		fn := func(x float64) float64 {
			y := amp*base(freq*x+phase) + shift
			// Clip tangent asymptotes.
			if name == "tan" && math.Abs(y) > 100 {
				return math.NaN()
			}
			return y
		}
		return fn, fmt.Sprintf("y = %g%s(%gx + %g) + %g", amp, name, freq, phase, shift), nil

	case "exponential":
		amp := paramOr(params, "amplitude", 1)
		base := paramOr(params, "base", math.E)
		shift := paramOr(params, "vertical_shift", 0)
		if base <= 0 {
			return nil, "", fmt.Errorf("Exponential base must be positive")
		}
		return func(x float64) float64 { return amp*math.Pow(base, x) + shift },
			fmt.Sprintf("y = %g × %g^x + %g", amp, base, shift), nil

	case "logarithmic":
		amp := paramOr(params, "amplitude", 1)
		base := paramOr(params, "base", math.E)
		shift := paramOr(params, "vertical_shift", 0)
		if base <= 0 || base == 1 {
			return nil, "", fmt.Errorf("Logarithmic base must be positive and not 1")
		}
		eq := fmt.Sprintf("y = %gln(x) + %g", amp, shift)
		if base != math.E {
			eq = fmt.Sprintf("y = %glog_%g(x) + %g", amp, base, shift)
		}
		fn := func(x float64) float64 {
			if x <= 0 {
				return math.NaN()
			}
			return amp*math.Log(x)/math.Log(base) + shift
		}
		return fn, eq, nil

	default:
		return nil, "", fmt.Errorf("Unsupported function type: %s", kind)
	}
}

func paramOr(params map[string]float64, key string, fallback float64) float64 {
	if v, ok := params[key]; ok {
		return v
	}
	return fallback
}
