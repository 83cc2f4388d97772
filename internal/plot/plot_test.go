package plot

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r := NewRenderer(t.TempDir(), nil)
	r.now = func() time.Time {
		return time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	}
	return r
}

func decodeResult(t *testing.T, res Result) {
	t.Helper()
	if res.Status != StatusSuccess {
		t.Fatalf("expected success, got %s: %s", res.Status, res.Message)
	}
	const prefix = "data:image/png;base64,"
	if !strings.HasPrefix(res.Base64Data, prefix) {
		t.Fatalf("base64 data missing data URI prefix: %.40s", res.Base64Data)
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(res.Base64Data, prefix))
	if err != nil {
		t.Fatalf("decode base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("decode PNG: %v", err)
	}
	if img.Bounds().Dx() != canvasWidth || img.Bounds().Dy() != canvasHeight {
		t.Fatalf("unexpected image size: %v", img.Bounds())
	}
	if _, err := os.Stat(res.FilePath); err != nil {
		t.Fatalf("visualization file not written: %v", err)
	}
}

func TestDrawShape_Circle(t *testing.T) {
	r := newTestRenderer(t)
	res := r.DrawShape("circle", map[string]float64{"radius": 3}, DefaultShapeOptions())
	decodeResult(t, res)
	if res.Filename != "geometry_circle_20260315_103000.png" {
		t.Errorf("unexpected filename: %s", res.Filename)
	}
	if filepath.Dir(res.FilePath) != r.Dir() {
		t.Errorf("file written outside renderer dir: %s", res.FilePath)
	}
}

func TestDrawShape_CircleFromDiameter(t *testing.T) {
	r := newTestRenderer(t)
	res := r.DrawShape("circle", map[string]float64{"diameter": 10}, DefaultShapeOptions())
	decodeResult(t, res)
}

func TestDrawShape_SquareAndRectangle(t *testing.T) {
	r := newTestRenderer(t)
	decodeResult(t, r.DrawShape("square", map[string]float64{"side": 4}, DefaultShapeOptions()))
	decodeResult(t, r.DrawShape("rectangle", map[string]float64{"width": 6, "height": 3}, DefaultShapeOptions()))
}

func TestDrawShape_Triangles(t *testing.T) {
	r := newTestRenderer(t)
	decodeResult(t, r.DrawShape("triangle", map[string]float64{"base": 4, "height": 3}, DefaultShapeOptions()))
	decodeResult(t, r.DrawShape("triangle", map[string]float64{"side_a": 3, "side_b": 4, "side_c": 5}, DefaultShapeOptions()))
}

func TestDrawShape_Errors(t *testing.T) {
	r := newTestRenderer(t)
	tests := []struct {
		name  string
		shape string
		dims  map[string]float64
	}{
		{"unknown shape", "hexagon", map[string]float64{"side": 1}},
		{"circle without radius", "circle", map[string]float64{}},
		{"square without side", "square", map[string]float64{"width": 2}},
		{"triangle missing dims", "triangle", map[string]float64{"base": 4}},
		{"impossible triangle", "triangle", map[string]float64{"side_a": 1, "side_b": 1, "side_c": 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := r.DrawShape(tt.shape, tt.dims, DefaultShapeOptions())
			if res.Status != StatusError {
				t.Fatalf("expected error result, got %s", res.Status)
			}
		})
	}
}

func TestPlotFunction_Kinds(t *testing.T) {
	r := newTestRenderer(t)
	kinds := []struct {
		kind   string
		params map[string]float64
	}{
		{"linear", map[string]float64{"slope": 2, "intercept": -1}},
		{"quadratic", map[string]float64{"a": 1, "b": -2, "c": 1}},
		{"sine", map[string]float64{"amplitude": 2}},
		{"cosine", nil},
		{"tan", nil},
		{"tangent", nil},
		{"exponential", map[string]float64{"base": 2}},
		{"logarithmic", nil},
	}
	for _, tt := range kinds {
		t.Run(tt.kind, func(t *testing.T) {
			res := r.PlotFunction(tt.kind, tt.params, -10, 10, DefaultShapeOptions())
			decodeResult(t, res)
			if res.Equation == "" {
				t.Error("expected function equation in result")
			}
		})
	}
}

func TestPlotFunction_DefaultRange(t *testing.T) {
	r := newTestRenderer(t)
	res := r.PlotFunction("linear", nil, 0, 0, DefaultShapeOptions())
	decodeResult(t, res)
	if res.Equation != "y = 1x + 0" {
		t.Errorf("unexpected equation: %q", res.Equation)
	}
}

func TestPlotFunction_Errors(t *testing.T) {
	r := newTestRenderer(t)

	if res := r.PlotFunction("cubic", nil, -10, 10, DefaultShapeOptions()); res.Status != StatusError {
		t.Errorf("expected error for unknown kind, got %s", res.Status)
	}
	if res := r.PlotFunction("linear", nil, 5, -5, DefaultShapeOptions()); res.Status != StatusError {
		t.Errorf("expected error for inverted range, got %s", res.Status)
	}
	if res := r.PlotFunction("logarithmic", nil, -10, -1, DefaultShapeOptions()); res.Status != StatusError {
		t.Errorf("expected error for non-positive log range, got %s", res.Status)
	}
}

func TestCoordinateSystem(t *testing.T) {
	r := newTestRenderer(t)
	res := r.CoordinateSystem(CoordinateSystemRequest{
		Points: []Point{{X: 2, Y: 3}, {X: -4, Y: 1, Label: "A"}},
	})
	decodeResult(t, res)
}

func TestCoordinateSystem_InvalidBounds(t *testing.T) {
	r := newTestRenderer(t)
	res := r.CoordinateSystem(CoordinateSystemRequest{XMin: 5, XMax: -5, YMin: -1, YMax: 1})
	if res.Status != StatusError {
		t.Fatalf("expected error result, got %s", res.Status)
	}
}

func TestVisualizeTrig(t *testing.T) {
	r := newTestRenderer(t)
	res := r.VisualizeTrig(45, DefaultTrigOptions())
	decodeResult(t, res)

	if res.TrigValues == nil {
		t.Fatal("expected trig values in result")
	}
	if diff := res.TrigValues.Sin - 0.7071; diff > 0.001 || diff < -0.001 {
		t.Errorf("sin(45°) = %v", res.TrigValues.Sin)
	}
	if res.TrigValues.Tan == "undefined" {
		t.Error("tan(45°) should be defined")
	}
}

func TestVisualizeTrig_UndefinedTangent(t *testing.T) {
	r := newTestRenderer(t)
	res := r.VisualizeTrig(90, DefaultTrigOptions())
	decodeResult(t, res)
	if res.TrigValues.Tan != "undefined" {
		t.Errorf("tan(90°) = %s, want undefined", res.TrigValues.Tan)
	}
}
