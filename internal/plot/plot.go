// Package plot renders math visualizations as PNG images: geometric
// shapes, function graphs, coordinate systems, and unit-circle
// trigonometry diagrams. Images are written to a visualizations
// directory and also returned inline as base64 data URIs so they can
// travel through the chat API.
package plot

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fogleman/gg"
	"go.uber.org/zap"
)

const (
	canvasWidth  = 1000
	canvasHeight = 800
)

// Result statuses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Result describes a rendered visualization.
type Result struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	FilePath   string `json:"file_path,omitempty"`
	Filename   string `json:"filename,omitempty"`
	Base64Data string `json:"base64_data,omitempty"`

	// Equation is the rendered function in y = ... form, when applicable.
	Equation string `json:"function_equation,omitempty"`

	// TrigValues carries sin/cos/tan for trigonometry visualizations.
	TrigValues *TrigValues `json:"trig_values,omitempty"`
}

// TrigValues holds the trig function values for an angle.
type TrigValues struct {
	Sin float64 `json:"sin"`
	Cos float64 `json:"cos"`
	// Tan is "undefined" at odd multiples of 90 degrees.
	Tan string `json:"tan"`
}

// Renderer draws visualizations and persists them under dir.
type Renderer struct {
	dir string
	log *zap.Logger
	now func() time.Time
}

// NewRenderer creates a Renderer that writes PNGs into dir.
func NewRenderer(dir string, log *zap.Logger) *Renderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Renderer{
		dir: dir,
		log: log,
		now: time.Now,
	}
}

// Dir returns the directory visualizations are written to.
func (r *Renderer) Dir() string { return r.dir }

func errorResult(format string, args ...any) Result {
	return Result{Status: StatusError, Message: fmt.Sprintf(format, args...)}
}

// save encodes the context to PNG, writes it under the visualizations
// directory, and fills in the file and base64 fields of a success Result.
func (r *Renderer) save(dc *gg.Context, prefix, message string) Result {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		r.log.Error("create visualizations dir failed", zap.String("dir", r.dir), zap.Error(err))
		return errorResult("creating visualizations directory: %v", err)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return errorResult("encoding PNG: %v", err)
	}

	filename := fmt.Sprintf("%s_%s.png", prefix, r.now().Format("20060102_150405"))
	path := filepath.Join(r.dir, filename)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		r.log.Error("write visualization failed", zap.String("path", path), zap.Error(err))
		return errorResult("writing visualization: %v", err)
	}

	r.log.Info("visualization saved",
		zap.String("path", path),
		zap.Int("bytes", buf.Len()),
	)

	return Result{
		Status:     StatusSuccess,
		Message:    message,
		FilePath:   path,
		Filename:   filename,
		Base64Data: "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()),
	}
}

// newCanvas returns a white context of the standard size.
func newCanvas() *gg.Context {
	dc := gg.NewContext(canvasWidth, canvasHeight)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	return dc
}

// viewport maps world coordinates onto the pixel canvas, leaving a margin
// for labels. Y grows upward in world space.
type viewport struct {
	xMin, xMax float64
	yMin, yMax float64
	w, h       float64
	margin     float64
}

func newViewport(xMin, xMax, yMin, yMax float64) viewport {
	return viewport{
		xMin: xMin, xMax: xMax,
		yMin: yMin, yMax: yMax,
		w: canvasWidth, h: canvasHeight,
		margin: 70,
	}
}

// squared expands the shorter world axis so one world unit spans the same
// number of pixels in both directions.
func (v viewport) squared() viewport {
	spanX := (v.xMax - v.xMin) / (v.w - 2*v.margin)
	spanY := (v.yMax - v.yMin) / (v.h - 2*v.margin)
	if spanX > spanY {
		extra := (spanX - spanY) * (v.h - 2*v.margin) / 2
		v.yMin -= extra
		v.yMax += extra
	} else if spanY > spanX {
		extra := (spanY - spanX) * (v.w - 2*v.margin) / 2
		v.xMin -= extra
		v.xMax += extra
	}
	return v
}

func (v viewport) px(x float64) float64 {
	return v.margin + (x-v.xMin)/(v.xMax-v.xMin)*(v.w-2*v.margin)
}

func (v viewport) py(y float64) float64 {
	return v.h - v.margin - (y-v.yMin)/(v.yMax-v.yMin)*(v.h-2*v.margin)
}

// scale returns pixels per world unit on the x axis.
func (v viewport) scale() float64 {
	return (v.w - 2*v.margin) / (v.xMax - v.xMin)
}

func (v viewport) contains(x, y float64) bool {
	return x >= v.xMin && x <= v.xMax && y >= v.yMin && y <= v.yMax
}

// drawGrid draws light grid lines at the given world spacing.
func drawGrid(dc *gg.Context, v viewport, spacing float64) {
	if spacing <= 0 {
		spacing = 1
	}
	dc.SetRGBA(0, 0, 0, 0.12)
	dc.SetLineWidth(1)
	for x := firstTick(v.xMin, spacing); x <= v.xMax; x += spacing {
		dc.DrawLine(v.px(x), v.py(v.yMin), v.px(x), v.py(v.yMax))
		dc.Stroke()
	}
	for y := firstTick(v.yMin, spacing); y <= v.yMax; y += spacing {
		dc.DrawLine(v.px(v.xMin), v.py(y), v.px(v.xMax), v.py(y))
		dc.Stroke()
	}
}

// drawAxes draws the x and y axes through the origin when visible.
func drawAxes(dc *gg.Context, v viewport) {
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1.5)
	if v.yMin <= 0 && v.yMax >= 0 {
		dc.DrawLine(v.px(v.xMin), v.py(0), v.px(v.xMax), v.py(0))
		dc.Stroke()
	}
	if v.xMin <= 0 && v.xMax >= 0 {
		dc.DrawLine(v.px(0), v.py(v.yMin), v.px(0), v.py(v.yMax))
		dc.Stroke()
	}
}

func firstTick(min, spacing float64) float64 {
	n := float64(int(min / spacing))
	if n*spacing < min {
		n++
	}
	return n * spacing
}

// drawTitle centers a title at the top of the canvas.
func drawTitle(dc *gg.Context, title string) {
	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored(title, canvasWidth/2, 30, 0.5, 0.5)
}
