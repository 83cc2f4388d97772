package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"studybuddy_backend/internal/plot"
)

// RegisterPlotTools binds the visualization operations as tools.
func RegisterPlotTools(r *Registry, renderer *plot.Renderer) {
	r.MustRegister(Tool{
		Name:        "draw_geometric_shape",
		Description: "Draw a geometric shape as a PNG image: circle (radius or diameter), square (side), rectangle (width, height) or triangle (base+height, or side_a/side_b/side_c).",
		InputSchema: objectSchema(map[string]any{
			"shape_type": map[string]any{"type": "string", "enum": []string{"circle", "square", "rectangle", "triangle"}},
			"dimensions": map[string]any{
				"type":        "object",
				"description": "Shape dimensions keyed by name, e.g. {\"radius\": 5}",
				"additionalProperties": map[string]any{
					"type": "number",
				},
			},
			"show_labels": map[string]any{"type": "boolean", "description": "Label the dimensions (default true)"},
			"show_grid":   map[string]any{"type": "boolean", "description": "Draw a background grid (default true)"},
			"title":       map[string]any{"type": "string"},
		}, []string{"shape_type", "dimensions"}),
		Handler: func(_ context.Context, input json.RawMessage) (string, error) {
			var args struct {
				ShapeType  string             `json:"shape_type"`
				Dimensions map[string]float64 `json:"dimensions"`
				ShowLabels *bool              `json:"show_labels"`
				ShowGrid   *bool              `json:"show_grid"`
				Title      string             `json:"title"`
			}
			if err := json.Unmarshal(input, &args); err != nil {
				return "", fmt.Errorf("parse arguments: %w", err)
			}
			opts := plot.DefaultShapeOptions()
			if args.ShowLabels != nil {
				opts.Labels = *args.ShowLabels
			}
			if args.ShowGrid != nil {
				opts.Grid = *args.ShowGrid
			}
			opts.Title = args.Title
			return marshalJSON(renderer.DrawShape(args.ShapeType, args.Dimensions, opts))
		},
	})

	r.MustRegister(Tool{
		Name:        "plot_function",
		Description: "Plot a mathematical function over a range: linear, quadratic, sine, cosine, tangent, exponential or logarithmic.",
		InputSchema: objectSchema(map[string]any{
			"function_type": map[string]any{"type": "string", "enum": []string{
				"linear", "quadratic", "sine", "cosine", "tangent", "exponential", "logarithmic",
			}},
			"parameters": map[string]any{
				"type":        "object",
				"description": "Function parameters, e.g. {\"slope\": 2, \"intercept\": 1} for linear or {\"a\": 1, \"b\": 0, \"c\": -4} for quadratic",
				"additionalProperties": map[string]any{
					"type": "number",
				},
			},
			"x_min": map[string]any{"type": "number", "description": "Left edge of the x range (default -10)"},
			"x_max": map[string]any{"type": "number", "description": "Right edge of the x range (default 10)"},
			"title": map[string]any{"type": "string"},
		}, []string{"function_type"}),
		Handler: func(_ context.Context, input json.RawMessage) (string, error) {
			var args struct {
				FunctionType string             `json:"function_type"`
				Parameters   map[string]float64 `json:"parameters"`
				XMin         float64            `json:"x_min"`
				XMax         float64            `json:"x_max"`
				Title        string             `json:"title"`
			}
			if err := json.Unmarshal(input, &args); err != nil {
				return "", fmt.Errorf("parse arguments: %w", err)
			}
			opts := plot.DefaultShapeOptions()
			opts.Title = args.Title
			return marshalJSON(renderer.PlotFunction(args.FunctionType, args.Parameters, args.XMin, args.XMax, opts))
		},
	})

	r.MustRegister(Tool{
		Name:        "create_coordinate_system",
		Description: "Draw a coordinate plane with grid, axes and optionally labeled points.",
		InputSchema: objectSchema(map[string]any{
			"x_min":        map[string]any{"type": "number", "description": "Default -10"},
			"x_max":        map[string]any{"type": "number", "description": "Default 10"},
			"y_min":        map[string]any{"type": "number", "description": "Default -10"},
			"y_max":        map[string]any{"type": "number", "description": "Default 10"},
			"grid_spacing": map[string]any{"type": "number", "description": "Spacing between grid lines (default 1)"},
			"points": map[string]any{
				"type":        "array",
				"description": "Points to mark on the plane",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"x":     map[string]any{"type": "number"},
						"y":     map[string]any{"type": "number"},
						"label": map[string]any{"type": "string"},
					},
					"required": []string{"x", "y"},
				},
			},
			"title": map[string]any{"type": "string"},
		}, nil),
		Handler: func(_ context.Context, input json.RawMessage) (string, error) {
			var args struct {
				XMin        float64 `json:"x_min"`
				XMax        float64 `json:"x_max"`
				YMin        float64 `json:"y_min"`
				YMax        float64 `json:"y_max"`
				GridSpacing float64 `json:"grid_spacing"`
				Points      []struct {
					X     float64 `json:"x"`
					Y     float64 `json:"y"`
					Label string  `json:"label"`
				} `json:"points"`
				Title string `json:"title"`
			}
			if err := json.Unmarshal(input, &args); err != nil {
				return "", fmt.Errorf("parse arguments: %w", err)
			}
			req := plot.CoordinateSystemRequest{
				XMin:        args.XMin,
				XMax:        args.XMax,
				YMin:        args.YMin,
				YMax:        args.YMax,
				GridSpacing: args.GridSpacing,
				Title:       args.Title,
			}
			for _, p := range args.Points {
				req.Points = append(req.Points, plot.Point{X: p.X, Y: p.Y, Label: p.Label})
			}
			return marshalJSON(renderer.CoordinateSystem(req))
		},
	})

	r.MustRegister(Tool{
		Name:        "visualize_trigonometry",
		Description: "Draw a unit circle for an angle in degrees, with the projection triangle and the sin/cos/tan values.",
		InputSchema: objectSchema(map[string]any{
			"angle_degrees":    map[string]any{"type": "number"},
			"show_unit_circle": map[string]any{"type": "boolean", "description": "Default true"},
			"show_triangle":    map[string]any{"type": "boolean", "description": "Default true"},
			"show_values":      map[string]any{"type": "boolean", "description": "Default true"},
			"title":            map[string]any{"type": "string"},
		}, []string{"angle_degrees"}),
		Handler: func(_ context.Context, input json.RawMessage) (string, error) {
			var args struct {
				AngleDegrees   float64 `json:"angle_degrees"`
				ShowUnitCircle *bool   `json:"show_unit_circle"`
				ShowTriangle   *bool   `json:"show_triangle"`
				ShowValues     *bool   `json:"show_values"`
				Title          string  `json:"title"`
			}
			if err := json.Unmarshal(input, &args); err != nil {
				return "", fmt.Errorf("parse arguments: %w", err)
			}
			opts := plot.DefaultTrigOptions()
			if args.ShowUnitCircle != nil {
				opts.ShowUnitCircle = *args.ShowUnitCircle
			}
			if args.ShowTriangle != nil {
				opts.ShowTriangle = *args.ShowTriangle
			}
			if args.ShowValues != nil {
				opts.ShowValues = *args.ShowValues
			}
			opts.Title = args.Title
			return marshalJSON(renderer.VisualizeTrig(args.AngleDegrees, opts))
		},
	})
}
