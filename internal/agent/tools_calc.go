package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"studybuddy_backend/internal/calc"
)

// RegisterCalcTools binds the calculator operations as tools.
func RegisterCalcTools(r *Registry) {
	r.MustRegister(Tool{
		Name:        "calculate",
		Description: "Evaluate a math expression. Supports arithmetic, parentheses, ^ powers, constants pi and e, and functions like sqrt, sin, cos, tan, log, ln, abs.",
		InputSchema: objectSchema(map[string]any{
			"expression": map[string]any{"type": "string", "description": "Expression to evaluate, e.g. '2 + 3 * 4' or 'sqrt(16)'"},
		}, []string{"expression"}),
		Handler: func(_ context.Context, input json.RawMessage) (string, error) {
			var args struct {
				Expression string `json:"expression"`
			}
			if err := json.Unmarshal(input, &args); err != nil {
				return "", fmt.Errorf("parse arguments: %w", err)
			}
			return calc.Calculate(args.Expression), nil
		},
	})

	r.MustRegister(Tool{
		Name:        "get_calculator_help",
		Description: "Describe what the calculator can do: supported operators, functions and constants.",
		InputSchema: objectSchema(nil, nil),
		Handler: func(_ context.Context, _ json.RawMessage) (string, error) {
			return calc.Help(), nil
		},
	})

	r.MustRegister(Tool{
		Name:        "solve_quadratic",
		Description: "Solve ax² + bx + c = 0. Handles real, repeated and complex roots, and the degenerate linear case.",
		InputSchema: objectSchema(map[string]any{
			"a": map[string]any{"type": "number"},
			"b": map[string]any{"type": "number"},
			"c": map[string]any{"type": "number"},
		}, []string{"a", "b", "c"}),
		Handler: func(_ context.Context, input json.RawMessage) (string, error) {
			var args struct {
				A float64 `json:"a"`
				B float64 `json:"b"`
				C float64 `json:"c"`
			}
			if err := json.Unmarshal(input, &args); err != nil {
				return "", fmt.Errorf("parse arguments: %w", err)
			}
			return marshalJSON(calc.SolveQuadratic(args.A, args.B, args.C))
		},
	})

	r.MustRegister(Tool{
		Name:        "calculate_statistics",
		Description: "Compute a statistic over a list of numbers: mean, median, mode, variance or stdev.",
		InputSchema: objectSchema(map[string]any{
			"numbers":   map[string]any{"type": "array", "items": map[string]any{"type": "number"}},
			"operation": map[string]any{"type": "string", "enum": []string{"mean", "median", "mode", "variance", "stdev"}},
			"sample":    map[string]any{"type": "boolean", "description": "Use the sample formula for variance/stdev (default population)"},
		}, []string{"numbers", "operation"}),
		Handler: func(_ context.Context, input json.RawMessage) (string, error) {
			var args struct {
				Numbers   []float64 `json:"numbers"`
				Operation string    `json:"operation"`
				Sample    bool      `json:"sample"`
			}
			if err := json.Unmarshal(input, &args); err != nil {
				return "", fmt.Errorf("parse arguments: %w", err)
			}
			var (
				value float64
				err   error
			)
			switch strings.ToLower(args.Operation) {
			case "mean":
				value, err = calc.Mean(args.Numbers)
			case "median":
				value, err = calc.Median(args.Numbers)
			case "mode":
				value, err = calc.Mode(args.Numbers)
			case "variance":
				value, err = calc.Variance(args.Numbers, args.Sample)
			case "stdev", "stddev":
				value, err = calc.StdDev(args.Numbers, args.Sample)
			default:
				return fmt.Sprintf("Error: unknown operation %q", args.Operation), nil
			}
			if err != nil {
				return "Error: " + err.Error(), nil
			}
			return fmt.Sprintf("%s = %s", strings.ToLower(args.Operation), calc.FormatResult(value)), nil
		},
	})

	r.MustRegister(Tool{
		Name:        "convert_units",
		Description: "Convert between units of length (mm, cm, m, km, in, ft, yd, mi), weight (mg, g, kg, oz, lb) or temperature (celsius, fahrenheit).",
		InputSchema: objectSchema(map[string]any{
			"value":     map[string]any{"type": "number"},
			"from_unit": map[string]any{"type": "string"},
			"to_unit":   map[string]any{"type": "string"},
			"unit_type": map[string]any{"type": "string", "enum": []string{"length", "weight", "temperature"}},
		}, []string{"value", "from_unit", "to_unit", "unit_type"}),
		Handler: func(_ context.Context, input json.RawMessage) (string, error) {
			var args struct {
				Value    float64 `json:"value"`
				FromUnit string  `json:"from_unit"`
				ToUnit   string  `json:"to_unit"`
				UnitType string  `json:"unit_type"`
			}
			if err := json.Unmarshal(input, &args); err != nil {
				return "", fmt.Errorf("parse arguments: %w", err)
			}
			var (
				out float64
				err error
			)
			switch strings.ToLower(args.UnitType) {
			case "length":
				out, err = calc.ConvertLength(args.Value, args.FromUnit, args.ToUnit)
			case "weight":
				out, err = calc.ConvertWeight(args.Value, args.FromUnit, args.ToUnit)
			case "temperature":
				out, err = convertTemperature(args.Value, args.FromUnit, args.ToUnit)
			default:
				return fmt.Sprintf("Error: unknown unit type %q", args.UnitType), nil
			}
			if err != nil {
				return "Error: " + err.Error(), nil
			}
			return fmt.Sprintf("%s %s = %s %s",
				calc.FormatResult(args.Value), args.FromUnit,
				calc.FormatResult(out), args.ToUnit), nil
		},
	})
}

func convertTemperature(value float64, from, to string) (float64, error) {
	norm := func(u string) string {
		switch strings.ToLower(u) {
		case "c", "celsius", "°c":
			return "c"
		case "f", "fahrenheit", "°f":
			return "f"
		}
		return ""
	}
	f, t := norm(from), norm(to)
	if f == "" || t == "" {
		return 0, fmt.Errorf("unknown temperature unit (use celsius or fahrenheit)")
	}
	if f == t {
		return value, nil
	}
	if f == "c" {
		return calc.CelsiusToFahrenheit(value), nil
	}
	return calc.FahrenheitToCelsius(value), nil
}
