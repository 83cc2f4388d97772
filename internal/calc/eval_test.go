package calc

import (
	"math"
	"strings"
	"testing"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		expr string
		want float64
	}{
		{"2 + 3 * 4", 14},
		{"(2 + 3) * 4", 20},
		{"[2 + 3] * 4", 20},
		{"10 / 4", 2.5},
		{"10 % 3", 1},
		{"2 ^ 10", 1024},
		{"2 ** 10", 1024},
		{"2 ^ 3 ^ 2", 512}, // right-associative
		{"-3 + 5", 2},
		{"-(2 + 3)", -5},
		{"--4", 4},
		{"3 × 4", 12},
		{"12 ÷ 4", 3},
		{"sqrt(16)", 4},
		{"sqrt(16) + log(e)", 5},
		{"abs(-7.5)", 7.5},
		{"min(3, 1, 2)", 1},
		{"max(3, 1, 2)", 3},
		{"floor(2.9)", 2},
		{"ceil(2.1)", 3},
		{"round(2.5)", 3},
		{"log10(1000)", 3},
		{"log2(8)", 3},
		{"tau / 2", math.Pi},
	}

	for _, tt := range tests {
		got, err := Evaluate(tt.expr)
		if err != nil {
			t.Errorf("Evaluate(%q) error: %v", tt.expr, err)
			continue
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Evaluate(%q) = %v, want %v", tt.expr, got, tt.want)
		}
	}
}

func TestEvaluate_Trig(t *testing.T) {
	got, err := Evaluate("sin(pi/2)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-1) > 1e-9 {
		t.Errorf("sin(pi/2) = %v, want 1", got)
	}

	got, err = Evaluate("cos(0)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1 {
		t.Errorf("cos(0) = %v, want 1", got)
	}
}

func TestEvaluate_NaturalLog(t *testing.T) {
	// ln is an alias for log (both natural log).
	for _, expr := range []string{"ln(e)", "log(e)"} {
		got, err := Evaluate(expr)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", expr, err)
		}
		if math.Abs(got-1) > 1e-9 {
			t.Errorf("%s = %v, want 1", expr, got)
		}
	}

	if _, err := Evaluate("ln(-1)"); err == nil {
		t.Error("ln of a negative number should fail")
	}
}

func TestEvaluate_Errors(t *testing.T) {
	tests := []struct {
		expr    string
		wantErr string
	}{
		{"1 / 0", "division by zero"},
		{"5 % 0", "modulo by zero"},
		{"sqrt(-4)", "negative"},
		{"log(0)", "non-positive"},
		{"asin(2)", "out of range"},
		{"2 +", "unexpected end"},
		{"(1 + 2", "closing parenthesis"},
		{"foo(1)", "unknown function"},
		{"bogus", "unknown identifier"},
		{"1 $ 2", "unexpected"},
		{"", "unexpected end"},
		{"min()", "at least 1"},
	}

	for _, tt := range tests {
		_, err := Evaluate(tt.expr)
		if err == nil {
			t.Errorf("Evaluate(%q) expected error containing %q, got nil", tt.expr, tt.wantErr)
			continue
		}
		if !strings.Contains(err.Error(), tt.wantErr) {
			t.Errorf("Evaluate(%q) error = %q, want substring %q", tt.expr, err, tt.wantErr)
		}
	}
}

func TestCalculate(t *testing.T) {
	if got := Calculate("2 + 3 * 4"); got != "14" {
		t.Errorf("Calculate = %q, want 14", got)
	}
	if got := Calculate("10 / 4"); got != "2.5" {
		t.Errorf("Calculate = %q, want 2.5", got)
	}
	if got := Calculate("1 / 0"); !strings.HasPrefix(got, "Error:") {
		t.Errorf("Calculate on bad input = %q, want Error prefix", got)
	}
}

func TestFormatResult(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{4, "4"},
		{-4, "-4"},
		{2.5, "2.5"},
		{1.0 / 3.0, "0.3333"},
		{0.10000000001, "0.1"},
		{0, "0"},
	}
	for _, tt := range tests {
		if got := FormatResult(tt.in); got != tt.want {
			t.Errorf("FormatResult(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
