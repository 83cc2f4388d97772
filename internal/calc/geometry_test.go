package calc

import (
	"math"
	"testing"
)

func TestAreas(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"CircleArea(1)", CircleArea(1), math.Pi},
		{"CircleArea(3)", CircleArea(3), 9 * math.Pi},
		{"CircleArea(0)", CircleArea(0), 0},
		{"TriangleArea(4,3)", TriangleArea(4, 3), 6},
		{"TriangleArea(5,0)", TriangleArea(5, 0), 0},
		{"RectangleArea(4,3)", RectangleArea(4, 3), 12},
		{"RectangleArea(2.5,2)", RectangleArea(2.5, 2), 5},
	}
	for _, tt := range tests {
		if math.Abs(tt.got-tt.want) > 1e-9 {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestCircumferenceAndVolumes(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"CircleCircumference(1)", CircleCircumference(1), 2 * math.Pi},
		{"CircleCircumference(10)", CircleCircumference(10), 20 * math.Pi},
		{"SphereVolume(1)", SphereVolume(1), 4.0 / 3.0 * math.Pi},
		{"SphereVolume(2)", SphereVolume(2), 32.0 / 3.0 * math.Pi},
		{"CylinderVolume(1,2)", CylinderVolume(1, 2), 2 * math.Pi},
		{"CylinderVolume(3,5)", CylinderVolume(3, 5), 45 * math.Pi},
	}
	for _, tt := range tests {
		if math.Abs(tt.got-tt.want) > 1e-9 {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestPercentages(t *testing.T) {
	tests := []struct {
		part, whole float64
		want        float64
	}{
		{25, 200, 12.5},
		{50, 50, 100},
		{0, 10, 0},
		{-5, 20, -25},
	}
	for _, tt := range tests {
		got, err := Percentage(tt.part, tt.whole)
		if err != nil {
			t.Fatalf("Percentage(%v, %v): unexpected error: %v", tt.part, tt.whole, err)
		}
		if got != tt.want {
			t.Errorf("Percentage(%v, %v) = %v, want %v", tt.part, tt.whole, got, tt.want)
		}
	}
	if _, err := Percentage(1, 0); err == nil {
		t.Error("expected error for zero denominator")
	}
}

func TestPercentageChange(t *testing.T) {
	tests := []struct {
		oldValue, newValue float64
		want               float64
	}{
		{50, 75, 50},
		{100, 50, -50},
		{20, 20, 0},
	}
	for _, tt := range tests {
		got, err := PercentageChange(tt.oldValue, tt.newValue)
		if err != nil {
			t.Fatalf("PercentageChange(%v, %v): unexpected error: %v", tt.oldValue, tt.newValue, err)
		}
		if got != tt.want {
			t.Errorf("PercentageChange(%v, %v) = %v, want %v", tt.oldValue, tt.newValue, got, tt.want)
		}
	}
	if _, err := PercentageChange(0, 10); err == nil {
		t.Error("expected error for zero base")
	}
}

func TestSimpleInterest(t *testing.T) {
	tests := []struct {
		principal, rate, time float64
		want                  float64
	}{
		{1000, 5, 2, 100},
		{500, 10, 1, 50},
		{1000, 0, 5, 0},
	}
	for _, tt := range tests {
		if got := SimpleInterest(tt.principal, tt.rate, tt.time); got != tt.want {
			t.Errorf("SimpleInterest(%v, %v, %v) = %v, want %v",
				tt.principal, tt.rate, tt.time, got, tt.want)
		}
	}
}

func TestCompoundInterest(t *testing.T) {
	// Annual compounding for one year equals simple interest.
	got, err := CompoundInterest(1000, 10, 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-100) > 1e-9 {
		t.Errorf("CompoundInterest(1000, 10, 1, 1) = %v, want 100", got)
	}

	// Monthly compounding beats annual on the same terms.
	monthly, err := CompoundInterest(1000, 10, 1, 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if monthly <= got {
		t.Errorf("monthly compounding %v should exceed annual %v", monthly, got)
	}

	if _, err := CompoundInterest(1000, 10, 1, 0); err == nil {
		t.Error("expected error for zero compounding frequency")
	}
	if _, err := CompoundInterest(1000, 10, 1, -4); err == nil {
		t.Error("expected error for negative compounding frequency")
	}
}
