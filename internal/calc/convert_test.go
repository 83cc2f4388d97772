package calc

import (
	"math"
	"testing"
)

func TestTemperatureConversions(t *testing.T) {
	if got := CelsiusToFahrenheit(100); got != 212 {
		t.Errorf("CelsiusToFahrenheit(100) = %v, want 212", got)
	}
	if got := CelsiusToFahrenheit(-40); got != -40 {
		t.Errorf("CelsiusToFahrenheit(-40) = %v, want -40", got)
	}
	if got := FahrenheitToCelsius(32); got != 0 {
		t.Errorf("FahrenheitToCelsius(32) = %v, want 0", got)
	}
}

func TestAngleConversions(t *testing.T) {
	if got := DegreesToRadians(180); math.Abs(got-math.Pi) > 1e-9 {
		t.Errorf("DegreesToRadians(180) = %v, want pi", got)
	}
	if got := RadiansToDegrees(math.Pi / 2); math.Abs(got-90) > 1e-9 {
		t.Errorf("RadiansToDegrees(pi/2) = %v, want 90", got)
	}
}

func TestConvertLength(t *testing.T) {
	tests := []struct {
		value    float64
		from, to string
		want     float64
	}{
		{1, "km", "m", 1000},
		{1, "mi", "km", 1.60934},
		{12, "in", "ft", 1},
		{1, "m", "cm", 100},
	}
	for _, tt := range tests {
		got, err := ConvertLength(tt.value, tt.from, tt.to)
		if err != nil {
			t.Fatalf("ConvertLength(%v, %q, %q) error: %v", tt.value, tt.from, tt.to, err)
		}
		if math.Abs(got-tt.want) > 1e-6 {
			t.Errorf("ConvertLength(%v, %q, %q) = %v, want %v", tt.value, tt.from, tt.to, got, tt.want)
		}
	}

	if _, err := ConvertLength(1, "parsec", "m"); err == nil {
		t.Error("expected error for unknown source unit")
	}
	if _, err := ConvertLength(1, "m", "cubit"); err == nil {
		t.Error("expected error for unknown target unit")
	}
}

func TestConvertWeight(t *testing.T) {
	got, err := ConvertWeight(1, "kg", "lb")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-2.20462) > 1e-4 {
		t.Errorf("ConvertWeight(1, kg, lb) = %v", got)
	}

	got, err = ConvertWeight(16, "oz", "lb")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-1) > 1e-6 {
		t.Errorf("ConvertWeight(16, oz, lb) = %v, want 1", got)
	}

	if _, err := ConvertWeight(1, "stone", "kg"); err == nil {
		t.Error("expected error for unknown unit")
	}
}

func TestBaseConversions(t *testing.T) {
	if got := DecimalToBinary(10); got != "1010" {
		t.Errorf("DecimalToBinary(10) = %q, want 1010", got)
	}
	if got := DecimalToBinary(0); got != "0" {
		t.Errorf("DecimalToBinary(0) = %q, want 0", got)
	}

	got, err := BinaryToDecimal("1010")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 10 {
		t.Errorf("BinaryToDecimal(1010) = %d, want 10", got)
	}
	if _, err := BinaryToDecimal("102"); err == nil {
		t.Error("expected error for non-binary digits")
	}

	if got := DecimalToHex(255); got != "FF" {
		t.Errorf("DecimalToHex(255) = %q, want FF", got)
	}

	dec, err := HexToDecimal("ff")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dec != 255 {
		t.Errorf("HexToDecimal(ff) = %d, want 255", dec)
	}
	if _, err := HexToDecimal("xyz"); err == nil {
		t.Error("expected error for invalid hex")
	}
}
