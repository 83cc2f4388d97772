package calc

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// CelsiusToFahrenheit converts a temperature.
func CelsiusToFahrenheit(c float64) float64 { return c*9/5 + 32 }

// FahrenheitToCelsius converts a temperature.
func FahrenheitToCelsius(f float64) float64 { return (f - 32) * 5 / 9 }

// DegreesToRadians converts an angle.
func DegreesToRadians(deg float64) float64 { return deg * math.Pi / 180 }

// RadiansToDegrees converts an angle.
func RadiansToDegrees(rad float64) float64 { return rad * 180 / math.Pi }

// Length conversion factors to meters.
var lengthToMeters = map[string]float64{
	"mm": 0.001, "cm": 0.01, "m": 1, "km": 1000,
	"in": 0.0254, "ft": 0.3048, "yd": 0.9144, "mi": 1609.34,
}

// Weight conversion factors to grams.
var weightToGrams = map[string]float64{
	"mg": 0.001, "g": 1, "kg": 1000,
	"oz": 28.3495, "lb": 453.592,
}

// ConvertLength converts value between the supported length units.
func ConvertLength(value float64, fromUnit, toUnit string) (float64, error) {
	from, ok := lengthToMeters[fromUnit]
	if !ok {
		return 0, fmt.Errorf("unsupported length unit %q", fromUnit)
	}
	to, ok := lengthToMeters[toUnit]
	if !ok {
		return 0, fmt.Errorf("unsupported length unit %q", toUnit)
	}
	return value * from / to, nil
}

// ConvertWeight converts value between the supported weight units.
func ConvertWeight(value float64, fromUnit, toUnit string) (float64, error) {
	from, ok := weightToGrams[fromUnit]
	if !ok {
		return 0, fmt.Errorf("unsupported weight unit %q", fromUnit)
	}
	to, ok := weightToGrams[toUnit]
	if !ok {
		return 0, fmt.Errorf("unsupported weight unit %q", toUnit)
	}
	return value * from / to, nil
}

// DecimalToBinary renders n in base 2 without a prefix.
func DecimalToBinary(n int64) string {
	if n < 0 {
		return "-" + strconv.FormatInt(-n, 2)
	}
	return strconv.FormatInt(n, 2)
}

// BinaryToDecimal parses a base-2 string.
func BinaryToDecimal(s string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 2, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid binary number %q", s)
	}
	return v, nil
}

// DecimalToHex renders n in uppercase base 16 without a prefix.
func DecimalToHex(n int64) string {
	if n < 0 {
		return "-" + strings.ToUpper(strconv.FormatInt(-n, 16))
	}
	return strings.ToUpper(strconv.FormatInt(n, 16))
}

// HexToDecimal parses a base-16 string.
func HexToDecimal(s string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 16, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid hexadecimal number %q", s)
	}
	return v, nil
}
