package calc

import (
	"fmt"
	"math"
)

// CircleArea returns the area of a circle.
func CircleArea(radius float64) float64 {
	return math.Pi * radius * radius
}

// CircleCircumference returns the circumference of a circle.
func CircleCircumference(radius float64) float64 {
	return 2 * math.Pi * radius
}

// TriangleArea returns the area of a triangle from base and height.
func TriangleArea(base, height float64) float64 {
	return 0.5 * base * height
}

// RectangleArea returns the area of a rectangle.
func RectangleArea(length, width float64) float64 {
	return length * width
}

// SphereVolume returns the volume of a sphere.
func SphereVolume(radius float64) float64 {
	return 4.0 / 3.0 * math.Pi * math.Pow(radius, 3)
}

// CylinderVolume returns the volume of a cylinder.
func CylinderVolume(radius, height float64) float64 {
	return math.Pi * radius * radius * height
}

// Percentage returns what percentage part is of whole.
func Percentage(part, whole float64) (float64, error) {
	if whole == 0 {
		return 0, fmt.Errorf("cannot calculate percentage with zero denominator")
	}
	return part / whole * 100, nil
}

// PercentageChange returns the percent change from old to new.
func PercentageChange(oldValue, newValue float64) (float64, error) {
	if oldValue == 0 {
		return 0, fmt.Errorf("cannot calculate percentage change from zero")
	}
	return (newValue - oldValue) / oldValue * 100, nil
}

// SimpleInterest returns interest for principal at rate percent over time.
func SimpleInterest(principal, rate, time float64) float64 {
	return principal * rate * time / 100
}

// CompoundInterest returns interest earned with the given compounding
// frequency per year.
func CompoundInterest(principal, rate, time float64, compoundsPerYear int) (float64, error) {
	if compoundsPerYear <= 0 {
		return 0, fmt.Errorf("compounds per year must be positive")
	}
	n := float64(compoundsPerYear)
	amount := principal * math.Pow(1+rate/100/n, n*time)
	return amount - principal, nil
}
