package calc

import (
	"fmt"
	"math"
	"sort"
)

// Mean returns the arithmetic mean.
func Mean(numbers []float64) (float64, error) {
	if len(numbers) == 0 {
		return 0, fmt.Errorf("cannot calculate mean of empty list")
	}
	sum := 0.0
	for _, n := range numbers {
		sum += n
	}
	return sum / float64(len(numbers)), nil
}

// Median returns the middle value, averaging the two central values for
// even-length input.
func Median(numbers []float64) (float64, error) {
	if len(numbers) == 0 {
		return 0, fmt.Errorf("cannot calculate median of empty list")
	}
	sorted := append([]float64(nil), numbers...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid], nil
	}
	return (sorted[mid-1] + sorted[mid]) / 2, nil
}

// Mode returns the single most frequent value. Fails on empty input and
// when no value occurs more often than the rest.
func Mode(numbers []float64) (float64, error) {
	if len(numbers) == 0 {
		return 0, fmt.Errorf("cannot calculate mode of empty list")
	}
	counts := map[float64]int{}
	for _, n := range numbers {
		counts[n]++
	}
	best, bestCount, tied := 0.0, 0, false
	for _, n := range numbers {
		c := counts[n]
		if c > bestCount {
			best, bestCount, tied = n, c, false
		} else if c == bestCount && n != best {
			tied = true
		}
	}
	if tied {
		return 0, fmt.Errorf("no unique mode found")
	}
	return best, nil
}

// Variance returns the sample variance, or the population variance when
// sample is false. Needs at least two values.
func Variance(numbers []float64, sample bool) (float64, error) {
	if len(numbers) < 2 {
		return 0, fmt.Errorf("need at least 2 numbers for variance")
	}
	mean, _ := Mean(numbers)
	sum := 0.0
	for _, n := range numbers {
		d := n - mean
		sum += d * d
	}
	div := float64(len(numbers))
	if sample {
		div--
	}
	return sum / div, nil
}

// StdDev returns the standard deviation (sample by default).
func StdDev(numbers []float64, sample bool) (float64, error) {
	v, err := Variance(numbers, sample)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}
