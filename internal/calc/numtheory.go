package calc

import "fmt"

// Factorial computes n! for n >= 0. Overflows past 20 are rejected rather
// than silently wrapped.
func Factorial(n int) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("factorial undefined for negative numbers")
	}
	if n > 20 {
		return 0, fmt.Errorf("factorial overflow: %d! exceeds int64", n)
	}
	result := int64(1)
	for i := int64(2); i <= int64(n); i++ {
		result *= i
	}
	return result, nil
}

// GCD returns the greatest common divisor of a and b.
func GCD(a, b int64) int64 {
	a, b = absInt(a), absInt(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of a and b. Dividing by the
// GCD before multiplying keeps intermediate values from overflowing.
func LCM(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	return absInt(a/GCD(a, b)) * absInt(b)
}

// IsPrime reports whether n is prime.
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for i := int64(3); i*i <= n; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// PrimeFactors returns the prime factorization of n in ascending order,
// with repeated factors. Values below 2 have no factors.
func PrimeFactors(n int64) []int64 {
	if n <= 1 {
		return nil
	}
	var factors []int64
	for d := int64(2); d*d <= n; d++ {
		for n%d == 0 {
			factors = append(factors, d)
			n /= d
		}
	}
	if n > 1 {
		factors = append(factors, n)
	}
	return factors
}

// Fibonacci returns the nth Fibonacci number (0-indexed).
func Fibonacci(n int) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("fibonacci undefined for negative numbers")
	}
	if n > 92 {
		return 0, fmt.Errorf("fibonacci overflow: F(%d) exceeds int64", n)
	}
	if n <= 1 {
		return int64(n), nil
	}
	a, b := int64(0), int64(1)
	for i := 2; i <= n; i++ {
		a, b = b, a+b
	}
	return b, nil
}

func absInt(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
