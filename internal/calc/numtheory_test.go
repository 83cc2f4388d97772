package calc

import (
	"reflect"
	"testing"
)

func TestFactorial(t *testing.T) {
	tests := []struct {
		n    int
		want int64
	}{
		{0, 1},
		{1, 1},
		{5, 120},
		{10, 3628800},
		{20, 2432902008176640000},
	}
	for _, tt := range tests {
		got, err := Factorial(tt.n)
		if err != nil {
			t.Fatalf("Factorial(%d) error: %v", tt.n, err)
		}
		if got != tt.want {
			t.Errorf("Factorial(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}

	if _, err := Factorial(-1); err == nil {
		t.Error("expected error for negative input")
	}
	if _, err := Factorial(21); err == nil {
		t.Error("expected overflow error for n > 20")
	}
}

func TestGCDAndLCM(t *testing.T) {
	if got := GCD(48, 18); got != 6 {
		t.Errorf("GCD(48, 18) = %d, want 6", got)
	}
	if got := GCD(-48, 18); got != 6 {
		t.Errorf("GCD(-48, 18) = %d, want 6", got)
	}
	if got := GCD(0, 5); got != 5 {
		t.Errorf("GCD(0, 5) = %d, want 5", got)
	}
	if got := LCM(4, 6); got != 12 {
		t.Errorf("LCM(4, 6) = %d, want 12", got)
	}
	if got := LCM(0, 6); got != 0 {
		t.Errorf("LCM(0, 6) = %d, want 0", got)
	}
	if got := LCM(-4, 6); got != 12 {
		t.Errorf("LCM(-4, 6) = %d, want 12", got)
	}
}

func TestLCM_LargeValues(t *testing.T) {
	// The raw product 2^40 * 2^41 overflows int64; the LCM itself fits.
	a, b := int64(1)<<40, int64(1)<<41
	if got := LCM(a, b); got != b {
		t.Errorf("LCM(2^40, 2^41) = %d, want %d", got, b)
	}
}

func TestIsPrime(t *testing.T) {
	primes := []int64{2, 3, 5, 7, 11, 13, 97, 7919}
	for _, p := range primes {
		if !IsPrime(p) {
			t.Errorf("IsPrime(%d) = false, want true", p)
		}
	}
	composites := []int64{-7, 0, 1, 4, 9, 100, 7917}
	for _, c := range composites {
		if IsPrime(c) {
			t.Errorf("IsPrime(%d) = true, want false", c)
		}
	}
}

func TestPrimeFactors(t *testing.T) {
	tests := []struct {
		n    int64
		want []int64
	}{
		{12, []int64{2, 2, 3}},
		{97, []int64{97}},
		{360, []int64{2, 2, 2, 3, 3, 5}},
		{1, nil},
	}
	for _, tt := range tests {
		got := PrimeFactors(tt.n)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("PrimeFactors(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestFibonacci(t *testing.T) {
	want := []int64{0, 1, 1, 2, 3, 5, 8, 13, 21, 34}
	for n, w := range want {
		got, err := Fibonacci(n)
		if err != nil {
			t.Fatalf("Fibonacci(%d) error: %v", n, err)
		}
		if got != w {
			t.Errorf("Fibonacci(%d) = %d, want %d", n, got, w)
		}
	}

	got, err := Fibonacci(92)
	if err != nil {
		t.Fatalf("Fibonacci(92) error: %v", err)
	}
	if got != 7540113804746346429 {
		t.Errorf("Fibonacci(92) = %d", got)
	}

	if _, err := Fibonacci(-1); err == nil {
		t.Error("expected error for negative input")
	}
	if _, err := Fibonacci(93); err == nil {
		t.Error("expected overflow error for n > 92")
	}
}
