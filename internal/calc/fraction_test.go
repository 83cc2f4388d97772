package calc

import "testing"

func TestParseFraction(t *testing.T) {
	f, err := ParseFraction("3/4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Num != 3 || f.Den != 4 {
		t.Errorf("ParseFraction(3/4) = %v", f)
	}

	f, err = ParseFraction("5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Num != 5 || f.Den != 1 {
		t.Errorf("ParseFraction(5) = %v", f)
	}

	f, err = ParseFraction(" 2 / -6 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Num != -1 || f.Den != 3 {
		t.Errorf("ParseFraction(2/-6) = %v, want -1/3", f)
	}

	for _, bad := range []string{"", "a/b", "1/0", "1/2/3"} {
		if _, err := ParseFraction(bad); err == nil {
			t.Errorf("ParseFraction(%q): expected error", bad)
		}
	}
}

func TestAddFractions(t *testing.T) {
	tests := []struct {
		a, b, want string
	}{
		{"1/2", "1/3", "5/6"},
		{"1/4", "1/4", "1/2"},
		{"1/2", "1/2", "1"},
		{"-1/2", "1/2", "0"},
		{"3", "1/3", "10/3"},
	}
	for _, tt := range tests {
		got, err := AddFractions(tt.a, tt.b)
		if err != nil {
			t.Fatalf("AddFractions(%q, %q) error: %v", tt.a, tt.b, err)
		}
		if got != tt.want {
			t.Errorf("AddFractions(%q, %q) = %q, want %q", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestMultiplyFractions(t *testing.T) {
	tests := []struct {
		a, b, want string
	}{
		{"1/2", "2/3", "1/3"},
		{"3/4", "4/3", "1"},
		{"-1/2", "1/2", "-1/4"},
		{"0", "7/9", "0"},
	}
	for _, tt := range tests {
		got, err := MultiplyFractions(tt.a, tt.b)
		if err != nil {
			t.Fatalf("MultiplyFractions(%q, %q) error: %v", tt.a, tt.b, err)
		}
		if got != tt.want {
			t.Errorf("MultiplyFractions(%q, %q) = %q, want %q", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSimplifyFraction(t *testing.T) {
	got, err := SimplifyFraction(12, 18)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2/3" {
		t.Errorf("SimplifyFraction(12, 18) = %q, want 2/3", got)
	}

	got, _ = SimplifyFraction(4, -8)
	if got != "-1/2" {
		t.Errorf("SimplifyFraction(4, -8) = %q, want -1/2", got)
	}

	if _, err := SimplifyFraction(1, 0); err == nil {
		t.Error("expected error for zero denominator")
	}
}
