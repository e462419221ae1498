package money

import (
	"encoding/json"
	"testing"
)

func mustFromString(t *testing.T, s string) Money {
	t.Helper()
	m, err := FromString(s)
	if err != nil {
		t.Fatalf("FromString(%q): %v", s, err)
	}
	return m
}

func TestMulIntExact(t *testing.T) {
	tests := []struct {
		price string
		qty   int
		want  string
	}{
		{"12.99", 2, "25.98"},
		{"0.10", 3, "0.30"}, // would drift as binary float
		{"19.99", 20, "399.80"},
		{"3.50", 1, "3.50"},
	}
	for _, tt := range tests {
		got := mustFromString(t, tt.price).MulInt(tt.qty)
		if got.String() != tt.want {
			t.Errorf("%s * %d = %s, want %s", tt.price, tt.qty, got, tt.want)
		}
	}
}

func TestAddExact(t *testing.T) {
	sum := Zero()
	for i := 0; i < 10; i++ {
		sum = sum.Add(mustFromString(t, "0.10"))
	}
	if !sum.Equal(mustFromString(t, "1.00")) {
		t.Errorf("10 * 0.10 = %s, want 1.00", sum)
	}
}

func TestEqualWithin(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"10.00", "10.00", true},
		{"10.00", "10.01", true},
		{"10.00", "9.99", true},
		{"10.00", "10.02", false},
		{"10.00", "9.98", false},
	}
	for _, tt := range tests {
		a, b := mustFromString(t, tt.a), mustFromString(t, tt.b)
		if got := a.EqualWithin(b); got != tt.want {
			t.Errorf("EqualWithin(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDivRounds(t *testing.T) {
	got := mustFromString(t, "10.00").Div(3)
	if got.String() != "3.33" {
		t.Errorf("10.00 / 3 = %s, want 3.33", got)
	}
}

func TestJSONIsDecimalString(t *testing.T) {
	b, err := json.Marshal(mustFromString(t, "12.5"))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"12.50"` {
		t.Errorf("marshal = %s, want \"12.50\"", b)
	}

	var m Money
	if err := json.Unmarshal([]byte(`"25.98"`), &m); err != nil {
		t.Fatal(err)
	}
	if !m.Equal(mustFromString(t, "25.98")) {
		t.Errorf("unmarshal = %s, want 25.98", m)
	}
}
