package goldbook

import (
	"encoding/json"
	"testing"
)

func TestGold_String(t *testing.T) {
	// Gold weights always display three decimals.
	testCases := []struct {
		g    Gold
		want string
	}{
		{G(0), "0.000"},
		{G(1), "1.000"},
		{G(2.5), "2.500"},
		{G(-0.25), "-0.250"},
		{G(dec("3.1415")), "3.142"},
	}
	for _, tc := range testCases {
		if got := tc.g.String(); got != tc.want {
			t.Errorf("String() = %s, want %s", got, tc.want)
		}
	}
}

func TestGold_Mul(t *testing.T) {
	// 2.5 g at 25.5 KWD/g is 63.75 KWD, exactly.
	got := G(2.5).Mul(dec("25.5"))
	if !got.Equal(K(63.75)) {
		t.Errorf("Mul() = %s, want 63.750", got)
	}
}

func TestGold_Arithmetic(t *testing.T) {
	a, b := G(1.2), G(0.7)
	if got := a.Add(b); !got.Equal(G(1.9)) {
		t.Errorf("Add() = %s", got)
	}
	if got := a.Sub(b); !got.Equal(G(0.5)) {
		t.Errorf("Sub() = %s", got)
	}
	if got := b.Sub(a); !got.IsNegative() {
		t.Errorf("Sub() = %s, want negative", got)
	}
	if got := b.Sub(a).Abs(); !got.Equal(G(0.5)) {
		t.Errorf("Abs() = %s", got)
	}
	if !G(0).IsZero() {
		t.Error("G(0) must be zero")
	}
}

func TestGold_JSON(t *testing.T) {
	// Gold round-trips as a bare JSON number, not a quoted string.
	b, err := json.Marshal(G(2.5))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "2.5" {
		t.Errorf("marshal = %s, want 2.5", b)
	}

	var g Gold
	if err := json.Unmarshal([]byte("9.875"), &g); err != nil {
		t.Fatal(err)
	}
	if !g.Equal(G(9.875)) {
		t.Errorf("unmarshal = %s, want 9.875", g)
	}
}

func TestMoney_Decimal(t *testing.T) {
	// Additions never lose cents to float rounding.
	sum := K(0.1).Add(K(0.2))
	if !sum.Equal(K(0.3)) {
		t.Errorf("0.1 + 0.2 = %s, want 0.300", sum)
	}
}
