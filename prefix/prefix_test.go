package prefix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/glint/glint/prefix"
)

func TestBinary(t *testing.T) {
	tests := []struct {
		name       string
		x          float64
		wantValue  float64
		wantPrefix string
	}{
		{
			name:       "BelowScale",
			x:          1023,
			wantValue:  1023,
			wantPrefix: "",
		},
		{
			name:       "Ki",
			x:          2048,
			wantValue:  2,
			wantPrefix: "Ki",
		},
		{
			name:       "Mi",
			x:          2 * 1024 * 1024,
			wantValue:  2,
			wantPrefix: "Mi",
		},
		{
			name:       "KiBoundary",
			x:          1024,
			wantValue:  1,
			wantPrefix: "Ki",
		},
		{
			name:       "LargeMantissa",
			x:          1023 * 1024,
			wantValue:  1023,
			wantPrefix: "Ki",
		},
		{
			name:       "Yi",
			x:          math.Pow(1024, 8),
			wantValue:  1,
			wantPrefix: "Yi",
		},
		{
			name:       "ClampedBeyondYi",
			x:          math.Pow(1024, 10),
			wantValue:  math.Pow(1024, 2),
			wantPrefix: "Yi",
		},
		{
			name:       "Zero",
			x:          0,
			wantValue:  0,
			wantPrefix: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			value, p := prefix.Binary(tc.x)
			if value != tc.wantValue || p != tc.wantPrefix {
				t.Errorf("Binary(%v) = (%v, %q), want (%v, %q)",
					tc.x, value, p, tc.wantValue, tc.wantPrefix)
			}
		})
	}
}

func TestSI(t *testing.T) {
	tests := []struct {
		name       string
		x          float64
		wantValue  float64
		wantPrefix string
	}{
		{
			name:       "Unscaled",
			x:          999,
			wantValue:  999,
			wantPrefix: "",
		},
		{
			name:       "Kilo",
			x:          2000,
			wantValue:  2,
			wantPrefix: "k",
		},
		{
			name:       "Mega",
			x:          2000000,
			wantValue:  2,
			wantPrefix: "M",
		},
		{
			name:       "Milli",
			x:          0.002,
			wantValue:  2,
			wantPrefix: "m",
		},
		{
			name:       "Micro",
			x:          2e-6,
			wantValue:  2,
			wantPrefix: "µ",
		},
		{
			name:       "NegativeKilo",
			x:          -2000,
			wantValue:  -2,
			wantPrefix: "k",
		},
		{
			name:       "ClampedBeyondY",
			x:          1e30,
			wantValue:  1e6,
			wantPrefix: "Y",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			value, p := prefix.SI(tc.x)
			if p != tc.wantPrefix || math.Abs(value-tc.wantValue) > 1e-9*math.Abs(tc.wantValue) {
				t.Errorf("SI(%v) = (%v, %q), want (%v, %q)",
					tc.x, value, p, tc.wantValue, tc.wantPrefix)
			}
		})
	}
}

func ExampleBinary() {
	value, p := prefix.Binary(12 * 1024 * 1024)
	fmt.Printf("%v %sB\n", value, p)
	// Output:
	// 12 MiB
}
