package theme

import "testing"

func TestBlend(t *testing.T) {
	tests := map[string]struct {
		a, b string
		t    float64
		want string
	}{
		"start":      {a: "#000000", b: "#ffffff", t: 0, want: "#000000"},
		"end":        {a: "#000000", b: "#ffffff", t: 1, want: "#ffffff"},
		"bad first":  {a: "nope", b: "#ffffff", t: 0.5, want: "#ffffff"},
		"bad second": {a: "#123456", b: "nope", t: 0.5, want: "#123456"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Blend(tc.a, tc.b, tc.t); got != tc.want {
				t.Fatalf("Blend() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestBlendMidpointDiffers(t *testing.T) {
	mid := Blend(accent, muted, 0.5)
	if mid == accent || mid == muted {
		t.Fatalf("expected a new colour, got %q", mid)
	}
}
