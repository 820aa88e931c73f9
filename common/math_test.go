package common

import "testing"

func TestLerp(t *testing.T) {
	cases := []struct {
		name    string
		a, b, t float64
		want    float64
	}{
		{"start", 2, 4, 0, 2},
		{"mid", 2, 4, 0.5, 3},
		{"end", 2, 4, 1, 4},
		{"clamp_high", 2, 4, 3, 4},
		{"clamp_low", 2, 4, -1, 2},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Lerp(c.a, c.b, c.t); got != c.want {
				t.Fatalf("Lerp(%v, %v, %v) = %v, want %v", c.a, c.b, c.t, got, c.want)
			}
		})
	}
}

func TestLerpVec3(t *testing.T) {
	a := Vec3{X: 0, Y: 0, Z: 0}
	b := Vec3{X: 2, Y: 4, Z: -8}

	got := LerpVec3(a, b, 0.25)
	want := Vec3{X: 0.5, Y: 1, Z: -2}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	if d := a.Dist(Vec3{X: 3, Z: 4}); d != 5 {
		t.Fatalf("expected distance 5, got %v", d)
	}
}
