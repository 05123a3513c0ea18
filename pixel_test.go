package qoiformats

import "testing"

func TestPixelEquals(t *testing.T) {
	a := Pixel{R: 1, G: 2, B: 3, A: 4}
	b := Pixel{R: 1, G: 2, B: 3, A: 4}
	c := Pixel{R: 1, G: 2, B: 3, A: 5}

	if !a.Equals(b) {
		t.Fatalf("expected %v to equal %v", a, b)
	}
	if a.Equals(c) {
		t.Fatalf("did not expect %v to equal %v", a, c)
	}
}

func TestPixelHashMatchesReferenceFormula(t *testing.T) {
	cases := []struct {
		p    Pixel
		want uint8
	}{
		{Pixel{0, 0, 0, 0}, 0},
		{Pixel{0, 0, 0, 255}, (255 * 11) % 64},
		{Pixel{255, 255, 255, 255}, uint8((255*3 + 255*5 + 255*7 + 255*11) % 64)},
		{Pixel{10, 20, 30, 255}, uint8((10*3 + 20*5 + 30*7 + 255*11) % 64)},
	}
	for _, c := range cases {
		if got := c.p.hash(); got != c.want {
			t.Fatalf("hash(%v) = %d, want %d", c.p, got, c.want)
		}
	}
}

func TestBasePixel(t *testing.T) {
	want := Pixel{R: 0, G: 0, B: 0, A: 255}
	if basePixel != want {
		t.Fatalf("basePixel = %v, want %v", basePixel, want)
	}
}
