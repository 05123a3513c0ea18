package qoiformats

// Pixel is an 8-bit-per-channel RGBA color. Channel arithmetic throughout the
// codec wraps modulo 256, which Go's uint8 gives us for free.
type Pixel struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

// basePixel is the implicit previous-pixel value at the start of every
// encode/decode pass.
var basePixel = Pixel{R: 0, G: 0, B: 0, A: 255}

// Equals reports whether p and other have identical channels.
func (p Pixel) Equals(other Pixel) bool {
	return p == other
}

// hash maps p to a slot in the 64-entry recently-seen index table.
func (p Pixel) hash() uint8 {
	return uint8((uint32(p.R)*3 + uint32(p.G)*5 + uint32(p.B)*7 + uint32(p.A)*11) % 64)
}
