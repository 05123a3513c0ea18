package qoiformats

// indexTable is the fixed 64-slot table of recently-seen colors shared by
// the encoder and decoder. Slot occupancy is keyed by Pixel.hash(); the
// zero value is the all-zero pixel (R=G=B=A=0), which intentionally does
// not equal basePixel.
type indexTable [64]Pixel

func (t *indexTable) get(h uint8) Pixel {
	return t[h]
}

func (t *indexTable) set(p Pixel) {
	t[p.hash()] = p
}
