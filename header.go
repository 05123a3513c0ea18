package qoiformats

import "fmt"

// magic is the 4-byte prefix identifying a QOI stream.
const magic = "qoif"

// headerSize is the fixed length, in bytes, of the QOI header.
const headerSize = 14

// maxPixelCount bounds width*height so that worst-case buffer sizing never
// overflows a 32-bit length computation.
const maxPixelCount = 400_000_000

// padding is the fixed 8-byte sentinel that terminates every QOI stream.
var padding = [8]byte{0, 0, 0, 0, 0, 0, 0, 1}

// Descriptor holds an image's geometry and pixel semantics: dimensions,
// channel count, and colorspace. It is the in-memory form of the 14-byte
// QOI header.
type Descriptor struct {
	Width      uint32
	Height     uint32
	Channels   uint8
	Colorspace uint8
}

// validate checks the invariants every Descriptor must satisfy before it can
// be encoded or after it has been read from a header.
func (d Descriptor) validate() error {
	if d.Width == 0 || d.Height == 0 {
		return fmt.Errorf("%w: width and height must be nonzero, got %dx%d", ErrInvalidArgument, d.Width, d.Height)
	}
	if d.Height >= maxPixelCount/d.Width {
		return fmt.Errorf("%w: %dx%d exceeds the %d pixel cap", ErrInvalidArgument, d.Width, d.Height, maxPixelCount)
	}
	if d.Channels != 3 && d.Channels != 4 {
		return fmt.Errorf("%w: channels must be 3 or 4, got %d", ErrInvalidArgument, d.Channels)
	}
	if d.Colorspace != 0 && d.Colorspace != 1 {
		return fmt.Errorf("%w: colorspace must be 0 or 1, got %d", ErrInvalidArgument, d.Colorspace)
	}
	return nil
}

// writeHeader encodes d into buf[0:headerSize] and returns the offset past
// the written header. buf must have at least headerSize bytes.
func writeHeader(buf []byte, d Descriptor) int {
	offset := copy(buf, magic)
	offset = write32(buf, offset, d.Width)
	offset = write32(buf, offset, d.Height)
	buf[offset] = d.Channels
	buf[offset+1] = d.Colorspace
	offset += 2

	if offset != headerSize {
		panic(fmt.Sprintf("qoiformats: header encoded to %d bytes, want %d", offset, headerSize))
	}
	return offset
}

// readHeader decodes the 14-byte header at the start of buf and validates
// it against the Descriptor invariants.
func readHeader(buf []byte) (Descriptor, error) {
	if len(buf) < headerSize {
		return Descriptor{}, fmt.Errorf("%w: need %d header bytes, got %d", ErrTruncated, headerSize, len(buf))
	}

	if string(buf[0:4]) != magic {
		return Descriptor{}, fmt.Errorf("%w: bad magic %q, want %q", ErrInvalidHeader, buf[0:4], magic)
	}

	width, offset := read32(buf, 4)
	height, offset := read32(buf, offset)
	d := Descriptor{
		Width:      width,
		Height:     height,
		Channels:   buf[offset],
		Colorspace: buf[offset+1],
	}

	if err := d.validate(); err != nil {
		return Descriptor{}, fmt.Errorf("%w: %v", ErrInvalidHeader, err)
	}
	return d, nil
}
