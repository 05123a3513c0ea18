package qoiformats

import "fmt"

// Decode parses a complete QOI byte stream and reconstructs its pixels.
// requestedChannels selects the output layout: 0 means "use the stream's
// own channel count", otherwise it must be 3 or 4. The returned Descriptor
// always reports the stream's own channel count, even when requestedChannels
// asked for a different layout.
func Decode(data []byte, requestedChannels int) ([]byte, Descriptor, error) {
	if requestedChannels != 0 && requestedChannels != 3 && requestedChannels != 4 {
		return nil, Descriptor{}, fmt.Errorf("%w: requestedChannels must be 0, 3, or 4, got %d", ErrInvalidArgument, requestedChannels)
	}
	if len(data) < headerSize+len(padding) {
		return nil, Descriptor{}, fmt.Errorf("%w: stream is %d bytes, need at least %d", ErrTruncated, len(data), headerSize+len(padding))
	}

	desc, err := readHeader(data)
	if err != nil {
		return nil, Descriptor{}, err
	}

	outChannels := requestedChannels
	if outChannels == 0 {
		outChannels = int(desc.Channels)
	}

	pixelCount := int(desc.Width) * int(desc.Height)
	out, allocErr := allocate(pixelCount * outChannels)
	if allocErr != nil {
		return nil, Descriptor{}, allocErr
	}

	px := basePixel
	var table indexTable
	run := 0

	p := headerSize
	paddingStart := len(data) - len(padding)

	for i := 0; i < pixelCount; i++ {
		if run > 0 {
			run--
		} else {
			if p >= paddingStart {
				return nil, Descriptor{}, fmt.Errorf("%w: stream ended before producing all %d pixels (got %d)", ErrTruncated, pixelCount, i)
			}
			b1 := data[p]

			switch {
			case b1 == opRGB:
				if p+4 > len(data) {
					return nil, Descriptor{}, fmt.Errorf("%w: QOI_OP_RGB payload runs past end of stream at byte %d", ErrTruncated, p)
				}
				px.R, px.G, px.B = data[p+1], data[p+2], data[p+3]
				p += 4
				table.set(px)

			case b1 == opRGBA:
				if p+5 > len(data) {
					return nil, Descriptor{}, fmt.Errorf("%w: QOI_OP_RGBA payload runs past end of stream at byte %d", ErrTruncated, p)
				}
				px.R, px.G, px.B, px.A = data[p+1], data[p+2], data[p+3], data[p+4]
				p += 5
				table.set(px)

			case b1&opTagMask == opIndex:
				px = table.get(b1 & 0x3F)
				p++
				table.set(px)

			case b1&opTagMask == opDiff:
				px.R += ((b1 >> 4) & 0x3) - 2
				px.G += ((b1 >> 2) & 0x3) - 2
				px.B += (b1 & 0x3) - 2
				p++
				table.set(px)

			case b1&opTagMask == opLuma:
				if p+2 > len(data) {
					return nil, Descriptor{}, fmt.Errorf("%w: QOI_OP_LUMA payload runs past end of stream at byte %d", ErrTruncated, p)
				}
				b2 := data[p+1]
				vg := (b1 & 0x3F) - 32
				px.R += vg - 8 + ((b2 >> 4) & 0x0F)
				px.G += vg
				px.B += vg - 8 + (b2 & 0x0F)
				p += 2
				table.set(px)

			default: // opRun
				run = int(b1 & 0x3F)
				p++
				// run does not update the index table: px is unchanged and
				// the previous non-run pixel already populated its slot.
			}
		}

		writePixel(out, i*outChannels, px, outChannels)
	}

	return out, desc, nil
}

// writePixel stores px into out at the given byte offset using outChannels
// bytes (3 drops alpha, 4 keeps it).
func writePixel(out []byte, offset int, px Pixel, outChannels int) {
	out[offset] = px.R
	out[offset+1] = px.G
	out[offset+2] = px.B
	if outChannels == 4 {
		out[offset+3] = px.A
	}
}
