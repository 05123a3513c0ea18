package qoiformats

import (
	"bytes"
	"errors"
	"testing"
)

func TestDecodeRejectsShortStream(t *testing.T) {
	_, _, err := Decode(make([]byte, headerSize), 0)
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("Decode error = %v, want ErrTruncated", err)
	}
}

func TestDecodeRejectsBadRequestedChannels(t *testing.T) {
	stream := mustEncode(t, []byte{1, 2, 3}, Descriptor{Width: 1, Height: 1, Channels: 3, Colorspace: 0})
	_, _, err := Decode(stream, 5)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("Decode error = %v, want ErrInvalidArgument", err)
	}
}

func TestDecodeRejectsBadHeader(t *testing.T) {
	stream := mustEncode(t, []byte{1, 2, 3}, Descriptor{Width: 1, Height: 1, Channels: 3, Colorspace: 0})
	stream[0] = 'x'
	_, _, err := Decode(stream, 0)
	if !errors.Is(err, ErrInvalidHeader) {
		t.Fatalf("Decode error = %v, want ErrInvalidHeader", err)
	}
}

func TestDecodeRejectsBodyMissingTrailingOps(t *testing.T) {
	desc := Descriptor{Width: 2, Height: 1, Channels: 4, Colorspace: 0}
	stream := mustEncode(t, []byte{1, 2, 3, 255, 4, 5, 6, 255}, desc)

	// Drop the second pixel's op from the body, but keep a full 8-byte
	// tail so the stream still looks superficially complete: the decoder
	// must notice it ran out of ops before producing all pixels.
	truncated := append([]byte{}, stream[:len(stream)-len(padding)-2]...)
	truncated = append(truncated, padding[:]...)

	_, _, err := Decode(truncated, 0)
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("Decode error = %v, want ErrTruncated", err)
	}
}

func TestDecodeDropsAlphaFor3ChannelRequest(t *testing.T) {
	desc := Descriptor{Width: 1, Height: 1, Channels: 4, Colorspace: 0}
	stream := mustEncode(t, []byte{10, 20, 30, 128}, desc)

	pixels, gotDesc, err := Decode(stream, 3)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if gotDesc.Channels != 4 {
		t.Fatalf("Decode descriptor channels = %d, want 4 (the stream's own channel count)", gotDesc.Channels)
	}
	want := []byte{10, 20, 30}
	if !bytes.Equal(pixels, want) {
		t.Fatalf("Decode pixels = %v, want %v", pixels, want)
	}
}

func TestDecodeZeroRequestedChannelsUsesStreamChannels(t *testing.T) {
	desc := Descriptor{Width: 1, Height: 1, Channels: 3, Colorspace: 1}
	stream := mustEncode(t, []byte{10, 20, 30}, desc)

	pixels, gotDesc, err := Decode(stream, 0)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if len(pixels) != 3 {
		t.Fatalf("len(pixels) = %d, want 3", len(pixels))
	}
	if gotDesc != desc {
		t.Fatalf("Decode descriptor = %+v, want %+v", gotDesc, desc)
	}
}

func TestDecodeIndexHitReStoresSameSlot(t *testing.T) {
	// A stream with an INDEX op whose looked-up pixel is re-stored into
	// its own slot must still decode correctly, even though the store is
	// a no-op (§3: "a no-op but must be on the code path to preserve
	// symmetry").
	pixels := []byte{
		10, 20, 30, 255,
		200, 5, 9, 255,
		10, 20, 30, 255,
	}
	desc := Descriptor{Width: 3, Height: 1, Channels: 4, Colorspace: 0}
	stream := mustEncode(t, pixels, desc)

	got, _, err := Decode(stream, 0)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if !bytes.Equal(got, pixels) {
		t.Fatalf("Decode pixels = %v, want %v", got, pixels)
	}
}
