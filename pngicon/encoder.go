// Package pngicon encodes solid-color truecolor PNG images and inspects
// the files it produces.
package pngicon

import (
	"bytes"

	"github.com/juju/errors"
	"github.com/op/go-logging"

	"github.com/hwc2357300448/modern-clipboard-manager/flexzlib"
)

var log = logging.MustGetLogger("pngicon")

// MaxDimension is the largest width or height PNG allows.
const MaxDimension = 1<<31 - 1

// MaxRawSize caps the unfiltered scanline buffer of an image, and with it
// the memory Encode and Inspect are willing to allocate.
const MaxRawSize = 256 << 20

// DefaultCompression selects the zlib default level.
const DefaultCompression = flexzlib.DefaultCompression

// Spec describes a uniformly colored rectangle.
type Spec struct {
	Width  int
	Height int
	Color  Color
}

func (s Spec) Validate() error {
	if s.Width <= 0 || s.Height <= 0 || s.Width > MaxDimension || s.Height > MaxDimension {
		return &DimensionError{Width: s.Width, Height: s.Height}
	}
	if rawSize(uint64(s.Width), uint64(s.Height)) > MaxRawSize {
		return &DimensionError{Width: s.Width, Height: s.Height, TooLarge: true}
	}
	return nil
}

func rawSize(width, height uint64) uint64 {
	return height * (1 + bytesPerPixel*width)
}

// RawSize is the length of the unfiltered scanline buffer. It is only
// meaningful for a spec that passes Validate.
func (s Spec) RawSize() int {
	return s.Height * (1 + bytesPerPixel*s.Width)
}

// Encode returns the complete PNG file for s using default compression.
func Encode(s Spec) ([]byte, error) {
	return EncodeLevel(s, DefaultCompression)
}

// EncodeRGB is Encode for callers holding color components as plain
// integers; out-of-range components are rejected.
func EncodeRGB(width, height, r, g, b int) ([]byte, error) {
	c, err := NewColor(r, g, b)
	if err != nil {
		return nil, err
	}
	return Encode(Spec{Width: width, Height: height, Color: c})
}

// EncodeLevel is Encode with an explicit zlib compression level.
func EncodeLevel(s Spec, level int) ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if err := flexzlib.ValidLevel(level); err != nil {
		return nil, err
	}

	header := Header{
		Width:     uint32(s.Width),
		Height:    uint32(s.Height),
		BitDepth:  bitDepth,
		ColorType: colorTypeTruecolor,
	}
	ihdr, err := header.chunk()
	if err != nil {
		return nil, errors.Trace(err)
	}

	compressed, err := flexzlib.Deflate(scanlines(s), level)
	if err != nil {
		return nil, errors.Annotate(err, "could not compress scanlines")
	}

	chunks := []Chunk{
		ihdr,
		{Type: typeIDAT, Data: compressed},
		{Type: typeIEND},
	}
	size := len(signature)
	for i := range chunks {
		size += chunks[i].Size()
	}

	var buf bytes.Buffer
	buf.Grow(size)
	buf.Write(signature)
	for i := range chunks {
		if err := chunks[i].Write(&buf); err != nil {
			return nil, errors.Trace(err)
		}
	}

	log.Debugf("encoded %dx%d %s: raw=%d idat=%d total=%d", s.Width, s.Height, s.Color, s.RawSize(), len(compressed), buf.Len())
	return buf.Bytes(), nil
}

// scanlines builds the unfiltered image: each row is a zero filter byte
// followed by Width copies of the color.
func scanlines(s Spec) []byte {
	row := make([]byte, 1+bytesPerPixel*s.Width)
	row[0] = filterNone
	for x := 0; x < s.Width; x++ {
		p := row[1+bytesPerPixel*x:]
		p[0], p[1], p[2] = s.Color.R, s.Color.G, s.Color.B
	}

	raw := make([]byte, 0, s.RawSize())
	for y := 0; y < s.Height; y++ {
		raw = append(raw, row...)
	}
	return raw
}
