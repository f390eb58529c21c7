package pngicon

import (
	"bytes"
	"encoding/binary"
	"io"
)

const (
	bitDepth           = 8
	colorTypeTruecolor = 2
	filterNone         = 0
	bytesPerPixel      = 3
	headerSize         = 13
)

// Header holds the IHDR fields in their on-disk order.
type Header struct {
	Width       uint32
	Height      uint32
	BitDepth    uint8
	ColorType   uint8
	Compression uint8
	Filter      uint8
	Interlace   uint8
}

func (h *Header) Read(r io.Reader) error {
	return binary.Read(r, binary.BigEndian, h)
}

func (h *Header) Write(w io.Writer) error {
	return binary.Write(w, binary.BigEndian, h)
}

func (h *Header) chunk() (Chunk, error) {
	var buf bytes.Buffer
	buf.Grow(headerSize)
	if err := h.Write(&buf); err != nil {
		return Chunk{}, err
	}
	return Chunk{Type: typeIHDR, Data: buf.Bytes()}, nil
}

// stride is the length of one scanline including its filter byte.
func (h *Header) stride() int {
	return 1 + bytesPerPixel*int(h.Width)
}
