package pngicon

import (
	"encoding/binary"
	"hash/crc32"
	"io"

	"github.com/juju/errors"
)

var signature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

const (
	typeIHDR = "IHDR"
	typeIDAT = "IDAT"
	typeIEND = "IEND"
)

// A Chunk is a single length-prefixed, checksummed PNG chunk.
type Chunk struct {
	Type string
	Data []byte
}

// CRC returns the IEEE CRC-32 of the chunk type followed by its data.
func (c *Chunk) CRC() uint32 {
	h := crc32.NewIEEE()
	io.WriteString(h, c.Type)
	h.Write(c.Data)
	return h.Sum32()
}

// Size is the serialized size: length, type, data and CRC.
func (c *Chunk) Size() int {
	return 12 + len(c.Data)
}

func (c *Chunk) Write(w io.Writer) error {
	if len(c.Type) != 4 {
		return errors.NotValidf("chunk type %q", c.Type)
	}

	var scratch [8]byte
	binary.BigEndian.PutUint32(scratch[0:4], uint32(len(c.Data)))
	copy(scratch[4:8], c.Type)
	if _, err := w.Write(scratch[:]); err != nil {
		return errors.Annotatef(err, "could not write %s chunk header", c.Type)
	}
	if _, err := w.Write(c.Data); err != nil {
		return errors.Annotatef(err, "could not write %s chunk data", c.Type)
	}
	binary.BigEndian.PutUint32(scratch[0:4], c.CRC())
	if _, err := w.Write(scratch[0:4]); err != nil {
		return errors.Annotatef(err, "could not write %s chunk checksum", c.Type)
	}
	return nil
}

// chunkReader walks the chunk stream that follows the signature.
type chunkReader struct {
	buf []byte
	off int
}

func (b *chunkReader) Len() int { return len(b.buf) - b.off }

func (b *chunkReader) Next() (Chunk, error) {
	if b.Len() < 12 {
		return Chunk{}, errors.Annotatef(ErrTruncated, "at offset %d", b.off)
	}
	n := binary.BigEndian.Uint32(b.buf[b.off : b.off+4])
	if uint64(n)+12 > uint64(b.Len()) {
		return Chunk{}, errors.Annotatef(ErrTruncated, "length %d at offset %d", n, b.off)
	}

	start := b.off + 8
	end := start + int(n)
	c := Chunk{
		Type: string(b.buf[b.off+4 : start]),
		Data: b.buf[start:end],
	}
	stored := binary.BigEndian.Uint32(b.buf[end : end+4])
	if got := c.CRC(); got != stored {
		return c, &ChecksumError{Type: c.Type, Want: stored, Got: got}
	}

	b.off = end + 4
	return c, nil
}
