package pngicon

import (
	"bytes"

	"github.com/juju/errors"

	"github.com/hwc2357300448/modern-clipboard-manager/flexzlib"
)

// Image is a PNG file broken back into its parts.
type Image struct {
	Header Header
	Chunks []Chunk
	// Pixels is the inflated scanline buffer, filter bytes included.
	Pixels []byte
}

// Inspect parses p, verifying every chunk checksum, and inflates the image
// data. Only 8-bit truecolor, non-interlaced images are accepted.
func Inspect(p []byte) (*Image, error) {
	if len(p) < len(signature) || !bytes.Equal(p[:len(signature)], signature) {
		return nil, ErrSignature
	}

	img := &Image{}
	r := &chunkReader{buf: p, off: len(signature)}
	var idat []byte
	for done := false; !done; {
		c, err := r.Next()
		if err != nil {
			return nil, err
		}
		if len(img.Chunks) == 0 && c.Type != typeIHDR {
			return nil, errors.Errorf("pngicon: first chunk is %s, want %s", c.Type, typeIHDR)
		}

		switch c.Type {
		case typeIHDR:
			if len(img.Chunks) != 0 {
				return nil, errors.Errorf("pngicon: duplicate %s chunk", typeIHDR)
			}
			if len(c.Data) != headerSize {
				return nil, errors.Errorf("pngicon: %s chunk has %d bytes, want %d", typeIHDR, len(c.Data), headerSize)
			}
			if err := img.Header.Read(bytes.NewReader(c.Data)); err != nil {
				return nil, errors.Trace(err)
			}
		case typeIDAT:
			idat = append(idat, c.Data...)
		case typeIEND:
			if len(c.Data) != 0 {
				return nil, errors.Errorf("pngicon: %s chunk has %d bytes of data", typeIEND, len(c.Data))
			}
			if r.Len() != 0 {
				return nil, errors.Errorf("pngicon: %d trailing bytes after %s", r.Len(), typeIEND)
			}
			done = true
		}
		img.Chunks = append(img.Chunks, c)
	}

	h := img.Header
	if h.BitDepth != bitDepth || h.ColorType != colorTypeTruecolor || h.Compression != 0 || h.Filter != 0 || h.Interlace != 0 {
		return nil, errors.NotSupportedf("bit depth %d, color type %d, compression %d, filter %d, interlace %d",
			h.BitDepth, h.ColorType, h.Compression, h.Filter, h.Interlace)
	}
	if h.Width == 0 || h.Height == 0 || h.Width > MaxDimension || h.Height > MaxDimension {
		return nil, &DimensionError{Width: int(h.Width), Height: int(h.Height)}
	}
	want := rawSize(uint64(h.Width), uint64(h.Height))
	if want > MaxRawSize {
		return nil, &DimensionError{Width: int(h.Width), Height: int(h.Height), TooLarge: true}
	}
	if idat == nil {
		return nil, errors.Errorf("pngicon: no %s chunk", typeIDAT)
	}

	inflator := flexzlib.NewInflator()
	defer inflator.Close()
	pixels, err := inflator.InflateLimit(idat, int64(want))
	if flexzlib.IsTooLarge(err) {
		return nil, errors.Errorf("pngicon: image data exceeds %d bytes", want)
	}
	if err != nil {
		return nil, errors.Annotate(err, "could not inflate image data")
	}
	if uint64(len(pixels)) != want {
		return nil, errors.Errorf("pngicon: image data is %d bytes, want %d", len(pixels), want)
	}
	img.Pixels = pixels
	return img, nil
}

// ChunkTypes lists the chunk types in file order.
func (img *Image) ChunkTypes() []string {
	types := make([]string, len(img.Chunks))
	for i := range img.Chunks {
		types[i] = img.Chunks[i].Type
	}
	return types
}

// SolidColor reports whether every scanline is unfiltered and every pixel
// has the same color, returning that color.
func (img *Image) SolidColor() (Color, bool) {
	stride := img.Header.stride()
	if stride <= 1 || len(img.Pixels) < stride {
		return Color{}, false
	}
	c := Color{R: img.Pixels[1], G: img.Pixels[2], B: img.Pixels[3]}
	for y := 0; y+stride <= len(img.Pixels); y += stride {
		row := img.Pixels[y : y+stride]
		if row[0] != filterNone {
			return Color{}, false
		}
		for x := 1; x < stride; x += bytesPerPixel {
			if row[x] != c.R || row[x+1] != c.G || row[x+2] != c.B {
				return Color{}, false
			}
		}
	}
	return c, true
}
