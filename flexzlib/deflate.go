package flexzlib

import (
	"bytes"

	"github.com/juju/errors"
	"github.com/klauspost/compress/zlib"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("flexzlib")

// Compression levels accepted by Deflate.
const (
	NoCompression      = zlib.NoCompression
	BestSpeed          = zlib.BestSpeed
	BestCompression    = zlib.BestCompression
	DefaultCompression = zlib.DefaultCompression
)

// ValidLevel reports whether level can be passed to Deflate.
func ValidLevel(level int) error {
	if level == DefaultCompression || (level >= NoCompression && level <= BestCompression) {
		return nil
	}
	return errors.NotValidf("compression level %d", level)
}

// Deflate compresses p into a single complete zlib stream (RFC 1950).
func Deflate(p []byte, level int) ([]byte, error) {
	if err := ValidLevel(level); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w, err := zlib.NewWriterLevel(&buf, level)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if _, err := w.Write(p); err != nil {
		return nil, errors.Annotate(err, "zlib: write failed")
	}
	if err := w.Close(); err != nil {
		return nil, errors.Annotate(err, "zlib: flush failed")
	}

	log.Debugf("deflated %d bytes into %d (level=%d)", len(p), buf.Len(), level)
	return buf.Bytes(), nil
}
