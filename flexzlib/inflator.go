package flexzlib

import (
	"bytes"
	"io"
	"io/ioutil"

	"github.com/juju/errors"
	"github.com/klauspost/compress/zlib"
)

// Inflator decompresses a sequence of independent zlib streams, reusing
// its decompressor between calls. It is not safe for concurrent use.
type Inflator struct {
	r io.ReadCloser
}

func NewInflator() *Inflator {
	return &Inflator{}
}

// ErrTooLarge is returned by InflateLimit when a stream inflates past its
// limit.
var ErrTooLarge = errors.New("zlib: inflated data exceeds limit")

func IsTooLarge(err error) bool {
	return err != nil && errors.Cause(err) == ErrTooLarge
}

func (i *Inflator) Inflate(p []byte) ([]byte, error) {
	if err := i.reset(p); err != nil {
		return nil, err
	}
	out, err := ioutil.ReadAll(i.r)
	if err != nil {
		return nil, errors.Annotate(err, "zlib: inflate failed")
	}
	return out, nil
}

// InflateLimit is Inflate for untrusted input: it stops reading once more
// than max bytes come out of the stream.
func (i *Inflator) InflateLimit(p []byte, max int64) ([]byte, error) {
	if err := i.reset(p); err != nil {
		return nil, err
	}
	out, err := ioutil.ReadAll(io.LimitReader(i.r, max+1))
	if err != nil {
		return nil, errors.Annotate(err, "zlib: inflate failed")
	}
	if int64(len(out)) > max {
		return nil, errors.Annotatef(ErrTooLarge, "limit %d", max)
	}
	return out, nil
}

func (i *Inflator) reset(p []byte) error {
	buf := bytes.NewReader(p)
	if i.r == nil {
		// Created lazily since zlib.NewReader consumes the stream header.
		r, err := zlib.NewReader(buf)
		if err != nil {
			return errors.Annotate(err, "zlib: could not read header")
		}
		i.r = r
	} else if err := i.r.(zlib.Resetter).Reset(buf, nil); err != nil {
		return errors.Annotate(err, "zlib: could not read header")
	}
	return nil
}

// Close releases the underlying decompressor.
func (i *Inflator) Close() error {
	if i.r == nil {
		return nil
	}
	err := i.r.Close()
	i.r = nil
	return err
}
