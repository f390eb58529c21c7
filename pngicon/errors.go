package pngicon

import (
	"fmt"

	"github.com/juju/errors"
)

var (
	// ErrSignature is returned by Inspect when the input does not start with
	// the PNG signature.
	ErrSignature = errors.New("pngicon: invalid signature")
	// ErrTruncated is returned by Inspect when a chunk runs past the end of
	// the input.
	ErrTruncated = errors.New("pngicon: truncated chunk")
)

// DimensionError reports a width or height outside (0, MaxDimension], or
// dimensions whose scanline buffer would exceed MaxRawSize.
type DimensionError struct {
	Width, Height int
	TooLarge      bool
}

func (e *DimensionError) Error() string {
	if e.TooLarge {
		return fmt.Sprintf("pngicon: dimension %dx%d exceeds %d bytes of image data", e.Width, e.Height, MaxRawSize)
	}
	return fmt.Sprintf("pngicon: invalid dimension %dx%d", e.Width, e.Height)
}

// ColorComponentError reports a color component outside [0, 255].
type ColorComponentError struct {
	Channel string
	Value   int
}

func (e *ColorComponentError) Error() string {
	return fmt.Sprintf("pngicon: %s component %d out of range [0, 255]", e.Channel, e.Value)
}

// ChecksumError reports a chunk whose trailing CRC does not match its
// contents.
type ChecksumError struct {
	Type      string
	Want, Got uint32
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("pngicon: %s chunk checksum mismatch: stored=%08x computed=%08x", e.Type, e.Want, e.Got)
}

func IsInvalidDimension(err error) bool {
	_, ok := errors.Cause(err).(*DimensionError)
	return ok
}

func IsInvalidColorComponent(err error) bool {
	_, ok := errors.Cause(err).(*ColorComponentError)
	return ok
}

func IsChecksumMismatch(err error) bool {
	_, ok := errors.Cause(err).(*ChecksumError)
	return ok
}
