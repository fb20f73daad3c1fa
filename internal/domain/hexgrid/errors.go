package hexgrid

import (
	"errors"
	"fmt"
)

// Sentinel errors for identifier decoding and the external collaborators.
// Each failure mode is distinguishable with errors.Is so callers can tell
// corruption from version skew.
var (
	ErrInvalidIdentifierLength = errors.New("invalid identifier length")
	ErrInvalidChecksum         = errors.New("invalid checksum")
	ErrBase64Decode            = errors.New("base64 decode error")
	ErrInvalidDimension        = errors.New("invalid dimension")
	ErrProjection              = errors.New("projection error")
	ErrGeometryParse           = errors.New("geometry parse error")
)

// InvalidZoomLevelError reports a zoom level outside 0..15.
type InvalidZoomLevelError struct {
	Zoom int
}

func (e *InvalidZoomLevelError) Error() string {
	return fmt.Sprintf("invalid zoom level: %d", e.Zoom)
}

// UnsupportedVersionError reports an identifier whose version byte does not
// match IdentifierVersion. The checksum was already valid, so this signals
// version skew rather than corruption.
type UnsupportedVersionError struct {
	Version byte
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported version: %d", e.Version)
}
