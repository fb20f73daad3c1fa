package hexgrid

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"math"
)

// Identifier is the decoded form of a cell identifier.
type Identifier struct {
	Version  byte
	Easting  float64
	Northing float64
	Zoom     int
}

// EncodeIdentifier packs BNG coordinates and a zoom level into a URL-safe
// Base64 cell identifier.
//
// The decoded form is 19 bytes, big-endian:
//
//	[0]     version (currently 1)
//	[1:9]   easting  × 1000, rounded, as uint64
//	[9:17]  northing × 1000, rounded, as uint64
//	[17]    zoom level
//	[18]    wrapping 8-bit sum of bytes 0..17
//
// Coordinates are scaled through int64 before the unsigned conversion, so
// negative (off-grid) values wrap two's-complement deterministically on
// every platform.
func EncodeIdentifier(easting, northing float64, zoom int) string {
	var buf [identifierLength]byte
	buf[0] = IdentifierVersion
	binary.BigEndian.PutUint64(buf[1:9], uint64(int64(math.Round(easting*scaleFactor))))
	binary.BigEndian.PutUint64(buf[9:17], uint64(int64(math.Round(northing*scaleFactor))))
	buf[17] = byte(zoom)

	var sum byte
	for _, b := range buf[:identifierLength-1] {
		sum += b
	}
	buf[identifierLength-1] = sum

	return base64.RawURLEncoding.EncodeToString(buf[:])
}

// DecodeIdentifier unpacks a cell identifier produced by EncodeIdentifier.
//
// Failures are distinguishable: ErrBase64Decode for malformed Base64,
// ErrInvalidIdentifierLength when the payload is not 19 bytes,
// ErrInvalidChecksum when the trailing byte does not match the recomputed
// sum, and UnsupportedVersionError when the (checksum-valid) version byte
// is not IdentifierVersion.
func DecodeIdentifier(id string) (Identifier, error) {
	data, err := base64.RawURLEncoding.DecodeString(id)
	if err != nil {
		return Identifier{}, fmt.Errorf("%w: %v", ErrBase64Decode, err)
	}

	if len(data) != identifierLength {
		return Identifier{}, ErrInvalidIdentifierLength
	}

	var sum byte
	for _, b := range data[:identifierLength-1] {
		sum += b
	}
	if sum != data[identifierLength-1] {
		return Identifier{}, ErrInvalidChecksum
	}

	if data[0] != IdentifierVersion {
		return Identifier{}, &UnsupportedVersionError{Version: data[0]}
	}

	return Identifier{
		Version:  data[0],
		Easting:  float64(binary.BigEndian.Uint64(data[1:9])) / scaleFactor,
		Northing: float64(binary.BigEndian.Uint64(data[9:17])) / scaleFactor,
		Zoom:     int(data[17]),
	}, nil
}
