package repository

// GeodesyProvider converts between geographic (WGS84 longitude/latitude)
// and projected (BNG easting/northing) coordinates.
//
// Implementations are constructed once, hold no mutable state, and are safe
// to share across goroutines; the indexing layer receives one explicitly
// rather than reaching for a hidden cached handle.
type GeodesyProvider interface {
	// ToProjected converts a WGS84 coordinate to BNG.
	ToProjected(lon, lat float64) (easting, northing float64, err error)
	// ToGeographic converts a BNG coordinate to WGS84.
	ToGeographic(easting, northing float64) (lon, lat float64, err error)
}
