// Package geodesy implements the WGS84 ↔ British National Grid conversion
// behind repository.GeodesyProvider, using proj4 spatial references.
package geodesy

import (
	"fmt"

	"github.com/ctessum/geom/proj"

	"bnghex/internal/domain/hexgrid"
)

const (
	wgs84Proj4 = "+proj=longlat +datum=WGS84 +no_defs"

	// EPSG:27700, OSGB36 transverse Mercator with the standard seven
	// parameter Helmert shift to WGS84.
	bngProj4 = "+proj=tmerc +lat_0=49 +lon_0=-2 +k=0.9996012717 " +
		"+x_0=400000 +y_0=-100000 +ellps=airy " +
		"+towgs84=446.448,-125.157,542.06,0.15,0.247,0.842,-20.489 " +
		"+units=m +no_defs"
)

// OSGBProvider converts between WGS84 and BNG. Construct it once and share
// it; both transforms are stateless after construction.
type OSGBProvider struct {
	toProjected  proj.Transformer
	toGeographic proj.Transformer
}

// NewOSGBProvider builds the forward and inverse transforms.
func NewOSGBProvider() (*OSGBProvider, error) {
	geographic, err := proj.Parse(wgs84Proj4)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing WGS84 definition: %v", hexgrid.ErrProjection, err)
	}
	projected, err := proj.Parse(bngProj4)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing BNG definition: %v", hexgrid.ErrProjection, err)
	}

	forward, err := geographic.NewTransform(projected)
	if err != nil {
		return nil, fmt.Errorf("%w: building WGS84→BNG transform: %v", hexgrid.ErrProjection, err)
	}
	inverse, err := projected.NewTransform(geographic)
	if err != nil {
		return nil, fmt.Errorf("%w: building BNG→WGS84 transform: %v", hexgrid.ErrProjection, err)
	}

	return &OSGBProvider{toProjected: forward, toGeographic: inverse}, nil
}

// ToProjected converts a WGS84 longitude/latitude to BNG easting/northing.
func (p *OSGBProvider) ToProjected(lon, lat float64) (float64, float64, error) {
	easting, northing, err := p.toProjected(lon, lat)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", hexgrid.ErrProjection, err)
	}
	return easting, northing, nil
}

// ToGeographic converts a BNG easting/northing to WGS84 longitude/latitude.
func (p *OSGBProvider) ToGeographic(easting, northing float64) (float64, float64, error) {
	lon, lat, err := p.toGeographic(easting, northing)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", hexgrid.ErrProjection, err)
	}
	return lon, lat, nil
}
