// Package geometry parses geometry text into orb geometries, auto-detecting
// WKT and GeoJSON. It is used by ingestion only; the index core never parses
// text.
package geometry

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/paulmach/orb/geojson"

	"bnghex/internal/domain/hexgrid"
)

// Parse parses a geometry string. Text starting with '{' is treated as
// GeoJSON, everything else as WKT.
func Parse(text string) (orb.Geometry, error) {
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "{") {
		return ParseGeoJSON(trimmed)
	}
	return ParseWKT(trimmed)
}

// ParseGeoJSON parses a GeoJSON geometry or Feature. FeatureCollections are
// rejected; index individual geometries instead.
func ParseGeoJSON(text string) (orb.Geometry, error) {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal([]byte(text), &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", hexgrid.ErrGeometryParse, err)
	}

	switch probe.Type {
	case "Feature":
		feature, err := geojson.UnmarshalFeature([]byte(text))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", hexgrid.ErrGeometryParse, err)
		}
		if feature.Geometry == nil {
			return nil, fmt.Errorf("%w: feature has no geometry", hexgrid.ErrGeometryParse)
		}
		return feature.Geometry, nil

	case "FeatureCollection":
		return nil, fmt.Errorf("%w: FeatureCollection not supported, use individual geometries", hexgrid.ErrGeometryParse)

	default:
		geom, err := geojson.UnmarshalGeometry([]byte(text))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", hexgrid.ErrGeometryParse, err)
		}
		return geom.Geometry(), nil
	}
}

// ParseWKT parses a WKT geometry string.
func ParseWKT(text string) (orb.Geometry, error) {
	geom, err := wkt.Unmarshal(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", hexgrid.ErrGeometryParse, err)
	}
	return geom, nil
}
