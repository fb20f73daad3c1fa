package hexgrid

import "github.com/paulmach/orb"

// IdentifierVersion is the current identifier format version.
const IdentifierVersion byte = 1

// MaxZoomLevel is the highest supported zoom level.
const MaxZoomLevel = 15

// scaleFactor preserves three decimal places when packing coordinates
// into an identifier (meters to millimeters).
const scaleFactor = 1000

// identifierLength is the size of the decoded identifier in bytes.
const identifierLength = 19

// GridExtent is the British National Grid extent the index is defined over,
// in meters. Conversions never reject points outside it; only bulk
// generation clips results to the origin side.
var GridExtent = orb.Bound{
	Min: orb.Point{0, 0},
	Max: orb.Point{750000, 1350000},
}

// CellRadius holds the hexagon circumradius in meters for each zoom level.
var CellRadius = [16]float64{
	1281249.9438829257,
	483045.8762201923,
	182509.65769514776,
	68979.50076169973,
	26069.67405498836,
	9849.595592375015,
	3719.867784388759,
	1399.497052515653,
	529.4301968468868,
	199.76319313961054,
	75.05553499465135,
	28.290163190291665,
	10.392304845413264,
	4.041451884327381,
	1.7320508075688774,
	0.5773502691896258,
}

// CellWidths holds the horizontal pitch in meters for each zoom level.
//
// The widths are tabulated independently of CellRadius·√3 so that low zoom
// levels get round values. Reconstructed centers may therefore differ from
// an originating point by up to ~100 m at low zoom. The published values
// must not change: identifiers encode centers derived from them.
var CellWidths = [16]float64{
	2219190.0, 836660.0, 316116.0, 119476.0, 45154.0, 17060.0, 6443.0,
	2424.0, 917.0, 346.0, 130.0, 49.0, 18.0, 7.0, 3.0, 1.0,
}
