package hexgrid

import (
	"fmt"
	"math"
)

// HexagonDims collects the derived measurements of a regular hexagon.
type HexagonDims struct {
	Side          float64
	Circumradius  float64
	Apothem       float64
	AcrossCorners float64
	AcrossFlats   float64
	Perimeter     float64
	Area          float64
}

// DimsFromSide derives all hexagon measurements from the side length.
func DimsFromSide(side float64) (HexagonDims, error) {
	if side <= 0 {
		return HexagonDims{}, fmt.Errorf("%w: side length must be positive", ErrInvalidDimension)
	}

	sqrt3 := math.Sqrt(3)
	return HexagonDims{
		Side:          side,
		Circumradius:  side,
		Apothem:       sqrt3 / 2 * side,
		AcrossCorners: 2 * side,
		AcrossFlats:   sqrt3 * side,
		Perimeter:     6 * side,
		Area:          3 * sqrt3 / 2 * side * side,
	}, nil
}

// DimsFromCircumradius derives hexagon measurements from the circumradius,
// which for a regular hexagon equals the side length.
func DimsFromCircumradius(r float64) (HexagonDims, error) {
	return DimsFromSide(r)
}

// DimsFromApothem derives hexagon measurements from the apothem
// (center to edge midpoint).
func DimsFromApothem(r float64) (HexagonDims, error) {
	if r <= 0 {
		return HexagonDims{}, fmt.Errorf("%w: apothem must be positive", ErrInvalidDimension)
	}
	return DimsFromSide(2 * r / math.Sqrt(3))
}

// DimsFromAcrossFlats derives hexagon measurements from the flat-to-flat
// distance.
func DimsFromAcrossFlats(df float64) (HexagonDims, error) {
	if df <= 0 {
		return HexagonDims{}, fmt.Errorf("%w: across-flats must be positive", ErrInvalidDimension)
	}
	return DimsFromSide(df / math.Sqrt(3))
}

// DimsFromAcrossCorners derives hexagon measurements from the
// corner-to-corner distance.
func DimsFromAcrossCorners(dc float64) (HexagonDims, error) {
	if dc <= 0 {
		return HexagonDims{}, fmt.Errorf("%w: across-corners must be positive", ErrInvalidDimension)
	}
	return DimsFromSide(dc / 2)
}

// DimsFromArea derives hexagon measurements from the area.
func DimsFromArea(area float64) (HexagonDims, error) {
	if area <= 0 {
		return HexagonDims{}, fmt.Errorf("%w: area must be positive", ErrInvalidDimension)
	}
	return DimsFromSide(math.Sqrt(2 * area / (3 * math.Sqrt(3))))
}

// BoundingBox returns the width and height of the axis-aligned bounding box
// of a hexagon with the given side length, pointy-top or flat-top.
func BoundingBox(side float64, pointyTop bool) (width, height float64, err error) {
	if side <= 0 {
		return 0, 0, fmt.Errorf("%w: side length must be positive", ErrInvalidDimension)
	}

	dc := 2 * side
	df := math.Sqrt(3) * side
	if pointyTop {
		return df, dc, nil
	}
	return dc, df, nil
}
