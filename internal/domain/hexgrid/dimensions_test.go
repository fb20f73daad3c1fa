package hexgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDimsFromSide(t *testing.T) {
	dims, err := DimsFromSide(10.0)
	require.NoError(t, err)

	assert.InDelta(t, 10.0, dims.Side, 0.001)
	assert.InDelta(t, 10.0, dims.Circumradius, 0.001)
	assert.InDelta(t, 20.0, dims.AcrossCorners, 0.001)
	assert.InDelta(t, 17.320508, dims.AcrossFlats, 0.001)
	assert.InDelta(t, 60.0, dims.Perimeter, 0.001)

	back, err := DimsFromAcrossFlats(dims.AcrossFlats)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, back.Side, 0.001)
}

func TestDimsInversions(t *testing.T) {
	dims, err := DimsFromSide(10.0)
	require.NoError(t, err)

	fromArea, err := DimsFromArea(dims.Area)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, fromArea.Side, 0.001)

	fromApothem, err := DimsFromApothem(dims.Apothem)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, fromApothem.Side, 0.001)

	fromCorners, err := DimsFromAcrossCorners(dims.AcrossCorners)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, fromCorners.Side, 0.001)
}

func TestDimsRejectNonPositive(t *testing.T) {
	for _, fn := range []func(float64) (HexagonDims, error){
		DimsFromSide, DimsFromCircumradius, DimsFromApothem,
		DimsFromAcrossFlats, DimsFromAcrossCorners, DimsFromArea,
	} {
		_, err := fn(0)
		assert.ErrorIs(t, err, ErrInvalidDimension)
		_, err = fn(-1)
		assert.ErrorIs(t, err, ErrInvalidDimension)
	}
}

func TestBoundingBox(t *testing.T) {
	w, h, err := BoundingBox(10.0, true)
	require.NoError(t, err)
	assert.InDelta(t, 17.320508, w, 0.001)
	assert.InDelta(t, 20.0, h, 0.001)

	w, h, err = BoundingBox(10.0, false)
	require.NoError(t, err)
	assert.InDelta(t, 20.0, w, 0.001)
	assert.InDelta(t, 17.320508, h, 0.001)

	_, _, err = BoundingBox(0, true)
	assert.ErrorIs(t, err, ErrInvalidDimension)
}
