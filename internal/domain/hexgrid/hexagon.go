package hexgrid

import (
	"math"

	"github.com/paulmach/orb"
)

// Hexagon builds the pointy-top hexagon polygon centered on the given point
// with the given circumradius. The exterior ring holds the six vertices at
// (30 + 60·i)° from the center plus the repeated first vertex, seven
// coordinates in total.
func Hexagon(center orb.Point, radius float64) orb.Polygon {
	ring := make(orb.Ring, 0, 7)
	for i := 0; i < 6; i++ {
		angle := (30.0 + float64(i)*60.0) * math.Pi / 180.0
		ring = append(ring, orb.Point{
			center.X() + radius*math.Cos(angle),
			center.Y() + radius*math.Sin(angle),
		})
	}
	ring = append(ring, ring[0])
	return orb.Polygon{ring}
}
