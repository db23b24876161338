package calc

import "math"

// Shape is the cross-section of a bar stock item.
type Shape string

const (
	ShapeRound   Shape = "round"
	ShapeHexagon Shape = "hexagon"
	ShapeSquare  Shape = "square"
)

// hexFactor is the area factor of a regular hexagon with unit side.
var hexFactor = 3 * math.Sqrt(3) / 2

// Weight returns the mass in kilograms of a bar of the given cross-section.
// diameterMm and lengthMm are in millimeters, density in g/cm³. For hexagon
// stock the half-diameter is used as the hexagon side, matching the legacy
// calculator the shop floor has been quoting against. An unrecognized shape
// yields zero weight rather than an error.
func Weight(shape Shape, diameterMm, lengthMm, density float64) float64 {
	radiusCm := diameterMm / 20
	sideCm := diameterMm / 10
	lengthCm := lengthMm / 10

	var volume float64
	switch shape {
	case ShapeRound:
		volume = math.Pi * radiusCm * radiusCm * lengthCm
	case ShapeHexagon:
		volume = hexFactor * radiusCm * radiusCm * lengthCm
	case ShapeSquare:
		volume = sideCm * sideCm * lengthCm
	default:
		volume = 0
	}

	return volume * density / 1000
}
