package format

var shapeLabels = map[string]string{
	"round":   "Round bar",
	"hexagon": "Hexagon bar",
	"square":  "Square bar",
}

var movementLabels = map[string]string{
	"receive": "Goods receipt",
	"issue":   "Stock issue",
	"return":  "Stock return",
	"move":    "Location move",
	"adjust":  "Inventory adjustment",
}

// ShapeLabel returns the display label for a cross-section code, or the raw
// code when it is not a known shape.
func ShapeLabel(code string) string {
	if label, ok := shapeLabels[code]; ok {
		return label
	}
	return code
}

// MovementLabel returns the display label for a stock movement type code,
// falling back to the raw code.
func MovementLabel(code string) string {
	if label, ok := movementLabels[code]; ok {
		return label
	}
	return code
}

// ShapeLabels returns a copy of the shape code→label table.
func ShapeLabels() map[string]string {
	out := make(map[string]string, len(shapeLabels))
	for k, v := range shapeLabels {
		out[k] = v
	}
	return out
}

// MovementLabels returns a copy of the movement code→label table.
func MovementLabels() map[string]string {
	out := make(map[string]string, len(movementLabels))
	for k, v := range movementLabels {
		out[k] = v
	}
	return out
}
