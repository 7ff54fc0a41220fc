package domain

// Wall is a straight structural segment in drawing space. Coordinates are
// document-local pixels; thickness and height are real-world inches.
type Wall struct {
	// ID uniquely identifies the wall within its document.
	ID string `json:"id"`

	// Start is the first endpoint in drawing units.
	Start Point `json:"start"`

	// End is the second endpoint in drawing units.
	End Point `json:"end"`

	// Thickness is the wall thickness in inches.
	Thickness float64 `json:"thickness,omitempty"`

	// Height is the wall height; a zero height means unset and falls back
	// to the default.
	Height Measurement `json:"height,omitempty"`

	// Fixtures lists the IDs of fixtures mounted on this wall. References
	// may dangle; lookups skip unknown IDs.
	Fixtures []string `json:"fixtures,omitempty"`

	// RoomID is the room this wall is assigned to, if any.
	RoomID string `json:"roomId,omitempty"`

	// ConnectedWalls lists wall IDs sharing an endpoint, derived by the
	// topology pass. Never authored by hand.
	ConnectedWalls []string `json:"connectedWalls,omitempty"`
}

// Length returns the wall length in drawing units.
func (w Wall) Length() float64 {
	return w.Start.Distance(w.End)
}

// LengthFeet returns the wall length in feet at the given scale.
func (w Wall) LengthFeet(scale Scale) float64 {
	return scale.PixelsToFeet(w.Length())
}

// Midpoint returns the point halfway along the wall.
func (w Wall) Midpoint() Point {
	return w.Start.Midpoint(w.End)
}

// HeightInches returns the wall height in inches, falling back to the
// default wall height when unset or non-positive.
func (w Wall) HeightInches() float64 {
	if w.Height.TotalInches <= 0 {
		return DefaultWallHeightInches
	}
	return w.Height.TotalInches
}

// HeightFeet returns the wall height in feet, with the same fallback as
// HeightInches.
func (w Wall) HeightFeet() float64 {
	return w.HeightInches() / InchesPerFoot
}
