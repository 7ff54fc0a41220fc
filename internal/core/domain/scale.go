package domain

import "math"

// DefaultPixelsPerFoot is the drawing scale assumed when a document does not
// declare one.
const DefaultPixelsPerFoot = 50.0

// Scale maps drawing units (pixels) to real-world feet.
type Scale struct {
	// PixelsPerFoot is the number of drawing units that represent one foot.
	PixelsPerFoot float64 `json:"pixelsPerFoot"`
}

// DefaultScale returns the scale assumed for documents that do not declare one.
func DefaultScale() Scale {
	return Scale{PixelsPerFoot: DefaultPixelsPerFoot}
}

// Normalized returns the scale with a non-positive or non-finite ratio
// replaced by the default, so conversions never divide by zero.
func (s Scale) Normalized() Scale {
	if s.PixelsPerFoot <= 0 || math.IsNaN(s.PixelsPerFoot) || math.IsInf(s.PixelsPerFoot, 0) {
		return DefaultScale()
	}
	return s
}

// PixelsToFeet converts a drawing-unit length to feet.
func (s Scale) PixelsToFeet(pixels float64) float64 {
	return pixels / s.Normalized().PixelsPerFoot
}

// FeetToPixels converts a length in feet to drawing units.
func (s Scale) FeetToPixels(feet float64) float64 {
	return feet * s.Normalized().PixelsPerFoot
}

// PixelsToInches converts a drawing-unit length to inches.
func (s Scale) PixelsToInches(pixels float64) float64 {
	return s.PixelsToFeet(pixels) * InchesPerFoot
}

// InchesToPixels converts a length in inches to drawing units.
func (s Scale) InchesToPixels(inches float64) float64 {
	return s.FeetToPixels(inches / InchesPerFoot)
}

// PixelsToSquareFeet converts a drawing-unit area to square feet.
func (s Scale) PixelsToSquareFeet(pixelArea float64) float64 {
	ppf := s.Normalized().PixelsPerFoot
	return pixelArea / (ppf * ppf)
}
