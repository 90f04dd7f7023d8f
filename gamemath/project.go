package gamemath

// Vec3 is a point in court space: X along the lateral axis, Y up from
// the court floor, Z along the width axis (positive toward the AI end).
type Vec3 struct {
	X, Y, Z float64
}

// Projection is a one-point perspective camera looking down +Z.
type Projection struct {
	EyeX        float64 // lateral eye offset (camera sway)
	EyeY        float64 // eye height above the floor
	EyeZ        float64 // eye position along the width axis
	FocalLength float64
	ScreenW     float64
	ScreenH     float64
}

// Project maps a court-space point to screen pixels. Points at or behind
// the eye plane are clamped to a minimal depth so decorations near the
// camera do not flip across the screen.
func (p *Projection) Project(v Vec3) (sx, sy float64) {
	depth := v.Z - p.EyeZ
	if depth < 0.5 {
		depth = 0.5
	}
	scale := p.FocalLength / depth
	sx = p.ScreenW/2 + (v.X-p.EyeX)*scale
	sy = p.ScreenH/2 - (v.Y-p.EyeY)*scale
	return sx, sy
}

// Scale returns the pixel size of one court unit at the given depth.
func (p *Projection) Scale(z float64) float64 {
	depth := z - p.EyeZ
	if depth < 0.5 {
		depth = 0.5
	}
	return p.FocalLength / depth
}
