package diffcalc

// ScalingFactor derives a uniform, CS-independent distance scale from a
// map's (post-mod) circle size, per spec §4.1.
type ScalingFactor struct {
	// Radius is the hit circle radius in playfield pixels for this CS.
	Radius float64
	// Factor scales any playfield-pixel distance so that a circle of this
	// CS behaves as if it had NormalizedRadius (52px) radius.
	Factor float64
}

// NewScalingFactor builds a ScalingFactor from a post-mod circle size.
func NewScalingFactor(cs float64) ScalingFactor {
	radius := 54.4 - 4.48*cs
	return ScalingFactor{
		Radius: radius,
		Factor: NormalizedRadius / radius,
	}
}
