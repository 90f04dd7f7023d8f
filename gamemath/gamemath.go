package gamemath

import "math"

// Clamp clamps a value to [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// SmoothFactor returns the frame-rate-independent interpolation factor
// for an exponential approach at the given rate (1/s). The result is in
// [0, 1) for any non-negative dt, so the approach never overshoots.
func SmoothFactor(rate, dt float64) float64 {
	if rate <= 0 || dt <= 0 {
		return 0
	}
	return 1 - math.Exp(-rate*dt)
}

// Approach moves current toward target by an exponential step.
func Approach(current, target, rate, dt float64) float64 {
	return current + (target-current)*SmoothFactor(rate, dt)
}
