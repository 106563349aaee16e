// internal/utils/math.go
package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// SmoothingFactor converts a per-frame blend factor tuned at 60 FPS into the
// factor for a frame of dt seconds, so exponential following looks the same
// at any frame rate.
func SmoothingFactor(perFrame, dt float64) float64 {
	if dt <= 0 {
		return 0
	}
	return 1 - math.Pow(1-perFrame, dt*60)
}

// Clamp01 limits v to [0, 1].
func Clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
