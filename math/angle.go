package math

import "github.com/chewxy/math32"

// AngleMod changes an angle to be within 0-360 degrees
func AngleMod(a float32) float32 {
	return a - math32.Floor(a/360)*360
}

// Lerp interpolates from a to b, t in [0,1]
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}
