// SPDX-License-Identifier: GPL-2.0-or-later

package math

type Number interface {
	int64 | float64 | float32 | int
}

// Clamp returns val limited to [min,max].
func Clamp[K Number](min, val, max K) K {
	if min > val {
		return min
	} else if max < val {
		return max
	}
	return val
}

// Clamp01 limits val to [0,1], the range of fade and blend factors.
func Clamp01[K Number](val K) K {
	return Clamp(0, val, 1)
}
