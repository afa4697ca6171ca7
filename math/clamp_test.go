// SPDX-License-Identifier: GPL-2.0-or-later

package math

import (
	"testing"
)

func TestClamp(t *testing.T) {
	if v := Clamp(1, 0, 10); v != 1 {
		t.Errorf("Clamp(1,0,10) = %v", v)
	}
	if v := Clamp(1, 100, 10); v != 10 {
		t.Errorf("Clamp(1,100,10) = %v", v)
	}
	if v := Clamp(1, 5, 10); v != 5 {
		t.Errorf("Clamp(1,5,10) = %v", v)
	}
}

func TestClamp01(t *testing.T) {
	if v := Clamp01(float32(1.7)); v != 1 {
		t.Errorf("Clamp01(1.7) = %v", v)
	}
	if v := Clamp01(float32(-0.3)); v != 0 {
		t.Errorf("Clamp01(-0.3) = %v", v)
	}
	if v := Clamp01(float32(0.25)); v != 0.25 {
		t.Errorf("Clamp01(0.25) = %v", v)
	}
}
