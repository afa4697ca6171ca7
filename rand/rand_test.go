// SPDX-License-Identifier: GPL-2.0-or-later

package rand

import (
	"testing"
)

func TestDeterministic(t *testing.T) {
	a := New(1971)
	b := New(1971)
	for i := 0; i < 16; i++ {
		if av, bv := a.rand(), b.rand(); av != bv {
			t.Fatalf("same seed diverged at %d: %v != %v", i, av, bv)
		}
	}
}

func TestFloat32Range(t *testing.T) {
	g := New(7)
	for i := 0; i < 1000; i++ {
		v := g.Float32()
		if v < 0 || v >= 1 {
			t.Fatalf("Float32() = %v out of [0,1)", v)
		}
	}
}

func TestRange(t *testing.T) {
	g := New(42)
	for i := 0; i < 1000; i++ {
		v := g.Range(-3, 5)
		if v < -3 || v >= 5 {
			t.Fatalf("Range(-3,5) = %v", v)
		}
	}
}
