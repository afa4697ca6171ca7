// SPDX-License-Identifier: GPL-2.0-or-later

package cvar

import (
	"testing"
)

func TestRegister(t *testing.T) {
	cv := MustRegister("test_register", "0.5", NONE)
	if cv.Value() != 0.5 {
		t.Errorf("Value() = %v want 0.5", cv.Value())
	}
	if cv.String() != "0.5" {
		t.Errorf("String() = %q want 0.5", cv.String())
	}
	if _, err := Register("test_register", "1", NONE); err == nil {
		t.Error("double register did not fail")
	}
}

func TestSetValue(t *testing.T) {
	cv := MustRegister("test_setvalue", "0", NONE)
	cv.SetValue(3)
	if cv.String() != "3" {
		t.Errorf("integral SetValue String() = %q want 3", cv.String())
	}
	cv.SetValue(2.25)
	if cv.String() != "2.25" || cv.Value() != 2.25 {
		t.Errorf("SetValue(2.25) = %q/%v", cv.String(), cv.Value())
	}
}

func TestBoolToggle(t *testing.T) {
	cv := MustRegister("test_toggle", "0", NONE)
	if cv.Bool() {
		t.Error("Bool() on 0")
	}
	cv.Toggle()
	if !cv.Bool() {
		t.Error("Bool() after Toggle")
	}
	cv.Toggle()
	if cv.Bool() {
		t.Error("Bool() after second Toggle")
	}
}

func TestRom(t *testing.T) {
	cv := MustRegister("test_rom", "7", ROM)
	cv.SetByString("9")
	if cv.Value() != 7 {
		t.Errorf("ROM cvar changed to %v", cv.Value())
	}
}

func TestRegistryIndex(t *testing.T) {
	cv := MustRegister("test_index", "1", ARCHIVE|NOTIFY)
	if !cv.Archive() || !cv.Notify() {
		t.Errorf("flags: archive %v notify %v", cv.Archive(), cv.Notify())
	}
	// ids are positions in the registration order
	for i, other := range All() {
		if other.ID() != i {
			t.Errorf("%s has id %d at position %d", other.Name(), other.ID(), i)
		}
	}
	got, err := GetByID(cv.ID())
	if err != nil || got != cv {
		t.Errorf("GetByID(%d) = %v, %v", cv.ID(), got, err)
	}
	if _, err := GetByID(len(All())); err == nil {
		t.Error("GetByID past the end did not fail")
	}
	if _, err := GetByID(-1); err == nil {
		t.Error("GetByID(-1) did not fail")
	}
}

func TestCallback(t *testing.T) {
	cv := MustRegister("test_callback", "1", NONE)
	called := 0
	cv.SetCallback(func(*Cvar) { called++ })
	cv.SetValue(2)
	if called != 1 {
		t.Errorf("callback ran %d times want 1", called)
	}
	cv.Reset()
	if called != 2 || cv.Value() != 1 {
		t.Errorf("Reset: callback %d, value %v", called, cv.Value())
	}
}
