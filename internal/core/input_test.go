package core

import "testing"

func TestInputFrameDirection(t *testing.T) {
	tests := []struct {
		name     string
		actions  []Action
		expected Vec
	}{
		{"none", nil, V(0, 0)},
		{"right", []Action{ActionRight}, V(1, 0)},
		{"up left", []Action{ActionUp, ActionLeft}, V(-1, -1)},
		{"opposites cancel", []Action{ActionLeft, ActionRight, ActionDown}, V(0, 1)},
		{"fire ignored", []Action{ActionFire}, V(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tt.actions {
				f.Set(a)
			}
			if got := f.Direction(); got != tt.expected {
				t.Errorf("Direction() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestInputFrameClearAndClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionFire)
	clone := f.Clone()

	f.Clear()
	if f.Has(ActionFire) {
		t.Error("Has(Fire) after Clear() = true")
	}
	if !clone.Has(ActionFire) {
		t.Error("clone lost Fire after original was cleared")
	}

	var zero InputFrame
	if zero.Has(ActionUp) {
		t.Error("zero frame reports an action")
	}
	zero.Set(ActionUp)
	if !zero.Has(ActionUp) {
		t.Error("Set on zero frame had no effect")
	}
}

func TestActionString(t *testing.T) {
	if ActionFire.String() != "Fire" {
		t.Errorf("ActionFire.String() = %q, expected %q", ActionFire.String(), "Fire")
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q, expected %q", Action(99).String(), "Unknown")
	}
}

func TestColorCode(t *testing.T) {
	tests := []struct {
		c        Color
		expected string
	}{
		{ColorDefault, ""},
		{ColorRed, "1"},
		{ColorOrange, "208"},
		{ColorGray, "245"},
		{Color(200), ""},
	}

	for _, tt := range tests {
		if got := tt.c.Code(); got != tt.expected {
			t.Errorf("Color(%d).Code() = %q, expected %q", tt.c, got, tt.expected)
		}
	}

	colors := Colors()
	if colors[0] != ColorDefault || colors[len(colors)-1] != ColorGray {
		t.Errorf("Colors() = %v, expected default first and gray last", colors)
	}
}
