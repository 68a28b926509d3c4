package fyne

import (
	"testing"
)

func TestFollows(t *testing.T) {
	var paused bool
	var refreshes int
	item := NewMenuItem("Paused", func() { paused = !paused },
		Follows(func() bool { return paused }, func() { refreshes++ }))

	if item.Checked {
		t.Error("expected item to start unchecked")
	}
	item.Action()
	if !item.Checked || refreshes != 1 {
		t.Errorf("expected checked item after one action, got checked=%v refreshes=%d", item.Checked, refreshes)
	}
	item.Action()
	if item.Checked {
		t.Error("expected item to be unchecked after a second action")
	}
}

func TestFollows_InitialState(t *testing.T) {
	item := NewMenuItem("Paused", func() {}, Follows(func() bool { return true }, func() {}))
	if !item.Checked {
		t.Error("expected item to start checked")
	}
}
