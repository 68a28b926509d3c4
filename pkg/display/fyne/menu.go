package fyne

import "fyne.io/fyne/v2"

// MenuOption customizes a [fyne.MenuItem] built by NewMenuItem.
type MenuOption func(*fyne.MenuItem)

// Follows keeps the checked state of an item in line with state,
// which is read when the item is built and again after every action.
// refresh is called afterwards so the menu can be redrawn.
func Follows(state func() bool, refresh func()) MenuOption {
	return func(item *fyne.MenuItem) {
		action := item.Action
		item.Action = func() {
			action()
			item.Checked = state()
			refresh()
		}
		item.Checked = state()
	}
}

// NewMenuItem creates a [fyne.MenuItem] with the provided label and fn,
// then applies opts to it.
func NewMenuItem(label string, fn func(), opts ...MenuOption) *fyne.MenuItem {
	m := fyne.NewMenuItem(label, fn)
	for _, o := range opts {
		o(m)
	}
	return m
}
