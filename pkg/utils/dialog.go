package utils

import "github.com/sqweek/dialog"

// AskForFile opens a native file picker and returns the chosen path.
func AskForFile(title, startingDir string) (string, error) {
	builder := dialog.File().
		SetStartDir(startingDir).
		Filter("Game Boy ROM", "gb", "bin", "gz", "zip", "7z", "br").
		Title(title)

	// show the dialog
	return builder.Load()
}
