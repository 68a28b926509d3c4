package emulator

// Controller is implemented by an emulator whose program image can
// be swapped while it runs. A display.Driver checks for it before
// offering to open another ROM.
type Controller interface {
	// LoadROM loads the file at path, decompressing it if needed,
	// and restarts execution from the entry point.
	LoadROM(path string) error
	Pause()
	Resume()
	Paused() bool
	// Initialised reports whether a program image is loaded.
	Initialised() bool
}
