// Package display provides the registry of display drivers, the
// sinks that present the frames produced by the emulator. Drivers
// register themselves from their init function, so a binary only
// offers the drivers it imports.
package display

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/pflag"
	"github.com/thelolagemann/gomeboy-core/pkg/display/event"
	"github.com/thelolagemann/gomeboy-core/pkg/emulator"
)

// Driver is the interface that wraps the basic methods for a
// display driver.
type Driver interface {
	// Initialize initializes the display driver by attaching it to
	// the emulator that is using it.
	Initialize(emu Emulator)
	// Start the display driver. It returns once the user has
	// closed the display, or a Quit event is received.
	Start(fb <-chan []byte, events <-chan event.Event) error
	// Stop the display driver.
	Stop() error
}

// Emulator is the interface that wraps the basic methods for an
// emulator to implement in order for the driver to be able to
// interact with it. This is used to allow the driver to
// control the emulator. The emulator is passed to the driver
// during initialization.
type Emulator interface {
	// SendCommand sends a command packet to the emulator.
	SendCommand(command emulator.CommandPacket) emulator.ResponsePacket
	// Speed returns the speed of the emulator.
	Speed() float64
	// Status returns the status of the emulator.
	Status() emulator.Status
}

var (
	Pause  = emulator.CommandPacket{Command: emulator.CommandPause}
	Resume = emulator.CommandPacket{Command: emulator.CommandResume}
	Reset  = emulator.CommandPacket{Command: emulator.CommandReset}
	Close  = emulator.CommandPacket{Command: emulator.CommandClose}
)

// TogglePause pauses a running emulator, and resumes a paused one.
func TogglePause(emu Emulator) {
	if emu.Status() == emulator.Paused {
		emu.SendCommand(Resume)
	} else {
		emu.SendCommand(Pause)
	}
}

// ErrNoController is returned by OpenROM when the emulator can't
// load another ROM.
var ErrNoController = errors.New("emulator can't load ROMs")

// OpenROM loads the ROM chosen by pick into emu. Emulation is paused
// while pick runs, and resumed afterwards if it was running and an
// image is loaded.
func OpenROM(emu Emulator, pick func() (string, error)) error {
	ctl, ok := emu.(emulator.Controller)
	if !ok {
		return ErrNoController
	}

	wasPaused := ctl.Paused()
	ctl.Pause()
	defer func() {
		if !wasPaused && ctl.Initialised() {
			ctl.Resume()
		}
	}()

	path, err := pick()
	if err != nil {
		return err
	}
	return ctl.LoadROM(path)
}

// DriverOption is a display driver option. This is used to
// configure a display driver.
type DriverOption struct {
	Name        string // name of the option
	Default     any    // default value of the option
	Value       any    // pointer to the value of the option
	Description string // description of the option
	Type        string // "int", "bool", "string", "float"
}

// InstalledDriver is a driver that has been installed. This is
// used to allow drivers to register their name.
type InstalledDriver struct {
	Name    string
	Options []DriverOption
	Driver
}

// InstalledDrivers is a list of all the installed drivers. This
// variable is exported so that it can be used by the main
// program to determine which drivers can be used. Drivers should
// call display.Install in their init() function.
var InstalledDrivers []*InstalledDriver

// GetDriver returns the driver with the given name, or nil if
// no driver with that name is installed. The name "auto" selects
// the first installed driver.
func GetDriver(name string) Driver {
	if name == "auto" {
		if len(InstalledDrivers) == 0 {
			return nil
		}
		return InstalledDrivers[0].Driver
	}
	for _, driver := range InstalledDrivers {
		if driver.Name == name {
			return driver.Driver
		}
	}

	return nil
}

// Install registers a display driver with the given name.
func Install(name string, driver Driver, options []DriverOption) {
	InstalledDrivers = append(InstalledDrivers, &InstalledDriver{
		Name:    name,
		Options: options,
		Driver:  driver,
	})
}

// RegisterFlags iterates through all the display driver
// options and registers them with the given flag set. An option
// offered by a single driver is prefixed with the driver name,
// while an option shared by several drivers is registered once,
// and sets the value of every driver.
func RegisterFlags(fs *pflag.FlagSet) {
	optionCounts := make(map[string]int)
	opts := make(map[string][]DriverOption)
	prefixes := make(map[string]string)
	var order []string

	for _, driver := range InstalledDrivers {
		for _, opt := range driver.Options {
			// track how many times an option is used
			if optionCounts[opt.Name] == 0 {
				order = append(order, opt.Name)
			}
			optionCounts[opt.Name]++
			opts[opt.Name] = append(opts[opt.Name], opt)
			prefixes[opt.Name] = driver.Name
		}
	}

	for _, o := range order {
		opt := opts[o][0]
		if optionCounts[o] > 1 {
			// this requires an option merge
			multi := &multiValue{defaultValue: opt.Default}
			for _, mOpt := range opts[o] {
				multi.values = append(multi.values, mOpt.Value)
				setDefault(mOpt.Value, opt.Default)
			}
			fs.Var(multi, o, opt.Description)
			if opt.Type == "bool" {
				fs.Lookup(o).NoOptDefVal = "true"
			}
			continue
		}

		// this option is unique and should be prefixed
		optName := fmt.Sprintf("%s-%s", prefixes[o], opt.Name)
		switch opt.Type {
		case "string":
			fs.StringVar(opt.Value.(*string), optName, opt.Default.(string), opt.Description)
		case "bool":
			fs.BoolVar(opt.Value.(*bool), optName, opt.Default.(bool), opt.Description)
		case "float":
			fs.Float64Var(opt.Value.(*float64), optName, opt.Default.(float64), opt.Description)
		case "int":
			fs.IntVar(opt.Value.(*int), optName, opt.Default.(int), opt.Description)
		}
	}
}

func setDefault(ptr, value any) {
	switch p := ptr.(type) {
	case *string:
		*p = value.(string)
	case *bool:
		*p = value.(bool)
	case *float64:
		*p = value.(float64)
	case *int:
		*p = value.(int)
	}
}

type multiValue struct {
	values       []any
	defaultValue any
}

func (m *multiValue) String() string {
	return fmt.Sprint(m.defaultValue)
}

func (m *multiValue) Type() string {
	switch m.defaultValue.(type) {
	case bool:
		return "bool"
	case float64:
		return "float64"
	case int:
		return "int"
	default:
		return "string"
	}
}

func (m *multiValue) Set(value string) error {
	// update all the pointers with the provided value
	for _, ptr := range m.values {
		switch p := ptr.(type) {
		case *string:
			*p = value
		case *bool:
			b, err := strconv.ParseBool(value)
			if err != nil {
				return err
			}
			*p = b
		case *float64:
			f, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return err
			}
			*p = f
		case *int:
			i, err := strconv.Atoi(value)
			if err != nil {
				return err
			}
			*p = i
		default:
			return fmt.Errorf("unknown type: %T", ptr)
		}
	}

	return nil
}
