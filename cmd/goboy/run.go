package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/thelolagemann/gomeboy-core/internal/gameboy"
	"github.com/thelolagemann/gomeboy-core/internal/ppu/palette"
	"github.com/thelolagemann/gomeboy-core/pkg/display"
	"github.com/thelolagemann/gomeboy-core/pkg/display/event"
	_ "github.com/thelolagemann/gomeboy-core/pkg/display/fyne"
	_ "github.com/thelolagemann/gomeboy-core/pkg/display/sdl"
	_ "github.com/thelolagemann/gomeboy-core/pkg/display/terminal"
	_ "github.com/thelolagemann/gomeboy-core/pkg/display/web"
	"github.com/thelolagemann/gomeboy-core/pkg/emulator"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
	"github.com/thelolagemann/gomeboy-core/pkg/utils"
)

var (
	_ display.Emulator    = &gameboy.GameBoy{}
	_ emulator.Controller = &gameboy.GameBoy{}
)

type runConfig struct {
	driver   string
	speed    float64
	lenient  bool
	debug    bool
	palette  string
	logLevel string
}

func newRunCmd() *cobra.Command {
	var cfg runConfig

	cmd := &cobra.Command{
		Use:   "run [rom]",
		Short: "Run a ROM with a display driver",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			romFile := ""
			if len(args) > 0 {
				romFile = args[0]
			} else {
				wd, _ := os.Getwd()
				f, err := utils.AskForFile("Open ROM", wd)
				if err != nil {
					return err
				}
				romFile = f
			}
			return run(romFile, cfg)
		},
	}

	cmd.Flags().StringVar(&cfg.driver, "driver", "auto", "The display driver to use (see goboy drivers)")
	cmd.Flags().Float64Var(&cfg.speed, "speed", 1, "The speed to run the emulator at")
	cmd.Flags().BoolVar(&cfg.lenient, "lenient", false, "Skip undefined opcodes instead of stopping")
	cmd.Flags().BoolVar(&cfg.debug, "debug", false, "Log every executed instruction")
	cmd.Flags().StringVar(&cfg.palette, "palette", "greyscale", "The palette to render with")
	cmd.Flags().StringVar(&cfg.logLevel, "log-level", "info", "The log level (debug, info, error)")
	display.RegisterFlags(cmd.Flags())

	return cmd
}

// options builds the emulator options from the configuration.
func (cfg runConfig) options() ([]gameboy.Opt, log.Logger, error) {
	logger, err := log.NewWithLevel(cfg.logLevel)
	if err != nil {
		return nil, nil, err
	}

	idx, ok := palette.Lookup(cfg.palette)
	if !ok {
		return nil, nil, fmt.Errorf("unknown palette %q", cfg.palette)
	}

	opts := []gameboy.Opt{
		gameboy.WithLogger(logger),
		gameboy.Speed(cfg.speed),
		gameboy.WithPalette(idx),
	}
	if cfg.lenient {
		opts = append(opts, gameboy.Lenient())
	}
	if cfg.debug {
		opts = append(opts, gameboy.Debug())
	}
	return opts, logger, nil
}

func run(romFile string, cfg runConfig) error {
	if len(display.InstalledDrivers) == 0 {
		return fmt.Errorf("no display drivers installed")
	}

	opts, logger, err := cfg.options()
	if err != nil {
		return err
	}

	rom, err := utils.LoadFile(romFile)
	if err != nil {
		return err
	}

	driver := display.GetDriver(cfg.driver)
	if driver == nil {
		return fmt.Errorf("invalid display driver %q", cfg.driver)
	}

	gb := gameboy.NewGameBoy(rom, opts...)
	driver.Initialize(gb)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	fb := make(chan []byte, 60)
	events := make(chan event.Event, 60)

	// run the emulation in a goroutine, as drivers may need the main thread
	done := make(chan error, 1)
	go func() {
		err := gb.Start(ctx, fb, events)
		select {
		case events <- event.Event{Type: event.Quit}:
		default:
		}
		done <- err
	}()

	driverErr := driver.Start(fb, events)
	cancel()
	if err := driver.Stop(); err != nil {
		logger.Errorf("stopping driver: %v", err)
	}

	if err := <-done; err != nil {
		return err
	}
	return driverErr
}
