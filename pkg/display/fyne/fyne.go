// Package fyne provides a display driver using a fyne window,
// with a menu to control the emulator.
package fyne

import (
	"image"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"github.com/thelolagemann/gomeboy-core/internal/ppu"
	"github.com/thelolagemann/gomeboy-core/pkg/display"
	"github.com/thelolagemann/gomeboy-core/pkg/display/event"
	"github.com/thelolagemann/gomeboy-core/pkg/emulator"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
	"github.com/thelolagemann/gomeboy-core/pkg/utils"
)

func init() {
	driver := &fyneDriver{log: log.New()}
	display.Install("fyne", driver, []display.DriverOption{
		{
			Name:        "scale",
			Default:     4.0,
			Value:       &driver.scale,
			Type:        "float",
			Description: "Scale the window by this factor",
		},
	})
}

type fyneDriver struct {
	scale float64

	emu display.Emulator
	log log.Logger

	app    fyne.App
	window fyne.Window
	raster *canvas.Raster
	image  *image.RGBA
	pause  *fyne.MenuItem
}

func (f *fyneDriver) Initialize(emu display.Emulator) {
	f.emu = emu
}

// Start creates the window and blocks until it is closed.
func (f *fyneDriver) Start(frames <-chan []byte, events <-chan event.Event) error {
	f.app = app.New()
	f.app.Settings().SetTheme(&defaultTheme{})

	f.window = f.app.NewWindow("GomeBoy")
	f.window.SetMaster()
	f.window.SetPadded(false)
	f.window.Resize(fyne.NewSize(float32(ppu.ScreenWidth*f.scale), float32(ppu.ScreenHeight*f.scale)))

	// create the image to draw to
	f.image = image.NewRGBA(image.Rect(0, 0, ppu.ScreenWidth, ppu.ScreenHeight))
	f.raster = canvas.NewRasterFromImage(f.image)
	f.raster.ScaleMode = canvas.ImageScalePixels
	f.raster.SetMinSize(fyne.NewSize(ppu.ScreenWidth, ppu.ScreenHeight))

	f.window.SetContent(f.raster)
	f.window.SetMainMenu(f.mainMenu())
	f.window.Canvas().SetOnTypedKey(f.handleKey)
	f.window.SetOnClosed(func() {
		f.emu.SendCommand(display.Close)
	})

	go f.run(frames, events)

	f.window.ShowAndRun()
	return nil
}

func (f *fyneDriver) run(frames <-chan []byte, events <-chan event.Event) {
	for {
		select {
		case fb, ok := <-frames:
			if !ok {
				f.app.Quit()
				return
			}
			copy(f.image.Pix, ppu.FrameImage(fb).Pix)
			f.raster.Refresh()
		case e := <-events:
			switch e.Type {
			case event.Title:
				f.window.SetTitle(e.Data.(string))
			case event.Quit:
				f.app.Quit()
				return
			}
		}
	}
}

func (f *fyneDriver) handleKey(k *fyne.KeyEvent) {
	switch k.Name {
	case fyne.KeyP, fyne.KeyEscape:
		display.TogglePause(f.emu)
		f.pause.Checked = f.paused()
		f.refreshMenu()
	case fyne.KeyR:
		f.emu.SendCommand(display.Reset)
	case fyne.KeyF12:
		f.screenshot(utils.CopyImage)
	}
}

func (f *fyneDriver) screenshot(fn func(image.Image) error) {
	img := image.NewRGBA(f.image.Bounds())
	copy(img.Pix, f.image.Pix)
	if err := fn(img); err != nil {
		f.log.Errorf("fyne: screenshot: %v", err)
	}
}

func (f *fyneDriver) paused() bool {
	return f.emu.Status() == emulator.Paused
}

func (f *fyneDriver) refreshMenu() {
	if m := f.window.MainMenu(); m != nil {
		m.Refresh()
	}
}

func (f *fyneDriver) openROM() {
	err := display.OpenROM(f.emu, func() (string, error) {
		wd, _ := os.Getwd()
		return utils.AskForFile("Open ROM", wd)
	})
	if err != nil {
		f.log.Errorf("fyne: opening ROM: %v", err)
	}
	f.pause.Checked = f.paused()
	f.refreshMenu()
}

func (f *fyneDriver) mainMenu() *fyne.MainMenu {
	f.pause = NewMenuItem("Paused", func() {
		display.TogglePause(f.emu)
	}, Follows(f.paused, f.refreshMenu))

	return fyne.NewMainMenu(
		fyne.NewMenu("Emulation",
			fyne.NewMenuItem("Open ROM...", f.openROM),
			f.pause,
			fyne.NewMenuItem("Reset", func() {
				f.emu.SendCommand(display.Reset)
			}),
		),
		fyne.NewMenu("Screenshot",
			fyne.NewMenuItem("Copy to Clipboard", func() {
				f.screenshot(utils.CopyImage)
			}),
			fyne.NewMenuItem("Save As...", func() {
				f.screenshot(utils.SaveImage)
			}),
		),
	)
}

// Stop stops the display driver.
func (f *fyneDriver) Stop() error {
	if f.app != nil {
		f.app.Quit()
	}
	return nil
}
