// Package sdl provides a display driver backed by an SDL2 window.
package sdl

import (
	"runtime"
	"time"

	"github.com/thelolagemann/gomeboy-core/internal/ppu"
	"github.com/thelolagemann/gomeboy-core/pkg/display"
	"github.com/thelolagemann/gomeboy-core/pkg/display/event"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
	"github.com/thelolagemann/gomeboy-core/pkg/utils"
	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	// SDL must be driven from the main thread
	runtime.LockOSThread()

	driver := &sdlDriver{log: log.New()}
	display.Install("sdl", driver, []display.DriverOption{
		{
			Name:        "scale",
			Default:     4.0,
			Value:       &driver.scale,
			Type:        "float",
			Description: "Scale the window by this factor",
		},
		{
			Name:        "fullscreen",
			Default:     false,
			Value:       &driver.fullscreen,
			Type:        "bool",
			Description: "Run in fullscreen mode",
		},
	})
}

// sdlDriver draws frames to an SDL2 window, using a streaming
// texture that the renderer scales to the window size.
type sdlDriver struct {
	scale      float64
	fullscreen bool

	emu display.Emulator
	log log.Logger

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	last     []byte
}

func (s *sdlDriver) Initialize(emu display.Emulator) {
	s.emu = emu
}

// Start opens the window and draws frames until the window is
// closed or a Quit event is received.
func (s *sdlDriver) Start(frames <-chan []byte, events <-chan event.Event) error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return err
	}
	defer sdl.Quit()

	flags := uint32(sdl.WINDOW_SHOWN | sdl.WINDOW_RESIZABLE)
	if s.fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	var err error
	s.window, err = sdl.CreateWindow("GomeBoy", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(ppu.ScreenWidth*s.scale), int32(ppu.ScreenHeight*s.scale), flags)
	if err != nil {
		return err
	}
	defer s.window.Destroy()

	s.renderer, err = sdl.CreateRenderer(s.window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return err
	}
	defer s.renderer.Destroy()

	// keep the aspect ratio when the window is resized
	if err := s.renderer.SetLogicalSize(ppu.ScreenWidth, ppu.ScreenHeight); err != nil {
		return err
	}

	s.texture, err = s.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_RGB24), sdl.TEXTUREACCESS_STREAMING, ppu.ScreenWidth, ppu.ScreenHeight)
	if err != nil {
		return err
	}
	defer s.texture.Destroy()

	pollTicker := time.NewTicker(time.Millisecond * 16) // to handle when paused
	defer pollTicker.Stop()

	// draw loop
	for {
		select {
		case f, ok := <-frames:
			if !ok {
				return nil
			}
			if err := s.draw(f); err != nil {
				return err
			}
			if s.poll() {
				return nil
			}
		case e := <-events:
			switch e.Type {
			case event.Title:
				s.window.SetTitle(e.Data.(string))
			case event.Quit:
				return nil
			}
		case <-pollTicker.C:
			if s.poll() {
				return nil
			}
		}
	}
}

func (s *sdlDriver) draw(f []byte) error {
	s.last = f

	pixels, pitch, err := s.texture.Lock(nil)
	if err != nil {
		return err
	}
	for y := 0; y < ppu.ScreenHeight; y++ {
		copy(pixels[y*pitch:], f[y*ppu.ScreenWidth*3:(y+1)*ppu.ScreenWidth*3])
	}
	s.texture.Unlock()

	if err := s.renderer.Clear(); err != nil {
		return err
	}
	if err := s.renderer.Copy(s.texture, nil, nil); err != nil {
		return err
	}
	s.renderer.Present()
	return nil
}

// poll handles pending window events, returning true once the
// window has been closed.
func (s *sdlDriver) poll() bool {
	for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
		switch ev := e.(type) {
		case *sdl.QuitEvent:
			s.emu.SendCommand(display.Close)
			return true
		case *sdl.KeyboardEvent:
			if ev.Type != sdl.KEYDOWN || ev.Repeat != 0 {
				continue
			}
			s.handleKey(ev.Keysym.Sym)
		}
	}
	return false
}

func (s *sdlDriver) handleKey(key sdl.Keycode) {
	switch key {
	case sdl.K_ESCAPE, sdl.K_PAUSE, sdl.K_p:
		display.TogglePause(s.emu)
	case sdl.K_r:
		s.emu.SendCommand(display.Reset)
	case sdl.K_F11:
		s.fullscreen = !s.fullscreen
		var flags uint32
		if s.fullscreen {
			flags = sdl.WINDOW_FULLSCREEN_DESKTOP
		}
		if err := s.window.SetFullscreen(flags); err != nil {
			s.log.Errorf("sdl: toggling fullscreen: %v", err)
		}
	case sdl.K_F12:
		if s.last == nil {
			return
		}
		if err := utils.CopyImage(ppu.FrameImage(s.last)); err != nil {
			s.log.Errorf("sdl: copying screenshot: %v", err)
		}
	}
}

// Stop stops the display driver.
func (s *sdlDriver) Stop() error {
	return nil
}
