// Package terminal provides a display driver that draws frames
// to an ANSI terminal, packing two pixel rows into every text row
// with the upper half block character.
package terminal

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"os"
	"strconv"

	"github.com/thelolagemann/gomeboy-core/internal/ppu"
	"github.com/thelolagemann/gomeboy-core/pkg/display"
	"github.com/thelolagemann/gomeboy-core/pkg/display/event"
	"github.com/thelolagemann/gomeboy-core/pkg/utils"
	"golang.org/x/term"
)

func init() {
	driver := &terminalDriver{in: os.Stdin, out: os.Stdout}
	display.Install("terminal", driver, []display.DriverOption{
		{
			Name:        "width",
			Default:     0,
			Value:       &driver.width,
			Type:        "int",
			Description: "Width in columns (0 fits the terminal)",
		},
	})
}

const (
	escClear      = "\x1b[2J"
	escHome       = "\x1b[H"
	escHideCursor = "\x1b[?25l"
	escShowCursor = "\x1b[?25h"
	escReset      = "\x1b[0m"
)

type terminalDriver struct {
	width int

	in  *os.File
	out io.Writer
	emu display.Emulator
}

func (d *terminalDriver) Initialize(emu display.Emulator) {
	d.emu = emu
}

// Start puts the terminal in raw mode and draws frames until q is
// pressed, the frame channel is closed or a Quit event arrives.
func (d *terminalDriver) Start(frames <-chan []byte, events <-chan event.Event) error {
	fd := int(d.in.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("terminal: stdin is not a terminal")
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return err
	}
	defer term.Restore(fd, state)

	w := bufio.NewWriter(d.out)
	fmt.Fprint(w, escClear+escHideCursor)
	defer func() {
		fmt.Fprint(w, escReset+escShowCursor+"\r\n")
		w.Flush()
	}()

	quit := make(chan struct{})
	go d.readKeys(quit)

	width, height := d.size(fd)
	for {
		select {
		case fb, ok := <-frames:
			if !ok {
				return nil
			}
			img := utils.Scale(ppu.FrameImage(fb), width, height)
			w.WriteString(escHome)
			w.Write(Render(img))
			if err := w.Flush(); err != nil {
				return err
			}
		case e := <-events:
			switch e.Type {
			case event.Title:
				// xterm window title
				fmt.Fprintf(w, "\x1b]0;%s\x07", e.Data)
			case event.Quit:
				return nil
			}
		case <-quit:
			d.emu.SendCommand(display.Close)
			return nil
		}
	}
}

// size returns the size in pixels to scale frames to, keeping the
// aspect ratio and fitting the terminal.
func (d *terminalDriver) size(fd int) (int, int) {
	cols, rows, err := term.GetSize(fd)
	if err != nil {
		cols, rows = ppu.ScreenWidth, ppu.ScreenHeight/2
	}
	if d.width > 0 {
		cols = d.width
	}
	return Fit(cols, rows)
}

func (d *terminalDriver) readKeys(quit chan<- struct{}) {
	buf := make([]byte, 1)
	for {
		if _, err := d.in.Read(buf); err != nil {
			close(quit)
			return
		}
		switch buf[0] {
		case 'q', 0x03: // ctrl+c
			close(quit)
			return
		case 'p', ' ':
			display.TogglePause(d.emu)
		case 'r':
			d.emu.SendCommand(display.Reset)
		}
	}
}

// Stop stops the display driver.
func (d *terminalDriver) Stop() error {
	return nil
}

// Fit returns the largest frame size, in pixels, that fits in a
// terminal of cols x rows while keeping the screen aspect ratio.
// Each row holds two pixels, and the last row is left free.
func Fit(cols, rows int) (int, int) {
	height := (rows - 1) * 2
	width := height * ppu.ScreenWidth / ppu.ScreenHeight
	if width > cols {
		width = cols
		height = width * ppu.ScreenHeight / ppu.ScreenWidth
	}
	height &^= 1
	if width < 1 || height < 2 {
		return 1, 2
	}
	return width, height
}

// Render encodes img as rows of upper half blocks, the foreground
// colour being the upper pixel and the background the lower one.
func Render(img *image.RGBA) []byte {
	b := img.Bounds()
	out := make([]byte, 0, b.Dx()*b.Dy()*20)
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			top := img.RGBAAt(x, y)
			bottom := top
			if y+1 < b.Max.Y {
				bottom = img.RGBAAt(x, y+1)
			}
			out = appendColour(out, 38, top.R, top.G, top.B)
			out = appendColour(out, 48, bottom.R, bottom.G, bottom.B)
			out = append(out, "▀"...)
		}
		out = append(out, escReset+"\r\n"...)
	}
	return out
}

func appendColour(out []byte, layer int, r, g, b uint8) []byte {
	out = append(out, "\x1b["...)
	out = strconv.AppendInt(out, int64(layer), 10)
	out = append(out, ";2;"...)
	out = strconv.AppendUint(out, uint64(r), 10)
	out = append(out, ';')
	out = strconv.AppendUint(out, uint64(g), 10)
	out = append(out, ';')
	out = strconv.AppendUint(out, uint64(b), 10)
	return append(out, 'm')
}
