// Package gameboy provides an emulation of a Nintendo Game Boy.
// It ties the CPU, memory, interrupt controller and timer together
// and drives them with a cycle scheduler, which converts the rates
// of the timer and display into emulated elapsed time.
package gameboy

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/thelolagemann/gomeboy-core/internal/cartridge"
	"github.com/thelolagemann/gomeboy-core/internal/cpu"
	"github.com/thelolagemann/gomeboy-core/internal/interrupts"
	"github.com/thelolagemann/gomeboy-core/internal/mmu"
	"github.com/thelolagemann/gomeboy-core/internal/ppu"
	"github.com/thelolagemann/gomeboy-core/internal/ppu/palette"
	"github.com/thelolagemann/gomeboy-core/internal/scheduler"
	"github.com/thelolagemann/gomeboy-core/internal/timer"
	"github.com/thelolagemann/gomeboy-core/pkg/display/event"
	"github.com/thelolagemann/gomeboy-core/pkg/emulator"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
	"github.com/thelolagemann/gomeboy-core/pkg/utils"
)

const (
	// ClockSpeed is the clock speed of the Game Boy.
	ClockSpeed = timer.ClockSpeed // 4.194304 MHz
	// CyclesPerFrame is the number of clock cycles per frame.
	CyclesPerFrame = ppu.FrameCycles
	// FrameRate is the number of frames per second at normal speed.
	FrameRate = float64(ClockSpeed) / CyclesPerFrame

	// timerPollCycles is how often a disabled timer checks TAC.
	timerPollCycles = 256
)

// GameBoy represents a Game Boy. It contains all the components of the Game Boy.
// It is the main entry point for the emulator.
type GameBoy struct {
	CPU        *cpu.CPU
	MMU        *mmu.MMU
	PPU        *ppu.PPU
	Interrupts *interrupts.Service
	Timer      *timer.Controller
	Scheduler  *scheduler.Scheduler
	Cartridge  *cartridge.Cartridge

	log.Logger

	rom        []byte
	speed      float64
	uncapped   bool
	timerArmed bool
	frameDone  bool

	mu     sync.Mutex
	paused bool
	closed bool
	err    error
}

// NewGameBoy returns a new GameBoy with rom loaded, ready to
// execute from the entry point.
func NewGameBoy(rom []byte, opts ...Opt) *GameBoy {
	memBus := mmu.NewMMU()
	interrupt := interrupts.NewService(memBus)

	g := &GameBoy{
		CPU:        cpu.NewCPU(memBus, interrupt),
		MMU:        memBus,
		PPU:        ppu.New(memBus, palette.Get(palette.Greyscale)),
		Interrupts: interrupt,
		Timer:      timer.NewController(memBus, interrupt),

		Logger: log.NewNullLogger(),
		speed:  1,
	}

	for _, opt := range opts {
		opt(g)
	}

	g.load(rom)

	return g
}

// load copies rom into memory and puts every component in its
// start state.
func (g *GameBoy) load(rom []byte) {
	g.rom = rom
	g.Cartridge = cartridge.NewCartridge(rom)
	g.Cartridge.Log(g.Logger)

	g.MMU.Load(rom)
	g.CPU.Reset()
	g.err = nil

	g.Scheduler = scheduler.NewScheduler()
	g.Scheduler.RegisterEvent(scheduler.DividerTick, g.dividerTick)
	g.Scheduler.RegisterEvent(scheduler.TimerTick, g.timerTick)
	g.Scheduler.RegisterEvent(scheduler.FrameEnd, g.frameEnd)

	g.timerArmed = false
	g.Scheduler.ScheduleEvent(scheduler.DividerTick, timer.DividerPeriod)
	g.Scheduler.ScheduleEvent(scheduler.TimerTick, timerPollCycles)
	g.Scheduler.ScheduleEvent(scheduler.FrameEnd, CyclesPerFrame)
}

func (g *GameBoy) dividerTick() {
	g.Timer.TickDivider()
	g.Scheduler.ScheduleEvent(scheduler.DividerTick, timer.DividerPeriod)
}

// timerTick increments TIMA when the timer has been running for a
// full period. TAC is read again every time, so a change of rate
// applies from the next tick.
func (g *GameBoy) timerTick() {
	if g.timerArmed && g.Timer.Enabled() {
		g.Timer.TickCounter()
	}

	period := g.Timer.Period()
	g.timerArmed = period != 0
	if period == 0 {
		period = timerPollCycles
	}
	g.Scheduler.ScheduleEvent(scheduler.TimerTick, period)
}

func (g *GameBoy) frameEnd() {
	g.Interrupts.Request(interrupts.VBlankFlag)
	g.PPU.Render()
	g.frameDone = true
	g.Scheduler.ScheduleEvent(scheduler.FrameEnd, CyclesPerFrame)
}

// Step executes a single CPU step and advances the scheduler by
// the cycles it took.
func (g *GameBoy) Step() (uint8, error) {
	cycles, err := g.CPU.Step()
	if err != nil {
		g.err = err
		return cycles, err
	}
	g.Scheduler.Tick(uint64(cycles))
	return cycles, nil
}

// Frame will step the emulation until the end of the current
// frame, at which point a new frame has been rendered.
func (g *GameBoy) Frame() error {
	g.frameDone = false
	for !g.frameDone {
		if _, err := g.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Start runs the emulation, sending every rendered frame to
// frames, until ctx is cancelled, the emulator is closed, or the
// CPU stops on an error. Frames are paced to the configured speed
// unless the GameBoy is uncapped.
func (g *GameBoy) Start(ctx context.Context, frames chan<- []byte, events chan<- event.Event) error {
	g.Infof("Starting emulation")

	speed := g.Speed()
	ticker := time.NewTicker(frameDuration(speed))
	defer ticker.Stop()

	count := 0
	start := time.Now()
	for {
		g.mu.Lock()
		if g.closed {
			g.mu.Unlock()
			return nil
		}
		var (
			fb  []byte
			err error
		)
		if !g.paused {
			if err = g.Frame(); err == nil {
				fb = g.PPU.Frame()
			}
		}
		if g.speed != speed {
			speed = g.speed
			ticker.Reset(frameDuration(speed))
		}
		g.mu.Unlock()

		if err != nil {
			g.Errorf("emulation stopped: %v", err)
			return err
		}

		if fb != nil {
			count++
			select {
			case frames <- fb:
			case <-ctx.Done():
				return nil
			}
		}

		if time.Since(start) >= time.Second {
			g.sendEvent(events, event.Event{
				Type: event.Title,
				Data: fmt.Sprintf("%s | FPS: %d", g.Cartridge.Title(), count),
			})
			count = 0
			start = time.Now()
		}

		if g.uncapped && fb != nil {
			select {
			case <-ctx.Done():
				return nil
			default:
			}
			continue
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (g *GameBoy) sendEvent(events chan<- event.Event, e event.Event) {
	if events == nil {
		return
	}
	select {
	case events <- e:
	default:
	}
}

func frameDuration(speed float64) time.Duration {
	return time.Duration(float64(time.Second) / (FrameRate * speed))
}

// SendCommand applies a command packet to the emulator.
func (g *GameBoy) SendCommand(packet emulator.CommandPacket) emulator.ResponsePacket {
	resp := emulator.ResponsePacket{Command: packet.Command}

	switch packet.Command {
	case emulator.CommandPause:
		g.Pause()
	case emulator.CommandResume:
		g.Resume()
	case emulator.CommandClose:
		g.mu.Lock()
		g.closed = true
		g.mu.Unlock()
	case emulator.CommandReset:
		g.mu.Lock()
		g.load(g.rom)
		g.mu.Unlock()
	case emulator.CommandLoadROM:
		g.mu.Lock()
		g.load(packet.Data)
		g.mu.Unlock()
	case emulator.CommandSetSpeed:
		speed, err := packet.Speed()
		if err != nil {
			resp.Error = err
			break
		}
		g.mu.Lock()
		g.speed = speed
		g.mu.Unlock()
	default:
		resp.Error = fmt.Errorf("unknown command: %s", packet.Command)
	}

	if resp.Error == nil {
		g.Debugf("command %s", packet.Command)
	}
	return resp
}

// LoadROM loads the program image at path, which may be
// compressed, and resets the machine.
func (g *GameBoy) LoadROM(path string) error {
	rom, err := utils.LoadFile(path)
	if err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.load(rom)
	return nil
}

func (g *GameBoy) Pause() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.paused = true
}

func (g *GameBoy) Resume() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.paused = false
}

func (g *GameBoy) Paused() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.paused
}

// Initialised reports whether a program image has been loaded.
func (g *GameBoy) Initialised() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.rom) > 0
}

// Speed returns the speed multiplier.
func (g *GameBoy) Speed() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.speed
}

// Status returns the status of the emulator.
func (g *GameBoy) Status() emulator.Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	switch {
	case g.err != nil:
		return emulator.Errored
	case g.paused:
		return emulator.Paused
	case g.CPU.Halted:
		return emulator.Halted
	default:
		return emulator.Running
	}
}

// Err returns the error the CPU stopped on, if any.
func (g *GameBoy) Err() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.err
}
