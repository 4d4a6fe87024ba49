package dotmatrix

import (
	"log/slog"
	"os"

	"github.com/pkg/errors"

	"github.com/dotmatrixgb/dotmatrix/cpu"
	"github.com/dotmatrixgb/dotmatrix/memory"
	"github.com/dotmatrixgb/dotmatrix/timing"
	"github.com/dotmatrixgb/dotmatrix/video"
)

// Machine lifecycle errors.
var (
	// ErrCartridgeRejected is returned when a ROM image fails validation.
	ErrCartridgeRejected = errors.New("cartridge rejected")
	// ErrSnapshotIncompatible is returned when a snapshot does not match
	// the machine or its cartridge.
	ErrSnapshotIncompatible = errors.New("snapshot incompatible")
	// ErrNoCartridge is returned for operations that need a loaded ROM.
	ErrNoCartridge = errors.New("no cartridge loaded")
)

// Screen dimensions in pixels.
const (
	ScreenWidth  = video.FramebufferWidth
	ScreenHeight = video.FramebufferHeight
)

// frameCycleCeiling bounds a single RunFrame call. A frame takes
// timing.CyclesPerFrame cycles; the ceiling leaves generous slack for
// an instruction straddling the boundary or a disabled LCD.
const frameCycleCeiling = 2 * timing.CyclesPerFrame

// Status is the machine lifecycle state.
type Status uint8

const (
	// StatusIdle means no cartridge is loaded.
	StatusIdle Status = iota
	// StatusReady means a cartridge is loaded but the machine is paused.
	StatusReady
	// StatusRunning means the machine is executing.
	StatusRunning
)

// Button identifies one of the eight joypad inputs.
type Button = memory.JoypadKey

// Button values.
const (
	ButtonRight  = memory.JoypadRight
	ButtonLeft   = memory.JoypadLeft
	ButtonUp     = memory.JoypadUp
	ButtonDown   = memory.JoypadDown
	ButtonA      = memory.JoypadA
	ButtonB      = memory.JoypadB
	ButtonSelect = memory.JoypadSelect
	ButtonStart  = memory.JoypadStart
)

// Machine wires the CPU, memory unit and PPU together and drives them
// in lockstep: each executed instruction advances the timer, serial
// port, audio and video by the cycles it consumed.
type Machine struct {
	cpu *cpu.CPU
	mmu *memory.MMU
	ppu *video.PPU

	status Status
	logger *slog.Logger
}

// New creates an idle machine with nothing loaded.
func New() *Machine {
	m := &Machine{
		logger: slog.New(slog.NewTextHandler(os.Stderr, nil)),
	}
	m.attach(memory.New())
	return m
}

func (m *Machine) attach(mmu *memory.MMU) {
	m.mmu = mmu
	m.cpu = cpu.New(mmu)
	m.ppu = video.New(mmu)
}

// LoadROM validates a ROM image and inserts it. The machine resets and
// moves to the ready state.
func (m *Machine) LoadROM(data []byte) error {
	cart, err := memory.NewCartridgeWithData(data)
	if err != nil {
		return errors.Wrap(ErrCartridgeRejected, err.Error())
	}

	m.attach(memory.NewWithCartridge(cart))
	m.status = StatusReady

	m.logger.Info("cartridge loaded",
		"title", cart.Title(),
		"size", cart.Length(),
		"cgb", cart.CGB())

	return nil
}

// Reset restores power-on state, keeping the loaded cartridge.
func (m *Machine) Reset() {
	if m.status == StatusIdle {
		m.attach(memory.New())
		return
	}
	m.attach(memory.NewWithCartridge(m.mmu.Cartridge()))
	m.status = StatusReady
}

// Start moves a ready machine into the running state.
func (m *Machine) Start() error {
	if m.status == StatusIdle {
		return ErrNoCartridge
	}
	m.status = StatusRunning
	return nil
}

// Stop pauses a running machine.
func (m *Machine) Stop() {
	if m.status == StatusRunning {
		m.status = StatusReady
	}
}

// Status returns the lifecycle state.
func (m *Machine) Status() Status {
	return m.status
}

// Step executes a single instruction and advances every subsystem by
// the cycles it took. Returns the cycle count.
func (m *Machine) Step() int {
	cycles := m.cpu.Step()
	m.mmu.Tick(cycles)
	m.ppu.Tick(cycles)
	return cycles
}

// RunFrame executes instructions until the PPU completes a frame, then
// returns the cycles consumed and whether a genuine V-blank was
// reached. A cycle ceiling guards against the LCD being disabled: the
// call then returns a partial frame with complete=false instead of
// blocking.
func (m *Machine) RunFrame() (int, bool, error) {
	if m.status == StatusIdle {
		return 0, false, ErrNoCartridge
	}

	total := 0
	for !m.ppu.FrameReady() {
		total += m.Step()
		if total >= frameCycleCeiling {
			break
		}
	}

	complete := m.ppu.FrameReady()
	if complete {
		m.ppu.ConsumeFrame()
	}
	return total, complete, nil
}

// Framebuffer returns the rendered screen as RGBA bytes, four per
// pixel, rows top to bottom.
func (m *Machine) Framebuffer() []byte {
	return m.ppu.Framebuffer().Bytes()
}

// PressButton records a pressed button, raising the joypad interrupt
// when the button's group is selected.
func (m *Machine) PressButton(b Button) {
	m.mmu.HandleKeyPress(b)
}

// ReleaseButton records a released button.
func (m *Machine) ReleaseButton(b Button) {
	m.mmu.HandleKeyRelease(b)
}
