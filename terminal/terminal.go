package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/dotmatrixgb/dotmatrix"
	"github.com/dotmatrixgb/dotmatrix/timing"
)

// keyTimeout releases a button this long after its last key event.
// Terminals only deliver key-down, so releases are synthesized.
const keyTimeout = 150 * time.Millisecond

// Shell renders the machine into a terminal using half-block cells:
// each cell shows two vertically stacked pixels, so the 160x144 screen
// fits in 160x72 cells.
type Shell struct {
	machine *dotmatrix.Machine
	screen  tcell.Screen

	paced   timing.Limiter
	limiter timing.Limiter
	turbo   bool

	keyDeadlines map[dotmatrix.Button]time.Time
}

// New creates a shell around a machine with a loaded cartridge.
func New(machine *dotmatrix.Machine) *Shell {
	paced := timing.NewAdaptiveLimiter()
	return &Shell{
		machine:      machine,
		paced:        paced,
		limiter:      paced,
		keyDeadlines: make(map[dotmatrix.Button]time.Time),
	}
}

// toggleTurbo switches between hardware-paced and uncapped speed.
func (s *Shell) toggleTurbo() {
	s.turbo = !s.turbo
	if s.turbo {
		s.limiter = timing.Uncapped()
		return
	}
	s.paced.Reset()
	s.limiter = s.paced
}

// Run drives the machine at the hardware frame rate until the user
// quits with Escape or Ctrl-C.
func (s *Shell) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "initializing terminal")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "initializing terminal")
	}
	s.screen = screen
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	screen.Clear()

	if err := s.machine.Start(); err != nil {
		return err
	}
	s.limiter.Reset()

	for {
		if quit := s.processInput(); quit {
			return nil
		}
		s.expireKeys()

		if _, _, err := s.machine.RunFrame(); err != nil {
			return err
		}

		s.drawFrame()
		s.limiter.WaitForNextFrame()
	}
}

// processInput polls pending terminal events. Returns true on quit.
func (s *Shell) processInput() bool {
	for s.screen.HasPendingEvent() {
		ev := s.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				return true
			}
			if ev.Key() == tcell.KeyTab {
				s.toggleTurbo()
				continue
			}
			if button, ok := mapKey(ev); ok {
				s.pressKey(button)
			}
		case *tcell.EventResize:
			s.screen.Sync()
		}
	}
	return false
}

func (s *Shell) pressKey(button dotmatrix.Button) {
	if _, held := s.keyDeadlines[button]; !held {
		s.machine.PressButton(button)
	}
	s.keyDeadlines[button] = time.Now().Add(keyTimeout)
}

func (s *Shell) expireKeys() {
	now := time.Now()
	for button, deadline := range s.keyDeadlines {
		if now.After(deadline) {
			s.machine.ReleaseButton(button)
			delete(s.keyDeadlines, button)
		}
	}
}

func mapKey(ev *tcell.EventKey) (dotmatrix.Button, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return dotmatrix.ButtonUp, true
	case tcell.KeyDown:
		return dotmatrix.ButtonDown, true
	case tcell.KeyLeft:
		return dotmatrix.ButtonLeft, true
	case tcell.KeyRight:
		return dotmatrix.ButtonRight, true
	case tcell.KeyEnter:
		return dotmatrix.ButtonStart, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return dotmatrix.ButtonSelect, true
	}

	switch ev.Rune() {
	case 'z', 'Z':
		return dotmatrix.ButtonA, true
	case 'x', 'X':
		return dotmatrix.ButtonB, true
	}

	return 0, false
}

// drawFrame paints the framebuffer two rows per cell with the upper
// half block rune, foreground for the top pixel and background for the
// bottom one.
func (s *Shell) drawFrame() {
	fb := s.machine.Framebuffer()

	for y := 0; y < dotmatrix.ScreenHeight; y += 2 {
		for x := 0; x < dotmatrix.ScreenWidth; x++ {
			top := pixelColor(fb, x, y)
			bottom := pixelColor(fb, x, y+1)
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			s.screen.SetContent(x, y/2, '▀', nil, style)
		}
	}

	s.screen.Show()
}

func pixelColor(fb []byte, x, y int) tcell.Color {
	i := (y*dotmatrix.ScreenWidth + x) * 4
	return tcell.NewRGBColor(int32(fb[i]), int32(fb[i+1]), int32(fb[i+2]))
}
