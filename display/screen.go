package display

import (
	"errors"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/the-sequence/constants"
	"github.com/lixenwraith/the-sequence/core"
)

// ErrClosed is returned by Show after Fini
var ErrClosed = errors.New("display: screen closed")

// Event is a display-side notification for the driving loop
type Event uint8

const (
	EventQuit Event = iota
	EventResize
)

func (e Event) String() string {
	switch e {
	case EventQuit:
		return "quit"
	case EventResize:
		return "resize"
	default:
		return "unknown"
	}
}

// Screen owns a tcell screen and the text currently shown on it
type Screen struct {
	mu     sync.Mutex
	screen tcell.Screen
	style  tcell.Style
	text   string
	closed bool

	events chan Event
	once   sync.Once
}

// New creates and initializes the terminal screen
func New() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(s)
}

// NewWithScreen initializes an existing tcell screen, e.g. a simulation screen in tests
func NewWithScreen(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}

	style := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	s.SetStyle(style)
	s.HideCursor()
	s.Clear()
	s.Show()

	core.RegisterCrashScreen(s)

	return &Screen{
		screen: s,
		style:  style,
		events: make(chan Event, constants.EventBufferSize),
	}, nil
}

// Start launches the event pump; Events is closed when the screen is finalized
func (d *Screen) Start() {
	d.once.Do(func() {
		core.Go(d.pump)
	})
}

// Events returns the channel of display notifications
func (d *Screen) Events() <-chan Event {
	return d.events
}

// Show replaces the displayed text and redraws it centered
func (d *Screen) Show(text string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return ErrClosed
	}
	d.text = text
	d.draw()
	return nil
}

// Text returns the text currently shown
func (d *Screen) Text() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.text
}

// Size returns the current screen dimensions
func (d *Screen) Size() (width, height int) {
	return d.screen.Size()
}

// Fini restores the terminal; safe to call more than once
func (d *Screen) Fini() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}
	d.closed = true
	d.screen.Fini()
	core.RegisterCrashScreen(nil)
}

// draw renders d.text centered; caller holds d.mu
func (d *Screen) draw() {
	d.screen.Clear()

	width, height := d.screen.Size()
	x, y := Center(width, height, d.text)
	for _, r := range d.text {
		if x >= width {
			break
		}
		d.screen.SetContent(x, y, r, nil, d.style)
		x += widths.RuneWidth(r)
	}

	d.screen.Show()
}

// redraw recenters after a resize
func (d *Screen) redraw() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}
	d.screen.Sync()
	d.draw()
}

func (d *Screen) pump() {
	defer close(d.events)

	for {
		// PollEvent returns nil once the screen is finalized
		ev := d.screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventResize:
			d.redraw()
			d.emit(EventResize)
		case *tcell.EventKey:
			if IsQuitKey(ev.Key(), ev.Rune()) {
				d.emit(EventQuit)
			}
		}
	}
}

// emit never blocks the pump; events beyond the buffer are dropped
func (d *Screen) emit(e Event) {
	select {
	case d.events <- e:
	default:
	}
}

// IsQuitKey reports whether the key ends the display
func IsQuitKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return r == 'q' || r == 'Q'
	default:
		return false
	}
}
