// Package window hosts a board in a desktop window using shiny.
package window

import (
	"fmt"
	"image"
	"log"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/dragboard/internal/app"
	"github.com/example/dragboard/internal/board"
	"github.com/example/dragboard/internal/clipboard"
	"github.com/example/dragboard/internal/notify"
	"github.com/example/dragboard/internal/scene"
	"github.com/example/dragboard/internal/surface"
	"github.com/example/dragboard/internal/theme"
)

// ProgramTitle prefixes every window title.
const ProgramTitle = "Dragboard"

const messageDuration = 3 * time.Second

// Window owns a board and the desktop window that shows it.
type Window struct {
	board *board.Board

	title    string
	saveDir  string
	output   string
	notifier *notify.Notifier
	copyFn   func(image.Image) error
	now      func() time.Time

	pressed      bool
	message      string
	messageUntil time.Time
}

// Option modifies a Window during creation.
type Option func(*Window)

// WithTitle appends detail to the window title.
func WithTitle(detail string) Option {
	return func(w *Window) {
		if d := strings.TrimSpace(detail); d != "" {
			w.title = ProgramTitle + " - " + d
		}
	}
}

// WithSaveDir sets the directory timestamped saves are written to.
func WithSaveDir(dir string) Option { return func(w *Window) { w.saveDir = dir } }

// WithOutput fixes the file Ctrl+S writes to.
func WithOutput(path string) Option { return func(w *Window) { w.output = path } }

// WithNotifier sets the notifier used after save and copy.
func WithNotifier(n *notify.Notifier) Option { return func(w *Window) { w.notifier = n } }

// WithClipboard replaces the clipboard writer.
func WithClipboard(fn func(image.Image) error) Option { return func(w *Window) { w.copyFn = fn } }

// WithClock replaces the time source used for messages and file names.
func WithClock(now func() time.Time) Option { return func(w *Window) { w.now = now } }

// New builds a width x height board styled by th and wraps it in a Window.
func New(width, height int, th *theme.Theme, opts ...Option) (*Window, error) {
	w := &Window{
		title:  ProgramTitle,
		copyFn: clipboard.WriteImage,
		now:    time.Now,
	}
	for _, o := range opts {
		o(w)
	}
	b, err := board.New(width, height, th,
		app.WithToolListener(w.toolChanged),
		app.WithCommitListener(w.committed),
		app.WithClearListener(w.cleared),
	)
	if err != nil {
		return nil, err
	}
	w.board = b
	return w, nil
}

// Board exposes the hosted board.
func (w *Window) Board() *board.Board { return w.board }

// Run executes the UI loop using shiny's driver.
func (w *Window) Run() { driver.Main(w.Main) }

// Main runs the event loop on s until the window is closed or the user quits.
func (w *Window) Main(s screen.Screen) {
	canvasW, canvasH := w.board.Size()
	win, err := s.NewWindow(&screen.NewWindowOptions{Width: canvasW, Height: canvasH, Title: w.title})
	if err != nil {
		log.Fatalf("new window: %v", err)
	}
	defer win.Release()

	width, height := canvasW, canvasH
	for {
		e := win.NextEvent()
		switch e := e.(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}
		case size.Event:
			width = e.WidthPx
			height = e.HeightPx
			win.Send(paint.Event{})
		case paint.Event:
			w.drawFrame(s, win, width, height)
		case mouse.Event:
			if w.handleMouse(e, fit(canvasW, canvasH, width, height)) {
				win.Send(paint.Event{})
			}
		case key.Event:
			switch w.handleKey(e) {
			case keyQuit:
				return
			case keyRedraw:
				win.Send(paint.Event{})
			}
		}
	}
}

// handleMouse feeds left-button presses, releases and moves to the control
// surface. It reports whether the window needs repainting. A press also
// dismisses the status message and is still delivered.
func (w *Window) handleMouse(e mouse.Event, dst image.Rectangle) bool {
	dismissed := false
	if e.Direction == mouse.DirPress && w.messageActive() {
		w.message = ""
		dismissed = true
	}
	canvasW, canvasH := w.board.Size()
	x, y, inside := toCanvas(dst, canvasW, canvasH, e.X, e.Y)
	ev := surface.PointerEvent{OffsetX: x, OffsetY: y}
	switch e.Direction {
	case mouse.DirPress:
		if e.Button != mouse.ButtonLeft || !inside {
			return dismissed
		}
		w.pressed = true
		ev.Kind = surface.PointerDown
	case mouse.DirRelease:
		if e.Button != mouse.ButtonLeft || !w.pressed {
			return false
		}
		w.pressed = false
		ev.Kind = surface.PointerUp
	case mouse.DirNone:
		if !inside && !w.pressed {
			return false
		}
		ev.Kind = surface.PointerMove
		w.board.Emit(ev)
		// Hover changes nothing visible; only drags repaint.
		return w.pressed
	default:
		return false
	}
	w.board.Emit(ev)
	return true
}

type keyResult int

const (
	keyNone keyResult = iota
	keyRedraw
	keyQuit
)

func (w *Window) handleKey(e key.Event) keyResult {
	if e.Direction != key.DirPress {
		return keyNone
	}
	ctrl := e.Modifiers&key.ModControl != 0
	switch {
	case ctrl && e.Code == key.CodeS:
		w.save()
		return keyRedraw
	case ctrl && e.Code == key.CodeC:
		w.copy()
		return keyRedraw
	case e.Code == key.CodeEscape, e.Code == key.CodeQ && e.Modifiers == 0:
		return keyQuit
	}
	return keyNone
}

func (w *Window) outputPath() string {
	if w.output != "" {
		return w.output
	}
	return filepath.Join(w.saveDir, w.now().Format("dragboard-20060102-150405.png"))
}

func (w *Window) save() {
	path := w.outputPath()
	if err := w.board.SavePNG(path, false); err != nil {
		log.Printf("window: save: %v", err)
		w.flash(fmt.Sprintf("save failed: %v", err))
		return
	}
	log.Printf("window: saved %s", path)
	w.flash("saved " + path)
	w.notifier.Save(path)
}

func (w *Window) copy() {
	img := w.board.Image(false)
	if err := w.copyFn(img); err != nil {
		log.Printf("window: copy: %v", err)
		w.flash(fmt.Sprintf("copy failed: %v", err))
		return
	}
	w.flash("copied board to clipboard")
	w.notifier.Copy("board", img)
}

func (w *Window) flash(msg string) {
	w.message = msg
	w.messageUntil = w.now().Add(messageDuration)
}

func (w *Window) messageActive() bool {
	return w.message != "" && w.now().Before(w.messageUntil)
}

func (w *Window) toolChanged(m app.ToolMode) {
	log.Printf("window: tool %s", m)
	w.flash("tool: " + m.String())
}

func (w *Window) committed(r scene.Rectangle) {
	lo, hi := r.Bounds()
	log.Printf("window: rectangle (%g,%g)-(%g,%g)", lo.X, lo.Y, hi.X, hi.Y)
}

func (w *Window) cleared() {
	log.Print("window: cleared")
	w.flash("cleared")
}
