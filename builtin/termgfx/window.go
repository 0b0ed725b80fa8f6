/*
File    : ego/builtin/termgfx/window.go
*/

// Package termgfx re-hosts the graphics and input builtins onto a
// terminal character grid. The source's builtins.cpp wires these calls
// straight to raylib, which has no pure-Go binding and would require
// cgo; this package gives scripts written against that API a window
// that is actually a fixed character grid, painted through
// github.com/fatih/color and read back from a raw-mode terminal using
// github.com/chzyer/readline's terminal state helpers — the same
// raw-mode mechanism its own Instance uses internally to read arrow
// keys one byte at a time.
package termgfx

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

type cell struct {
	ch  byte
	fg  color.Attribute
	set bool
}

// Window holds the character grid a running ego program draws onto and
// the most recently observed keyboard state.
type Window struct {
	mu     sync.Mutex
	cols   int
	rows   int
	cells  []cell
	title  string
	closed bool

	keys    map[string]bool
	oldTerm *readline.State
	input   chan byte
}

// New opens a window backed by a cols x rows character grid and, when
// stdin is a real terminal, switches it into raw mode so single
// keystrokes can be polled without waiting for Enter. When stdin is not
// a terminal (piped input, a test harness) it runs headless: drawing
// still works, is_key_down simply never reports a key down.
func New(title string, cols, rows int) (*Window, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("window dimensions must be positive, got %dx%d", cols, rows)
	}
	w := &Window{
		cols:  cols,
		rows:  rows,
		cells: make([]cell, cols*rows),
		title: title,
		keys:  make(map[string]bool),
		input: make(chan byte, 64),
	}
	if state, err := readline.MakeRaw(int(os.Stdin.Fd())); err == nil {
		w.oldTerm = state
		go w.readKeys()
	}
	return w, nil
}

func (w *Window) readKeys() {
	buf := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil || n == 0 {
			return
		}
		select {
		case w.input <- buf[0]:
		default:
		}
	}
}

// poll drains every keystroke buffered since the last poll into the
// current key-down set. ego programs call is_key_down once per drawing
// loop iteration, so "down" means "seen since the previous frame" rather
// than a true OS-level key-state query.
func (w *Window) poll() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for k := range w.keys {
		delete(w.keys, k)
	}
	for {
		select {
		case b := <-w.input:
			w.keys[keyName(b)] = true
		default:
			return
		}
	}
}

func keyName(b byte) string {
	switch b {
	case 27:
		return "ESCAPE"
	case ' ':
		return "SPACE"
	case 13, 10:
		return "ENTER"
	default:
		return strings.ToUpper(string(rune(b)))
	}
}

// IsKeyDown reports whether key was read since the last call.
func (w *Window) IsKeyDown(key string) bool {
	w.poll()
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.keys[strings.ToUpper(key)]
}

// ShouldClose reports whether the window has been asked to close, either
// explicitly via close_window or by the user pressing escape.
func (w *Window) ShouldClose() bool {
	if w.IsKeyDown("ESCAPE") {
		return true
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}

// Close restores the terminal to its original mode.
func (w *Window) Close() {
	w.mu.Lock()
	w.closed = true
	w.mu.Unlock()
	if w.oldTerm != nil {
		readline.Restore(int(os.Stdin.Fd()), w.oldTerm)
	}
}

// ClearBackground wipes every cell, starting a new frame.
func (w *Window) ClearBackground(c color.Attribute) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i := range w.cells {
		w.cells[i] = cell{}
	}
}

// DrawRectangle paints a filled rectangle of '#' cells.
func (w *Window) DrawRectangle(x, y, width, height int, c color.Attribute) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			w.setCell(col, row, '#', c)
		}
	}
}

// DrawCircle paints a filled circle of 'o' cells using a simple distance
// test — good enough at character-grid resolution.
func (w *Window) DrawCircle(cx, cy, radius int, c color.Attribute) {
	w.mu.Lock()
	defer w.mu.Unlock()
	r2 := radius * radius
	for row := cy - radius; row <= cy+radius; row++ {
		for col := cx - radius; col <= cx+radius; col++ {
			dx, dy := col-cx, row-cy
			if dx*dx+dy*dy <= r2 {
				w.setCell(col, row, 'o', c)
			}
		}
	}
}

// DrawText paints text left-to-right starting at (x, y).
func (w *Window) DrawText(text string, x, y int, c color.Attribute) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i := 0; i < len(text); i++ {
		w.setCell(x+i, y, text[i], c)
	}
}

func (w *Window) setCell(x, y int, ch byte, c color.Attribute) {
	if x < 0 || x >= w.cols || y < 0 || y >= w.rows {
		return
	}
	w.cells[y*w.cols+x] = cell{ch: ch, fg: c, set: true}
}

// BeginDrawing exists for parity with the source's begin/end drawing
// pair; the grid already accumulates draw calls between
// ClearBackground and EndDrawing, so there is nothing to start here.
func (w *Window) BeginDrawing() {}

// EndDrawing renders the accumulated grid to stdout as one frame.
func (w *Window) EndDrawing() {
	w.mu.Lock()
	defer w.mu.Unlock()
	var b strings.Builder
	b.WriteString("\x1b[H\x1b[2J")
	for row := 0; row < w.rows; row++ {
		for col := 0; col < w.cols; col++ {
			c := w.cells[row*w.cols+col]
			if !c.set {
				b.WriteByte(' ')
				continue
			}
			b.WriteString(color.New(c.fg).Sprintf("%c", c.ch))
		}
		b.WriteByte('\n')
	}
	fmt.Fprint(os.Stdout, b.String())
}
