// Package gesture reads scripted pointer gestures and plays them back
// against a surface.
package gesture

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/example/dragboard/internal/surface"
)

// ErrSyntax is wrapped by every parse error.
var ErrSyntax = errors.New("gesture syntax error")

// defaultDragSteps is the number of intermediate moves a drag command emits.
const defaultDragSteps = 4

// maxDragSteps bounds the moves a single drag command may expand to.
const maxDragSteps = 10000

// Parse reads a gesture script and expands it into raw pointer events.
//
// Each non-empty line holds one command; text after '#' is ignored:
//
//	down X Y
//	move X Y
//	up X Y
//	click X Y
//	drag X0 Y0 X1 Y1 [STEPS]
func Parse(r io.Reader) ([]surface.PointerEvent, error) {
	var events []surface.PointerEvent
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		evs, err := parseCommand(strings.ToLower(fields[0]), fields[1:])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		events = append(events, evs...)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

func parseCommand(cmd string, args []string) ([]surface.PointerEvent, error) {
	switch cmd {
	case "down", "move", "up", "click":
		nums, err := floats(cmd, args, 2)
		if err != nil {
			return nil, err
		}
		x, y := nums[0], nums[1]
		switch cmd {
		case "down":
			return []surface.PointerEvent{at(surface.PointerDown, x, y)}, nil
		case "move":
			return []surface.PointerEvent{at(surface.PointerMove, x, y)}, nil
		case "up":
			return []surface.PointerEvent{at(surface.PointerUp, x, y)}, nil
		}
		return []surface.PointerEvent{at(surface.PointerDown, x, y), at(surface.PointerUp, x, y)}, nil
	case "drag":
		steps := defaultDragSteps
		if len(args) == 5 {
			n, err := strconv.Atoi(args[4])
			if err != nil || n < 1 {
				return nil, fmt.Errorf("%w: drag steps %q must be a positive integer", ErrSyntax, args[4])
			}
			if n > maxDragSteps {
				return nil, fmt.Errorf("%w: drag steps %d exceed %d", ErrSyntax, n, maxDragSteps)
			}
			steps = n
			args = args[:4]
		}
		nums, err := floats(cmd, args, 4)
		if err != nil {
			return nil, err
		}
		return Drag(nums[0], nums[1], nums[2], nums[3], steps), nil
	}
	return nil, fmt.Errorf("%w: unknown command %q", ErrSyntax, cmd)
}

// Drag returns a press at (x0, y0), steps evenly spaced moves ending at
// (x1, y1) and a release there. steps is clamped to [1, maxDragSteps].
func Drag(x0, y0, x1, y1 float64, steps int) []surface.PointerEvent {
	steps = max(1, min(steps, maxDragSteps))
	evs := make([]surface.PointerEvent, 0, steps+2)
	evs = append(evs, at(surface.PointerDown, x0, y0))
	for i := 1; i <= steps; i++ {
		f := float64(i) / float64(steps)
		evs = append(evs, at(surface.PointerMove, x0+(x1-x0)*f, y0+(y1-y0)*f))
	}
	return append(evs, at(surface.PointerUp, x1, y1))
}

// Play emits events on s in order.
func Play(s *surface.Surface, events []surface.PointerEvent) {
	for _, ev := range events {
		s.Emit(ev)
	}
}

func at(kind surface.PointerKind, x, y float64) surface.PointerEvent {
	return surface.PointerEvent{Kind: kind, OffsetX: x, OffsetY: y}
}

func floats(cmd string, args []string, n int) ([]float64, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%w: %s takes %d numbers, got %d", ErrSyntax, cmd, n, len(args))
	}
	out := make([]float64, n)
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: %s: invalid number %q", ErrSyntax, cmd, a)
		}
		out[i] = v
	}
	return out, nil
}
