// Package scenetest provides a scene.Canvas that records drawing calls.
package scenetest

import (
	"fmt"
	"strings"

	"github.com/example/dragboard/internal/scene"
)

// Op is one recorded canvas call.
type Op struct {
	Name string
	X, Y float64
	W, H float64
	Text string
	Size int
	Dash []int
	Fill string
}

func (o Op) String() string {
	switch o.Name {
	case "StrokeRect", "FillRect", "ClearRect":
		return fmt.Sprintf("%s(%g,%g,%g,%g)", o.Name, o.X, o.Y, o.W, o.H)
	case "DrawText":
		return fmt.Sprintf("DrawText(%q,%g,%g,%d)", o.Text, o.X, o.Y, o.Size)
	case "SetDashPattern":
		return fmt.Sprintf("SetDashPattern(%v)", o.Dash)
	case "SetFillColor":
		return fmt.Sprintf("SetFillColor(%s)", o.Fill)
	}
	return o.Name + "()"
}

// Recorder is a scene.Canvas that keeps every call in order.
type Recorder struct {
	Ops []Op
}

var _ scene.Canvas = (*Recorder)(nil)

func (r *Recorder) StrokeRect(x, y, w, h float64) {
	r.Ops = append(r.Ops, Op{Name: "StrokeRect", X: x, Y: y, W: w, H: h})
}

func (r *Recorder) FillRect(x, y, w, h float64) {
	r.Ops = append(r.Ops, Op{Name: "FillRect", X: x, Y: y, W: w, H: h})
}

func (r *Recorder) ClearRect(x, y, w, h float64) {
	r.Ops = append(r.Ops, Op{Name: "ClearRect", X: x, Y: y, W: w, H: h})
}

func (r *Recorder) DrawText(text string, x, y float64, sizePx int) {
	r.Ops = append(r.Ops, Op{Name: "DrawText", Text: text, X: x, Y: y, Size: sizePx})
}

func (r *Recorder) SetDashPattern(segments []int) {
	r.Ops = append(r.Ops, Op{Name: "SetDashPattern", Dash: append([]int(nil), segments...)})
}

func (r *Recorder) ResetDashPattern() {
	r.Ops = append(r.Ops, Op{Name: "ResetDashPattern"})
}

func (r *Recorder) SetFillColor(color string) {
	r.Ops = append(r.Ops, Op{Name: "SetFillColor", Fill: color})
}

// Reset forgets recorded calls.
func (r *Recorder) Reset() { r.Ops = nil }

// Names returns the recorded call names.
func (r *Recorder) Names() []string {
	out := make([]string, len(r.Ops))
	for i, op := range r.Ops {
		out[i] = op.Name
	}
	return out
}

// Find returns the recorded calls with the given name.
func (r *Recorder) Find(name string) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Name == name {
			out = append(out, op)
		}
	}
	return out
}

func (r *Recorder) String() string {
	parts := make([]string, len(r.Ops))
	for i, op := range r.Ops {
		parts[i] = op.String()
	}
	return strings.Join(parts, "\n")
}
