package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/example/dragboard/internal/board"
	"github.com/example/dragboard/internal/clipboard"
	"github.com/example/dragboard/internal/gesture"
	"github.com/example/dragboard/internal/render"
	"github.com/example/dragboard/internal/surface"
)

var writeClipboard = clipboard.WriteImage

type replayCmd struct {
	*root
	fs          *flag.FlagSet
	script      string
	output      string
	width       int
	height      int
	withControl bool
	toClipboard bool
	shadow      int
}

func (c *replayCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseReplayCmd(args []string, r *root) (*replayCmd, error) {
	fs := flag.NewFlagSet("replay", flag.ExitOnError)
	c := &replayCmd{root: r, fs: fs}
	fs.Usage = usageFunc(c)
	fs.StringVar(&c.output, "output", "", "PNG file to write, - for stdout")
	fs.IntVar(&c.width, "width", r.config.Canvas.Width, "canvas width in pixels")
	fs.IntVar(&c.height, "height", r.config.Canvas.Height, "canvas height in pixels")
	fs.BoolVar(&c.withControl, "with-control", false, "include the control layer (buttons and preview) in the output")
	fs.BoolVar(&c.toClipboard, "to-clipboard", false, "copy the result to the clipboard")
	fs.BoolVar(&c.toClipboard, "to-clip", false, "copy the result to the clipboard (alias)")
	fs.IntVar(&c.shadow, "shadow", 0, "drop shadow blur radius in pixels, 0 for none")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 1 || (c.output == "" && !c.toClipboard) || c.width <= 0 || c.height <= 0 || c.shadow < 0 {
		return nil, &UsageError{of: c}
	}
	c.script = fs.Arg(0)
	return c, nil
}

func (c *replayCmd) Run() error {
	events, err := c.readScript()
	if err != nil {
		return err
	}
	b, err := board.New(c.width, c.height, c.activeTheme)
	if err != nil {
		return err
	}
	gesture.Play(b.App.Control(), events)

	img := b.Image(c.withControl)
	if c.shadow > 0 {
		img, _ = render.WithShadow(img, render.DefaultShadowOptions(c.shadow))
	}

	switch c.output {
	case "":
	case "-":
		if err := png.Encode(c.stdout, img); err != nil {
			return fmt.Errorf("failed to write PNG: %w", err)
		}
	default:
		if err := writePNG(c.output, img); err != nil {
			return err
		}
		fmt.Fprintf(c.stderr, "saved %s (%d shapes)\n", c.output, b.App.Paint().Scene().Len())
		c.notifier.Save(c.output)
	}

	if c.toClipboard {
		if err := writeClipboard(img); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		c.notifier.Copy("board", img)
	}
	return nil
}

func writePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}

func (c *replayCmd) readScript() ([]surface.PointerEvent, error) {
	var in io.Reader = c.stdin
	name := "stdin"
	if c.script != "" && c.script != "-" {
		f, err := os.Open(c.script)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
		name = c.script
	}
	events, err := gesture.Parse(in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return events, nil
}
