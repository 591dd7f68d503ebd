package main

import (
	"bufio"
	"flag"
	"fmt"
	"strings"

	"github.com/example/dragboard/internal/board"
	"github.com/example/dragboard/internal/gesture"
)

type interactiveCmd struct {
	*root
	fs     *flag.FlagSet
	width  int
	height int
}

func (c *interactiveCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseInteractiveCmd(args []string, r *root) (*interactiveCmd, error) {
	fs := flag.NewFlagSet("interactive", flag.ExitOnError)
	c := &interactiveCmd{root: r, fs: fs}
	fs.Usage = usageFunc(c)
	fs.IntVar(&c.width, "width", r.config.Canvas.Width, "canvas width in pixels")
	fs.IntVar(&c.height, "height", r.config.Canvas.Height, "canvas height in pixels")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 || c.width <= 0 || c.height <= 0 {
		return nil, &UsageError{of: c}
	}
	return c, nil
}

func (c *interactiveCmd) Run() error {
	b, err := board.New(c.width, c.height, c.activeTheme)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.stdout, "Enter gesture commands, save FILE, copy, status or exit")
	scanner := bufio.NewScanner(c.stdin)
	for {
		fmt.Fprint(c.stdout, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}
		if err := c.exec(b, line); err != nil {
			fmt.Fprintln(c.stderr, err)
		}
	}
	return scanner.Err()
}

func (c *interactiveCmd) exec(b *board.Board, line string) error {
	fields := strings.Fields(line)
	switch fields[0] {
	case "save":
		if len(fields) != 2 {
			return fmt.Errorf("usage: save FILE")
		}
		if err := b.SavePNG(fields[1], false); err != nil {
			return err
		}
		fmt.Fprintf(c.stdout, "saved %s\n", fields[1])
		c.notifier.Save(fields[1])
	case "copy":
		img := b.Image(false)
		if err := writeClipboard(img); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		fmt.Fprintln(c.stdout, "copied board to clipboard")
		c.notifier.Copy("board", img)
	case "status":
		fmt.Fprintln(c.stdout, status(b))
	default:
		events, err := gesture.Parse(strings.NewReader(line))
		if err != nil {
			return err
		}
		gesture.Play(b.App.Control(), events)
	}
	return nil
}

func status(b *board.Board) string {
	a := b.App
	selected := "none"
	if i, ok := a.Selected(); ok {
		selected = fmt.Sprint(i)
	}
	return fmt.Sprintf("tool=%s shapes=%d selected=%s", a.Tool(), a.Paint().Scene().Len(), selected)
}
