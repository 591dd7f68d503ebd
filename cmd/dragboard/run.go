package main

import (
	"flag"

	"github.com/example/dragboard/internal/window"
)

type runCmd struct {
	*root
	fs      *flag.FlagSet
	width   int
	height  int
	output  string
	saveDir string
}

func (c *runCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseRunCmd(args []string, r *root) (*runCmd, error) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	c := &runCmd{root: r, fs: fs}
	fs.Usage = usageFunc(c)
	fs.IntVar(&c.width, "width", r.config.Canvas.Width, "canvas width in pixels")
	fs.IntVar(&c.height, "height", r.config.Canvas.Height, "canvas height in pixels")
	fs.StringVar(&c.output, "output", "", "file Ctrl+S writes to (default: timestamped file in -save-dir)")
	fs.StringVar(&c.saveDir, "save-dir", r.config.SaveDir, "directory for timestamped saves")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 || c.width <= 0 || c.height <= 0 {
		return nil, &UsageError{of: c}
	}
	return c, nil
}

func (c *runCmd) Run() error {
	w, err := window.New(c.width, c.height, c.activeTheme,
		window.WithTitle(c.activeTheme.Name),
		window.WithSaveDir(c.saveDir),
		window.WithOutput(c.output),
		window.WithNotifier(c.notifier),
	)
	if err != nil {
		return err
	}
	w.Run()
	return nil
}
