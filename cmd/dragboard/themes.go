package main

import (
	"flag"
	"fmt"
	"sort"

	"github.com/example/dragboard/internal/theme"
)

type themesCmd struct {
	*root
	fs *flag.FlagSet
}

func (c *themesCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseThemesCmd(args []string, r *root) (*themesCmd, error) {
	fs := flag.NewFlagSet("themes", flag.ExitOnError)
	c := &themesCmd{root: r, fs: fs}
	fs.Usage = usageFunc(c)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: c}
	}
	return c, nil
}

func (c *themesCmd) Run() error {
	active := c.themeSelection()
	if active == "" {
		active = "default"
	}
	mark := func(name string) string {
		if name == active {
			return "*"
		}
		return " "
	}
	fmt.Fprintln(c.stdout, "built-in themes (* marks the active theme):")
	for _, name := range theme.Builtin() {
		fmt.Fprintf(c.stdout, "%s %s\n", mark(name), name)
	}
	if len(c.config.Themes) > 0 {
		var names []string
		for name := range c.config.Themes {
			names = append(names, name)
		}
		sort.Strings(names)
		fmt.Fprintln(c.stdout, "themes from config:")
		for _, name := range names {
			fmt.Fprintf(c.stdout, "%s %s\n", mark(name), name)
		}
	}
	return nil
}
