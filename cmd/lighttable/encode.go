package main

import (
	"flag"
	"fmt"

	"github.com/example/lighttable/internal/clipboard"
	"github.com/example/lighttable/internal/gesture"
)

type encodeCmd struct {
	*root
	fs          *flag.FlagSet
	toClipboard bool
	args        []string
}

func (c *encodeCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseEncodeCmd(args []string, r *root) (*encodeCmd, error) {
	fs := flag.NewFlagSet("encode", flag.ExitOnError)
	c := &encodeCmd{root: r, fs: fs}
	fs.Usage = usageFunc(c)
	fs.BoolVar(&c.toClipboard, "to-clipboard", false, "copy the vector to the clipboard")
	fs.BoolVar(&c.toClipboard, "to-clip", false, "copy the vector to the clipboard (alias)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	c.args = fs.Args()
	return c, nil
}

func (c *encodeCmd) Run() error {
	pts, err := pointsFrom(c.args, c.stdin)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	vector := gesture.Encode(pts)
	fmt.Fprintln(c.stdout, vector)
	if c.toClipboard {
		if err := clipboard.WriteVector(vector); err != nil {
			return fmt.Errorf("encode: copy to clipboard: %w", err)
		}
	}
	return nil
}
