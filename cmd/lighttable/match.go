package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/example/lighttable/internal/clipboard"
	"github.com/example/lighttable/internal/gesture"
)

// contextFlag selects the face a vector is matched against.
type contextFlag struct {
	ctx gesture.Context
}

func (f *contextFlag) String() string {
	return f.ctx.String()
}

func (f *contextFlag) Set(v string) error {
	switch strings.ToLower(v) {
	case "normal", "photo":
		f.ctx = gesture.Normal
	case "annotation", "flipped":
		f.ctx = gesture.Annotation
	default:
		return fmt.Errorf("unknown context %q", v)
	}
	return nil
}

type matchCmd struct {
	*root
	fs            *flag.FlagSet
	context       contextFlag
	fromClipboard bool
	vectors       []string
}

func (c *matchCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseMatchCmd(args []string, r *root) (*matchCmd, error) {
	fs := flag.NewFlagSet("match", flag.ExitOnError)
	c := &matchCmd{root: r, fs: fs}
	fs.Usage = usageFunc(c)
	fs.Var(&c.context, "context", "match context: normal or annotation")
	fs.BoolVar(&c.fromClipboard, "from-clipboard", false, "match the vector held in the clipboard")
	fs.BoolVar(&c.fromClipboard, "from-clip", false, "match the vector held in the clipboard (alias)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	c.vectors = fs.Args()
	if len(c.vectors) == 0 && !c.fromClipboard {
		return nil, &UsageError{of: c}
	}
	return c, nil
}

func (c *matchCmd) Run() error {
	vectors := c.vectors
	if c.fromClipboard {
		v, err := clipboard.ReadVector()
		if err != nil {
			return fmt.Errorf("match: read clipboard: %w", err)
		}
		vectors = append([]string{v}, vectors...)
	}
	rec := c.recognizer()
	for _, v := range vectors {
		v = strings.ToUpper(strings.TrimSpace(v))
		fmt.Fprintf(c.stdout, "%s\t%s\n", v, rec.Match(v, c.context.ctx))
	}
	return nil
}
