package main

import (
	"flag"
	"fmt"

	"github.com/example/lighttable/internal/gesture"
)

type recognizeCmd struct {
	*root
	fs      *flag.FlagSet
	flipped bool
	args    []string
}

func (c *recognizeCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseRecognizeCmd(args []string, r *root) (*recognizeCmd, error) {
	fs := flag.NewFlagSet("recognize", flag.ExitOnError)
	c := &recognizeCmd{root: r, fs: fs}
	fs.Usage = usageFunc(c)
	fs.BoolVar(&c.flipped, "flipped", false, "treat the stroke as drawn on the annotation face")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	c.args = fs.Args()
	return c, nil
}

func (c *recognizeCmd) Run() error {
	pts, err := pointsFrom(c.args, c.stdin)
	if err != nil {
		return fmt.Errorf("recognize: %w", err)
	}
	vector, g := c.recognizer().Recognize(gesture.NewStroke(pts...), gesture.ContextFor(c.flipped))
	fmt.Fprintf(c.stdout, "%s\t%s\n", vector, g)
	return nil
}
