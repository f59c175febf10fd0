package main

import (
	"flag"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/example/lighttable/internal/gesture"
)

type patternsCmd struct {
	*root
	fs       *flag.FlagSet
	elements bool
}

func (c *patternsCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parsePatternsCmd(args []string, r *root) (*patternsCmd, error) {
	fs := flag.NewFlagSet("patterns", flag.ExitOnError)
	c := &patternsCmd{root: r, fs: fs}
	fs.Usage = usageFunc(c)
	fs.BoolVar(&c.elements, "elements", false, "also list the compiled phases of each template")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *patternsCmd) Run() error {
	tw := tabwriter.NewWriter(c.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "GESTURE\tFACE\tTEMPLATE")
	for _, g := range gesture.Gestures() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", g, faces(g), gesture.Template(g))
		if !c.elements {
			continue
		}
		for _, e := range gesture.PatternOf(g).Elements() {
			fmt.Fprintf(tw, "\t\t  %s\n", e)
		}
	}
	return tw.Flush()
}

func faces(g gesture.Gesture) string {
	var out []string
	for _, ctx := range []gesture.Context{gesture.Normal, gesture.Annotation} {
		if gesture.Eligible(g, ctx) {
			out = append(out, ctx.String())
		}
	}
	return strings.Join(out, ",")
}
