package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/example/lighttable/internal/album"
	"github.com/example/lighttable/internal/dispatch"
	"github.com/example/lighttable/internal/session"
)

type replayCmd struct {
	*root
	fs       *flag.FlagSet
	photoDir string
	mode     string
	summary  bool
	script   string
}

func (c *replayCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseReplayCmd(args []string, r *root) (*replayCmd, error) {
	fs := flag.NewFlagSet("replay", flag.ExitOnError)
	c := &replayCmd{root: r, fs: fs}
	fs.Usage = usageFunc(c)
	dir := ""
	if r != nil && r.config != nil {
		dir = r.config.PhotoDir
	}
	fs.StringVar(&c.photoDir, "photo-dir", dir, "preload every image in this directory into the album")
	fs.StringVar(&c.mode, "mode", "", "initial annotation mode: drawing or text")
	fs.BoolVar(&c.summary, "summary", true, "print the album state after the script finishes")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 1 {
		return nil, &UsageError{of: c}
	}
	c.script = fs.Arg(0)
	return c, nil
}

func (c *replayCmd) Run() error {
	script, err := c.readScript()
	if err != nil {
		return err
	}
	a := album.New()
	if c.photoDir != "" {
		if a, err = album.LoadDir(c.photoDir); err != nil {
			return fmt.Errorf("replay: %w", err)
		}
	}
	mode := c.annotationMode()
	if c.mode != "" {
		if mode, err = session.ParseMode(c.mode); err != nil {
			return fmt.Errorf("replay: %w", err)
		}
	}
	s := c.newSession(a, mode)
	outs, err := s.Run(script)
	for _, out := range outs {
		printOutcome(c.stdout, out)
	}
	if err != nil {
		return fmt.Errorf("replay %s: %w", c.script, err)
	}
	if c.summary {
		printAlbum(c.stdout, a)
	}
	return nil
}

func (c *replayCmd) readScript() (session.Script, error) {
	var r io.Reader = c.stdin
	if c.script != "-" {
		f, err := os.Open(c.script)
		if err != nil {
			return nil, fmt.Errorf("replay: %w", err)
		}
		defer f.Close()
		r = f
	}
	script, err := session.ParseScript(r)
	if err != nil {
		return nil, fmt.Errorf("replay %s: %w", c.script, err)
	}
	return script, nil
}

func printOutcome(w io.Writer, out dispatch.Outcome) {
	vector := out.Vector
	if vector == "" {
		vector = "-"
	}
	fmt.Fprintf(w, "%s\t%s\t%s\n", vector, out.Gesture, out.Status)
}

func printAlbum(w io.Writer, a *album.Album) {
	cur := a.Index()
	for i, p := range a.Photos() {
		marker := " "
		if i == cur {
			marker = "*"
		}
		face := "photo"
		if p.Flipped() {
			face = "back"
		}
		var tags []string
		for _, t := range p.Tags() {
			tags = append(tags, t.String())
		}
		fmt.Fprintf(w, "%s %s\t%s\t[%s]\t%d annotation(s)\n", marker, p.Name, face, strings.Join(tags, ","), p.Annotations().Len())
	}
}
