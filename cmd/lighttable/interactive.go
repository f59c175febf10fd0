package main

import (
	"bufio"
	"flag"
	"fmt"
	"strings"

	"github.com/example/lighttable/internal/album"
	"github.com/example/lighttable/internal/session"
)

type commandList []string

func (c *commandList) String() string {
	return strings.Join(*c, ";")
}

func (c *commandList) Set(value string) error {
	*c = append(*c, value)
	return nil
}

type interactiveCmd struct {
	*root
	fs       *flag.FlagSet
	execs    commandList
	photoDir string
	session  *session.Session
}

func (i *interactiveCmd) FlagSet() *flag.FlagSet {
	return i.fs
}

func parseInteractiveCmd(args []string, r *root) (*interactiveCmd, error) {
	fs := flag.NewFlagSet("interactive", flag.ExitOnError)
	c := &interactiveCmd{root: r, fs: fs}
	fs.Usage = usageFunc(c)
	dir := ""
	if r != nil && r.config != nil {
		dir = r.config.PhotoDir
	}
	fs.Var(&c.execs, "e", "execute interactive command in immediate mode (may be specified multiple times)")
	fs.StringVar(&c.photoDir, "photo-dir", dir, "preload every image in this directory into the album")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return c, nil
}

func (i *interactiveCmd) Run() error {
	a := album.New()
	if i.photoDir != "" {
		var err error
		if a, err = album.LoadDir(i.photoDir); err != nil {
			return fmt.Errorf("interactive: %w", err)
		}
	}
	i.session = i.newSession(a, i.annotationMode())

	if len(i.execs) > 0 {
		for _, cmd := range i.execs {
			done, err := i.executeLine(cmd)
			if err != nil {
				return err
			}
			if done {
				break
			}
		}
		return nil
	}

	fmt.Fprintln(i.stdout, "Enter commands (type 'help' for a list, 'exit' to quit)")
	scanner := bufio.NewScanner(i.stdin)
	for {
		fmt.Fprint(i.stdout, "> ")
		if !scanner.Scan() {
			break
		}
		done, err := i.executeLine(scanner.Text())
		if err != nil {
			fmt.Fprintln(i.stderr, err)
		}
		if done {
			break
		}
	}
	return scanner.Err()
}

// executeLine runs one command and reports whether the session should end.
func (i *interactiveCmd) executeLine(line string) (bool, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return false, nil
	}
	switch strings.Fields(line)[0] {
	case "exit", "quit":
		return true, nil
	case "help":
		fmt.Fprintln(i.stdout, interactiveHelp)
		return false, nil
	case "album", "status":
		printAlbum(i.stdout, i.session.Dispatcher().Album())
		return false, nil
	}
	st, err := session.ParseStep(line)
	if err != nil {
		return false, err
	}
	out, ok, err := i.session.Exec(st)
	if err != nil {
		return false, fmt.Errorf("%s: %w", st.Op, err)
	}
	if ok {
		printOutcome(i.stdout, out)
	}
	return false, nil
}

const interactiveHelp = `Commands:
  photo <path>|<name> [WxH]   add a photo to the album
  flip                        turn the current photo over
  mode drawing|text           choose what a left drag creates
  origin x y                  move the photo within the view
  press left|right x y        press a pointer button
  move x y                    move the pointer
  release left|right x y      release a pointer button
  stroke x,y ...              draw a complete gesture with the right button
  type <text>                 type into the current post-it
  backspace                   delete the last typed character
  album                       list the photos
  exit                        leave`
