package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/example/lighttable/internal/album"
	"github.com/example/lighttable/internal/config"
	"github.com/example/lighttable/internal/dispatch"
	"github.com/example/lighttable/internal/gesture"
	"github.com/example/lighttable/internal/notify"
	"github.com/example/lighttable/internal/palette"
	"github.com/example/lighttable/internal/session"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

type runnable interface{ Run() error }

type root struct {
	fs                 *flag.FlagSet
	program            string
	notifier           *notify.Notifier
	config             *config.Config
	stdin              io.Reader
	stdout             io.Writer
	stderr             io.Writer
	gestureAlerts      bool
	deleteAlerts       bool
	unrecognizedAlerts bool
	paletteName        string
	headName           string
	activePalette      *palette.Palette
	head               gesture.HeadMode
}

func (r *root) Program() string {
	return r.program
}

func (r *root) FlagSet() *flag.FlagSet {
	return r.fs
}

func newRoot() *root {
	loader := config.NewLoader(version, configPathOverride)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load config: %v\n", err)
		cfg = config.New()
	}
	return newRootWith(cfg, notify.New(notify.LoadPreferences()))
}

func newRootWith(cfg *config.Config, n *notify.Notifier) *root {
	r := &root{
		fs:       flag.NewFlagSet("lighttable", flag.ExitOnError),
		program:  "lighttable",
		notifier: n,
		config:   cfg,
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
	r.fs.BoolVar(&r.gestureAlerts, "notify-gesture", cfg.Notify.Gesture, "show a desktop notification for every applied gesture")
	r.fs.BoolVar(&r.deleteAlerts, "notify-delete", cfg.Notify.Delete, "show a desktop notification when a photo or annotations are deleted")
	r.fs.BoolVar(&r.unrecognizedAlerts, "notify-unrecognized", cfg.Notify.Unrecognized, "show a desktop notification for unrecognized strokes")

	// Precedence: CLI > Env > Config > Default
	r.fs.StringVar(&r.paletteName, "palette", "", "ink palette to use (default, dark, high_contrast or a file)")
	r.fs.StringVar(&r.headName, "head", "", "leading wildcard handling: bounded or possessive")
	r.fs.Usage = usageFunc(r)
	return r
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		return err
	}
	if r.fs.NArg() < 1 {
		return &UsageError{of: r}
	}
	if r.notifier != nil {
		r.notifier.Enable(notify.EventGesture, r.gestureAlerts)
		r.notifier.Enable(notify.EventDelete, r.deleteAlerts)
		r.notifier.Enable(notify.EventUnrecognized, r.unrecognizedAlerts)
	}
	if err := r.resolveHead(); err != nil {
		return err
	}
	r.activePalette = r.resolvePalette()

	cmdName := r.fs.Arg(0)
	subArgs := r.fs.Args()[1:]

	var (
		cmd runnable
		err error
	)
	switch cmdName {
	case "encode":
		cmd, err = parseEncodeCmd(subArgs, r)
	case "match":
		cmd, err = parseMatchCmd(subArgs, r)
	case "recognize":
		cmd, err = parseRecognizeCmd(subArgs, r)
	case "patterns":
		cmd, err = parsePatternsCmd(subArgs, r)
	case "replay":
		cmd, err = parseReplayCmd(subArgs, r)
	case "interactive":
		cmd, err = parseInteractiveCmd(subArgs, r)
	case "config":
		cmd, err = parseConfigCmd(subArgs, r)
	case "version":
		cmd = &versionCmd{r: r}
	default:
		err = &UsageError{of: r}
	}
	if err != nil {
		return err
	}
	return cmd.Run()
}

func (r *root) resolveHead() error {
	name := r.headName
	if name == "" && r.config != nil {
		name = r.config.Head
	}
	mode, err := gesture.ParseHeadMode(name)
	if err != nil {
		return err
	}
	r.head = mode
	return nil
}

func (r *root) resolvePalette() *palette.Palette {
	name := r.paletteName
	if name == "" {
		name = os.Getenv("LIGHTTABLE_PALETTE")
	}
	if name == "" && r.config != nil {
		name = r.config.Palette
	}
	if r.config != nil {
		if p, ok := r.config.Lookup(name); ok {
			return p
		}
	}
	p, err := palette.NewLoader().Load(name)
	if err != nil {
		if name != "" && !strings.EqualFold(name, "default") {
			fmt.Fprintf(r.stderr, "warning: failed to load palette '%s': %v. using default.\n", name, err)
		}
		return palette.Default()
	}
	return p
}

func (r *root) recognizer() *gesture.Recognizer {
	return gesture.NewRecognizer(gesture.WithHeadMode(r.head))
}

func (r *root) inkPalette() *palette.Palette {
	if r.activePalette == nil {
		return palette.Default()
	}
	return r.activePalette
}

// newSession wires an album to a dispatcher and a session configured from
// the root flags and config.
func (r *root) newSession(a *album.Album, mode album.Mode) *session.Session {
	opts := []dispatch.Option{
		dispatch.WithRecognizer(r.recognizer()),
		dispatch.WithPalette(r.inkPalette()),
	}
	if r.notifier != nil {
		opts = append(opts, dispatch.WithStatusListener(r.notifier.Outcome))
	}
	return session.New(dispatch.New(a, opts...), session.WithMode(mode))
}

func (r *root) annotationMode() album.Mode {
	if r.config == nil {
		return album.Drawing
	}
	m, err := session.ParseMode(r.config.AnnotationMode)
	if err != nil {
		return album.Drawing
	}
	return m
}

func main() {
	r := newRoot()
	if err := r.Run(os.Args[1:]); err != nil {
		var uerr *UsageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, uerr.Error())
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
