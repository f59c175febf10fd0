package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/lighttable/internal/config"
	"github.com/example/lighttable/internal/gesture"
)

func newTestRoot(t *testing.T, cfg *config.Config) (*root, *bytes.Buffer) {
	t.Helper()
	t.Setenv("LIGHTTABLE_PALETTE", "")
	if cfg == nil {
		cfg = config.New()
	}
	r := newRootWith(cfg, nil)
	var out bytes.Buffer
	r.stdout = &out
	r.stderr = &bytes.Buffer{}
	r.stdin = strings.NewReader("")
	return r, &out
}

func TestEncode(t *testing.T) {
	r, out := newTestRoot(t, nil)
	if err := r.Run([]string{"encode", "0,0", "10,0", "20,0"}); err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "EE" {
		t.Fatalf("encode = %q, want EE", got)
	}
}

func TestEncodeFromStdin(t *testing.T) {
	r, out := newTestRoot(t, nil)
	r.stdin = strings.NewReader("100,100 110,110\n100,120\n")
	if err := r.Run([]string{"encode"}); err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "CD" {
		t.Fatalf("encode = %q, want CD", got)
	}
}

func TestEncodeBadPoint(t *testing.T) {
	r, _ := newTestRoot(t, nil)
	err := r.Run([]string{"encode", "1;2"})
	if err == nil || !strings.Contains(err.Error(), "invalid point") {
		t.Fatalf("expected invalid point error, got %v", err)
	}
}

func TestMatch(t *testing.T) {
	r, out := newTestRoot(t, nil)
	if err := r.Run([]string{"match", "cd", "BBCCSDDAANB", "WSCBNAWDS"}); err != nil {
		t.Fatalf("match failed: %v", err)
	}
	want := "CD\tright-angle\nBBCCSDDAANB\tnone\nWSCBNAWDS\tlowercase-phi\n"
	if out.String() != want {
		t.Fatalf("match output:\n%s\nwant:\n%s", out.String(), want)
	}

	r, out = newTestRoot(t, nil)
	if err := r.Run([]string{"match", "-context", "annotation", "BBCCSDDAANB", "CD"}); err != nil {
		t.Fatalf("match failed: %v", err)
	}
	want = "BBCCSDDAANB\tcircle\nCD\tnone\n"
	if out.String() != want {
		t.Fatalf("annotation match output:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestMatchHeadMode(t *testing.T) {
	r, out := newTestRoot(t, nil)
	if err := r.Run([]string{"-head", "possessive", "match", "CD"}); err != nil {
		t.Fatalf("match failed: %v", err)
	}
	if got := out.String(); got != "CD\tnone\n" {
		t.Fatalf("possessive match = %q", got)
	}
	if r.head != gesture.HeadPossessive {
		t.Fatalf("head = %v", r.head)
	}

	cfg := config.New()
	cfg.Head = "possessive"
	r, _ = newTestRoot(t, cfg)
	if err := r.Run([]string{"-head", "bounded", "match", "CD"}); err != nil {
		t.Fatalf("match failed: %v", err)
	}
	if r.head != gesture.HeadBounded {
		t.Fatalf("flag should override config, head = %v", r.head)
	}

	r, _ = newTestRoot(t, nil)
	if err := r.Run([]string{"-head", "lazy", "match", "CD"}); !errors.Is(err, gesture.ErrUnknownHeadMode) {
		t.Fatalf("expected ErrUnknownHeadMode, got %v", err)
	}
}

func TestRecognize(t *testing.T) {
	loop := []string{"10,50", "20,40", "30,35", "40,40", "50,50", "50,60", "40,70", "30,75", "20,70", "10,60", "10,50", "20,40"}
	r, out := newTestRoot(t, nil)
	if err := r.Run(append([]string{"recognize", "-flipped"}, loop...)); err != nil {
		t.Fatalf("recognize failed: %v", err)
	}
	if got := out.String(); got != "BBCCSDDAANB\tcircle\n" {
		t.Fatalf("recognize = %q", got)
	}
}

func TestPatterns(t *testing.T) {
	r, out := newTestRoot(t, nil)
	if err := r.Run([]string{"patterns", "-elements"}); err != nil {
		t.Fatalf("patterns failed: %v", err)
	}
	text := out.String()
	for _, want := range []string{
		gesture.CircleTemplate,
		gesture.LetterSTemplate,
		"lowercase-phi",
		"normal,annotation",
		"[ECB]+",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("patterns output missing %q:\n%s", want, text)
		}
	}
}

func TestReplay(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "session.txt")
	src := `photo beach 200x200
photo city 200x200
stroke 100,100 110,110 100,120
stroke 100,100 110,90 120,100
flip
press left 10 10
move 20 20
release left 20 20
stroke 1,1
`
	if err := os.WriteFile(script, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	r, out := newTestRoot(t, nil)
	if err := r.Run([]string{"replay", script}); err != nil {
		t.Fatalf("replay failed: %v", err)
	}
	want := "CD\tright-angle\t>\n" +
		"BC\tup-arrow\tTravel\n" +
		"-\tnone\tUnrecognized gesture\n" +
		"  beach\tphoto\t[]\t0 annotation(s)\n" +
		"* city\tback\t[Travel]\t1 annotation(s)\n"
	if out.String() != want {
		t.Fatalf("replay output:\n%q\nwant:\n%q", out.String(), want)
	}
}

func TestReplayBadScript(t *testing.T) {
	r, _ := newTestRoot(t, nil)
	r.stdin = strings.NewReader("photo a 10x10\nwave 1 2\n")
	err := r.Run([]string{"replay", "-"})
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("expected line 2 error, got %v", err)
	}
}

func TestInteractiveExec(t *testing.T) {
	r, out := newTestRoot(t, nil)
	err := r.Run([]string{"interactive",
		"-e", "photo a 100x100",
		"-e", "stroke 100,100 110,110 120,120 130,130 140,120 150,110 160,100 170,110 180,120 190,130 200,120 210,110 220,100",
		"-e", "album",
		"-e", "exit",
		"-e", "photo never 1x1",
	})
	if err != nil {
		t.Fatalf("interactive failed: %v", err)
	}
	want := "CCCBBBCCCBBB\tletter-w\tWork\n* a\tphoto\t[Work]\t0 annotation(s)\n"
	if out.String() != want {
		t.Fatalf("interactive output:\n%q\nwant:\n%q", out.String(), want)
	}
}

func TestInteractiveLoop(t *testing.T) {
	r, out := newTestRoot(t, nil)
	r.stdin = strings.NewReader("photo a 10x10\nbogus\nflip\nquit\n")
	if err := r.Run([]string{"interactive"}); err != nil {
		t.Fatalf("interactive failed: %v", err)
	}
	if !strings.Contains(out.String(), "Enter commands") {
		t.Fatalf("missing banner: %q", out.String())
	}
	if !strings.Contains(r.stderr.(*bytes.Buffer).String(), "unknown command") {
		t.Fatalf("expected error for bogus command, stderr: %q", r.stderr.(*bytes.Buffer).String())
	}
}

func TestConfigPrint(t *testing.T) {
	cfg := config.New()
	cfg.PhotoDir = "/srv/photos"
	r, out := newTestRoot(t, cfg)
	if err := r.Run([]string{"config", "print"}); err != nil {
		t.Fatalf("config print failed: %v", err)
	}
	if !strings.Contains(out.String(), "photo_dir = /srv/photos") {
		t.Fatalf("config print output: %q", out.String())
	}
}

func TestConfigPaletteOverridesLoader(t *testing.T) {
	cfg, err := config.Parse(strings.NewReader("palette = mine\n[palette.mine]\nInk = #010203\n"))
	if err != nil {
		t.Fatal(err)
	}
	r, _ := newTestRoot(t, cfg)
	if err := r.Run([]string{"version"}); err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if got := r.inkPalette().Ink; got.R != 1 || got.G != 2 || got.B != 3 {
		t.Fatalf("ink = %+v, want #010203", got)
	}
}

func TestUnknownCommandIsUsageError(t *testing.T) {
	r, _ := newTestRoot(t, nil)
	err := r.Run([]string{"frobnicate"})
	var uerr *UsageError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected UsageError, got %v", err)
	}
	if !strings.Contains(uerr.Error(), "Usage: lighttable") {
		t.Fatalf("usage text: %q", uerr.Error())
	}
}

func TestHelpTemplatesRender(t *testing.T) {
	r, _ := newTestRoot(t, nil)
	encode, _ := parseEncodeCmd(nil, r)
	patterns, _ := parsePatternsCmd(nil, r)
	recognize, _ := parseRecognizeCmd(nil, r)
	interactive, _ := parseInteractiveCmd(nil, r)
	cfg, _ := parseConfigCmd(nil, r)
	_, matchErr := parseMatchCmd(nil, r)
	_, replayErr := parseReplayCmd(nil, r)

	var matchUsage, replayUsage *UsageError
	if !errors.As(matchErr, &matchUsage) || !errors.As(replayErr, &replayUsage) {
		t.Fatalf("match and replay need arguments: %v, %v", matchErr, replayErr)
	}
	for _, h := range []HelpData{r, encode, patterns, recognize, interactive, cfg, matchUsage.of, replayUsage.of} {
		text, err := (&UsageError{of: h}).renderHelp()
		if err != nil {
			t.Fatalf("%s: %v", h.Template(), err)
		}
		if !strings.HasPrefix(text, "Usage: lighttable") {
			t.Errorf("%s: unexpected help %q", h.Template(), text)
		}
	}
}
