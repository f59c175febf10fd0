package palette

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	input := `
# comment
Name: Custom
Ink: #112233
selected: gold
PostIt: #FFEE0080
Unknown: #000000
`
	p, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if p.Name != "Custom" {
		t.Errorf("Expected name Custom, got %q", p.Name)
	}
	if p.Ink != (color.RGBA{0x11, 0x22, 0x33, 0xFF}) {
		t.Errorf("Unexpected Ink: %+v", p.Ink)
	}
	if p.Selected != (color.RGBA{255, 215, 0, 255}) {
		t.Errorf("Unexpected Selected: %+v", p.Selected)
	}
	if p.PostIt != (color.RGBA{0xFF, 0xEE, 0x00, 0x80}) {
		t.Errorf("Unexpected PostIt: %+v", p.PostIt)
	}
	if p.Gesture != Default().Gesture {
		t.Errorf("Expected default gesture ink to survive, got %+v", p.Gesture)
	}
}

func TestParseBadColor(t *testing.T) {
	if _, err := Parse(strings.NewReader("Ink: #12")); err == nil {
		t.Fatal("expected error for short hex")
	}
	if _, err := Parse(strings.NewReader("Ink: not-a-colour")); err == nil {
		t.Fatal("expected error for unknown colour name")
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, c := range []color.RGBA{{1, 2, 3, 255}, {0xAB, 0xCD, 0xEF, 0x10}} {
		got, err := ParseColor(Hex(c))
		if err != nil {
			t.Fatalf("ParseColor(%s): %v", Hex(c), err)
		}
		if got != c {
			t.Errorf("round trip mismatch: %+v vs %+v", got, c)
		}
	}
}

func TestLoaderEmbeddedAndFiles(t *testing.T) {
	l := &Loader{ConfigDir: t.TempDir()}

	p, err := l.Load("dark")
	if err != nil {
		t.Fatalf("load embedded: %v", err)
	}
	if p.Name != "Dark" {
		t.Errorf("Expected Dark, got %q", p.Name)
	}

	path := filepath.Join(l.ConfigDir, "mine.palette")
	if err := os.WriteFile(path, []byte("Name: Mine\nInk: navy\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err = l.Load("mine")
	if err != nil {
		t.Fatalf("load from config dir: %v", err)
	}
	if p.Ink != (color.RGBA{0, 0, 128, 255}) {
		t.Errorf("Unexpected Ink: %+v", p.Ink)
	}

	p, err = l.Load(path)
	if err != nil || p.Name != "Mine" {
		t.Fatalf("load by path: %v %+v", err, p)
	}

	if _, err := l.Load("missing"); err == nil {
		t.Fatal("expected missing palette error")
	}

	p, err = l.Load("")
	if err != nil || p.Name != "Default" {
		t.Fatalf("empty name should give default: %v %+v", err, p)
	}
}
