// Package notify reports gesture outcomes as desktop notifications.
package notify

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/lighttable/internal/album"
	"github.com/example/lighttable/internal/dispatch"
	"github.com/example/lighttable/internal/platform"
)

// Event identifies a notification trigger.
type Event string

const (
	// EventGesture fires when a gesture changed the album or a selection.
	EventGesture Event = "gesture"
	// EventDelete fires when a photo or annotations are deleted.
	EventDelete Event = "delete"
	// EventUnrecognized fires when a stroke matched no gesture.
	EventUnrecognized Event = "unrecognized"
)

// EventPreference describes formatting for a notification event.
type EventPreference struct {
	Template string
}

// Preferences describes notification behaviour loaded from configuration.
type Preferences struct {
	Title  string
	Events map[Event]EventPreference
}

// DefaultPreferences returns the default notification settings.
func DefaultPreferences() Preferences {
	return Preferences{
		Title: "LightTable",
		Events: map[Event]EventPreference{
			EventGesture:      {Template: "%s"},
			EventDelete:       {Template: "Deleted %s"},
			EventUnrecognized: {Template: "Unrecognized gesture %s"},
		},
	}
}

// LoadPreferences reads configuration from environment variables.
func LoadPreferences() Preferences {
	prefs := DefaultPreferences()
	if v := strings.TrimSpace(os.Getenv("LIGHTTABLE_NOTIFY_TITLE")); v != "" {
		prefs.Title = v
	}
	apply := func(key string, event Event) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			eventPrefs := prefs.Events[event]
			eventPrefs.Template = v
			prefs.Events[event] = eventPrefs
		}
	}
	apply("LIGHTTABLE_NOTIFY_GESTURE_TEXT", EventGesture)
	apply("LIGHTTABLE_NOTIFY_DELETE_TEXT", EventDelete)
	apply("LIGHTTABLE_NOTIFY_UNRECOGNIZED_TEXT", EventUnrecognized)
	return prefs
}

const previewSize = 128

// SendFunc delivers one notification.
type SendFunc func(title, body string, opts platform.Options) error

// Notifier sends OS-level notifications based on the configured preferences.
type Notifier struct {
	prefs   Preferences
	enabled map[Event]bool
	send    SendFunc
}

// New creates a new Notifier using the provided preferences.
func New(prefs Preferences) *Notifier {
	cloned := Preferences{Title: prefs.Title, Events: make(map[Event]EventPreference, len(prefs.Events))}
	for k, v := range prefs.Events {
		cloned.Events[k] = v
	}
	return &Notifier{prefs: cloned, enabled: make(map[Event]bool), send: platform.Notify}
}

// SetSender replaces the platform backend, mainly for tests.
func (n *Notifier) SetSender(fn SendFunc) {
	if n == nil {
		return
	}
	n.send = fn
}

// Enable toggles the notifier for the provided event.
func (n *Notifier) Enable(event Event, enabled bool) {
	if n == nil {
		return
	}
	if n.enabled == nil {
		n.enabled = make(map[Event]bool)
	}
	n.enabled[event] = enabled
}

// Gesture announces the status line of an applied gesture.
func (n *Notifier) Gesture(status string) {
	n.dispatch(EventGesture, status, platform.Options{})
}

// Delete announces a deletion. When iconPath names an existing image a
// thumbnail of it is shown with the notification.
func (n *Notifier) Delete(detail, iconPath string) {
	if !n.enabledFor(EventDelete) {
		return
	}
	opts := platform.Options{}
	if iconPath != "" {
		if abs, err := filepath.Abs(iconPath); err == nil {
			if _, statErr := os.Stat(abs); statErr == nil {
				opts.IconPath = abs
				if thumb, err := album.Thumbnail(abs, previewSize); err == nil {
					if path, cleanup, err := createPreview(thumb); err != nil {
						log.Printf("notification preview: %v", err)
					} else {
						defer cleanup()
						opts.IconPath = path
					}
				}
			}
		}
	}
	n.dispatch(EventDelete, detail, opts)
}

// Unrecognized announces a stroke that matched nothing.
func (n *Notifier) Unrecognized(vector string) {
	if strings.TrimSpace(vector) == "" {
		vector = "(empty)"
	}
	n.dispatch(EventUnrecognized, vector, platform.Options{})
}

// Outcome routes a dispatch outcome to the matching event. It has the
// shape of a dispatch.Listener.
func (n *Notifier) Outcome(o dispatch.Outcome) {
	switch o.Effect {
	case dispatch.NoEffect:
		n.Unrecognized(o.Vector)
	case dispatch.DeletePhoto:
		detail, icon := "photo", ""
		if o.Photo != nil {
			detail, icon = o.Photo.Name, o.Photo.Path
		}
		n.Delete(detail, icon)
	case dispatch.DeleteAnnotations:
		if o.Deleted > 0 {
			n.Delete(fmt.Sprintf("%d annotation(s)", o.Deleted), "")
		}
	default:
		n.Gesture(o.Status)
	}
}

func (n *Notifier) enabledFor(event Event) bool {
	if n == nil {
		return false
	}
	if n.enabled == nil {
		return false
	}
	return n.enabled[event]
}

func (n *Notifier) dispatch(event Event, detail string, opts platform.Options) {
	if !n.enabledFor(event) {
		return
	}
	template := strings.TrimSpace(n.template(event))
	if template == "" {
		return
	}
	body := strings.TrimSpace(fmt.Sprintf(template, strings.TrimSpace(detail)))
	if body == "" {
		return
	}
	opts.AppName = n.prefs.Title
	if err := n.send(n.prefs.Title, body, opts); err != nil {
		log.Printf("notification %s: %v", event, err)
	}
}

func (n *Notifier) template(event Event) string {
	if n == nil {
		return ""
	}
	if pref, ok := n.prefs.Events[event]; ok {
		return pref.Template
	}
	return ""
}

func createPreview(img image.Image) (string, func(), error) {
	f, err := os.CreateTemp("", "lighttable-preview-*.png")
	if err != nil {
		return "", nil, err
	}
	path := f.Name()
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", nil, err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", nil, err
	}
	cleanup := func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("remove preview: %v", err)
		}
	}
	return path, cleanup, nil
}
