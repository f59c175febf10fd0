package platform

import "time"

// DefaultAppName is reported to notification servers when Options.AppName
// is empty.
const DefaultAppName = "LightTable"

// Options configures how a notification is displayed on the host platform.
type Options struct {
	// AppName identifies the sender where the platform shows one.
	AppName string
	// IconPath, when non-empty, points to an image file the notification center
	// should display with the notification if supported by the platform.
	IconPath string
	// Timeout is how long the notification stays up. Zero leaves it to the
	// notification server.
	Timeout time.Duration
}

func (o Options) appName() string {
	if o.AppName == "" {
		return DefaultAppName
	}
	return o.AppName
}
