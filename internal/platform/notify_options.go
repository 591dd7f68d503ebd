// Package platform sends desktop notifications through the host OS.
package platform

// Options configures how a notification is displayed on the host platform.
type Options struct {
	// AppName identifies the sender to the notification center.
	AppName string
	// IconPath, when non-empty, points to an image file the notification center
	// should display with the notification if supported by the platform.
	IconPath string
	// TimeoutMillis is how long the notification stays visible; zero uses the
	// platform default.
	TimeoutMillis int32
}

func (o Options) appName() string {
	if o.AppName == "" {
		return "Dragboard"
	}
	return o.AppName
}
