package ports

import "context"

// ScreenshotSource captures the image stored alongside a save.
// Capture runs after the configured screenshot delay so UI elements have a
// chance to hide themselves first. Platform-specific implementations are
// selected at engine construction; the default produces no screenshot.
type ScreenshotSource interface {
	// Capture returns encoded image bytes, or nil when no screenshot is
	// available. An error aborts only the screenshot, never the save.
	Capture(ctx context.Context) ([]byte, error)
}

// NoScreenshot is a ScreenshotSource that never produces an image.
type NoScreenshot struct{}

// Capture returns nil bytes and no error.
func (NoScreenshot) Capture(ctx context.Context) ([]byte, error) { return nil, nil }
