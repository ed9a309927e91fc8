package config

// Screen layout configuration
const (
	// Window dimensions in pixels
	WindowWidth  = 800
	WindowHeight = 600

	// Glyph cell size used by the debug font
	GlyphWidth  = 6
	GlyphHeight = 16

	// HUD layout
	HUDMargin   = 4
	HUDMessages = 5 // Number of log lines drawn under the score line

	// Longest frame the driver will simulate in one tick
	MaxFrameMS = 100
)

// GetScreenDimensions returns the logical screen dimensions in pixels
func GetScreenDimensions() (width, height int) {
	return WindowWidth, WindowHeight
}

// GetWindowSize returns the recommended window size (may be different from actual screen dimensions)
func GetWindowSize() (width, height int) {
	return WindowWidth, WindowHeight
}
