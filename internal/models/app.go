package models

// AppModel represents the UI state - only local UI concerns
type AppModel struct {
	View        ViewState // Last state pushed by core
	Alert       string    // Blocking prompt, empty when none is shown
	Status      string    // Status bar text
	Preview     bool      // Render output as markdown
	LoadingDots int       // Animation counter for loading dots
	Width       int       // Terminal width
	Height      int       // Terminal height
}

// HasAlert reports whether a blocking prompt is currently shown.
func (m *AppModel) HasAlert() bool {
	return m.Alert != ""
}
