package types

// WindowState captures the last known window geometry so it can be restored
// on the next launch. Position uses screen coordinates as reported by the
// runtime; a zero-value state means "never saved".
type WindowState struct {
	Width     int  `json:"width"`
	Height    int  `json:"height"`
	X         int  `json:"x"`
	Y         int  `json:"y"`
	Maximized bool `json:"maximized"`
}

// IsZero reports whether the state has never been populated.
func (w WindowState) IsZero() bool {
	return w == WindowState{}
}
