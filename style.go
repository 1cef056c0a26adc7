package strut

import "github.com/mbraddock/strut/theme"

// currentTheme supplies the metric defaults widgets fall back to when their
// box model leaves a dimension unresolved.
var currentTheme = theme.Default()

// SetTheme installs the active theme. Call before constructing widgets;
// existing widgets keep the metrics they captured at construction.
func SetTheme(t theme.Theme) {
	currentTheme = t
}

// CurrentTheme returns the active theme.
func CurrentTheme() theme.Theme {
	return currentTheme
}
