// Package screen provides complete screen renderers.
package screen

// serviceEntry represents a service display entry with computed visible length.
type serviceEntry struct {
	display    string
	visibleLen int
}
