package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the application key bindings.
type KeyMap struct {
	FocusSearch key.Binding
	Submit      key.Binding
	Dismiss     key.Binding
	Quit        key.Binding

	NextOverlay key.Binding
	PrevOverlay key.Binding

	Up   key.Binding
	Down key.Binding

	SheetUp   key.Binding
	SheetDown key.Binding

	Center   key.Binding
	Bookmark key.Binding
	SaveTo   key.Binding

	ZoomIn  key.Binding
	ZoomOut key.Binding
	PanKeys key.Binding
}

// DefaultKeyMap returns the stock bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		FocusSearch: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Submit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Dismiss:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		NextOverlay: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next overlay")),
		PrevOverlay: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev overlay")),

		Up:   key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "up")),
		Down: key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "down")),

		SheetUp:   key.NewBinding(key.WithKeys("K", "shift+up"), key.WithHelp("K", "raise sheet")),
		SheetDown: key.NewBinding(key.WithKeys("J", "shift+down"), key.WithHelp("J", "lower sheet")),

		Center:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "center map")),
		Bookmark: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "bookmark")),
		SaveTo:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save to list")),

		ZoomIn:  key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "zoom in")),
		ZoomOut: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "zoom out")),
		PanKeys: key.NewBinding(key.WithKeys("h", "l", "left", "right"), key.WithHelp("h/l", "pan")),
	}
}
