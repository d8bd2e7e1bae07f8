package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMapConfig holds configuration for key bindings
type KeyMapConfig struct {
	// PermanentDeleteEnabled controls whether the permanent-delete
	// bindings are available.
	PermanentDeleteEnabled bool
}

// Common keys shared across views
type Common struct {
	Quit key.Binding
	Help key.Binding
}

// List view specific keys
type List struct {
	Select    key.Binding
	DeSelect  key.Binding
	Done      key.Binding
	BinView   key.Binding
	Delete    key.Binding
	ForceDel  key.Binding
	Permanent *key.Binding // Optional key based on configuration
}

// Bin view specific keys
type Bin struct {
	Esc       key.Binding
	Restore   key.Binding
	Permanent *key.Binding
}

// Confirm view specific keys
type Confirm struct {
	Yes    key.Binding
	Cancel key.Binding
}

// KeyMap holds all key bindings and help functions
type KeyMap struct {
	Common  Common
	List    List
	Bin     Bin
	Confirm Confirm
}

// NewKeyMap creates a new key map with the given configuration
func NewKeyMap(cfg KeyMapConfig) *KeyMap {
	km := &KeyMap{}

	km.Common = Common{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
		),
	}

	km.List = List{
		Select: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "select"),
		),
		DeSelect: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("s+tab", "de-select"),
		),
		Done: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "toggle done"),
		),
		BinView: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "recycle bin"),
		),
		// The delete key routes through confirmation.
		Delete: key.NewBinding(
			key.WithKeys("d", "backspace"),
			key.WithHelp("d", "delete"),
		),
		// Same gesture with a modifier bypasses confirmation entirely.
		ForceDel: key.NewBinding(
			key.WithKeys("alt+d"),
			key.WithHelp("alt+d", "delete, no prompt"),
		),
	}

	km.Bin = Bin{
		Esc: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Restore: key.NewBinding(
			key.WithKeys("u", "enter"),
			key.WithHelp("u", "restore"),
		),
	}

	km.Confirm = Confirm{
		Yes: key.NewBinding(
			key.WithKeys("y", "Y", "enter"),
			key.WithHelp("y", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("n", "N", "esc"),
			key.WithHelp("n/esc", "cancel"),
		),
	}

	if cfg.PermanentDeleteEnabled {
		permanent := key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "delete permanently"),
		)
		km.List.Permanent = &permanent
		km.Bin.Permanent = &permanent
	}

	return km
}
