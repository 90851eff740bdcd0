package update

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Validate key.Binding
	Copy     key.Binding
	Preview  key.Binding
	Dismiss  key.Binding
	Quit     key.Binding
}

var Keys = KeyMap{
	Validate: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "validate")),
	Copy:     key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy")),
	Preview:  key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "markdown preview")),
	Dismiss:  key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("enter", "dismiss")),
	Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}
