package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the product card.
type KeyMap struct {
	// Browsing.
	PrevVariant key.Binding
	NextVariant key.Binding
	PickVariant key.Binding // 1-9 jump straight to a variant.
	AddToCart   key.Binding
	Remove      key.Binding
	SwitchTab   key.Binding
	OpenForm    key.Binding

	// Review form.
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding
	CloseForm key.Binding

	Quit key.Binding
}

var DefaultKeyMap = KeyMap{
	PrevVariant: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "prev color"),
	),
	NextVariant: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next color"),
	),
	PickVariant: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "pick color"),
	),
	AddToCart: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add to cart"),
	),
	Remove: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "remove"),
	),
	SwitchTab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "switch tab"),
	),
	OpenForm: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "write review"),
	),
	NextField: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
	PrevField: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("S-tab", "prev field"),
	),
	Submit: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("C-s", "submit"),
	),
	CloseForm: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// browseKeys and formKeys adapt the key map to help.KeyMap for each mode.
type browseKeys struct{ KeyMap }

func (k browseKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevVariant, k.NextVariant, k.AddToCart, k.Remove, k.SwitchTab, k.OpenForm, k.Quit}
}

func (k browseKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevVariant, k.NextVariant, k.PickVariant},
		{k.AddToCart, k.Remove},
		{k.SwitchTab, k.OpenForm, k.Quit},
	}
}

type formKeys struct{ KeyMap }

func (k formKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.PrevField, k.Submit, k.CloseForm}
}

func (k formKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.NextField, k.PrevField}, {k.Submit, k.CloseForm}}
}
