package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	back      key.Binding
	search    key.Binding
	cart      key.Binding
	add       key.Binding
	order     key.Binding
	edit      key.Binding
	increment key.Binding
	decrement key.Binding
	remove    key.Binding
	clear     key.Binding
	nextField key.Binding
	prevField key.Binding
	newRow    key.Binding
	deleteRow key.Binding
	submit    key.Binding
	quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		cart:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cart")),
		add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add to cart")),
		order:     key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "order on WhatsApp")),
		edit:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		increment: key.NewBinding(key.WithKeys("+"), key.WithHelp("+", "more")),
		decrement: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "fewer")),
		remove:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove")),
		clear:     key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "clear cart")),
		nextField: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		prevField: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		newRow:    key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "add spec")),
		deleteRow: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "remove spec")),
		submit:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter, k.back},
		{k.search, k.cart, k.add, k.order},
		{k.edit, k.increment, k.decrement, k.remove},
		{k.newRow, k.deleteRow, k.submit, k.quit},
	}
}
