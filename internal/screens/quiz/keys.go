package quiz

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Choose  key.Binding
	Prev    key.Binding
	Next    key.Binding
	Enter   key.Binding
	Submit  key.Binding
	Back    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Choose: key.NewBinding(
			key.WithKeys("a", "b", "c", "d", "e", "f", "A", "B", "C", "D", "E", "F", "1", "2", "3", "4", "5", "6"),
			key.WithHelp("A-D", "Answer"),
		),
		Prev:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←→", "Navigate")),
		Next:    key.NewBinding(key.WithKeys("right", "l")),
		Enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Next")),
		Submit:  key.NewBinding(key.WithKeys("s", "S"), key.WithHelp("S", "Submit")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "Quit")),
		Confirm: key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("Y", "Quit test")),
		Cancel:  key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("N", "Keep going")),
	}
}

// choiceIndex maps a letter or digit key to a zero-based choice index.
func choiceIndex(k string) (int, bool) {
	if len(k) != 1 {
		return 0, false
	}
	c := k[0]
	switch {
	case c >= 'a' && c <= 'f':
		return int(c - 'a'), true
	case c >= 'A' && c <= 'F':
		return int(c - 'A'), true
	case c >= '1' && c <= '6':
		return int(c - '1'), true
	}
	return 0, false
}
