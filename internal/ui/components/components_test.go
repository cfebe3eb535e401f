package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestMenu_SkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "Off", Disabled: true},
		{Label: "One"},
		{Label: "Two", Disabled: true},
		{Label: "Three"},
	})
	if m.Selected != 1 {
		t.Fatalf("expected first enabled item selected, got %d", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 3 {
		t.Errorf("expected down to skip disabled item, got %d", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 1 {
		t.Errorf("expected up to skip disabled item, got %d", m.Selected)
	}
}

func TestMenu_EnterRunsAction(t *testing.T) {
	ran := false
	m := NewMenu([]MenuItem{{Label: "Go", Action: func() tea.Cmd {
		ran = true
		return nil
	}}})
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !ran {
		t.Error("expected Enter to run the selected action")
	}
}

func TestMultiChoice_View(t *testing.T) {
	mc := NewMultiChoice([]string{"1", "-1", "0"}, 1)
	mc.Chosen = 2
	view := mc.View()
	for _, want := range []string{"A)", "B)", "C)", "▸ C)"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if mc.IsCorrect() {
		t.Error("choice 2 should not be correct")
	}
	mc.Chosen = 1
	if !mc.IsCorrect() {
		t.Error("choice 1 should be correct")
	}
}

func TestChoiceLabel(t *testing.T) {
	if ChoiceLabel(0) != "A" || ChoiceLabel(3) != "D" {
		t.Error("unexpected letter labels")
	}
	if ChoiceLabel(9) != "10" {
		t.Errorf("ChoiceLabel(9) = %q", ChoiceLabel(9))
	}
}

func TestProgressStrip(t *testing.T) {
	p := ProgressStrip{Cells: []StripCell{CellAnswered, CellCurrent, CellEmpty}}
	view := p.View()
	for _, want := range []string{"●", "◆", "○"} {
		if !strings.Contains(view, want) {
			t.Errorf("strip missing %q", want)
		}
	}
}
