// Package router keeps the studyhub screen history. Screens never hold a
// reference to the router; they navigate by returning the commands from
// Push, Pop and Replace, and the app feeds the resulting messages back in.
package router

import (
	"github.com/abhisek/studyhub/internal/screen"

	tea "charm.land/bubbletea/v2"
)

// PushScreenMsg opens Screen on top of the current one.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg returns to the previous screen.
type PopScreenMsg struct{}

// ReplaceScreenMsg swaps the current screen for Screen, so that Esc from
// Screen goes where Esc from the replaced one would have gone. A finished
// quiz uses it to turn into its summary.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// Router is a stack of screens. The bottom screen is never popped.
type Router struct {
	screens []screen.Screen
}

// New returns a router showing root.
func New(root screen.Screen) *Router {
	return &Router{screens: []screen.Screen{root}}
}

// Push shows s and returns its Init command.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.screens = append(r.screens, s)
	return s.Init()
}

// Pop drops the current screen unless it is the root.
func (r *Router) Pop() tea.Cmd {
	if n := len(r.screens); n > 1 {
		r.screens = r.screens[:n-1]
	}
	return nil
}

// Replace puts s in place of the current screen and returns its Init command.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	if n := len(r.screens); n > 0 {
		r.screens[n-1] = s
	} else {
		r.screens = append(r.screens, s)
	}
	return s.Init()
}

// Active is the screen receiving input, nil only for a zero Router.
func (r *Router) Active() screen.Screen {
	if n := len(r.screens); n > 0 {
		return r.screens[n-1]
	}
	return nil
}

// Depth counts the screens on the stack, root included.
func (r *Router) Depth() int {
	return len(r.screens)
}

// Update applies navigation messages. Anything else goes to the active
// screen, whose returned value becomes the new top of the stack.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	}

	n := len(r.screens)
	if n == 0 {
		return nil
	}
	next, cmd := r.screens[n-1].Update(msg)
	r.screens[n-1] = next
	return cmd
}

// View draws the active screen into a width x height area.
func (r *Router) View(width, height int) string {
	if s := r.Active(); s != nil {
		return s.View(width, height)
	}
	return ""
}

// Push is the command form of (*Router).Push.
func Push(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return PushScreenMsg{Screen: s} }
}

// Pop is the command form of (*Router).Pop. It has the tea.Cmd signature,
// so screens return it directly.
func Pop() tea.Msg {
	return PopScreenMsg{}
}

// Replace is the command form of (*Router).Replace.
func Replace(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return ReplaceScreenMsg{Screen: s} }
}
