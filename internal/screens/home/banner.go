package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyhub/internal/ui/theme"
)

const bannerArt = `
 ███████╗████████╗██╗   ██╗██████╗ ██╗   ██╗██╗  ██╗██╗   ██╗██████╗
 ██╔════╝╚══██╔══╝██║   ██║██╔══██╗╚██╗ ██╔╝██║  ██║██║   ██║██╔══██╗
 ███████╗   ██║   ██║   ██║██║  ██║ ╚████╔╝ ███████║██║   ██║██████╔╝
 ╚════██║   ██║   ██║   ██║██║  ██║  ╚██╔╝  ██╔══██║██║   ██║██╔══██╗
 ███████║   ██║   ╚██████╔╝██████╔╝   ██║   ██║  ██║╚██████╔╝██████╔╝
 ╚══════╝   ╚═╝    ╚═════╝ ╚═════╝    ╚═╝   ╚═╝  ╚═╝ ╚═════╝ ╚═════╝`

const bannerCompact = "S T U D Y H U B"

// RenderBanner returns the STUDYHUB banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 72 columns or short
// content areas.
func RenderBanner(width int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if compact || width < 72 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
