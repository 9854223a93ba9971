package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/flashdeck/internal/ui/theme"
)

const bannerArt = `
 ███████╗██╗      █████╗ ███████╗██╗  ██╗██████╗ ███████╗ ██████╗██╗  ██╗
 ██╔════╝██║     ██╔══██╗██╔════╝██║  ██║██╔══██╗██╔════╝██╔════╝██║ ██╔╝
 █████╗  ██║     ███████║███████╗███████║██║  ██║█████╗  ██║     █████╔╝
 ██╔══╝  ██║     ██╔══██║╚════██║██╔══██║██║  ██║██╔══╝  ██║     ██╔═██╗
 ██║     ███████╗██║  ██║███████║██║  ██║██████╔╝███████╗╚██████╗██║  ██╗
 ╚═╝     ╚══════╝╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝╚═════╝ ╚══════╝ ╚═════╝╚═╝  ╚═╝`

const bannerCompact = "F L A S H D E C K"

// RenderBanner returns the FLASHDECK banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 76 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 76 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
