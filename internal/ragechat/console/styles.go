package console

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/longkey1/ragechat/internal/ragechat"
)

// palette is the set of colors for one theme.
type palette struct {
	user      lipgloss.Color
	ai        lipgloss.Color
	dim       lipgloss.Color
	codeFrame lipgloss.Color
	warning   lipgloss.Color
	chroma    string // chroma style name for code highlighting
}

var palettes = map[ragechat.Theme]palette{
	ragechat.ThemeLight: {
		user:      lipgloss.Color("28"),
		ai:        lipgloss.Color("25"),
		dim:       lipgloss.Color("244"),
		codeFrame: lipgloss.Color("250"),
		warning:   lipgloss.Color("160"),
		chroma:    "github",
	},
	ragechat.ThemeDark: {
		user:      lipgloss.Color("10"),
		ai:        lipgloss.Color("12"),
		dim:       lipgloss.Color("7"),
		codeFrame: lipgloss.Color("240"),
		warning:   lipgloss.Color("9"),
		chroma:    "monokai",
	},
}

// styles are the lipgloss styles built from a palette.
type styles struct {
	chroma    string
	user      lipgloss.Style
	ai        lipgloss.Style
	time      lipgloss.Style
	codeBlock lipgloss.Style
	codeTitle lipgloss.Style
	typing    lipgloss.Style
	notice    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer, t ragechat.Theme) styles {
	p, ok := palettes[t]
	if !ok {
		p = palettes[ragechat.DefaultTheme]
	}
	return styles{
		chroma: p.chroma,
		user: r.NewStyle().
			Foreground(p.user).
			Bold(true),
		ai: r.NewStyle().
			Foreground(p.ai).
			Bold(true),
		time: r.NewStyle().
			Foreground(p.dim),
		codeBlock: r.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.codeFrame).
			Padding(0, 1),
		codeTitle: r.NewStyle().
			Foreground(p.warning).
			Bold(true),
		typing: r.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Bold(true),
		notice: r.NewStyle().
			Foreground(p.dim).
			Italic(true),
	}
}
