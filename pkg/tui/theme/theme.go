package theme

import (
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	accent = "#39FF14"
	muted  = "#585858"
)

// Theme centralizes Lip Gloss styles for the playground.
type Theme struct {
	Footer FooterTheme
	Panel  PanelTheme
	List   ListTheme
}

// FooterTheme groups styles used by the bottom help and status line.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// PanelTheme styles framed panels and headings.
type PanelTheme struct {
	Frame        lipgloss.Style
	FocusedFrame lipgloss.Style
	Title        lipgloss.Style
	Body         lipgloss.Style
}

// ListTheme styles the widget list.
type ListTheme struct {
	Item     lipgloss.Style
	Focused  lipgloss.Style
	Disabled lipgloss.Style
	Kind     lipgloss.Style
	State    lipgloss.Style
}

// Default returns the built-in theme.
func Default() Theme {
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	item := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dim := Blend(accent, muted, 0.6)

	return Theme{
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F")),
		},
		Panel: PanelTheme{
			Frame:        frame,
			FocusedFrame: frame.BorderForeground(lipgloss.Color(accent)),
			Title:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(dim)),
			Body:         lipgloss.NewStyle(),
		},
		List: ListTheme{
			Item:     item,
			Focused:  item.Reverse(true).Bold(true),
			Disabled: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Strikethrough(true),
			Kind:     lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
			State:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
	}
}

// Blend mixes two hex colours in Lab space; t=0 is a and t=1 is b. An
// unparsable colour yields the other one.
func Blend(a, b string, t float64) string {
	ca, errA := colorful.Hex(a)
	cb, errB := colorful.Hex(b)
	switch {
	case errA != nil && errB != nil:
		return a
	case errA != nil:
		return b
	case errB != nil:
		return a
	}
	return ca.BlendLab(cb, t).Clamped().Hex()
}
