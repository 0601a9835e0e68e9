package teaform

import "github.com/charmbracelet/lipgloss"

// Styles controls how the form is rendered.
type Styles struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Focused lipgloss.Style
	Error   lipgloss.Style
	Status  lipgloss.Style
	Help    lipgloss.Style
}

// DefaultStyles returns the stock palette.
func DefaultStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).MarginBottom(1),
		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Focused: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).PaddingLeft(2),
		Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Help:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	}
}
