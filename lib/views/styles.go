package views

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pescuma/strategist/lib/model"
)

var (
	BrandBlue = lipgloss.Color("#1d4ed8")
	Muted     = lipgloss.Color("#6b7280")
	Border    = lipgloss.Color("#d1d5db")

	SuccessColor    = lipgloss.Color("#16a34a")
	FailedColor     = lipgloss.Color("#dc2626")
	InProgressColor = lipgloss.Color("#ca8a04")
)

type Styles struct {
	AppTitle   lipgloss.Style
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Label      lipgloss.Style
	Body       lipgloss.Style
	Quote      lipgloss.Style
	Muted      lipgloss.Style
	ActiveTab  lipgloss.Style
	Tab        lipgloss.Style
	Selected   lipgloss.Style
	Error      lipgloss.Style
	TableHead  lipgloss.Style
	TableCell  lipgloss.Style
	TableFrame lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		AppTitle:   lipgloss.NewStyle().Bold(true).Foreground(BrandBlue),
		Title:      lipgloss.NewStyle().Bold(true).Underline(true).MarginBottom(1),
		Subtitle:   lipgloss.NewStyle().Bold(true),
		Label:      lipgloss.NewStyle().Foreground(Muted),
		Body:       lipgloss.NewStyle(),
		Quote:      lipgloss.NewStyle().Italic(true).BorderStyle(lipgloss.NormalBorder()).BorderLeft(true).BorderForeground(BrandBlue).PaddingLeft(1),
		Muted:      lipgloss.NewStyle().Foreground(Muted),
		ActiveTab:  lipgloss.NewStyle().Bold(true).Foreground(BrandBlue).Underline(true).Padding(0, 1),
		Tab:        lipgloss.NewStyle().Foreground(Muted).Padding(0, 1),
		Selected:   lipgloss.NewStyle().Bold(true).Foreground(BrandBlue),
		Error:      lipgloss.NewStyle().Foreground(FailedColor),
		TableHead:  lipgloss.NewStyle().Bold(true).Padding(0, 1),
		TableCell:  lipgloss.NewStyle().Padding(0, 1),
		TableFrame: lipgloss.NewStyle().Foreground(Border),
	}
}

func StatusColor(s model.BattleStatus) lipgloss.Color {
	switch s {
	case model.Success:
		return SuccessColor
	case model.Failed:
		return FailedColor
	default:
		return InProgressColor
	}
}
