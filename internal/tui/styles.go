package tui

import (
	"dfview/internal/config"
	"dfview/internal/tui/cell"

	"github.com/charmbracelet/lipgloss"
)

// 单元格 ClassName。
const (
	classHeader        = "header"
	classHeaderFocused = "header-focused"
	classCell          = "cell"
	classRowSelected   = "row-selected"
	classCellSelected  = "cell-selected"
)

type styles struct {
	cells  cell.Styles
	title  lipgloss.Style
	status lipgloss.Style
	empty  lipgloss.Style
}

func newStyles(theme config.Theme) styles {
	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.HeaderForeground)).
		Background(lipgloss.Color(theme.HeaderBackground))
	return styles{
		cells: cell.Styles{
			classHeader:        header,
			classHeaderFocused: header.Background(lipgloss.Color(theme.FocusBackground)).Underline(true),
			classCell:          lipgloss.NewStyle(),
			classRowSelected:   lipgloss.NewStyle().Background(lipgloss.Color(theme.SelectBackground)),
			classCellSelected:  lipgloss.NewStyle().Reverse(true),
			cell.ClassIcon:      lipgloss.NewStyle().Foreground(lipgloss.Color(theme.SortIcon)),
		},
		title:  lipgloss.NewStyle().Bold(true),
		status: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.StatusForeground)),
		empty:  lipgloss.NewStyle().Faint(true),
	}
}
