package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StyleFromMap 把不透明的键值样式叠加到 base 上。
// 认识的键：foreground、background、bold、faint、italic、underline、align；
// 其余键原样忽略。
func StyleFromMap(base lipgloss.Style, m map[string]string) lipgloss.Style {
	style := base
	for key, raw := range m {
		val := strings.TrimSpace(raw)
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "foreground", "color":
			if val != "" {
				style = style.Foreground(lipgloss.Color(val))
			}
		case "background":
			if val != "" {
				style = style.Background(lipgloss.Color(val))
			}
		case "bold":
			style = style.Bold(parseBool(val))
		case "faint":
			style = style.Faint(parseBool(val))
		case "italic":
			style = style.Italic(parseBool(val))
		case "underline":
			style = style.Underline(parseBool(val))
		case "align":
			style = style.Align(parseAlign(val))
		}
	}
	return style
}

func parseBool(v string) bool {
	b, err := strconv.ParseBool(v)
	return err == nil && b
}

func parseAlign(v string) lipgloss.Position {
	switch strings.ToLower(v) {
	case "right":
		return lipgloss.Right
	case "center":
		return lipgloss.Center
	default:
		return lipgloss.Left
	}
}
