package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Span 表示一段文本及其样式。
type Span struct {
	Text  string
	Style lipgloss.Style
}

// Line 由多个 Span 组成。
type Line struct {
	Spans []Span
}

// Plain 返回不带样式的纯文本。
func (l Line) Plain() string {
	var sb strings.Builder
	for _, sp := range l.Spans {
		sb.WriteString(sp.Text)
	}
	return sb.String()
}

// Render 按各段样式输出带 ANSI 的文本。
func (l Line) Render() string {
	var sb strings.Builder
	for _, sp := range l.Spans {
		sb.WriteString(sp.Style.Render(sp.Text))
	}
	return sb.String()
}

// Width 返回行的显示宽度。
func (l Line) Width() int {
	return StringWidth(l.Plain())
}

// LinesToPlainStrings 丢弃样式，仅保留文本。
func LinesToPlainStrings(lines []Line) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, line.Plain())
	}
	return out
}
