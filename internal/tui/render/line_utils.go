package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

// lineBreakMark 替换单元格内的换行，保证一条记录只占一行屏幕。
const lineBreakMark = "↵"

var singleLineReplacer = strings.NewReplacer(
	"\r\n", lineBreakMark,
	"\n", lineBreakMark,
	"\r", lineBreakMark,
	"\t", " ",
)

// SingleLine 把换行折叠为 ↵、制表符折叠为空格，用于显示文本。
func SingleLine(s string) string {
	if !strings.ContainsAny(s, "\r\n\t") {
		return s
	}
	return singleLineReplacer.Replace(s)
}

// StringWidth 返回终端显示宽度（宽字符计 2）。
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate 按显示宽度截断，超出时以省略号结尾。
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, ellipsis)
}

// PadRight 截断并用空格补齐到指定显示宽度。
func PadRight(s string, width int) string {
	s = Truncate(s, width)
	if gap := width - runewidth.StringWidth(s); gap > 0 {
		s += strings.Repeat(" ", gap)
	}
	return s
}

// TruncateLine 在 Span 边界上截断整行，保留各段样式。
func TruncateLine(line Line, width int) Line {
	if line.Width() <= width {
		return line
	}
	out := Line{}
	remaining := width
	for _, sp := range line.Spans {
		w := runewidth.StringWidth(sp.Text)
		if w < remaining {
			out.Spans = append(out.Spans, sp)
			remaining -= w
			continue
		}
		if remaining > 0 {
			out.Spans = append(out.Spans, Span{Text: Truncate(sp.Text, remaining), Style: sp.Style})
		}
		break
	}
	return out
}
