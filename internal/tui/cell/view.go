package cell

import (
	"dfview/internal/tui/render"

	"github.com/charmbracelet/lipgloss"
)

// IconSet 定义排序图标的终端字形。
type IconSet struct {
	Ascending  string
	Descending string
}

// DefaultIcons 使用实心三角。
var DefaultIcons = IconSet{Ascending: "▲", Descending: "▼"}

// Glyph 返回图标对应的字形，IconNone 为空。
func (s IconSet) Glyph(icon Icon) string {
	switch icon {
	case IconChevronTop:
		return s.Ascending
	case IconChevronBottom:
		return s.Descending
	default:
		return ""
	}
}

// ClassIcon 是排序图标所用样式的键。
const ClassIcon = "sort-icon"

// Styles 按 ClassName 查找基础样式。
type Styles map[string]lipgloss.Style

// Resolve 合并 ClassName 对应的样式与节点的内联样式。
func (s Styles) Resolve(n Node) lipgloss.Style {
	base := lipgloss.NewStyle()
	if st, ok := s[n.ClassName]; ok {
		base = st
	}
	return render.StyleFromMap(base, n.Style)
}

func (s Styles) icon() lipgloss.Style {
	if st, ok := s[ClassIcon]; ok {
		return st
	}
	return lipgloss.NewStyle()
}

// Line 把节点转换为一行：图标（如有）后接内容。
// 内容中的换行与制表符被折叠，Contents 与 Title 本身保持原样。
func (n Node) Line(icons IconSet, iconStyle, textStyle lipgloss.Style) render.Line {
	line := render.Line{}
	if glyph := icons.Glyph(n.Icon); glyph != "" {
		line.Spans = append(line.Spans,
			render.Span{Text: glyph, Style: iconStyle},
			render.Span{Text: " ", Style: textStyle},
		)
	}
	line.Spans = append(line.Spans, render.Span{Text: render.SingleLine(n.Contents), Style: textStyle})
	return line
}

// View 渲染为固定显示宽度的单行字符串；width <= 0 时不截断也不补齐。
func (n Node) View(icons IconSet, styles Styles, width int) string {
	style := styles.Resolve(n)
	line := n.Line(icons, styles.icon().Inherit(style), style)
	if width > 0 {
		line = render.TruncateLine(line, width)
		style = style.Width(width).MaxWidth(width)
	}
	return style.Render(line.Render())
}
