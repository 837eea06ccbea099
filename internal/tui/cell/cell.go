// Package cell 渲染数据表中的单个单元格：文本内容、列头排序图标，
// 以及列头被激活时的回调。
package cell

import (
	"fmt"

	"dfview/internal/dataframe"
)

// RoleButton 是可交互列头的角色。
const RoleButton = "button"

// HeaderHandler 接收列头激活事件，参数为被激活列的下标。
type HeaderHandler interface {
	HeaderClicked(columnIndex int)
}

// HeaderHandlerFunc 让普通函数满足 HeaderHandler。
type HeaderHandlerFunc func(columnIndex int)

// HeaderClicked 实现 HeaderHandler。
func (f HeaderHandlerFunc) HeaderClicked(columnIndex int) {
	if f != nil {
		f(columnIndex)
	}
}

type noopHandler struct{}

func (noopHandler) HeaderClicked(int) {}

// Props 描述一个单元格的全部输入，由表格在每次渲染时重新生成。
type Props struct {
	ColumnIndex int
	// RowIndex 为 0 表示表头行。
	RowIndex  int
	ClassName string
	// Style 原样透传，由视图层解释。
	Style    map[string]string
	Contents string
	// SortedByUser 为 true 时才绘制排序图标。
	SortedByUser        bool
	ColumnSortDirection dataframe.SortDirection
	// OnHeaderClick 为 nil 时列头不可交互；非表头行忽略此字段。
	OnHeaderClick HeaderHandler
}

// Icon 是列头的排序图标。
type Icon int

const (
	IconNone Icon = iota
	IconChevronTop
	IconChevronBottom
)

// Node 是单元格的渲染结果。
type Node struct {
	ClassName string
	Style     map[string]string
	Role      string
	// TabIndex 为 nil 表示不可聚焦。
	TabIndex *int
	Title    string
	Icon     Icon
	Contents string

	column  int
	handler HeaderHandler
}

// Render 将 Props 映射为 Node，纯函数，无错误路径。
func Render(p Props) Node {
	node := Node{
		ClassName: p.ClassName,
		Style:     p.Style,
		Title:     p.Contents,
		Contents:  p.Contents,
		column:    p.ColumnIndex,
		handler:   noopHandler{},
	}

	header := p.RowIndex == 0
	if header && p.OnHeaderClick != nil {
		tabIndex := 0
		node.Role = RoleButton
		node.TabIndex = &tabIndex
		node.handler = p.OnHeaderClick
		node.Title = headerTitle(p.Contents, p.ColumnSortDirection)
	}

	if header && p.SortedByUser {
		node.Icon = iconFor(p.ColumnSortDirection)
	}
	return node
}

func headerTitle(contents string, dir dataframe.SortDirection) string {
	if !dir.Set() {
		return fmt.Sprintf("Sort by column \"%s\"", contents)
	}
	return fmt.Sprintf("Sorted by column \"%s\" (%s)", contents, dir)
}

func iconFor(dir dataframe.SortDirection) Icon {
	switch dir {
	case dataframe.SortAscending:
		return IconChevronTop
	case dataframe.SortDescending:
		return IconChevronBottom
	default:
		return IconNone
	}
}

// Interactive 报告节点是否响应激活。
func (n Node) Interactive() bool {
	return n.Role == RoleButton
}

// Focusable 报告节点是否可通过键盘聚焦。
func (n Node) Focusable() bool {
	return n.TabIndex != nil
}

// Column 返回节点所属列。
func (n Node) Column() int {
	return n.column
}

// Activate 以本列下标调用一次回调；不可交互时什么也不做并返回 false。
func (n Node) Activate() bool {
	if !n.Interactive() || n.handler == nil {
		return false
	}
	n.handler.HeaderClicked(n.column)
	return true
}
