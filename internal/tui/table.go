package tui

import (
	"fmt"
	"strconv"
	"strings"

	"dfview/internal/config"
	"dfview/internal/dataframe"
	"dfview/internal/logger"
	"dfview/internal/tui/cell"
	"dfview/internal/tui/render"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	columnSeparator = " "
	// headerLine 是表头所在的屏幕行（第 0 行为标题栏）。
	headerLine = 1
	// chromeHeight 为标题栏、表头、状态栏、帮助栏预留的行数。
	chromeHeight = 4
	// iconRoom 为排序图标与空格预留的列宽。
	iconRoom = 2
)

// Options 控制表格模型的初始化。
type Options struct {
	Frame  *dataframe.Frame
	Title  string
	Config config.Config
	// Clipboard 为空时使用系统剪贴板。
	Clipboard func(string) error
	Log       *logger.LogEntry
}

// Table 是持有数据与排序状态的 Bubble Tea 模型，
// 每次渲染为各单元格生成 cell.Props 并处理列头激活。
type Table struct {
	frame  *dataframe.Frame
	title  string
	icons  cell.IconSet
	styles styles
	keys   keyMap
	help   help.Model
	jump   columnJump

	order        []int
	sortColumn   int
	sortDir      dataframe.SortDirection
	sortedByUser bool

	// focusCol 为 -1 时焦点在数据区，否则为聚焦的列头。
	focusCol  int
	cursorRow int
	cursorCol int
	rowOffset int
	colOffset int
	widths    []int

	width  int
	height int
	status string

	copy func(string) error
	log  *logger.LogEntry
}

// New 构造表格模型，初始为原始行序且未排序。
func New(opts Options) *Table {
	frame := opts.Frame
	if frame == nil {
		frame = dataframe.New(nil, nil)
	}
	cfg := opts.Config
	copyFn := opts.Clipboard
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}
	log := opts.Log
	if log == nil {
		log = logger.Named("table")
	}
	t := &Table{
		frame:      frame,
		title:      opts.Title,
		icons:      cell.IconSet{Ascending: cfg.AscendingIcon, Descending: cfg.DescendingIcon},
		styles:     newStyles(cfg.Theme),
		keys:       defaultKeyMap(),
		help:       help.New(),
		jump:       newColumnJump(),
		sortColumn: -1,
		focusCol:   -1,
		copy:       copyFn,
		log:        log,
	}
	if t.icons.Ascending == "" || t.icons.Descending == "" {
		t.icons = cell.DefaultIcons
	}
	t.order = frame.Order(-1, dataframe.SortUnset)
	t.widths = columnWidths(frame, cfg.MinColumnWidth, cfg.MaxColumnWidth)
	return t
}

func columnWidths(frame *dataframe.Frame, minWidth, maxWidth int) []int {
	widths := make([]int, frame.Width())
	for col := range widths {
		w := render.StringWidth(render.SingleLine(frame.Column(col))) + iconRoom
		for row := 0; row < frame.Len(); row++ {
			if cw := render.StringWidth(render.SingleLine(frame.Cell(row, col))); cw > w {
				w = cw
			}
		}
		if minWidth > 0 && w < minWidth {
			w = minWidth
		}
		if maxWidth > 0 && w > maxWidth {
			w = maxWidth
		}
		widths[col] = w
	}
	return widths
}

// HeaderClicked 实现 cell.HeaderHandler：切换该列的排序方向并重排行序。
func (t *Table) HeaderClicked(columnIndex int) {
	if columnIndex < 0 || columnIndex >= t.frame.Width() {
		return
	}
	selected := -1
	if t.cursorRow < len(t.order) {
		selected = t.order[t.cursorRow]
	}

	t.sortDir = dataframe.NextDirection(t.sortDir, columnIndex == t.sortColumn)
	t.sortColumn = columnIndex
	t.sortedByUser = true
	t.order = t.frame.Order(t.sortColumn, t.sortDir)

	// 保持光标停留在同一条数据上。
	for i, src := range t.order {
		if src == selected {
			t.cursorRow = i
			break
		}
	}
	t.ensureRowVisible()

	t.log.WithFields(logger.Fields{
		"event":     "sort.changed",
		"column":    columnIndex,
		"name":      t.frame.Column(columnIndex),
		"direction": t.sortDir.String(),
	}).Info("header activated")
}

// SortState 返回当前排序列与方向，未排序时列为 -1。
func (t *Table) SortState() (int, dataframe.SortDirection) {
	return t.sortColumn, t.sortDir
}

func (t *Table) directionFor(col int) dataframe.SortDirection {
	if col == t.sortColumn {
		return t.sortDir
	}
	return dataframe.SortUnset
}

func (t *Table) headerProps(col int) cell.Props {
	class := classHeader
	if col == t.focusCol {
		class = classHeaderFocused
	}
	return cell.Props{
		ColumnIndex:         col,
		RowIndex:            0,
		ClassName:           class,
		Contents:            t.frame.Column(col),
		SortedByUser:        t.sortedByUser,
		ColumnSortDirection: t.directionFor(col),
		OnHeaderClick:       t,
	}
}

// bodyProps 的 RowIndex 从 1 开始，0 留给表头。
func (t *Table) bodyProps(pos, col int) cell.Props {
	contents := t.frame.Cell(t.order[pos], col)
	class := classCell
	if pos == t.cursorRow && t.focusCol < 0 {
		class = classRowSelected
		if col == t.cursorCol {
			class = classCellSelected
		}
	}
	var style map[string]string
	if dataframe.IsNumeric(contents) {
		style = map[string]string{"align": "right"}
	}
	return cell.Props{
		ColumnIndex:         col,
		RowIndex:            pos + 1,
		ClassName:           class,
		Style:               style,
		Contents:            contents,
		SortedByUser:        t.sortedByUser,
		ColumnSortDirection: t.directionFor(col),
		OnHeaderClick:       t,
	}
}

// activateHeader 通过单元格节点触发激活，与鼠标点击走同一路径。
func (t *Table) activateHeader(col int) bool {
	if col < 0 || col >= t.frame.Width() {
		return false
	}
	return cell.Render(t.headerProps(col)).Activate()
}

func (t *Table) Init() tea.Cmd {
	return nil
}

func (t *Table) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		t.width = msg.Width
		t.height = msg.Height
		t.help.Width = msg.Width
		t.ensureRowVisible()
		t.ensureColVisible(t.cursorCol)
		return t, nil
	case tea.MouseMsg:
		t.handleMouse(msg)
		return t, nil
	case tea.KeyMsg:
		if t.jump.active {
			return t, t.updateJump(msg)
		}
		return t.handleKey(msg)
	}
	return t, nil
}

func (t *Table) View() string {
	if t.frame.Width() == 0 {
		return t.styles.empty.Render("no columns to display")
	}
	var b strings.Builder
	b.WriteString(t.titleLine())
	b.WriteString("\n")
	b.WriteString(t.headerRow())
	for pos := t.rowOffset; pos < len(t.order) && pos < t.rowOffset+t.bodyHeight(); pos++ {
		b.WriteString("\n")
		b.WriteString(t.bodyRow(pos))
	}
	b.WriteString("\n")
	b.WriteString(t.styles.status.Render(render.PadRight(render.SingleLine(t.statusLine()), t.lineWidth())))
	b.WriteString("\n")
	if t.jump.active {
		b.WriteString(t.jump.View(t.frame))
	} else {
		b.WriteString(t.help.View(t.keys))
	}
	return b.String()
}

func (t *Table) titleLine() string {
	sort := "unsorted"
	if t.sortColumn >= 0 && t.sortDir.Set() {
		sort = fmt.Sprintf("sorted by %s (%s)", t.frame.Column(t.sortColumn), t.sortDir)
	}
	text := fmt.Sprintf("%s  %d rows × %d cols  %s", t.title, t.frame.Len(), t.frame.Width(), sort)
	return t.styles.title.Render(render.Truncate(strings.TrimSpace(text), t.lineWidth()))
}

func (t *Table) headerRow() string {
	cols := t.visibleColumns()
	parts := make([]string, 0, len(cols))
	for _, col := range cols {
		node := cell.Render(t.headerProps(col))
		parts = append(parts, node.View(t.icons, t.styles.cells, t.widths[col]))
	}
	return strings.Join(parts, columnSeparator)
}

func (t *Table) bodyRow(pos int) string {
	cols := t.visibleColumns()
	parts := make([]string, 0, len(cols))
	for _, col := range cols {
		node := cell.Render(t.bodyProps(pos, col))
		parts = append(parts, node.View(t.icons, t.styles.cells, t.widths[col]))
	}
	return strings.Join(parts, columnSeparator)
}

// statusLine 显示聚焦节点的 Title（即提示文本），有临时消息时附在后面。
func (t *Table) statusLine() string {
	var title string
	switch {
	case t.focusCol >= 0:
		title = cell.Render(t.headerProps(t.focusCol)).Title
	case len(t.order) > 0:
		title = cell.Render(t.bodyProps(t.cursorRow, t.cursorCol)).Title
	}
	if t.status != "" {
		if title == "" {
			return t.status
		}
		return title + "  ·  " + t.status
	}
	return title
}

func (t *Table) lineWidth() int {
	if t.width > 0 {
		return t.width
	}
	return 120
}

func (t *Table) bodyHeight() int {
	if t.height <= 0 {
		return 20
	}
	if h := t.height - chromeHeight; h > 0 {
		return h
	}
	return 1
}

// visibleColumns 从 colOffset 开始放入能完整显示的列，至少一列。
func (t *Table) visibleColumns() []int {
	var cols []int
	used := 0
	sepWidth := render.StringWidth(columnSeparator)
	for col := t.colOffset; col < t.frame.Width(); col++ {
		w := t.widths[col]
		if len(cols) > 0 {
			w += sepWidth
		}
		if len(cols) > 0 && used+w > t.lineWidth() {
			break
		}
		cols = append(cols, col)
		used += w
	}
	return cols
}

// columnAt 把屏幕 X 坐标映射到列，落在分隔符或空白处返回 -1。
func (t *Table) columnAt(x int) int {
	pos := 0
	sepWidth := render.StringWidth(columnSeparator)
	for i, col := range t.visibleColumns() {
		if i > 0 {
			pos += sepWidth
		}
		if x >= pos && x < pos+t.widths[col] {
			return col
		}
		pos += t.widths[col]
	}
	return -1
}

func (t *Table) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	t.status = ""
	switch {
	case key.Matches(msg, t.keys.Quit):
		return t, tea.Quit
	case key.Matches(msg, t.keys.Help):
		t.help.ShowAll = !t.help.ShowAll
	case key.Matches(msg, t.keys.NextHeader):
		t.moveHeaderFocus(1)
	case key.Matches(msg, t.keys.PrevHeader):
		t.moveHeaderFocus(-1)
	case key.Matches(msg, t.keys.Leave):
		if t.focusCol >= 0 {
			t.cursorCol = t.focusCol
			t.focusCol = -1
		}
	case key.Matches(msg, t.keys.Activate):
		if t.focusCol >= 0 {
			t.activateHeader(t.focusCol)
		}
	case key.Matches(msg, t.keys.SortColumn):
		col := t.cursorCol
		if t.focusCol >= 0 {
			col = t.focusCol
		}
		t.activateHeader(col)
	case key.Matches(msg, t.keys.Copy):
		t.copySelected()
	case key.Matches(msg, t.keys.Jump):
		return t, t.jump.Open()
	case key.Matches(msg, t.keys.Up):
		t.moveRow(-1)
	case key.Matches(msg, t.keys.Down):
		t.moveRow(1)
	case key.Matches(msg, t.keys.PageUp):
		t.moveRow(-t.bodyHeight())
	case key.Matches(msg, t.keys.PageDown):
		t.moveRow(t.bodyHeight())
	case key.Matches(msg, t.keys.Top):
		t.moveRow(-len(t.order))
	case key.Matches(msg, t.keys.Bottom):
		t.moveRow(len(t.order))
	case key.Matches(msg, t.keys.Left):
		t.moveColumn(-1)
	case key.Matches(msg, t.keys.Right):
		t.moveColumn(1)
	}
	return t, nil
}

// moveHeaderFocus 在可聚焦的列头之间循环。
func (t *Table) moveHeaderFocus(step int) {
	n := t.frame.Width()
	if n == 0 {
		return
	}
	start := t.focusCol
	if start < 0 {
		start = t.cursorCol
		if step > 0 {
			start--
		} else {
			start++
		}
	}
	col := start
	for i := 0; i < n; i++ {
		col = ((col+step)%n + n) % n
		if cell.Render(t.headerProps(col)).Focusable() {
			t.focusCol = col
			t.ensureColVisible(col)
			return
		}
	}
}

func (t *Table) moveRow(delta int) {
	if t.focusCol >= 0 {
		if delta <= 0 {
			return
		}
		t.cursorCol = t.focusCol
		t.focusCol = -1
		delta--
	}
	t.cursorRow += delta
	if t.cursorRow >= len(t.order) {
		t.cursorRow = len(t.order) - 1
	}
	if t.cursorRow < 0 {
		t.cursorRow = 0
	}
	t.ensureRowVisible()
}

func (t *Table) moveColumn(delta int) {
	if t.focusCol >= 0 {
		t.moveHeaderFocus(delta)
		return
	}
	col := t.cursorCol + delta
	if col < 0 || col >= t.frame.Width() {
		return
	}
	t.cursorCol = col
	t.ensureColVisible(col)
}

func (t *Table) ensureRowVisible() {
	h := t.bodyHeight()
	if t.cursorRow < t.rowOffset {
		t.rowOffset = t.cursorRow
	}
	if t.cursorRow >= t.rowOffset+h {
		t.rowOffset = t.cursorRow - h + 1
	}
	if t.rowOffset < 0 {
		t.rowOffset = 0
	}
}

func (t *Table) ensureColVisible(col int) {
	if col < 0 || col >= t.frame.Width() {
		return
	}
	if col < t.colOffset {
		t.colOffset = col
		return
	}
	for t.colOffset < col {
		visible := t.visibleColumns()
		if len(visible) > 0 && visible[len(visible)-1] >= col {
			return
		}
		t.colOffset++
	}
}

func (t *Table) handleMouse(msg tea.MouseMsg) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		t.moveRow(-1)
		return
	case tea.MouseButtonWheelDown:
		t.moveRow(1)
		return
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	col := t.columnAt(msg.X)
	if col < 0 {
		return
	}
	if msg.Y == headerLine {
		t.focusCol = col
		t.activateHeader(col)
		return
	}
	pos := t.rowOffset + msg.Y - headerLine - 1
	if msg.Y > headerLine && pos < len(t.order) && pos < t.rowOffset+t.bodyHeight() {
		t.focusCol = -1
		t.cursorRow = pos
		t.cursorCol = col
	}
}

func (t *Table) copySelected() {
	var text string
	if t.focusCol >= 0 {
		text = t.frame.Column(t.focusCol)
	} else if len(t.order) > 0 {
		text = t.frame.Cell(t.order[t.cursorRow], t.cursorCol)
	}
	if err := t.copy(text); err != nil {
		t.log.WithError(err).Warn("copy to clipboard failed")
		t.status = "copy failed: " + err.Error()
		return
	}
	t.status = "copied " + strconv.Quote(render.Truncate(text, 24))
}

var _ cell.HeaderHandler = (*Table)(nil)
var _ tea.Model = (*Table)(nil)
