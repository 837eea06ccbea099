package tui

import (
	"strings"

	"dfview/internal/dataframe"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

const jumpPreview = 3

var matchHighlight = lipgloss.NewStyle().Bold(true).Underline(true)

// columnJump 是按列名模糊跳转的输入框。
type columnJump struct {
	input   textinput.Model
	active  bool
	matches fuzzy.Matches
}

func newColumnJump() columnJump {
	in := textinput.New()
	in.Prompt = "column: "
	in.Placeholder = "type to match a column name"
	return columnJump{input: in}
}

// Open 清空输入并获取焦点。
func (j *columnJump) Open() tea.Cmd {
	j.active = true
	j.matches = nil
	j.input.Reset()
	return j.input.Focus()
}

func (j *columnJump) Close() {
	j.active = false
	j.matches = nil
	j.input.Blur()
}

// Match 按当前输入匹配列名，空输入不产生结果。
// fuzzy 自身忽略大小写，直接匹配原始列名，MatchedIndexes 才能对应到显示文本。
func (j *columnJump) Match(frame *dataframe.Frame) {
	query := strings.TrimSpace(j.input.Value())
	if query == "" {
		j.matches = nil
		return
	}
	names := make([]string, frame.Width())
	for i := range names {
		names[i] = frame.Column(i)
	}
	j.matches = fuzzy.Find(query, names)
}

// Best 返回得分最高的列，无匹配时为 -1。
func (j *columnJump) Best() int {
	if len(j.matches) == 0 {
		return -1
	}
	return j.matches[0].Index
}

func (j *columnJump) View(frame *dataframe.Frame) string {
	parts := []string{j.input.View()}
	for i, m := range j.matches {
		if i == jumpPreview {
			break
		}
		parts = append(parts, highlightMatch(m.Str, m.MatchedIndexes))
	}
	return strings.Join(parts, "  ")
}

// highlightMatch 加粗命中的字符；idx 为 name 内的字节下标。
func highlightMatch(name string, idx []int) string {
	if len(idx) == 0 {
		return name
	}
	hit := make(map[int]bool, len(idx))
	for _, i := range idx {
		hit[i] = true
	}
	var b strings.Builder
	for i, r := range name {
		if hit[i] {
			b.WriteString(matchHighlight.Render(string(r)))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (t *Table) updateJump(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyCtrlC:
		return tea.Quit
	case tea.KeyEsc:
		t.jump.Close()
		return nil
	case tea.KeyEnter:
		col := t.jump.Best()
		t.jump.Close()
		if col < 0 {
			t.status = "no matching column"
			return nil
		}
		t.focusCol = -1
		t.cursorCol = col
		t.ensureColVisible(col)
		t.status = "jumped to " + t.frame.Column(col)
		return nil
	}
	var cmd tea.Cmd
	t.jump.input, cmd = t.jump.input.Update(msg)
	t.jump.Match(t.frame)
	return cmd
}
