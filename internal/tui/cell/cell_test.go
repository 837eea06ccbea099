package cell

import (
	"fmt"
	"strings"
	"testing"

	"dfview/internal/dataframe"
	"dfview/internal/tui/render"

	"github.com/charmbracelet/lipgloss"
)

type recordingHandler struct {
	calls []int
}

func (h *recordingHandler) HeaderClicked(columnIndex int) {
	h.calls = append(h.calls, columnIndex)
}

var allDirections = []dataframe.SortDirection{
	dataframe.SortUnset,
	dataframe.SortAscending,
	dataframe.SortDescending,
}

func TestRender_RoleAndFocus(t *testing.T) {
	cases := []struct {
		name        string
		row         int
		handler     HeaderHandler
		interactive bool
	}{
		{name: "header with handler", row: 0, handler: &recordingHandler{}, interactive: true},
		{name: "header without handler", row: 0, handler: nil, interactive: false},
		{name: "body with handler", row: 1, handler: &recordingHandler{}, interactive: false},
		{name: "deep body with handler", row: 42, handler: &recordingHandler{}, interactive: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			node := Render(Props{RowIndex: tc.row, Contents: "x", OnHeaderClick: tc.handler})
			if node.Interactive() != tc.interactive {
				t.Fatalf("Interactive() = %v, want %v", node.Interactive(), tc.interactive)
			}
			if node.Focusable() != tc.interactive {
				t.Fatalf("Focusable() = %v, want %v", node.Focusable(), tc.interactive)
			}
			if tc.interactive {
				if node.Role != RoleButton {
					t.Fatalf("Role = %q, want %q", node.Role, RoleButton)
				}
				if *node.TabIndex != 0 {
					t.Fatalf("TabIndex = %d, want 0", *node.TabIndex)
				}
			} else if node.Role != "" || node.TabIndex != nil {
				t.Fatalf("non-interactive node has role %q tabindex %v", node.Role, node.TabIndex)
			}
		})
	}
}

func TestRender_Title(t *testing.T) {
	for _, row := range []int{0, 3} {
		for _, dir := range allDirections {
			name := fmt.Sprintf("row=%d/dir=%s", row, dir)
			t.Run(name, func(t *testing.T) {
				node := Render(Props{
					RowIndex:            row,
					Contents:            "price",
					ColumnSortDirection: dir,
					OnHeaderClick:       &recordingHandler{},
				})
				want := "price"
				if row == 0 {
					switch dir {
					case dataframe.SortUnset:
						want = `Sort by column "price"`
					case dataframe.SortAscending:
						want = `Sorted by column "price" (ascending)`
					case dataframe.SortDescending:
						want = `Sorted by column "price" (descending)`
					}
				}
				if node.Title != want {
					t.Fatalf("Title = %q, want %q", node.Title, want)
				}
			})
		}
	}
}

func TestRender_TitleWithoutHandlerIsContents(t *testing.T) {
	node := Render(Props{RowIndex: 0, Contents: "qty", ColumnSortDirection: dataframe.SortAscending})
	if node.Title != "qty" {
		t.Fatalf("Title = %q, want %q", node.Title, "qty")
	}
}

func TestRender_Icon(t *testing.T) {
	cases := []struct {
		row          int
		sortedByUser bool
		dir          dataframe.SortDirection
		want         Icon
	}{
		{row: 0, sortedByUser: true, dir: dataframe.SortAscending, want: IconChevronTop},
		{row: 0, sortedByUser: true, dir: dataframe.SortDescending, want: IconChevronBottom},
		{row: 0, sortedByUser: true, dir: dataframe.SortUnset, want: IconNone},
		{row: 0, sortedByUser: false, dir: dataframe.SortAscending, want: IconNone},
		{row: 1, sortedByUser: true, dir: dataframe.SortAscending, want: IconNone},
		{row: 7, sortedByUser: true, dir: dataframe.SortDescending, want: IconNone},
	}
	for _, tc := range cases {
		name := fmt.Sprintf("row=%d/user=%v/dir=%s", tc.row, tc.sortedByUser, tc.dir)
		t.Run(name, func(t *testing.T) {
			node := Render(Props{
				RowIndex:            tc.row,
				Contents:            "c",
				SortedByUser:        tc.sortedByUser,
				ColumnSortDirection: tc.dir,
			})
			if node.Icon != tc.want {
				t.Fatalf("Icon = %v, want %v", node.Icon, tc.want)
			}
		})
	}
}

func TestActivate_CallsHandlerOnceWithColumn(t *testing.T) {
	h := &recordingHandler{}
	node := Render(Props{ColumnIndex: 4, RowIndex: 0, Contents: "name", OnHeaderClick: h})
	if !node.Activate() {
		t.Fatalf("Activate() = false on interactive header")
	}
	if len(h.calls) != 1 || h.calls[0] != 4 {
		t.Fatalf("handler calls = %v, want [4]", h.calls)
	}
}

func TestActivate_NoopWhenNotInteractive(t *testing.T) {
	h := &recordingHandler{}
	body := Render(Props{ColumnIndex: 1, RowIndex: 2, OnHeaderClick: h})
	if body.Activate() {
		t.Fatalf("Activate() = true on body cell")
	}
	bare := Render(Props{ColumnIndex: 1, RowIndex: 0})
	if bare.Activate() {
		t.Fatalf("Activate() = true on header without handler")
	}
	if len(h.calls) != 0 {
		t.Fatalf("handler calls = %v, want none", h.calls)
	}
}

func TestHeaderHandlerFunc(t *testing.T) {
	got := -1
	node := Render(Props{ColumnIndex: 2, OnHeaderClick: HeaderHandlerFunc(func(c int) { got = c })})
	node.Activate()
	if got != 2 {
		t.Fatalf("got column %d, want 2", got)
	}
}

func TestNodeLine(t *testing.T) {
	plainStyle := lipgloss.NewStyle()
	header := Render(Props{RowIndex: 0, Contents: "city", SortedByUser: true, ColumnSortDirection: dataframe.SortDescending})
	plain := render.LinesToPlainStrings([]render.Line{header.Line(DefaultIcons, plainStyle, plainStyle)})
	if plain[0] != "▼ city" {
		t.Fatalf("header line = %q", plain[0])
	}

	body := Render(Props{RowIndex: 1, Contents: "Oslo", SortedByUser: true, ColumnSortDirection: dataframe.SortDescending})
	if got := body.Line(DefaultIcons, plainStyle, plainStyle).Plain(); got != "Oslo" {
		t.Fatalf("body line = %q", got)
	}

	empty := Render(Props{RowIndex: 1})
	if got := empty.Line(DefaultIcons, plainStyle, plainStyle).Plain(); got != "" {
		t.Fatalf("empty contents line = %q", got)
	}
}

func TestNodeLine_IconSpanCarriesIconStyle(t *testing.T) {
	iconStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#f9e2af"))
	textStyle := lipgloss.NewStyle().Bold(true)
	node := Render(Props{RowIndex: 0, Contents: "qty", SortedByUser: true, ColumnSortDirection: dataframe.SortAscending})

	line := node.Line(DefaultIcons, iconStyle, textStyle)
	if len(line.Spans) != 3 {
		t.Fatalf("spans = %+v, want glyph, gap, contents", line.Spans)
	}
	if line.Spans[0].Text != "▲" || line.Spans[0].Style.GetForeground() != lipgloss.Color("#f9e2af") {
		t.Fatalf("icon span = %+v", line.Spans[0])
	}
	if line.Spans[0].Style.GetBold() {
		t.Fatalf("icon span took the text style")
	}
	if line.Spans[2].Text != "qty" || !line.Spans[2].Style.GetBold() {
		t.Fatalf("contents span = %+v", line.Spans[2])
	}
}

func TestNodeView_MultiLineContentsStayOnOneLine(t *testing.T) {
	frame, err := dataframe.ReadDelimited(strings.NewReader("name,note\na,\"line1\nline2\"\nb,\"tab\there\"\n"), ',')
	if err != nil {
		t.Fatalf("ReadDelimited: %v", err)
	}
	raw := frame.Cell(0, 1)
	if raw != "line1\nline2" {
		t.Fatalf("cell = %q, want the quoted newline kept", raw)
	}

	node := Render(Props{RowIndex: 1, Contents: raw})
	view := node.View(DefaultIcons, nil, 14)
	if n := strings.Count(view, "\n"); n != 0 {
		t.Fatalf("View has %d line breaks: %q", n, view)
	}
	if view != "line1↵line2   " {
		t.Fatalf("View = %q", view)
	}
	if node.Contents != raw || node.Title != raw {
		t.Fatalf("Contents/Title must stay raw: %q / %q", node.Contents, node.Title)
	}

	tabbed := Render(Props{RowIndex: 2, Contents: frame.Cell(1, 1)})
	if got := tabbed.View(DefaultIcons, nil, 0); got != "tab here" {
		t.Fatalf("tab View = %q", got)
	}
}

func TestNodeView_FixedWidth(t *testing.T) {
	node := Render(Props{RowIndex: 1, Contents: "abc", ClassName: "cell"})
	got := node.View(DefaultIcons, Styles{}, 6)
	if got != "abc   " {
		t.Fatalf("View = %q, want %q", got, "abc   ")
	}
	long := Render(Props{RowIndex: 1, Contents: "abcdefghij"})
	if got := long.View(DefaultIcons, nil, 4); got != "abc…" {
		t.Fatalf("View = %q, want %q", got, "abc…")
	}
	aligned := Render(Props{RowIndex: 1, Contents: "7", Style: map[string]string{"align": "right"}})
	if got := aligned.View(DefaultIcons, nil, 3); !strings.HasSuffix(got, "7") || len(got) != 3 {
		t.Fatalf("right aligned View = %q", got)
	}
}
