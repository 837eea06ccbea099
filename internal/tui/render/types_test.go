package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestLinesToPlainStrings(t *testing.T) {
	lines := []Line{
		{
			Spans: []Span{
				{Text: "▲ ", Style: lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))},
				{Text: "price", Style: lipgloss.NewStyle().Bold(true)},
			},
		},
		{Spans: []Span{}},
	}

	got := LinesToPlainStrings(lines)
	want := []string{"▲ price", ""}
	if len(got) != len(want) {
		t.Fatalf("unexpected length: got %d want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d mismatch: got %q want %q", i, got[i], want[i])
		}
		if strings.Contains(got[i], "\x1b") {
			t.Errorf("line %d contains ANSI sequences: %q", i, got[i])
		}
	}
}

func TestPadRightAndTruncate(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{in: "abc", width: 5, want: "abc  "},
		{in: "abcdef", width: 4, want: "abc…"},
		{in: "你好世界", width: 5, want: "你好…"},
		{in: "x", width: 0, want: ""},
	}
	for _, tc := range cases {
		if got := PadRight(tc.in, tc.width); got != tc.want {
			t.Errorf("PadRight(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.want)
		}
	}
}

func TestTruncateLine_KeepsLeadingSpans(t *testing.T) {
	line := Line{Spans: []Span{{Text: "> "}, {Text: "a very long header"}}}
	got := TruncateLine(line, 8).Plain()
	if got != "> a ver…" {
		t.Fatalf("TruncateLine = %q", got)
	}
	if StringWidth(got) != 8 {
		t.Fatalf("width = %d, want 8", StringWidth(got))
	}

	short := Line{Spans: []Span{{Text: "ok"}}}
	if got := TruncateLine(short, 8).Plain(); got != "ok" {
		t.Fatalf("short line changed: %q", got)
	}
}

func TestStyleFromMap_IgnoresUnknownKeys(t *testing.T) {
	base := lipgloss.NewStyle()
	style := StyleFromMap(base, map[string]string{
		"bold":    "true",
		"align":   "right",
		"z-index": "3",
	})
	if !style.GetBold() {
		t.Fatalf("expected bold")
	}
	if style.GetAlign() != lipgloss.Right {
		t.Fatalf("align = %v, want right", style.GetAlign())
	}
	if StyleFromMap(base, nil).GetBold() {
		t.Fatalf("nil map must leave base untouched")
	}
}

func TestSingleLine(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "plain", want: "plain"},
		{in: "a\nb", want: "a↵b"},
		{in: "a\r\nb", want: "a↵b"},
		{in: "a\rb", want: "a↵b"},
		{in: "x\ty", want: "x y"},
		{in: "\n", want: "↵"},
	}
	for _, tc := range cases {
		if got := SingleLine(tc.in); got != tc.want {
			t.Errorf("SingleLine(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestLineRender_UnstyledMatchesPlain(t *testing.T) {
	line := Line{Spans: []Span{{Text: "▼"}, {Text: " "}, {Text: "city"}}}
	if got := line.Render(); got != line.Plain() {
		t.Fatalf("Render = %q, want %q", got, line.Plain())
	}
}
