package dataframe

import (
	"errors"
	"math"
	"sort"
	"strconv"
	"strings"
)

var (
	// ErrEmpty 表示数据源没有任何记录（连表头都没有）。
	ErrEmpty = errors.New("dataframe: no header row")
	// ErrUnsupportedFormat 表示无法按扩展名识别的数据文件。
	ErrUnsupportedFormat = errors.New("dataframe: unsupported file format")
)

// Frame 是加载后的二维表：一行表头加若干数据行。
type Frame struct {
	Columns []string
	Rows    [][]string
}

// New 用表头与数据构造 Frame，短行补齐为空字符串。
func New(columns []string, rows [][]string) *Frame {
	f := &Frame{Columns: append([]string{}, columns...)}
	width := len(columns)
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	for len(f.Columns) < width {
		f.Columns = append(f.Columns, "")
	}
	f.Rows = make([][]string, 0, len(rows))
	for _, row := range rows {
		padded := make([]string, width)
		copy(padded, row)
		f.Rows = append(f.Rows, padded)
	}
	return f
}

// Width 返回列数。
func (f *Frame) Width() int {
	if f == nil {
		return 0
	}
	return len(f.Columns)
}

// Len 返回数据行数（不含表头）。
func (f *Frame) Len() int {
	if f == nil {
		return 0
	}
	return len(f.Rows)
}

// Column 返回列名，越界时返回空串。
func (f *Frame) Column(col int) string {
	if f == nil || col < 0 || col >= len(f.Columns) {
		return ""
	}
	return f.Columns[col]
}

// Cell 返回数据单元格内容，越界时返回空串。
func (f *Frame) Cell(row, col int) string {
	if f == nil || row < 0 || row >= len(f.Rows) {
		return ""
	}
	r := f.Rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// Order 返回按指定列排序后的行下标序列，排序稳定；
// dir 未设置或列越界时返回原始顺序。
func (f *Frame) Order(col int, dir SortDirection) []int {
	order := make([]int, f.Len())
	for i := range order {
		order[i] = i
	}
	if !dir.Set() || col < 0 || col >= f.Width() {
		return order
	}
	sort.SliceStable(order, func(i, j int) bool {
		a, b := f.Cell(order[i], col), f.Cell(order[j], col)
		if dir == SortDescending {
			return compareValues(b, a) < 0
		}
		return compareValues(a, b) < 0
	})
	return order
}

// compareValues 两侧均为数字时按数值比较，数字排在文本之前，否则按字典序。
func compareValues(a, b string) int {
	fa, okA := parseNumber(a)
	fb, okB := parseNumber(b)
	switch {
	case okA && okB:
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		default:
			return 0
		}
	case okA:
		return -1
	case okB:
		return 1
	}
	return strings.Compare(a, b)
}

// IsNumeric 判断单元格是否按数值参与排序与对齐。
func IsNumeric(s string) bool {
	_, ok := parseNumber(s)
	return ok
}

// parseNumber 不把 NaN 视为数字：NaN 与任何数比较都不成立，会破坏排序的全序。
func parseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}
