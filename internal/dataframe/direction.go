package dataframe

// SortDirection 表示某列当前的排序状态，零值为未排序。
type SortDirection int

const (
	// SortUnset 表示该列未参与排序。
	SortUnset SortDirection = iota
	// SortAscending 升序。
	SortAscending
	// SortDescending 降序。
	SortDescending
)

func (d SortDirection) String() string {
	switch d {
	case SortAscending:
		return "ascending"
	case SortDescending:
		return "descending"
	default:
		return ""
	}
}

// Set 判断方向是否已设置（升序或降序）。
func (d SortDirection) Set() bool {
	return d == SortAscending || d == SortDescending
}

// NextDirection 计算点击列头后的排序方向：
// 点击新列从升序开始，重复点击已排序列则在升/降序间切换。
func NextDirection(current SortDirection, sameColumn bool) SortDirection {
	if !sameColumn || !current.Set() {
		return SortAscending
	}
	if current == SortAscending {
		return SortDescending
	}
	return SortAscending
}
