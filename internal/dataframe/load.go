package dataframe

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// LoadOptions 控制数据文件的读取方式。
type LoadOptions struct {
	// Sheet 指定 xlsx 的工作表，为空时取第一个。
	Sheet string
}

// Load 按扩展名读取 csv/tsv/xlsx，首条记录作为表头。
func Load(path string, opts LoadOptions) (*Frame, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return loadDelimited(path, ',')
	case ".tsv", ".tab":
		return loadDelimited(path, '\t')
	case ".xlsx", ".xlsm":
		return loadWorkbook(path, opts.Sheet)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}

func loadDelimited(path string, comma rune) (*Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	frame, err := ReadDelimited(f, comma)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return frame, nil
}

// ReadDelimited 从分隔文本读取 Frame，允许各行字段数不一致。
func ReadDelimited(r io.Reader, comma rune) (*Frame, error) {
	reader := csv.NewReader(r)
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	return fromRecords(records)
}

func loadWorkbook(path, sheet string) (*Frame, error) {
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	if sheet == "" {
		sheets := wb.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%s: %w", path, ErrEmpty)
		}
		sheet = sheets[0]
	}
	rows, err := wb.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%s: sheet %q: %w", path, sheet, err)
	}
	frame, err := fromRecords(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: sheet %q: %w", path, sheet, err)
	}
	return frame, nil
}

func fromRecords(records [][]string) (*Frame, error) {
	if len(records) == 0 {
		return nil, ErrEmpty
	}
	return New(records[0], records[1:]), nil
}
