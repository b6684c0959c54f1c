package spreadsheet

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

var (
	// ErrFileRead means the underlying binary read failed
	ErrFileRead = errors.New("failed to read spreadsheet file")
	// ErrWorkbookDecode means the binary container could not be decoded
	ErrWorkbookDecode = errors.New("failed to decode workbook")
	// ErrNoSheets means the workbook holds no worksheet to interpret
	ErrNoSheets = errors.New("workbook has no sheets")
)

// ReadGrid decodes an xlsx workbook and returns the cell grid of its
// first sheet. Interpretation of the grid is left to Extract; this is
// the only place the binary format is touched.
func ReadGrid(r io.Reader) ([][]string, error) {
	workbook, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWorkbookDecode, err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWorkbookDecode, err)
	}
	return rows, nil
}

// Parse reads a workbook and runs the full extraction pipeline on its
// first sheet
func Parse(r io.Reader) (*ExtractedRackData, error) {
	grid, err := ReadGrid(r)
	if err != nil {
		return nil, err
	}
	return Extract(grid), nil
}
