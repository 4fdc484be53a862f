// Package export renders table screens as XLSX workbooks.
package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/casaluna/hotel-pms/internal/core/domain"
)

// ContentType is the MIME type of the generated workbooks.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const dateLayout = "2006-01-02"

// Column is one sheet column.
type Column struct {
	Header string
	Width  float64
}

var expenseColumns = []Column{
	{"Date", 12}, {"Description", 36}, {"Category", 18}, {"Amount", 12}, {"Payment Method", 16}, {"Notes", 40},
}

var stockColumns = []Column{
	{"Name", 28}, {"Category", 18}, {"Quantity", 10}, {"Min Quantity", 12}, {"Unit", 10}, {"Unit Price", 12}, {"Supplier", 24}, {"Low Stock", 10}, {"Updated", 12},
}

// Expenses renders the expense list in the given order.
func Expenses(items []domain.Expense) ([]byte, error) {
	rows := make([][]any, 0, len(items))
	for _, e := range items {
		rows = append(rows, []any{e.Date.Format(dateLayout), e.Description, e.Category, e.Amount, e.PaymentMethod, e.Notes})
	}
	return Workbook("Expenses", expenseColumns, rows)
}

// Stock renders the inventory in the given order.
func Stock(items []domain.StockItem) ([]byte, error) {
	rows := make([][]any, 0, len(items))
	for _, s := range items {
		low := "No"
		if s.LowStock() {
			low = "Yes"
		}
		rows = append(rows, []any{s.Name, s.Category, s.Quantity, s.MinQuantity, s.Unit, s.UnitPrice, s.Supplier, low, s.UpdatedAt.Format(dateLayout)})
	}
	return Workbook("Stock", stockColumns, rows)
}

// Workbook writes a single-sheet workbook with a bold header row.
func Workbook(sheet string, columns []Column, rows [][]any) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("delete default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	for i, c := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, c.Header); err != nil {
			return nil, fmt.Errorf("set header %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return nil, fmt.Errorf("set header style: %w", err)
		}
		if c.Width > 0 {
			name, err := excelize.ColumnNumberToName(i + 1)
			if err != nil {
				return nil, err
			}
			if err := f.SetColWidth(sheet, name, name, c.Width); err != nil {
				return nil, fmt.Errorf("set column width: %w", err)
			}
		}
	}

	for r, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", r+2, err)
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
