// Package report renders tabular exports as xlsx (excelize) or csv.
package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/samandr77/microservices/erp/internal/entity"
)

const (
	dateLayout   = "02.01.2006"
	maxSheetName = 31
	utf8BOM      = "\ufeff"
)

var fileStems = map[entity.ReportType]string{
	entity.ReportCustomers: "musteriler",
	entity.ReportSales:     "satislar",
	entity.ReportInvoices:  "faturalar",
	entity.ReportInventory: "stok",
	entity.ReportSuppliers: "tedarikciler",
}

var titles = map[entity.ReportType]string{
	entity.ReportCustomers: "Müşteri Listesi",
	entity.ReportSales:     "Satış Raporu",
	entity.ReportInvoices:  "Fatura Listesi",
	entity.ReportInventory: "Stok Raporu",
	entity.ReportSuppliers: "Tedarikçi Listesi",
}

func Title(t entity.ReportType) string {
	if v, ok := titles[t]; ok {
		return v
	}

	return "Rapor"
}

// FileName builds the download name, e.g. musteriler_2025-03-14_101500.xlsx.
func FileName(t entity.ReportType, f entity.ReportFormat, now time.Time) string {
	stem, ok := fileStems[t]
	if !ok {
		stem = "rapor"
	}

	return fmt.Sprintf("%s_%s.%s", stem, now.Format("2006-01-02_150405"), f)
}

// Render writes the table in the requested format.
func Render(data entity.ReportData, format entity.ReportFormat) ([]byte, error) {
	switch format {
	case entity.FormatXLSX:
		return renderXLSX(data)
	case entity.FormatCSV:
		return renderCSV(data)
	default:
		return nil, fmt.Errorf("%w: unknown format %q", entity.ErrInvalidArgument, format)
	}
}

func renderXLSX(data entity.ReportData) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	if name := sheetName(data.Title); name != "" {
		err := f.SetSheetName(sheet, name)
		if err != nil {
			return nil, fmt.Errorf("rename sheet: %w", err)
		}

		sheet = name
	}

	header := make([]any, 0, len(data.Headers))
	for _, h := range data.Headers {
		header = append(header, h)
	}

	err := f.SetSheetRow(sheet, "A1", &header)
	if err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	if len(data.Headers) > 0 {
		err = styleHeader(f, sheet, len(data.Headers))
		if err != nil {
			return nil, err
		}
	}

	for i, r := range data.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("cell name: %w", err)
		}

		row := make([]any, 0, len(r))
		for _, v := range r {
			row = append(row, xlsxValue(v))
		}

		err = f.SetSheetRow(sheet, cell, &row)
		if err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	buf := &bytes.Buffer{}

	err = f.Write(buf)
	if err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}

	return buf.Bytes(), nil
}

func styleHeader(f *excelize.File, sheet string, columns int) error {
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E5E7EB"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	last, err := excelize.CoordinatesToCellName(columns, 1)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}

	err = f.SetCellStyle(sheet, "A1", last, style)
	if err != nil {
		return fmt.Errorf("set header style: %w", err)
	}

	lastCol, err := excelize.ColumnNumberToName(columns)
	if err != nil {
		return fmt.Errorf("column name: %w", err)
	}

	err = f.SetColWidth(sheet, "A", lastCol, 20)
	if err != nil {
		return fmt.Errorf("column width: %w", err)
	}

	return nil
}

func renderCSV(data entity.ReportData) ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteString(utf8BOM)

	w := csv.NewWriter(buf)

	err := w.Write(data.Headers)
	if err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, r := range data.Rows {
		rec := make([]string, 0, len(r))
		for _, v := range r {
			rec = append(rec, text(v))
		}

		err = w.Write(rec)
		if err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	w.Flush()

	err = w.Error()
	if err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}

	return buf.Bytes(), nil
}

// xlsxValue keeps numbers numeric so the sheet can sum them.
func xlsxValue(v any) any {
	switch t := v.(type) {
	case nil:
		return ""
	case decimal.Decimal:
		return t.InexactFloat64()
	case *decimal.Decimal:
		if t == nil {
			return ""
		}

		return t.InexactFloat64()
	case time.Time, *time.Time, uuid.UUID, *uuid.UUID:
		return text(v)
	default:
		return v
	}
}

func text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case decimal.Decimal:
		return t.String()
	case *decimal.Decimal:
		if t == nil {
			return ""
		}

		return t.String()
	case time.Time:
		if t.IsZero() {
			return ""
		}

		return t.Format(dateLayout)
	case *time.Time:
		if t == nil || t.IsZero() {
			return ""
		}

		return t.Format(dateLayout)
	case uuid.UUID:
		return t.String()
	case *uuid.UUID:
		if t == nil {
			return ""
		}

		return t.String()
	default:
		return fmt.Sprint(v)
	}
}

func sheetName(title string) string {
	r := []rune(title)
	if len(r) > maxSheetName {
		r = r[:maxSheetName]
	}

	return string(r)
}
