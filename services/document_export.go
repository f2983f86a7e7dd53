package services

import (
	"bytes"
	"context"
	"fmt"

	"legal_wizard_go/models"
	"legal_wizard_go/services/i18n"

	"github.com/xuri/excelize/v2"
)

// XLSXContentType is the MIME type of the spreadsheet export
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportFormDataXLSX writes the verified data as a two-column sheet (field,
// value) followed by the selected documents. Labels follow the context locale.
func ExportFormDataXLSX(ctx context.Context, form models.FormData, types []models.DocumentType) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := i18n.T(ctx, "export.xlsx.sheet")
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	if i18n.Direction(i18n.GetLocale(ctx)) == "rtl" {
		rtl := true
		if err := f.SetSheetView(sheet, 0, &excelize.ViewOptions{RightToLeft: &rtl}); err != nil {
			return nil, fmt.Errorf("failed to set sheet direction: %w", err)
		}
	}

	f.SetCellValue(sheet, "A1", i18n.T(ctx, "export.xlsx.field"))
	f.SetCellValue(sheet, "B1", i18n.T(ctx, "export.xlsx.value"))

	row := 2
	for _, field := range models.FormFields {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), i18n.T(ctx, "form."+field.Key))
		// Stored as text so ID and account numbers keep leading zeros
		f.SetCellStr(sheet, fmt.Sprintf("B%d", row), field.Get(&form))
		row++
	}

	row++
	docRow := row
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), i18n.T(ctx, "export.xlsx.documents"))
	for _, d := range types {
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), i18n.T(ctx, d.I18nKey()))
		row++
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "B1", headerStyle)
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", docRow), fmt.Sprintf("A%d", docRow), headerStyle)
	f.SetColWidth(sheet, "A", "A", 30)
	f.SetColWidth(sheet, "B", "B", 60)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write excel buffer: %w", err)
	}
	return buf, nil
}
