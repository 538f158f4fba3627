package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/shilohridge/backoffice/internal/domain/models"
	"github.com/shilohridge/backoffice/internal/service/accounting"
)

// Workbook renders an offline .xlsx snapshot of the farm books: one sheet for
// the animal roster and one for the financial summary. Used in demo sessions
// and as a local fallback when the backend export endpoints are unreachable.
func Workbook(items []models.InventoryItem, summary accounting.Summary) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const inventorySheet = "Inventory"
	f.SetSheetName(f.GetSheetName(0), inventorySheet)

	header := []any{"Animal ID", "Type", "Breed", "Sex", "Date of Birth", "Weight", "Status", "Sale Price", "Estimated Value"}
	if err := f.SetSheetRow(inventorySheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write inventory header: %w", err)
	}
	for i, item := range items {
		row := []any{
			item.AnimalID,
			string(item.AnimalType),
			item.Breed,
			item.Sex,
			item.DateOfBirth,
			float64(item.CurrentWeight),
			string(item.Status),
			item.SalePrice.InexactFloat64(),
			item.EstimatedValue.InexactFloat64(),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(inventorySheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write inventory row %d: %w", i+2, err)
		}
	}

	const financeSheet = "Financial Summary"
	if _, err := f.NewSheet(financeSheet); err != nil {
		return nil, err
	}
	rows := [][]any{
		{"Generated", time.Now().Format("2006-01-02")},
		{},
		{"Total Revenue", summary.TotalRevenue.InexactFloat64()},
		{"Total Expenses", summary.TotalExpenses.InexactFloat64()},
		{"Net Profit", summary.NetProfit.InexactFloat64()},
		{},
		{"Expenses by Category"},
	}
	for _, cat := range models.ExpenseCategories {
		if amount, ok := summary.ExpenseByCategory[cat.ID]; ok {
			rows = append(rows, []any{cat.Name, amount.InexactFloat64()})
		}
	}
	rows = append(rows, []any{}, []any{"Revenue by Type"})
	for _, cat := range models.RevenueCategories {
		if amount, ok := summary.RevenueByType[cat.ID]; ok {
			rows = append(rows, []any{cat.Name, amount.InexactFloat64()})
		}
	}
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(financeSheet, cell, &rows[i]); err != nil {
			return nil, fmt.Errorf("write summary row %d: %w", i+1, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
