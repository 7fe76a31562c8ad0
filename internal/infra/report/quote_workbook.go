package report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"tarifario/internal/pkg/errs"
	"tarifario/internal/usecase/queries"
)

const quoteSheet = "Quote"

// QuoteWorkbook renders an allocation result as an xlsx workbook: one row per
// night with its cost, tax and sale columns, followed by a totals block.
type QuoteWorkbook struct{}

func NewQuoteWorkbook() *QuoteWorkbook {
	return &QuoteWorkbook{}
}

func (w *QuoteWorkbook) Render(hotel *queries.HotelView, quote *queries.QuoteView) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(quoteSheet)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create quote sheet")
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, errs.Wrap(err, "failed to drop default sheet")
	}

	f.SetCellValue(quoteSheet, "A1", hotel.Name)
	f.SetCellValue(quoteSheet, "B1", hotel.Destination)
	f.SetCellValue(quoteSheet, "A2", "Category")
	f.SetCellValue(quoteSheet, "B2", quote.Tariff.Category)
	f.SetCellValue(quoteSheet, "C2", quote.Tariff.Scope)
	f.SetCellValue(quoteSheet, "A3", "Check-in")
	f.SetCellValue(quoteSheet, "B3", quote.CheckIn.Format("2006-01-02"))
	f.SetCellValue(quoteSheet, "A4", "Check-out")
	f.SetCellValue(quoteSheet, "B4", quote.CheckOut.Format("2006-01-02"))

	headers := []string{"Night", "Cost", "Taxes", "Cost w/ taxes", "Sale subtotal", "Sale tax", "Sale total"}
	const headerRow = 6
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, headerRow)
		f.SetCellValue(quoteSheet, cell, header)
	}

	for i, night := range quote.Nights {
		row := headerRow + 1 + i
		taxes := night.TotalWithTaxes.Sub(night.BaseCost)
		f.SetCellValue(quoteSheet, fmt.Sprintf("A%d", row), night.Night)
		f.SetCellValue(quoteSheet, fmt.Sprintf("B%d", row), night.BaseCost.String())
		f.SetCellValue(quoteSheet, fmt.Sprintf("C%d", row), taxes.String())
		f.SetCellValue(quoteSheet, fmt.Sprintf("D%d", row), night.TotalWithTaxes.String())
		f.SetCellValue(quoteSheet, fmt.Sprintf("E%d", row), night.SaleSubtotal.String())
		f.SetCellValue(quoteSheet, fmt.Sprintf("F%d", row), night.SaleTax.String())
		f.SetCellValue(quoteSheet, fmt.Sprintf("G%d", row), night.SaleTotal.String())
	}

	summaryRow := headerRow + len(quote.Nights) + 2
	f.SetCellValue(quoteSheet, fmt.Sprintf("A%d", summaryRow), "Total sale")
	f.SetCellValue(quoteSheet, fmt.Sprintf("B%d", summaryRow), quote.Summary.TotalSale.String())
	f.SetCellValue(quoteSheet, fmt.Sprintf("A%d", summaryRow+1), "Total cost w/ taxes")
	f.SetCellValue(quoteSheet, fmt.Sprintf("B%d", summaryRow+1), quote.Summary.TotalCostWithTaxes.String())
	f.SetCellValue(quoteSheet, fmt.Sprintf("A%d", summaryRow+2), "Markup %")
	if quote.Summary.MarkupPercent != nil {
		f.SetCellValue(quoteSheet, fmt.Sprintf("B%d", summaryRow+2), quote.Summary.MarkupPercent.String())
	} else {
		f.SetCellValue(quoteSheet, fmt.Sprintf("B%d", summaryRow+2), "n/a")
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, errs.Wrap(err, "failed to write quote workbook")
	}
	return buf.Bytes(), nil
}
