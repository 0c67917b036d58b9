package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/invoiceworks/invoice-pipeline/internal/repository"
)

// Service produces XLSX bytes for invoice exports.
type Service struct {
	repo   repository.InvoiceRepository
	logger *slog.Logger
}

func NewService(repo repository.InvoiceRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// ExportInvoicesXLSX returns an XLSX workbook (as bytes) with one row per
// processed invoice, newest upload first.
func (s *Service) ExportInvoicesXLSX(ctx context.Context) ([]byte, error) {
	start := time.Now()

	recs, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("query invoices: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Invoices"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Upload Date",
		"Vendor",
		"Vendor ID",
		"Invoice Number",
		"Invoice Date",
		"Total",
		"Currency",
		"Category",
		"Confidence",
		"File Name",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range recs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, r.UploadDate.UTC().Format("2006-01-02 15:04"))
		if r.ExtractedData != nil {
			write(2, r.ExtractedData.Vendor)
			write(4, r.ExtractedData.InvoiceNumber)
			write(5, r.ExtractedData.InvoiceDate)
			write(6, r.ExtractedData.TotalAmount)
			write(7, r.ExtractedData.Currency)
		}
		write(3, r.VendorID)
		if r.Classification != nil {
			write(8, r.Classification.Category)
			write(9, r.Classification.Confidence)
		}
		write(10, r.FileName)

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 18) // upload date
	_ = f.SetColWidth(sheet, "B", "C", 24) // vendor, vendor id
	_ = f.SetColWidth(sheet, "D", "E", 16) // invoice number, date
	_ = f.SetColWidth(sheet, "F", "G", 12) // total, currency
	_ = f.SetColWidth(sheet, "H", "H", 24) // category
	_ = f.SetColWidth(sheet, "J", "J", 36) // file name

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(recs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
