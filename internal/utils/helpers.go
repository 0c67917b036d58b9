package utils

import (
	"github.com/invoiceworks/invoice-pipeline/gen/ent"
	"github.com/invoiceworks/invoice-pipeline/internal/entity"
)

// ToInvoiceRecord converts a persisted invoice row into the API entity.
func ToInvoiceRecord(inv *ent.Invoice) *entity.InvoiceRecord {
	if inv == nil {
		return nil
	}
	return &entity.InvoiceRecord{
		ID:                 inv.ID,
		VendorID:           inv.VendorID,
		FileName:           inv.FileName,
		BlobURL:            inv.BlobURL,
		UploadDate:         inv.UploadDate,
		ExtractedData:      inv.ExtractedData,
		Classification:     inv.Classification,
		ProcessingMetadata: inv.ProcessingMetadata,
	}
}

func ToInvoiceRecords(rows []*ent.Invoice) []*entity.InvoiceRecord {
	out := make([]*entity.InvoiceRecord, len(rows))
	for i, inv := range rows {
		out[i] = ToInvoiceRecord(inv)
	}
	return out
}
