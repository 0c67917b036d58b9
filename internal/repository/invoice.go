package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/invoiceworks/invoice-pipeline/gen/ent"
	"github.com/invoiceworks/invoice-pipeline/gen/ent/invoice"
	"github.com/invoiceworks/invoice-pipeline/internal/common"
	"github.com/invoiceworks/invoice-pipeline/internal/entity"
	"github.com/invoiceworks/invoice-pipeline/internal/utils"
)

type InvoiceRepository interface {
	// Save persists a processed record and returns the stored entity.
	Save(ctx context.Context, rec *entity.InvoiceRecord) (*entity.InvoiceRecord, error)
	// ListAll returns all records, newest upload first.
	ListAll(ctx context.Context) ([]*entity.InvoiceRecord, error)
	// GetByID fetches one record by id scoped to a vendor.
	GetByID(ctx context.Context, id uuid.UUID, vendorID string) (*entity.InvoiceRecord, error)
}

type invoiceRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewInvoiceRepository(client *ent.Client, logger *slog.Logger) InvoiceRepository {
	return &invoiceRepository{
		client: client,
		logger: logger,
	}
}

func (r *invoiceRepository) Save(ctx context.Context, rec *entity.InvoiceRecord) (*entity.InvoiceRecord, error) {
	builder := r.client.Invoice.Create().
		SetVendorID(rec.VendorID).
		SetFileName(rec.FileName).
		SetBlobURL(rec.BlobURL).
		SetUploadDate(rec.UploadDate)
	if rec.ID != uuid.Nil {
		builder = builder.SetID(rec.ID)
	}
	if rec.ExtractedData != nil {
		builder = builder.SetExtractedData(rec.ExtractedData)
	}
	if rec.Classification != nil {
		builder = builder.SetClassification(rec.Classification)
	}
	if rec.ProcessingMetadata != nil {
		builder = builder.SetProcessingMetadata(rec.ProcessingMetadata)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to save invoice", "vendor_id", rec.VendorID, "error", err)
		return nil, err
	}
	return utils.ToInvoiceRecord(row), nil
}

func (r *invoiceRepository) ListAll(ctx context.Context) ([]*entity.InvoiceRecord, error) {
	rows, err := r.client.Invoice.Query().
		Order(ent.Desc(invoice.FieldUploadDate)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list invoices", "error", err)
		return nil, err
	}
	return utils.ToInvoiceRecords(rows), nil
}

func (r *invoiceRepository) GetByID(ctx context.Context, id uuid.UUID, vendorID string) (*entity.InvoiceRecord, error) {
	row, err := r.client.Invoice.Query().
		Where(invoice.ID(id), invoice.VendorID(vendorID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("invoice not found")
		}
		r.logger.Error("failed to get invoice", "id", id, "vendor_id", vendorID, "error", err)
		return nil, err
	}
	return utils.ToInvoiceRecord(row), nil
}
