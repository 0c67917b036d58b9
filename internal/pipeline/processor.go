// Package pipeline coordinates the invoice processing stages: upload,
// document analysis, heuristic field mapping, classification, and persistence.
package pipeline

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/invoiceworks/invoice-pipeline/constants"
	"github.com/invoiceworks/invoice-pipeline/internal/common"
	"github.com/invoiceworks/invoice-pipeline/internal/docintel"
	"github.com/invoiceworks/invoice-pipeline/internal/entity"
	"github.com/invoiceworks/invoice-pipeline/internal/extract"
	"github.com/invoiceworks/invoice-pipeline/internal/repository"
	"github.com/invoiceworks/invoice-pipeline/internal/storage"
)

// Classifier assigns a category to extracted data. It cannot fail.
type Classifier interface {
	Classify(ctx context.Context, data entity.ExtractedData) entity.Classification
}

type Processor struct {
	Logger     *slog.Logger
	Blobs      storage.BlobStore
	Analyzer   docintel.Analyzer
	Classifier Classifier
	Repo       repository.InvoiceRepository
}

func NewProcessor(logger *slog.Logger, blobs storage.BlobStore, analyzer docintel.Analyzer, classifier Classifier, repo repository.InvoiceRepository) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		Logger:     logger,
		Blobs:      blobs,
		Analyzer:   analyzer,
		Classifier: classifier,
		Repo:       repo,
	}
}

// Process runs one document through the full pipeline and returns the
// persisted record. A failure in upload, analysis, or persistence aborts
// processing; classification degrades to a default instead of failing.
func (p *Processor) Process(ctx context.Context, content []byte, fileName string) (*entity.InvoiceRecord, error) {
	start := time.Now()

	if !constants.AllowedFileName(fileName) {
		return nil, common.ValidationErrorf(
			"invalid file type. allowed types: %s", strings.Join(constants.AllowedExtensionList(), ", "))
	}
	contentType := constants.ContentTypeForFileName(fileName)

	blobURL, err := p.Blobs.Put(ctx, content, fileName, contentType)
	if err != nil {
		p.Logger.Error("pipeline.upload.failed", "file_name", fileName, "err", err)
		return nil, err
	}
	p.Logger.Info("pipeline.upload.ok", "file_name", fileName, "blob_url", blobURL)

	res, err := p.Analyzer.Analyze(ctx, content, contentType)
	if err != nil {
		p.Logger.Error("pipeline.analyze.failed", "file_name", fileName, "err", err)
		return nil, common.WrapError(err, "document analysis failed")
	}
	data := extract.MapFields(res)
	p.Logger.Info("pipeline.extract.ok",
		"file_name", fileName,
		"vendor", data.Vendor,
		"total", data.TotalAmount,
		"currency", data.Currency,
		"line_items", len(data.LineItems),
	)

	classification := p.Classifier.Classify(ctx, data)
	p.Logger.Info("pipeline.classify.ok",
		"file_name", fileName,
		"category", classification.Category,
		"confidence", classification.Confidence,
	)

	end := time.Now().UTC()
	elapsed := end.Sub(start)
	rec := &entity.InvoiceRecord{
		VendorID:       entity.NormalizeVendorID(data.Vendor),
		FileName:       fileName,
		BlobURL:        blobURL,
		UploadDate:     end,
		ExtractedData:  &data,
		Classification: &classification,
		ProcessingMetadata: &entity.ProcessingMetadata{
			ProcessingTime: elapsed.Seconds(),
			Status:         constants.StatusCompleted,
			StartTime:      start.UTC(),
			EndTime:        &end,
		},
	}

	saved, err := p.Repo.Save(ctx, rec)
	if err != nil {
		p.Logger.Error("pipeline.persist.failed", "file_name", fileName, "err", err)
		return nil, common.WrapError(err, "failed to save invoice")
	}
	p.Logger.Info("pipeline.ok",
		"invoice_id", saved.ID,
		"vendor_id", saved.VendorID,
		"elapsed_ms", elapsed.Milliseconds(),
	)
	return saved, nil
}
