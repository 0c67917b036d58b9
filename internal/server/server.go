// Package server exposes the invoice pipeline over HTTP.
package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/invoiceworks/invoice-pipeline/internal/entity"
	"github.com/invoiceworks/invoice-pipeline/internal/export"
	"github.com/invoiceworks/invoice-pipeline/internal/repository"
	"github.com/invoiceworks/invoice-pipeline/internal/storage"
)

const sasExpiry = 60 * time.Minute

// InvoiceProcessor runs one uploaded document through the pipeline.
type InvoiceProcessor interface {
	Process(ctx context.Context, content []byte, fileName string) (*entity.InvoiceRecord, error)
}

type Server struct {
	logger   *slog.Logger
	proc     InvoiceProcessor
	repo     repository.InvoiceRepository
	blobs    storage.BlobStore
	exporter *export.Service
}

func New(logger *slog.Logger, proc InvoiceProcessor, repo repository.InvoiceRepository, blobs storage.BlobStore, exporter *export.Service) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		logger:   logger,
		proc:     proc,
		repo:     repo,
		blobs:    blobs,
		exporter: exporter,
	}
}

// Router builds the gin engine with all routes attached.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", s.health)

	api := r.Group("/api")
	{
		api.POST("/upload", s.uploadInvoice)
		api.GET("/invoices", s.listInvoices)
		api.GET("/invoices/export", s.exportInvoices)
		api.GET("/invoice/:id", s.getInvoice)
		api.GET("/invoice/blob/:id", s.getInvoiceBlob)
		api.GET("/blob/sas", s.getBlobSASURL)
	}
	return r
}
