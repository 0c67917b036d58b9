package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/invoiceworks/invoice-pipeline/internal/common"
)

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// uploadInvoice accepts a raw document body. The file name comes from the
// X-File-Name header, defaulting to a generated pdf name.
func (s *Server) uploadInvoice(c *gin.Context) {
	content, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}
	if len(content) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body is empty"})
		return
	}

	fileName := c.GetHeader("X-File-Name")
	if fileName == "" {
		fileName = "invoice-" + uuid.New().String() + ".pdf"
	}

	rec, err := s.proc.Process(c.Request.Context(), content, fileName)
	if err != nil {
		s.logger.Error("upload failed", "file_name", fileName, "error", err)
		c.JSON(common.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (s *Server) listInvoices(c *gin.Context) {
	recs, err := s.repo.ListAll(c.Request.Context())
	if err != nil {
		s.logger.Error("list invoices failed", "error", err)
		c.JSON(common.HTTPStatus(err), gin.H{"error": "failed to list invoices"})
		return
	}
	c.JSON(http.StatusOK, recs)
}

func (s *Server) getInvoice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice id"})
		return
	}
	vendorID := c.Query("vendorId")
	if vendorID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing vendorId parameter"})
		return
	}

	rec, err := s.repo.GetByID(c.Request.Context(), id, vendorID)
	if err != nil {
		s.logger.Warn("get invoice failed", "id", id, "vendor_id", vendorID, "error", err)
		c.JSON(common.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (s *Server) getBlobSASURL(c *gin.Context) {
	blobURL := c.Query("blobUrl")
	if blobURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing blobUrl parameter"})
		return
	}

	sasURL, err := s.blobs.SASURL(c.Request.Context(), blobURL, sasExpiry)
	if err != nil {
		s.logger.Warn("sas url generation failed", "blob_url", blobURL, "error", err)
		c.JSON(common.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"sasUrl":           sasURL,
		"expiresInMinutes": int(sasExpiry / time.Minute),
	})
}

// getInvoiceBlob streams the stored document inline.
func (s *Server) getInvoiceBlob(c *gin.Context) {
	id := c.Param("id")
	vendorID := c.Query("vendorId")
	if id == "" || vendorID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing id or vendorId parameter"})
		return
	}
	blobURL := c.Query("blobUrl")
	if blobURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing blobUrl parameter"})
		return
	}

	content, contentType, err := s.blobs.Get(c.Request.Context(), blobURL)
	if err != nil {
		s.logger.Warn("blob download failed", "id", id, "blob_url", blobURL, "error", err)
		c.JSON(common.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=invoice-%s.pdf", id))
	c.Data(http.StatusOK, contentType, content)
}

func (s *Server) exportInvoices(c *gin.Context) {
	b, err := s.exporter.ExportInvoicesXLSX(c.Request.Context())
	if err != nil {
		s.logger.Error("export failed", "error", err)
		c.JSON(common.HTTPStatus(err), gin.H{"error": "failed to export invoices"})
		return
	}
	name := "invoices-" + time.Now().UTC().Format("20060102") + ".xlsx"
	c.Header("Content-Disposition", "attachment; filename="+name)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", b)
}
