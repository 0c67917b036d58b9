package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoiceworks/invoice-pipeline/internal/common"
	"github.com/invoiceworks/invoice-pipeline/internal/entity"
	"github.com/invoiceworks/invoice-pipeline/internal/export"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeProcessor struct {
	rec      *entity.InvoiceRecord
	err      error
	fileName string
}

func (f *fakeProcessor) Process(_ context.Context, _ []byte, fileName string) (*entity.InvoiceRecord, error) {
	f.fileName = fileName
	return f.rec, f.err
}

type fakeRepo struct {
	records []*entity.InvoiceRecord
	err     error
}

func (f *fakeRepo) Save(_ context.Context, rec *entity.InvoiceRecord) (*entity.InvoiceRecord, error) {
	return rec, f.err
}

func (f *fakeRepo) ListAll(_ context.Context) ([]*entity.InvoiceRecord, error) {
	return f.records, f.err
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID, vendorID string) (*entity.InvoiceRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, r := range f.records {
		if r.ID == id && r.VendorID == vendorID {
			return r, nil
		}
	}
	return nil, common.NotFoundError("invoice not found")
}

type fakeBlobs struct {
	content     []byte
	contentType string
	sasURL      string
	err         error
}

func (f *fakeBlobs) Put(_ context.Context, _ []byte, _, _ string) (string, error) {
	return "", errors.New("not implemented")
}

func (f *fakeBlobs) Get(_ context.Context, _ string) ([]byte, string, error) {
	return f.content, f.contentType, f.err
}

func (f *fakeBlobs) SASURL(_ context.Context, _ string, _ time.Duration) (string, error) {
	return f.sasURL, f.err
}

func sampleRecord() *entity.InvoiceRecord {
	return &entity.InvoiceRecord{
		ID:         uuid.New(),
		VendorID:   "acme-corp",
		FileName:   "inv.pdf",
		BlobURL:    "https://acct.blob.core.windows.net/invoices/2026/08/x-inv.pdf",
		UploadDate: time.Now().UTC(),
		ExtractedData: &entity.ExtractedData{
			Vendor:      "Acme Corp.",
			TotalAmount: 500,
			Currency:    "USD",
		},
	}
}

func newTestRouter(proc *fakeProcessor, repo *fakeRepo, blobs *fakeBlobs) *gin.Engine {
	s := New(nil, proc, repo, blobs, export.NewService(repo, nil))
	return s.Router()
}

func TestHealthz(t *testing.T) {
	r := newTestRouter(&fakeProcessor{}, &fakeRepo{}, &fakeBlobs{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUploadInvoice(t *testing.T) {
	rec := sampleRecord()
	proc := &fakeProcessor{rec: rec}
	r := newTestRouter(proc, &fakeRepo{}, &fakeBlobs{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/upload", bytes.NewReader([]byte("pdf bytes")))
	req.Header.Set("X-File-Name", "inv.pdf")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "inv.pdf", proc.fileName)

	var got entity.InvoiceRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, "acme-corp", got.VendorID)
}

func TestUploadInvoiceDefaultFileName(t *testing.T) {
	proc := &fakeProcessor{rec: sampleRecord()}
	r := newTestRouter(proc, &fakeRepo{}, &fakeBlobs{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/upload", bytes.NewReader([]byte("pdf bytes")))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Regexp(t, `^invoice-[0-9a-f-]{36}\.pdf$`, proc.fileName)
}

func TestUploadInvoiceEmptyBody(t *testing.T) {
	r := newTestRouter(&fakeProcessor{}, &fakeRepo{}, &fakeBlobs{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/upload", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadInvoiceValidationError(t *testing.T) {
	proc := &fakeProcessor{err: common.ValidationError("invalid file type")}
	r := newTestRouter(proc, &fakeRepo{}, &fakeBlobs{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/upload", bytes.NewReader([]byte("x")))
	req.Header.Set("X-File-Name", "notes.txt")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadInvoiceUpstreamError(t *testing.T) {
	proc := &fakeProcessor{err: common.UpstreamError("blob storage request failed", errors.New("timeout"))}
	r := newTestRouter(proc, &fakeRepo{}, &fakeBlobs{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/upload", bytes.NewReader([]byte("x")))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestListInvoices(t *testing.T) {
	repo := &fakeRepo{records: []*entity.InvoiceRecord{sampleRecord(), sampleRecord()}}
	r := newTestRouter(&fakeProcessor{}, repo, &fakeBlobs{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/invoices", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got []*entity.InvoiceRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}

func TestGetInvoice(t *testing.T) {
	rec := sampleRecord()
	repo := &fakeRepo{records: []*entity.InvoiceRecord{rec}}
	r := newTestRouter(&fakeProcessor{}, repo, &fakeBlobs{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/invoice/"+rec.ID.String()+"?vendorId=acme-corp", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got entity.InvoiceRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, rec.ID, got.ID)
}

func TestGetInvoiceMissingVendorID(t *testing.T) {
	r := newTestRouter(&fakeProcessor{}, &fakeRepo{}, &fakeBlobs{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/invoice/"+uuid.New().String(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetInvoiceNotFound(t *testing.T) {
	r := newTestRouter(&fakeProcessor{}, &fakeRepo{}, &fakeBlobs{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/invoice/"+uuid.New().String()+"?vendorId=nobody", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetBlobSASURL(t *testing.T) {
	blobs := &fakeBlobs{sasURL: "https://acct.blob.core.windows.net/invoices/x?sig=abc"}
	r := newTestRouter(&fakeProcessor{}, &fakeRepo{}, blobs)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/blob/sas?blobUrl=https://acct.blob.core.windows.net/invoices/x", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got struct {
		SASURL           string `json:"sasUrl"`
		ExpiresInMinutes int    `json:"expiresInMinutes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, blobs.sasURL, got.SASURL)
	assert.Equal(t, 60, got.ExpiresInMinutes)
}

func TestGetBlobSASURLMissingParam(t *testing.T) {
	r := newTestRouter(&fakeProcessor{}, &fakeRepo{}, &fakeBlobs{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/blob/sas", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetInvoiceBlob(t *testing.T) {
	blobs := &fakeBlobs{content: []byte("pdf bytes"), contentType: "application/pdf"}
	r := newTestRouter(&fakeProcessor{}, &fakeRepo{}, blobs)

	id := uuid.New().String()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/invoice/blob/"+id+"?vendorId=acme-corp&blobUrl=https://acct.blob.core.windows.net/invoices/x", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "inline")
	assert.Equal(t, []byte("pdf bytes"), w.Body.Bytes())
}

func TestGetInvoiceBlobNotFound(t *testing.T) {
	blobs := &fakeBlobs{err: common.NotFoundError("blob not found")}
	r := newTestRouter(&fakeProcessor{}, &fakeRepo{}, blobs)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/invoice/blob/"+uuid.New().String()+"?vendorId=a&blobUrl=u", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExportInvoices(t *testing.T) {
	repo := &fakeRepo{records: []*entity.InvoiceRecord{sampleRecord()}}
	r := newTestRouter(&fakeProcessor{}, repo, &fakeBlobs{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/invoices/export", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")
	assert.NotEmpty(t, w.Body.Bytes())
}
