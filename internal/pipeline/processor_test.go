package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoiceworks/invoice-pipeline/constants"
	"github.com/invoiceworks/invoice-pipeline/internal/common"
	"github.com/invoiceworks/invoice-pipeline/internal/docintel"
	"github.com/invoiceworks/invoice-pipeline/internal/entity"
)

type fakeBlobStore struct {
	putErr error
	putURL string
}

func (f *fakeBlobStore) Put(_ context.Context, _ []byte, _, _ string) (string, error) {
	if f.putErr != nil {
		return "", f.putErr
	}
	return f.putURL, nil
}

func (f *fakeBlobStore) Get(_ context.Context, _ string) ([]byte, string, error) {
	return nil, "", errors.New("not implemented")
}

func (f *fakeBlobStore) SASURL(_ context.Context, _ string, _ time.Duration) (string, error) {
	return "", errors.New("not implemented")
}

type fakeAnalyzer struct {
	res *docintel.AnalysisResult
	err error
}

func (f *fakeAnalyzer) Analyze(_ context.Context, _ []byte, _ string) (*docintel.AnalysisResult, error) {
	return f.res, f.err
}

type fakeClassifier struct {
	result entity.Classification
}

func (f *fakeClassifier) Classify(_ context.Context, _ entity.ExtractedData) entity.Classification {
	return f.result
}

type fakeRepo struct {
	saved   *entity.InvoiceRecord
	saveErr error
}

func (f *fakeRepo) Save(_ context.Context, rec *entity.InvoiceRecord) (*entity.InvoiceRecord, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	out := *rec
	out.ID = uuid.New()
	f.saved = &out
	return &out, nil
}

func (f *fakeRepo) ListAll(_ context.Context) ([]*entity.InvoiceRecord, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeRepo) GetByID(_ context.Context, _ uuid.UUID, _ string) (*entity.InvoiceRecord, error) {
	return nil, errors.New("not implemented")
}

func analysisFixture() *docintel.AnalysisResult {
	return &docintel.AnalysisResult{
		Fields: docintel.FieldBag{
			"VendorName":   docintel.NewTextField("Acme Corp."),
			"InvoiceTotal": docintel.NewNumberField(500, "$500.00"),
		},
		Content: "Invoice from Acme Corp. Total $500.00",
	}
}

func newTestProcessor(blobs *fakeBlobStore, an *fakeAnalyzer, repo *fakeRepo) *Processor {
	cls := &fakeClassifier{result: entity.Classification{
		Category:   string(constants.ProfessionalServices),
		Confidence: 0.9,
		Reasoning:  "consulting",
	}}
	return NewProcessor(nil, blobs, an, cls, repo)
}

func TestProcessHappyPath(t *testing.T) {
	blobs := &fakeBlobStore{putURL: "https://acct.blob.core.windows.net/invoices/2026/08/x-inv.pdf"}
	repo := &fakeRepo{}
	p := newTestProcessor(blobs, &fakeAnalyzer{res: analysisFixture()}, repo)

	rec, err := p.Process(context.Background(), []byte("pdf bytes"), "inv.pdf")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, rec.ID)
	assert.Equal(t, "acme-corp", rec.VendorID)
	assert.Equal(t, "inv.pdf", rec.FileName)
	assert.Equal(t, blobs.putURL, rec.BlobURL)

	require.NotNil(t, rec.ExtractedData)
	assert.Equal(t, "Acme Corp.", rec.ExtractedData.Vendor)
	assert.Equal(t, 500.0, rec.ExtractedData.TotalAmount)
	assert.Equal(t, "USD", rec.ExtractedData.Currency)

	require.NotNil(t, rec.Classification)
	assert.Equal(t, string(constants.ProfessionalServices), rec.Classification.Category)

	require.NotNil(t, rec.ProcessingMetadata)
	assert.Equal(t, constants.StatusCompleted, rec.ProcessingMetadata.Status)
	assert.GreaterOrEqual(t, rec.ProcessingMetadata.ProcessingTime, 0.0)
	require.NotNil(t, rec.ProcessingMetadata.EndTime)
	assert.False(t, rec.ProcessingMetadata.StartTime.After(*rec.ProcessingMetadata.EndTime))
}

func TestProcessRejectsBadExtension(t *testing.T) {
	repo := &fakeRepo{}
	p := newTestProcessor(&fakeBlobStore{}, &fakeAnalyzer{res: analysisFixture()}, repo)

	_, err := p.Process(context.Background(), []byte("x"), "notes.txt")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrValidation)
	assert.Nil(t, repo.saved)
}

func TestProcessUploadFailure(t *testing.T) {
	blobs := &fakeBlobStore{putErr: common.UpstreamError("blob storage request failed", errors.New("timeout"))}
	repo := &fakeRepo{}
	p := newTestProcessor(blobs, &fakeAnalyzer{res: analysisFixture()}, repo)

	_, err := p.Process(context.Background(), []byte("x"), "inv.pdf")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUpstream)
	assert.Nil(t, repo.saved)
}

func TestProcessAnalyzeFailure(t *testing.T) {
	repo := &fakeRepo{}
	p := newTestProcessor(&fakeBlobStore{putURL: "u"}, &fakeAnalyzer{err: errors.New("poll failed")}, repo)

	_, err := p.Process(context.Background(), []byte("x"), "inv.pdf")
	require.Error(t, err)
	assert.Nil(t, repo.saved)
}

func TestProcessPersistFailure(t *testing.T) {
	repo := &fakeRepo{saveErr: errors.New("connection lost")}
	p := newTestProcessor(&fakeBlobStore{putURL: "u"}, &fakeAnalyzer{res: analysisFixture()}, repo)

	_, err := p.Process(context.Background(), []byte("x"), "inv.pdf")
	require.Error(t, err)
}

func TestProcessUnknownVendorPartition(t *testing.T) {
	res := &docintel.AnalysisResult{Fields: docintel.FieldBag{
		"InvoiceTotal": docintel.NewNumberField(10, "$10.00"),
	}}
	repo := &fakeRepo{}
	p := newTestProcessor(&fakeBlobStore{putURL: "u"}, &fakeAnalyzer{res: res}, repo)

	rec, err := p.Process(context.Background(), []byte("x"), "inv.pdf")
	require.NoError(t, err)
	assert.Equal(t, "unknown", rec.VendorID)
}
