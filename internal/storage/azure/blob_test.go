package azure

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlobNameFormat(t *testing.T) {
	name := blobName("invoice.pdf")

	re := regexp.MustCompile(`^\d{4}/\d{2}/[0-9a-f-]{36}-invoice\.pdf$`)
	assert.Regexp(t, re, name)
}

func TestBlobNameFromURL(t *testing.T) {
	s := &BlobStore{cfg: Config{Container: "invoices"}}

	name, err := s.blobNameFromURL("https://acct.blob.core.windows.net/invoices/2026/08/abc-invoice.pdf")
	require.NoError(t, err)
	assert.Equal(t, "2026/08/abc-invoice.pdf", name)
}

func TestBlobNameFromURLWrongContainer(t *testing.T) {
	s := &BlobStore{cfg: Config{Container: "invoices"}}

	_, err := s.blobNameFromURL("https://acct.blob.core.windows.net/other/2026/08/abc.pdf")
	assert.Error(t, err)
}

func TestBlobNameFromURLNoBlobPath(t *testing.T) {
	s := &BlobStore{cfg: Config{Container: "invoices"}}

	_, err := s.blobNameFromURL("https://acct.blob.core.windows.net/invoices")
	assert.Error(t, err)
}
