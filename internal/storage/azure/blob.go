// Package azure implements the blob store on Azure Blob Storage.
package azure

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"time"

	azstorage "github.com/Azure/azure-sdk-for-go/storage"
	"github.com/google/uuid"

	"github.com/invoiceworks/invoice-pipeline/internal/common"
	"github.com/invoiceworks/invoice-pipeline/internal/storage"
)

type Config struct {
	AccountName string
	AccountKey  string
	Container   string
}

type BlobStore struct {
	container *azstorage.Container
	cfg       Config
	log       *slog.Logger
}

var _ storage.BlobStore = (*BlobStore)(nil)

func NewBlobStore(cfg Config, logger *slog.Logger) (*BlobStore, error) {
	if cfg.AccountName == "" || cfg.AccountKey == "" {
		return nil, fmt.Errorf("blob storage account name and key are required")
	}
	if cfg.Container == "" {
		cfg.Container = "invoices"
	}
	if logger == nil {
		logger = slog.Default()
	}
	client, err := azstorage.NewBasicClient(cfg.AccountName, cfg.AccountKey)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	svc := client.GetBlobService()
	return &BlobStore{
		container: svc.GetContainerReference(cfg.Container),
		cfg:       cfg,
		log:       logger,
	}, nil
}

// Put uploads content under "YYYY/MM/<uuid>-<fileName>".
func (s *BlobStore) Put(ctx context.Context, content []byte, fileName, contentType string) (string, error) {
	name := blobName(fileName)
	start := time.Now()

	blob := s.container.GetBlobReference(name)
	blob.Properties.ContentType = contentType
	err := blob.CreateBlockBlobFromReader(bytes.NewReader(content), nil)
	if err != nil {
		s.log.Error("blob.put.error", "blob", name, "error", err)
		return "", mapStorageError(err)
	}

	s.log.Info("blob.put.ok",
		"blob", name,
		"bytes", len(content),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return blob.GetURL(), nil
}

func (s *BlobStore) Get(ctx context.Context, blobURL string) ([]byte, string, error) {
	name, err := s.blobNameFromURL(blobURL)
	if err != nil {
		return nil, "", err
	}

	blob := s.container.GetBlobReference(name)
	rc, err := blob.Get(nil)
	if err != nil {
		return nil, "", mapStorageError(err)
	}
	defer func() {
		if err := rc.Close(); err != nil {
			s.log.Warn("blob body close error", "blob", name, "error", err)
		}
	}()

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, "", fmt.Errorf("read blob %s: %w", name, err)
	}
	return content, blob.Properties.ContentType, nil
}

func (s *BlobStore) SASURL(ctx context.Context, blobURL string, ttl time.Duration) (string, error) {
	name, err := s.blobNameFromURL(blobURL)
	if err != nil {
		return "", err
	}

	blob := s.container.GetBlobReference(name)
	sas, err := blob.GetSASURI(azstorage.BlobSASOptions{
		SASOptions: azstorage.SASOptions{
			Start:  time.Now().Add(-5 * time.Minute),
			Expiry: time.Now().Add(ttl),
		},
		BlobServiceSASPermissions: azstorage.BlobServiceSASPermissions{
			Read: true,
		},
	})
	if err != nil {
		return "", mapStorageError(err)
	}
	return sas, nil
}

func blobName(fileName string) string {
	now := time.Now().UTC()
	return fmt.Sprintf("%04d/%02d/%s-%s", now.Year(), now.Month(), uuid.New().String(), fileName)
}

// blobNameFromURL extracts the blob name from a full blob URL, validating
// that it points into this store's container.
func (s *BlobStore) blobNameFromURL(blobURL string) (string, error) {
	u, err := url.Parse(blobURL)
	if err != nil {
		return "", common.ValidationErrorf("invalid blob url: %v", err)
	}
	path := strings.TrimPrefix(u.Path, "/")
	container, name, ok := strings.Cut(path, "/")
	if !ok || name == "" {
		return "", common.ValidationErrorf("blob url has no blob path: %s", blobURL)
	}
	if container != s.cfg.Container {
		return "", common.ValidationErrorf("blob url container %q does not match %q", container, s.cfg.Container)
	}
	return name, nil
}

func mapStorageError(err error) error {
	var azErr azstorage.AzureStorageServiceError
	if errors.As(err, &azErr) && azErr.StatusCode == 404 {
		return common.NotFoundError("blob not found")
	}
	return common.UpstreamError("blob storage request failed", err)
}
