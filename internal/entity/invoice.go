package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/invoiceworks/invoice-pipeline/constants"
)

// ExtractedData is the canonical field set produced by the extraction stage.
type ExtractedData struct {
	Vendor        string     `json:"vendor"`
	InvoiceNumber string     `json:"invoiceNumber"`
	InvoiceDate   string     `json:"invoiceDate"`
	TotalAmount   float64    `json:"totalAmount"`
	Currency      string     `json:"currency"`
	LineItems     []LineItem `json:"lineItems,omitempty"`
}

// LineItem is one parsed row of billed goods or services.
// Quantity and UnitPrice stay nil when the source had no value; Amount
// degrades to 0 instead.
type LineItem struct {
	Description string   `json:"description"`
	Quantity    *float64 `json:"quantity,omitempty"`
	UnitPrice   *float64 `json:"unitPrice,omitempty"`
	Amount      float64  `json:"amount"`
}

// Classification is the categorization result. It is always fully
// populated; the engine substitutes a default instead of failing.
type Classification struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning,omitempty"`
}

// ProcessingMetadata records timing and outcome for one pipeline run.
type ProcessingMetadata struct {
	ProcessingTime float64                    `json:"processingTime"` // seconds
	Status         constants.ProcessingStatus `json:"status"`
	ErrorMessage   string                     `json:"errorMessage,omitempty"`
	StartTime      time.Time                  `json:"startTime"`
	EndTime        *time.Time                 `json:"endTime,omitempty"`
}

// InvoiceRecord is the persisted aggregate for one processed upload.
// VendorID is the storage partition key, derived once at assembly time.
type InvoiceRecord struct {
	ID                 uuid.UUID           `json:"id"`
	VendorID           string              `json:"vendorId"`
	FileName           string              `json:"fileName"`
	BlobURL            string              `json:"blobUrl"`
	UploadDate         time.Time           `json:"uploadDate"`
	ExtractedData      *ExtractedData      `json:"extractedData,omitempty"`
	Classification     *Classification     `json:"classification,omitempty"`
	ProcessingMetadata *ProcessingMetadata `json:"processingMetadata,omitempty"`
}
