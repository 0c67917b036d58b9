// Code generated by ent, DO NOT EDIT.

package invoice

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the invoice type in the database.
	Label = "invoice"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldVendorID holds the string denoting the vendor_id field in the database.
	FieldVendorID = "vendor_id"
	// FieldFileName holds the string denoting the file_name field in the database.
	FieldFileName = "file_name"
	// FieldBlobURL holds the string denoting the blob_url field in the database.
	FieldBlobURL = "blob_url"
	// FieldUploadDate holds the string denoting the upload_date field in the database.
	FieldUploadDate = "upload_date"
	// FieldExtractedData holds the string denoting the extracted_data field in the database.
	FieldExtractedData = "extracted_data"
	// FieldClassification holds the string denoting the classification field in the database.
	FieldClassification = "classification"
	// FieldProcessingMetadata holds the string denoting the processing_metadata field in the database.
	FieldProcessingMetadata = "processing_metadata"
	// Table holds the table name of the invoice in the database.
	Table = "invoices"
)

// Columns holds all SQL columns for invoice fields.
var Columns = []string{
	FieldID,
	FieldVendorID,
	FieldFileName,
	FieldBlobURL,
	FieldUploadDate,
	FieldExtractedData,
	FieldClassification,
	FieldProcessingMetadata,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// VendorIDValidator is a validator for the "vendor_id" field. It is called by the builders before save.
	VendorIDValidator func(string) error
	// FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	FileNameValidator func(string) error
	// BlobURLValidator is a validator for the "blob_url" field. It is called by the builders before save.
	BlobURLValidator func(string) error
	// DefaultUploadDate holds the default value on creation for the "upload_date" field.
	DefaultUploadDate func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Invoice queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByVendorID orders the results by the vendor_id field.
func ByVendorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVendorID, opts...).ToFunc()
}

// ByFileName orders the results by the file_name field.
func ByFileName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileName, opts...).ToFunc()
}

// ByBlobURL orders the results by the blob_url field.
func ByBlobURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlobURL, opts...).ToFunc()
}

// ByUploadDate orders the results by the upload_date field.
func ByUploadDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUploadDate, opts...).ToFunc()
}
