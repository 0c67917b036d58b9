// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/invoiceworks/invoice-pipeline/db/ent/schema"
	"github.com/invoiceworks/invoice-pipeline/gen/ent/invoice"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	invoiceFields := schema.Invoice{}.Fields()
	_ = invoiceFields
	// invoiceDescVendorID is the schema descriptor for vendor_id field.
	invoiceDescVendorID := invoiceFields[1].Descriptor()
	// invoice.VendorIDValidator is a validator for the "vendor_id" field. It is called by the builders before save.
	invoice.VendorIDValidator = invoiceDescVendorID.Validators[0].(func(string) error)
	// invoiceDescFileName is the schema descriptor for file_name field.
	invoiceDescFileName := invoiceFields[2].Descriptor()
	// invoice.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	invoice.FileNameValidator = invoiceDescFileName.Validators[0].(func(string) error)
	// invoiceDescBlobURL is the schema descriptor for blob_url field.
	invoiceDescBlobURL := invoiceFields[3].Descriptor()
	// invoice.BlobURLValidator is a validator for the "blob_url" field. It is called by the builders before save.
	invoice.BlobURLValidator = invoiceDescBlobURL.Validators[0].(func(string) error)
	// invoiceDescUploadDate is the schema descriptor for upload_date field.
	invoiceDescUploadDate := invoiceFields[4].Descriptor()
	// invoice.DefaultUploadDate holds the default value on creation for the upload_date field.
	invoice.DefaultUploadDate = invoiceDescUploadDate.Default.(func() time.Time)
	// invoiceDescID is the schema descriptor for id field.
	invoiceDescID := invoiceFields[0].Descriptor()
	// invoice.DefaultID holds the default value on creation for the id field.
	invoice.DefaultID = invoiceDescID.Default.(func() uuid.UUID)
}
