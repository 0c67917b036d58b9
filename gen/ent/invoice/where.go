// Code generated by ent, DO NOT EDIT.

package invoice

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/invoiceworks/invoice-pipeline/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldID, id))
}

// VendorID applies equality check predicate on the "vendor_id" field. It's identical to VendorIDEQ.
func VendorID(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldVendorID, v))
}

// FileName applies equality check predicate on the "file_name" field. It's identical to FileNameEQ.
func FileName(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldFileName, v))
}

// BlobURL applies equality check predicate on the "blob_url" field. It's identical to BlobURLEQ.
func BlobURL(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldBlobURL, v))
}

// UploadDate applies equality check predicate on the "upload_date" field. It's identical to UploadDateEQ.
func UploadDate(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldUploadDate, v))
}

// VendorIDEQ applies the EQ predicate on the "vendor_id" field.
func VendorIDEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldVendorID, v))
}

// VendorIDNEQ applies the NEQ predicate on the "vendor_id" field.
func VendorIDNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldVendorID, v))
}

// VendorIDIn applies the In predicate on the "vendor_id" field.
func VendorIDIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldVendorID, vs...))
}

// VendorIDNotIn applies the NotIn predicate on the "vendor_id" field.
func VendorIDNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldVendorID, vs...))
}

// VendorIDGT applies the GT predicate on the "vendor_id" field.
func VendorIDGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldVendorID, v))
}

// VendorIDGTE applies the GTE predicate on the "vendor_id" field.
func VendorIDGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldVendorID, v))
}

// VendorIDLT applies the LT predicate on the "vendor_id" field.
func VendorIDLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldVendorID, v))
}

// VendorIDLTE applies the LTE predicate on the "vendor_id" field.
func VendorIDLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldVendorID, v))
}

// VendorIDContains applies the Contains predicate on the "vendor_id" field.
func VendorIDContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldVendorID, v))
}

// VendorIDHasPrefix applies the HasPrefix predicate on the "vendor_id" field.
func VendorIDHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldVendorID, v))
}

// VendorIDHasSuffix applies the HasSuffix predicate on the "vendor_id" field.
func VendorIDHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldVendorID, v))
}

// VendorIDEqualFold applies the EqualFold predicate on the "vendor_id" field.
func VendorIDEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldVendorID, v))
}

// VendorIDContainsFold applies the ContainsFold predicate on the "vendor_id" field.
func VendorIDContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldVendorID, v))
}

// FileNameEQ applies the EQ predicate on the "file_name" field.
func FileNameEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldFileName, v))
}

// FileNameNEQ applies the NEQ predicate on the "file_name" field.
func FileNameNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldFileName, v))
}

// FileNameIn applies the In predicate on the "file_name" field.
func FileNameIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldFileName, vs...))
}

// FileNameNotIn applies the NotIn predicate on the "file_name" field.
func FileNameNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldFileName, vs...))
}

// FileNameGT applies the GT predicate on the "file_name" field.
func FileNameGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldFileName, v))
}

// FileNameGTE applies the GTE predicate on the "file_name" field.
func FileNameGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldFileName, v))
}

// FileNameLT applies the LT predicate on the "file_name" field.
func FileNameLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldFileName, v))
}

// FileNameLTE applies the LTE predicate on the "file_name" field.
func FileNameLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldFileName, v))
}

// FileNameContains applies the Contains predicate on the "file_name" field.
func FileNameContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldFileName, v))
}

// FileNameHasPrefix applies the HasPrefix predicate on the "file_name" field.
func FileNameHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldFileName, v))
}

// FileNameHasSuffix applies the HasSuffix predicate on the "file_name" field.
func FileNameHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldFileName, v))
}

// FileNameEqualFold applies the EqualFold predicate on the "file_name" field.
func FileNameEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldFileName, v))
}

// FileNameContainsFold applies the ContainsFold predicate on the "file_name" field.
func FileNameContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldFileName, v))
}

// BlobURLEQ applies the EQ predicate on the "blob_url" field.
func BlobURLEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldBlobURL, v))
}

// BlobURLNEQ applies the NEQ predicate on the "blob_url" field.
func BlobURLNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldBlobURL, v))
}

// BlobURLIn applies the In predicate on the "blob_url" field.
func BlobURLIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldBlobURL, vs...))
}

// BlobURLNotIn applies the NotIn predicate on the "blob_url" field.
func BlobURLNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldBlobURL, vs...))
}

// BlobURLGT applies the GT predicate on the "blob_url" field.
func BlobURLGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldBlobURL, v))
}

// BlobURLGTE applies the GTE predicate on the "blob_url" field.
func BlobURLGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldBlobURL, v))
}

// BlobURLLT applies the LT predicate on the "blob_url" field.
func BlobURLLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldBlobURL, v))
}

// BlobURLLTE applies the LTE predicate on the "blob_url" field.
func BlobURLLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldBlobURL, v))
}

// BlobURLContains applies the Contains predicate on the "blob_url" field.
func BlobURLContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldBlobURL, v))
}

// BlobURLHasPrefix applies the HasPrefix predicate on the "blob_url" field.
func BlobURLHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldBlobURL, v))
}

// BlobURLHasSuffix applies the HasSuffix predicate on the "blob_url" field.
func BlobURLHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldBlobURL, v))
}

// BlobURLEqualFold applies the EqualFold predicate on the "blob_url" field.
func BlobURLEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldBlobURL, v))
}

// BlobURLContainsFold applies the ContainsFold predicate on the "blob_url" field.
func BlobURLContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldBlobURL, v))
}

// UploadDateEQ applies the EQ predicate on the "upload_date" field.
func UploadDateEQ(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldUploadDate, v))
}

// UploadDateNEQ applies the NEQ predicate on the "upload_date" field.
func UploadDateNEQ(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldUploadDate, v))
}

// UploadDateIn applies the In predicate on the "upload_date" field.
func UploadDateIn(vs ...time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldUploadDate, vs...))
}

// UploadDateNotIn applies the NotIn predicate on the "upload_date" field.
func UploadDateNotIn(vs ...time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldUploadDate, vs...))
}

// UploadDateGT applies the GT predicate on the "upload_date" field.
func UploadDateGT(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldUploadDate, v))
}

// UploadDateGTE applies the GTE predicate on the "upload_date" field.
func UploadDateGTE(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldUploadDate, v))
}

// UploadDateLT applies the LT predicate on the "upload_date" field.
func UploadDateLT(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldUploadDate, v))
}

// UploadDateLTE applies the LTE predicate on the "upload_date" field.
func UploadDateLTE(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldUploadDate, v))
}

// ExtractedDataIsNil applies the IsNil predicate on the "extracted_data" field.
func ExtractedDataIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldExtractedData))
}

// ExtractedDataNotNil applies the NotNil predicate on the "extracted_data" field.
func ExtractedDataNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldExtractedData))
}

// ClassificationIsNil applies the IsNil predicate on the "classification" field.
func ClassificationIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldClassification))
}

// ClassificationNotNil applies the NotNil predicate on the "classification" field.
func ClassificationNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldClassification))
}

// ProcessingMetadataIsNil applies the IsNil predicate on the "processing_metadata" field.
func ProcessingMetadataIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldProcessingMetadata))
}

// ProcessingMetadataNotNil applies the NotNil predicate on the "processing_metadata" field.
func ProcessingMetadataNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldProcessingMetadata))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Invoice) predicate.Invoice {
	return predicate.Invoice(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Invoice) predicate.Invoice {
	return predicate.Invoice(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Invoice) predicate.Invoice {
	return predicate.Invoice(sql.NotPredicates(p))
}
