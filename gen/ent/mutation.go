// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/invoiceworks/invoice-pipeline/gen/ent/invoice"
	"github.com/invoiceworks/invoice-pipeline/gen/ent/predicate"
	"github.com/invoiceworks/invoice-pipeline/internal/entity"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeInvoice = "Invoice"
)

// InvoiceMutation represents an operation that mutates the Invoice nodes in the graph.
type InvoiceMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	vendor_id           *string
	file_name           *string
	blob_url            *string
	upload_date         *time.Time
	extracted_data      **entity.ExtractedData
	classification      **entity.Classification
	processing_metadata **entity.ProcessingMetadata
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*Invoice, error)
	predicates          []predicate.Invoice
}

var _ ent.Mutation = (*InvoiceMutation)(nil)

// invoiceOption allows management of the mutation configuration using functional options.
type invoiceOption func(*InvoiceMutation)

// newInvoiceMutation creates new mutation for the Invoice entity.
func newInvoiceMutation(c config, op Op, opts ...invoiceOption) *InvoiceMutation {
	m := &InvoiceMutation{
		config:        c,
		op:            op,
		typ:           TypeInvoice,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInvoiceID sets the ID field of the mutation.
func withInvoiceID(id uuid.UUID) invoiceOption {
	return func(m *InvoiceMutation) {
		var (
			err   error
			once  sync.Once
			value *Invoice
		)
		m.oldValue = func(ctx context.Context) (*Invoice, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Invoice.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInvoice sets the old Invoice of the mutation.
func withInvoice(node *Invoice) invoiceOption {
	return func(m *InvoiceMutation) {
		m.oldValue = func(context.Context) (*Invoice, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InvoiceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InvoiceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Invoice entities.
func (m *InvoiceMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InvoiceMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InvoiceMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Invoice.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetVendorID sets the "vendor_id" field.
func (m *InvoiceMutation) SetVendorID(s string) {
	m.vendor_id = &s
}

// VendorID returns the value of the "vendor_id" field in the mutation.
func (m *InvoiceMutation) VendorID() (r string, exists bool) {
	v := m.vendor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVendorID returns the old "vendor_id" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldVendorID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVendorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVendorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVendorID: %w", err)
	}
	return oldValue.VendorID, nil
}

// ResetVendorID resets all changes to the "vendor_id" field.
func (m *InvoiceMutation) ResetVendorID() {
	m.vendor_id = nil
}

// SetFileName sets the "file_name" field.
func (m *InvoiceMutation) SetFileName(s string) {
	m.file_name = &s
}

// FileName returns the value of the "file_name" field in the mutation.
func (m *InvoiceMutation) FileName() (r string, exists bool) {
	v := m.file_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFileName returns the old "file_name" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldFileName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileName: %w", err)
	}
	return oldValue.FileName, nil
}

// ResetFileName resets all changes to the "file_name" field.
func (m *InvoiceMutation) ResetFileName() {
	m.file_name = nil
}

// SetBlobURL sets the "blob_url" field.
func (m *InvoiceMutation) SetBlobURL(s string) {
	m.blob_url = &s
}

// BlobURL returns the value of the "blob_url" field in the mutation.
func (m *InvoiceMutation) BlobURL() (r string, exists bool) {
	v := m.blob_url
	if v == nil {
		return
	}
	return *v, true
}

// OldBlobURL returns the old "blob_url" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldBlobURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlobURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlobURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlobURL: %w", err)
	}
	return oldValue.BlobURL, nil
}

// ResetBlobURL resets all changes to the "blob_url" field.
func (m *InvoiceMutation) ResetBlobURL() {
	m.blob_url = nil
}

// SetUploadDate sets the "upload_date" field.
func (m *InvoiceMutation) SetUploadDate(t time.Time) {
	m.upload_date = &t
}

// UploadDate returns the value of the "upload_date" field in the mutation.
func (m *InvoiceMutation) UploadDate() (r time.Time, exists bool) {
	v := m.upload_date
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadDate returns the old "upload_date" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldUploadDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadDate: %w", err)
	}
	return oldValue.UploadDate, nil
}

// ResetUploadDate resets all changes to the "upload_date" field.
func (m *InvoiceMutation) ResetUploadDate() {
	m.upload_date = nil
}

// SetExtractedData sets the "extracted_data" field.
func (m *InvoiceMutation) SetExtractedData(ed *entity.ExtractedData) {
	m.extracted_data = &ed
}

// ExtractedData returns the value of the "extracted_data" field in the mutation.
func (m *InvoiceMutation) ExtractedData() (r *entity.ExtractedData, exists bool) {
	v := m.extracted_data
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedData returns the old "extracted_data" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldExtractedData(ctx context.Context) (v *entity.ExtractedData, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedData: %w", err)
	}
	return oldValue.ExtractedData, nil
}

// ClearExtractedData clears the value of the "extracted_data" field.
func (m *InvoiceMutation) ClearExtractedData() {
	m.extracted_data = nil
	m.clearedFields[invoice.FieldExtractedData] = struct{}{}
}

// ExtractedDataCleared returns if the "extracted_data" field was cleared in this mutation.
func (m *InvoiceMutation) ExtractedDataCleared() bool {
	_, ok := m.clearedFields[invoice.FieldExtractedData]
	return ok
}

// ResetExtractedData resets all changes to the "extracted_data" field.
func (m *InvoiceMutation) ResetExtractedData() {
	m.extracted_data = nil
	delete(m.clearedFields, invoice.FieldExtractedData)
}

// SetClassification sets the "classification" field.
func (m *InvoiceMutation) SetClassification(e *entity.Classification) {
	m.classification = &e
}

// Classification returns the value of the "classification" field in the mutation.
func (m *InvoiceMutation) Classification() (r *entity.Classification, exists bool) {
	v := m.classification
	if v == nil {
		return
	}
	return *v, true
}

// OldClassification returns the old "classification" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldClassification(ctx context.Context) (v *entity.Classification, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClassification is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClassification requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClassification: %w", err)
	}
	return oldValue.Classification, nil
}

// ClearClassification clears the value of the "classification" field.
func (m *InvoiceMutation) ClearClassification() {
	m.classification = nil
	m.clearedFields[invoice.FieldClassification] = struct{}{}
}

// ClassificationCleared returns if the "classification" field was cleared in this mutation.
func (m *InvoiceMutation) ClassificationCleared() bool {
	_, ok := m.clearedFields[invoice.FieldClassification]
	return ok
}

// ResetClassification resets all changes to the "classification" field.
func (m *InvoiceMutation) ResetClassification() {
	m.classification = nil
	delete(m.clearedFields, invoice.FieldClassification)
}

// SetProcessingMetadata sets the "processing_metadata" field.
func (m *InvoiceMutation) SetProcessingMetadata(em *entity.ProcessingMetadata) {
	m.processing_metadata = &em
}

// ProcessingMetadata returns the value of the "processing_metadata" field in the mutation.
func (m *InvoiceMutation) ProcessingMetadata() (r *entity.ProcessingMetadata, exists bool) {
	v := m.processing_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingMetadata returns the old "processing_metadata" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldProcessingMetadata(ctx context.Context) (v *entity.ProcessingMetadata, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingMetadata: %w", err)
	}
	return oldValue.ProcessingMetadata, nil
}

// ClearProcessingMetadata clears the value of the "processing_metadata" field.
func (m *InvoiceMutation) ClearProcessingMetadata() {
	m.processing_metadata = nil
	m.clearedFields[invoice.FieldProcessingMetadata] = struct{}{}
}

// ProcessingMetadataCleared returns if the "processing_metadata" field was cleared in this mutation.
func (m *InvoiceMutation) ProcessingMetadataCleared() bool {
	_, ok := m.clearedFields[invoice.FieldProcessingMetadata]
	return ok
}

// ResetProcessingMetadata resets all changes to the "processing_metadata" field.
func (m *InvoiceMutation) ResetProcessingMetadata() {
	m.processing_metadata = nil
	delete(m.clearedFields, invoice.FieldProcessingMetadata)
}

// Where appends a list predicates to the InvoiceMutation builder.
func (m *InvoiceMutation) Where(ps ...predicate.Invoice) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InvoiceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InvoiceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Invoice, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InvoiceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InvoiceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Invoice).
func (m *InvoiceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InvoiceMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.vendor_id != nil {
		fields = append(fields, invoice.FieldVendorID)
	}
	if m.file_name != nil {
		fields = append(fields, invoice.FieldFileName)
	}
	if m.blob_url != nil {
		fields = append(fields, invoice.FieldBlobURL)
	}
	if m.upload_date != nil {
		fields = append(fields, invoice.FieldUploadDate)
	}
	if m.extracted_data != nil {
		fields = append(fields, invoice.FieldExtractedData)
	}
	if m.classification != nil {
		fields = append(fields, invoice.FieldClassification)
	}
	if m.processing_metadata != nil {
		fields = append(fields, invoice.FieldProcessingMetadata)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InvoiceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case invoice.FieldVendorID:
		return m.VendorID()
	case invoice.FieldFileName:
		return m.FileName()
	case invoice.FieldBlobURL:
		return m.BlobURL()
	case invoice.FieldUploadDate:
		return m.UploadDate()
	case invoice.FieldExtractedData:
		return m.ExtractedData()
	case invoice.FieldClassification:
		return m.Classification()
	case invoice.FieldProcessingMetadata:
		return m.ProcessingMetadata()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InvoiceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case invoice.FieldVendorID:
		return m.OldVendorID(ctx)
	case invoice.FieldFileName:
		return m.OldFileName(ctx)
	case invoice.FieldBlobURL:
		return m.OldBlobURL(ctx)
	case invoice.FieldUploadDate:
		return m.OldUploadDate(ctx)
	case invoice.FieldExtractedData:
		return m.OldExtractedData(ctx)
	case invoice.FieldClassification:
		return m.OldClassification(ctx)
	case invoice.FieldProcessingMetadata:
		return m.OldProcessingMetadata(ctx)
	}
	return nil, fmt.Errorf("unknown Invoice field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvoiceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case invoice.FieldVendorID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVendorID(v)
		return nil
	case invoice.FieldFileName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileName(v)
		return nil
	case invoice.FieldBlobURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlobURL(v)
		return nil
	case invoice.FieldUploadDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadDate(v)
		return nil
	case invoice.FieldExtractedData:
		v, ok := value.(*entity.ExtractedData)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedData(v)
		return nil
	case invoice.FieldClassification:
		v, ok := value.(*entity.Classification)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClassification(v)
		return nil
	case invoice.FieldProcessingMetadata:
		v, ok := value.(*entity.ProcessingMetadata)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingMetadata(v)
		return nil
	}
	return fmt.Errorf("unknown Invoice field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InvoiceMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InvoiceMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvoiceMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Invoice numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InvoiceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(invoice.FieldExtractedData) {
		fields = append(fields, invoice.FieldExtractedData)
	}
	if m.FieldCleared(invoice.FieldClassification) {
		fields = append(fields, invoice.FieldClassification)
	}
	if m.FieldCleared(invoice.FieldProcessingMetadata) {
		fields = append(fields, invoice.FieldProcessingMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InvoiceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InvoiceMutation) ClearField(name string) error {
	switch name {
	case invoice.FieldExtractedData:
		m.ClearExtractedData()
		return nil
	case invoice.FieldClassification:
		m.ClearClassification()
		return nil
	case invoice.FieldProcessingMetadata:
		m.ClearProcessingMetadata()
		return nil
	}
	return fmt.Errorf("unknown Invoice nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InvoiceMutation) ResetField(name string) error {
	switch name {
	case invoice.FieldVendorID:
		m.ResetVendorID()
		return nil
	case invoice.FieldFileName:
		m.ResetFileName()
		return nil
	case invoice.FieldBlobURL:
		m.ResetBlobURL()
		return nil
	case invoice.FieldUploadDate:
		m.ResetUploadDate()
		return nil
	case invoice.FieldExtractedData:
		m.ResetExtractedData()
		return nil
	case invoice.FieldClassification:
		m.ResetClassification()
		return nil
	case invoice.FieldProcessingMetadata:
		m.ResetProcessingMetadata()
		return nil
	}
	return fmt.Errorf("unknown Invoice field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InvoiceMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InvoiceMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InvoiceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InvoiceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InvoiceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InvoiceMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InvoiceMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Invoice unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InvoiceMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Invoice edge %s", name)
}
