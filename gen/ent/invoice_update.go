// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/invoiceworks/invoice-pipeline/gen/ent/invoice"
	"github.com/invoiceworks/invoice-pipeline/gen/ent/predicate"
	"github.com/invoiceworks/invoice-pipeline/internal/entity"
)

// InvoiceUpdate is the builder for updating Invoice entities.
type InvoiceUpdate struct {
	config
	hooks    []Hook
	mutation *InvoiceMutation
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (_u *InvoiceUpdate) Where(ps ...predicate.Invoice) *InvoiceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVendorID sets the "vendor_id" field.
func (_u *InvoiceUpdate) SetVendorID(v string) *InvoiceUpdate {
	_u.mutation.SetVendorID(v)
	return _u
}

// SetNillableVendorID sets the "vendor_id" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableVendorID(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetVendorID(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *InvoiceUpdate) SetFileName(v string) *InvoiceUpdate {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableFileName(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetBlobURL sets the "blob_url" field.
func (_u *InvoiceUpdate) SetBlobURL(v string) *InvoiceUpdate {
	_u.mutation.SetBlobURL(v)
	return _u
}

// SetNillableBlobURL sets the "blob_url" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableBlobURL(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetBlobURL(*v)
	}
	return _u
}

// SetExtractedData sets the "extracted_data" field.
func (_u *InvoiceUpdate) SetExtractedData(v *entity.ExtractedData) *InvoiceUpdate {
	_u.mutation.SetExtractedData(v)
	return _u
}

// ClearExtractedData clears the value of the "extracted_data" field.
func (_u *InvoiceUpdate) ClearExtractedData() *InvoiceUpdate {
	_u.mutation.ClearExtractedData()
	return _u
}

// SetClassification sets the "classification" field.
func (_u *InvoiceUpdate) SetClassification(v *entity.Classification) *InvoiceUpdate {
	_u.mutation.SetClassification(v)
	return _u
}

// ClearClassification clears the value of the "classification" field.
func (_u *InvoiceUpdate) ClearClassification() *InvoiceUpdate {
	_u.mutation.ClearClassification()
	return _u
}

// SetProcessingMetadata sets the "processing_metadata" field.
func (_u *InvoiceUpdate) SetProcessingMetadata(v *entity.ProcessingMetadata) *InvoiceUpdate {
	_u.mutation.SetProcessingMetadata(v)
	return _u
}

// ClearProcessingMetadata clears the value of the "processing_metadata" field.
func (_u *InvoiceUpdate) ClearProcessingMetadata() *InvoiceUpdate {
	_u.mutation.ClearProcessingMetadata()
	return _u
}

// Mutation returns the InvoiceMutation object of the builder.
func (_u *InvoiceUpdate) Mutation() *InvoiceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InvoiceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InvoiceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceUpdate) check() error {
	if v, ok := _u.mutation.VendorID(); ok {
		if err := invoice.VendorIDValidator(v); err != nil {
			return &ValidationError{Name: "vendor_id", err: fmt.Errorf(`ent: validator failed for field "Invoice.vendor_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileName(); ok {
		if err := invoice.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "Invoice.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BlobURL(); ok {
		if err := invoice.BlobURLValidator(v); err != nil {
			return &ValidationError{Name: "blob_url", err: fmt.Errorf(`ent: validator failed for field "Invoice.blob_url": %w`, err)}
		}
	}
	return nil
}

func (_u *InvoiceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.VendorID(); ok {
		_spec.SetField(invoice.FieldVendorID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(invoice.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.BlobURL(); ok {
		_spec.SetField(invoice.FieldBlobURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractedData(); ok {
		_spec.SetField(invoice.FieldExtractedData, field.TypeJSON, value)
	}
	if _u.mutation.ExtractedDataCleared() {
		_spec.ClearField(invoice.FieldExtractedData, field.TypeJSON)
	}
	if value, ok := _u.mutation.Classification(); ok {
		_spec.SetField(invoice.FieldClassification, field.TypeJSON, value)
	}
	if _u.mutation.ClassificationCleared() {
		_spec.ClearField(invoice.FieldClassification, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProcessingMetadata(); ok {
		_spec.SetField(invoice.FieldProcessingMetadata, field.TypeJSON, value)
	}
	if _u.mutation.ProcessingMetadataCleared() {
		_spec.ClearField(invoice.FieldProcessingMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InvoiceUpdateOne is the builder for updating a single Invoice entity.
type InvoiceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvoiceMutation
}

// SetVendorID sets the "vendor_id" field.
func (_u *InvoiceUpdateOne) SetVendorID(v string) *InvoiceUpdateOne {
	_u.mutation.SetVendorID(v)
	return _u
}

// SetNillableVendorID sets the "vendor_id" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableVendorID(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetVendorID(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *InvoiceUpdateOne) SetFileName(v string) *InvoiceUpdateOne {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableFileName(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetBlobURL sets the "blob_url" field.
func (_u *InvoiceUpdateOne) SetBlobURL(v string) *InvoiceUpdateOne {
	_u.mutation.SetBlobURL(v)
	return _u
}

// SetNillableBlobURL sets the "blob_url" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableBlobURL(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetBlobURL(*v)
	}
	return _u
}

// SetExtractedData sets the "extracted_data" field.
func (_u *InvoiceUpdateOne) SetExtractedData(v *entity.ExtractedData) *InvoiceUpdateOne {
	_u.mutation.SetExtractedData(v)
	return _u
}

// ClearExtractedData clears the value of the "extracted_data" field.
func (_u *InvoiceUpdateOne) ClearExtractedData() *InvoiceUpdateOne {
	_u.mutation.ClearExtractedData()
	return _u
}

// SetClassification sets the "classification" field.
func (_u *InvoiceUpdateOne) SetClassification(v *entity.Classification) *InvoiceUpdateOne {
	_u.mutation.SetClassification(v)
	return _u
}

// ClearClassification clears the value of the "classification" field.
func (_u *InvoiceUpdateOne) ClearClassification() *InvoiceUpdateOne {
	_u.mutation.ClearClassification()
	return _u
}

// SetProcessingMetadata sets the "processing_metadata" field.
func (_u *InvoiceUpdateOne) SetProcessingMetadata(v *entity.ProcessingMetadata) *InvoiceUpdateOne {
	_u.mutation.SetProcessingMetadata(v)
	return _u
}

// ClearProcessingMetadata clears the value of the "processing_metadata" field.
func (_u *InvoiceUpdateOne) ClearProcessingMetadata() *InvoiceUpdateOne {
	_u.mutation.ClearProcessingMetadata()
	return _u
}

// Mutation returns the InvoiceMutation object of the builder.
func (_u *InvoiceUpdateOne) Mutation() *InvoiceMutation {
	return _u.mutation
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (_u *InvoiceUpdateOne) Where(ps ...predicate.Invoice) *InvoiceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InvoiceUpdateOne) Select(field string, fields ...string) *InvoiceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Invoice entity.
func (_u *InvoiceUpdateOne) Save(ctx context.Context) (*Invoice, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceUpdateOne) SaveX(ctx context.Context) *Invoice {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InvoiceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceUpdateOne) check() error {
	if v, ok := _u.mutation.VendorID(); ok {
		if err := invoice.VendorIDValidator(v); err != nil {
			return &ValidationError{Name: "vendor_id", err: fmt.Errorf(`ent: validator failed for field "Invoice.vendor_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileName(); ok {
		if err := invoice.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "Invoice.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BlobURL(); ok {
		if err := invoice.BlobURLValidator(v); err != nil {
			return &ValidationError{Name: "blob_url", err: fmt.Errorf(`ent: validator failed for field "Invoice.blob_url": %w`, err)}
		}
	}
	return nil
}

func (_u *InvoiceUpdateOne) sqlSave(ctx context.Context) (_node *Invoice, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Invoice.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, invoice.FieldID)
		for _, f := range fields {
			if !invoice.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != invoice.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.VendorID(); ok {
		_spec.SetField(invoice.FieldVendorID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(invoice.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.BlobURL(); ok {
		_spec.SetField(invoice.FieldBlobURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractedData(); ok {
		_spec.SetField(invoice.FieldExtractedData, field.TypeJSON, value)
	}
	if _u.mutation.ExtractedDataCleared() {
		_spec.ClearField(invoice.FieldExtractedData, field.TypeJSON)
	}
	if value, ok := _u.mutation.Classification(); ok {
		_spec.SetField(invoice.FieldClassification, field.TypeJSON, value)
	}
	if _u.mutation.ClassificationCleared() {
		_spec.ClearField(invoice.FieldClassification, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProcessingMetadata(); ok {
		_spec.SetField(invoice.FieldProcessingMetadata, field.TypeJSON, value)
	}
	if _u.mutation.ProcessingMetadataCleared() {
		_spec.ClearField(invoice.FieldProcessingMetadata, field.TypeJSON)
	}
	_node = &Invoice{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
