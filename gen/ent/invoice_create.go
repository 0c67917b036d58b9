// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/invoiceworks/invoice-pipeline/gen/ent/invoice"
	"github.com/invoiceworks/invoice-pipeline/internal/entity"
)

// InvoiceCreate is the builder for creating a Invoice entity.
type InvoiceCreate struct {
	config
	mutation *InvoiceMutation
	hooks    []Hook
}

// SetVendorID sets the "vendor_id" field.
func (_c *InvoiceCreate) SetVendorID(v string) *InvoiceCreate {
	_c.mutation.SetVendorID(v)
	return _c
}

// SetFileName sets the "file_name" field.
func (_c *InvoiceCreate) SetFileName(v string) *InvoiceCreate {
	_c.mutation.SetFileName(v)
	return _c
}

// SetBlobURL sets the "blob_url" field.
func (_c *InvoiceCreate) SetBlobURL(v string) *InvoiceCreate {
	_c.mutation.SetBlobURL(v)
	return _c
}

// SetUploadDate sets the "upload_date" field.
func (_c *InvoiceCreate) SetUploadDate(v time.Time) *InvoiceCreate {
	_c.mutation.SetUploadDate(v)
	return _c
}

// SetNillableUploadDate sets the "upload_date" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableUploadDate(v *time.Time) *InvoiceCreate {
	if v != nil {
		_c.SetUploadDate(*v)
	}
	return _c
}

// SetExtractedData sets the "extracted_data" field.
func (_c *InvoiceCreate) SetExtractedData(v *entity.ExtractedData) *InvoiceCreate {
	_c.mutation.SetExtractedData(v)
	return _c
}

// SetClassification sets the "classification" field.
func (_c *InvoiceCreate) SetClassification(v *entity.Classification) *InvoiceCreate {
	_c.mutation.SetClassification(v)
	return _c
}

// SetProcessingMetadata sets the "processing_metadata" field.
func (_c *InvoiceCreate) SetProcessingMetadata(v *entity.ProcessingMetadata) *InvoiceCreate {
	_c.mutation.SetProcessingMetadata(v)
	return _c
}

// SetID sets the "id" field.
func (_c *InvoiceCreate) SetID(v uuid.UUID) *InvoiceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableID(v *uuid.UUID) *InvoiceCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the InvoiceMutation object of the builder.
func (_c *InvoiceCreate) Mutation() *InvoiceMutation {
	return _c.mutation
}

// Save creates the Invoice in the database.
func (_c *InvoiceCreate) Save(ctx context.Context) (*Invoice, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InvoiceCreate) SaveX(ctx context.Context) *Invoice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InvoiceCreate) defaults() {
	if _, ok := _c.mutation.UploadDate(); !ok {
		v := invoice.DefaultUploadDate()
		_c.mutation.SetUploadDate(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := invoice.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InvoiceCreate) check() error {
	if _, ok := _c.mutation.VendorID(); !ok {
		return &ValidationError{Name: "vendor_id", err: errors.New(`ent: missing required field "Invoice.vendor_id"`)}
	}
	if v, ok := _c.mutation.VendorID(); ok {
		if err := invoice.VendorIDValidator(v); err != nil {
			return &ValidationError{Name: "vendor_id", err: fmt.Errorf(`ent: validator failed for field "Invoice.vendor_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileName(); !ok {
		return &ValidationError{Name: "file_name", err: errors.New(`ent: missing required field "Invoice.file_name"`)}
	}
	if v, ok := _c.mutation.FileName(); ok {
		if err := invoice.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "Invoice.file_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BlobURL(); !ok {
		return &ValidationError{Name: "blob_url", err: errors.New(`ent: missing required field "Invoice.blob_url"`)}
	}
	if v, ok := _c.mutation.BlobURL(); ok {
		if err := invoice.BlobURLValidator(v); err != nil {
			return &ValidationError{Name: "blob_url", err: fmt.Errorf(`ent: validator failed for field "Invoice.blob_url": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UploadDate(); !ok {
		return &ValidationError{Name: "upload_date", err: errors.New(`ent: missing required field "Invoice.upload_date"`)}
	}
	return nil
}

func (_c *InvoiceCreate) sqlSave(ctx context.Context) (*Invoice, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InvoiceCreate) createSpec() (*Invoice, *sqlgraph.CreateSpec) {
	var (
		_node = &Invoice{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(invoice.Table, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.VendorID(); ok {
		_spec.SetField(invoice.FieldVendorID, field.TypeString, value)
		_node.VendorID = value
	}
	if value, ok := _c.mutation.FileName(); ok {
		_spec.SetField(invoice.FieldFileName, field.TypeString, value)
		_node.FileName = value
	}
	if value, ok := _c.mutation.BlobURL(); ok {
		_spec.SetField(invoice.FieldBlobURL, field.TypeString, value)
		_node.BlobURL = value
	}
	if value, ok := _c.mutation.UploadDate(); ok {
		_spec.SetField(invoice.FieldUploadDate, field.TypeTime, value)
		_node.UploadDate = value
	}
	if value, ok := _c.mutation.ExtractedData(); ok {
		_spec.SetField(invoice.FieldExtractedData, field.TypeJSON, value)
		_node.ExtractedData = value
	}
	if value, ok := _c.mutation.Classification(); ok {
		_spec.SetField(invoice.FieldClassification, field.TypeJSON, value)
		_node.Classification = value
	}
	if value, ok := _c.mutation.ProcessingMetadata(); ok {
		_spec.SetField(invoice.FieldProcessingMetadata, field.TypeJSON, value)
		_node.ProcessingMetadata = value
	}
	return _node, _spec
}

// InvoiceCreateBulk is the builder for creating many Invoice entities in bulk.
type InvoiceCreateBulk struct {
	config
	err      error
	builders []*InvoiceCreate
}

// Save creates the Invoice entities in the database.
func (_c *InvoiceCreateBulk) Save(ctx context.Context) ([]*Invoice, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Invoice, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InvoiceMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *InvoiceCreateBulk) SaveX(ctx context.Context) []*Invoice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
