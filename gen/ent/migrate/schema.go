// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// InvoicesColumns holds the columns for the "invoices" table.
	InvoicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "vendor_id", Type: field.TypeString},
		{Name: "file_name", Type: field.TypeString},
		{Name: "blob_url", Type: field.TypeString},
		{Name: "upload_date", Type: field.TypeTime},
		{Name: "extracted_data", Type: field.TypeJSON, Nullable: true},
		{Name: "classification", Type: field.TypeJSON, Nullable: true},
		{Name: "processing_metadata", Type: field.TypeJSON, Nullable: true},
	}
	// InvoicesTable holds the schema information for the "invoices" table.
	InvoicesTable = &schema.Table{
		Name:       "invoices",
		Columns:    InvoicesColumns,
		PrimaryKey: []*schema.Column{InvoicesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "invoice_vendor_id_upload_date",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[1], InvoicesColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		InvoicesTable,
	}
)

func init() {
	InvoicesTable.Annotation = &entsql.Annotation{
		Table: "invoices",
	}
}
