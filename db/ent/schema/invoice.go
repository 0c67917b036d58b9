package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/invoiceworks/invoice-pipeline/internal/entity"
)

type Invoice struct{ ent.Schema }

func (Invoice) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "invoices"},
	}
}

func (Invoice) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("vendor_id").NotEmpty(),
		field.String("file_name").NotEmpty(),
		field.String("blob_url").NotEmpty(),
		field.Time("upload_date").Default(time.Now).Immutable(),
		field.JSON("extracted_data", &entity.ExtractedData{}).Optional(),
		field.JSON("classification", &entity.Classification{}).Optional(),
		field.JSON("processing_metadata", &entity.ProcessingMetadata{}).Optional(),
	}
}

func (Invoice) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("vendor_id", "upload_date"),
	}
}
