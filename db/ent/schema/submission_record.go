package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/paradize/restodocs/constants"
	"github.com/paradize/restodocs/db/ent/schema/utils"
	appentity "github.com/paradize/restodocs/internal/entity"
)

type SubmissionRecord struct{ ent.Schema }

func (SubmissionRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "submission_records"},
	}
}

func (SubmissionRecord) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("document_id", uuid.UUID{}),
		field.String("doc_number").NotEmpty(),
		field.String("destination_type").NotEmpty(),
		field.UUID("store_id", uuid.UUID{}).Optional().Nillable(),
		field.String("store_name").Optional(),
		field.UUID("supplier_id", uuid.UUID{}).Optional().Nillable(),
		field.String("supplier_name").Optional(),
		field.Time("doc_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.JSON("items", []appentity.LineItem{}).
			SchemaType(map[string]string{dialect.Postgres: "jsonb"}),
		field.Float("total_amount").
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
		field.String("status").
			Default(string(constants.StatusMapped)).
			Validate(utils.EnumValidator(constants.DocStatuses...)),
		field.String("error_message").Optional().Nillable(),
		field.JSON("warnings", []string{}).Optional().
			SchemaType(map[string]string{dialect.Postgres: "jsonb"}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (SubmissionRecord) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY records -> ONE document (FK: submission_records.document_id)
		edge.From("document", Document.Type).
			Ref("submissions").
			Field("document_id").
			Required().
			Unique(),
	}
}

func (SubmissionRecord) Indexes() []ent.Index {
	return []ent.Index{
		// the external system deduplicates by document number
		index.Fields("doc_number").Unique(),
		index.Fields("status"),
	}
}
