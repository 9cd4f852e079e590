package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/paradize/restodocs/constants"
	"github.com/paradize/restodocs/db/ent/schema/utils"
)

// EscalationItem rows form the human-reviewable ledger. Rows are appended,
// resolved in place, and never overwritten by the pipeline.
type EscalationItem struct{ ent.Schema }

func (EscalationItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "escalation_items"},
	}
}

func (EscalationItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("document_id", uuid.UUID{}),
		field.String("raw_name").NotEmpty(),
		field.String("normalized_name").NotEmpty(),
		field.String("catalog_type").
			Validate(utils.EnumValidator(constants.CatalogTypes...)),
		field.UUID("resolved_id", uuid.UUID{}).Optional().Nillable(),
		field.String("resolved_name").Optional().Nillable(),
		field.Bool("resolved").Default(false),
		field.Time("created_at").Default(time.Now),
	}
}

func (EscalationItem) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY rows -> ONE document (FK: escalation_items.document_id)
		edge.From("document", Document.Type).
			Ref("escalations").
			Field("document_id").
			Required().
			Unique(),
	}
}

func (EscalationItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id"),
		index.Fields("resolved"),
	}
}
