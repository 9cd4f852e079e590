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

type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("doc_type").
			Validate(utils.EnumValidator(constants.DocTypes...)),
		field.String("doc_number").Optional(),
		field.String("doc_date").Optional(),
		field.String("supplier_name").Optional().Nillable(),
		field.String("supplier_inn").Optional().Nillable(),
		field.String("buyer_name").Optional().Nillable(),
		field.String("buyer_inn").Optional().Nillable(),
		field.JSON("items", []appentity.LineItem{}).
			SchemaType(map[string]string{dialect.Postgres: "jsonb"}),
		field.Float("total_amount").
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
		field.Int("confidence"),
		field.Int("page_count").Default(1),
		field.Bool("is_merged").Default(false),
		field.Bool("needs_review").Default(false),
		field.String("group_key").Optional(),
		field.JSON("warnings", []string{}).Optional().
			SchemaType(map[string]string{dialect.Postgres: "jsonb"}),
		field.JSON("errors", []string{}).Optional().
			SchemaType(map[string]string{dialect.Postgres: "jsonb"}),
		field.String("status").
			Default(string(constants.StatusRecognized)).
			Validate(utils.EnumValidator(constants.DocStatuses...)),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE document -> MANY submission records
		edge.To("submissions", SubmissionRecord.Type),
		// ONE document -> MANY escalation rows
		edge.To("escalations", EscalationItem.Type),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("group_key"),
		index.Fields("status"),
	}
}
