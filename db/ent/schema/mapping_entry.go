package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/paradize/restodocs/constants"
	"github.com/paradize/restodocs/db/ent/schema/utils"
)

// MappingEntry rows are the learned raw-name -> catalog-id dictionary.
// raw_name is stored case-folded; (raw_name, catalog_type) is the upsert key.
type MappingEntry struct{ ent.Schema }

func (MappingEntry) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "mapping_entries"},
	}
}

func (MappingEntry) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("raw_name").NotEmpty(),
		field.String("corrected_name").NotEmpty(),
		field.UUID("catalog_id", uuid.UUID{}),
		field.String("catalog_type").
			Validate(utils.EnumValidator(constants.CatalogTypes...)),
		field.Int("confidence").Min(0).Max(100),
		field.String("source").
			Validate(utils.EnumValidator(constants.MappingSources...)),
		field.Int("use_count").Default(1),
		field.Time("last_used_at").Default(time.Now),
		field.Time("created_at").Default(time.Now),
	}
}

func (MappingEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("raw_name", "catalog_type").Unique(),
	}
}
