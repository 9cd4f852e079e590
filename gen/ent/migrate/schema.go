// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "doc_type", Type: field.TypeString},
		{Name: "doc_number", Type: field.TypeString, Nullable: true},
		{Name: "doc_date", Type: field.TypeString, Nullable: true},
		{Name: "supplier_name", Type: field.TypeString, Nullable: true},
		{Name: "supplier_inn", Type: field.TypeString, Nullable: true},
		{Name: "buyer_name", Type: field.TypeString, Nullable: true},
		{Name: "buyer_inn", Type: field.TypeString, Nullable: true},
		{Name: "items", Type: field.TypeJSON, SchemaType: map[string]string{"postgres": "jsonb"}},
		{Name: "total_amount", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "confidence", Type: field.TypeInt},
		{Name: "page_count", Type: field.TypeInt, Default: 1},
		{Name: "is_merged", Type: field.TypeBool, Default: false},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "group_key", Type: field.TypeString, Nullable: true},
		{Name: "warnings", Type: field.TypeJSON, Nullable: true, SchemaType: map[string]string{"postgres": "jsonb"}},
		{Name: "errors", Type: field.TypeJSON, Nullable: true, SchemaType: map[string]string{"postgres": "jsonb"}},
		{Name: "status", Type: field.TypeString, Default: "RECOGNIZED"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "document_group_key",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[14]},
			},
			{
				Name:    "document_status",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[17]},
			},
		},
	}
	// EscalationItemsColumns holds the columns for the "escalation_items" table.
	EscalationItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "raw_name", Type: field.TypeString},
		{Name: "normalized_name", Type: field.TypeString},
		{Name: "catalog_type", Type: field.TypeString},
		{Name: "resolved_id", Type: field.TypeUUID, Nullable: true},
		{Name: "resolved_name", Type: field.TypeString, Nullable: true},
		{Name: "resolved", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// EscalationItemsTable holds the schema information for the "escalation_items" table.
	EscalationItemsTable = &schema.Table{
		Name:       "escalation_items",
		Columns:    EscalationItemsColumns,
		PrimaryKey: []*schema.Column{EscalationItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "escalation_items_documents_escalations",
				Columns:    []*schema.Column{EscalationItemsColumns[8]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "escalationitem_document_id",
				Unique:  false,
				Columns: []*schema.Column{EscalationItemsColumns[8]},
			},
			{
				Name:    "escalationitem_resolved",
				Unique:  false,
				Columns: []*schema.Column{EscalationItemsColumns[6]},
			},
		},
	}
	// MappingEntriesColumns holds the columns for the "mapping_entries" table.
	MappingEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "raw_name", Type: field.TypeString},
		{Name: "corrected_name", Type: field.TypeString},
		{Name: "catalog_id", Type: field.TypeUUID},
		{Name: "catalog_type", Type: field.TypeString},
		{Name: "confidence", Type: field.TypeInt},
		{Name: "source", Type: field.TypeString},
		{Name: "use_count", Type: field.TypeInt, Default: 1},
		{Name: "last_used_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
	}
	// MappingEntriesTable holds the schema information for the "mapping_entries" table.
	MappingEntriesTable = &schema.Table{
		Name:       "mapping_entries",
		Columns:    MappingEntriesColumns,
		PrimaryKey: []*schema.Column{MappingEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "mappingentry_raw_name_catalog_type",
				Unique:  true,
				Columns: []*schema.Column{MappingEntriesColumns[1], MappingEntriesColumns[4]},
			},
		},
	}
	// SubmissionRecordsColumns holds the columns for the "submission_records" table.
	SubmissionRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "doc_number", Type: field.TypeString},
		{Name: "destination_type", Type: field.TypeString},
		{Name: "store_id", Type: field.TypeUUID, Nullable: true},
		{Name: "store_name", Type: field.TypeString, Nullable: true},
		{Name: "supplier_id", Type: field.TypeUUID, Nullable: true},
		{Name: "supplier_name", Type: field.TypeString, Nullable: true},
		{Name: "doc_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "items", Type: field.TypeJSON, SchemaType: map[string]string{"postgres": "jsonb"}},
		{Name: "total_amount", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "status", Type: field.TypeString, Default: "MAPPED"},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "warnings", Type: field.TypeJSON, Nullable: true, SchemaType: map[string]string{"postgres": "jsonb"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// SubmissionRecordsTable holds the schema information for the "submission_records" table.
	SubmissionRecordsTable = &schema.Table{
		Name:       "submission_records",
		Columns:    SubmissionRecordsColumns,
		PrimaryKey: []*schema.Column{SubmissionRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "submission_records_documents_submissions",
				Columns:    []*schema.Column{SubmissionRecordsColumns[15]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "submissionrecord_doc_number",
				Unique:  true,
				Columns: []*schema.Column{SubmissionRecordsColumns[1]},
			},
			{
				Name:    "submissionrecord_status",
				Unique:  false,
				Columns: []*schema.Column{SubmissionRecordsColumns[10]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DocumentsTable,
		EscalationItemsTable,
		MappingEntriesTable,
		SubmissionRecordsTable,
	}
)

func init() {
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	EscalationItemsTable.ForeignKeys[0].RefTable = DocumentsTable
	EscalationItemsTable.Annotation = &entsql.Annotation{
		Table: "escalation_items",
	}
	MappingEntriesTable.Annotation = &entsql.Annotation{
		Table: "mapping_entries",
	}
	SubmissionRecordsTable.ForeignKeys[0].RefTable = DocumentsTable
	SubmissionRecordsTable.Annotation = &entsql.Annotation{
		Table: "submission_records",
	}
}
