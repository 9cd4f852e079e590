// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/paradize/restodocs/db/ent/schema"
	"github.com/paradize/restodocs/gen/ent/document"
	"github.com/paradize/restodocs/gen/ent/escalationitem"
	"github.com/paradize/restodocs/gen/ent/mappingentry"
	"github.com/paradize/restodocs/gen/ent/submissionrecord"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescDocType is the schema descriptor for doc_type field.
	documentDescDocType := documentFields[1].Descriptor()
	// document.DocTypeValidator is a validator for the "doc_type" field. It is called by the builders before save.
	document.DocTypeValidator = documentDescDocType.Validators[0].(func(string) error)
	// documentDescPageCount is the schema descriptor for page_count field.
	documentDescPageCount := documentFields[11].Descriptor()
	// document.DefaultPageCount holds the default value on creation for the page_count field.
	document.DefaultPageCount = documentDescPageCount.Default.(int)
	// documentDescIsMerged is the schema descriptor for is_merged field.
	documentDescIsMerged := documentFields[12].Descriptor()
	// document.DefaultIsMerged holds the default value on creation for the is_merged field.
	document.DefaultIsMerged = documentDescIsMerged.Default.(bool)
	// documentDescNeedsReview is the schema descriptor for needs_review field.
	documentDescNeedsReview := documentFields[13].Descriptor()
	// document.DefaultNeedsReview holds the default value on creation for the needs_review field.
	document.DefaultNeedsReview = documentDescNeedsReview.Default.(bool)
	// documentDescStatus is the schema descriptor for status field.
	documentDescStatus := documentFields[17].Descriptor()
	// document.DefaultStatus holds the default value on creation for the status field.
	document.DefaultStatus = documentDescStatus.Default.(string)
	// document.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	document.StatusValidator = documentDescStatus.Validators[0].(func(string) error)
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[18].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescUpdatedAt is the schema descriptor for updated_at field.
	documentDescUpdatedAt := documentFields[19].Descriptor()
	// document.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	document.DefaultUpdatedAt = documentDescUpdatedAt.Default.(func() time.Time)
	// document.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	document.UpdateDefaultUpdatedAt = documentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	escalationitemFields := schema.EscalationItem{}.Fields()
	_ = escalationitemFields
	// escalationitemDescRawName is the schema descriptor for raw_name field.
	escalationitemDescRawName := escalationitemFields[2].Descriptor()
	// escalationitem.RawNameValidator is a validator for the "raw_name" field. It is called by the builders before save.
	escalationitem.RawNameValidator = escalationitemDescRawName.Validators[0].(func(string) error)
	// escalationitemDescNormalizedName is the schema descriptor for normalized_name field.
	escalationitemDescNormalizedName := escalationitemFields[3].Descriptor()
	// escalationitem.NormalizedNameValidator is a validator for the "normalized_name" field. It is called by the builders before save.
	escalationitem.NormalizedNameValidator = escalationitemDescNormalizedName.Validators[0].(func(string) error)
	// escalationitemDescCatalogType is the schema descriptor for catalog_type field.
	escalationitemDescCatalogType := escalationitemFields[4].Descriptor()
	// escalationitem.CatalogTypeValidator is a validator for the "catalog_type" field. It is called by the builders before save.
	escalationitem.CatalogTypeValidator = escalationitemDescCatalogType.Validators[0].(func(string) error)
	// escalationitemDescResolved is the schema descriptor for resolved field.
	escalationitemDescResolved := escalationitemFields[7].Descriptor()
	// escalationitem.DefaultResolved holds the default value on creation for the resolved field.
	escalationitem.DefaultResolved = escalationitemDescResolved.Default.(bool)
	// escalationitemDescCreatedAt is the schema descriptor for created_at field.
	escalationitemDescCreatedAt := escalationitemFields[8].Descriptor()
	// escalationitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	escalationitem.DefaultCreatedAt = escalationitemDescCreatedAt.Default.(func() time.Time)
	// escalationitemDescID is the schema descriptor for id field.
	escalationitemDescID := escalationitemFields[0].Descriptor()
	// escalationitem.DefaultID holds the default value on creation for the id field.
	escalationitem.DefaultID = escalationitemDescID.Default.(func() uuid.UUID)
	mappingentryFields := schema.MappingEntry{}.Fields()
	_ = mappingentryFields
	// mappingentryDescRawName is the schema descriptor for raw_name field.
	mappingentryDescRawName := mappingentryFields[1].Descriptor()
	// mappingentry.RawNameValidator is a validator for the "raw_name" field. It is called by the builders before save.
	mappingentry.RawNameValidator = mappingentryDescRawName.Validators[0].(func(string) error)
	// mappingentryDescCorrectedName is the schema descriptor for corrected_name field.
	mappingentryDescCorrectedName := mappingentryFields[2].Descriptor()
	// mappingentry.CorrectedNameValidator is a validator for the "corrected_name" field. It is called by the builders before save.
	mappingentry.CorrectedNameValidator = mappingentryDescCorrectedName.Validators[0].(func(string) error)
	// mappingentryDescCatalogType is the schema descriptor for catalog_type field.
	mappingentryDescCatalogType := mappingentryFields[4].Descriptor()
	// mappingentry.CatalogTypeValidator is a validator for the "catalog_type" field. It is called by the builders before save.
	mappingentry.CatalogTypeValidator = mappingentryDescCatalogType.Validators[0].(func(string) error)
	// mappingentryDescConfidence is the schema descriptor for confidence field.
	mappingentryDescConfidence := mappingentryFields[5].Descriptor()
	// mappingentry.ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	mappingentry.ConfidenceValidator = func() func(int) error {
		validators := mappingentryDescConfidence.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(confidence int) error {
			for _, fn := range fns {
				if err := fn(confidence); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// mappingentryDescSource is the schema descriptor for source field.
	mappingentryDescSource := mappingentryFields[6].Descriptor()
	// mappingentry.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	mappingentry.SourceValidator = mappingentryDescSource.Validators[0].(func(string) error)
	// mappingentryDescUseCount is the schema descriptor for use_count field.
	mappingentryDescUseCount := mappingentryFields[7].Descriptor()
	// mappingentry.DefaultUseCount holds the default value on creation for the use_count field.
	mappingentry.DefaultUseCount = mappingentryDescUseCount.Default.(int)
	// mappingentryDescLastUsedAt is the schema descriptor for last_used_at field.
	mappingentryDescLastUsedAt := mappingentryFields[8].Descriptor()
	// mappingentry.DefaultLastUsedAt holds the default value on creation for the last_used_at field.
	mappingentry.DefaultLastUsedAt = mappingentryDescLastUsedAt.Default.(func() time.Time)
	// mappingentryDescCreatedAt is the schema descriptor for created_at field.
	mappingentryDescCreatedAt := mappingentryFields[9].Descriptor()
	// mappingentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	mappingentry.DefaultCreatedAt = mappingentryDescCreatedAt.Default.(func() time.Time)
	// mappingentryDescID is the schema descriptor for id field.
	mappingentryDescID := mappingentryFields[0].Descriptor()
	// mappingentry.DefaultID holds the default value on creation for the id field.
	mappingentry.DefaultID = mappingentryDescID.Default.(func() uuid.UUID)
	submissionrecordFields := schema.SubmissionRecord{}.Fields()
	_ = submissionrecordFields
	// submissionrecordDescDocNumber is the schema descriptor for doc_number field.
	submissionrecordDescDocNumber := submissionrecordFields[2].Descriptor()
	// submissionrecord.DocNumberValidator is a validator for the "doc_number" field. It is called by the builders before save.
	submissionrecord.DocNumberValidator = submissionrecordDescDocNumber.Validators[0].(func(string) error)
	// submissionrecordDescDestinationType is the schema descriptor for destination_type field.
	submissionrecordDescDestinationType := submissionrecordFields[3].Descriptor()
	// submissionrecord.DestinationTypeValidator is a validator for the "destination_type" field. It is called by the builders before save.
	submissionrecord.DestinationTypeValidator = submissionrecordDescDestinationType.Validators[0].(func(string) error)
	// submissionrecordDescStatus is the schema descriptor for status field.
	submissionrecordDescStatus := submissionrecordFields[11].Descriptor()
	// submissionrecord.DefaultStatus holds the default value on creation for the status field.
	submissionrecord.DefaultStatus = submissionrecordDescStatus.Default.(string)
	// submissionrecord.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	submissionrecord.StatusValidator = submissionrecordDescStatus.Validators[0].(func(string) error)
	// submissionrecordDescCreatedAt is the schema descriptor for created_at field.
	submissionrecordDescCreatedAt := submissionrecordFields[14].Descriptor()
	// submissionrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	submissionrecord.DefaultCreatedAt = submissionrecordDescCreatedAt.Default.(func() time.Time)
	// submissionrecordDescUpdatedAt is the schema descriptor for updated_at field.
	submissionrecordDescUpdatedAt := submissionrecordFields[15].Descriptor()
	// submissionrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	submissionrecord.DefaultUpdatedAt = submissionrecordDescUpdatedAt.Default.(func() time.Time)
	// submissionrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	submissionrecord.UpdateDefaultUpdatedAt = submissionrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	// submissionrecordDescID is the schema descriptor for id field.
	submissionrecordDescID := submissionrecordFields[0].Descriptor()
	// submissionrecord.DefaultID holds the default value on creation for the id field.
	submissionrecord.DefaultID = submissionrecordDescID.Default.(func() uuid.UUID)
}
