// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// EscalationItem is the predicate function for escalationitem builders.
type EscalationItem func(*sql.Selector)

// MappingEntry is the predicate function for mappingentry builders.
type MappingEntry func(*sql.Selector)

// SubmissionRecord is the predicate function for submissionrecord builders.
type SubmissionRecord func(*sql.Selector)
