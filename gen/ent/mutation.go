// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/paradize/restodocs/gen/ent/document"
	"github.com/paradize/restodocs/gen/ent/escalationitem"
	"github.com/paradize/restodocs/gen/ent/mappingentry"
	"github.com/paradize/restodocs/gen/ent/predicate"
	"github.com/paradize/restodocs/gen/ent/submissionrecord"
	"github.com/paradize/restodocs/internal/entity"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDocument         = "Document"
	TypeEscalationItem   = "EscalationItem"
	TypeMappingEntry     = "MappingEntry"
	TypeSubmissionRecord = "SubmissionRecord"
)

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	doc_type           *string
	doc_number         *string
	doc_date           *string
	supplier_name      *string
	supplier_inn       *string
	buyer_name         *string
	buyer_inn          *string
	items              *[]entity.LineItem
	appenditems        []entity.LineItem
	total_amount       *float64
	addtotal_amount    *float64
	confidence         *int
	addconfidence      *int
	page_count         *int
	addpage_count      *int
	is_merged          *bool
	needs_review       *bool
	group_key          *string
	warnings           *[]string
	appendwarnings     []string
	errors             *[]string
	appenderrors       []string
	status             *string
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	submissions        map[uuid.UUID]struct{}
	removedsubmissions map[uuid.UUID]struct{}
	clearedsubmissions bool
	escalations        map[uuid.UUID]struct{}
	removedescalations map[uuid.UUID]struct{}
	clearedescalations bool
	done               bool
	oldValue           func(context.Context) (*Document, error)
	predicates         []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id uuid.UUID) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Document entities.
func (m *DocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocType sets the "doc_type" field.
func (m *DocumentMutation) SetDocType(s string) {
	m.doc_type = &s
}

// DocType returns the value of the "doc_type" field in the mutation.
func (m *DocumentMutation) DocType() (r string, exists bool) {
	v := m.doc_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocType returns the old "doc_type" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldDocType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocType: %w", err)
	}
	return oldValue.DocType, nil
}

// ResetDocType resets all changes to the "doc_type" field.
func (m *DocumentMutation) ResetDocType() {
	m.doc_type = nil
}

// SetDocNumber sets the "doc_number" field.
func (m *DocumentMutation) SetDocNumber(s string) {
	m.doc_number = &s
}

// DocNumber returns the value of the "doc_number" field in the mutation.
func (m *DocumentMutation) DocNumber() (r string, exists bool) {
	v := m.doc_number
	if v == nil {
		return
	}
	return *v, true
}

// OldDocNumber returns the old "doc_number" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldDocNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocNumber: %w", err)
	}
	return oldValue.DocNumber, nil
}

// ClearDocNumber clears the value of the "doc_number" field.
func (m *DocumentMutation) ClearDocNumber() {
	m.doc_number = nil
	m.clearedFields[document.FieldDocNumber] = struct{}{}
}

// DocNumberCleared returns if the "doc_number" field was cleared in this mutation.
func (m *DocumentMutation) DocNumberCleared() bool {
	_, ok := m.clearedFields[document.FieldDocNumber]
	return ok
}

// ResetDocNumber resets all changes to the "doc_number" field.
func (m *DocumentMutation) ResetDocNumber() {
	m.doc_number = nil
	delete(m.clearedFields, document.FieldDocNumber)
}

// SetDocDate sets the "doc_date" field.
func (m *DocumentMutation) SetDocDate(s string) {
	m.doc_date = &s
}

// DocDate returns the value of the "doc_date" field in the mutation.
func (m *DocumentMutation) DocDate() (r string, exists bool) {
	v := m.doc_date
	if v == nil {
		return
	}
	return *v, true
}

// OldDocDate returns the old "doc_date" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldDocDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocDate: %w", err)
	}
	return oldValue.DocDate, nil
}

// ClearDocDate clears the value of the "doc_date" field.
func (m *DocumentMutation) ClearDocDate() {
	m.doc_date = nil
	m.clearedFields[document.FieldDocDate] = struct{}{}
}

// DocDateCleared returns if the "doc_date" field was cleared in this mutation.
func (m *DocumentMutation) DocDateCleared() bool {
	_, ok := m.clearedFields[document.FieldDocDate]
	return ok
}

// ResetDocDate resets all changes to the "doc_date" field.
func (m *DocumentMutation) ResetDocDate() {
	m.doc_date = nil
	delete(m.clearedFields, document.FieldDocDate)
}

// SetSupplierName sets the "supplier_name" field.
func (m *DocumentMutation) SetSupplierName(s string) {
	m.supplier_name = &s
}

// SupplierName returns the value of the "supplier_name" field in the mutation.
func (m *DocumentMutation) SupplierName() (r string, exists bool) {
	v := m.supplier_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSupplierName returns the old "supplier_name" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldSupplierName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupplierName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupplierName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupplierName: %w", err)
	}
	return oldValue.SupplierName, nil
}

// ClearSupplierName clears the value of the "supplier_name" field.
func (m *DocumentMutation) ClearSupplierName() {
	m.supplier_name = nil
	m.clearedFields[document.FieldSupplierName] = struct{}{}
}

// SupplierNameCleared returns if the "supplier_name" field was cleared in this mutation.
func (m *DocumentMutation) SupplierNameCleared() bool {
	_, ok := m.clearedFields[document.FieldSupplierName]
	return ok
}

// ResetSupplierName resets all changes to the "supplier_name" field.
func (m *DocumentMutation) ResetSupplierName() {
	m.supplier_name = nil
	delete(m.clearedFields, document.FieldSupplierName)
}

// SetSupplierInn sets the "supplier_inn" field.
func (m *DocumentMutation) SetSupplierInn(s string) {
	m.supplier_inn = &s
}

// SupplierInn returns the value of the "supplier_inn" field in the mutation.
func (m *DocumentMutation) SupplierInn() (r string, exists bool) {
	v := m.supplier_inn
	if v == nil {
		return
	}
	return *v, true
}

// OldSupplierInn returns the old "supplier_inn" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldSupplierInn(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupplierInn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupplierInn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupplierInn: %w", err)
	}
	return oldValue.SupplierInn, nil
}

// ClearSupplierInn clears the value of the "supplier_inn" field.
func (m *DocumentMutation) ClearSupplierInn() {
	m.supplier_inn = nil
	m.clearedFields[document.FieldSupplierInn] = struct{}{}
}

// SupplierInnCleared returns if the "supplier_inn" field was cleared in this mutation.
func (m *DocumentMutation) SupplierInnCleared() bool {
	_, ok := m.clearedFields[document.FieldSupplierInn]
	return ok
}

// ResetSupplierInn resets all changes to the "supplier_inn" field.
func (m *DocumentMutation) ResetSupplierInn() {
	m.supplier_inn = nil
	delete(m.clearedFields, document.FieldSupplierInn)
}

// SetBuyerName sets the "buyer_name" field.
func (m *DocumentMutation) SetBuyerName(s string) {
	m.buyer_name = &s
}

// BuyerName returns the value of the "buyer_name" field in the mutation.
func (m *DocumentMutation) BuyerName() (r string, exists bool) {
	v := m.buyer_name
	if v == nil {
		return
	}
	return *v, true
}

// OldBuyerName returns the old "buyer_name" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldBuyerName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuyerName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuyerName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuyerName: %w", err)
	}
	return oldValue.BuyerName, nil
}

// ClearBuyerName clears the value of the "buyer_name" field.
func (m *DocumentMutation) ClearBuyerName() {
	m.buyer_name = nil
	m.clearedFields[document.FieldBuyerName] = struct{}{}
}

// BuyerNameCleared returns if the "buyer_name" field was cleared in this mutation.
func (m *DocumentMutation) BuyerNameCleared() bool {
	_, ok := m.clearedFields[document.FieldBuyerName]
	return ok
}

// ResetBuyerName resets all changes to the "buyer_name" field.
func (m *DocumentMutation) ResetBuyerName() {
	m.buyer_name = nil
	delete(m.clearedFields, document.FieldBuyerName)
}

// SetBuyerInn sets the "buyer_inn" field.
func (m *DocumentMutation) SetBuyerInn(s string) {
	m.buyer_inn = &s
}

// BuyerInn returns the value of the "buyer_inn" field in the mutation.
func (m *DocumentMutation) BuyerInn() (r string, exists bool) {
	v := m.buyer_inn
	if v == nil {
		return
	}
	return *v, true
}

// OldBuyerInn returns the old "buyer_inn" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldBuyerInn(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuyerInn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuyerInn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuyerInn: %w", err)
	}
	return oldValue.BuyerInn, nil
}

// ClearBuyerInn clears the value of the "buyer_inn" field.
func (m *DocumentMutation) ClearBuyerInn() {
	m.buyer_inn = nil
	m.clearedFields[document.FieldBuyerInn] = struct{}{}
}

// BuyerInnCleared returns if the "buyer_inn" field was cleared in this mutation.
func (m *DocumentMutation) BuyerInnCleared() bool {
	_, ok := m.clearedFields[document.FieldBuyerInn]
	return ok
}

// ResetBuyerInn resets all changes to the "buyer_inn" field.
func (m *DocumentMutation) ResetBuyerInn() {
	m.buyer_inn = nil
	delete(m.clearedFields, document.FieldBuyerInn)
}

// SetItems sets the "items" field.
func (m *DocumentMutation) SetItems(ei []entity.LineItem) {
	m.items = &ei
	m.appenditems = nil
}

// Items returns the value of the "items" field in the mutation.
func (m *DocumentMutation) Items() (r []entity.LineItem, exists bool) {
	v := m.items
	if v == nil {
		return
	}
	return *v, true
}

// OldItems returns the old "items" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldItems(ctx context.Context) (v []entity.LineItem, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItems is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItems requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItems: %w", err)
	}
	return oldValue.Items, nil
}

// AppendItems adds ei to the "items" field.
func (m *DocumentMutation) AppendItems(ei []entity.LineItem) {
	m.appenditems = append(m.appenditems, ei...)
}

// AppendedItems returns the list of values that were appended to the "items" field in this mutation.
func (m *DocumentMutation) AppendedItems() ([]entity.LineItem, bool) {
	if len(m.appenditems) == 0 {
		return nil, false
	}
	return m.appenditems, true
}

// ResetItems resets all changes to the "items" field.
func (m *DocumentMutation) ResetItems() {
	m.items = nil
	m.appenditems = nil
}

// SetTotalAmount sets the "total_amount" field.
func (m *DocumentMutation) SetTotalAmount(f float64) {
	m.total_amount = &f
	m.addtotal_amount = nil
}

// TotalAmount returns the value of the "total_amount" field in the mutation.
func (m *DocumentMutation) TotalAmount() (r float64, exists bool) {
	v := m.total_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalAmount returns the old "total_amount" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldTotalAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalAmount: %w", err)
	}
	return oldValue.TotalAmount, nil
}

// AddTotalAmount adds f to the "total_amount" field.
func (m *DocumentMutation) AddTotalAmount(f float64) {
	if m.addtotal_amount != nil {
		*m.addtotal_amount += f
	} else {
		m.addtotal_amount = &f
	}
}

// AddedTotalAmount returns the value that was added to the "total_amount" field in this mutation.
func (m *DocumentMutation) AddedTotalAmount() (r float64, exists bool) {
	v := m.addtotal_amount
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalAmount resets all changes to the "total_amount" field.
func (m *DocumentMutation) ResetTotalAmount() {
	m.total_amount = nil
	m.addtotal_amount = nil
}

// SetConfidence sets the "confidence" field.
func (m *DocumentMutation) SetConfidence(i int) {
	m.confidence = &i
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *DocumentMutation) Confidence() (r int, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldConfidence(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds i to the "confidence" field.
func (m *DocumentMutation) AddConfidence(i int) {
	if m.addconfidence != nil {
		*m.addconfidence += i
	} else {
		m.addconfidence = &i
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *DocumentMutation) AddedConfidence() (r int, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *DocumentMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetPageCount sets the "page_count" field.
func (m *DocumentMutation) SetPageCount(i int) {
	m.page_count = &i
	m.addpage_count = nil
}

// PageCount returns the value of the "page_count" field in the mutation.
func (m *DocumentMutation) PageCount() (r int, exists bool) {
	v := m.page_count
	if v == nil {
		return
	}
	return *v, true
}

// OldPageCount returns the old "page_count" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldPageCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageCount: %w", err)
	}
	return oldValue.PageCount, nil
}

// AddPageCount adds i to the "page_count" field.
func (m *DocumentMutation) AddPageCount(i int) {
	if m.addpage_count != nil {
		*m.addpage_count += i
	} else {
		m.addpage_count = &i
	}
}

// AddedPageCount returns the value that was added to the "page_count" field in this mutation.
func (m *DocumentMutation) AddedPageCount() (r int, exists bool) {
	v := m.addpage_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetPageCount resets all changes to the "page_count" field.
func (m *DocumentMutation) ResetPageCount() {
	m.page_count = nil
	m.addpage_count = nil
}

// SetIsMerged sets the "is_merged" field.
func (m *DocumentMutation) SetIsMerged(b bool) {
	m.is_merged = &b
}

// IsMerged returns the value of the "is_merged" field in the mutation.
func (m *DocumentMutation) IsMerged() (r bool, exists bool) {
	v := m.is_merged
	if v == nil {
		return
	}
	return *v, true
}

// OldIsMerged returns the old "is_merged" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldIsMerged(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsMerged is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsMerged requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsMerged: %w", err)
	}
	return oldValue.IsMerged, nil
}

// ResetIsMerged resets all changes to the "is_merged" field.
func (m *DocumentMutation) ResetIsMerged() {
	m.is_merged = nil
}

// SetNeedsReview sets the "needs_review" field.
func (m *DocumentMutation) SetNeedsReview(b bool) {
	m.needs_review = &b
}

// NeedsReview returns the value of the "needs_review" field in the mutation.
func (m *DocumentMutation) NeedsReview() (r bool, exists bool) {
	v := m.needs_review
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsReview returns the old "needs_review" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldNeedsReview(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsReview: %w", err)
	}
	return oldValue.NeedsReview, nil
}

// ResetNeedsReview resets all changes to the "needs_review" field.
func (m *DocumentMutation) ResetNeedsReview() {
	m.needs_review = nil
}

// SetGroupKey sets the "group_key" field.
func (m *DocumentMutation) SetGroupKey(s string) {
	m.group_key = &s
}

// GroupKey returns the value of the "group_key" field in the mutation.
func (m *DocumentMutation) GroupKey() (r string, exists bool) {
	v := m.group_key
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupKey returns the old "group_key" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldGroupKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupKey: %w", err)
	}
	return oldValue.GroupKey, nil
}

// ClearGroupKey clears the value of the "group_key" field.
func (m *DocumentMutation) ClearGroupKey() {
	m.group_key = nil
	m.clearedFields[document.FieldGroupKey] = struct{}{}
}

// GroupKeyCleared returns if the "group_key" field was cleared in this mutation.
func (m *DocumentMutation) GroupKeyCleared() bool {
	_, ok := m.clearedFields[document.FieldGroupKey]
	return ok
}

// ResetGroupKey resets all changes to the "group_key" field.
func (m *DocumentMutation) ResetGroupKey() {
	m.group_key = nil
	delete(m.clearedFields, document.FieldGroupKey)
}

// SetWarnings sets the "warnings" field.
func (m *DocumentMutation) SetWarnings(s []string) {
	m.warnings = &s
	m.appendwarnings = nil
}

// Warnings returns the value of the "warnings" field in the mutation.
func (m *DocumentMutation) Warnings() (r []string, exists bool) {
	v := m.warnings
	if v == nil {
		return
	}
	return *v, true
}

// OldWarnings returns the old "warnings" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldWarnings(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWarnings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWarnings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWarnings: %w", err)
	}
	return oldValue.Warnings, nil
}

// AppendWarnings adds s to the "warnings" field.
func (m *DocumentMutation) AppendWarnings(s []string) {
	m.appendwarnings = append(m.appendwarnings, s...)
}

// AppendedWarnings returns the list of values that were appended to the "warnings" field in this mutation.
func (m *DocumentMutation) AppendedWarnings() ([]string, bool) {
	if len(m.appendwarnings) == 0 {
		return nil, false
	}
	return m.appendwarnings, true
}

// ClearWarnings clears the value of the "warnings" field.
func (m *DocumentMutation) ClearWarnings() {
	m.warnings = nil
	m.appendwarnings = nil
	m.clearedFields[document.FieldWarnings] = struct{}{}
}

// WarningsCleared returns if the "warnings" field was cleared in this mutation.
func (m *DocumentMutation) WarningsCleared() bool {
	_, ok := m.clearedFields[document.FieldWarnings]
	return ok
}

// ResetWarnings resets all changes to the "warnings" field.
func (m *DocumentMutation) ResetWarnings() {
	m.warnings = nil
	m.appendwarnings = nil
	delete(m.clearedFields, document.FieldWarnings)
}

// SetErrors sets the "errors" field.
func (m *DocumentMutation) SetErrors(s []string) {
	m.errors = &s
	m.appenderrors = nil
}

// Errors returns the value of the "errors" field in the mutation.
func (m *DocumentMutation) Errors() (r []string, exists bool) {
	v := m.errors
	if v == nil {
		return
	}
	return *v, true
}

// OldErrors returns the old "errors" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldErrors(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrors: %w", err)
	}
	return oldValue.Errors, nil
}

// AppendErrors adds s to the "errors" field.
func (m *DocumentMutation) AppendErrors(s []string) {
	m.appenderrors = append(m.appenderrors, s...)
}

// AppendedErrors returns the list of values that were appended to the "errors" field in this mutation.
func (m *DocumentMutation) AppendedErrors() ([]string, bool) {
	if len(m.appenderrors) == 0 {
		return nil, false
	}
	return m.appenderrors, true
}

// ClearErrors clears the value of the "errors" field.
func (m *DocumentMutation) ClearErrors() {
	m.errors = nil
	m.appenderrors = nil
	m.clearedFields[document.FieldErrors] = struct{}{}
}

// ErrorsCleared returns if the "errors" field was cleared in this mutation.
func (m *DocumentMutation) ErrorsCleared() bool {
	_, ok := m.clearedFields[document.FieldErrors]
	return ok
}

// ResetErrors resets all changes to the "errors" field.
func (m *DocumentMutation) ResetErrors() {
	m.errors = nil
	m.appenderrors = nil
	delete(m.clearedFields, document.FieldErrors)
}

// SetStatus sets the "status" field.
func (m *DocumentMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *DocumentMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DocumentMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocumentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DocumentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DocumentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DocumentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddSubmissionIDs adds the "submissions" edge to the SubmissionRecord entity by ids.
func (m *DocumentMutation) AddSubmissionIDs(ids ...uuid.UUID) {
	if m.submissions == nil {
		m.submissions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.submissions[ids[i]] = struct{}{}
	}
}

// ClearSubmissions clears the "submissions" edge to the SubmissionRecord entity.
func (m *DocumentMutation) ClearSubmissions() {
	m.clearedsubmissions = true
}

// SubmissionsCleared reports if the "submissions" edge to the SubmissionRecord entity was cleared.
func (m *DocumentMutation) SubmissionsCleared() bool {
	return m.clearedsubmissions
}

// RemoveSubmissionIDs removes the "submissions" edge to the SubmissionRecord entity by IDs.
func (m *DocumentMutation) RemoveSubmissionIDs(ids ...uuid.UUID) {
	if m.removedsubmissions == nil {
		m.removedsubmissions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.submissions, ids[i])
		m.removedsubmissions[ids[i]] = struct{}{}
	}
}

// RemovedSubmissions returns the removed IDs of the "submissions" edge to the SubmissionRecord entity.
func (m *DocumentMutation) RemovedSubmissionsIDs() (ids []uuid.UUID) {
	for id := range m.removedsubmissions {
		ids = append(ids, id)
	}
	return
}

// SubmissionsIDs returns the "submissions" edge IDs in the mutation.
func (m *DocumentMutation) SubmissionsIDs() (ids []uuid.UUID) {
	for id := range m.submissions {
		ids = append(ids, id)
	}
	return
}

// ResetSubmissions resets all changes to the "submissions" edge.
func (m *DocumentMutation) ResetSubmissions() {
	m.submissions = nil
	m.clearedsubmissions = false
	m.removedsubmissions = nil
}

// AddEscalationIDs adds the "escalations" edge to the EscalationItem entity by ids.
func (m *DocumentMutation) AddEscalationIDs(ids ...uuid.UUID) {
	if m.escalations == nil {
		m.escalations = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.escalations[ids[i]] = struct{}{}
	}
}

// ClearEscalations clears the "escalations" edge to the EscalationItem entity.
func (m *DocumentMutation) ClearEscalations() {
	m.clearedescalations = true
}

// EscalationsCleared reports if the "escalations" edge to the EscalationItem entity was cleared.
func (m *DocumentMutation) EscalationsCleared() bool {
	return m.clearedescalations
}

// RemoveEscalationIDs removes the "escalations" edge to the EscalationItem entity by IDs.
func (m *DocumentMutation) RemoveEscalationIDs(ids ...uuid.UUID) {
	if m.removedescalations == nil {
		m.removedescalations = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.escalations, ids[i])
		m.removedescalations[ids[i]] = struct{}{}
	}
}

// RemovedEscalations returns the removed IDs of the "escalations" edge to the EscalationItem entity.
func (m *DocumentMutation) RemovedEscalationsIDs() (ids []uuid.UUID) {
	for id := range m.removedescalations {
		ids = append(ids, id)
	}
	return
}

// EscalationsIDs returns the "escalations" edge IDs in the mutation.
func (m *DocumentMutation) EscalationsIDs() (ids []uuid.UUID) {
	for id := range m.escalations {
		ids = append(ids, id)
	}
	return
}

// ResetEscalations resets all changes to the "escalations" edge.
func (m *DocumentMutation) ResetEscalations() {
	m.escalations = nil
	m.clearedescalations = false
	m.removedescalations = nil
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.doc_type != nil {
		fields = append(fields, document.FieldDocType)
	}
	if m.doc_number != nil {
		fields = append(fields, document.FieldDocNumber)
	}
	if m.doc_date != nil {
		fields = append(fields, document.FieldDocDate)
	}
	if m.supplier_name != nil {
		fields = append(fields, document.FieldSupplierName)
	}
	if m.supplier_inn != nil {
		fields = append(fields, document.FieldSupplierInn)
	}
	if m.buyer_name != nil {
		fields = append(fields, document.FieldBuyerName)
	}
	if m.buyer_inn != nil {
		fields = append(fields, document.FieldBuyerInn)
	}
	if m.items != nil {
		fields = append(fields, document.FieldItems)
	}
	if m.total_amount != nil {
		fields = append(fields, document.FieldTotalAmount)
	}
	if m.confidence != nil {
		fields = append(fields, document.FieldConfidence)
	}
	if m.page_count != nil {
		fields = append(fields, document.FieldPageCount)
	}
	if m.is_merged != nil {
		fields = append(fields, document.FieldIsMerged)
	}
	if m.needs_review != nil {
		fields = append(fields, document.FieldNeedsReview)
	}
	if m.group_key != nil {
		fields = append(fields, document.FieldGroupKey)
	}
	if m.warnings != nil {
		fields = append(fields, document.FieldWarnings)
	}
	if m.errors != nil {
		fields = append(fields, document.FieldErrors)
	}
	if m.status != nil {
		fields = append(fields, document.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, document.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, document.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldDocType:
		return m.DocType()
	case document.FieldDocNumber:
		return m.DocNumber()
	case document.FieldDocDate:
		return m.DocDate()
	case document.FieldSupplierName:
		return m.SupplierName()
	case document.FieldSupplierInn:
		return m.SupplierInn()
	case document.FieldBuyerName:
		return m.BuyerName()
	case document.FieldBuyerInn:
		return m.BuyerInn()
	case document.FieldItems:
		return m.Items()
	case document.FieldTotalAmount:
		return m.TotalAmount()
	case document.FieldConfidence:
		return m.Confidence()
	case document.FieldPageCount:
		return m.PageCount()
	case document.FieldIsMerged:
		return m.IsMerged()
	case document.FieldNeedsReview:
		return m.NeedsReview()
	case document.FieldGroupKey:
		return m.GroupKey()
	case document.FieldWarnings:
		return m.Warnings()
	case document.FieldErrors:
		return m.Errors()
	case document.FieldStatus:
		return m.Status()
	case document.FieldCreatedAt:
		return m.CreatedAt()
	case document.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldDocType:
		return m.OldDocType(ctx)
	case document.FieldDocNumber:
		return m.OldDocNumber(ctx)
	case document.FieldDocDate:
		return m.OldDocDate(ctx)
	case document.FieldSupplierName:
		return m.OldSupplierName(ctx)
	case document.FieldSupplierInn:
		return m.OldSupplierInn(ctx)
	case document.FieldBuyerName:
		return m.OldBuyerName(ctx)
	case document.FieldBuyerInn:
		return m.OldBuyerInn(ctx)
	case document.FieldItems:
		return m.OldItems(ctx)
	case document.FieldTotalAmount:
		return m.OldTotalAmount(ctx)
	case document.FieldConfidence:
		return m.OldConfidence(ctx)
	case document.FieldPageCount:
		return m.OldPageCount(ctx)
	case document.FieldIsMerged:
		return m.OldIsMerged(ctx)
	case document.FieldNeedsReview:
		return m.OldNeedsReview(ctx)
	case document.FieldGroupKey:
		return m.OldGroupKey(ctx)
	case document.FieldWarnings:
		return m.OldWarnings(ctx)
	case document.FieldErrors:
		return m.OldErrors(ctx)
	case document.FieldStatus:
		return m.OldStatus(ctx)
	case document.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case document.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldDocType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocType(v)
		return nil
	case document.FieldDocNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocNumber(v)
		return nil
	case document.FieldDocDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocDate(v)
		return nil
	case document.FieldSupplierName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupplierName(v)
		return nil
	case document.FieldSupplierInn:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupplierInn(v)
		return nil
	case document.FieldBuyerName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuyerName(v)
		return nil
	case document.FieldBuyerInn:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuyerInn(v)
		return nil
	case document.FieldItems:
		v, ok := value.([]entity.LineItem)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItems(v)
		return nil
	case document.FieldTotalAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalAmount(v)
		return nil
	case document.FieldConfidence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case document.FieldPageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageCount(v)
		return nil
	case document.FieldIsMerged:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsMerged(v)
		return nil
	case document.FieldNeedsReview:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsReview(v)
		return nil
	case document.FieldGroupKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupKey(v)
		return nil
	case document.FieldWarnings:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWarnings(v)
		return nil
	case document.FieldErrors:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrors(v)
		return nil
	case document.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case document.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case document.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_amount != nil {
		fields = append(fields, document.FieldTotalAmount)
	}
	if m.addconfidence != nil {
		fields = append(fields, document.FieldConfidence)
	}
	if m.addpage_count != nil {
		fields = append(fields, document.FieldPageCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case document.FieldTotalAmount:
		return m.AddedTotalAmount()
	case document.FieldConfidence:
		return m.AddedConfidence()
	case document.FieldPageCount:
		return m.AddedPageCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case document.FieldTotalAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalAmount(v)
		return nil
	case document.FieldConfidence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case document.FieldPageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPageCount(v)
		return nil
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldDocNumber) {
		fields = append(fields, document.FieldDocNumber)
	}
	if m.FieldCleared(document.FieldDocDate) {
		fields = append(fields, document.FieldDocDate)
	}
	if m.FieldCleared(document.FieldSupplierName) {
		fields = append(fields, document.FieldSupplierName)
	}
	if m.FieldCleared(document.FieldSupplierInn) {
		fields = append(fields, document.FieldSupplierInn)
	}
	if m.FieldCleared(document.FieldBuyerName) {
		fields = append(fields, document.FieldBuyerName)
	}
	if m.FieldCleared(document.FieldBuyerInn) {
		fields = append(fields, document.FieldBuyerInn)
	}
	if m.FieldCleared(document.FieldGroupKey) {
		fields = append(fields, document.FieldGroupKey)
	}
	if m.FieldCleared(document.FieldWarnings) {
		fields = append(fields, document.FieldWarnings)
	}
	if m.FieldCleared(document.FieldErrors) {
		fields = append(fields, document.FieldErrors)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	switch name {
	case document.FieldDocNumber:
		m.ClearDocNumber()
		return nil
	case document.FieldDocDate:
		m.ClearDocDate()
		return nil
	case document.FieldSupplierName:
		m.ClearSupplierName()
		return nil
	case document.FieldSupplierInn:
		m.ClearSupplierInn()
		return nil
	case document.FieldBuyerName:
		m.ClearBuyerName()
		return nil
	case document.FieldBuyerInn:
		m.ClearBuyerInn()
		return nil
	case document.FieldGroupKey:
		m.ClearGroupKey()
		return nil
	case document.FieldWarnings:
		m.ClearWarnings()
		return nil
	case document.FieldErrors:
		m.ClearErrors()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldDocType:
		m.ResetDocType()
		return nil
	case document.FieldDocNumber:
		m.ResetDocNumber()
		return nil
	case document.FieldDocDate:
		m.ResetDocDate()
		return nil
	case document.FieldSupplierName:
		m.ResetSupplierName()
		return nil
	case document.FieldSupplierInn:
		m.ResetSupplierInn()
		return nil
	case document.FieldBuyerName:
		m.ResetBuyerName()
		return nil
	case document.FieldBuyerInn:
		m.ResetBuyerInn()
		return nil
	case document.FieldItems:
		m.ResetItems()
		return nil
	case document.FieldTotalAmount:
		m.ResetTotalAmount()
		return nil
	case document.FieldConfidence:
		m.ResetConfidence()
		return nil
	case document.FieldPageCount:
		m.ResetPageCount()
		return nil
	case document.FieldIsMerged:
		m.ResetIsMerged()
		return nil
	case document.FieldNeedsReview:
		m.ResetNeedsReview()
		return nil
	case document.FieldGroupKey:
		m.ResetGroupKey()
		return nil
	case document.FieldWarnings:
		m.ResetWarnings()
		return nil
	case document.FieldErrors:
		m.ResetErrors()
		return nil
	case document.FieldStatus:
		m.ResetStatus()
		return nil
	case document.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case document.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.submissions != nil {
		edges = append(edges, document.EdgeSubmissions)
	}
	if m.escalations != nil {
		edges = append(edges, document.EdgeEscalations)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeSubmissions:
		ids := make([]ent.Value, 0, len(m.submissions))
		for id := range m.submissions {
			ids = append(ids, id)
		}
		return ids
	case document.EdgeEscalations:
		ids := make([]ent.Value, 0, len(m.escalations))
		for id := range m.escalations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedsubmissions != nil {
		edges = append(edges, document.EdgeSubmissions)
	}
	if m.removedescalations != nil {
		edges = append(edges, document.EdgeEscalations)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeSubmissions:
		ids := make([]ent.Value, 0, len(m.removedsubmissions))
		for id := range m.removedsubmissions {
			ids = append(ids, id)
		}
		return ids
	case document.EdgeEscalations:
		ids := make([]ent.Value, 0, len(m.removedescalations))
		for id := range m.removedescalations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsubmissions {
		edges = append(edges, document.EdgeSubmissions)
	}
	if m.clearedescalations {
		edges = append(edges, document.EdgeEscalations)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgeSubmissions:
		return m.clearedsubmissions
	case document.EdgeEscalations:
		return m.clearedescalations
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgeSubmissions:
		m.ResetSubmissions()
		return nil
	case document.EdgeEscalations:
		m.ResetEscalations()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// EscalationItemMutation represents an operation that mutates the EscalationItem nodes in the graph.
type EscalationItemMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	raw_name        *string
	normalized_name *string
	catalog_type    *string
	resolved_id     *uuid.UUID
	resolved_name   *string
	resolved        *bool
	created_at      *time.Time
	clearedFields   map[string]struct{}
	document        *uuid.UUID
	cleareddocument bool
	done            bool
	oldValue        func(context.Context) (*EscalationItem, error)
	predicates      []predicate.EscalationItem
}

var _ ent.Mutation = (*EscalationItemMutation)(nil)

// escalationitemOption allows management of the mutation configuration using functional options.
type escalationitemOption func(*EscalationItemMutation)

// newEscalationItemMutation creates new mutation for the EscalationItem entity.
func newEscalationItemMutation(c config, op Op, opts ...escalationitemOption) *EscalationItemMutation {
	m := &EscalationItemMutation{
		config:        c,
		op:            op,
		typ:           TypeEscalationItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEscalationItemID sets the ID field of the mutation.
func withEscalationItemID(id uuid.UUID) escalationitemOption {
	return func(m *EscalationItemMutation) {
		var (
			err   error
			once  sync.Once
			value *EscalationItem
		)
		m.oldValue = func(ctx context.Context) (*EscalationItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EscalationItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEscalationItem sets the old EscalationItem of the mutation.
func withEscalationItem(node *EscalationItem) escalationitemOption {
	return func(m *EscalationItemMutation) {
		m.oldValue = func(context.Context) (*EscalationItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EscalationItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EscalationItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EscalationItem entities.
func (m *EscalationItemMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EscalationItemMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EscalationItemMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EscalationItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *EscalationItemMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *EscalationItemMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the EscalationItem entity.
// If the EscalationItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EscalationItemMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *EscalationItemMutation) ResetDocumentID() {
	m.document = nil
}

// SetRawName sets the "raw_name" field.
func (m *EscalationItemMutation) SetRawName(s string) {
	m.raw_name = &s
}

// RawName returns the value of the "raw_name" field in the mutation.
func (m *EscalationItemMutation) RawName() (r string, exists bool) {
	v := m.raw_name
	if v == nil {
		return
	}
	return *v, true
}

// OldRawName returns the old "raw_name" field's value of the EscalationItem entity.
// If the EscalationItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EscalationItemMutation) OldRawName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawName: %w", err)
	}
	return oldValue.RawName, nil
}

// ResetRawName resets all changes to the "raw_name" field.
func (m *EscalationItemMutation) ResetRawName() {
	m.raw_name = nil
}

// SetNormalizedName sets the "normalized_name" field.
func (m *EscalationItemMutation) SetNormalizedName(s string) {
	m.normalized_name = &s
}

// NormalizedName returns the value of the "normalized_name" field in the mutation.
func (m *EscalationItemMutation) NormalizedName() (r string, exists bool) {
	v := m.normalized_name
	if v == nil {
		return
	}
	return *v, true
}

// OldNormalizedName returns the old "normalized_name" field's value of the EscalationItem entity.
// If the EscalationItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EscalationItemMutation) OldNormalizedName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNormalizedName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNormalizedName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNormalizedName: %w", err)
	}
	return oldValue.NormalizedName, nil
}

// ResetNormalizedName resets all changes to the "normalized_name" field.
func (m *EscalationItemMutation) ResetNormalizedName() {
	m.normalized_name = nil
}

// SetCatalogType sets the "catalog_type" field.
func (m *EscalationItemMutation) SetCatalogType(s string) {
	m.catalog_type = &s
}

// CatalogType returns the value of the "catalog_type" field in the mutation.
func (m *EscalationItemMutation) CatalogType() (r string, exists bool) {
	v := m.catalog_type
	if v == nil {
		return
	}
	return *v, true
}

// OldCatalogType returns the old "catalog_type" field's value of the EscalationItem entity.
// If the EscalationItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EscalationItemMutation) OldCatalogType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCatalogType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCatalogType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCatalogType: %w", err)
	}
	return oldValue.CatalogType, nil
}

// ResetCatalogType resets all changes to the "catalog_type" field.
func (m *EscalationItemMutation) ResetCatalogType() {
	m.catalog_type = nil
}

// SetResolvedID sets the "resolved_id" field.
func (m *EscalationItemMutation) SetResolvedID(u uuid.UUID) {
	m.resolved_id = &u
}

// ResolvedID returns the value of the "resolved_id" field in the mutation.
func (m *EscalationItemMutation) ResolvedID() (r uuid.UUID, exists bool) {
	v := m.resolved_id
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedID returns the old "resolved_id" field's value of the EscalationItem entity.
// If the EscalationItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EscalationItemMutation) OldResolvedID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedID: %w", err)
	}
	return oldValue.ResolvedID, nil
}

// ClearResolvedID clears the value of the "resolved_id" field.
func (m *EscalationItemMutation) ClearResolvedID() {
	m.resolved_id = nil
	m.clearedFields[escalationitem.FieldResolvedID] = struct{}{}
}

// ResolvedIDCleared returns if the "resolved_id" field was cleared in this mutation.
func (m *EscalationItemMutation) ResolvedIDCleared() bool {
	_, ok := m.clearedFields[escalationitem.FieldResolvedID]
	return ok
}

// ResetResolvedID resets all changes to the "resolved_id" field.
func (m *EscalationItemMutation) ResetResolvedID() {
	m.resolved_id = nil
	delete(m.clearedFields, escalationitem.FieldResolvedID)
}

// SetResolvedName sets the "resolved_name" field.
func (m *EscalationItemMutation) SetResolvedName(s string) {
	m.resolved_name = &s
}

// ResolvedName returns the value of the "resolved_name" field in the mutation.
func (m *EscalationItemMutation) ResolvedName() (r string, exists bool) {
	v := m.resolved_name
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedName returns the old "resolved_name" field's value of the EscalationItem entity.
// If the EscalationItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EscalationItemMutation) OldResolvedName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedName: %w", err)
	}
	return oldValue.ResolvedName, nil
}

// ClearResolvedName clears the value of the "resolved_name" field.
func (m *EscalationItemMutation) ClearResolvedName() {
	m.resolved_name = nil
	m.clearedFields[escalationitem.FieldResolvedName] = struct{}{}
}

// ResolvedNameCleared returns if the "resolved_name" field was cleared in this mutation.
func (m *EscalationItemMutation) ResolvedNameCleared() bool {
	_, ok := m.clearedFields[escalationitem.FieldResolvedName]
	return ok
}

// ResetResolvedName resets all changes to the "resolved_name" field.
func (m *EscalationItemMutation) ResetResolvedName() {
	m.resolved_name = nil
	delete(m.clearedFields, escalationitem.FieldResolvedName)
}

// SetResolved sets the "resolved" field.
func (m *EscalationItemMutation) SetResolved(b bool) {
	m.resolved = &b
}

// Resolved returns the value of the "resolved" field in the mutation.
func (m *EscalationItemMutation) Resolved() (r bool, exists bool) {
	v := m.resolved
	if v == nil {
		return
	}
	return *v, true
}

// OldResolved returns the old "resolved" field's value of the EscalationItem entity.
// If the EscalationItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EscalationItemMutation) OldResolved(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolved is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolved requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolved: %w", err)
	}
	return oldValue.Resolved, nil
}

// ResetResolved resets all changes to the "resolved" field.
func (m *EscalationItemMutation) ResetResolved() {
	m.resolved = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EscalationItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EscalationItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EscalationItem entity.
// If the EscalationItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EscalationItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EscalationItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *EscalationItemMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[escalationitem.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *EscalationItemMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *EscalationItemMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *EscalationItemMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the EscalationItemMutation builder.
func (m *EscalationItemMutation) Where(ps ...predicate.EscalationItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EscalationItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EscalationItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EscalationItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EscalationItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EscalationItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EscalationItem).
func (m *EscalationItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EscalationItemMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.document != nil {
		fields = append(fields, escalationitem.FieldDocumentID)
	}
	if m.raw_name != nil {
		fields = append(fields, escalationitem.FieldRawName)
	}
	if m.normalized_name != nil {
		fields = append(fields, escalationitem.FieldNormalizedName)
	}
	if m.catalog_type != nil {
		fields = append(fields, escalationitem.FieldCatalogType)
	}
	if m.resolved_id != nil {
		fields = append(fields, escalationitem.FieldResolvedID)
	}
	if m.resolved_name != nil {
		fields = append(fields, escalationitem.FieldResolvedName)
	}
	if m.resolved != nil {
		fields = append(fields, escalationitem.FieldResolved)
	}
	if m.created_at != nil {
		fields = append(fields, escalationitem.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EscalationItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case escalationitem.FieldDocumentID:
		return m.DocumentID()
	case escalationitem.FieldRawName:
		return m.RawName()
	case escalationitem.FieldNormalizedName:
		return m.NormalizedName()
	case escalationitem.FieldCatalogType:
		return m.CatalogType()
	case escalationitem.FieldResolvedID:
		return m.ResolvedID()
	case escalationitem.FieldResolvedName:
		return m.ResolvedName()
	case escalationitem.FieldResolved:
		return m.Resolved()
	case escalationitem.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EscalationItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case escalationitem.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case escalationitem.FieldRawName:
		return m.OldRawName(ctx)
	case escalationitem.FieldNormalizedName:
		return m.OldNormalizedName(ctx)
	case escalationitem.FieldCatalogType:
		return m.OldCatalogType(ctx)
	case escalationitem.FieldResolvedID:
		return m.OldResolvedID(ctx)
	case escalationitem.FieldResolvedName:
		return m.OldResolvedName(ctx)
	case escalationitem.FieldResolved:
		return m.OldResolved(ctx)
	case escalationitem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EscalationItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EscalationItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case escalationitem.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case escalationitem.FieldRawName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawName(v)
		return nil
	case escalationitem.FieldNormalizedName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNormalizedName(v)
		return nil
	case escalationitem.FieldCatalogType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCatalogType(v)
		return nil
	case escalationitem.FieldResolvedID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedID(v)
		return nil
	case escalationitem.FieldResolvedName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedName(v)
		return nil
	case escalationitem.FieldResolved:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolved(v)
		return nil
	case escalationitem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EscalationItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EscalationItemMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EscalationItemMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EscalationItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown EscalationItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EscalationItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(escalationitem.FieldResolvedID) {
		fields = append(fields, escalationitem.FieldResolvedID)
	}
	if m.FieldCleared(escalationitem.FieldResolvedName) {
		fields = append(fields, escalationitem.FieldResolvedName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EscalationItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EscalationItemMutation) ClearField(name string) error {
	switch name {
	case escalationitem.FieldResolvedID:
		m.ClearResolvedID()
		return nil
	case escalationitem.FieldResolvedName:
		m.ClearResolvedName()
		return nil
	}
	return fmt.Errorf("unknown EscalationItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EscalationItemMutation) ResetField(name string) error {
	switch name {
	case escalationitem.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case escalationitem.FieldRawName:
		m.ResetRawName()
		return nil
	case escalationitem.FieldNormalizedName:
		m.ResetNormalizedName()
		return nil
	case escalationitem.FieldCatalogType:
		m.ResetCatalogType()
		return nil
	case escalationitem.FieldResolvedID:
		m.ResetResolvedID()
		return nil
	case escalationitem.FieldResolvedName:
		m.ResetResolvedName()
		return nil
	case escalationitem.FieldResolved:
		m.ResetResolved()
		return nil
	case escalationitem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown EscalationItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EscalationItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document != nil {
		edges = append(edges, escalationitem.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EscalationItemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case escalationitem.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EscalationItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EscalationItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EscalationItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument {
		edges = append(edges, escalationitem.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EscalationItemMutation) EdgeCleared(name string) bool {
	switch name {
	case escalationitem.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EscalationItemMutation) ClearEdge(name string) error {
	switch name {
	case escalationitem.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown EscalationItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EscalationItemMutation) ResetEdge(name string) error {
	switch name {
	case escalationitem.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown EscalationItem edge %s", name)
}

// MappingEntryMutation represents an operation that mutates the MappingEntry nodes in the graph.
type MappingEntryMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	raw_name       *string
	corrected_name *string
	catalog_id     *uuid.UUID
	catalog_type   *string
	confidence     *int
	addconfidence  *int
	source         *string
	use_count      *int
	adduse_count   *int
	last_used_at   *time.Time
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*MappingEntry, error)
	predicates     []predicate.MappingEntry
}

var _ ent.Mutation = (*MappingEntryMutation)(nil)

// mappingentryOption allows management of the mutation configuration using functional options.
type mappingentryOption func(*MappingEntryMutation)

// newMappingEntryMutation creates new mutation for the MappingEntry entity.
func newMappingEntryMutation(c config, op Op, opts ...mappingentryOption) *MappingEntryMutation {
	m := &MappingEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeMappingEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMappingEntryID sets the ID field of the mutation.
func withMappingEntryID(id uuid.UUID) mappingentryOption {
	return func(m *MappingEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *MappingEntry
		)
		m.oldValue = func(ctx context.Context) (*MappingEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MappingEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMappingEntry sets the old MappingEntry of the mutation.
func withMappingEntry(node *MappingEntry) mappingentryOption {
	return func(m *MappingEntryMutation) {
		m.oldValue = func(context.Context) (*MappingEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MappingEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MappingEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MappingEntry entities.
func (m *MappingEntryMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MappingEntryMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MappingEntryMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MappingEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRawName sets the "raw_name" field.
func (m *MappingEntryMutation) SetRawName(s string) {
	m.raw_name = &s
}

// RawName returns the value of the "raw_name" field in the mutation.
func (m *MappingEntryMutation) RawName() (r string, exists bool) {
	v := m.raw_name
	if v == nil {
		return
	}
	return *v, true
}

// OldRawName returns the old "raw_name" field's value of the MappingEntry entity.
// If the MappingEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MappingEntryMutation) OldRawName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawName: %w", err)
	}
	return oldValue.RawName, nil
}

// ResetRawName resets all changes to the "raw_name" field.
func (m *MappingEntryMutation) ResetRawName() {
	m.raw_name = nil
}

// SetCorrectedName sets the "corrected_name" field.
func (m *MappingEntryMutation) SetCorrectedName(s string) {
	m.corrected_name = &s
}

// CorrectedName returns the value of the "corrected_name" field in the mutation.
func (m *MappingEntryMutation) CorrectedName() (r string, exists bool) {
	v := m.corrected_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectedName returns the old "corrected_name" field's value of the MappingEntry entity.
// If the MappingEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MappingEntryMutation) OldCorrectedName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectedName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectedName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectedName: %w", err)
	}
	return oldValue.CorrectedName, nil
}

// ResetCorrectedName resets all changes to the "corrected_name" field.
func (m *MappingEntryMutation) ResetCorrectedName() {
	m.corrected_name = nil
}

// SetCatalogID sets the "catalog_id" field.
func (m *MappingEntryMutation) SetCatalogID(u uuid.UUID) {
	m.catalog_id = &u
}

// CatalogID returns the value of the "catalog_id" field in the mutation.
func (m *MappingEntryMutation) CatalogID() (r uuid.UUID, exists bool) {
	v := m.catalog_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCatalogID returns the old "catalog_id" field's value of the MappingEntry entity.
// If the MappingEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MappingEntryMutation) OldCatalogID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCatalogID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCatalogID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCatalogID: %w", err)
	}
	return oldValue.CatalogID, nil
}

// ResetCatalogID resets all changes to the "catalog_id" field.
func (m *MappingEntryMutation) ResetCatalogID() {
	m.catalog_id = nil
}

// SetCatalogType sets the "catalog_type" field.
func (m *MappingEntryMutation) SetCatalogType(s string) {
	m.catalog_type = &s
}

// CatalogType returns the value of the "catalog_type" field in the mutation.
func (m *MappingEntryMutation) CatalogType() (r string, exists bool) {
	v := m.catalog_type
	if v == nil {
		return
	}
	return *v, true
}

// OldCatalogType returns the old "catalog_type" field's value of the MappingEntry entity.
// If the MappingEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MappingEntryMutation) OldCatalogType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCatalogType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCatalogType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCatalogType: %w", err)
	}
	return oldValue.CatalogType, nil
}

// ResetCatalogType resets all changes to the "catalog_type" field.
func (m *MappingEntryMutation) ResetCatalogType() {
	m.catalog_type = nil
}

// SetConfidence sets the "confidence" field.
func (m *MappingEntryMutation) SetConfidence(i int) {
	m.confidence = &i
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *MappingEntryMutation) Confidence() (r int, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the MappingEntry entity.
// If the MappingEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MappingEntryMutation) OldConfidence(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds i to the "confidence" field.
func (m *MappingEntryMutation) AddConfidence(i int) {
	if m.addconfidence != nil {
		*m.addconfidence += i
	} else {
		m.addconfidence = &i
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *MappingEntryMutation) AddedConfidence() (r int, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *MappingEntryMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetSource sets the "source" field.
func (m *MappingEntryMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *MappingEntryMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the MappingEntry entity.
// If the MappingEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MappingEntryMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *MappingEntryMutation) ResetSource() {
	m.source = nil
}

// SetUseCount sets the "use_count" field.
func (m *MappingEntryMutation) SetUseCount(i int) {
	m.use_count = &i
	m.adduse_count = nil
}

// UseCount returns the value of the "use_count" field in the mutation.
func (m *MappingEntryMutation) UseCount() (r int, exists bool) {
	v := m.use_count
	if v == nil {
		return
	}
	return *v, true
}

// OldUseCount returns the old "use_count" field's value of the MappingEntry entity.
// If the MappingEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MappingEntryMutation) OldUseCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUseCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUseCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUseCount: %w", err)
	}
	return oldValue.UseCount, nil
}

// AddUseCount adds i to the "use_count" field.
func (m *MappingEntryMutation) AddUseCount(i int) {
	if m.adduse_count != nil {
		*m.adduse_count += i
	} else {
		m.adduse_count = &i
	}
}

// AddedUseCount returns the value that was added to the "use_count" field in this mutation.
func (m *MappingEntryMutation) AddedUseCount() (r int, exists bool) {
	v := m.adduse_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetUseCount resets all changes to the "use_count" field.
func (m *MappingEntryMutation) ResetUseCount() {
	m.use_count = nil
	m.adduse_count = nil
}

// SetLastUsedAt sets the "last_used_at" field.
func (m *MappingEntryMutation) SetLastUsedAt(t time.Time) {
	m.last_used_at = &t
}

// LastUsedAt returns the value of the "last_used_at" field in the mutation.
func (m *MappingEntryMutation) LastUsedAt() (r time.Time, exists bool) {
	v := m.last_used_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUsedAt returns the old "last_used_at" field's value of the MappingEntry entity.
// If the MappingEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MappingEntryMutation) OldLastUsedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUsedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUsedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUsedAt: %w", err)
	}
	return oldValue.LastUsedAt, nil
}

// ResetLastUsedAt resets all changes to the "last_used_at" field.
func (m *MappingEntryMutation) ResetLastUsedAt() {
	m.last_used_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *MappingEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MappingEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MappingEntry entity.
// If the MappingEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MappingEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MappingEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the MappingEntryMutation builder.
func (m *MappingEntryMutation) Where(ps ...predicate.MappingEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MappingEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MappingEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MappingEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MappingEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MappingEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MappingEntry).
func (m *MappingEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MappingEntryMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.raw_name != nil {
		fields = append(fields, mappingentry.FieldRawName)
	}
	if m.corrected_name != nil {
		fields = append(fields, mappingentry.FieldCorrectedName)
	}
	if m.catalog_id != nil {
		fields = append(fields, mappingentry.FieldCatalogID)
	}
	if m.catalog_type != nil {
		fields = append(fields, mappingentry.FieldCatalogType)
	}
	if m.confidence != nil {
		fields = append(fields, mappingentry.FieldConfidence)
	}
	if m.source != nil {
		fields = append(fields, mappingentry.FieldSource)
	}
	if m.use_count != nil {
		fields = append(fields, mappingentry.FieldUseCount)
	}
	if m.last_used_at != nil {
		fields = append(fields, mappingentry.FieldLastUsedAt)
	}
	if m.created_at != nil {
		fields = append(fields, mappingentry.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MappingEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case mappingentry.FieldRawName:
		return m.RawName()
	case mappingentry.FieldCorrectedName:
		return m.CorrectedName()
	case mappingentry.FieldCatalogID:
		return m.CatalogID()
	case mappingentry.FieldCatalogType:
		return m.CatalogType()
	case mappingentry.FieldConfidence:
		return m.Confidence()
	case mappingentry.FieldSource:
		return m.Source()
	case mappingentry.FieldUseCount:
		return m.UseCount()
	case mappingentry.FieldLastUsedAt:
		return m.LastUsedAt()
	case mappingentry.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MappingEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case mappingentry.FieldRawName:
		return m.OldRawName(ctx)
	case mappingentry.FieldCorrectedName:
		return m.OldCorrectedName(ctx)
	case mappingentry.FieldCatalogID:
		return m.OldCatalogID(ctx)
	case mappingentry.FieldCatalogType:
		return m.OldCatalogType(ctx)
	case mappingentry.FieldConfidence:
		return m.OldConfidence(ctx)
	case mappingentry.FieldSource:
		return m.OldSource(ctx)
	case mappingentry.FieldUseCount:
		return m.OldUseCount(ctx)
	case mappingentry.FieldLastUsedAt:
		return m.OldLastUsedAt(ctx)
	case mappingentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MappingEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MappingEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case mappingentry.FieldRawName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawName(v)
		return nil
	case mappingentry.FieldCorrectedName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectedName(v)
		return nil
	case mappingentry.FieldCatalogID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCatalogID(v)
		return nil
	case mappingentry.FieldCatalogType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCatalogType(v)
		return nil
	case mappingentry.FieldConfidence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case mappingentry.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case mappingentry.FieldUseCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUseCount(v)
		return nil
	case mappingentry.FieldLastUsedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUsedAt(v)
		return nil
	case mappingentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MappingEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MappingEntryMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, mappingentry.FieldConfidence)
	}
	if m.adduse_count != nil {
		fields = append(fields, mappingentry.FieldUseCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MappingEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case mappingentry.FieldConfidence:
		return m.AddedConfidence()
	case mappingentry.FieldUseCount:
		return m.AddedUseCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MappingEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case mappingentry.FieldConfidence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case mappingentry.FieldUseCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUseCount(v)
		return nil
	}
	return fmt.Errorf("unknown MappingEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MappingEntryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MappingEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MappingEntryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown MappingEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MappingEntryMutation) ResetField(name string) error {
	switch name {
	case mappingentry.FieldRawName:
		m.ResetRawName()
		return nil
	case mappingentry.FieldCorrectedName:
		m.ResetCorrectedName()
		return nil
	case mappingentry.FieldCatalogID:
		m.ResetCatalogID()
		return nil
	case mappingentry.FieldCatalogType:
		m.ResetCatalogType()
		return nil
	case mappingentry.FieldConfidence:
		m.ResetConfidence()
		return nil
	case mappingentry.FieldSource:
		m.ResetSource()
		return nil
	case mappingentry.FieldUseCount:
		m.ResetUseCount()
		return nil
	case mappingentry.FieldLastUsedAt:
		m.ResetLastUsedAt()
		return nil
	case mappingentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown MappingEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MappingEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MappingEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MappingEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MappingEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MappingEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MappingEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MappingEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MappingEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MappingEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MappingEntry edge %s", name)
}

// SubmissionRecordMutation represents an operation that mutates the SubmissionRecord nodes in the graph.
type SubmissionRecordMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	doc_number       *string
	destination_type *string
	store_id         *uuid.UUID
	store_name       *string
	supplier_id      *uuid.UUID
	supplier_name    *string
	doc_date         *time.Time
	items            *[]entity.LineItem
	appenditems      []entity.LineItem
	total_amount     *float64
	addtotal_amount  *float64
	status           *string
	error_message    *string
	warnings         *[]string
	appendwarnings   []string
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	document         *uuid.UUID
	cleareddocument  bool
	done             bool
	oldValue         func(context.Context) (*SubmissionRecord, error)
	predicates       []predicate.SubmissionRecord
}

var _ ent.Mutation = (*SubmissionRecordMutation)(nil)

// submissionrecordOption allows management of the mutation configuration using functional options.
type submissionrecordOption func(*SubmissionRecordMutation)

// newSubmissionRecordMutation creates new mutation for the SubmissionRecord entity.
func newSubmissionRecordMutation(c config, op Op, opts ...submissionrecordOption) *SubmissionRecordMutation {
	m := &SubmissionRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeSubmissionRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubmissionRecordID sets the ID field of the mutation.
func withSubmissionRecordID(id uuid.UUID) submissionrecordOption {
	return func(m *SubmissionRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *SubmissionRecord
		)
		m.oldValue = func(ctx context.Context) (*SubmissionRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SubmissionRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubmissionRecord sets the old SubmissionRecord of the mutation.
func withSubmissionRecord(node *SubmissionRecord) submissionrecordOption {
	return func(m *SubmissionRecordMutation) {
		m.oldValue = func(context.Context) (*SubmissionRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubmissionRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubmissionRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SubmissionRecord entities.
func (m *SubmissionRecordMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubmissionRecordMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubmissionRecordMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SubmissionRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *SubmissionRecordMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *SubmissionRecordMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the SubmissionRecord entity.
// If the SubmissionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionRecordMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *SubmissionRecordMutation) ResetDocumentID() {
	m.document = nil
}

// SetDocNumber sets the "doc_number" field.
func (m *SubmissionRecordMutation) SetDocNumber(s string) {
	m.doc_number = &s
}

// DocNumber returns the value of the "doc_number" field in the mutation.
func (m *SubmissionRecordMutation) DocNumber() (r string, exists bool) {
	v := m.doc_number
	if v == nil {
		return
	}
	return *v, true
}

// OldDocNumber returns the old "doc_number" field's value of the SubmissionRecord entity.
// If the SubmissionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionRecordMutation) OldDocNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocNumber: %w", err)
	}
	return oldValue.DocNumber, nil
}

// ResetDocNumber resets all changes to the "doc_number" field.
func (m *SubmissionRecordMutation) ResetDocNumber() {
	m.doc_number = nil
}

// SetDestinationType sets the "destination_type" field.
func (m *SubmissionRecordMutation) SetDestinationType(s string) {
	m.destination_type = &s
}

// DestinationType returns the value of the "destination_type" field in the mutation.
func (m *SubmissionRecordMutation) DestinationType() (r string, exists bool) {
	v := m.destination_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDestinationType returns the old "destination_type" field's value of the SubmissionRecord entity.
// If the SubmissionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionRecordMutation) OldDestinationType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDestinationType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDestinationType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDestinationType: %w", err)
	}
	return oldValue.DestinationType, nil
}

// ResetDestinationType resets all changes to the "destination_type" field.
func (m *SubmissionRecordMutation) ResetDestinationType() {
	m.destination_type = nil
}

// SetStoreID sets the "store_id" field.
func (m *SubmissionRecordMutation) SetStoreID(u uuid.UUID) {
	m.store_id = &u
}

// StoreID returns the value of the "store_id" field in the mutation.
func (m *SubmissionRecordMutation) StoreID() (r uuid.UUID, exists bool) {
	v := m.store_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStoreID returns the old "store_id" field's value of the SubmissionRecord entity.
// If the SubmissionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionRecordMutation) OldStoreID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoreID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoreID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoreID: %w", err)
	}
	return oldValue.StoreID, nil
}

// ClearStoreID clears the value of the "store_id" field.
func (m *SubmissionRecordMutation) ClearStoreID() {
	m.store_id = nil
	m.clearedFields[submissionrecord.FieldStoreID] = struct{}{}
}

// StoreIDCleared returns if the "store_id" field was cleared in this mutation.
func (m *SubmissionRecordMutation) StoreIDCleared() bool {
	_, ok := m.clearedFields[submissionrecord.FieldStoreID]
	return ok
}

// ResetStoreID resets all changes to the "store_id" field.
func (m *SubmissionRecordMutation) ResetStoreID() {
	m.store_id = nil
	delete(m.clearedFields, submissionrecord.FieldStoreID)
}

// SetStoreName sets the "store_name" field.
func (m *SubmissionRecordMutation) SetStoreName(s string) {
	m.store_name = &s
}

// StoreName returns the value of the "store_name" field in the mutation.
func (m *SubmissionRecordMutation) StoreName() (r string, exists bool) {
	v := m.store_name
	if v == nil {
		return
	}
	return *v, true
}

// OldStoreName returns the old "store_name" field's value of the SubmissionRecord entity.
// If the SubmissionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionRecordMutation) OldStoreName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoreName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoreName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoreName: %w", err)
	}
	return oldValue.StoreName, nil
}

// ClearStoreName clears the value of the "store_name" field.
func (m *SubmissionRecordMutation) ClearStoreName() {
	m.store_name = nil
	m.clearedFields[submissionrecord.FieldStoreName] = struct{}{}
}

// StoreNameCleared returns if the "store_name" field was cleared in this mutation.
func (m *SubmissionRecordMutation) StoreNameCleared() bool {
	_, ok := m.clearedFields[submissionrecord.FieldStoreName]
	return ok
}

// ResetStoreName resets all changes to the "store_name" field.
func (m *SubmissionRecordMutation) ResetStoreName() {
	m.store_name = nil
	delete(m.clearedFields, submissionrecord.FieldStoreName)
}

// SetSupplierID sets the "supplier_id" field.
func (m *SubmissionRecordMutation) SetSupplierID(u uuid.UUID) {
	m.supplier_id = &u
}

// SupplierID returns the value of the "supplier_id" field in the mutation.
func (m *SubmissionRecordMutation) SupplierID() (r uuid.UUID, exists bool) {
	v := m.supplier_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSupplierID returns the old "supplier_id" field's value of the SubmissionRecord entity.
// If the SubmissionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionRecordMutation) OldSupplierID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupplierID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupplierID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupplierID: %w", err)
	}
	return oldValue.SupplierID, nil
}

// ClearSupplierID clears the value of the "supplier_id" field.
func (m *SubmissionRecordMutation) ClearSupplierID() {
	m.supplier_id = nil
	m.clearedFields[submissionrecord.FieldSupplierID] = struct{}{}
}

// SupplierIDCleared returns if the "supplier_id" field was cleared in this mutation.
func (m *SubmissionRecordMutation) SupplierIDCleared() bool {
	_, ok := m.clearedFields[submissionrecord.FieldSupplierID]
	return ok
}

// ResetSupplierID resets all changes to the "supplier_id" field.
func (m *SubmissionRecordMutation) ResetSupplierID() {
	m.supplier_id = nil
	delete(m.clearedFields, submissionrecord.FieldSupplierID)
}

// SetSupplierName sets the "supplier_name" field.
func (m *SubmissionRecordMutation) SetSupplierName(s string) {
	m.supplier_name = &s
}

// SupplierName returns the value of the "supplier_name" field in the mutation.
func (m *SubmissionRecordMutation) SupplierName() (r string, exists bool) {
	v := m.supplier_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSupplierName returns the old "supplier_name" field's value of the SubmissionRecord entity.
// If the SubmissionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionRecordMutation) OldSupplierName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupplierName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupplierName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupplierName: %w", err)
	}
	return oldValue.SupplierName, nil
}

// ClearSupplierName clears the value of the "supplier_name" field.
func (m *SubmissionRecordMutation) ClearSupplierName() {
	m.supplier_name = nil
	m.clearedFields[submissionrecord.FieldSupplierName] = struct{}{}
}

// SupplierNameCleared returns if the "supplier_name" field was cleared in this mutation.
func (m *SubmissionRecordMutation) SupplierNameCleared() bool {
	_, ok := m.clearedFields[submissionrecord.FieldSupplierName]
	return ok
}

// ResetSupplierName resets all changes to the "supplier_name" field.
func (m *SubmissionRecordMutation) ResetSupplierName() {
	m.supplier_name = nil
	delete(m.clearedFields, submissionrecord.FieldSupplierName)
}

// SetDocDate sets the "doc_date" field.
func (m *SubmissionRecordMutation) SetDocDate(t time.Time) {
	m.doc_date = &t
}

// DocDate returns the value of the "doc_date" field in the mutation.
func (m *SubmissionRecordMutation) DocDate() (r time.Time, exists bool) {
	v := m.doc_date
	if v == nil {
		return
	}
	return *v, true
}

// OldDocDate returns the old "doc_date" field's value of the SubmissionRecord entity.
// If the SubmissionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionRecordMutation) OldDocDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocDate: %w", err)
	}
	return oldValue.DocDate, nil
}

// ResetDocDate resets all changes to the "doc_date" field.
func (m *SubmissionRecordMutation) ResetDocDate() {
	m.doc_date = nil
}

// SetItems sets the "items" field.
func (m *SubmissionRecordMutation) SetItems(ei []entity.LineItem) {
	m.items = &ei
	m.appenditems = nil
}

// Items returns the value of the "items" field in the mutation.
func (m *SubmissionRecordMutation) Items() (r []entity.LineItem, exists bool) {
	v := m.items
	if v == nil {
		return
	}
	return *v, true
}

// OldItems returns the old "items" field's value of the SubmissionRecord entity.
// If the SubmissionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionRecordMutation) OldItems(ctx context.Context) (v []entity.LineItem, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItems is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItems requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItems: %w", err)
	}
	return oldValue.Items, nil
}

// AppendItems adds ei to the "items" field.
func (m *SubmissionRecordMutation) AppendItems(ei []entity.LineItem) {
	m.appenditems = append(m.appenditems, ei...)
}

// AppendedItems returns the list of values that were appended to the "items" field in this mutation.
func (m *SubmissionRecordMutation) AppendedItems() ([]entity.LineItem, bool) {
	if len(m.appenditems) == 0 {
		return nil, false
	}
	return m.appenditems, true
}

// ResetItems resets all changes to the "items" field.
func (m *SubmissionRecordMutation) ResetItems() {
	m.items = nil
	m.appenditems = nil
}

// SetTotalAmount sets the "total_amount" field.
func (m *SubmissionRecordMutation) SetTotalAmount(f float64) {
	m.total_amount = &f
	m.addtotal_amount = nil
}

// TotalAmount returns the value of the "total_amount" field in the mutation.
func (m *SubmissionRecordMutation) TotalAmount() (r float64, exists bool) {
	v := m.total_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalAmount returns the old "total_amount" field's value of the SubmissionRecord entity.
// If the SubmissionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionRecordMutation) OldTotalAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalAmount: %w", err)
	}
	return oldValue.TotalAmount, nil
}

// AddTotalAmount adds f to the "total_amount" field.
func (m *SubmissionRecordMutation) AddTotalAmount(f float64) {
	if m.addtotal_amount != nil {
		*m.addtotal_amount += f
	} else {
		m.addtotal_amount = &f
	}
}

// AddedTotalAmount returns the value that was added to the "total_amount" field in this mutation.
func (m *SubmissionRecordMutation) AddedTotalAmount() (r float64, exists bool) {
	v := m.addtotal_amount
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalAmount resets all changes to the "total_amount" field.
func (m *SubmissionRecordMutation) ResetTotalAmount() {
	m.total_amount = nil
	m.addtotal_amount = nil
}

// SetStatus sets the "status" field.
func (m *SubmissionRecordMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SubmissionRecordMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the SubmissionRecord entity.
// If the SubmissionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionRecordMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SubmissionRecordMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *SubmissionRecordMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *SubmissionRecordMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the SubmissionRecord entity.
// If the SubmissionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionRecordMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *SubmissionRecordMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[submissionrecord.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *SubmissionRecordMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[submissionrecord.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *SubmissionRecordMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, submissionrecord.FieldErrorMessage)
}

// SetWarnings sets the "warnings" field.
func (m *SubmissionRecordMutation) SetWarnings(s []string) {
	m.warnings = &s
	m.appendwarnings = nil
}

// Warnings returns the value of the "warnings" field in the mutation.
func (m *SubmissionRecordMutation) Warnings() (r []string, exists bool) {
	v := m.warnings
	if v == nil {
		return
	}
	return *v, true
}

// OldWarnings returns the old "warnings" field's value of the SubmissionRecord entity.
// If the SubmissionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionRecordMutation) OldWarnings(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWarnings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWarnings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWarnings: %w", err)
	}
	return oldValue.Warnings, nil
}

// AppendWarnings adds s to the "warnings" field.
func (m *SubmissionRecordMutation) AppendWarnings(s []string) {
	m.appendwarnings = append(m.appendwarnings, s...)
}

// AppendedWarnings returns the list of values that were appended to the "warnings" field in this mutation.
func (m *SubmissionRecordMutation) AppendedWarnings() ([]string, bool) {
	if len(m.appendwarnings) == 0 {
		return nil, false
	}
	return m.appendwarnings, true
}

// ClearWarnings clears the value of the "warnings" field.
func (m *SubmissionRecordMutation) ClearWarnings() {
	m.warnings = nil
	m.appendwarnings = nil
	m.clearedFields[submissionrecord.FieldWarnings] = struct{}{}
}

// WarningsCleared returns if the "warnings" field was cleared in this mutation.
func (m *SubmissionRecordMutation) WarningsCleared() bool {
	_, ok := m.clearedFields[submissionrecord.FieldWarnings]
	return ok
}

// ResetWarnings resets all changes to the "warnings" field.
func (m *SubmissionRecordMutation) ResetWarnings() {
	m.warnings = nil
	m.appendwarnings = nil
	delete(m.clearedFields, submissionrecord.FieldWarnings)
}

// SetCreatedAt sets the "created_at" field.
func (m *SubmissionRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SubmissionRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SubmissionRecord entity.
// If the SubmissionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SubmissionRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SubmissionRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SubmissionRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SubmissionRecord entity.
// If the SubmissionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SubmissionRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *SubmissionRecordMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[submissionrecord.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *SubmissionRecordMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *SubmissionRecordMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *SubmissionRecordMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the SubmissionRecordMutation builder.
func (m *SubmissionRecordMutation) Where(ps ...predicate.SubmissionRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubmissionRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubmissionRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SubmissionRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubmissionRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubmissionRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SubmissionRecord).
func (m *SubmissionRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubmissionRecordMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.document != nil {
		fields = append(fields, submissionrecord.FieldDocumentID)
	}
	if m.doc_number != nil {
		fields = append(fields, submissionrecord.FieldDocNumber)
	}
	if m.destination_type != nil {
		fields = append(fields, submissionrecord.FieldDestinationType)
	}
	if m.store_id != nil {
		fields = append(fields, submissionrecord.FieldStoreID)
	}
	if m.store_name != nil {
		fields = append(fields, submissionrecord.FieldStoreName)
	}
	if m.supplier_id != nil {
		fields = append(fields, submissionrecord.FieldSupplierID)
	}
	if m.supplier_name != nil {
		fields = append(fields, submissionrecord.FieldSupplierName)
	}
	if m.doc_date != nil {
		fields = append(fields, submissionrecord.FieldDocDate)
	}
	if m.items != nil {
		fields = append(fields, submissionrecord.FieldItems)
	}
	if m.total_amount != nil {
		fields = append(fields, submissionrecord.FieldTotalAmount)
	}
	if m.status != nil {
		fields = append(fields, submissionrecord.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, submissionrecord.FieldErrorMessage)
	}
	if m.warnings != nil {
		fields = append(fields, submissionrecord.FieldWarnings)
	}
	if m.created_at != nil {
		fields = append(fields, submissionrecord.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, submissionrecord.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubmissionRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case submissionrecord.FieldDocumentID:
		return m.DocumentID()
	case submissionrecord.FieldDocNumber:
		return m.DocNumber()
	case submissionrecord.FieldDestinationType:
		return m.DestinationType()
	case submissionrecord.FieldStoreID:
		return m.StoreID()
	case submissionrecord.FieldStoreName:
		return m.StoreName()
	case submissionrecord.FieldSupplierID:
		return m.SupplierID()
	case submissionrecord.FieldSupplierName:
		return m.SupplierName()
	case submissionrecord.FieldDocDate:
		return m.DocDate()
	case submissionrecord.FieldItems:
		return m.Items()
	case submissionrecord.FieldTotalAmount:
		return m.TotalAmount()
	case submissionrecord.FieldStatus:
		return m.Status()
	case submissionrecord.FieldErrorMessage:
		return m.ErrorMessage()
	case submissionrecord.FieldWarnings:
		return m.Warnings()
	case submissionrecord.FieldCreatedAt:
		return m.CreatedAt()
	case submissionrecord.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubmissionRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case submissionrecord.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case submissionrecord.FieldDocNumber:
		return m.OldDocNumber(ctx)
	case submissionrecord.FieldDestinationType:
		return m.OldDestinationType(ctx)
	case submissionrecord.FieldStoreID:
		return m.OldStoreID(ctx)
	case submissionrecord.FieldStoreName:
		return m.OldStoreName(ctx)
	case submissionrecord.FieldSupplierID:
		return m.OldSupplierID(ctx)
	case submissionrecord.FieldSupplierName:
		return m.OldSupplierName(ctx)
	case submissionrecord.FieldDocDate:
		return m.OldDocDate(ctx)
	case submissionrecord.FieldItems:
		return m.OldItems(ctx)
	case submissionrecord.FieldTotalAmount:
		return m.OldTotalAmount(ctx)
	case submissionrecord.FieldStatus:
		return m.OldStatus(ctx)
	case submissionrecord.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case submissionrecord.FieldWarnings:
		return m.OldWarnings(ctx)
	case submissionrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case submissionrecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SubmissionRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubmissionRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case submissionrecord.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case submissionrecord.FieldDocNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocNumber(v)
		return nil
	case submissionrecord.FieldDestinationType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDestinationType(v)
		return nil
	case submissionrecord.FieldStoreID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoreID(v)
		return nil
	case submissionrecord.FieldStoreName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoreName(v)
		return nil
	case submissionrecord.FieldSupplierID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupplierID(v)
		return nil
	case submissionrecord.FieldSupplierName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupplierName(v)
		return nil
	case submissionrecord.FieldDocDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocDate(v)
		return nil
	case submissionrecord.FieldItems:
		v, ok := value.([]entity.LineItem)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItems(v)
		return nil
	case submissionrecord.FieldTotalAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalAmount(v)
		return nil
	case submissionrecord.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case submissionrecord.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case submissionrecord.FieldWarnings:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWarnings(v)
		return nil
	case submissionrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case submissionrecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SubmissionRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubmissionRecordMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_amount != nil {
		fields = append(fields, submissionrecord.FieldTotalAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubmissionRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case submissionrecord.FieldTotalAmount:
		return m.AddedTotalAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubmissionRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case submissionrecord.FieldTotalAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalAmount(v)
		return nil
	}
	return fmt.Errorf("unknown SubmissionRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubmissionRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(submissionrecord.FieldStoreID) {
		fields = append(fields, submissionrecord.FieldStoreID)
	}
	if m.FieldCleared(submissionrecord.FieldStoreName) {
		fields = append(fields, submissionrecord.FieldStoreName)
	}
	if m.FieldCleared(submissionrecord.FieldSupplierID) {
		fields = append(fields, submissionrecord.FieldSupplierID)
	}
	if m.FieldCleared(submissionrecord.FieldSupplierName) {
		fields = append(fields, submissionrecord.FieldSupplierName)
	}
	if m.FieldCleared(submissionrecord.FieldErrorMessage) {
		fields = append(fields, submissionrecord.FieldErrorMessage)
	}
	if m.FieldCleared(submissionrecord.FieldWarnings) {
		fields = append(fields, submissionrecord.FieldWarnings)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubmissionRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubmissionRecordMutation) ClearField(name string) error {
	switch name {
	case submissionrecord.FieldStoreID:
		m.ClearStoreID()
		return nil
	case submissionrecord.FieldStoreName:
		m.ClearStoreName()
		return nil
	case submissionrecord.FieldSupplierID:
		m.ClearSupplierID()
		return nil
	case submissionrecord.FieldSupplierName:
		m.ClearSupplierName()
		return nil
	case submissionrecord.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case submissionrecord.FieldWarnings:
		m.ClearWarnings()
		return nil
	}
	return fmt.Errorf("unknown SubmissionRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubmissionRecordMutation) ResetField(name string) error {
	switch name {
	case submissionrecord.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case submissionrecord.FieldDocNumber:
		m.ResetDocNumber()
		return nil
	case submissionrecord.FieldDestinationType:
		m.ResetDestinationType()
		return nil
	case submissionrecord.FieldStoreID:
		m.ResetStoreID()
		return nil
	case submissionrecord.FieldStoreName:
		m.ResetStoreName()
		return nil
	case submissionrecord.FieldSupplierID:
		m.ResetSupplierID()
		return nil
	case submissionrecord.FieldSupplierName:
		m.ResetSupplierName()
		return nil
	case submissionrecord.FieldDocDate:
		m.ResetDocDate()
		return nil
	case submissionrecord.FieldItems:
		m.ResetItems()
		return nil
	case submissionrecord.FieldTotalAmount:
		m.ResetTotalAmount()
		return nil
	case submissionrecord.FieldStatus:
		m.ResetStatus()
		return nil
	case submissionrecord.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case submissionrecord.FieldWarnings:
		m.ResetWarnings()
		return nil
	case submissionrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case submissionrecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SubmissionRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubmissionRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document != nil {
		edges = append(edges, submissionrecord.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubmissionRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case submissionrecord.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubmissionRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubmissionRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubmissionRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument {
		edges = append(edges, submissionrecord.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubmissionRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case submissionrecord.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubmissionRecordMutation) ClearEdge(name string) error {
	switch name {
	case submissionrecord.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown SubmissionRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubmissionRecordMutation) ResetEdge(name string) error {
	switch name {
	case submissionrecord.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown SubmissionRecord edge %s", name)
}
