package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paradize/restodocs/constants"
)

// SubmissionRecord is one ERP-bound transaction. A merged document yields
// one record per destination type; DocNumber is deterministic (base number
// plus destination suffix on splits) so the external system can deduplicate.
type SubmissionRecord struct {
	ID              uuid.UUID
	DocumentID      uuid.UUID
	DocNumber       string
	DestinationType string
	StoreID         *uuid.UUID
	StoreName       string
	SupplierID      *uuid.UUID
	SupplierName    string
	DocDate         time.Time
	Items           []LineItem
	TotalAmount     decimal.Decimal
	Status          constants.DocStatus
	ErrorMessage    *string
	Warnings        []string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
