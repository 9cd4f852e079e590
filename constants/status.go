package constants

// DocStatus is the canonical status for recognized documents and their
// ERP-bound submission records.
type DocStatus string

// Stable values (store these exact strings in DB).
const (
	StatusRecognized     DocStatus = "RECOGNIZED"      // extraction finished, nothing escalated yet
	StatusPendingMapping DocStatus = "PENDING_MAPPING" // waiting on the escalation ledger
	StatusMapped         DocStatus = "MAPPED"          // fully resolved, ready to submit
	StatusImported       DocStatus = "IMPORTED"        // accepted by the external system; terminal
	StatusCancelled      DocStatus = "CANCELLED"       // explicit human cancellation; terminal
)

// DocStatuses holds the allowed values for status fields.
var DocStatuses = []string{
	string(StatusRecognized),
	string(StatusPendingMapping),
	string(StatusMapped),
	string(StatusImported),
	string(StatusCancelled),
}

// allowedTransitions encodes the monotonic lifecycle: forward-only, with
// CANCELLED reachable from any non-terminal state by explicit action.
var allowedTransitions = map[DocStatus][]DocStatus{
	StatusRecognized:     {StatusPendingMapping, StatusMapped, StatusCancelled},
	StatusPendingMapping: {StatusMapped, StatusCancelled},
	StatusMapped:         {StatusImported, StatusCancelled},
}

// CanTransition reports whether from -> to is a legal status change.
func CanTransition(from, to DocStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether a status admits no further transitions.
func IsTerminal(s DocStatus) bool {
	return s == StatusImported || s == StatusCancelled
}
