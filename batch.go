package salesite

// ItemStatus is the terminal state of one URL within a batch.
type ItemStatus string

// Batch item states.
const (
	StatusSuccess ItemStatus = "success"
	StatusFailure ItemStatus = "failure"
	StatusSkipped ItemStatus = "skipped"
)

// BatchItem is the outcome of one URL in a batch run.
type BatchItem struct {
	Index      int         `json:"index"`
	URL        string      `json:"url"`
	Status     ItemStatus  `json:"status"`
	Extraction *Extraction `json:"extraction,omitempty"`
	Err        string      `json:"error,omitempty"`
	ErrKind    string      `json:"errorType,omitempty"`
	SkipReason string      `json:"skipReason,omitempty"`
	Millis     int64       `json:"millis"`
}

// BatchResult accumulates the outcomes of a batch run.
type BatchResult struct {
	BatchID   string      `json:"batchId"`
	Items     []BatchItem `json:"items"`
	Successes int         `json:"successes"`
	Failures  int         `json:"failures"`
	Skipped   int         `json:"skipped"`
	Total     int         `json:"total"`
}

// EventType names a batch state transition.
type EventType string

// Batch event types, emitted in the streaming form.
const (
	EventStart    EventType = "start"
	EventScraping EventType = "scraping"
	EventSkip     EventType = "skip"
	EventSuccess  EventType = "success"
	EventError    EventType = "error"
	EventComplete EventType = "complete"
)

// Event reports one batch state transition.
type Event struct {
	Type    EventType    `json:"type"`
	BatchID string       `json:"batchId"`
	Index   int          `json:"index"`
	URL     string       `json:"url,omitempty"`
	Current int          `json:"current"`
	Total   int          `json:"total"`
	Item    *BatchItem   `json:"item,omitempty"`
	Result  *BatchResult `json:"result,omitempty"`
}

// EventFunc is a callback for batch progress events. A nil EventFunc
// disables streaming; the collected BatchResult is produced either way.
type EventFunc func(event Event)
