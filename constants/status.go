package constants

// ProcessingStatus is the canonical status stored on a record's
// processing metadata.
type ProcessingStatus string

// Stable values (store these exact strings).
const (
	StatusPending    ProcessingStatus = "pending"
	StatusProcessing ProcessingStatus = "processing"
	StatusCompleted  ProcessingStatus = "completed"
	StatusFailed     ProcessingStatus = "failed"
)
