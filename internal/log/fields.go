package log

// Canonical field names for structured logging.
const (
	FieldComponent = "component"
	FieldVersion   = "version"
	FieldEvent     = "event"

	// Pipeline fields
	FieldHandle    = "handle"
	FieldCandidate = "candidate"
	FieldElement   = "element"
	FieldOldState  = "old_state"
	FieldNewState  = "new_state"

	// Media fields
	FieldPath     = "path"
	FieldDuration = "duration"
	FieldPosition = "position"
)
