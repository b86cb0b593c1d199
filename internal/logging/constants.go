package logging

// Standardized field names for structured logging.
// These constants ensure consistency across the application's log output,
// making logs easier to parse, filter, and analyze.
const (
	FieldFile      = "file_path"
	FieldCategory  = "category"
	FieldAmount    = "amount"
	FieldIntent    = "intent"
	FieldStrategy  = "strategy"
	FieldReason    = "reason"
	FieldOperation = "operation"
	FieldError     = "error"
	FieldCount     = "count"
	FieldInput     = "input"
)
