package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldRequestID = "request_id"
	FieldClientIP  = "client_ip"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldStatus    = "status"
	FieldDuration  = "duration_ms"
	FieldError     = "error"

	FieldUploadID  = "upload_id"
	FieldFileName  = "file_name"
	FieldFileBytes = "file_bytes"
	FieldRows      = "rows"
	FieldMonths    = "months"
)

// Components defines standard component names
const (
	ComponentApp    = "app"
	ComponentHTTP   = "http"
	ComponentSheet  = "sheet"
	ComponentChart  = "chart"
	ComponentStore  = "store"
	ComponentConfig = "config"
)
