package logging

// Standardized field names for structured logging.
const (
	FieldFile       = "file_path"
	FieldOperation  = "operation"
	FieldFormat     = "format"
	FieldStatus     = "status"
	FieldError      = "error"
	FieldDuration   = "duration_ms"
	FieldCount      = "count"
	FieldComponent  = "component"
	FieldEndpoint   = "endpoint"
	FieldMethod     = "method"
	FieldUsername   = "username"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
)
