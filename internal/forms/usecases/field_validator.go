package usecases

import (
	"encoding/json"
	"fmt"
	"strings"

	"formflow-server/internal/forms/domain"
)

// ValidationError is a client-correctable submission failure. Its message is
// surfaced verbatim to the caller; server-side faults (I/O, storage) use
// plain wrapped errors instead so the two are never conflated.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...any) ValidationError {
	return ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ValidateFieldValue checks one submitted response against its field's type
// and configuration. Table validation is a pure check; signature processing
// has side effects and lives in SignatureProcessor.
func ValidateFieldValue(field domain.Field, response domain.SubmissionResponse) error {
	switch field.Type {
	case domain.FieldTypeTable:
		return validateTableValue(field, response.ValueJSON)
	case domain.FieldTypeSection:
		// Sections are layout containers and never store data.
		return nil
	case domain.FieldTypeSignature:
		if field.Required && (response.ValueText == nil || *response.ValueText == "") {
			return NewValidationError("Signature field '%s' is required", field.Label)
		}
		return nil
	default:
		if field.Required && !response.HasValue() {
			return NewValidationError("Field '%s' is required", field.Label)
		}
		return nil
	}
}

func validateTableValue(field domain.Field, raw json.RawMessage) error {
	if len(raw) == 0 || string(raw) == "null" {
		if field.Required {
			return NewValidationError("Table field '%s' is required", field.Label)
		}
		return nil
	}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return NewValidationError("Table field '%s' expects an array of rows, got malformed JSON", field.Label)
	}

	rows, ok := value.([]any)
	if !ok {
		return NewValidationError("Table field '%s' expects an array of rows, got %s", field.Label, jsonTypeName(value))
	}

	config := field.TableConfig()
	if config == nil {
		return NewValidationError("Table field '%s' missing configuration", field.Label)
	}
	if len(config.Columns) == 0 {
		return NewValidationError("Table field '%s' has no columns defined", field.Label)
	}

	rowCount := len(rows)
	if config.MinRows != nil && rowCount < *config.MinRows {
		return NewValidationError("Table field '%s' requires minimum %d rows, got %d", field.Label, *config.MinRows, rowCount)
	}
	if config.MaxRows != nil && rowCount > *config.MaxRows {
		return NewValidationError("Table field '%s' allows maximum %d rows, got %d", field.Label, *config.MaxRows, rowCount)
	}

	for i, rawRow := range rows {
		rowIndex := i + 1
		row, ok := rawRow.(map[string]any)
		if !ok {
			return NewValidationError("Row %d in table '%s' must be an object, got %s", rowIndex, field.Label, jsonTypeName(rawRow))
		}

		for _, column := range config.Columns {
			if !column.Required {
				continue
			}

			columnLabel := column.Label
			if columnLabel == "" {
				columnLabel = column.ID
			}

			if isMissingCellValue(row[column.ID]) {
				return NewValidationError("Required column '%s' is missing or empty in row %d", columnLabel, rowIndex)
			}
		}
	}

	return nil
}

// isMissingCellValue treats absent, null and blank-string cells as missing.
// Zero numbers and false booleans are real values.
func isMissingCellValue(value any) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

func jsonTypeName(value any) string {
	switch value.(type) {
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", value)
	}
}
