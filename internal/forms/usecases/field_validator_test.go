package usecases

import (
	"encoding/json"
	"testing"

	"formflow-server/internal/forms/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func tableField(label string, required bool, config *domain.TableFieldConfig) domain.Field {
	return domain.Field{
		ID:       "field-table",
		Type:     domain.FieldTypeTable,
		Label:    label,
		Required: required,
		Config:   config,
	}
}

func equipmentConfig() *domain.TableFieldConfig {
	return &domain.TableFieldConfig{
		Columns: []domain.TableColumn{
			{ID: "serial", Label: "Serial Number", Required: true},
			{ID: "notes", Label: "Notes"},
		},
		MinRows: intPtr(1),
		MaxRows: intPtr(3),
	}
}

func TestValidateFieldValue_Table(t *testing.T) {
	tests := []struct {
		name    string
		field   domain.Field
		value   string
		wantErr string
	}{
		{
			name:  "valid rows",
			field: tableField("Equipment List", false, equipmentConfig()),
			value: `[{"serial":"S1"},{"serial":"S2","notes":"ok"}]`,
		},
		{
			name:    "absent and required",
			field:   tableField("Equipment List", true, equipmentConfig()),
			value:   "",
			wantErr: "Table field 'Equipment List' is required",
		},
		{
			name:  "absent and optional",
			field: tableField("Equipment List", false, equipmentConfig()),
			value: "",
		},
		{
			name:    "object instead of array",
			field:   tableField("Equipment List", false, equipmentConfig()),
			value:   `{"serial":"S1"}`,
			wantErr: "Table field 'Equipment List' expects an array of rows, got object",
		},
		{
			name:    "missing configuration",
			field:   tableField("Equipment List", false, nil),
			value:   `[{"serial":"S1"}]`,
			wantErr: "Table field 'Equipment List' missing configuration",
		},
		{
			name: "no columns defined",
			field: tableField("Equipment List", false, &domain.TableFieldConfig{
				MinRows: intPtr(1),
			}),
			value:   `[{"serial":"S1"}]`,
			wantErr: "Table field 'Equipment List' has no columns defined",
		},
		{
			name:    "below minimum rows",
			field:   tableField("Equipment List", false, equipmentConfig()),
			value:   `[]`,
			wantErr: "Table field 'Equipment List' requires minimum 1 rows, got 0",
		},
		{
			name:    "above maximum rows",
			field:   tableField("Equipment List", false, equipmentConfig()),
			value:   `[{"serial":"a"},{"serial":"b"},{"serial":"c"},{"serial":"d"}]`,
			wantErr: "Table field 'Equipment List' allows maximum 3 rows, got 4",
		},
		{
			name:    "row is not an object",
			field:   tableField("Equipment List", false, equipmentConfig()),
			value:   `[{"serial":"S1"},"oops"]`,
			wantErr: "Row 2 in table 'Equipment List' must be an object, got string",
		},
		{
			name:    "required column missing",
			field:   tableField("Equipment List", false, equipmentConfig()),
			value:   `[{"serial":"S1"},{"notes":"no serial"}]`,
			wantErr: "Required column 'Serial Number' is missing or empty in row 2",
		},
		{
			name:    "required column blank string",
			field:   tableField("Equipment List", false, equipmentConfig()),
			value:   `[{"serial":"  "}]`,
			wantErr: "Required column 'Serial Number' is missing or empty in row 1",
		},
		{
			name:    "required column null",
			field:   tableField("Equipment List", false, equipmentConfig()),
			value:   `[{"serial":null}]`,
			wantErr: "Required column 'Serial Number' is missing or empty in row 1",
		},
		{
			name:  "zero number is a real value",
			field: tableField("Counts", false, &domain.TableFieldConfig{Columns: []domain.TableColumn{{ID: "qty", Label: "Quantity", Required: true}}}),
			value: `[{"qty":0}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response := domain.SubmissionResponse{FieldID: tt.field.ID}
			if tt.value != "" {
				response.ValueJSON = json.RawMessage(tt.value)
			}

			err := ValidateFieldValue(tt.field, response)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var validationErr ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantErr, validationErr.Message)
		})
	}
}

func TestValidateFieldValue_Section(t *testing.T) {
	field := domain.Field{Type: domain.FieldTypeSection, Label: "Details", Required: true}

	// Sections validate successfully regardless of input.
	assert.NoError(t, ValidateFieldValue(field, domain.SubmissionResponse{}))
	assert.NoError(t, ValidateFieldValue(field, domain.SubmissionResponse{ValueJSON: json.RawMessage(`{"junk":true}`)}))
}

func TestValidateFieldValue_RequiredScalars(t *testing.T) {
	text := "hello"
	empty := ""

	field := domain.Field{Type: domain.FieldTypeText, Label: "Name", Required: true}

	err := ValidateFieldValue(field, domain.SubmissionResponse{ValueText: &empty})
	require.Error(t, err)
	assert.Equal(t, "Field 'Name' is required", err.Error())

	assert.NoError(t, ValidateFieldValue(field, domain.SubmissionResponse{ValueText: &text}))

	optional := domain.Field{Type: domain.FieldTypeText, Label: "Nickname"}
	assert.NoError(t, ValidateFieldValue(optional, domain.SubmissionResponse{}))
}

func TestValidateFieldValue_RequiredSignature(t *testing.T) {
	field := domain.Field{Type: domain.FieldTypeSignature, Label: "Approval", Required: true}

	err := ValidateFieldValue(field, domain.SubmissionResponse{})
	require.Error(t, err)
	assert.Equal(t, "Signature field 'Approval' is required", err.Error())

	payload := "data:image/png;base64,xyz"
	assert.NoError(t, ValidateFieldValue(field, domain.SubmissionResponse{ValueText: &payload}))
}
