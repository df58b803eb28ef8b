package domain

import (
	"time"

	shareddomain "formflow-server/internal/shared_kernel/domain"
)

type FieldType string

const (
	FieldTypeText      FieldType = "text"
	FieldTypeTextarea  FieldType = "textarea"
	FieldTypeNumber    FieldType = "number"
	FieldTypeEmail     FieldType = "email"
	FieldTypeURL       FieldType = "url"
	FieldTypePhone     FieldType = "phone"
	FieldTypeDate      FieldType = "date"
	FieldTypeTime      FieldType = "time"
	FieldTypeCheckbox  FieldType = "checkbox"
	FieldTypeSelect    FieldType = "select"
	FieldTypeRadio     FieldType = "radio"
	FieldTypeFile      FieldType = "file"
	FieldTypeTable     FieldType = "table"
	FieldTypeSignature FieldType = "signature"
	FieldTypeSection   FieldType = "section"
)

var fieldTypes = map[FieldType]struct{}{
	FieldTypeText:      {},
	FieldTypeTextarea:  {},
	FieldTypeNumber:    {},
	FieldTypeEmail:     {},
	FieldTypeURL:       {},
	FieldTypePhone:     {},
	FieldTypeDate:      {},
	FieldTypeTime:      {},
	FieldTypeCheckbox:  {},
	FieldTypeSelect:    {},
	FieldTypeRadio:     {},
	FieldTypeFile:      {},
	FieldTypeTable:     {},
	FieldTypeSignature: {},
	FieldTypeSection:   {},
}

func (t FieldType) IsValid() bool {
	_, ok := fieldTypes[t]
	return ok
}

// Field is one typed input slot within a form definition. Config is nil for
// scalar types; table, signature and section fields carry a typed config.
type Field struct {
	ID          shareddomain.ID
	FormID      shareddomain.ID
	Type        FieldType
	Label       string
	Placeholder string
	HelpText    string
	Required    bool
	Options     []string
	Order       int
	Config      FieldConfig
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableConfig returns the field's table configuration, or nil when the field
// carries none or is not a table field.
func (f Field) TableConfig() *TableFieldConfig {
	if cfg, ok := f.Config.(*TableFieldConfig); ok {
		return cfg
	}
	return nil
}

func (f Field) SignatureConfig() *SignatureFieldConfig {
	if cfg, ok := f.Config.(*SignatureFieldConfig); ok {
		return cfg
	}
	return nil
}
