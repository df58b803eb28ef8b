package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
)

const (
	SignatureDefaultWidth  = 400
	SignatureDefaultHeight = 200
	SignatureMinWidth      = 200
	SignatureMaxWidth      = 800
	SignatureMinHeight     = 100
	SignatureMaxHeight     = 400

	SignatureDefaultPenColor        = "#000000"
	SignatureDefaultBackgroundColor = "#ffffff"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// FieldConfig is the closed set of type-dependent field configurations.
// Scalar field types carry no config and dispatch on the concrete type
// replaces tag-string branching at validation time.
type FieldConfig interface {
	Validate() error
}

type TableColumn struct {
	ID           string   `json:"id"`
	Label        string   `json:"label"`
	Type         string   `json:"type,omitempty"`
	Required     bool     `json:"required,omitempty"`
	Options      []string `json:"options,omitempty"`
	Width        string   `json:"width,omitempty"`
	DefaultValue any      `json:"defaultValue,omitempty"`
}

type TableFieldConfig struct {
	Columns []TableColumn `json:"columns"`
	MinRows *int          `json:"minRows,omitempty"`
	MaxRows *int          `json:"maxRows,omitempty"`
}

var _ FieldConfig = (*TableFieldConfig)(nil)

func (c *TableFieldConfig) Validate() error {
	if len(c.Columns) == 0 {
		return errors.New("columns field required")
	}

	seen := make(map[string]struct{}, len(c.Columns))
	for i, column := range c.Columns {
		if column.ID == "" {
			return fmt.Errorf("column %d: id is required", i+1)
		}
		if column.Label == "" {
			return fmt.Errorf("column %d: label is required", i+1)
		}
		if _, dup := seen[column.ID]; dup {
			return fmt.Errorf("duplicate column id: %s", column.ID)
		}
		seen[column.ID] = struct{}{}
	}

	if c.MinRows != nil && *c.MinRows < 0 {
		return errors.New("minRows must be >= 0")
	}
	if c.MaxRows != nil && *c.MaxRows < 1 {
		return errors.New("maxRows must be >= 1")
	}
	if c.MinRows != nil && c.MaxRows != nil && *c.MinRows > *c.MaxRows {
		return errors.New("minRows must be <= maxRows")
	}

	return nil
}

type SignatureFieldConfig struct {
	Width           int    `json:"width"`
	Height          int    `json:"height"`
	PenColor        string `json:"penColor"`
	BackgroundColor string `json:"backgroundColor"`
}

var _ FieldConfig = (*SignatureFieldConfig)(nil)

func (c *SignatureFieldConfig) Validate() error {
	if c.Width < SignatureMinWidth {
		return fmt.Errorf("width must be >= %d", SignatureMinWidth)
	}
	if c.Width > SignatureMaxWidth {
		return fmt.Errorf("width must be <= %d", SignatureMaxWidth)
	}
	if c.Height < SignatureMinHeight {
		return fmt.Errorf("height must be >= %d", SignatureMinHeight)
	}
	if c.Height > SignatureMaxHeight {
		return fmt.Errorf("height must be <= %d", SignatureMaxHeight)
	}
	if !hexColorPattern.MatchString(c.PenColor) {
		return errors.New("penColor must be a 6-digit hex color")
	}
	if !hexColorPattern.MatchString(c.BackgroundColor) {
		return errors.New("backgroundColor must be a 6-digit hex color")
	}

	return nil
}

type SectionFieldConfig struct {
	Collapsible     bool `json:"collapsible"`
	DefaultExpanded bool `json:"defaultExpanded"`
}

var _ FieldConfig = (*SectionFieldConfig)(nil)

func (c *SectionFieldConfig) Validate() error {
	return nil
}

// ParseFieldConfig decodes and validates a raw config document against the
// field type's schema. A nil/empty document is always accepted. Field types
// without a structural contract pass through with a nil config.
func ParseFieldConfig(fieldType FieldType, raw json.RawMessage) (FieldConfig, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	switch fieldType {
	case FieldTypeTable:
		var config TableFieldConfig
		if err := json.Unmarshal(raw, &config); err != nil {
			return nil, fmt.Errorf("invalid table field configuration: %w", err)
		}
		if err := config.Validate(); err != nil {
			return nil, fmt.Errorf("invalid table field configuration: %w", err)
		}
		return &config, nil

	case FieldTypeSignature:
		aux := struct {
			Width           *int    `json:"width"`
			Height          *int    `json:"height"`
			PenColor        *string `json:"penColor"`
			BackgroundColor *string `json:"backgroundColor"`
		}{}
		if err := json.Unmarshal(raw, &aux); err != nil {
			return nil, fmt.Errorf("invalid signature field configuration: %w", err)
		}

		config := SignatureFieldConfig{
			Width:           SignatureDefaultWidth,
			Height:          SignatureDefaultHeight,
			PenColor:        SignatureDefaultPenColor,
			BackgroundColor: SignatureDefaultBackgroundColor,
		}
		if aux.Width != nil {
			config.Width = *aux.Width
		}
		if aux.Height != nil {
			config.Height = *aux.Height
		}
		if aux.PenColor != nil {
			config.PenColor = *aux.PenColor
		}
		if aux.BackgroundColor != nil {
			config.BackgroundColor = *aux.BackgroundColor
		}

		if err := config.Validate(); err != nil {
			return nil, fmt.Errorf("invalid signature field configuration: %w", err)
		}
		return &config, nil

	case FieldTypeSection:
		aux := struct {
			Collapsible     *bool `json:"collapsible"`
			DefaultExpanded *bool `json:"defaultExpanded"`
		}{}
		if err := json.Unmarshal(raw, &aux); err != nil {
			return nil, fmt.Errorf("invalid section field configuration: %w", err)
		}

		config := SectionFieldConfig{Collapsible: true, DefaultExpanded: true}
		if aux.Collapsible != nil {
			config.Collapsible = *aux.Collapsible
		}
		if aux.DefaultExpanded != nil {
			config.DefaultExpanded = *aux.DefaultExpanded
		}
		return &config, nil

	default:
		// Scalar types carry no structural config contract.
		return nil, nil
	}
}
