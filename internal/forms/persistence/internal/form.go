package internal

import (
	"encoding/json"
	"fmt"
	"time"

	"formflow-server/internal/forms/domain"
	shareddomain "formflow-server/internal/shared_kernel/domain"
)

type Form struct {
	ID                       string `json:"id" gorm:"primaryKey"`
	TenantID                 string `json:"tenant_id" gorm:"index;not null"`
	Version                  int    `json:"version"`
	Title                    string `json:"title" gorm:"not null"`
	Description              string `json:"description"`
	Header                   string `json:"header"`
	IsActive                 bool   `json:"is_active" gorm:"default:true"`
	IsPublished              bool   `json:"is_published"`
	AllowMultipleSubmissions bool   `json:"allow_multiple_submissions"`
	RequiresApproval         bool   `json:"requires_approval"`
	CreatedBy                string `json:"created_by"`

	Fields []FormField `json:"fields" gorm:"foreignKey:FormID;references:ID"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty" gorm:"index"`
}

func (Form) TableName() string {
	return "forms"
}

type FormField struct {
	ID          string `json:"id" gorm:"primaryKey"`
	FormID      string `json:"form_id" gorm:"index;not null"`
	Type        string `json:"type" gorm:"not null"`
	Label       string `json:"label" gorm:"not null"`
	Placeholder string `json:"placeholder"`
	HelpText    string `json:"help_text"`
	Required    bool   `json:"required"`
	Options     string `json:"options" gorm:"type:jsonb"`
	FieldOrder  int    `json:"field_order"`
	Config      string `json:"config" gorm:"type:jsonb"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (FormField) TableName() string {
	return "form_fields"
}

func (f Form) ToDomain() (domain.Form, error) {
	fields := make([]domain.Field, len(f.Fields))
	for i, field := range f.Fields {
		converted, err := field.ToDomain()
		if err != nil {
			return domain.Form{}, err
		}
		fields[i] = converted
	}

	return domain.Form{
		ID:                       shareddomain.ID(f.ID),
		TenantID:                 shareddomain.ID(f.TenantID),
		Title:                    f.Title,
		Description:              f.Description,
		Header:                   f.Header,
		IsActive:                 f.IsActive,
		IsPublished:              f.IsPublished,
		AllowMultipleSubmissions: f.AllowMultipleSubmissions,
		RequiresApproval:         f.RequiresApproval,
		CreatedBy:                shareddomain.ID(f.CreatedBy),
		Version:                  f.Version,
		Fields:                   fields,
		CreatedAt:                f.CreatedAt,
		UpdatedAt:                f.UpdatedAt,
		PublishedAt:              f.PublishedAt,
		DeletedAt:                f.DeletedAt,
	}, nil
}

func (f FormField) ToDomain() (domain.Field, error) {
	var options []string
	if f.Options != "" {
		if err := json.Unmarshal([]byte(f.Options), &options); err != nil {
			return domain.Field{}, fmt.Errorf("decoding field options: %w", err)
		}
	}

	config, err := domain.ParseFieldConfig(domain.FieldType(f.Type), json.RawMessage(f.Config))
	if err != nil {
		return domain.Field{}, fmt.Errorf("decoding field config: %w", err)
	}

	return domain.Field{
		ID:          shareddomain.ID(f.ID),
		FormID:      shareddomain.ID(f.FormID),
		Type:        domain.FieldType(f.Type),
		Label:       f.Label,
		Placeholder: f.Placeholder,
		HelpText:    f.HelpText,
		Required:    f.Required,
		Options:     options,
		Order:       f.FieldOrder,
		Config:      config,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}, nil
}

func FromForm(value domain.Form) (Form, error) {
	fields := make([]FormField, len(value.Fields))
	for i, field := range value.Fields {
		converted, err := FromField(field)
		if err != nil {
			return Form{}, err
		}
		fields[i] = converted
	}

	return Form{
		ID:                       value.ID.String(),
		TenantID:                 value.TenantID.String(),
		Version:                  value.Version,
		Title:                    value.Title,
		Description:              value.Description,
		Header:                   value.Header,
		IsActive:                 value.IsActive,
		IsPublished:              value.IsPublished,
		AllowMultipleSubmissions: value.AllowMultipleSubmissions,
		RequiresApproval:         value.RequiresApproval,
		CreatedBy:                value.CreatedBy.String(),
		Fields:                   fields,
		CreatedAt:                value.CreatedAt,
		UpdatedAt:                value.UpdatedAt,
		PublishedAt:              value.PublishedAt,
		DeletedAt:                value.DeletedAt,
	}, nil
}

func FromField(value domain.Field) (FormField, error) {
	options := ""
	if len(value.Options) > 0 {
		data, err := json.Marshal(value.Options)
		if err != nil {
			return FormField{}, fmt.Errorf("encoding field options: %w", err)
		}
		options = string(data)
	}

	config := ""
	if value.Config != nil {
		data, err := json.Marshal(value.Config)
		if err != nil {
			return FormField{}, fmt.Errorf("encoding field config: %w", err)
		}
		config = string(data)
	}

	return FormField{
		ID:          value.ID.String(),
		FormID:      value.FormID.String(),
		Type:        string(value.Type),
		Label:       value.Label,
		Placeholder: value.Placeholder,
		HelpText:    value.HelpText,
		Required:    value.Required,
		Options:     options,
		FieldOrder:  value.Order,
		Config:      config,
		CreatedAt:   value.CreatedAt,
		UpdatedAt:   value.UpdatedAt,
	}, nil
}
