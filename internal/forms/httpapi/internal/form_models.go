package internal

import (
	"encoding/json"
	"fmt"
	"time"

	"formflow-server/internal/forms/domain"
	shareddomain "formflow-server/internal/shared_kernel/domain"
)

type FieldRequest struct {
	ID          string          `json:"id,omitempty"`
	Type        string          `json:"type"`
	Label       string          `json:"label"`
	Placeholder string          `json:"placeholder,omitempty"`
	HelpText    string          `json:"help_text,omitempty"`
	Required    bool            `json:"required,omitempty"`
	Options     []string        `json:"options,omitempty"`
	Order       int             `json:"order"`
	Config      json.RawMessage `json:"config,omitempty"`
}

type FormCreateRequest struct {
	Title                    string         `json:"title"`
	Description              string         `json:"description,omitempty"`
	Header                   string         `json:"header,omitempty"`
	AllowMultipleSubmissions *bool          `json:"allow_multiple_submissions,omitempty"`
	RequiresApproval         bool           `json:"requires_approval,omitempty"`
	Fields                   []FieldRequest `json:"fields"`
}

type FormUpdateRequest struct {
	Title                    string         `json:"title"`
	Description              string         `json:"description,omitempty"`
	Header                   string         `json:"header,omitempty"`
	AllowMultipleSubmissions *bool          `json:"allow_multiple_submissions,omitempty"`
	RequiresApproval         *bool          `json:"requires_approval,omitempty"`
	Fields                   []FieldRequest `json:"fields"`
}

// ToFields validates every field definition against its type's config schema
// before anything is persisted.
func ToFields(requests []FieldRequest) ([]domain.Field, error) {
	fields := make([]domain.Field, len(requests))
	for i, request := range requests {
		fieldType := domain.FieldType(request.Type)
		if !fieldType.IsValid() {
			return nil, fmt.Errorf("field %d: unknown field type: %s", i+1, request.Type)
		}

		config, err := domain.ParseFieldConfig(fieldType, request.Config)
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i+1, err)
		}

		fields[i] = domain.Field{
			ID:          shareddomain.ID(request.ID),
			Type:        fieldType,
			Label:       request.Label,
			Placeholder: request.Placeholder,
			HelpText:    request.HelpText,
			Required:    request.Required,
			Options:     request.Options,
			Order:       request.Order,
			Config:      config,
		}
	}

	return fields, nil
}

type FieldResponse struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Label       string          `json:"label"`
	Placeholder string          `json:"placeholder,omitempty"`
	HelpText    string          `json:"help_text,omitempty"`
	Required    bool            `json:"required"`
	Options     []string        `json:"options,omitempty"`
	Order       int             `json:"order"`
	Config      json.RawMessage `json:"config,omitempty"`
}

type FormResponse struct {
	ID                       string          `json:"id"`
	TenantID                 string          `json:"tenant_id"`
	Title                    string          `json:"title"`
	Description              string          `json:"description,omitempty"`
	Header                   string          `json:"header,omitempty"`
	IsActive                 bool            `json:"is_active"`
	IsPublished              bool            `json:"is_published"`
	AllowMultipleSubmissions bool            `json:"allow_multiple_submissions"`
	RequiresApproval         bool            `json:"requires_approval"`
	CreatedBy                string          `json:"created_by,omitempty"`
	Version                  int             `json:"version"`
	Fields                   []FieldResponse `json:"fields"`
	CreatedAt                time.Time       `json:"created_at"`
	UpdatedAt                time.Time       `json:"updated_at"`
	PublishedAt              *time.Time      `json:"published_at,omitempty"`
}

func ToFormResponse(form domain.Form) FormResponse {
	fields := make([]FieldResponse, len(form.Fields))
	for i, field := range form.Fields {
		var config json.RawMessage
		if field.Config != nil {
			if data, err := json.Marshal(field.Config); err == nil {
				config = data
			}
		}

		fields[i] = FieldResponse{
			ID:          field.ID.String(),
			Type:        string(field.Type),
			Label:       field.Label,
			Placeholder: field.Placeholder,
			HelpText:    field.HelpText,
			Required:    field.Required,
			Options:     field.Options,
			Order:       field.Order,
			Config:      config,
		}
	}

	return FormResponse{
		ID:                       form.ID.String(),
		TenantID:                 form.TenantID.String(),
		Title:                    form.Title,
		Description:              form.Description,
		Header:                   form.Header,
		IsActive:                 form.IsActive,
		IsPublished:              form.IsPublished,
		AllowMultipleSubmissions: form.AllowMultipleSubmissions,
		RequiresApproval:         form.RequiresApproval,
		CreatedBy:                form.CreatedBy.String(),
		Version:                  form.Version,
		Fields:                   fields,
		CreatedAt:                form.CreatedAt,
		UpdatedAt:                form.UpdatedAt,
		PublishedAt:              form.PublishedAt,
	}
}
