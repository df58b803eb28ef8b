package internal

import (
	"encoding/json"
	"fmt"
	"time"

	"formflow-server/internal/forms/domain"
	"formflow-server/internal/infra/utils"
	shareddomain "formflow-server/internal/shared_kernel/domain"
)

type Submission struct {
	ID               string  `json:"id" gorm:"primaryKey"`
	FormID           string  `json:"form_id" gorm:"index;not null"`
	TenantID         string  `json:"tenant_id" gorm:"index;not null"`
	SubmittedBy      *string `json:"submitted_by,omitempty" gorm:"index"`
	SubmittedByEmail string  `json:"submitted_by_email" gorm:"index"`
	SubmittedByName  string  `json:"submitted_by_name"`
	Status           string  `json:"status" gorm:"not null"`
	Metadata         string  `json:"metadata" gorm:"type:jsonb"`

	Responses []SubmissionResponse `json:"responses" gorm:"foreignKey:SubmissionID;references:ID"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
}

func (Submission) TableName() string {
	return "submissions"
}

type SubmissionResponse struct {
	ID             string     `json:"id" gorm:"primaryKey"`
	SubmissionID   string     `json:"submission_id" gorm:"index;not null"`
	FieldID        string     `json:"field_id" gorm:"not null"`
	ValueText      *string    `json:"value_text,omitempty"`
	ValueNumber    *float64   `json:"value_number,omitempty"`
	ValueBoolean   *bool      `json:"value_boolean,omitempty"`
	ValueDate      *time.Time `json:"value_date,omitempty"`
	ValueJSON      string     `json:"value_json,omitempty" gorm:"type:jsonb"`
	FileArtifactID *string    `json:"file_artifact_id,omitempty" gorm:"index"`
}

func (SubmissionResponse) TableName() string {
	return "submission_responses"
}

func (s Submission) ToDomain() (domain.Submission, error) {
	var metadata map[string]any
	if s.Metadata != "" {
		if err := json.Unmarshal([]byte(s.Metadata), &metadata); err != nil {
			return domain.Submission{}, fmt.Errorf("decoding submission metadata: %w", err)
		}
	}

	responses := make([]domain.SubmissionResponse, len(s.Responses))
	for i, response := range s.Responses {
		responses[i] = response.ToDomain()
	}

	var submittedBy *shareddomain.ID
	if s.SubmittedBy != nil {
		id := shareddomain.ID(*s.SubmittedBy)
		submittedBy = &id
	}

	return domain.Submission{
		ID:               shareddomain.ID(s.ID),
		FormID:           shareddomain.ID(s.FormID),
		TenantID:         shareddomain.ID(s.TenantID),
		SubmittedBy:      submittedBy,
		SubmittedByEmail: s.SubmittedByEmail,
		SubmittedByName:  s.SubmittedByName,
		Status:           domain.SubmissionStatus(s.Status),
		Metadata:         metadata,
		Responses:        responses,
		CreatedAt:        s.CreatedAt,
		SubmittedAt:      s.SubmittedAt,
		UpdatedAt:        s.UpdatedAt,
	}, nil
}

func (r SubmissionResponse) ToDomain() domain.SubmissionResponse {
	var artifactID *shareddomain.ID
	if r.FileArtifactID != nil {
		id := shareddomain.ID(*r.FileArtifactID)
		artifactID = &id
	}

	var valueJSON json.RawMessage
	if r.ValueJSON != "" {
		valueJSON = json.RawMessage(r.ValueJSON)
	}

	return domain.SubmissionResponse{
		ID:             shareddomain.ID(r.ID),
		SubmissionID:   shareddomain.ID(r.SubmissionID),
		FieldID:        shareddomain.ID(r.FieldID),
		ValueText:      r.ValueText,
		ValueNumber:    r.ValueNumber,
		ValueBoolean:   r.ValueBoolean,
		ValueDate:      r.ValueDate,
		ValueJSON:      valueJSON,
		FileArtifactID: artifactID,
	}
}

func FromSubmission(value domain.Submission) (Submission, error) {
	metadata := ""
	if len(value.Metadata) > 0 {
		data, err := json.Marshal(value.Metadata)
		if err != nil {
			return Submission{}, fmt.Errorf("encoding submission metadata: %w", err)
		}
		metadata = string(data)
	}

	responses := make([]SubmissionResponse, len(value.Responses))
	for i, response := range value.Responses {
		responses[i] = FromSubmissionResponse(response)
	}

	var submittedBy *string
	if value.SubmittedBy != nil {
		submittedBy = utils.StringPtr(value.SubmittedBy.String())
	}

	return Submission{
		ID:               value.ID.String(),
		FormID:           value.FormID.String(),
		TenantID:         value.TenantID.String(),
		SubmittedBy:      submittedBy,
		SubmittedByEmail: value.SubmittedByEmail,
		SubmittedByName:  value.SubmittedByName,
		Status:           string(value.Status),
		Metadata:         metadata,
		Responses:        responses,
		CreatedAt:        value.CreatedAt,
		UpdatedAt:        value.UpdatedAt,
		SubmittedAt:      value.SubmittedAt,
	}, nil
}

func FromSubmissionResponse(value domain.SubmissionResponse) SubmissionResponse {
	var artifactID *string
	if value.FileArtifactID != nil {
		artifactID = utils.StringPtr(value.FileArtifactID.String())
	}

	valueJSON := ""
	if len(value.ValueJSON) > 0 {
		valueJSON = string(value.ValueJSON)
	}

	return SubmissionResponse{
		ID:             value.ID.String(),
		SubmissionID:   value.SubmissionID.String(),
		FieldID:        value.FieldID.String(),
		ValueText:      value.ValueText,
		ValueNumber:    value.ValueNumber,
		ValueBoolean:   value.ValueBoolean,
		ValueDate:      value.ValueDate,
		ValueJSON:      valueJSON,
		FileArtifactID: artifactID,
	}
}
