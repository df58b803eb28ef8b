package internal

import (
	"encoding/json"
	"time"

	"formflow-server/internal/forms/domain"
	"formflow-server/internal/infra/utils"
	shareddomain "formflow-server/internal/shared_kernel/domain"
)

type ResponseValueRequest struct {
	FieldID      string          `json:"field_id"`
	ValueText    *string         `json:"value_text,omitempty"`
	ValueNumber  *float64        `json:"value_number,omitempty"`
	ValueBoolean *bool           `json:"value_boolean,omitempty"`
	ValueDate    *time.Time      `json:"value_date,omitempty"`
	ValueJSON    json.RawMessage `json:"value_json,omitempty"`
}

type SubmissionCreateRequest struct {
	SubmitterEmail string                 `json:"submitter_email,omitempty"`
	SubmitterName  string                 `json:"submitter_name,omitempty"`
	Metadata       map[string]any         `json:"metadata,omitempty"`
	Responses      []ResponseValueRequest `json:"responses"`
}

// ToResponses maps the wire payload to domain responses, preserving the
// request order the validator depends on.
func ToResponses(requests []ResponseValueRequest) []domain.SubmissionResponse {
	responses := make([]domain.SubmissionResponse, len(requests))
	for i, request := range requests {
		responses[i] = domain.SubmissionResponse{
			FieldID:      shareddomain.ID(request.FieldID),
			ValueText:    request.ValueText,
			ValueNumber:  request.ValueNumber,
			ValueBoolean: request.ValueBoolean,
			ValueDate:    request.ValueDate,
			ValueJSON:    request.ValueJSON,
		}
	}
	return responses
}

type SubmissionStatusRequest struct {
	Status string `json:"status"`
}

type ResponseValueView struct {
	ID             string          `json:"id"`
	FieldID        string          `json:"field_id"`
	ValueText      *string         `json:"value_text,omitempty"`
	ValueNumber    *float64        `json:"value_number,omitempty"`
	ValueBoolean   *bool           `json:"value_boolean,omitempty"`
	ValueDate      *time.Time      `json:"value_date,omitempty"`
	ValueJSON      json.RawMessage `json:"value_json,omitempty"`
	FileArtifactID *string         `json:"file_artifact_id,omitempty"`
}

type SubmissionResponse struct {
	ID               string              `json:"id"`
	FormID           string              `json:"form_id"`
	TenantID         string              `json:"tenant_id"`
	SubmittedBy      *string             `json:"submitted_by,omitempty"`
	SubmittedByEmail string              `json:"submitted_by_email,omitempty"`
	SubmittedByName  string              `json:"submitted_by_name,omitempty"`
	Status           string              `json:"status"`
	Metadata         map[string]any      `json:"metadata,omitempty"`
	Responses        []ResponseValueView `json:"responses"`
	CreatedAt        time.Time           `json:"created_at"`
	SubmittedAt      *time.Time          `json:"submitted_at,omitempty"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

func ToSubmissionResponse(submission domain.Submission) SubmissionResponse {
	responses := make([]ResponseValueView, len(submission.Responses))
	for i, response := range submission.Responses {
		var artifactID *string
		if response.FileArtifactID != nil {
			artifactID = utils.StringPtr(response.FileArtifactID.String())
		}

		responses[i] = ResponseValueView{
			ID:             response.ID.String(),
			FieldID:        response.FieldID.String(),
			ValueText:      response.ValueText,
			ValueNumber:    response.ValueNumber,
			ValueBoolean:   response.ValueBoolean,
			ValueDate:      response.ValueDate,
			ValueJSON:      response.ValueJSON,
			FileArtifactID: artifactID,
		}
	}

	var submittedBy *string
	if submission.SubmittedBy != nil {
		submittedBy = utils.StringPtr(submission.SubmittedBy.String())
	}

	return SubmissionResponse{
		ID:               submission.ID.String(),
		FormID:           submission.FormID.String(),
		TenantID:         submission.TenantID.String(),
		SubmittedBy:      submittedBy,
		SubmittedByEmail: submission.SubmittedByEmail,
		SubmittedByName:  submission.SubmittedByName,
		Status:           string(submission.Status),
		Metadata:         submission.Metadata,
		Responses:        responses,
		CreatedAt:        submission.CreatedAt,
		SubmittedAt:      submission.SubmittedAt,
		UpdatedAt:        submission.UpdatedAt,
	}
}
