package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"formflow-server/internal/infra/utils"
	shareddomain "formflow-server/internal/shared_kernel/domain"
)

type SubmissionStatus string

const (
	SubmissionStatusDraft     SubmissionStatus = "draft"
	SubmissionStatusSubmitted SubmissionStatus = "submitted"
	SubmissionStatusPending   SubmissionStatus = "pending"
	SubmissionStatusApproved  SubmissionStatus = "approved"
	SubmissionStatusRejected  SubmissionStatus = "rejected"
)

func (s SubmissionStatus) IsValid() bool {
	switch s {
	case SubmissionStatusDraft, SubmissionStatusSubmitted, SubmissionStatusPending,
		SubmissionStatusApproved, SubmissionStatusRejected:
		return true
	}
	return false
}

// Submission is one instance of a submitter answering a form. Anonymous
// submissions carry a nil SubmittedBy and identify the submitter by email.
type Submission struct {
	ID               shareddomain.ID
	FormID           shareddomain.ID
	TenantID         shareddomain.ID
	SubmittedBy      *shareddomain.ID
	SubmittedByEmail string
	SubmittedByName  string
	Status           SubmissionStatus
	Metadata         map[string]any
	Responses        []SubmissionResponse
	CreatedAt        time.Time
	SubmittedAt      *time.Time
	UpdatedAt        time.Time
}

// SubmissionResponse answers exactly one field. Exactly one value slot is
// populated, matching the field type's storage mapping.
type SubmissionResponse struct {
	ID             shareddomain.ID
	SubmissionID   shareddomain.ID
	FieldID        shareddomain.ID
	ValueText      *string
	ValueNumber    *float64
	ValueBoolean   *bool
	ValueDate      *time.Time
	ValueJSON      json.RawMessage
	FileArtifactID *shareddomain.ID
}

// HasValue reports whether any slot carries a non-empty value. Used by the
// required-presence gate before per-type validation.
func (r SubmissionResponse) HasValue() bool {
	if r.ValueText != nil && *r.ValueText != "" {
		return true
	}
	if r.ValueNumber != nil || r.ValueBoolean != nil || r.ValueDate != nil {
		return true
	}
	if len(r.ValueJSON) > 0 && string(r.ValueJSON) != "null" {
		return true
	}
	return r.FileArtifactID != nil
}

// Approve moves a pending or submitted submission to approved.
func (s *Submission) Approve() error {
	return s.transition(SubmissionStatusApproved)
}

// Reject moves a pending or submitted submission to rejected.
func (s *Submission) Reject() error {
	return s.transition(SubmissionStatusRejected)
}

func (s *Submission) transition(target SubmissionStatus) error {
	if s.Status != SubmissionStatusPending && s.Status != SubmissionStatusSubmitted {
		return fmt.Errorf("cannot move submission from %s to %s", s.Status, target)
	}
	s.Status = target
	s.UpdatedAt = time.Now()
	return nil
}

func NewSubmissionBuilder() *submissionBuilder {
	return &submissionBuilder{}
}

type submissionBuilder struct {
	actions []submissionHandler
}

type submissionHandler func(s *Submission) error

func (b *submissionBuilder) WithFormID(formID shareddomain.ID) *submissionBuilder {
	b.actions = append(b.actions, func(s *Submission) error {
		s.FormID = formID
		return nil
	})
	return b
}

func (b *submissionBuilder) WithTenantID(tenantID shareddomain.ID) *submissionBuilder {
	b.actions = append(b.actions, func(s *Submission) error {
		s.TenantID = tenantID
		return nil
	})
	return b
}

func (b *submissionBuilder) WithSubmitter(userID *shareddomain.ID, email, name string) *submissionBuilder {
	b.actions = append(b.actions, func(s *Submission) error {
		s.SubmittedBy = userID
		s.SubmittedByEmail = email
		s.SubmittedByName = name
		return nil
	})
	return b
}

func (b *submissionBuilder) WithStatus(status SubmissionStatus) *submissionBuilder {
	b.actions = append(b.actions, func(s *Submission) error {
		if !status.IsValid() {
			return fmt.Errorf("unknown submission status: %s", status)
		}
		s.Status = status
		return nil
	})
	return b
}

func (b *submissionBuilder) WithMetadata(metadata map[string]any) *submissionBuilder {
	b.actions = append(b.actions, func(s *Submission) error {
		s.Metadata = metadata
		return nil
	})
	return b
}

func (b *submissionBuilder) Build() (Submission, error) {
	now := time.Now()
	result := Submission{
		ID:          shareddomain.ID(utils.GenerateUUID()),
		Status:      SubmissionStatusSubmitted,
		CreatedAt:   now,
		SubmittedAt: utils.TimePtr(now),
		UpdatedAt:   now,
	}

	for _, action := range b.actions {
		if err := action(&result); err != nil {
			return Submission{}, err
		}
	}

	return result, nil
}
