package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"formflow-server/internal/forms/domain"
	"formflow-server/internal/infra/async"
	"formflow-server/internal/infra/utils"
	shareddomain "formflow-server/internal/shared_kernel/domain"
)

const (
	TopicSubmissionCreated       async.BrokerTopicName = "submission_created"
	TopicSubmissionStatusChanged async.BrokerTopicName = "submission_status_changed"
)

//go:generate mockgen -source=submission_service.go -destination=../../../test/unit/doubles/forms/usecases/submission_service_mock.go -package=usecases -mock_names=SubmissionService=MockSubmissionService

type SubmissionService interface {
	CreateSubmission(ctx context.Context, input CreateSubmissionInput) (domain.Submission, error)
	GetSubmission(ctx context.Context, id, tenantID shareddomain.ID) (domain.Submission, error)
	ListSubmissions(ctx context.Context, tenantID shareddomain.ID, filter SubmissionFilter, pagination Pagination) ([]domain.Submission, int, error)
	UpdateSubmissionStatus(ctx context.Context, id, tenantID shareddomain.ID, status domain.SubmissionStatus) (domain.Submission, error)
	DeleteSubmission(ctx context.Context, id, tenantID shareddomain.ID) error
}

// CreateSubmissionInput carries the submitter context as explicit values; the
// orchestrator never derives identity itself. SubmittedBy is nil for
// anonymous submissions, which fall back to the form's tenant.
type CreateSubmissionInput struct {
	FormID           shareddomain.ID
	TenantID         shareddomain.ID
	SubmittedBy      *shareddomain.ID
	SubmittedByEmail string
	SubmittedByName  string
	Metadata         map[string]any
	Responses        []domain.SubmissionResponse
}

func NewSubmissionService(
	forms FormService,
	submissions SubmissionRepository,
	signatures *SignatureProcessor,
	broker async.InternalBroker,
) *SimpleSubmissionService {
	return &SimpleSubmissionService{
		forms:       forms,
		submissions: submissions,
		signatures:  signatures,
		broker:      broker,
	}
}

var _ SubmissionService = &SimpleSubmissionService{}

type SimpleSubmissionService struct {
	forms       FormService
	submissions SubmissionRepository
	signatures  *SignatureProcessor
	broker      async.InternalBroker
}

// CreateSubmission validates and persists one submission as a sequential
// unit of work. Responses are processed in request order and the first
// failure aborts the whole operation with no partial persistence.
func (s *SimpleSubmissionService) CreateSubmission(ctx context.Context, input CreateSubmissionInput) (domain.Submission, error) {
	form, err := s.forms.GetForm(ctx, input.FormID)
	if err != nil {
		if errors.Is(err, ErrFormNotFound) {
			return domain.Submission{}, ErrFormNotFound
		}
		return domain.Submission{}, fmt.Errorf("getting form: %w", err)
	}

	if form.IsDeleted() {
		return domain.Submission{}, ErrFormNotFound
	}
	if !form.IsPublished {
		return domain.Submission{}, ErrFormNotPublished
	}

	tenantID := input.TenantID
	if tenantID == "" {
		tenantID = form.TenantID
	}

	if !form.AllowMultipleSubmissions && (input.SubmittedBy != nil || input.SubmittedByEmail != "") {
		exists, err := s.submissions.ExistsByFormAndSubmitter(ctx, form.ID, input.SubmittedBy, input.SubmittedByEmail)
		if err != nil {
			return domain.Submission{}, fmt.Errorf("checking prior submission: %w", err)
		}
		if exists {
			return domain.Submission{}, ErrDuplicateSubmission
		}
	}

	// Coarse presence gate for required fields, distinct from the per-type
	// content validation below.
	if err := s.checkRequiredFields(form, input.Responses); err != nil {
		return domain.Submission{}, err
	}

	status := domain.SubmissionStatusSubmitted
	if form.RequiresApproval {
		status = domain.SubmissionStatusPending
	}

	submission, err := domain.NewSubmissionBuilder().
		WithFormID(form.ID).
		WithTenantID(tenantID).
		WithSubmitter(input.SubmittedBy, input.SubmittedByEmail, input.SubmittedByName).
		WithStatus(status).
		WithMetadata(input.Metadata).
		Build()
	if err != nil {
		return domain.Submission{}, fmt.Errorf("building submission: %w", err)
	}

	var artifacts []domain.FileArtifact
	for _, response := range input.Responses {
		field, found := form.FieldByID(response.FieldID)
		if !found {
			return domain.Submission{}, NewValidationError("Invalid field ID: %s", response.FieldID)
		}

		if err := ValidateFieldValue(field, response); err != nil {
			return domain.Submission{}, err
		}

		if field.Type == domain.FieldTypeSection {
			// Sections never produce a stored value.
			continue
		}

		if field.Type == domain.FieldTypeSignature && response.ValueText != nil && *response.ValueText != "" {
			artifact, err := s.signatures.Process(ctx, field, *response.ValueText, tenantID, input.SubmittedBy)
			if err != nil {
				return domain.Submission{}, err
			}

			artifacts = append(artifacts, artifact)
			response.FileArtifactID = &artifact.ID
			// The raw base64 payload must never reach persistent storage.
			response.ValueText = nil
		}

		response.ID = shareddomain.ID(utils.GenerateUUID())
		response.SubmissionID = submission.ID
		submission.Responses = append(submission.Responses, response)
	}

	if err := s.submissions.Create(ctx, submission, artifacts); err != nil {
		slog.Error("persisting submission",
			slog.String("form_id", form.ID.String()),
			slog.String("error", err.Error()))
		return domain.Submission{}, fmt.Errorf("persisting submission: %w", err)
	}

	slog.Info("submission created",
		slog.String("id", submission.ID.String()),
		slog.String("form_id", form.ID.String()),
		slog.String("status", string(submission.Status)),
		slog.Int("response_count", len(submission.Responses)))

	s.publish(ctx, TopicSubmissionCreated, "submission_created", submission)

	return submission, nil
}

func (s *SimpleSubmissionService) checkRequiredFields(form domain.Form, responses []domain.SubmissionResponse) error {
	answered := make(map[shareddomain.ID]bool, len(responses))
	for _, response := range responses {
		if response.HasValue() {
			answered[response.FieldID] = true
		}
	}

	for _, field := range form.Fields {
		if field.Required && !answered[field.ID] {
			return NewValidationError("Required field '%s' (ID: %s) is missing", field.Label, field.ID)
		}
	}

	return nil
}

func (s *SimpleSubmissionService) GetSubmission(ctx context.Context, id, tenantID shareddomain.ID) (domain.Submission, error) {
	submission, err := s.submissions.GetByID(ctx, id, tenantID)
	if err != nil {
		if errors.Is(err, ErrSubmissionNotFound) {
			return domain.Submission{}, ErrSubmissionNotFound
		}
		slog.Error("getting submission", slog.String("error", err.Error()))
		return domain.Submission{}, fmt.Errorf("getting submission: %w", err)
	}

	return submission, nil
}

func (s *SimpleSubmissionService) ListSubmissions(ctx context.Context, tenantID shareddomain.ID, filter SubmissionFilter, pagination Pagination) ([]domain.Submission, int, error) {
	submissions, total, err := s.submissions.FindByTenant(ctx, tenantID, filter, pagination)
	if err != nil {
		slog.Error("listing submissions", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing submissions: %w", err)
	}

	return submissions, total, nil
}

func (s *SimpleSubmissionService) UpdateSubmissionStatus(ctx context.Context, id, tenantID shareddomain.ID, status domain.SubmissionStatus) (domain.Submission, error) {
	submission, err := s.submissions.GetByID(ctx, id, tenantID)
	if err != nil {
		if errors.Is(err, ErrSubmissionNotFound) {
			return domain.Submission{}, ErrSubmissionNotFound
		}
		return domain.Submission{}, fmt.Errorf("getting submission: %w", err)
	}

	switch status {
	case domain.SubmissionStatusApproved:
		err = submission.Approve()
	case domain.SubmissionStatusRejected:
		err = submission.Reject()
	default:
		return domain.Submission{}, NewValidationError("Invalid status. Must be one of: approved, rejected")
	}
	if err != nil {
		return domain.Submission{}, ValidationError{Message: err.Error()}
	}

	if err := s.submissions.Update(ctx, submission); err != nil {
		slog.Error("updating submission status", slog.String("error", err.Error()))
		return domain.Submission{}, fmt.Errorf("updating submission status: %w", err)
	}

	slog.Info("submission status updated",
		slog.String("id", id.String()),
		slog.String("status", string(status)))

	s.publish(ctx, TopicSubmissionStatusChanged, "submission_status_changed", submission)

	return submission, nil
}

func (s *SimpleSubmissionService) DeleteSubmission(ctx context.Context, id, tenantID shareddomain.ID) error {
	if err := s.submissions.Delete(ctx, id, tenantID); err != nil {
		if errors.Is(err, ErrSubmissionNotFound) {
			return ErrSubmissionNotFound
		}
		slog.Error("deleting submission", slog.String("error", err.Error()))
		return fmt.Errorf("deleting submission: %w", err)
	}

	slog.Info("submission deleted", slog.String("id", id.String()))
	return nil
}

// publish is best-effort: a topic with no subscribers is not an error the
// submission path should care about.
func (s *SimpleSubmissionService) publish(ctx context.Context, topic async.BrokerTopicName, event string, submission domain.Submission) {
	if s.broker == nil {
		return
	}

	err := s.broker.Publish(ctx, topic, async.BrokerMessage{
		Event: event,
		Value: submission,
	})
	if err != nil && !errors.Is(err, async.ErrTopicNotFound) {
		slog.Warn("publishing submission event",
			slog.String("topic", string(topic)),
			slog.String("error", err.Error()))
	}
}
