package usecases

import (
	"context"
	"errors"

	"formflow-server/internal/forms/domain"
	shareddomain "formflow-server/internal/shared_kernel/domain"
)

//go:generate mockgen -source=repository_port.go -destination=../../../test/unit/doubles/forms/usecases/repository_port_mock.go -package=usecases -mock_names=FormRepository=MockFormRepository,SubmissionRepository=MockSubmissionRepository,FileArtifactRepository=MockFileArtifactRepository,FormCache=MockFormCache

var (
	ErrFormNotFound        = errors.New("form not found")
	ErrFormSoftDeleted     = errors.New("form is soft deleted")
	ErrFormNotPublished    = errors.New("form is not published and cannot accept submissions")
	ErrFormLimitExceeded   = errors.New("form limit exceeded for tenant plan")
	ErrSubmissionNotFound  = errors.New("submission not found")
	ErrDuplicateSubmission = errors.New("you have already submitted this form, multiple submissions are not allowed")
	ErrArtifactNotFound    = errors.New("file artifact not found")
)

// Pagination encapsulates pagination parameters for repository queries
type Pagination struct {
	Limit  int
	Offset int
}

// SubmissionFilter narrows submission queries. Zero values mean no filter.
type SubmissionFilter struct {
	FormID      shareddomain.ID
	Status      domain.SubmissionStatus
	SubmittedBy shareddomain.ID
}

type FormRepository interface {
	Create(ctx context.Context, form domain.Form) error
	GetByID(ctx context.Context, id shareddomain.ID) (domain.Form, error)
	Update(ctx context.Context, form domain.Form) error
	FindByTenant(ctx context.Context, tenantID shareddomain.ID, includeDeleted bool, pagination Pagination) ([]domain.Form, int, error)
	CountByTenant(ctx context.Context, tenantID shareddomain.ID) (int, error)
}

type SubmissionRepository interface {
	// Create persists the submission, its responses and any file artifacts
	// produced while processing them in a single transaction.
	Create(ctx context.Context, submission domain.Submission, artifacts []domain.FileArtifact) error
	GetByID(ctx context.Context, id, tenantID shareddomain.ID) (domain.Submission, error)
	FindByTenant(ctx context.Context, tenantID shareddomain.ID, filter SubmissionFilter, pagination Pagination) ([]domain.Submission, int, error)
	ExistsByFormAndSubmitter(ctx context.Context, formID shareddomain.ID, submittedBy *shareddomain.ID, email string) (bool, error)
	Update(ctx context.Context, submission domain.Submission) error
	Delete(ctx context.Context, id, tenantID shareddomain.ID) error
}

type FileArtifactRepository interface {
	GetByID(ctx context.Context, id shareddomain.ID) (domain.FileArtifact, error)
	FindByTenant(ctx context.Context, tenantID shareddomain.ID, pagination Pagination) ([]domain.FileArtifact, int, error)
}

// FormCache keeps published form definitions off the database on the
// submission hot path.
type FormCache interface {
	GetForm(ctx context.Context, id shareddomain.ID) (domain.Form, bool)
	SetForm(ctx context.Context, form domain.Form)
	Invalidate(ctx context.Context, id shareddomain.ID)
}
