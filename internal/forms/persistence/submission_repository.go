package persistence

import (
	"context"
	"errors"
	"fmt"

	"formflow-server/internal/forms/domain"
	"formflow-server/internal/forms/persistence/internal"
	"formflow-server/internal/forms/usecases"
	"formflow-server/internal/infra/sql"
	shareddomain "formflow-server/internal/shared_kernel/domain"
)

func NewSubmissionRepository(orm sql.ORM) (*SimpleSubmissionRepository, error) {
	err := orm.AutoMigrate(&internal.Submission{}, &internal.SubmissionResponse{}, &internal.FileArtifact{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleSubmissionRepository{
		orm: orm,
	}, nil
}

var _ usecases.SubmissionRepository = (*SimpleSubmissionRepository)(nil)

type SimpleSubmissionRepository struct {
	orm sql.ORM
}

// Create persists the submission, its responses and the file artifacts they
// reference in one transaction. The artifact files themselves are written
// before this call; a rollback orphans them on disk, never in the database.
func (r *SimpleSubmissionRepository) Create(ctx context.Context, submission domain.Submission, artifacts []domain.FileArtifact) error {
	entity, err := internal.FromSubmission(submission)
	if err != nil {
		return fmt.Errorf("converting submission: %w", err)
	}

	err = r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		for _, artifact := range artifacts {
			artifactEntity := internal.FromFileArtifact(artifact)
			if err := tx.Create(&artifactEntity).Error(); err != nil {
				return fmt.Errorf("inserting artifact: %w", err)
			}
		}

		if err := tx.Create(&entity).Error(); err != nil {
			return fmt.Errorf("inserting submission: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("database insert: %w", err)
	}

	return nil
}

func (r *SimpleSubmissionRepository) GetByID(ctx context.Context, id, tenantID shareddomain.ID) (domain.Submission, error) {
	var entity internal.Submission
	err := r.orm.
		WithContext(ctx).
		Preload("Responses").
		Where("id = ? AND tenant_id = ?", id.String(), tenantID.String()).
		First(&entity).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Submission{}, usecases.ErrSubmissionNotFound
	}

	if err != nil {
		return domain.Submission{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain()
}

func (r *SimpleSubmissionRepository) FindByTenant(ctx context.Context, tenantID shareddomain.ID, filter usecases.SubmissionFilter, pagination usecases.Pagination) ([]domain.Submission, int, error) {
	query := r.orm.WithContext(ctx).Model(&internal.Submission{}).Where("tenant_id = ?", tenantID.String())

	if filter.FormID != "" {
		query = query.Where("form_id = ?", filter.FormID.String())
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.SubmittedBy != "" {
		query = query.Where("submitted_by = ?", filter.SubmittedBy.String())
	}

	var total int64
	err := query.Count(&total).Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database count: %w", err)
	}

	var entities []internal.Submission
	err = query.
		Preload("Responses").
		Order("created_at DESC").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.Submission, len(entities))
	for i, entity := range entities {
		submission, err := entity.ToDomain()
		if err != nil {
			return nil, 0, err
		}
		result[i] = submission
	}

	return result, int(total), nil
}

func (r *SimpleSubmissionRepository) ExistsByFormAndSubmitter(ctx context.Context, formID shareddomain.ID, submittedBy *shareddomain.ID, email string) (bool, error) {
	query := r.orm.WithContext(ctx).Model(&internal.Submission{}).Where("form_id = ?", formID.String())

	switch {
	case submittedBy != nil:
		query = query.Where("submitted_by = ?", submittedBy.String())
	case email != "":
		query = query.Where("submitted_by_email = ?", email)
	default:
		return false, nil
	}

	var total int64
	err := query.Count(&total).Error()
	if err != nil {
		return false, fmt.Errorf("database count: %w", err)
	}

	return total > 0, nil
}

// Update rewrites the submission row only. Responses are immutable once
// captured; status review is the only mutation this path serves.
func (r *SimpleSubmissionRepository) Update(ctx context.Context, submission domain.Submission) error {
	entity, err := internal.FromSubmission(submission)
	if err != nil {
		return fmt.Errorf("converting submission: %w", err)
	}
	entity.Responses = nil

	err = r.orm.
		WithContext(ctx).
		Save(&entity).
		Error()
	if err != nil {
		return fmt.Errorf("database update: %w", err)
	}

	return nil
}

func (r *SimpleSubmissionRepository) Delete(ctx context.Context, id, tenantID shareddomain.ID) error {
	var entity internal.Submission
	err := r.orm.
		WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id.String(), tenantID.String()).
		First(&entity).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return usecases.ErrSubmissionNotFound
	}
	if err != nil {
		return fmt.Errorf("database query: %w", err)
	}

	err = r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		if err := tx.Where("submission_id = ?", id.String()).Delete(&internal.SubmissionResponse{}).Error(); err != nil {
			return fmt.Errorf("deleting responses: %w", err)
		}

		if err := tx.Where("id = ?", id.String()).Delete(&internal.Submission{}).Error(); err != nil {
			return fmt.Errorf("deleting submission: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("database delete: %w", err)
	}

	return nil
}
