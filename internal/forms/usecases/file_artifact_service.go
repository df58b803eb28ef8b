package usecases

import (
	"context"
	"errors"
	"fmt"

	"formflow-server/internal/forms/domain"
	shareddomain "formflow-server/internal/shared_kernel/domain"
)

//go:generate mockgen -source=file_artifact_service.go -destination=../../../test/unit/doubles/forms/usecases/file_artifact_service_mock.go -package=usecases -mock_names=FileArtifactService=MockFileArtifactService

type FileArtifactService interface {
	GetArtifact(ctx context.Context, id, tenantID shareddomain.ID) (domain.FileArtifact, error)
	ListArtifacts(ctx context.Context, tenantID shareddomain.ID, pagination Pagination) ([]domain.FileArtifact, int, error)
}

func NewFileArtifactService(artifacts FileArtifactRepository) *SimpleFileArtifactService {
	return &SimpleFileArtifactService{
		artifacts: artifacts,
	}
}

var _ FileArtifactService = &SimpleFileArtifactService{}

type SimpleFileArtifactService struct {
	artifacts FileArtifactRepository
}

// GetArtifact resolves artifact metadata within the caller's tenant. A
// foreign tenant's artifact is indistinguishable from a missing one.
func (s *SimpleFileArtifactService) GetArtifact(ctx context.Context, id, tenantID shareddomain.ID) (domain.FileArtifact, error) {
	artifact, err := s.artifacts.GetByID(ctx, id)
	if errors.Is(err, ErrArtifactNotFound) {
		return domain.FileArtifact{}, ErrArtifactNotFound
	}
	if err != nil {
		return domain.FileArtifact{}, fmt.Errorf("getting file artifact: %w", err)
	}

	if artifact.TenantID != tenantID {
		return domain.FileArtifact{}, ErrArtifactNotFound
	}

	return artifact, nil
}

func (s *SimpleFileArtifactService) ListArtifacts(ctx context.Context, tenantID shareddomain.ID, pagination Pagination) ([]domain.FileArtifact, int, error) {
	artifacts, total, err := s.artifacts.FindByTenant(ctx, tenantID, pagination)
	if err != nil {
		return nil, 0, fmt.Errorf("listing file artifacts: %w", err)
	}

	return artifacts, total, nil
}
