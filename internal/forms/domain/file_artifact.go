package domain

import (
	"time"

	"formflow-server/internal/infra/utils"
	shareddomain "formflow-server/internal/shared_kernel/domain"
)

// FileArtifact is the metadata record of a stored binary object. Immutable
// after creation; submission responses reference it, they never embed it.
type FileArtifact struct {
	ID               shareddomain.ID
	TenantID         shareddomain.ID
	UploadedBy       *shareddomain.ID
	OriginalFilename string
	StoredFilename   string
	Path             string
	SizeBytes        int64
	MimeType         string
	CreatedAt        time.Time
}

func NewFileArtifact(tenantID shareddomain.ID, uploadedBy *shareddomain.ID, originalFilename, storedFilename, path string, sizeBytes int64, mimeType string) FileArtifact {
	return FileArtifact{
		ID:               shareddomain.ID(utils.GenerateUUID()),
		TenantID:         tenantID,
		UploadedBy:       uploadedBy,
		OriginalFilename: originalFilename,
		StoredFilename:   storedFilename,
		Path:             path,
		SizeBytes:        sizeBytes,
		MimeType:         mimeType,
		CreatedAt:        time.Now(),
	}
}
