package internal

import (
	"time"

	"formflow-server/internal/forms/domain"
	"formflow-server/internal/infra/utils"
)

type FileArtifactResponse struct {
	ID               string    `json:"id"`
	TenantID         string    `json:"tenant_id"`
	UploadedBy       *string   `json:"uploaded_by,omitempty"`
	OriginalFilename string    `json:"original_filename"`
	StoredFilename   string    `json:"stored_filename"`
	Path             string    `json:"path"`
	SizeBytes        int64     `json:"size_bytes"`
	MimeType         string    `json:"mime_type"`
	CreatedAt        time.Time `json:"created_at"`
}

func ToFileArtifactResponse(artifact domain.FileArtifact) FileArtifactResponse {
	var uploadedBy *string
	if artifact.UploadedBy != nil {
		uploadedBy = utils.StringPtr(artifact.UploadedBy.String())
	}

	return FileArtifactResponse{
		ID:               artifact.ID.String(),
		TenantID:         artifact.TenantID.String(),
		UploadedBy:       uploadedBy,
		OriginalFilename: artifact.OriginalFilename,
		StoredFilename:   artifact.StoredFilename,
		Path:             artifact.Path,
		SizeBytes:        artifact.SizeBytes,
		MimeType:         artifact.MimeType,
		CreatedAt:        artifact.CreatedAt,
	}
}
