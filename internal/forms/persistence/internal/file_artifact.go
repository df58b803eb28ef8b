package internal

import (
	"time"

	"formflow-server/internal/forms/domain"
	shareddomain "formflow-server/internal/shared_kernel/domain"
)

type FileArtifact struct {
	ID               string  `json:"id" gorm:"primaryKey"`
	TenantID         string  `json:"tenant_id" gorm:"index;not null"`
	UploadedBy       *string `json:"uploaded_by,omitempty"`
	OriginalFilename string  `json:"original_filename"`
	StoredFilename   string  `json:"stored_filename" gorm:"not null"`
	Path             string  `json:"path" gorm:"not null"`
	SizeBytes        int64   `json:"size_bytes"`
	MimeType         string  `json:"mime_type"`

	CreatedAt time.Time `json:"created_at"`
}

func (FileArtifact) TableName() string {
	return "file_artifacts"
}

func (f FileArtifact) ToDomain() domain.FileArtifact {
	var uploadedBy *shareddomain.ID
	if f.UploadedBy != nil {
		id := shareddomain.ID(*f.UploadedBy)
		uploadedBy = &id
	}

	return domain.FileArtifact{
		ID:               shareddomain.ID(f.ID),
		TenantID:         shareddomain.ID(f.TenantID),
		UploadedBy:       uploadedBy,
		OriginalFilename: f.OriginalFilename,
		StoredFilename:   f.StoredFilename,
		Path:             f.Path,
		SizeBytes:        f.SizeBytes,
		MimeType:         f.MimeType,
		CreatedAt:        f.CreatedAt,
	}
}

func FromFileArtifact(value domain.FileArtifact) FileArtifact {
	var uploadedBy *string
	if value.UploadedBy != nil {
		id := value.UploadedBy.String()
		uploadedBy = &id
	}

	return FileArtifact{
		ID:               value.ID.String(),
		TenantID:         value.TenantID.String(),
		UploadedBy:       uploadedBy,
		OriginalFilename: value.OriginalFilename,
		StoredFilename:   value.StoredFilename,
		Path:             value.Path,
		SizeBytes:        value.SizeBytes,
		MimeType:         value.MimeType,
		CreatedAt:        value.CreatedAt,
	}
}
