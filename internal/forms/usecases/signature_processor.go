package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"formflow-server/internal/forms/domain"
	"formflow-server/internal/infra/imaging"
	"formflow-server/internal/infra/storage"
	shareddomain "formflow-server/internal/shared_kernel/domain"
)

const (
	signatureDirectory = "signatures"
	signatureMimeType  = "image/png"

	// Sentinel embedded in filenames for unauthenticated submitters.
	anonymousSubmitter = "anonymous"
)

// SignatureConfig is the explicit upload configuration handed to the
// processor at construction, never read from ambient state.
type SignatureConfig struct {
	MaxBytes int64
}

func NewSignatureProcessor(store storage.Store, config SignatureConfig) *SignatureProcessor {
	maxBytes := config.MaxBytes
	if maxBytes <= 0 {
		maxBytes = imaging.DefaultMaxBytes
	}

	return &SignatureProcessor{
		store:    store,
		maxBytes: maxBytes,
	}
}

// SignatureProcessor runs the signature pipeline: decode the base64 payload
// to normalized PNG bytes, write the file, and build the artifact record.
// The caller persists the artifact inside the submission's transaction; if
// that transaction rolls back, the written file is orphaned until an external
// reconciliation sweep removes it.
type SignatureProcessor struct {
	store    storage.Store
	maxBytes int64
}

func (p *SignatureProcessor) Process(ctx context.Context, field domain.Field, payload string, tenantID shareddomain.ID, userID *shareddomain.ID) (domain.FileArtifact, error) {
	pngBytes, err := imaging.DecodePNG(payload, p.maxBytes)
	if err != nil {
		var tooLarge *imaging.PayloadTooLargeError
		var invalidImage *imaging.InvalidImageError
		switch {
		case errors.Is(err, imaging.ErrInvalidEncoding):
			return domain.FileArtifact{}, NewValidationError("Invalid base64 signature data")
		case errors.As(err, &tooLarge), errors.As(err, &invalidImage):
			return domain.FileArtifact{}, ValidationError{Message: capitalize(err.Error())}
		default:
			return domain.FileArtifact{}, fmt.Errorf("decoding signature: %w", err)
		}
	}

	submitter := anonymousSubmitter
	if userID != nil {
		submitter = userID.String()
	}
	filename := fmt.Sprintf("signature_%s_%s_%s_%d.png", tenantID, submitter, field.ID, time.Now().UnixMilli())

	path, err := p.store.Save(ctx, pngBytes, filename, signatureDirectory)
	if err != nil {
		slog.Error("saving signature file",
			slog.String("filename", filename),
			slog.String("error", err.Error()))
		return domain.FileArtifact{}, fmt.Errorf("saving signature file: %w", err)
	}

	artifact := domain.NewFileArtifact(
		tenantID,
		userID,
		fmt.Sprintf("signature_%s.png", field.Label),
		filename,
		path,
		int64(len(pngBytes)),
		signatureMimeType,
	)

	slog.Debug("signature processed",
		slog.String("field_id", field.ID.String()),
		slog.String("path", path),
		slog.Int64("size_bytes", artifact.SizeBytes))

	return artifact, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
