package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"formflow-server/internal/forms/httpapi/internal"
	"formflow-server/internal/forms/usecases"
	"formflow-server/internal/infra/httpserver"
	shareddomain "formflow-server/internal/shared_kernel/domain"
)

const (
	getFileErrMessage      = "failed to get file artifact"
	listFilesErrMessage    = "failed to list file artifacts"
	fileNotFoundErrMessage = "file artifact not found"
)

func NewFileArtifactController(service usecases.FileArtifactService) *FileArtifactController {
	return &FileArtifactController{
		service: service,
	}
}

var _ httpserver.Controller = &FileArtifactController{}

// FileArtifactController exposes the metadata of stored binary objects to
// reviewers. The bytes themselves stay in the object store; only the
// audit-relevant record is served.
type FileArtifactController struct {
	service usecases.FileArtifactService
}

func (c *FileArtifactController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/files", c.listFiles())
	router.Handle("GET /v1/files/{id}", c.getFile())
}

func (c *FileArtifactController) getFile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := httpserver.IdentityFromContext(r.Context())
		if identity.IsAnonymous() || identity.TenantID == "" {
			httpserver.ReplyWithError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		id := r.PathValue("id")
		artifact, err := c.service.GetArtifact(r.Context(), shareddomain.ID(id), shareddomain.ID(identity.TenantID))
		switch {
		case errors.Is(err, usecases.ErrArtifactNotFound):
			httpserver.ReplyWithError(w, http.StatusNotFound, fileNotFoundErrMessage)
			return
		case err != nil:
			slog.Error("getting file artifact", slog.String("error", err.Error()), slog.String("id", id))
			http.Error(w, getFileErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToFileArtifactResponse(artifact))
	}
}

func (c *FileArtifactController) listFiles() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := httpserver.IdentityFromContext(r.Context())
		if identity.IsAnonymous() || identity.TenantID == "" {
			httpserver.ReplyWithError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		params := httpserver.ExtractPaginationParams(r)
		pagination := usecases.Pagination{Limit: params.Limit, Offset: (params.Page - 1) * params.Limit}

		artifacts, total, err := c.service.ListArtifacts(r.Context(), shareddomain.ID(identity.TenantID), pagination)
		if err != nil {
			slog.Error("listing file artifacts", slog.String("error", err.Error()))
			http.Error(w, listFilesErrMessage, http.StatusInternalServerError)
			return
		}

		responses := make([]internal.FileArtifactResponse, len(artifacts))
		for i, artifact := range artifacts {
			responses[i] = internal.ToFileArtifactResponse(artifact)
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, responses, total, params)
	}
}
