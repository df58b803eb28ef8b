package httpapi

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"formflow-server/internal/forms/domain"
	"formflow-server/internal/forms/httpapi/internal"
	"formflow-server/internal/forms/usecases"
	"formflow-server/internal/infra/httpserver"
	"formflow-server/internal/infra/utils"
	shareddomain "formflow-server/internal/shared_kernel/domain"
	sharedusecases "formflow-server/internal/shared_kernel/usecases"
)

const (
	createFormErrMessage      = "failed to create form"
	updateFormErrMessage      = "failed to update form"
	getFormErrMessage         = "failed to get form"
	listFormsErrMessage       = "failed to list forms"
	formNotFoundErrMessage    = "form not found"
	formSoftDeletedErrMessage = "form is soft deleted"
	formLimitErrMessage       = "form limit exceeded for tenant plan"
	exportErrMessage          = "failed to export submissions"
	tenantRequiredErrMessage  = "tenant context is required"
	editForbiddenErrMessage   = "role cannot edit forms"
	excelContentType          = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

func NewFormController(service usecases.FormService, exporter *usecases.SubmissionExporter) *FormController {
	return &FormController{
		service:  service,
		exporter: exporter,
	}
}

var _ httpserver.Controller = &FormController{}

type FormController struct {
	service  usecases.FormService
	exporter *usecases.SubmissionExporter
}

func (c *FormController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/forms", c.listForms())
	router.Handle("POST /v1/forms", c.createForm())
	router.Handle("GET /v1/forms/{id}", c.getForm())
	router.Handle("PUT /v1/forms/{id}", c.updateForm())
	router.Handle("DELETE /v1/forms/{id}", c.softDeleteForm())
	router.Handle("POST /v1/forms/{id}/publish", c.publishForm())
	router.Handle("POST /v1/forms/{id}/unpublish", c.unpublishForm())
	router.Handle("GET /v1/forms/{id}/export", c.exportSubmissions())
}

// editorIdentity gates form mutations to authenticated editors and resolves
// their tenant. A zero tenant means the gate already replied.
func editorIdentity(w http.ResponseWriter, r *http.Request) (httpserver.Identity, bool) {
	identity := httpserver.IdentityFromContext(r.Context())
	if identity.IsAnonymous() {
		httpserver.ReplyWithError(w, http.StatusUnauthorized, "authentication required")
		return httpserver.Identity{}, false
	}
	if !shareddomain.UserRole(identity.Role).CanEditForms() {
		httpserver.ReplyWithError(w, http.StatusForbidden, editForbiddenErrMessage)
		return httpserver.Identity{}, false
	}
	if identity.TenantID == "" {
		httpserver.ReplyWithError(w, http.StatusBadRequest, tenantRequiredErrMessage)
		return httpserver.Identity{}, false
	}
	return identity, true
}

func (c *FormController) listForms() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := httpserver.IdentityFromContext(r.Context())
		tenantID := identity.TenantID
		if tenantID == "" {
			tenantID = r.URL.Query().Get("tenant_id")
		}
		if tenantID == "" {
			httpserver.ReplyWithError(w, http.StatusBadRequest, tenantRequiredErrMessage)
			return
		}

		includeDeleted := r.URL.Query().Get("include_deleted") == "true"

		params := httpserver.ExtractPaginationParams(r)
		pagination := usecases.Pagination{Limit: params.Limit, Offset: (params.Page - 1) * params.Limit}

		forms, total, err := c.service.ListForms(r.Context(), shareddomain.ID(tenantID), includeDeleted, pagination)
		if err != nil {
			slog.Error("listing forms", slog.String("error", err.Error()))
			http.Error(w, listFormsErrMessage, http.StatusInternalServerError)
			return
		}

		responses := make([]internal.FormResponse, len(forms))
		for i, form := range forms {
			responses[i] = internal.ToFormResponse(form)
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, responses, total, params)
	}
}

func (c *FormController) createForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := editorIdentity(w, r)
		if !ok {
			return
		}

		var body internal.FormCreateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding create form request", slog.String("error", err.Error()))
			http.Error(w, createFormErrMessage, http.StatusBadRequest)
			return
		}

		if body.Title == "" {
			http.Error(w, "form title is required", http.StatusBadRequest)
			return
		}

		fields, err := internal.ToFields(body.Fields)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		builder := domain.NewFormBuilder().
			WithTenantID(shareddomain.ID(identity.TenantID)).
			WithTitle(body.Title).
			WithDescription(body.Description).
			WithHeader(body.Header).
			WithCreatedBy(shareddomain.ID(identity.UserID)).
			WithRequiresApproval(body.RequiresApproval).
			WithFields(fields)
		if body.AllowMultipleSubmissions != nil {
			builder = builder.WithAllowMultipleSubmissions(*body.AllowMultipleSubmissions)
		}

		form, err := builder.Build()
		if err != nil {
			slog.Error("building form", slog.String("error", err.Error()))
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		err = c.service.CreateForm(r.Context(), form)
		if errors.Is(err, usecases.ErrFormLimitExceeded) {
			http.Error(w, formLimitErrMessage, http.StatusForbidden)
			return
		}
		if errors.Is(err, sharedusecases.ErrTenantNotFound) {
			http.Error(w, "tenant not found", http.StatusNotFound)
			return
		}
		if errors.Is(err, sharedusecases.ErrTenantSoftDeleted) {
			http.Error(w, "tenant is not active", http.StatusConflict)
			return
		}
		if err != nil {
			slog.Error("creating form", slog.String("error", err.Error()))
			http.Error(w, createFormErrMessage, http.StatusInternalServerError)
			return
		}

		response := internal.ToFormResponse(form)
		httpserver.ReplyJSONResponse(w, http.StatusCreated, response)
	}
}

func (c *FormController) getForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "form id is required", http.StatusBadRequest)
			return
		}

		form, err := c.service.GetForm(r.Context(), shareddomain.ID(id))
		if errors.Is(err, usecases.ErrFormNotFound) {
			http.Error(w, formNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("getting form", slog.String("error", err.Error()))
			http.Error(w, getFormErrMessage, http.StatusInternalServerError)
			return
		}

		// Unauthenticated access only sees published, live forms.
		identity := httpserver.IdentityFromContext(r.Context())
		if identity.TenantID != form.TenantID.String() {
			if form.IsDeleted() || !form.IsPublished {
				http.Error(w, formNotFoundErrMessage, http.StatusNotFound)
				return
			}
		}

		response := internal.ToFormResponse(form)
		httpserver.ReplyJSONResponse(w, http.StatusOK, response)
	}
}

func (c *FormController) updateForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := editorIdentity(w, r)
		if !ok {
			return
		}

		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "form id is required", http.StatusBadRequest)
			return
		}

		var body internal.FormUpdateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding update form request", slog.String("error", err.Error()))
			http.Error(w, updateFormErrMessage, http.StatusBadRequest)
			return
		}

		existing, err := c.service.GetForm(r.Context(), shareddomain.ID(id))
		if errors.Is(err, usecases.ErrFormNotFound) {
			http.Error(w, formNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("getting form", slog.String("error", err.Error()))
			http.Error(w, getFormErrMessage, http.StatusInternalServerError)
			return
		}
		if existing.TenantID.String() != identity.TenantID {
			http.Error(w, formNotFoundErrMessage, http.StatusNotFound)
			return
		}

		fields, err := internal.ToFields(body.Fields)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		for i := range fields {
			if fields[i].ID == "" {
				fields[i].ID = shareddomain.ID(utils.GenerateUUID())
			}
			fields[i].FormID = existing.ID
		}

		existing.Title = body.Title
		existing.Description = body.Description
		existing.Header = body.Header
		existing.Fields = fields
		if body.AllowMultipleSubmissions != nil {
			existing.AllowMultipleSubmissions = *body.AllowMultipleSubmissions
		}
		if body.RequiresApproval != nil {
			existing.RequiresApproval = *body.RequiresApproval
		}

		err = c.service.UpdateForm(r.Context(), existing)
		if errors.Is(err, usecases.ErrFormNotFound) {
			http.Error(w, formNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if errors.Is(err, usecases.ErrFormSoftDeleted) {
			http.Error(w, formSoftDeletedErrMessage, http.StatusConflict)
			return
		}
		if err != nil {
			slog.Error("updating form", slog.String("error", err.Error()))
			http.Error(w, updateFormErrMessage, http.StatusInternalServerError)
			return
		}

		response := internal.ToFormResponse(existing)
		httpserver.ReplyJSONResponse(w, http.StatusOK, response)
	}
}

func (c *FormController) softDeleteForm() http.HandlerFunc {
	return c.mutation(func(r *http.Request, id, tenantID shareddomain.ID) error {
		return c.service.SoftDeleteForm(r.Context(), id, tenantID)
	}, "soft deleting form")
}

func (c *FormController) publishForm() http.HandlerFunc {
	return c.mutation(func(r *http.Request, id, tenantID shareddomain.ID) error {
		return c.service.PublishForm(r.Context(), id, tenantID)
	}, "publishing form")
}

func (c *FormController) unpublishForm() http.HandlerFunc {
	return c.mutation(func(r *http.Request, id, tenantID shareddomain.ID) error {
		return c.service.UnpublishForm(r.Context(), id, tenantID)
	}, "unpublishing form")
}

func (c *FormController) mutation(operation func(r *http.Request, id, tenantID shareddomain.ID) error, logContext string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := editorIdentity(w, r)
		if !ok {
			return
		}

		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "form id is required", http.StatusBadRequest)
			return
		}

		err := operation(r, shareddomain.ID(id), shareddomain.ID(identity.TenantID))
		if errors.Is(err, usecases.ErrFormNotFound) {
			http.Error(w, formNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if errors.Is(err, usecases.ErrFormSoftDeleted) {
			http.Error(w, formSoftDeletedErrMessage, http.StatusConflict)
			return
		}
		if err != nil {
			slog.Error(logContext, slog.String("error", err.Error()))
			http.Error(w, "failed to "+logContext, http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *FormController) exportSubmissions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := httpserver.IdentityFromContext(r.Context())
		if identity.IsAnonymous() || identity.TenantID == "" {
			httpserver.ReplyWithError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "form id is required", http.StatusBadRequest)
			return
		}

		workbook, err := c.exporter.ExportFormSubmissions(r.Context(), shareddomain.ID(id), shareddomain.ID(identity.TenantID))
		if errors.Is(err, usecases.ErrFormNotFound) {
			http.Error(w, formNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("exporting submissions", slog.String("error", err.Error()))
			http.Error(w, exportErrMessage, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", excelContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "submissions_"+id+".xlsx"))
		w.WriteHeader(http.StatusOK)
		w.Write(workbook)
	}
}
