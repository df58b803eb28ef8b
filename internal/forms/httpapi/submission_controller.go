package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"formflow-server/internal/forms/domain"
	"formflow-server/internal/forms/httpapi/internal"
	"formflow-server/internal/forms/usecases"
	"formflow-server/internal/infra/httpserver"
	shareddomain "formflow-server/internal/shared_kernel/domain"
)

const (
	createSubmissionErrMessage   = "failed to create submission"
	getSubmissionErrMessage      = "failed to get submission"
	listSubmissionsErrMessage    = "failed to list submissions"
	submissionNotFoundErrMessage = "submission not found"
	formNotAcceptingErrMessage   = "form is not published and cannot accept submissions"
	approveForbiddenErrMessage   = "role cannot review submissions"
)

func NewSubmissionController(service usecases.SubmissionService) *SubmissionController {
	return &SubmissionController{
		service: service,
	}
}

var _ httpserver.Controller = &SubmissionController{}

type SubmissionController struct {
	service usecases.SubmissionService
}

func (c *SubmissionController) AddRoutes(router *http.ServeMux) {
	router.Handle("POST /v1/forms/{id}/submissions", c.createSubmission())
	router.Handle("GET /v1/submissions", c.listSubmissions())
	router.Handle("GET /v1/submissions/{id}", c.getSubmission())
	router.Handle("PUT /v1/submissions/{id}/status", c.updateStatus())
	router.Handle("DELETE /v1/submissions/{id}", c.deleteSubmission())
}

// createSubmission accepts both authenticated and anonymous submitters. An
// authenticated request takes identity from the token; an anonymous one
// identifies the submitter by the email in the body, if any.
func (c *SubmissionController) createSubmission() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		formID := r.PathValue("id")
		if formID == "" {
			http.Error(w, "form id is required", http.StatusBadRequest)
			return
		}

		var body internal.SubmissionCreateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding create submission request", slog.String("error", err.Error()))
			http.Error(w, createSubmissionErrMessage, http.StatusBadRequest)
			return
		}

		identity := httpserver.IdentityFromContext(r.Context())

		input := usecases.CreateSubmissionInput{
			FormID:           shareddomain.ID(formID),
			TenantID:         shareddomain.ID(identity.TenantID),
			SubmittedByEmail: body.SubmitterEmail,
			SubmittedByName:  body.SubmitterName,
			Metadata:         body.Metadata,
			Responses:        internal.ToResponses(body.Responses),
		}
		if !identity.IsAnonymous() {
			userID := shareddomain.ID(identity.UserID)
			input.SubmittedBy = &userID
			if identity.Email != "" {
				input.SubmittedByEmail = identity.Email
			}
		}

		submission, err := c.service.CreateSubmission(r.Context(), input)
		var validationErr usecases.ValidationError
		switch {
		case errors.Is(err, usecases.ErrFormNotFound):
			http.Error(w, formNotFoundErrMessage, http.StatusNotFound)
			return
		case errors.Is(err, usecases.ErrFormNotPublished):
			http.Error(w, formNotAcceptingErrMessage, http.StatusConflict)
			return
		case errors.Is(err, usecases.ErrDuplicateSubmission):
			httpserver.ReplyWithError(w, http.StatusConflict, err.Error())
			return
		case errors.As(err, &validationErr):
			httpserver.ReplyWithError(w, http.StatusUnprocessableEntity, validationErr.Message)
			return
		case err != nil:
			slog.Error("creating submission", slog.String("error", err.Error()))
			http.Error(w, createSubmissionErrMessage, http.StatusInternalServerError)
			return
		}

		response := internal.ToSubmissionResponse(submission)
		httpserver.ReplyJSONResponse(w, http.StatusCreated, response)
	}
}

func (c *SubmissionController) listSubmissions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := httpserver.IdentityFromContext(r.Context())
		if identity.IsAnonymous() || identity.TenantID == "" {
			httpserver.ReplyWithError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		filter := usecases.SubmissionFilter{
			FormID:      shareddomain.ID(r.URL.Query().Get("form_id")),
			Status:      domain.SubmissionStatus(r.URL.Query().Get("status")),
			SubmittedBy: shareddomain.ID(r.URL.Query().Get("submitted_by")),
		}
		if filter.Status != "" && !filter.Status.IsValid() {
			http.Error(w, "unknown submission status filter", http.StatusBadRequest)
			return
		}

		params := httpserver.ExtractPaginationParams(r)
		pagination := usecases.Pagination{Limit: params.Limit, Offset: (params.Page - 1) * params.Limit}

		submissions, total, err := c.service.ListSubmissions(r.Context(), shareddomain.ID(identity.TenantID), filter, pagination)
		if err != nil {
			slog.Error("listing submissions", slog.String("error", err.Error()))
			http.Error(w, listSubmissionsErrMessage, http.StatusInternalServerError)
			return
		}

		responses := make([]internal.SubmissionResponse, len(submissions))
		for i, submission := range submissions {
			responses[i] = internal.ToSubmissionResponse(submission)
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, responses, total, params)
	}
}

func (c *SubmissionController) getSubmission() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := httpserver.IdentityFromContext(r.Context())
		if identity.IsAnonymous() || identity.TenantID == "" {
			httpserver.ReplyWithError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "submission id is required", http.StatusBadRequest)
			return
		}

		submission, err := c.service.GetSubmission(r.Context(), shareddomain.ID(id), shareddomain.ID(identity.TenantID))
		if errors.Is(err, usecases.ErrSubmissionNotFound) {
			http.Error(w, submissionNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("getting submission", slog.String("error", err.Error()))
			http.Error(w, getSubmissionErrMessage, http.StatusInternalServerError)
			return
		}

		response := internal.ToSubmissionResponse(submission)
		httpserver.ReplyJSONResponse(w, http.StatusOK, response)
	}
}

func (c *SubmissionController) updateStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := httpserver.IdentityFromContext(r.Context())
		if identity.IsAnonymous() || identity.TenantID == "" {
			httpserver.ReplyWithError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		if !shareddomain.UserRole(identity.Role).CanApprove() {
			httpserver.ReplyWithError(w, http.StatusForbidden, approveForbiddenErrMessage)
			return
		}

		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "submission id is required", http.StatusBadRequest)
			return
		}

		var body internal.SubmissionStatusRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding status request", slog.String("error", err.Error()))
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		submission, err := c.service.UpdateSubmissionStatus(r.Context(),
			shareddomain.ID(id), shareddomain.ID(identity.TenantID), domain.SubmissionStatus(body.Status))
		var validationErr usecases.ValidationError
		switch {
		case errors.Is(err, usecases.ErrSubmissionNotFound):
			http.Error(w, submissionNotFoundErrMessage, http.StatusNotFound)
			return
		case errors.As(err, &validationErr):
			httpserver.ReplyWithError(w, http.StatusUnprocessableEntity, validationErr.Message)
			return
		case err != nil:
			slog.Error("updating submission status", slog.String("error", err.Error()))
			http.Error(w, "failed to update submission status", http.StatusInternalServerError)
			return
		}

		response := internal.ToSubmissionResponse(submission)
		httpserver.ReplyJSONResponse(w, http.StatusOK, response)
	}
}

func (c *SubmissionController) deleteSubmission() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := httpserver.IdentityFromContext(r.Context())
		if identity.IsAnonymous() || identity.TenantID == "" {
			httpserver.ReplyWithError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		if shareddomain.UserRole(identity.Role) != shareddomain.RoleAdmin {
			httpserver.ReplyWithError(w, http.StatusForbidden, "only admins can delete submissions")
			return
		}

		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "submission id is required", http.StatusBadRequest)
			return
		}

		err := c.service.DeleteSubmission(r.Context(), shareddomain.ID(id), shareddomain.ID(identity.TenantID))
		if errors.Is(err, usecases.ErrSubmissionNotFound) {
			http.Error(w, submissionNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("deleting submission", slog.String("error", err.Error()))
			http.Error(w, "failed to delete submission", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
