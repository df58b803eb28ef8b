package httpapi

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"formflow-server/internal/infra/httpserver"
	"formflow-server/internal/shared_kernel/domain"
	"formflow-server/internal/shared_kernel/httpapi/internal"
	"formflow-server/internal/shared_kernel/usecases"
)

const (
	createUserErrMessage         = "failed to create user"
	userNotFoundErrMessage       = "user not found"
	userDuplicatedErrMessage     = "user already exists"
	userLimitExceededErrMessage  = "user limit exceeded for tenant plan"
	invalidCredentialsErrMessage = "invalid credentials"
	listUsersErrMessage          = "failed to list users"

	tokenValidity = 24 * time.Hour
)

func NewUserController(service usecases.UserService, authenticator *httpserver.Authenticator) *UserController {
	return &UserController{
		service:       service,
		authenticator: authenticator,
	}
}

var _ httpserver.Controller = &UserController{}

type UserController struct {
	service       usecases.UserService
	authenticator *httpserver.Authenticator
}

func (c *UserController) AddRoutes(router *http.ServeMux) {
	router.Handle("POST /v1/auth/login", c.login())
	router.Handle("POST /v1/users", c.createUser())
	router.Handle("GET /v1/users/{id}", c.getUser())
	router.Handle("GET /v1/tenants/{id}/users", c.listTenantUsers())
	router.Handle("POST /v1/users/{id}/deactivate", c.deactivateUser())
}

func (c *UserController) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.LoginRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding login request", slog.String("error", err.Error()))
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		user, err := c.service.Authenticate(r.Context(), body.Email, body.Password)
		if errors.Is(err, usecases.ErrInvalidCredentials) {
			http.Error(w, invalidCredentialsErrMessage, http.StatusUnauthorized)
			return
		}
		if err != nil {
			slog.Error("authenticating user", slog.String("error", err.Error()))
			http.Error(w, "failed to authenticate", http.StatusInternalServerError)
			return
		}

		token, err := c.authenticator.Issue(httpserver.Identity{
			UserID:   user.ID.String(),
			TenantID: user.TenantID.String(),
			Email:    user.Email,
			Role:     string(user.Role),
		}, tokenValidity)
		if err != nil {
			slog.Error("issuing token", slog.String("error", err.Error()))
			http.Error(w, "failed to authenticate", http.StatusInternalServerError)
			return
		}

		response := internal.LoginResponse{
			Token: token,
			User:  internal.ToUserResponse(user),
		}
		httpserver.ReplyJSONResponse(w, http.StatusOK, response)
	}
}

func (c *UserController) createUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.UserCreateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding create user request", slog.String("error", err.Error()))
			http.Error(w, createUserErrMessage, http.StatusBadRequest)
			return
		}

		if body.Email == "" || body.Password == "" || body.TenantID == "" {
			http.Error(w, "tenant_id, email and password are required", http.StatusBadRequest)
			return
		}

		user, err := domain.NewUserBuilder().
			WithTenantID(domain.ID(body.TenantID)).
			WithEmail(body.Email).
			WithFullName(body.FullName).
			WithRole(domain.UserRole(body.Role)).
			WithPassword(body.Password).
			Build()
		if err != nil {
			slog.Error("building user", slog.String("error", err.Error()))
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		err = c.service.CreateUser(r.Context(), user)
		if errors.Is(err, usecases.ErrTenantNotFound) {
			http.Error(w, tenantNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if errors.Is(err, usecases.ErrUserDuplicated) {
			http.Error(w, userDuplicatedErrMessage, http.StatusConflict)
			return
		}
		if errors.Is(err, usecases.ErrUserLimitExceeded) {
			http.Error(w, userLimitExceededErrMessage, http.StatusForbidden)
			return
		}
		if errors.Is(err, usecases.ErrTenantSoftDeleted) {
			http.Error(w, tenantSoftDeletedErrMessage, http.StatusConflict)
			return
		}
		if err != nil {
			slog.Error("creating user", slog.String("error", err.Error()))
			http.Error(w, createUserErrMessage, http.StatusInternalServerError)
			return
		}

		response := internal.ToUserResponse(user)
		httpserver.ReplyJSONResponse(w, http.StatusCreated, response)
	}
}

func (c *UserController) getUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "user id is required", http.StatusBadRequest)
			return
		}

		user, err := c.service.GetUser(r.Context(), domain.ID(id))
		if errors.Is(err, usecases.ErrUserNotFound) {
			http.Error(w, userNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("getting user", slog.String("error", err.Error()))
			http.Error(w, "failed to get user", http.StatusInternalServerError)
			return
		}

		response := internal.ToUserResponse(user)
		httpserver.ReplyJSONResponse(w, http.StatusOK, response)
	}
}

func (c *UserController) listTenantUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenantID := r.PathValue("id")
		if tenantID == "" {
			http.Error(w, "tenant id is required", http.StatusBadRequest)
			return
		}

		params := httpserver.ExtractPaginationParams(r)
		pagination := usecases.Pagination{Limit: params.Limit, Offset: (params.Page - 1) * params.Limit}

		users, total, err := c.service.ListUsers(r.Context(), domain.ID(tenantID), pagination)
		if err != nil {
			slog.Error("listing users", slog.String("error", err.Error()))
			http.Error(w, listUsersErrMessage, http.StatusInternalServerError)
			return
		}

		responses := make([]internal.UserResponse, len(users))
		for i, user := range users {
			responses[i] = internal.ToUserResponse(user)
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, responses, total, params)
	}
}

func (c *UserController) deactivateUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "user id is required", http.StatusBadRequest)
			return
		}

		err := c.service.DeactivateUser(r.Context(), domain.ID(id))
		if errors.Is(err, usecases.ErrUserNotFound) {
			http.Error(w, userNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("deactivating user", slog.String("error", err.Error()))
			http.Error(w, "failed to deactivate user", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
