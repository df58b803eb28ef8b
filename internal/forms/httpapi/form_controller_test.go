package httpapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"formflow-server/internal/forms/domain"
	"formflow-server/internal/forms/httpapi"
	"formflow-server/internal/forms/usecases"
	"formflow-server/internal/infra/httpserver"
	shareddomain "formflow-server/internal/shared_kernel/domain"
	mockforms "formflow-server/test/unit/doubles/forms/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("FormController", func() {
	var (
		ctrl            *gomock.Controller
		mockService     *mockforms.MockFormService
		mockSubmissions *mockforms.MockSubmissionRepository
		controller      *httpapi.FormController
		router          *http.ServeMux
		recorder        *httptest.ResponseRecorder
	)

	editor := httpserver.Identity{UserID: "user-1", TenantID: "tenant-1", Email: "ed@example.com", Role: "editor"}
	viewer := httpserver.Identity{UserID: "user-2", TenantID: "tenant-1", Email: "view@example.com", Role: "viewer"}

	withIdentity := func(r *http.Request, identity httpserver.Identity) *http.Request {
		return r.WithContext(httpserver.ContextWithIdentity(r.Context(), identity))
	}

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockforms.NewMockFormService(ctrl)
		mockSubmissions = mockforms.NewMockSubmissionRepository(ctrl)
		exporter := usecases.NewSubmissionExporter(mockService, mockSubmissions)
		controller = httpapi.NewFormController(mockService, exporter)
		router = http.NewServeMux()
		controller.AddRoutes(router)
		recorder = httptest.NewRecorder()
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("createForm", func() {
		body := `{"title": "Site Inspection", "fields": [{"type": "text", "label": "Notes", "order": 0}]}`

		It("creates a form for the editor's tenant", func() {
			mockService.EXPECT().
				CreateForm(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ any, form domain.Form) error {
					Expect(form.Title).To(Equal("Site Inspection"))
					Expect(form.TenantID.String()).To(Equal("tenant-1"))
					Expect(form.CreatedBy.String()).To(Equal("user-1"))
					Expect(form.Fields).To(HaveLen(1))
					return nil
				})

			request := withIdentity(httptest.NewRequest("POST", "/v1/forms", strings.NewReader(body)), editor)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusCreated))

			var response map[string]any
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response["title"]).To(Equal("Site Inspection"))
		})

		It("rejects anonymous callers", func() {
			request := httptest.NewRequest("POST", "/v1/forms", strings.NewReader(body))
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
		})

		It("forbids roles without edit rights", func() {
			request := withIdentity(httptest.NewRequest("POST", "/v1/forms", strings.NewReader(body)), viewer)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusForbidden))
		})

		It("maps the plan quota to 403", func() {
			mockService.EXPECT().
				CreateForm(gomock.Any(), gomock.Any()).
				Return(usecases.ErrFormLimitExceeded)

			request := withIdentity(httptest.NewRequest("POST", "/v1/forms", strings.NewReader(body)), editor)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusForbidden))
		})

		It("rejects unknown field types", func() {
			badBody := `{"title": "Broken", "fields": [{"type": "hologram", "label": "X", "order": 0}]}`

			request := withIdentity(httptest.NewRequest("POST", "/v1/forms", strings.NewReader(badBody)), editor)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Context("getForm", func() {
		publishedAt := time.Now()

		It("serves published forms to anonymous visitors", func() {
			mockService.EXPECT().
				GetForm(gomock.Any(), shareddomain.ID("form-1")).
				Return(domain.Form{
					ID:          "form-1",
					TenantID:    "tenant-1",
					Title:       "Site Inspection",
					IsActive:    true,
					IsPublished: true,
					PublishedAt: &publishedAt,
				}, nil)

			request := httptest.NewRequest("GET", "/v1/forms/form-1", nil)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))
		})

		It("hides unpublished forms from other tenants", func() {
			mockService.EXPECT().
				GetForm(gomock.Any(), shareddomain.ID("form-1")).
				Return(domain.Form{ID: "form-1", TenantID: "tenant-1", IsActive: true}, nil)

			request := httptest.NewRequest("GET", "/v1/forms/form-1", nil)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})

		It("shows the owner its own drafts", func() {
			mockService.EXPECT().
				GetForm(gomock.Any(), shareddomain.ID("form-1")).
				Return(domain.Form{ID: "form-1", TenantID: "tenant-1", IsActive: true}, nil)

			request := withIdentity(httptest.NewRequest("GET", "/v1/forms/form-1", nil), editor)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))
		})
	})

	Context("publishForm", func() {
		It("publishes and replies with no content", func() {
			mockService.EXPECT().
				PublishForm(gomock.Any(), shareddomain.ID("form-1"), shareddomain.ID("tenant-1")).
				Return(nil)

			request := withIdentity(httptest.NewRequest("POST", "/v1/forms/form-1/publish", nil), editor)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusNoContent))
		})

		It("maps unknown forms to 404", func() {
			mockService.EXPECT().
				PublishForm(gomock.Any(), shareddomain.ID("missing"), shareddomain.ID("tenant-1")).
				Return(usecases.ErrFormNotFound)

			request := withIdentity(httptest.NewRequest("POST", "/v1/forms/missing/publish", nil), editor)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})
	})

	Context("listForms", func() {
		It("requires a tenant from the token or the query", func() {
			request := httptest.NewRequest("GET", "/v1/forms", nil)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})

		It("lists the caller's tenant forms", func() {
			mockService.EXPECT().
				ListForms(gomock.Any(), shareddomain.ID("tenant-1"), false, gomock.Any()).
				Return([]domain.Form{{ID: "form-1", TenantID: "tenant-1", Title: "Site Inspection"}}, 1, nil)

			request := withIdentity(httptest.NewRequest("GET", "/v1/forms", nil), editor)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))

			var response httpserver.PaginatedResponse
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Pagination.Total).To(Equal(1))
		})
	})
})
