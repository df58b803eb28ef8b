package httpapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"

	"formflow-server/internal/forms/domain"
	"formflow-server/internal/forms/httpapi"
	"formflow-server/internal/forms/usecases"
	"formflow-server/internal/infra/httpserver"
	mockforms "formflow-server/test/unit/doubles/forms/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("SubmissionController", func() {
	var (
		ctrl        *gomock.Controller
		mockService *mockforms.MockSubmissionService
		controller  *httpapi.SubmissionController
		router      *http.ServeMux
		recorder    *httptest.ResponseRecorder
	)

	approver := httpserver.Identity{UserID: "user-1", TenantID: "tenant-1", Email: "rev@example.com", Role: "approver"}
	viewer := httpserver.Identity{UserID: "user-2", TenantID: "tenant-1", Email: "view@example.com", Role: "viewer"}

	withIdentity := func(r *http.Request, identity httpserver.Identity) *http.Request {
		return r.WithContext(httpserver.ContextWithIdentity(r.Context(), identity))
	}

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockforms.NewMockSubmissionService(ctrl)
		controller = httpapi.NewSubmissionController(mockService)
		router = http.NewServeMux()
		controller.AddRoutes(router)
		recorder = httptest.NewRecorder()
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("createSubmission", func() {
		body := `{"submitter_email":"ada@example.com","responses":[{"field_id":"field-name","value_text":"Ada"}]}`

		It("accepts an anonymous submission", func() {
			submission := domain.Submission{
				ID:               "submission-1",
				FormID:           "form-1",
				TenantID:         "tenant-1",
				SubmittedByEmail: "ada@example.com",
				Status:           domain.SubmissionStatusSubmitted,
			}

			mockService.EXPECT().
				CreateSubmission(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ any, input usecases.CreateSubmissionInput) (domain.Submission, error) {
					Expect(input.FormID.String()).To(Equal("form-1"))
					Expect(input.SubmittedBy).To(BeNil())
					Expect(input.SubmittedByEmail).To(Equal("ada@example.com"))
					Expect(input.Responses).To(HaveLen(1))
					return submission, nil
				})

			request := httptest.NewRequest("POST", "/v1/forms/form-1/submissions", strings.NewReader(body))
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusCreated))

			var response map[string]any
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response["id"]).To(Equal("submission-1"))
			Expect(response["status"]).To(Equal("submitted"))
		})

		It("attributes authenticated submissions to the token identity", func() {
			mockService.EXPECT().
				CreateSubmission(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ any, input usecases.CreateSubmissionInput) (domain.Submission, error) {
					Expect(input.SubmittedBy).ToNot(BeNil())
					Expect(input.SubmittedBy.String()).To(Equal("user-2"))
					Expect(input.SubmittedByEmail).To(Equal("view@example.com"))
					return domain.Submission{ID: "submission-2", Status: domain.SubmissionStatusSubmitted}, nil
				})

			request := withIdentity(httptest.NewRequest("POST", "/v1/forms/form-1/submissions", strings.NewReader(body)), viewer)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusCreated))
		})

		It("maps validation failures to 422 with the message verbatim", func() {
			mockService.EXPECT().
				CreateSubmission(gomock.Any(), gomock.Any()).
				Return(domain.Submission{}, usecases.NewValidationError("Required field '%s' (ID: %s) is missing", "Full Name", "field-name"))

			request := httptest.NewRequest("POST", "/v1/forms/form-1/submissions", strings.NewReader(body))
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusUnprocessableEntity))

			var response httpserver.ErrorResponse
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Message).To(Equal("Required field 'Full Name' (ID: field-name) is missing"))
		})

		It("maps duplicate submissions to 409", func() {
			mockService.EXPECT().
				CreateSubmission(gomock.Any(), gomock.Any()).
				Return(domain.Submission{}, usecases.ErrDuplicateSubmission)

			request := httptest.NewRequest("POST", "/v1/forms/form-1/submissions", strings.NewReader(body))
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusConflict))
		})

		It("maps unpublished forms to 409", func() {
			mockService.EXPECT().
				CreateSubmission(gomock.Any(), gomock.Any()).
				Return(domain.Submission{}, usecases.ErrFormNotPublished)

			request := httptest.NewRequest("POST", "/v1/forms/form-1/submissions", strings.NewReader(body))
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusConflict))
		})
	})

	Context("updateStatus", func() {
		body := `{"status":"approved"}`

		It("lets approvers review submissions", func() {
			mockService.EXPECT().
				UpdateSubmissionStatus(gomock.Any(), gomock.Any(), gomock.Any(), domain.SubmissionStatusApproved).
				Return(domain.Submission{ID: "submission-1", Status: domain.SubmissionStatusApproved}, nil)

			request := withIdentity(httptest.NewRequest("PUT", "/v1/submissions/submission-1/status", strings.NewReader(body)), approver)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))
		})

		It("forbids roles outside the approval workflow", func() {
			request := withIdentity(httptest.NewRequest("PUT", "/v1/submissions/submission-1/status", strings.NewReader(body)), viewer)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusForbidden))
		})

		It("rejects anonymous review attempts", func() {
			request := httptest.NewRequest("PUT", "/v1/submissions/submission-1/status", strings.NewReader(body))
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
		})

		It("surfaces invalid transitions as 422", func() {
			mockService.EXPECT().
				UpdateSubmissionStatus(gomock.Any(), gomock.Any(), gomock.Any(), domain.SubmissionStatusApproved).
				Return(domain.Submission{}, usecases.ValidationError{Message: "cannot move submission from approved to rejected"})

			request := withIdentity(httptest.NewRequest("PUT", "/v1/submissions/submission-1/status", strings.NewReader(body)), approver)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusUnprocessableEntity))
		})
	})

	Context("listSubmissions", func() {
		It("requires authentication", func() {
			request := httptest.NewRequest("GET", "/v1/submissions", nil)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
		})

		It("scopes the query to the caller's tenant and filters", func() {
			mockService.EXPECT().
				ListSubmissions(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ any, tenantID any, filter usecases.SubmissionFilter, _ usecases.Pagination) ([]domain.Submission, int, error) {
					Expect(filter.Status).To(Equal(domain.SubmissionStatusPending))
					Expect(filter.FormID.String()).To(Equal("form-1"))
					return []domain.Submission{{ID: "submission-1", Status: domain.SubmissionStatusPending}}, 1, nil
				})

			request := withIdentity(httptest.NewRequest("GET", "/v1/submissions?status=pending&form_id=form-1", nil), approver)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))

			var response httpserver.PaginatedResponse
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Pagination.Total).To(Equal(1))
		})
	})
})
