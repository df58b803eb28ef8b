package httpapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
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

var _ = Describe("FileArtifactController", func() {
	var (
		ctrl        *gomock.Controller
		mockService *mockforms.MockFileArtifactService
		controller  *httpapi.FileArtifactController
		router      *http.ServeMux
		recorder    *httptest.ResponseRecorder
	)

	approver := httpserver.Identity{UserID: "user-1", TenantID: "tenant-1", Email: "rev@example.com", Role: "approver"}

	withIdentity := func(r *http.Request, identity httpserver.Identity) *http.Request {
		return r.WithContext(httpserver.ContextWithIdentity(r.Context(), identity))
	}

	artifact := domain.FileArtifact{
		ID:               "artifact-1",
		TenantID:         "tenant-1",
		OriginalFilename: "signature_Approval.png",
		StoredFilename:   "signature_t1_u1_f1_1700000000000.png",
		Path:             "signatures/signature_t1_u1_f1_1700000000000.png",
		SizeBytes:        128,
		MimeType:         "image/png",
		CreatedAt:        time.Now(),
	}

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockforms.NewMockFileArtifactService(ctrl)
		controller = httpapi.NewFileArtifactController(mockService)
		router = http.NewServeMux()
		controller.AddRoutes(router)
		recorder = httptest.NewRecorder()
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("getFile", func() {
		It("serves artifact metadata to the tenant's reviewers", func() {
			mockService.EXPECT().
				GetArtifact(gomock.Any(), shareddomain.ID("artifact-1"), shareddomain.ID("tenant-1")).
				Return(artifact, nil)

			request := withIdentity(httptest.NewRequest("GET", "/v1/files/artifact-1", nil), approver)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))

			var response map[string]any
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response["original_filename"]).To(Equal("signature_Approval.png"))
			Expect(response["mime_type"]).To(Equal("image/png"))
			Expect(response["size_bytes"]).To(BeNumerically("==", 128))
		})

		It("rejects anonymous callers", func() {
			request := httptest.NewRequest("GET", "/v1/files/artifact-1", nil)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
		})

		It("maps unknown artifacts to 404", func() {
			mockService.EXPECT().
				GetArtifact(gomock.Any(), shareddomain.ID("missing"), shareddomain.ID("tenant-1")).
				Return(domain.FileArtifact{}, usecases.ErrArtifactNotFound)

			request := withIdentity(httptest.NewRequest("GET", "/v1/files/missing", nil), approver)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})
	})

	Context("listFiles", func() {
		It("lists the tenant's artifacts paginated", func() {
			mockService.EXPECT().
				ListArtifacts(gomock.Any(), shareddomain.ID("tenant-1"), usecases.Pagination{Limit: 10}).
				Return([]domain.FileArtifact{artifact}, 1, nil)

			request := withIdentity(httptest.NewRequest("GET", "/v1/files", nil), approver)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))

			var response httpserver.PaginatedResponse
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Pagination.Total).To(Equal(1))
		})

		It("requires authentication", func() {
			request := httptest.NewRequest("GET", "/v1/files", nil)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
		})
	})
})
