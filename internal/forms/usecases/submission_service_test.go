package usecases_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"image"
	"image/png"
	"path/filepath"

	formsDomain "formflow-server/internal/forms/domain"
	formsUsecases "formflow-server/internal/forms/usecases"
	shareddomain "formflow-server/internal/shared_kernel/domain"
	mockforms "formflow-server/test/unit/doubles/forms/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

// recordingStore captures writes so tests can assert which files hit storage.
type recordingStore struct {
	saved []string
}

func (s *recordingStore) Save(_ context.Context, _ []byte, filename string, dir string) (string, error) {
	path := filepath.Join(dir, filename)
	s.saved = append(s.saved, path)
	return path, nil
}

func signaturePayload() string {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

var _ = Describe("SimpleSubmissionService", func() {
	var (
		ctrl            *gomock.Controller
		mockForms       *mockforms.MockFormService
		mockSubmissions *mockforms.MockSubmissionRepository
		store           *recordingStore
		service         formsUsecases.SubmissionService
		ctx             context.Context

		form        formsDomain.Form
		nameField   formsDomain.Field
		tableField  formsDomain.Field
		signField   formsDomain.Field
		sectionHead formsDomain.Field
	)

	newService := func(maxSignatureBytes int64) formsUsecases.SubmissionService {
		processor := formsUsecases.NewSignatureProcessor(store, formsUsecases.SignatureConfig{MaxBytes: maxSignatureBytes})
		return formsUsecases.NewSubmissionService(mockForms, mockSubmissions, processor, nil)
	}

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockForms = mockforms.NewMockFormService(ctrl)
		mockSubmissions = mockforms.NewMockSubmissionRepository(ctrl)
		store = &recordingStore{}
		service = newService(0)
		ctx = context.Background()

		minRows := 1
		nameField = formsDomain.Field{
			ID:       "field-name",
			Type:     formsDomain.FieldTypeText,
			Label:    "Full Name",
			Required: true,
			Order:    1,
		}
		tableField = formsDomain.Field{
			ID:    "field-equipment",
			Type:  formsDomain.FieldTypeTable,
			Label: "Equipment List",
			Order: 2,
			Config: &formsDomain.TableFieldConfig{
				Columns: []formsDomain.TableColumn{
					{ID: "serial", Label: "Serial Number", Required: true},
				},
				MinRows: &minRows,
			},
		}
		signField = formsDomain.Field{
			ID:    "field-signature",
			Type:  formsDomain.FieldTypeSignature,
			Label: "Approval",
			Order: 3,
		}
		sectionHead = formsDomain.Field{
			ID:    "field-section",
			Type:  formsDomain.FieldTypeSection,
			Label: "Details",
			Order: 0,
		}

		form = formsDomain.Form{
			ID:                       "form-1",
			TenantID:                 "tenant-1",
			Title:                    "Site Inspection",
			IsActive:                 true,
			IsPublished:              true,
			AllowMultipleSubmissions: true,
			Fields:                   []formsDomain.Field{sectionHead, nameField, tableField, signField},
		}
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("CreateSubmission", func() {
		var input formsUsecases.CreateSubmissionInput

		BeforeEach(func() {
			name := "Ada Lovelace"
			signature := signaturePayload()
			input = formsUsecases.CreateSubmissionInput{
				FormID:           form.ID,
				TenantID:         form.TenantID,
				SubmittedByEmail: "ada@example.com",
				Responses: []formsDomain.SubmissionResponse{
					{FieldID: nameField.ID, ValueText: &name},
					{FieldID: tableField.ID, ValueJSON: json.RawMessage(`[{"serial":"S1"}]`)},
					{FieldID: signField.ID, ValueText: &signature},
				},
			}
		})

		It("persists responses, stores the signature and strips its payload", func() {
			mockForms.EXPECT().GetForm(gomock.Any(), form.ID).Return(form, nil)

			var persisted formsDomain.Submission
			var persistedArtifacts []formsDomain.FileArtifact
			mockSubmissions.EXPECT().
				Create(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, submission formsDomain.Submission, artifacts []formsDomain.FileArtifact) error {
					persisted = submission
					persistedArtifacts = artifacts
					return nil
				})

			result, err := service.CreateSubmission(ctx, input)

			Expect(err).ToNot(HaveOccurred())
			Expect(result.Status).To(Equal(formsDomain.SubmissionStatusSubmitted))
			Expect(persisted.Responses).To(HaveLen(3))
			Expect(persistedArtifacts).To(HaveLen(1))
			Expect(persistedArtifacts[0].MimeType).To(Equal("image/png"))
			Expect(store.saved).To(HaveLen(1))
			Expect(store.saved[0]).To(HavePrefix("signatures/"))

			for _, response := range persisted.Responses {
				Expect(response.SubmissionID).To(Equal(persisted.ID))
				if response.FieldID == signField.ID {
					Expect(response.ValueText).To(BeNil())
					Expect(response.FileArtifactID).ToNot(BeNil())
					Expect(*response.FileArtifactID).To(Equal(persistedArtifacts[0].ID))
				}
			}
		})

		It("never stores a value for section fields", func() {
			name := "Ada Lovelace"
			input.Responses = []formsDomain.SubmissionResponse{
				{FieldID: nameField.ID, ValueText: &name},
				{FieldID: tableField.ID, ValueJSON: json.RawMessage(`[{"serial":"S1"}]`)},
				{FieldID: sectionHead.ID, ValueJSON: json.RawMessage(`{"ignored":true}`)},
			}

			mockForms.EXPECT().GetForm(gomock.Any(), form.ID).Return(form, nil)

			var persisted formsDomain.Submission
			mockSubmissions.EXPECT().
				Create(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, submission formsDomain.Submission, _ []formsDomain.FileArtifact) error {
					persisted = submission
					return nil
				})

			_, err := service.CreateSubmission(ctx, input)

			Expect(err).ToNot(HaveOccurred())
			Expect(persisted.Responses).To(HaveLen(2))
			for _, response := range persisted.Responses {
				Expect(response.FieldID).ToNot(Equal(sectionHead.ID))
			}
		})

		It("marks the submission pending when the form requires approval", func() {
			form.RequiresApproval = true
			mockForms.EXPECT().GetForm(gomock.Any(), form.ID).Return(form, nil)
			mockSubmissions.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

			result, err := service.CreateSubmission(ctx, input)

			Expect(err).ToNot(HaveOccurred())
			Expect(result.Status).To(Equal(formsDomain.SubmissionStatusPending))
		})

		It("rejects submissions against unpublished forms", func() {
			form.IsPublished = false
			mockForms.EXPECT().GetForm(gomock.Any(), form.ID).Return(form, nil)

			_, err := service.CreateSubmission(ctx, input)

			Expect(err).To(MatchError(formsUsecases.ErrFormNotPublished))
		})

		It("treats soft deleted forms as not found", func() {
			form.SoftDelete()
			mockForms.EXPECT().GetForm(gomock.Any(), form.ID).Return(form, nil)

			_, err := service.CreateSubmission(ctx, input)

			Expect(err).To(MatchError(formsUsecases.ErrFormNotFound))
		})

		It("rejects a second submission when the form disallows repeats", func() {
			form.AllowMultipleSubmissions = false
			mockForms.EXPECT().GetForm(gomock.Any(), form.ID).Return(form, nil)
			mockSubmissions.EXPECT().
				ExistsByFormAndSubmitter(gomock.Any(), form.ID, gomock.Nil(), "ada@example.com").
				Return(true, nil)

			_, err := service.CreateSubmission(ctx, input)

			Expect(err).To(MatchError(formsUsecases.ErrDuplicateSubmission))
		})

		It("fails fast when a required field has no answer", func() {
			input.Responses = input.Responses[1:]
			mockForms.EXPECT().GetForm(gomock.Any(), form.ID).Return(form, nil)

			_, err := service.CreateSubmission(ctx, input)

			var validationErr formsUsecases.ValidationError
			Expect(errors.As(err, &validationErr)).To(BeTrue())
			Expect(validationErr.Message).To(Equal("Required field 'Full Name' (ID: field-name) is missing"))
		})

		It("rejects responses referencing unknown fields", func() {
			input.Responses = append(input.Responses, formsDomain.SubmissionResponse{FieldID: "bogus"})
			mockForms.EXPECT().GetForm(gomock.Any(), form.ID).Return(form, nil)

			_, err := service.CreateSubmission(ctx, input)

			Expect(err).To(MatchError(ContainSubstring("Invalid field ID: bogus")))
		})

		It("aborts on table validation failure before any persistence", func() {
			input.Responses[1].ValueJSON = json.RawMessage(`[{"serial":""}]`)
			mockForms.EXPECT().GetForm(gomock.Any(), form.ID).Return(form, nil)

			_, err := service.CreateSubmission(ctx, input)

			Expect(err).To(MatchError(ContainSubstring("Required column 'Serial Number' is missing or empty in row 1")))
			Expect(store.saved).To(BeEmpty())
		})

		It("surfaces malformed signature payloads as validation errors", func() {
			bad := "data:image/png;base64,@@@not-base64@@@"
			input.Responses[2].ValueText = &bad
			mockForms.EXPECT().GetForm(gomock.Any(), form.ID).Return(form, nil)

			_, err := service.CreateSubmission(ctx, input)

			var validationErr formsUsecases.ValidationError
			Expect(errors.As(err, &validationErr)).To(BeTrue())
			Expect(validationErr.Message).To(Equal("Invalid base64 signature data"))
			Expect(store.saved).To(BeEmpty())
		})

		It("rejects oversized signatures without touching storage", func() {
			service = newService(16)
			mockForms.EXPECT().GetForm(gomock.Any(), form.ID).Return(form, nil)

			_, err := service.CreateSubmission(ctx, input)

			Expect(err).To(MatchError(ContainSubstring("exceeds maximum allowed size")))
			Expect(store.saved).To(BeEmpty())
		})
	})

	Context("UpdateSubmissionStatus", func() {
		var submission formsDomain.Submission

		BeforeEach(func() {
			submission = formsDomain.Submission{
				ID:       "submission-1",
				FormID:   form.ID,
				TenantID: form.TenantID,
				Status:   formsDomain.SubmissionStatusPending,
			}
		})

		It("approves a pending submission", func() {
			mockSubmissions.EXPECT().GetByID(gomock.Any(), submission.ID, form.TenantID).Return(submission, nil)
			mockSubmissions.EXPECT().
				Update(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, updated formsDomain.Submission) error {
					Expect(updated.Status).To(Equal(formsDomain.SubmissionStatusApproved))
					return nil
				})

			result, err := service.UpdateSubmissionStatus(ctx, submission.ID, form.TenantID, formsDomain.SubmissionStatusApproved)

			Expect(err).ToNot(HaveOccurred())
			Expect(result.Status).To(Equal(formsDomain.SubmissionStatusApproved))
		})

		It("rejects statuses outside the review decision set", func() {
			mockSubmissions.EXPECT().GetByID(gomock.Any(), submission.ID, form.TenantID).Return(submission, nil)

			_, err := service.UpdateSubmissionStatus(ctx, submission.ID, form.TenantID, formsDomain.SubmissionStatusDraft)

			Expect(err).To(MatchError(ContainSubstring("Invalid status. Must be one of: approved, rejected")))
		})

		It("refuses transitions from terminal states", func() {
			submission.Status = formsDomain.SubmissionStatusApproved
			mockSubmissions.EXPECT().GetByID(gomock.Any(), submission.ID, form.TenantID).Return(submission, nil)

			_, err := service.UpdateSubmissionStatus(ctx, submission.ID, form.TenantID, formsDomain.SubmissionStatusRejected)

			Expect(err).To(MatchError(ContainSubstring("cannot move submission from approved to rejected")))
		})
	})

	Context("DeleteSubmission", func() {
		It("propagates not found from the repository", func() {
			mockSubmissions.EXPECT().
				Delete(gomock.Any(), shareddomain.ID("missing"), form.TenantID).
				Return(formsUsecases.ErrSubmissionNotFound)

			err := service.DeleteSubmission(ctx, "missing", form.TenantID)

			Expect(err).To(MatchError(formsUsecases.ErrSubmissionNotFound))
		})
	})
})
