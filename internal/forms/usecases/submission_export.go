package usecases

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"time"

	"formflow-server/internal/forms/domain"
	shareddomain "formflow-server/internal/shared_kernel/domain"

	"github.com/xuri/excelize/v2"
)

const exportSheetName = "Submissions"

// exportPageSize bounds each repository read while walking all submissions.
const exportPageSize = 200

func NewSubmissionExporter(forms FormService, submissions SubmissionRepository) *SubmissionExporter {
	return &SubmissionExporter{
		forms:       forms,
		submissions: submissions,
	}
}

// SubmissionExporter renders all submissions of a form as an xlsx workbook,
// one row per submission with field labels as the header.
type SubmissionExporter struct {
	forms       FormService
	submissions SubmissionRepository
}

func (e *SubmissionExporter) ExportFormSubmissions(ctx context.Context, formID, tenantID shareddomain.ID) ([]byte, error) {
	form, err := e.forms.GetForm(ctx, formID)
	if err != nil {
		return nil, err
	}
	if form.TenantID != tenantID {
		return nil, ErrFormNotFound
	}

	fields := exportableFields(form)

	workbook := excelize.NewFile()
	defer workbook.Close()

	sheet, err := workbook.NewSheet(exportSheetName)
	if err != nil {
		return nil, fmt.Errorf("creating sheet: %w", err)
	}
	workbook.SetActiveSheet(sheet)
	workbook.DeleteSheet("Sheet1")

	header := []any{"Submission ID", "Submitted By", "Status", "Submitted At"}
	for _, field := range fields {
		header = append(header, field.Label)
	}
	if err := workbook.SetSheetRow(exportSheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("writing header: %w", err)
	}

	rowIndex := 2
	for offset := 0; ; offset += exportPageSize {
		page, total, err := e.submissions.FindByTenant(ctx, tenantID,
			SubmissionFilter{FormID: formID},
			Pagination{Limit: exportPageSize, Offset: offset})
		if err != nil {
			return nil, fmt.Errorf("listing submissions: %w", err)
		}

		for _, submission := range page {
			row := submissionRow(submission, fields)
			cell := fmt.Sprintf("A%d", rowIndex)
			if err := workbook.SetSheetRow(exportSheetName, cell, &row); err != nil {
				return nil, fmt.Errorf("writing row: %w", err)
			}
			rowIndex++
		}

		if offset+exportPageSize >= total || len(page) == 0 {
			break
		}
	}

	var buffer bytes.Buffer
	if err := workbook.Write(&buffer); err != nil {
		return nil, fmt.Errorf("encoding workbook: %w", err)
	}

	return buffer.Bytes(), nil
}

// exportableFields returns the form's data-carrying fields in display order.
func exportableFields(form domain.Form) []domain.Field {
	fields := make([]domain.Field, 0, len(form.Fields))
	for _, field := range form.Fields {
		if field.Type == domain.FieldTypeSection {
			continue
		}
		fields = append(fields, field)
	}
	sort.SliceStable(fields, func(i, j int) bool {
		return fields[i].Order < fields[j].Order
	})
	return fields
}

func submissionRow(submission domain.Submission, fields []domain.Field) []any {
	submitter := submission.SubmittedByEmail
	if submitter == "" && submission.SubmittedBy != nil {
		submitter = submission.SubmittedBy.String()
	}

	submittedAt := ""
	if submission.SubmittedAt != nil {
		submittedAt = submission.SubmittedAt.Format(time.RFC3339)
	}

	row := []any{submission.ID.String(), submitter, string(submission.Status), submittedAt}

	byField := make(map[shareddomain.ID]domain.SubmissionResponse, len(submission.Responses))
	for _, response := range submission.Responses {
		byField[response.FieldID] = response
	}

	for _, field := range fields {
		row = append(row, renderResponseValue(byField[field.ID]))
	}

	return row
}

func renderResponseValue(response domain.SubmissionResponse) string {
	switch {
	case response.ValueText != nil:
		return *response.ValueText
	case response.ValueNumber != nil:
		return fmt.Sprintf("%g", *response.ValueNumber)
	case response.ValueBoolean != nil:
		return fmt.Sprintf("%t", *response.ValueBoolean)
	case response.ValueDate != nil:
		return response.ValueDate.Format(time.RFC3339)
	case len(response.ValueJSON) > 0 && string(response.ValueJSON) != "null":
		return string(response.ValueJSON)
	case response.FileArtifactID != nil:
		return "file:" + response.FileArtifactID.String()
	default:
		return ""
	}
}
