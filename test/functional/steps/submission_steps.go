package steps

import (
	"fmt"
	"net/http"
)

func (fc *FeatureContext) iSubmitAResponseWithText(text string) error {
	body := fmt.Sprintf(`{
		"submitter_email": "submitter@example.com",
		"responses": [{"field_id": %q, "value_text": %q}]
	}`, fc.requiredFieldID(), text)

	resp, err := fc.apiDriver.CreateSubmission(fc.formID, body)
	fc.require.NoError(err)
	fc.response = resp

	if resp.StatusCode == http.StatusCreated {
		var data map[string]any
		fc.require.NoError(fc.decodeBody(resp.Body, &data))
		fc.submissionID = data["id"].(string)
		fc.responseData = data
	}
	return nil
}

func (fc *FeatureContext) iSubmitAResponseWithoutTheRequiredField() error {
	resp, err := fc.apiDriver.CreateSubmission(fc.formID, `{"responses": []}`)
	fc.require.NoError(err)
	fc.response = resp

	var data map[string]any
	fc.require.NoError(fc.decodeBody(resp.Body, &data))
	fc.responseData = data
	return nil
}

func (fc *FeatureContext) iGetTheSubmissionByItsID() error {
	resp, err := fc.apiDriver.GetSubmission(fc.submissionID)
	fc.require.NoError(err)
	fc.response = resp

	var data map[string]any
	fc.require.NoError(fc.decodeBody(resp.Body, &data))
	fc.responseData = data
	return nil
}

func (fc *FeatureContext) iApproveTheSubmission() error {
	return fc.reviewSubmission("approved")
}

func (fc *FeatureContext) iRejectTheSubmission() error {
	return fc.reviewSubmission("rejected")
}

func (fc *FeatureContext) reviewSubmission(status string) error {
	resp, err := fc.apiDriver.UpdateSubmissionStatus(fc.submissionID, status)
	fc.require.NoError(err)
	fc.response = resp

	if resp.StatusCode == http.StatusOK {
		var data map[string]any
		fc.require.NoError(fc.decodeBody(resp.Body, &data))
		fc.responseData = data
	}
	return nil
}

func (fc *FeatureContext) iListSubmissionsWithStatus(status string) error {
	resp, err := fc.apiDriver.ListSubmissions("status=" + status)
	fc.require.NoError(err)
	fc.response = resp
	return nil
}

func (fc *FeatureContext) theSubmissionStatusShouldBe(status string) error {
	fc.require.Equal(status, fc.responseData["status"])
	return nil
}

func (fc *FeatureContext) theSubmissionListShouldNotBeEmpty() error {
	data, err := fc.decodePaginatedResponse(fc.response)
	fc.require.NoError(err)
	fc.require.NotEmpty(data)
	return nil
}

func (fc *FeatureContext) theErrorMessageShouldMentionTheMissingField() error {
	fc.require.Contains(fc.responseData["message"], "is missing")
	return nil
}
