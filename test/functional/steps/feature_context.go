package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"formflow-server/test/functional/driver"

	"github.com/cucumber/godog"
	"github.com/stretchr/testify/require"
)

// PaginatedResponse mirrors the server's envelope for list endpoints.
type PaginatedResponse[T any] struct {
	Data       []T `json:"data"`
	Pagination struct {
		Total  int `json:"total"`
		Limit  int `json:"limit"`
		Offset int `json:"offset"`
	} `json:"pagination"`
}

type FeatureContext struct {
	apiDriver    *driver.APIDriver
	response     *http.Response
	responseData map[string]any
	tenantID     string
	formID       string
	submissionID string
	userEmail    string
	userPassword string
	require      *require.Assertions
	t            godog.TestingT
}

func NewFeatureContext() *FeatureContext {
	return &FeatureContext{
		apiDriver: driver.NewAPIDriver("http://localhost:3000"),
	}
}

func (fc *FeatureContext) RegisterSteps(ctx *godog.ScenarioContext) {
	// Generic steps
	ctx.Then(`^the response status code should be (\d+)$`, fc.theResponseStatusCodeShouldBe)

	// Tenant and user steps
	ctx.Given(`^a tenant exists with name "([^"]*)" and subdomain "([^"]*)"$`, fc.aTenantExistsWithNameAndSubdomain)
	ctx.Given(`^an editor user exists with email "([^"]*)" and password "([^"]*)"$`, fc.anEditorUserExistsWithEmailAndPassword)
	ctx.Given(`^I am logged in$`, fc.iAmLoggedIn)
	ctx.Given(`^I am not logged in$`, fc.iAmNotLoggedIn)

	// Form steps
	ctx.Given(`^a published form exists with a required text field$`, fc.aPublishedFormExistsWithARequiredTextField)
	ctx.Given(`^a published form exists that requires approval$`, fc.aPublishedFormExistsThatRequiresApproval)
	ctx.When(`^I create a form titled "([^"]*)"$`, fc.iCreateAFormTitled)
	ctx.When(`^I publish the form$`, fc.iPublishTheForm)
	ctx.When(`^I get the form by its ID$`, fc.iGetTheFormByItsID)
	ctx.Then(`^the response should contain the form details$`, fc.theResponseShouldContainTheFormDetails)
	ctx.Then(`^the form should be published$`, fc.theFormShouldBePublished)

	// Submission steps
	ctx.When(`^I submit a response with text "([^"]*)"$`, fc.iSubmitAResponseWithText)
	ctx.When(`^I submit a response without the required field$`, fc.iSubmitAResponseWithoutTheRequiredField)
	ctx.When(`^I get the submission by its ID$`, fc.iGetTheSubmissionByItsID)
	ctx.When(`^I approve the submission$`, fc.iApproveTheSubmission)
	ctx.When(`^I reject the submission$`, fc.iRejectTheSubmission)
	ctx.When(`^I list submissions with status "([^"]*)"$`, fc.iListSubmissionsWithStatus)
	ctx.Then(`^the submission status should be "([^"]*)"$`, fc.theSubmissionStatusShouldBe)
	ctx.Then(`^the submission list should not be empty$`, fc.theSubmissionListShouldNotBeEmpty)
	ctx.Then(`^the error message should mention the missing field$`, fc.theErrorMessageShouldMentionTheMissingField)

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		fc.t = godog.T(ctx)
		fc.require = require.New(fc.t)

		fc.reset()
		return ctx, nil
	})
}

func (fc *FeatureContext) reset() {
	fc.response = nil
	fc.responseData = nil
	fc.tenantID = ""
	fc.formID = ""
	fc.submissionID = ""
	fc.userEmail = ""
	fc.userPassword = ""
	fc.apiDriver.ClearToken()
}

func (fc *FeatureContext) decodeBody(body io.ReadCloser, target any) error {
	return json.NewDecoder(body).Decode(target)
}

func (fc *FeatureContext) decodePaginatedResponse(response *http.Response) ([]map[string]any, error) {
	var paginatedResp PaginatedResponse[map[string]any]
	if err := fc.decodeBody(response.Body, &paginatedResp); err != nil {
		return nil, fmt.Errorf("failed to decode paginated response: %w", err)
	}
	return paginatedResp.Data, nil
}

func (fc *FeatureContext) theResponseStatusCodeShouldBe(code int) error {
	fc.require.Equal(code, fc.response.StatusCode, "Unexpected status code")
	return nil
}
