package steps

import (
	"fmt"
	"net/http"
	"time"
)

const formWithRequiredTextField = `{
	"title": "Site Inspection",
	"description": "Daily site inspection report",
	"fields": [
		{"type": "text", "label": "Inspector Name", "required": true, "order": 0}
	]
}`

const formRequiringApproval = `{
	"title": "Access Request",
	"requires_approval": true,
	"fields": [
		{"type": "text", "label": "Reason", "required": true, "order": 0}
	]
}`

func (fc *FeatureContext) aTenantExistsWithNameAndSubdomain(name, subdomain string) error {
	// Subdomains are unique per database, so salt them to keep scenarios
	// independent across runs against the same server.
	resp, err := fc.apiDriver.CreateTenant(name, fmt.Sprintf("%s-%d", subdomain, time.Now().UnixNano()), "pro")
	fc.require.NoError(err)
	fc.require.Equal(http.StatusCreated, resp.StatusCode)

	var data map[string]any
	fc.require.NoError(fc.decodeBody(resp.Body, &data))
	fc.tenantID = data["id"].(string)
	return nil
}

func (fc *FeatureContext) anEditorUserExistsWithEmailAndPassword(email, password string) error {
	fc.userEmail = fmt.Sprintf("%d-%s", time.Now().UnixNano(), email)
	fc.userPassword = password

	resp, err := fc.apiDriver.CreateUser(fc.tenantID, fc.userEmail, "admin", password)
	fc.require.NoError(err)
	fc.require.Equal(http.StatusCreated, resp.StatusCode)
	return nil
}

func (fc *FeatureContext) iAmLoggedIn() error {
	resp, err := fc.apiDriver.Login(fc.userEmail, fc.userPassword)
	fc.require.NoError(err)
	fc.require.Equal(http.StatusOK, resp.StatusCode)

	var data map[string]any
	fc.require.NoError(fc.decodeBody(resp.Body, &data))
	fc.require.NotEmpty(data["token"])
	fc.apiDriver.SetToken(data["token"].(string))
	return nil
}

func (fc *FeatureContext) iAmNotLoggedIn() error {
	fc.apiDriver.ClearToken()
	return nil
}

func (fc *FeatureContext) iCreateAFormTitled(title string) error {
	body := fmt.Sprintf(`{"title": %q, "fields": [{"type": "text", "label": "Notes", "order": 0}]}`, title)
	resp, err := fc.apiDriver.CreateForm(body)
	fc.require.NoError(err)
	fc.response = resp

	if resp.StatusCode == http.StatusCreated {
		var data map[string]any
		fc.require.NoError(fc.decodeBody(resp.Body, &data))
		fc.formID = data["id"].(string)
		fc.responseData = data
	}
	return nil
}

func (fc *FeatureContext) iPublishTheForm() error {
	resp, err := fc.apiDriver.PublishForm(fc.formID)
	fc.require.NoError(err)
	fc.response = resp
	return nil
}

func (fc *FeatureContext) iGetTheFormByItsID() error {
	resp, err := fc.apiDriver.GetForm(fc.formID)
	fc.require.NoError(err)
	fc.response = resp

	var data map[string]any
	fc.require.NoError(fc.decodeBody(resp.Body, &data))
	fc.responseData = data
	return nil
}

func (fc *FeatureContext) theResponseShouldContainTheFormDetails() error {
	fc.require.NotEmpty(fc.responseData["id"])
	fc.require.NotEmpty(fc.responseData["title"])
	return nil
}

func (fc *FeatureContext) theFormShouldBePublished() error {
	fc.require.Equal(true, fc.responseData["is_published"])
	return nil
}

func (fc *FeatureContext) createPublishedForm(body string) error {
	resp, err := fc.apiDriver.CreateForm(body)
	fc.require.NoError(err)
	fc.require.Equal(http.StatusCreated, resp.StatusCode)

	var data map[string]any
	fc.require.NoError(fc.decodeBody(resp.Body, &data))
	fc.formID = data["id"].(string)
	fc.responseData = data

	publishResp, err := fc.apiDriver.PublishForm(fc.formID)
	fc.require.NoError(err)
	fc.require.Equal(http.StatusNoContent, publishResp.StatusCode)
	return nil
}

func (fc *FeatureContext) aPublishedFormExistsWithARequiredTextField() error {
	return fc.createPublishedForm(formWithRequiredTextField)
}

func (fc *FeatureContext) aPublishedFormExistsThatRequiresApproval() error {
	return fc.createPublishedForm(formRequiringApproval)
}

// requiredFieldID extracts the first field's server-assigned ID from the last
// form payload.
func (fc *FeatureContext) requiredFieldID() string {
	fields, ok := fc.responseData["fields"].([]any)
	fc.require.True(ok, "form response has no fields")
	fc.require.NotEmpty(fields)

	field := fields[0].(map[string]any)
	return field["id"].(string)
}
