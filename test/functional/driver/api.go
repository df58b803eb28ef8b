package driver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

type APIDriver struct {
	baseURL string
	client  *http.Client
	token   string
}

func NewAPIDriver(baseURL string) *APIDriver {
	return &APIDriver{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

// SetToken attaches a bearer token to every subsequent request.
func (d *APIDriver) SetToken(token string) {
	d.token = token
}

func (d *APIDriver) ClearToken() {
	d.token = ""
}

func (d *APIDriver) do(method, path string, body any) (*http.Response, error) {
	var reader *bytes.Buffer
	switch v := body.(type) {
	case nil:
		reader = bytes.NewBuffer(nil)
	case string:
		reader = bytes.NewBufferString(v)
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			panic(err)
		}
		reader = bytes.NewBuffer(encoded)
	}

	req, err := http.NewRequest(method, fmt.Sprintf("%s%s", d.baseURL, path), reader)
	if err != nil {
		panic(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if d.token != "" {
		req.Header.Set("Authorization", "Bearer "+d.token)
	}

	return d.client.Do(req)
}

func (d *APIDriver) CreateTenant(name, subdomain, plan string) (*http.Response, error) {
	return d.do(http.MethodPost, "/v1/tenants", map[string]any{
		"name":      name,
		"subdomain": subdomain,
		"plan":      plan,
	})
}

func (d *APIDriver) GetTenant(id string) (*http.Response, error) {
	return d.do(http.MethodGet, fmt.Sprintf("/v1/tenants/%s", id), nil)
}

func (d *APIDriver) ListTenants() (*http.Response, error) {
	return d.do(http.MethodGet, "/v1/tenants", nil)
}

func (d *APIDriver) CreateUser(tenantID, email, role, password string) (*http.Response, error) {
	return d.do(http.MethodPost, "/v1/users", map[string]any{
		"tenant_id": tenantID,
		"email":     email,
		"role":      role,
		"password":  password,
	})
}

func (d *APIDriver) Login(email, password string) (*http.Response, error) {
	return d.do(http.MethodPost, "/v1/auth/login", map[string]any{
		"email":    email,
		"password": password,
	})
}

func (d *APIDriver) CreateForm(requestBody string) (*http.Response, error) {
	return d.do(http.MethodPost, "/v1/forms", requestBody)
}

func (d *APIDriver) GetForm(id string) (*http.Response, error) {
	return d.do(http.MethodGet, fmt.Sprintf("/v1/forms/%s", id), nil)
}

func (d *APIDriver) PublishForm(id string) (*http.Response, error) {
	return d.do(http.MethodPost, fmt.Sprintf("/v1/forms/%s/publish", id), nil)
}

func (d *APIDriver) UnpublishForm(id string) (*http.Response, error) {
	return d.do(http.MethodPost, fmt.Sprintf("/v1/forms/%s/unpublish", id), nil)
}

func (d *APIDriver) CreateSubmission(formID, requestBody string) (*http.Response, error) {
	return d.do(http.MethodPost, fmt.Sprintf("/v1/forms/%s/submissions", formID), requestBody)
}

func (d *APIDriver) GetSubmission(id string) (*http.Response, error) {
	return d.do(http.MethodGet, fmt.Sprintf("/v1/submissions/%s", id), nil)
}

func (d *APIDriver) ListSubmissions(query string) (*http.Response, error) {
	path := "/v1/submissions"
	if query != "" {
		path += "?" + strings.TrimPrefix(query, "?")
	}
	return d.do(http.MethodGet, path, nil)
}

func (d *APIDriver) UpdateSubmissionStatus(id, status string) (*http.Response, error) {
	return d.do(http.MethodPut, fmt.Sprintf("/v1/submissions/%s/status", id), map[string]any{
		"status": status,
	})
}

func (d *APIDriver) ExportSubmissions(formID string) (*http.Response, error) {
	return d.do(http.MethodGet, fmt.Sprintf("/v1/forms/%s/export", formID), nil)
}
