// Package apiclient is a Go client for the case-management API. It
// mirrors the server contract one-to-one and adds the derived
// operations the UI performs client-side: document upload
// simulation, payment accumulation, additional-document handling and
// submission marking. The derived operations are two-step
// read-then-write sequences; the server offers no compare-and-swap,
// so concurrent callers race with last-write-wins.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"case-management-api/models"

	"github.com/google/uuid"
)

// Client talks to one case-management API server.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// APIError carries the status code and the server's error message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d: %s", e.StatusCode, e.Message)
}

// FileInfo describes a file being attached. Uploads are simulated:
// only the name and size travel to the server, together with a
// transient local reference in place of a real storage URL.
type FileInfo struct {
	Name string
	Size int64
}

// HealthStatus is the /health response.
type HealthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var errBody struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errBody); decodeErr != nil || errBody.Error == "" {
			errBody.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: errBody.Error}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Health checks the server is up.
func (c *Client) Health(ctx context.Context) (HealthStatus, error) {
	var status HealthStatus
	err := c.do(ctx, http.MethodGet, "/health", nil, &status)
	return status, err
}

// ListCaseTemplates returns every template, newest first.
func (c *Client) ListCaseTemplates(ctx context.Context) ([]models.CaseTemplate, error) {
	var templates []models.CaseTemplate
	err := c.do(ctx, http.MethodGet, "/api/case-templates", nil, &templates)
	return templates, err
}

func (c *Client) GetCaseTemplate(ctx context.Context, id string) (models.CaseTemplate, error) {
	var template models.CaseTemplate
	err := c.do(ctx, http.MethodGet, "/api/case-templates/"+id, nil, &template)
	return template, err
}

func (c *Client) CreateCaseTemplate(ctx context.Context, req models.CaseTemplateCreateRequest) (models.CaseTemplate, error) {
	var template models.CaseTemplate
	err := c.do(ctx, http.MethodPost, "/api/case-templates", req, &template)
	return template, err
}

func (c *Client) UpdateCaseTemplate(ctx context.Context, id string, req models.CaseTemplateUpdateRequest) (models.CaseTemplate, error) {
	var template models.CaseTemplate
	err := c.do(ctx, http.MethodPut, "/api/case-templates/"+id, req, &template)
	return template, err
}

func (c *Client) DeleteCaseTemplate(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/case-templates/"+id, nil, nil)
}

// ListClients returns every client record, newest first.
func (c *Client) ListClients(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client
	err := c.do(ctx, http.MethodGet, "/api/clients", nil, &clients)
	return clients, err
}

func (c *Client) GetClient(ctx context.Context, id string) (models.Client, error) {
	var client models.Client
	err := c.do(ctx, http.MethodGet, "/api/clients/"+id, nil, &client)
	return client, err
}

func (c *Client) CreateClient(ctx context.Context, req models.ClientCreateRequest) (models.Client, error) {
	var client models.Client
	err := c.do(ctx, http.MethodPost, "/api/clients", req, &client)
	return client, err
}

func (c *Client) UpdateClient(ctx context.Context, id string, req models.ClientUpdateRequest) (models.Client, error) {
	var client models.Client
	err := c.do(ctx, http.MethodPut, "/api/clients/"+id, req, &client)
	return client, err
}

func (c *Client) DeleteClient(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/clients/"+id, nil, nil)
}

// UploadDocument marks the required document matching code as
// submitted, attaches a transient local file reference and pushes the
// whole document list back.
func (c *Client) UploadDocument(ctx context.Context, clientID, documentCode string, file FileInfo) (models.Client, error) {
	client, err := c.GetClient(ctx, clientID)
	if err != nil {
		return models.Client{}, err
	}

	docs := append([]models.ClientDocument{}, client.RequiredDocuments...)
	now := time.Now().UTC()
	for i := range docs {
		if docs[i].Code == documentCode {
			fileURL := localFileURL()
			docs[i].Submitted = true
			docs[i].FileURL = &fileURL
			docs[i].UploadedAt = &now
			docs[i].FileName = file.Name
			docs[i].FileSize = file.Size
		}
	}

	return c.UpdateClient(ctx, clientID, models.ClientUpdateRequest{
		RequiredDocuments: &docs,
	})
}

// AddPayment appends a payment record and recomputes the running paid
// total before pushing the whole payment object back.
func (c *Client) AddPayment(ctx context.Context, clientID string, amount float64, method, note string) (models.Client, error) {
	client, err := c.GetClient(ctx, clientID)
	if err != nil {
		return models.Client{}, err
	}

	payment := client.Payment
	payment.Payments = append(append([]models.PaymentRecord{}, client.Payment.Payments...), models.PaymentRecord{
		Amount: amount,
		Date:   time.Now().UTC(),
		Method: method,
		Note:   note,
	})
	payment.PaidAmount = client.Payment.PaidAmount + amount

	return c.UpdateClient(ctx, clientID, models.ClientUpdateRequest{
		Payment: &payment,
	})
}

// UpdateNotes replaces the free-form notes field.
func (c *Client) UpdateNotes(ctx context.Context, clientID, notes string) (models.Client, error) {
	return c.UpdateClient(ctx, clientID, models.ClientUpdateRequest{
		Notes: &notes,
	})
}

// UploadAdditionalDocument attaches a document outside the template
// checklist.
func (c *Client) UploadAdditionalDocument(ctx context.Context, clientID, name, description string, file FileInfo) (models.Client, error) {
	client, err := c.GetClient(ctx, clientID)
	if err != nil {
		return models.Client{}, err
	}

	doc := models.AdditionalDocument{
		ID:          fmt.Sprintf("doc_%d_%s", time.Now().UnixMilli(), randomSuffix(9)),
		Name:        name,
		Description: description,
		FileURL:     localFileURL(),
		FileName:    file.Name,
		FileSize:    file.Size,
		UploadedAt:  time.Now().UTC(),
	}

	docs := append(append([]models.AdditionalDocument{}, client.AdditionalDocuments...), doc)

	return c.UpdateClient(ctx, clientID, models.ClientUpdateRequest{
		AdditionalDocuments: &docs,
	})
}

// RemoveAdditionalDocument drops the additional document with the
// given id.
func (c *Client) RemoveAdditionalDocument(ctx context.Context, clientID, documentID string) (models.Client, error) {
	client, err := c.GetClient(ctx, clientID)
	if err != nil {
		return models.Client{}, err
	}

	docs := []models.AdditionalDocument{}
	for _, doc := range client.AdditionalDocuments {
		if doc.ID != documentID {
			docs = append(docs, doc)
		}
	}

	return c.UpdateClient(ctx, clientID, models.ClientUpdateRequest{
		AdditionalDocuments: &docs,
	})
}

// SubmitToAdministrative marks the case as filed and stamps the
// application date.
func (c *Client) SubmitToAdministrative(ctx context.Context, clientID string) (models.Client, error) {
	submitted := true
	now := time.Now().UTC()
	return c.UpdateClient(ctx, clientID, models.ClientUpdateRequest{
		SubmittedToImmigration: &submitted,
		ApplicationDate:        &now,
	})
}

// localFileURL fabricates a transient file reference; nothing is
// stored server-side.
func localFileURL() string {
	return "local://" + uuid.NewString()
}

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

func randomSuffix(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = base36[rand.Intn(len(base36))]
	}
	return string(b)
}
