package apiclient

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"case-management-api/models"
	"case-management-api/routes"
	"case-management-api/store"

	"github.com/gin-gonic/gin"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	routes.SetupRoutes(router, store.New())
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return New(srv.URL)
}

func mustCreateClient(t *testing.T, api *Client, req models.ClientCreateRequest) models.Client {
	t.Helper()
	client, err := api.CreateClient(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateClient: %v", err)
	}
	return client
}

func TestHealthRoundTrip(t *testing.T) {
	api := newTestClient(t)

	status, err := api.Health(context.Background())
	if err != nil {
		t.Fatalf("Health: %v", err)
	}
	if status.Status != "ok" || status.Timestamp.IsZero() {
		t.Fatalf("unexpected health response: %+v", status)
	}
}

func TestTemplateLifecycle(t *testing.T) {
	api := newTestClient(t)
	ctx := context.Background()

	created, err := api.CreateCaseTemplate(ctx, models.CaseTemplateCreateRequest{
		Name: "Work Visa",
		RequiredDocuments: []models.TemplateDocument{
			{Code: "PASSPORT", Name: "Passport"},
		},
		ReminderIntervalDays:      14,
		AdministrativeSilenceDays: 45,
	})
	if err != nil {
		t.Fatalf("CreateCaseTemplate: %v", err)
	}

	listed, err := api.ListCaseTemplates(ctx)
	if err != nil {
		t.Fatalf("ListCaseTemplates: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != created.ID {
		t.Fatalf("unexpected listing: %+v", listed)
	}

	name := "Student Visa"
	updated, err := api.UpdateCaseTemplate(ctx, created.ID, models.CaseTemplateUpdateRequest{Name: &name})
	if err != nil {
		t.Fatalf("UpdateCaseTemplate: %v", err)
	}
	if updated.Name != "Student Visa" || updated.ReminderIntervalDays != 14 {
		t.Fatalf("unexpected update result: %+v", updated)
	}

	if err := api.DeleteCaseTemplate(ctx, created.ID); err != nil {
		t.Fatalf("DeleteCaseTemplate: %v", err)
	}
	if _, err := api.GetCaseTemplate(ctx, created.ID); err == nil {
		t.Fatal("expected not-found after delete")
	}
}

func TestAddPaymentAccumulates(t *testing.T) {
	api := newTestClient(t)
	ctx := context.Background()

	client := mustCreateClient(t, api, models.ClientCreateRequest{
		FirstName: "Ana", LastName: "Lee", TotalFee: 1500,
	})

	if _, err := api.AddPayment(ctx, client.ID, 500, "cash", ""); err != nil {
		t.Fatalf("AddPayment: %v", err)
	}
	updated, err := api.AddPayment(ctx, client.ID, 250, "card", "second installment")
	if err != nil {
		t.Fatalf("AddPayment: %v", err)
	}

	if updated.Payment.PaidAmount != 750 {
		t.Fatalf("expected paidAmount 750, got %v", updated.Payment.PaidAmount)
	}
	if updated.Payment.TotalFee != 1500 {
		t.Fatalf("totalFee must survive payment updates, got %v", updated.Payment.TotalFee)
	}
	if len(updated.Payment.Payments) != 2 {
		t.Fatalf("expected 2 payment records, got %d", len(updated.Payment.Payments))
	}
	if updated.Payment.Payments[1].Note != "second installment" {
		t.Fatalf("unexpected payment record: %+v", updated.Payment.Payments[1])
	}
}

func TestUploadDocumentMarksSubmitted(t *testing.T) {
	api := newTestClient(t)
	ctx := context.Background()

	template, err := api.CreateCaseTemplate(ctx, models.CaseTemplateCreateRequest{
		Name: "Work Visa",
		RequiredDocuments: []models.TemplateDocument{
			{Code: "PASSPORT", Name: "Passport"},
			{Code: "PHOTO", Name: "Photo"},
		},
	})
	if err != nil {
		t.Fatalf("CreateCaseTemplate: %v", err)
	}

	client := mustCreateClient(t, api, models.ClientCreateRequest{
		FirstName: "Ana", LastName: "Lee", CaseTemplateID: template.ID,
	})

	updated, err := api.UploadDocument(ctx, client.ID, "PASSPORT", FileInfo{Name: "passport.pdf", Size: 2048})
	if err != nil {
		t.Fatalf("UploadDocument: %v", err)
	}

	var passport, photo models.ClientDocument
	for _, doc := range updated.RequiredDocuments {
		switch doc.Code {
		case "PASSPORT":
			passport = doc
		case "PHOTO":
			photo = doc
		}
	}

	if !passport.Submitted || passport.FileURL == nil || passport.UploadedAt == nil {
		t.Fatalf("expected submitted passport document: %+v", passport)
	}
	if !strings.HasPrefix(*passport.FileURL, "local://") {
		t.Fatalf("expected a transient local reference, got %q", *passport.FileURL)
	}
	if passport.FileName != "passport.pdf" || passport.FileSize != 2048 {
		t.Fatalf("unexpected file metadata: %+v", passport)
	}
	if photo.Submitted || photo.FileURL != nil {
		t.Fatalf("other documents must stay untouched: %+v", photo)
	}
}

func TestAdditionalDocumentAddAndRemove(t *testing.T) {
	api := newTestClient(t)
	ctx := context.Background()

	client := mustCreateClient(t, api, models.ClientCreateRequest{FirstName: "Ana", LastName: "Lee"})

	updated, err := api.UploadAdditionalDocument(ctx, client.ID, "Bank statement", "last 3 months",
		FileInfo{Name: "statement.pdf", Size: 4096})
	if err != nil {
		t.Fatalf("UploadAdditionalDocument: %v", err)
	}
	if len(updated.AdditionalDocuments) != 1 {
		t.Fatalf("expected 1 additional document, got %d", len(updated.AdditionalDocuments))
	}

	doc := updated.AdditionalDocuments[0]
	if !strings.HasPrefix(doc.ID, "doc_") {
		t.Fatalf("unexpected document id %q", doc.ID)
	}
	if doc.Name != "Bank statement" || doc.FileName != "statement.pdf" || doc.FileSize != 4096 {
		t.Fatalf("unexpected document: %+v", doc)
	}
	if doc.UploadedAt.IsZero() {
		t.Fatal("expected uploadedAt to be stamped")
	}

	updated, err = api.RemoveAdditionalDocument(ctx, client.ID, doc.ID)
	if err != nil {
		t.Fatalf("RemoveAdditionalDocument: %v", err)
	}
	if len(updated.AdditionalDocuments) != 0 {
		t.Fatalf("expected empty list after removal, got %d", len(updated.AdditionalDocuments))
	}
}

func TestSubmitToAdministrative(t *testing.T) {
	api := newTestClient(t)
	ctx := context.Background()

	client := mustCreateClient(t, api, models.ClientCreateRequest{FirstName: "Ana", LastName: "Lee"})

	updated, err := api.SubmitToAdministrative(ctx, client.ID)
	if err != nil {
		t.Fatalf("SubmitToAdministrative: %v", err)
	}
	if !updated.SubmittedToImmigration {
		t.Fatal("expected submitted_to_immigration to be set")
	}
	if updated.ApplicationDate == nil || updated.ApplicationDate.IsZero() {
		t.Fatal("expected application_date to be stamped")
	}
}

func TestUpdateNotes(t *testing.T) {
	api := newTestClient(t)
	ctx := context.Background()

	client := mustCreateClient(t, api, models.ClientCreateRequest{FirstName: "Ana", LastName: "Lee"})

	updated, err := api.UpdateNotes(ctx, client.ID, "called on Monday")
	if err != nil {
		t.Fatalf("UpdateNotes: %v", err)
	}
	if updated.Notes != "called on Monday" {
		t.Fatalf("expected notes update, got %q", updated.Notes)
	}
}

func TestErrorCarriesServerMessage(t *testing.T) {
	api := newTestClient(t)

	_, err := api.GetClient(context.Background(), "client_99_0")
	if err == nil {
		t.Fatal("expected an error for an unknown id")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.StatusCode != 404 || apiErr.Message != "Client not found" {
		t.Fatalf("unexpected error: %+v", apiErr)
	}
}
