package models

import "time"

// ClientDocument is a required document snapshotted from a case
// template onto a client. Nested field names are camelCase on the
// wire; top-level record fields are snake_case.
type ClientDocument struct {
	Code        string     `json:"code"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Submitted   bool       `json:"submitted"`
	FileURL     *string    `json:"fileUrl"`
	UploadedAt  *time.Time `json:"uploadedAt"`
	FileName    string     `json:"fileName,omitempty"`
	FileSize    int64      `json:"fileSize,omitempty"`
}

type PaymentRecord struct {
	Amount float64   `json:"amount"`
	Date   time.Time `json:"date"`
	Method string    `json:"method"`
	Note   string    `json:"note,omitempty"`
}

// Payment tracks the agreed fee and the running paid total. The
// paidAmount is computed by callers, not validated by the server.
type Payment struct {
	TotalFee   float64         `json:"totalFee"`
	PaidAmount float64         `json:"paidAmount"`
	Payments   []PaymentRecord `json:"payments"`
}

// AdditionalDocument is an extra document attached to a client outside
// the template checklist. Ids are generated by the caller.
type AdditionalDocument struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	FileURL     string    `json:"fileUrl"`
	FileName    string    `json:"fileName"`
	FileSize    int64     `json:"fileSize"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

// Client is one applicant's case record, optionally instantiated from
// a CaseTemplate. Template fields are copied at creation time and are
// independent of the template afterwards.
type Client struct {
	ID                        string               `json:"id"`
	FirstName                 string               `json:"first_name"`
	LastName                  string               `json:"last_name"`
	Email                     string               `json:"email,omitempty"`
	Phone                     string               `json:"phone,omitempty"`
	CaseTemplateID            string               `json:"case_template_id,omitempty"`
	CaseType                  string               `json:"case_type"`
	RequiredDocuments         []ClientDocument     `json:"required_documents"`
	ReminderIntervalDays      int                  `json:"reminder_interval_days"`
	AdministrativeSilenceDays int                  `json:"administrative_silence_days"`
	Payment                   Payment              `json:"payment"`
	SubmittedToImmigration    bool                 `json:"submitted_to_immigration"`
	ApplicationDate           *time.Time           `json:"application_date,omitempty"`
	Notifications             []any                `json:"notifications"`
	AdditionalDocsRequired    bool                 `json:"additional_docs_required"`
	Notes                     string               `json:"notes"`
	AdditionalDocuments       []AdditionalDocument `json:"additional_documents"`
	CreatedAt                 time.Time            `json:"created_at"`
	UpdatedAt                 time.Time            `json:"updated_at"`
}

// ClientCreateRequest uses the camelCase field names of the create
// endpoint. Everything beyond first/last name is optional.
type ClientCreateRequest struct {
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	CaseTemplateID string  `json:"caseTemplateId"`
	TotalFee       float64 `json:"totalFee"`
}

// ClientUpdateRequest carries a partial update over the model's
// snake_case field names; nil fields are left untouched. Nested
// objects (payment, document lists) are replaced wholesale, not
// merged.
type ClientUpdateRequest struct {
	FirstName                 *string               `json:"first_name,omitempty"`
	LastName                  *string               `json:"last_name,omitempty"`
	Email                     *string               `json:"email,omitempty"`
	Phone                     *string               `json:"phone,omitempty"`
	CaseTemplateID            *string               `json:"case_template_id,omitempty"`
	CaseType                  *string               `json:"case_type,omitempty"`
	RequiredDocuments         *[]ClientDocument     `json:"required_documents,omitempty"`
	ReminderIntervalDays      *int                  `json:"reminder_interval_days,omitempty"`
	AdministrativeSilenceDays *int                  `json:"administrative_silence_days,omitempty"`
	Payment                   *Payment              `json:"payment,omitempty"`
	SubmittedToImmigration    *bool                 `json:"submitted_to_immigration,omitempty"`
	ApplicationDate           *time.Time            `json:"application_date,omitempty"`
	Notifications             *[]any                `json:"notifications,omitempty"`
	AdditionalDocsRequired    *bool                 `json:"additional_docs_required,omitempty"`
	Notes                     *string               `json:"notes,omitempty"`
	AdditionalDocuments       *[]AdditionalDocument `json:"additional_documents,omitempty"`
}
