package models

import "time"

// TemplateDocument is one entry of a template's document checklist.
type TemplateDocument struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CaseTemplate is a reusable definition of required documents and
// reminder/silence cadence for a class of immigration cases.
type CaseTemplate struct {
	ID                        string             `json:"id"`
	Name                      string             `json:"name"`
	Description               string             `json:"description,omitempty"`
	RequiredDocuments         []TemplateDocument `json:"required_documents"`
	ReminderIntervalDays      int                `json:"reminder_interval_days"`
	AdministrativeSilenceDays int                `json:"administrative_silence_days"`
	CreatedAt                 time.Time          `json:"created_at"`
	UpdatedAt                 time.Time          `json:"updated_at"`
}

type CaseTemplateCreateRequest struct {
	Name                      string             `json:"name"`
	Description               string             `json:"description"`
	RequiredDocuments         []TemplateDocument `json:"required_documents"`
	ReminderIntervalDays      int                `json:"reminder_interval_days"`
	AdministrativeSilenceDays int                `json:"administrative_silence_days"`
}

// CaseTemplateUpdateRequest carries a partial update; nil fields are
// left untouched. The id and created_at are never updatable.
type CaseTemplateUpdateRequest struct {
	Name                      *string             `json:"name,omitempty"`
	Description               *string             `json:"description,omitempty"`
	RequiredDocuments         *[]TemplateDocument `json:"required_documents,omitempty"`
	ReminderIntervalDays      *int                `json:"reminder_interval_days,omitempty"`
	AdministrativeSilenceDays *int                `json:"administrative_silence_days,omitempty"`
}
