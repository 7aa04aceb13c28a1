package controllers

import (
	"net/http"

	"case-management-api/models"
	"case-management-api/store"

	"github.com/gin-gonic/gin"
)

// Defaults used when a client is created without a resolving case
// template.
const (
	defaultReminderIntervalDays      = 10
	defaultAdministrativeSilenceDays = 60
)

// ClientController serves the /api/clients routes over an injected
// store.
type ClientController struct {
	DB *store.MemoryDB
}

func NewClientController(db *store.MemoryDB) *ClientController {
	return &ClientController{DB: db}
}

// Create - POST /api/clients. If caseTemplateId resolves, the
// template's name, intervals and document checklist are snapshotted
// onto the new client; a non-resolving id still creates the client
// with defaults.
func (ctl *ClientController) Create(c *gin.Context) {
	var req models.ClientCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.FirstName == "" || req.LastName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "First name and last name are required"})
		return
	}

	requiredDocs := []models.ClientDocument{}
	caseType := ""
	reminderInterval := defaultReminderIntervalDays
	adminSilenceDays := defaultAdministrativeSilenceDays

	if req.CaseTemplateID != "" {
		if template, ok := ctl.DB.Template(req.CaseTemplateID); ok {
			caseType = template.Name
			reminderInterval = template.ReminderIntervalDays
			adminSilenceDays = template.AdministrativeSilenceDays
			for _, doc := range template.RequiredDocuments {
				requiredDocs = append(requiredDocs, models.ClientDocument{
					Code:        doc.Code,
					Name:        doc.Name,
					Description: doc.Description,
					Submitted:   false,
					FileURL:     nil,
					UploadedAt:  nil,
				})
			}
		}
	}

	client := ctl.DB.InsertClient(models.Client{
		FirstName:                 req.FirstName,
		LastName:                  req.LastName,
		Email:                     req.Email,
		Phone:                     req.Phone,
		CaseTemplateID:            req.CaseTemplateID,
		CaseType:                  caseType,
		RequiredDocuments:         requiredDocs,
		ReminderIntervalDays:      reminderInterval,
		AdministrativeSilenceDays: adminSilenceDays,
		Payment: models.Payment{
			TotalFee:   req.TotalFee,
			PaidAmount: 0,
			Payments:   []models.PaymentRecord{},
		},
		SubmittedToImmigration: false,
		Notifications:          []any{},
		AdditionalDocsRequired: false,
		Notes:                  "",
		AdditionalDocuments:    []models.AdditionalDocument{},
	})

	c.JSON(http.StatusCreated, client)
}

// List - GET /api/clients (newest first)
func (ctl *ClientController) List(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.DB.Clients())
}

// Get - GET /api/clients/:id
func (ctl *ClientController) Get(c *gin.Context) {
	client, ok := ctl.DB.Client(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	c.JSON(http.StatusOK, client)
}

// Update - PUT /api/clients/:id. Top-level fields only: a provided
// payment or document list replaces the stored one wholesale.
func (ctl *ClientController) Update(c *gin.Context) {
	var req models.ClientUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client, ok := ctl.DB.UpdateClient(c.Param("id"), func(cl *models.Client) {
		if req.FirstName != nil {
			cl.FirstName = *req.FirstName
		}
		if req.LastName != nil {
			cl.LastName = *req.LastName
		}
		if req.Email != nil {
			cl.Email = *req.Email
		}
		if req.Phone != nil {
			cl.Phone = *req.Phone
		}
		if req.CaseTemplateID != nil {
			cl.CaseTemplateID = *req.CaseTemplateID
		}
		if req.CaseType != nil {
			cl.CaseType = *req.CaseType
		}
		if req.RequiredDocuments != nil {
			cl.RequiredDocuments = *req.RequiredDocuments
		}
		if req.ReminderIntervalDays != nil {
			cl.ReminderIntervalDays = *req.ReminderIntervalDays
		}
		if req.AdministrativeSilenceDays != nil {
			cl.AdministrativeSilenceDays = *req.AdministrativeSilenceDays
		}
		if req.Payment != nil {
			cl.Payment = *req.Payment
		}
		if req.SubmittedToImmigration != nil {
			cl.SubmittedToImmigration = *req.SubmittedToImmigration
		}
		if req.ApplicationDate != nil {
			cl.ApplicationDate = req.ApplicationDate
		}
		if req.Notifications != nil {
			cl.Notifications = *req.Notifications
		}
		if req.AdditionalDocsRequired != nil {
			cl.AdditionalDocsRequired = *req.AdditionalDocsRequired
		}
		if req.Notes != nil {
			cl.Notes = *req.Notes
		}
		if req.AdditionalDocuments != nil {
			cl.AdditionalDocuments = *req.AdditionalDocuments
		}
	})
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}

	c.JSON(http.StatusOK, client)
}

// Delete - DELETE /api/clients/:id
func (ctl *ClientController) Delete(c *gin.Context) {
	if !ctl.DB.DeleteClient(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client deleted successfully"})
}
