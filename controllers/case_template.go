package controllers

import (
	"net/http"

	"case-management-api/models"
	"case-management-api/store"

	"github.com/gin-gonic/gin"
)

// CaseTemplateController serves the /api/case-templates routes over
// an injected store.
type CaseTemplateController struct {
	DB *store.MemoryDB
}

func NewCaseTemplateController(db *store.MemoryDB) *CaseTemplateController {
	return &CaseTemplateController{DB: db}
}

// Create - POST /api/case-templates
func (ctl *CaseTemplateController) Create(c *gin.Context) {
	var req models.CaseTemplateCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name == "" || req.RequiredDocuments == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and required documents are required"})
		return
	}

	template := ctl.DB.InsertTemplate(models.CaseTemplate{
		Name:                      req.Name,
		Description:               req.Description,
		RequiredDocuments:         req.RequiredDocuments,
		ReminderIntervalDays:      req.ReminderIntervalDays,
		AdministrativeSilenceDays: req.AdministrativeSilenceDays,
	})

	c.JSON(http.StatusCreated, template)
}

// List - GET /api/case-templates (newest first)
func (ctl *CaseTemplateController) List(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.DB.Templates())
}

// Get - GET /api/case-templates/:id
func (ctl *CaseTemplateController) Get(c *gin.Context) {
	template, ok := ctl.DB.Template(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Case template not found"})
		return
	}
	c.JSON(http.StatusOK, template)
}

// Update - PUT /api/case-templates/:id (partial-field merge)
func (ctl *CaseTemplateController) Update(c *gin.Context) {
	var req models.CaseTemplateUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	template, ok := ctl.DB.UpdateTemplate(c.Param("id"), func(t *models.CaseTemplate) {
		if req.Name != nil {
			t.Name = *req.Name
		}
		if req.Description != nil {
			t.Description = *req.Description
		}
		if req.RequiredDocuments != nil {
			t.RequiredDocuments = *req.RequiredDocuments
		}
		if req.ReminderIntervalDays != nil {
			t.ReminderIntervalDays = *req.ReminderIntervalDays
		}
		if req.AdministrativeSilenceDays != nil {
			t.AdministrativeSilenceDays = *req.AdministrativeSilenceDays
		}
	})
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Case template not found"})
		return
	}

	c.JSON(http.StatusOK, template)
}

// Delete - DELETE /api/case-templates/:id. Unconditional: existing
// clients keep their snapshotted copy of the template.
func (ctl *CaseTemplateController) Delete(c *gin.Context) {
	if !ctl.DB.DeleteTemplate(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Case template not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Case template deleted successfully"})
}
