package routes

import (
	"net/http"

	"case-management-api/controllers"
	"case-management-api/store"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers the full HTTP surface against the given
// store.
func SetupRoutes(router *gin.Engine, db *store.MemoryDB) {
	templates := controllers.NewCaseTemplateController(db)
	clients := controllers.NewClientController(db)

	// Health check
	router.GET("/health", controllers.Health)

	api := router.Group("/api")
	{
		caseTemplates := api.Group("/case-templates")
		{
			caseTemplates.POST("", templates.Create)
			caseTemplates.GET("", templates.List)
			caseTemplates.GET("/:id", templates.Get)
			caseTemplates.PUT("/:id", templates.Update)
			caseTemplates.DELETE("/:id", templates.Delete)
		}

		clientRoutes := api.Group("/clients")
		{
			clientRoutes.POST("", clients.Create)
			clientRoutes.GET("", clients.List)
			clientRoutes.GET("/:id", clients.Get)
			clientRoutes.PUT("/:id", clients.Update)
			clientRoutes.DELETE("/:id", clients.Delete)
		}
	}

	// 404 catch-all
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})
}
