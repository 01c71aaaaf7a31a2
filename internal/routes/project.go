package routes

import (
	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/handlers"
)

type ProjectRoutes struct {
	handler *handlers.ProjectHandler
}

func NewProjectRoutes(handler *handlers.ProjectHandler) *ProjectRoutes {
	return &ProjectRoutes{handler: handler}
}

func (r *ProjectRoutes) RegisterRoutes(router *gin.RouterGroup, admin gin.HandlerFunc) {
	projects := router.Group("/projects")
	{
		projects.GET("", r.handler.ListProjects)
		// The literal route must win over the :id parameter.
		projects.GET("/featured", r.handler.ListFeatured)
		projects.GET("/:id", r.handler.GetProject)
		projects.POST("", admin, r.handler.CreateProject)
		projects.PUT("/:id", admin, r.handler.UpdateProject)
		projects.DELETE("/:id", admin, r.handler.DeleteProject)
	}
}
