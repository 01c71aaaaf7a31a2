package routes

import (
	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/handlers"
)

type ExperienceRoutes struct {
	handler *handlers.ExperienceHandler
}

func NewExperienceRoutes(handler *handlers.ExperienceHandler) *ExperienceRoutes {
	return &ExperienceRoutes{handler: handler}
}

// Experiences are read-only over HTTP; they enter through seeding.
func (r *ExperienceRoutes) RegisterRoutes(router *gin.RouterGroup) {
	experiences := router.Group("/experiences")
	{
		experiences.GET("", r.handler.ListExperiences)
	}
}
