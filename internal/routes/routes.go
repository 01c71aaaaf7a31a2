package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/handlers"
	"portfolio-backend/internal/middlewares"
)

type Handlers struct {
	Projects     *handlers.ProjectHandler
	Experiences  *handlers.ExperienceHandler
	Contacts     *handlers.ContactHandler
	Testimonials *handlers.TestimonialHandler
	Upload       *handlers.UploadHandler
}

func RegisterRoutes(router *gin.Engine, h Handlers, adminToken string) {
	api := router.Group("/api")
	admin := middlewares.RequireAdmin(adminToken)

	projectRoutes := NewProjectRoutes(h.Projects)
	projectRoutes.RegisterRoutes(api, admin)

	experienceRoutes := NewExperienceRoutes(h.Experiences)
	experienceRoutes.RegisterRoutes(api)

	testimonialRoutes := NewTestimonialRoutes(h.Testimonials)
	testimonialRoutes.RegisterRoutes(api)

	contactRoutes := NewContactRoutes(h.Contacts)
	contactRoutes.RegisterRoutes(api, admin)

	api.POST("/upload", admin, h.Upload.Upload)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
}
