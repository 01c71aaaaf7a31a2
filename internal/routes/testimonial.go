package routes

import (
	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/handlers"
)

type TestimonialRoutes struct {
	handler *handlers.TestimonialHandler
}

func NewTestimonialRoutes(handler *handlers.TestimonialHandler) *TestimonialRoutes {
	return &TestimonialRoutes{handler: handler}
}

func (r *TestimonialRoutes) RegisterRoutes(router *gin.RouterGroup) {
	testimonials := router.Group("/testimonials")
	{
		testimonials.GET("", r.handler.ListTestimonials)
		testimonials.POST("", r.handler.CreateTestimonial)
	}
}
