package routes

import (
	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/handlers"
)

type ContactRoutes struct {
	handler *handlers.ContactHandler
}

func NewContactRoutes(handler *handlers.ContactHandler) *ContactRoutes {
	return &ContactRoutes{handler: handler}
}

func (r *ContactRoutes) RegisterRoutes(router *gin.RouterGroup, admin gin.HandlerFunc) {
	contacts := router.Group("/contacts")
	{
		contacts.GET("", admin, r.handler.ListContacts)
		contacts.POST("", r.handler.CreateContact)
	}
}
