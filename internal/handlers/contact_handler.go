package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/responses"
	"portfolio-backend/internal/storage"
	"portfolio-backend/internal/validation"
)

type ContactHandler struct {
	store storage.ContactStore
}

func NewContactHandler(store storage.ContactStore) *ContactHandler {
	return &ContactHandler{store: store}
}

// ListContacts handles GET /api/contacts
func (h *ContactHandler) ListContacts(c *gin.Context) {
	contacts, err := h.store.List(c.Request.Context())
	if err != nil {
		log.Printf("ERROR listing contacts: %v", err)
		responses.Error(c, http.StatusInternalServerError, "Failed to fetch contacts")
		return
	}
	c.JSON(http.StatusOK, contacts)
}

// CreateContact handles POST /api/contacts
func (h *ContactHandler) CreateContact(c *gin.Context) {
	var in models.ContactInsert
	if errs := validation.BindJSON(c, &in); errs != nil {
		responses.ValidationFailed(c, "Invalid form data", errs)
		return
	}

	contact, err := h.store.Create(c.Request.Context(), in)
	if err != nil {
		log.Printf("ERROR creating contact: %v", err)
		responses.Error(c, http.StatusInternalServerError, "Failed to submit contact form")
		return
	}
	c.JSON(http.StatusCreated, contact)
}
