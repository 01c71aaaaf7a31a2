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

type TestimonialHandler struct {
	store storage.TestimonialStore
}

func NewTestimonialHandler(store storage.TestimonialStore) *TestimonialHandler {
	return &TestimonialHandler{store: store}
}

// ListTestimonials handles GET /api/testimonials
func (h *TestimonialHandler) ListTestimonials(c *gin.Context) {
	testimonials, err := h.store.List(c.Request.Context())
	if err != nil {
		log.Printf("ERROR listing testimonials: %v", err)
		responses.Error(c, http.StatusInternalServerError, "Failed to fetch testimonials")
		return
	}
	c.JSON(http.StatusOK, testimonials)
}

// CreateTestimonial handles POST /api/testimonials
func (h *TestimonialHandler) CreateTestimonial(c *gin.Context) {
	var in models.TestimonialInsert
	if errs := validation.BindJSON(c, &in); errs != nil {
		responses.ValidationFailed(c, "Invalid review data", errs)
		return
	}

	testimonial, err := h.store.Create(c.Request.Context(), in)
	if err != nil {
		log.Printf("ERROR creating testimonial: %v", err)
		responses.Error(c, http.StatusInternalServerError, "Failed to submit review")
		return
	}
	c.JSON(http.StatusCreated, testimonial)
}
