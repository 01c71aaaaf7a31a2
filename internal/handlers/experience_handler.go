package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/responses"
	"portfolio-backend/internal/storage"
)

type ExperienceHandler struct {
	store storage.ExperienceStore
}

func NewExperienceHandler(store storage.ExperienceStore) *ExperienceHandler {
	return &ExperienceHandler{store: store}
}

// ListExperiences handles GET /api/experiences
func (h *ExperienceHandler) ListExperiences(c *gin.Context) {
	experiences, err := h.store.List(c.Request.Context())
	if err != nil {
		log.Printf("ERROR listing experiences: %v", err)
		responses.Error(c, http.StatusInternalServerError, "Failed to fetch experiences")
		return
	}
	c.JSON(http.StatusOK, experiences)
}
