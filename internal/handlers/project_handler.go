package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/responses"
	"portfolio-backend/internal/storage"
	"portfolio-backend/internal/validation"
)

type ProjectHandler struct {
	store storage.ProjectStore
}

func NewProjectHandler(store storage.ProjectStore) *ProjectHandler {
	return &ProjectHandler{store: store}
}

// parseID extracts the numeric id path parameter. A non-numeric id behaves
// like a missing record, not a client error.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// ListProjects handles GET /api/projects
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.store.List(c.Request.Context())
	if err != nil {
		log.Printf("ERROR listing projects: %v", err)
		responses.Error(c, http.StatusInternalServerError, "Failed to fetch projects")
		return
	}
	c.JSON(http.StatusOK, projects)
}

// ListFeatured handles GET /api/projects/featured
func (h *ProjectHandler) ListFeatured(c *gin.Context) {
	projects, err := h.store.ListFeatured(c.Request.Context())
	if err != nil {
		log.Printf("ERROR listing featured projects: %v", err)
		responses.Error(c, http.StatusInternalServerError, "Failed to fetch featured projects")
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GetProject handles GET /api/projects/:id
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		responses.Error(c, http.StatusNotFound, "Project not found")
		return
	}

	project, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("ERROR fetching project %d: %v", id, err)
		responses.Error(c, http.StatusInternalServerError, "Failed to fetch project")
		return
	}
	if project == nil {
		responses.Error(c, http.StatusNotFound, "Project not found")
		return
	}
	c.JSON(http.StatusOK, project)
}

// CreateProject handles POST /api/projects
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var in models.ProjectInsert
	if errs := validation.BindJSON(c, &in); errs != nil {
		responses.ValidationFailed(c, "Invalid project data", errs)
		return
	}

	project, err := h.store.Create(c.Request.Context(), in)
	if err != nil {
		log.Printf("ERROR creating project: %v", err)
		responses.Error(c, http.StatusInternalServerError, "Failed to create project")
		return
	}
	c.JSON(http.StatusCreated, project)
}

// UpdateProject handles PUT /api/projects/:id
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		responses.Error(c, http.StatusNotFound, "Project not found")
		return
	}

	var patch models.ProjectPatch
	if errs := validation.BindJSON(c, &patch); errs != nil {
		responses.ValidationFailed(c, "Invalid project data", errs)
		return
	}

	project, err := h.store.Update(c.Request.Context(), id, patch)
	if err != nil {
		log.Printf("ERROR updating project %d: %v", id, err)
		responses.Error(c, http.StatusInternalServerError, "Failed to update project")
		return
	}
	if project == nil {
		responses.Error(c, http.StatusNotFound, "Project not found")
		return
	}
	c.JSON(http.StatusOK, project)
}

// DeleteProject handles DELETE /api/projects/:id
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		responses.Error(c, http.StatusNotFound, "Project not found")
		return
	}

	deleted, err := h.store.Delete(c.Request.Context(), id)
	if err != nil {
		log.Printf("ERROR deleting project %d: %v", id, err)
		responses.Error(c, http.StatusInternalServerError, "Failed to delete project")
		return
	}
	if !deleted {
		responses.Error(c, http.StatusNotFound, "Project not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}
