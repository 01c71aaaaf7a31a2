package handlers

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"portfolio-backend/internal/responses"
)

// MaxUploadSize caps uploaded images at 10MB.
const MaxUploadSize = 10 << 20

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var allowedContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type UploadHandler struct {
	dir string
}

func NewUploadHandler(dir string) *UploadHandler {
	return &UploadHandler{dir: dir}
}

// Upload handles POST /api/upload. The stored file is served back under
// /uploads and its URL feeds the project image field.
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "No file uploaded")
		return
	}

	if file.Size > MaxUploadSize {
		responses.Error(c, http.StatusBadRequest, "File exceeds the 10MB limit")
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	contentType := file.Header.Get("Content-Type")
	if !allowedExtensions[ext] || !allowedContentTypes[contentType] {
		responses.Error(c, http.StatusBadRequest, "Only image files (JPEG, PNG, GIF, WebP) are allowed")
		return
	}

	if err := os.MkdirAll(h.dir, 0o755); err != nil {
		log.Printf("ERROR creating upload dir: %v", err)
		responses.Error(c, http.StatusInternalServerError, "Failed to upload file")
		return
	}

	filename := fmt.Sprintf("image-%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), ext)
	if err := c.SaveUploadedFile(file, filepath.Join(h.dir, filename)); err != nil {
		log.Printf("ERROR saving upload: %v", err)
		responses.Error(c, http.StatusInternalServerError, "Failed to upload file")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "File uploaded successfully",
		"url":          "/uploads/" + filename,
		"filename":     filename,
		"originalname": file.Filename,
		"size":         file.Size,
	})
}
