package models

import "time"

type Project struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Image        string    `json:"image"`
	Technologies []string  `json:"technologies"`
	GithubURL    *string   `json:"githubUrl"`
	LiveURL      *string   `json:"liveUrl"`
	Featured     int       `json:"featured"` // 0 or 1
	Category     string    `json:"category"` // 'figma', 'frontend', 'full-stack' or 'animation'
	CreatedAt    time.Time `json:"createdAt"`
}

// ProjectInsert is a validated create payload. ID and CreatedAt are assigned
// by the storage layer.
type ProjectInsert struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	Image        string   `json:"image" binding:"required"`
	Technologies []string `json:"technologies" binding:"required"`
	GithubURL    *string  `json:"githubUrl"`
	LiveURL      *string  `json:"liveUrl"`
	Featured     int      `json:"featured"`
	Category     string   `json:"category" binding:"required"`
}

// ProjectPatch is a partial update. Nil fields are left untouched.
type ProjectPatch struct {
	Title        *string  `json:"title" binding:"omitnil,min=1"`
	Description  *string  `json:"description" binding:"omitnil,min=1"`
	Image        *string  `json:"image" binding:"omitnil,min=1"`
	Technologies []string `json:"technologies"`
	GithubURL    *string  `json:"githubUrl"`
	LiveURL      *string  `json:"liveUrl"`
	Featured     *int     `json:"featured"`
	Category     *string  `json:"category" binding:"omitnil,min=1"`
}
