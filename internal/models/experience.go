package models

import "time"

type Experience struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	Description  string    `json:"description"`
	Technologies []string  `json:"technologies"`
	StartDate    string    `json:"startDate"` // YYYY-MM
	EndDate      *string   `json:"endDate"`
	Current      int       `json:"current"` // 0 or 1
	CreatedAt    time.Time `json:"createdAt"`
}

type ExperienceInsert struct {
	Title        string   `json:"title" binding:"required"`
	Company      string   `json:"company" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	Technologies []string `json:"technologies" binding:"required"`
	StartDate    string   `json:"startDate" binding:"required"`
	EndDate      *string  `json:"endDate"`
	Current      int      `json:"current"`
}

type ExperiencePatch struct {
	Title        *string  `json:"title" binding:"omitnil,min=1"`
	Company      *string  `json:"company" binding:"omitnil,min=1"`
	Description  *string  `json:"description" binding:"omitnil,min=1"`
	Technologies []string `json:"technologies"`
	StartDate    *string  `json:"startDate" binding:"omitnil,min=1"`
	EndDate      *string  `json:"endDate"`
	Current      *int     `json:"current"`
}
