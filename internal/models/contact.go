package models

import "time"

type Contact struct {
	ID          int64     `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	ProjectType *string   `json:"projectType"`
	BudgetRange *string   `json:"budgetRange"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ContactInsert struct {
	FirstName   string  `json:"firstName" binding:"required"`
	LastName    string  `json:"lastName" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	ProjectType *string `json:"projectType"`
	BudgetRange *string `json:"budgetRange"`
	Message     string  `json:"message" binding:"required"`
}

// ContactPatch exists for storage-port symmetry; the API never exposes
// contact updates.
type ContactPatch struct {
	FirstName   *string `json:"firstName" binding:"omitnil,min=1"`
	LastName    *string `json:"lastName" binding:"omitnil,min=1"`
	Email       *string `json:"email" binding:"omitnil,email"`
	ProjectType *string `json:"projectType"`
	BudgetRange *string `json:"budgetRange"`
	Message     *string `json:"message" binding:"omitnil,min=1"`
}
