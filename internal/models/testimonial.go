package models

import "time"

type Testimonial struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Title      string    `json:"title"`
	Company    string    `json:"company"`
	Content    string    `json:"content"`
	Avatar     *string   `json:"avatar"`
	FacebookID *string   `json:"facebookId"`
	Rating     int       `json:"rating"` // 1..5
	CreatedAt  time.Time `json:"createdAt"`
}

type TestimonialInsert struct {
	Name       string  `json:"name" binding:"required"`
	Title      string  `json:"title" binding:"required"`
	Company    string  `json:"company" binding:"required"`
	Content    string  `json:"content" binding:"required"`
	Avatar     *string `json:"avatar"`
	FacebookID *string `json:"facebookId"`
	Rating     *int    `json:"rating" binding:"omitnil,min=1,max=5"`
}

type TestimonialPatch struct {
	Name       *string `json:"name" binding:"omitnil,min=1"`
	Title      *string `json:"title" binding:"omitnil,min=1"`
	Company    *string `json:"company" binding:"omitnil,min=1"`
	Content    *string `json:"content" binding:"omitnil,min=1"`
	Avatar     *string `json:"avatar"`
	FacebookID *string `json:"facebookId"`
	Rating     *int    `json:"rating" binding:"omitnil,min=1,max=5"`
}
