package models

import (
	"time"
)

type Review struct {
	ID           int       `json:"id"`
	ProductID    string    `json:"product_id"`
	UserID       int       `json:"user_id"`
	ReviewerName string    `json:"reviewer_name"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment,omitempty"`
	ProductName  string    `json:"product_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type ProductReviews struct {
	Reviews   []Review `json:"reviews"`
	AvgRating float64  `json:"avg_rating"`
	Count     int      `json:"count"`
}
