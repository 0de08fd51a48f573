package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateEventRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Location    string  `json:"location"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
}

type UpdateEventStatusRequest struct {
	Status string `json:"status"`
}

type EventResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"image_url"`
	Slug        string    `json:"slug"`
	CreatedBy   uuid.UUID `json:"created_by"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
