package request

import (
	"time"

	"acara-api/internal/domain/event"

	"github.com/google/uuid"
)

type CreateEventRequest struct {
	Name        string    `json:"name" binding:"required,max=200"`
	Slug        string    `json:"slug,omitempty"`
	Description string    `json:"description"`
	Banner      string    `json:"banner"`
	CategoryID  uuid.UUID `json:"category_id" binding:"required"`
	IsFeatured  bool      `json:"is_featured"`
	IsOnline    bool      `json:"is_online"`
	IsPublished bool      `json:"is_published"`
	StartAt     time.Time `json:"start_at" binding:"required"`
	EndAt       time.Time `json:"end_at" binding:"required"`
	Region      int32     `json:"region"`
	Address     string    `json:"address"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
}

func (r CreateEventRequest) ToDomain(createdBy uuid.UUID) (*event.Event, error) {
	return event.NewEvent(
		r.Name,
		r.Slug,
		r.Description,
		r.Banner,
		r.CategoryID,
		r.IsFeatured,
		r.IsOnline,
		r.IsPublished,
		r.StartAt,
		r.EndAt,
		event.Location{
			Region:    r.Region,
			Address:   r.Address,
			Latitude:  r.Latitude,
			Longitude: r.Longitude,
		},
		createdBy,
	)
}

type UpdateEventRequest struct {
	Name        string    `json:"name" binding:"required,max=200"`
	Slug        string    `json:"slug,omitempty"`
	Description string    `json:"description"`
	Banner      string    `json:"banner"`
	CategoryID  uuid.UUID `json:"category_id" binding:"required"`
	IsFeatured  bool      `json:"is_featured"`
	IsOnline    bool      `json:"is_online"`
	IsPublished bool      `json:"is_published"`
	StartAt     time.Time `json:"start_at" binding:"required"`
	EndAt       time.Time `json:"end_at" binding:"required"`
	Region      int32     `json:"region"`
	Address     string    `json:"address"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
}

func (r UpdateEventRequest) ToDomain(id uuid.UUID) (*event.Event, error) {
	return event.NewEventForUpdate(
		id,
		r.Name,
		r.Slug,
		r.Description,
		r.Banner,
		r.CategoryID,
		r.IsFeatured,
		r.IsOnline,
		r.IsPublished,
		r.StartAt,
		r.EndAt,
		event.Location{
			Region:    r.Region,
			Address:   r.Address,
			Latitude:  r.Latitude,
			Longitude: r.Longitude,
		},
	)
}
