package models

import (
	"time"

	"github.com/google/uuid"
)

type Organizer struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	ImagePath   *string   `json:"image_path"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

// OrganizerUpdate carries a partial update; nil fields are left unchanged.
type OrganizerUpdate struct {
	Name        *string
	Description *string
	ImagePath   *string
}
