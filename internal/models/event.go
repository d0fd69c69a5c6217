package models

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	ShortDescription string    `json:"short_description"`
	StartDate        time.Time `json:"start_date"`
	Location         string    `json:"location"`
	ImagePath        *string   `json:"image_path"`
	CreatedAt        time.Time `json:"-"`
	UpdatedAt        time.Time `json:"-"`
}

// EventSummary is the card form used by the events listing page.
type EventSummary struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	ShortDescription string    `json:"short_description"`
	StartDate        time.Time `json:"start_date"`
	Location         string    `json:"location"`
	ImagePath        *string   `json:"image_path"`
}

// EventDetail is an event together with its organizer, if one is linked.
type EventDetail struct {
	Event
	Organizer *OrganizerInfo `json:"organizer"`
}

type OrganizerInfo struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	ImagePath   *string   `json:"image_path"`
}

// EventUpdate carries a partial update; nil fields are left unchanged.
type EventUpdate struct {
	Title            *string
	Description      *string
	ShortDescription *string
	StartDate        *time.Time
	Location         *string
	ImagePath        *string
	OrganizerID      *uuid.UUID
}

type Registration struct {
	ID               uuid.UUID `json:"id"`
	EventID          uuid.UUID `json:"event_id"`
	ParticipantName  string    `json:"participant_name"`
	ParticipantEmail string    `json:"participant_email"`
	ParticipantPhone *string   `json:"participant_phone"`
	RegistrationDate time.Time `json:"registration_date"`
	CreatedAt        time.Time `json:"-"`
	UpdatedAt        time.Time `json:"-"`
}
