// Package event orchestrates event creation, registration and the
// organizer find-or-create workflow on top of the storage layer.
package event

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"eventspace/internal/lib/logger/sl"
	"eventspace/internal/models"
	"eventspace/internal/storage"

	"github.com/google/uuid"
)

type EventStorage interface {
	GetAllEvents() ([]models.EventSummary, error)
	GetEventByID(eventID uuid.UUID) (*models.EventDetail, error)
	CreateEvent(event models.Event, organizerID *uuid.UUID) error
	UpdateEvent(eventID uuid.UUID, upd models.EventUpdate) error
	DeleteEvent(eventID uuid.UUID) error
	CreateRegistration(reg models.Registration) error
}

type OrganizerStorage interface {
	GetOrganizerByName(name string) (*models.Organizer, error)
	CreateOrganizer(org models.Organizer) error
	UpdateOrganizer(organizerID uuid.UUID, upd models.OrganizerUpdate) error
}

type Service struct {
	log        *slog.Logger
	events     EventStorage
	organizers OrganizerStorage
}

func New(log *slog.Logger, events EventStorage, organizers OrganizerStorage) *Service {
	return &Service{
		log:        log,
		events:     events,
		organizers: organizers,
	}
}

type CreateEventParams struct {
	Title                string
	Description          string
	ShortDescription     string
	StartDate            time.Time
	Location             string
	ImagePath            *string
	OrganizerName        string
	OrganizerDescription *string
	OrganizerImagePath   *string
}

func (s *Service) ListEvents() ([]models.EventSummary, error) {
	return s.events.GetAllEvents()
}

func (s *Service) GetEvent(eventID uuid.UUID) (*models.EventDetail, error) {
	return s.events.GetEventByID(eventID)
}

// CreateEvent creates an event, resolving an optional organizer by name
// first. The duplicate pre-check is a fast path only: if the listing
// fails the error is logged and creation proceeds, and the unique
// constraint on (title, start_date) remains the source of truth.
func (s *Service) CreateEvent(params CreateEventParams) (uuid.UUID, error) {
	events, err := s.events.GetAllEvents()
	if err != nil {
		s.log.Warn("duplicate pre-check skipped", sl.Err(err))
	} else {
		for _, existing := range events {
			if existing.Title == params.Title && sameMinute(existing.StartDate, params.StartDate) {
				return uuid.Nil, storage.ErrEventExists
			}
		}
	}

	organizerID, err := s.resolveOrganizer(params)
	if err != nil {
		return uuid.Nil, err
	}

	now := time.Now()
	event := models.Event{
		ID:               uuid.New(),
		Title:            params.Title,
		Description:      params.Description,
		ShortDescription: params.ShortDescription,
		StartDate:        params.StartDate,
		Location:         params.Location,
		ImagePath:        params.ImagePath,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err = s.events.CreateEvent(event, organizerID); err != nil {
		return uuid.Nil, fmt.Errorf("failed to create event: %w", err)
	}

	s.log.Info("event created",
		slog.String("id", event.ID.String()),
		slog.String("title", event.Title),
	)

	return event.ID, nil
}

// resolveOrganizer finds an organizer by exact name or creates a new one.
// When an existing organizer is reused and new details are supplied, the
// shared row is updated in place.
func (s *Service) resolveOrganizer(params CreateEventParams) (*uuid.UUID, error) {
	if params.OrganizerName == "" {
		return nil, nil
	}

	existing, err := s.organizers.GetOrganizerByName(params.OrganizerName)
	if err != nil && !errors.Is(err, storage.ErrOrganizerNotFound) {
		return nil, fmt.Errorf("failed to look up organizer: %w", err)
	}

	if existing != nil {
		s.log.Info("using existing organizer", slog.String("name", params.OrganizerName))

		if params.OrganizerDescription != nil || params.OrganizerImagePath != nil {
			upd := models.OrganizerUpdate{
				Description: params.OrganizerDescription,
				ImagePath:   params.OrganizerImagePath,
			}
			if err = s.organizers.UpdateOrganizer(existing.ID, upd); err != nil {
				return nil, fmt.Errorf("failed to update organizer: %w", err)
			}
		}

		return &existing.ID, nil
	}

	now := time.Now()
	org := models.Organizer{
		ID:          uuid.New(),
		Name:        params.OrganizerName,
		Description: params.OrganizerDescription,
		ImagePath:   params.OrganizerImagePath,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err = s.organizers.CreateOrganizer(org); err != nil {
		return nil, fmt.Errorf("failed to create organizer: %w", err)
	}

	s.log.Info("created new organizer", slog.String("name", org.Name))

	return &org.ID, nil
}

func (s *Service) UpdateEvent(eventID uuid.UUID, upd models.EventUpdate) error {
	return s.events.UpdateEvent(eventID, upd)
}

func (s *Service) DeleteEvent(eventID uuid.UUID) error {
	return s.events.DeleteEvent(eventID)
}

// RegisterParticipant records a registration for an event. Duplicate
// registrations by the same participant are allowed.
func (s *Service) RegisterParticipant(eventID uuid.UUID, name, email string, phone *string) (uuid.UUID, error) {
	now := time.Now()
	reg := models.Registration{
		ID:               uuid.New(),
		EventID:          eventID,
		ParticipantName:  name,
		ParticipantEmail: email,
		ParticipantPhone: phone,
		RegistrationDate: now,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.events.CreateRegistration(reg); err != nil {
		return uuid.Nil, fmt.Errorf("failed to register participant: %w", err)
	}

	s.log.Info("participant registered",
		slog.String("event_id", eventID.String()),
		slog.String("participant", name),
	)

	return reg.ID, nil
}

// sameMinute compares two start dates to the minute. Seconds, fractional
// seconds and zone offsets are ignored, matching the duplicate rule
// enforced by the (title, start_date) constraint's pre-check.
func sameMinute(a, b time.Time) bool {
	return a.Year() == b.Year() &&
		a.Month() == b.Month() &&
		a.Day() == b.Day() &&
		a.Hour() == b.Hour() &&
		a.Minute() == b.Minute()
}
