// Package coworking mediates between the HTTP layer and storage for
// coworking spaces, bookings and the occupancy projection.
package coworking

import (
	"fmt"
	"log/slog"
	"time"

	"eventspace/internal/models"

	"github.com/google/uuid"
)

type CoworkingStorage interface {
	GetAllSpaces() ([]models.CoworkingSpace, error)
	GetSpaceByID(coworkingID uuid.UUID) (*models.CoworkingSpace, error)
	CreateSpace(space models.CoworkingSpace) error
	UpdateSpace(coworkingID uuid.UUID, upd models.SpaceUpdate) error
	DeleteSpace(coworkingID uuid.UUID) error
	CreateBooking(booking models.Booking) error
	GetOccupancyStats(coworkingID uuid.UUID) ([]models.OccupancyPoint, error)
}

type Service struct {
	log    *slog.Logger
	spaces CoworkingStorage
}

func New(log *slog.Logger, spaces CoworkingStorage) *Service {
	return &Service{
		log:    log,
		spaces: spaces,
	}
}

type CreateSpaceParams struct {
	Name        string
	Description string
	Location    string
	ImagePath   *string
}

func (s *Service) ListSpaces() ([]models.CoworkingSpace, error) {
	return s.spaces.GetAllSpaces()
}

// GetSpace returns the space together with its occupancy series, ordered
// ascending by date. Days without bookings have no occupancy row.
func (s *Service) GetSpace(coworkingID uuid.UUID) (*models.CoworkingDetail, error) {
	space, err := s.spaces.GetSpaceByID(coworkingID)
	if err != nil {
		return nil, err
	}

	occupancy, err := s.spaces.GetOccupancyStats(coworkingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get occupancy stats: %w", err)
	}
	if occupancy == nil {
		occupancy = []models.OccupancyPoint{}
	}

	return &models.CoworkingDetail{
		CoworkingSpace: *space,
		OccupancyData:  occupancy,
	}, nil
}

func (s *Service) CreateSpace(params CreateSpaceParams) (uuid.UUID, error) {
	now := time.Now()
	space := models.CoworkingSpace{
		ID:          uuid.New(),
		Name:        params.Name,
		Description: params.Description,
		Location:    params.Location,
		ImagePath:   params.ImagePath,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.spaces.CreateSpace(space); err != nil {
		return uuid.Nil, fmt.Errorf("failed to create coworking space: %w", err)
	}

	s.log.Info("coworking space created",
		slog.String("id", space.ID.String()),
		slog.String("name", space.Name),
	)

	return space.ID, nil
}

func (s *Service) UpdateSpace(coworkingID uuid.UUID, upd models.SpaceUpdate) error {
	return s.spaces.UpdateSpace(coworkingID, upd)
}

func (s *Service) DeleteSpace(coworkingID uuid.UUID) error {
	return s.spaces.DeleteSpace(coworkingID)
}

// CreateBooking books a space for one day. The storage layer recomputes
// the day's occupancy in the same transaction as the insert.
func (s *Service) CreateBooking(coworkingID uuid.UUID, bookingDate models.Date, customerName, customerPhone string) (uuid.UUID, error) {
	now := time.Now()
	booking := models.Booking{
		ID:            uuid.New(),
		CoworkingID:   coworkingID,
		BookingDate:   bookingDate,
		CustomerName:  customerName,
		CustomerPhone: customerPhone,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.spaces.CreateBooking(booking); err != nil {
		return uuid.Nil, fmt.Errorf("failed to create booking: %w", err)
	}

	s.log.Info("booking created",
		slog.String("id", booking.ID.String()),
		slog.String("coworking_id", coworkingID.String()),
		slog.String("date", bookingDate.Format("2006-01-02")),
	)

	return booking.ID, nil
}
