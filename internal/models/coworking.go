package models

import (
	"time"

	"github.com/google/uuid"
)

type CoworkingSpace struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	ImagePath   *string   `json:"image_path"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

// SpaceUpdate carries a partial update; nil fields are left unchanged.
type SpaceUpdate struct {
	Name        *string
	Description *string
	Location    *string
	ImagePath   *string
}

// CoworkingDetail is a space together with its daily occupancy series.
type CoworkingDetail struct {
	CoworkingSpace
	OccupancyData []OccupancyPoint `json:"occupancy_data"`
}

type Booking struct {
	ID            uuid.UUID `json:"id"`
	CoworkingID   uuid.UUID `json:"coworking_id"`
	BookingDate   Date      `json:"booking_date"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`
}

// OccupancyPoint is one day of the derived occupancy projection.
type OccupancyPoint struct {
	Date                Date `json:"date"`
	OccupancyPercentage int  `json:"occupancy_percentage"`
}
