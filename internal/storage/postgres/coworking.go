package postgres

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"eventspace/internal/models"
	"eventspace/internal/storage"

	"github.com/google/uuid"
)

// maxBookingsPerDay is the capacity constant behind the occupancy
// percentage: 10 bookings on one day is 100%.
const maxBookingsPerDay = 10

func (s *Storage) GetAllSpaces() ([]models.CoworkingSpace, error) {
	query := `
		SELECT id, name, description, location, image_path, created_at, updated_at
		FROM coworking_space
		ORDER BY created_at ASC`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get coworking spaces: %w", err)
	}
	defer rows.Close()

	var spaces []models.CoworkingSpace
	for rows.Next() {
		var space models.CoworkingSpace
		err := rows.Scan(
			&space.ID,
			&space.Name,
			&space.Description,
			&space.Location,
			&space.ImagePath,
			&space.CreatedAt,
			&space.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan coworking space: %w", err)
		}

		spaces = append(spaces, space)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating coworking spaces: %w", err)
	}

	return spaces, nil
}

func (s *Storage) GetSpaceByID(coworkingID uuid.UUID) (*models.CoworkingSpace, error) {
	query := `
		SELECT id, name, description, location, image_path, created_at, updated_at
		FROM coworking_space
		WHERE id = $1`

	var space models.CoworkingSpace
	err := s.DB.QueryRow(query, coworkingID).Scan(
		&space.ID,
		&space.Name,
		&space.Description,
		&space.Location,
		&space.ImagePath,
		&space.CreatedAt,
		&space.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, storage.ErrSpaceNotFound
		}
		return nil, fmt.Errorf("failed to get coworking space: %w", err)
	}

	return &space, nil
}

func (s *Storage) CreateSpace(space models.CoworkingSpace) error {
	query := `
		INSERT INTO coworking_space (id, name, description, location, image_path, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := s.DB.Exec(query,
		space.ID,
		space.Name,
		space.Description,
		space.Location,
		space.ImagePath,
		space.CreatedAt,
		space.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create coworking space: %w", err)
	}

	return nil
}

// UpdateSpace applies only the fields set in upd and always bumps updated_at.
func (s *Storage) UpdateSpace(coworkingID uuid.UUID, upd models.SpaceUpdate) error {
	set := []string{"updated_at = $1"}
	args := []interface{}{time.Now()}

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Name != nil {
		addSet("name", *upd.Name)
	}
	if upd.Description != nil {
		addSet("description", *upd.Description)
	}
	if upd.Location != nil {
		addSet("location", *upd.Location)
	}
	if upd.ImagePath != nil {
		addSet("image_path", *upd.ImagePath)
	}

	args = append(args, coworkingID)
	query := fmt.Sprintf("UPDATE coworking_space SET %s WHERE id = $%d", strings.Join(set, ", "), len(args))

	result, err := s.DB.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("failed to update coworking space: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return storage.ErrSpaceNotFound
	}

	return nil
}

// DeleteSpace hard-deletes the space; bookings and occupancy rows go with
// it via ON DELETE CASCADE.
func (s *Storage) DeleteSpace(coworkingID uuid.UUID) error {
	result, err := s.DB.Exec(`DELETE FROM coworking_space WHERE id = $1`, coworkingID)
	if err != nil {
		return fmt.Errorf("failed to delete coworking space: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return storage.ErrSpaceNotFound
	}

	return nil
}

// CreateBooking inserts the booking and recomputes the day's occupancy in
// one transaction. The space row is locked first: the lock serializes
// concurrent bookings of the same space so each recompute sees the
// committed count, and a missing row means the space does not exist.
func (s *Storage) CreateBooking(booking models.Booking) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var spaceID uuid.UUID
	err = tx.QueryRow(`SELECT id FROM coworking_space WHERE id = $1 FOR UPDATE`, booking.CoworkingID).Scan(&spaceID)
	if err != nil {
		if err == sql.ErrNoRows {
			return storage.ErrSpaceNotFound
		}
		return fmt.Errorf("failed to lock coworking space: %w", err)
	}

	insertQuery := `
		INSERT INTO coworking_booking (id, coworking_id, booking_date, customer_name, customer_phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err = tx.Exec(insertQuery,
		booking.ID,
		booking.CoworkingID,
		booking.BookingDate,
		booking.CustomerName,
		booking.CustomerPhone,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	if err = updateOccupancy(tx, booking.CoworkingID, booking.BookingDate); err != nil {
		return err
	}

	return tx.Commit()
}

// updateOccupancy recomputes the occupancy percentage for one space and
// day from the booking count, including the row inserted by the caller,
// and upserts the projection row.
func updateOccupancy(tx *sql.Tx, coworkingID uuid.UUID, bookingDate models.Date) error {
	countQuery := `
		SELECT COUNT(*)
		FROM coworking_booking
		WHERE coworking_id = $1 AND booking_date = $2`

	var bookingCount int
	if err := tx.QueryRow(countQuery, coworkingID, bookingDate).Scan(&bookingCount); err != nil {
		return fmt.Errorf("failed to count bookings: %w", err)
	}

	occupancyPercentage := bookingCount * 100 / maxBookingsPerDay
	if occupancyPercentage > 100 {
		occupancyPercentage = 100
	}

	upsertQuery := `
		INSERT INTO coworking_occupancy (id, coworking_id, date, occupancy_percentage, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (coworking_id, date)
		DO UPDATE SET occupancy_percentage = EXCLUDED.occupancy_percentage, updated_at = EXCLUDED.updated_at`

	now := time.Now()
	if _, err := tx.Exec(upsertQuery, uuid.New(), coworkingID, bookingDate, occupancyPercentage, now, now); err != nil {
		return fmt.Errorf("failed to update occupancy: %w", err)
	}

	return nil
}

func (s *Storage) GetOccupancyStats(coworkingID uuid.UUID) ([]models.OccupancyPoint, error) {
	query := `
		SELECT date, occupancy_percentage
		FROM coworking_occupancy
		WHERE coworking_id = $1
		ORDER BY date ASC`

	rows, err := s.DB.Query(query, coworkingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get occupancy stats: %w", err)
	}
	defer rows.Close()

	var points []models.OccupancyPoint
	for rows.Next() {
		var point models.OccupancyPoint
		if err := rows.Scan(&point.Date, &point.OccupancyPercentage); err != nil {
			return nil, fmt.Errorf("failed to scan occupancy row: %w", err)
		}

		points = append(points, point)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating occupancy rows: %w", err)
	}

	return points, nil
}
